package validator

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/cityinfo-api/internal/pkg/errors"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report json names so field errors match what the client sent.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
}

// Validate - валидация структуры. Validation failures come back as errors.ErrValidation with
// per-field messages; other failures (e.g. a nil value) are returned unchanged.
func Validate(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return err
	}
	return FieldErrors(fieldMessages(verrs))
}

// FieldErrors builds a validation error from already known field messages.
func FieldErrors(fields map[string]string) error {
	return errors.ErrValidation.WithDetails(map[string]interface{}{
		"fields": fields,
	})
}

func fieldMessages(verrs validator.ValidationErrors) map[string]string {
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		name := fe.Field()
		if _, seen := fields[name]; seen {
			continue
		}
		fields[name] = message(fe)
	}
	return fields
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("You should provide a %s value.", fe.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long.", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s.", fe.Field(), fe.Param())
	case "nefield":
		return fmt.Sprintf("The provided %s should be different from the %s.", fe.Field(), strings.ToLower(fe.Param()))
	default:
		return fmt.Sprintf("%s failed the %s rule.", fe.Field(), fe.Tag())
	}
}
