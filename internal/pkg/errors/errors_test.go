package errors_test

import (
	"encoding/xml"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cityinfo-api/internal/pkg/errors"
)

func TestWithDetailsDoesNotMutateSentinel(t *testing.T) {
	detailed := errors.ErrValidation.WithDetails(map[string]interface{}{"fields": map[string]string{"name": "required"}})

	assert.NotNil(t, detailed.Details)
	assert.Nil(t, errors.ErrValidation.Details)
	assert.Equal(t, http.StatusBadRequest, detailed.StatusCode)
	assert.True(t, errors.Is(detailed, errors.ErrValidation))
}

func TestAsUnwrapsWrappedAppError(t *testing.T) {
	wrapped := fmt.Errorf("loading city: %w", errors.ErrCityNotFound)

	appErr, ok := errors.As(wrapped)
	require.True(t, ok)
	assert.Equal(t, "CITY_NOT_FOUND", appErr.Code)
	assert.Equal(t, http.StatusNotFound, appErr.StatusCode)

	_, ok = errors.As(fmt.Errorf("plain"))
	assert.False(t, ok)
}

func TestIsDistinguishesCodes(t *testing.T) {
	assert.False(t, errors.Is(errors.ErrCityNotFound, errors.ErrPointOfInterestNotFound))
	assert.True(t, errors.Is(errors.ErrForbidden.WithMessage("nope"), errors.ErrForbidden))
}

func TestMarshalXMLIncludesDetails(t *testing.T) {
	detailed := errors.ErrInvalidPatch.WithDetails(map[string]interface{}{
		"operation": 1,
		"fields":    map[string]string{"name": "You should provide a name value.", "1bad": "x"},
	})

	body, err := xml.Marshal(struct {
		XMLName xml.Name         `xml:"ErrorResponse"`
		Error   *errors.AppError `xml:"Error"`
	}{Error: detailed})
	require.NoError(t, err)

	assert.Equal(t,
		`<ErrorResponse><Error><code>INVALID_PATCH</code><message>`+detailed.Message+`</message>`+
			`<details><fields><item key="1bad">x</item><name>You should provide a name value.</name></fields>`+
			`<operation>1</operation></details></Error></ErrorResponse>`,
		string(body))
}

func TestMarshalXMLWithoutDetails(t *testing.T) {
	body, err := xml.Marshal(errors.ErrCityNotFound)
	require.NoError(t, err)
	assert.Equal(t, `<AppError><code>CITY_NOT_FOUND</code><message>`+errors.ErrCityNotFound.Message+`</message></AppError>`, string(body))
}
