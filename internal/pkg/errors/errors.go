package errors

import (
	"encoding/xml"
	stderrors "errors"
	"fmt"
	"sort"
	"strings"
	"unicode"
)

type AppError struct {
	Code       string                 `json:"code"`
	Message    string                 `json:"message"`
	Details    map[string]interface{} `json:"details,omitempty"`
	StatusCode int                    `json:"-"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is matches AppErrors by code so that copies made by WithDetails still match their sentinel.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

func New(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

// WithDetails returns a copy of e carrying details. Sentinels are shared, so they are never modified.
func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	cp := *e
	cp.Details = details
	return &cp
}

// WithMessage returns a copy of e with a more specific message.
func (e *AppError) WithMessage(message string) *AppError {
	cp := *e
	cp.Message = message
	return &cp
}

// As unwraps err into an *AppError if it is one.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// MarshalXML writes code, message and details; nested detail maps become nested
// elements named after their keys, in key order.
func (e *AppError) MarshalXML(enc *xml.Encoder, start xml.StartElement) error {
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	if err := enc.EncodeElement(e.Code, xml.StartElement{Name: xml.Name{Local: "code"}}); err != nil {
		return err
	}
	if err := enc.EncodeElement(e.Message, xml.StartElement{Name: xml.Name{Local: "message"}}); err != nil {
		return err
	}
	if len(e.Details) > 0 {
		if err := encodeDetail(enc, "details", e.Details); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}

func encodeDetail(enc *xml.Encoder, key string, value interface{}) error {
	start := detailElement(key)

	var m map[string]interface{}
	switch v := value.(type) {
	case map[string]interface{}:
		m = v
	case map[string]string:
		m = make(map[string]interface{}, len(v))
		for k, s := range v {
			m[k] = s
		}
	case nil:
		return enc.EncodeElement("", start)
	default:
		return enc.EncodeElement(fmt.Sprint(v), start)
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	for _, k := range keys {
		if err := encodeDetail(enc, k, m[k]); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}

// detailElement names the element after key, or falls back to <item key="..."> when
// key is not a usable XML name.
func detailElement(key string) xml.StartElement {
	if isXMLName(key) {
		return xml.StartElement{Name: xml.Name{Local: key}}
	}
	return xml.StartElement{
		Name: xml.Name{Local: "item"},
		Attr: []xml.Attr{{Name: xml.Name{Local: "key"}, Value: key}},
	}
}

func isXMLName(s string) bool {
	if s == "" || strings.HasPrefix(strings.ToLower(s), "xml") {
		return false
	}
	for i, r := range s {
		switch {
		case unicode.IsLetter(r) || r == '_':
		case i > 0 && (unicode.IsDigit(r) || r == '-' || r == '.'):
		default:
			return false
		}
	}
	return true
}
