package app

import (
	"github.com/ZanzyTHEbar/errbuilder-go"

	"rest-explorer/internal/types"
)

// FormatObject renders a header or body object as indented JSON text.
func (s Service) FormatObject(obj types.Object) (string, error) {
	if s.JSONText == nil {
		return "", errJSONTextMissing()
	}
	return s.JSONText.Format(obj)
}

// ParseObject turns edited JSON text back into an object.
func (s Service) ParseObject(text string) (types.Object, error) {
	if s.JSONText == nil {
		return nil, errJSONTextMissing()
	}
	return s.JSONText.Parse(text)
}

func errJSONTextMissing() error {
	return errbuilder.New().
		WithCode(errbuilder.CodeFailedPrecondition).
		WithMsg("json text converter is not configured")
}
