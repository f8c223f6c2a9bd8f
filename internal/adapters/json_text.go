package adapters

import (
	"encoding/json"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"rest-explorer/internal/types"
)

// JSONTextAdapter renders header and body objects as indented JSON text and
// parses edited text back. Key order survives both directions.
type JSONTextAdapter struct {
	indent string
}

func NewJSONTextAdapter() JSONTextAdapter {
	return JSONTextAdapter{indent: "  "}
}

func (a JSONTextAdapter) Format(obj types.Object) (string, error) {
	if obj == nil {
		obj = types.Object{}
	}
	data, err := json.MarshalIndent(obj, "", a.indent)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to format JSON object").
			WithCause(err)
	}
	return string(data), nil
}

func (a JSONTextAdapter) Parse(text string) (types.Object, error) {
	var obj types.Object
	if err := json.Unmarshal([]byte(text), &obj); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse JSON object").
			WithCause(err)
	}
	if obj == nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse JSON object: text is null")
	}
	return obj, nil
}
