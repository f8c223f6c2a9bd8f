package adapters

import (
	"io/fs"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	"github.com/xeipuuv/gojsonschema"
)

const bundledSchemaPath = "data/catalog.schema.json"

// DocumentSchemaAdapter validates raw catalog documents against a JSON
// schema before they are decoded.
type DocumentSchemaAdapter struct {
	schema *gojsonschema.Schema
}

// NewDocumentSchemaAdapter compiles the schema bundled with the binary.
func NewDocumentSchemaAdapter() (*DocumentSchemaAdapter, error) {
	data, err := fs.ReadFile(bundled, bundledSchemaPath)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("bundled catalog schema not found").
			WithCause(err)
	}
	return NewDocumentSchemaAdapterFromBytes(data)
}

func NewDocumentSchemaAdapterFromBytes(data []byte) (*DocumentSchemaAdapter, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to compile catalog schema").
			WithCause(err)
	}
	return &DocumentSchemaAdapter{schema: schema}, nil
}

func (a *DocumentSchemaAdapter) ValidateDocument(data []byte) error {
	result, err := a.schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("malformed document: invalid JSON").
			WithCause(err)
	}
	if result.Valid() {
		return nil
	}
	problems := make([]string, 0, len(result.Errors()))
	for _, resultErr := range result.Errors() {
		problems = append(problems, resultErr.String())
	}
	sort.Strings(problems)
	log.Debug().
		Int("problems", len(problems)).
		Msg("catalog document failed schema validation")
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg("malformed document: " + strings.Join(problems, "; "))
}
