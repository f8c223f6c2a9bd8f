package ports

import "rest-explorer/internal/types"

// JSONTextPort converts header and body objects to a human-editable text
// form and back.
type JSONTextPort interface {
	Format(obj types.Object) (string, error)
	Parse(text string) (types.Object, error)
}
