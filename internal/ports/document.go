package ports

import "context"

// DocumentSourcePort reads the raw catalog document.
type DocumentSourcePort interface {
	ReadDocument(ctx context.Context) ([]byte, error)
	// Describe names the source for logs and reports, e.g. a file path.
	Describe() string
}

// DocumentSchemaPort checks that a raw document has every required key with
// the expected JSON type before it is decoded.
type DocumentSchemaPort interface {
	ValidateDocument(data []byte) error
}
