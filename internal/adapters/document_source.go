package adapters

import (
	"context"
	"embed"
	"io/fs"
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// DefaultDocumentPath is the logical path of the catalog bundled with the
// binary.
const DefaultDocumentPath = "data/initial_data.json"

//go:embed data/initial_data.json data/catalog.schema.json
var bundled embed.FS

// BundledDocumentAdapter reads the catalog from a read-only file system,
// by default the one compiled into the binary.
type BundledDocumentAdapter struct {
	fsys fs.FS
	path string
}

func NewBundledDocumentAdapter() BundledDocumentAdapter {
	return NewFSDocumentAdapter(bundled, DefaultDocumentPath)
}

func NewFSDocumentAdapter(fsys fs.FS, path string) BundledDocumentAdapter {
	return BundledDocumentAdapter{fsys: fsys, path: path}
}

func (a BundledDocumentAdapter) ReadDocument(_ context.Context) ([]byte, error) {
	data, err := fs.ReadFile(a.fsys, a.path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("bundled catalog document not found: " + a.path).
			WithCause(err)
	}
	return data, nil
}

func (a BundledDocumentAdapter) Describe() string {
	return "bundled:" + a.path
}

type FileDocumentAdapter struct {
	path string
}

func NewFileDocumentAdapter(path string) FileDocumentAdapter {
	return FileDocumentAdapter{path: path}
}

func (a FileDocumentAdapter) ReadDocument(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(a.path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("catalog document not found: " + a.path).
			WithCause(err)
	}
	return data, nil
}

func (a FileDocumentAdapter) Describe() string {
	return a.path
}
