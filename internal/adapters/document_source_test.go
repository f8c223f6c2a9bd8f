package adapters

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBundledDocumentAdapterReadsEmbeddedCatalog(t *testing.T) {
	adapter := NewBundledDocumentAdapter()
	data, err := adapter.ReadDocument(t.Context())
	require.NoError(t, err)
	assert.Contains(t, string(data), `"Groups"`)
	assert.Equal(t, "bundled:data/initial_data.json", adapter.Describe())
}

func TestFSDocumentAdapterMissingPath(t *testing.T) {
	adapter := NewFSDocumentAdapter(fstest.MapFS{}, "missing.json")
	_, err := adapter.ReadDocument(t.Context())
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}

func TestFileDocumentAdapter(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"Groups":[]}`), 0644))

	adapter := NewFileDocumentAdapter(path)
	data, err := adapter.ReadDocument(t.Context())
	require.NoError(t, err)
	assert.Equal(t, `{"Groups":[]}`, string(data))
	assert.Equal(t, path, adapter.Describe())

	_, err = NewFileDocumentAdapter(filepath.Join(dir, "nope.json")).ReadDocument(t.Context())
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
	assert.Contains(t, err.Error(), "catalog document not found")
}
