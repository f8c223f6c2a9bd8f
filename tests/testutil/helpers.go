// Package testutil provides shared test helpers used across integration
// and unit test packages.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// RepoRoot returns the absolute path to the repository root by walking
// up from the current working directory. It fails the test if the
// working directory cannot be determined.
func RepoRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(dir, "..", ".."))
}

// BundledCatalogPath is the catalog document compiled into the binary.
func BundledCatalogPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(RepoRoot(t), "internal", "adapters", "data", "initial_data.json")
}

// WriteCatalog writes content to a catalog file in a fresh temp dir and
// returns its path.
func WriteCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
