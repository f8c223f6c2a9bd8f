package app

import "rest-explorer/internal/adapters"

// Config selects the adapters NewService wires.
type Config struct {
	// CatalogPath reads the catalog from a file; empty uses the bundled one.
	CatalogPath string
	// RequireToken fails the load when no access token is configured.
	RequireToken bool
	// Settings is the key-value store holding the access token.
	Settings adapters.SettingsReader
}

type ValidateRequest struct{}

type ValidateResult struct {
	Source string
	Groups int
	Items  int
}

type ExportRequest struct {
	Dir            string
	IncludeSecrets bool
}

type ExportResult struct {
	Files []string
}
