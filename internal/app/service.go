package app

import (
	"strings"

	"rest-explorer/internal/adapters"
	"rest-explorer/internal/core"
	"rest-explorer/internal/ports"
)

type Service struct {
	Catalog  *core.CatalogStore
	JSONText ports.JSONTextPort
	Exporter ports.RequestExportPort
	Source   string
}

func NewService(cfg Config) (Service, error) {
	var source ports.DocumentSourcePort = adapters.NewBundledDocumentAdapter()
	if path := strings.TrimSpace(cfg.CatalogPath); path != "" {
		source = adapters.NewFileDocumentAdapter(path)
	}
	schema, err := adapters.NewDocumentSchemaAdapter()
	if err != nil {
		return Service{}, err
	}
	var tokens ports.AccessTokenPort
	if cfg.Settings != nil {
		tokens = adapters.NewSettingsTokenAdapter(cfg.Settings)
	}
	loader := core.NewCatalogLoader(source, schema, tokens, cfg.RequireToken)
	return Service{
		Catalog:  core.NewCatalogStore(loader.Load),
		JSONText: adapters.NewJSONTextAdapter(),
		Exporter: adapters.NewRequestExportAdapter(),
		Source:   source.Describe(),
	}, nil
}
