package adapters

import (
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"rest-explorer/internal/types"
)

type RequestExportAdapter struct{}

func NewRequestExportAdapter() RequestExportAdapter {
	return RequestExportAdapter{}
}

func (a RequestExportAdapter) WriteRequest(path string, req types.SavedRequest) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create export directory").
			WithCause(err)
	}
	data, err := yaml.Marshal(req)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to marshal request " + req.Name).
			WithCause(err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write " + path).
			WithCause(err)
	}
	log.Debug().Str("path", path).Msg("request exported")
	return nil
}
