package app

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"rest-explorer/internal/core"
	"rest-explorer/internal/shared"
	"rest-explorer/internal/types"
)

const redactedValue = "<redacted>"

// Export writes one YAML saved-request file per item under
// <dir>/<group id>/<item id>.yaml.
func (s Service) Export(ctx context.Context, req ExportRequest) (ExportResult, error) {
	dir := strings.TrimSpace(req.Dir)
	if dir == "" {
		return ExportResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("export directory is required")
	}
	if s.Exporter == nil {
		return ExportResult{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("request exporter is not configured")
	}
	catalog, err := s.catalog(ctx)
	if err != nil {
		return ExportResult{}, err
	}

	result := ExportResult{}
	for _, group := range catalog.Groups {
		for _, item := range group.Items {
			if item.Request == nil {
				continue
			}
			path := filepath.Join(dir, shared.PathSegment(group.UniqueID), shared.PathSegment(item.UniqueID)+".yaml")
			if err := s.Exporter.WriteRequest(path, savedRequest(item, req.IncludeSecrets)); err != nil {
				return result, err
			}
			result.Files = append(result.Files, path)
		}
	}
	log.Ctx(ctx).Info().Int("files", len(result.Files)).Str("dir", dir).Msg("catalog exported")
	return result, nil
}

func savedRequest(item types.Item, includeSecrets bool) types.SavedRequest {
	headers := item.Request.Headers.Clone()
	if !includeSecrets {
		if _, ok := headers.Get(core.AuthorizationHeader); ok {
			headers = headers.With(core.AuthorizationHeader, redactedValue)
		}
	}
	return types.SavedRequest{
		Name:    shared.FirstNonBlank(item.Title, item.UniqueID),
		Method:  string(item.Request.Method),
		URL:     item.Request.APIURL,
		Headers: headers,
		Body:    item.Request.Body.Clone(),
	}
}
