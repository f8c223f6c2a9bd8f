package app

import (
	"context"

	"github.com/rs/zerolog/log"
)

func (s Service) Validate(ctx context.Context, _ ValidateRequest) (ValidateResult, error) {
	catalog, err := s.catalog(ctx)
	if err != nil {
		return ValidateResult{}, err
	}
	result := ValidateResult{
		Source: s.Source,
		Groups: catalog.Len(),
		Items:  catalog.ItemCount(),
	}
	log.Ctx(ctx).Debug().Str("source", result.Source).Msg("catalog validated")
	return result, nil
}
