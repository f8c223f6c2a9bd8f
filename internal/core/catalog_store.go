package core

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"rest-explorer/internal/types"
)

type LoadFunc func(ctx context.Context) (types.Catalog, error)

// CatalogStore caches the catalog for the life of the process. The first
// successful load with at least one group wins; concurrent first callers
// wait for it and all observe the same catalog. A failed or empty load
// caches nothing, so the next call loads again from scratch.
type CatalogStore struct {
	mu      sync.RWMutex
	load    LoadFunc
	catalog types.Catalog
	loaded  bool
}

func NewCatalogStore(load LoadFunc) *CatalogStore {
	return &CatalogStore{load: load}
}

// Catalog returns the cached catalog, loading it on first use. Callers must
// treat the result as read-only.
func (s *CatalogStore) Catalog(ctx context.Context) (types.Catalog, error) {
	s.mu.RLock()
	if s.loaded {
		catalog := s.catalog
		s.mu.RUnlock()
		return catalog, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		return s.catalog, nil
	}
	catalog, err := s.load(ctx)
	if err != nil {
		return types.Catalog{}, err
	}
	if catalog.Len() == 0 {
		log.Ctx(ctx).Debug().Msg("catalog is empty; not caching")
		return catalog, nil
	}
	s.catalog = catalog
	s.loaded = true
	return catalog, nil
}

func (s *CatalogStore) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Reset drops the cached catalog; the next call to Catalog loads again.
func (s *CatalogStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalog = types.Catalog{}
	s.loaded = false
}
