package app

import (
	"context"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"rest-explorer/internal/types"
)

// Groups returns every group in document order. The result is a copy; the
// cached catalog cannot be changed through it.
func (s Service) Groups(ctx context.Context) ([]types.Group, error) {
	catalog, err := s.catalog(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.Clone().Groups, nil
}

// Group returns the group with the given id, or false when there is none.
func (s Service) Group(ctx context.Context, uniqueID string) (types.Group, bool, error) {
	catalog, err := s.catalog(ctx)
	if err != nil {
		return types.Group{}, false, err
	}
	group, ok := catalog.FindGroup(uniqueID)
	if !ok {
		return types.Group{}, false, nil
	}
	return group.Clone(), true, nil
}

// Item returns the item with the given id from any group, or false when
// there is none.
func (s Service) Item(ctx context.Context, uniqueID string) (types.Item, bool, error) {
	catalog, err := s.catalog(ctx)
	if err != nil {
		return types.Item{}, false, err
	}
	item, ok := catalog.FindItem(uniqueID)
	if !ok {
		return types.Item{}, false, nil
	}
	return item.Clone(), true, nil
}

func (s Service) catalog(ctx context.Context) (types.Catalog, error) {
	if s.Catalog == nil {
		return types.Catalog{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("catalog store is not configured")
	}
	return s.Catalog.Catalog(ctx)
}
