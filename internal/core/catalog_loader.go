package core

import (
	"context"
	"fmt"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"rest-explorer/internal/ports"
	"rest-explorer/internal/shared"
	"rest-explorer/internal/types"
)

// CatalogLoader turns the catalog document into a Catalog. It holds no state
// between loads; caching is the job of CatalogStore.
type CatalogLoader struct {
	source       ports.DocumentSourcePort
	schema       ports.DocumentSchemaPort
	tokens       ports.AccessTokenPort
	requireToken bool
}

// NewCatalogLoader wires a loader. schema and tokens may be nil: without a
// schema only structural keys are checked, without a token source every
// Authorization header keeps its template value.
func NewCatalogLoader(source ports.DocumentSourcePort, schema ports.DocumentSchemaPort, tokens ports.AccessTokenPort, requireToken bool) CatalogLoader {
	return CatalogLoader{
		source:       source,
		schema:       schema,
		tokens:       tokens,
		requireToken: requireToken,
	}
}

func (l CatalogLoader) Load(ctx context.Context) (types.Catalog, error) {
	if l.source == nil {
		return types.Catalog{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("catalog document source is not configured")
	}
	data, err := l.source.ReadDocument(ctx)
	if err != nil {
		return types.Catalog{}, err
	}
	if l.schema != nil {
		if err := l.schema.ValidateDocument(data); err != nil {
			return types.Catalog{}, err
		}
	}
	doc, err := DecodeDocument(data)
	if err != nil {
		return types.Catalog{}, err
	}
	if err := ValidateDocument(doc); err != nil {
		return types.Catalog{}, err
	}
	token, err := l.accessToken(ctx)
	if err != nil {
		return types.Catalog{}, err
	}
	catalog, err := BuildCatalog(ctx, doc, token)
	if err != nil {
		return types.Catalog{}, err
	}
	log.Ctx(ctx).Debug().
		Str("source", l.source.Describe()).
		Int("groups", catalog.Len()).
		Int("items", catalog.ItemCount()).
		Msg("catalog loaded")
	return catalog, nil
}

func (l CatalogLoader) accessToken(ctx context.Context) (string, error) {
	if l.tokens != nil {
		token, ok, err := l.tokens.AccessToken(ctx)
		if err != nil {
			return "", err
		}
		if ok {
			return token, nil
		}
	}
	if l.requireToken {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("access token is not configured")
	}
	log.Ctx(ctx).Warn().Msg("access token not configured; Authorization headers keep their template value")
	return "", nil
}

// BuildCatalog builds groups, items and request templates from a decoded
// document, in document order. token is appended to every Authorization
// header. On error no partial catalog is returned.
func BuildCatalog(ctx context.Context, doc types.Document, token string) (types.Catalog, error) {
	groups := make([]types.Group, 0, len(doc.Groups))
	for _, groupDoc := range doc.Groups {
		assert.NotEmpty(ctx, groupDoc.UniqueID, "group id must be set")
		group := types.Group{
			UniqueID:     groupDoc.UniqueID,
			Title:        groupDoc.Title,
			Subtitle:     groupDoc.Subtitle,
			ImagePath:    groupDoc.ImagePath,
			MoreInfoText: groupDoc.MoreInfoText,
			MoreInfoURI:  groupDoc.MoreInfoURI,
			Items:        make([]types.Item, 0, len(groupDoc.Items)),
		}
		for _, itemDoc := range groupDoc.Items {
			item, err := buildItem(ctx, itemDoc, token)
			if err != nil {
				return types.Catalog{}, errbuilder.New().
					WithCode(errbuilder.CodeOf(err)).
					WithMsg(fmt.Sprintf("item %s in group %s: %s", itemDoc.UniqueID, groupDoc.UniqueID, shared.ErrorMessage(err))).
					WithCause(err)
			}
			group.Items = append(group.Items, item)
		}
		groups = append(groups, group)
	}
	return types.Catalog{Groups: groups}, nil
}

func buildItem(ctx context.Context, doc types.ItemDocument, token string) (types.Item, error) {
	assert.NotEmpty(ctx, doc.UniqueID, "item id must be set")
	headers, err := AuthorizeHeaders(doc.Request.Headers, token)
	if err != nil {
		return types.Item{}, err
	}
	request, err := NewRequestTemplate(doc.Request.APIURL, doc.Request.Method, headers, doc.Request.Body)
	if err != nil {
		return types.Item{}, err
	}
	item := types.Item{
		UniqueID:  doc.UniqueID,
		Title:     doc.Title,
		Subtitle:  doc.Subtitle,
		ImagePath: doc.ImagePath,
	}
	item.Request = &request
	return item, nil
}
