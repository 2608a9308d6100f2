// Package pages loads the data behind each storefront page from the content API.
package pages

//go:generate mockgen -source=loader.go -destination=../../../tests/mock/pages/mock_loader.go -package=pagesmock

import (
	"context"
	"net/url"

	"gin-storefront/internal/usecase/readmodel"
)

// ContentAPI performs one GET against the content API and decodes the JSON body into out.
type ContentAPI interface {
	GetJSON(ctx context.Context, path string, out any) error
}

// Props is what a page receives. A nil Data is the empty state (the API answered null).
type Props[T any] struct {
	Data *T
}

type Loader[T any] interface {
	Load(ctx context.Context, locale string) (Props[T], error)
}

type apiLoader[T any] struct {
	api      ContentAPI
	resource string
}

// NewDiscountsLoader fetches /api/discounts/{locale} on every call.
func NewDiscountsLoader(api ContentAPI) Loader[readmodel.DiscountsResponse] {
	return &apiLoader[readmodel.DiscountsResponse]{api: api, resource: "discounts"}
}

// NewTyCsLoader fetches /api/tycs/{locale} on every call.
func NewTyCsLoader(api ContentAPI) Loader[readmodel.TyCsResponse] {
	return &apiLoader[readmodel.TyCsResponse]{api: api, resource: "tycs"}
}

// Path returns the API path for a resource and locale. The locale is forwarded
// as given, only path-escaped.
func Path(resource, locale string) string {
	return "/api/" + resource + "/" + url.PathEscape(locale)
}

func (l *apiLoader[T]) Load(ctx context.Context, locale string) (Props[T], error) {
	var data *T
	if err := l.api.GetJSON(ctx, Path(l.resource, locale), &data); err != nil {
		return Props[T]{}, err
	}
	return Props[T]{Data: data}, nil
}
