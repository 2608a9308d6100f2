package queries

import (
	"context"

	"gin-storefront/internal/infra"
	"gin-storefront/internal/pkg/errs"
	"gin-storefront/internal/usecase/readmodel"
)

//go:generate mockgen -source=content.go -destination=../../../tests/mock/queries/mock_content.go -package=queriesmock

// ContentQueries serves the content API. A locale without its own content gets
// the default locale's content.
type ContentQueries interface {
	GetDiscounts(ctx context.Context, locale string) (readmodel.DiscountsResponse, error)
	GetTyCs(ctx context.Context, locale string) (*readmodel.TyCsResponse, error)
}

// ContentReadStore reports a locale without content as an infra.KindNotFound error.
type ContentReadStore interface {
	FindDiscounts(ctx context.Context, locale string) (readmodel.DiscountsResponse, error)
	FindTerms(ctx context.Context, locale string) (*readmodel.TyCsResponse, error)
}

type contentQueriesImpl struct {
	readStore     ContentReadStore
	defaultLocale string
}

func NewContentQueries(readStore ContentReadStore, defaultLocale string) ContentQueries {
	return &contentQueriesImpl{
		readStore:     readStore,
		defaultLocale: defaultLocale,
	}
}

func (q *contentQueriesImpl) GetDiscounts(ctx context.Context, locale string) (readmodel.DiscountsResponse, error) {
	return withDefaultLocale(ctx, q, locale, q.readStore.FindDiscounts)
}

func (q *contentQueriesImpl) GetTyCs(ctx context.Context, locale string) (*readmodel.TyCsResponse, error) {
	return withDefaultLocale(ctx, q, locale, q.readStore.FindTerms)
}

func withDefaultLocale[T any](
	ctx context.Context,
	q *contentQueriesImpl,
	locale string,
	find func(context.Context, string) (T, error),
) (T, error) {
	var zero T

	content, err := find(ctx, locale)
	if err == nil {
		return content, nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return zero, err
	}

	if locale != q.defaultLocale {
		content, err = find(ctx, q.defaultLocale)
		if err == nil {
			return content, nil
		}
		if !infra.IsKind(err, infra.KindNotFound) {
			return zero, err
		}
	}
	return zero, errs.Wrapf(errs.ErrContentNotFound, "locale %s", locale)
}
