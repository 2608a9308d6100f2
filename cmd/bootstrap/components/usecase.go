package components

import (
	"gin-storefront/internal/pkg/config"
	"gin-storefront/internal/usecase/pages"
	"gin-storefront/internal/usecase/queries"
	"gin-storefront/internal/usecase/readmodel"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseQueriesModule,
	usecasePagesModule,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		NewContentQueries,
	),
)

var usecasePagesModule = fx.Module("usecase/pages",
	fx.Provide(
		pages.NewDiscountsLoader,
		NewTyCsLoader,
	),
)

func NewContentQueries(store queries.ContentReadStore, cfg config.Config) queries.ContentQueries {
	return queries.NewContentQueries(store, cfg.Locale.Default)
}

// NewTyCsLoader loads the terms once per locale unless TYCS_MODE=ssr.
func NewTyCsLoader(api pages.ContentAPI, cfg config.Config) pages.Loader[readmodel.TyCsResponse] {
	loader := pages.NewTyCsLoader(api)
	if cfg.Content.TyCsMode == config.TyCsModeSSR {
		return loader
	}
	return pages.NewStaticLoader[readmodel.TyCsResponse](loader)
}
