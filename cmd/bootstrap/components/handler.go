package components

import (
	"gin-storefront/internal/handler"
	"gin-storefront/internal/handler/api"
	"gin-storefront/internal/handler/middleware"
	"gin-storefront/internal/handler/page"
	"gin-storefront/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		NewLocaleResolver,
		api.NewContentHandler,
		page.NewPageHandler,
	),
	fx.Invoke(handler.NewRouter),
)

func NewLocaleResolver(cfg config.Config) *middleware.LocaleResolver {
	return middleware.NewLocaleResolver(cfg.Locale)
}
