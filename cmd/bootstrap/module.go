package bootstrap

import (
	"gin-storefront/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	APIClientModule,
	I18nModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
