package bootstrap

import (
	"log/slog"
	"net/http"

	"gin-storefront/internal/infra/apiclient"
	"gin-storefront/internal/pkg/config"
	"gin-storefront/internal/usecase/pages"

	"go.uber.org/fx"
)

var APIClientModule = fx.Module("apiclient",
	fx.Provide(
		fx.Annotate(
			NewAPIClient,
			fx.As(new(pages.ContentAPI)),
		),
	),
)

// NewAPIClient targets API_BASE_URL, or this process when it is unset.
func NewAPIClient(cfg config.Config, logger *slog.Logger) *apiclient.Client {
	httpClient := &http.Client{Timeout: cfg.API.Timeout}
	return apiclient.NewClient(cfg.APIBaseURL(), httpClient, logger.With("component", "apiclient"))
}
