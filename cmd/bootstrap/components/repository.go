package components

import (
	"fmt"

	"gin-storefront/internal/infra/fixture"
	"gin-storefront/internal/infra/readstore"
	"gin-storefront/internal/pkg/config"
	"gin-storefront/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewContentReadStore,
	),
)

// NewContentReadStore picks the content backend from CONTENT_SOURCE.
func NewContentReadStore(cfg config.Config, pool *pgxpool.Pool) (queries.ContentReadStore, error) {
	switch cfg.Content.Source {
	case config.ContentSourcePostgres:
		if pool == nil {
			return nil, fmt.Errorf("CONTENT_SOURCE=%s needs a database pool", config.ContentSourcePostgres)
		}
		return readstore.NewContentReadStore(pool), nil
	case config.ContentSourceFixtures:
		store, err := fixture.NewStore()
		if err != nil {
			return nil, fmt.Errorf("failed to load content fixtures: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown CONTENT_SOURCE %q", cfg.Content.Source)
	}
}
