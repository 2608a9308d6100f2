package dbtest

import (
	"context"
	"fmt"
	"time"

	"gin-storefront/internal/infra/fixture"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const seedTimeout = 10 * time.Second

// SeedContent copies the embedded fixture content into the content tables.
func SeedContent(pool *pgxpool.Pool) error {
	store, err := fixture.NewStore()
	if err != nil {
		return fmt.Errorf("failed to load fixtures: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
	defer cancel()

	batch := &pgx.Batch{}
	for _, locale := range store.Locales() {
		discounts, err := store.FindDiscounts(ctx, locale)
		if err != nil {
			return err
		}
		for pos, d := range discounts {
			batch.Queue(
				`INSERT INTO discounts (locale, id, position, title, image, description, expiration) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
				locale, d.ID, pos, d.Title, d.Image, d.Description, d.Expiration,
			)
		}

		terms, err := store.FindTerms(ctx, locale)
		if err != nil {
			return err
		}
		batch.Queue(`INSERT INTO tyc_versions (locale, version) VALUES ($1, $2)`, locale, terms.Version)
		for pos, t := range terms.TyCs {
			batch.Queue(
				`INSERT INTO tycs (locale, id, position, title, description) VALUES ($1, $2, $3, $4, $5)`,
				locale, t.ID, pos, t.Title, t.Description,
			)
		}
	}

	if err := pool.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to seed content: %w", err)
	}
	return nil
}

// ResetDB empties the content tables and seeds them again.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
	defer cancel()

	if _, err := pool.Exec(ctx, `TRUNCATE discounts, tycs, tyc_versions`); err != nil {
		return fmt.Errorf("failed to truncate content tables: %w", err)
	}
	return SeedContent(pool)
}
