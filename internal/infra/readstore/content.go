package readstore

import (
	"context"
	"errors"

	"gin-storefront/internal/infra"
	"gin-storefront/internal/usecase/readmodel"

	"github.com/jackc/pgx/v5"
)

// DBTX is the subset of *pgxpool.Pool the store needs.
type DBTX interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const (
	findDiscountsSQL = `
SELECT id, title, image, description, expiration
FROM discounts
WHERE locale = $1
ORDER BY position, id`

	findTyCVersionSQL = `
SELECT version
FROM tyc_versions
WHERE locale = $1`

	findTyCsSQL = `
SELECT id, title, description
FROM tycs
WHERE locale = $1
ORDER BY position, id`
)

type discountRow struct {
	ID          int32  `db:"id"`
	Title       string `db:"title"`
	Image       string `db:"image"`
	Description string `db:"description"`
	Expiration  string `db:"expiration"`
}

type tycRow struct {
	ID          int32  `db:"id"`
	Title       string `db:"title"`
	Description string `db:"description"`
}

type ContentReadStore struct {
	db DBTX
}

func NewContentReadStore(db DBTX) *ContentReadStore {
	return &ContentReadStore{
		db: db,
	}
}

// FindDiscounts returns the locale's discounts in display order. A locale with no rows is not found.
func (r *ContentReadStore) FindDiscounts(ctx context.Context, locale string) (readmodel.DiscountsResponse, error) {
	rows, err := r.db.Query(ctx, findDiscountsSQL, locale)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query discounts", err)
	}
	discounts, err := pgx.CollectRows(rows, pgx.RowToStructByName[discountRow])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan discounts", err)
	}
	if len(discounts) == 0 {
		return nil, infra.WrapRepoErr("discounts not found for locale "+locale, nil, infra.KindNotFound)
	}
	return toDiscountsResponse(discounts), nil
}

// FindTerms returns the locale's terms. A locale without a version row is not found.
func (r *ContentReadStore) FindTerms(ctx context.Context, locale string) (*readmodel.TyCsResponse, error) {
	var version string
	err := r.db.QueryRow(ctx, findTyCVersionSQL, locale).Scan(&version)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("tycs not found for locale "+locale, err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to query tyc version", err)
	}

	rows, err := r.db.Query(ctx, findTyCsSQL, locale)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query tycs", err)
	}
	tycs, err := pgx.CollectRows(rows, pgx.RowToStructByName[tycRow])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan tycs", err)
	}
	return toTyCsResponse(version, tycs), nil
}

func toDiscountsResponse(rows []discountRow) readmodel.DiscountsResponse {
	out := make(readmodel.DiscountsResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, readmodel.DiscountRM{
			ID:          int(row.ID),
			Title:       row.Title,
			Image:       row.Image,
			Description: row.Description,
			Expiration:  row.Expiration,
		})
	}
	return out
}

func toTyCsResponse(version string, rows []tycRow) *readmodel.TyCsResponse {
	tycs := make([]readmodel.TyCRM, 0, len(rows))
	for _, row := range rows {
		tycs = append(tycs, readmodel.TyCRM{
			ID:          int(row.ID),
			Title:       row.Title,
			Description: row.Description,
		})
	}
	return &readmodel.TyCsResponse{Version: version, TyCs: tycs}
}
