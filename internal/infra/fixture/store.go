// Package fixture serves storefront content from JSON files embedded in the binary.
package fixture

import (
	"context"
	"embed"
	"encoding/json"
	"io/fs"
	"path"
	"strings"

	"gin-storefront/internal/infra"
	"gin-storefront/internal/usecase/readmodel"
)

//go:embed data/discounts/*.json data/tycs/*.json
var dataFS embed.FS

// Store implements queries.ContentReadStore. Content is decoded once at construction.
type Store struct {
	discounts map[string]readmodel.DiscountsResponse
	terms     map[string]readmodel.TyCsResponse
}

func NewStore() (*Store, error) {
	sub, err := fs.Sub(dataFS, "data")
	if err != nil {
		return nil, err
	}
	return NewStoreFromFS(sub)
}

// NewStoreFromFS reads discounts/<locale>.json and tycs/<locale>.json from fsys.
func NewStoreFromFS(fsys fs.FS) (*Store, error) {
	discounts, err := loadDir[readmodel.DiscountsResponse](fsys, "discounts")
	if err != nil {
		return nil, err
	}
	terms, err := loadDir[readmodel.TyCsResponse](fsys, "tycs")
	if err != nil {
		return nil, err
	}
	return &Store{discounts: discounts, terms: terms}, nil
}

func loadDir[T any](fsys fs.FS, dir string) (map[string]T, error) {
	files, err := fs.Glob(fsys, dir+"/*.json")
	if err != nil {
		return nil, infra.WrapRepoErr("list "+dir+" fixtures", err, infra.KindCorrupt)
	}

	out := make(map[string]T, len(files))
	for _, file := range files {
		raw, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, infra.WrapRepoErr("read fixture "+file, err, infra.KindCorrupt)
		}
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, infra.WrapRepoErr("decode fixture "+file, err, infra.KindCorrupt)
		}
		locale := strings.TrimSuffix(path.Base(file), ".json")
		out[locale] = v
	}
	return out, nil
}

func (s *Store) FindDiscounts(_ context.Context, locale string) (readmodel.DiscountsResponse, error) {
	discounts, ok := s.discounts[locale]
	if !ok {
		return nil, infra.WrapRepoErr("no discounts for locale "+locale, nil, infra.KindNotFound)
	}
	out := make(readmodel.DiscountsResponse, len(discounts))
	copy(out, discounts)
	return out, nil
}

func (s *Store) FindTerms(_ context.Context, locale string) (*readmodel.TyCsResponse, error) {
	terms, ok := s.terms[locale]
	if !ok {
		return nil, infra.WrapRepoErr("no tycs for locale "+locale, nil, infra.KindNotFound)
	}
	out := readmodel.TyCsResponse{
		Version: terms.Version,
		TyCs:    make([]readmodel.TyCRM, len(terms.TyCs)),
	}
	copy(out.TyCs, terms.TyCs)
	return &out, nil
}

// Locales returns the locales that have discounts.
func (s *Store) Locales() []string {
	out := make([]string, 0, len(s.discounts))
	for locale := range s.discounts {
		out = append(out, locale)
	}
	return out
}
