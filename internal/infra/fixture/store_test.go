package fixture

import (
	"context"
	"testing"
	"testing/fstest"

	"gin-storefront/internal/infra"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStoreEmbedded(t *testing.T) {
	store, err := NewStore()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"en-US", "es-ES", "pt-BR"}, store.Locales())

	for _, locale := range []string{"en-US", "es-ES", "pt-BR"} {
		t.Run(locale, func(t *testing.T) {
			discounts, err := store.FindDiscounts(context.Background(), locale)
			require.NoError(t, err)
			require.NotEmpty(t, discounts)

			seen := map[int]bool{}
			for _, d := range discounts {
				assert.False(t, seen[d.ID], "duplicate id %d", d.ID)
				seen[d.ID] = true
				assert.NotEmpty(t, d.Title)
				assert.NotEmpty(t, d.Image)
				assert.NotEmpty(t, d.Expiration)
			}

			terms, err := store.FindTerms(context.Background(), locale)
			require.NoError(t, err)
			assert.Equal(t, "1.0", terms.Version)
			assert.NotEmpty(t, terms.TyCs)
		})
	}
}

func TestFindDiscountsPtBR(t *testing.T) {
	store, err := NewStore()
	require.NoError(t, err)

	discounts, err := store.FindDiscounts(context.Background(), "pt-BR")
	require.NoError(t, err)
	assert.Equal(t, "35% de desconto na página inicial", discounts[0].Title)
	assert.Equal(t, "/home_electronics.jpg", discounts[0].Image)
	assert.Equal(t, "30/06/2022", discounts[0].Expiration)
}

func TestFindUnknownLocale(t *testing.T) {
	store, err := NewStore()
	require.NoError(t, err)

	_, err = store.FindDiscounts(context.Background(), "ES_ES")
	assert.True(t, infra.IsKind(err, infra.KindNotFound))

	_, err = store.FindTerms(context.Background(), "fr-FR")
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestFindReturnsCopies(t *testing.T) {
	store, err := NewStore()
	require.NoError(t, err)

	first, err := store.FindDiscounts(context.Background(), "en-US")
	require.NoError(t, err)
	first[0].Title = "mutated"

	again, err := store.FindDiscounts(context.Background(), "en-US")
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", again[0].Title)
}

func TestNewStoreFromFSCorrupt(t *testing.T) {
	fsys := fstest.MapFS{
		"discounts/pt-BR.json": {Data: []byte(`{not json`)},
	}
	_, err := NewStoreFromFS(fsys)
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindCorrupt))
}

func TestNewStoreFromFSEmptyArray(t *testing.T) {
	fsys := fstest.MapFS{
		"discounts/pt-BR.json": {Data: []byte(`[]`)},
		"tycs/pt-BR.json":      {Data: []byte(`{"version":"2.0","tycs":[]}`)},
	}
	store, err := NewStoreFromFS(fsys)
	require.NoError(t, err)

	discounts, err := store.FindDiscounts(context.Background(), "pt-BR")
	require.NoError(t, err)
	assert.NotNil(t, discounts)
	assert.Empty(t, discounts)
}
