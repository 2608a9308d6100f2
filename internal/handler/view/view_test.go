package view

import (
	"context"
	"io"
	"strings"
	"testing"

	"gin-storefront/internal/i18n"
	"gin-storefront/internal/usecase/pages"
	"gin-storefront/internal/usecase/readmodel"
	"gin-storefront/tests/common/httptest"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var homeDiscount = readmodel.DiscountRM{
	ID:          1,
	Title:       "35% de desconto na página inicial",
	Image:       "/home_electronics.jpg",
	Description: "Na compra de qualquer produto da linha home tem um desconto de 35% sobre o preço final",
	Expiration:  "30/06/2022",
}

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, c.Render(context.Background(), &b))
	return b.String()
}

// parseFragment parses markup as the children of a <body> element.
func parseFragment(t *testing.T, markup string) *html.Node {
	t.Helper()
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(markup), body)
	require.NoError(t, err)
	for _, n := range nodes {
		body.AppendChild(n)
	}
	return body
}

func TestDiscountsPageEmptyState(t *testing.T) {
	table := i18n.MustDefaultTable()

	page := DiscountsPage(pages.Props[readmodel.DiscountsResponse]{}, table.Resolve("pt-BR"))
	assert.Nil(t, page)
}

func TestDiscountsPageSingleItem(t *testing.T) {
	table := i18n.MustDefaultTable()
	data := readmodel.DiscountsResponse{homeDiscount}

	page := DiscountsPage(pages.Props[readmodel.DiscountsResponse]{Data: &data}, table.Resolve("pt-BR"))
	require.NotNil(t, page)

	nodes := parseFragment(t, render(t, page))

	h2 := httptest.FindAll(nodes, "h2")
	require.Len(t, h2, 1)
	assert.Equal(t, "Descontos", httptest.Text(h2[0]))

	imgs := httptest.FindAll(nodes, "img")
	require.Len(t, imgs, 1)
	assert.Equal(t, homeDiscount.Title, httptest.Attr(imgs[0], "alt"))
	assert.Equal(t, homeDiscount.Image, httptest.Attr(imgs[0], "src"))
	assert.Equal(t, "600", httptest.Attr(imgs[0], "width"))
	assert.Equal(t, "300", httptest.Attr(imgs[0], "height"))

	h3 := httptest.FindAll(nodes, "h3")
	require.Len(t, h3, 1)
	assert.Equal(t, homeDiscount.Title, httptest.Text(h3[0]))

	italic := httptest.FindAll(nodes, "i")
	require.Len(t, italic, 1)
	assert.Equal(t, homeDiscount.Description, httptest.Text(italic[0]))

	bold := httptest.FindAll(nodes, "b")
	require.Len(t, bold, 1)
	assert.Equal(t, "Validade: 30/06/2022", httptest.Text(bold[0]))

	assert.Equal(t, "Loja Gratuita - Descontos", page.PageTitle())
	assert.NotEmpty(t, page.PageDescription())
}

func TestDiscountsPageKeepsResponseOrder(t *testing.T) {
	table := i18n.MustDefaultTable()
	data := readmodel.DiscountsResponse{
		{ID: 2, Title: "second"},
		{ID: 1, Title: "first"},
		{ID: 3, Title: "third"},
	}

	page := DiscountsPage(pages.Props[readmodel.DiscountsResponse]{Data: &data}, table.Resolve("en-US"))
	nodes := parseFragment(t, render(t, page))

	var got []string
	for _, n := range httptest.FindAll(nodes, "h3") {
		got = append(got, httptest.Text(n))
	}
	assert.Equal(t, []string{"second", "first", "third"}, got)
	assert.Equal(t, "Discounts", httptest.Text(httptest.FindAll(nodes, "h2")[0]))
}

func TestDiscountsPageEscapesContent(t *testing.T) {
	table := i18n.MustDefaultTable()
	data := readmodel.DiscountsResponse{{
		ID:          1,
		Title:       `<script>alert("x")</script>`,
		Image:       `/a.jpg" onerror="alert(1)`,
		Description: "a & b",
	}}

	out := render(t, DiscountsPage(pages.Props[readmodel.DiscountsResponse]{Data: &data}, table.Resolve("pt-BR")))
	assert.NotContains(t, out, "<script>")
	assert.NotContains(t, out, `" onerror="`)

	nodes := parseFragment(t, out)
	assert.Empty(t, httptest.FindAll(nodes, "script"))
	assert.Equal(t, data[0].Title, httptest.Attr(httptest.FindAll(nodes, "img")[0], "alt"))
	assert.Equal(t, "a & b", httptest.Text(httptest.FindAll(nodes, "i")[0]))
}

func TestTyCsPage(t *testing.T) {
	table := i18n.MustDefaultTable()

	t.Run("empty state", func(t *testing.T) {
		assert.Nil(t, TyCsPage(pages.Props[readmodel.TyCsResponse]{}, table.Resolve("pt-BR")))
	})

	t.Run("version and one item", func(t *testing.T) {
		data := readmodel.TyCsResponse{
			Version: "1.0",
			TyCs:    []readmodel.TyCRM{{ID: 7, Title: "Uso da loja", Description: "Ao usar a loja você aceita estes termos."}},
		}

		page := TyCsPage(pages.Props[readmodel.TyCsResponse]{Data: &data}, table.Resolve("es-ES"))
		require.NotNil(t, page)
		nodes := parseFragment(t, render(t, page))

		assert.Equal(t, "Términos y Condiciones", httptest.Text(httptest.FindAll(nodes, "h2")[0]))

		var version *html.Node
		for _, p := range httptest.FindAll(nodes, "p") {
			if httptest.Attr(p, "class") == "version" {
				version = p
			}
		}
		require.NotNil(t, version)
		assert.Contains(t, httptest.Text(version), "1.0")
		assert.Equal(t, "Versión: 1.0", httptest.Text(version))

		var blocks []*html.Node
		for _, div := range httptest.FindAll(nodes, "div") {
			if httptest.Attr(div, "class") == "tyc" {
				blocks = append(blocks, div)
			}
		}
		require.Len(t, blocks, 1)
		assert.Equal(t, "7", httptest.Attr(blocks[0], "data-id"))
		assert.Contains(t, httptest.Text(blocks[0]), "Uso da loja")
		assert.Contains(t, httptest.Text(blocks[0]), "Ao usar a loja você aceita estes termos.")
	})
}

func TestRenderIsIdempotent(t *testing.T) {
	table := i18n.MustDefaultTable()
	data := readmodel.DiscountsResponse{homeDiscount}
	page := DiscountsPage(pages.Props[readmodel.DiscountsResponse]{Data: &data}, table.Resolve("pt-BR"))

	assert.Equal(t, render(t, page), render(t, page))
}

func TestDocument(t *testing.T) {
	body := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<p>body</p>")
		return err
	})

	out := render(t, Document("pt-BR", "Loja Gratuita - Descontos", "Ofertas & descontos", body))
	doc, err := html.Parse(strings.NewReader(out))
	require.NoError(t, err)

	htmlNodes := httptest.FindAll(doc, "html")
	require.Len(t, htmlNodes, 1)
	assert.Equal(t, "pt-BR", httptest.Attr(htmlNodes[0], "lang"))
	assert.Equal(t, "Loja Gratuita - Descontos", httptest.Text(httptest.FindAll(doc, "title")[0]))

	var description string
	for _, m := range httptest.FindAll(doc, "meta") {
		if httptest.Attr(m, "name") == "description" {
			description = httptest.Attr(m, "content")
		}
	}
	assert.Equal(t, "Ofertas & descontos", description)
	assert.Equal(t, "body", httptest.Text(httptest.FindAll(doc, "main")[0]))
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
}

func TestDocumentWithoutDescription(t *testing.T) {
	out := render(t, Document("en-US", "Title", "", nil))
	assert.NotContains(t, out, `name="description"`)
	assert.Contains(t, out, "<main></main>")
}

func TestComposeTitle(t *testing.T) {
	tests := []struct {
		title, store, want string
	}{
		{"Descontos", "Loja Gratuita", "Loja Gratuita - Descontos"},
		{"Descontos", "", "Descontos"},
		{"", "Loja Gratuita", "Loja Gratuita"},
		{"  Discounts ", " Free Store ", "Free Store - Discounts"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ComposeTitle(tt.title, tt.store))
	}
}

func TestErrorPage(t *testing.T) {
	nodes := parseFragment(t, render(t, ErrorPage(502, "Algo deu errado", "Tente novamente <mais tarde>")))

	div := httptest.FindAll(nodes, "div")
	require.Len(t, div, 1)
	assert.Equal(t, "502", httptest.Attr(div[0], "data-status"))
	assert.Equal(t, "Algo deu errado", httptest.Text(httptest.FindAll(nodes, "h2")[0]))
	assert.Equal(t, "Tente novamente <mais tarde>", httptest.Text(httptest.FindAll(nodes, "p")[0]))
}
