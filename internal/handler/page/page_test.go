package page_test

import (
	"net/http"
	"testing"

	"gin-storefront/internal/handler/middleware"
	"gin-storefront/internal/handler/page"
	"gin-storefront/internal/i18n"
	"gin-storefront/internal/pkg/config"
	"gin-storefront/internal/pkg/errs"
	"gin-storefront/internal/usecase/pages"
	"gin-storefront/internal/usecase/readmodel"
	"gin-storefront/tests/common/httptest"
	pagesmock "gin-storefront/tests/mock/pages"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PageHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockDiscounts *pagesmock.MockLoader[readmodel.DiscountsResponse]
	mockTyCs      *pagesmock.MockLoader[readmodel.TyCsResponse]
	handler       *page.PageHandler
}

func (s *PageHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockDiscounts = pagesmock.NewMockLoader[readmodel.DiscountsResponse](s.mockCtrl)
	s.mockTyCs = pagesmock.NewMockLoader[readmodel.TyCsResponse](s.mockCtrl)

	locales := middleware.NewLocaleResolver(config.NewTestConfig().Locale)
	s.handler = page.NewPageHandler(s.mockDiscounts, s.mockTyCs, i18n.MustDefaultTable(), locales)

	s.router.Use(middleware.ErrorHandler(s.handler.RenderError))
	s.router.GET("/", s.handler.Root)
	s.router.GET("/discounts", locales.Middleware(), s.handler.Discounts)
	s.router.GET("/:locale/discounts", locales.Middleware(), s.handler.Discounts)
	s.router.GET("/tycs", locales.Middleware(), s.handler.TyCs)
	s.router.GET("/:locale/tycs", locales.Middleware(), s.handler.TyCs)
}

func (s *PageHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPageHandlerSuite(t *testing.T) {
	suite.Run(t, new(PageHandlerTestSuite))
}

// ================================================================================
// TestDiscounts
// ================================================================================

func (s *PageHandlerTestSuite) TestDiscounts() {
	data := readmodel.DiscountsResponse{{
		ID:          1,
		Title:       "35% de desconto na página inicial",
		Image:       "/home_electronics.jpg",
		Description: "Na compra de qualquer produto da linha home tem um desconto de 35% sobre o preço final",
		Expiration:  "30/06/2022",
	}}

	s.Run("success: default locale on bare path", func() {
		s.mockDiscounts.EXPECT().Load(gomock.Any(), "pt-BR").
			Return(pages.Props[readmodel.DiscountsResponse]{Data: &data}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/discounts", nil)

		doc := httptest.AssertHTMLResponse(s.T(), rec, http.StatusOK)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Content-Language": "pt-BR"})
		s.Equal("pt-BR", httptest.Attr(httptest.FindAll(doc, "html")[0], "lang"))
		s.Equal("Loja Gratuita - Descontos", httptest.Text(httptest.FindAll(doc, "title")[0]))
		s.Equal("Descontos", httptest.Text(httptest.FindAll(doc, "h2")[0]))

		imgs := httptest.FindAll(doc, "img")
		s.Require().Len(imgs, 1)
		s.Equal(data[0].Title, httptest.Attr(imgs[0], "alt"))
		s.Contains(httptest.Text(doc), data[0].Description)
		s.Contains(httptest.Text(doc), "30/06/2022")
	})

	s.Run("success: locale prefix selects the bundle", func() {
		s.mockDiscounts.EXPECT().Load(gomock.Any(), "es-ES").
			Return(pages.Props[readmodel.DiscountsResponse]{Data: &data}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/es-ES/discounts", nil)

		doc := httptest.AssertHTMLResponse(s.T(), rec, http.StatusOK)
		s.Equal("Descuentos", httptest.Text(httptest.FindAll(doc, "h2")[0]))
		s.Contains(httptest.Text(httptest.FindAll(doc, "b")[0]), "Vencimiento")
	})

	s.Run("success: null data renders nothing", func() {
		s.mockDiscounts.EXPECT().Load(gomock.Any(), "en-US").
			Return(pages.Props[readmodel.DiscountsResponse]{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/en-US/discounts", nil)

		s.Equal(http.StatusOK, rec.Code)
		s.Empty(rec.Body.String())
	})

	s.Run("error: 502 with localized error page when the api fails", func() {
		apiErr := errs.Mark(errs.New("GET /api/discounts/en-US: status 503"), errs.ErrAPIStatus)
		s.mockDiscounts.EXPECT().Load(gomock.Any(), "en-US").
			Return(pages.Props[readmodel.DiscountsResponse]{}, apiErr).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/en-US/discounts", nil)

		doc := httptest.AssertHTMLResponse(s.T(), rec, http.StatusBadGateway)
		s.Equal("Something went wrong", httptest.Text(httptest.FindAll(doc, "h2")[0]))
		s.Equal("en-US", httptest.Attr(httptest.FindAll(doc, "html")[0], "lang"))
	})

	s.Run("error: 404 for unsupported locale without loading", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/fr-FR/discounts", nil)

		doc := httptest.AssertHTMLResponse(s.T(), rec, http.StatusNotFound)
		s.Equal("Algo deu errado", httptest.Text(httptest.FindAll(doc, "h2")[0]))
	})
}

// ================================================================================
// TestTyCs
// ================================================================================

func (s *PageHandlerTestSuite) TestTyCs() {
	data := readmodel.TyCsResponse{
		Version: "1.0",
		TyCs: []readmodel.TyCRM{
			{ID: 1, Title: "Uso", Description: "Ao usar a loja você aceita estes termos."},
			{ID: 2, Title: "Privacidade", Description: "Seus dados não são compartilhados."},
		},
	}

	s.Run("success: version line and one block per item", func() {
		s.mockTyCs.EXPECT().Load(gomock.Any(), "pt-BR").
			Return(pages.Props[readmodel.TyCsResponse]{Data: &data}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/tycs", nil)

		doc := httptest.AssertHTMLResponse(s.T(), rec, http.StatusOK)
		s.Equal("Termos e Condições", httptest.Text(httptest.FindAll(doc, "h2")[0]))
		s.Contains(httptest.Text(doc), "Versão: 1.0")
		s.Len(httptest.FindAll(doc, "h3"), 2)
	})

	s.Run("success: null data renders nothing", func() {
		s.mockTyCs.EXPECT().Load(gomock.Any(), "es-ES").
			Return(pages.Props[readmodel.TyCsResponse]{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/es-ES/tycs", nil)

		s.Equal(http.StatusOK, rec.Code)
		s.Empty(rec.Body.String())
	})

	s.Run("error: 500 on unexpected failure", func() {
		s.mockTyCs.EXPECT().Load(gomock.Any(), "pt-BR").
			Return(pages.Props[readmodel.TyCsResponse]{}, errs.New("unexpected")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/pt-BR/tycs", nil)

		httptest.AssertHTMLResponse(s.T(), rec, http.StatusInternalServerError)
	})
}

// ================================================================================
// TestRoot
// ================================================================================

func (s *PageHandlerTestSuite) TestRoot() {
	cases := []struct {
		name           string
		acceptLanguage string
		location       string
	}{
		{name: "no header goes to default", acceptLanguage: "", location: "/discounts"},
		{name: "portuguese goes to default", acceptLanguage: "pt-BR,pt;q=0.9", location: "/discounts"},
		{name: "english", acceptLanguage: "en-US,en;q=0.9", location: "/en-US/discounts"},
		{name: "spanish", acceptLanguage: "es", location: "/es-ES/discounts"},
		{name: "unsupported goes to default", acceptLanguage: "ja-JP", location: "/discounts"},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/",
				map[string]string{"Accept-Language": tc.acceptLanguage})

			s.Equal(http.StatusFound, rec.Code)
			httptest.AssertHeaders(s.T(), rec, map[string]string{
				"Location": tc.location,
				"Vary":     "Accept-Language",
			})
		})
	}
}
