package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"gin-storefront/internal/handler/api"
	"gin-storefront/internal/handler/middleware"
	"gin-storefront/internal/handler/page"
	"gin-storefront/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	locales *middleware.LocaleResolver,
	pageHandler *page.PageHandler,
	contentHandler *api.ContentHandler,
) {
	setupMiddleware(engine, logger, pageHandler)
	setupRoutes(engine, cfg, locales, pageHandler, contentHandler)
}

func setupMiddleware(engine *gin.Engine, logger *middleware.Logger, pageHandler *page.PageHandler) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery(pageHandler.RenderError))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler(pageHandler.RenderError))
}

func setupRoutes(
	engine *gin.Engine,
	cfg config.Config,
	locales *middleware.LocaleResolver,
	pageHandler *page.PageHandler,
	contentHandler *api.ContentHandler,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(middleware.NewCORSMiddleware(cfg.CORS))
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/discounts/:locale", Handler: contentHandler.GetDiscounts},
			{Method: http.MethodGet, Path: "/tycs/:locale", Handler: contentHandler.GetTyCs},
		})
		// preflight requests need a route for the group middleware to run
		apiGroup.OPTIONS("/*path", func(c *gin.Context) {
			c.Status(http.StatusNoContent)
		})
	}

	localeMw := []gin.HandlerFunc{locales.Middleware()}
	addRoutes(&engine.RouterGroup, []route{
		{Method: http.MethodGet, Path: "/", Handler: pageHandler.Root},
		{Method: http.MethodGet, Path: "/discounts", Handler: pageHandler.Discounts, Mw: localeMw},
		{Method: http.MethodGet, Path: "/:locale/discounts", Handler: pageHandler.Discounts, Mw: localeMw},
		{Method: http.MethodGet, Path: "/tycs", Handler: pageHandler.TyCs, Mw: localeMw},
		{Method: http.MethodGet, Path: "/:locale/tycs", Handler: pageHandler.TyCs, Mw: localeMw},
	})

	engine.NoRoute(func(c *gin.Context) {
		c.Status(http.StatusNotFound)
	})
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
