package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"gin-storefront/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// PageErrorRenderer writes the HTML error page for a failed page request.
type PageErrorRenderer func(c *gin.Context, status int)

// ErrorHandler turns errors recorded with c.Error into a response when the handler
// did not write one. Public httperr responses are sent as JSON; other errors on
// page routes render the HTML error page.
func ErrorHandler(renderPage PageErrorRenderer) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		// Search backward through the error stack
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]

			if err.IsType(gin.ErrorTypePublic) {
				// Public: Meta ⇒ Return as is
				if resp, ok := err.Meta.(httperr.Response); ok {
					c.JSON(resp.Status, resp)
					return
				}
			}
		}
		if last := c.Errors.Last(); last != nil {
			status := httperr.StatusOf(last.Err)
			if renderPage != nil && !isAPIRequest(c) {
				renderPage(c, status)
				return
			}
			c.JSON(status, gin.H{"error": gin.H{"message": http.StatusText(status)}})
			return
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Internal server error"}})
	}
}

func CustomRecovery(renderPage PageErrorRenderer) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic", "error", err, "path", c.Request.URL.Path)

				if renderPage != nil && !isAPIRequest(c) && !c.Writer.Written() {
					renderPage(c, http.StatusInternalServerError)
					c.Abort()
					return
				}

				resp := httperr.Response{Status: http.StatusInternalServerError}
				resp.Error.Message = "Internal server error"

				c.JSON(http.StatusInternalServerError, resp)
				c.Abort()
			}
		}()
		c.Next()
	}
}

func isAPIRequest(c *gin.Context) bool {
	path := c.Request.URL.Path
	return path == "/api" || strings.HasPrefix(path, "/api/")
}
