package httperr

import (
	"net/http"

	"gin-storefront/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// StatusOf maps an error that reached the error path to an HTTP status.
// Content API failures are upstream failures (502); unknown errors are 500.
func StatusOf(err error) int {
	switch {
	case err == nil:
		return http.StatusInternalServerError
	case errs.Is(err, errs.ErrUnsupportedLocale), errs.Is(err, errs.ErrContentNotFound):
		return http.StatusNotFound
	case errs.Is(err, errs.ErrAPIRequest), errs.Is(err, errs.ErrAPIStatus), errs.Is(err, errs.ErrAPIDecode):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
