package httptest

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

// PerformRequest executes a body-less request against router with optional headers.
func PerformRequest(t *testing.T, router *gin.Engine, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
