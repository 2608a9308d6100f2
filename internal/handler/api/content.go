package api

import (
	"net/http"

	resdto "gin-storefront/internal/handler/dto/response"
	"gin-storefront/internal/handler/httperr"
	"gin-storefront/internal/pkg/errs"
	"gin-storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ContentHandler struct {
	q queries.ContentQueries
}

func NewContentHandler(q queries.ContentQueries) *ContentHandler {
	return &ContentHandler{q: q}
}

// @Summary List discounts
// @Description Discounts for a locale, in display order. Unknown locales get the default locale's discounts.
// @Tags content
// @Produce json
// @Param locale path string true "Locale, e.g. pt-BR"
// @Success 200 {array} resdto.DiscountResponse
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/discounts/{locale} [get]
func (h *ContentHandler) GetDiscounts(c *gin.Context) {
	items, err := h.q.GetDiscounts(c.Request.Context(), c.Param("locale"))
	if err != nil {
		abortWithContentError(c, err)
		return
	}
	res, err := resdto.FromDiscounts(items)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get terms and conditions
// @Description Terms and conditions for a locale. Unknown locales get the default locale's terms.
// @Tags content
// @Produce json
// @Param locale path string true "Locale, e.g. pt-BR"
// @Success 200 {object} resdto.TyCsResponse
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/tycs/{locale} [get]
func (h *ContentHandler) GetTyCs(c *gin.Context) {
	terms, err := h.q.GetTyCs(c.Request.Context(), c.Param("locale"))
	if err != nil {
		abortWithContentError(c, err)
		return
	}
	res, err := resdto.FromTyCs(terms)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

func abortWithContentError(c *gin.Context, err error) {
	if errs.Is(err, errs.ErrContentNotFound) {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Content not found", nil)
		return
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}
