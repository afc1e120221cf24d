package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"housing-service/internal/logger"
	"housing-service/internal/search"
	"housing-service/internal/service"
)

type SearchHandler struct {
	svc *service.SearchService
	log *logger.Logger
}

func NewSearchHandler(svc *service.SearchService, log *logger.Logger) *SearchHandler {
	return &SearchHandler{svc: svc, log: log}
}

func (h *SearchHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/public/accommodations/filter", h.Filter)
	rg.GET("/public/accommodations/autocomplete", h.Autocomplete)
}

// GET /public/accommodations/filter?q=&min_price=&max_price=&min_rooms=&max_rooms=&university_id=&campus_id=&services=&page=
//
// Malformed filter values are ignored, never rejected.
func (h *SearchHandler) Filter(c *gin.Context) {
	criteria := search.ParseCriteria(c.Request.URL.Query())
	page, err := h.svc.Search(c.Request.Context(), criteria)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	h.log.Debug("filter %q matched %d, page %d", c.Request.URL.RawQuery, page.Count, page.Page)
	c.JSON(http.StatusOK, envelope(c, page.Results, page.Count, page.Page, page.PageSize))
}

// GET /public/accommodations/autocomplete?q=&limit=
func (h *SearchHandler) Autocomplete(c *gin.Context) {
	out, err := h.svc.Autocomplete(c.Request.Context(), c.Query("q"), queryInt(c, "limit", 0))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
