package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"housing-service/internal/logger"
	"housing-service/internal/service"
)

type PointHandler struct {
	svc *service.PointService
	log *logger.Logger
}

func NewPointHandler(svc *service.PointService, log *logger.Logger) *PointHandler {
	return &PointHandler{svc: svc, log: log}
}

func (h *PointHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/point-types", h.Types)
	rg.GET("/points-of-interest", h.Points)
	rg.GET("/accommodations/:id/nearby-places", h.Nearby)
}

func (h *PointHandler) Types(c *gin.Context) {
	out, err := h.svc.Types(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /points-of-interest?type=N. A malformed type is ignored like a search filter.
func (h *PointHandler) Points(c *gin.Context) {
	var typeID *int64
	if id, err := strconv.ParseInt(c.Query("type"), 10, 64); err == nil && id > 0 {
		typeID = &id
	}
	out, err := h.svc.Points(c.Request.Context(), typeID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /accommodations/:id/nearby-places
func (h *PointHandler) Nearby(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	out, err := h.svc.Nearby(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
