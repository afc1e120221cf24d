package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"housing-service/internal/logger"
	"housing-service/internal/service"
)

// RouteHandler exposes the stored route geometry between an accommodation and a campus.
type RouteHandler struct {
	svc *service.RouteService
	log *logger.Logger
}

func NewRouteHandler(svc *service.RouteService, log *logger.Logger) *RouteHandler {
	return &RouteHandler{svc: svc, log: log}
}

func (h *RouteHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/public/accommodations/:id/routes/:campus_id", h.Routes)
}

func (h *RouteHandler) Routes(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	campusID, ok := paramID(c, "campus_id")
	if !ok {
		return
	}
	routes, err := h.svc.Routes(c.Request.Context(), id, campusID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, routes)
}
