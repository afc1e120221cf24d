package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"housing-service/internal/logger"
	"housing-service/internal/middleware"
	"housing-service/internal/service"
)

// AttachServiceRequest is the body of POST /accommodations/:id/services.
type AttachServiceRequest struct {
	ServiceID int64  `json:"service_id" binding:"required,gt=0"`
	Detail    string `json:"detail" binding:"max=255"`
}

type CatalogHandler struct {
	svc *service.CatalogService
	log *logger.Logger
}

func NewCatalogHandler(svc *service.CatalogService, log *logger.Logger) *CatalogHandler {
	return &CatalogHandler{svc: svc, log: log}
}

func (h *CatalogHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/universities", h.Universities)
	rg.GET("/university-campuses", h.Campuses)
	rg.GET("/predefined-services", h.Services)
	rg.GET("/accommodation-types", h.Types)

	rg.GET("/accommodations/:id/services", h.ListFor)
	rg.POST("/accommodations/:id/services", middleware.RequireAuth(), h.Attach)
}

func (h *CatalogHandler) Universities(c *gin.Context) {
	out, err := h.svc.Universities(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) Campuses(c *gin.Context) {
	out, err := h.svc.Campuses(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) Services(c *gin.Context) {
	out, err := h.svc.Services(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) Types(c *gin.Context) {
	out, err := h.svc.Types(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /accommodations/:id/services
func (h *CatalogHandler) ListFor(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	out, err := h.svc.ListFor(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// POST /accommodations/:id/services answers 201 for a new link and 200 when
// the service was already attached.
func (h *CatalogHandler) Attach(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req AttachServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	a, created, err := h.svc.Attach(c.Request.Context(), middleware.CallerFrom(c), id, req.ServiceID, req.Detail)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, a)
}
