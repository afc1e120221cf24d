package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"housing-service/internal/logger"
	"housing-service/internal/middleware"
	"housing-service/internal/service"
)

type AddFavoriteRequest struct {
	ListingID int64 `json:"accommodation" binding:"required,gt=0"`
}

type FavoriteHandler struct {
	svc *service.FavoriteService
	log *logger.Logger
}

func NewFavoriteHandler(svc *service.FavoriteService, log *logger.Logger) *FavoriteHandler {
	return &FavoriteHandler{svc: svc, log: log}
}

func (h *FavoriteHandler) RegisterRoutes(rg *gin.RouterGroup) {
	grp := rg.Group("/favorites", middleware.RequireAuth())
	{
		grp.GET("", h.List)
		grp.POST("", h.Add)
		grp.DELETE("/:id", h.Remove)
	}
}

func (h *FavoriteHandler) List(c *gin.Context) {
	out, err := h.svc.List(c.Request.Context(), middleware.CallerFrom(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// Add answers 201 with the new favorite, or 200 with the existing one. Both
// carry the same favorite body.
func (h *FavoriteHandler) Add(c *gin.Context) {
	var req AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	f, created, err := h.svc.Add(c.Request.Context(), middleware.CallerFrom(c), req.ListingID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, f)
}

func (h *FavoriteHandler) Remove(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Remove(c.Request.Context(), middleware.CallerFrom(c), id); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
