package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"housing-service/internal/lifecycle"
	"housing-service/internal/logger"
	"housing-service/internal/middleware"
	"housing-service/internal/model"
	"housing-service/internal/search"
	"housing-service/internal/service"
)

// ListingHandler serves the owner-facing accommodation endpoints and the
// public detail view.
type ListingHandler struct {
	svc *service.ListingService
	log *logger.Logger
}

func NewListingHandler(svc *service.ListingService, log *logger.Logger) *ListingHandler {
	return &ListingHandler{svc: svc, log: log}
}

// RegisterRoutes registers:
//
//	GET   /accommodations
//	POST  /accommodations
//	GET   /accommodations/:id
//	PATCH /accommodations/:id
//	GET   /accommodations/:id/distances
//	POST  /accommodations/:id/publish | hide | delete-original
//	GET   /public/accommodations/:id
func (h *ListingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/accommodations", h.List)
	rg.POST("/accommodations", middleware.RequireRole(model.RoleOwner), h.Create)
	rg.GET("/accommodations/:id", h.Get)
	rg.PATCH("/accommodations/:id", middleware.RequireAuth(), h.Update)
	rg.GET("/accommodations/:id/distances", h.Distances)

	rg.POST("/accommodations/:id/publish", middleware.RequireAuth(), h.transition(lifecycle.Publish))
	rg.POST("/accommodations/:id/hide", middleware.RequireAuth(), h.transition(lifecycle.Hide))
	rg.POST("/accommodations/:id/delete-original", middleware.RequireAuth(), h.transition(lifecycle.Delete))

	rg.GET("/public/accommodations/:id", h.PublicDetail)
}

// GET /accommodations?page=N
func (h *ListingHandler) List(c *gin.Context) {
	page := search.ParsePage(c.Query("page"))
	list, total, err := h.svc.List(c.Request.Context(), middleware.CallerFrom(c), page)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, envelope(c, list, total, page, h.svc.PageSize()))
}

// POST /accommodations
func (h *ListingHandler) Create(c *gin.Context) {
	var in model.ListingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		bindError(c, err)
		return
	}
	l, err := h.svc.Create(c.Request.Context(), middleware.CallerFrom(c), in)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, l)
}

// GET /accommodations/:id
func (h *ListingHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	res, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// PATCH /accommodations/:id
func (h *ListingHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var patch model.ListingPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		bindError(c, err)
		return
	}
	l, err := h.svc.Update(c.Request.Context(), middleware.CallerFrom(c), id, patch)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, l)
}

// GET /accommodations/:id/distances
func (h *ListingHandler) Distances(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	out, err := h.svc.Distances(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /public/accommodations/:id
func (h *ListingHandler) PublicDetail(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	res, err := h.svc.PublicDetail(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// transition handles the body-less lifecycle actions.
func (h *ListingHandler) transition(action lifecycle.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}
		msg, err := h.svc.Transition(c.Request.Context(), middleware.CallerFrom(c), id, action)
		if err != nil {
			respondError(c, h.log, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"detail": msg})
	}
}
