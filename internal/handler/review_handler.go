package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"housing-service/internal/logger"
	"housing-service/internal/middleware"
	"housing-service/internal/service"
)

// ReviewHandler ties HTTP requests to the ReviewService.
type ReviewHandler struct {
	reviewSvc *service.ReviewService
	log       *logger.Logger
}

func NewReviewHandler(rs *service.ReviewService, log *logger.Logger) *ReviewHandler {
	return &ReviewHandler{reviewSvc: rs, log: log}
}

// RegisterRoutes registers:
//
//	GET  /accommodations/:id/reviews
//	POST /accommodations/:id/reviews
func (h *ReviewHandler) RegisterRoutes(rg *gin.RouterGroup) {
	grp := rg.Group("/accommodations/:id/reviews")
	{
		grp.GET("", h.GetReviews)
		grp.POST("", middleware.RequireAuth(), h.CreateReview)
	}
}

func (h *ReviewHandler) GetReviews(c *gin.Context) {
	listingID, ok := paramID(c, "id")
	if !ok {
		return
	}
	reviews, err := h.reviewSvc.GetReviews(c.Request.Context(), listingID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (h *ReviewHandler) CreateReview(c *gin.Context) {
	listingID, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req service.ReviewInput
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	rev, err := h.reviewSvc.CreateReview(c.Request.Context(), middleware.CallerFrom(c), listingID, req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, rev)
}
