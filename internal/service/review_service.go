package service

import (
	"context"
	"fmt"

	"housing-service/internal/apperr"
	"housing-service/internal/model"
)

// ReviewInput is the body of a new review.
type ReviewInput struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// ReviewService contains business logic for reviews.
type ReviewService struct {
	reviews  ReviewStore
	listings ListingStore
}

func NewReviewService(rs ReviewStore, ls ListingStore) *ReviewService {
	return &ReviewService{reviews: rs, listings: ls}
}

// CreateReview checks that the accommodation exists and stores the calling
// student's review. A student reviews an accommodation at most once.
func (s *ReviewService) CreateReview(ctx context.Context, caller model.Caller, listingID int64, in ReviewInput) (*model.Review, error) {
	if err := requireStudent(caller, "review accommodations"); err != nil {
		return nil, err
	}
	if in.Rating < 1 || in.Rating > 5 {
		return nil, apperr.Validation("invalid review", map[string]string{"rating": "must be between 1 and 5"})
	}
	if _, err := liveListing(ctx, s.listings, listingID); err != nil {
		return nil, err
	}

	rev := &model.Review{
		ListingID: listingID,
		StudentID: caller.StudentID,
		Rating:    in.Rating,
		Comment:   in.Comment,
		Status:    model.ReviewVisible,
	}
	if err := s.reviews.Insert(ctx, rev); err != nil {
		return nil, fmt.Errorf("ReviewService.CreateReview: %w", err)
	}
	return rev, nil
}

// GetReviews returns the visible reviews of an accommodation, newest first.
func (s *ReviewService) GetReviews(ctx context.Context, listingID int64) ([]model.Review, error) {
	if _, err := liveListing(ctx, s.listings, listingID); err != nil {
		return nil, err
	}
	reviews, err := s.reviews.FindByListing(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("ReviewService.GetReviews: %w", err)
	}
	return reviews, nil
}
