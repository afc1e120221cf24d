package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"housing-service/internal/apperr"
	"housing-service/internal/model"
)

const uniqueViolation = "23505"

type ReviewRepository struct {
	DB *sqlx.DB
}

func NewReviewRepository(db *sqlx.DB) *ReviewRepository {
	return &ReviewRepository{DB: db}
}

// Insert saves a new review and fills in its generated id and review_date.
// A student can review an accommodation once.
func (r *ReviewRepository) Insert(ctx context.Context, review *model.Review) error {
	const insertQuery = `
		INSERT INTO reviews (accommodation_id, student_id, rating, comment, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, review_date
	`
	err := r.DB.QueryRowxContext(ctx, insertQuery,
		review.ListingID,
		review.StudentID,
		review.Rating,
		review.Comment,
		review.Status,
	).Scan(&review.ID, &review.CreatedAt)
	if isUniqueViolation(err) {
		return apperr.Conflict("you have already reviewed this accommodation")
	}
	if err != nil {
		return fmt.Errorf("ReviewRepository.Insert: %w", err)
	}
	return nil
}

// FindByListing returns the visible reviews of an accommodation, newest first.
func (r *ReviewRepository) FindByListing(ctx context.Context, listingID int64) ([]model.Review, error) {
	const selectQuery = `
		SELECT id, accommodation_id, student_id, rating, comment, status, review_date
		FROM reviews
		WHERE accommodation_id = $1 AND status = $2
		ORDER BY review_date DESC, id DESC
	`
	reviews := []model.Review{}
	if err := r.DB.SelectContext(ctx, &reviews, selectQuery, listingID, model.ReviewVisible); err != nil {
		return nil, fmt.Errorf("ReviewRepository.FindByListing: %w", err)
	}
	return reviews, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
