package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"housing-service/internal/apperr"
	"housing-service/internal/model"
)

type FavoriteRepository struct {
	DB *sqlx.DB
}

func NewFavoriteRepository(db *sqlx.DB) *FavoriteRepository {
	return &FavoriteRepository{DB: db}
}

const favoriteColumns = `id, student_id, accommodation_id, date_added`

// Add stores the (student, accommodation) pair. Adding an existing pair
// returns the stored favorite with created=false.
func (r *FavoriteRepository) Add(ctx context.Context, studentID, listingID int64) (*model.Favorite, bool, error) {
	var f model.Favorite
	err := r.DB.GetContext(ctx, &f, `
		INSERT INTO favorites (student_id, accommodation_id)
		VALUES ($1, $2)
		ON CONFLICT (student_id, accommodation_id) DO NOTHING
		RETURNING `+favoriteColumns,
		studentID, listingID)
	if err == nil {
		return &f, true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, false, fmt.Errorf("FavoriteRepository.Add: %w", err)
	}

	err = r.DB.GetContext(ctx, &f, `
		SELECT `+favoriteColumns+` FROM favorites
		WHERE student_id = $1 AND accommodation_id = $2
	`, studentID, listingID)
	if err != nil {
		return nil, false, fmt.Errorf("FavoriteRepository.Add existing: %w", err)
	}
	return &f, false, nil
}

func (r *FavoriteRepository) GetByID(ctx context.Context, id int64) (*model.Favorite, error) {
	var f model.Favorite
	err := r.DB.GetContext(ctx, &f, `SELECT `+favoriteColumns+` FROM favorites WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("favorite", id)
	}
	if err != nil {
		return nil, fmt.Errorf("FavoriteRepository.GetByID: %w", err)
	}
	return &f, nil
}

// ListByStudent returns the student's favorites, most recent first.
func (r *FavoriteRepository) ListByStudent(ctx context.Context, studentID int64) ([]model.Favorite, error) {
	out := []model.Favorite{}
	err := r.DB.SelectContext(ctx, &out, `
		SELECT `+favoriteColumns+` FROM favorites
		WHERE student_id = $1
		ORDER BY date_added DESC, id DESC
	`, studentID)
	if err != nil {
		return nil, fmt.Errorf("FavoriteRepository.ListByStudent: %w", err)
	}
	return out, nil
}

func (r *FavoriteRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM favorites WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("FavoriteRepository.Delete: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("FavoriteRepository.Delete rows: %w", err)
	}
	if n == 0 {
		return apperr.NotFound("favorite", id)
	}
	return nil
}
