package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"housing-service/internal/model"
	"housing-service/internal/search"
)

type SearchRepository struct {
	DB *sqlx.DB
}

func NewSearchRepository(db *sqlx.DB) *SearchRepository {
	return &SearchRepository{DB: db}
}

// Search runs the count and page statements of q in one read-only transaction
// so that the total and the page agree.
func (r *SearchRepository) Search(ctx context.Context, q search.Query) ([]model.ListingResult, int, error) {
	tx, err := r.DB.BeginTxx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return nil, 0, fmt.Errorf("SearchRepository.Search begin: %w", err)
	}
	defer tx.Rollback()

	var total int
	if err := tx.GetContext(ctx, &total, q.CountSQL, q.CountArgs...); err != nil {
		return nil, 0, fmt.Errorf("SearchRepository.Search count: %w", err)
	}

	results := []model.ListingResult{}
	if total > 0 {
		rows, err := tx.QueryxContext(ctx, q.PageSQL, q.PageArgs...)
		if err != nil {
			return nil, 0, fmt.Errorf("SearchRepository.Search page: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var row resultRow
			if err := rows.StructScan(&row); err != nil {
				return nil, 0, fmt.Errorf("SearchRepository.Search scan: %w", err)
			}
			res, err := row.result()
			if err != nil {
				return nil, 0, fmt.Errorf("SearchRepository.Search: %w", err)
			}
			results = append(results, res)
		}
		if err := rows.Err(); err != nil {
			return nil, 0, fmt.Errorf("SearchRepository.Search rows: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, 0, fmt.Errorf("SearchRepository.Search commit: %w", err)
	}
	return results, total, nil
}

func (r *SearchRepository) Autocomplete(ctx context.Context, term string, limit int) ([]model.Suggestion, error) {
	q, args := search.AutocompleteQuery(term, limit)
	out := []model.Suggestion{}
	if err := r.DB.SelectContext(ctx, &out, q, args...); err != nil {
		return nil, fmt.Errorf("SearchRepository.Autocomplete: %w", err)
	}
	return out, nil
}
