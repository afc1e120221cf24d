package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"housing-service/internal/apperr"
	"housing-service/internal/model"
	"housing-service/internal/search"
)

type ListingRepository struct {
	DB *sqlx.DB
}

func NewListingRepository(db *sqlx.DB) *ListingRepository {
	return &ListingRepository{DB: db}
}

const listingColumns = `id, owner_id, title, description, accommodation_type, address, latitude, longitude,
	monthly_price, rooms, coexistence_rules, status, created_at, updated_at`

// Create inserts l and fills in its generated id and timestamps.
func (r *ListingRepository) Create(ctx context.Context, l *model.Listing) error {
	const q = `
		INSERT INTO accommodations
			(owner_id, title, description, accommodation_type, address, latitude, longitude,
			 monthly_price, rooms, coexistence_rules, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at`
	err := r.DB.QueryRowxContext(ctx, q,
		l.OwnerID, l.Title, l.Description, l.Type, l.Address, l.Latitude, l.Longitude,
		l.MonthlyPrice, l.Rooms, l.CoexistenceRules, string(l.Status),
	).Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return fmt.Errorf("ListingRepository.Create: %w", err)
	}
	return nil
}

func (r *ListingRepository) GetByID(ctx context.Context, id int64) (*model.Listing, error) {
	var l model.Listing
	err := r.DB.GetContext(ctx, &l, `SELECT `+listingColumns+` FROM accommodations WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("accommodation", id)
	}
	if err != nil {
		return nil, fmt.Errorf("ListingRepository.GetByID: %w", err)
	}
	return &l, nil
}

// GetResult loads a listing together with its nested projections.
func (r *ListingRepository) GetResult(ctx context.Context, id int64) (*model.ListingResult, error) {
	q, args := search.DetailQuery(id)
	var row resultRow
	err := r.DB.QueryRowxContext(ctx, q, args...).StructScan(&row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("accommodation", id)
	}
	if err != nil {
		return nil, fmt.Errorf("ListingRepository.GetResult: %w", err)
	}
	res, err := row.result()
	if err != nil {
		return nil, fmt.Errorf("ListingRepository.GetResult: %w", err)
	}
	return &res, nil
}

// Update writes the owner-editable attributes. Status is changed only through
// SetStatus, and a listing deleted since it was read is left untouched.
func (r *ListingRepository) Update(ctx context.Context, l *model.Listing) error {
	const q = `
		UPDATE accommodations SET
			title              = $1,
			description        = $2,
			accommodation_type = $3,
			address            = $4,
			latitude           = $5,
			longitude          = $6,
			monthly_price      = $7,
			rooms              = $8,
			coexistence_rules  = $9,
			updated_at         = now()
		WHERE id = $10 AND status <> 'deleted'
		RETURNING updated_at`
	err := r.DB.QueryRowxContext(ctx, q,
		l.Title, l.Description, l.Type, l.Address, l.Latitude, l.Longitude,
		l.MonthlyPrice, l.Rooms, l.CoexistenceRules, l.ID,
	).Scan(&l.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return r.missed(ctx, l.ID, "accommodation is deleted")
	}
	if err != nil {
		return fmt.Errorf("ListingRepository.Update: %w", err)
	}
	return nil
}

// SetStatus moves a listing from one status to another and touches nothing
// else. The write only lands if the row still holds from, so two concurrent
// transitions cannot both apply.
func (r *ListingRepository) SetStatus(ctx context.Context, id int64, from, to model.Status) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE accommodations SET status = $1, updated_at = now() WHERE id = $2 AND status = $3
	`, string(to), id, string(from))
	if err != nil {
		return fmt.Errorf("ListingRepository.SetStatus: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("ListingRepository.SetStatus: %w", err)
	}
	if n == 0 {
		return r.missed(ctx, id, "accommodation status changed, retry")
	}
	return nil
}

// missed explains a guarded write that matched no row: the listing is either
// gone or was changed underneath the caller.
func (r *ListingRepository) missed(ctx context.Context, id int64, conflict string) error {
	var status string
	err := r.DB.GetContext(ctx, &status, `SELECT status FROM accommodations WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return apperr.NotFound("accommodation", id)
	}
	if err != nil {
		return fmt.Errorf("ListingRepository: reread %d: %w", id, err)
	}
	return apperr.Conflict(conflict)
}

// ListByOwner returns the owner's accommodations in every status except deleted.
func (r *ListingRepository) ListByOwner(ctx context.Context, ownerID int64, limit, offset int) ([]model.Listing, int, error) {
	return r.list(ctx, "owner_id = $1 AND status <> 'deleted'", []interface{}{ownerID}, limit, offset)
}

// ListVisible returns every accommodation that is not deleted.
func (r *ListingRepository) ListVisible(ctx context.Context, limit, offset int) ([]model.Listing, int, error) {
	return r.list(ctx, "status <> 'deleted'", nil, limit, offset)
}

func (r *ListingRepository) list(ctx context.Context, where string, args []interface{}, limit, offset int) ([]model.Listing, int, error) {
	var total int
	if err := r.DB.GetContext(ctx, &total, `SELECT COUNT(*) FROM accommodations WHERE `+where, args...); err != nil {
		return nil, 0, fmt.Errorf("ListingRepository.list count: %w", err)
	}

	n := len(args)
	q := fmt.Sprintf(`SELECT %s FROM accommodations WHERE %s ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d`,
		listingColumns, where, n+1, n+2)
	list := []model.Listing{}
	if err := r.DB.SelectContext(ctx, &list, q, append(args, limit, offset)...); err != nil {
		return nil, 0, fmt.Errorf("ListingRepository.list: %w", err)
	}
	return list, total, nil
}
