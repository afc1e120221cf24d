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

// CatalogRepository reads the seeded service and accommodation-type catalogs
// and manages the accommodation ↔ service associations.
type CatalogRepository struct {
	DB *sqlx.DB
}

func NewCatalogRepository(db *sqlx.DB) *CatalogRepository {
	return &CatalogRepository{DB: db}
}

func (r *CatalogRepository) ListServices(ctx context.Context) ([]model.Service, error) {
	out := []model.Service{}
	if err := r.DB.SelectContext(ctx, &out, `SELECT id, name FROM predefined_services ORDER BY id ASC`); err != nil {
		return nil, fmt.Errorf("CatalogRepository.ListServices: %w", err)
	}
	return out, nil
}

func (r *CatalogRepository) GetService(ctx context.Context, id int64) (*model.Service, error) {
	var s model.Service
	err := r.DB.GetContext(ctx, &s, `SELECT id, name FROM predefined_services WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("service", id)
	}
	if err != nil {
		return nil, fmt.Errorf("CatalogRepository.GetService: %w", err)
	}
	return &s, nil
}

func (r *CatalogRepository) ListTypes(ctx context.Context) ([]model.AccommodationType, error) {
	out := []model.AccommodationType{}
	if err := r.DB.SelectContext(ctx, &out, `SELECT id, name FROM accommodation_types ORDER BY name ASC`); err != nil {
		return nil, fmt.Errorf("CatalogRepository.ListTypes: %w", err)
	}
	return out, nil
}

func (r *CatalogRepository) TypeExists(ctx context.Context, name string) (bool, error) {
	var count int
	if err := r.DB.GetContext(ctx, &count, `SELECT COUNT(1) FROM accommodation_types WHERE name = $1`, name); err != nil {
		return false, fmt.Errorf("CatalogRepository.TypeExists: %w", err)
	}
	return count > 0, nil
}

const associationColumns = `s.id, s.accommodation_id, ps.id AS "service.id", ps.name AS "service.name", s.detail`

// Attach associates serviceID with the accommodation. When the pair already
// exists the stored association is returned with created=false.
func (r *CatalogRepository) Attach(ctx context.Context, listingID, serviceID int64, detail string) (*model.ServiceAssociation, bool, error) {
	var id int64
	err := r.DB.QueryRowxContext(ctx, `
		INSERT INTO accommodation_services (accommodation_id, service_id, detail)
		VALUES ($1, $2, $3)
		ON CONFLICT (accommodation_id, service_id) DO NOTHING
		RETURNING id
	`, listingID, serviceID, detail).Scan(&id)

	created := true
	switch {
	case errors.Is(err, sql.ErrNoRows):
		created = false
	case err != nil:
		return nil, false, fmt.Errorf("CatalogRepository.Attach: %w", err)
	}

	var a model.ServiceAssociation
	err = r.DB.GetContext(ctx, &a, `
		SELECT `+associationColumns+`
		FROM accommodation_services s
		JOIN predefined_services ps ON ps.id = s.service_id
		WHERE s.accommodation_id = $1 AND s.service_id = $2
	`, listingID, serviceID)
	if err != nil {
		return nil, false, fmt.Errorf("CatalogRepository.Attach load: %w", err)
	}
	return &a, created, nil
}

// ListFor returns the accommodation's services in insertion order.
func (r *CatalogRepository) ListFor(ctx context.Context, listingID int64) ([]model.ServiceAssociation, error) {
	out := []model.ServiceAssociation{}
	err := r.DB.SelectContext(ctx, &out, `
		SELECT `+associationColumns+`
		FROM accommodation_services s
		JOIN predefined_services ps ON ps.id = s.service_id
		WHERE s.accommodation_id = $1
		ORDER BY s.id ASC
	`, listingID)
	if err != nil {
		return nil, fmt.Errorf("CatalogRepository.ListFor: %w", err)
	}
	return out, nil
}
