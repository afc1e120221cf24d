package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"housing-service/internal/model"
)

// PointRepository reads points of interest and the accommodation ↔ point
// proximity rows. Both are maintained by the admin tooling.
type PointRepository struct {
	DB *sqlx.DB
}

func NewPointRepository(db *sqlx.DB) *PointRepository {
	return &PointRepository{DB: db}
}

func (r *PointRepository) ListTypes(ctx context.Context) ([]model.PointType, error) {
	out := []model.PointType{}
	if err := r.DB.SelectContext(ctx, &out, `SELECT id, name FROM point_types ORDER BY name ASC`); err != nil {
		return nil, fmt.Errorf("PointRepository.ListTypes: %w", err)
	}
	return out, nil
}

// ListPoints returns every point of interest, or only those of one type when
// typeID is set.
func (r *PointRepository) ListPoints(ctx context.Context, typeID *int64) ([]model.PointOfInterest, error) {
	q := `
		SELECT p.id, p.name, p.point_type, t.name AS type_name, p.address, p.latitude, p.longitude
		FROM points_of_interest p
		LEFT JOIN point_types t ON t.id = p.point_type`
	var args []interface{}
	if typeID != nil {
		q += ` WHERE p.point_type = $1`
		args = append(args, *typeID)
	}
	q += ` ORDER BY p.name ASC, p.id ASC`

	out := []model.PointOfInterest{}
	if err := r.DB.SelectContext(ctx, &out, q, args...); err != nil {
		return nil, fmt.Errorf("PointRepository.ListPoints: %w", err)
	}
	return out, nil
}

// NearbyFor returns the points close to one accommodation, nearest first.
// Rows without a measured distance sort last.
func (r *PointRepository) NearbyFor(ctx context.Context, listingID int64) ([]model.NearbyPlace, error) {
	out := []model.NearbyPlace{}
	err := r.DB.SelectContext(ctx, &out, `
		SELECT n.id, n.accommodation_id, p.id AS point_id, p.name AS point_name, t.name AS type_name,
		       n.distance_km, n.walking_time_min
		FROM accommodation_nearby_places n
		JOIN points_of_interest p ON p.id = n.point_of_interest
		LEFT JOIN point_types t ON t.id = p.point_type
		WHERE n.accommodation_id = $1
		ORDER BY n.distance_km ASC NULLS LAST, n.id ASC
	`, listingID)
	if err != nil {
		return nil, fmt.Errorf("PointRepository.NearbyFor: %w", err)
	}
	return out, nil
}
