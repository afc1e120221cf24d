package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"housing-service/internal/model"
)

// UniversityRepository reads universities, campuses and the precomputed
// distance index. Distance rows are maintained by the route refresh job.
type UniversityRepository struct {
	DB *sqlx.DB
}

func NewUniversityRepository(db *sqlx.DB) *UniversityRepository {
	return &UniversityRepository{DB: db}
}

const campusColumns = `id, university_id, name, address, latitude, longitude`

func (r *UniversityRepository) ListUniversities(ctx context.Context) ([]model.University, error) {
	unis := []model.University{}
	if err := r.DB.SelectContext(ctx, &unis, `SELECT id, name, abbreviation, address FROM universities ORDER BY name ASC`); err != nil {
		return nil, fmt.Errorf("UniversityRepository.ListUniversities: %w", err)
	}
	campuses, err := r.ListCampuses(ctx)
	if err != nil {
		return nil, err
	}

	byUniversity := make(map[int64][]model.Campus)
	for _, c := range campuses {
		byUniversity[c.UniversityID] = append(byUniversity[c.UniversityID], c)
	}
	for i := range unis {
		unis[i].Campuses = byUniversity[unis[i].ID]
		if unis[i].Campuses == nil {
			unis[i].Campuses = []model.Campus{}
		}
	}
	return unis, nil
}

func (r *UniversityRepository) ListCampuses(ctx context.Context) ([]model.Campus, error) {
	out := []model.Campus{}
	if err := r.DB.SelectContext(ctx, &out, `SELECT `+campusColumns+` FROM university_campuses ORDER BY university_id ASC, name ASC`); err != nil {
		return nil, fmt.Errorf("UniversityRepository.ListCampuses: %w", err)
	}
	return out, nil
}

// DistancesFor returns the distance records of one accommodation, nearest first.
func (r *UniversityRepository) DistancesFor(ctx context.Context, listingID int64) ([]model.DistanceRecord, error) {
	out := []model.DistanceRecord{}
	err := r.DB.SelectContext(ctx, &out, `
		SELECT d.id, d.accommodation_id, d.campus_id, c.name AS campus_name, c.university_id,
		       d.distance_km, d.walk_time_minutes, d.bus_time_minutes
		FROM university_distances d
		JOIN university_campuses c ON c.id = d.campus_id
		WHERE d.accommodation_id = $1
		ORDER BY d.distance_km ASC, d.id ASC
	`, listingID)
	if err != nil {
		return nil, fmt.Errorf("UniversityRepository.DistancesFor: %w", err)
	}
	return out, nil
}
