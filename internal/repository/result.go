package repository

import (
	"fmt"

	"github.com/jmoiron/sqlx/types"
	"github.com/shopspring/decimal"

	"housing-service/internal/model"
)

// resultRow mirrors the projection produced by the search package.
type resultRow struct {
	model.Listing
	MinDistance   decimal.NullDecimal `db:"min_distance"`
	Photos        types.JSONText      `db:"photos"`
	Services      types.JSONText      `db:"services"`
	Distances     types.JSONText      `db:"university_distances"`
	NearbyPlaces  types.JSONText      `db:"nearby_places"`
	ReviewCount   int                 `db:"review_count"`
	AverageRating model.Amount        `db:"average_rating"`
	FavoriteCount int                 `db:"favorite_count"`
}

func (row resultRow) result() (model.ListingResult, error) {
	res := model.ListingResult{
		Listing:             row.Listing,
		Photos:              []model.Photo{},
		Services:            []model.ServiceAssociation{},
		UniversityDistances: []model.DistanceRecord{},
		NearbyPlaces:        []model.NearbyPlace{},
		ReviewCount:         row.ReviewCount,
		AverageRating:       row.AverageRating,
		FavoriteCount:       row.FavoriteCount,
	}
	if row.MinDistance.Valid {
		d := model.Amount{Decimal: row.MinDistance.Decimal}
		res.MinDistanceKm = &d
	}
	if err := unmarshalNested(row.Photos, &res.Photos); err != nil {
		return res, fmt.Errorf("photos of accommodation %d: %w", row.ID, err)
	}
	if err := unmarshalNested(row.Services, &res.Services); err != nil {
		return res, fmt.Errorf("services of accommodation %d: %w", row.ID, err)
	}
	if err := unmarshalNested(row.Distances, &res.UniversityDistances); err != nil {
		return res, fmt.Errorf("distances of accommodation %d: %w", row.ID, err)
	}
	if err := unmarshalNested(row.NearbyPlaces, &res.NearbyPlaces); err != nil {
		return res, fmt.Errorf("nearby places of accommodation %d: %w", row.ID, err)
	}
	return res, nil
}

func unmarshalNested(raw types.JSONText, dst interface{}) error {
	if len(raw) == 0 {
		return nil
	}
	return raw.Unmarshal(dst)
}
