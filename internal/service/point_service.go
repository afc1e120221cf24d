package service

import (
	"context"

	"housing-service/internal/model"
)

// PointService serves points of interest and what is near an accommodation.
type PointService struct {
	points   PointStore
	listings ListingStore
}

func NewPointService(ps PointStore, ls ListingStore) *PointService {
	return &PointService{points: ps, listings: ls}
}

func (s *PointService) Types(ctx context.Context) ([]model.PointType, error) {
	return s.points.ListTypes(ctx)
}

// Points lists points of interest, optionally of a single type.
func (s *PointService) Points(ctx context.Context, typeID *int64) ([]model.PointOfInterest, error) {
	return s.points.ListPoints(ctx, typeID)
}

// Nearby returns the points of interest recorded near a non-deleted accommodation.
func (s *PointService) Nearby(ctx context.Context, listingID int64) ([]model.NearbyPlace, error) {
	if _, err := liveListing(ctx, s.listings, listingID); err != nil {
		return nil, err
	}
	return s.points.NearbyFor(ctx, listingID)
}
