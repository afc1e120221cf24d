package service

import (
	"context"

	"housing-service/internal/apperr"
	"housing-service/internal/model"
)

// RouteService serves the stored route geometry of published accommodations.
type RouteService struct {
	routes   RouteStore
	listings ListingStore
}

// NewRouteService accepts a nil store when no route database is configured.
func NewRouteService(rs RouteStore, ls ListingStore) *RouteService {
	return &RouteService{routes: rs, listings: ls}
}

func (s *RouteService) Routes(ctx context.Context, listingID, campusID int64) ([]model.Route, error) {
	if s.routes == nil {
		return nil, &apperr.Error{Kind: apperr.KindNotFound, Detail: "route geometry is not available"}
	}
	l, err := s.listings.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if l.Status != model.StatusPublished {
		return nil, apperr.NotFound("accommodation", listingID)
	}
	return s.routes.Find(ctx, listingID, campusID)
}
