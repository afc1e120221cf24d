package service

import (
	"context"
	"fmt"

	"housing-service/internal/apperr"
	"housing-service/internal/model"
)

// CatalogService serves the reference data and the accommodation ↔ service links.
type CatalogService struct {
	catalog      CatalogStore
	universities UniversityStore
	listings     ListingStore
}

func NewCatalogService(cs CatalogStore, us UniversityStore, ls ListingStore) *CatalogService {
	return &CatalogService{catalog: cs, universities: us, listings: ls}
}

func (s *CatalogService) Services(ctx context.Context) ([]model.Service, error) {
	return s.catalog.ListServices(ctx)
}

func (s *CatalogService) Types(ctx context.Context) ([]model.AccommodationType, error) {
	return s.catalog.ListTypes(ctx)
}

func (s *CatalogService) Universities(ctx context.Context) ([]model.University, error) {
	return s.universities.ListUniversities(ctx)
}

func (s *CatalogService) Campuses(ctx context.Context) ([]model.Campus, error) {
	return s.universities.ListCampuses(ctx)
}

// Attach links a catalog service to the caller's accommodation. Attaching an
// already linked service returns the stored link with created=false.
func (s *CatalogService) Attach(ctx context.Context, caller model.Caller, listingID, serviceID int64, detail string) (*model.ServiceAssociation, bool, error) {
	if !caller.Authenticated() {
		return nil, false, apperr.Unauthenticated("authentication credentials were not provided")
	}
	l, err := liveListing(ctx, s.listings, listingID)
	if err != nil {
		return nil, false, err
	}
	if !caller.IsOwner() || caller.OwnerID != l.OwnerID {
		return nil, false, apperr.PermissionDenied("you do not own this accommodation")
	}
	if _, err := s.catalog.GetService(ctx, serviceID); err != nil {
		return nil, false, err
	}

	a, created, err := s.catalog.Attach(ctx, listingID, serviceID, detail)
	if err != nil {
		return nil, false, fmt.Errorf("CatalogService.Attach: %w", err)
	}
	return a, created, nil
}

// ListFor returns the services of an accommodation in the order they were attached.
func (s *CatalogService) ListFor(ctx context.Context, listingID int64) ([]model.ServiceAssociation, error) {
	if _, err := liveListing(ctx, s.listings, listingID); err != nil {
		return nil, err
	}
	return s.catalog.ListFor(ctx, listingID)
}
