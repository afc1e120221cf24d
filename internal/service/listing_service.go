package service

import (
	"context"
	"fmt"

	"housing-service/internal/apperr"
	"housing-service/internal/lifecycle"
	"housing-service/internal/model"
)

// ListingService holds the accommodation rules: ownership, type validation
// and the status lifecycle.
type ListingService struct {
	listings     ListingStore
	catalog      CatalogStore
	universities UniversityStore
	pageSize     int
}

func NewListingService(ls ListingStore, cs CatalogStore, us UniversityStore, pageSize int) *ListingService {
	return &ListingService{listings: ls, catalog: cs, universities: us, pageSize: pageSize}
}

func (s *ListingService) PageSize() int { return s.pageSize }

// Create stores a new accommodation in draft status for the calling owner.
func (s *ListingService) Create(ctx context.Context, caller model.Caller, in model.ListingInput) (*model.Listing, error) {
	if err := requireOwner(caller, "create accommodations"); err != nil {
		return nil, err
	}
	if err := s.checkType(ctx, in.Type); err != nil {
		return nil, err
	}
	if in.MonthlyPrice == nil || in.MonthlyPrice.IsNegative() {
		return nil, apperr.Validation("invalid accommodation", map[string]string{
			"monthly_price": "must be a non-negative amount",
		})
	}

	l := &model.Listing{
		OwnerID:          caller.OwnerID,
		Title:            in.Title,
		Description:      in.Description,
		Type:             in.Type,
		Address:          in.Address,
		Latitude:         in.Latitude,
		Longitude:        in.Longitude,
		MonthlyPrice:     model.Amount{Decimal: in.MonthlyPrice.Round(2)},
		Rooms:            in.Rooms,
		CoexistenceRules: in.CoexistenceRules,
		Status:           model.StatusDraft,
	}
	if err := s.listings.Create(ctx, l); err != nil {
		return nil, fmt.Errorf("ListingService.Create: %w", err)
	}
	return l, nil
}

// Get returns any non-deleted accommodation with its projections.
func (s *ListingService) Get(ctx context.Context, id int64) (*model.ListingResult, error) {
	res, err := s.listings.GetResult(ctx, id)
	if err != nil {
		return nil, err
	}
	if res.Status == model.StatusDeleted {
		return nil, apperr.NotFound("accommodation", id)
	}
	return res, nil
}

// PublicDetail returns a published accommodation; any other status reads as missing.
func (s *ListingService) PublicDetail(ctx context.Context, id int64) (*model.ListingResult, error) {
	res, err := s.listings.GetResult(ctx, id)
	if err != nil {
		return nil, err
	}
	if res.Status != model.StatusPublished {
		return nil, apperr.NotFound("accommodation", id)
	}
	return res, nil
}

// Update applies a partial update. Only the owning owner may edit, and
// deleted accommodations are frozen.
func (s *ListingService) Update(ctx context.Context, caller model.Caller, id int64, patch model.ListingPatch) (*model.Listing, error) {
	if !caller.Authenticated() {
		return nil, apperr.Unauthenticated("authentication credentials were not provided")
	}
	l, err := s.listings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !caller.IsOwner() || caller.OwnerID != l.OwnerID {
		return nil, apperr.PermissionDenied("you do not own this accommodation")
	}
	if l.Status == model.StatusDeleted {
		return nil, apperr.Conflict("accommodation is deleted")
	}
	if patch.Type != nil && *patch.Type != l.Type {
		if err := s.checkType(ctx, *patch.Type); err != nil {
			return nil, err
		}
	}
	if patch.MonthlyPrice != nil && patch.MonthlyPrice.IsNegative() {
		return nil, apperr.Validation("invalid accommodation", map[string]string{
			"monthly_price": "must be a non-negative amount",
		})
	}

	patch.Apply(l)
	if err := s.listings.Update(ctx, l); err != nil {
		return nil, fmt.Errorf("ListingService.Update: %w", err)
	}
	return l, nil
}

// List returns the caller's own accommodations when the caller is an owner,
// otherwise every accommodation that is not deleted.
func (s *ListingService) List(ctx context.Context, caller model.Caller, page int) ([]model.Listing, int, error) {
	off := offset(page, s.pageSize)
	if caller.IsOwner() {
		return s.listings.ListByOwner(ctx, caller.OwnerID, s.pageSize, off)
	}
	return s.listings.ListVisible(ctx, s.pageSize, off)
}

// Transition applies a lifecycle action and returns the confirmation message.
// Only the status field is written.
func (s *ListingService) Transition(ctx context.Context, caller model.Caller, id int64, action lifecycle.Action) (string, error) {
	if !caller.Authenticated() {
		return "", apperr.Unauthenticated("authentication credentials were not provided")
	}
	l, err := s.listings.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if err := lifecycle.Authorize(caller, l.OwnerID); err != nil {
		return "", err
	}
	next, err := lifecycle.Next(l.Status, action)
	if err != nil {
		return "", err
	}
	if next != l.Status {
		if err := s.listings.SetStatus(ctx, id, l.Status, next); err != nil {
			return "", fmt.Errorf("ListingService.Transition: %w", err)
		}
	}
	return lifecycle.Message(action), nil
}

// Distances returns the distance index rows of a non-deleted accommodation.
func (s *ListingService) Distances(ctx context.Context, id int64) ([]model.DistanceRecord, error) {
	if _, err := liveListing(ctx, s.listings, id); err != nil {
		return nil, err
	}
	return s.universities.DistancesFor(ctx, id)
}

func (s *ListingService) checkType(ctx context.Context, name string) error {
	ok, err := s.catalog.TypeExists(ctx, name)
	if err != nil {
		return fmt.Errorf("ListingService.checkType: %w", err)
	}
	if !ok {
		return apperr.Validation("invalid accommodation", map[string]string{
			"accommodation_type": fmt.Sprintf("%q is not a valid choice", name),
		})
	}
	return nil
}
