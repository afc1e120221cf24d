package service

import (
	"context"
	"fmt"

	"housing-service/internal/apperr"
	"housing-service/internal/model"
)

type FavoriteService struct {
	favorites FavoriteStore
	listings  ListingStore
}

func NewFavoriteService(fs FavoriteStore, ls ListingStore) *FavoriteService {
	return &FavoriteService{favorites: fs, listings: ls}
}

// Add bookmarks an accommodation for the calling student. Adding the same
// accommodation twice is not an error: the stored favorite is returned with
// created=false. Concurrent duplicates are settled by the unique
// (student, accommodation) constraint.
func (s *FavoriteService) Add(ctx context.Context, caller model.Caller, listingID int64) (*model.Favorite, bool, error) {
	if err := requireStudent(caller, "add favorites"); err != nil {
		return nil, false, err
	}
	if _, err := liveListing(ctx, s.listings, listingID); err != nil {
		return nil, false, err
	}

	f, created, err := s.favorites.Add(ctx, caller.StudentID, listingID)
	if err != nil {
		return nil, false, fmt.Errorf("FavoriteService.Add: %w", err)
	}
	return f, created, nil
}

func (s *FavoriteService) List(ctx context.Context, caller model.Caller) ([]model.Favorite, error) {
	if err := requireStudent(caller, "list favorites"); err != nil {
		return nil, err
	}
	return s.favorites.ListByStudent(ctx, caller.StudentID)
}

// Remove deletes a favorite owned by the calling student.
func (s *FavoriteService) Remove(ctx context.Context, caller model.Caller, favoriteID int64) error {
	if !caller.Authenticated() {
		return apperr.Unauthenticated("authentication credentials were not provided")
	}
	f, err := s.favorites.GetByID(ctx, favoriteID)
	if err != nil {
		return err
	}
	if !caller.IsStudent() || f.StudentID != caller.StudentID {
		return apperr.PermissionDenied("you can only remove your own favorites")
	}
	return s.favorites.Delete(ctx, favoriteID)
}
