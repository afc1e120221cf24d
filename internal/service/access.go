package service

import (
	"context"

	"housing-service/internal/apperr"
	"housing-service/internal/model"
	"housing-service/internal/search"
)

func requireOwner(caller model.Caller, action string) error {
	if !caller.Authenticated() {
		return apperr.Unauthenticated("authentication credentials were not provided")
	}
	if !caller.IsOwner() {
		return apperr.PermissionDenied("only owners can " + action)
	}
	return nil
}

func requireStudent(caller model.Caller, action string) error {
	if !caller.Authenticated() {
		return apperr.Unauthenticated("authentication credentials were not provided")
	}
	if !caller.IsStudent() {
		return apperr.PermissionDenied("only students can " + action)
	}
	return nil
}

// liveListing loads a listing and hides deleted ones behind NotFound.
func liveListing(ctx context.Context, store ListingStore, id int64) (*model.Listing, error) {
	l, err := store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l.Status == model.StatusDeleted {
		return nil, apperr.NotFound("accommodation", id)
	}
	return l, nil
}

func offset(page, size int) int {
	switch {
	case page < 1:
		page = 1
	case page > search.MaxPage:
		page = search.MaxPage
	}
	return (page - 1) * size
}
