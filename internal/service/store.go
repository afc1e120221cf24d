package service

import (
	"context"

	"housing-service/internal/model"
	"housing-service/internal/search"
)

//go:generate mockgen -destination=../mocks/mock_store.go -package=mocks housing-service/internal/service ListingStore,CatalogStore,UniversityStore,SearchStore,FavoriteStore,ReviewStore,PointStore,RouteStore

// ListingStore persists accommodations.
type ListingStore interface {
	Create(ctx context.Context, l *model.Listing) error
	GetByID(ctx context.Context, id int64) (*model.Listing, error)
	GetResult(ctx context.Context, id int64) (*model.ListingResult, error)
	Update(ctx context.Context, l *model.Listing) error
	SetStatus(ctx context.Context, id int64, from, to model.Status) error
	ListByOwner(ctx context.Context, ownerID int64, limit, offset int) ([]model.Listing, int, error)
	ListVisible(ctx context.Context, limit, offset int) ([]model.Listing, int, error)
}

type CatalogStore interface {
	ListServices(ctx context.Context) ([]model.Service, error)
	GetService(ctx context.Context, id int64) (*model.Service, error)
	ListTypes(ctx context.Context) ([]model.AccommodationType, error)
	TypeExists(ctx context.Context, name string) (bool, error)
	Attach(ctx context.Context, listingID, serviceID int64, detail string) (*model.ServiceAssociation, bool, error)
	ListFor(ctx context.Context, listingID int64) ([]model.ServiceAssociation, error)
}

type UniversityStore interface {
	ListUniversities(ctx context.Context) ([]model.University, error)
	ListCampuses(ctx context.Context) ([]model.Campus, error)
	DistancesFor(ctx context.Context, listingID int64) ([]model.DistanceRecord, error)
}

type SearchStore interface {
	Search(ctx context.Context, q search.Query) ([]model.ListingResult, int, error)
	Autocomplete(ctx context.Context, term string, limit int) ([]model.Suggestion, error)
}

type FavoriteStore interface {
	Add(ctx context.Context, studentID, listingID int64) (*model.Favorite, bool, error)
	GetByID(ctx context.Context, id int64) (*model.Favorite, error)
	ListByStudent(ctx context.Context, studentID int64) ([]model.Favorite, error)
	Delete(ctx context.Context, id int64) error
}

type ReviewStore interface {
	Insert(ctx context.Context, review *model.Review) error
	FindByListing(ctx context.Context, listingID int64) ([]model.Review, error)
}

type PointStore interface {
	ListTypes(ctx context.Context) ([]model.PointType, error)
	ListPoints(ctx context.Context, typeID *int64) ([]model.PointOfInterest, error)
	NearbyFor(ctx context.Context, listingID int64) ([]model.NearbyPlace, error)
}

// RouteStore reads route geometry. It is optional: a nil store disables the route endpoints.
type RouteStore interface {
	Find(ctx context.Context, listingID, campusID int64) ([]model.Route, error)
}
