package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"housing-service/internal/apperr"
	"housing-service/internal/model"
)

const routesCollection = "routes"

// RouteRepository reads route geometry stored in MongoDB next to the
// distance index. Documents are written by the route refresh job.
type RouteRepository struct {
	DB *mongo.Database
}

func NewRouteRepository(client *mongo.Client, dbName string) *RouteRepository {
	return &RouteRepository{DB: client.Database(dbName)}
}

func (r *RouteRepository) collection() *mongo.Collection {
	return r.DB.Collection(routesCollection)
}

// EnsureIndexes creates the unique (accommodation, campus, profile) index.
func (r *RouteRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "accommodation_id", Value: 1},
			{Key: "campus_id", Value: 1},
			{Key: "profile", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("RouteRepository.EnsureIndexes: %w", err)
	}
	return nil
}

// Find returns the routes between an accommodation and a campus, one per profile.
func (r *RouteRepository) Find(ctx context.Context, listingID, campusID int64) ([]model.Route, error) {
	filter := bson.D{
		{Key: "accommodation_id", Value: listingID},
		{Key: "campus_id", Value: campusID},
	}
	cur, err := r.collection().Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "profile", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("RouteRepository.Find: %w", err)
	}
	defer cur.Close(ctx)

	routes := []model.Route{}
	if err := cur.All(ctx, &routes); err != nil {
		return nil, fmt.Errorf("RouteRepository.Find decode: %w", err)
	}
	if len(routes) == 0 {
		return nil, apperr.NotFound("route", listingID)
	}
	return routes, nil
}
