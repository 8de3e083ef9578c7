package services

import (
	"context"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dishcovery/api-go/models"
)

// RestaurantStore is the read-only query surface the search pipeline needs
// from the backing store.
type RestaurantStore interface {
	// FindByCuisine returns every restaurant whose cuisines field contains the
	// given substring, case-insensitively. The substring is matched as literal
	// text. An empty result is an empty slice, not an error.
	FindByCuisine(ctx context.Context, cuisine string) ([]models.Restaurant, error)

	// FindByID looks up a restaurant by its external id. A miss is ErrNotFound.
	FindByID(ctx context.Context, id string) (*models.Restaurant, error)
}

// MongoRestaurantStore queries the nested search-result documents: each
// stored document wraps many restaurant entries, so every query unwinds the
// nesting first and works on one restaurant per row.
type MongoRestaurantStore struct {
	coll *mongo.Collection
}

func NewMongoRestaurantStore(coll *mongo.Collection) *MongoRestaurantStore {
	return &MongoRestaurantStore{coll: coll}
}

func (s *MongoRestaurantStore) FindByCuisine(ctx context.Context, cuisine string) ([]models.Restaurant, error) {
	// QuoteMeta keeps caller input literal; an unescaped pattern here would
	// hand untrusted text straight to the regex engine.
	pattern := regexp.QuoteMeta(cuisine)

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$unwind", Value: "$restaurants"}},
		bson.D{{Key: "$match", Value: bson.D{
			{Key: "restaurants.restaurant.cuisines", Value: primitive.Regex{Pattern: pattern, Options: "i"}},
		}}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "id", Value: "$restaurants.restaurant.id"},
			{Key: "name", Value: "$restaurants.restaurant.name"},
			{Key: "cuisines", Value: "$restaurants.restaurant.cuisines"},
			{Key: "location", Value: "$restaurants.restaurant.location"},
			{Key: "user_rating", Value: "$restaurants.restaurant.user_rating"},
			{Key: "featured_image", Value: "$restaurants.restaurant.featured_image"},
		}}},
	}

	cursor, err := s.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("%w: aggregate restaurants by cuisine: %v", ErrUpstreamUnavailable, err)
	}

	results := []models.Restaurant{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("%w: decode restaurants: %v", ErrUpstreamUnavailable, err)
	}
	return results, nil
}

func (s *MongoRestaurantStore) FindByID(ctx context.Context, id string) (*models.Restaurant, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$unwind", Value: "$restaurants"}},
		bson.D{{Key: "$match", Value: bson.D{
			{Key: "restaurants.restaurant.id", Value: id},
		}}},
		bson.D{{Key: "$replaceRoot", Value: bson.D{
			{Key: "newRoot", Value: "$restaurants.restaurant"},
		}}},
		bson.D{{Key: "$limit", Value: 1}},
	}

	cursor, err := s.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("%w: aggregate restaurant by id: %v", ErrUpstreamUnavailable, err)
	}
	defer cursor.Close(ctx)

	if !cursor.Next(ctx) {
		if err := cursor.Err(); err != nil {
			return nil, fmt.Errorf("%w: read restaurant by id: %v", ErrUpstreamUnavailable, err)
		}
		return nil, ErrNotFound
	}

	var restaurant models.Restaurant
	if err := cursor.Decode(&restaurant); err != nil {
		return nil, fmt.Errorf("%w: decode restaurant: %v", ErrUpstreamUnavailable, err)
	}
	return &restaurant, nil
}
