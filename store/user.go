package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"food-delivery-api/models"
)

// UserStore is the persistence contract for users.
type UserStore interface {
	// ByID looks a user up by the hex form of their id. A malformed id is
	// reported as ErrNotFound, the same as a lookup miss.
	ByID(ctx context.Context, id string) (*models.User, error)
	// ClearCart empties the user's cart_data. Clearing for an unknown user
	// is a no-op.
	ClearCart(ctx context.Context, id string) error
}

// MongoUserStore implements UserStore on top of the "users" collection.
type MongoUserStore struct {
	Collection *mongo.Collection
}

// NewMongoUserStore creates a MongoUserStore bound to the given database.
func NewMongoUserStore(db *mongo.Database) *MongoUserStore {
	return &MongoUserStore{Collection: db.Collection("users")}
}

func (s *MongoUserStore) ByID(ctx context.Context, id string) (*models.User, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var user models.User
	err = s.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *MongoUserStore) ClearCart(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}
	_, err = s.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{
		"$set": bson.M{"cart_data": bson.M{}},
	})
	return err
}
