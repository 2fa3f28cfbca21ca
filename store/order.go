package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"food-delivery-api/models"
)

// OrderStore is the persistence contract for orders. ByUser and All return
// orders newest first.
type OrderStore interface {
	Create(ctx context.Context, order *models.Order) (primitive.ObjectID, error)
	ByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
	SetPayment(ctx context.Context, id primitive.ObjectID, paid bool) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	ByUser(ctx context.Context, userID string) ([]models.Order, error)
	All(ctx context.Context) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error
}

// MongoOrderStore implements OrderStore on top of the "orders" collection.
type MongoOrderStore struct {
	Collection *mongo.Collection
}

// NewMongoOrderStore creates a MongoOrderStore bound to the given database.
func NewMongoOrderStore(db *mongo.Database) *MongoOrderStore {
	return &MongoOrderStore{Collection: db.Collection("orders")}
}

func (s *MongoOrderStore) Create(ctx context.Context, order *models.Order) (primitive.ObjectID, error) {
	result, err := s.Collection.InsertOne(ctx, order)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id := result.InsertedID.(primitive.ObjectID)
	order.ID = id
	return id, nil
}

func (s *MongoOrderStore) ByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	var order models.Order
	err := s.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// SetPayment flips the payment flag. Updating a missing order is a no-op,
// matching the behavior the verification redirect relies on.
func (s *MongoOrderStore) SetPayment(ctx context.Context, id primitive.ObjectID, paid bool) error {
	_, err := s.Collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"payment": paid},
	})
	return err
}

func (s *MongoOrderStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.Collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (s *MongoOrderStore) ByUser(ctx context.Context, userID string) ([]models.Order, error) {
	return s.find(ctx, bson.M{"user_id": userID})
}

func (s *MongoOrderStore) All(ctx context.Context) ([]models.Order, error) {
	return s.find(ctx, bson.M{})
}

func (s *MongoOrderStore) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	_, err := s.Collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"status": status},
	})
	return err
}

func (s *MongoOrderStore) find(ctx context.Context, filter bson.M) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}
