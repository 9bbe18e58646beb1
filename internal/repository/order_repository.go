package repository

import (
	"context"
	"errors"

	"digital-storefront/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// OrderRepository defines the interface for order data access
type OrderRepository interface {
	// Insert persists an order as a single atomic write.
	Insert(ctx context.Context, order models.Order) error
	GetByID(ctx context.Context, id string) (*models.Order, error)
}

// MongoOrderRepository implements OrderRepository against the "orders" collection
type MongoOrderRepository struct {
	collection *mongo.Collection
}

// NewMongoOrderRepository creates an order repository backed by the given database
func NewMongoOrderRepository(db *mongo.Database) *MongoOrderRepository {
	return &MongoOrderRepository{
		collection: db.Collection("orders"),
	}
}

// Insert writes one order document
func (r *MongoOrderRepository) Insert(ctx context.Context, order models.Order) error {
	_, err := r.collection.InsertOne(ctx, order)
	return err
}

// GetByID returns an order by its ID
func (r *MongoOrderRepository) GetByID(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&order)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}
