package repository

import (
	"context"
	"errors"

	"digital-storefront/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrOrderNotFound   = errors.New("order not found")
)

// ProductRepository defines the interface for catalog data access
type ProductRepository interface {
	// List returns all products, or only those in the given category
	// when category is non-empty. Order follows natural storage order.
	List(ctx context.Context, category string) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	Count(ctx context.Context) (int64, error)
	InsertMany(ctx context.Context, products []models.Product) error
}

// MongoProductRepository implements ProductRepository against the
// "products" collection. Products are keyed by their "id" field, not
// the Mongo-generated _id.
type MongoProductRepository struct {
	collection *mongo.Collection
}

// NewMongoProductRepository creates a product repository backed by the given database
func NewMongoProductRepository(db *mongo.Database) *MongoProductRepository {
	return &MongoProductRepository{
		collection: db.Collection("products"),
	}
}

// List returns all products, optionally filtered by category
func (r *MongoProductRepository) List(ctx context.Context, category string) ([]models.Product, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	products := make([]models.Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetByID returns a product by its ID
func (r *MongoProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

// Count returns the number of products in the catalog
func (r *MongoProductRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

// InsertMany writes a batch of products, used by the startup seed
func (r *MongoProductRepository) InsertMany(ctx context.Context, products []models.Product) error {
	docs := make([]interface{}, 0, len(products))
	for _, p := range products {
		docs = append(docs, p)
	}
	_, err := r.collection.InsertMany(ctx, docs)
	return err
}
