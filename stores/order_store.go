package stores

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"marketplace/models"
)

var ErrOrderNotFound = errors.New("order not found")

// OrderStore owns the orders collection. Orders are written once and never
// mutated afterwards.
type OrderStore struct {
	collection *mongo.Collection
}

func NewOrderStore(db *mongo.Database) *OrderStore {
	return &OrderStore{collection: db.Collection("orders")}
}

// Create inserts an order snapshotting the given line items.
func (s *OrderStore) Create(ctx context.Context, userID primitive.ObjectID, products []models.LineItem) (*models.Order, error) {
	now := time.Now().UTC()

	order := &models.Order{
		UserID:    userID,
		Products:  products,
		CreatedAt: now,
		UpdatedAt: now,
	}

	result, err := s.collection.InsertOne(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	order.ID = result.InsertedID.(primitive.ObjectID)

	return order, nil
}

// GetByID looks up an order scoped by its owner, so users cannot read each
// other's orders by guessing ids.
func (s *OrderStore) GetByID(ctx context.Context, orderID, userID primitive.ObjectID) (*models.Order, error) {
	filter := bson.M{
		"_id":    orderID,
		"userId": userID,
	}

	var order models.Order
	err := s.collection.FindOne(ctx, filter).Decode(&order)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return &order, nil
}
