package stores

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"marketplace/errs"
	"marketplace/models"
)

var ErrCartNotFound = errors.New("cart not found")

// CartStore owns the carts collection. A cart document is keyed by the id of
// the user that owns it.
type CartStore struct {
	collection *mongo.Collection
}

func NewCartStore(db *mongo.Database) *CartStore {
	return &CartStore{collection: db.Collection("carts")}
}

// Create inserts an empty cart for the user. A second create for the same
// user fails with a DuplicateKeyError; idempotency is the caller's problem.
func (s *CartStore) Create(ctx context.Context, userID primitive.ObjectID) (*models.Cart, error) {
	now := time.Now().UTC()

	cart := &models.Cart{
		ID:        userID,
		Products:  []models.LineItem{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := s.collection.InsertOne(ctx, cart); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, errs.DuplicateKey("user_cart")
		}
		return nil, fmt.Errorf("failed to create cart: %w", err)
	}

	return cart, nil
}

func (s *CartStore) GetByID(ctx context.Context, userID primitive.ObjectID) (*models.Cart, error) {
	var cart models.Cart

	err := s.collection.FindOne(ctx, bson.M{"_id": userID}).Decode(&cart)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCartNotFound
		}
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	return &cart, nil
}

// ProductExists reports whether the cart already holds a line item for the
// given product.
func (s *CartStore) ProductExists(ctx context.Context, userID, productID primitive.ObjectID) (bool, error) {
	filter := bson.M{
		"_id":                userID,
		"products.productId": productID,
	}

	err := s.collection.FindOne(ctx, filter).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check cart product: %w", err)
	}

	return true, nil
}

// AddProducts appends the given line items, stamping each with the current
// time. It does not look for duplicate productIds; the cart controller keeps
// that invariant.
func (s *CartStore) AddProducts(ctx context.Context, userID primitive.ObjectID, items []models.LineItem) (*models.Cart, error) {
	now := time.Now().UTC()
	for i := range items {
		items[i].AddedAt = now
	}

	update := bson.M{
		"$push":        bson.M{"products": bson.M{"$each": items}},
		"$currentDate": bson.M{"updatedAt": true},
	}

	return s.findOneAndUpdate(ctx, bson.M{"_id": userID}, update)
}

// RemoveProducts pulls every line item whose productId is in productIDs.
// When none of the given ids is present, it reports ErrCartNotFound rather
// than succeeding vacuously.
func (s *CartStore) RemoveProducts(ctx context.Context, userID primitive.ObjectID, productIDs []primitive.ObjectID) (*models.Cart, error) {
	filter := bson.M{
		"_id":                userID,
		"products.productId": bson.M{"$in": productIDs},
	}
	update := bson.M{
		"$pull":        bson.M{"products": bson.M{"productId": bson.M{"$in": productIDs}}},
		"$currentDate": bson.M{"updatedAt": true},
	}

	return s.findOneAndUpdate(ctx, filter, update)
}

// UpdateQuantity replaces the quantity of the matching line item.
func (s *CartStore) UpdateQuantity(ctx context.Context, userID, productID primitive.ObjectID, quantity int) (*models.Cart, error) {
	filter := bson.M{
		"_id":                userID,
		"products.productId": productID,
	}
	update := bson.M{
		"$set":         bson.M{"products.$.quantity": quantity},
		"$currentDate": bson.M{"updatedAt": true},
	}

	return s.findOneAndUpdate(ctx, filter, update)
}

// IncrementQuantity adds delta to the quantity of the matching line item in
// a single document update, so two concurrent merges cannot lose each
// other's addition.
func (s *CartStore) IncrementQuantity(ctx context.Context, userID, productID primitive.ObjectID, delta int) (*models.Cart, error) {
	filter := bson.M{
		"_id":                userID,
		"products.productId": productID,
	}
	update := bson.M{
		"$inc":         bson.M{"products.$.quantity": delta},
		"$currentDate": bson.M{"updatedAt": true},
	}

	return s.findOneAndUpdate(ctx, filter, update)
}

// Empty replaces the cart's products with an empty sequence. Emptying an
// already empty cart is a no-op apart from advancing updatedAt.
func (s *CartStore) Empty(ctx context.Context, userID primitive.ObjectID) error {
	update := bson.M{
		"$set":         bson.M{"products": []models.LineItem{}},
		"$currentDate": bson.M{"updatedAt": true},
	}

	_, err := s.findOneAndUpdate(ctx, bson.M{"_id": userID}, update)
	return err
}

func (s *CartStore) findOneAndUpdate(ctx context.Context, filter, update bson.M) (*models.Cart, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var cart models.Cart
	err := s.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&cart)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCartNotFound
		}
		return nil, fmt.Errorf("failed to update cart: %w", err)
	}

	return &cart, nil
}
