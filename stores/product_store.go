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

	"marketplace/models"
)

var (
	ErrProductNotFound = errors.New("product not found")

	// ErrInsufficientStock means a conditional decrement found less stock
	// than requested at commit time.
	ErrInsufficientStock = errors.New("insufficient stock")

	errNoProductUpdates = errors.New("no updates to be performed")
)

// ProductStore owns the products collection. Products are always addressed
// by (productId, sellerId); a product belongs to exactly one seller.
type ProductStore struct {
	collection *mongo.Collection
}

func NewProductStore(db *mongo.Database) *ProductStore {
	return &ProductStore{collection: db.Collection("products")}
}

func (s *ProductStore) Create(ctx context.Context, sellerID primitive.ObjectID, name string, stock int) (*models.Product, error) {
	now := time.Now().UTC()

	product := &models.Product{
		SellerID:  sellerID,
		Name:      name,
		Stock:     stock,
		Deleted:   false,
		CreatedAt: now,
		UpdatedAt: now,
	}

	result, err := s.collection.InsertOne(ctx, product)
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	product.ID = result.InsertedID.(primitive.ObjectID)

	return product, nil
}

func (s *ProductStore) GetByID(ctx context.Context, productID, sellerID primitive.ObjectID) (*models.Product, error) {
	filter := bson.M{
		"_id":      productID,
		"sellerId": sellerID,
	}

	var product models.Product
	err := s.collection.FindOne(ctx, filter).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return &product, nil
}

// List returns all live products, optionally narrowed to one seller.
func (s *ProductStore) List(ctx context.Context, sellerID *primitive.ObjectID) ([]models.Product, error) {
	filter := bson.M{"deleted": false}
	if sellerID != nil {
		filter["sellerId"] = *sellerID
	}

	cursor, err := s.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}

	return products, nil
}

// ProductUpdate carries the optional fields Update can change.
type ProductUpdate struct {
	Name  *string
	Stock *int
}

func (s *ProductStore) Update(ctx context.Context, productID, sellerID primitive.ObjectID, updates ProductUpdate) (*models.Product, error) {
	set := bson.M{}
	if updates.Name != nil {
		set["name"] = *updates.Name
	}
	if updates.Stock != nil {
		set["stock"] = *updates.Stock
	}
	if len(set) == 0 {
		return nil, errNoProductUpdates
	}

	filter := bson.M{
		"_id":      productID,
		"sellerId": sellerID,
		"deleted":  false,
	}
	update := bson.M{
		"$set":         set,
		"$currentDate": bson.M{"updatedAt": true},
	}

	return s.findOneAndUpdate(ctx, filter, update)
}

// DecrementStock subtracts quantity from the product's stock only if enough
// stock remains, in one conditional update. No match on a live product means
// the stock ran out between validation and commit.
func (s *ProductStore) DecrementStock(ctx context.Context, productID, sellerID primitive.ObjectID, quantity int) (*models.Product, error) {
	filter := bson.M{
		"_id":      productID,
		"sellerId": sellerID,
		"deleted":  false,
		"stock":    bson.M{"$gte": quantity},
	}
	update := bson.M{
		"$inc":         bson.M{"stock": -quantity},
		"$currentDate": bson.M{"updatedAt": true},
	}

	product, err := s.findOneAndUpdate(ctx, filter, update)
	if errors.Is(err, ErrProductNotFound) {
		return nil, ErrInsufficientStock
	}
	return product, err
}

// IncrementStock gives quantity units back, used to roll back decrements
// when a later checkout step fails.
func (s *ProductStore) IncrementStock(ctx context.Context, productID, sellerID primitive.ObjectID, quantity int) (*models.Product, error) {
	filter := bson.M{
		"_id":      productID,
		"sellerId": sellerID,
	}
	update := bson.M{
		"$inc":         bson.M{"stock": quantity},
		"$currentDate": bson.M{"updatedAt": true},
	}

	return s.findOneAndUpdate(ctx, filter, update)
}

func (s *ProductStore) Delete(ctx context.Context, productID, sellerID primitive.ObjectID) (*models.Product, error) {
	filter := bson.M{
		"_id":      productID,
		"sellerId": sellerID,
		"deleted":  false,
	}
	update := bson.M{
		"$set":         bson.M{"deleted": true},
		"$currentDate": bson.M{"deletedAt": true},
	}

	return s.findOneAndUpdate(ctx, filter, update)
}

func (s *ProductStore) findOneAndUpdate(ctx context.Context, filter, update bson.M) (*models.Product, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var product models.Product
	err := s.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return &product, nil
}
