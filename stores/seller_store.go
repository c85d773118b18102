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

var ErrSellerNotFound = errors.New("seller not found")

type SellerStore struct {
	collection *mongo.Collection
}

func NewSellerStore(db *mongo.Database) *SellerStore {
	return &SellerStore{collection: db.Collection("sellers")}
}

func (s *SellerStore) Create(ctx context.Context, name string) (*models.Seller, error) {
	now := time.Now().UTC()

	seller := &models.Seller{
		Name:      name,
		Deleted:   false,
		CreatedAt: now,
		UpdatedAt: now,
	}

	result, err := s.collection.InsertOne(ctx, seller)
	if err != nil {
		return nil, fmt.Errorf("failed to create seller: %w", err)
	}

	seller.ID = result.InsertedID.(primitive.ObjectID)

	return seller, nil
}

func (s *SellerStore) GetByID(ctx context.Context, sellerID primitive.ObjectID) (*models.Seller, error) {
	filter := bson.M{
		"_id":     sellerID,
		"deleted": false,
	}

	var seller models.Seller
	err := s.collection.FindOne(ctx, filter).Decode(&seller)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrSellerNotFound
		}
		return nil, fmt.Errorf("failed to get seller: %w", err)
	}

	return &seller, nil
}

func (s *SellerStore) List(ctx context.Context) ([]models.Seller, error) {
	cursor, err := s.collection.Find(ctx, bson.M{"deleted": false})
	if err != nil {
		return nil, fmt.Errorf("failed to list sellers: %w", err)
	}

	sellers := []models.Seller{}
	if err := cursor.All(ctx, &sellers); err != nil {
		return nil, fmt.Errorf("failed to decode sellers: %w", err)
	}

	return sellers, nil
}

func (s *SellerStore) Update(ctx context.Context, sellerID primitive.ObjectID, name string) (*models.Seller, error) {
	filter := bson.M{
		"_id":     sellerID,
		"deleted": false,
	}
	update := bson.M{
		"$set":         bson.M{"name": name},
		"$currentDate": bson.M{"updatedAt": true},
	}

	return s.findOneAndUpdate(ctx, filter, update)
}

func (s *SellerStore) Delete(ctx context.Context, sellerID primitive.ObjectID) (*models.Seller, error) {
	filter := bson.M{
		"_id":     sellerID,
		"deleted": false,
	}
	update := bson.M{
		"$set":         bson.M{"deleted": true},
		"$currentDate": bson.M{"deletedAt": true},
	}

	return s.findOneAndUpdate(ctx, filter, update)
}

func (s *SellerStore) findOneAndUpdate(ctx context.Context, filter, update bson.M) (*models.Seller, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var seller models.Seller
	err := s.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&seller)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrSellerNotFound
		}
		return nil, fmt.Errorf("failed to update seller: %w", err)
	}

	return &seller, nil
}
