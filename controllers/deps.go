// Package controllers holds the business rules between the HTTP routes and
// the stores. Controllers receive interface-typed store dependencies through
// their constructors; the interfaces below name exactly what the controllers
// consume.
package controllers

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"marketplace/models"
	"marketplace/stores"
)

type CartStore interface {
	Create(ctx context.Context, userID primitive.ObjectID) (*models.Cart, error)
	GetByID(ctx context.Context, userID primitive.ObjectID) (*models.Cart, error)
	AddProducts(ctx context.Context, userID primitive.ObjectID, items []models.LineItem) (*models.Cart, error)
	RemoveProducts(ctx context.Context, userID primitive.ObjectID, productIDs []primitive.ObjectID) (*models.Cart, error)
	IncrementQuantity(ctx context.Context, userID, productID primitive.ObjectID, delta int) (*models.Cart, error)
	Empty(ctx context.Context, userID primitive.ObjectID) error
}

type ProductStore interface {
	Create(ctx context.Context, sellerID primitive.ObjectID, name string, stock int) (*models.Product, error)
	GetByID(ctx context.Context, productID, sellerID primitive.ObjectID) (*models.Product, error)
	List(ctx context.Context, sellerID *primitive.ObjectID) ([]models.Product, error)
	Update(ctx context.Context, productID, sellerID primitive.ObjectID, updates stores.ProductUpdate) (*models.Product, error)
	DecrementStock(ctx context.Context, productID, sellerID primitive.ObjectID, quantity int) (*models.Product, error)
	IncrementStock(ctx context.Context, productID, sellerID primitive.ObjectID, quantity int) (*models.Product, error)
	Delete(ctx context.Context, productID, sellerID primitive.ObjectID) (*models.Product, error)
}

type OrderStore interface {
	Create(ctx context.Context, userID primitive.ObjectID, products []models.LineItem) (*models.Order, error)
	GetByID(ctx context.Context, orderID, userID primitive.ObjectID) (*models.Order, error)
}

type SellerStore interface {
	Create(ctx context.Context, name string) (*models.Seller, error)
	GetByID(ctx context.Context, sellerID primitive.ObjectID) (*models.Seller, error)
	List(ctx context.Context) ([]models.Seller, error)
	Update(ctx context.Context, sellerID primitive.ObjectID, name string) (*models.Seller, error)
	Delete(ctx context.Context, sellerID primitive.ObjectID) (*models.Seller, error)
}

type UserStore interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}
