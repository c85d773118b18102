package controllers

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"marketplace/errs"
	"marketplace/models"
	"marketplace/stores"
)

type ProductController struct {
	products ProductStore
	sellers  SellerStore
}

func NewProductController(products ProductStore, sellers SellerStore) *ProductController {
	return &ProductController{
		products: products,
		sellers:  sellers,
	}
}

// Create adds a product under the given seller. The seller must exist.
func (c *ProductController) Create(ctx context.Context, sellerID primitive.ObjectID, name string, stock int) (*models.Product, error) {
	if _, err := c.sellers.GetByID(ctx, sellerID); err != nil {
		if errors.Is(err, stores.ErrSellerNotFound) {
			return nil, errs.NotFound("seller")
		}
		return nil, err
	}

	return c.products.Create(ctx, sellerID, name, stock)
}

func (c *ProductController) Get(ctx context.Context, productID, sellerID primitive.ObjectID) (*models.Product, error) {
	product, err := c.products.GetByID(ctx, productID, sellerID)
	if err != nil {
		if errors.Is(err, stores.ErrProductNotFound) {
			return nil, errs.NotFound("product")
		}
		return nil, err
	}

	return product, nil
}

func (c *ProductController) List(ctx context.Context, sellerID *primitive.ObjectID) ([]models.Product, error) {
	return c.products.List(ctx, sellerID)
}

func (c *ProductController) Update(ctx context.Context, productID, sellerID primitive.ObjectID, updates stores.ProductUpdate) error {
	_, err := c.products.Update(ctx, productID, sellerID, updates)
	if err != nil {
		if errors.Is(err, stores.ErrProductNotFound) {
			return errs.NotFound("product")
		}
		return err
	}

	return nil
}

func (c *ProductController) Delete(ctx context.Context, productID, sellerID primitive.ObjectID) error {
	_, err := c.products.Delete(ctx, productID, sellerID)
	if err != nil {
		if errors.Is(err, stores.ErrProductNotFound) {
			return errs.NotFound("product")
		}
		return err
	}

	return nil
}
