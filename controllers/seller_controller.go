package controllers

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"marketplace/errs"
	"marketplace/models"
	"marketplace/stores"
)

type SellerController struct {
	sellers SellerStore
}

func NewSellerController(sellers SellerStore) *SellerController {
	return &SellerController{sellers: sellers}
}

func (c *SellerController) Create(ctx context.Context, name string) (*models.Seller, error) {
	return c.sellers.Create(ctx, name)
}

func (c *SellerController) Get(ctx context.Context, sellerID primitive.ObjectID) (*models.Seller, error) {
	seller, err := c.sellers.GetByID(ctx, sellerID)
	if err != nil {
		if errors.Is(err, stores.ErrSellerNotFound) {
			return nil, errs.NotFound("seller")
		}
		return nil, err
	}

	return seller, nil
}

func (c *SellerController) List(ctx context.Context) ([]models.Seller, error) {
	return c.sellers.List(ctx)
}

func (c *SellerController) Update(ctx context.Context, sellerID primitive.ObjectID, name string) error {
	_, err := c.sellers.Update(ctx, sellerID, name)
	if err != nil {
		if errors.Is(err, stores.ErrSellerNotFound) {
			return errs.NotFound("seller")
		}
		return err
	}

	return nil
}

func (c *SellerController) Delete(ctx context.Context, sellerID primitive.ObjectID) error {
	_, err := c.sellers.Delete(ctx, sellerID)
	if err != nil {
		if errors.Is(err, stores.ErrSellerNotFound) {
			return errs.NotFound("seller")
		}
		return err
	}

	return nil
}
