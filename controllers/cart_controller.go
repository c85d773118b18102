package controllers

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"marketplace/errs"
	"marketplace/models"
	"marketplace/stores"
)

// CartController implements the cart business rules on top of the cart and
// product stores.
type CartController struct {
	carts    CartStore
	products ProductStore
	log      *zap.Logger
}

func NewCartController(carts CartStore, products ProductStore, log *zap.Logger) *CartController {
	return &CartController{
		carts:    carts,
		products: products,
		log:      log,
	}
}

// Get returns the user's cart.
func (c *CartController) Get(ctx context.Context, userID primitive.ObjectID) (*models.Cart, error) {
	cart, err := c.carts.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, stores.ErrCartNotFound) {
			return nil, errs.NotFound("cart")
		}
		return nil, err
	}

	return cart, nil
}

// AddProductInput identifies the product being added and how many units of
// it the user wants.
type AddProductInput struct {
	ProductID primitive.ObjectID
	SellerID  primitive.ObjectID
	Quantity  int
}

// AddProduct puts a product into the user's cart. When the cart already
// holds a line item for the product, the requested quantity is merged into
// it instead of inserting a duplicate. Stock is checked against the
// requested quantity only, not the merged total.
func (c *CartController) AddProduct(ctx context.Context, userID primitive.ObjectID, in AddProductInput) error {
	cart, err := c.Get(ctx, userID)
	if err != nil {
		return err
	}

	product, err := c.products.GetByID(ctx, in.ProductID, in.SellerID)
	if err != nil {
		if errors.Is(err, stores.ErrProductNotFound) {
			return errs.NotFound("product")
		}
		return err
	}

	if product.Stock < in.Quantity {
		return errs.BusinessLogic("low_on_stock")
	}

	for _, item := range cart.Products {
		if item.ProductID == in.ProductID {
			// Merge with a single $inc so concurrent adds for the same
			// product cannot lose each other's quantity.
			_, err := c.carts.IncrementQuantity(ctx, userID, in.ProductID, in.Quantity)
			return err
		}
	}

	_, err = c.carts.AddProducts(ctx, userID, []models.LineItem{
		{
			ProductID: in.ProductID,
			SellerID:  in.SellerID,
			Quantity:  in.Quantity,
		},
	})

	return err
}

// RemoveProduct drops the given products from the cart. When none of them
// is in the cart there is nothing to remove, which surfaces as a product
// not-found.
func (c *CartController) RemoveProduct(ctx context.Context, userID primitive.ObjectID, productIDs []primitive.ObjectID) error {
	_, err := c.carts.RemoveProducts(ctx, userID, productIDs)
	if err != nil {
		if errors.Is(err, stores.ErrCartNotFound) {
			return errs.NotFound("product")
		}
		return err
	}

	return nil
}
