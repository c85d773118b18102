package controllers

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"marketplace/errs"
	"marketplace/events"
	"marketplace/models"
	"marketplace/stores"
)

// OrderController implements checkout: it turns a user's cart into an
// immutable order, decrements product stock and releases the cart.
type OrderController struct {
	orders    OrderStore
	carts     CartStore
	products  ProductStore
	publisher events.Publisher
	log       *zap.Logger
}

func NewOrderController(orders OrderStore, carts CartStore, products ProductStore, publisher events.Publisher, log *zap.Logger) *OrderController {
	return &OrderController{
		orders:    orders,
		carts:     carts,
		products:  products,
		publisher: publisher,
		log:       log,
	}
}

// Create converts the user's cart into an order. Every referenced product is
// validated before any stock is touched; the decrement itself is a
// conditional update, so a concurrent checkout that drained the stock first
// surfaces as low_on_stock rather than overselling. Once validation has
// passed, the cart is emptied no matter how the remaining steps end — the
// cart is the pending-checkout state and must be released.
func (c *OrderController) Create(ctx context.Context, userID primitive.ObjectID) (order *models.Order, err error) {
	cart, err := c.carts.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, stores.ErrCartNotFound) {
			return nil, errs.NotFound("cart")
		}
		return nil, err
	}

	if len(cart.Products) == 0 {
		return nil, errs.BusinessLogic("empty_cart")
	}

	for _, item := range cart.Products {
		if _, err := c.products.GetByID(ctx, item.ProductID, item.SellerID); err != nil {
			if errors.Is(err, stores.ErrProductNotFound) {
				return nil, errs.NotFound("product")
			}
			return nil, err
		}
	}

	defer func() {
		if emptyErr := c.carts.Empty(ctx, userID); emptyErr != nil {
			c.log.Error("failed to empty cart after checkout",
				zap.String("userId", userID.Hex()),
				zap.Error(emptyErr))

			// An earlier failure keeps reporting priority over the cleanup's.
			if err == nil {
				order = nil
				err = emptyErr
			}
		}
	}()

	decremented := make([]models.LineItem, 0, len(cart.Products))
	for _, item := range cart.Products {
		if _, decErr := c.products.DecrementStock(ctx, item.ProductID, item.SellerID, item.Quantity); decErr != nil {
			c.rollbackStock(ctx, decremented)

			if errors.Is(decErr, stores.ErrInsufficientStock) {
				return nil, errs.BusinessLogic("low_on_stock")
			}
			return nil, decErr
		}
		decremented = append(decremented, item)
	}

	order, err = c.orders.Create(ctx, userID, cart.Products)
	if err != nil {
		c.rollbackStock(ctx, decremented)
		return nil, err
	}

	if pubErr := c.publisher.OrderCreated(ctx, order); pubErr != nil {
		c.log.Warn("failed to publish order created event",
			zap.String("orderId", order.ID.Hex()),
			zap.Error(pubErr))
	}

	return order, nil
}

// Get returns one of the user's orders.
func (c *OrderController) Get(ctx context.Context, orderID, userID primitive.ObjectID) (*models.Order, error) {
	order, err := c.orders.GetByID(ctx, orderID, userID)
	if err != nil {
		if errors.Is(err, stores.ErrOrderNotFound) {
			return nil, errs.NotFound("order")
		}
		return nil, err
	}

	return order, nil
}

func (c *OrderController) rollbackStock(ctx context.Context, decremented []models.LineItem) {
	for _, item := range decremented {
		if _, err := c.products.IncrementStock(ctx, item.ProductID, item.SellerID, item.Quantity); err != nil {
			c.log.Error("failed to roll back stock",
				zap.String("productId", item.ProductID.Hex()),
				zap.Int("quantity", item.Quantity),
				zap.Error(err))
		}
	}
}
