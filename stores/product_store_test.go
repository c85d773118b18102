package stores

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestProductCreateAndGet(t *testing.T) {
	store := NewProductStore(setupTestDB(t))
	ctx := context.Background()
	sellerID := primitive.NewObjectID()

	created, err := store.Create(ctx, sellerID, "usb charger", 10)
	require.NoError(t, err)
	require.False(t, created.ID.IsZero())

	product, err := store.GetByID(ctx, created.ID, sellerID)
	require.NoError(t, err)
	assert.Equal(t, "usb charger", product.Name)
	assert.Equal(t, 10, product.Stock)
}

func TestProductGetByID_WrongSeller(t *testing.T) {
	store := NewProductStore(setupTestDB(t))
	ctx := context.Background()

	created, err := store.Create(ctx, primitive.NewObjectID(), "usb charger", 10)
	require.NoError(t, err)

	_, err = store.GetByID(ctx, created.ID, primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestProductList_FiltersBySeller(t *testing.T) {
	store := NewProductStore(setupTestDB(t))
	ctx := context.Background()
	sellerID := primitive.NewObjectID()

	_, err := store.Create(ctx, sellerID, "usb charger", 10)
	require.NoError(t, err)
	_, err = store.Create(ctx, primitive.NewObjectID(), "battery", 5)
	require.NoError(t, err)

	all, err := store.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	mine, err := store.List(ctx, &sellerID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "usb charger", mine[0].Name)
}

func TestProductUpdate(t *testing.T) {
	store := NewProductStore(setupTestDB(t))
	ctx := context.Background()
	sellerID := primitive.NewObjectID()

	created, err := store.Create(ctx, sellerID, "usb charger", 10)
	require.NoError(t, err)

	name := "fast charger"
	stock := 25
	product, err := store.Update(ctx, created.ID, sellerID, ProductUpdate{Name: &name, Stock: &stock})
	require.NoError(t, err)
	assert.Equal(t, "fast charger", product.Name)
	assert.Equal(t, 25, product.Stock)

	_, err = store.Update(ctx, created.ID, sellerID, ProductUpdate{})
	assert.ErrorIs(t, err, errNoProductUpdates)
}

func TestProductDecrementStock(t *testing.T) {
	store := NewProductStore(setupTestDB(t))
	ctx := context.Background()
	sellerID := primitive.NewObjectID()

	created, err := store.Create(ctx, sellerID, "usb charger", 10)
	require.NoError(t, err)

	product, err := store.DecrementStock(ctx, created.ID, sellerID, 4)
	require.NoError(t, err)
	assert.Equal(t, 6, product.Stock)

	// taking exactly what remains is allowed
	product, err = store.DecrementStock(ctx, created.ID, sellerID, 6)
	require.NoError(t, err)
	assert.Equal(t, 0, product.Stock)
}

func TestProductDecrementStock_Insufficient(t *testing.T) {
	store := NewProductStore(setupTestDB(t))
	ctx := context.Background()
	sellerID := primitive.NewObjectID()

	created, err := store.Create(ctx, sellerID, "usb charger", 3)
	require.NoError(t, err)

	_, err = store.DecrementStock(ctx, created.ID, sellerID, 4)
	assert.ErrorIs(t, err, ErrInsufficientStock)

	// a failed decrement must not touch the stock
	product, err := store.GetByID(ctx, created.ID, sellerID)
	require.NoError(t, err)
	assert.Equal(t, 3, product.Stock)
}

func TestProductIncrementStock(t *testing.T) {
	store := NewProductStore(setupTestDB(t))
	ctx := context.Background()
	sellerID := primitive.NewObjectID()

	created, err := store.Create(ctx, sellerID, "usb charger", 3)
	require.NoError(t, err)

	product, err := store.IncrementStock(ctx, created.ID, sellerID, 4)
	require.NoError(t, err)
	assert.Equal(t, 7, product.Stock)
}

func TestProductDelete_HidesFromList(t *testing.T) {
	store := NewProductStore(setupTestDB(t))
	ctx := context.Background()
	sellerID := primitive.NewObjectID()

	created, err := store.Create(ctx, sellerID, "usb charger", 10)
	require.NoError(t, err)

	deleted, err := store.Delete(ctx, created.ID, sellerID)
	require.NoError(t, err)
	assert.True(t, deleted.Deleted)

	products, err := store.List(ctx, &sellerID)
	require.NoError(t, err)
	assert.Empty(t, products)

	// deleting twice fails, the product is no longer live
	_, err = store.Delete(ctx, created.ID, sellerID)
	assert.ErrorIs(t, err, ErrProductNotFound)
}
