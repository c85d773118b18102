package controllers

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"marketplace/errs"
	"marketplace/models"
	"marketplace/stores"
)

type mockCartStore struct {
	cart *models.Cart

	getErr    error
	addErr    error
	incErr    error
	removeErr error
	emptyErr  error

	created    []primitive.ObjectID
	addCalls   int
	incCalls   int
	emptyCalls int
}

func (m *mockCartStore) Create(_ context.Context, userID primitive.ObjectID) (*models.Cart, error) {
	m.created = append(m.created, userID)
	now := time.Now()
	m.cart = &models.Cart{
		ID:        userID,
		Products:  []models.LineItem{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	return m.cart, nil
}

func (m *mockCartStore) GetByID(context.Context, primitive.ObjectID) (*models.Cart, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if m.cart == nil {
		return nil, stores.ErrCartNotFound
	}
	return m.cart, nil
}

func (m *mockCartStore) AddProducts(_ context.Context, _ primitive.ObjectID, items []models.LineItem) (*models.Cart, error) {
	m.addCalls++
	if m.addErr != nil {
		return nil, m.addErr
	}
	if m.cart == nil {
		return nil, stores.ErrCartNotFound
	}
	now := time.Now()
	for i := range items {
		items[i].AddedAt = now
	}
	m.cart.Products = append(m.cart.Products, items...)
	m.cart.UpdatedAt = now
	return m.cart, nil
}

func (m *mockCartStore) RemoveProducts(_ context.Context, _ primitive.ObjectID, productIDs []primitive.ObjectID) (*models.Cart, error) {
	if m.removeErr != nil {
		return nil, m.removeErr
	}
	if m.cart == nil {
		return nil, stores.ErrCartNotFound
	}

	remove := make(map[primitive.ObjectID]bool, len(productIDs))
	for _, id := range productIDs {
		remove[id] = true
	}

	kept := m.cart.Products[:0:0]
	matched := false
	for _, item := range m.cart.Products {
		if remove[item.ProductID] {
			matched = true
			continue
		}
		kept = append(kept, item)
	}
	if !matched {
		return nil, stores.ErrCartNotFound
	}

	m.cart.Products = kept
	m.cart.UpdatedAt = time.Now()
	return m.cart, nil
}

func (m *mockCartStore) IncrementQuantity(_ context.Context, _ primitive.ObjectID, productID primitive.ObjectID, delta int) (*models.Cart, error) {
	m.incCalls++
	if m.incErr != nil {
		return nil, m.incErr
	}
	if m.cart == nil {
		return nil, stores.ErrCartNotFound
	}
	for i := range m.cart.Products {
		if m.cart.Products[i].ProductID == productID {
			m.cart.Products[i].Quantity += delta
			m.cart.UpdatedAt = time.Now()
			return m.cart, nil
		}
	}
	return nil, stores.ErrCartNotFound
}

func (m *mockCartStore) Empty(context.Context, primitive.ObjectID) error {
	m.emptyCalls++
	if m.emptyErr != nil {
		return m.emptyErr
	}
	if m.cart != nil {
		m.cart.Products = []models.LineItem{}
		m.cart.UpdatedAt = time.Now()
	}
	return nil
}

type mockProductStore struct {
	products map[primitive.ObjectID]*models.Product

	decrementErr map[primitive.ObjectID]error
}

func newMockProductStore(products ...*models.Product) *mockProductStore {
	m := &mockProductStore{
		products:     make(map[primitive.ObjectID]*models.Product),
		decrementErr: make(map[primitive.ObjectID]error),
	}
	for _, p := range products {
		m.products[p.ID] = p
	}
	return m
}

func (m *mockProductStore) Create(_ context.Context, sellerID primitive.ObjectID, name string, stock int) (*models.Product, error) {
	product := &models.Product{
		ID:       primitive.NewObjectID(),
		SellerID: sellerID,
		Name:     name,
		Stock:    stock,
	}
	m.products[product.ID] = product
	return product, nil
}

func (m *mockProductStore) GetByID(_ context.Context, productID, sellerID primitive.ObjectID) (*models.Product, error) {
	product, ok := m.products[productID]
	if !ok || product.SellerID != sellerID {
		return nil, stores.ErrProductNotFound
	}
	return product, nil
}

func (m *mockProductStore) List(context.Context, *primitive.ObjectID) ([]models.Product, error) {
	list := []models.Product{}
	for _, p := range m.products {
		list = append(list, *p)
	}
	return list, nil
}

func (m *mockProductStore) Update(_ context.Context, productID, sellerID primitive.ObjectID, updates stores.ProductUpdate) (*models.Product, error) {
	product, ok := m.products[productID]
	if !ok || product.SellerID != sellerID {
		return nil, stores.ErrProductNotFound
	}
	if updates.Name != nil {
		product.Name = *updates.Name
	}
	if updates.Stock != nil {
		product.Stock = *updates.Stock
	}
	return product, nil
}

func (m *mockProductStore) DecrementStock(_ context.Context, productID, sellerID primitive.ObjectID, quantity int) (*models.Product, error) {
	if err := m.decrementErr[productID]; err != nil {
		return nil, err
	}
	product, ok := m.products[productID]
	if !ok || product.SellerID != sellerID || product.Stock < quantity {
		return nil, stores.ErrInsufficientStock
	}
	product.Stock -= quantity
	return product, nil
}

func (m *mockProductStore) IncrementStock(_ context.Context, productID, sellerID primitive.ObjectID, quantity int) (*models.Product, error) {
	product, ok := m.products[productID]
	if !ok || product.SellerID != sellerID {
		return nil, stores.ErrProductNotFound
	}
	product.Stock += quantity
	return product, nil
}

func (m *mockProductStore) Delete(_ context.Context, productID, sellerID primitive.ObjectID) (*models.Product, error) {
	product, ok := m.products[productID]
	if !ok || product.SellerID != sellerID {
		return nil, stores.ErrProductNotFound
	}
	product.Deleted = true
	return product, nil
}

type mockOrderStore struct {
	orders    []*models.Order
	createErr error
}

func (m *mockOrderStore) Create(_ context.Context, userID primitive.ObjectID, products []models.LineItem) (*models.Order, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	now := time.Now()
	order := &models.Order{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		Products:  append([]models.LineItem{}, products...),
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.orders = append(m.orders, order)
	return order, nil
}

func (m *mockOrderStore) GetByID(_ context.Context, orderID, userID primitive.ObjectID) (*models.Order, error) {
	for _, order := range m.orders {
		if order.ID == orderID && order.UserID == userID {
			return order, nil
		}
	}
	return nil, stores.ErrOrderNotFound
}

type mockPublisher struct {
	published []*models.Order
	err       error
}

func (m *mockPublisher) OrderCreated(_ context.Context, order *models.Order) error {
	if m.err != nil {
		return m.err
	}
	m.published = append(m.published, order)
	return nil
}

func (m *mockPublisher) Close() error { return nil }

type mockUserStore struct {
	users     map[string]*models.User
	createErr error
}

func newMockUserStore() *mockUserStore {
	return &mockUserStore{users: make(map[string]*models.User)}
}

func (m *mockUserStore) Create(_ context.Context, user *models.User) (*models.User, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	if _, exists := m.users[user.Email]; exists {
		return nil, errs.DuplicateKey("email")
	}
	user.ID = primitive.NewObjectID()
	m.users[user.Email] = user
	return user, nil
}

func (m *mockUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	user, ok := m.users[email]
	if !ok {
		return nil, stores.ErrUserNotFound
	}
	return user, nil
}
