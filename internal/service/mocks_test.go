package service

import (
	"context"
	"errors"
	"sync"

	"greencart-api/internal/cache"
	"greencart-api/internal/client"
	"greencart-api/internal/model"

	"gorm.io/gorm"
)

var errNoSessionForTest = errors.New("no checkout session for payment intent")

type mockProductRepo struct {
	mu       sync.Mutex
	products map[string]*model.Product
	err      error
}

func newMockProductRepo(products ...*model.Product) *mockProductRepo {
	m := &mockProductRepo{products: map[string]*model.Product{}}
	for _, p := range products {
		m.products[p.ID] = p
	}
	return m
}

func (m *mockProductRepo) Create(_ context.Context, product *model.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.products[product.ID] = product
	return nil
}

func (m *mockProductRepo) FindByID(_ context.Context, productID string) (*model.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	product, ok := m.products[productID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return product, nil
}

func (m *mockProductRepo) List(_ context.Context) ([]*model.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var products []*model.Product
	for _, p := range m.products {
		products = append(products, p)
	}
	return products, nil
}

func (m *mockProductRepo) UpdateStock(_ context.Context, productID string, stock int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	product, ok := m.products[productID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	product.Stock = stock
	return nil
}

type mockOrderRepo struct {
	mu        sync.Mutex
	orders    map[string]*model.Order
	createErr error
}

func newMockOrderRepo() *mockOrderRepo {
	return &mockOrderRepo{orders: map[string]*model.Order{}}
}

func (m *mockOrderRepo) Create(_ context.Context, order *model.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	m.orders[order.ID] = order
	return nil
}

func (m *mockOrderRepo) FindByID(_ context.Context, orderID string) (*model.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	order, ok := m.orders[orderID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return order, nil
}

func (m *mockOrderRepo) ListByUser(_ context.Context, userID string) ([]*model.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var orders []*model.Order
	for _, o := range m.orders {
		if o.UserID == userID && (o.PaymentType == model.PaymentTypeCOD || o.IsPaid) {
			orders = append(orders, o)
		}
	}
	return orders, nil
}

func (m *mockOrderRepo) ListAll(_ context.Context) ([]*model.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var orders []*model.Order
	for _, o := range m.orders {
		if o.PaymentType == model.PaymentTypeCOD || o.IsPaid {
			orders = append(orders, o)
		}
	}
	return orders, nil
}

func (m *mockOrderRepo) MarkPaid(_ context.Context, orderID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if order, ok := m.orders[orderID]; ok {
		order.IsPaid = true
	}
	return nil
}

func (m *mockOrderRepo) Delete(_ context.Context, orderID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.orders, orderID)
	return nil
}

func (m *mockOrderRepo) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.orders)
}

func (m *mockOrderRepo) single() *model.Order {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, o := range m.orders {
		return o
	}
	return nil
}

type mockUserRepo struct {
	mu    sync.Mutex
	users map[string]*model.User
}

func newMockUserRepo(users ...*model.User) *mockUserRepo {
	m := &mockUserRepo{users: map[string]*model.User{}}
	for _, u := range users {
		m.users[u.ID] = u
	}
	return m
}

func (m *mockUserRepo) FindByID(_ context.Context, userID string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (m *mockUserRepo) ReplaceCart(_ context.Context, userID string, cartItems map[string]int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if cartItems == nil {
		cartItems = map[string]int64{}
	}
	user, ok := m.users[userID]
	if !ok {
		user = &model.User{ID: userID}
		m.users[userID] = user
	}
	user.CartItems = cartItems
	return nil
}

func (m *mockUserRepo) cart(userID string) map[string]int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	if user, ok := m.users[userID]; ok {
		return user.CartItems
	}
	return nil
}

type mockWebhookEventRepo struct {
	mu        sync.Mutex
	processed map[string]bool
}

func newMockWebhookEventRepo() *mockWebhookEventRepo {
	return &mockWebhookEventRepo{processed: map[string]bool{}}
}

func (m *mockWebhookEventRepo) Exists(_ context.Context, eventID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.processed[eventID], nil
}

func (m *mockWebhookEventRepo) MarkProcessed(_ context.Context, eventID, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.processed[eventID] = true
	return nil
}

type mockCartCache struct {
	mu      sync.Mutex
	entries map[string]map[string]int64
	deleted []string
}

func newMockCartCache() *mockCartCache {
	return &mockCartCache{entries: map[string]map[string]int64{}}
}

func (m *mockCartCache) Get(_ context.Context, userID string) (map[string]int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.entries[userID]
	if !ok {
		return nil, cache.ErrCacheMiss
	}
	return entry, nil
}

func (m *mockCartCache) Set(_ context.Context, userID string, cartItems map[string]int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[userID] = cartItems
	return nil
}

func (m *mockCartCache) Delete(_ context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, userID)
	m.deleted = append(m.deleted, userID)
	return nil
}

type mockStripeClient struct {
	mu sync.Mutex

	session      *client.CheckoutSession
	createErr    error
	createParams *client.CheckoutSessionParams
	// observed order count at session-creation time, to assert the order
	// is persisted before the provider call
	ordersAtCreate int
	orderRepo      *mockOrderRepo

	sessionsByIntent map[string]*client.CheckoutSession
	listErr          error

	event        *model.StripeEvent
	constructErr error
}

func (m *mockStripeClient) CreateCheckoutSession(_ context.Context, params *client.CheckoutSessionParams) (*client.CheckoutSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.createParams = params
	if m.orderRepo != nil {
		m.ordersAtCreate = m.orderRepo.count()
	}
	if m.createErr != nil {
		return nil, m.createErr
	}
	return m.session, nil
}

func (m *mockStripeClient) SessionByPaymentIntent(_ context.Context, paymentIntentID string) (*client.CheckoutSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	session, ok := m.sessionsByIntent[paymentIntentID]
	if !ok {
		return nil, errNoSessionForTest
	}
	return session, nil
}

func (m *mockStripeClient) ConstructEvent(_ []byte, _ string) (*model.StripeEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.constructErr != nil {
		return nil, m.constructErr
	}
	return m.event, nil
}
