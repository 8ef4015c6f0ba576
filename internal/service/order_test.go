package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/shopcore/order-placement-service/internal/entities"
	"github.com/shopcore/order-placement-service/internal/service"
	mocks "github.com/shopcore/order-placement-service/internal/service/mocks"
	"github.com/shopcore/order-placement-service/pkg/trm"
	txMocks "github.com/shopcore/order-placement-service/pkg/trm/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

var (
	shirt = entities.Product{ProductID: 1, Name: "Shirt", Price: 1000, StockQuantity: 10, SalesVolume: 0}
	sizeS = entities.Option{OptionID: 5, ProductID: 1, Size: "S", AdditionalPrice: 200, StockQuantity: 4}
)

type placeOrderMocks struct {
	orders  *mocks.MockOrderRepo
	catalog *mocks.MockCatalogRepo
	cart    *mocks.MockCartClient
	events  *mocks.MockEventPublisher
	cache   *mocks.MockCache
}

func validCheckout(lines ...entities.LineRequest) entities.PlaceOrderRequest {
	return entities.PlaceOrderRequest{
		UserID:          42,
		ShippingAddress: "Lenina 1, Moscow",
		PaymentMethod:   "card",
		Lines:           lines,
	}
}

func TestOrderService_PlaceOrder(t *testing.T) {
	dbError := errors.New("db error")

	testCases := []struct {
		name         string
		req          entities.PlaceOrderRequest
		mockBehavior func(m placeOrderMocks)
		wantErr      error
		check        func(t *testing.T, order entities.Order, m placeOrderMocks)
	}{
		{
			name: "success with option",
			req:  validCheckout(entities.LineRequest{ProductID: 1, OptionID: 5, Quantity: 4}),
			mockBehavior: func(m placeOrderMocks) {
				m.catalog.EXPECT().UserExists(mock.Anything, int64(42)).Return(true, nil)
				m.catalog.EXPECT().GetProduct(mock.Anything, int64(1)).Return(shirt, nil)
				m.catalog.EXPECT().GetOption(mock.Anything, int64(5)).Return(sizeS, nil)
				m.catalog.EXPECT().DecrementProductStock(mock.Anything, int64(1), 4).Return(nil).Once()
				m.catalog.EXPECT().DecrementOptionStock(mock.Anything, int64(5), 4).Return(nil).Once()
				m.orders.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(nil).Once()
				m.orders.EXPECT().SaveOrderLines(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
				m.cart.EXPECT().ClearCart(mock.Anything, int64(42)).Return(nil).Once()
				m.events.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()
				m.cache.EXPECT().Set(mock.Anything, mock.Anything).Return()
			},
			check: func(t *testing.T, order entities.Order, m placeOrderMocks) {
				assert.Equal(t, entities.StatusPending, order.Status)
				assert.Equal(t, 4800, order.TotalAmount)
				require.Len(t, order.Lines, 1)
				assert.Equal(t, 1200, order.Lines[0].UnitPrice)
				assert.Equal(t, "Shirt", order.Lines[0].ProductName)
				assert.Equal(t, "S", order.Lines[0].OptionSize)

				sum := 0
				for _, l := range order.Lines {
					sum += l.Total()
				}
				assert.Equal(t, order.TotalAmount, sum)
			},
		},
		{
			name:    "blank shipping address",
			req:     entities.PlaceOrderRequest{UserID: 42, ShippingAddress: "   ", PaymentMethod: "card", Lines: []entities.LineRequest{{ProductID: 1, Quantity: 1}}},
			wantErr: entities.ErrInvalidRequest,
		},
		{
			name:    "zero quantity",
			req:     validCheckout(entities.LineRequest{ProductID: 1, Quantity: 0}),
			wantErr: entities.ErrInvalidRequest,
		},
		{
			name: "user not found",
			req:  validCheckout(entities.LineRequest{ProductID: 1, Quantity: 1}),
			mockBehavior: func(m placeOrderMocks) {
				m.catalog.EXPECT().UserExists(mock.Anything, int64(42)).Return(false, nil)
			},
			wantErr: entities.ErrUserNotFound,
		},
		{
			name: "product not found, no counters touched",
			req:  validCheckout(entities.LineRequest{ProductID: 99, Quantity: 1}),
			mockBehavior: func(m placeOrderMocks) {
				m.catalog.EXPECT().UserExists(mock.Anything, int64(42)).Return(true, nil)
				m.catalog.EXPECT().GetProduct(mock.Anything, int64(99)).Return(entities.Product{}, entities.ErrProductNotFound)
			},
			wantErr: entities.ErrProductNotFound,
		},
		{
			// вторая позиция ломает весь заказ до любого списания,
			// в том числе по валидной первой позиции
			name: "option mismatch on second line aborts whole order",
			req: validCheckout(
				entities.LineRequest{ProductID: 1, Quantity: 1},
				entities.LineRequest{ProductID: 2, OptionID: 5, Quantity: 1},
			),
			mockBehavior: func(m placeOrderMocks) {
				m.catalog.EXPECT().UserExists(mock.Anything, int64(42)).Return(true, nil)
				m.catalog.EXPECT().GetProduct(mock.Anything, int64(1)).Return(shirt, nil)
				m.catalog.EXPECT().GetProduct(mock.Anything, int64(2)).
					Return(entities.Product{ProductID: 2, Name: "Mug", Price: 300, StockQuantity: 7}, nil)
				m.catalog.EXPECT().GetOption(mock.Anything, int64(5)).Return(sizeS, nil)
			},
			wantErr: entities.ErrOptionMismatch,
		},
		{
			name: "insufficient product stock fails before any decrement",
			req:  validCheckout(entities.LineRequest{ProductID: 1, Quantity: 11}),
			mockBehavior: func(m placeOrderMocks) {
				m.catalog.EXPECT().UserExists(mock.Anything, int64(42)).Return(true, nil)
				m.catalog.EXPECT().GetProduct(mock.Anything, int64(1)).Return(shirt, nil)
			},
			wantErr: entities.ErrInsufficientStock,
			check: func(t *testing.T, _ entities.Order, m placeOrderMocks) {
				m.catalog.AssertNotCalled(t, "DecrementProductStock", mock.Anything, mock.Anything, mock.Anything)
			},
		},
		{
			name: "insufficient option stock references the option",
			req:  validCheckout(entities.LineRequest{ProductID: 1, OptionID: 5, Quantity: 5}),
			mockBehavior: func(m placeOrderMocks) {
				m.catalog.EXPECT().UserExists(mock.Anything, int64(42)).Return(true, nil)
				m.catalog.EXPECT().GetProduct(mock.Anything, int64(1)).Return(shirt, nil)
				m.catalog.EXPECT().GetOption(mock.Anything, int64(5)).Return(sizeS, nil)
			},
			wantErr: entities.ErrInsufficientStock,
			check: func(t *testing.T, _ entities.Order, m placeOrderMocks) {
				m.catalog.AssertNotCalled(t, "DecrementProductStock", mock.Anything, mock.Anything, mock.Anything)
				m.catalog.AssertNotCalled(t, "DecrementOptionStock", mock.Anything, mock.Anything, mock.Anything)
			},
		},
		{
			// конкурент успел забрать остаток между проходами:
			// условный декремент отклоняет, заказ не сохраняется
			name: "decrement race aborts commit pass",
			req:  validCheckout(entities.LineRequest{ProductID: 1, Quantity: 3}),
			mockBehavior: func(m placeOrderMocks) {
				m.catalog.EXPECT().UserExists(mock.Anything, int64(42)).Return(true, nil)
				m.catalog.EXPECT().GetProduct(mock.Anything, int64(1)).Return(shirt, nil)
				m.catalog.EXPECT().DecrementProductStock(mock.Anything, int64(1), 3).
					Return(entities.ErrInsufficientStock).Once()
			},
			wantErr: entities.ErrInsufficientStock,
			check: func(t *testing.T, _ entities.Order, m placeOrderMocks) {
				m.orders.AssertNotCalled(t, "SaveOrder", mock.Anything, mock.Anything)
			},
		},
		{
			name: "save order failure aborts",
			req:  validCheckout(entities.LineRequest{ProductID: 1, Quantity: 1}),
			mockBehavior: func(m placeOrderMocks) {
				m.catalog.EXPECT().UserExists(mock.Anything, int64(42)).Return(true, nil)
				m.catalog.EXPECT().GetProduct(mock.Anything, int64(1)).Return(shirt, nil)
				m.catalog.EXPECT().DecrementProductStock(mock.Anything, int64(1), 1).Return(nil).Once()
				m.orders.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(dbError).Once()
			},
			wantErr: dbError,
		},
		{
			name: "cart clear failure does not fail placement",
			req:  validCheckout(entities.LineRequest{ProductID: 1, Quantity: 2}),
			mockBehavior: func(m placeOrderMocks) {
				m.catalog.EXPECT().UserExists(mock.Anything, int64(42)).Return(true, nil)
				m.catalog.EXPECT().GetProduct(mock.Anything, int64(1)).Return(shirt, nil)
				m.catalog.EXPECT().DecrementProductStock(mock.Anything, int64(1), 2).Return(nil).Once()
				m.orders.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(nil).Once()
				m.orders.EXPECT().SaveOrderLines(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
				m.cart.EXPECT().ClearCart(mock.Anything, int64(42)).Return(errors.New("cart is down")).Once()
				m.events.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()
				m.cache.EXPECT().Set(mock.Anything, mock.Anything).Return()
			},
			check: func(t *testing.T, order entities.Order, m placeOrderMocks) {
				assert.Equal(t, 2000, order.TotalAmount)
			},
		},
		{
			name: "publish failure does not fail placement",
			req:  validCheckout(entities.LineRequest{ProductID: 1, Quantity: 1}),
			mockBehavior: func(m placeOrderMocks) {
				m.catalog.EXPECT().UserExists(mock.Anything, int64(42)).Return(true, nil)
				m.catalog.EXPECT().GetProduct(mock.Anything, int64(1)).Return(shirt, nil)
				m.catalog.EXPECT().DecrementProductStock(mock.Anything, int64(1), 1).Return(nil).Once()
				m.orders.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(nil).Once()
				m.orders.EXPECT().SaveOrderLines(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
				m.cart.EXPECT().ClearCart(mock.Anything, int64(42)).Return(nil).Once()
				m.events.EXPECT().Publish(mock.Anything, mock.Anything).Return(errors.New("broker unavailable")).Once()
				m.cache.EXPECT().Set(mock.Anything, mock.Anything).Return()
			},
			check: func(t *testing.T, order entities.Order, m placeOrderMocks) {
				assert.Equal(t, 1000, order.TotalAmount)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := placeOrderMocks{
				orders:  mocks.NewMockOrderRepo(t),
				catalog: mocks.NewMockCatalogRepo(t),
				cart:    mocks.NewMockCartClient(t),
				events:  mocks.NewMockEventPublisher(t),
				cache:   mocks.NewMockCache(t),
			}
			tx := txMocks.NewMockManager(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			tx.EXPECT().
				Do(mock.Anything, mock.Anything).
				RunAndReturn(
					func(ctx context.Context, cb func(ctx context.Context) error) error {
						return cb(ctx)
					}).Maybe()

			if tc.mockBehavior != nil {
				tc.mockBehavior(m)
			}

			svc := service.NewOrderService(logger, tx, m.orders, m.catalog, m.cart, m.events, m.cache)

			order, err := svc.PlaceOrder(context.Background(), tc.req)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
			}

			if tc.check != nil {
				tc.check(t, order, m)
			}
		})
	}
}

func TestOrderService_PlaceOrder_InsufficientStockDetails(t *testing.T) {
	m := placeOrderMocks{
		orders:  mocks.NewMockOrderRepo(t),
		catalog: mocks.NewMockCatalogRepo(t),
		cart:    mocks.NewMockCartClient(t),
		events:  mocks.NewMockEventPublisher(t),
		cache:   mocks.NewMockCache(t),
	}
	tx := txMocks.NewMockManager(t)
	tx.EXPECT().Do(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, cb func(ctx context.Context) error) error {
			return cb(ctx)
		})

	m.catalog.EXPECT().UserExists(mock.Anything, int64(42)).Return(true, nil)
	m.catalog.EXPECT().GetProduct(mock.Anything, int64(1)).Return(shirt, nil)
	m.catalog.EXPECT().GetOption(mock.Anything, int64(5)).Return(sizeS, nil)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.NewOrderService(logger, tx, m.orders, m.catalog, m.cart, m.events, m.cache)

	_, err := svc.PlaceOrder(context.Background(), validCheckout(entities.LineRequest{ProductID: 1, OptionID: 5, Quantity: 5}))

	var stockErr *entities.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "Shirt (S)", stockErr.Name)
	assert.Equal(t, 5, stockErr.Requested)
	assert.Equal(t, 4, stockErr.Available)
}

// stubStore реализует настоящую семантику условного декремента под мьютексом,
// чтобы проверить поведение движка при конкурентных оформлениях
type stubStore struct {
	mu     sync.Mutex
	stock  map[int64]int
	sales  map[int64]int
	orders map[string]entities.Order
}

func newStubStore(stock map[int64]int) *stubStore {
	return &stubStore{
		stock:  stock,
		sales:  make(map[int64]int),
		orders: make(map[string]entities.Order),
	}
}

func (s *stubStore) UserExists(ctx context.Context, userID int64) (bool, error) { return true, nil }

func (s *stubStore) GetProduct(ctx context.Context, productID int64) (entities.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	qty, ok := s.stock[productID]
	if !ok {
		return entities.Product{}, entities.ErrProductNotFound
	}
	return entities.Product{ProductID: productID, Name: "Shirt", Price: 1000, StockQuantity: qty}, nil
}

func (s *stubStore) GetOption(ctx context.Context, optionID int64) (entities.Option, error) {
	return entities.Option{}, entities.ErrOptionNotFound
}

func (s *stubStore) DecrementProductStock(ctx context.Context, productID int64, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stock[productID] < quantity {
		return entities.ErrInsufficientStock
	}
	s.stock[productID] -= quantity
	s.sales[productID] += quantity
	return nil
}

func (s *stubStore) DecrementOptionStock(ctx context.Context, optionID int64, quantity int) error {
	return entities.ErrOptionNotFound
}

func (s *stubStore) RestoreProductStock(ctx context.Context, productID int64, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stock[productID] += quantity
	s.sales[productID] -= quantity
	return nil
}

func (s *stubStore) RestoreOptionStock(ctx context.Context, optionID int64, quantity int) error {
	return nil
}

func (s *stubStore) SaveOrder(ctx context.Context, o entities.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[o.OrderID] = o
	return nil
}

func (s *stubStore) SaveOrderLines(ctx context.Context, orderID string, lines []entities.OrderLine) error {
	return nil
}

func (s *stubStore) GetOrderByID(ctx context.Context, orderID string) (entities.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[orderID]
	if !ok {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	return o, nil
}

func (s *stubStore) ListOrdersByUser(ctx context.Context, userID int64) ([]entities.Order, error) {
	return nil, nil
}

func (s *stubStore) LatestOrders(ctx context.Context, count int) ([]entities.Order, error) {
	return nil, nil
}

// условный переход: срабатывает только если заказ всё ещё в статусе from
func (s *stubStore) UpdateOrderStatus(ctx context.Context, orderID string, from, to entities.OrderStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[orderID]
	if !ok || o.Status != from {
		return entities.ErrInvalidTransition
	}
	o.Status = to
	s.orders[orderID] = o
	return nil
}

type passthroughTxManager struct{}

func (passthroughTxManager) BeginTx(ctx context.Context) (context.Context, trm.Transaction, error) {
	return ctx, noopTx{}, nil
}

func (passthroughTxManager) Do(ctx context.Context, callback func(ctx context.Context) error) error {
	return callback(ctx)
}

type noopTx struct{}

func (noopTx) Commit() error   { return nil }
func (noopTx) Rollback() error { return nil }

type noopCartClient struct{}

func (noopCartClient) ClearCart(ctx context.Context, userID int64) error { return nil }

type noopPublisher struct{}

func (noopPublisher) Publish(ctx context.Context, event entities.OrderEvent) error { return nil }

type noopCache struct{}

func (noopCache) Get(key string) ([]byte, bool) { return nil, false }
func (noopCache) Set(key string, value []byte)  {}

func TestOrderService_PlaceOrder_Concurrent(t *testing.T) {
	store := newStubStore(map[int64]int{1: 5})
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := service.NewOrderService(logger, passthroughTxManager{}, store, store, noopCartClient{}, noopPublisher{}, noopCache{})

	results := make([]error, 2)
	var g errgroup.Group
	for i := range results {
		i := i
		g.Go(func() error {
			_, err := svc.PlaceOrder(context.Background(), validCheckout(entities.LineRequest{ProductID: 1, Quantity: 3}))
			results[i] = err
			return nil
		})
	}
	require.NoError(t, g.Wait())

	succeeded, failed := 0, 0
	for _, err := range results {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, entities.ErrInsufficientStock)
		failed++
	}

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, failed)
	assert.Equal(t, 2, store.stock[1])
	assert.Equal(t, 3, store.sales[1])
}

func TestOrderService_UpdateStatus_ConcurrentCancellation(t *testing.T) {
	store := newStubStore(map[int64]int{1: 0})
	store.sales[1] = 4
	store.orders["order-123"] = entities.Order{
		OrderID: "order-123",
		UserID:  42,
		Status:  entities.StatusPending,
		Lines: []entities.OrderLine{
			{LineID: "l1", ProductID: 1, Quantity: 4, UnitPrice: 1000},
		},
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.NewOrderService(logger, passthroughTxManager{}, store, store, noopCartClient{}, noopPublisher{}, noopCache{})

	results := make([]error, 2)
	var g errgroup.Group
	for i := range results {
		i := i
		g.Go(func() error {
			_, err := svc.UpdateStatus(context.Background(), "order-123", entities.StatusCancelled)
			results[i] = err
			return nil
		})
	}
	require.NoError(t, g.Wait())

	succeeded, failed := 0, 0
	for _, err := range results {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, entities.ErrInvalidTransition)
		failed++
	}

	// отмена возвращает остатки ровно один раз, как бы ни наложились запросы
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, failed)
	assert.Equal(t, 4, store.stock[1])
	assert.Equal(t, 0, store.sales[1])
	assert.Equal(t, entities.StatusCancelled, store.orders["order-123"].Status)
}

func TestOrderService_GetOrderByID(t *testing.T) {
	validOrder := entities.Order{OrderID: "order-123", Status: entities.StatusPending, TotalAmount: 4800}
	validData, err := validOrder.Marshal()
	require.NoError(t, err)

	testCases := []struct {
		name         string
		orderID      string
		mockBehavior func(orders *mocks.MockOrderRepo, cache *mocks.MockCache)
		wantErr      error
		want         entities.Order
	}{
		{
			name:    "success from cache",
			orderID: "order-123",
			mockBehavior: func(_ *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("order-123").Return(validData, true).Once()
			},
			want: validOrder,
		},
		{
			name:    "cache hit but unmarshal fails",
			orderID: "order-123",
			mockBehavior: func(_ *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("order-123").Return([]byte("broken"), true).Once()
			},
			wantErr: entities.ErrInvalidOrder,
		},
		{
			name:    "success from repo and set to cache",
			orderID: "order-123",
			mockBehavior: func(orders *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("order-123").Return(nil, false).Once()
				orders.EXPECT().GetOrderByID(mock.Anything, "order-123").Return(validOrder, nil).Once()
				cache.EXPECT().Set("order-123", validData).Return().Once()
			},
			want: validOrder,
		},
		{
			name:    "not found in repo",
			orderID: "not-exist",
			mockBehavior: func(orders *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("not-exist").Return(nil, false).Once()
				orders.EXPECT().GetOrderByID(mock.Anything, "not-exist").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name:    "second attempt from repo",
			orderID: "order-123",
			mockBehavior: func(orders *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("order-123").Return(nil, false).Once()
				orders.EXPECT().GetOrderByID(mock.Anything, "order-123").
					Return(entities.Order{}, errors.New("some error")).Once()
				orders.EXPECT().GetOrderByID(mock.Anything, "order-123").
					Return(validOrder, nil).Once()
				cache.EXPECT().Set("order-123", validData).Return().Once()
			},
			want: validOrder,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orders := mocks.NewMockOrderRepo(t)
			catalog := mocks.NewMockCatalogRepo(t)
			cart := mocks.NewMockCartClient(t)
			events := mocks.NewMockEventPublisher(t)
			cache := mocks.NewMockCache(t)
			tx := txMocks.NewMockManager(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			tc.mockBehavior(orders, cache)

			svc := service.NewOrderService(logger, tx, orders, catalog, cart, events, cache)

			got, err := svc.GetOrderByID(context.Background(), tc.orderID)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestOrderService_UpdateStatus(t *testing.T) {
	pendingOrder := entities.Order{
		OrderID: "order-123",
		UserID:  42,
		Status:  entities.StatusPending,
		Lines: []entities.OrderLine{
			{LineID: "l1", ProductID: 1, Quantity: 4, UnitPrice: 1200, OptionID: 5},
			{LineID: "l2", ProductID: 2, Quantity: 1, UnitPrice: 300},
		},
	}

	testCases := []struct {
		name         string
		orderID      string
		next         entities.OrderStatus
		mockBehavior func(m placeOrderMocks)
		wantErr      error
		wantStatus   entities.OrderStatus
	}{
		{
			name:    "pending to paid",
			orderID: "order-123",
			next:    entities.StatusPaid,
			mockBehavior: func(m placeOrderMocks) {
				m.orders.EXPECT().GetOrderByID(mock.Anything, "order-123").Return(pendingOrder, nil).Once()
				m.orders.EXPECT().UpdateOrderStatus(mock.Anything, "order-123", entities.StatusPending, entities.StatusPaid).Return(nil).Once()
				m.events.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()
				m.cache.EXPECT().Set(mock.Anything, mock.Anything).Return()
			},
			wantStatus: entities.StatusPaid,
		},
		{
			name:    "cancellation restores inventory",
			orderID: "order-123",
			next:    entities.StatusCancelled,
			mockBehavior: func(m placeOrderMocks) {
				m.orders.EXPECT().GetOrderByID(mock.Anything, "order-123").Return(pendingOrder, nil).Once()
				m.orders.EXPECT().UpdateOrderStatus(mock.Anything, "order-123", entities.StatusPending, entities.StatusCancelled).Return(nil).Once()
				m.catalog.EXPECT().RestoreProductStock(mock.Anything, int64(1), 4).Return(nil).Once()
				m.catalog.EXPECT().RestoreOptionStock(mock.Anything, int64(5), 4).Return(nil).Once()
				m.catalog.EXPECT().RestoreProductStock(mock.Anything, int64(2), 1).Return(nil).Once()
				m.events.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()
				m.cache.EXPECT().Set(mock.Anything, mock.Anything).Return()
			},
			wantStatus: entities.StatusCancelled,
		},
		{
			// конкурентный переход успел между чтением и записью:
			// условная запись отклоняет, остатки не возвращаются
			name:    "lost conditional write aborts before restore",
			orderID: "order-123",
			next:    entities.StatusCancelled,
			mockBehavior: func(m placeOrderMocks) {
				m.orders.EXPECT().GetOrderByID(mock.Anything, "order-123").Return(pendingOrder, nil).Once()
				m.orders.EXPECT().UpdateOrderStatus(mock.Anything, "order-123", entities.StatusPending, entities.StatusCancelled).
					Return(entities.ErrInvalidTransition).Once()
			},
			wantErr: entities.ErrInvalidTransition,
		},
		{
			name:    "pending to completed is not allowed",
			orderID: "order-123",
			next:    entities.StatusCompleted,
			mockBehavior: func(m placeOrderMocks) {
				m.orders.EXPECT().GetOrderByID(mock.Anything, "order-123").Return(pendingOrder, nil).Once()
			},
			wantErr: entities.ErrInvalidTransition,
		},
		{
			name:    "unknown status",
			orderID: "order-123",
			next:    entities.OrderStatus("SHIPPED"),
			wantErr: entities.ErrInvalidRequest,
		},
		{
			name:    "order not found",
			orderID: "not-exist",
			next:    entities.StatusPaid,
			mockBehavior: func(m placeOrderMocks) {
				m.orders.EXPECT().GetOrderByID(mock.Anything, "not-exist").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := placeOrderMocks{
				orders:  mocks.NewMockOrderRepo(t),
				catalog: mocks.NewMockCatalogRepo(t),
				cart:    mocks.NewMockCartClient(t),
				events:  mocks.NewMockEventPublisher(t),
				cache:   mocks.NewMockCache(t),
			}
			tx := txMocks.NewMockManager(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			tx.EXPECT().
				Do(mock.Anything, mock.Anything).
				RunAndReturn(
					func(ctx context.Context, cb func(ctx context.Context) error) error {
						return cb(ctx)
					}).Maybe()

			if tc.mockBehavior != nil {
				tc.mockBehavior(m)
			}

			svc := service.NewOrderService(logger, tx, m.orders, m.catalog, m.cart, m.events, m.cache)

			order, err := svc.UpdateStatus(context.Background(), tc.orderID, tc.next)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, order.Status)
		})
	}
}
