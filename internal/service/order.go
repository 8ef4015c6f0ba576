package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopcore/order-placement-service/internal/entities"
	"github.com/shopcore/order-placement-service/pkg/trm"
	"github.com/shopcore/order-placement-service/pkg/utils"

	"github.com/google/uuid"
)

type OrderRepo interface {
	SaveOrder(ctx context.Context, o entities.Order) error
	SaveOrderLines(ctx context.Context, orderID string, lines []entities.OrderLine) error
	GetOrderByID(ctx context.Context, orderID string) (entities.Order, error)
	ListOrdersByUser(ctx context.Context, userID int64) ([]entities.Order, error)
	LatestOrders(ctx context.Context, count int) ([]entities.Order, error)

	// UpdateOrderStatus меняет статус условно относительно from:
	// ErrInvalidTransition, если заказ уже не в этом статусе
	UpdateOrderStatus(ctx context.Context, orderID string, from, to entities.OrderStatus) error
}

type CatalogRepo interface {
	UserExists(ctx context.Context, userID int64) (bool, error)
	GetProduct(ctx context.Context, productID int64) (entities.Product, error)
	GetOption(ctx context.Context, optionID int64) (entities.Option, error)

	// Условные декременты: ErrInsufficientStock при нехватке остатка, без записи
	DecrementProductStock(ctx context.Context, productID int64, quantity int) error
	DecrementOptionStock(ctx context.Context, optionID int64, quantity int) error

	RestoreProductStock(ctx context.Context, productID int64, quantity int) error
	RestoreOptionStock(ctx context.Context, optionID int64, quantity int) error
}

type CartClient interface {
	ClearCart(ctx context.Context, userID int64) error
}

type EventPublisher interface {
	Publish(ctx context.Context, event entities.OrderEvent) error
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	orders    OrderRepo
	catalog   CatalogRepo
	cart      CartClient
	events    EventPublisher
	cache     Cache
}

func NewOrderService(
	logger *slog.Logger,
	txManager trm.Manager,
	orders OrderRepo,
	catalog CatalogRepo,
	cart CartClient,
	events EventPublisher,
	cache Cache,
) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		orders:    orders,
		catalog:   catalog,
		cart:      cart,
		events:    events,
		cache:     cache,
	}
}

// PlaceOrder оформляет заказ: валидация всех позиций, списание остатков и
// вставка заказа с позициями выполняются в одной транзакции, всё или ничего.
func (s *orderService) PlaceOrder(ctx context.Context, req entities.PlaceOrderRequest) (entities.Order, error) {
	if err := validatePlaceOrder(req); err != nil {
		return entities.Order{}, err
	}

	var order entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		exists, err := s.catalog.UserExists(ctx, req.UserID)
		if err != nil {
			return fmt.Errorf("failed to check user: %w", err)
		}
		if !exists {
			return entities.ErrUserNotFound
		}

		// Первый проход только читает: многопозиционный заказ падает целиком
		// до того, как тронут хоть один счётчик
		if err := s.validateLines(ctx, req.Lines); err != nil {
			return err
		}

		order, err = s.commitLines(ctx, req)
		if err != nil {
			return err
		}

		if err := s.orders.SaveOrder(ctx, order); err != nil {
			return fmt.Errorf("failed to save order: %w", err)
		}
		if err := s.orders.SaveOrderLines(ctx, order.OrderID, order.Lines); err != nil {
			return fmt.Errorf("failed to save order lines: %w", err)
		}
		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}

	s.logger.InfoContext(ctx, "order placed",
		slog.String("order_id", order.OrderID),
		slog.Int64("user_id", order.UserID),
		slog.Int("total", order.TotalAmount),
	)

	// Заказ важнее устаревшей корзины: ошибка очистки не откатывает заказ
	if err := s.cart.ClearCart(ctx, req.UserID); err != nil {
		s.logger.WarnContext(ctx, "failed to clear cart",
			slog.Int64("user_id", req.UserID), slog.Any("error", err))
	}

	s.publish(ctx, entities.EventOrderPlaced, order)
	s.cacheOrder(order)

	return order, nil
}

func (s *orderService) validateLines(ctx context.Context, lines []entities.LineRequest) error {
	for _, lr := range lines {
		product, err := s.catalog.GetProduct(ctx, lr.ProductID)
		if err != nil {
			return err
		}
		if product.StockQuantity < lr.Quantity {
			return &entities.InsufficientStockError{
				Name:      product.Name,
				Requested: lr.Quantity,
				Available: product.StockQuantity,
			}
		}
		if lr.OptionID == 0 {
			continue
		}
		option, err := s.catalog.GetOption(ctx, lr.OptionID)
		if err != nil {
			return err
		}
		if option.ProductID != product.ProductID {
			return entities.ErrOptionMismatch
		}
		if option.StockQuantity < lr.Quantity {
			return &entities.InsufficientStockError{
				Name:      optionName(product, option),
				Requested: lr.Quantity,
				Available: option.StockQuantity,
			}
		}
	}
	return nil
}

// commitLines повторно резолвит каждую позицию: между проходами конкурентный
// заказ мог забрать остаток, корректность гарантирует только условный декремент
func (s *orderService) commitLines(ctx context.Context, req entities.PlaceOrderRequest) (entities.Order, error) {
	now := time.Now()
	lines := make([]entities.OrderLine, 0, len(req.Lines))
	total := 0

	for _, lr := range req.Lines {
		product, err := s.catalog.GetProduct(ctx, lr.ProductID)
		if err != nil {
			return entities.Order{}, err
		}

		if err := s.catalog.DecrementProductStock(ctx, lr.ProductID, lr.Quantity); err != nil {
			if errors.Is(err, entities.ErrInsufficientStock) {
				return entities.Order{}, &entities.InsufficientStockError{
					Name:      product.Name,
					Requested: lr.Quantity,
					Available: product.StockQuantity,
				}
			}
			return entities.Order{}, err
		}

		unitPrice := product.Price
		var optionSize string

		if lr.OptionID != 0 {
			option, err := s.catalog.GetOption(ctx, lr.OptionID)
			if err != nil {
				return entities.Order{}, err
			}
			if option.ProductID != product.ProductID {
				return entities.Order{}, entities.ErrOptionMismatch
			}
			if err := s.catalog.DecrementOptionStock(ctx, lr.OptionID, lr.Quantity); err != nil {
				if errors.Is(err, entities.ErrInsufficientStock) {
					return entities.Order{}, &entities.InsufficientStockError{
						Name:      optionName(product, option),
						Requested: lr.Quantity,
						Available: option.StockQuantity,
					}
				}
				return entities.Order{}, err
			}
			unitPrice += option.AdditionalPrice
			optionSize = option.Size
		}

		lines = append(lines, entities.OrderLine{
			LineID:      uuid.NewString(),
			ProductID:   lr.ProductID,
			OptionID:    lr.OptionID,
			ProductName: product.Name,
			OptionSize:  optionSize,
			Quantity:    lr.Quantity,
			UnitPrice:   unitPrice,
			CreatedAt:   now,
		})
		total += unitPrice * lr.Quantity
	}

	return entities.Order{
		OrderID:         uuid.NewString(),
		UserID:          req.UserID,
		Status:          entities.StatusPending,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
		TotalAmount:     total,
		CreatedAt:       now,
		Lines:           lines,
	}, nil
}

func (s *orderService) GetOrderByID(ctx context.Context, orderID string) (entities.Order, error) {
	if data, ok := s.cache.Get(orderID); ok {
		var order entities.Order
		if err := order.Unmarshal(data); err != nil {
			s.logger.Error("failed to unmarshal order", slog.String("order_id", orderID), slog.Any("error", err))
			return entities.Order{}, err
		}
		return order, nil
	}

	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.orders.GetOrderByID(ctx, orderID)
		return err
	}
	cfg := utils.RetryConfig{
		InitialDelay: 100 * time.Millisecond,
		MaxAttempts:  5,
		Multiplier:   2,
	}
	if err := utils.Retry(cfg, fn, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, err
	}

	s.cacheOrder(order)
	return order, nil
}

func (s *orderService) ListOrdersByUser(ctx context.Context, userID int64) ([]entities.Order, error) {
	orders, err := s.orders.ListOrdersByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// UpdateStatus меняет статус вне транзакции оформления. Переход в CANCELLED
// возвращает остатки и откатывает счётчик продаж по исходным количествам.
func (s *orderService) UpdateStatus(ctx context.Context, orderID string, next entities.OrderStatus) (entities.Order, error) {
	if !next.Valid() {
		return entities.Order{}, fmt.Errorf("%w: unknown status %q", entities.ErrInvalidRequest, next)
	}

	var order entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.orders.GetOrderByID(ctx, orderID)
		if err != nil {
			return err
		}
		if !current.Status.CanTransitionTo(next) {
			return fmt.Errorf("%w: %s -> %s", entities.ErrInvalidTransition, current.Status, next)
		}

		// условная запись: конкурентный переход между чтением и записью
		// отклоняется здесь, до возврата остатков
		if err := s.orders.UpdateOrderStatus(ctx, orderID, current.Status, next); err != nil {
			return err
		}

		if next == entities.StatusCancelled {
			if err := s.restoreInventory(ctx, current.Lines); err != nil {
				return err
			}
		}

		current.Status = next
		order = current
		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}

	s.logger.InfoContext(ctx, "order status updated",
		slog.String("order_id", orderID), slog.String("status", string(next)))

	s.publish(ctx, entities.EventOrderStatusChanged, order)
	s.cacheOrder(order)

	return order, nil
}

func (s *orderService) restoreInventory(ctx context.Context, lines []entities.OrderLine) error {
	for _, l := range lines {
		if err := s.catalog.RestoreProductStock(ctx, l.ProductID, l.Quantity); err != nil {
			return fmt.Errorf("failed to restore product stock: %w", err)
		}
		if l.OptionID != 0 {
			if err := s.catalog.RestoreOptionStock(ctx, l.OptionID, l.Quantity); err != nil {
				return fmt.Errorf("failed to restore option stock: %w", err)
			}
		}
	}
	return nil
}

func (s *orderService) WarmUpCache(ctx context.Context, count int) error {
	orders, err := s.orders.LatestOrders(ctx, count)
	if err != nil {
		return fmt.Errorf("failed to warm up cache: %w", err)
	}
	for _, order := range orders {
		s.cacheOrder(order)
	}
	s.logger.Info("cache warmed up", slog.Int("orders", len(orders)))
	return nil
}

func (s *orderService) cacheOrder(order entities.Order) {
	data, err := order.Marshal()
	if err != nil {
		s.logger.Error("failed to marshal order", slog.String("order_id", order.OrderID), slog.Any("error", err))
		return
	}
	s.cache.Set(order.OrderID, data)
}

func (s *orderService) publish(ctx context.Context, eventType string, order entities.Order) {
	event := entities.OrderEvent{
		Type:        eventType,
		OrderID:     order.OrderID,
		UserID:      order.UserID,
		Status:      order.Status,
		TotalAmount: order.TotalAmount,
		OccurredAt:  time.Now(),
	}
	if err := s.events.Publish(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "failed to publish order event",
			slog.String("order_id", order.OrderID), slog.String("type", eventType), slog.Any("error", err))
	}
}

func validatePlaceOrder(req entities.PlaceOrderRequest) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: user id is required", entities.ErrInvalidRequest)
	}
	if strings.TrimSpace(req.ShippingAddress) == "" {
		return fmt.Errorf("%w: shipping address is blank", entities.ErrInvalidRequest)
	}
	if req.PaymentMethod == "" {
		return fmt.Errorf("%w: payment method is required", entities.ErrInvalidRequest)
	}
	if len(req.Lines) == 0 {
		return fmt.Errorf("%w: order has no lines", entities.ErrInvalidRequest)
	}
	for _, l := range req.Lines {
		if l.ProductID <= 0 {
			return fmt.Errorf("%w: product id is required", entities.ErrInvalidRequest)
		}
		if l.Quantity <= 0 {
			return fmt.Errorf("%w: quantity must be positive", entities.ErrInvalidRequest)
		}
	}
	return nil
}

func optionName(product entities.Product, option entities.Option) string {
	return product.Name + " (" + option.Size + ")"
}
