package cart

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopcore/order-placement-service/internal/config"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker"
)

// Client вызывает сервис корзины после успешного коммита заказа.
// Вызов некритичный, поэтому закрыт circuit breaker'ом: лежащая корзина
// не должна съедать таймаут на каждом оформлении.
type Client struct {
	logger  *slog.Logger
	http    *resty.Client
	breaker *gobreaker.CircuitBreaker
}

func New(logger *slog.Logger, cfg config.Cart) *Client {
	httpClient := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetRetryCount(0)

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "cart",
		MaxRequests: 3,
		Interval:    15 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Info("circuit breaker state changed",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return &Client{
		logger:  logger.With(slog.String("client", "cart")),
		http:    httpClient,
		breaker: breaker,
	}
}

func (c *Client) ClearCart(ctx context.Context, userID int64) error {
	_, err := c.breaker.Execute(func() (any, error) {
		resp, err := c.http.R().
			SetContext(ctx).
			Delete(fmt.Sprintf("/carts/%d/items", userID))
		if err != nil {
			return nil, err
		}
		if resp.IsError() {
			return nil, fmt.Errorf("cart service returned %s", resp.Status())
		}
		return nil, nil
	})
	if err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}
