package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopcore/order-placement-service/internal/config"
	"github.com/shopcore/order-placement-service/internal/entities"

	"github.com/segmentio/kafka-go"
)

type orderEvent struct {
	Type        string    `json:"type"`
	OrderID     string    `json:"order_id"`
	UserID      int64     `json:"user_id"`
	Status      string    `json:"status"`
	TotalAmount int       `json:"total_amount"`
	OccurredAt  time.Time `json:"occurred_at"`
}

type kafkaPublisher struct {
	logger *slog.Logger
	writer *kafka.Writer
}

func NewKafkaPublisher(logger *slog.Logger, cfg config.Kafka) *kafkaPublisher {
	return &kafkaPublisher{
		logger: logger.With(slog.String("publisher", "kafka")),
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
	}
}

// Publish шлёт событие заказа; ключ — order_id, чтобы события одного заказа
// попадали в одну партицию и сохраняли порядок
func (p *kafkaPublisher) Publish(ctx context.Context, event entities.OrderEvent) error {
	data, err := json.Marshal(orderEvent{
		Type:        event.Type,
		OrderID:     event.OrderID,
		UserID:      event.UserID,
		Status:      string(event.Status),
		TotalAmount: event.TotalAmount,
		OccurredAt:  event.OccurredAt,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal order event: %w", err)
	}

	if err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID),
		Value: data,
	}); err != nil {
		return fmt.Errorf("failed to write order event: %w", err)
	}
	return nil
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}
