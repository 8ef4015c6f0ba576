package entities

import "time"

const (
	EventOrderPlaced        = "order.placed"
	EventOrderStatusChanged = "order.status_changed"
)

type OrderEvent struct {
	Type        string
	OrderID     string
	UserID      int64
	Status      OrderStatus
	TotalAmount int
	OccurredAt  time.Time
}
