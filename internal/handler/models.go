package handler

import (
	"time"

	"github.com/shopcore/order-placement-service/internal/entities"
)

// PlaceOrderRequest тело запроса оформления заказа
type PlaceOrderRequest struct {
	UserID          int64         `json:"user_id" validate:"required,gt=0"`
	ShippingAddress string        `json:"shipping_address" validate:"required"`
	PaymentMethod   string        `json:"payment_method" validate:"required"`
	Lines           []LineRequest `json:"lines" validate:"required,min=1,dive"`
}

// LineRequest одна позиция заказа
type LineRequest struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	OptionID  int64 `json:"option_id,omitempty" validate:"omitempty,gt=0"`
	Quantity  int   `json:"quantity" validate:"required,gt=0"`
}

// UpdateStatusRequest тело запроса смены статуса
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING PAID PAYMENT_FAILED COMPLETED CANCELLED"`
}

// Order представляет заказ
type Order struct {
	OrderID         string      `json:"order_id"`
	UserID          int64       `json:"user_id"`
	Status          string      `json:"status"`
	ShippingAddress string      `json:"shipping_address"`
	PaymentMethod   string      `json:"payment_method"`
	TotalAmount     int         `json:"total_amount"`
	TransactionRef  string      `json:"transaction_ref,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	Lines           []OrderLine `json:"lines"`
}

// OrderLine позиция заказа
type OrderLine struct {
	LineID      string    `json:"line_id"`
	ProductID   int64     `json:"product_id"`
	OptionID    int64     `json:"option_id,omitempty"`
	ProductName string    `json:"product_name"`
	OptionSize  string    `json:"option_size,omitempty"`
	Quantity    int       `json:"quantity"`
	UnitPrice   int       `json:"unit_price"`
	LineTotal   int       `json:"line_total"`
	CreatedAt   time.Time `json:"created_at"`
}

// InsufficientStockResponse ответ при нехватке остатка
type InsufficientStockResponse struct {
	Message   string `json:"message"`
	Product   string `json:"product"`
	Requested int    `json:"requested"`
	Available int    `json:"available"`
}

func PlaceOrderJSONToEntity(r PlaceOrderRequest) entities.PlaceOrderRequest {
	lines := make([]entities.LineRequest, 0, len(r.Lines))
	for _, l := range r.Lines {
		lines = append(lines, entities.LineRequest{
			ProductID: l.ProductID,
			OptionID:  l.OptionID,
			Quantity:  l.Quantity,
		})
	}

	return entities.PlaceOrderRequest{
		UserID:          r.UserID,
		ShippingAddress: r.ShippingAddress,
		PaymentMethod:   r.PaymentMethod,
		Lines:           lines,
	}
}

func OrderLineEntityToJSON(l entities.OrderLine) OrderLine {
	return OrderLine{
		LineID:      l.LineID,
		ProductID:   l.ProductID,
		OptionID:    l.OptionID,
		ProductName: l.ProductName,
		OptionSize:  l.OptionSize,
		Quantity:    l.Quantity,
		UnitPrice:   l.UnitPrice,
		LineTotal:   l.Total(),
		CreatedAt:   l.CreatedAt,
	}
}

func OrderEntityToJSON(o entities.Order) Order {
	lines := make([]OrderLine, 0, len(o.Lines))
	for _, l := range o.Lines {
		lines = append(lines, OrderLineEntityToJSON(l))
	}

	return Order{
		OrderID:         o.OrderID,
		UserID:          o.UserID,
		Status:          string(o.Status),
		ShippingAddress: o.ShippingAddress,
		PaymentMethod:   o.PaymentMethod,
		TotalAmount:     o.TotalAmount,
		TransactionRef:  o.TransactionRef,
		CreatedAt:       o.CreatedAt,
		Lines:           lines,
	}
}
