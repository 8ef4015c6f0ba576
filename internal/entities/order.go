package entities

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"time"
)

type OrderStatus string

const (
	StatusPending       OrderStatus = "PENDING"
	StatusPaid          OrderStatus = "PAID"
	StatusPaymentFailed OrderStatus = "PAYMENT_FAILED"
	StatusCompleted     OrderStatus = "COMPLETED"
	StatusCancelled     OrderStatus = "CANCELLED"
)

// Переходы инициируются внешними вызовами после оформления,
// движок создаёт заказы только в статусе PENDING
var statusTransitions = map[OrderStatus][]OrderStatus{
	StatusPending: {StatusPaid, StatusPaymentFailed, StatusCancelled},
	StatusPaid:    {StatusCompleted, StatusCancelled},
}

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusPaymentFailed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type OrderLine struct {
	LineID    string
	ProductID int64
	// OptionID == 0 означает, что позиция без опции
	OptionID int64
	// имя товара и размер опции фиксируются в момент оформления, как и цена
	ProductName string
	OptionSize  string
	Quantity    int
	UnitPrice   int
	CreatedAt   time.Time
}

func (l OrderLine) Total() int {
	return l.UnitPrice * l.Quantity
}

type Order struct {
	OrderID         string
	UserID          int64
	Status          OrderStatus
	ShippingAddress string
	PaymentMethod   string
	TotalAmount     int
	TransactionRef  string
	CreatedAt       time.Time

	Lines []OrderLine
}

func (o *Order) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *Order) Unmarshal(data []byte) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	if err := dec.Decode(o); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOrder, err)
	}
	return nil
}

func init() {
	gob.Register(Order{})
	gob.Register(OrderLine{})
}
