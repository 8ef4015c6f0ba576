package repo

import (
	"database/sql"
	"time"

	"github.com/shopcore/order-placement-service/internal/entities"
)

type Order struct {
	OrderID         string         `db:"order_id"`
	UserID          int64          `db:"user_id"`
	Status          string         `db:"status"`
	ShippingAddress string         `db:"shipping_address"`
	PaymentMethod   string         `db:"payment_method"`
	TotalAmount     int            `db:"total_amount"`
	TransactionRef  sql.NullString `db:"transaction_ref"`
	CreatedAt       time.Time      `db:"created_at"`
}

type OrderLine struct {
	LineID      string         `db:"line_id"`
	OrderID     string         `db:"order_id"`
	ProductID   int64          `db:"product_id"`
	OptionID    sql.NullInt64  `db:"option_id"`
	ProductName string         `db:"product_name"`
	OptionSize  sql.NullString `db:"option_size"`
	Quantity    int            `db:"quantity"`
	UnitPrice   int            `db:"unit_price"`
	CreatedAt   time.Time      `db:"created_at"`
}

type Product struct {
	ProductID     int64  `db:"product_id"`
	Name          string `db:"name"`
	Price         int    `db:"price"`
	StockQuantity int    `db:"stock_quantity"`
	SalesVolume   int    `db:"sales_volume"`
}

type Option struct {
	OptionID        int64  `db:"option_id"`
	ProductID       int64  `db:"product_id"`
	Size            string `db:"size"`
	AdditionalPrice int    `db:"additional_price"`
	StockQuantity   int    `db:"stock_quantity"`
}

func OrderLineToEntity(l OrderLine) entities.OrderLine {
	return entities.OrderLine{
		LineID:      l.LineID,
		ProductID:   l.ProductID,
		OptionID:    nullInt64ToInt64(l.OptionID),
		ProductName: l.ProductName,
		OptionSize:  nullStringToString(l.OptionSize),
		Quantity:    l.Quantity,
		UnitPrice:   l.UnitPrice,
		CreatedAt:   l.CreatedAt,
	}
}

func OrderToEntity(o Order, lines []OrderLine) entities.Order {
	order := entities.Order{
		OrderID:         o.OrderID,
		UserID:          o.UserID,
		Status:          entities.OrderStatus(o.Status),
		ShippingAddress: o.ShippingAddress,
		PaymentMethod:   o.PaymentMethod,
		TotalAmount:     o.TotalAmount,
		TransactionRef:  nullStringToString(o.TransactionRef),
		CreatedAt:       o.CreatedAt,
	}

	if len(lines) > 0 {
		order.Lines = make([]entities.OrderLine, 0, len(lines))
		for _, l := range lines {
			order.Lines = append(order.Lines, OrderLineToEntity(l))
		}
	}

	return order
}

func ProductToEntity(p Product) entities.Product {
	return entities.Product{
		ProductID:     p.ProductID,
		Name:          p.Name,
		Price:         p.Price,
		StockQuantity: p.StockQuantity,
		SalesVolume:   p.SalesVolume,
	}
}

func OptionToEntity(o Option) entities.Option {
	return entities.Option{
		OptionID:        o.OptionID,
		ProductID:       o.ProductID,
		Size:            o.Size,
		AdditionalPrice: o.AdditionalPrice,
		StockQuantity:   o.StockQuantity,
	}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullInt64ToInt64(ni sql.NullInt64) int64 {
	if ni.Valid {
		return ni.Int64
	}
	return 0
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullInt64(i int64) sql.NullInt64 {
	if i == 0 {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: i, Valid: true}
}
