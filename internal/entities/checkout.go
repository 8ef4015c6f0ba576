package entities

// LineRequest описывает одну позицию чекаута
type LineRequest struct {
	ProductID int64
	OptionID  int64
	Quantity  int
}

type PlaceOrderRequest struct {
	UserID          int64
	ShippingAddress string
	PaymentMethod   string
	Lines           []LineRequest
}
