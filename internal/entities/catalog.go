package entities

type Product struct {
	ProductID     int64
	Name          string
	Price         int
	StockQuantity int
	SalesVolume   int
}

type Option struct {
	OptionID        int64
	ProductID       int64
	Size            string
	AdditionalPrice int
	StockQuantity   int
}
