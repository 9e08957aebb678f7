package entities

import "github.com/shopspring/decimal"

type Product struct {
	ID           string
	Name         string
	Image        string
	Price        decimal.Decimal
	CountInStock int
}

type StockItem struct {
	ProductID string
	Quantity  int
}
