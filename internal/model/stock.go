package model

import "github.com/shopspring/decimal"

// StockItem is a row in masters/stock-items.csv. Its GSTRate is the
// fallback when a voucher line carries no rate of its own.
type StockItem struct {
	Name    string
	Unit    string
	GSTRate decimal.Decimal // percentage
}
