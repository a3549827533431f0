package domain

import "github.com/shopspring/decimal"

func init() {
	// The rental API exchanges amounts as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}
