package domain

import "github.com/shopspring/decimal"

func init() {
	// API clients expect plain JSON numbers for amounts ("price": 4.5),
	// not quoted decimal strings.
	decimal.MarshalJSONWithoutQuotes = true
}
