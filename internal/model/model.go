// Package model defines the eight catalog aggregates. Column names
// follow the classic sales-catalog schema; optional fields are pointers
// so the JSON surface emits null and the store holds NULL.
package model

import "github.com/shopspring/decimal"

func init() {
	// Monetary fields serialize as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}
