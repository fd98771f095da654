// Package dto holds the wire types shared by the store handlers and the
// gateway's forwarding client, so both sides of the internal API agree on
// one shape.
package dto

import "github.com/shopspring/decimal"

// Monetary amounts travel as JSON numbers, like the contract they replace.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}
