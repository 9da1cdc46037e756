// Package entity defines the core business entities for the domain layer.
package entity

import "github.com/shopspring/decimal"

// CategoryStat is one row of a category or tag breakdown: the summed
// amount, the number of contributing messages, and the share of the
// type total as a rounded whole percentage.
type CategoryStat struct {
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
	Count      int             `json:"count"`
	Percentage int             `json:"percentage"`
}

// TypeTotal is the aggregate amount and count for one transaction type.
type TypeTotal struct {
	Type   TransactionType
	Amount decimal.Decimal
	Count  int
}

// Analytics is the ephemeral result of an aggregation request. It is
// recomputed in full on every request and never persisted.
type Analytics struct {
	Expense     decimal.Decimal                   `json:"expense"`
	Income      decimal.Decimal                   `json:"income"`
	Investments decimal.Decimal                   `json:"investments"`
	Savings     decimal.Decimal                   `json:"savings"`
	Categories  map[TransactionType][]CategoryStat `json:"categories"`
	Tags        map[TransactionType][]CategoryStat `json:"tags"`
	Period      string                            `json:"period"`
}
