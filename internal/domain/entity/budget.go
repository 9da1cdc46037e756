// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultExpenseBudget is the expense limit assigned when a user's
// budget is first materialized.
var DefaultExpenseBudget = decimal.NewFromInt(40000)

// Budget holds a user's monthly limits per transaction type. Each user
// has exactly one budget row, created lazily on first read.
type Budget struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Expense     decimal.Decimal
	Income      decimal.Decimal
	Investments decimal.Decimal
	Savings     decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewDefaultBudget creates the default budget for a user.
func NewDefaultBudget(userID uuid.UUID) *Budget {
	now := time.Now().UTC()

	return &Budget{
		ID:          uuid.New(),
		UserID:      userID,
		Expense:     DefaultExpenseBudget,
		Income:      decimal.Zero,
		Investments: decimal.Zero,
		Savings:     decimal.Zero,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
