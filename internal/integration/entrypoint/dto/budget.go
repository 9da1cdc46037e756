// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-chat/backend/internal/domain/entity"
)

// UpdateBudgetRequest represents the request body for a partial budget
// update. Absent fields keep their stored limit.
type UpdateBudgetRequest struct {
	Expense     *float64 `json:"expense"`
	Income      *float64 `json:"income"`
	Investments *float64 `json:"investments"`
	Savings     *float64 `json:"savings"`
}

// BudgetResponse represents the budget data in API responses.
type BudgetResponse struct {
	ID          string          `json:"id"`
	Expense     decimal.Decimal `json:"expense"`
	Income      decimal.Decimal `json:"income"`
	Investments decimal.Decimal `json:"investments"`
	Savings     decimal.Decimal `json:"savings"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ToBudgetResponse converts a domain Budget entity to a BudgetResponse DTO.
func ToBudgetResponse(budget *entity.Budget) BudgetResponse {
	return BudgetResponse{
		ID:          budget.ID.String(),
		Expense:     budget.Expense,
		Income:      budget.Income,
		Investments: budget.Investments,
		Savings:     budget.Savings,
		UpdatedAt:   budget.UpdatedAt,
	}
}
