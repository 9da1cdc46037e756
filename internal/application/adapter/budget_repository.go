// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/expense-chat/backend/internal/domain/entity"
)

// BudgetRepository defines the interface for budget persistence operations.
type BudgetRepository interface {
	// FindByUser retrieves the budget of a user.
	FindByUser(ctx context.Context, userID uuid.UUID) (*entity.Budget, error)

	// Create inserts a new budget row.
	Create(ctx context.Context, budget *entity.Budget) error

	// Update persists changed budget limits.
	Update(ctx context.Context, budget *entity.Budget) error
}
