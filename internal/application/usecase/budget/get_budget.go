// Package budget contains the budget read and update use cases.
package budget

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/expense-chat/backend/internal/application/adapter"
	"github.com/expense-chat/backend/internal/domain/entity"
	domainerror "github.com/expense-chat/backend/internal/domain/error"
)

// GetBudgetInput represents the input for fetching a user's budget.
type GetBudgetInput struct {
	UserID uuid.UUID
}

// GetBudgetOutput represents the output of a budget read.
type GetBudgetOutput struct {
	Budget *entity.Budget
}

// GetBudgetUseCase returns a user's budget, materializing the default
// row on first access.
type GetBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewGetBudgetUseCase creates a new GetBudgetUseCase instance.
func NewGetBudgetUseCase(budgetRepo adapter.BudgetRepository) *GetBudgetUseCase {
	return &GetBudgetUseCase{budgetRepo: budgetRepo}
}

// Execute fetches the budget, creating the default one when none exists.
func (uc *GetBudgetUseCase) Execute(ctx context.Context, input GetBudgetInput) (*GetBudgetOutput, error) {
	budget, err := uc.budgetRepo.FindByUser(ctx, input.UserID)
	if err == nil {
		return &GetBudgetOutput{Budget: budget}, nil
	}
	if !errors.Is(err, domainerror.ErrBudgetNotFound) {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetStoreFailure,
			"failed to load budget",
			err,
		)
	}

	budget = entity.NewDefaultBudget(input.UserID)
	if err := uc.budgetRepo.Create(ctx, budget); err != nil {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetStoreFailure,
			"failed to create default budget",
			err,
		)
	}

	slog.Info("default budget created", "user_id", input.UserID)

	return &GetBudgetOutput{Budget: budget}, nil
}
