package budget

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-chat/backend/internal/application/adapter"
	"github.com/expense-chat/backend/internal/domain/entity"
	domainerror "github.com/expense-chat/backend/internal/domain/error"
)

// UpdateBudgetInput represents a partial budget update. Nil fields keep
// their stored value.
type UpdateBudgetInput struct {
	UserID      uuid.UUID
	Expense     *decimal.Decimal
	Income      *decimal.Decimal
	Investments *decimal.Decimal
	Savings     *decimal.Decimal
}

// UpdateBudgetOutput represents the output of a budget update.
type UpdateBudgetOutput struct {
	Budget *entity.Budget
}

// UpdateBudgetUseCase applies partial limit changes to a user's budget.
type UpdateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
	getBudget  *GetBudgetUseCase
	now        func() time.Time
}

// NewUpdateBudgetUseCase creates a new UpdateBudgetUseCase instance.
func NewUpdateBudgetUseCase(budgetRepo adapter.BudgetRepository) *UpdateBudgetUseCase {
	return &UpdateBudgetUseCase{
		budgetRepo: budgetRepo,
		getBudget:  NewGetBudgetUseCase(budgetRepo),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Execute validates and applies the provided limits. The budget row is
// materialized first when the user has none yet.
func (uc *UpdateBudgetUseCase) Execute(ctx context.Context, input UpdateBudgetInput) (*UpdateBudgetOutput, error) {
	for _, limit := range []*decimal.Decimal{input.Expense, input.Income, input.Investments, input.Savings} {
		if limit != nil && limit.IsNegative() {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeNegativeBudget,
				"budget limits must not be negative",
				domainerror.ErrNegativeBudget,
			)
		}
	}

	current, err := uc.getBudget.Execute(ctx, GetBudgetInput{UserID: input.UserID})
	if err != nil {
		return nil, err
	}
	budget := current.Budget

	if input.Expense != nil {
		budget.Expense = *input.Expense
	}
	if input.Income != nil {
		budget.Income = *input.Income
	}
	if input.Investments != nil {
		budget.Investments = *input.Investments
	}
	if input.Savings != nil {
		budget.Savings = *input.Savings
	}
	budget.UpdatedAt = uc.now()

	if err := uc.budgetRepo.Update(ctx, budget); err != nil {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetStoreFailure,
			"failed to update budget",
			err,
		)
	}

	return &UpdateBudgetOutput{Budget: budget}, nil
}
