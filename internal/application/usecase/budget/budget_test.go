package budget

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-chat/backend/internal/domain/entity"
	domainerror "github.com/expense-chat/backend/internal/domain/error"
)

type fakeBudgetRepo struct {
	budgets  map[uuid.UUID]*entity.Budget
	failWith error
	created  int
}

func newFakeBudgetRepo() *fakeBudgetRepo {
	return &fakeBudgetRepo{budgets: make(map[uuid.UUID]*entity.Budget)}
}

func (r *fakeBudgetRepo) FindByUser(_ context.Context, userID uuid.UUID) (*entity.Budget, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	budget, ok := r.budgets[userID]
	if !ok {
		return nil, domainerror.ErrBudgetNotFound
	}
	copied := *budget
	return &copied, nil
}

func (r *fakeBudgetRepo) Create(_ context.Context, budget *entity.Budget) error {
	if r.failWith != nil {
		return r.failWith
	}
	copied := *budget
	r.budgets[budget.UserID] = &copied
	r.created++
	return nil
}

func (r *fakeBudgetRepo) Update(_ context.Context, budget *entity.Budget) error {
	if r.failWith != nil {
		return r.failWith
	}
	copied := *budget
	r.budgets[budget.UserID] = &copied
	return nil
}

func decPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func TestGetBudget(t *testing.T) {
	t.Run("materializes the default budget on first read", func(t *testing.T) {
		repo := newFakeBudgetRepo()
		uc := NewGetBudgetUseCase(repo)
		userID := uuid.New()

		out, err := uc.Execute(context.Background(), GetBudgetInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !out.Budget.Expense.Equal(entity.DefaultExpenseBudget) {
			t.Errorf("expected default expense limit %s, got %s", entity.DefaultExpenseBudget, out.Budget.Expense)
		}
		if !out.Budget.Income.IsZero() || !out.Budget.Investments.IsZero() || !out.Budget.Savings.IsZero() {
			t.Errorf("expected zero non-expense limits, got %+v", out.Budget)
		}
		if repo.created != 1 {
			t.Errorf("expected one created row, got %d", repo.created)
		}
	})

	t.Run("second read returns the stored row", func(t *testing.T) {
		repo := newFakeBudgetRepo()
		uc := NewGetBudgetUseCase(repo)
		userID := uuid.New()

		first, err := uc.Execute(context.Background(), GetBudgetInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := uc.Execute(context.Background(), GetBudgetInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if first.Budget.ID != second.Budget.ID {
			t.Errorf("expected same budget row, got %s and %s", first.Budget.ID, second.Budget.ID)
		}
		if repo.created != 1 {
			t.Errorf("expected one created row, got %d", repo.created)
		}
	})

	t.Run("store failure is wrapped", func(t *testing.T) {
		repo := newFakeBudgetRepo()
		repo.failWith = errors.New("store unreachable")
		uc := NewGetBudgetUseCase(repo)

		_, err := uc.Execute(context.Background(), GetBudgetInput{UserID: uuid.New()})
		var berr *domainerror.BudgetError
		if !errors.As(err, &berr) {
			t.Fatalf("expected BudgetError, got %T", err)
		}
		if berr.Code != domainerror.ErrCodeBudgetStoreFailure {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeBudgetStoreFailure, berr.Code)
		}
	})
}

func TestUpdateBudget(t *testing.T) {
	t.Run("partial update keeps untouched limits", func(t *testing.T) {
		repo := newFakeBudgetRepo()
		uc := NewUpdateBudgetUseCase(repo)
		userID := uuid.New()

		out, err := uc.Execute(context.Background(), UpdateBudgetInput{
			UserID: userID,
			Income: decPtr(9000),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !out.Budget.Income.Equal(decimal.NewFromInt(9000)) {
			t.Errorf("expected income 9000, got %s", out.Budget.Income)
		}
		if !out.Budget.Expense.Equal(entity.DefaultExpenseBudget) {
			t.Errorf("expected expense to keep default %s, got %s", entity.DefaultExpenseBudget, out.Budget.Expense)
		}
	})

	t.Run("updates all four limits", func(t *testing.T) {
		repo := newFakeBudgetRepo()
		uc := NewUpdateBudgetUseCase(repo)
		userID := uuid.New()

		out, err := uc.Execute(context.Background(), UpdateBudgetInput{
			UserID:      userID,
			Expense:     decPtr(1000),
			Income:      decPtr(2000),
			Investments: decPtr(3000),
			Savings:     decPtr(4000),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		stored := repo.budgets[userID]
		if !stored.Expense.Equal(out.Budget.Expense) || !stored.Savings.Equal(decimal.NewFromInt(4000)) {
			t.Errorf("stored row does not match update: %+v", stored)
		}
		if !out.Budget.Investments.Equal(decimal.NewFromInt(3000)) {
			t.Errorf("expected investments 3000, got %s", out.Budget.Investments)
		}
	})

	t.Run("rejects negative limits", func(t *testing.T) {
		repo := newFakeBudgetRepo()
		uc := NewUpdateBudgetUseCase(repo)

		_, err := uc.Execute(context.Background(), UpdateBudgetInput{
			UserID:  uuid.New(),
			Expense: decPtr(-1),
		})
		if !errors.Is(err, domainerror.ErrNegativeBudget) {
			t.Errorf("expected ErrNegativeBudget, got %v", err)
		}
		if repo.created != 0 {
			t.Errorf("expected no budget row created on invalid input, got %d", repo.created)
		}
	})

	t.Run("zero is a valid limit", func(t *testing.T) {
		repo := newFakeBudgetRepo()
		uc := NewUpdateBudgetUseCase(repo)
		userID := uuid.New()

		out, err := uc.Execute(context.Background(), UpdateBudgetInput{
			UserID:  userID,
			Expense: decPtr(0),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Budget.Expense.IsZero() {
			t.Errorf("expected expense 0, got %s", out.Budget.Expense)
		}
	})
}
