// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/expense-chat/backend/internal/application/usecase/budget"
	domainerror "github.com/expense-chat/backend/internal/domain/error"
	"github.com/expense-chat/backend/internal/integration/entrypoint/dto"
	"github.com/expense-chat/backend/internal/integration/entrypoint/middleware"
)

// BudgetController handles budget endpoints.
type BudgetController struct {
	getBudgetUseCase    *budget.GetBudgetUseCase
	updateBudgetUseCase *budget.UpdateBudgetUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(
	getBudgetUseCase *budget.GetBudgetUseCase,
	updateBudgetUseCase *budget.UpdateBudgetUseCase,
) *BudgetController {
	return &BudgetController{
		getBudgetUseCase:    getBudgetUseCase,
		updateBudgetUseCase: updateBudgetUseCase,
	}
}

// Get handles GET /api/budget requests.
func (c *BudgetController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.getBudgetUseCase.Execute(ctx.Request.Context(), budget.GetBudgetInput{
		UserID: userID,
	})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetResponse(output.Budget))
}

// Update handles PATCH /api/budget requests.
func (c *BudgetController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.UpdateBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := budget.UpdateBudgetInput{UserID: userID}
	if req.Expense != nil {
		limit := decimal.NewFromFloat(*req.Expense)
		input.Expense = &limit
	}
	if req.Income != nil {
		limit := decimal.NewFromFloat(*req.Income)
		input.Income = &limit
	}
	if req.Investments != nil {
		limit := decimal.NewFromFloat(*req.Investments)
		input.Investments = &limit
	}
	if req.Savings != nil {
		limit := decimal.NewFromFloat(*req.Savings)
		input.Savings = &limit
	}

	output, err := c.updateBudgetUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetResponse(output.Budget))
}

// handleBudgetError handles budget errors and returns appropriate HTTP responses.
func (c *BudgetController) handleBudgetError(ctx *gin.Context, err error) {
	var bgtErr *domainerror.BudgetError
	if errors.As(err, &bgtErr) {
		status := http.StatusInternalServerError
		switch bgtErr.Code {
		case domainerror.ErrCodeNegativeBudget:
			status = http.StatusBadRequest
		case domainerror.ErrCodeBudgetNotFound:
			status = http.StatusNotFound
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: bgtErr.Message,
			Code:  string(bgtErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
