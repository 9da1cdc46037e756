// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/expense-chat/backend/internal/application/usecase/analytics"
	domainerror "github.com/expense-chat/backend/internal/domain/error"
	"github.com/expense-chat/backend/internal/integration/entrypoint/dto"
	"github.com/expense-chat/backend/internal/integration/entrypoint/middleware"
)

// AnalyticsController handles the analytics endpoint.
type AnalyticsController struct {
	getAnalyticsUseCase *analytics.GetAnalyticsUseCase
}

// NewAnalyticsController creates a new analytics controller instance.
func NewAnalyticsController(getAnalyticsUseCase *analytics.GetAnalyticsUseCase) *AnalyticsController {
	return &AnalyticsController{
		getAnalyticsUseCase: getAnalyticsUseCase,
	}
}

// Get handles GET /api/analytics requests. Supported query params:
// month ("YYYY-MM"), year, startDate and endDate ("2006-01-02").
// Month wins over year, year over the date range.
func (c *AnalyticsController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	input := analytics.GetAnalyticsInput{UserID: userID}

	if raw := ctx.Query("month"); raw != "" {
		input.Month = &raw
	}
	if raw := ctx.Query("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid year parameter",
				Code:  string(domainerror.ErrCodeInvalidAnalyticsFilter),
			})
			return
		}
		input.Year = &year
	}
	if raw := ctx.Query("startDate"); raw != "" {
		start, err := time.Parse("2006-01-02", raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid startDate parameter",
				Code:  string(domainerror.ErrCodeInvalidAnalyticsFilter),
			})
			return
		}
		input.StartDate = &start
	}
	if raw := ctx.Query("endDate"); raw != "" {
		end, err := time.Parse("2006-01-02", raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid endDate parameter",
				Code:  string(domainerror.ErrCodeInvalidAnalyticsFilter),
			})
			return
		}
		input.EndDate = &end
	}

	output, err := c.getAnalyticsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleAnalyticsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AnalyticsResponse{
		Analytics: output.Analytics,
	})
}

// handleAnalyticsError handles analytics errors and returns appropriate HTTP responses.
func (c *AnalyticsController) handleAnalyticsError(ctx *gin.Context, err error) {
	var anlErr *domainerror.AnalyticsError
	if errors.As(err, &anlErr) {
		status := http.StatusInternalServerError
		if anlErr.Code == domainerror.ErrCodeInvalidAnalyticsFilter {
			status = http.StatusBadRequest
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: anlErr.Message,
			Code:  string(anlErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
