// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-chat/backend/internal/application/usecase/message"
	"github.com/expense-chat/backend/internal/domain/entity"
	domainerror "github.com/expense-chat/backend/internal/domain/error"
	"github.com/expense-chat/backend/internal/integration/entrypoint/dto"
	"github.com/expense-chat/backend/internal/integration/entrypoint/middleware"
)

// MessageController handles message endpoints.
type MessageController struct {
	createUseCase *message.CreateMessageUseCase
	listUseCase   *message.ListMessagesUseCase
	updateUseCase *message.UpdateMessageUseCase
	deleteUseCase *message.DeleteMessageUseCase
}

// NewMessageController creates a new message controller instance.
func NewMessageController(
	createUseCase *message.CreateMessageUseCase,
	listUseCase *message.ListMessagesUseCase,
	updateUseCase *message.UpdateMessageUseCase,
	deleteUseCase *message.DeleteMessageUseCase,
) *MessageController {
	return &MessageController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /api/messages requests.
func (c *MessageController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "inputText is required",
			Code:  string(domainerror.ErrCodeMissingInputText),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), message.CreateMessageInput{
		UserID:    userID,
		InputText: req.InputText,
	})
	if err != nil {
		c.handleMessageError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreateMessageResponse{
		Message: output.Message,
	})
}

// List handles GET /api/messages requests. Supported query params:
// limit (page size, default 100) and all=true (entire history).
func (c *MessageController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	input := message.ListMessagesInput{UserID: userID}
	if raw := ctx.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid limit parameter",
			})
			return
		}
		input.Limit = limit
	}
	input.All = ctx.Query("all") == "true"

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleMessageError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ListMessagesResponse{
		Messages: output.Messages,
		Totals:   output.Totals,
	})
}

// Update handles PATCH /api/messages/:id requests.
func (c *MessageController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	messageID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid message ID",
			Code:  string(domainerror.ErrCodeInvalidMessageID),
		})
		return
	}

	var req dto.UpdateMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := message.UpdateMessageInput{
		MessageID:  messageID,
		UserID:     userID,
		Category:   req.Category,
		Tags:       req.Tags,
		Sentiment:  req.Sentiment,
		IsFavorite: req.IsFavorite,
	}
	if req.Amount != nil {
		amount := decimal.NewFromFloat(*req.Amount)
		input.Amount = &amount
	}
	if req.Type != nil {
		transactionType := entity.TransactionType(*req.Type)
		input.Type = &transactionType
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid date format",
			})
			return
		}
		input.Date = &date
	}

	if err := c.updateUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleMessageError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Message updated",
	})
}

// Delete handles DELETE /api/messages/:id requests.
func (c *MessageController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	messageID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid message ID",
			Code:  string(domainerror.ErrCodeInvalidMessageID),
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), message.DeleteMessageInput{
		MessageID: messageID,
		UserID:    userID,
	}); err != nil {
		c.handleMessageError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Message deleted",
	})
}

// parseDate accepts a calendar date or a full RFC3339 instant.
func parseDate(raw string) (time.Time, error) {
	if date, err := time.Parse("2006-01-02", raw); err == nil {
		return date.UTC(), nil
	}
	date, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, err
	}
	return date.UTC(), nil
}

// handleMessageError handles message errors and returns appropriate HTTP responses.
func (c *MessageController) handleMessageError(ctx *gin.Context, err error) {
	var msgErr *domainerror.MessageError
	if errors.As(err, &msgErr) {
		ctx.JSON(getStatusCodeForMessageError(msgErr.Code), dto.ErrorResponse{
			Error: msgErr.Message,
			Code:  string(msgErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForMessageError maps message error codes to HTTP status codes.
func getStatusCodeForMessageError(code domainerror.MessageErrorCode) int {
	switch code {
	case domainerror.ErrCodeMissingInputText,
		domainerror.ErrCodeInvalidMessageID,
		domainerror.ErrCodeInvalidMessageType,
		domainerror.ErrCodeNegativeAmount,
		domainerror.ErrCodeMessageNotParsed:
		return http.StatusBadRequest
	case domainerror.ErrCodeMessageNotFound,
		domainerror.ErrCodeNotAuthorizedMessage:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// respondUnauthenticated writes the shared missing-session response.
func respondUnauthenticated(ctx *gin.Context) {
	ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: "Authentication required",
		Code:  string(domainerror.ErrCodeMissingToken),
	})
}
