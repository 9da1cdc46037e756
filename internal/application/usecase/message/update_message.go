// Package message contains message-related use cases.
package message

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-chat/backend/internal/application/adapter"
	"github.com/expense-chat/backend/internal/domain/entity"
	domainerror "github.com/expense-chat/backend/internal/domain/error"
)

// UpdateMessageInput represents the input for a partial message
// update. Nil fields are left untouched. Tags is a full-list replace;
// there is no append primitive.
type UpdateMessageInput struct {
	MessageID  uuid.UUID
	UserID     uuid.UUID
	Amount     *decimal.Decimal
	Category   *string
	Type       *entity.TransactionType
	Tags       *[]string
	Sentiment  *float64
	IsFavorite *bool
	Date       *time.Time
}

// UpdateMessageUseCase handles partial message updates.
type UpdateMessageUseCase struct {
	messageRepo adapter.MessageRepository
}

// NewUpdateMessageUseCase creates a new UpdateMessageUseCase instance.
func NewUpdateMessageUseCase(messageRepo adapter.MessageRepository) *UpdateMessageUseCase {
	return &UpdateMessageUseCase{messageRepo: messageRepo}
}

// Execute performs the message update. A date change moves both the
// record's creation time and the parsed timestamp and recomputes every
// calendar key from the new instant.
func (uc *UpdateMessageUseCase) Execute(ctx context.Context, input UpdateMessageInput) error {
	msg, err := uc.messageRepo.FindByID(ctx, input.MessageID)
	if err != nil {
		if errors.Is(err, domainerror.ErrMessageNotFound) {
			return domainerror.NewMessageError(
				domainerror.ErrCodeMessageNotFound,
				"message not found",
				domainerror.ErrMessageNotFound,
			)
		}
		return fmt.Errorf("failed to find message: %w", err)
	}

	// A row owned by someone else is indistinguishable from a missing
	// one to the caller.
	if msg.UserID != input.UserID {
		return domainerror.NewMessageError(
			domainerror.ErrCodeMessageNotFound,
			"message not found",
			domainerror.ErrMessageNotFound,
		)
	}

	touchesParsed := input.Amount != nil || input.Category != nil ||
		input.Type != nil || input.Tags != nil || input.Sentiment != nil ||
		input.Date != nil
	if touchesParsed && msg.Parsed == nil {
		return domainerror.NewMessageError(
			domainerror.ErrCodeMessageNotParsed,
			"message has no parsed data to edit",
			domainerror.ErrMessageNotParsed,
		)
	}

	if input.Type != nil && !entity.IsValidTransactionType(*input.Type) {
		return domainerror.NewMessageError(
			domainerror.ErrCodeInvalidMessageType,
			"transaction type must be one of EXPENSE, INCOME, INVESTMENTS, SAVINGS",
			domainerror.ErrInvalidMessageTransactionType,
		)
	}

	if input.Amount != nil && input.Amount.IsNegative() {
		return domainerror.NewMessageError(
			domainerror.ErrCodeNegativeAmount,
			"amount must not be negative",
			domainerror.ErrNegativeAmount,
		)
	}

	update := adapter.MessageUpdate{
		Amount:     input.Amount,
		Category:   input.Category,
		Type:       input.Type,
		Tags:       input.Tags,
		Sentiment:  input.Sentiment,
		IsFavorite: input.IsFavorite,
	}

	if input.Date != nil {
		date := input.Date.UTC()
		keys := DeriveCalendarKeys(date)
		update.Date = &date
		update.Year = &keys.Year
		update.Month = &keys.Month
		update.YearMonth = &keys.YearMonth
		update.YearMonthKey = &keys.YearMonthKey
		update.MonthName = &keys.MonthName
	}

	if err := uc.messageRepo.Update(ctx, input.MessageID, update); err != nil {
		if errors.Is(err, domainerror.ErrMessageNotFound) {
			return domainerror.NewMessageError(
				domainerror.ErrCodeMessageNotFound,
				"message not found",
				domainerror.ErrMessageNotFound,
			)
		}
		return fmt.Errorf("failed to update message: %w", err)
	}

	return nil
}
