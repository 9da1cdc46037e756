// Package message contains message-related use cases.
package message

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/expense-chat/backend/internal/application/adapter"
	domainerror "github.com/expense-chat/backend/internal/domain/error"
)

// DeleteMessageInput represents the input for message deletion.
type DeleteMessageInput struct {
	MessageID uuid.UUID
	UserID    uuid.UUID
}

// DeleteMessageUseCase handles message deletion. Deletion is hard;
// there is no tombstone.
type DeleteMessageUseCase struct {
	messageRepo adapter.MessageRepository
}

// NewDeleteMessageUseCase creates a new DeleteMessageUseCase instance.
func NewDeleteMessageUseCase(messageRepo adapter.MessageRepository) *DeleteMessageUseCase {
	return &DeleteMessageUseCase{messageRepo: messageRepo}
}

// Execute performs the message deletion.
func (uc *DeleteMessageUseCase) Execute(ctx context.Context, input DeleteMessageInput) error {
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

	if msg.UserID != input.UserID {
		return domainerror.NewMessageError(
			domainerror.ErrCodeMessageNotFound,
			"message not found",
			domainerror.ErrMessageNotFound,
		)
	}

	if err := uc.messageRepo.Delete(ctx, input.MessageID); err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}

	return nil
}
