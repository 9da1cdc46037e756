// Package message contains message-related use cases.
package message

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/expense-chat/backend/internal/application/adapter"
	"github.com/expense-chat/backend/internal/domain/entity"
	domainerror "github.com/expense-chat/backend/internal/domain/error"
)

// CreateMessageInput represents the input for message creation.
type CreateMessageInput struct {
	UserID    uuid.UUID
	InputText string
}

// CreateMessageOutput represents the output of message creation.
type CreateMessageOutput struct {
	Message *MessageOutput
}

// CreateMessageUseCase handles the create-message pipeline: parse the
// text through the external service, enrich the draft into the
// persisted payload, and store the record. A parse failure degrades to
// a record without structured data; it never fails the creation.
type CreateMessageUseCase struct {
	messageRepo adapter.MessageRepository
	parser      adapter.TransactionParser
	now         func() time.Time
}

// NewCreateMessageUseCase creates a new CreateMessageUseCase instance.
func NewCreateMessageUseCase(
	messageRepo adapter.MessageRepository,
	parser adapter.TransactionParser,
) *CreateMessageUseCase {
	return &CreateMessageUseCase{
		messageRepo: messageRepo,
		parser:      parser,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// WithClock overrides the use case's clock. Intended for tests.
func (uc *CreateMessageUseCase) WithClock(now func() time.Time) *CreateMessageUseCase {
	uc.now = now
	return uc
}

// Execute performs the message creation.
func (uc *CreateMessageUseCase) Execute(ctx context.Context, input CreateMessageInput) (*CreateMessageOutput, error) {
	if strings.TrimSpace(input.InputText) == "" {
		return nil, domainerror.NewMessageError(
			domainerror.ErrCodeMissingInputText,
			"inputText is required",
			domainerror.ErrMissingInputText,
		)
	}

	now := uc.now()

	var parsed *entity.ParsedTransaction
	outcome := uc.parser.Parse(ctx, input.InputText)
	if draft, ok := outcome.Draft(); ok {
		parsed = BuildParsedTransaction(input.InputText, draft, now)
	} else {
		// Text capture must never be blocked by the parsing service;
		// the record is saved without structured data and can be
		// completed later through an edit.
		slog.Warn("message parsing unavailable, saving raw text only",
			"user_id", input.UserID,
		)
	}

	msg := entity.NewTransactionMessage(input.UserID, input.InputText, parsed, now)

	if err := uc.messageRepo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	return &CreateMessageOutput{Message: ToMessageOutput(msg)}, nil
}
