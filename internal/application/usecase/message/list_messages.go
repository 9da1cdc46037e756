// Package message contains message-related use cases.
package message

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-chat/backend/internal/application/adapter"
	"github.com/expense-chat/backend/internal/domain/entity"
)

// DefaultListLimit caps the page size when the caller asks for neither
// a limit nor the full history.
const DefaultListLimit = 100

// ListMessagesInput represents the input for listing messages.
type ListMessagesInput struct {
	UserID uuid.UUID
	Limit  int  // 0 means unset
	All    bool // fetch the entire history
}

// TotalsOutput holds the running amount totals per transaction type
// over the returned page.
type TotalsOutput struct {
	Expense     decimal.Decimal `json:"expense"`
	Income      decimal.Decimal `json:"income"`
	Investments decimal.Decimal `json:"investments"`
	Savings     decimal.Decimal `json:"savings"`
}

// ListMessagesOutput represents the output of listing messages.
type ListMessagesOutput struct {
	Messages []*MessageOutput
	Totals   TotalsOutput
}

// ListMessagesUseCase handles message listing with per-type totals.
type ListMessagesUseCase struct {
	messageRepo adapter.MessageRepository
}

// NewListMessagesUseCase creates a new ListMessagesUseCase instance.
func NewListMessagesUseCase(messageRepo adapter.MessageRepository) *ListMessagesUseCase {
	return &ListMessagesUseCase{messageRepo: messageRepo}
}

// Execute lists the user's newest messages. The repository returns
// them newest-first; the response page is reversed so the newest N
// read oldest-first, the order a chat view renders them in.
func (uc *ListMessagesUseCase) Execute(ctx context.Context, input ListMessagesInput) (*ListMessagesOutput, error) {
	// An explicit limit wins even when the full history is requested;
	// All only lifts the default cap.
	limit := input.Limit
	if limit <= 0 {
		if input.All {
			limit = 0
		} else {
			limit = DefaultListLimit
		}
	}

	messages, err := uc.messageRepo.FindByUser(ctx, input.UserID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	totals := entity.NewMessageTotals()
	for _, msg := range messages {
		if msg.Parsed != nil {
			totals.Add(msg.Parsed.Type, msg.Parsed.Amount)
		}
	}

	outputs := make([]*MessageOutput, 0, len(messages))
	for i := len(messages) - 1; i >= 0; i-- {
		outputs = append(outputs, ToMessageOutput(messages[i]))
	}

	return &ListMessagesOutput{
		Messages: outputs,
		Totals: TotalsOutput{
			Expense:     totals.Expense,
			Income:      totals.Income,
			Investments: totals.Investments,
			Savings:     totals.Savings,
		},
	}, nil
}
