// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-chat/backend/internal/domain/entity"
)

// MessageUpdate carries a partial field map for a message update. Nil
// pointers leave the stored value untouched. Tags is always a full
// replacement of the list, never a delta.
type MessageUpdate struct {
	Amount     *decimal.Decimal
	Category   *string
	Type       *entity.TransactionType
	Tags       *[]string
	Sentiment  *float64
	IsFavorite *bool

	// Date moves CreatedAt and the parsed Timestamp to the given
	// instant; the caller supplies the recomputed calendar keys
	// alongside it.
	Date         *time.Time
	Year         *int
	Month        *int
	YearMonth    *string
	YearMonthKey *string
	MonthName    *string
}

// MessageRepository defines the interface for message persistence operations.
type MessageRepository interface {
	// Create inserts a new message.
	Create(ctx context.Context, message *entity.TransactionMessage) error

	// FindByID retrieves a message by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.TransactionMessage, error)

	// FindByUser retrieves the newest messages of a user in
	// reverse-chronological order of creation. A limit of 0 means no
	// limit.
	FindByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.TransactionMessage, error)

	// Update applies a partial update to a message by ID.
	Update(ctx context.Context, id uuid.UUID, update MessageUpdate) error

	// Delete removes a message by ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
