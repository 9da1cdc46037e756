// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-chat/backend/internal/domain/entity"
)

// AnalyticsFilter narrows an aggregation to a time window. At most one
// of Month, Year, or the date pair is honored, in that order of
// precedence; with none set the aggregation spans all of the user's
// parsed messages.
type AnalyticsFilter struct {
	UserID    uuid.UUID
	Month     *string // "YYYY-MM" month key
	Year      *int
	StartDate *time.Time // inclusive, UTC start of day
	EndDate   *time.Time // inclusive, UTC end of day
}

// TypeTotalRow is a per-type aggregate row from the store.
type TypeTotalRow struct {
	Type  entity.TransactionType
	Total decimal.Decimal
	Count int
}

// GroupTotalRow is a per-(type, group-key) aggregate row from the
// store, ordered by total descending within each type.
type GroupTotalRow struct {
	Type  entity.TransactionType
	Name  string
	Total decimal.Decimal
	Count int
}

// TaggedAmountRow is one tag-bearing message: its type, full tag list,
// and amount. The aggregator flattens these in memory so that every
// tag of a message receives the message's full amount.
type TaggedAmountRow struct {
	Type   entity.TransactionType
	Tags   []string
	Amount decimal.Decimal
}

// AnalyticsRepository defines the grouped-aggregation queries of the
// message store.
type AnalyticsRepository interface {
	// TotalsByType returns the summed amount and count per transaction type.
	TotalsByType(ctx context.Context, filter AnalyticsFilter) ([]TypeTotalRow, error)

	// TotalsByCategory returns the summed amount and count per
	// (type, category) group, ordered by total descending.
	TotalsByCategory(ctx context.Context, filter AnalyticsFilter) ([]GroupTotalRow, error)

	// TaggedAmounts returns the (type, tags, amount) rows of matching
	// messages whose tag list is non-empty, in creation order.
	TaggedAmounts(ctx context.Context, filter AnalyticsFilter) ([]TaggedAmountRow, error)
}
