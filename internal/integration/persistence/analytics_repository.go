// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/expense-chat/backend/internal/application/adapter"
	"github.com/expense-chat/backend/internal/domain/entity"
	"github.com/expense-chat/backend/internal/integration/persistence/model"
)

// analyticsRepository implements the adapter.AnalyticsRepository
// interface with grouped queries over the messages table. Only parsed
// messages participate in aggregation.
type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository instance.
func NewAnalyticsRepository(db *gorm.DB) adapter.AnalyticsRepository {
	return &analyticsRepository{
		db: db,
	}
}

// typeTotalRow mirrors the grouped select for per-type totals.
type typeTotalRow struct {
	Type  string
	Total decimal.Decimal
	Count int
}

// groupTotalRow mirrors the grouped select for per-category totals.
type groupTotalRow struct {
	Type  string
	Name  string
	Total decimal.Decimal
	Count int
}

// taggedRow mirrors the tag-bearing message select.
type taggedRow struct {
	Type   string
	Tags   pq.StringArray `gorm:"type:text[]"`
	Amount decimal.Decimal
}

// TotalsByType returns the summed amount and count per transaction type.
func (r *analyticsRepository) TotalsByType(ctx context.Context, filter adapter.AnalyticsFilter) ([]adapter.TypeTotalRow, error) {
	var rows []typeTotalRow
	result := r.filtered(ctx, filter).
		Select("type, SUM(amount) AS total, COUNT(*) AS count").
		Group("type").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	totals := make([]adapter.TypeTotalRow, len(rows))
	for i, row := range rows {
		totals[i] = adapter.TypeTotalRow{
			Type:  entity.TransactionType(row.Type),
			Total: row.Total,
			Count: row.Count,
		}
	}
	return totals, nil
}

// TotalsByCategory returns the summed amount and count per
// (type, category) group, ordered by total descending.
func (r *analyticsRepository) TotalsByCategory(ctx context.Context, filter adapter.AnalyticsFilter) ([]adapter.GroupTotalRow, error) {
	var rows []groupTotalRow
	result := r.filtered(ctx, filter).
		Select("type, category AS name, SUM(amount) AS total, COUNT(*) AS count").
		Group("type, category").
		Order("total DESC").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	groups := make([]adapter.GroupTotalRow, len(rows))
	for i, row := range rows {
		groups[i] = adapter.GroupTotalRow{
			Type:  entity.TransactionType(row.Type),
			Name:  row.Name,
			Total: row.Total,
			Count: row.Count,
		}
	}
	return groups, nil
}

// TaggedAmounts returns the (type, tags, amount) rows of matching
// messages whose tag list is non-empty, in creation order. The tag
// filter happens in memory to stay portable across stores.
func (r *analyticsRepository) TaggedAmounts(ctx context.Context, filter adapter.AnalyticsFilter) ([]adapter.TaggedAmountRow, error) {
	var rows []taggedRow
	result := r.filtered(ctx, filter).
		Select("type, tags, amount").
		Order("created_at ASC").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	tagged := make([]adapter.TaggedAmountRow, 0, len(rows))
	for _, row := range rows {
		if len(row.Tags) == 0 {
			continue
		}
		tagged = append(tagged, adapter.TaggedAmountRow{
			Type:   entity.TransactionType(row.Type),
			Tags:   []string(row.Tags),
			Amount: row.Amount,
		})
	}
	return tagged, nil
}

// filtered builds the base query for parsed messages within the filter window.
func (r *analyticsRepository) filtered(ctx context.Context, filter adapter.AnalyticsFilter) *gorm.DB {
	query := r.db.WithContext(ctx).
		Model(&model.MessageModel{}).
		Where("user_id = ?", filter.UserID).
		Where("parsed_text IS NOT NULL")

	switch {
	case filter.Month != nil:
		query = query.Where("year_month = ?", *filter.Month)
	case filter.Year != nil:
		query = query.Where("year = ?", *filter.Year)
	case filter.StartDate != nil && filter.EndDate != nil:
		query = query.Where("timestamp BETWEEN ? AND ?", *filter.StartDate, *filter.EndDate)
	}

	return query
}
