// Package analytics contains the on-demand aggregation use case.
package analytics

import (
	"context"
	"regexp"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-chat/backend/internal/application/adapter"
	"github.com/expense-chat/backend/internal/domain/entity"
	domainerror "github.com/expense-chat/backend/internal/domain/error"
)

var monthKeyPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

// GetAnalyticsInput represents the input for an aggregation request.
// At most one filter form is honored: month, then year, then the date
// range. With none present the aggregation spans all-time data.
type GetAnalyticsInput struct {
	UserID    uuid.UUID
	Month     *string // "YYYY-MM"
	Year      *int
	StartDate *time.Time
	EndDate   *time.Time
}

// GetAnalyticsOutput represents the output of an aggregation request.
type GetAnalyticsOutput struct {
	Analytics *entity.Analytics
}

// GetAnalyticsUseCase computes per-type totals and category/tag
// breakdowns over a user's parsed messages. Results are recomputed in
// full on every request.
type GetAnalyticsUseCase struct {
	analyticsRepo adapter.AnalyticsRepository
}

// NewGetAnalyticsUseCase creates a new GetAnalyticsUseCase instance.
func NewGetAnalyticsUseCase(analyticsRepo adapter.AnalyticsRepository) *GetAnalyticsUseCase {
	return &GetAnalyticsUseCase{analyticsRepo: analyticsRepo}
}

// Execute performs the aggregation.
func (uc *GetAnalyticsUseCase) Execute(ctx context.Context, input GetAnalyticsInput) (*GetAnalyticsOutput, error) {
	filter, period, err := buildFilter(input)
	if err != nil {
		return nil, err
	}

	totalRows, err := uc.analyticsRepo.TotalsByType(ctx, filter)
	if err != nil {
		return nil, domainerror.NewAnalyticsError(
			domainerror.ErrCodeAnalyticsQueryFailed,
			"failed to aggregate totals",
			err,
		)
	}

	categoryRows, err := uc.analyticsRepo.TotalsByCategory(ctx, filter)
	if err != nil {
		return nil, domainerror.NewAnalyticsError(
			domainerror.ErrCodeAnalyticsQueryFailed,
			"failed to aggregate categories",
			err,
		)
	}

	taggedRows, err := uc.analyticsRepo.TaggedAmounts(ctx, filter)
	if err != nil {
		return nil, domainerror.NewAnalyticsError(
			domainerror.ErrCodeAnalyticsQueryFailed,
			"failed to aggregate tags",
			err,
		)
	}

	totals := make(map[entity.TransactionType]decimal.Decimal, len(entity.TransactionTypes))
	for _, row := range totalRows {
		totals[row.Type] = row.Total
	}
	typeTotal := func(t entity.TransactionType) decimal.Decimal {
		if total, ok := totals[t]; ok {
			return total
		}
		return decimal.Zero
	}

	categories := make(map[entity.TransactionType][]entity.CategoryStat, len(entity.TransactionTypes))
	tags := make(map[entity.TransactionType][]entity.CategoryStat, len(entity.TransactionTypes))
	for _, txType := range entity.TransactionTypes {
		categories[txType] = categoryStats(categoryRows, txType, typeTotal(txType))
		tags[txType] = tagStats(taggedRows, txType, typeTotal(txType))
	}

	return &GetAnalyticsOutput{
		Analytics: &entity.Analytics{
			Expense:     typeTotal(entity.TransactionTypeExpense),
			Income:      typeTotal(entity.TransactionTypeIncome),
			Investments: typeTotal(entity.TransactionTypeInvestments),
			Savings:     typeTotal(entity.TransactionTypeSavings),
			Categories:  categories,
			Tags:        tags,
			Period:      period,
		},
	}, nil
}

// buildFilter applies the month > year > date-range precedence and
// derives the period label.
func buildFilter(input GetAnalyticsInput) (adapter.AnalyticsFilter, string, error) {
	filter := adapter.AnalyticsFilter{UserID: input.UserID}

	switch {
	case input.Month != nil:
		if !monthKeyPattern.MatchString(*input.Month) {
			return filter, "", domainerror.NewAnalyticsError(
				domainerror.ErrCodeInvalidAnalyticsFilter,
				"month must be a YYYY-MM key",
				domainerror.ErrInvalidAnalyticsFilter,
			)
		}
		filter.Month = input.Month
		return filter, *input.Month, nil

	case input.Year != nil:
		filter.Year = input.Year
		return filter, strconv.Itoa(*input.Year), nil

	case input.StartDate != nil && input.EndDate != nil:
		start := startOfDayUTC(*input.StartDate)
		end := endOfDayUTC(*input.EndDate)
		filter.StartDate = &start
		filter.EndDate = &end
		return filter, "custom", nil

	default:
		// No filter: all-time aggregation over the base predicate.
		return filter, "custom", nil
	}
}

func startOfDayUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func endOfDayUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999000000, time.UTC)
}

// categoryStats shapes the pre-grouped category rows of one type.
func categoryStats(rows []adapter.GroupTotalRow, txType entity.TransactionType, typeTotal decimal.Decimal) []entity.CategoryStat {
	stats := make([]entity.CategoryStat, 0)
	for _, row := range rows {
		if row.Type != txType {
			continue
		}
		stats = append(stats, entity.CategoryStat{
			Name:       row.Name,
			Amount:     row.Total,
			Count:      row.Count,
			Percentage: percentage(row.Total, typeTotal),
		})
	}
	return stats
}

// tagStats flattens the tag multiset of one type's messages: each tag
// of a message receives the message's full amount and a count of one.
// Groups keep first-appearance order; the stable sort then orders them
// by amount descending without disturbing ties.
func tagStats(rows []adapter.TaggedAmountRow, txType entity.TransactionType, typeTotal decimal.Decimal) []entity.CategoryStat {
	index := make(map[string]int)
	stats := make([]entity.CategoryStat, 0)

	for _, row := range rows {
		if row.Type != txType {
			continue
		}
		for _, tag := range row.Tags {
			i, ok := index[tag]
			if !ok {
				i = len(stats)
				index[tag] = i
				stats = append(stats, entity.CategoryStat{Name: tag, Amount: decimal.Zero})
			}
			stats[i].Amount = stats[i].Amount.Add(row.Amount)
			stats[i].Count++
		}
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Amount.GreaterThan(stats[j].Amount)
	})

	for i := range stats {
		stats[i].Percentage = percentage(stats[i].Amount, typeTotal)
	}
	return stats
}

// percentage is round(100 x amount / total), or 0 when the total is
// not positive.
func percentage(amount, total decimal.Decimal) int {
	if !total.IsPositive() {
		return 0
	}
	pct := amount.Mul(decimal.NewFromInt(100)).Div(total).Round(0)
	return int(pct.IntPart())
}
