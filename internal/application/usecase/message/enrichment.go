// Package message contains message-related use cases.
package message

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/expense-chat/backend/internal/application/adapter"
	"github.com/expense-chat/backend/internal/domain/entity"
)

const (
	// DefaultCategory is assigned when the draft carries no category.
	DefaultCategory = "Uncategorized"
	// DefaultLocation is always assigned; no source populates location.
	DefaultLocation = "Unknown"

	// minTagTokenLength is the exclusive lower bound on token length
	// for tag extraction.
	minTagTokenLength = 3
	// maxTags caps how many tokens become tags.
	maxTags = 2
)

// ExtractTags derives short tags from raw input text: whitespace
// split, lower-cased, tokens longer than three characters, first two
// survivors in original order, first letter capitalized. Punctuation
// is not stripped and duplicates are not removed.
func ExtractTags(text string) []string {
	tags := make([]string, 0, maxTags)
	for _, word := range strings.Fields(text) {
		word = strings.ToLower(word)
		if utf8.RuneCountInString(word) <= minTagTokenLength {
			continue
		}
		tags = append(tags, capitalizeFirst(word))
		if len(tags) == maxTags {
			break
		}
	}
	return tags
}

func capitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// CalendarKeys holds the partition fields derived from one instant.
type CalendarKeys struct {
	Year         int
	Month        int
	YearMonth    string
	YearMonthKey string
	MonthName    string
}

// DeriveCalendarKeys computes the calendar partition keys for an
// instant. YearMonth and YearMonthKey are always identical; both are
// kept for compatibility with stored records.
func DeriveCalendarKeys(t time.Time) CalendarKeys {
	yearMonth := fmt.Sprintf("%d-%02d", t.Year(), int(t.Month()))

	return CalendarKeys{
		Year:         t.Year(),
		Month:        int(t.Month()),
		YearMonth:    yearMonth,
		YearMonthKey: yearMonth,
		MonthName:    t.Format("January 2006"),
	}
}

// BuildParsedTransaction assembles the persisted structured payload
// from the raw text, a parser draft, and the creation instant. The
// draft's date hint is ignored; the payload timestamp is always now.
func BuildParsedTransaction(text string, draft *adapter.TransactionDraft, now time.Time) *entity.ParsedTransaction {
	category := draft.Category
	if category == "" {
		category = DefaultCategory
	}

	amount := decimal.Zero
	if draft.Price > 0 {
		amount = decimal.NewFromFloat(draft.Price)
	}

	keys := DeriveCalendarKeys(now)

	return &entity.ParsedTransaction{
		Text:         text,
		Amount:       amount,
		Category:     category,
		Type:         entity.ParseTransactionType(draft.Type),
		Tags:         ExtractTags(text),
		Sentiment:    draft.Sentiment,
		Location:     DefaultLocation,
		Timestamp:    now,
		Year:         keys.Year,
		Month:        keys.Month,
		YearMonth:    keys.YearMonth,
		YearMonthKey: keys.YearMonthKey,
		MonthName:    keys.MonthName,
	}
}
