// Package message contains message-related use cases.
package message

import (
	"reflect"
	"testing"
	"time"

	"github.com/expense-chat/backend/internal/application/adapter"
	"github.com/expense-chat/backend/internal/domain/entity"
)

func TestExtractTags(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "first two long tokens",
			input:    "Bought lunch with friends today",
			expected: []string{"Bought", "Lunch"},
		},
		{
			name:     "short tokens are skipped",
			input:    "had a cab ride to the airport",
			expected: []string{"Ride", "Airport"},
		},
		{
			name:     "fewer than two qualifying tokens",
			input:    "tea for two",
			expected: []string{},
		},
		{
			name:     "single qualifying token",
			input:    "new big groceries",
			expected: []string{"Groceries"},
		},
		{
			name:     "punctuation is not stripped",
			input:    "coffee, again",
			expected: []string{"Coffee,", "Again"},
		},
		{
			name:     "three-letter tokens excluded",
			input:    "gas bus food rent fuel",
			expected: []string{"Food", "Rent"},
		},
		{
			name:     "empty input",
			input:    "",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractTags(tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("ExtractTags(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDeriveCalendarKeys(t *testing.T) {
	instant := time.Date(2025, time.December, 7, 14, 30, 0, 0, time.UTC)

	keys := DeriveCalendarKeys(instant)

	if keys.Year != 2025 {
		t.Errorf("expected year 2025, got %d", keys.Year)
	}
	if keys.Month != 12 {
		t.Errorf("expected month 12, got %d", keys.Month)
	}
	if keys.YearMonth != "2025-12" {
		t.Errorf("expected year_month 2025-12, got %s", keys.YearMonth)
	}
	if keys.MonthName != "December 2025" {
		t.Errorf("expected month_name 'December 2025', got %s", keys.MonthName)
	}

	t.Run("single digit month is zero padded", func(t *testing.T) {
		keys := DeriveCalendarKeys(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC))
		if keys.YearMonth != "2024-03" {
			t.Errorf("expected 2024-03, got %s", keys.YearMonth)
		}
	})

	t.Run("deterministic and key fields equal", func(t *testing.T) {
		for _, instant := range []time.Time{
			time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2025, time.June, 15, 23, 59, 59, 0, time.UTC),
			time.Now().UTC(),
		} {
			first := DeriveCalendarKeys(instant)
			second := DeriveCalendarKeys(instant)
			if first != second {
				t.Errorf("recomputation diverged for %v: %+v vs %+v", instant, first, second)
			}
			if first.YearMonth != first.YearMonthKey {
				t.Errorf("year_month %q != year_month_key %q", first.YearMonth, first.YearMonthKey)
			}
		}
	})
}

func TestBuildParsedTransaction(t *testing.T) {
	now := time.Date(2025, time.December, 7, 10, 0, 0, 0, time.UTC)

	t.Run("full draft", func(t *testing.T) {
		draft := &adapter.TransactionDraft{
			Category:  "Food",
			Type:      "expense",
			Price:     500,
			Sentiment: -0.2,
		}

		parsed := BuildParsedTransaction("Bought lunch with friends", draft, now)

		if parsed.Category != "Food" {
			t.Errorf("expected category Food, got %s", parsed.Category)
		}
		if parsed.Type != entity.TransactionTypeExpense {
			t.Errorf("expected EXPENSE, got %s", parsed.Type)
		}
		if !parsed.Amount.Equal(decimalFromInt(500)) {
			t.Errorf("expected amount 500, got %s", parsed.Amount)
		}
		if parsed.Sentiment != -0.2 {
			t.Errorf("expected sentiment -0.2, got %f", parsed.Sentiment)
		}
		if parsed.Location != DefaultLocation {
			t.Errorf("expected location %q, got %q", DefaultLocation, parsed.Location)
		}
		if !parsed.Timestamp.Equal(now) {
			t.Errorf("expected timestamp %v, got %v", now, parsed.Timestamp)
		}
		if parsed.YearMonth != "2025-12" || parsed.YearMonthKey != "2025-12" {
			t.Errorf("unexpected calendar keys: %s / %s", parsed.YearMonth, parsed.YearMonthKey)
		}
		if !reflect.DeepEqual(parsed.Tags, []string{"Bought", "Lunch"}) {
			t.Errorf("unexpected tags: %v", parsed.Tags)
		}
	})

	t.Run("missing price and category default", func(t *testing.T) {
		draft := &adapter.TransactionDraft{Type: "income"}

		parsed := BuildParsedTransaction("got some money", draft, now)

		if !parsed.Amount.IsZero() {
			t.Errorf("expected zero amount, got %s", parsed.Amount)
		}
		if parsed.Category != DefaultCategory {
			t.Errorf("expected %q, got %q", DefaultCategory, parsed.Category)
		}
		if parsed.Type != entity.TransactionTypeIncome {
			t.Errorf("expected INCOME, got %s", parsed.Type)
		}
	})

	t.Run("date hint is ignored", func(t *testing.T) {
		hint := "05 Jul"
		draft := &adapter.TransactionDraft{Type: "expense", Price: 10, Date: &hint}

		parsed := BuildParsedTransaction("paid parking fees", draft, now)

		if !parsed.Timestamp.Equal(now) {
			t.Errorf("expected timestamp to stay %v, got %v", now, parsed.Timestamp)
		}
	})
}
