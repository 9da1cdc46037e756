// Package message contains message-related use cases.
package message

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-chat/backend/internal/domain/entity"
)

// ParsedOutput is the structured payload of a message as returned to
// callers. It is nil while parsing has not succeeded.
type ParsedOutput struct {
	Text         string          `json:"text"`
	Amount       decimal.Decimal `json:"amount"`
	Category     string          `json:"category"`
	Type         string          `json:"transaction_type"`
	Tags         []string        `json:"tags"`
	Sentiment    float64         `json:"sentiment"`
	Location     string          `json:"location"`
	Timestamp    time.Time       `json:"timestamp"`
	Year         int             `json:"year"`
	Month        int             `json:"month"`
	YearMonth    string          `json:"year_month"`
	YearMonthKey string          `json:"year_month_key"`
	MonthName    string          `json:"month_name"`
}

// MessageOutput is a message as returned to callers.
type MessageOutput struct {
	ID         string        `json:"id"`
	InputText  string        `json:"inputText"`
	Parsed     *ParsedOutput `json:"parsedData"`
	IsFavorite bool          `json:"isFavorite"`
	CreatedAt  time.Time     `json:"createdAt"`
}

// ToMessageOutput converts a domain message to its output form.
func ToMessageOutput(m *entity.TransactionMessage) *MessageOutput {
	out := &MessageOutput{
		ID:         m.ID.String(),
		InputText:  m.InputText,
		IsFavorite: m.IsFavorite,
		CreatedAt:  m.CreatedAt,
	}

	if m.Parsed != nil {
		tags := m.Parsed.Tags
		if tags == nil {
			tags = []string{}
		}
		out.Parsed = &ParsedOutput{
			Text:         m.Parsed.Text,
			Amount:       m.Parsed.Amount,
			Category:     m.Parsed.Category,
			Type:         string(m.Parsed.Type),
			Tags:         tags,
			Sentiment:    m.Parsed.Sentiment,
			Location:     m.Parsed.Location,
			Timestamp:    m.Parsed.Timestamp,
			Year:         m.Parsed.Year,
			Month:        m.Parsed.Month,
			YearMonth:    m.Parsed.YearMonth,
			YearMonthKey: m.Parsed.YearMonthKey,
			MonthName:    m.Parsed.MonthName,
		}
	}

	return out
}
