// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/expense-chat/backend/internal/domain/entity"
)

// MessageModel represents the messages table in the database. The
// parsed transaction is flattened into nullable columns; ParsedText
// being NULL marks a message the parser could not handle.
type MessageModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	InputText  string    `gorm:"type:text;not null"`
	IsFavorite bool      `gorm:"default:false"`
	CreatedAt  time.Time `gorm:"not null;index"`

	ParsedText   *string          `gorm:"type:text"`
	Amount       *decimal.Decimal `gorm:"type:decimal(15,2)"`
	Category     *string          `gorm:"type:varchar(100)"`
	Type         *string          `gorm:"type:varchar(15);index"`
	Tags         pq.StringArray   `gorm:"type:text[]"`
	Sentiment    *float64         `gorm:"type:decimal(3,2)"`
	Location     *string          `gorm:"type:varchar(100)"`
	Timestamp    *time.Time       `gorm:"index"`
	Year         *int             `gorm:"index"`
	Month        *int             `gorm:"index"`
	YearMonth    *string          `gorm:"type:varchar(7);index"`
	YearMonthKey *string          `gorm:"type:varchar(7)"`
	MonthName    *string          `gorm:"type:varchar(20)"`
}

// TableName returns the table name for the MessageModel.
func (MessageModel) TableName() string {
	return "messages"
}

// ToEntity converts a MessageModel to a domain TransactionMessage entity.
func (m *MessageModel) ToEntity() *entity.TransactionMessage {
	message := &entity.TransactionMessage{
		ID:         m.ID,
		UserID:     m.UserID,
		InputText:  m.InputText,
		IsFavorite: m.IsFavorite,
		CreatedAt:  m.CreatedAt,
	}

	if m.ParsedText == nil {
		return message
	}

	parsed := &entity.ParsedTransaction{
		Text: *m.ParsedText,
		Tags: []string(m.Tags),
	}
	if m.Amount != nil {
		parsed.Amount = *m.Amount
	}
	if m.Category != nil {
		parsed.Category = *m.Category
	}
	if m.Type != nil {
		parsed.Type = entity.TransactionType(*m.Type)
	}
	if m.Sentiment != nil {
		parsed.Sentiment = *m.Sentiment
	}
	if m.Location != nil {
		parsed.Location = *m.Location
	}
	if m.Timestamp != nil {
		parsed.Timestamp = *m.Timestamp
	}
	if m.Year != nil {
		parsed.Year = *m.Year
	}
	if m.Month != nil {
		parsed.Month = *m.Month
	}
	if m.YearMonth != nil {
		parsed.YearMonth = *m.YearMonth
	}
	if m.YearMonthKey != nil {
		parsed.YearMonthKey = *m.YearMonthKey
	}
	if m.MonthName != nil {
		parsed.MonthName = *m.MonthName
	}
	message.Parsed = parsed

	return message
}

// MessageFromEntity creates a MessageModel from a domain TransactionMessage entity.
func MessageFromEntity(message *entity.TransactionMessage) *MessageModel {
	m := &MessageModel{
		ID:         message.ID,
		UserID:     message.UserID,
		InputText:  message.InputText,
		IsFavorite: message.IsFavorite,
		CreatedAt:  message.CreatedAt,
	}

	parsed := message.Parsed
	if parsed == nil {
		return m
	}

	amount := parsed.Amount
	category := parsed.Category
	transactionType := string(parsed.Type)
	sentiment := parsed.Sentiment
	location := parsed.Location
	timestamp := parsed.Timestamp
	year := parsed.Year
	month := parsed.Month
	yearMonth := parsed.YearMonth
	yearMonthKey := parsed.YearMonthKey
	monthName := parsed.MonthName

	m.ParsedText = &parsed.Text
	m.Amount = &amount
	m.Category = &category
	m.Type = &transactionType
	m.Tags = pq.StringArray(parsed.Tags)
	m.Sentiment = &sentiment
	m.Location = &location
	m.Timestamp = &timestamp
	m.Year = &year
	m.Month = &month
	m.YearMonth = &yearMonth
	m.YearMonthKey = &yearMonthKey
	m.MonthName = &monthName

	return m
}
