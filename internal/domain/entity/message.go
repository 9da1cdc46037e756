// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType classifies a parsed transaction into one of four
// fixed variants.
type TransactionType string

const (
	TransactionTypeExpense     TransactionType = "EXPENSE"
	TransactionTypeIncome      TransactionType = "INCOME"
	TransactionTypeInvestments TransactionType = "INVESTMENTS"
	TransactionTypeSavings     TransactionType = "SAVINGS"
)

// TransactionTypes lists all variants in their canonical order.
var TransactionTypes = []TransactionType{
	TransactionTypeExpense,
	TransactionTypeIncome,
	TransactionTypeInvestments,
	TransactionTypeSavings,
}

// IsValidTransactionType reports whether t is one of the four variants.
func IsValidTransactionType(t TransactionType) bool {
	switch t {
	case TransactionTypeExpense, TransactionTypeIncome,
		TransactionTypeInvestments, TransactionTypeSavings:
		return true
	}
	return false
}

// ParseTransactionType maps the free-form type string returned by the
// language model onto a TransactionType. Matching is case-insensitive
// substring containment; anything unrecognized collapses to EXPENSE.
func ParseTransactionType(s string) TransactionType {
	lower := strings.ToLower(s)
	switch {
	case strings.Contains(lower, "income"):
		return TransactionTypeIncome
	case strings.Contains(lower, "investment"):
		return TransactionTypeInvestments
	case strings.Contains(lower, "saving"):
		return TransactionTypeSavings
	default:
		return TransactionTypeExpense
	}
}

// ParsedTransaction is the structured interpretation of a message's
// text. Timestamp is the authoritative instant for time-window
// filtering; the calendar key fields are all derived from it and must
// stay mutually consistent.
type ParsedTransaction struct {
	Text         string
	Amount       decimal.Decimal
	Category     string
	Type         TransactionType
	Tags         []string
	Sentiment    float64
	Location     string
	Timestamp    time.Time
	Year         int
	Month        int
	YearMonth    string
	YearMonthKey string
	MonthName    string
}

// TransactionMessage is a single user-submitted text entry plus its
// optional structured interpretation. Parsed is nil until a parse
// succeeds and never reverts to nil afterwards.
type TransactionMessage struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	InputText  string
	Parsed     *ParsedTransaction
	IsFavorite bool
	CreatedAt  time.Time
}

// NewTransactionMessage creates a new TransactionMessage entity.
func NewTransactionMessage(userID uuid.UUID, inputText string, parsed *ParsedTransaction, createdAt time.Time) *TransactionMessage {
	return &TransactionMessage{
		ID:        uuid.New(),
		UserID:    userID,
		InputText: inputText,
		Parsed:    parsed,
		CreatedAt: createdAt,
	}
}

// MessageTotals holds running amount totals per transaction type for a
// page of messages.
type MessageTotals struct {
	Expense     decimal.Decimal
	Income      decimal.Decimal
	Investments decimal.Decimal
	Savings     decimal.Decimal
}

// NewMessageTotals returns zeroed totals.
func NewMessageTotals() MessageTotals {
	zero := decimal.Zero
	return MessageTotals{Expense: zero, Income: zero, Investments: zero, Savings: zero}
}

// Add accumulates a parsed amount under its transaction type.
func (t *MessageTotals) Add(transactionType TransactionType, amount decimal.Decimal) {
	switch transactionType {
	case TransactionTypeExpense:
		t.Expense = t.Expense.Add(amount)
	case TransactionTypeIncome:
		t.Income = t.Income.Add(amount)
	case TransactionTypeInvestments:
		t.Investments = t.Investments.Add(amount)
	case TransactionTypeSavings:
		t.Savings = t.Savings.Add(amount)
	}
}
