// Package entity defines the core business entities for the domain layer.
package entity

import "testing"

func TestParseTransactionType(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected TransactionType
	}{
		// Income-like inputs
		{name: "plain income", input: "Income", expected: TransactionTypeIncome},
		{name: "lowercase income", input: "income", expected: TransactionTypeIncome},
		{name: "income with prose", input: "this is Income from salary", expected: TransactionTypeIncome},
		// Investment-like inputs
		{name: "plain investment", input: "Investment", expected: TransactionTypeInvestments},
		{name: "uppercase investment", input: "INVESTMENT", expected: TransactionTypeInvestments},
		{name: "plural investments", input: "investments", expected: TransactionTypeInvestments},
		// Savings-like inputs
		{name: "plain savings", input: "Savings", expected: TransactionTypeSavings},
		{name: "singular saving", input: "saving", expected: TransactionTypeSavings},
		// Expense and fallback
		{name: "plain expense", input: "Expense", expected: TransactionTypeExpense},
		{name: "unrecognized string", input: "transfer", expected: TransactionTypeExpense},
		{name: "empty string", input: "", expected: TransactionTypeExpense},
		{name: "garbage", input: "???", expected: TransactionTypeExpense},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseTransactionType(tt.input)
			if got != tt.expected {
				t.Errorf("ParseTransactionType(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestIsValidTransactionType(t *testing.T) {
	for _, valid := range TransactionTypes {
		if !IsValidTransactionType(valid) {
			t.Errorf("expected %q to be valid", valid)
		}
	}

	for _, invalid := range []TransactionType{"", "expense", "TRANSFER", "Income"} {
		if IsValidTransactionType(invalid) {
			t.Errorf("expected %q to be invalid", invalid)
		}
	}
}
