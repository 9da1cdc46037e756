// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// TransactionDraft is the unvalidated structured guess produced by the
// external text-understanding service, before enrichment. Date carries
// a "05 Jul" style string when the model extracted one; creation
// ignores it and stamps the current instant instead.
type TransactionDraft struct {
	Category  string  `json:"category"`
	Type      string  `json:"type"`
	Price     float64 `json:"price"`
	Sentiment float64 `json:"sentiment"`
	Date      *string `json:"date"`
}

// ParseOutcome is the two-arm result of a parse attempt: either a
// draft or "parsing unavailable". The enrichment step matches both
// arms explicitly; a parse failure is never an error.
type ParseOutcome struct {
	draft *TransactionDraft
}

// DraftOutcome wraps a successful draft.
func DraftOutcome(draft *TransactionDraft) ParseOutcome {
	return ParseOutcome{draft: draft}
}

// UnavailableOutcome signals that no structured draft could be produced.
func UnavailableOutcome() ParseOutcome {
	return ParseOutcome{}
}

// Draft returns the draft and whether one is present.
func (o ParseOutcome) Draft() (*TransactionDraft, bool) {
	return o.draft, o.draft != nil
}

// TransactionParser turns raw free-text input into a structured draft
// by delegating to an external text-understanding service. The call
// blocks for the duration of the remote round trip; there are no
// retries and no heuristic fallback.
type TransactionParser interface {
	Parse(ctx context.Context, text string) ParseOutcome
}
