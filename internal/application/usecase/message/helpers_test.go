// Package message contains message-related use cases.
package message

import (
	"context"
	"errors"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-chat/backend/internal/application/adapter"
	"github.com/expense-chat/backend/internal/domain/entity"
	domainerror "github.com/expense-chat/backend/internal/domain/error"
)

func decimalFromInt(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

// fakeParser returns a fixed outcome.
type fakeParser struct {
	outcome adapter.ParseOutcome
}

func (p *fakeParser) Parse(_ context.Context, _ string) adapter.ParseOutcome {
	return p.outcome
}

// fakeMessageRepo is an in-memory MessageRepository.
type fakeMessageRepo struct {
	messages  map[uuid.UUID]*entity.TransactionMessage
	failWith  error
	lastLimit int
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{messages: make(map[uuid.UUID]*entity.TransactionMessage)}
}

func (r *fakeMessageRepo) Create(_ context.Context, msg *entity.TransactionMessage) error {
	if r.failWith != nil {
		return r.failWith
	}
	copied := *msg
	r.messages[msg.ID] = &copied
	return nil
}

func (r *fakeMessageRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.TransactionMessage, error) {
	msg, ok := r.messages[id]
	if !ok {
		return nil, domainerror.ErrMessageNotFound
	}
	copied := *msg
	return &copied, nil
}

func (r *fakeMessageRepo) FindByUser(_ context.Context, userID uuid.UUID, limit int) ([]*entity.TransactionMessage, error) {
	r.lastLimit = limit
	if r.failWith != nil {
		return nil, r.failWith
	}

	var result []*entity.TransactionMessage
	for _, msg := range r.messages {
		if msg.UserID == userID {
			copied := *msg
			result = append(result, &copied)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (r *fakeMessageRepo) Update(_ context.Context, id uuid.UUID, update adapter.MessageUpdate) error {
	msg, ok := r.messages[id]
	if !ok {
		return domainerror.ErrMessageNotFound
	}

	if update.IsFavorite != nil {
		msg.IsFavorite = *update.IsFavorite
	}
	if msg.Parsed != nil {
		if update.Amount != nil {
			msg.Parsed.Amount = *update.Amount
		}
		if update.Category != nil {
			msg.Parsed.Category = *update.Category
		}
		if update.Type != nil {
			msg.Parsed.Type = *update.Type
		}
		if update.Tags != nil {
			msg.Parsed.Tags = *update.Tags
		}
		if update.Sentiment != nil {
			msg.Parsed.Sentiment = *update.Sentiment
		}
		if update.Date != nil {
			msg.CreatedAt = *update.Date
			msg.Parsed.Timestamp = *update.Date
			msg.Parsed.Year = *update.Year
			msg.Parsed.Month = *update.Month
			msg.Parsed.YearMonth = *update.YearMonth
			msg.Parsed.YearMonthKey = *update.YearMonthKey
			msg.Parsed.MonthName = *update.MonthName
		}
	}
	return nil
}

func (r *fakeMessageRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.messages[id]; !ok {
		return domainerror.ErrMessageNotFound
	}
	delete(r.messages, id)
	return nil
}

var errStoreDown = errors.New("store unreachable")
