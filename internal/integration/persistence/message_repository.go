// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/expense-chat/backend/internal/application/adapter"
	"github.com/expense-chat/backend/internal/domain/entity"
	domainerror "github.com/expense-chat/backend/internal/domain/error"
	"github.com/expense-chat/backend/internal/integration/persistence/model"
)

// messageRepository implements the adapter.MessageRepository interface.
type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new message repository instance.
func NewMessageRepository(db *gorm.DB) adapter.MessageRepository {
	return &messageRepository{
		db: db,
	}
}

// Create inserts a new message.
func (r *messageRepository) Create(ctx context.Context, message *entity.TransactionMessage) error {
	messageModel := model.MessageFromEntity(message)
	result := r.db.WithContext(ctx).Create(messageModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a message by its ID.
func (r *messageRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.TransactionMessage, error) {
	var messageModel model.MessageModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&messageModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrMessageNotFound
		}
		return nil, result.Error
	}
	return messageModel.ToEntity(), nil
}

// FindByUser retrieves the newest messages of a user. A limit of 0
// means no limit.
func (r *messageRepository) FindByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.TransactionMessage, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var messageModels []model.MessageModel
	if result := query.Find(&messageModels); result.Error != nil {
		return nil, result.Error
	}

	messages := make([]*entity.TransactionMessage, len(messageModels))
	for i, mm := range messageModels {
		messages[i] = mm.ToEntity()
	}
	return messages, nil
}

// Update applies a partial update to a message by ID.
func (r *messageRepository) Update(ctx context.Context, id uuid.UUID, update adapter.MessageUpdate) error {
	fields := map[string]interface{}{}

	if update.Amount != nil {
		fields["amount"] = *update.Amount
	}
	if update.Category != nil {
		fields["category"] = *update.Category
	}
	if update.Type != nil {
		fields["type"] = string(*update.Type)
	}
	if update.Tags != nil {
		fields["tags"] = pq.StringArray(*update.Tags)
	}
	if update.Sentiment != nil {
		fields["sentiment"] = *update.Sentiment
	}
	if update.IsFavorite != nil {
		fields["is_favorite"] = *update.IsFavorite
	}
	if update.Date != nil {
		fields["created_at"] = *update.Date
		fields["timestamp"] = *update.Date
		fields["year"] = *update.Year
		fields["month"] = *update.Month
		fields["year_month"] = *update.YearMonth
		fields["year_month_key"] = *update.YearMonthKey
		fields["month_name"] = *update.MonthName
	}

	if len(fields) == 0 {
		return nil
	}

	result := r.db.WithContext(ctx).
		Model(&model.MessageModel{}).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrMessageNotFound
	}
	return nil
}

// Delete removes a message by ID.
func (r *messageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.MessageModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrMessageNotFound
	}
	return nil
}
