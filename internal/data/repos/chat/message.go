package chat

import (
	"context"

	"gorm.io/gorm"

	"github.com/ambjay/unveiled-prod/internal/domain"
	"github.com/ambjay/unveiled-prod/internal/platform/logger"
)

type MessageRepo interface {
	Create(ctx context.Context, tx *gorm.DB, row *domain.ChatMessage) error
	ListByUser(ctx context.Context, tx *gorm.DB, userID string, limit int) ([]*domain.ChatMessage, error)
}

type messageRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMessageRepo(db *gorm.DB, baseLog *logger.Logger) MessageRepo {
	return &messageRepo{db: db, log: baseLog.With("repo", "ChatMessageRepo")}
}

func (r *messageRepo) Create(ctx context.Context, tx *gorm.DB, row *domain.ChatMessage) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).Create(row).Error
}

func (r *messageRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID string, limit int) ([]*domain.ChatMessage, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if limit <= 0 {
		limit = 50
	}
	var results []*domain.ChatMessage
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
