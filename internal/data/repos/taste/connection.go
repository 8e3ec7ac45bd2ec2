package taste

import (
	"context"

	"gorm.io/gorm"

	"github.com/ambjay/unveiled-prod/internal/domain"
	"github.com/ambjay/unveiled-prod/internal/platform/logger"
)

type ConnectionRepo interface {
	// ListActiveByUser returns only connections still marked active; the
	// OAuth flow owns the writes.
	ListActiveByUser(ctx context.Context, tx *gorm.DB, userID string) ([]*domain.PlatformConnection, error)
}

type connectionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewConnectionRepo(db *gorm.DB, baseLog *logger.Logger) ConnectionRepo {
	return &connectionRepo{db: db, log: baseLog.With("repo", "PlatformConnectionRepo")}
}

func (r *connectionRepo) ListActiveByUser(ctx context.Context, tx *gorm.DB, userID string) ([]*domain.PlatformConnection, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*domain.PlatformConnection
	if err := transaction.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("connected_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
