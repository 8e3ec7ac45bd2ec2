package taste

import (
	"context"

	"gorm.io/gorm"

	"github.com/ambjay/unveiled-prod/internal/domain"
	"github.com/ambjay/unveiled-prod/internal/platform/logger"
)

type PredictionRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rows []*domain.Prediction) error
	ListByUser(ctx context.Context, tx *gorm.DB, userID string, limit int) ([]*domain.Prediction, error)
}

type predictionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPredictionRepo(db *gorm.DB, baseLog *logger.Logger) PredictionRepo {
	return &predictionRepo{db: db, log: baseLog.With("repo", "PredictionRepo")}
}

func (r *predictionRepo) Create(ctx context.Context, tx *gorm.DB, rows []*domain.Prediction) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(rows) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).Create(&rows).Error
}

func (r *predictionRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID string, limit int) ([]*domain.Prediction, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if limit <= 0 {
		limit = 20
	}
	var results []*domain.Prediction
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
