package taste

import (
	"context"

	"gorm.io/gorm"

	"github.com/ambjay/unveiled-prod/internal/domain"
	"github.com/ambjay/unveiled-prod/internal/platform/logger"
)

type SerendipityRepo interface {
	Create(ctx context.Context, tx *gorm.DB, row *domain.SerendipityRecommendation) error
}

type serendipityRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSerendipityRepo(db *gorm.DB, baseLog *logger.Logger) SerendipityRepo {
	return &serendipityRepo{db: db, log: baseLog.With("repo", "SerendipityRepo")}
}

func (r *serendipityRepo) Create(ctx context.Context, tx *gorm.DB, row *domain.SerendipityRecommendation) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).Create(row).Error
}
