package analytics

import (
	"context"

	"gorm.io/gorm"

	"github.com/ambjay/unveiled-prod/internal/domain"
	"github.com/ambjay/unveiled-prod/internal/platform/logger"
)

// EventRepo is append-only; callers treat failures as best-effort and never
// surface them to the user.
type EventRepo interface {
	Create(ctx context.Context, tx *gorm.DB, row *domain.AnalyticsEvent) error
}

type eventRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewEventRepo(db *gorm.DB, baseLog *logger.Logger) EventRepo {
	return &eventRepo{db: db, log: baseLog.With("repo", "AnalyticsEventRepo")}
}

func (r *eventRepo) Create(ctx context.Context, tx *gorm.DB, row *domain.AnalyticsEvent) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).Create(row).Error
}
