package taste

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ambjay/unveiled-prod/internal/domain"
	"github.com/ambjay/unveiled-prod/internal/platform/logger"
)

type ProfileRepo interface {
	ListByUser(ctx context.Context, tx *gorm.DB, userID string) ([]*domain.TasteProfile, error)
	Upsert(ctx context.Context, tx *gorm.DB, p *domain.TasteProfile) error
}

type profileRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProfileRepo(db *gorm.DB, baseLog *logger.Logger) ProfileRepo {
	return &profileRepo{db: db, log: baseLog.With("repo", "TasteProfileRepo")}
}

func (r *profileRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID string) ([]*domain.TasteProfile, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*domain.TasteProfile
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *profileRepo) Upsert(ctx context.Context, tx *gorm.DB, p *domain.TasteProfile) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	p.UpdatedAt = time.Now().UTC()
	return transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "platform"}, {Name: "category"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"data", "confidence_score", "updated_at",
			}),
		}).
		Create(p).Error
}
