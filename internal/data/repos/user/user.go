package user

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ambjay/unveiled-prod/internal/domain"
	"github.com/ambjay/unveiled-prod/internal/platform/logger"
)

type Repo interface {
	// Upsert writes the identity-provider view of a user. Keyed on the
	// provider-issued id; applying the same payload twice leaves one row
	// with identical field values.
	Upsert(ctx context.Context, tx *gorm.DB, u *domain.User) error
	GetByID(ctx context.Context, tx *gorm.DB, id string) (*domain.User, error)
}

type repo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRepo(db *gorm.DB, baseLog *logger.Logger) Repo {
	return &repo{db: db, log: baseLog.With("repo", "UserRepo")}
}

func (r *repo) Upsert(ctx context.Context, tx *gorm.DB, u *domain.User) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	u.UpdatedAt = time.Now().UTC()
	return transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"email", "first_name", "last_name", "image_url", "updated_at",
			}),
		}).
		Create(u).Error
}

func (r *repo) GetByID(ctx context.Context, tx *gorm.DB, id string) (*domain.User, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var u domain.User
	if err := transaction.WithContext(ctx).
		Where("id = ?", id).
		First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}
