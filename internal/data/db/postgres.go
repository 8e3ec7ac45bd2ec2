package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/ambjay/unveiled-prod/internal/domain"
	"github.com/ambjay/unveiled-prod/internal/platform/logger"
)

type PostgresService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPostgresService(dsn string, log *logger.Logger) (*PostgresService, error) {
	serviceLog := log.With("service", "PostgresService")

	serviceLog.Info("Connecting to Postgres...")
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		serviceLog.Error("Failed to connect to Postgres", "error", err)
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	if err := gdb.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error; err != nil {
		serviceLog.Error("Failed to enable uuid-ossp extension", "error", err)
		return nil, fmt.Errorf("enable uuid-ossp extension: %w", err)
	}

	return &PostgresService{db: gdb, log: serviceLog}, nil
}

func (s *PostgresService) AutoMigrateAll() error {
	s.log.Info("Auto migrating postgres tables...")
	err := s.db.AutoMigrate(
		&domain.User{},
		&domain.PlatformConnection{},
		&domain.TasteProfile{},
		&domain.Prediction{},
		&domain.ChatMessage{},
		&domain.AnalyticsEvent{},
		&domain.SerendipityRecommendation{},
	)
	if err != nil {
		s.log.Error("Auto migration failed for postgres tables", "error", err)
		return err
	}
	s.log.Info("Configuring foreign key relationships for postgres tables...")
	for _, stmt := range []string{
		`ALTER TABLE "platform_connections" ADD CONSTRAINT "fk_platform_connections_user_id" FOREIGN KEY ("user_id") REFERENCES "users"("id") ON DELETE CASCADE`,
		`ALTER TABLE "taste_profiles" ADD CONSTRAINT "fk_taste_profiles_user_id" FOREIGN KEY ("user_id") REFERENCES "users"("id") ON DELETE CASCADE`,
		`ALTER TABLE "predictions" ADD CONSTRAINT "fk_predictions_user_id" FOREIGN KEY ("user_id") REFERENCES "users"("id") ON DELETE CASCADE`,
		`ALTER TABLE "chat_messages" ADD CONSTRAINT "fk_chat_messages_user_id" FOREIGN KEY ("user_id") REFERENCES "users"("id") ON DELETE CASCADE`,
		`ALTER TABLE "analytics_events" ADD CONSTRAINT "fk_analytics_events_user_id" FOREIGN KEY ("user_id") REFERENCES "users"("id") ON DELETE CASCADE`,
		`ALTER TABLE "serendipity_recommendations" ADD CONSTRAINT "fk_serendipity_recommendations_user_id" FOREIGN KEY ("user_id") REFERENCES "users"("id") ON DELETE CASCADE`,
	} {
		if err := s.db.Exec(stmt).Error; err != nil {
			// Re-running migrations against an existing schema hits
			// duplicate-constraint errors; those are fine.
			s.log.Debug("Foreign key statement skipped", "error", err)
		}
	}
	return nil
}

// Ping verifies the underlying connection; used by the database health
// endpoint.
func (s *PostgresService) Ping() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (s *PostgresService) DB() *gorm.DB {
	return s.db
}
