package app

import (
	"gorm.io/gorm"

	"github.com/ambjay/unveiled-prod/internal/data/repos/analytics"
	"github.com/ambjay/unveiled-prod/internal/data/repos/chat"
	"github.com/ambjay/unveiled-prod/internal/data/repos/taste"
	"github.com/ambjay/unveiled-prod/internal/data/repos/user"
	"github.com/ambjay/unveiled-prod/internal/platform/logger"
)

type Repos struct {
	User           user.Repo
	TasteProfile   taste.ProfileRepo
	Connection     taste.ConnectionRepo
	Prediction     taste.PredictionRepo
	Serendipity    taste.SerendipityRepo
	ChatMessage    chat.MessageRepo
	AnalyticsEvent analytics.EventRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:           user.NewRepo(db, log),
		TasteProfile:   taste.NewProfileRepo(db, log),
		Connection:     taste.NewConnectionRepo(db, log),
		Prediction:     taste.NewPredictionRepo(db, log),
		Serendipity:    taste.NewSerendipityRepo(db, log),
		ChatMessage:    chat.NewMessageRepo(db, log),
		AnalyticsEvent: analytics.NewEventRepo(db, log),
	}
}
