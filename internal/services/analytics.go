package services

import (
	"context"
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/ambjay/unveiled-prod/internal/data/repos/analytics"
	"github.com/ambjay/unveiled-prod/internal/domain"
	"github.com/ambjay/unveiled-prod/internal/platform/logger"
)

// TrackerService records analytics events. Every write is best-effort: a
// failure is logged and swallowed so analytics can never break a user-facing
// request.
type TrackerService interface {
	Track(ctx context.Context, userID, eventType string, eventData map[string]any, sessionID string)
}

type trackerService struct {
	db   *gorm.DB
	log  *logger.Logger
	repo analytics.EventRepo
}

func NewTrackerService(db *gorm.DB, baseLog *logger.Logger, repo analytics.EventRepo) TrackerService {
	return &trackerService{
		db:   db,
		log:  baseLog.With("service", "TrackerService"),
		repo: repo,
	}
}

func (s *trackerService) Track(ctx context.Context, userID, eventType string, eventData map[string]any, sessionID string) {
	if userID == "" || eventType == "" {
		return
	}
	b, err := json.Marshal(eventData)
	if err != nil {
		s.log.Warn("analytics payload marshal failed", "event_type", eventType, "error", err)
		b = []byte("{}")
	}
	row := &domain.AnalyticsEvent{
		UserID:    userID,
		EventType: eventType,
		EventData: datatypes.JSON(b),
		SessionID: sessionID,
	}
	if err := s.repo.Create(ctx, nil, row); err != nil {
		s.log.Warn("analytics event write failed", "event_type", eventType, "error", err)
	}
}
