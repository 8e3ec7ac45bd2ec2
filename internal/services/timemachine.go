package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/ambjay/unveiled-prod/internal/clients/tasteapi"
	"github.com/ambjay/unveiled-prod/internal/platform/apierr"
	"github.com/ambjay/unveiled-prod/internal/platform/logger"
)

// TimeMachineService projects a user's current taste onto a past era via the
// taste API's historical analysis. There is no generative fallback: when the
// engine is unconfigured or returns nothing, the caller gets an honest
// 503/404 instead of fabricated history.
type TimeMachineService interface {
	Project(ctx context.Context, userID, era string) ([]json.RawMessage, error)
}

type timeMachineService struct {
	db       *gorm.DB
	log      *logger.Logger
	profiles ProfileService
	api      tasteapi.Client
	tracker  TrackerService
}

func NewTimeMachineService(db *gorm.DB, baseLog *logger.Logger, profiles ProfileService, api tasteapi.Client, tracker TrackerService) TimeMachineService {
	return &timeMachineService{
		db:       db,
		log:      baseLog.With("service", "TimeMachineService"),
		profiles: profiles,
		api:      api,
		tracker:  tracker,
	}
}

func (s *timeMachineService) Project(ctx context.Context, userID, era string) ([]json.RawMessage, error) {
	era = strings.TrimSpace(era)
	if era == "" {
		return nil, apierr.BadRequest("missing_era", errors.New("era is required"))
	}

	aggregate, err := s.profiles.Aggregate(ctx, userID)
	if err != nil {
		return nil, apierr.Internal("profile_read_failed", err)
	}

	if s.api == nil {
		return nil, apierr.Unavailable("taste_api_unconfigured",
			errors.New("historical taste projection requires the taste intelligence engine; configure the taste API"))
	}

	resp, err := s.api.Historical(ctx, tasteapi.HistoricalRequest{
		UserProfile:            aggregate.UserProfile(),
		TargetEra:              era,
		IncludeCulturalContext: true,
	})
	if err != nil {
		return nil, apierr.Internal("taste_api_failed",
			errors.New("unable to project historical taste; please try again"))
	}

	if resp == nil || len(resp.Results) == 0 {
		return nil, apierr.NotFound("no_historical_taste",
			errors.New("no historical projection available; try connecting more platforms to improve predictions"))
	}

	s.tracker.Track(ctx, userID, "time_machine_request", map[string]any{
		"era":   era,
		"count": len(resp.Results),
	}, "")

	out := make([]json.RawMessage, 0, len(resp.Results))
	for _, r := range resp.Results {
		out = append(out, r.Raw)
	}
	return out, nil
}
