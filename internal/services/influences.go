package services

import (
	"context"
	"encoding/json"
	"errors"

	"gorm.io/gorm"

	"github.com/ambjay/unveiled-prod/internal/clients/tasteapi"
	"github.com/ambjay/unveiled-prod/internal/platform/apierr"
	"github.com/ambjay/unveiled-prod/internal/platform/logger"
)

// InfluenceService relays the stored preference aggregate to the taste API's
// influence analysis. The result objects are externally owned and passed
// through untouched.
type InfluenceService interface {
	Analyze(ctx context.Context, userID string) ([]json.RawMessage, error)
}

type influenceService struct {
	db       *gorm.DB
	log      *logger.Logger
	profiles ProfileService
	api      tasteapi.Client
	tracker  TrackerService
}

func NewInfluenceService(db *gorm.DB, baseLog *logger.Logger, profiles ProfileService, api tasteapi.Client, tracker TrackerService) InfluenceService {
	return &influenceService{
		db:       db,
		log:      baseLog.With("service", "InfluenceService"),
		profiles: profiles,
		api:      api,
		tracker:  tracker,
	}
}

func (s *influenceService) Analyze(ctx context.Context, userID string) ([]json.RawMessage, error) {
	aggregate, err := s.profiles.Aggregate(ctx, userID)
	if err != nil {
		return nil, apierr.Internal("profile_read_failed", err)
	}

	if s.api == nil {
		return nil, apierr.Unavailable("taste_api_unconfigured",
			errors.New("influence analysis requires the taste intelligence engine; configure the taste API"))
	}

	resp, err := s.api.Influences(ctx, tasteapi.InfluencesRequest{
		UserProfile:            aggregate.UserProfile(),
		AnalysisDepth:          "deep",
		IncludeCulturalContext: true,
	})
	if err != nil {
		return nil, apierr.Internal("taste_api_failed",
			errors.New("unable to analyze influences; please try again"))
	}

	// Influence objects carry no entity envelope; any result with a body
	// counts as usable.
	if resp == nil || len(resp.Results) == 0 {
		return nil, apierr.NotFound("no_influences",
			errors.New("no influence analysis available; try connecting more platforms to improve predictions"))
	}

	s.tracker.Track(ctx, userID, "influences_analyzed", map[string]any{
		"count": len(resp.Results),
	}, "")

	out := make([]json.RawMessage, 0, len(resp.Results))
	for _, r := range resp.Results {
		out = append(out, r.Raw)
	}
	return out, nil
}
