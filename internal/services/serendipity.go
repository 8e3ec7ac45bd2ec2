package services

import (
	"context"
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/ambjay/unveiled-prod/internal/clients/tasteapi"
	"github.com/ambjay/unveiled-prod/internal/data/repos/taste"
	"github.com/ambjay/unveiled-prod/internal/domain"
	"github.com/ambjay/unveiled-prod/internal/platform/apierr"
	"github.com/ambjay/unveiled-prod/internal/platform/logger"
)

const serendipityAlgorithmVersion = "taste-api-v1.0"

// Serendipity tuning: high novelty, but nothing below the confidence floor.
const (
	serendipitySurpriseFactor    = 0.8
	serendipityConfidenceMinimum = 0.6
)

// SerendipityView is the single "surprise me" recommendation shaped for the
// client.
type SerendipityView struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Type        string  `json:"type"`
	Reasoning   string  `json:"reasoning"`
	Confidence  float64 `json:"confidence"`
	Platform    string  `json:"platform"`
	Genre       string  `json:"genre,omitempty"`
	Year        int     `json:"year,omitempty"`
	PreviewURL  string  `json:"preview_url,omitempty"`
	ExternalURL string  `json:"external_url,omitempty"`
	ImageURL    string  `json:"image_url,omitempty"`
}

type SerendipityService interface {
	Surprise(ctx context.Context, userID string) (*SerendipityView, error)
}

type serendipityService struct {
	db       *gorm.DB
	log      *logger.Logger
	profiles ProfileService
	history  taste.SerendipityRepo
	api      tasteapi.Client
	tracker  TrackerService
}

func NewSerendipityService(db *gorm.DB, baseLog *logger.Logger, profiles ProfileService, history taste.SerendipityRepo, api tasteapi.Client, tracker TrackerService) SerendipityService {
	return &serendipityService{
		db:       db,
		log:      baseLog.With("service", "SerendipityService"),
		profiles: profiles,
		history:  history,
		api:      api,
		tracker:  tracker,
	}
}

func (s *serendipityService) Surprise(ctx context.Context, userID string) (*SerendipityView, error) {
	aggregate, err := s.profiles.Aggregate(ctx, userID)
	if err != nil {
		return nil, apierr.Internal("profile_read_failed", err)
	}

	if s.api == nil {
		return nil, apierr.Unavailable("taste_api_unconfigured",
			errors.New("serendipity requires the taste intelligence engine; configure the taste API"))
	}

	s.tracker.Track(ctx, userID, "serendipity_request", map[string]any{
		"platforms_connected": len(aggregate.Platforms),
		"has_predictions":     len(aggregate.Predictions) > 0,
	}, "")

	resp, err := s.api.Serendipity(ctx, tasteapi.SerendipityRequest{
		UserProfile:       aggregate.UserProfile(),
		SurpriseFactor:    serendipitySurpriseFactor,
		ConfidenceMinimum: serendipityConfidenceMinimum,
		IncludeReasoning:  true,
	})
	if err != nil {
		return nil, apierr.Internal("taste_api_failed",
			errors.New("unable to generate serendipitous recommendations; please try again"))
	}

	usable := usableResults(resp)
	if len(usable) == 0 {
		return nil, apierr.NotFound("no_recommendations",
			errors.New("no serendipitous recommendations available; try connecting more platforms to improve predictions"))
	}

	pick := usable[0]
	row := &domain.SerendipityRecommendation{
		UserID:             userID,
		RecommendationData: datatypes.JSON(pick.Raw),
		AlgorithmVersion:   serendipityAlgorithmVersion,
	}
	if err := s.history.Create(ctx, nil, row); err != nil {
		s.log.Error("serendipity history write failed", "user_id", userID, "error", err)
		return nil, apierr.Internal("history_write_failed", err)
	}

	return &SerendipityView{
		ID:          pick.ID,
		Title:       pick.Entity.Name,
		Type:        pick.Entity.Type,
		Reasoning:   pick.Reasoning,
		Confidence:  pick.ConfidenceScore,
		Platform:    platformOrDefault(pick.Platform),
		Genre:       pick.Entity.Genre,
		Year:        pick.Entity.Year,
		PreviewURL:  pick.Entity.PreviewURL,
		ExternalURL: pick.Entity.ExternalURL,
		ImageURL:    pick.Entity.ImageURL,
	}, nil
}

// usableResults drops entries the external schema promises but does not
// deliver (no entity name means nothing to show). Zero usable results and
// zero raw results are deliberately the same outcome: NotFound.
func usableResults(resp *tasteapi.Response) []tasteapi.Result {
	if resp == nil {
		return nil
	}
	out := make([]tasteapi.Result, 0, len(resp.Results))
	for _, r := range resp.Results {
		if r.Entity.Name == "" {
			continue
		}
		out = append(out, r)
	}
	return out
}

func platformOrDefault(platform string) string {
	if platform == "" {
		return "Multiple"
	}
	return platform
}
