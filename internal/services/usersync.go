package services

import (
	"context"
	"encoding/json"
	"strings"

	"gorm.io/gorm"

	userrepo "github.com/ambjay/unveiled-prod/internal/data/repos/user"
	"github.com/ambjay/unveiled-prod/internal/domain"
	"github.com/ambjay/unveiled-prod/internal/platform/logger"
)

const (
	EventUserCreated = "user.created"
	EventUserUpdated = "user.updated"
)

// LifecycleEvent is the verified envelope pushed by the identity provider.
type LifecycleEvent struct {
	Type string             `json:"type"`
	Data LifecycleEventData `json:"data"`
}

type LifecycleEventData struct {
	ID             string         `json:"id"`
	EmailAddresses []EmailAddress `json:"email_addresses"`
	FirstName      string         `json:"first_name"`
	LastName       string         `json:"last_name"`
	ImageURL       string         `json:"image_url"`
}

type EmailAddress struct {
	EmailAddress string `json:"email_address"`
}

// ParseLifecycleEvent decodes a verified webhook body. Parsing happens only
// after signature verification.
func ParseLifecycleEvent(body []byte) (*LifecycleEvent, error) {
	var evt LifecycleEvent
	if err := json.Unmarshal(body, &evt); err != nil {
		return nil, err
	}
	return &evt, nil
}

// UserSyncService applies at-least-once-safe user record synchronization from
// identity provider lifecycle events.
type UserSyncService interface {
	// Sync upserts the user for a recognized event. It reports whether any
	// write happened; events with no usable email are skipped without error
	// so the provider does not retry a delivery that can never succeed.
	Sync(ctx context.Context, evt *LifecycleEvent) (synced bool, err error)
}

type userSyncService struct {
	db      *gorm.DB
	log     *logger.Logger
	users   userrepo.Repo
	tracker TrackerService
}

func NewUserSyncService(db *gorm.DB, baseLog *logger.Logger, users userrepo.Repo, tracker TrackerService) UserSyncService {
	return &userSyncService{
		db:      db,
		log:     baseLog.With("service", "UserSyncService"),
		users:   users,
		tracker: tracker,
	}
}

func (s *userSyncService) Sync(ctx context.Context, evt *LifecycleEvent) (bool, error) {
	if evt == nil {
		return false, nil
	}
	switch evt.Type {
	case EventUserCreated, EventUserUpdated:
	default:
		// Forward compatibility over strictness: unknown lifecycle types
		// are acknowledged and ignored.
		s.log.Debug("ignoring unrecognized lifecycle event", "type", evt.Type)
		return false, nil
	}

	email := primaryEmail(evt.Data.EmailAddresses)
	if evt.Data.ID == "" || email == "" {
		s.log.Info("skipping lifecycle event without usable identity", "type", evt.Type)
		return false, nil
	}

	u := &domain.User{
		ID:        evt.Data.ID,
		Email:     email,
		FirstName: strings.TrimSpace(evt.Data.FirstName),
		LastName:  strings.TrimSpace(evt.Data.LastName),
		ImageURL:  strings.TrimSpace(evt.Data.ImageURL),
	}
	if err := s.users.Upsert(ctx, nil, u); err != nil {
		s.log.Error("user upsert failed", "user_id", u.ID, "error", err)
		return false, err
	}

	if evt.Type == EventUserCreated {
		s.tracker.Track(ctx, u.ID, "user_registered", map[string]any{
			"registration_method": "identity_provider",
			"has_email":           true,
			"has_name":            u.FirstName != "" || u.LastName != "",
			"has_image":           u.ImageURL != "",
		}, "")
	}

	s.log.Info("user synchronized", "user_id", u.ID, "type", evt.Type)
	return true, nil
}

func primaryEmail(addrs []EmailAddress) string {
	if len(addrs) == 0 {
		return ""
	}
	return strings.TrimSpace(addrs[0].EmailAddress)
}
