package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PlatformConnection is written by the platform OAuth flow; this service only
// reads it to learn which sources feed a user's taste profile.
type PlatformConnection struct {
	ID               uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID           string         `gorm:"not null;index;uniqueIndex:idx_platform_conn_user_platform;column:user_id" json:"user_id"`
	PlatformName     string         `gorm:"not null;uniqueIndex:idx_platform_conn_user_platform;column:platform_name" json:"platform_name"`
	PlatformUserID   string         `gorm:"column:platform_user_id" json:"platform_user_id,omitempty"`
	PlatformUsername string         `gorm:"column:platform_username" json:"platform_username,omitempty"`
	AccessToken      string         `gorm:"column:access_token" json:"-"`
	RefreshToken     string         `gorm:"column:refresh_token" json:"-"`
	TokenExpiresAt   *time.Time     `gorm:"column:token_expires_at" json:"token_expires_at,omitempty"`
	ConnectionData   datatypes.JSON `gorm:"column:connection_data" json:"connection_data,omitempty"`
	IsActive         bool           `gorm:"not null;default:true;column:is_active" json:"is_active"`
	ConnectedAt      time.Time      `gorm:"not null;default:now();column:connected_at" json:"connected_at"`
	LastSyncAt       *time.Time     `gorm:"column:last_sync_at" json:"last_sync_at,omitempty"`
}

func (PlatformConnection) TableName() string {
	return "platform_connections"
}

// TasteProfile holds one opaque preference blob per (user, platform,
// category); rows are upserted by sync jobs and read in bulk per user.
type TasteProfile struct {
	ID              uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID          string         `gorm:"not null;index;uniqueIndex:idx_taste_profile_key;column:user_id" json:"user_id"`
	Platform        string         `gorm:"not null;uniqueIndex:idx_taste_profile_key;column:platform" json:"platform"`
	Category        string         `gorm:"not null;uniqueIndex:idx_taste_profile_key;column:category" json:"category"`
	Data            datatypes.JSON `gorm:"not null;column:data" json:"data"`
	ConfidenceScore float64        `gorm:"not null;default:0.5;column:confidence_score" json:"confidence_score"`
	UpdatedAt       time.Time      `gorm:"not null;default:now()" json:"updated_at"`
}

func (TasteProfile) TableName() string {
	return "taste_profiles"
}

// Prediction is written only as a side effect of a successful taste API call
// and never mutated afterward except the view/rating flags.
type Prediction struct {
	ID                 uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID             string         `gorm:"not null;index;column:user_id" json:"user_id"`
	EntityName         string         `gorm:"not null;column:entity_name" json:"entity_name"`
	EntityType         string         `gorm:"not null;column:entity_type" json:"entity_type"`
	EntityMetadata     datatypes.JSON `gorm:"column:entity_metadata" json:"entity_metadata,omitempty"`
	ConfidenceScore    float64        `gorm:"not null;column:confidence_score" json:"confidence_score"`
	PredictedTimeframe string         `gorm:"column:predicted_timeframe" json:"predicted_timeframe"`
	Reasoning          string         `gorm:"column:reasoning" json:"reasoning"`
	PredictionSource   string         `gorm:"not null;default:'internal';column:prediction_source" json:"prediction_source"`
	ExternalID         string         `gorm:"column:external_id" json:"external_id,omitempty"`
	IsViewed           bool           `gorm:"not null;default:false;column:is_viewed" json:"is_viewed"`
	UserRating         *int           `gorm:"column:user_rating" json:"user_rating,omitempty"`
	CreatedAt          time.Time      `gorm:"not null;default:now()" json:"created_at"`
}

func (Prediction) TableName() string {
	return "predictions"
}

type ChatMessage struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID      string         `gorm:"not null;index;column:user_id" json:"user_id"`
	Message     string         `gorm:"not null;column:message" json:"message"`
	Response    string         `gorm:"not null;column:response" json:"response"`
	MessageType string         `gorm:"not null;default:'chat';column:message_type" json:"message_type"`
	ContextData datatypes.JSON `gorm:"column:context_data" json:"context_data,omitempty"`
	CreatedAt   time.Time      `gorm:"not null;default:now()" json:"created_at"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}

type AnalyticsEvent struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID    string         `gorm:"not null;index;column:user_id" json:"user_id"`
	EventType string         `gorm:"not null;column:event_type" json:"event_type"`
	EventData datatypes.JSON `gorm:"column:event_data" json:"event_data,omitempty"`
	SessionID string         `gorm:"column:session_id" json:"session_id,omitempty"`
	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
}

func (AnalyticsEvent) TableName() string {
	return "analytics_events"
}

type SerendipityRecommendation struct {
	ID                 uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID             string         `gorm:"not null;index;column:user_id" json:"user_id"`
	RecommendationData datatypes.JSON `gorm:"not null;column:recommendation_data" json:"recommendation_data"`
	AlgorithmVersion   string         `gorm:"not null;column:algorithm_version" json:"algorithm_version"`
	CreatedAt          time.Time      `gorm:"not null;default:now()" json:"created_at"`
}

func (SerendipityRecommendation) TableName() string {
	return "serendipity_recommendations"
}
