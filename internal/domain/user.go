package domain

import (
	"time"
)

// User rows mirror the identity provider's record; the provider-issued id is
// the primary key and the only transitions are absent->created and
// exists->updated. Deletion events are not handled.
type User struct {
	ID        string    `gorm:"primaryKey;column:id" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null;column:email" json:"email"`
	FirstName string    `gorm:"column:first_name" json:"first_name,omitempty"`
	LastName  string    `gorm:"column:last_name" json:"last_name,omitempty"`
	ImageURL  string    `gorm:"column:image_url" json:"image_url,omitempty"`
	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
