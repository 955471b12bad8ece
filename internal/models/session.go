package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Session is a login of a user. It is identified by an opaque token.
type Session struct {
	DefaultModel
	Token     string    `gorm:"uniqueIndex"`
	UserID    uuid.UUID `gorm:"index"`
	User      User
	ExpiresAt time.Time
}

func (s *Session) AfterFind(tx *gorm.DB) error {
	_ = s.DefaultModel.AfterFind(tx)
	s.ExpiresAt = s.ExpiresAt.In(time.UTC)

	return nil
}

// Expired reports if the session is no longer valid at the given time.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
