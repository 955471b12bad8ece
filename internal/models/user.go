package models

import (
	"strings"

	"gorm.io/gorm"
)

// User is an account that owns wallets.
type User struct {
	DefaultModel
	Email        string `json:"email" gorm:"uniqueIndex" example:"jane@example.com"` // Email address, used to log in
	Name         string `json:"name" example:"Jane Doe"`                             // Display name
	PasswordHash string `json:"-"`
}

func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Email = NormalizeEmail(u.Email)
	u.Name = strings.TrimSpace(u.Name)

	return nil
}

// NormalizeEmail returns the form of an email address that is stored.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
