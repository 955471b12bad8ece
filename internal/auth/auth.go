// Package auth manages users and their sessions.
//
// Sessions are identified by opaque bearer tokens stored in the database.
// There is no process-wide "current user": the session for a request is
// resolved by Middleware and read with FromContext.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/budget-wallets/backend/internal/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// MinPasswordLength is the minimum number of characters for passwords.
const MinPasswordLength = 8

// MaxPasswordBytes is the longest password bcrypt accepts.
const MaxPasswordBytes = 72

var (
	// SessionLifetime is the time a session is valid after login.
	SessionLifetime = 14 * 24 * time.Hour

	// BcryptCost is the cost used for hashing new passwords.
	BcryptCost = bcrypt.DefaultCost
)

var (
	ErrInvalidCredentials     = errors.New("the email address or password is not correct")
	ErrSessionInvalid         = errors.New("the session is invalid or has expired, please log in again")
	ErrAuthenticationRequired = errors.New("you need to be logged in to access this resource")
	ErrPasswordTooShort       = fmt.Errorf("the password must be at least %d characters long", MinPasswordLength)
	ErrPasswordTooLong        = fmt.Errorf("the password must be at most %d bytes long", MaxPasswordBytes)
	ErrWrongPassword          = errors.New("the current password is not correct")
)

// Register creates a new user.
func Register(db *gorm.DB, email, name, password string) (models.User, error) {
	hash, err := hashPassword(password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
	}

	err = db.Create(&user).Error
	if err != nil {
		return models.User{}, err
	}

	log.Info().Str("user", user.ID.String()).Msg("user registered")
	return user, nil
}

// Login verifies the credentials and starts a new session for the user.
func Login(db *gorm.DB, email, password string) (models.Session, error) {
	email = models.NormalizeEmail(email)
	if email == "" {
		return models.Session{}, ErrInvalidCredentials
	}

	var user models.User
	err := db.Where(&models.User{Email: email}).First(&user).Error
	if errors.Is(err, models.ErrResourceNotFound) {
		return models.Session{}, ErrInvalidCredentials
	} else if err != nil {
		return models.Session{}, err
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		return models.Session{}, ErrInvalidCredentials
	}

	return newSession(db, user)
}

// Authenticate returns the session for the token, with the user loaded.
func Authenticate(db *gorm.DB, token string) (models.Session, error) {
	if token == "" {
		return models.Session{}, ErrSessionInvalid
	}

	var session models.Session
	err := db.Preload("User").Where(&models.Session{Token: token}).First(&session).Error
	if errors.Is(err, models.ErrResourceNotFound) {
		return models.Session{}, ErrSessionInvalid
	} else if err != nil {
		return models.Session{}, err
	}

	if session.Expired(time.Now()) {
		return models.Session{}, ErrSessionInvalid
	}

	return session, nil
}

// Refresh replaces the session with a new one with a new token and a
// renewed lifetime. The old token is no longer valid afterwards.
func Refresh(db *gorm.DB, session models.Session) (models.Session, error) {
	var refreshed models.Session

	err := models.InTransaction(db, func(tx *gorm.DB) error {
		var err error
		refreshed, err = newSession(tx, session.User)
		if err != nil {
			return err
		}

		return tx.Unscoped().Delete(&models.Session{}, "id = ?", session.ID).Error
	})
	if err != nil {
		return models.Session{}, err
	}

	return refreshed, nil
}

// Logout ends the session.
func Logout(db *gorm.DB, session models.Session) error {
	return db.Unscoped().Delete(&models.Session{}, "id = ?", session.ID).Error
}

// ChangePassword sets a new password for the user after verifying the current one.
func ChangePassword(db *gorm.DB, user *models.User, current, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(current))
	if err != nil {
		return ErrWrongPassword
	}

	hash, err := hashPassword(password)
	if err != nil {
		return err
	}

	return db.Model(user).Update("PasswordHash", hash).Error
}

// UpdateProfile updates the name of the user.
func UpdateProfile(db *gorm.DB, user *models.User, name string) error {
	return db.Model(user).Update("Name", strings.TrimSpace(name)).Error
}

func hashPassword(password string) (string, error) {
	if len([]rune(password)) < MinPasswordLength {
		return "", ErrPasswordTooShort
	}

	if len(password) > MaxPasswordBytes {
		return "", ErrPasswordTooLong
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", fmt.Errorf("could not hash password: %w", err)
	}

	return string(hash), nil
}

func newSession(db *gorm.DB, user models.User) (models.Session, error) {
	session := models.Session{
		Token:     strings.ReplaceAll(uuid.NewString()+uuid.NewString(), "-", ""),
		UserID:    user.ID,
		User:      user,
		ExpiresAt: time.Now().In(time.UTC).Add(SessionLifetime),
	}

	// The user already exists, only the session is created
	err := db.Omit("User").Create(&session).Error
	if err != nil {
		return models.Session{}, err
	}

	return session, nil
}
