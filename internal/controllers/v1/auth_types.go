package v1

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/budget-wallets/backend/internal/models"
	"github.com/gin-gonic/gin"
)

type RegisterRequest struct {
	Email           string `json:"email" binding:"required,email" example:"jane@example.com"`                // Email address, used to log in
	Password        string `json:"password" binding:"required,min=8,max=72" example:"correct horse battery"` // Password
	PasswordConfirm string `json:"passwordConfirm" binding:"eqfield=Password" example:"correct horse battery"`
	Name            string `json:"name" binding:"max=100" example:"Jane Doe"` // Display name
}

// UnmarshalJSON trims the email address so that it is validated
// in the form it is stored in.
func (r *RegisterRequest) UnmarshalJSON(data []byte) error {
	type plain RegisterRequest

	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}

	p.Email = strings.TrimSpace(p.Email)
	*r = RegisterRequest(p)
	return nil
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"jane@example.com"`
	Password string `json:"password" binding:"required" example:"correct horse battery"`
}

type PasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required" example:"correct horse battery"`
	NewPassword string `json:"newPassword" binding:"required,min=8,max=72" example:"battery staple horse"`
}

type UserEditable struct {
	Name string `json:"name" binding:"max=100" example:"Jane Doe"` // Display name
}

type UserLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/auth/user"`         // The user itself
	Wallets  string `json:"wallets" example:"https://example.com/api/v1/wallets"`        // Wallets of the user
	Password string `json:"password" example:"https://example.com/api/v1/auth/password"` // Endpoint to change the password
}

// User is the API v1 representation of a User.
type User struct {
	models.DefaultModel
	Email string    `json:"email" example:"jane@example.com"` // Email address
	Name  string    `json:"name" example:"Jane Doe"`          // Display name
	Links UserLinks `json:"links"`
}

func newUser(c *gin.Context, model models.User) User {
	url := c.GetString(string(models.DBContextURL))

	return User{
		DefaultModel: model.DefaultModel,
		Email:        model.Email,
		Name:         model.Name,
		Links: UserLinks{
			Self:     fmt.Sprintf("%s/v1/auth/user", url),
			Wallets:  fmt.Sprintf("%s/v1/wallets", url),
			Password: fmt.Sprintf("%s/v1/auth/password", url),
		},
	}
}

type UserResponse struct {
	Data   *User    `json:"data"`                                                // Data for the user
	Error  *string  `json:"error" example:"Name must be 100 characters or less"` // The error, if any occurred
	Errors []string `json:"errors"`                                              // All violated rules, if the request was invalid
}

// Session is the API v1 representation of a Session.
type Session struct {
	Token     string    `json:"token" example:"5f0c3d2c0a5b4b6e9c41e8e1d1c7b0aa3e9b1f7d6a2c4e8f0b3d5a7c9e1f2a4b"` // Send as "Authorization: Bearer <token>"
	ExpiresAt time.Time `json:"expiresAt" example:"2024-05-02T19:28:44.491514Z"`                                  // Time the session expires
	User      User      `json:"user"`
}

func newSession(c *gin.Context, model models.Session) Session {
	return Session{
		Token:     model.Token,
		ExpiresAt: model.ExpiresAt,
		User:      newUser(c, model.User),
	}
}

type SessionResponse struct {
	Data   *Session `json:"data"`                                                         // Data for the session
	Error  *string  `json:"error" example:"the email address or password is not correct"` // The error, if any occurred
	Errors []string `json:"errors"`                                                       // All violated rules, if the request was invalid
}
