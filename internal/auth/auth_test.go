package auth_test

import (
	"strings"
	"time"

	"github.com/budget-wallets/backend/internal/auth"
	"github.com/budget-wallets/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestRegister() {
	user := suite.createTestUser("  Jane@Example.com ", "correct horse")

	assert.Equal(suite.T(), "jane@example.com", user.Email)
	assert.Equal(suite.T(), "Test User", user.Name)
	assert.NotEqual(suite.T(), "correct horse", user.PasswordHash)
}

func (suite *TestSuiteStandard) TestRegisterErrors() {
	_ = suite.createTestUser("jane@example.com", "correct horse")

	tests := []struct {
		name     string
		email    string
		password string
		err      error
	}{
		{"Email in use", "jane@example.com", "another password", models.ErrEmailNotUnique},
		{"Email in use with other case", "JANE@example.com", "another password", models.ErrEmailNotUnique},
		{"Password too short", "john@example.com", "short", auth.ErrPasswordTooShort},
		{"Password too long", "john@example.com", strings.Repeat("p", 73), auth.ErrPasswordTooLong},
		{"Password too long in bytes", "john@example.com", strings.Repeat("ü", 40), auth.ErrPasswordTooLong},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := auth.Register(models.DB, tt.email, "Name", tt.password)
			assert.ErrorIs(suite.T(), err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestLogin() {
	user := suite.createTestUser("jane@example.com", "correct horse")

	session, err := auth.Login(models.DB, "JANE@example.com", "correct horse")
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), user.ID, session.UserID)
	assert.Len(suite.T(), session.Token, 64)
	assert.True(suite.T(), session.ExpiresAt.After(time.Now().Add(auth.SessionLifetime-time.Minute)))
}

func (suite *TestSuiteStandard) TestLoginErrors() {
	_ = suite.createTestUser("jane@example.com", "correct horse")

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"Wrong password", "jane@example.com", "wrong horse"},
		{"Unknown user", "john@example.com", "correct horse"},
		{"No email", "", "correct horse"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := auth.Login(models.DB, tt.email, tt.password)
			assert.ErrorIs(suite.T(), err, auth.ErrInvalidCredentials)
		})
	}
}

func (suite *TestSuiteStandard) TestLoginDBClosed() {
	suite.CloseDB()

	_, err := auth.Login(models.DB, "jane@example.com", "correct horse")
	assert.ErrorIs(suite.T(), err, models.ErrGeneral)
}

func (suite *TestSuiteStandard) TestAuthenticate() {
	user := suite.createTestUser("jane@example.com", "correct horse")
	session, err := auth.Login(models.DB, "jane@example.com", "correct horse")
	require.Nil(suite.T(), err)

	authenticated, err := auth.Authenticate(models.DB, session.Token)
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), session.ID, authenticated.ID)
	assert.Equal(suite.T(), user.ID, authenticated.User.ID)
	assert.Equal(suite.T(), "jane@example.com", authenticated.User.Email)
}

func (suite *TestSuiteStandard) TestAuthenticateInvalid() {
	_ = suite.createTestUser("jane@example.com", "correct horse")
	session, err := auth.Login(models.DB, "jane@example.com", "correct horse")
	require.Nil(suite.T(), err)

	// Expire the session
	err = models.DB.Model(&models.Session{}).Where("id = ?", session.ID).Update("ExpiresAt", time.Now().Add(-time.Hour)).Error
	require.Nil(suite.T(), err)

	for _, token := range []string{"", "not-a-token", strings.ToUpper(session.Token), session.Token} {
		_, err := auth.Authenticate(models.DB, token)
		assert.ErrorIs(suite.T(), err, auth.ErrSessionInvalid, "Token: %s", token)
	}
}

func (suite *TestSuiteStandard) TestRefresh() {
	_ = suite.createTestUser("jane@example.com", "correct horse")
	session, err := auth.Login(models.DB, "jane@example.com", "correct horse")
	require.Nil(suite.T(), err)

	session, err = auth.Authenticate(models.DB, session.Token)
	require.Nil(suite.T(), err)

	refreshed, err := auth.Refresh(models.DB, session)
	require.Nil(suite.T(), err)
	assert.NotEqual(suite.T(), session.Token, refreshed.Token)
	assert.Equal(suite.T(), session.UserID, refreshed.UserID)

	_, err = auth.Authenticate(models.DB, session.Token)
	assert.ErrorIs(suite.T(), err, auth.ErrSessionInvalid, "Old token must not be valid after refresh")

	_, err = auth.Authenticate(models.DB, refreshed.Token)
	assert.Nil(suite.T(), err)
}

func (suite *TestSuiteStandard) TestRefreshDBClosed() {
	_ = suite.createTestUser("jane@example.com", "correct horse")
	session, err := auth.Login(models.DB, "jane@example.com", "correct horse")
	require.Nil(suite.T(), err)

	suite.CloseDB()

	_, err = auth.Refresh(models.DB, session)
	assert.ErrorIs(suite.T(), err, models.ErrGeneral)
}

func (suite *TestSuiteStandard) TestLogout() {
	_ = suite.createTestUser("jane@example.com", "correct horse")
	session, err := auth.Login(models.DB, "jane@example.com", "correct horse")
	require.Nil(suite.T(), err)

	require.Nil(suite.T(), auth.Logout(models.DB, session))

	_, err = auth.Authenticate(models.DB, session.Token)
	assert.ErrorIs(suite.T(), err, auth.ErrSessionInvalid)
}

func (suite *TestSuiteStandard) TestChangePassword() {
	user := suite.createTestUser("jane@example.com", "correct horse")

	err := auth.ChangePassword(models.DB, &user, "wrong horse", "battery staple")
	assert.ErrorIs(suite.T(), err, auth.ErrWrongPassword)

	err = auth.ChangePassword(models.DB, &user, "correct horse", "short")
	assert.ErrorIs(suite.T(), err, auth.ErrPasswordTooShort)

	err = auth.ChangePassword(models.DB, &user, "correct horse", "battery staple")
	require.Nil(suite.T(), err)

	_, err = auth.Login(models.DB, "jane@example.com", "correct horse")
	assert.ErrorIs(suite.T(), err, auth.ErrInvalidCredentials)

	_, err = auth.Login(models.DB, "jane@example.com", "battery staple")
	assert.Nil(suite.T(), err)
}

func (suite *TestSuiteStandard) TestUpdateProfile() {
	user := suite.createTestUser("jane@example.com", "correct horse")

	require.Nil(suite.T(), auth.UpdateProfile(models.DB, &user, "  Jane Doe "))
	assert.Equal(suite.T(), "Jane Doe", user.Name)

	var stored models.User
	require.Nil(suite.T(), models.DB.First(&stored, "id = ?", user.ID).Error)
	assert.Equal(suite.T(), "Jane Doe", stored.Name)
}
