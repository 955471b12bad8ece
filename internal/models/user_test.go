package models_test

import (
	"time"

	"github.com/budget-wallets/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestUserNormalization() {
	user := suite.createTestUser(models.User{
		Email: "  Jane.Doe@Example.COM ",
		Name:  " Jane ",
	})

	assert.Equal(suite.T(), "jane.doe@example.com", user.Email)
	assert.Equal(suite.T(), "Jane", user.Name)
}

func (suite *TestSuiteStandard) TestNormalizeEmail() {
	assert.Equal(suite.T(), "jane@example.com", models.NormalizeEmail(" JANE@example.com\n"))
	assert.Equal(suite.T(), "", models.NormalizeEmail("   "))
}

func (suite *TestSuiteStandard) TestSessionExpired() {
	now := time.Now()
	session := models.Session{ExpiresAt: now}

	assert.True(suite.T(), session.Expired(now))
	assert.True(suite.T(), session.Expired(now.Add(time.Second)))
	assert.False(suite.T(), session.Expired(now.Add(-time.Second)))
}

func (suite *TestSuiteStandard) TestSessionTokenNotUnique() {
	user := suite.createTestUser(models.User{})
	expires := time.Now().Add(time.Hour)

	require.Nil(suite.T(), models.DB.Create(&models.Session{Token: "abc", UserID: user.ID, ExpiresAt: expires}).Error)

	err := models.DB.Create(&models.Session{Token: "abc", UserID: user.ID, ExpiresAt: expires}).Error
	assert.ErrorIs(suite.T(), err, models.ErrSessionTokenNotUnique)
}
