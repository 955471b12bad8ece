package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/budget-wallets/backend/internal/auth"
	"github.com/budget-wallets/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(path string, headers map[string]string) *httptest.ResponseRecorder {
	r := gin.New()
	r.Use(auth.Middleware())

	r.GET("/optional", func(c *gin.Context) {
		session, ok := auth.FromContext(c)
		if !ok {
			c.String(http.StatusOK, "anonymous")
			return
		}
		c.String(http.StatusOK, session.User.Email)
	})

	r.GET("/required", auth.Required(), func(c *gin.Context) {
		session, _ := auth.FromContext(c)
		c.String(http.StatusOK, session.User.Email)
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "http://example.com"+path, nil)
	for header, value := range headers {
		req.Header.Set(header, value)
	}

	r.ServeHTTP(w, req)
	return w
}

func (suite *TestSuiteStandard) TestMiddleware() {
	_ = suite.createTestUser("jane@example.com", "correct horse")
	session, err := auth.Login(models.DB, "jane@example.com", "correct horse")
	require.Nil(suite.T(), err)

	tests := []struct {
		name    string
		path    string
		headers map[string]string
		status  int
		body    string
	}{
		{"Valid token", "/required", map[string]string{"Authorization": "Bearer " + session.Token}, http.StatusOK, "jane@example.com"},
		{"Valid token on optional route", "/optional", map[string]string{"Authorization": "Bearer " + session.Token}, http.StatusOK, "jane@example.com"},
		{"No token on optional route", "/optional", map[string]string{}, http.StatusOK, "anonymous"},
		{"No token", "/required", map[string]string{}, http.StatusUnauthorized, auth.ErrAuthenticationRequired.Error()},
		{"Unknown token", "/required", map[string]string{"Authorization": "Bearer 1234"}, http.StatusUnauthorized, auth.ErrSessionInvalid.Error()},
		{"Unknown token on optional route", "/optional", map[string]string{"Authorization": "Bearer 1234"}, http.StatusUnauthorized, auth.ErrSessionInvalid.Error()},
		{"Wrong scheme", "/required", map[string]string{"Authorization": "Basic " + session.Token}, http.StatusUnauthorized, auth.ErrSessionInvalid.Error()},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			w := serve(tt.path, tt.headers)
			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), tt.body)
		})
	}
}

func (suite *TestSuiteStandard) TestMiddlewareDBClosed() {
	suite.CloseDB()

	w := serve("/required", map[string]string{"Authorization": "Bearer 1234"})
	assert.Equal(suite.T(), http.StatusInternalServerError, w.Code)
	assert.Contains(suite.T(), w.Body.String(), models.ErrGeneral.Error())
}
