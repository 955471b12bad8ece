package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/budget-wallets/backend/internal/models"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const sessionKey = "bw-session"

type httpError struct {
	Error string `json:"error" example:"the session is invalid or has expired, please log in again"`
}

// Middleware resolves the session for requests that send an
// "Authorization: Bearer <token>" header.
//
// Requests without the header pass through without a session. Requests
// with an invalid or expired token are rejected with HTTP 401.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			abort(c, ErrSessionInvalid)
			return
		}

		session, err := Authenticate(models.DB, strings.TrimSpace(token))
		if err != nil {
			abort(c, err)
			return
		}

		c.Set(sessionKey, session)
		c.Next()
	}
}

// Required rejects all requests that are not authenticated.
func Required() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := FromContext(c); !ok {
			abort(c, ErrAuthenticationRequired)
			return
		}

		c.Next()
	}
}

// FromContext returns the session of the request, if there is one.
func FromContext(c *gin.Context) (models.Session, bool) {
	value, ok := c.Get(sessionKey)
	if !ok {
		return models.Session{}, false
	}

	session, ok := value.(models.Session)
	return session, ok
}

func abort(c *gin.Context, err error) {
	status := http.StatusUnauthorized
	if errors.Is(err, models.ErrGeneral) {
		status = http.StatusInternalServerError
		log.Error().Str("request-id", requestid.Get(c)).Err(err).Msg("session lookup failed")
	}

	c.AbortWithStatusJSON(status, httpError{Error: err.Error()})
}
