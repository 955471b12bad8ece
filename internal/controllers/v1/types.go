package v1

import (
	"github.com/budget-wallets/backend/internal/auth"
	"github.com/budget-wallets/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	google_uuid "github.com/google/uuid"
)

type URIID struct {
	ID uuid.UUID `uri:"id" binding:"required"` // The ID of the resource
}

type Pagination struct {
	Count  int   `json:"count" example:"25"`  // The amount of records returned in this response
	Offset uint  `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int   `json:"limit" example:"25"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total" example:"827"` // The total number of resources matching the query
}

// userID returns the ID of the user the request is authenticated for.
//
// All routes calling this are registered behind auth.Required, so there
// always is a session.
func userID(c *gin.Context) google_uuid.UUID {
	session, _ := auth.FromContext(c)
	return session.UserID
}
