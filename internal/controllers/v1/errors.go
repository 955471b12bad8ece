package v1

import (
	"errors"
	"net/http"

	"github.com/budget-wallets/backend/internal/auth"
	"github.com/budget-wallets/backend/internal/budget"
	"github.com/budget-wallets/backend/internal/httputil"
	"github.com/budget-wallets/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate HTTP status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, auth.ErrInvalidCredentials) || errors.Is(err, auth.ErrSessionInvalid) || errors.Is(err, auth.ErrAuthenticationRequired) {
		return http.StatusUnauthorized
	}

	return http.StatusBadRequest
}

// validationMessages returns the messages of validation and binding
// errors. For all other errors, it returns nil.
func validationMessages(err error) []string {
	var validationErr *budget.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Messages
	}

	var bindingErr *httputil.BindingError
	if errors.As(err, &bindingErr) {
		return bindingErr.Messages
	}

	return nil
}

var errBalanceNotSet = errors.New("the balance must be set")
