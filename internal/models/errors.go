package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

var ErrEmailNotUnique = errors.New("a user with this email address already exists")

var ErrSessionTokenNotUnique = errors.New("the session token is already in use")

// ErrWalletBalanceNegative has the same text as the wallet validation message.
var ErrWalletBalanceNegative = errors.New("Balance cannot be negative")
