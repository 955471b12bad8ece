package httputil

import (
	"errors"
	"strings"
)

var (
	ErrInvalidBody      = errors.New("the body of your request contains invalid or un-parseable data. Please check and try again")
	ErrRequestBodyEmpty = errors.New("the request body must not be empty")
)

// BindingError is returned by BindData when the request body can be parsed,
// but does not pass the binding rules of the target struct.
type BindingError struct {
	Messages []string
}

func (e *BindingError) Error() string {
	return strings.Join(e.Messages, ", ")
}
