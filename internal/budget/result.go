package budget

import "strings"

// Result is the outcome of a validation. Errors holds one human readable
// message per violated rule and is empty, not nil, when the input is valid.
type Result struct {
	Valid  bool     `json:"valid" example:"false"`
	Errors []string `json:"errors" example:"Amount cannot be zero"`
}

func newResult(errs []string) Result {
	if errs == nil {
		errs = []string{}
	}

	return Result{
		Valid:  len(errs) == 0,
		Errors: errs,
	}
}

// Err returns a *ValidationError carrying the messages of an invalid
// result and nil for a valid one.
func (r Result) Err() error {
	if r.Valid {
		return nil
	}

	return &ValidationError{Messages: r.Errors}
}

// ValidationError is returned when input violates one or more rules.
// The messages are meant to be shown to the user as they are.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, ", ")
}
