package httputil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

// BindData binds the data from the request to the struct or slice passed in.
//
// Binding rule violations are returned as *BindingError with one message
// per violated rule.
func BindData(c *gin.Context, data any) error {
	if err := c.ShouldBindJSON(data); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrRequestBodyEmpty
		}

		var jsonUnmarshalTypeError *json.UnmarshalTypeError
		if errors.As(err, &jsonUnmarshalTypeError) {
			return err
		}

		if messages := validationMessages(err); len(messages) > 0 {
			return &BindingError{Messages: messages}
		}

		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		return ErrInvalidBody
	}

	return nil
}

// validationMessages translates validation errors for a struct or for the
// elements of a slice into human readable messages.
func validationMessages(err error) []string {
	var messages []string

	var sliceErrors binding.SliceValidationError
	if errors.As(err, &sliceErrors) {
		for _, e := range sliceErrors {
			messages = append(messages, validationMessages(e)...)
		}
		return messages
	}

	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) {
		for _, e := range fieldErrors {
			messages = append(messages, ValidationErrorToText(e))
		}
	}

	return messages
}

// ValidationErrorToText returns the message for a single failed binding rule.
func ValidationErrorToText(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "max":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("%s must be %s characters or less", e.Field(), e.Param())
		}
		return fmt.Sprintf("%s cannot be greater than %s", e.Field(), e.Param())
	case "min":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters long", e.Field(), e.Param())
		}
		return fmt.Sprintf("%s cannot be less than %s", e.Field(), e.Param())
	case "email":
		return "Invalid email format"
	case "len":
		return fmt.Sprintf("%s must be %s characters long", e.Field(), e.Param())
	case "eqfield":
		if e.Field() == "PasswordConfirm" {
			return "Passwords do not match"
		}
		return fmt.Sprintf("%s must be equal to %s", e.Field(), e.Param())
	}
	return fmt.Sprintf("%s is not valid", e.Field())
}
