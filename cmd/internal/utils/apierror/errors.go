package apierror

import (
	"errors"
	"fmt"
	"github.com/go-playground/validator/v10"
	"net/http"
	"strings"
)

// ErrorResponse abstracts all API error responses to the user.
//
// This interface does not implement `error`, since its only purpose
// is to be used for API responses and not for logging circumstances.
//
// In general, the whole ErrorResponse can be sent for serialization.
type ErrorResponse interface {
	// Code is the HTTP status code to be returned.
	Code() int
}

type APIError struct {
	Message string `json:"error"`
	Status  int    `json:"-"`
}

func (a *APIError) Code() int {
	return a.Status
}

var (
	MalformedJSONError  = NewSimple(400, "Malformed JSON body")
	InternalServerError = NewSimple(500, "Internal server error")

	/*
	 * Users
	 */
	UserAlreadyExistsError = NewSimple(400, "User already exists")
	UserNotFoundError      = NewSimple(404, "User not found")
)

// FromValidationError converts validator failures into a single client error.
// Only the first failing field is reported, so the body keeps its one-field shape.
func FromValidationError(err error) *APIError {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) || len(ve) == 0 {
		return nil
	}

	fe := ve[0]
	field := strings.ToLower(fe.Field())

	switch fe.Tag() {
	case "required", "notblank":
		return NewSimple(http.StatusBadRequest, "Field '%s' is required", field)
	default:
		return NewSimple(http.StatusBadRequest, "Field '%s' has an invalid value", field)
	}
}

func NewSimple(status int, msg string, args ...any) *APIError {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return &APIError{Status: status, Message: msg}
}

func NewMissingParamError(name string) *APIError {
	return NewSimple(http.StatusBadRequest, "Missing required parameter '%s'", name)
}
