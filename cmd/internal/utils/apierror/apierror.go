package apierror

import (
	"fmt"
	"net/http"
)

// ErrorResponse is the error value returned by services and written as
// the JSON body of a failed request.
type ErrorResponse interface {
	error
	Code() int
	Description() string
}

type simpleError struct {
	Status  int    `json:"code"`
	Message string `json:"description"`
}

func (s *simpleError) Error() string {
	return fmt.Sprintf("%d: %s", s.Status, s.Message)
}

func (s *simpleError) Code() int {
	return s.Status
}

func (s *simpleError) Description() string {
	return s.Message
}

func NewSimple(code int, description string) ErrorResponse {
	return &simpleError{Status: code, Message: description}
}

func NewBadRequest(description string) ErrorResponse {
	return NewSimple(http.StatusBadRequest, description)
}

func NewNotFound(description string) ErrorResponse {
	return NewSimple(http.StatusNotFound, description)
}

func NewInvalidParamTypeError(param, kind string) ErrorResponse {
	return NewBadRequest(fmt.Sprintf("Parameter '%s' must be of type %s", param, kind))
}

var (
	InternalServerError = NewSimple(http.StatusInternalServerError, "Internal server error")
	MalformedBodyError  = NewBadRequest("Malformed request body")
	NotFoundError       = NewNotFound("Resource not found")
)
