package pkg

import (
	"fmt"
	"net/http"
)

// Error classes let clients branch on the kind of failure without parsing
// codes.
const (
	ClassValidation  = "validation"
	ClassNotFound    = "not_found"
	ClassUnavailable = "unavailable"
	ClassInternal    = "internal"
)

// AppError is the error type handlers return to HTTP clients.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

// HTTPError is the JSON envelope written for every failed request.
type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
	Class   string `json:"class"`
}

func NewDomainErrorSimple(code, message string, status int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: status}
}

func NewDomainError(code, message string, err error, status int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: status, Err: err}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Class derives the error class from the HTTP status.
func (e *AppError) Class() string {
	return ClassForStatus(e.HTTPStatus)
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message, Class: e.Class()}
}

func ClassForStatus(status int) string {
	switch {
	case status == http.StatusNotFound:
		return ClassNotFound
	case status == http.StatusServiceUnavailable:
		return ClassUnavailable
	case status >= 400 && status < 500:
		return ClassValidation
	default:
		return ClassInternal
	}
}
