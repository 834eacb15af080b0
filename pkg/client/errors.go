package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"agenda_tecnica/pkg"
)

var (
	ErrValidation  = errors.New("validation error")
	ErrNotFound    = errors.New("not found")
	ErrUnavailable = errors.New("service unavailable")
)

// APIError is a non-2xx answer from the agenda API.
type APIError struct {
	Status  int
	Code    string
	Message string
	Class   string
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("agenda api: %d %s", e.Status, e.Message)
	}
	return fmt.Sprintf("agenda api: %d %s: %s", e.Status, e.Code, e.Message)
}

// Is lets callers match on the error class with errors.Is.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrValidation:
		return e.Class == pkg.ClassValidation
	case ErrNotFound:
		return e.Class == pkg.ClassNotFound
	case ErrUnavailable:
		return e.Class == pkg.ClassUnavailable
	}
	return false
}

func readAPIError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}
	var payload pkg.HTTPError
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
		apiErr.Code = payload.Code
		apiErr.Message = payload.Message
		apiErr.Class = payload.Class
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	if apiErr.Class == "" {
		apiErr.Class = pkg.ClassForStatus(resp.StatusCode)
	}
	return apiErr
}
