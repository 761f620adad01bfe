package store

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is a non-2xx answer from the bills API
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("Erreur %d", e.StatusCode)
	}
	return fmt.Sprintf("Erreur %d: %s", e.StatusCode, e.Message)
}

// StatusCode extracts the API status from err, or 502 when the failure did
// not come from an API answer
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode >= 400 {
		return apiErr.StatusCode
	}
	return http.StatusBadGateway
}
