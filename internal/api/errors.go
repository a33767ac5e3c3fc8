package api

import (
	"errors"
	"fmt"
	"net/http"
)

// GenericFailure is shown to users when the backend gives no usable detail.
const GenericFailure = "operation failed, please try again"

// APIError is a non-2xx backend response. Detail carries the backend's
// human-readable reason when one was provided.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: status %d: %s", e.Status, e.Detail)
}

// Reason extracts a message suitable for direct display. Transport errors
// and detail-less responses collapse to the generic failure text.
func Reason(err error) string {
	var ae *APIError
	if errors.As(err, &ae) && ae.Detail != "" {
		return ae.Detail
	}
	return GenericFailure
}

// IsUnauthorized reports whether err is a 401 response.
func IsUnauthorized(err error) bool {
	var ae *APIError
	return errors.As(err, &ae) && ae.Status == http.StatusUnauthorized
}
