package analysis

import (
	"errors"
	"fmt"
	"strings"
)

// GenericFailureMessage is shown when an error yields no usable text of
// its own. Kept stable because tests and screens assert on it.
const GenericFailureMessage = "Something went wrong. Please try again."

// APIError is a non-success response from the service. Detail carries
// the structured `detail` field of the error payload when present.
type APIError struct {
	Status int
	Detail string
	Err    error
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	if e.Err != nil {
		return fmt.Sprintf("service returned status %d: %v", e.Status, e.Err)
	}
	return fmt.Sprintf("service returned status %d", e.Status)
}

func (e *APIError) Unwrap() error { return e.Err }

// ErrUnavailable indicates the service could not be reached at all.
type ErrUnavailable struct {
	Err error
}

func (e *ErrUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("analysis service unavailable: %v", e.Err)
	}
	return "analysis service unavailable"
}

func (e *ErrUnavailable) Unwrap() error { return e.Err }

// MessageFor selects the user-facing text for err by fixed precedence:
// the service's structured detail field, then the raw error text, then
// GenericFailureMessage. The precedence is enforced here once so callers
// never probe optional fields themselves.
func MessageFor(err error) string {
	if err == nil {
		return ""
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) && strings.TrimSpace(apiErr.Detail) != "" {
		return apiErr.Detail
	}

	if msg := strings.TrimSpace(err.Error()); msg != "" {
		return msg
	}

	return GenericFailureMessage
}
