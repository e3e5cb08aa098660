package generation

import (
	"errors"
	"fmt"
)

// ErrUnavailable wraps every failure returned by the client, so callers that
// only care about "no result" can test a single sentinel.
var ErrUnavailable = errors.New("generation service unavailable")

var (
	ErrMissingAPIKey      = errors.New("missing TRIPO_API_KEY")
	ErrUnsupportedMode    = errors.New("unsupported generation mode")
	ErrMissingPreviewTask = errors.New("refine requires a preview task id")
	ErrServiceBusy        = errors.New("generation service busy")
	ErrMissingTaskID      = errors.New("no task id in response")
	ErrTaskNotFound       = errors.New("generation task not found")
	ErrTaskFailed         = errors.New("generation task failed")
	ErrUnexpectedStatus   = errors.New("unexpected generation task status")
	ErrPollTimeout        = errors.New("generation task did not finish in time")
)

// HTTPError is a non-2xx answer from the generation service.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("generation API error (%d): %s", e.StatusCode, e.Body)
}

func unavailable(cause error) error {
	return fmt.Errorf("%w: %w", ErrUnavailable, cause)
}

// isTransientPollError reports whether a failed status fetch is worth another poll.
// Client errors (4xx, unknown task) are final; network errors, 5xx and garbled
// bodies are retried.
func isTransientPollError(err error) bool {
	if errors.Is(err, ErrTaskNotFound) {
		return false
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode >= 500
	}
	return true
}
