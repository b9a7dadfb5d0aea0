package met

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Failure classes. Every error returned by Client carries exactly one of
// these marks; test with errors.Is.
var (
	// ErrNetwork marks requests that could not complete.
	ErrNetwork = errors.New("met: network failure")

	// ErrHTTPStatus marks responses outside the 2xx range.
	ErrHTTPStatus = errors.New("met: unexpected http status")

	// ErrParse marks bodies that are not the JSON we expect.
	ErrParse = errors.New("met: malformed response")
)

// StatusError carries the status of a non-2xx response.
type StatusError struct {
	Path       string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api %s returned status %d", e.Path, e.StatusCode)
}

// Kind names the failure class of err for log lines.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNetwork):
		return "network"
	case errors.Is(err, ErrHTTPStatus):
		return "http_status"
	case errors.Is(err, ErrParse):
		return "parse"
	default:
		return "unknown"
	}
}

// StatusCode extracts the HTTP status from err, or 0 when err is not a
// status failure.
func StatusCode(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode
	}
	return 0
}
