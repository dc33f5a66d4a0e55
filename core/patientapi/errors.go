package patientapi

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrNoIdentifier is returned when a response body carries no patient id.
	ErrNoIdentifier = errors.New("response has no patient identifier")
	// ErrNotAuthenticated is returned when a call is made before Authenticate.
	ErrNotAuthenticated = errors.New("client is not authenticated")
)

// StatusError carries the status and body of an unexpected response.
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
	Header     http.Header
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("patient api: %s %s status=%d body=%s", e.Method, e.URL, e.StatusCode, snippet(e.Body, 500))
}

func snippet(b []byte, max int) string {
	s := strings.TrimSpace(string(b))
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
