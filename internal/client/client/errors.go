package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrUnavailable covers transport failures and timeouts: the request
	// never produced an HTTP response.
	ErrUnavailable = errors.New("server unavailable")
	// ErrUnauthorized matches any 401 response.
	ErrUnauthorized = errors.New("unauthorized")
)

// RemoteError is returned for every response with a status of 400 or above.
type RemoteError struct {
	Method     string
	Path       string
	StatusCode int
	// Message is the server-provided human readable text, if any.
	Message string
	// Body is the raw response payload.
	Body []byte
}

func newRemoteError(method, path string, status int, body []byte) *RemoteError {
	return &RemoteError{
		Method:     method,
		Path:       path,
		StatusCode: status,
		Message:    extractMessage(body),
		Body:       body,
	}
}

func (e *RemoteError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s %s: status %d %s", e.Method, e.Path, e.StatusCode, http.StatusText(e.StatusCode))
}

// Is reports 401 responses as ErrUnauthorized.
func (e *RemoteError) Is(target error) bool {
	return target == ErrUnauthorized && e.StatusCode == http.StatusUnauthorized
}

// extractMessage pulls "message" (or "error") out of a JSON error body.
func extractMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if payload.Message != "" {
		return payload.Message
	}
	return payload.Error
}

// MessageFrom returns the server message carried by err, or fallback when
// there is none.
func MessageFrom(err error, fallback string) string {
	var re *RemoteError
	if errors.As(err, &re) && strings.TrimSpace(re.Message) != "" {
		return re.Message
	}
	return fallback
}
