package hiredesk

import (
	"encoding/json"
	"fmt"
	"strings"
)

// APIError is a non-2xx response from the HireDesk API. The raw payload is
// kept so callers can run their own message-extraction precedence over it.
type APIError struct {
	Status  int
	payload any
}

func newAPIError(status int, body []byte) *APIError {
	return &APIError{Status: status, payload: decodePayload(body)}
}

// decodePayload keeps whatever shape the server sent: a JSON object becomes
// a map, a JSON string or non-JSON body becomes a plain string, an empty
// body becomes nil.
func decodePayload(body []byte) any {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return nil
	}

	var decoded any
	if err := json.Unmarshal([]byte(trimmed), &decoded); err != nil {
		return trimmed
	}

	switch v := decoded.(type) {
	case map[string]any, string:
		return v
	default:
		return trimmed
	}
}

func (e *APIError) Error() string {
	if msg := e.UserMessage(); msg != "" {
		return fmt.Sprintf("api error (status %d): %s", e.Status, msg)
	}
	return fmt.Sprintf("api error (status %d)", e.Status)
}

// Payload returns the raw error payload for message extraction.
func (e *APIError) Payload() any {
	return e.payload
}

// UserMessage returns the server's human-readable message when one is
// present, otherwise an empty string.
func (e *APIError) UserMessage() string {
	switch v := e.payload.(type) {
	case string:
		return v
	case map[string]any:
		if msg, ok := v["message"].(string); ok {
			return strings.TrimSpace(msg)
		}
	}
	return ""
}
