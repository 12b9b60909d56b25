package lunchmoney

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APIError is returned for non-2xx responses and for 2xx responses that
// carry an error envelope.
type APIError struct {
	StatusCode int
	Messages   []string
}

func (e *APIError) Error() string {
	if len(e.Messages) > 0 {
		return strings.Join(e.Messages, "; ")
	}
	if text := http.StatusText(e.StatusCode); text != "" {
		return fmt.Sprintf("lunch money api: %d %s", e.StatusCode, text)
	}
	return fmt.Sprintf("lunch money api: status %d", e.StatusCode)
}

func (e *APIError) Unauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}

// IsUnauthorized reports whether err is an APIError for a rejected token.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Unauthorized()
}

type errorEnvelope struct {
	Error   json.RawMessage `json:"error"`
	Errors  json.RawMessage `json:"errors"`
	Message string          `json:"message"`
}

// decodeErrorMessages extracts messages from the shapes the API uses:
// {"error": "..."}, {"error": [...]}, {"errors": [...]} and {"message": "..."}.
func decodeErrorMessages(body []byte) []string {
	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil
	}

	var out []string
	out = append(out, stringOrList(env.Error)...)
	out = append(out, stringOrList(env.Errors)...)
	if env.Message != "" && len(out) == 0 {
		out = append(out, env.Message)
	}
	return out
}

func stringOrList(raw json.RawMessage) []string {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		if single == "" {
			return nil
		}
		return []string{single}
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list
	}
	return nil
}
