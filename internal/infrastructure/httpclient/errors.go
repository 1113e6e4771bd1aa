package httpclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/mlakumulu/travel-admin/internal/core/domain"
)

// errorBody covers the two envelopes the backend produces: a plain
// {"error": "..."} and the Nest-style {"message": ...} where message is
// either a string or an array of field errors.
type errorBody struct {
	Message json.RawMessage `json:"message"`
	Error   string          `json:"error"`
}

// normalizeError maps a non-2xx response into the one tagged error shape
// every upstream consumer handles.
func normalizeError(status int, body []byte) *domain.APIError {
	return &domain.APIError{
		Kind:       domain.ErrKindHTTP,
		Message:    extractMessage(status, body),
		StatusCode: status,
	}
}

func extractMessage(status int, body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		if msg := decodeMessage(eb.Message); msg != "" {
			return msg
		}
		if eb.Error != "" {
			return eb.Error
		}
	}
	if text := http.StatusText(status); text != "" {
		return text
	}
	return fmt.Sprintf("HTTP %d", status)
}

// decodeMessage accepts "message" as a string or as an array of strings and
// flattens the array into one comma-separated line.
func decodeMessage(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		return single
	}
	var many []string
	if err := json.Unmarshal(raw, &many); err == nil {
		return strings.Join(many, ", ")
	}
	return ""
}
