package airtable

import (
	"encoding/json"
	"fmt"
)

// APIError is a non-2xx answer from the Airtable API.
type APIError struct {
	StatusCode int
	Type       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("airtable API error %d (%s): %s", e.StatusCode, e.Type, e.Message)
	}
	return fmt.Sprintf("airtable API error %d (%s)", e.StatusCode, e.Type)
}

// parseAPIError handles both error shapes Airtable returns:
// {"error": {"type": "...", "message": "..."}} and {"error": "NOT_FOUND"}.
func parseAPIError(status int, raw []byte) *APIError {
	apiErr := &APIError{StatusCode: status}

	var envelope struct {
		Error json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil || len(envelope.Error) == 0 {
		apiErr.Message = string(raw)
		return apiErr
	}

	var detail struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(envelope.Error, &detail); err == nil {
		apiErr.Type = detail.Type
		apiErr.Message = detail.Message
		return apiErr
	}

	var code string
	if err := json.Unmarshal(envelope.Error, &code); err == nil {
		apiErr.Type = code
	}
	return apiErr
}
