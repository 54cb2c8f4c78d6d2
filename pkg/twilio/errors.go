package twilio

import "fmt"

// APIError is a rejection from the Twilio REST API, e.g. an invalid number
// (21211), bad credentials (20003) or rate limiting (20429).
type APIError struct {
	Status   int    `json:"status"`
	Code     int    `json:"code"`
	Message  string `json:"message"`
	MoreInfo string `json:"more_info"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("twilio API error %d (code %d): %s", e.Status, e.Code, e.Message)
}
