package twilio

// CreateMessageParams is the body of POST /Messages.json.
type CreateMessageParams struct {
	From string
	To   string
	Body string
}

// Message is the Twilio message resource.
type Message struct {
	SID          string  `json:"sid"`
	AccountSID   string  `json:"account_sid"`
	From         string  `json:"from"`
	To           string  `json:"to"`
	Body         string  `json:"body"`
	Status       string  `json:"status"`
	NumSegments  string  `json:"num_segments"`
	DateCreated  string  `json:"date_created"`
	ErrorCode    *int    `json:"error_code"`
	ErrorMessage *string `json:"error_message"`
}
