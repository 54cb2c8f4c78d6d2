package agenda

// Recipient is the fixed sender/recipient pair every message uses.
type Recipient struct {
	From string
	To   string
}

// SendOutput describes one completed send.
type SendOutput struct {
	MessageSID string `json:"message_sid"`
	Status     string `json:"status"`
	Body       string `json:"body"`
	TaskCount  int    `json:"task_count"`
}
