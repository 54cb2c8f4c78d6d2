package model

// MessageRequest is one outbound SMS.
type MessageRequest struct {
	From string
	To   string
	Body string
}

// MessageHandle identifies a message accepted by the provider.
type MessageHandle struct {
	SID    string
	Status string
}
