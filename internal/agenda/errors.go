package agenda

import "errors"

// Domain-specific errors for the agenda package.
var (
	ErrRemoteQuery     = errors.New("failed to query due tasks")
	ErrDeserialization = errors.New("failed to decode task record")
	ErrDelivery        = errors.New("failed to deliver message")
)
