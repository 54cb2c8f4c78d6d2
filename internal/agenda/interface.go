package agenda

import (
	"context"

	"agenda-notifier/internal/model"
)

// UseCase defines the notification jobs.
type UseCase interface {
	// SendAgenda fetches today's due tasks and sends them as one SMS digest.
	SendAgenda(ctx context.Context) (SendOutput, error)

	// SendPing sends the fixed test message.
	SendPing(ctx context.Context) (SendOutput, error)
}

// Messenger delivers one SMS.
type Messenger interface {
	Send(ctx context.Context, req model.MessageRequest) (model.MessageHandle, error)
}
