package twilio

import (
	"context"
	"fmt"

	"agenda-notifier/internal/agenda"
	"agenda-notifier/internal/model"
	pkgLog "agenda-notifier/pkg/log"
	pkgTwilio "agenda-notifier/pkg/twilio"
)

type implMessenger struct {
	client *pkgTwilio.Client
	l      pkgLog.Logger
}

// New creates a Messenger that sends through Twilio.
func New(client *pkgTwilio.Client, l pkgLog.Logger) agenda.Messenger {
	return &implMessenger{client: client, l: l}
}

func (m *implMessenger) Send(ctx context.Context, req model.MessageRequest) (model.MessageHandle, error) {
	msg, err := m.client.CreateMessage(ctx, pkgTwilio.CreateMessageParams{
		From: req.From,
		To:   req.To,
		Body: req.Body,
	})
	if err != nil {
		m.l.Errorf(ctx, "twilio messenger: send to %s failed: %v", req.To, err)
		return model.MessageHandle{}, fmt.Errorf("%w: %w", agenda.ErrDelivery, err)
	}

	m.l.Infof(ctx, "twilio messenger: message %s %s", msg.SID, msg.Status)
	return model.MessageHandle{SID: msg.SID, Status: msg.Status}, nil
}
