package usecase

import (
	"context"
	"strings"

	"agenda-notifier/internal/agenda"
	"agenda-notifier/internal/model"
)

const (
	digestHeader   = "Good morning! Here's your tasks for the day:"
	digestFallback = "  - No tasks for you! :)"
	digestItem     = "  - "

	PingBody = "We're cookin' with gas now!"
)

// BuildDigest renders the agenda body: the greeting, one line per record in
// the given order, or the fallback line when nothing is due.
func BuildDigest(records []model.TaskRecord) string {
	lines := make([]string, 0, len(records)+1)
	lines = append(lines, digestHeader)

	for _, r := range records {
		lines = append(lines, digestItem+r.Name)
	}

	if len(lines) == 1 {
		lines = append(lines, digestFallback)
	}

	return strings.Join(lines, "\n")
}

func (uc *implUseCase) send(ctx context.Context, body string) (model.MessageHandle, error) {
	return uc.messenger.Send(ctx, model.MessageRequest{
		From: uc.recipient.From,
		To:   uc.recipient.To,
		Body: body,
	})
}

func toOutput(h model.MessageHandle, body string, taskCount int) agenda.SendOutput {
	return agenda.SendOutput{
		MessageSID: h.SID,
		Status:     h.Status,
		Body:       body,
		TaskCount:  taskCount,
	}
}
