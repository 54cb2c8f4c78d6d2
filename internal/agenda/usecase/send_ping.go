package usecase

import (
	"context"

	"agenda-notifier/internal/agenda"
)

// SendPing sends PingBody.
func (uc *implUseCase) SendPing(ctx context.Context) (agenda.SendOutput, error) {
	handle, err := uc.send(ctx, PingBody)
	if err != nil {
		uc.l.Errorf(ctx, "internal.agenda.usecase.SendPing: send: %v", err)
		return agenda.SendOutput{}, err
	}

	return toOutput(handle, PingBody, 0), nil
}
