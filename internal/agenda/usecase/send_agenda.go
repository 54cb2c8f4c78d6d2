package usecase

import (
	"context"
	"errors"

	"agenda-notifier/internal/agenda"
)

var errNoRecordSource = errors.New("record source is not configured")

// SendAgenda queries due tasks and sends the digest. A failed query aborts
// the run before anything is sent.
func (uc *implUseCase) SendAgenda(ctx context.Context) (agenda.SendOutput, error) {
	if uc.repo == nil {
		return agenda.SendOutput{}, errNoRecordSource
	}

	records, err := uc.repo.DailyTasks(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "internal.agenda.usecase.SendAgenda: DailyTasks: %v", err)
		return agenda.SendOutput{}, err
	}
	uc.l.Infof(ctx, "internal.agenda.usecase.SendAgenda: %d tasks due", len(records))

	body := BuildDigest(records)

	handle, err := uc.send(ctx, body)
	if err != nil {
		uc.l.Errorf(ctx, "internal.agenda.usecase.SendAgenda: send: %v", err)
		return agenda.SendOutput{}, err
	}

	return toOutput(handle, body, len(records)), nil
}
