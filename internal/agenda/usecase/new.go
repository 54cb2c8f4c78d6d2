package usecase

import (
	"agenda-notifier/internal/agenda"
	"agenda-notifier/internal/agenda/repository"
	pkgLog "agenda-notifier/pkg/log"
)

type implUseCase struct {
	l         pkgLog.Logger
	repo      repository.RecordSource
	messenger agenda.Messenger
	recipient agenda.Recipient
}

// New creates a new agenda UseCase instance. repo may be nil for a process
// that only sends pings.
func New(
	l pkgLog.Logger,
	repo repository.RecordSource,
	messenger agenda.Messenger,
	recipient agenda.Recipient,
) agenda.UseCase {
	return &implUseCase{
		l:         l,
		repo:      repo,
		messenger: messenger,
		recipient: recipient,
	}
}
