// Package exitcode maps run failures to process exit statuses.
package exitcode

import (
	"errors"

	"agenda-notifier/config"
	"agenda-notifier/internal/agenda"
)

const (
	OK            = 0
	Configuration = 1
	RemoteQuery   = 2
	Delivery      = 3
	Unknown       = 4
)

// FromError returns the exit status for err.
func FromError(err error) int {
	switch {
	case err == nil:
		return OK
	case errors.Is(err, config.ErrConfiguration):
		return Configuration
	case errors.Is(err, agenda.ErrRemoteQuery), errors.Is(err, agenda.ErrDeserialization):
		return RemoteQuery
	case errors.Is(err, agenda.ErrDelivery):
		return Delivery
	default:
		return Unknown
	}
}
