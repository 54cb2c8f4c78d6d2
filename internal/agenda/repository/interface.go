package repository

import (
	"context"

	"agenda-notifier/internal/model"
)

// RecordSource reads task records from the remote table.
type RecordSource interface {
	// DailyTasks returns every record whose next touch date is on or before
	// today, as evaluated by the remote store, in the order it returns them.
	DailyTasks(ctx context.Context) ([]model.TaskRecord, error)
}
