package airtable

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"agenda-notifier/internal/agenda"
	"agenda-notifier/internal/agenda/repository"
	"agenda-notifier/internal/model"
	pkgAirtable "agenda-notifier/pkg/airtable"
	pkgLog "agenda-notifier/pkg/log"
)

// Airtable serialises date fields as ISO dates, or as RFC 3339 timestamps
// when the field includes a time.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

type implRepository struct {
	client *pkgAirtable.Client
	opt    repository.TableOptions
	l      pkgLog.Logger
}

// New creates the Airtable backed RecordSource.
func New(client *pkgAirtable.Client, opt repository.TableOptions, l pkgLog.Logger) repository.RecordSource {
	return &implRepository{
		client: client,
		opt:    opt,
		l:      l,
	}
}

func (r *implRepository) DailyTasks(ctx context.Context) ([]model.TaskRecord, error) {
	records, err := r.client.ListRecords(ctx, r.opt.TableName, pkgAirtable.ListOptions{
		FilterByFormula: DueTodayFormula(r.opt.NextTouchField),
		Fields:          []string{r.opt.NameField, r.opt.NextTouchField},
	})
	if err != nil {
		r.l.Errorf(ctx, "airtable repository: failed to list %s: %v", r.opt.TableName, err)
		return nil, fmt.Errorf("%w: %w", agenda.ErrRemoteQuery, err)
	}

	tasks := make([]model.TaskRecord, 0, len(records))
	for _, rec := range records {
		t, err := r.recordToTask(rec)
		if err != nil {
			r.l.Errorf(ctx, "airtable repository: record %s: %v", rec.ID, err)
			return nil, err
		}
		tasks = append(tasks, t)
	}

	r.l.Debugf(ctx, "airtable repository: %d due records in %s", len(tasks), r.opt.TableName)
	return tasks, nil
}

// DueTodayFormula is the server-side filter "field is on or before today".
func DueTodayFormula(field string) string {
	return fmt.Sprintf("{%s} <= TODAY()", field)
}

// recordToTask decodes the raw fields object. Airtable omits empty fields,
// so a missing name or date is reported instead of yielding a blank line.
func (r *implRepository) recordToTask(rec pkgAirtable.Record) (model.TaskRecord, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(rec.Fields, &fields); err != nil {
		return model.TaskRecord{}, fmt.Errorf("%w: fields are not an object: %v", agenda.ErrDeserialization, err)
	}

	name, err := stringField(fields, r.opt.NameField)
	if err != nil {
		return model.TaskRecord{}, err
	}

	rawDate, err := stringField(fields, r.opt.NextTouchField)
	if err != nil {
		return model.TaskRecord{}, err
	}
	nextTouch, err := parseDate(rawDate)
	if err != nil {
		return model.TaskRecord{}, fmt.Errorf("%w: field %q: %v", agenda.ErrDeserialization, r.opt.NextTouchField, err)
	}

	return model.TaskRecord{
		ID:        rec.ID,
		Name:      name,
		NextTouch: nextTouch,
	}, nil
}

func parseDate(raw string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func stringField(fields map[string]json.RawMessage, key string) (string, error) {
	raw, ok := fields[key]
	if !ok {
		return "", fmt.Errorf("%w: field %q is missing", agenda.ErrDeserialization, key)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", fmt.Errorf("%w: field %q is not a string", agenda.ErrDeserialization, key)
	}
	if s == "" {
		return "", fmt.Errorf("%w: field %q is empty", agenda.ErrDeserialization, key)
	}
	return s, nil
}
