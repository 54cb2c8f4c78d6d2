package model

import "time"

// TaskRecord is a read-only copy of one "Companies" row fetched for a run.
type TaskRecord struct {
	ID        string    // Airtable record id, e.g. "rec8116cdd76088af"
	Name      string    // "Name" field
	NextTouch time.Time // "Next Touch" date field, midnight UTC
}
