package airtable

import "encoding/json"

// Record is a single Airtable row. Fields are left raw so callers decode
// them into their own typed structs.
type Record struct {
	ID          string          `json:"id"`
	CreatedTime string          `json:"createdTime"`
	Fields      json.RawMessage `json:"fields"`
}

// ListOptions are the query parameters of GET /v0/{baseId}/{table}.
type ListOptions struct {
	FilterByFormula string
	Fields          []string
	View            string
}
