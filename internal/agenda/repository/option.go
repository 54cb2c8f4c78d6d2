package repository

// TableOptions names the remote table and the fields read from it.
type TableOptions struct {
	TableName      string // "Companies"
	NameField      string // "Name"
	NextTouchField string // "Next Touch"
}
