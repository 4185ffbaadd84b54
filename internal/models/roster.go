package models

// RosterImportResult summarises a spreadsheet import of students.
type RosterImportResult struct {
	Registered int              `json:"registered"`
	Rejected   int              `json:"rejected"`
	Failures   []RosterRowError `json:"failures,omitempty"`
}

// RosterRowError reports why a spreadsheet row was not registered.
type RosterRowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}
