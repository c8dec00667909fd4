package domain

// DateLayout is the calendar date format used for request, assignment and
// availability dates.
const DateLayout = "2006-01-02"

// ClientAvailability marks whether a date accepts new client requests.
// A date without a record is unconstrained.
type ClientAvailability struct {
	Date      string `json:"date" yaml:"date"`
	Available bool   `json:"available" yaml:"available"`
	Notes     string `json:"notes,omitempty" yaml:"notes,omitempty"`
}
