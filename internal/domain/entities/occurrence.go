package entities

import "time"

// Occurrence is one scheduled instance of a recurring practice, identified
// everywhere by its date key. Two computations that agree on the key agree on
// the occurrence.
type Occurrence struct {
	Date time.Time
	Key  string // YYYY-MM-DD in the configured location
}

// Weekday returns the occurrence's weekday name, e.g. "Friday".
func (o Occurrence) Weekday() string {
	return o.Date.Weekday().String()
}
