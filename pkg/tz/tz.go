package tz

import "time"

// DefaultName is the team's home timezone. Every date key and occurrence
// computation runs in one explicit location, never in process-local time.
const DefaultName = "America/Toronto"

// Load resolves a timezone name, falling back to DefaultName when empty.
func Load(name string) (*time.Location, error) {
	if name == "" {
		name = DefaultName
	}
	return time.LoadLocation(name)
}
