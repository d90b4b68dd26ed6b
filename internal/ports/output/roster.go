package output

import "ravensbot/internal/domain/entities"

// RosterSource loads the birthday roster once at startup. Records with
// unparseable dates are skipped by implementations, never returned as errors.
type RosterSource interface {
	Load() ([]entities.Member, error)
}
