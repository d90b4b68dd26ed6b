package input

import (
	"time"

	"ravensbot/internal/domain/entities"
)

// RosterUseCase answers the greeting dispatcher's "whose birthday is it"
// query.
type RosterUseCase interface {
	MatchesOn(t time.Time) []entities.Member
}
