package application

import (
	"time"

	"ravensbot/internal/domain/entities"
)

// RosterService answers birthday queries over the roster loaded at startup.
// The roster is immutable for the process lifetime.
type RosterService struct {
	members []entities.Member
}

func NewRosterService(members []entities.Member) *RosterService {
	return &RosterService{members: members}
}

func (r *RosterService) Members() []entities.Member {
	return r.members
}

// MatchesOn returns every member whose birthday falls on t's day and month,
// in roster order. Zero, one or several matches are all normal.
func (r *RosterService) MatchesOn(t time.Time) []entities.Member {
	var matches []entities.Member
	for _, m := range r.members {
		if m.BirthdayMatches(t) {
			matches = append(matches, m)
		}
	}
	return matches
}
