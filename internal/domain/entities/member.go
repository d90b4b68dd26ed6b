package entities

import "time"

// Member is one roster record. The birthday's day and month drive greeting
// matches; the year is informational only.
type Member struct {
	Name     string
	Birthday time.Time
}

// BirthdayMatches reports whether the member's birthday falls on t's calendar
// day, ignoring the year.
func (m Member) BirthdayMatches(t time.Time) bool {
	return m.Birthday.Day() == t.Day() && m.Birthday.Month() == t.Month()
}
