package application

import (
	"sync"
	"time"

	"ravensbot/internal/domain/entities"
)

// DateKeyLayout renders the date key used everywhere occurrences are compared
// or stored.
const DateKeyLayout = "2006-01-02"

// ScheduleService owns the practice calendar: which weekdays practices fall
// on, the cutoff hour after which today no longer counts as upcoming, and the
// in-memory set of cancelled occurrence keys. The cancellation set is empty at
// startup and never persisted.
type ScheduleService struct {
	clock      Clock
	loc        *time.Location
	days       map[time.Weekday]bool
	cutoffHour int

	mu        sync.Mutex
	cancelled map[string]struct{}
}

func NewScheduleService(clock Clock, loc *time.Location, days []time.Weekday, cutoffHour int) *ScheduleService {
	set := make(map[time.Weekday]bool, len(days))
	for _, d := range days {
		set[d] = true
	}
	return &ScheduleService{
		clock:      clock,
		loc:        loc,
		days:       set,
		cutoffHour: cutoffHour,
		cancelled:  make(map[string]struct{}),
	}
}

// FormatDate renders t as a date key in the configured location.
func (s *ScheduleService) FormatDate(t time.Time) string {
	return t.In(s.loc).Format(DateKeyLayout)
}

// NextOccurrences returns exactly n strictly increasing practice dates,
// scanning forward from now. Today qualifies only while the clock is before
// the cutoff hour; after that the scan starts at tomorrow.
func (s *ScheduleService) NextOccurrences(n int) []entities.Occurrence {
	now := s.clock.Now().In(s.loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc)
	out := make([]entities.Occurrence, 0, n)
	for d := today; len(out) < n; d = d.AddDate(0, 0, 1) {
		if !s.days[d.Weekday()] {
			continue
		}
		if d.Equal(today) && now.Hour() >= s.cutoffHour {
			continue
		}
		out = append(out, entities.Occurrence{Date: d, Key: d.Format(DateKeyLayout)})
	}
	return out
}

// IsCancelled reports whether the occurrence key is in the cancellation set.
func (s *ScheduleService) IsCancelled(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.cancelled[key]
	return ok
}

// Toggle flips the key's membership in the cancellation set and returns the
// new state: true means the reminder for that date is now cancelled.
func (s *ScheduleService) Toggle(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.cancelled[key]; ok {
		delete(s.cancelled, key)
		return false
	}
	s.cancelled[key] = struct{}{}
	return true
}

// ReminderDue decides whether tomorrow's practice reminder should fire: the
// occurrence is returned when tomorrow is a practice day and its key is not
// cancelled.
func (s *ScheduleService) ReminderDue() (entities.Occurrence, bool) {
	now := s.clock.Now().In(s.loc)
	tomorrow := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc).AddDate(0, 0, 1)
	if !s.days[tomorrow.Weekday()] {
		return entities.Occurrence{}, false
	}
	occ := entities.Occurrence{Date: tomorrow, Key: tomorrow.Format(DateKeyLayout)}
	if s.IsCancelled(occ.Key) {
		return entities.Occurrence{}, false
	}
	return occ, true
}
