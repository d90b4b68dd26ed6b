package input

import (
	"time"

	"ravensbot/internal/domain/entities"
)

// ScheduleUseCase is the practice-calendar contract consumed by the Discord
// adapter's reminder dispatcher.
type ScheduleUseCase interface {
	FormatDate(t time.Time) string
	NextOccurrences(n int) []entities.Occurrence
	IsCancelled(key string) bool
	Toggle(key string) (nowCancelled bool)
	ReminderDue() (entities.Occurrence, bool)
}
