package discord

import (
	"time"

	"ravensbot/internal/application"
	"ravensbot/internal/config"
	"ravensbot/internal/ports/input"
	"ravensbot/internal/ports/output"
)

// Handler handles Discord messages and scheduled dispatches using use cases.
type Handler struct {
	interpreter input.Interpreter
	schedule    input.ScheduleUseCase
	roster      input.RosterUseCase
	rooms       input.RoomDirectory
	translator  output.T
	config      *config.Config
	clock       application.Clock
	loc         *time.Location
}

// NewHandler creates a Handler.
func NewHandler(
	interpreter input.Interpreter,
	schedule input.ScheduleUseCase,
	roster input.RosterUseCase,
	rooms input.RoomDirectory,
	translator output.T,
	cfg *config.Config,
	clock application.Clock,
	loc *time.Location,
) *Handler {
	return &Handler{
		interpreter: interpreter,
		schedule:    schedule,
		roster:      roster,
		rooms:       rooms,
		translator:  translator,
		config:      cfg,
		clock:       clock,
		loc:         loc,
	}
}

func (h *Handler) t(key string, data map[string]any) string {
	return h.translator.T(h.config.Locale, key, data)
}
