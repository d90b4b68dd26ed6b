package application

import (
	"strings"
	"sync"

	"ravensbot/internal/domain"
)

// Room slots, 1-indexed to match the rename menu.
const (
	SlotGeneral = iota + 1
	SlotCommands
	SlotCaptains
)

const slotCount = 3

// SlotValue is one slot's current value as shown in the rename menu.
type SlotValue struct {
	Index int
	Label string
	Name  string
}

// RoomConfig holds the channel names the bot resolves at send time. Defaults
// come from configuration; the rename flow is the only writer. Nothing is
// persisted, so a restart restores the defaults.
type RoomConfig struct {
	mu    sync.RWMutex
	names [slotCount]string
}

var slotLabels = [slotCount]string{"general_channel_name", "command_channel_name", "captains_channel_name"}

func NewRoomConfig(general, commands, captains string) *RoomConfig {
	return &RoomConfig{names: [slotCount]string{general, commands, captains}}
}

func (c *RoomConfig) General() string  { return c.name(SlotGeneral) }
func (c *RoomConfig) Commands() string { return c.name(SlotCommands) }
func (c *RoomConfig) Captains() string { return c.name(SlotCaptains) }

func (c *RoomConfig) name(slot int) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.names[slot-1]
}

// Slots lists every slot's current value, in menu order.
func (c *RoomConfig) Slots() []SlotValue {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]SlotValue, slotCount)
	for i, n := range c.names {
		out[i] = SlotValue{Index: i + 1, Label: slotLabels[i], Name: n}
	}
	return out
}

// Rename sets the slot's value to the trimmed name and returns the updated
// slot. Slot numbers outside the menu range are rejected.
func (c *RoomConfig) Rename(slot int, name string) (SlotValue, error) {
	if slot < SlotGeneral || slot > slotCount {
		return SlotValue{}, domain.ErrInvalidSlot
	}
	trimmed := strings.TrimSpace(name)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.names[slot-1] = trimmed
	return SlotValue{Index: slot, Label: slotLabels[slot-1], Name: trimmed}, nil
}
