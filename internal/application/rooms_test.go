package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ravensbot/internal/domain"
)

func TestRoomConfig(t *testing.T) {
	rooms := NewRoomConfig("general", "bot-commands", "captains")

	slots := rooms.Slots()
	require.Len(t, slots, 3)
	assert.Equal(t, "general_channel_name", slots[0].Label)
	assert.Equal(t, "bot-commands", slots[1].Name)

	slot, err := rooms.Rename(SlotCommands, "  new-room-name  ")
	require.NoError(t, err)
	assert.Equal(t, "new-room-name", slot.Name)
	assert.Equal(t, "new-room-name", rooms.Commands())

	// Other slots untouched.
	assert.Equal(t, "general", rooms.General())
	assert.Equal(t, "captains", rooms.Captains())

	_, err = rooms.Rename(0, "x")
	assert.ErrorIs(t, err, domain.ErrInvalidSlot)
	_, err = rooms.Rename(4, "x")
	assert.ErrorIs(t, err, domain.ErrInvalidSlot)
}
