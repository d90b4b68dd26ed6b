package input

// RoomDirectory exposes the current channel-name slots. The adapter reads
// them at every resolution so renames take effect immediately.
type RoomDirectory interface {
	General() string
	Commands() string
	Captains() string
}
