package domain

import "errors"

// Domain errors.
var (
	ErrGuildNotFound   = errors.New("guild not found")
	ErrChannelNotFound = errors.New("channel not found")
	ErrInvalidSlot     = errors.New("invalid channel slot")
)
