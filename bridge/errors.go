package bridge

import "errors"

// Sentinel errors for note encoding.
var (
	ErrMissingEventName = errors.New("note has no event name")
	ErrReservedKey      = errors.New("extra uses a reserved note key")
)
