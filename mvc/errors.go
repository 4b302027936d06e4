package mvc

import "errors"

// Sentinel errors for facade operations.
var (
	ErrNotImplemented = errors.New("command does not implement HandleNote")
	ErrNoView         = errors.New("mediator has no view")
)
