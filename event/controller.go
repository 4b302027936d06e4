package event

import (
	"errors"
	"fmt"
)

// Command handles a single note. Commands are built per notification and
// discarded after HandleNote returns.
type Command[K comparable] interface {
	HandleNote(note *Note[K]) error
}

// CommandFactory builds a fresh Command.
type CommandFactory[K comparable] func() Command[K]

// ErrNilCommand is returned when a CommandFactory produces no command.
var ErrNilCommand = errors.New("command factory returned nil")

// Controller binds event names to command factories. Each notification of a
// bound event constructs a new command and hands it the note, so no command
// instance outlives the dispatch that created it.
type Controller[K comparable] struct {
	handler *Handler[K]
}

// NewController creates a Controller attached to observer.
func NewController[K comparable](observer *Observer[K]) *Controller[K] {
	return &Controller[K]{handler: NewHandler(observer)}
}

// ID returns the subscriber id the controller registers under.
func (c *Controller[K]) ID() string {
	return c.handler.ID()
}

// Bind associates event with factory.
// Returns registry.ErrDuplicateKey if event already has a command.
func (c *Controller[K]) Bind(event K, factory CommandFactory[K]) error {
	return c.handler.Bind(event, func(note *Note[K]) error {
		return c.execute(factory, note)
	})
}

// Unbind removes the command bound to event.
// Returns registry.ErrKeyNotFound if event has no command.
func (c *Controller[K]) Unbind(event K) error {
	return c.handler.Unbind(event)
}

// Has reports whether event has a command bound.
func (c *Controller[K]) Has(event K) bool {
	return c.handler.Bound(event)
}

// Events returns the events with bound commands in binding order.
func (c *Controller[K]) Events() []K {
	return c.handler.Events()
}

// HandleNote builds the command bound to the note's event and runs it.
func (c *Controller[K]) HandleNote(note *Note[K]) error {
	return c.handler.HandleNote(note)
}

// UnregisterAll withdraws interest in every bound event.
func (c *Controller[K]) UnregisterAll() {
	c.handler.UnregisterAll()
}

func (c *Controller[K]) execute(factory CommandFactory[K], note *Note[K]) error {
	cmd := factory()
	if cmd == nil {
		return fmt.Errorf("%w: %v", ErrNilCommand, note.EventName)
	}
	return cmd.HandleNote(note)
}
