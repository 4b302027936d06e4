package mvc

import "github.com/tailored-agentic-units/ymvc/event"

// BaseCommand gives commands access to their facade. Embedding types must
// provide HandleNote; the default reports ErrNotImplemented.
type BaseCommand struct {
	facade *Facade
}

// NewBaseCommand creates a BaseCommand for f.
func NewBaseCommand(f *Facade) BaseCommand {
	return BaseCommand{facade: f}
}

func (c BaseCommand) Facade() *Facade { return c.facade }

func (c BaseCommand) HandleNote(note *event.Note[string]) error {
	return ErrNotImplemented
}

// NotifyApp publishes a note on the app observer.
func (c BaseCommand) NotifyApp(name string, data any, uid string, extras ...event.Extra) error {
	return c.facade.NotifyApp(name, data, uid, extras...)
}
