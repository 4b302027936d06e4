package mvc

import (
	"github.com/google/uuid"
	"github.com/tailored-agentic-units/ymvc/event"
)

// ViewID identifies a view for GUI event scoping.
type ViewID string

// View is anything a Mediator presents. ViewID must be stable for the
// lifetime of the view.
type View interface {
	ViewID() ViewID
}

// BaseView supplies a generated identity to embedding view types.
type BaseView struct {
	id ViewID
}

// NewBaseView creates a BaseView with a unique UUIDv7 identity.
func NewBaseView() BaseView {
	return BaseView{id: ViewID(uuid.Must(uuid.NewV7()).String())}
}

func (v BaseView) ViewID() ViewID { return v.id }

// ViewEvent is a GUI event name scoped to one view. Two views raising the
// same event name reach different subscribers.
type ViewEvent struct {
	Name string
	View ViewID
}

// GUIEvent publishes GUI events on behalf of a single view.
type GUIEvent struct {
	facade *Facade
	view   View
}

// NewGUIEvent creates a publisher for view's GUI events.
func NewGUIEvent(f *Facade, view View) *GUIEvent {
	return &GUIEvent{facade: f, view: view}
}

// Notify publishes the named event scoped to this view.
func (g *GUIEvent) Notify(name string, data any, uid string, extras ...event.Extra) error {
	return g.facade.NotifyGUI(g.view, name, data, uid, extras...)
}
