package mvc

import (
	"github.com/tailored-agentic-units/ymvc/event"
	"github.com/tailored-agentic-units/ymvc/registry"
)

// Mediator is a view-layer unit registered with a Facade by name. It listens
// on the app observer and on the GUI observer for its own view.
type Mediator interface {
	registry.Registrable
	Name() string
	AppEvents() *event.Handler[string]
	GUIEvents() *event.Handler[ViewEvent]
}

// BaseMediator implements Mediator with no-op lifecycle hooks. Application
// mediators embed *BaseMediator.
type BaseMediator struct {
	facade    *Facade
	appEvents *event.Handler[string]
	guiEvents *event.Handler[ViewEvent]
	name      string
	view      View
}

// NewBaseMediator creates a mediator named name presenting view.
func NewBaseMediator(f *Facade, name string, view View) *BaseMediator {
	return &BaseMediator{
		facade:    f,
		appEvents: event.NewHandler(f.AppObserver()),
		guiEvents: event.NewHandler(f.GUIObserver()),
		name:      name,
		view:      view,
	}
}

func (m *BaseMediator) Name() string                         { return m.name }
func (m *BaseMediator) AppEvents() *event.Handler[string]    { return m.appEvents }
func (m *BaseMediator) GUIEvents() *event.Handler[ViewEvent] { return m.guiEvents }
func (m *BaseMediator) Facade() *Facade                      { return m.facade }

// View returns the view this mediator presents.
func (m *BaseMediator) View() View { return m.view }

func (m *BaseMediator) OnRegister() {}
func (m *BaseMediator) OnRemove()   {}

// BindAppEvent handles the named app event with fn.
func (m *BaseMediator) BindAppEvent(name string, fn event.HandlerFunc[string]) error {
	return m.appEvents.Bind(name, fn)
}

// BindGUI handles the named GUI event raised by this mediator's view.
func (m *BaseMediator) BindGUI(name string, fn event.HandlerFunc[ViewEvent]) error {
	if m.view == nil {
		return ErrNoView
	}
	return m.guiEvents.Bind(ViewEvent{Name: name, View: m.view.ViewID()}, fn)
}

// NotifyApp publishes a note on the app observer.
func (m *BaseMediator) NotifyApp(name string, data any, uid string, extras ...event.Extra) error {
	return m.facade.NotifyApp(name, data, uid, extras...)
}
