package mvc

import (
	"github.com/tailored-agentic-units/ymvc/event"
	"github.com/tailored-agentic-units/ymvc/registry"
)

// Proxy is a model-layer unit registered with a Facade by name. Its events
// are bound on the facade's model observer.
type Proxy interface {
	registry.Registrable
	Name() string
	Events() *event.Handler[string]
}

// BaseProxy implements Proxy with no-op lifecycle hooks. Application proxies
// embed *BaseProxy and override OnRegister and OnRemove as needed.
type BaseProxy struct {
	facade *Facade
	events *event.Handler[string]
	name   string
	data   any
}

// NewBaseProxy creates a proxy named name that holds data and binds its
// events on f's model observer.
func NewBaseProxy(f *Facade, name string, data any) *BaseProxy {
	return &BaseProxy{
		facade: f,
		events: event.NewHandler(f.ModelObserver()),
		name:   name,
		data:   data,
	}
}

func (p *BaseProxy) Name() string                   { return p.name }
func (p *BaseProxy) Events() *event.Handler[string] { return p.events }
func (p *BaseProxy) Facade() *Facade                { return p.facade }

// Data returns the proxy's model data.
func (p *BaseProxy) Data() any { return p.data }

// SetData replaces the proxy's model data.
func (p *BaseProxy) SetData(data any) { p.data = data }

func (p *BaseProxy) OnRegister() {}
func (p *BaseProxy) OnRemove()   {}

// BindProxyEvent handles the named model event with fn.
func (p *BaseProxy) BindProxyEvent(name string, fn event.HandlerFunc[string]) error {
	return p.events.Bind(name, fn)
}

// NotifyProxies publishes a note to the other proxies over the model observer.
func (p *BaseProxy) NotifyProxies(name string, data any, uid string, extras ...event.Extra) error {
	return p.facade.NotifyModel(name, data, uid, extras...)
}

// NotifyApp publishes a note on the app observer.
func (p *BaseProxy) NotifyApp(name string, data any, uid string, extras ...event.Extra) error {
	return p.facade.NotifyApp(name, data, uid, extras...)
}
