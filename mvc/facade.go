// Package mvc wires models, views and commands together through a Facade.
//
// A Facade is an explicitly constructed application context. It owns a store
// of proxies (the model), a store of mediators (the view), three observers
// (model, app and gui) and a controller that runs commands for app events.
// Application types embed BaseProxy, BaseMediator or BaseCommand and are
// handed the Facade they belong to.
//
//	f, err := mvc.New(nil)
//	accounts := &AccountsProxy{BaseProxy: mvc.NewBaseProxy(f, "accounts", nil)}
//	f.RegisterProxy(accounts)
//	f.RegisterCommand("accounts.import", func() event.Command[string] {
//	    return &ImportCommand{BaseCommand: mvc.NewBaseCommand(f)}
//	})
//	f.NotifyApp("accounts.import", path, "")
package mvc

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/tailored-agentic-units/ymvc/event"
	"github.com/tailored-agentic-units/ymvc/observability"
	"github.com/tailored-agentic-units/ymvc/registry"
)

// Option configures a Facade after config-driven initialization.
type Option func(*Facade)

// WithLogger overrides the default logger.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Facade) { f.logger = logger }
}

// WithObserver overrides the config-selected lifecycle observer.
func WithObserver(o observability.Observer) Option {
	return func(f *Facade) { f.observer = o }
}

// Facade aggregates the stores and observers of one application.
type Facade struct {
	name string

	model *registry.ObjectStore[Proxy]
	view  *registry.ObjectStore[Mediator]

	modelObserver *event.Observer[string]
	appObserver   *event.Observer[string]
	guiObserver   *event.Observer[ViewEvent]
	controller    *event.Controller[string]

	logger   *slog.Logger
	observer observability.Observer
}

// New creates a Facade from configuration. A nil cfg uses DefaultConfig.
// Options applied after initialization override config-selected components.
func New(cfg *Config, opts ...Option) (*Facade, error) {
	c := DefaultConfig()
	if cfg != nil {
		c.Merge(cfg)
	}

	observer, err := observability.GetObserver(c.Observer)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve observer: %w", err)
	}

	appObserver := event.NewObserver[string]()
	f := &Facade{
		name:          c.Name,
		model:         registry.NewObjectStore[Proxy](),
		view:          registry.NewObjectStore[Mediator](),
		modelObserver: event.NewObserver[string](),
		appObserver:   appObserver,
		guiObserver:   event.NewObserver[ViewEvent](),
		controller:    event.NewController(appObserver),
		logger:        slog.Default(),
		observer:      observer,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f, nil
}

// Name returns the facade's configured name.
func (f *Facade) Name() string { return f.name }

// Model returns the proxy store.
func (f *Facade) Model() *registry.ObjectStore[Proxy] { return f.model }

// View returns the mediator store.
func (f *Facade) View() *registry.ObjectStore[Mediator] { return f.view }

// ModelObserver returns the observer proxies talk to each other over.
func (f *Facade) ModelObserver() *event.Observer[string] { return f.modelObserver }

// AppObserver returns the application-wide observer commands and mediators
// listen on.
func (f *Facade) AppObserver() *event.Observer[string] { return f.appObserver }

// GUIObserver returns the observer for view-scoped GUI events.
func (f *Facade) GUIObserver() *event.Observer[ViewEvent] { return f.guiObserver }

// Controller returns the command controller bound to the app observer.
func (f *Facade) Controller() *event.Controller[string] { return f.controller }

// HasProxy reports whether a proxy is registered under name.
func (f *Facade) HasProxy(name string) bool {
	return f.model.HasObject(name)
}

// RegisterProxy stores p under p.Name() and runs its OnRegister hook.
func (f *Facade) RegisterProxy(p Proxy) error {
	if _, err := f.model.RegisterObject(p.Name(), p); err != nil {
		return fmt.Errorf("register proxy: %w", err)
	}
	f.emit(EventProxyRegister, p.Name(), nil)
	return nil
}

// RetrieveProxy returns the proxy registered under name.
func (f *Facade) RetrieveProxy(name string) (Proxy, error) {
	p, err := f.model.RetrieveObject(name)
	if err != nil {
		return nil, fmt.Errorf("retrieve proxy: %w", err)
	}
	return p, nil
}

// RemoveProxy removes the proxy registered under name, runs its OnRemove
// hook and unregisters every model event it bound.
func (f *Facade) RemoveProxy(name string) (Proxy, error) {
	p, err := f.model.RemoveObject(name)
	if err != nil {
		return nil, fmt.Errorf("remove proxy: %w", err)
	}
	p.Events().UnregisterAll()
	f.emit(EventProxyRemove, name, map[string]any{"events": len(p.Events().Events())})
	return p, nil
}

// HasMediator reports whether a mediator is registered under name.
func (f *Facade) HasMediator(name string) bool {
	return f.view.HasObject(name)
}

// RegisterMediator stores m under m.Name() and runs its OnRegister hook.
func (f *Facade) RegisterMediator(m Mediator) error {
	if _, err := f.view.RegisterObject(m.Name(), m); err != nil {
		return fmt.Errorf("register mediator: %w", err)
	}
	f.emit(EventMediatorRegister, m.Name(), nil)
	return nil
}

// RetrieveMediator returns the mediator registered under name.
func (f *Facade) RetrieveMediator(name string) (Mediator, error) {
	m, err := f.view.RetrieveObject(name)
	if err != nil {
		return nil, fmt.Errorf("retrieve mediator: %w", err)
	}
	return m, nil
}

// RemoveMediator removes the mediator registered under name, runs its
// OnRemove hook and unregisters its app and GUI events.
func (f *Facade) RemoveMediator(name string) (Mediator, error) {
	m, err := f.view.RemoveObject(name)
	if err != nil {
		return nil, fmt.Errorf("remove mediator: %w", err)
	}
	m.AppEvents().UnregisterAll()
	m.GUIEvents().UnregisterAll()
	f.emit(EventMediatorRemove, name, nil)
	return m, nil
}

// HasCommand reports whether a command is bound to the named event.
func (f *Facade) HasCommand(name string) bool {
	return f.controller.Has(name)
}

// RegisterCommand binds factory to the named event. Every app notification
// of it builds a new command with factory and hands it the note.
func (f *Facade) RegisterCommand(name string, factory event.CommandFactory[string]) error {
	if err := f.controller.Bind(name, factory); err != nil {
		return fmt.Errorf("register command: %w", err)
	}
	f.emit(EventCommandRegister, name, nil)
	return nil
}

// RemoveCommand unbinds the command for the named event.
func (f *Facade) RemoveCommand(name string) error {
	if err := f.controller.Unbind(name); err != nil {
		return fmt.Errorf("remove command: %w", err)
	}
	f.emit(EventCommandRemove, name, nil)
	return nil
}

// NotifyApp publishes a note on the app observer.
func (f *Facade) NotifyApp(name string, data any, uid string, extras ...event.Extra) error {
	return f.reportNotify("app", name, f.appObserver.Notify(name, data, uid, extras...))
}

// NotifyModel publishes a note on the model observer.
func (f *Facade) NotifyModel(name string, data any, uid string, extras ...event.Extra) error {
	return f.reportNotify("model", name, f.modelObserver.Notify(name, data, uid, extras...))
}

// NotifyGUI publishes a note on the GUI observer, scoped to view.
func (f *Facade) NotifyGUI(view View, name string, data any, uid string, extras ...event.Extra) error {
	if view == nil {
		return ErrNoView
	}
	key := ViewEvent{Name: name, View: view.ViewID()}
	return f.reportNotify("gui", name, f.guiObserver.Notify(key, data, uid, extras...))
}

func (f *Facade) reportNotify(channel, name string, err error) error {
	if err == nil {
		return nil
	}
	f.observer.OnEvent(context.Background(), observability.Event{
		Type:      EventNotifyError,
		Level:     observability.LevelWarning,
		Timestamp: time.Now(),
		Source:    "mvc.Facade",
		Name:      name,
		Data: map[string]any{
			"facade":  f.name,
			"channel": channel,
			"error":   err.Error(),
		},
	})
	return err
}

func (f *Facade) emit(typ observability.EventType, name string, data map[string]any) {
	f.logger.Debug(string(typ), slog.String("facade", f.name), slog.String("name", name))

	if data == nil {
		data = make(map[string]any, 1)
	}
	data["facade"] = f.name
	f.observer.OnEvent(context.Background(), observability.Event{
		Type:      typ,
		Level:     observability.LevelInfo,
		Timestamp: time.Now(),
		Source:    "mvc.Facade",
		Name:      name,
		Data:      data,
	})
}
