package mvc_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/tailored-agentic-units/ymvc/event"
	"github.com/tailored-agentic-units/ymvc/mvc"
	"github.com/tailored-agentic-units/ymvc/observability"
	"github.com/tailored-agentic-units/ymvc/registry"
)

func newFacade(t *testing.T) (*mvc.Facade, *observability.Recorder) {
	t.Helper()

	rec := &observability.Recorder{}
	f, err := mvc.New(nil, mvc.WithObserver(rec))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return f, rec
}

type testProxy struct {
	*mvc.BaseProxy
	registered int
	removed    int
}

func (p *testProxy) OnRegister() { p.registered++ }
func (p *testProxy) OnRemove()   { p.removed++ }

type testView struct {
	mvc.BaseView
}

type testMediator struct {
	*mvc.BaseMediator
	registered int
	removed    int
}

func (m *testMediator) OnRegister() { m.registered++ }
func (m *testMediator) OnRemove()   { m.removed++ }

func TestNew_Components(t *testing.T) {
	f, _ := newFacade(t)

	if f.Model() == nil || f.View() == nil {
		t.Fatal("stores not initialized")
	}
	if f.ModelObserver() == f.AppObserver() {
		t.Error("model and app observers are the same instance")
	}
	if f.GUIObserver() == nil {
		t.Error("gui observer not initialized")
	}
	if f.Name() != "ymvc" {
		t.Errorf("Name() = %q, want %q", f.Name(), "ymvc")
	}
}

func TestNew_ControllerUsesAppObserver(t *testing.T) {
	f, _ := newFacade(t)
	f.RegisterCommand("probe", func() event.Command[string] { return mvc.NewBaseCommand(f) })

	if got := f.AppObserver().Subscribers("probe"); !slices.Equal(got, []string{f.Controller().ID()}) {
		t.Errorf("app Subscribers(probe) = %v, want controller id", got)
	}
	if f.ModelObserver().Has("probe") {
		t.Error("command registered on model observer")
	}
}

func TestNew_UnknownObserver(t *testing.T) {
	_, err := mvc.New(&mvc.Config{Observer: "nonexistent"})
	if err == nil {
		t.Fatal("New() expected error for unknown observer")
	}
}

func TestNew_IndependentFacades(t *testing.T) {
	a, _ := newFacade(t)
	b, _ := newFacade(t)

	a.RegisterProxy(&testProxy{BaseProxy: mvc.NewBaseProxy(a, "shared", nil)})
	if b.HasProxy("shared") {
		t.Error("proxy registered on one facade is visible on another")
	}
}

func TestFacade_RegisterProxy(t *testing.T) {
	f, rec := newFacade(t)
	p := &testProxy{BaseProxy: mvc.NewBaseProxy(f, "TestObj", "data")}

	if err := f.RegisterProxy(p); err != nil {
		t.Fatalf("RegisterProxy() failed: %v", err)
	}
	if !f.HasProxy("TestObj") {
		t.Error("HasProxy() = false after RegisterProxy")
	}
	if p.registered != 1 {
		t.Errorf("OnRegister called %d times, want 1", p.registered)
	}

	got, err := f.RetrieveProxy("TestObj")
	if err != nil {
		t.Fatalf("RetrieveProxy() failed: %v", err)
	}
	if got != p {
		t.Error("RetrieveProxy() returned a different proxy")
	}

	if err := f.RegisterProxy(p); !errors.Is(err, registry.ErrDuplicateKey) {
		t.Errorf("duplicate RegisterProxy() error = %v, want %v", err, registry.ErrDuplicateKey)
	}
	if got := rec.Types(); !slices.Equal(got, []observability.EventType{mvc.EventProxyRegister}) {
		t.Errorf("events = %v, want [%s]", got, mvc.EventProxyRegister)
	}
}

func TestFacade_RemoveProxy(t *testing.T) {
	f, rec := newFacade(t)
	p := &testProxy{BaseProxy: mvc.NewBaseProxy(f, "TestObj", nil)}
	f.RegisterProxy(p)
	p.BindProxyEvent("model.changed", func(*event.Note[string]) error { return nil })

	got, err := f.RemoveProxy("TestObj")
	if err != nil {
		t.Fatalf("RemoveProxy() failed: %v", err)
	}
	if got != p {
		t.Error("RemoveProxy() returned a different proxy")
	}
	if f.HasProxy("TestObj") {
		t.Error("HasProxy() = true after RemoveProxy")
	}
	if p.removed != 1 {
		t.Errorf("OnRemove called %d times, want 1", p.removed)
	}
	if f.ModelObserver().Has("model.changed") {
		t.Error("proxy events still registered after RemoveProxy")
	}
	if types := rec.Types(); types[len(types)-1] != mvc.EventProxyRemove {
		t.Errorf("last event = %s, want %s", types[len(types)-1], mvc.EventProxyRemove)
	}

	if _, err := f.RemoveProxy("TestObj"); !errors.Is(err, registry.ErrKeyNotFound) {
		t.Errorf("second RemoveProxy() error = %v, want %v", err, registry.ErrKeyNotFound)
	}
}

func TestFacade_RetrieveProxyMissing(t *testing.T) {
	f, _ := newFacade(t)

	if _, err := f.RetrieveProxy("missing"); !errors.Is(err, registry.ErrKeyNotFound) {
		t.Errorf("RetrieveProxy() error = %v, want %v", err, registry.ErrKeyNotFound)
	}
}

func TestFacade_RegisterMediator(t *testing.T) {
	f, _ := newFacade(t)
	m := &testMediator{BaseMediator: mvc.NewBaseMediator(f, "TestObj", &testView{mvc.NewBaseView()})}

	if err := f.RegisterMediator(m); err != nil {
		t.Fatalf("RegisterMediator() failed: %v", err)
	}
	if !f.HasMediator("TestObj") {
		t.Error("HasMediator() = false after RegisterMediator")
	}
	if m.registered != 1 {
		t.Errorf("OnRegister called %d times, want 1", m.registered)
	}

	got, err := f.RetrieveMediator("TestObj")
	if err != nil {
		t.Fatalf("RetrieveMediator() failed: %v", err)
	}
	if got != m {
		t.Error("RetrieveMediator() returned a different mediator")
	}
}

func TestFacade_RemoveMediator(t *testing.T) {
	f, _ := newFacade(t)
	m := &testMediator{BaseMediator: mvc.NewBaseMediator(f, "TestObj", &testView{mvc.NewBaseView()})}
	f.RegisterMediator(m)
	noop := func(*event.Note[string]) error { return nil }
	m.BindAppEvent("app.ready", noop)
	m.BindGUI("clicked", func(*event.Note[mvc.ViewEvent]) error { return nil })

	if _, err := f.RemoveMediator("TestObj"); err != nil {
		t.Fatalf("RemoveMediator() failed: %v", err)
	}
	if f.HasMediator("TestObj") {
		t.Error("HasMediator() = true after RemoveMediator")
	}
	if m.removed != 1 {
		t.Errorf("OnRemove called %d times, want 1", m.removed)
	}
	if f.AppObserver().Len() != 0 {
		t.Errorf("app observer Len() = %d, want 0", f.AppObserver().Len())
	}
	if f.GUIObserver().Len() != 0 {
		t.Errorf("gui observer Len() = %d, want 0", f.GUIObserver().Len())
	}

	if _, err := f.RemoveMediator("TestObj"); !errors.Is(err, registry.ErrKeyNotFound) {
		t.Errorf("second RemoveMediator() error = %v, want %v", err, registry.ErrKeyNotFound)
	}
}

func TestFacade_NotifyApp(t *testing.T) {
	f, _ := newFacade(t)
	var received *event.Note[string]

	f.AppObserver().Register("test_notify_app", func(note *event.Note[string]) error {
		received = note
		return nil
	}, "uid")

	if err := f.NotifyApp("test_notify_app", "data", "uid"); err != nil {
		t.Fatalf("NotifyApp() failed: %v", err)
	}
	if received == nil || received.EventName != "test_notify_app" {
		t.Errorf("received %+v, want test_notify_app note", received)
	}
}

func TestFacade_NotifyErrorReported(t *testing.T) {
	f, rec := newFacade(t)
	boom := errors.New("boom")
	f.ModelObserver().Register("fail", func(*event.Note[string]) error { return boom }, "uid")

	if err := f.NotifyModel("fail", nil, ""); !errors.Is(err, boom) {
		t.Fatalf("NotifyModel() error = %v, want %v", err, boom)
	}

	events := rec.Events()
	if len(events) != 1 || events[0].Type != mvc.EventNotifyError {
		t.Fatalf("events = %v, want one %s", rec.Types(), mvc.EventNotifyError)
	}
	if events[0].Data["channel"] != "model" {
		t.Errorf("channel = %v, want model", events[0].Data["channel"])
	}
}

func TestFacade_NotifyGUINilView(t *testing.T) {
	f, _ := newFacade(t)

	if err := f.NotifyGUI(nil, "clicked", nil, ""); !errors.Is(err, mvc.ErrNoView) {
		t.Errorf("NotifyGUI() error = %v, want %v", err, mvc.ErrNoView)
	}
}
