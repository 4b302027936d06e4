package observability_test

import (
	"bytes"
	"context"
	"log/slog"
	"slices"
	"strings"
	"testing"

	"github.com/tailored-agentic-units/ymvc/observability"
)

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level observability.Level
		want  string
	}{
		{level: 1, want: "TRACE"},
		{level: observability.LevelVerbose, want: "DEBUG"},
		{level: observability.LevelInfo, want: "INFO"},
		{level: observability.LevelWarning, want: "WARN"},
		{level: observability.LevelError, want: "ERROR"},
		{level: 21, want: "FATAL"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.level.String(); got != tt.want {
				t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.want)
			}
		})
	}
}

func TestLevel_SlogLevel(t *testing.T) {
	tests := []struct {
		level observability.Level
		want  slog.Level
	}{
		{level: observability.LevelVerbose, want: slog.LevelDebug},
		{level: observability.LevelInfo, want: slog.LevelInfo},
		{level: observability.LevelWarning, want: slog.LevelWarn},
		{level: observability.LevelError, want: slog.LevelError},
	}

	for _, tt := range tests {
		if got := tt.level.SlogLevel(); got != tt.want {
			t.Errorf("Level(%d).SlogLevel() = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestMultiObserver_FanOutSkipsNil(t *testing.T) {
	a, b := &observability.Recorder{}, &observability.Recorder{}
	multi := observability.NewMultiObserver(a, nil, b)

	multi.OnEvent(context.Background(), observability.Event{Type: "mvc.test"})

	if len(a.Events()) != 1 || len(b.Events()) != 1 {
		t.Errorf("recorders got %d and %d events, want 1 each", len(a.Events()), len(b.Events()))
	}
	if len(multi) != 2 {
		t.Errorf("len(multi) = %d, want 2", len(multi))
	}
}

func TestNoOpObserver(t *testing.T) {
	observability.NoOpObserver{}.OnEvent(context.Background(), observability.Event{Type: "mvc.test"})
}

func TestSlogObserver_Attributes(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	obs := observability.NewSlogObserver(logger)
	obs.OnEvent(context.Background(), observability.Event{
		Type:   "mvc.proxy.register",
		Level:  observability.LevelInfo,
		Source: "mvc.Facade",
		Name:   "accounts",
		Data:   map[string]any{"bindings": 3},
	})

	output := buf.String()
	for _, want := range []string{"mvc.proxy.register", "source=mvc.Facade", "name=accounts", "bindings=3"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q: %s", want, output)
		}
	}
}

func TestSlogObserver_RespectsHandlerLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	observability.NewSlogObserver(logger).OnEvent(context.Background(), observability.Event{
		Type:  "mvc.proxy.register",
		Level: observability.LevelVerbose,
	})

	if buf.Len() != 0 {
		t.Errorf("verbose event logged at info level: %q", buf.String())
	}
}

func TestRecorder(t *testing.T) {
	rec := &observability.Recorder{}
	rec.OnEvent(context.Background(), observability.Event{Type: "a"})
	rec.OnEvent(context.Background(), observability.Event{Type: "b"})

	if got := rec.Types(); !slices.Equal(got, []observability.EventType{"a", "b"}) {
		t.Errorf("Types() = %v, want [a b]", got)
	}

	rec.Reset()
	if len(rec.Events()) != 0 {
		t.Errorf("Events() after Reset = %v, want empty", rec.Events())
	}
}

func TestRegistry(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		wantErr bool
	}{
		{name: "noop exists", key: "noop"},
		{name: "slog exists", key: "slog"},
		{name: "unknown fails", key: "nonexistent", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obs, err := observability.GetObserver(tt.key)
			if (err != nil) != tt.wantErr {
				t.Errorf("GetObserver(%q) error = %v, wantErr %v", tt.key, err, tt.wantErr)
			}
			if !tt.wantErr && obs == nil {
				t.Errorf("GetObserver(%q) returned nil", tt.key)
			}
		})
	}
}

func TestRegistry_RegisterObserver(t *testing.T) {
	rec := &observability.Recorder{}
	observability.RegisterObserver("test-recorder", rec)

	obs, err := observability.GetObserver("test-recorder")
	if err != nil {
		t.Fatalf("GetObserver() failed: %v", err)
	}
	obs.OnEvent(context.Background(), observability.Event{Type: "mvc.test"})

	if len(rec.Events()) != 1 {
		t.Errorf("recorder got %d events, want 1", len(rec.Events()))
	}
	if !slices.Contains(observability.ObserverNames(), "test-recorder") {
		t.Error("ObserverNames() missing test-recorder")
	}
}
