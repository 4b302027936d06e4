// Package observability reports facade lifecycle activity (registrations,
// removals, failed dispatches) to pluggable observers. Level values follow
// the OpenTelemetry SeverityNumber ranges so events can be forwarded to a
// collector without translation.
package observability

import (
	"context"
	"log/slog"
	"time"
)

// Level represents event severity aligned with OTel SeverityNumber ranges.
type Level int

const (
	LevelVerbose Level = 5  // OTel DEBUG
	LevelInfo    Level = 9  // OTel INFO
	LevelWarning Level = 13 // OTel WARN
	LevelError   Level = 17 // OTel ERROR
)

// String returns the OTel severity text for the level.
func (l Level) String() string {
	switch {
	case l <= 4:
		return "TRACE"
	case l <= 8:
		return "DEBUG"
	case l <= 12:
		return "INFO"
	case l <= 16:
		return "WARN"
	case l <= 20:
		return "ERROR"
	default:
		return "FATAL"
	}
}

// SlogLevel maps this level to the matching slog.Level.
func (l Level) SlogLevel() slog.Level {
	switch {
	case l <= 8:
		return slog.LevelDebug
	case l <= 12:
		return slog.LevelInfo
	case l <= 16:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

// EventType names a kind of lifecycle event, e.g. "mvc.proxy.register".
type EventType string

// Event describes one lifecycle occurrence. Source is the emitting component,
// Name the registered object or event name it concerns.
type Event struct {
	Type      EventType
	Level     Level
	Timestamp time.Time
	Source    string
	Name      string
	Data      map[string]any
}

// Observer receives lifecycle events. Implementations must not block the
// caller for long; events are emitted inline with registration calls.
type Observer interface {
	OnEvent(ctx context.Context, event Event)
}

// NoOpObserver discards all events.
type NoOpObserver struct{}

func (NoOpObserver) OnEvent(context.Context, Event) {}

// MultiObserver fans events out to several observers in order.
type MultiObserver []Observer

// NewMultiObserver combines the non-nil observers into one.
func NewMultiObserver(observers ...Observer) MultiObserver {
	multi := make(MultiObserver, 0, len(observers))
	for _, obs := range observers {
		if obs != nil {
			multi = append(multi, obs)
		}
	}
	return multi
}

func (m MultiObserver) OnEvent(ctx context.Context, event Event) {
	for _, obs := range m {
		obs.OnEvent(ctx, event)
	}
}
