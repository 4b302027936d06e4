package main

import (
	"log/slog"

	"github.com/tailored-agentic-units/ymvc/event"
	"github.com/tailored-agentic-units/ymvc/mvc"
)

// logCommand writes every note it handles to the bridge logger.
type logCommand struct {
	mvc.BaseCommand
	logger *slog.Logger
}

func (c *logCommand) HandleNote(note *event.Note[string]) error {
	attrs := []any{
		slog.String("event", note.EventName),
		slog.String("uid", note.UID),
		slog.Any("data", note.Data),
	}
	for _, e := range note.Extras() {
		attrs = append(attrs, slog.Any(e.Key, e.Value))
	}
	c.logger.Info("note", attrs...)
	return nil
}

func registerLogCommand(f *mvc.Facade, logger *slog.Logger, name string) error {
	return f.RegisterCommand(name, func() event.Command[string] {
		return &logCommand{BaseCommand: mvc.NewBaseCommand(f), logger: logger}
	})
}
