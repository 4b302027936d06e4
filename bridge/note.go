package bridge

import (
	"fmt"
	"maps"
	"slices"

	"github.com/tailored-agentic-units/ymvc/event"
	"google.golang.org/protobuf/types/known/structpb"
)

// Reserved note keys on the wire. Every other key is carried as an extra.
const (
	KeyEventName = "event_name"
	KeyData      = "data"
	KeyUID       = "uid"
)

// Note is a decoded wire note.
type Note struct {
	EventName string
	Data      any
	UID       string
	Extras    []event.Extra
}

// EncodeNote builds the wire form of a note. Data and extra values must be
// representable as google.protobuf.Value (nil, bool, numbers, strings,
// []any, map[string]any).
func EncodeNote(name string, data any, uid string, extras ...event.Extra) (*structpb.Struct, error) {
	if name == "" {
		return nil, ErrMissingEventName
	}

	fields := map[string]any{
		KeyEventName: name,
		KeyData:      data,
		KeyUID:       uid,
	}
	for _, e := range extras {
		if isReserved(e.Key) {
			return nil, fmt.Errorf("%w: %s", ErrReservedKey, e.Key)
		}
		fields[e.Key] = e.Value
	}

	msg, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to encode note %s: %w", name, err)
	}
	return msg, nil
}

// DecodeNote reads a wire note. Extras are returned sorted by key.
func DecodeNote(msg *structpb.Struct) (Note, error) {
	fields := msg.GetFields()

	nameValue, ok := fields[KeyEventName]
	if !ok {
		return Note{}, ErrMissingEventName
	}
	name, ok := nameValue.GetKind().(*structpb.Value_StringValue)
	if !ok || name.StringValue == "" {
		return Note{}, fmt.Errorf("%w: event_name must be a non-empty string", ErrMissingEventName)
	}

	note := Note{
		EventName: name.StringValue,
		Data:      fields[KeyData].AsInterface(),
		UID:       fields[KeyUID].GetStringValue(),
	}
	for _, key := range slices.Sorted(maps.Keys(fields)) {
		if isReserved(key) {
			continue
		}
		note.Extras = append(note.Extras, event.With(key, fields[key].AsInterface()))
	}
	return note, nil
}

func isReserved(key string) bool {
	return key == KeyEventName || key == KeyData || key == KeyUID
}
