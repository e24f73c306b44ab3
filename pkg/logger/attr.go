package logger

import (
	"fmt"
	"log/slog"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// MachineID records the dispenser identifier under the key "machine_id".
func MachineID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("machine_id", id)
}

// RequestID records the request identifier under the key "request_id".
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Stimulus records the stimulus name under the key "stimulus".
func Stimulus(s fmt.Stringer) slog.Attr {
	return slog.String("stimulus", s.String())
}

// Transition groups the source and target state under the key "transition".
func Transition(from, to fmt.Stringer) slog.Attr {
	return Group("transition",
		slog.String("from", from.String()),
		slog.String("to", to.String()),
	)
}

// Inventory records the unit count under the key "inventory".
func Inventory(n int) slog.Attr {
	return slog.Int("inventory", n)
}

// Scenario records the scenario name under the key "scenario".
func Scenario(name string) slog.Attr {
	return slog.String("scenario", name)
}
