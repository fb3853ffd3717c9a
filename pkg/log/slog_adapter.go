package log

import (
	"context"
	"log/slog"
	"strings"
)

// SlogAdapter writes binding events to an slog.Logger.
// Useful for development when you want to see binding results in console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger. Error events are logged at Warn
// level, everything else at Debug.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("session_id", event.SessionID),
		slog.String("direction", event.Direction.String()),
		slog.String("layer", event.Layer.String()),
		slog.String("category", event.Category.String()),
	}

	if event.ResourceURI != "" {
		attrs = append(attrs, slog.String("uri", event.ResourceURI))
	}
	if event.ResourceType != "" {
		attrs = append(attrs, slog.String("rt", event.ResourceType))
	}

	level := slog.LevelDebug
	switch {
	case event.Binding != nil:
		attrs = append(attrs, slog.Bool("initialized", event.Binding.Initialized))
		if len(event.Binding.Missing) > 0 {
			attrs = append(attrs, slog.String("missing", strings.Join(event.Binding.Missing, ",")))
		}
		if len(event.Binding.Mismatched) > 0 {
			attrs = append(attrs, slog.String("mismatched", strings.Join(event.Binding.Mismatched, ",")))
		}
		if len(event.Binding.Attributes) > 0 {
			attrs = append(attrs, slog.Any("attributes", event.Binding.Attributes))
		}
	case event.Parcel != nil:
		attrs = append(attrs,
			slog.Int("size", event.Parcel.Size),
			slog.Bool("truncated", event.Parcel.Truncated),
		)
	case event.Error != nil:
		level = slog.LevelWarn
		attrs = append(attrs,
			slog.String("error_layer", event.Error.Layer.String()),
			slog.String("error_msg", event.Error.Message),
		)
		if event.Error.Key != "" {
			attrs = append(attrs, slog.String("error_key", event.Error.Key))
		}
		if event.Error.Context != "" {
			attrs = append(attrs, slog.String("error_context", event.Error.Context))
		}
	}

	a.logger.LogAttrs(context.Background(), level, "binding", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
