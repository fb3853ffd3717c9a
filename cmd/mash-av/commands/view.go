package commands

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/mash-protocol/mash-av/pkg/log"
)

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	// Header line: timestamp [session:id] DIRECTION LAYER Type
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	sessionID := shortenSessionID(event.SessionID)
	dir := event.Direction.String()

	var typeLabel string
	switch {
	case event.Binding != nil && event.Direction == log.DirectionIn:
		typeLabel = "Hydrate"
	case event.Binding != nil:
		typeLabel = "Dehydrate"
	case event.Parcel != nil:
		typeLabel = "Bytes"
	case event.Error != nil:
		typeLabel = "Error"
	default:
		typeLabel = "Unknown"
	}

	fmt.Fprintf(w, "%s [session:%s] %-3s %s %s\n", ts, sessionID, dir, event.Layer.String(), typeLabel)

	if event.ResourceType != "" || event.ResourceURI != "" {
		fmt.Fprintf(w, "  Resource: %s %s\n", event.ResourceType, event.ResourceURI)
	}

	switch {
	case event.Binding != nil:
		formatBindingDetails(w, event.Binding, event.Direction)
	case event.Parcel != nil:
		formatParcelDetails(w, event.Parcel)
	case event.Error != nil:
		formatErrorDetails(w, event.Error)
	}

	fmt.Fprintln(w) // Blank line between events
}

// shortenSessionID returns the first 8 characters of the session ID.
func shortenSessionID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

func formatBindingDetails(w io.Writer, b *log.BindingEvent, dir log.Direction) {
	if dir == log.DirectionOut {
		if len(b.Attributes) == 0 {
			return
		}
		attrs, err := json.Marshal(sortedAttributes(b.Attributes))
		if err == nil {
			fmt.Fprintf(w, "  Attributes: %s\n", attrs)
		}
		return
	}

	fmt.Fprintf(w, "  Initialized: %t\n", b.Initialized)
	if len(b.Satisfied) > 0 {
		fmt.Fprintf(w, "  Satisfied: %s\n", strings.Join(b.Satisfied, ", "))
	}
	if len(b.Missing) > 0 {
		fmt.Fprintf(w, "  Missing: %s\n", strings.Join(b.Missing, ", "))
	}
	if len(b.Mismatched) > 0 {
		fmt.Fprintf(w, "  Mismatched: %s\n", strings.Join(b.Mismatched, ", "))
	}
}

// sortedAttributes returns attrs as ordered key/value pairs so output is
// stable.
func sortedAttributes(attrs map[string]any) []any {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]any, 0, len(keys))
	for _, k := range keys {
		out = append(out, map[string]any{k: attrs[k]})
	}
	return out
}

func formatParcelDetails(w io.Writer, p *log.ParcelEvent) {
	fmt.Fprintf(w, "  Size: %d bytes\n", p.Size)
	if len(p.Data) > 0 {
		fmt.Fprintf(w, "  Data: %s", hex.EncodeToString(p.Data))
		if p.Truncated {
			fmt.Fprintf(w, " (truncated)")
		}
		fmt.Fprintln(w)
	}
}

func formatErrorDetails(w io.Writer, err *log.ErrorEventData) {
	fmt.Fprintf(w, "  Layer: %s\n", err.Layer.String())
	fmt.Fprintf(w, "  Message: %s\n", err.Message)
	if err.Key != "" {
		fmt.Fprintf(w, "  Key: %s\n", err.Key)
	}
	if err.Context != "" {
		fmt.Fprintf(w, "  Context: %s\n", err.Context)
	}
}

// ParseLayerFlag parses a layer string from command-line flag (case-insensitive).
func ParseLayerFlag(s string) (log.Layer, error) {
	switch strings.ToLower(s) {
	case "wire":
		return log.LayerWire, nil
	case "binding":
		return log.LayerBinding, nil
	case "parcel":
		return log.LayerParcel, nil
	default:
		return 0, fmt.Errorf("invalid layer: %s (must be wire, binding, or parcel)", s)
	}
}

// ParseDirectionFlag parses a direction string from command-line flag (case-insensitive).
func ParseDirectionFlag(s string) (log.Direction, error) {
	switch strings.ToLower(s) {
	case "in":
		return log.DirectionIn, nil
	case "out":
		return log.DirectionOut, nil
	default:
		return 0, fmt.Errorf("invalid direction: %s (must be in or out)", s)
	}
}

// ParseCategoryFlag parses a category string from command-line flag (case-insensitive).
func ParseCategoryFlag(s string) (log.Category, error) {
	switch strings.ToLower(s) {
	case "binding":
		return log.CategoryBinding, nil
	case "parcel":
		return log.CategoryParcel, nil
	case "error":
		return log.CategoryError, nil
	default:
		return 0, fmt.Errorf("invalid category: %s (must be binding, parcel, or error)", s)
	}
}

// RunView prints the events of the log file at path that match filter.
func RunView(path string, filter log.Filter, output io.Writer) error {
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	return viewEvents(reader, output)
}

func viewEvents(reader *log.Reader, output io.Writer) error {
	for {
		event, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		formatEvent(output, event)
	}
}
