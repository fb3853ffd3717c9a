package log

import (
	"bytes"
	"io"
	"testing"
	"time"
)

func writeEvents(t *testing.T, events ...Event) []byte {
	t.Helper()
	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	for _, ev := range events {
		if err := enc.Encode(ev); err != nil {
			t.Fatalf("Encode failed: %v", err)
		}
	}
	return buf.Bytes()
}

func collect(t *testing.T, data []byte, f Filter) []Event {
	t.Helper()
	r := NewStreamReader(bytes.NewReader(data), f)
	var out []Event
	for {
		ev, err := r.Next()
		if err == io.EOF {
			return out
		}
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		out = append(out, ev)
	}
}

func TestFilterMatches(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	data := writeEvents(t,
		Event{Timestamp: base, SessionID: "a", Direction: DirectionIn, Layer: LayerBinding, Category: CategoryBinding,
			ResourceURI: "/ocf/audio/1", Binding: &BindingEvent{Initialized: true}},
		Event{Timestamp: base.Add(time.Second), SessionID: "a", Direction: DirectionIn, Layer: LayerBinding, Category: CategoryBinding,
			ResourceURI: "/ocf/audio/2", Binding: &BindingEvent{Missing: []string{"volume"}}},
		Event{Timestamp: base.Add(2 * time.Second), SessionID: "b", Direction: DirectionOut, Layer: LayerParcel, Category: CategoryParcel,
			Parcel: &ParcelEvent{Size: 10}},
	)

	in := DirectionIn
	parcel := LayerParcel
	errCat := CategoryError
	start := base.Add(time.Second)
	end := base.Add(2 * time.Second)

	tests := []struct {
		name   string
		filter Filter
		want   int
	}{
		{"all", Filter{}, 3},
		{"session", Filter{SessionID: "a"}, 2},
		{"direction", Filter{Direction: &in}, 2},
		{"layer", Filter{Layer: &parcel}, 1},
		{"category none", Filter{Category: &errCat}, 0},
		{"uri", Filter{ResourceURI: "/ocf/audio/2"}, 1},
		{"time window", Filter{TimeStart: &start, TimeEnd: &end}, 1},
		{"incomplete only", Filter{IncompleteOnly: true}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collect(t, data, tt.filter)
			if len(got) != tt.want {
				t.Errorf("expected %d events, got %d", tt.want, len(got))
			}
		})
	}
}

func TestReaderMissingFile(t *testing.T) {
	if _, err := NewReader("/nonexistent/path/events.mlog"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestReaderCorruptStream(t *testing.T) {
	r := NewStreamReader(bytes.NewReader([]byte{0xFF, 0x00}), Filter{})
	if _, err := r.Next(); err == nil || err == io.EOF {
		t.Errorf("expected decode error, got %v", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("Close on stream reader failed: %v", err)
	}
}
