package log

import (
	"time"

	"github.com/google/uuid"
)

// Event represents a binding log event captured at any layer.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID correlates events produced by one binder or tool run (UUID).
	SessionID string `cbor:"2,keyasint"`

	// Direction indicates data flow relative to the typed model.
	Direction Direction `cbor:"3,keyasint"`

	// Layer where the event was captured.
	Layer Layer `cbor:"4,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"5,keyasint"`

	// ResourceURI is the address of the resource (may be empty).
	ResourceURI string `cbor:"6,keyasint,omitempty"`

	// ResourceType is the resource type tag (e.g. oic.r.audio).
	ResourceType string `cbor:"7,keyasint,omitempty"`

	// Type-specific payload (one of these will be set).
	Binding *BindingEvent   `cbor:"10,keyasint,omitempty"` // Hydrate/dehydrate result
	Parcel  *ParcelEvent    `cbor:"11,keyasint,omitempty"` // Compact codec or wire bytes
	Error   *ErrorEventData `cbor:"12,keyasint,omitempty"` // Errors at any layer
}

// NewSessionID returns a fresh random session identifier.
func NewSessionID() string {
	return uuid.New().String()
}

// Direction indicates the direction of data flow.
type Direction uint8

const (
	// DirectionIn indicates data flowing into the model (hydrate, decode).
	DirectionIn Direction = 0
	// DirectionOut indicates data flowing out of the model (dehydrate, encode).
	DirectionOut Direction = 1
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionIn:
		return "IN"
	case DirectionOut:
		return "OUT"
	default:
		return "UNKNOWN"
	}
}

// Layer indicates which layer captured the event.
type Layer uint8

const (
	// LayerWire is the representation encoding layer (CBOR).
	LayerWire Layer = 0
	// LayerBinding is the typed attribute binding layer.
	LayerBinding Layer = 1
	// LayerParcel is the compact local transport layer.
	LayerParcel Layer = 2
)

// String returns the layer name.
func (l Layer) String() string {
	switch l {
	case LayerWire:
		return "WIRE"
	case LayerBinding:
		return "BINDING"
	case LayerParcel:
		return "PARCEL"
	default:
		return "UNKNOWN"
	}
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryBinding indicates a hydrate or dehydrate result.
	CategoryBinding Category = 0
	// CategoryParcel indicates an encoded byte stream.
	CategoryParcel Category = 1
	// CategoryError indicates an error event.
	CategoryError Category = 2
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryBinding:
		return "BINDING"
	case CategoryParcel:
		return "PARCEL"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// BindingEvent captures the outcome of one hydration or dehydration.
type BindingEvent struct {
	// Satisfied lists keys that were present with the expected type.
	Satisfied []string `cbor:"1,keyasint,omitempty"`

	// Missing lists tracked keys that were absent.
	Missing []string `cbor:"2,keyasint,omitempty"`

	// Mismatched lists keys that were present with the wrong type.
	Mismatched []string `cbor:"3,keyasint,omitempty"`

	// Initialized is the resulting initialization flag (hydrate only).
	Initialized bool `cbor:"4,keyasint"`

	// Attributes holds the written values (dehydrate only).
	Attributes map[string]any `cbor:"5,keyasint,omitempty"`
}

// ParcelEvent captures an encoded byte stream.
type ParcelEvent struct {
	// Size is the stream size in bytes.
	Size int `cbor:"1,keyasint"`

	// Data is the raw bytes (may be truncated for large streams).
	Data []byte `cbor:"2,keyasint,omitempty"`

	// Truncated indicates if Data was truncated.
	Truncated bool `cbor:"3,keyasint,omitempty"`
}

// MaxParcelData is the number of bytes kept in ParcelEvent.Data.
const MaxParcelData = 256

// NewParcelEvent builds a ParcelEvent, keeping at most MaxParcelData bytes.
func NewParcelEvent(data []byte) *ParcelEvent {
	ev := &ParcelEvent{Size: len(data)}
	if len(data) > MaxParcelData {
		ev.Data = append([]byte(nil), data[:MaxParcelData]...)
		ev.Truncated = true
	} else {
		ev.Data = append([]byte(nil), data...)
	}
	return ev
}

// ErrorEventData captures errors at any layer.
type ErrorEventData struct {
	// Layer where the error occurred.
	Layer Layer `cbor:"1,keyasint"`

	// Message is the error message.
	Message string `cbor:"2,keyasint"`

	// Key is the attribute involved (if applicable).
	Key string `cbor:"3,keyasint,omitempty"`

	// Context describes what operation was being performed.
	Context string `cbor:"4,keyasint,omitempty"`
}
