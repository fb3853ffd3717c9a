package wire

import (
	"errors"
	"fmt"
	"io"
	"reflect"

	"github.com/fxamacker/cbor/v2"
	"github.com/mash-protocol/mash-av/pkg/rep"
)

// Wire errors.
var (
	ErrInvalidPayload = errors.New("invalid representation payload")
)

// encMode is the CBOR encoder mode for representations.
// Configured for deterministic encoding.
var encMode cbor.EncMode

// decMode is the CBOR decoder mode for representations.
var decMode cbor.DecMode

func init() {
	var err error

	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical, // Deterministic key ordering
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
		Time:          cbor.TimeUnix,
	}
	encMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR encoder mode: %v", err))
	}

	// Lenient for forward compatibility, except that nested maps must have
	// text keys to become rep.KindObject.
	decOpts := cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyQuiet, // Ignore duplicate keys (last wins)
		IndefLength:       cbor.IndefLengthAllowed,
		ExtraReturnErrors: cbor.ExtraDecErrorNone,
		DefaultMapType:    reflect.TypeOf(map[string]any(nil)),
	}
	decMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR decoder mode: %v", err))
	}
}

// Marshal encodes a value to CBOR bytes.
func Marshal(v any) ([]byte, error) {
	return encMode.Marshal(v)
}

// Unmarshal decodes CBOR bytes into a value.
func Unmarshal(data []byte, v any) error {
	return decMode.Unmarshal(data, v)
}

// NewEncoder creates a new CBOR encoder that writes to w.
func NewEncoder(w io.Writer) *cbor.Encoder {
	return encMode.NewEncoder(w)
}

// NewDecoder creates a new CBOR decoder that reads from r.
func NewDecoder(r io.Reader) *cbor.Decoder {
	return decMode.NewDecoder(r)
}

// envelope is the encoded form of a representation.
type envelope struct {
	Href          string         `cbor:"href,omitempty"`
	ResourceTypes []string       `cbor:"rt,omitempty"`
	Interfaces    []string       `cbor:"if,omitempty"`
	Rep           map[string]any `cbor:"rep"`
}

// rawEnvelope defers decoding of attribute values.
type rawEnvelope struct {
	Href          string                     `cbor:"href,omitempty"`
	ResourceTypes []string                   `cbor:"rt,omitempty"`
	Interfaces    []string                   `cbor:"if,omitempty"`
	Rep           map[string]cbor.RawMessage `cbor:"rep"`
}

// EncodeRepresentation encodes a representation to CBOR bytes.
func EncodeRepresentation(r *rep.Representation) ([]byte, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: nil representation", ErrInvalidPayload)
	}
	return Marshal(envelope{
		Href:          r.URI(),
		ResourceTypes: r.ResourceTypes(),
		Interfaces:    r.Interfaces(),
		Rep:           r.Map(),
	})
}

// DecodePayload decodes the envelope of an encoded representation. Attribute
// values are decoded on access.
func DecodePayload(data []byte) (*Payload, error) {
	var env rawEnvelope
	if err := Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	return newPayload(env), nil
}

// DecodeRepresentation fully decodes an encoded representation.
func DecodeRepresentation(data []byte) (*rep.Representation, error) {
	p, err := DecodePayload(data)
	if err != nil {
		return nil, err
	}
	return Materialize(p)
}

// DecodeValue decodes a single CBOR item into a rep.Value.
func DecodeValue(data []byte) (rep.Value, error) {
	var x any
	if err := Unmarshal(data, &x); err != nil {
		return rep.Value{}, fmt.Errorf("%w: %w", rep.ErrMalformed, err)
	}
	return rep.FromInterface(x)
}

// EncodeValue encodes a single rep.Value to CBOR.
func EncodeValue(v rep.Value) ([]byte, error) {
	return Marshal(v.Interface())
}
