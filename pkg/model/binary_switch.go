package model

import (
	"fmt"

	"github.com/mash-protocol/mash-av/pkg/parcel"
	"github.com/mash-protocol/mash-av/pkg/rep"
)

// Binary switch resource identifiers.
const (
	OICTypeBinarySwitch       = "oic.r.switch.binary"
	OCFURIPrefixBinarySwitch  = "/ocf/switch/"
	UPnPURIPrefixBinarySwitch = "/upnp/switch/"
)

// ValueKey is the on/off attribute of a binary switch.
const ValueKey = "value"

// BinarySwitch is the typed model of a remote power switch.
type BinarySwitch struct {
	Service

	value       bool
	initialized bool
}

// NewBinarySwitch creates a BinarySwitch that is off.
func NewBinarySwitch() *BinarySwitch {
	return &BinarySwitch{}
}

// Value returns true if the switch is on.
func (s *BinarySwitch) Value() bool { return s.value }

// SetValue turns the switch on or off.
func (s *BinarySwitch) SetValue(on bool) { s.value = on }

// IsInitialized returns true if the last hydration found the value attribute.
func (s *BinarySwitch) IsInitialized() bool { return s.initialized }

// Binder returns the binding pipeline for s.
func (s *BinarySwitch) Binder() *Binder {
	return NewBinder(OICTypeBinarySwitch, func(v bool) { s.initialized = v },
		s.Service.BaseStep(),
		Fields{{
			Key:     ValueKey,
			Kind:    rep.KindBool,
			Tracked: true,
			Assign: func(v rep.Value) bool {
				s.value, _ = v.AsBool()
				return true
			},
			Current: func() (rep.Value, bool) { return rep.Bool(s.value), true },
		}},
	)
}

// Hydrate populates s from c.
func (s *BinarySwitch) Hydrate(c rep.Container) (Result, error) {
	return s.Binder().Hydrate(c)
}

// Dehydrate returns a fresh representation of s.
func (s *BinarySwitch) Dehydrate() *rep.Representation {
	return s.Binder().Dehydrate()
}

func (s *BinarySwitch) String() string {
	return fmt.Sprintf("[%s, initialized: %t, %s: %t]",
		s.Service.String(), s.initialized, ValueKey, s.value)
}

// WriteParcel writes name, uri, value and initialized in that order.
func (s *BinarySwitch) WriteParcel(w *parcel.Writer) {
	s.Service.WriteParcel(w)
	w.WriteBool(s.value)
	w.WriteBool(s.initialized)
}

// ReadParcel reads the fields written by WriteParcel.
func (s *BinarySwitch) ReadParcel(r *parcel.Reader) error {
	var svc Service
	if err := svc.ReadParcel(r); err != nil {
		return err
	}
	value, err := r.ReadBool()
	if err != nil {
		return fmt.Errorf("value: %w", err)
	}
	initialized, err := r.ReadBool()
	if err != nil {
		return fmt.Errorf("initialized: %w", err)
	}

	s.Service = svc
	s.value = value
	s.initialized = initialized
	return nil
}

// Compile-time interface satisfaction check.
var _ parcel.Parcelable = (*BinarySwitch)(nil)
