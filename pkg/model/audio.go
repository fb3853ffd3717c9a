package model

import (
	"fmt"

	"github.com/mash-protocol/mash-av/pkg/parcel"
	"github.com/mash-protocol/mash-av/pkg/rep"
)

// Audio resource identifiers.
const (
	OICTypeAudio                       = "oic.r.audio"
	OCFURIPrefixAudio                  = "/ocf/audio/"
	UPnPURIPrefixAudio                 = "/upnp/audio/"
	UPnPURIPrefixAudioRenderingControl = "/upnp/audio/RenderingControl/"
)

// Audio attribute keys and defaults.
const (
	MuteKey     = "mute"
	DefaultMute = false

	VolumeKey     = "volume"
	DefaultVolume = int32(0)
)

// Audio is the typed model of a remote audio-control resource.
//
// Audio is not safe for concurrent use.
type Audio struct {
	Service

	mute        bool
	volume      int32
	initialized bool
}

// NewAudio creates an Audio with default values.
func NewAudio() *Audio {
	return &Audio{
		mute:   DefaultMute,
		volume: DefaultVolume,
	}
}

// Mute returns the mute state.
func (a *Audio) Mute() bool { return a.mute }

// SetMute sets the mute state.
func (a *Audio) SetMute(mute bool) { a.mute = mute }

// Volume returns the volume.
func (a *Audio) Volume() int32 { return a.volume }

// SetVolume sets the volume.
func (a *Audio) SetVolume(volume int32) { a.volume = volume }

// IsInitialized returns true if the last hydration found both mute and
// volume with the expected types.
func (a *Audio) IsInitialized() bool { return a.initialized }

// Binder returns the binding pipeline for a: the Service step followed by
// the mute and volume fields.
func (a *Audio) Binder() *Binder {
	return NewBinder(OICTypeAudio, a.commit, a.Service.BaseStep(), a.fields())
}

func (a *Audio) commit(initialized bool) { a.initialized = initialized }

func (a *Audio) fields() Fields {
	return Fields{
		{
			Key:     MuteKey,
			Kind:    rep.KindBool,
			Tracked: true,
			Assign: func(v rep.Value) bool {
				a.mute, _ = v.AsBool()
				return true
			},
			Current: func() (rep.Value, bool) { return rep.Bool(a.mute), true },
		},
		{
			Key:     VolumeKey,
			Kind:    rep.KindInt,
			Tracked: true,
			Assign: func(v rep.Value) bool {
				n, ok := v.AsInt32()
				if ok {
					a.volume = n
				}
				return ok
			},
			Current: func() (rep.Value, bool) { return rep.Int(int64(a.volume)), true },
		},
	}
}

// Hydrate populates a from c. See Binder.Hydrate.
func (a *Audio) Hydrate(c rep.Container) (Result, error) {
	return a.Binder().Hydrate(c)
}

// Dehydrate returns a fresh representation of a.
func (a *Audio) Dehydrate() *rep.Representation {
	return a.Binder().Dehydrate()
}

// String formats the model for display.
func (a *Audio) String() string {
	return fmt.Sprintf("[%s, initialized: %t, %s: %t, %s: %d]",
		a.Service.String(), a.initialized, MuteKey, a.mute, VolumeKey, a.volume)
}

// WriteParcel writes name, uri, volume, mute and initialized in that order.
func (a *Audio) WriteParcel(w *parcel.Writer) {
	a.Service.WriteParcel(w)
	w.WriteInt32(a.volume)
	w.WriteBool(a.mute)
	w.WriteBool(a.initialized)
}

// ReadParcel reads the fields written by WriteParcel. a is only modified
// when every field was read.
func (a *Audio) ReadParcel(r *parcel.Reader) error {
	var svc Service
	if err := svc.ReadParcel(r); err != nil {
		return err
	}
	volume, err := r.ReadInt32()
	if err != nil {
		return fmt.Errorf("volume: %w", err)
	}
	mute, err := r.ReadBool()
	if err != nil {
		return fmt.Errorf("mute: %w", err)
	}
	initialized, err := r.ReadBool()
	if err != nil {
		return fmt.Errorf("initialized: %w", err)
	}

	a.Service = svc
	a.volume = volume
	a.mute = mute
	a.initialized = initialized
	return nil
}

// EncodeAudio flattens a into the compact parcel format.
func EncodeAudio(a *Audio) []byte {
	return parcel.Marshal(a)
}

// DecodeAudio reads an Audio from the compact parcel format. It returns a
// nil model on error.
func DecodeAudio(data []byte) (*Audio, error) {
	a := NewAudio()
	if err := parcel.Unmarshal(data, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Compile-time interface satisfaction check.
var _ parcel.Parcelable = (*Audio)(nil)
