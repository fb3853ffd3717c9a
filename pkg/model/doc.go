// Package model implements typed resource models and their binding to
// attribute containers.
//
// # Resource Models
//
// A resource model is the typed, in-memory view of one controllable remote
// resource. Every model embeds Service, which carries the resource name and
// URI. Resource-specific models add their own fields:
//
//	Service (name, uri)
//	├── Audio        (mute, volume)       oic.r.audio
//	└── BinarySwitch (value)              oic.r.switch.binary
//
// # Binding
//
// A Binder converts between a rep.Container and a model. It is an ordered
// pipeline of Steps: the Service step always runs first, then the
// resource-specific step. Each step owns a list of Fields, each naming an
// attribute key and the rep.Kind it expects.
//
// Hydration is best-effort. A field whose attribute is absent or has the
// wrong kind keeps its previous value; the model's initialized flag is
// recomputed on every hydration as "every tracked field was satisfied":
//
//	res, err := a.Hydrate(payload)
//	if err != nil {
//	    return err // container is malformed
//	}
//	if !a.IsInitialized() {
//	    log.Printf("partial state, missing %v", res.Missing())
//	}
//
// Dehydration writes the current field values regardless of the flag.
//
// # Local Transport
//
// Models implement parcel.Parcelable for the compact fixed-order format used
// between local components. See EncodeAudio and DecodeAudio.
package model
