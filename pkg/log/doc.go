// Package log provides structured event logging for resource bindings.
//
// This package defines the Logger interface and Event types for capturing
// what happened when a resource model was hydrated from, or dehydrated into,
// an attribute container, and when it was flattened into a parcel. It is
// separate from operational logging (slog): events are a machine-readable
// trace of binding results, including which attributes were missing or
// mistyped.
//
// # Basic Usage
//
// Applications configure logging by providing a Logger implementation:
//
//	// For development: log to console via slog
//	binder.SetLogger(log.NewSlogAdapter(slog.Default()))
//
//	// For production: write to binary file
//	fl, _ := log.NewFileLogger("/var/log/mash-av/bindings.mlog")
//
//	// Both: use MultiLogger
//	l := log.NewMultiLogger(log.NewSlogAdapter(slog.Default()), fl)
//
// # Event Types
//
// Events are captured at three layers:
//   - Wire: Encoded representations (ParcelEvent carries the byte size)
//   - Binding: Hydration and dehydration results (BindingEvent)
//   - Parcel: Compact codec encode/decode (ParcelEvent)
//
// Errors at any layer have a dedicated event type.
//
// # File Format
//
// Log files are a stream of CBOR-encoded events with the .mlog extension.
// The "mash-av log" command views and filters them.
package log
