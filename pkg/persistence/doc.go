// Package persistence saves typed model snapshots across tool runs.
//
// A snapshot is a JSON file holding the model's compact parcel encoding plus
// the resource type and URI it was saved under, so the initialized flag
// survives along with the attribute values.
package persistence
