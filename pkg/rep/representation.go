package rep

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Container errors.
var (
	ErrMalformed         = errors.New("malformed representation")
	ErrAttributeNotFound = errors.New("attribute not found")
)

// AccessError is returned by Container.Get when the container cannot
// produce a value for key.
type AccessError struct {
	Key string
	Err error
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("attribute %q: %v", e.Key, e.Err)
}

func (e *AccessError) Unwrap() error { return e.Err }

// Container is the minimal capability set binders depend on.
type Container interface {
	// Has reports whether key is present.
	Has(key string) bool

	// Get returns the value for key. An error means the container itself
	// is broken; callers should not retry.
	Get(key string) (Value, error)

	// Set stores v under key, replacing any previous value.
	Set(key string, v Value)
}

// Addressed is implemented by containers that carry the resource URI.
type Addressed interface {
	URI() string
	SetURI(uri string)
}

// Representation is an in-memory attribute container.
// Keys keep insertion order. The zero value is not usable; call New.
type Representation struct {
	uri           string
	resourceTypes []string
	interfaces    []string
	keys          []string
	values        map[string]Value
}

// New creates an empty representation.
func New() *Representation {
	return &Representation{values: make(map[string]Value)}
}

// FromMap builds a representation from plain Go values. Keys are added in
// sorted order.
func FromMap(m map[string]any) (*Representation, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	r := New()
	for _, k := range keys {
		v, err := FromInterface(m[k])
		if err != nil {
			return nil, &AccessError{Key: k, Err: err}
		}
		r.Set(k, v)
	}
	return r, nil
}

// URI returns the resource URI.
func (r *Representation) URI() string { return r.uri }

// SetURI sets the resource URI.
func (r *Representation) SetURI(uri string) { r.uri = uri }

// ResourceTypes returns the resource type tags ("rt").
func (r *Representation) ResourceTypes() []string { return r.resourceTypes }

// SetResourceTypes replaces the resource type tags.
func (r *Representation) SetResourceTypes(rt ...string) { r.resourceTypes = rt }

// Interfaces returns the resource interfaces ("if").
func (r *Representation) Interfaces() []string { return r.interfaces }

// SetInterfaces replaces the resource interfaces.
func (r *Representation) SetInterfaces(ifs ...string) { r.interfaces = ifs }

// Has reports whether key is present.
func (r *Representation) Has(key string) bool {
	_, ok := r.values[key]
	return ok
}

// Get returns the value for key.
func (r *Representation) Get(key string) (Value, error) {
	v, ok := r.values[key]
	if !ok {
		return Value{}, &AccessError{Key: key, Err: ErrAttributeNotFound}
	}
	return v, nil
}

// Set stores v under key.
func (r *Representation) Set(key string, v Value) {
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = v
}

// Delete removes key. It is a no-op if key is absent.
func (r *Representation) Delete(key string) {
	if _, ok := r.values[key]; !ok {
		return
	}
	delete(r.values, key)
	for i, k := range r.keys {
		if k == key {
			r.keys = append(r.keys[:i], r.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the attribute keys in insertion order.
func (r *Representation) Keys() []string {
	keys := make([]string, len(r.keys))
	copy(keys, r.keys)
	return keys
}

// Len returns the number of attributes.
func (r *Representation) Len() int { return len(r.keys) }

// Map returns the attributes as plain Go values.
func (r *Representation) Map() map[string]any {
	m := make(map[string]any, len(r.keys))
	for _, k := range r.keys {
		m[k] = r.values[k].Interface()
	}
	return m
}

// Equal reports whether both representations hold the same URI, resource
// types, interfaces and attributes. Attribute order is ignored.
func (r *Representation) Equal(o *Representation) bool {
	if r == nil || o == nil {
		return r == o
	}
	if r.uri != o.uri || !equalStrings(r.resourceTypes, o.resourceTypes) ||
		!equalStrings(r.interfaces, o.interfaces) || len(r.values) != len(o.values) {
		return false
	}
	for k, v := range r.values {
		ov, ok := o.values[k]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}

// String formats the representation for display.
func (r *Representation) String() string {
	if r == nil {
		return "{}"
	}
	parts := make([]string, 0, len(r.keys))
	for _, k := range r.keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, r.values[k]))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Compile-time interface satisfaction checks.
var (
	_ Container = (*Representation)(nil)
	_ Addressed = (*Representation)(nil)
)
