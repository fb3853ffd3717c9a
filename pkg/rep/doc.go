// Package rep defines the attribute container exchanged with remote
// resources.
//
// A representation is a string-keyed map of dynamically-typed values. The
// value type is a closed tagged union (Value) so consumers match on Kind
// instead of inspecting Go types at runtime:
//
//	v, err := c.Get("volume")
//	if err != nil {
//	    return err // container is malformed
//	}
//	if n, ok := v.AsInt(); ok {
//	    volume = int32(n)
//	}
//
// # Containers
//
// Binders depend only on the Container interface (Has, Get, Set). The
// in-memory Representation implements it; pkg/wire provides a lazily-decoded
// implementation backed by CBOR. Containers that also carry the resource
// address implement Addressed.
//
// # Errors
//
// Get returns an *AccessError when the container cannot produce a value for
// a key it claims to have. Absent keys are not errors: Has reports them.
package rep
