package wire

import (
	"sort"

	"github.com/fxamacker/cbor/v2"
	"github.com/mash-protocol/mash-av/pkg/rep"
)

// Payload is a lazily-decoded representation received from the wire.
// It implements rep.Container and rep.Addressed.
//
// Payload is not safe for concurrent use.
type Payload struct {
	uri           string
	resourceTypes []string
	interfaces    []string

	raw map[string]cbor.RawMessage
	set map[string]rep.Value
}

func newPayload(env rawEnvelope) *Payload {
	raw := env.Rep
	if raw == nil {
		raw = make(map[string]cbor.RawMessage)
	}
	return &Payload{
		uri:           env.Href,
		resourceTypes: env.ResourceTypes,
		interfaces:    env.Interfaces,
		raw:           raw,
		set:           make(map[string]rep.Value),
	}
}

// URI returns the href carried in the envelope.
func (p *Payload) URI() string { return p.uri }

// SetURI replaces the href.
func (p *Payload) SetURI(uri string) { p.uri = uri }

// ResourceTypes returns the "rt" tags from the envelope.
func (p *Payload) ResourceTypes() []string { return p.resourceTypes }

// Interfaces returns the "if" values from the envelope.
func (p *Payload) Interfaces() []string { return p.interfaces }

// Has reports whether key is present.
func (p *Payload) Has(key string) bool {
	if _, ok := p.set[key]; ok {
		return true
	}
	_, ok := p.raw[key]
	return ok
}

// Get decodes and returns the value for key.
func (p *Payload) Get(key string) (rep.Value, error) {
	if v, ok := p.set[key]; ok {
		return v, nil
	}
	data, ok := p.raw[key]
	if !ok {
		return rep.Value{}, &rep.AccessError{Key: key, Err: rep.ErrAttributeNotFound}
	}
	v, err := DecodeValue(data)
	if err != nil {
		return rep.Value{}, &rep.AccessError{Key: key, Err: err}
	}
	return v, nil
}

// Set stores an already-decoded value under key.
func (p *Payload) Set(key string, v rep.Value) {
	delete(p.raw, key)
	p.set[key] = v
}

// Keys returns all attribute keys in sorted order.
func (p *Payload) Keys() []string {
	keys := make([]string, 0, len(p.raw)+len(p.set))
	for k := range p.raw {
		keys = append(keys, k)
	}
	for k := range p.set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Materialize decodes every attribute of p into a Representation. It fails
// on the first malformed value.
func Materialize(p *Payload) (*rep.Representation, error) {
	r := rep.New()
	r.SetURI(p.uri)
	r.SetResourceTypes(p.resourceTypes...)
	r.SetInterfaces(p.interfaces...)
	for _, k := range p.Keys() {
		v, err := p.Get(k)
		if err != nil {
			return nil, err
		}
		r.Set(k, v)
	}
	return r, nil
}

// Compile-time interface satisfaction checks.
var (
	_ rep.Container = (*Payload)(nil)
	_ rep.Addressed = (*Payload)(nil)
)
