package model

import (
	"fmt"

	"github.com/mash-protocol/mash-av/pkg/parcel"
	"github.com/mash-protocol/mash-av/pkg/rep"
)

// NameKey is the attribute carrying the human-readable resource name.
const NameKey = "n"

// Service holds the fields shared by every resource model.
type Service struct {
	// Name is the human-readable resource name (optional).
	Name string

	// URI is the resource address (optional).
	URI string
}

// BaseStep returns the base binding step. It never counts toward the
// initialized flag.
func (s *Service) BaseStep() Step {
	return serviceStep{s: s}
}

type serviceStep struct {
	s *Service
}

// Hydrate takes the URI from addressed containers and the name from the
// NameKey attribute. Either is left untouched when unavailable.
func (st serviceStep) Hydrate(c rep.Container, res *Result) error {
	if a, ok := c.(rep.Addressed); ok && a.URI() != "" {
		st.s.URI = a.URI()
	}
	return Fields{st.nameField()}.Hydrate(c, res)
}

// Dehydrate writes the name (when set) and the URI on addressed containers.
func (st serviceStep) Dehydrate(c rep.Container) {
	Fields{st.nameField()}.Dehydrate(c)
	if a, ok := c.(rep.Addressed); ok && st.s.URI != "" {
		a.SetURI(st.s.URI)
	}
}

func (st serviceStep) fieldList() Fields { return Fields{st.nameField()} }

func (st serviceStep) nameField() Field {
	return Field{
		Key:  NameKey,
		Kind: rep.KindString,
		Assign: func(v rep.Value) bool {
			st.s.Name, _ = v.AsString()
			return true
		},
		Current: func() (rep.Value, bool) {
			return rep.String(st.s.Name), st.s.Name != ""
		},
	}
}

// String formats the service fields.
func (s Service) String() string {
	return fmt.Sprintf("name: %s, uri: %s", s.Name, s.URI)
}

// WriteParcel writes name then uri.
func (s *Service) WriteParcel(w *parcel.Writer) {
	w.WriteString(s.Name)
	w.WriteString(s.URI)
}

// ReadParcel reads name then uri.
func (s *Service) ReadParcel(r *parcel.Reader) error {
	name, err := r.ReadString()
	if err != nil {
		return fmt.Errorf("name: %w", err)
	}
	uri, err := r.ReadString()
	if err != nil {
		return fmt.Errorf("uri: %w", err)
	}
	s.Name, s.URI = name, uri
	return nil
}
