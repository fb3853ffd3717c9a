package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/mash-protocol/mash-av/pkg/log"
	"github.com/mash-protocol/mash-av/pkg/rep"
)

// Binder errors.
var (
	ErrContainerAccess = errors.New("container access failed")
)

// FieldStatus is the outcome of binding one field during hydration.
type FieldStatus uint8

const (
	// FieldSatisfied means the attribute was present with the expected kind.
	FieldSatisfied FieldStatus = iota
	// FieldMissing means the attribute was absent.
	FieldMissing
	// FieldMismatched means the attribute had an unexpected kind or range.
	FieldMismatched
)

// String returns the status name.
func (s FieldStatus) String() string {
	switch s {
	case FieldSatisfied:
		return "SATISFIED"
	case FieldMissing:
		return "MISSING"
	case FieldMismatched:
		return "MISMATCHED"
	default:
		return "UNKNOWN"
	}
}

// FieldResult records how one field was bound.
type FieldResult struct {
	Key     string
	Kind    rep.Kind
	Status  FieldStatus
	Tracked bool
}

// Result is the outcome of one hydration.
type Result struct {
	Fields []FieldResult
}

// Initialized returns true if every tracked field was satisfied.
func (r Result) Initialized() bool {
	for _, f := range r.Fields {
		if f.Tracked && f.Status != FieldSatisfied {
			return false
		}
	}
	return true
}

// Satisfied returns the tracked keys that were bound.
func (r Result) Satisfied() []string { return r.keys(FieldSatisfied) }

// Missing returns the tracked keys that were absent.
func (r Result) Missing() []string { return r.keys(FieldMissing) }

// Mismatched returns the tracked keys that had the wrong kind.
func (r Result) Mismatched() []string { return r.keys(FieldMismatched) }

func (r Result) keys(status FieldStatus) []string {
	var keys []string
	for _, f := range r.Fields {
		if f.Tracked && f.Status == status {
			keys = append(keys, f.Key)
		}
	}
	return keys
}

// Field binds one attribute key to a model field.
type Field struct {
	// Key is the attribute name in the container.
	Key string

	// Kind is the value kind the field accepts.
	Kind rep.Kind

	// Tracked fields count toward the initialized flag.
	Tracked bool

	// Assign stores v in the model. It is only called with values of Kind
	// and returns false if v does not fit the field.
	Assign func(v rep.Value) bool

	// Current returns the value to dehydrate; ok=false skips the key.
	Current func() (v rep.Value, ok bool)
}

// Step is one stage of a binding pipeline.
type Step interface {
	// Hydrate reads the step's attributes from c and appends one
	// FieldResult per field to res. Errors from c are returned as is.
	Hydrate(c rep.Container, res *Result) error

	// Dehydrate writes the step's attributes to c.
	Dehydrate(c rep.Container)
}

// Fields is a Step that binds a fixed list of fields in order.
type Fields []Field

// Hydrate binds each field from c.
func (fs Fields) Hydrate(c rep.Container, res *Result) error {
	for _, f := range fs {
		fr := FieldResult{Key: f.Key, Kind: f.Kind, Tracked: f.Tracked}

		if !c.Has(f.Key) {
			fr.Status = FieldMissing
			res.Fields = append(res.Fields, fr)
			continue
		}

		v, err := c.Get(f.Key)
		if err != nil {
			return err
		}

		if v.Kind() == f.Kind && f.Assign(v) {
			fr.Status = FieldSatisfied
		} else {
			fr.Status = FieldMismatched
		}
		res.Fields = append(res.Fields, fr)
	}
	return nil
}

// Dehydrate writes each field's current value to c.
func (fs Fields) Dehydrate(c rep.Container) {
	for _, f := range fs {
		if f.Current == nil {
			continue
		}
		if v, ok := f.Current(); ok {
			c.Set(f.Key, v)
		}
	}
}

// fieldLister is implemented by steps whose fields can be listed for event
// snapshots.
type fieldLister interface {
	fieldList() Fields
}

func (fs Fields) fieldList() Fields { return fs }

// Binder runs an ordered pipeline of steps against a container and commits
// the initialized flag to the model.
//
// Binders are cheap and hold pointers into the model they bind; they are not
// safe for concurrent use.
type Binder struct {
	resourceType string
	steps        []Step
	commit       func(initialized bool)

	logger    log.Logger
	sessionID string
	now       func() time.Time
}

// NewBinder creates a binder for a resource of the given type tag. commit
// receives the initialized flag after each successful or failed hydration
// and may be nil.
func NewBinder(resourceType string, commit func(initialized bool), steps ...Step) *Binder {
	return &Binder{
		resourceType: resourceType,
		steps:        steps,
		commit:       commit,
		logger:       log.NoopLogger{},
		now:          time.Now,
	}
}

// WithLogger sets the event logger and session ID and returns b.
func (b *Binder) WithLogger(l log.Logger, sessionID string) *Binder {
	if l == nil {
		l = log.NoopLogger{}
	}
	b.logger = l
	b.sessionID = sessionID
	return b
}

// ResourceType returns the resource type tag.
func (b *Binder) ResourceType() string { return b.resourceType }

// Hydrate populates the model from c.
//
// Missing or mistyped attributes are not errors; they are reported in the
// Result and clear the initialized flag. An error from the container aborts
// the hydration: fields bound by earlier steps keep their new values, the
// initialized flag is cleared, and the error is returned wrapping
// ErrContainerAccess.
func (b *Binder) Hydrate(c rep.Container) (Result, error) {
	var res Result
	for _, s := range b.steps {
		if err := s.Hydrate(c, &res); err != nil {
			b.setInitialized(false)
			b.logError(c, err)
			return res, fmt.Errorf("%w: %w", ErrContainerAccess, err)
		}
	}

	b.setInitialized(res.Initialized())
	b.logHydrate(c, res)
	return res, nil
}

// DehydrateInto writes the model's attributes into c.
func (b *Binder) DehydrateInto(c rep.Container) {
	for _, s := range b.steps {
		s.Dehydrate(c)
	}
	b.logDehydrate(c)
}

// Dehydrate returns a fresh representation of the model, tagged with the
// binder's resource type.
func (b *Binder) Dehydrate() *rep.Representation {
	r := rep.New()
	if b.resourceType != "" {
		r.SetResourceTypes(b.resourceType)
	}
	b.DehydrateInto(r)
	return r
}

func (b *Binder) setInitialized(v bool) {
	if b.commit != nil {
		b.commit(v)
	}
}

func (b *Binder) baseEvent(c rep.Container, dir log.Direction, cat log.Category) log.Event {
	ev := log.Event{
		Timestamp:    b.now(),
		SessionID:    b.sessionID,
		Direction:    dir,
		Layer:        log.LayerBinding,
		Category:     cat,
		ResourceType: b.resourceType,
	}
	if a, ok := c.(rep.Addressed); ok {
		ev.ResourceURI = a.URI()
	}
	return ev
}

func (b *Binder) logHydrate(c rep.Container, res Result) {
	ev := b.baseEvent(c, log.DirectionIn, log.CategoryBinding)
	ev.Binding = &log.BindingEvent{
		Satisfied:   res.Satisfied(),
		Missing:     res.Missing(),
		Mismatched:  res.Mismatched(),
		Initialized: res.Initialized(),
	}
	b.logger.Log(ev)
}

func (b *Binder) logDehydrate(c rep.Container) {
	ev := b.baseEvent(c, log.DirectionOut, log.CategoryBinding)
	attrs := make(map[string]any)
	for _, s := range b.steps {
		fl, ok := s.(fieldLister)
		if !ok {
			continue
		}
		for _, f := range fl.fieldList() {
			if f.Current == nil {
				continue
			}
			if v, ok := f.Current(); ok {
				attrs[f.Key] = v.Interface()
			}
		}
	}
	ev.Binding = &log.BindingEvent{Attributes: attrs}
	b.logger.Log(ev)
}

func (b *Binder) logError(c rep.Container, err error) {
	ev := b.baseEvent(c, log.DirectionIn, log.CategoryError)
	ev.Error = &log.ErrorEventData{
		Layer:   log.LayerBinding,
		Message: err.Error(),
		Context: "hydrate",
	}
	var accessErr *rep.AccessError
	if errors.As(err, &accessErr) {
		ev.Error.Key = accessErr.Key
	}
	b.logger.Log(ev)
}
