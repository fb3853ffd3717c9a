// Package commands implements the mash-av CLI commands.
package commands

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mash-protocol/mash-av/pkg/log"
	"github.com/mash-protocol/mash-av/pkg/model"
	"github.com/mash-protocol/mash-av/pkg/parcel"
)

// ErrUnknownResource is returned for a resource name the CLI cannot build.
var ErrUnknownResource = errors.New("unknown resource")

// Env is the shared runtime state of a command invocation.
type Env struct {
	// Out receives command output.
	Out io.Writer

	// Logger receives binding and parcel events. Nil disables event logging.
	Logger log.Logger

	// SessionID tags every event of this invocation.
	SessionID string

	// Now returns the event timestamp. Nil uses time.Now.
	Now func() time.Time
}

func (e *Env) logger() log.Logger {
	if e.Logger == nil {
		return log.NoopLogger{}
	}
	return e.Logger
}

func (e *Env) now() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}

// logBytes records an encoded stream at the given layer.
func (e *Env) logBytes(dir log.Direction, layer log.Layer, res resource, data []byte) {
	e.logger().Log(log.Event{
		Timestamp:    e.now(),
		SessionID:    e.SessionID,
		Direction:    dir,
		Layer:        layer,
		Category:     log.CategoryParcel,
		ResourceURI:  res.base().URI,
		ResourceType: res.Binder().ResourceType(),
		Parcel:       log.NewParcelEvent(data),
	})
}

func (e *Env) logError(dir log.Direction, layer log.Layer, context string, err error) {
	e.logger().Log(log.Event{
		Timestamp: e.now(),
		SessionID: e.SessionID,
		Direction: dir,
		Layer:     layer,
		Category:  log.CategoryError,
		Error: &log.ErrorEventData{
			Layer:   layer,
			Message: err.Error(),
			Context: context,
		},
	})
}

// resource is the part of a typed model the commands operate on.
type resource interface {
	parcel.Parcelable
	fmt.Stringer

	Binder() *model.Binder
	IsInitialized() bool
	base() *model.Service
}

type audioResource struct{ *model.Audio }

func (a audioResource) base() *model.Service { return &a.Service }

type switchResource struct{ *model.BinarySwitch }

func (s switchResource) base() *model.Service { return &s.Service }

// Resource names accepted by the -resource flag.
const (
	ResourceAudio  = "audio"
	ResourceSwitch = "switch"
)

func newResource(name string) (resource, error) {
	switch strings.ToLower(name) {
	case "", ResourceAudio, model.OICTypeAudio:
		return audioResource{model.NewAudio()}, nil
	case ResourceSwitch, model.OICTypeBinarySwitch:
		return switchResource{model.NewBinarySwitch()}, nil
	default:
		return nil, fmt.Errorf("%w: %s (must be audio or switch)", ErrUnknownResource, name)
	}
}

// resourceFor picks the model for a decoded payload: the first resource type
// tag wins, then the URI prefix, then audio.
func resourceFor(resourceTypes []string, uri string) (resource, error) {
	for _, rt := range resourceTypes {
		if _, ok := model.ResourceTypeForTag(rt); ok {
			return newResource(rt)
		}
	}
	if rt, ok := model.ResourceTypeForURI(uri); ok {
		return newResource(rt.Tag)
	}
	return newResource(ResourceAudio)
}

// ReadInput returns the bytes named by arg: the contents of the file at arg
// if one exists, otherwise arg decoded as hex. Whitespace in hex is ignored.
func ReadInput(arg string) ([]byte, error) {
	if arg == "" {
		return nil, errors.New("input required")
	}
	if data, err := os.ReadFile(arg); err == nil {
		return data, nil
	}
	return DecodeHex(arg)
}

// DecodeHex decodes s as hex, ignoring whitespace and an optional 0x prefix.
func DecodeHex(s string) ([]byte, error) {
	s = strings.Join(strings.Fields(s), "")
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex input: %w", err)
	}
	return data, nil
}
