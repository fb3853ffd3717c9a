package commands

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/mash-protocol/mash-av/pkg/log"
	"github.com/mash-protocol/mash-av/pkg/wire"
)

// BuildOptions describes the model the build command dehydrates.
type BuildOptions struct {
	Resource string
	Name     string
	URI      string

	// Audio attributes.
	Mute   bool
	Volume int32

	// Binary switch attribute.
	Value bool

	// Output is a file for the raw CBOR bytes. Empty prints hex only.
	Output string
}

func (o BuildOptions) apply(res resource) {
	svc := res.base()
	svc.Name = o.Name
	svc.URI = o.URI

	switch r := res.(type) {
	case audioResource:
		r.SetMute(o.Mute)
		r.SetVolume(o.Volume)
	case switchResource:
		r.SetValue(o.Value)
	}
}

// RunBuild dehydrates a model built from opts and prints its CBOR encoding
// as hex.
func RunBuild(env *Env, opts BuildOptions) error {
	res, err := newResource(opts.Resource)
	if err != nil {
		return err
	}
	opts.apply(res)

	r := res.Binder().WithLogger(env.logger(), env.SessionID).Dehydrate()
	data, err := wire.EncodeRepresentation(r)
	if err != nil {
		env.logError(log.DirectionOut, log.LayerWire, "encode", err)
		return fmt.Errorf("encode representation: %w", err)
	}
	env.logBytes(log.DirectionOut, log.LayerWire, res, data)

	if opts.Output != "" {
		if err := os.WriteFile(opts.Output, data, 0o644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}

	fmt.Fprintf(env.Out, "Representation: %s\n", r)
	fmt.Fprintf(env.Out, "CBOR (%d bytes): %s\n", len(data), hex.EncodeToString(data))
	return nil
}
