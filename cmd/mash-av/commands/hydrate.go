package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/mash-protocol/mash-av/pkg/log"
	"github.com/mash-protocol/mash-av/pkg/model"
	"github.com/mash-protocol/mash-av/pkg/wire"
)

// RunHydrate decodes a CBOR representation, hydrates the matching model and
// prints the model together with the binding result.
//
// Missing or mistyped attributes are reported, not returned as errors. A
// malformed attribute value aborts the hydration and is returned.
func RunHydrate(env *Env, data []byte) error {
	res, _, err := hydrate(env, data)
	if res != nil {
		fmt.Fprintf(env.Out, "Model: %s\n", res)
	}
	return err
}

// hydrate runs the decode and bind steps shared by hydrate and parcel encode.
func hydrate(env *Env, data []byte) (resource, model.Result, error) {
	p, err := wire.DecodePayload(data)
	if err != nil {
		env.logError(log.DirectionIn, log.LayerWire, "decode", err)
		return nil, model.Result{}, err
	}

	res, err := resourceFor(p.ResourceTypes(), p.URI())
	if err != nil {
		return nil, model.Result{}, err
	}
	env.logBytes(log.DirectionIn, log.LayerWire, res, data)

	result, err := res.Binder().WithLogger(env.logger(), env.SessionID).Hydrate(p)
	printResult(env.Out, res, result)
	if err != nil {
		return res, result, fmt.Errorf("hydrate: %w", err)
	}
	return res, result, nil
}

func printResult(w io.Writer, res resource, result model.Result) {
	fmt.Fprintf(w, "Resource: %s\n", res.Binder().ResourceType())
	fmt.Fprintf(w, "Initialized: %t\n", res.IsInitialized())
	if missing := result.Missing(); len(missing) > 0 {
		fmt.Fprintf(w, "Missing: %s\n", strings.Join(missing, ", "))
	}
	if mismatched := result.Mismatched(); len(mismatched) > 0 {
		fmt.Fprintf(w, "Mismatched: %s\n", strings.Join(mismatched, ", "))
	}
}
