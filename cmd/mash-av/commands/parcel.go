package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/mash-protocol/mash-av/pkg/log"
	"github.com/mash-protocol/mash-av/pkg/parcel"
)

// RunParcelEncode hydrates a model from a CBOR representation and prints the
// model's compact parcel encoding as hex. The initialized flag in the parcel
// reflects the hydration result.
func RunParcelEncode(env *Env, data []byte) error {
	res, _, err := hydrate(env, data)
	if err != nil {
		return err
	}

	out := parcel.Marshal(res)
	env.logBytes(log.DirectionOut, log.LayerParcel, res, out)

	fmt.Fprintf(env.Out, "Parcel (%d bytes): %s\n", len(out), hex.EncodeToString(out))
	return nil
}

// RunParcelDecode decodes a compact parcel into the named resource model and
// prints it.
func RunParcelDecode(env *Env, resourceName string, data []byte) error {
	res, err := newResource(resourceName)
	if err != nil {
		return err
	}

	if err := parcel.Unmarshal(data, res); err != nil {
		env.logError(log.DirectionIn, log.LayerParcel, "decode", err)
		return fmt.Errorf("decode parcel: %w", err)
	}
	env.logBytes(log.DirectionIn, log.LayerParcel, res, data)

	fmt.Fprintf(env.Out, "Model: %s\n", res)
	return nil
}
