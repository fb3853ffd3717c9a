package wire

import (
	"errors"
	"math"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/mash-protocol/mash-av/pkg/rep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func audioRep() *rep.Representation {
	r := rep.New()
	r.SetURI("/ocf/audio/1")
	r.SetResourceTypes("oic.r.audio")
	r.SetInterfaces("oic.if.a", "oic.if.baseline")
	r.Set("n", rep.String("Living room"))
	r.Set("mute", rep.Bool(true))
	r.Set("volume", rep.Int(-1))
	return r
}

func TestRepresentationRoundTrip(t *testing.T) {
	nested := rep.New()
	nested.Set("channel", rep.String("Master"))

	tests := []struct {
		name string
		rep  *rep.Representation
	}{
		{"audio", audioRep()},
		{"empty", rep.New()},
		{
			name: "all kinds",
			rep: func() *rep.Representation {
				r := rep.New()
				r.Set("null", rep.Null())
				r.Set("double", rep.Double(0.5))
				r.Set("bytes", rep.Bytes([]byte{0xDE, 0xAD}))
				r.Set("array", rep.Array(rep.Int(1), rep.String("two")))
				r.Set("object", rep.Object(nested))
				r.Set("max", rep.Int(math.MaxInt64))
				r.Set("min", rep.Int(math.MinInt64))
				return r
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := EncodeRepresentation(tt.rep)
			require.NoError(t, err)

			decoded, err := DecodeRepresentation(data)
			require.NoError(t, err)

			assert.True(t, tt.rep.Equal(decoded), "got %s, want %s", decoded, tt.rep)
		})
	}
}

func TestEncodeDeterministic(t *testing.T) {
	a := rep.New()
	a.Set("volume", rep.Int(5))
	a.Set("mute", rep.Bool(false))

	b := rep.New()
	b.Set("mute", rep.Bool(false))
	b.Set("volume", rep.Int(5))

	da, err := EncodeRepresentation(a)
	require.NoError(t, err)
	db, err := EncodeRepresentation(b)
	require.NoError(t, err)

	assert.Equal(t, da, db)
}

func TestEncodeNilRepresentation(t *testing.T) {
	_, err := EncodeRepresentation(nil)
	assert.ErrorIs(t, err, ErrInvalidPayload)
}

func TestDecodePayloadInvalid(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"not a map", mustMarshal(t, 42)},
		{"rep not a map", mustMarshal(t, map[string]any{"rep": "oops"})},
		{"garbage", []byte{0xFF, 0xFF}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodePayload(tt.data)
			assert.ErrorIs(t, err, ErrInvalidPayload)
		})
	}
}

func TestPayloadLazyDecoding(t *testing.T) {
	// A bignum tag cannot be represented as a rep.Value.
	data := mustMarshal(t, map[string]any{
		"href": "/ocf/audio/7",
		"rep": map[string]any{
			"mute":   true,
			"volume": cbor.Tag{Number: 2, Content: []byte{0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}},
		},
	})

	p, err := DecodePayload(data)
	require.NoError(t, err)
	assert.Equal(t, "/ocf/audio/7", p.URI())
	assert.Equal(t, []string{"mute", "volume"}, p.Keys())

	mute, err := p.Get("mute")
	require.NoError(t, err)
	assert.True(t, mute.Equal(rep.Bool(true)))

	assert.True(t, p.Has("volume"))
	_, err = p.Get("volume")
	var accessErr *rep.AccessError
	require.True(t, errors.As(err, &accessErr))
	assert.Equal(t, "volume", accessErr.Key)
	assert.ErrorIs(t, err, rep.ErrMalformed)

	_, err = Materialize(p)
	assert.ErrorIs(t, err, rep.ErrMalformed)
}

func TestPayloadRejectsUint64Overflow(t *testing.T) {
	data := mustMarshal(t, map[string]any{
		"rep": map[string]any{"volume": uint64(math.MaxUint64)},
	})

	p, err := DecodePayload(data)
	require.NoError(t, err)

	_, err = p.Get("volume")
	assert.ErrorIs(t, err, rep.ErrMalformed)
}

func TestPayloadRejectsNonTextMapKeys(t *testing.T) {
	data := mustMarshal(t, map[string]any{
		"rep": map[string]any{"object": map[int]any{1: true}},
	})

	p, err := DecodePayload(data)
	require.NoError(t, err)

	_, err = p.Get("object")
	assert.ErrorIs(t, err, rep.ErrMalformed)
}

func TestPayloadSetOverridesRaw(t *testing.T) {
	data, err := EncodeRepresentation(audioRep())
	require.NoError(t, err)

	p, err := DecodePayload(data)
	require.NoError(t, err)

	p.Set("volume", rep.Int(42))
	p.Set("extra", rep.String("x"))

	v, err := p.Get("volume")
	require.NoError(t, err)
	assert.True(t, v.Equal(rep.Int(42)))
	assert.True(t, p.Has("extra"))
	assert.False(t, p.Has("missing"))

	_, err = p.Get("missing")
	assert.ErrorIs(t, err, rep.ErrAttributeNotFound)

	assert.Equal(t, []string{"extra", "mute", "n", "volume"}, p.Keys())
}

func TestValueRoundTrip(t *testing.T) {
	values := []rep.Value{
		rep.Bool(false),
		rep.Int(0),
		rep.Int(-100),
		rep.Double(math.Pi),
		rep.String(""),
		rep.Null(),
	}

	for _, v := range values {
		data, err := EncodeValue(v)
		require.NoError(t, err)
		got, err := DecodeValue(data)
		require.NoError(t, err)
		assert.True(t, v.Equal(got), "got %s, want %s", got, v)
	}
}

func mustMarshal(t *testing.T, v any) []byte {
	t.Helper()
	data, err := Marshal(v)
	require.NoError(t, err)
	return data
}
