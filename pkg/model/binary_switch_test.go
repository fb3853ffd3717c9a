package model

import (
	"testing"

	"github.com/mash-protocol/mash-av/pkg/parcel"
	"github.com/mash-protocol/mash-av/pkg/rep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinarySwitchBinding(t *testing.T) {
	src := NewBinarySwitch()
	src.Name = "lamp"
	src.SetValue(true)

	r := src.Dehydrate()
	assert.Equal(t, []string{OICTypeBinarySwitch}, r.ResourceTypes())

	dst := NewBinarySwitch()
	res, err := dst.Hydrate(r)
	require.NoError(t, err)
	assert.True(t, res.Initialized())
	assert.True(t, dst.Value())
	assert.Equal(t, "lamp", dst.Name)
	assert.True(t, dst.IsInitialized())

	bad := rep.New()
	bad.Set(ValueKey, rep.Int(1))
	_, err = dst.Hydrate(bad)
	require.NoError(t, err)
	assert.True(t, dst.Value())
	assert.False(t, dst.IsInitialized())
}

func TestBinarySwitchParcel(t *testing.T) {
	s := NewBinarySwitch()
	s.Service = Service{Name: "lamp", URI: "/ocf/switch/1"}
	s.SetValue(true)
	s.initialized = true

	got := NewBinarySwitch()
	require.NoError(t, parcel.Unmarshal(parcel.Marshal(s), got))
	assert.Equal(t, s, got)

	data := parcel.Marshal(s)
	err := parcel.Unmarshal(data[:len(data)-1], NewBinarySwitch())
	assert.ErrorIs(t, err, parcel.ErrTruncated)
}

func TestBinarySwitchString(t *testing.T) {
	s := NewBinarySwitch()
	s.URI = "/upnp/switch/1"
	assert.Equal(t, "[name: , uri: /upnp/switch/1, initialized: false, value: false]", s.String())
}

func TestResourceTypeLookup(t *testing.T) {
	tests := []struct {
		uri    string
		tag    string
		prefix string
		found  bool
	}{
		{"/ocf/audio/1", OICTypeAudio, OCFURIPrefixAudio, true},
		{"/upnp/audio/RenderingControl/uuid-1", OICTypeAudio, UPnPURIPrefixAudioRenderingControl, true},
		{"/upnp/audio/uuid-1", OICTypeAudio, UPnPURIPrefixAudio, true},
		{"/ocf/switch/3", OICTypeBinarySwitch, OCFURIPrefixBinarySwitch, true},
		{"/oic/d", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			rt, ok := ResourceTypeForURI(tt.uri)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.tag, rt.Tag)
			assert.Equal(t, tt.prefix, rt.PrefixFor(tt.uri))
		})
	}

	rt, ok := ResourceTypeForTag(OICTypeBinarySwitch)
	assert.True(t, ok)
	assert.True(t, rt.MatchesURI("/upnp/switch/x"))

	_, ok = ResourceTypeForTag("oic.r.unknown")
	assert.False(t, ok)
}
