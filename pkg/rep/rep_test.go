package rep

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindNull, "null"},
		{KindBool, "bool"},
		{KindInt, "int"},
		{KindDouble, "double"},
		{KindString, "string"},
		{KindBytes, "bytes"},
		{KindArray, "array"},
		{KindObject, "object"},
		{Kind(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.String())
		})
	}
}

func TestValueAccessors(t *testing.T) {
	t.Run("Bool", func(t *testing.T) {
		b, ok := Bool(true).AsBool()
		assert.True(t, ok)
		assert.True(t, b)

		_, ok = Int(1).AsBool()
		assert.False(t, ok)
	})

	t.Run("Int", func(t *testing.T) {
		n, ok := Int(-7).AsInt()
		assert.True(t, ok)
		assert.Equal(t, int64(-7), n)

		_, ok = Double(1).AsInt()
		assert.False(t, ok)
	})

	t.Run("Int32Range", func(t *testing.T) {
		n, ok := Int(math.MinInt32).AsInt32()
		assert.True(t, ok)
		assert.Equal(t, int32(math.MinInt32), n)

		_, ok = Int(math.MaxInt32 + 1).AsInt32()
		assert.False(t, ok)
	})

	t.Run("String", func(t *testing.T) {
		s, ok := String("x").AsString()
		assert.True(t, ok)
		assert.Equal(t, "x", s)
	})

	t.Run("ZeroIsNull", func(t *testing.T) {
		var v Value
		assert.True(t, v.IsNull())
		assert.Equal(t, KindNull, v.Kind())
	})
}

func TestValueEqual(t *testing.T) {
	nested := New()
	nested.Set("a", Int(1))

	tests := []struct {
		name  string
		a, b  Value
		equal bool
	}{
		{"same bool", Bool(true), Bool(true), true},
		{"different bool", Bool(true), Bool(false), false},
		{"int vs double", Int(1), Double(1), false},
		{"bytes", Bytes([]byte{1, 2}), Bytes([]byte{1, 2}), true},
		{"array", Array(Int(1), String("x")), Array(Int(1), String("x")), true},
		{"array length", Array(Int(1)), Array(Int(1), Int(2)), false},
		{"object", Object(nested), Object(nested), true},
		{"null", Null(), Null(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.equal, tt.a.Equal(tt.b))
		})
	}
}

func TestFromInterface(t *testing.T) {
	t.Run("Integers", func(t *testing.T) {
		for _, x := range []any{int(5), int8(5), int16(5), int32(5), int64(5), uint8(5), uint16(5), uint32(5), uint64(5)} {
			v, err := FromInterface(x)
			require.NoError(t, err)
			n, ok := v.AsInt()
			assert.True(t, ok, "%T", x)
			assert.Equal(t, int64(5), n)
		}
	})

	t.Run("Uint64Overflow", func(t *testing.T) {
		_, err := FromInterface(uint64(math.MaxUint64))
		assert.ErrorIs(t, err, ErrMalformed)
	})

	t.Run("Nested", func(t *testing.T) {
		v, err := FromInterface(map[string]any{
			"list": []any{true, "x"},
		})
		require.NoError(t, err)
		obj, ok := v.AsObject()
		require.True(t, ok)
		list, err := obj.Get("list")
		require.NoError(t, err)
		assert.True(t, list.Equal(Array(Bool(true), String("x"))))
	})

	t.Run("Unsupported", func(t *testing.T) {
		_, err := FromInterface(struct{}{})
		assert.ErrorIs(t, err, ErrMalformed)
	})
}

func TestRepresentation(t *testing.T) {
	r := New()
	r.SetURI("/ocf/audio/1")
	r.Set("volume", Int(10))
	r.Set("mute", Bool(false))
	r.Set("volume", Int(20))

	t.Run("InsertionOrder", func(t *testing.T) {
		assert.Equal(t, []string{"volume", "mute"}, r.Keys())
		assert.Equal(t, 2, r.Len())
	})

	t.Run("Get", func(t *testing.T) {
		v, err := r.Get("volume")
		require.NoError(t, err)
		assert.True(t, v.Equal(Int(20)))
	})

	t.Run("GetMissing", func(t *testing.T) {
		_, err := r.Get("nope")
		var accessErr *AccessError
		require.True(t, errors.As(err, &accessErr))
		assert.Equal(t, "nope", accessErr.Key)
		assert.ErrorIs(t, err, ErrAttributeNotFound)
	})

	t.Run("Map", func(t *testing.T) {
		assert.Equal(t, map[string]any{"volume": int64(20), "mute": false}, r.Map())
	})

	t.Run("String", func(t *testing.T) {
		assert.Equal(t, "{volume: 20, mute: false}", r.String())
	})

	t.Run("Delete", func(t *testing.T) {
		c := New()
		c.Set("a", Int(1))
		c.Set("b", Int(2))
		c.Delete("a")
		c.Delete("missing")
		assert.False(t, c.Has("a"))
		assert.Equal(t, []string{"b"}, c.Keys())
	})
}

func TestRepresentationEqual(t *testing.T) {
	a := New()
	a.SetURI("/x")
	a.SetResourceTypes("oic.r.audio")
	a.Set("mute", Bool(true))
	a.Set("volume", Int(3))

	b := New()
	b.SetURI("/x")
	b.SetResourceTypes("oic.r.audio")
	b.Set("volume", Int(3))
	b.Set("mute", Bool(true))

	assert.True(t, a.Equal(b), "order must not matter")

	b.SetURI("/y")
	assert.False(t, a.Equal(b))

	var nilRep *Representation
	assert.True(t, nilRep.Equal(nil))
	assert.False(t, a.Equal(nil))
}

func TestFromMapRejectsBadValue(t *testing.T) {
	_, err := FromMap(map[string]any{"bad": make(chan int)})
	var accessErr *AccessError
	require.True(t, errors.As(err, &accessErr))
	assert.Equal(t, "bad", accessErr.Key)
}
