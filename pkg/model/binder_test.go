package model

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/mash-protocol/mash-av/pkg/log"
	"github.com/mash-protocol/mash-av/pkg/rep"
	"github.com/mash-protocol/mash-av/pkg/rep/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureLogger struct {
	mu     sync.Mutex
	events []log.Event
}

func (c *captureLogger) Log(ev log.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, ev)
}

func TestFieldStatusString(t *testing.T) {
	assert.Equal(t, "SATISFIED", FieldSatisfied.String())
	assert.Equal(t, "MISSING", FieldMissing.String())
	assert.Equal(t, "MISMATCHED", FieldMismatched.String())
	assert.Equal(t, "UNKNOWN", FieldStatus(42).String())
}

func TestResultInitialized(t *testing.T) {
	res := Result{Fields: []FieldResult{
		{Key: "a", Status: FieldSatisfied, Tracked: true},
		{Key: "b", Status: FieldMissing, Tracked: false},
	}}
	assert.True(t, res.Initialized(), "untracked fields do not count")

	res.Fields = append(res.Fields, FieldResult{Key: "c", Status: FieldMismatched, Tracked: true})
	assert.False(t, res.Initialized())
	assert.Equal(t, []string{"a"}, res.Satisfied())
	assert.Equal(t, []string{"c"}, res.Mismatched())
	assert.Empty(t, res.Missing(), "untracked missing keys are not reported")

	assert.True(t, Result{}.Initialized())
}

func TestBinderRunsStepsInOrder(t *testing.T) {
	var order []string
	step := func(name string) Step {
		return Fields{{
			Key:     name,
			Kind:    rep.KindInt,
			Tracked: true,
			Assign: func(rep.Value) bool {
				order = append(order, name)
				return true
			},
			Current: func() (rep.Value, bool) { return rep.Int(1), true },
		}}
	}

	r := rep.New()
	r.Set("second", rep.Int(2))
	r.Set("first", rep.Int(1))

	var committed []bool
	b := NewBinder("test.type", func(v bool) { committed = append(committed, v) }, step("first"), step("second"))

	res, err := b.Hydrate(r)
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, order)
	assert.True(t, res.Initialized())
	assert.Equal(t, []bool{true}, committed)

	out := b.Dehydrate()
	assert.Equal(t, []string{"first", "second"}, out.Keys())
	assert.Equal(t, []string{"test.type"}, out.ResourceTypes())
}

func TestBinderNilCommit(t *testing.T) {
	b := NewBinder("", nil, Fields{})
	_, err := b.Hydrate(rep.New())
	require.NoError(t, err)
	assert.Nil(t, b.Dehydrate().ResourceTypes())
}

func TestBinderAbortsOnContainerError(t *testing.T) {
	boom := errors.New("boom")

	c := mocks.NewMockContainer(t)
	c.EXPECT().Has("a").Return(true)
	c.EXPECT().Get("a").Return(rep.Value{}, boom)

	reached := false
	b := NewBinder("", nil,
		Fields{{Key: "a", Kind: rep.KindBool, Tracked: true, Assign: func(rep.Value) bool { return true }}},
		Fields{{Key: "b", Kind: rep.KindBool, Tracked: true, Assign: func(rep.Value) bool { reached = true; return true }}},
	)

	_, err := b.Hydrate(c)
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, err, ErrContainerAccess)
	assert.False(t, reached, "later steps must not run")
}

func TestBinderLogsHydrate(t *testing.T) {
	logger := &captureLogger{}
	fixed := time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)

	a := NewAudio()
	r := rep.New()
	r.SetURI("/ocf/audio/1")
	r.Set(MuteKey, rep.String("yes"))

	b := a.Binder().WithLogger(logger, "session-1")
	b.now = func() time.Time { return fixed }

	_, err := b.Hydrate(r)
	require.NoError(t, err)

	require.Len(t, logger.events, 1)
	ev := logger.events[0]
	assert.Equal(t, fixed, ev.Timestamp)
	assert.Equal(t, "session-1", ev.SessionID)
	assert.Equal(t, log.DirectionIn, ev.Direction)
	assert.Equal(t, log.LayerBinding, ev.Layer)
	assert.Equal(t, log.CategoryBinding, ev.Category)
	assert.Equal(t, "/ocf/audio/1", ev.ResourceURI)
	assert.Equal(t, OICTypeAudio, ev.ResourceType)
	require.NotNil(t, ev.Binding)
	assert.Equal(t, []string{VolumeKey}, ev.Binding.Missing)
	assert.Equal(t, []string{MuteKey}, ev.Binding.Mismatched)
	assert.False(t, ev.Binding.Initialized)
}

func TestBinderLogsDehydrate(t *testing.T) {
	logger := &captureLogger{}

	a := NewAudio()
	a.Name = "den"
	a.SetVolume(12)

	a.Binder().WithLogger(logger, "s").Dehydrate()

	require.Len(t, logger.events, 1)
	ev := logger.events[0]
	assert.Equal(t, log.DirectionOut, ev.Direction)
	assert.Equal(t, map[string]any{NameKey: "den", MuteKey: false, VolumeKey: int64(12)}, ev.Binding.Attributes)
}

func TestBinderLogsContainerError(t *testing.T) {
	logger := &captureLogger{}

	c := mocks.NewMockContainer(t)
	c.EXPECT().Has(NameKey).Return(true)
	c.EXPECT().Get(NameKey).Return(rep.Value{}, &rep.AccessError{Key: NameKey, Err: rep.ErrMalformed})

	_, err := NewAudio().Binder().WithLogger(logger, "s").Hydrate(c)
	require.Error(t, err)

	require.Len(t, logger.events, 1)
	ev := logger.events[0]
	assert.Equal(t, log.CategoryError, ev.Category)
	require.NotNil(t, ev.Error)
	assert.Equal(t, NameKey, ev.Error.Key)
	assert.Equal(t, "hydrate", ev.Error.Context)
}

func TestBinderWithNilLogger(t *testing.T) {
	b := NewAudio().Binder().WithLogger(nil, "")
	_, err := b.Hydrate(rep.New())
	assert.NoError(t, err)
}
