package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestState_SetKey(t *testing.T) {
	s := NewState(0, 0)

	s.SetKey(KeyW, Press)
	assert.True(t, s.Pressed(KeyW))

	// Repeat keeps the key held
	s.SetKey(KeyW, Repeat)
	assert.True(t, s.Pressed(KeyW))

	s.SetKey(KeyW, Release)
	assert.False(t, s.Pressed(KeyW))
}

func TestState_OutOfRangeKeysIgnored(t *testing.T) {
	s := NewState(0, 0)

	assert.NotPanics(t, func() {
		s.SetKey(KeyUnknown, Press)
		s.SetKey(MaxKeys, Press)
		s.SetKey(MaxKeys+100, Press)
	})
	assert.False(t, s.Pressed(KeyUnknown))
	assert.False(t, s.Pressed(MaxKeys))

	s.SetKey(MaxKeys-1, Press)
	assert.True(t, s.Pressed(MaxKeys-1))
}

func TestState_ReleaseAll(t *testing.T) {
	s := NewState(0, 0)
	for _, k := range []Key{KeyW, KeyA, KeyUp, KeyLeft} {
		s.SetKey(k, Press)
	}

	s.ReleaseAll()

	for _, k := range []Key{KeyW, KeyA, KeyUp, KeyLeft} {
		assert.False(t, s.Pressed(k), "key %d", k)
	}
}

func TestState_CursorDeltaSuppressesFirstSample(t *testing.T) {
	s := NewState(400, 300)

	dx, dy := s.CursorDelta(1000, 50)
	assert.Zero(t, dx)
	assert.Zero(t, dy)

	dx, dy = s.CursorDelta(1010, 40)
	assert.InDelta(t, 10, dx, 1e-6)
	assert.InDelta(t, 10, dy, 1e-6, "y offset is reversed")

	x, y := s.LastCursor()
	assert.Equal(t, 1010.0, x)
	assert.Equal(t, 40.0, y)
}

func TestState_ResetMouse(t *testing.T) {
	s := NewState(0, 0)
	s.CursorDelta(10, 10)
	s.CursorDelta(20, 20)

	s.ResetMouse()

	dx, dy := s.CursorDelta(500, 500)
	assert.Zero(t, dx)
	assert.Zero(t, dy)

	dx, dy = s.CursorDelta(495, 510)
	assert.InDelta(t, -5, dx, 1e-6)
	assert.InDelta(t, -10, dy, 1e-6)
}

func TestAction_String(t *testing.T) {
	assert.Equal(t, "press", Press.String())
	assert.Equal(t, "release", Release.String())
	assert.Equal(t, "repeat", Repeat.String())
	assert.Equal(t, "unknown", Action(9).String())
}
