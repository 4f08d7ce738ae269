package input

// MaxKeys bounds the key table. Codes at or above it are ignored.
const MaxKeys = 1024

// State holds the pressed keys and the last cursor sample.
// It is written by window callbacks and read once per frame.
type State struct {
	keys [MaxKeys]bool

	lastX      float64
	lastY      float64
	firstMouse bool
}

// NewState creates an input state with the cursor parked at (x, y),
// usually the centre of the window.
func NewState(x, y float64) *State {
	return &State{
		lastX:      x,
		lastY:      y,
		firstMouse: true,
	}
}

// SetKey records a key event. Repeat events leave the table unchanged.
func (s *State) SetKey(key Key, action Action) {
	if key < 0 || key >= MaxKeys {
		return
	}

	switch action {
	case Press:
		s.keys[key] = true
	case Release:
		s.keys[key] = false
	}
}

// Pressed reports whether key is currently held down.
func (s *State) Pressed(key Key) bool {
	if key < 0 || key >= MaxKeys {
		return false
	}
	return s.keys[key]
}

// ReleaseAll clears every key.
func (s *State) ReleaseAll() {
	s.keys = [MaxKeys]bool{}
}

// CursorDelta returns the cursor offset since the previous sample.
// The first sample after NewState or ResetMouse only records the position,
// so a freshly captured cursor does not make the view jump.
func (s *State) CursorDelta(xpos, ypos float64) (xoffset, yoffset float32) {
	if s.firstMouse {
		s.lastX = xpos
		s.lastY = ypos
		s.firstMouse = false
		return 0, 0
	}

	xoffset = float32(xpos - s.lastX)
	yoffset = float32(s.lastY - ypos) // Reversed: y ranges bottom to top

	s.lastX = xpos
	s.lastY = ypos

	return xoffset, yoffset
}

// LastCursor returns the most recent cursor sample.
func (s *State) LastCursor() (x, y float64) {
	return s.lastX, s.lastY
}

// ResetMouse re-arms first-sample suppression.
func (s *State) ResetMouse() {
	s.firstMouse = true
}
