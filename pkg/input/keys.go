// Package input tracks keyboard and cursor state between frames.
// Key and action values match the GLFW enumeration so that window callbacks
// can be forwarded without translation.
package input

// Key is a keyboard key code.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
type Key int

// Key constants for keyboard input
const (
	KeySpace  Key = 32
	KeyA      Key = 65
	KeyC      Key = 67
	KeyD      Key = 68
	KeyS      Key = 83
	KeyW      Key = 87
	KeyEscape Key = 256
	KeyRight  Key = 262
	KeyLeft   Key = 263
	KeyDown   Key = 264
	KeyUp     Key = 265

	// KeyUnknown is reported by GLFW for keys it cannot map.
	KeyUnknown Key = -1
)

// Action is the state change reported with a key event.
type Action int

// Action constants for key states
const (
	Release Action = 0
	Press   Action = 1
	Repeat  Action = 2
)

func (a Action) String() string {
	switch a {
	case Release:
		return "release"
	case Press:
		return "press"
	case Repeat:
		return "repeat"
	default:
		return "unknown"
	}
}
