package race

import "github.com/golangdaddy/pixelrace/pkg/physics"

// Key is a driving control, independent of the keyboard layout
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyLights
)

// InputKind tells which fields of an InputEvent are set
type InputKind int

const (
	KeyPress InputKind = iota
	KeyRelease
	JoyAxis
)

// Joystick axes the race listens to. Every other axis is ignored.
const (
	AxisVertical   = 1
	AxisHorizontal = 3

	// AxisMax is the raw value of a fully deflected stick
	AxisMax = 32767
)

// InputEvent is one normalized event from the platform
type InputEvent struct {
	Kind  InputKind
	Key   Key // KeyPress and KeyRelease
	Axis  int // JoyAxis
	Value int // JoyAxis, in [-32767, 32767]
}

func Press(k Key) InputEvent   { return InputEvent{Kind: KeyPress, Key: k} }
func Release(k Key) InputEvent { return InputEvent{Kind: KeyRelease, Key: k} }

func Stick(axis, value int) InputEvent {
	return InputEvent{Kind: JoyAxis, Axis: axis, Value: value}
}

// controls holds the held keys and the resulting axes
type controls struct {
	held   [KeyLights]bool
	axes   physics.Axes
	repeat bool

	// lightsDown is set by a lights press seen since the last reset
	lightsDown bool
}

func (c *controls) reset() {
	c.held = [KeyLights]bool{}
	c.axes = physics.Axes{}
	c.lightsDown = false
}

func (c *controls) fromKeys() {
	c.axes.Throttle = b2f(c.held[KeyUp]) - b2f(c.held[KeyDown])
	c.axes.Steer = b2f(c.held[KeyRight]) - b2f(c.held[KeyLeft])
}

// press returns false when the key was already down and repeats are off
func (c *controls) press(k Key) bool {
	if k < 0 || k >= KeyLights {
		return false
	}
	if c.held[k] && !c.repeat {
		return false
	}
	c.held[k] = true
	c.fromKeys()
	return true
}

func (c *controls) release(k Key) bool {
	if k < 0 || k >= KeyLights {
		return false
	}
	c.held[k] = false
	c.fromKeys()
	return true
}

func (c *controls) stick(axis, value int) bool {
	v := clamp(float64(value)/AxisMax, -1, 1)
	switch axis {
	case AxisVertical:
		// pushing the stick forward reads negative
		c.axes.Throttle = -v
	case AxisHorizontal:
		c.axes.Steer = v
	default:
		return false
	}
	return true
}

func b2f(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
