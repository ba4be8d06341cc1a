package game

import (
	"math"

	"github.com/golangdaddy/pixelrace/pkg/race"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var driveKeys = map[ebiten.Key]race.Key{
	ebiten.KeyArrowUp:    race.KeyUp,
	ebiten.KeyArrowDown:  race.KeyDown,
	ebiten.KeyArrowLeft:  race.KeyLeft,
	ebiten.KeyArrowRight: race.KeyRight,
	ebiten.KeySpace:      race.KeyLights,
}

// Input turns ebiten keyboard and gamepad state into race events. Gamepad
// axes only produce an event when their value changes.
type Input struct {
	keys     []ebiten.Key
	gamepads []ebiten.GamepadID
	axes     map[ebiten.GamepadID][2]int
}

func NewInput() *Input {
	return &Input{axes: make(map[ebiten.GamepadID][2]int)}
}

// Poll returns the events since the previous call, presses before releases
func (in *Input) Poll() []race.InputEvent {
	var events []race.InputEvent

	in.keys = inpututil.AppendJustPressedKeys(in.keys[:0])
	for _, k := range in.keys {
		if rk, ok := driveKeys[k]; ok {
			events = append(events, race.Press(rk))
		}
	}
	in.keys = inpututil.AppendJustReleasedKeys(in.keys[:0])
	for _, k := range in.keys {
		if rk, ok := driveKeys[k]; ok {
			events = append(events, race.Release(rk))
		}
	}

	in.gamepads = ebiten.AppendGamepadIDs(in.gamepads[:0])
	for _, id := range in.gamepads {
		last := in.axes[id]
		for i, axis := range [2]int{race.AxisVertical, race.AxisHorizontal} {
			if axis >= ebiten.GamepadAxisCount(id) {
				continue
			}
			v := int(math.Round(ebiten.GamepadAxisValue(id, axis) * race.AxisMax))
			if v != last[i] {
				last[i] = v
				events = append(events, race.Stick(axis, v))
			}
		}
		in.axes[id] = last
	}
	return events
}

// Reset forgets the axis values so the next Poll reports every stick
func (in *Input) Reset() {
	clear(in.axes)
}
