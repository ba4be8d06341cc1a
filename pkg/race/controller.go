package race

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"time"

	"github.com/golangdaddy/pixelrace/pkg/physics"
	"github.com/golangdaddy/pixelrace/pkg/sprite"
	"github.com/golangdaddy/pixelrace/pkg/surface"
	"github.com/golangdaddy/pixelrace/pkg/track"
	"github.com/golangdaddy/pixelrace/pkg/vehicle"
)

// Canvas is where a race is drawn, in map pixels
type Canvas interface {
	// DrawCircuit draws the track. refresh is true when img changed since
	// the previous call.
	DrawCircuit(img *image.RGBA, refresh bool)
	// DrawSprite draws img with its top-left corner at x,y
	DrawSprite(img *image.RGBA, x, y int)
	DrawPoint(x, y int, c color.RGBA)
}

// Option configures a Controller
type Option func(*Controller)

func WithAtlas(a *sprite.Atlas) Option      { return func(c *Controller) { c.atlas = a } }
func WithSkin(skin int) Option              { return func(c *Controller) { c.skin = skin } }
func WithLogger(l Logger) Option            { return func(c *Controller) { c.logger = l } }
func WithLoader(l track.Loader) Option      { return func(c *Controller) { c.loader = l } }
func WithTuning(t physics.Tuning) Option    { return func(c *Controller) { c.tuning = t } }
func WithClock(now func() time.Time) Option { return func(c *Controller) { c.now = now } }

// WithTireMarks turns slide marks on or off
func WithTireMarks(on bool) Option { return func(c *Controller) { c.showTires = on } }

// WithKeyRepeat lets repeated key presses through instead of ignoring them
// while the key is held.
func WithKeyRepeat(on bool) Option { return func(c *Controller) { c.controls.repeat = on } }

// WithContours draws height contour lines over the circuit on load
func WithContours(on bool) Option { return func(c *Controller) { c.contours = on } }

// Controller owns one race: the track images, the car and the driver input
type Controller struct {
	atlas  *sprite.Atlas
	skin   int
	logger Logger
	loader track.Loader
	tuning physics.Tuning
	now    func() time.Time

	showTires bool
	contours  bool

	track    track.Track
	loaded   bool
	circuit  *surface.Image
	stepper  *physics.Stepper
	car      *vehicle.Car
	controls controls

	lapStartMS uint32
}

// New creates a controller with no track loaded. A sprite atlas is required.
func New(opts ...Option) (*Controller, error) {
	c := &Controller{
		logger:    nopLogger{},
		loader:    track.DirLoader{Dir: "tracks"},
		tuning:    physics.DefaultTuning(),
		now:       time.Now,
		showTires: true,
		contours:  true,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.atlas == nil || c.atlas.Len() == 0 {
		return nil, errors.New("race: no car sprites")
	}
	if c.logger == nil {
		c.logger = nopLogger{}
	}
	w, h := c.atlas.FrameSize()
	c.car = vehicle.NewCar(float64(w), float64(h))
	return c, nil
}

// StartTrack loads track id and puts the car on its start line. On error the
// previous track stays active.
func (c *Controller) StartTrack(id int) error {
	t, ok := track.Lookup(id)
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownTrack, id)
	}
	circuit, function, err := c.loader.Load(t)
	if err != nil {
		return fmt.Errorf("failed to start track %d: %w", id, err)
	}
	if c.contours {
		surface.DrawContours(circuit, function)
	}
	circuit.MarkDirty()

	c.track = t
	c.circuit = circuit
	c.stepper = physics.NewStepper(c.tuning, circuit, function)
	c.stepper.ShowTires = c.showTires
	c.loaded = true

	c.controls.reset()
	c.car.Reset(float64(t.StartX), float64(t.StartY), t.StartYaw())
	c.lapStartMS = 0
	return nil
}

// Track returns the active track
func (c *Controller) Track() (track.Track, bool) { return c.track, c.loaded }

// Circuit is the visible image of the active track, nil before StartTrack
func (c *Controller) Circuit() *surface.Image { return c.circuit }

// Car is the simulated car
func (c *Controller) Car() *vehicle.Car { return c.car }

// Axes is the driver input the next tick will use
func (c *Controller) Axes() physics.Axes { return c.controls.axes }

// SetSkin changes the car sprite
func (c *Controller) SetSkin(skin int) { c.skin = skin }

// Update runs the physics for elapsedMS and returns the time that did not
// fill a whole tick. The caller passes it back on the next frame.
func (c *Controller) Update(elapsedMS uint32) uint32 {
	if !c.loaded {
		return elapsedMS
	}
	return c.stepper.Advance(elapsedMS, c.car, c.controls.axes, c.afterTick)
}

func (c *Controller) afterTick() {
	flag := c.car.Progress.TakeFlag()
	if flag == vehicle.LapNone {
		return
	}
	ev := Event{
		Kind:           flag,
		Track:          c.track.ID,
		Lap:            c.car.Progress.Laps(),
		Checkpoint:     c.car.Progress.Current(),
		LastCheckpoint: c.car.Progress.Last(),
		TimeMS:         c.car.TimerMS(),
	}
	switch flag {
	case vehicle.LapComplete:
		ev.LapTimeMS = ev.TimeMS - c.lapStartMS
		c.lapStartMS = ev.TimeMS
	case vehicle.LapCanceled:
		c.lapStartMS = ev.TimeMS
	}
	c.logger.Log(ev)
}

// Draw renders the circuit, the car and its lights
func (c *Controller) Draw(cv Canvas) {
	if !c.loaded {
		return
	}
	cv.DrawCircuit(c.circuit.RGBA(), c.circuit.Dirty())
	c.circuit.ClearDirty()

	x, y := c.car.Position()
	frame := c.atlas.Frame(c.skin, sprite.Bucket(c.car.Yaw()))
	cv.DrawSprite(frame, int(x-c.car.Length()/2), int(y-c.car.Width()/2))

	if c.car.PositionLights() {
		drawPositionLights(cv, c.car)
	}
	v := c.car.Inertia()
	if c.controls.axes.Braking(c.tuning) && v > 0.1 {
		drawBrakeLights(cv, c.car)
	}
	if v < -0.1 {
		drawReversingLights(cv, c.car)
	}
	if math.Abs(v) <= 0.1 && c.now().UnixMilli()%hazardPeriodMS > hazardPeriodMS/2 {
		drawHazardLights(cv, c.car)
	}
}

// HandleInput applies one platform event and reports whether it was used.
func (c *Controller) HandleInput(ev InputEvent) bool {
	switch ev.Kind {
	case KeyPress:
		if ev.Key == KeyLights {
			c.controls.lightsDown = true
			return false
		}
		return c.controls.press(ev.Key)
	case KeyRelease:
		if ev.Key == KeyLights {
			// a release without its press belongs to a key held before the race
			if !c.controls.lightsDown {
				return false
			}
			c.controls.lightsDown = false
			c.car.TogglePositionLights()
			return true
		}
		return c.controls.release(ev.Key)
	case JoyAxis:
		return c.controls.stick(ev.Axis, ev.Value)
	}
	return false
}

// Info returns the car telemetry in metres and seconds
func (c *Controller) Info() Telemetry {
	t := telemetryOf(c.car)
	t.Track = c.track.ID
	t.LapTimeMS = t.TimeMS - c.lapStartMS
	return t
}
