package physics

import (
	"image/color"
	"math"

	"github.com/golangdaddy/pixelrace/pkg/surface"
	"github.com/golangdaddy/pixelrace/pkg/track"
	"github.com/golangdaddy/pixelrace/pkg/vehicle"
)

// Axes is the driver input. Both values are in [-1, 1].
// Steer is positive to the right, Throttle is positive to accelerate and
// negative to brake or reverse.
type Axes struct {
	Steer    float64
	Throttle float64
}

// Accelerating reports whether the throttle is past the dead zone
func (a Axes) Accelerating(t Tuning) bool { return a.Throttle > t.AxisThreshold }

// Braking reports a hard press on the brake, the one that leaves marks
func (a Axes) Braking(t Tuning) bool { return a.Throttle < -t.BrakeThreshold }

var tireMark = color.RGBA{A: 0xff}

// Stepper moves a car over a track in fixed ticks
type Stepper struct {
	Tuning  Tuning
	Sensor  *track.Sensor
	Circuit *surface.Image

	// ShowTires draws slide marks on the circuit
	ShowTires bool
}

func NewStepper(t Tuning, circuit, function *surface.Image) *Stepper {
	return &Stepper{
		Tuning:    t,
		Sensor:    track.NewSensor(function),
		Circuit:   circuit,
		ShowTires: true,
	}
}

// Advance runs as many whole ticks as fit in elapsedMS and returns what is
// left. onTick, when set, runs after every tick.
func (s *Stepper) Advance(elapsedMS uint32, car *vehicle.Car, axes Axes, onTick func()) uint32 {
	for elapsedMS >= TickMS {
		s.Tick(car, axes)
		if onTick != nil {
			onTick()
		}
		elapsedMS -= TickMS
	}
	return elapsedMS
}

// Tick simulates one 8ms step and returns what the sensor read at the start
// of it.
func (s *Stepper) Tick(car *vehicle.Car, axes Axes) track.Reading {
	t := s.Tuning
	car.Crashed = false

	r := s.Sensor.Sample(car)
	car.SetElevation(float64(r.Center.Height), r.Pitch, r.Roll)

	car.IncYaw(r.RollSlope * car.Inertia() * t.SlopeYaw)
	car.AddInertia(-r.PitchSlope * t.SlopeInertia)

	switch {
	case axes.Throttle > t.AxisThreshold:
		car.AddInertia(axes.Throttle * t.Accel * t.Coeff)
	case axes.Throttle < -t.AxisThreshold:
		car.AddInertia(axes.Throttle * t.Brake * t.Coeff)
	}
	if math.Abs(axes.Steer) > t.AxisThreshold {
		car.Steer(axes.Steer * t.Steer)
	}

	car.DampInertia((255 - r.AverageQuality()) / t.FrictionDiv)

	if r.OnWall() {
		car.Restore()
		car.Crashed = true
	} else {
		car.Backup()
		car.Advance(t.Damping)
		s.checkBounds(car)
	}

	center := s.Sensor.Function.CellAt(car.Position())
	car.Progress.Update(center.Checkpoint, center.StartLine())

	if s.ShowTires && s.Circuit != nil && s.sliding(car, axes) {
		s.markTires(car, axes.Braking(t))
	}

	car.UpdateTimer(TickMS)
	return r
}

func (s *Stepper) checkBounds(car *vehicle.Car) {
	radius := math.Max(car.Length(), car.Width()) / 2
	x, y := car.Position()
	w := float64(s.Sensor.Function.Width())
	h := float64(s.Sensor.Function.Height())
	if x < radius || x > w-radius || y < radius || y > h-radius {
		car.Restore()
		car.SetInertia(0)
		car.Crashed = true
	}
}

func (s *Stepper) sliding(car *vehicle.Car, axes Axes) bool {
	t := s.Tuning
	v := car.Inertia()
	return (v > t.SlideBrakeSpeed && axes.Braking(t)) ||
		(v > t.SlideCoastSpeed && !axes.Accelerating(t))
}

// markTires darkens the circuit behind the rear wheels. A hard brake leaves a
// wider mark.
func (s *Stepper) markTires(car *vehicle.Car, braking bool) {
	offsets := []float64{4, -4}
	if braking {
		offsets = append(offsets, 3, -3)
	}
	for _, o := range offsets {
		x, y := vehicle.Footprint(car, 1, o, o)
		s.Circuit.SetF(x, y, tireMark)
	}
}
