package vehicle

import "math"

// State is the kinematic snapshot of a car. Positions are in map pixels,
// Z is in height-map units.
type State struct {
	X, Y, Z    float64
	VX, VY, VZ float64 // units per second
	AX, AY, AZ float64 // units per second squared

	Yaw   float64 // rotation around the vertical axis
	Pitch float64 // rotation around the axis across the car
	Roll  float64 // rotation around the axis along the car
}

// Car is the player's vehicle
type Car struct {
	now    State
	before State

	length float64
	width  float64

	// signed momentum: positive forward, negative reverse
	inertia float64

	Progress Progress

	// Crashed is set by the tick that hit a wall or the map border.
	Crashed bool

	timerMS        uint32
	positionLights bool
}

// NewCar creates a car with a fixed footprint
func NewCar(length, width float64) *Car {
	return &Car{
		length:         length,
		width:          width,
		positionLights: true,
	}
}

// Reset puts the car on a start pose with no momentum and a fresh lap counter.
func (c *Car) Reset(x, y, yaw float64) {
	c.now = State{X: x, Y: y, Yaw: NormalizeAngle(yaw)}
	c.inertia = 0
	c.Crashed = false
	c.timerMS = 0
	c.Backup()
	c.Progress.Reset()
}

func (c *Car) Position() (float64, float64) { return c.now.X, c.now.Y }
func (c *Car) Z() float64                   { return c.now.Z }
func (c *Car) Yaw() float64                 { return c.now.Yaw }
func (c *Car) Pitch() float64               { return c.now.Pitch }
func (c *Car) Roll() float64                { return c.now.Roll }
func (c *Car) Length() float64              { return c.length }
func (c *Car) Width() float64               { return c.width }
func (c *Car) Inertia() float64             { return c.inertia }
func (c *Car) TimerMS() uint32              { return c.timerMS }

// State returns a copy of the current snapshot
func (c *Car) State() State { return c.now }

// SetElevation stores the terrain height under the car and its tilt.
func (c *Car) SetElevation(z, pitch, roll float64) {
	c.now.Z = z
	c.now.Pitch = pitch
	c.now.Roll = roll
}

// IncYaw turns the car regardless of the direction it is moving in.
func (c *Car) IncYaw(d float64) {
	c.now.Yaw = NormalizeAngle(c.now.Yaw + d)
}

// Steer turns right for positive d and left for negative d. Reversing flips
// the direction so the controls behave like a real steering wheel.
func (c *Car) Steer(d float64) {
	if c.inertia < 0 {
		d = -d
	}
	c.IncYaw(d)
}

func (c *Car) SetInertia(v float64) { c.inertia = v }
func (c *Car) AddInertia(d float64) { c.inertia += d }

// DampInertia removes a fraction of the current inertia.
func (c *Car) DampInertia(f float64) { c.inertia -= c.inertia * f }

// Backup remembers the current state for a later Restore.
func (c *Car) Backup() { c.before = c.now }

// Restore rolls the car back to the last backup.
func (c *Car) Restore() { c.now = c.before }

// Advance decays inertia by damping and moves the car along its heading.
func (c *Car) Advance(damping float64) {
	c.inertia *= damping
	c.now.X -= math.Cos(c.now.Yaw) * c.inertia
	c.now.Y -= math.Sin(c.now.Yaw) * c.inertia
}

// UpdateTimer adds ms of simulated time and derives velocity and
// acceleration from the difference with the last backup.
func (c *Car) UpdateTimer(ms uint32) {
	c.timerMS += ms
	if ms == 0 {
		return
	}
	dt := float64(ms) / 1000.0
	c.now.VX = (c.now.X - c.before.X) / dt
	c.now.VY = (c.now.Y - c.before.Y) / dt
	c.now.VZ = (c.now.Z - c.before.Z) / dt
	c.now.AX = (c.now.VX - c.before.VX) / dt
	c.now.AY = (c.now.VY - c.before.VY) / dt
	c.now.AZ = (c.now.VZ - c.before.VZ) / dt
}

func (c *Car) PositionLights() bool  { return c.positionLights }
func (c *Car) TogglePositionLights() { c.positionLights = !c.positionLights }
