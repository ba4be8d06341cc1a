package physics

// TickMS is the fixed simulation step
const TickMS = 8

// Tuning holds every constant of the car model. Inertia is in map pixels per
// tick, so the model is only stable at the fixed 8ms step.
type Tuning struct {
	// Coeff scales engine and brake strength
	Coeff float64

	Accel float64 // inertia added per tick at full throttle
	Brake float64 // inertia removed per tick at full brake
	Steer float64 // radians per tick at full lock

	// terrain
	SlopeYaw     float64 // yaw pulled by roll slope, scaled by inertia
	SlopeInertia float64 // inertia lost climbing one unit of pitch slope
	FrictionDiv  float64 // (255 - quality) / FrictionDiv is lost every tick
	Damping      float64 // inertia kept every tick

	// input dead zones on the normalised axes
	AxisThreshold  float64
	BrakeThreshold float64

	// tire marks appear above these inertias
	SlideBrakeSpeed float64
	SlideCoastSpeed float64
}

// DefaultTuning returns the values the tracks were designed with
func DefaultTuning() Tuning {
	return Tuning{
		Coeff:           1,
		Accel:           0.02,
		Brake:           0.01,
		Steer:           0.02,
		SlopeYaw:        0.05,
		SlopeInertia:    0.01,
		FrictionDiv:     1000,
		Damping:         0.995,
		AxisThreshold:   0.01,
		BrakeThreshold:  0.5,
		SlideBrakeSpeed: 0.5,
		SlideCoastSpeed: 2.0,
	}
}

// TopSpeed is the inertia at which full throttle on perfect road is cancelled
// out by damping.
func (t Tuning) TopSpeed() float64 {
	a := t.Accel * t.Coeff
	return a * t.Damping / (1 - t.Damping)
}
