package race

import (
	"github.com/golangdaddy/pixelrace/pkg/track"
	"github.com/golangdaddy/pixelrace/pkg/vehicle"
)

// Vec3 is a vector in metres, or metres per second for velocities
type Vec3 struct {
	X, Y, Z float64
}

// Telemetry is a snapshot of the car for heads-up displays
type Telemetry struct {
	Track        int
	Position     Vec3
	Velocity     Vec3
	Acceleration Vec3

	Yaw, Pitch, Roll float64

	Checkpoint     int
	LastCheckpoint int
	Lap            int
	Missed         bool // a checkpoint was skipped and not driven yet

	Inertia   float64
	Crashed   bool
	TimeMS    uint32
	LapTimeMS uint32 // time spent on the current lap
}

func scale(x, y, z float64) Vec3 {
	return Vec3{
		X: x * track.XYUnitToMetres,
		Y: y * track.XYUnitToMetres,
		Z: z * track.ZUnitToMetres,
	}
}

func telemetryOf(car *vehicle.Car) Telemetry {
	s := car.State()
	return Telemetry{
		Position:       scale(s.X, s.Y, s.Z),
		Velocity:       scale(s.VX, s.VY, s.VZ),
		Acceleration:   scale(s.AX, s.AY, s.AZ),
		Yaw:            s.Yaw,
		Pitch:          s.Pitch,
		Roll:           s.Roll,
		Checkpoint:     car.Progress.Current(),
		LastCheckpoint: car.Progress.Last(),
		Lap:            car.Progress.Laps(),
		Missed:         car.Progress.Missed(),
		Inertia:        car.Inertia(),
		Crashed:        car.Crashed,
		TimeMS:         car.TimerMS(),
	}
}
