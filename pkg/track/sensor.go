package track

import (
	"math"

	"github.com/golangdaddy/pixelrace/pkg/surface"
	"github.com/golangdaddy/pixelrace/pkg/vehicle"
)

// Corner indexes Reading.Corners
type Corner int

const (
	FrontLeft Corner = iota
	FrontRight
	BackLeft
	BackRight
)

// cornerNudges places each sensing point on the body. The rear points are
// pushed 3px sideways on x but 4px on y; the asymmetry is part of the tuning.
var cornerNudges = [4]struct{ along, nx, ny float64 }{
	FrontLeft:  {-1, 4, 4},
	FrontRight: {-1, -4, -4},
	BackLeft:   {1, 3, 4},
	BackRight:  {1, -3, -4},
}

// Reading is what the car feels of the track on one tick
type Reading struct {
	Center  surface.Cell
	Corners [4]surface.Cell

	// slopes are height over distance, Pitch and Roll are their angles
	PitchSlope float64
	RollSlope  float64
	Pitch      float64
	Roll       float64
}

// AverageQuality is the mean road quality under the four corners
func (r Reading) AverageQuality() float64 {
	var sum float64
	for _, c := range r.Corners {
		sum += float64(c.Quality)
	}
	return sum / 4
}

// OnWall reports whether the centre or any corner touches a wall
func (r Reading) OnWall() bool {
	if r.Center.IsWall() {
		return true
	}
	for _, c := range r.Corners {
		if c.IsWall() {
			return true
		}
	}
	return false
}

// Sensor samples a function map under a car
type Sensor struct {
	Function *surface.Image
}

func NewSensor(function *surface.Image) *Sensor {
	return &Sensor{Function: function}
}

// CornerPoint returns the map position of one sensing corner.
func CornerPoint(b vehicle.Body, c Corner) (float64, float64) {
	n := cornerNudges[c]
	return vehicle.Footprint(b, n.along, n.nx, n.ny)
}

// Sample reads the centre and the four corners under the body and derives
// pitch and roll from the height differences across the footprint.
func (s *Sensor) Sample(b vehicle.Body) Reading {
	var r Reading
	x, y := b.Position()
	r.Center = s.Function.CellAt(x, y)
	for c := range cornerNudges {
		cx, cy := CornerPoint(b, Corner(c))
		r.Corners[c] = s.Function.CellAt(cx, cy)
	}

	fl := float64(r.Corners[FrontLeft].Height)
	fr := float64(r.Corners[FrontRight].Height)
	bl := float64(r.Corners[BackLeft].Height)
	br := float64(r.Corners[BackRight].Height)

	r.PitchSlope = ((fl + fr - bl - br) * ZUnitToMetres) / ((2 * b.Length()) * XYUnitToMetres)
	r.RollSlope = ((fl + bl - fr - br) * ZUnitToMetres) / ((2 * b.Width()) * XYUnitToMetres)
	r.Pitch = math.Atan(r.PitchSlope)
	r.Roll = math.Atan(r.RollSlope)
	return r
}
