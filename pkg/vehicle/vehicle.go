package vehicle

import "math"

// Extent is the fraction of the footprint length (and width) between the car
// centre and its sensing/light points.
const Extent = 1.0 / 3

// Body is the read-only view of a car needed to sample the track under it
type Body interface {
	Position() (x, y float64)
	Yaw() float64
	Length() float64
	Width() float64
}

// Footprint returns a point on the car body.
//
// along is +1 for the rear of the car and -1 for the front (cars drive toward
// -cos(yaw), -sin(yaw)). nx and ny push the point sideways; they are kept as
// two numbers because several tuned points use a different push on each axis.
func Footprint(b Body, along, nx, ny float64) (x, y float64) {
	cx, cy := b.Position()
	a := b.Yaw()
	cos, sin := math.Cos(a), math.Sin(a)
	x = cx + along*cos*b.Length()*Extent - sin*nx
	y = cy + along*sin*b.Width()*Extent + cos*ny
	return x, y
}

// NormalizeAngle wraps a into [0, 2π)
func NormalizeAngle(a float64) float64 {
	const full = 2 * math.Pi
	a = math.Mod(a, full)
	if a < 0 {
		a += full
	}
	if a >= full {
		a -= full
	}
	return a
}
