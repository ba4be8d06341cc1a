package race

import (
	"image/color"

	"github.com/golangdaddy/pixelrace/pkg/vehicle"
)

var (
	lightRed    = color.RGBA{255, 0, 0, 255}
	lightWhite  = color.RGBA{255, 255, 255, 255}
	lightOrange = color.RGBA{255, 200, 0, 255}
	lightYellow = color.RGBA{255, 255, 100, 255}
)

// hazardPeriodMS is one on/off cycle of the hazard lights
const hazardPeriodMS = 800

// rawLight draws a dot, a cross or a filled diamond for radius 1, 2 or 3.
func rawLight(c Canvas, x, y float64, r int, col color.RGBA) {
	px, py := int(x), int(y)
	c.DrawPoint(px, py, col)
	if r > 1 {
		c.DrawPoint(px-1, py, col)
		c.DrawPoint(px+1, py, col)
		c.DrawPoint(px, py-1, col)
		c.DrawPoint(px, py+1, col)
	}
	if r > 2 {
		c.DrawPoint(px-2, py, col)
		c.DrawPoint(px+2, py, col)
		c.DrawPoint(px, py-2, col)
		c.DrawPoint(px, py+2, col)
		c.DrawPoint(px-1, py-1, col)
		c.DrawPoint(px-1, py+1, col)
		c.DrawPoint(px+1, py-1, col)
		c.DrawPoint(px+1, py+1, col)
	}
}

// pair draws the left and right light at one end of the car
func pair(c Canvas, car *vehicle.Car, along, nx, ny float64, r int, col color.RGBA) {
	x, y := vehicle.Footprint(car, along, nx, ny)
	rawLight(c, x, y, r, col)
	x, y = vehicle.Footprint(car, along, -nx, -ny)
	rawLight(c, x, y, r, col)
}

func drawPositionLights(c Canvas, car *vehicle.Car) {
	pair(c, car, 1, 3, 4, 2, lightRed)
	pair(c, car, -1, 4, 4, 3, lightYellow)
}

func drawBrakeLights(c Canvas, car *vehicle.Car) {
	pair(c, car, 1, 4, 4, 3, lightRed)
}

func drawReversingLights(c Canvas, car *vehicle.Car) {
	pair(c, car, 1, 4, 4, 3, lightWhite)
}

func drawHazardLights(c Canvas, car *vehicle.Car) {
	pair(c, car, -1, 5, 5, 2, lightOrange)
	pair(c, car, 1, 5, 5, 2, lightOrange)
}
