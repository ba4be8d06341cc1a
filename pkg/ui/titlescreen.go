package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// TitleScreen is shown once at startup
type TitleScreen struct {
	startTime      time.Time
	onStartPressed func()
}

// NewTitleScreen creates a new title screen
func NewTitleScreen(onStartPressed func()) *TitleScreen {
	return &TitleScreen{
		startTime:      time.Now(),
		onStartPressed: onStartPressed,
	}
}

// Update handles input for the title screen
func (ts *TitleScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if ts.onStartPressed != nil {
			ts.onStartPressed()
		}
	}
	return nil
}

// Draw renders the title screen
func (ts *TitleScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	screen.Fill(color.RGBA{15, 20, 35, 255})

	elapsed := time.Since(ts.startTime).Seconds()
	drawCheckerFlag(screen, width, height)

	centerX := float64(width) / 2
	centerY := float64(height) / 3

	// pulse between 1.0 and 1.1
	pulse := 1.0 + 0.1*math.Sin(elapsed*2.0)
	titleScale := 7.0 * pulse
	titleText := "PIXEL RACE"
	titleWidth := text.Advance(titleText, face()) * titleScale

	titleOp := &text.DrawOptions{}
	titleOp.GeoM.Scale(titleScale, titleScale)
	titleOp.GeoM.Translate(centerX-titleWidth/2, centerY-8)
	titleOp.ColorScale.ScaleWithColor(color.RGBA{255, 200, 50, 255})
	text.Draw(screen, titleText, face(), titleOp)

	drawText(screen, "Drive the track, hit every checkpoint", centerX, centerY+110, 24, color.RGBA{180, 180, 200, 255})

	if int(elapsed*2)%2 == 0 {
		drawText(screen, "Press ENTER or SPACE to Start", centerX, float64(height)-100, 24, color.RGBA{150, 200, 255, 255})
	}
}

// drawCheckerFlag draws a chequered band across the top and bottom
func drawCheckerFlag(screen *ebiten.Image, width, height int) {
	const cell = 12
	dark := color.RGBA{30, 35, 50, 255}
	light := color.RGBA{60, 70, 95, 255}
	for _, top := range []int{height / 8, height*7/8 - 2*cell} {
		for row := 0; row < 2; row++ {
			for col := 0; col*cell < width; col++ {
				c := dark
				if (row+col)%2 == 0 {
					c = light
				}
				vector.DrawFilledRect(screen, float32(col*cell), float32(top+row*cell), cell, cell, c, false)
			}
		}
	}
}
