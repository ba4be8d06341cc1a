package ui

import (
	"image/color"

	"github.com/hajimehoshi/bitmapfont/v3"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var fontFace = text.NewGoXFace(bitmapfont.Face)

// face is the bitmap font, 16px tall at scale 1
func face() text.Face { return fontFace }

// drawText draws str centred on centerX, centerY at size pixels tall
func drawText(screen *ebiten.Image, str string, centerX, centerY float64, size float64, clr color.Color) {
	scale := size / 16.0
	textWidth := text.Advance(str, face()) * scale

	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(centerX-textWidth/2, centerY-8*scale)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face(), op)
}

// drawTextAt draws str with its top-left corner at x, y
func drawTextAt(screen *ebiten.Image, str string, x, y float64, size float64, clr color.Color) {
	scale := size / 16.0
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face(), op)
}

// drawPanel draws a filled box with a 2px border
func drawPanel(screen *ebiten.Image, x, y, width, height float64, bg color.Color) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(width), float32(height), bg, false)
	vector.StrokeRect(screen, float32(x+1), float32(y+1), float32(width-2), float32(height-2), 2, color.RGBA{100, 100, 120, 255}, false)
}

// drawButton draws a panel with a centred label
func drawButton(screen *ebiten.Image, label string, x, y, width, height float64, bg, fg color.Color) {
	drawPanel(screen, x, y, width, height, bg)
	drawText(screen, label, x+width/2, y+height/2, 16, fg)
}
