package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Canvas draws a race onto an ebiten image. The circuit texture is kept
// between frames and only re-uploaded when the race reports a change.
type Canvas struct {
	target *ebiten.Image

	// OffsetX and OffsetY shift everything, to leave room for a HUD
	OffsetX, OffsetY float64

	circuit *ebiten.Image
	sprites map[*image.RGBA]*ebiten.Image
}

// NewCanvas creates an empty canvas. Call Begin before every frame.
func NewCanvas() *Canvas {
	return &Canvas{
		sprites: make(map[*image.RGBA]*ebiten.Image),
	}
}

// Begin sets the screen the next draw calls go to
func (c *Canvas) Begin(screen *ebiten.Image) {
	c.target = screen
}

func (c *Canvas) DrawCircuit(img *image.RGBA, refresh bool) {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	if c.circuit == nil || c.circuit.Bounds().Dx() != w || c.circuit.Bounds().Dy() != h {
		if c.circuit != nil {
			c.circuit.Deallocate()
		}
		c.circuit = ebiten.NewImage(w, h)
		refresh = true
	}
	if refresh {
		c.circuit.WritePixels(img.Pix)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(c.OffsetX, c.OffsetY)
	c.target.DrawImage(c.circuit, op)
}

// DrawSprite draws a car frame. Frames never change once generated, so each
// one is uploaded once.
func (c *Canvas) DrawSprite(img *image.RGBA, x, y int) {
	tex, ok := c.sprites[img]
	if !ok {
		tex = ebiten.NewImageFromImage(img)
		c.sprites[img] = tex
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x)+c.OffsetX, float64(y)+c.OffsetY)
	c.target.DrawImage(tex, op)
}

func (c *Canvas) DrawPoint(x, y int, col color.RGBA) {
	vector.DrawFilledRect(c.target, float32(float64(x)+c.OffsetX), float32(float64(y)+c.OffsetY), 1, 1, col, false)
}
