package surface

import (
	"image"
	"image/color"
	"image/draw"
)

// Wall is what Get returns for coordinates outside the image: no checkpoint,
// road quality 0 and height 0.
var Wall = color.RGBA{}

// Image is an RGBA pixel buffer that remembers whether it was written to
// since the last time a renderer uploaded it.
type Image struct {
	rgba  *image.RGBA
	dirty bool
}

// New creates a blank image of the given size
func New(width, height int) *Image {
	return &Image{
		rgba:  image.NewRGBA(image.Rect(0, 0, width, height)),
		dirty: true,
	}
}

// FromImage copies any decoded image into a new Image with its origin at 0,0
func FromImage(src image.Image) *Image {
	b := src.Bounds()
	img := New(b.Dx(), b.Dy())
	draw.Draw(img.rgba, img.rgba.Bounds(), src, b.Min, draw.Src)
	return img
}

func (img *Image) Width() int  { return img.rgba.Rect.Dx() }
func (img *Image) Height() int { return img.rgba.Rect.Dy() }

// Stride is the number of bytes between two vertically adjacent pixels.
func (img *Image) Stride() int { return img.rgba.Stride }

// RGBA exposes the backing buffer for renderers. Writes through it bypass
// the dirty flag.
func (img *Image) RGBA() *image.RGBA { return img.rgba }

// In reports whether x,y is inside the image
func (img *Image) In(x, y int) bool {
	return x >= 0 && y >= 0 && x < img.Width() && y < img.Height()
}

// Get returns the pixel at x,y, or Wall when x,y is out of range.
func (img *Image) Get(x, y int) color.RGBA {
	if !img.In(x, y) {
		return Wall
	}
	return img.rgba.RGBAAt(x, y)
}

// GetF reads the pixel under a world position, truncating toward zero.
func (img *Image) GetF(x, y float64) color.RGBA {
	return img.Get(int(x), int(y))
}

// Set writes the pixel at x,y and marks the image dirty. Out of range writes
// are dropped.
func (img *Image) Set(x, y int, c color.RGBA) {
	if !img.In(x, y) {
		return
	}
	img.rgba.SetRGBA(x, y, c)
	img.dirty = true
}

// SetF writes the pixel under a world position, truncating toward zero.
func (img *Image) SetF(x, y float64, c color.RGBA) {
	img.Set(int(x), int(y), c)
}

// Fill paints every pixel with c
func (img *Image) Fill(c color.RGBA) {
	draw.Draw(img.rgba, img.rgba.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
	img.dirty = true
}

func (img *Image) Dirty() bool { return img.dirty }
func (img *Image) ClearDirty() { img.dirty = false }
func (img *Image) MarkDirty()  { img.dirty = true }
