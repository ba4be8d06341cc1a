package surface

import "image/color"

// CheckpointScale is the red channel step between two checkpoint ids.
const CheckpointScale = 8

// Cell is one decoded pixel of a function map.
//
// red   = checkpoint id * 8
// green = road quality, 0 is a wall and 255 is perfect tarmac
// blue  = terrain height
type Cell struct {
	Raw        uint8
	Checkpoint int
	Quality    uint8
	Height     uint8
}

// Sample decodes a function map pixel
func Sample(c color.RGBA) Cell {
	return Cell{
		Raw:        c.R,
		Checkpoint: int(c.R) / CheckpointScale,
		Quality:    c.G,
		Height:     c.B,
	}
}

// Encode is the inverse of Sample. Checkpoint ids above 31 do not fit.
func Encode(checkpoint int, quality, height uint8) color.RGBA {
	return color.RGBA{
		R: uint8(checkpoint * CheckpointScale),
		G: quality,
		B: height,
		A: 0xff,
	}
}

// IsWall reports whether the car cannot drive over this cell.
func (c Cell) IsWall() bool { return c.Quality == 0 }

// StartLine reports whether the cell is painted as the start/finish gate.
// Checkpoint 0 covers every red value below 8, but only the non-zero ones
// are an actual gate; plain road has red 0.
func (c Cell) StartLine() bool { return c.Checkpoint == 0 && c.Raw != 0 }

// CellAt samples the function map under a world position
func (img *Image) CellAt(x, y float64) Cell {
	return Sample(img.GetF(x, y))
}
