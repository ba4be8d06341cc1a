package surface

import "image/color"

// contourStep is the height difference between two contour lines.
const contourStep = 4

// DrawContours paints grey height lines from a function map onto a circuit.
// A pixel is painted when its height band differs from the previous pixel,
// scanning columns top to bottom and then rows left to right.
func DrawContours(circuit, function *Image) {
	w := min(circuit.Width(), function.Width())
	h := min(circuit.Height(), function.Height())

	for x := 0; x < w; x++ {
		var prev uint8
		for y := 0; y < h; y++ {
			b := function.Get(x, y).B
			if y != 0 && prev/contourStep != b/contourStep {
				circuit.Set(x, y, grey(b))
			}
			prev = b
		}
	}

	for y := 0; y < h; y++ {
		var prev uint8
		for x := 0; x < w; x++ {
			b := function.Get(x, y).B
			if x != 0 && prev/contourStep != b/contourStep {
				circuit.Set(x, y, grey(b))
			}
			prev = b
		}
	}
}

// Darken scales the colour channels of every pixel by coef, keeping alpha.
// Rows are walked through the backing buffer, four bytes per pixel.
func Darken(img *Image, coef float64) {
	pix := img.RGBA().Pix
	stride := img.Stride()
	for y := 0; y < img.Height(); y++ {
		row := pix[y*stride : y*stride+img.Width()*4]
		for i := 0; i < len(row); i += 4 {
			row[i] = uint8(float64(row[i]) * coef)
			row[i+1] = uint8(float64(row[i+1]) * coef)
			row[i+2] = uint8(float64(row[i+2]) * coef)
		}
	}
	img.MarkDirty()
}

func grey(v uint8) color.RGBA {
	return color.RGBA{v, v, v, 0xff}
}
