package surface

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func TestGetOutOfRangeIsWall(t *testing.T) {
	img := New(4, 3)
	img.Fill(Encode(2, 255, 10))

	for _, p := range []image.Point{{-1, 0}, {0, -1}, {4, 0}, {0, 3}, {100, 100}} {
		if got := img.Get(p.X, p.Y); got != Wall {
			t.Errorf("Get(%d,%d) = %v, want wall", p.X, p.Y, got)
		}
		if !Sample(img.Get(p.X, p.Y)).IsWall() {
			t.Errorf("cell at %v should be a wall", p)
		}
	}
	if got := img.Get(3, 2); got != Encode(2, 255, 10) {
		t.Errorf("Get(3,2) = %v", got)
	}
}

func TestSetMarksDirty(t *testing.T) {
	img := New(2, 2)
	if !img.Dirty() {
		t.Fatal("new image should start dirty so it gets uploaded once")
	}
	img.ClearDirty()

	img.Set(5, 5, color.RGBA{1, 2, 3, 255})
	if img.Dirty() {
		t.Error("out of range write must not dirty the image")
	}

	img.SetF(1.9, 0.2, color.RGBA{1, 2, 3, 255})
	if !img.Dirty() {
		t.Error("write should dirty the image")
	}
	if got := img.Get(1, 0); got != (color.RGBA{1, 2, 3, 255}) {
		t.Errorf("SetF truncation wrote to wrong pixel, got %v", got)
	}
}

func TestSampleChannels(t *testing.T) {
	tests := []struct {
		in    color.RGBA
		want  Cell
		start bool
	}{
		{color.RGBA{0, 255, 0, 255}, Cell{Raw: 0, Checkpoint: 0, Quality: 255, Height: 0}, false},
		{color.RGBA{7, 200, 9, 255}, Cell{Raw: 7, Checkpoint: 0, Quality: 200, Height: 9}, true},
		{color.RGBA{8, 0, 0, 255}, Cell{Raw: 8, Checkpoint: 1, Quality: 0, Height: 0}, false},
		{color.RGBA{248, 100, 255, 255}, Cell{Raw: 248, Checkpoint: 31, Quality: 100, Height: 255}, false},
	}
	for _, tt := range tests {
		got := Sample(tt.in)
		if got != tt.want {
			t.Errorf("Sample(%v) = %+v, want %+v", tt.in, got, tt.want)
		}
		if got.StartLine() != tt.start {
			t.Errorf("Sample(%v).StartLine() = %v", tt.in, got.StartLine())
		}
	}
	if c := Sample(Encode(17, 30, 40)); c.Checkpoint != 17 || c.Quality != 30 || c.Height != 40 {
		t.Errorf("Encode round trip gave %+v", c)
	}
}

func TestDecodePNG(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	src.Set(2, 1, color.NRGBA{16, 128, 64, 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatal(err)
	}

	img, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if img.Width() != 3 || img.Height() != 2 {
		t.Fatalf("size = %dx%d", img.Width(), img.Height())
	}
	if c := img.CellAt(2.5, 1.5); c.Checkpoint != 2 || c.Quality != 128 || c.Height != 64 {
		t.Errorf("CellAt = %+v", c)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(t.TempDir() + "/nope.png"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestSameSize(t *testing.T) {
	if err := SameSize(New(3, 3), New(3, 3)); err != nil {
		t.Errorf("unexpected error %v", err)
	}
	if err := SameSize(New(3, 3), New(3, 4)); !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("got %v, want ErrSizeMismatch", err)
	}
}

func TestDrawContours(t *testing.T) {
	fn := New(4, 4)
	fn.Fill(Encode(0, 255, 0))
	// height band changes between row 1 and row 2 for every column
	for x := 0; x < 4; x++ {
		fn.Set(x, 2, Encode(0, 255, 8))
		fn.Set(x, 3, Encode(0, 255, 8))
	}
	circuit := New(4, 4)
	circuit.Fill(color.RGBA{200, 0, 0, 255})
	circuit.ClearDirty()

	DrawContours(circuit, fn)

	if !circuit.Dirty() {
		t.Error("contours should dirty the circuit")
	}
	for x := 0; x < 4; x++ {
		if got := circuit.Get(x, 2); got != (color.RGBA{8, 8, 8, 255}) {
			t.Errorf("pixel %d,2 = %v, want contour", x, got)
		}
		if got := circuit.Get(x, 1); got != (color.RGBA{200, 0, 0, 255}) {
			t.Errorf("pixel %d,1 = %v, want untouched", x, got)
		}
	}
}

func TestDarken(t *testing.T) {
	img := New(1, 1)
	img.Set(0, 0, color.RGBA{100, 200, 50, 255})
	Darken(img, 0.3)
	if got := img.Get(0, 0); got != (color.RGBA{30, 60, 15, 255}) {
		t.Errorf("Darken = %v", got)
	}
}

func TestDarkenEveryRow(t *testing.T) {
	img := New(3, 4)
	img.Fill(color.RGBA{200, 100, 10, 255})
	img.ClearDirty()
	if img.Stride() != 3*4 {
		t.Fatalf("stride = %d, want 12", img.Stride())
	}

	Darken(img, 0.5)
	for y := 0; y < 4; y++ {
		for x := 0; x < 3; x++ {
			if got := img.Get(x, y); got != (color.RGBA{100, 50, 5, 255}) {
				t.Fatalf("pixel %d,%d = %v", x, y, got)
			}
		}
	}
	if !img.Dirty() {
		t.Error("Darken should mark the image dirty")
	}
}
