package sprite

import (
	"image"
	"image/color"
	"math"
	"testing"
)

func TestBucket(t *testing.T) {
	tests := []struct {
		yaw  float64
		want int
	}{
		{0, 0},
		{math.Pi/2 + 0.001, 64},
		{math.Pi, 128},
		{2*math.Pi - 0.001, 255},
		{2 * math.Pi, 0},
	}
	for _, tt := range tests {
		if got := Bucket(tt.yaw); got != tt.want {
			t.Errorf("Bucket(%v) = %d, want %d", tt.yaw, got, tt.want)
		}
	}
}

func TestRotateZeroFlipsVertically(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, Size, Size))
	red := color.RGBA{255, 0, 0, 255}
	src.SetRGBA(10, 5, red)

	dst := Rotate(src, 0)
	if got := dst.RGBAAt(10, 25); got != red {
		t.Errorf("dst(10,25) = %v, want %v", got, red)
	}
	if got := dst.RGBAAt(10, 5); got == red {
		t.Error("frame 0 should not be a plain copy")
	}
}

func TestRotateLeavesOutsideTransparent(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			src.SetRGBA(x, y, color.RGBA{0, 0, 255, 255})
		}
	}
	for _, bucket := range []int{0, 13, 64, 100, 200, 255} {
		dst := Rotate(src, bucket)
		if dst.Bounds().Dx() != Size || dst.Bounds().Dy() != Size {
			t.Fatalf("bucket %d: size %v", bucket, dst.Bounds())
		}
		if a := dst.RGBAAt(0, 0).A; a != 0 {
			t.Errorf("bucket %d: corner alpha %d, want transparent", bucket, a)
		}
		if a := dst.RGBAAt(Size/2, Size/2).A; a != 255 {
			t.Errorf("bucket %d: center alpha %d, want opaque", bucket, a)
		}
	}
}

func TestAtlasFrames(t *testing.T) {
	skins := []image.Image{
		image.NewRGBA(image.Rect(0, 0, 20, 10)),
		image.NewRGBA(image.Rect(0, 0, 20, 10)),
	}
	a := NewAtlas(skins)
	if a.Len() != 2 {
		t.Fatalf("Len = %d", a.Len())
	}
	if a.Frame(0, 3) == nil || a.Frame(1, 255) == nil {
		t.Fatal("missing frame")
	}
	if a.Frame(2, 3) != a.Frame(0, 3) {
		t.Error("skin ids should wrap")
	}
	if a.Frame(0, 256) != a.Frame(0, 0) {
		t.Error("buckets should wrap")
	}
	if w, h := a.FrameSize(); w != Size || h != Size {
		t.Errorf("FrameSize = %d,%d", w, h)
	}
}

func TestSkinPath(t *testing.T) {
	if got := SkinPath("sprites", 2); got != "sprites/carC.png" {
		t.Errorf("SkinPath = %q", got)
	}
}

func TestLoadAtlasMissingSprite(t *testing.T) {
	if _, err := LoadAtlas(t.TempDir(), 1); err == nil {
		t.Fatal("expected an error when the sprite file is missing")
	}
	if _, err := LoadAtlas(t.TempDir(), 0); err == nil {
		t.Fatal("expected an error for zero skins")
	}
}
