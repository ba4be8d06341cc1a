package sprite

import (
	"fmt"
	"image"
	"math"
	"path/filepath"

	"github.com/golangdaddy/pixelrace/pkg/surface"
)

const (
	// Size is the width and height of every rotated frame.
	Size = 30
	// Angles is the number of pre-rotated frames per skin.
	Angles = 256
	// MaxSkins is the number of car skins shipped with the game (carA..carP).
	MaxSkins = 16
)

// Bucket maps a yaw in radians to the frame that shows it.
func Bucket(yaw float64) int {
	b := int(Angles*yaw/(2*math.Pi)) % Angles
	if b < 0 {
		b += Angles
	}
	return b
}

// Rotate renders src turned by bucket/256 of a full turn into a Size x Size
// frame. Every destination pixel is mapped back into the source with the
// inverse rotation and copied from the nearest source pixel; pixels that land
// outside the source stay transparent.
func Rotate(src image.Image, bucket int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, Size, Size))
	b := src.Bounds()
	sw, sh := b.Dx(), b.Dy()

	angle := 2 * math.Pi * float64(bucket) / Angles
	tcos, tsin := math.Cos(angle), math.Sin(angle)

	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			dx := float64(x) - Size/2.0
			dy := float64(y) - Size/2.0
			x2 := int(dx*tcos + dy*tsin + float64(sw)/2)
			y2 := int(dx*tsin - dy*tcos + float64(sh)/2)
			if x2 > 0 && x2 < sw && y2 > 0 && y2 < sh {
				dst.Set(x, y, src.At(b.Min.X+x2, b.Min.Y+y2))
			}
		}
	}
	return dst
}

// Atlas holds every rotated frame of every skin.
type Atlas struct {
	skins [][Angles]*image.RGBA
}

// NewAtlas rotates each skin into all 256 frames.
func NewAtlas(skins []image.Image) *Atlas {
	a := &Atlas{skins: make([][Angles]*image.RGBA, len(skins))}
	for i, skin := range skins {
		for j := 0; j < Angles; j++ {
			a.skins[i][j] = Rotate(skin, j)
		}
	}
	return a
}

// Len returns the number of skins
func (a *Atlas) Len() int { return len(a.skins) }

// Frame returns the frame of a skin for an angle bucket. Skin ids wrap.
func (a *Atlas) Frame(skin, bucket int) *image.RGBA {
	if len(a.skins) == 0 {
		return nil
	}
	skin %= len(a.skins)
	if skin < 0 {
		skin += len(a.skins)
	}
	bucket %= Angles
	if bucket < 0 {
		bucket += Angles
	}
	return a.skins[skin][bucket]
}

// FrameSize is the footprint a car drawn from this atlas occupies.
func (a *Atlas) FrameSize() (int, int) { return Size, Size }

// SkinPath returns the file name of skin i inside dir (carA.png, carB.png, ...).
func SkinPath(dir string, i int) string {
	return filepath.Join(dir, fmt.Sprintf("car%c.png", 'A'+i))
}

// LoadAtlas loads n skins from dir and rotates them. There is no fallback
// sprite, so callers treat an error as fatal.
func LoadAtlas(dir string, n int) (*Atlas, error) {
	if n < 1 || n > MaxSkins {
		return nil, fmt.Errorf("skin count %d out of range 1..%d", n, MaxSkins)
	}
	skins := make([]image.Image, 0, n)
	for i := 0; i < n; i++ {
		img, err := surface.Load(SkinPath(dir, i))
		if err != nil {
			return nil, fmt.Errorf("failed to load car sprite %d: %w", i, err)
		}
		skins = append(skins, img.RGBA())
	}
	return NewAtlas(skins), nil
}
