package track

import (
	"fmt"
	"math"
	"path/filepath"
)

// MaxTracks is the number of slots in the registry. Slots without a file
// name are empty.
const MaxTracks = 16

// Map units. One map pixel is 1cm on the ground and one height step is 1cm.
const (
	XYUnitToMetres = 0.01
	ZUnitToMetres  = 0.01
)

// Track describes one circuit and where the car starts on it
type Track struct {
	ID         int
	Filename   string
	StartX     int
	StartY     int
	StartAngle int // degrees
	Name       string
	Author     string
}

// StartYaw is the start angle in radians
func (t Track) StartYaw() float64 {
	return float64(t.StartAngle) * 2 * math.Pi / 360
}

// CircuitPath is the visible bitmap of the track
func (t Track) CircuitPath(dir string) string {
	return filepath.Join(dir, t.Filename+".png")
}

// FunctionPath is the bitmap holding checkpoints, road quality and height
func (t Track) FunctionPath(dir string) string {
	return filepath.Join(dir, t.Filename+"_function.png")
}

func (t Track) String() string {
	return fmt.Sprintf("%s by %s", t.Name, t.Author)
}

var registry = [MaxTracks]Track{
	{0, "car", 450, 655, 180, "Car", "ICFP Programming Contest"},
	{1, "first", 435, 215, 180, "First circuit for this game...", "Royale"},
	{2, "icy", 435, 215, 180, "Same as First, but in winter!", "Royale"},
	{3, "hairpins", 505, 665, 0, "Hairpins", "ICFP Programming Contest"},

	{4, "simple", 585, 565, 0, "Simple", "ICFP Programming Contest"},
	{5, "loop", 678, 686, 0, "Loop", "Royale"},
	{6, "bio", 930, 500, 270, "Bio", "Jujucece"},
	{7, "city", 106, 358, 90, "City", "Jujucece"},

	{8, "desert", 680, 487, 80, "Desert", "Jujucece"},
	{9, "http", 520, 70, 180, "HTTP", "Jujucece"},
	{10, "kart", 370, 725, 0, "Kart", "Jujucece"},
	{11, "wave", 630, 380, 180, "Wave", "Jujucece"},

	{12, "wave2", 630, 380, 180, "Wave 2", "Miriam"},
	{13, "formula", 350, 330, 220, "Formula", "Ju"},
	{ID: 14},
	{ID: 15},
}

// Lookup returns the track in slot id. ok is false for empty or unknown slots.
func Lookup(id int) (Track, bool) {
	if id < 0 || id >= MaxTracks || registry[id].Filename == "" {
		return Track{}, false
	}
	return registry[id], true
}

// All returns every defined track in registry order
func All() []Track {
	tracks := make([]Track, 0, MaxTracks)
	for _, t := range registry {
		if t.Filename != "" {
			tracks = append(tracks, t)
		}
	}
	return tracks
}
