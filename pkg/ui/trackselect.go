package ui

import (
	"fmt"
	"image/color"

	"github.com/golangdaddy/pixelrace/pkg/track"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// TrackSelectScreen lists the tracks and the car skins
type TrackSelectScreen struct {
	tracks   []track.Track
	selected int
	skin     int
	skins    int

	// Best returns the formatted best lap of a track, if any
	Best func(trackID int) (string, bool)
	// Laps returns how many laps were recorded on a track
	Laps func(trackID int) int
	// Preview returns the sprite shown for a skin
	Preview func(skin int) *ebiten.Image
	// Backdrop is drawn behind the list, usually the paused race
	Backdrop *ebiten.Image

	onSelect func(trackID, skin int)
	onBack   func()
	message  string
}

// NewTrackSelectScreen creates the screen with trackID and skin highlighted
func NewTrackSelectScreen(trackID, skin, skins int, onSelect func(trackID, skin int), onBack func()) *TrackSelectScreen {
	ts := &TrackSelectScreen{
		tracks:   track.All(),
		skin:     skin,
		skins:    skins,
		onSelect: onSelect,
		onBack:   onBack,
	}
	for i, t := range ts.tracks {
		if t.ID == trackID {
			ts.selected = i
		}
	}
	return ts
}

// SetMessage shows a line under the list, for load errors
func (ts *TrackSelectScreen) SetMessage(msg string) { ts.message = msg }

// Update handles input for the track list
func (ts *TrackSelectScreen) Update() error {
	n := len(ts.tracks)
	if n == 0 {
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		ts.selected = (ts.selected + n - 1) % n
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		ts.selected = (ts.selected + 1) % n
	}
	if ts.skins > 0 {
		if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
			ts.skin = (ts.skin + ts.skins - 1) % ts.skins
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
			ts.skin = (ts.skin + 1) % ts.skins
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		if ts.onSelect != nil {
			ts.onSelect(ts.tracks[ts.selected].ID, ts.skin)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && ts.onBack != nil {
		ts.onBack()
	}
	return nil
}

// Draw renders the track list
func (ts *TrackSelectScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	screen.Fill(color.RGBA{20, 20, 30, 255})
	if ts.Backdrop != nil {
		screen.DrawImage(ts.Backdrop, nil)
	}

	drawText(screen, "SELECT TRACK", float64(width)/2, 50, 48, color.RGBA{255, 200, 50, 255})

	rowWidth := 560.0
	rowHeight := 28.0
	x := float64(width)/2 - rowWidth/2
	y := 100.0
	for i, t := range ts.tracks {
		bg := color.RGBA{40, 40, 60, 230}
		fg := color.RGBA{255, 255, 255, 255}
		if i == ts.selected {
			bg = color.RGBA{60, 100, 140, 240}
			fg = color.RGBA{200, 240, 255, 255}
		}
		drawPanel(screen, x, y, rowWidth, rowHeight, bg)
		drawTextAt(screen, fmt.Sprintf("%2d  %s", t.ID, t.Name), x+10, y+6, 16, fg)

		best := "--:--.---"
		if ts.Best != nil {
			if s, ok := ts.Best(t.ID); ok {
				best = s
			}
		}
		if ts.Laps != nil {
			if n := ts.Laps(t.ID); n > 0 {
				best = fmt.Sprintf("%d laps  %s", n, best)
			}
		}
		bestWidth := text.Advance(best, face())
		drawTextAt(screen, best, x+rowWidth-10-bestWidth, y+6, 16, fg)
		y += rowHeight + 4
	}

	if len(ts.tracks) > 0 {
		drawText(screen, "by "+ts.tracks[ts.selected].Author, float64(width)/2, y+16, 16, color.RGBA{180, 180, 200, 255})
	}
	ts.drawSkin(screen, x+rowWidth+40, 100)

	if ts.message != "" {
		drawText(screen, ts.message, float64(width)/2, float64(height)-80, 16, color.RGBA{255, 120, 120, 255})
	}
	drawText(screen, "Up/Down: Track | Left/Right: Car | Enter: Race | Esc: Back", float64(width)/2, float64(height)-40, 16, color.RGBA{150, 150, 150, 255})
}

func (ts *TrackSelectScreen) drawSkin(screen *ebiten.Image, x, y float64) {
	if ts.Preview == nil || ts.skins == 0 {
		return
	}
	img := ts.Preview(ts.skin)
	if img == nil {
		return
	}
	const scale = 3.0
	size := float64(img.Bounds().Dx()) * scale
	drawPanel(screen, x, y, size+20, size+20, color.RGBA{40, 40, 60, 230})

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x+10, y+10)
	screen.DrawImage(img, op)

	drawText(screen, fmt.Sprintf("Car %c", 'A'+ts.skin), x+(size+20)/2, y+size+40, 16, color.RGBA{200, 200, 200, 255})
}
