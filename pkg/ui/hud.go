package ui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/golangdaddy/pixelrace/pkg/physics"
	"github.com/golangdaddy/pixelrace/pkg/race"
	"github.com/golangdaddy/pixelrace/pkg/records"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// topKPH fills the gauge. Full throttle on perfect road tops out just under 18.
const topKPH = 20.0

// HUD draws the telemetry panel and the race messages
type HUD struct {
	Feed *race.Feed

	// BestLapMS returns the best lap on the current track, if any
	BestLapMS func() (uint32, bool)

	// ShowFPS adds the ebiten frame counters
	ShowFPS bool
}

// NewHUD creates a HUD that shows the messages kept by feed
func NewHUD(feed *race.Feed) *HUD {
	return &HUD{Feed: feed}
}

// KPH converts a telemetry velocity to km/h
func KPH(v race.Vec3) float64 {
	return math.Hypot(v.X, v.Y) * 3.6
}

// Draw renders the panel in the top-right corner, with the driver inputs
// along its bottom edge
func (h *HUD) Draw(screen *ebiten.Image, info race.Telemetry, axes physics.Axes) {
	width := float64(screen.Bounds().Dx())
	panelWidth := 200.0
	panelHeight := 186.0
	x := width - panelWidth - 10
	y := 10.0
	drawPanel(screen, x, y, panelWidth, panelHeight, color.RGBA{20, 20, 30, 200})

	speed := KPH(info.Velocity)
	speedColor := color.RGBA{100, 255, 100, 255}
	switch {
	case speed >= 15:
		speedColor = color.RGBA{255, 100, 100, 255}
	case speed >= 10:
		speedColor = color.RGBA{255, 255, 100, 255}
	}
	drawText(screen, fmt.Sprintf("%.0f", speed), x+panelWidth/2, y+30, 40, speedColor)
	drawText(screen, "KM/H", x+panelWidth/2, y+60, 16, color.RGBA{200, 200, 200, 255})
	h.drawGauge(screen, x+10, y+75, panelWidth-20, 8, speed/topKPH)

	label := color.RGBA{200, 200, 200, 255}
	lines := []string{
		fmt.Sprintf("Lap     %d", info.Lap+1),
		fmt.Sprintf("Time    %s", records.FormatMS(info.LapTimeMS)),
		fmt.Sprintf("Best    %s", h.best()),
		fmt.Sprintf("Gate    %d/%d%s", info.LastCheckpoint, info.Checkpoint, missedMark(info.Missed)),
	}
	for i, l := range lines {
		drawTextAt(screen, l, x+12, y+92+float64(i)*18, 16, label)
	}

	h.drawAxes(screen, x+10, y+panelHeight-18, panelWidth-20, axes)

	if h.Feed != nil {
		for i, msg := range h.Feed.Lines() {
			drawTextAt(screen, msg, 10, 10+float64(i)*20, 16, color.RGBA{255, 220, 120, 255})
		}
	}

	if h.ShowFPS {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %.0f FPS %.0f", ebiten.ActualTPS(), ebiten.ActualFPS()), int(x), int(y+panelHeight+6))
	}
}

func missedMark(missed bool) string {
	if missed {
		return " !"
	}
	return ""
}

// drawAxes draws throttle and steering as bars growing from the centre.
// Braking and left steering grow to the left.
func (h *HUD) drawAxes(screen *ebiten.Image, x, y, width float64, axes physics.Axes) {
	half := width / 2
	bar := func(row, v float64, col color.RGBA) {
		v = math.Max(-1, math.Min(1, v))
		vector.DrawFilledRect(screen, float32(x), float32(row), float32(width), 4, color.RGBA{50, 50, 60, 255}, false)
		start := x + half
		if v < 0 {
			start += half * v
		}
		vector.DrawFilledRect(screen, float32(start), float32(row), float32(half*math.Abs(v)), 4, col, false)
	}
	throttle := color.RGBA{100, 255, 100, 255}
	if axes.Throttle < 0 {
		throttle = color.RGBA{255, 100, 100, 255}
	}
	bar(y, axes.Throttle, throttle)
	bar(y+6, axes.Steer, color.RGBA{120, 180, 255, 255})
}

func (h *HUD) best() string {
	if h.BestLapMS == nil {
		return "--:--.---"
	}
	ms, ok := h.BestLapMS()
	if !ok {
		return "--:--.---"
	}
	return records.FormatMS(ms)
}

// drawGauge draws a bar filled to frac, clamped to [0, 1]
func (h *HUD) drawGauge(screen *ebiten.Image, x, y, width, height, frac float64) {
	frac = math.Max(0, math.Min(1, frac))
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(width), float32(height), color.RGBA{50, 50, 60, 255}, false)

	fill := color.RGBA{100, 255, 100, 255}
	if frac > 0.75 {
		fill = color.RGBA{255, 100, 100, 255}
	} else if frac > 0.45 {
		fill = color.RGBA{255, 255, 100, 255}
	}
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(width*frac), float32(height), fill, false)
}
