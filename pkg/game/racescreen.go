package game

import (
	"image/color"
	"time"

	"github.com/golangdaddy/pixelrace/pkg/race"
	"github.com/golangdaddy/pixelrace/pkg/render"
	"github.com/golangdaddy/pixelrace/pkg/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MaxFrameMS caps the time fed to the physics after a stall, such as a
// window drag, so the car does not jump.
const MaxFrameMS = 250

// RaceScreen drives a race.Controller from the ebiten loop
type RaceScreen struct {
	ctrl   *race.Controller
	canvas *render.Canvas
	hud    *ui.HUD
	input  *Input

	lastUpdate time.Time
	onExit     func()
}

func NewRaceScreen(ctrl *race.Controller, hud *ui.HUD, onExit func()) *RaceScreen {
	return &RaceScreen{
		ctrl:       ctrl,
		canvas:     render.NewCanvas(),
		hud:        hud,
		input:      NewInput(),
		lastUpdate: time.Now(),
		onExit:     onExit,
	}
}

// Resume restarts the frame clock, after the screen was hidden
func (rs *RaceScreen) Resume() {
	rs.lastUpdate = time.Now()
	rs.input.Reset()
}

// Update drains input, then runs the physics for the time since the last
// update. The part of a tick left over is kept by moving lastUpdate back.
func (rs *RaceScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if rs.onExit != nil {
			rs.onExit()
		}
		return nil
	}

	for _, ev := range rs.input.Poll() {
		rs.ctrl.HandleInput(ev)
	}

	now := time.Now()
	elapsed := now.Sub(rs.lastUpdate).Milliseconds()
	if elapsed > MaxFrameMS {
		elapsed = MaxFrameMS
		rs.lastUpdate = now.Add(-MaxFrameMS * time.Millisecond)
	}
	left := rs.ctrl.Update(uint32(elapsed))
	rs.lastUpdate = rs.lastUpdate.Add(time.Duration(uint32(elapsed)-left) * time.Millisecond)
	return nil
}

func (rs *RaceScreen) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	rs.canvas.Begin(screen)
	rs.ctrl.Draw(rs.canvas)
	rs.hud.Draw(screen, rs.ctrl.Info(), rs.ctrl.Axes())
}
