package game

import (
	"log"
	"math"
	"time"

	"github.com/golangdaddy/pixelrace/pkg/config"
	"github.com/golangdaddy/pixelrace/pkg/race"
	"github.com/golangdaddy/pixelrace/pkg/records"
	"github.com/golangdaddy/pixelrace/pkg/sprite"
	"github.com/golangdaddy/pixelrace/pkg/surface"
	"github.com/golangdaddy/pixelrace/pkg/track"
	"github.com/golangdaddy/pixelrace/pkg/ui"
	"github.com/golangdaddy/pixelrace/pkg/vehicle"
	"github.com/hajimehoshi/ebiten/v2"
)

// backdropDarken is how much of the paused race shows behind the menus
const backdropDarken = 0.3

// Screen represents a UI screen interface
type Screen interface {
	Update() error
	Draw(screen *ebiten.Image)
}

// Game implements the ebiten.Game interface and switches between the title,
// the track list and the race.
type Game struct {
	cfg   config.Config
	atlas *sprite.Atlas
	book  *records.Book
	skin  int

	ctrl       *race.Controller
	feed       *race.Feed
	raceScreen *RaceScreen

	currentScreen Screen
	backdrop      *ebiten.Image
	previews      map[int]*ebiten.Image
}

// NewGame creates a new game instance showing the title screen
func NewGame(cfg config.Config, atlas *sprite.Atlas, book *records.Book) (*Game, error) {
	g := &Game{
		cfg:      cfg,
		atlas:    atlas,
		book:     book,
		skin:     cfg.Skin,
		feed:     race.NewFeed(4, 3*time.Second),
		previews: make(map[int]*ebiten.Image),
	}

	ctrl, err := race.New(
		race.WithAtlas(atlas),
		race.WithSkin(cfg.Skin),
		race.WithLoader(track.DirLoader{Dir: cfg.TrackDir}),
		race.WithLogger(race.MultiLogger{race.NewStdLogger(nil), g.feed, race.LoggerFunc(g.recordLap)}),
		race.WithTireMarks(cfg.ShowTires),
		race.WithKeyRepeat(cfg.KeyRepeat),
		race.WithContours(cfg.Contours),
	)
	if err != nil {
		return nil, err
	}
	g.ctrl = ctrl

	hud := ui.NewHUD(g.feed)
	hud.BestLapMS = g.bestLap
	hud.ShowFPS = true
	g.raceScreen = NewRaceScreen(ctrl, hud, g.showTrackSelect)

	g.currentScreen = ui.NewTitleScreen(g.showTrackSelect)
	return g, nil
}

// Update handles game logic updates
func (g *Game) Update() error {
	if g.currentScreen != nil {
		return g.currentScreen.Update()
	}
	return nil
}

// Draw renders the current screen
func (g *Game) Draw(screen *ebiten.Image) {
	if g.currentScreen != nil {
		g.currentScreen.Draw(screen)
	}
}

// Layout returns the game's screen dimensions
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.cfg.WindowWidth, g.cfg.WindowHeight
}

func (g *Game) showTrackSelect() {
	current := g.cfg.Track
	if t, ok := g.ctrl.Track(); ok {
		current = t.ID
	}

	var ts *ui.TrackSelectScreen
	ts = ui.NewTrackSelectScreen(current, g.skin, g.atlas.Len(),
		func(trackID, skin int) {
			if err := g.startRace(trackID, skin); err != nil {
				ts.SetMessage(err.Error())
			}
		},
		g.leaveTrackSelect,
	)
	ts.Best = func(trackID int) (string, bool) {
		r, ok := g.book.Best(trackID)
		return r.Lap(), ok
	}
	ts.Laps = func(trackID int) int { return len(g.book.Track(trackID)) }
	ts.Preview = g.preview
	ts.Backdrop = g.darkenedCircuit()
	g.currentScreen = ts
}

// leaveTrackSelect goes back to the paused race, or to the title when no
// race was started yet.
func (g *Game) leaveTrackSelect() {
	if _, ok := g.ctrl.Track(); ok {
		g.raceScreen.Resume()
		g.currentScreen = g.raceScreen
		return
	}
	g.currentScreen = ui.NewTitleScreen(g.showTrackSelect)
}

func (g *Game) startRace(trackID, skin int) error {
	g.skin = skin
	g.ctrl.SetSkin(skin)
	if err := g.ctrl.StartTrack(trackID); err != nil {
		log.Printf("Failed to start track %d: %v", trackID, err)
		return err
	}
	t, _ := g.ctrl.Track()
	log.Printf("Race started: %s", t)

	g.feed.Clear()
	g.raceScreen.Resume()
	g.currentScreen = g.raceScreen
	return nil
}

// recordLap keeps completed laps in the record book
func (g *Game) recordLap(ev race.Event) {
	if ev.Kind != vehicle.LapComplete {
		return
	}
	r := g.book.Add(ev.Track, ev.LapTimeMS, g.skin)
	if best, _ := g.book.Best(ev.Track); best.ID == r.ID {
		log.Printf("New best lap on track %d: %s", ev.Track, r.Lap())
	}
	if g.cfg.RecordsFile == "" {
		return
	}
	if err := g.book.SaveToFile(g.cfg.RecordsFile); err != nil {
		log.Printf("Failed to save lap records: %v", err)
	}
}

func (g *Game) bestLap() (uint32, bool) {
	t, ok := g.ctrl.Track()
	if !ok {
		return 0, false
	}
	r, ok := g.book.Best(t.ID)
	return r.LapTimeMS, ok
}

// darkenedCircuit copies the current circuit for a menu backdrop
func (g *Game) darkenedCircuit() *ebiten.Image {
	if g.backdrop != nil {
		g.backdrop.Deallocate()
		g.backdrop = nil
	}
	circuit := g.ctrl.Circuit()
	if circuit == nil {
		return nil
	}
	dark := surface.FromImage(circuit.RGBA())
	surface.Darken(dark, backdropDarken)
	g.backdrop = ebiten.NewImageFromImage(dark.RGBA())
	return g.backdrop
}

// preview is the car sprite pointing up the screen
func (g *Game) preview(skin int) *ebiten.Image {
	if img, ok := g.previews[skin]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(g.atlas.Frame(skin, sprite.Bucket(math.Pi/2)))
	g.previews[skin] = img
	return img
}
