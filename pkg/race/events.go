package race

import (
	"errors"
	"log"

	"github.com/golangdaddy/pixelrace/pkg/vehicle"
)

// ErrUnknownTrack is returned by StartTrack for ids without a track
var ErrUnknownTrack = errors.New("unknown track")

// Event is emitted once for every lap flag a tick raised
type Event struct {
	Kind           vehicle.LapFlag
	Track          int
	Lap            int
	Checkpoint     int
	LastCheckpoint int
	TimeMS         uint32 // race time when the flag was raised
	LapTimeMS      uint32 // only set for LapComplete
}

// Message is the line shown to the driver
func (e Event) Message() string {
	switch e.Kind {
	case vehicle.LapComplete:
		return "Lap Complete"
	case vehicle.LapCanceled:
		return "Last Lap Canceled"
	case vehicle.CheckpointMissed:
		return "Checkpoint missed!"
	case vehicle.CheckpointRecovered:
		return "Checkpoint missed OK"
	}
	return ""
}

// Logger receives race events. Implementations run on the game loop and
// must not block.
type Logger interface {
	Log(ev Event)
}

// LoggerFunc adapts a plain function to Logger
type LoggerFunc func(ev Event)

func (f LoggerFunc) Log(ev Event) { f(ev) }

// StdLogger writes events through a standard library logger
type StdLogger struct {
	l *log.Logger
}

// NewStdLogger uses l, or the log package's default logger when l is nil.
func NewStdLogger(l *log.Logger) *StdLogger {
	if l == nil {
		l = log.Default()
	}
	return &StdLogger{l: l}
}

func (s *StdLogger) Log(ev Event) {
	if ev.Kind == vehicle.LapComplete {
		s.l.Printf("%s lap=%d lap_time=%dms t=%dms", ev.Message(), ev.Lap, ev.LapTimeMS, ev.TimeMS)
		return
	}
	s.l.Printf("%s lap=%d checkpoint=%d/%d t=%dms", ev.Message(), ev.Lap, ev.Checkpoint, ev.LastCheckpoint, ev.TimeMS)
}

// MultiLogger fans events out to every non-nil logger in order
type MultiLogger []Logger

func (m MultiLogger) Log(ev Event) {
	for _, l := range m {
		if l != nil {
			l.Log(ev)
		}
	}
}

type nopLogger struct{}

func (nopLogger) Log(Event) {}
