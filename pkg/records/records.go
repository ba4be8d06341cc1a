package records

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"time"

	"github.com/segmentio/ksuid"
)

// Record is one completed lap
type Record struct {
	ID        string    `json:"id"`
	Session   string    `json:"session"`
	Track     int       `json:"track"`
	LapTimeMS uint32    `json:"lap_time_ms"`
	Skin      int       `json:"skin"`
	CreatedAt time.Time `json:"created_at"`
}

// Lap formats the lap time as m:ss.mmm
func (r Record) Lap() string {
	return FormatMS(r.LapTimeMS)
}

// FormatMS formats a duration in milliseconds as m:ss.mmm
func FormatMS(ms uint32) string {
	return fmt.Sprintf("%d:%02d.%03d", ms/60000, ms/1000%60, ms%1000)
}

// Book keeps every lap driven, across sessions
type Book struct {
	Records   []Record  `json:"records"`
	UpdatedAt time.Time `json:"updated_at"`

	session string
}

// NewBook creates an empty book with a fresh session id
func NewBook() *Book {
	return &Book{session: ksuid.New().String()}
}

// Session identifies the laps added since the book was created or loaded
func (b *Book) Session() string { return b.session }

// Add records a lap on track
func (b *Book) Add(track int, lapTimeMS uint32, skin int) Record {
	r := Record{
		ID:        ksuid.New().String(),
		Session:   b.session,
		Track:     track,
		LapTimeMS: lapTimeMS,
		Skin:      skin,
		CreatedAt: time.Now(),
	}
	b.Records = append(b.Records, r)
	return r
}

// Best returns the fastest lap on track
func (b *Book) Best(track int) (Record, bool) {
	var best Record
	found := false
	for _, r := range b.Records {
		if r.Track != track {
			continue
		}
		if !found || r.LapTimeMS < best.LapTimeMS {
			best = r
			found = true
		}
	}
	return best, found
}

// Track returns the laps on track, fastest first
func (b *Book) Track(track int) []Record {
	var laps []Record
	for _, r := range b.Records {
		if r.Track == track {
			laps = append(laps, r)
		}
	}
	sort.SliceStable(laps, func(i, j int) bool {
		return laps[i].LapTimeMS < laps[j].LapTimeMS
	})
	return laps
}

// SaveToFile writes the book as JSON
func (b *Book) SaveToFile(filename string) error {
	b.UpdatedAt = time.Now()

	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to save records: %w", err)
	}
	return nil
}

// LoadFromFile reads a book written by SaveToFile. A missing file gives an
// empty book. Either way the book gets a new session id.
func LoadFromFile(filename string) (*Book, error) {
	b := NewBook()

	data, err := os.ReadFile(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return b, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read records: %w", err)
	}

	if err := json.Unmarshal(data, b); err != nil {
		return nil, fmt.Errorf("failed to parse records '%s': %w", filename, err)
	}

	return b, nil
}
