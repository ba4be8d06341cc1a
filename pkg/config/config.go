package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/golangdaddy/pixelrace/pkg/sprite"
	"github.com/golangdaddy/pixelrace/pkg/track"
)

// Config holds the game settings. Zero values are not meaningful, start from
// Default.
type Config struct {
	WindowWidth  int    `json:"window_width"`
	WindowHeight int    `json:"window_height"`
	Title        string `json:"title"`

	TrackDir  string `json:"track_dir"`
	SpriteDir string `json:"sprite_dir"`
	Skins     int    `json:"skins"` // sprites to load, carA.png onward

	Skin      int  `json:"skin"`
	Track     int  `json:"track"`
	ShowTires bool `json:"show_tires"`
	Contours  bool `json:"contours"`
	KeyRepeat bool `json:"key_repeat"`

	// RecordsFile is where lap times are kept. Empty disables records.
	RecordsFile string `json:"records_file"`
}

// Default returns the settings the game ships with
func Default() Config {
	return Config{
		WindowWidth:  1024,
		WindowHeight: 768,
		Title:        "Pixel Race",
		TrackDir:     "tracks",
		SpriteDir:    "sprites",
		Skins:        sprite.MaxSkins,
		Skin:         0,
		Track:        0,
		ShowTires:    true,
		Contours:     true,
		RecordsFile:  "records.json",
	}
}

// LoadFile applies the JSON file at filename on top of Default. Fields the
// file leaves out keep their default.
func LoadFile(filename string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filename)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config '%s': %w", filename, err)
	}
	return cfg, cfg.Validate()
}

// SaveFile writes cfg as indented JSON
func (c Config) SaveFile(filename string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0644)
}

// Validate reports every setting that cannot work
func (c Config) Validate() error {
	var errs []error
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d", c.WindowWidth, c.WindowHeight))
	}
	if c.Skins < 1 || c.Skins > sprite.MaxSkins {
		errs = append(errs, fmt.Errorf("skins must be between 1 and %d, got %d", sprite.MaxSkins, c.Skins))
	}
	if c.Skin < 0 || c.Skin >= c.Skins {
		errs = append(errs, fmt.Errorf("skin %d is not loaded", c.Skin))
	}
	if _, ok := track.Lookup(c.Track); !ok {
		errs = append(errs, fmt.Errorf("no track %d", c.Track))
	}
	if c.TrackDir == "" || c.SpriteDir == "" {
		errs = append(errs, errors.New("asset directories must be set"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
