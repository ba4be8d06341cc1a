package main

import (
	"flag"
	"log"

	"github.com/golangdaddy/pixelrace/pkg/config"
	"github.com/golangdaddy/pixelrace/pkg/game"
	"github.com/golangdaddy/pixelrace/pkg/records"
	"github.com/golangdaddy/pixelrace/pkg/sprite"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	configFile := flag.String("config", "", "JSON settings file")
	trackID := flag.Int("track", -1, "track highlighted in the menu")
	skin := flag.Int("skin", -1, "car skin, 0 is carA.png")
	trackDir := flag.String("tracks", "", "track image directory")
	spriteDir := flag.String("sprites", "", "car sprite directory")
	noTires := flag.Bool("no-tires", false, "do not draw tire marks")
	noContours := flag.Bool("no-contours", false, "do not draw height contours")
	keyRepeat := flag.Bool("key-repeat", false, "accept repeated key presses")
	writeConfig := flag.String("write-config", "", "write the resulting settings to this file and exit")
	flag.Parse()

	cfg := config.Default()
	if *configFile != "" {
		var err error
		cfg, err = config.LoadFile(*configFile)
		if err != nil {
			log.Fatal(err)
		}
	}
	if *trackID >= 0 {
		cfg.Track = *trackID
	}
	if *skin >= 0 {
		cfg.Skin = *skin
	}
	if *trackDir != "" {
		cfg.TrackDir = *trackDir
	}
	if *spriteDir != "" {
		cfg.SpriteDir = *spriteDir
	}
	if *noTires {
		cfg.ShowTires = false
	}
	if *noContours {
		cfg.Contours = false
	}
	if *keyRepeat {
		cfg.KeyRepeat = true
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	if *writeConfig != "" {
		if err := cfg.SaveFile(*writeConfig); err != nil {
			log.Fatal(err)
		}
		log.Printf("Settings written to %s", *writeConfig)
		return
	}

	atlas, err := sprite.LoadAtlas(cfg.SpriteDir, cfg.Skins)
	if err != nil {
		log.Fatalf("Failed to load car sprites: %v", err)
	}

	book := records.NewBook()
	if cfg.RecordsFile != "" {
		book, err = records.LoadFromFile(cfg.RecordsFile)
		if err != nil {
			log.Printf("Ignoring lap records: %v", err)
			book = records.NewBook()
		}
	}

	log.Printf("Lap records session %s", book.Session())

	g, err := game.NewGame(cfg, atlas, book)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle(cfg.Title)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
