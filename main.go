package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/platformer/config"
)

func main() {
	cfg := config.Load()

	debug := flag.Bool("debug", cfg.Debug, "draw hitbox, tracking box and physics shapes")
	levelName := flag.String("level", cfg.Level, "level name in levels/ (basename, .json optional)")
	logLevel := flag.String("log-level", cfg.LogLevel, "debug, info, warn or error")
	logFormat := flag.String("log-format", cfg.LogFormat, "text or json")
	watch := flag.Bool("watch", true, "reload prefabs/ when files change on disk")
	flag.Parse()

	cfg.Debug = *debug
	cfg.Level = *levelName
	cfg.LogLevel = *logLevel
	cfg.LogFormat = *logFormat
	logger := config.SetupLogger(cfg)

	game, err := NewGame(cfg, logger, *watch)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	w, h := game.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("platformer")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
