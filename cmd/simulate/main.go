// Command simulate runs the platformer headless with a scripted input source
// and logs the actor's progress.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/milk9111/platformer/config"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/input"
	"github.com/milk9111/platformer/prefabs"
	"github.com/milk9111/platformer/sim"
)

func main() {
	cfg := config.Load()

	levelName := flag.String("level", cfg.Level, "level name in levels/ (basename, .json optional)")
	scriptName := flag.String("script", "walk", "input script in prefabs/scripts/")
	frames := flag.Int("frames", 600, "number of ticks to run")
	every := flag.Int("every", 60, "log state every N ticks (0 disables)")
	logLevel := flag.String("log-level", cfg.LogLevel, "debug, info, warn or error")
	logFormat := flag.String("log-format", cfg.LogFormat, "text or json")
	flag.Parse()

	cfg.Level = *levelName
	cfg.LogLevel = *logLevel
	cfg.LogFormat = *logFormat
	logger := config.SetupLogger(cfg)

	if err := run(logger, cfg.Level, *scriptName, *frames, *every); err != nil {
		logger.Error("simulate failed", "err", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, level, scriptName string, frames, every int) error {
	src, err := prefabs.LoadScript(scriptName)
	if err != nil {
		return err
	}
	script, err := input.NewScript(scriptName, src, logger)
	if err != nil {
		return err
	}

	s, err := sim.New(sim.Options{Level: level, Source: script, Logger: logger})
	if err != nil {
		return err
	}

	for i := 0; i < frames; i++ {
		s.Advance()
		if every > 0 && s.Frame()%every == 0 {
			logState(logger, "tick", s.State())
		}
	}

	if err := script.Err(); err != nil {
		logger.Warn("script reported errors", "script", scriptName, "err", err)
	}
	logState(logger, "done", s.State(),
		"landings", s.EventCount(ecs.EventLanded),
		"wall_hits", s.EventCount(ecs.EventHitWall),
		"head_bumps", s.EventCount(ecs.EventHitHead),
	)
	return nil
}

func logState(logger *slog.Logger, msg string, st sim.State, extra ...any) {
	attrs := []any{
		"frame", st.Frame,
		"x", st.Position.X,
		"y", st.Position.Y,
		"vx", st.Velocity.X,
		"vy", st.Velocity.Y,
		"grounded", st.Contacts.Grounded(),
		"wall", st.Contacts.Wall.String(),
		"clip", st.Clip,
		"camera_x", st.CameraPosition.X,
		"camera_y", st.CameraPosition.Y,
	}
	logger.Info(msg, append(attrs, extra...)...)
}
