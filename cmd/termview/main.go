// Command termview plays a level in the terminal: one cell per tile, A/D to
// run, W or Space to jump, Q or Esc to quit.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/milk9111/platformer/config"
	"github.com/milk9111/platformer/sim"
)

const tickRate = time.Second / 60

func main() {
	cfg := config.Load()
	levelName := flag.String("level", cfg.Level, "level name in levels/ (basename, .json optional)")
	flag.Parse()
	cfg.Level = *levelName

	// The terminal owns stdout; logs only go out at error level on stderr.
	cfg.LogLevel = "error"
	logger := config.SetupLogger(cfg)

	if err := run(logger, cfg.Level); err != nil {
		fmt.Fprintf(os.Stderr, "termview: %v\n", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, level string) error {
	keys := newHeldKeys()
	s, err := sim.New(sim.Options{Level: level, Source: keys, Logger: logger})
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	v := newView(s)

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()
	defer close(quit)

	ticker := time.NewTicker(tickRate)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuit(ev) {
					return nil
				}
				keys.press(ev, s.Frame())
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-ticker.C:
			s.Advance()
			v.draw(screen)
		}
	}
}

func isQuit(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return true
	}
	return ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q')
}
