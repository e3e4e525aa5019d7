package main

import (
	"fmt"
	"log/slog"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/platformer/config"
	"github.com/milk9111/platformer/ecs/render"
	"github.com/milk9111/platformer/prefabs"
	"github.com/milk9111/platformer/sim"
)

type Game struct {
	sim     *sim.Sim
	logger  *slog.Logger
	watcher *prefabs.Watcher
	ui      *ebitenui.UI

	debug  bool
	paused bool
	quit   bool

	width  int
	height int
}

func NewGame(cfg *config.Config, logger *slog.Logger, watch bool) (*Game, error) {
	s, err := sim.New(sim.Options{
		Level:  cfg.Level,
		Source: keyboardSource{},
		Logger: logger,
	})
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}

	camCfg := s.Camera().Config()
	g := &Game{
		sim:    s,
		logger: logger,
		debug:  cfg.Debug,
		width:  int(camCfg.ViewportWidth),
		height: int(camCfg.ViewportHeight),
	}
	g.ui = NewPauseUI(g)

	if watch {
		w, err := prefabs.NewWatcher("prefabs", "prefabs/scripts")
		if err != nil {
			logger.Warn("prefab hot reload disabled", "err", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.debug = !g.debug
	}
	g.pollWatcher()

	if g.paused {
		g.ui.Update()
		return nil
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.inspectCursor()
	}

	g.sim.Advance()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	st := g.sim.State()
	actorColor := g.sim.PlayerSpec().Color
	opts := render.Options{
		ShowHitbox:      g.debug,
		ShowTrackingBox: g.debug,
		ShowHUD:         g.debug,
	}
	if actorColor != nil {
		opts.ActorColor = actorColor.Color
	}
	render.DrawWorld(screen, st, g.sim.Registry(), opts)

	if g.debug {
		render.DrawPhysicsDebug(screen, g.sim.Registry().Space(), render.ViewOf(st))
	}
	if g.paused {
		g.ui.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// inspectCursor logs the world coordinate under the mouse and the block
// there, if any.
func (g *Game) inspectCursor() {
	x, y := ebiten.CursorPosition()
	world := g.sim.Camera().ScreenToWorld(float64(x), float64(y))
	attrs := []any{"screen_x", x, "screen_y", y, "world_x", world.X, "world_y", world.Y}
	if b, ok := g.sim.Registry().BlockAt(world); ok {
		attrs = append(attrs, "block", b.Kind.String(), "block_x", b.Rect.Left(), "block_y", b.Rect.Top())
	}
	g.logger.Info("cursor", attrs...)
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	open := g.watcher.Drain(g.applyChange, func(err error) {
		g.logger.Warn("prefab watcher", "err", err)
	})
	if !open {
		g.watcher = nil
	}
}

func (g *Game) applyChange(change prefabs.Change) {
	switch {
	case change.Kind == prefabs.ChangeScript:
		g.logger.Debug("script changed; only the headless simulator runs scripts", "file", change.Name)
	case change.Name == "player.yaml" || change.Name == "physics.yaml":
		g.reloadSpecs()
	default:
		g.logger.Info("prefab changed; restart to apply", "file", change.Name)
	}
}

func (g *Game) reloadSpecs() {
	player, err := prefabs.LoadPlayerSpec()
	if err != nil {
		g.logger.Error("reload player spec", "err", err)
		return
	}
	phys, err := prefabs.LoadPhysicsSpec()
	if err != nil {
		g.logger.Error("reload physics spec", "err", err)
		return
	}
	if err := g.sim.ApplySpecs(player, phys); err != nil {
		g.logger.Error("apply specs", "err", err)
	}
}
