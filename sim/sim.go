// Package sim assembles a level, the prefab tunables and the ECS systems into
// one steppable simulation. It has no rendering or windowing dependencies.
package sim

import (
	"fmt"
	"log/slog"

	"github.com/milk9111/platformer/camera"
	"github.com/milk9111/platformer/collision"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/ecs/system"
	"github.com/milk9111/platformer/input"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/physics"
	"github.com/milk9111/platformer/prefabs"
)

type Options struct {
	// Level is a level name resolved by levels.Load. Ignored when LevelData
	// is set.
	Level     string
	LevelData *levels.Level
	Source    input.Source
	Logger    *slog.Logger

	// Spec overrides; nil loads the prefab of the same name.
	Player  *prefabs.PlayerSpec
	Camera  *prefabs.CameraSpec
	Physics *prefabs.PhysicsSpec
}

type Sim struct {
	world    *ecs.World
	player   ecs.Entity
	actor    *physics.Actor
	cam      *camera.Controller
	level    *levels.Level
	registry *collision.Registry
	input    *system.InputSystem
	physics  *system.PhysicsSystem
	events   *system.EventLogSystem
	spec     *prefabs.PlayerSpec
	logger   *slog.Logger
}

func New(opts Options) (*Sim, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	lvl := opts.LevelData
	if lvl == nil {
		var err error
		lvl, err = levels.Load(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("sim: %w", err)
		}
	}
	registry, err := lvl.BuildRegistry()
	if err != nil {
		return nil, fmt.Errorf("sim: level %s: %w", lvl.Name, err)
	}

	playerSpec, camSpec, physSpec, err := resolveSpecs(opts)
	if err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}
	if err := playerSpec.Validate(); err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}

	spawn := lvl.SpawnPosition()
	if spawn == (common.Vec{}) {
		spawn = playerSpec.Position.Vec()
	}
	actor, err := physics.NewActor(spawn, playerSpec.ActorConfig(physSpec))
	if err != nil {
		return nil, fmt.Errorf("sim: player: %w", err)
	}

	levelW, levelH := lvl.Bounds()
	cam, err := camera.NewController(camSpec.Config(levelW, levelH))
	if err != nil {
		return nil, fmt.Errorf("sim: camera: %w", err)
	}

	s := &Sim{
		world:    ecs.NewWorld(),
		actor:    actor,
		cam:      cam,
		level:    lvl,
		registry: registry,
		spec:     playerSpec,
		logger:   logger,
	}
	if err := s.populate(playerSpec, physSpec, levelW, levelH); err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}

	s.input = system.NewInputSystem(opts.Source)
	s.physics = system.NewPhysicsSystem(registry, logger)
	s.events = system.NewEventLogSystem(logger)

	s.world.AddSystem(s.input)
	s.world.AddSystem(system.NewPlayerControllerSystem())
	s.world.AddSystem(s.physics)
	s.world.AddSystem(system.NewCameraSystem())
	s.world.AddSystem(system.NewAnimationSystem())
	s.world.AddSystem(s.events)

	logger.Info("simulation ready",
		"level", lvl.Name,
		"width", levelW,
		"height", levelH,
		"solids", len(registry.Solids()),
		"platforms", len(registry.Platforms()),
		"max_safe_speed", registry.MaxSafeSpeed(),
	)
	return s, nil
}

func resolveSpecs(opts Options) (*prefabs.PlayerSpec, *prefabs.CameraSpec, *prefabs.PhysicsSpec, error) {
	var err error
	player := opts.Player
	if player == nil {
		if player, err = prefabs.LoadPlayerSpec(); err != nil {
			return nil, nil, nil, err
		}
	}
	cam := opts.Camera
	if cam == nil {
		if cam, err = prefabs.LoadCameraSpec(); err != nil {
			return nil, nil, nil, err
		}
	}
	phys := opts.Physics
	if phys == nil {
		if phys, err = prefabs.LoadPhysicsSpec(); err != nil {
			return nil, nil, nil, err
		}
	}
	return player, cam, phys, nil
}

func (s *Sim) populate(player *prefabs.PlayerSpec, phys *prefabs.PhysicsSpec, levelW, levelH float64) error {
	w := s.world

	level := ecs.CreateEntity(w)
	if err := ecs.Add(w, level, component.LevelBoundsComponent.Kind(), &component.LevelBounds{Width: levelW, Height: levelH}); err != nil {
		return err
	}

	s.player = ecs.CreateEntity(w)
	p := s.player
	adds := []error{
		ecs.Add(w, p, component.PlayerTagComponent.Kind(), &component.PlayerTag{}),
		ecs.Add(w, p, component.ActorComponent.Kind(), s.actor),
		ecs.Add(w, p, component.InputComponent.Kind(), &component.Input{}),
		ecs.Add(w, p, component.MovementComponent.Kind(), movementFrom(player, phys)),
		ecs.Add(w, p, component.FacingComponent.Kind(), &component.Facing{}),
		ecs.Add(w, p, component.ContactsComponent.Kind(), &component.Contacts{}),
		ecs.Add(w, p, component.AnimationComponent.Kind(), animationFrom(player)),
	}
	for _, err := range adds {
		if err != nil {
			return err
		}
	}

	camEntity := ecs.CreateEntity(w)
	if err := ecs.Add(w, camEntity, component.CameraTagComponent.Kind(), &component.CameraTag{}); err != nil {
		return err
	}
	return ecs.Add(w, camEntity, component.CameraComponent.Kind(), s.cam)
}

func movementFrom(player *prefabs.PlayerSpec, phys *prefabs.PhysicsSpec) *component.Movement {
	clamp := true
	if phys != nil {
		clamp = phys.ClampToLevel
	}
	return &component.Movement{
		Speed:        player.MoveSpeed,
		JumpVelocity: player.JumpVelocity,
		ClampToLevel: clamp,
	}
}

func animationFrom(player *prefabs.PlayerSpec) *component.Animation {
	defs := make(map[string]component.AnimationDef, len(player.Animations))
	for name, def := range player.Animations {
		defs[name] = component.AnimationDef{FrameCount: def.FrameCount, FrameBuffer: def.FrameBuffer}
	}
	current := player.Idle
	if current == "" {
		current = system.ClipIdle
	}
	return &component.Animation{Defs: defs, Current: current}
}

// Advance runs one tick.
func (s *Sim) Advance() {
	if s == nil {
		return
	}
	s.world.Update()
}

// Frame returns the number of completed ticks.
func (s *Sim) Frame() int {
	if s == nil {
		return 0
	}
	return s.world.Tick()
}

// SetSource swaps the input source, e.g. when a script is reloaded.
func (s *Sim) SetSource(src input.Source) {
	if s == nil {
		return
	}
	s.input.SetSource(src)
}

// ApplySpecs re-tunes the live player without moving it. Position and
// velocity are kept; hitbox, gravity, epsilon, speeds and clips change.
func (s *Sim) ApplySpecs(player *prefabs.PlayerSpec, phys *prefabs.PhysicsSpec) error {
	if s == nil {
		return nil
	}
	if player == nil {
		player = s.spec
	}
	if err := player.Validate(); err != nil {
		return err
	}
	if err := s.actor.Reconfigure(player.ActorConfig(phys)); err != nil {
		return err
	}
	if move, ok := ecs.Get(s.world, s.player, component.MovementComponent.Kind()); ok {
		*move = *movementFrom(player, phys)
	}
	if anim, ok := ecs.Get(s.world, s.player, component.AnimationComponent.Kind()); ok {
		fresh := animationFrom(player)
		anim.Defs = fresh.Defs
		if _, ok := anim.Defs[anim.Current]; !ok {
			anim.Current = fresh.Current
			anim.Frame = 0
		}
	}
	s.spec = player
	s.logger.Info("player specs applied", "name", player.Name, "gravity", player.Gravity, "move_speed", player.MoveSpeed)
	return nil
}

func (s *Sim) World() *ecs.World { return s.world }

func (s *Sim) Registry() *collision.Registry { return s.registry }

func (s *Sim) Level() *levels.Level { return s.level }

func (s *Sim) Actor() *physics.Actor { return s.actor }

func (s *Sim) Camera() *camera.Controller { return s.cam }

func (s *Sim) PlayerSpec() *prefabs.PlayerSpec { return s.spec }

// EventCount returns how many physics events of eventType have been raised.
func (s *Sim) EventCount(eventType string) int { return s.events.Count(eventType) }
