package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/physics"
)

// PlayerControllerSystem turns input into velocity: a fixed horizontal speed
// while a direction is held, and an upward impulse on the jump press edge.
// The jump is not gated on being grounded.
type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

func (p *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	var bounds *component.LevelBounds
	if e, ok := w.First(component.LevelBoundsComponent.Kind()); ok {
		bounds, _ = ecs.Get(w, e, component.LevelBoundsComponent.Kind())
	}

	ecs.ForEach4(w,
		component.PlayerTagComponent.Kind(),
		component.InputComponent.Kind(),
		component.MovementComponent.Kind(),
		component.ActorComponent.Kind(),
		func(e ecs.Entity, _ *component.PlayerTag, in *component.Input, move *component.Movement, actor *physics.Actor) {
			dir := in.Horizontal()
			actor.Velocity.X = float64(dir) * move.Speed

			if in.JumpPressed {
				actor.Velocity.Y = move.JumpVelocity
			}

			if move.ClampToLevel && bounds != nil {
				actor.ClampToLevel(bounds.Width)
			}

			if facing, ok := ecs.Get(w, e, component.FacingComponent.Kind()); ok && dir != 0 {
				facing.Left = dir < 0
			}
		})
}
