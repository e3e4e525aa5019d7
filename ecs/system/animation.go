package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/physics"
)

// Clip names looked up in the animation table.
const (
	ClipIdle = "Idle"
	ClipRun  = "Run"
	ClipJump = "Jump"
	ClipFall = "Fall"

	leftSuffix = "Left"
)

// AnimationSystem picks a clip from input, velocity and facing, then steps
// frames: every FrameBuffer ticks the frame advances, wrapping at FrameCount.
type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.AnimationComponent.Kind(), component.ActorComponent.Kind(), func(e ecs.Entity, anim *component.Animation, actor *physics.Actor) {
		left := false
		if facing, ok := ecs.Get(w, e, component.FacingComponent.Kind()); ok {
			left = facing.Left
		}
		dir := 0
		if in, ok := ecs.Get(w, e, component.InputComponent.Kind()); ok {
			dir = in.Horizontal()
		}

		anim.Play(chooseClip(dir, actor.Velocity.Y, left))
		step(anim)
	})
}

// chooseClip runs while a direction is held and idles otherwise; any
// vertical motion overrides both with jump or fall.
func chooseClip(dir int, vy float64, left bool) string {
	base := ClipIdle
	if dir != 0 {
		base = ClipRun
	}
	switch {
	case vy < 0:
		base = ClipJump
	case vy > 0:
		base = ClipFall
	}
	if left {
		return base + leftSuffix
	}
	return base
}

func step(anim *component.Animation) {
	def, ok := anim.Defs[anim.Current]
	if !ok || def.FrameCount <= 0 || def.FrameBuffer <= 0 {
		return
	}
	anim.Elapsed++
	if anim.Elapsed%def.FrameBuffer != 0 {
		return
	}
	if anim.Frame < def.FrameCount-1 {
		anim.Frame++
	} else {
		anim.Frame = 0
	}
}
