package sim

import (
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/physics"
)

// State is a read-only snapshot for presentation layers.
type State struct {
	Frame      int
	Position   common.Vec
	Velocity   common.Vec
	Hitbox     common.Rect
	Sprite     common.Rect
	Contacts   physics.Contacts
	FacingLeft bool

	Clip      string
	ClipFrame int

	CameraPosition common.Vec
	TrackingBox    common.Rect
	Zoom           float64

	LevelWidth  float64
	LevelHeight float64
}

func (s *Sim) State() State {
	if s == nil {
		return State{}
	}
	st := State{
		Frame:          s.Frame(),
		Position:       s.actor.Position,
		Velocity:       s.actor.Velocity,
		Hitbox:         s.actor.Hitbox,
		CameraPosition: s.cam.Position,
		TrackingBox:    s.cam.Box,
		Zoom:           s.cam.Config().Zoom,
		Sprite: common.Rect{
			Pos:    s.actor.Position,
			Width:  s.spec.Sprite.Width,
			Height: s.spec.Sprite.Height,
		},
	}
	st.LevelWidth, st.LevelHeight = s.level.Bounds()

	if c, ok := ecs.Get(s.world, s.player, component.ContactsComponent.Kind()); ok {
		st.Contacts = c.Current
	}
	if f, ok := ecs.Get(s.world, s.player, component.FacingComponent.Kind()); ok {
		st.FacingLeft = f.Left
	}
	if a, ok := ecs.Get(s.world, s.player, component.AnimationComponent.Kind()); ok {
		st.Clip = a.Current
		st.ClipFrame = a.Frame
	}
	return st
}
