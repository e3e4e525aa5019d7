package system

import (
	"github.com/milk9111/platformer/camera"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// CameraSystem moves the tracking box with the player and pans the view
// using the player's post-physics velocity.
type CameraSystem struct {
	camEntity    ecs.Entity
	targetEntity ecs.Entity
}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	if cs == nil || w == nil {
		return
	}

	if !ecs.IsAlive(w, cs.camEntity) {
		e, ok := w.First(component.CameraComponent.Kind())
		if !ok {
			return
		}
		cs.camEntity = e
	}
	if !ecs.IsAlive(w, cs.targetEntity) {
		players := w.Query(component.PlayerTagComponent.Kind(), component.ActorComponent.Kind())
		if len(players) == 0 {
			return
		}
		cs.targetEntity = players[0]
	}

	cam, ok := ecs.Get(w, cs.camEntity, component.CameraComponent.Kind())
	if !ok {
		return
	}
	actor, ok := ecs.Get(w, cs.targetEntity, component.ActorComponent.Kind())
	if !ok {
		return
	}
	cam.Update(actor.Position, actor.Velocity)
}

// Camera returns the controller being driven, if any.
func (cs *CameraSystem) Camera(w *ecs.World) *camera.Controller {
	if cs == nil || w == nil {
		return nil
	}
	cam, _ := ecs.Get(w, cs.camEntity, component.CameraComponent.Kind())
	return cam
}
