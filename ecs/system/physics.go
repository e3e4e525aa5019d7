package system

import (
	"log/slog"

	"github.com/milk9111/platformer/collision"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/physics"
)

// PhysicsSystem advances every actor against the level's static blocks and
// raises events when contacts change.
type PhysicsSystem struct {
	registry *collision.Registry
	logger   *slog.Logger
}

func NewPhysicsSystem(registry *collision.Registry, logger *slog.Logger) *PhysicsSystem {
	if logger == nil {
		logger = slog.Default()
	}
	return &PhysicsSystem{registry: registry, logger: logger}
}

func (p *PhysicsSystem) Registry() *collision.Registry {
	if p == nil {
		return nil
	}
	return p.registry
}

// SetRegistry swaps the level geometry, e.g. after a level reload.
func (p *PhysicsSystem) SetRegistry(r *collision.Registry) {
	if p == nil {
		return
	}
	p.registry = r
}

func (p *PhysicsSystem) Update(w *ecs.World) {
	if p == nil || w == nil {
		return
	}

	ecs.ForEach(w, component.ActorComponent.Kind(), func(e ecs.Entity, actor *physics.Actor) {
		contacts := actor.Advance(p.registry)

		c, ok := ecs.Get(w, e, component.ContactsComponent.Kind())
		if !ok {
			return
		}
		c.Previous = c.Current
		c.Current = contacts
		p.raise(w, e, c)
	})
}

func (p *PhysicsSystem) raise(w *ecs.World, e ecs.Entity, c *component.Contacts) {
	q := w.Events()
	was, is := c.Previous.Grounded(), c.Current.Grounded()
	switch {
	case is && !was:
		q.Push(ecs.Event{Type: ecs.EventLanded, Entity: e, Data: c.Current})
	case was && !is:
		q.Push(ecs.Event{Type: ecs.EventLeftFeet, Entity: e, Data: c.Current})
	}
	if c.Current.Wall != physics.SideNone && c.Current.Wall != c.Previous.Wall {
		q.Push(ecs.Event{Type: ecs.EventHitWall, Entity: e, Data: c.Current.Wall})
	}
	if c.Current.Ceiling {
		q.Push(ecs.Event{Type: ecs.EventHitHead, Entity: e, Data: c.Current})
	}
}
