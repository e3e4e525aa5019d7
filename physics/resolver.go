package physics

import (
	"github.com/milk9111/platformer/collision"
)

// Side names the wall an actor ran into.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "none"
	}
}

// Contacts reports which corrections fired during one Advance.
type Contacts struct {
	Wall     Side
	Ground   bool
	Ceiling  bool
	Platform bool
}

// Grounded reports whether the actor landed on a solid block or a platform.
func (c Contacts) Grounded() bool {
	return c.Ground || c.Platform
}

// Advance runs one tick: horizontal move and resolution, then gravity, then
// vertical resolution against solids and finally against platforms. The order
// is fixed; horizontal motion is settled before gravity is applied.
func (a *Actor) Advance(reg *collision.Registry) Contacts {
	var c Contacts
	if a == nil {
		return c
	}

	a.MoveHorizontal()
	c.Wall = a.ResolveHorizontal(reg)

	a.ApplyGravity()
	c.Ground, c.Ceiling = a.ResolveVertical(reg)
	c.Platform = a.ResolvePlatforms(reg)
	return c
}

// MoveHorizontal integrates horizontal velocity.
func (a *Actor) MoveHorizontal() {
	if a == nil {
		return
	}
	a.Position.X += a.Velocity.X
	a.SyncHitbox()
}

// ResolveHorizontal pushes the actor out of the first overlapping solid, in
// registry order, along its direction of travel. A stationary actor is left
// alone even if it overlaps.
func (a *Actor) ResolveHorizontal(reg *collision.Registry) Side {
	if a == nil {
		return SideNone
	}
	block, ok := reg.FirstSolid(a.Hitbox)
	if !ok {
		return SideNone
	}

	switch {
	case a.Velocity.X > 0:
		a.Velocity.X = 0
		a.Position.X = block.Rect.Left() - a.shape.OffsetX - a.shape.Width - a.epsilon
		a.SyncHitbox()
		return SideRight
	case a.Velocity.X < 0:
		a.Velocity.X = 0
		a.Position.X = block.Rect.Right() - a.shape.OffsetX + a.epsilon
		a.SyncHitbox()
		return SideLeft
	}
	return SideNone
}

// ApplyGravity accelerates and integrates vertical motion.
func (a *Actor) ApplyGravity() {
	if a == nil {
		return
	}
	a.Velocity.Y += a.Gravity
	a.Position.Y += a.Velocity.Y
	a.SyncHitbox()
}

// ResolveVertical pushes the actor out of the first overlapping solid along
// its vertical direction of travel.
func (a *Actor) ResolveVertical(reg *collision.Registry) (ground, ceiling bool) {
	if a == nil {
		return false, false
	}
	block, ok := reg.FirstSolid(a.Hitbox)
	if !ok {
		return false, false
	}

	switch {
	case a.Velocity.Y > 0:
		a.Velocity.Y = 0
		a.Position.Y = block.Rect.Top() - a.shape.OffsetY - a.shape.Height - a.epsilon
		a.SyncHitbox()
		return true, false
	case a.Velocity.Y < 0:
		a.Velocity.Y = 0
		a.Position.Y = block.Rect.Bottom() - a.shape.OffsetY + a.epsilon
		a.SyncHitbox()
		return false, true
	}
	return false, false
}

// ResolvePlatforms lands a falling actor on the first platform its feet are
// inside. Rising actors pass through.
func (a *Actor) ResolvePlatforms(reg *collision.Registry) bool {
	if a == nil {
		return false
	}
	a.SyncHitbox()
	if a.Velocity.Y <= 0 {
		return false
	}
	block, ok := reg.FirstPlatform(a.Hitbox)
	if !ok {
		return false
	}
	a.Velocity.Y = 0
	a.Position.Y = block.Rect.Top() - a.shape.OffsetY - a.shape.Height - a.epsilon
	a.SyncHitbox()
	return true
}
