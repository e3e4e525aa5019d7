// Package physics integrates an actor's motion each tick and resolves it
// against the static blocks of a collision.Registry.
package physics

import (
	"errors"
	"fmt"
	"math"

	"github.com/milk9111/platformer/common"
)

// DefaultEpsilon is how far outside a block a corrected hitbox is placed.
const DefaultEpsilon = 0.01

var ErrInvalidConfig = errors.New("physics: invalid config")

// HitboxShape places the collision box relative to the actor's sprite anchor.
type HitboxShape struct {
	OffsetX float64
	OffsetY float64
	Width   float64
	Height  float64
}

// Config holds the per-actor physics tunables.
type Config struct {
	Gravity         float64
	Epsilon         float64
	Hitbox          HitboxShape
	InitialVelocity common.Vec
}

// Validate checks the config once at construction; Advance trusts it.
func (c Config) Validate() error {
	if math.IsNaN(c.Gravity) || math.IsInf(c.Gravity, 0) {
		return fmt.Errorf("%w: gravity %g", ErrInvalidConfig, c.Gravity)
	}
	if !(c.Epsilon > 0) || math.IsInf(c.Epsilon, 0) {
		return fmt.Errorf("%w: epsilon must be positive, got %g", ErrInvalidConfig, c.Epsilon)
	}
	if _, err := common.NewRect(c.Hitbox.OffsetX, c.Hitbox.OffsetY, c.Hitbox.Width, c.Hitbox.Height); err != nil {
		return fmt.Errorf("%w: hitbox: %v", ErrInvalidConfig, err)
	}
	if !c.InitialVelocity.Finite() {
		return fmt.Errorf("%w: initial velocity %+v", ErrInvalidConfig, c.InitialVelocity)
	}
	return nil
}

// Actor is the physics state of one moving body. Position is the top-left of
// the sprite; Hitbox is derived from it and is never set directly.
type Actor struct {
	Position common.Vec
	Velocity common.Vec
	Gravity  float64
	Hitbox   common.Rect

	shape   HitboxShape
	epsilon float64
}

// NewActor creates an actor at pos.
func NewActor(pos common.Vec, cfg Config) (*Actor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if !pos.Finite() {
		return nil, fmt.Errorf("%w: position %+v", ErrInvalidConfig, pos)
	}
	a := &Actor{
		Position: pos,
		Velocity: cfg.InitialVelocity,
		Gravity:  cfg.Gravity,
		shape:    cfg.Hitbox,
		epsilon:  cfg.Epsilon,
	}
	a.SyncHitbox()
	return a, nil
}

// Reconfigure swaps gravity, hitbox and epsilon while keeping position and
// velocity.
func (a *Actor) Reconfigure(cfg Config) error {
	if a == nil {
		return nil
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.Gravity = cfg.Gravity
	a.shape = cfg.Hitbox
	a.epsilon = cfg.Epsilon
	a.SyncHitbox()
	return nil
}

// SyncHitbox recomputes Hitbox from Position.
func (a *Actor) SyncHitbox() {
	if a == nil {
		return
	}
	a.Hitbox = a.hitboxAt(a.Position)
}

func (a *Actor) hitboxAt(pos common.Vec) common.Rect {
	return common.Rect{
		Pos:    common.Vec{X: pos.X + a.shape.OffsetX, Y: pos.Y + a.shape.OffsetY},
		Width:  a.shape.Width,
		Height: a.shape.Height,
	}
}

// HitboxShape returns the hitbox placement.
func (a *Actor) HitboxShape() HitboxShape {
	if a == nil {
		return HitboxShape{}
	}
	return a.shape
}

// Epsilon returns the de-penetration bias.
func (a *Actor) Epsilon() float64 {
	if a == nil {
		return 0
	}
	return a.epsilon
}

// ClampToLevel stops horizontal motion that would carry the hitbox past either
// side of a level of the given width. Called by the controller before Advance.
func (a *Actor) ClampToLevel(width float64) {
	if a == nil {
		return
	}
	if a.Hitbox.Right()+a.Velocity.X >= width || a.Hitbox.Left()+a.Velocity.X <= 0 {
		a.Velocity.X = 0
	}
}
