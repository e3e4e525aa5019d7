// Package camera pans a view offset to follow an actor through a level.
package camera

import (
	"errors"
	"fmt"
	"math"

	"github.com/milk9111/platformer/common"
)

var ErrInvalidConfig = errors.New("camera: invalid config")

// TrackingBox places the box that drives panning relative to the actor's
// position. It is independent of the actor's hitbox.
type TrackingBox struct {
	OffsetX float64
	OffsetY float64
	Width   float64
	Height  float64
}

// Config holds the viewport and level dimensions the camera is bounded by.
type Config struct {
	Tracking       TrackingBox
	ViewportWidth  float64
	ViewportHeight float64
	// Zoom is the render scale; the visible world area is viewport / zoom.
	Zoom        float64
	LevelWidth  float64
	LevelHeight float64
}

func (c Config) Validate() error {
	if c.Tracking.Width < 0 || c.Tracking.Height < 0 {
		return fmt.Errorf("%w: tracking box %gx%g", ErrInvalidConfig, c.Tracking.Width, c.Tracking.Height)
	}
	if c.ViewportWidth <= 0 || c.ViewportHeight <= 0 {
		return fmt.Errorf("%w: viewport %gx%g", ErrInvalidConfig, c.ViewportWidth, c.ViewportHeight)
	}
	if c.Zoom <= 0 {
		return fmt.Errorf("%w: zoom %g", ErrInvalidConfig, c.Zoom)
	}
	if c.LevelWidth <= 0 || c.LevelHeight <= 0 {
		return fmt.Errorf("%w: level %gx%g", ErrInvalidConfig, c.LevelWidth, c.LevelHeight)
	}
	return nil
}

// ScaledViewport returns the size of the visible world area.
func (c Config) ScaledViewport() (float64, float64) {
	return c.ViewportWidth / c.Zoom, c.ViewportHeight / c.Zoom
}

// Controller owns the camera offset. The offset is a render translation, so it
// is zero or negative while the level is larger than the view.
type Controller struct {
	Position common.Vec
	Box      common.Rect

	cfg Config
}

// NewController starts with the bottom of the level in view.
func NewController(cfg Config) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	_, viewH := cfg.ScaledViewport()
	return &Controller{
		Position: common.Vec{X: 0, Y: -cfg.LevelHeight + viewH},
		cfg:      cfg,
	}, nil
}

func (c *Controller) Config() Config {
	if c == nil {
		return Config{}
	}
	return c.cfg
}

// UpdateBox recomputes the tracking box from the actor position.
func (c *Controller) UpdateBox(actor common.Vec) {
	if c == nil {
		return
	}
	c.Box = common.Rect{
		Pos:    common.Vec{X: actor.X + c.cfg.Tracking.OffsetX, Y: actor.Y + c.cfg.Tracking.OffsetY},
		Width:  c.cfg.Tracking.Width,
		Height: c.cfg.Tracking.Height,
	}
}

// Update recomputes the tracking box and runs every pan check. Each check only
// moves the camera when the velocity points its way, so a frame pans each axis
// by exactly -velocity or not at all.
func (c *Controller) Update(actor, velocity common.Vec) {
	if c == nil {
		return
	}
	c.UpdateBox(actor)
	if velocity.X > 0 {
		c.PanLeft(velocity)
	}
	if velocity.X < 0 {
		c.PanRight(velocity)
	}
	if velocity.Y < 0 {
		c.PanDown(velocity)
	}
	if velocity.Y > 0 {
		c.PanUp(velocity)
	}
}

// PanLeft shifts the view as the actor moves right once the tracking box's
// right edge reaches the right side of the visible area.
func (c *Controller) PanLeft(velocity common.Vec) bool {
	if c == nil {
		return false
	}
	right := c.Box.Right()
	if right >= c.cfg.LevelWidth {
		return false
	}
	viewW, _ := c.cfg.ScaledViewport()
	if right >= viewW+math.Abs(c.Position.X) {
		c.Position.X -= velocity.X
		return true
	}
	return false
}

// PanRight shifts the view as the actor moves left once the tracking box's
// left edge reaches the left side of the visible area.
func (c *Controller) PanRight(velocity common.Vec) bool {
	if c == nil {
		return false
	}
	left := c.Box.Left()
	if left <= 0 {
		return false
	}
	if left <= math.Abs(c.Position.X) {
		c.Position.X -= velocity.X
		return true
	}
	return false
}

// PanDown follows a rising actor once the tracking box top reaches the top of
// the visible area.
func (c *Controller) PanDown(velocity common.Vec) bool {
	if c == nil {
		return false
	}
	if c.Box.Top()+velocity.Y <= 0 {
		return false
	}
	if c.Box.Top() <= math.Abs(c.Position.Y) {
		c.Position.Y -= velocity.Y
		return true
	}
	return false
}

// PanUp follows a falling actor once the tracking box bottom reaches the bottom
// of the visible area.
func (c *Controller) PanUp(velocity common.Vec) bool {
	if c == nil {
		return false
	}
	bottom := c.Box.Bottom()
	if bottom+velocity.Y >= c.cfg.LevelHeight {
		return false
	}
	_, viewH := c.cfg.ScaledViewport()
	if bottom >= math.Abs(c.Position.Y)+viewH {
		c.Position.Y -= velocity.Y
		return true
	}
	return false
}

// Transform returns the render transform: scale by zoom, then translate by the
// camera offset in world units.
func (c *Controller) Transform() (scale, tx, ty float64) {
	if c == nil {
		return 1, 0, 0
	}
	return c.cfg.Zoom, c.Position.X, c.Position.Y
}

// ScreenToWorld maps a screen pixel to world coordinates.
func (c *Controller) ScreenToWorld(x, y float64) common.Vec {
	scale, tx, ty := c.Transform()
	return common.Vec{X: x/scale - tx, Y: y/scale - ty}
}
