package common

import (
	"errors"
	"fmt"

	"github.com/jakecoffman/cp"
)

var ErrInvalidRect = errors.New("common: invalid rect")

// Rect is an axis-aligned box anchored at its top-left corner. Y grows downward.
type Rect struct {
	Pos    Vec
	Width  float64
	Height float64
}

// NewRect validates the dimensions up front so per-frame code never has to.
func NewRect(x, y, w, h float64) (Rect, error) {
	r := Rect{Pos: Vec{X: x, Y: y}, Width: w, Height: h}
	if !r.Valid() {
		return Rect{}, fmt.Errorf("%w: pos=(%g,%g) size=%gx%g", ErrInvalidRect, x, y, w, h)
	}
	return r, nil
}

// Valid reports whether r has finite coordinates and non-negative size.
func (r Rect) Valid() bool {
	return r.Pos.Finite() && isFinite(r.Width) && isFinite(r.Height) && r.Width >= 0 && r.Height >= 0
}

func (r Rect) Left() float64   { return r.Pos.X }
func (r Rect) Right() float64  { return r.Pos.X + r.Width }
func (r Rect) Top() float64    { return r.Pos.Y }
func (r Rect) Bottom() float64 { return r.Pos.Y + r.Height }

// Translate returns r moved by d.
func (r Rect) Translate(d Vec) Rect {
	r.Pos = r.Pos.Add(d)
	return r
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Vec) bool {
	return p.X >= r.Left() && p.X <= r.Right() && p.Y >= r.Top() && p.Y <= r.Bottom()
}

// BB converts r to a chipmunk bounding box. Chipmunk's B/T are min/max y, so
// in screen space B is the top edge and T the bottom edge.
func (r Rect) BB() cp.BB {
	return cp.BB{L: r.Left(), B: r.Top(), R: r.Right(), T: r.Bottom()}
}

// RectFromBB is the inverse of Rect.BB.
func RectFromBB(bb cp.BB) Rect {
	return Rect{Pos: Vec{X: bb.L, Y: bb.B}, Width: bb.R - bb.L, Height: bb.T - bb.B}
}
