package collision

import (
	"errors"
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/common"
)

var ErrInvalidBlock = errors.New("collision: invalid block")

const (
	collisionTypeSolid cp.CollisionType = iota + 1
	collisionTypePlatform
)

// Registry is the immutable set of static blocks for one level. Solids and
// platforms keep their insertion order, which is the order the resolver scans
// them in.
type Registry struct {
	solids    []Block
	platforms []Block

	space *cp.Space
}

// NewRegistry validates and stores blocks. The registry must not change after
// construction; nothing in this package mutates it.
func NewRegistry(blocks ...Block) (*Registry, error) {
	r := &Registry{}
	for i, b := range blocks {
		if !b.Rect.Valid() {
			return nil, fmt.Errorf("%w: index %d: %+v", ErrInvalidBlock, i, b.Rect)
		}
		switch b.Kind {
		case Solid:
			r.solids = append(r.solids, b)
		case Platform:
			r.platforms = append(r.platforms, b)
		default:
			return nil, fmt.Errorf("%w: index %d: unknown kind %s", ErrInvalidBlock, i, b.Kind)
		}
	}
	return r, nil
}

// FirstSolid returns the first solid block, in registry order, overlapping
// hitbox. It is not the closest or deepest overlap.
func (r *Registry) FirstSolid(hitbox common.Rect) (Block, bool) {
	if r == nil {
		return Block{}, false
	}
	for _, b := range r.solids {
		if Overlaps(hitbox, b.Rect) {
			return b, true
		}
	}
	return Block{}, false
}

// FirstPlatform returns the first platform, in registry order, that hitbox is
// standing in according to PlatformOverlap.
func (r *Registry) FirstPlatform(hitbox common.Rect) (Block, bool) {
	if r == nil {
		return Block{}, false
	}
	for _, b := range r.platforms {
		if PlatformOverlap(hitbox, b.Rect) {
			return b, true
		}
	}
	return Block{}, false
}

// Solids returns a copy of the solid blocks.
func (r *Registry) Solids() []Block {
	if r == nil {
		return nil
	}
	return append([]Block(nil), r.solids...)
}

// Platforms returns a copy of the platform blocks.
func (r *Registry) Platforms() []Block {
	if r == nil {
		return nil
	}
	return append([]Block(nil), r.platforms...)
}

// Len returns the total number of blocks.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.solids) + len(r.platforms)
}

// MaxSafeSpeed is the smallest block dimension in the registry. An actor moving
// this fast or faster along an axis in one tick can pass through a block
// without ever overlapping it. Returns +Inf for an empty registry.
func (r *Registry) MaxSafeSpeed() float64 {
	least := math.Inf(1)
	if r == nil {
		return least
	}
	for _, set := range [][]Block{r.solids, r.platforms} {
		for _, b := range set {
			least = math.Min(least, math.Min(b.Rect.Width, b.Rect.Height))
		}
	}
	return least
}

// Space returns a chipmunk space holding one static box per block. It is built
// on first use and only serves debug drawing and point queries.
func (r *Registry) Space() *cp.Space {
	if r == nil {
		return nil
	}
	if r.space != nil {
		return r.space
	}

	space := cp.NewSpace()
	add := func(b Block, ct cp.CollisionType) {
		shape := cp.NewBox2(space.StaticBody, b.Rect.BB(), 0)
		shape.SetCollisionType(ct)
		shape.UserData = b
		space.AddShape(shape)
	}
	for _, b := range r.solids {
		add(b, collisionTypeSolid)
	}
	for _, b := range r.platforms {
		add(b, collisionTypePlatform)
	}
	r.space = space
	return space
}

// BlockAt returns a block containing p, if any.
func (r *Registry) BlockAt(p common.Vec) (Block, bool) {
	space := r.Space()
	if space == nil {
		return Block{}, false
	}
	info := space.PointQueryNearest(cp.Vector{X: p.X, Y: p.Y}, 0, cp.SHAPE_FILTER_ALL)
	if info == nil || info.Shape == nil {
		return Block{}, false
	}
	b, ok := info.Shape.UserData.(Block)
	return b, ok
}
