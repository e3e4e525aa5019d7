package collision

import (
	"fmt"

	"github.com/milk9111/platformer/common"
)

// Kind tags a static block as solid or one-sided.
type Kind int

const (
	// Solid blocks motion from every direction.
	Solid Kind = iota
	// Platform blocks motion only when approached from above.
	Platform
)

func (k Kind) String() string {
	switch k {
	case Solid:
		return "solid"
	case Platform:
		return "platform"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

const (
	SolidHeight    = common.TileSize
	PlatformHeight = 4
)

// Block is one piece of static level geometry.
type Block struct {
	Rect common.Rect
	Kind Kind
}

// NewBlock builds a one-tile-wide block at (x, y). A zero height selects the
// default for the kind.
func NewBlock(kind Kind, x, y, height float64) (Block, error) {
	return NewBlockSized(kind, x, y, common.TileSize, height)
}

// NewBlockSized is NewBlock for levels that use a non-default tile width.
func NewBlockSized(kind Kind, x, y, width, height float64) (Block, error) {
	if height == 0 {
		height = defaultHeight(kind)
	}
	r, err := common.NewRect(x, y, width, height)
	if err != nil {
		return Block{}, fmt.Errorf("collision: %s block: %w", kind, err)
	}
	return Block{Rect: r, Kind: kind}, nil
}

func defaultHeight(kind Kind) float64 {
	if kind == Platform {
		return PlatformHeight
	}
	return SolidHeight
}
