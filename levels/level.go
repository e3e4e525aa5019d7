// Package levels decodes tile collision data and turns it into the static
// block registry.
package levels

import (
	"fmt"

	"github.com/milk9111/platformer/collision"
	"github.com/milk9111/platformer/common"
)

// Level is a flat, row-major tile map. Floor cells holding SolidSymbol become
// solid blocks; Platforms cells holding it become one-sided platforms.
type Level struct {
	Name           string  `json:"name"`
	Columns        int     `json:"columns"`
	TileSize       int     `json:"tile_size,omitempty"`
	SolidSymbol    int     `json:"solid_symbol,omitempty"`
	PlatformHeight float64 `json:"platform_height,omitempty"`
	Spawn          Point   `json:"spawn"`
	Floor          []int   `json:"floor"`
	Platforms      []int   `json:"platforms,omitempty"`
}

// Point is a spawn coordinate in world units.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (l *Level) applyDefaults() {
	if l.TileSize == 0 {
		l.TileSize = common.TileSize
	}
	if l.SolidSymbol == 0 {
		l.SolidSymbol = common.SolidSymbol
	}
	if l.PlatformHeight == 0 {
		l.PlatformHeight = collision.PlatformHeight
	}
}

// Validate checks the stream shapes.
func (l *Level) Validate() error {
	if l == nil {
		return fmt.Errorf("%w: nil level", ErrMalformedLevel)
	}
	if l.Columns <= 0 {
		return fmt.Errorf("%w: columns must be positive, got %d", ErrMalformedLevel, l.Columns)
	}
	if l.TileSize <= 0 {
		return fmt.Errorf("%w: tile size must be positive, got %d", ErrMalformedLevel, l.TileSize)
	}
	if l.PlatformHeight < 0 || l.PlatformHeight > float64(l.TileSize) {
		return fmt.Errorf("%w: platform height %g outside [0, %d]", ErrMalformedLevel, l.PlatformHeight, l.TileSize)
	}
	if len(l.Floor) == 0 || len(l.Floor)%l.Columns != 0 {
		return fmt.Errorf("%w: floor has %d cells, not a multiple of %d columns", ErrMalformedLevel, len(l.Floor), l.Columns)
	}
	if len(l.Platforms) != 0 && len(l.Platforms) != len(l.Floor) {
		return fmt.Errorf("%w: platforms has %d cells, floor has %d", ErrMalformedLevel, len(l.Platforms), len(l.Floor))
	}
	return nil
}

// Rows splits a flat stream into rows of l.Columns cells.
func (l *Level) Rows(stream []int) [][]int {
	if l == nil || l.Columns <= 0 {
		return nil
	}
	rows := make([][]int, 0, len(stream)/l.Columns)
	for i := 0; i < len(stream); i += l.Columns {
		end := min(i+l.Columns, len(stream))
		rows = append(rows, stream[i:end])
	}
	return rows
}

// RowCount returns the number of tile rows.
func (l *Level) RowCount() int {
	if l == nil || l.Columns <= 0 {
		return 0
	}
	return len(l.Floor) / l.Columns
}

// Bounds returns the level size in world units.
func (l *Level) Bounds() (width, height float64) {
	if l == nil {
		return 0, 0
	}
	return float64(l.Columns * l.TileSize), float64(l.RowCount() * l.TileSize)
}

// Blocks instantiates the level's blocks: solids first in row-major order,
// then platforms in row-major order.
func (l *Level) Blocks() ([]collision.Block, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	var blocks []collision.Block
	add := func(stream []int, kind collision.Kind, height float64) error {
		for row, cells := range l.Rows(stream) {
			for col, symbol := range cells {
				if symbol != l.SolidSymbol {
					continue
				}
				x := float64(col * l.TileSize)
				y := float64(row * l.TileSize)
				b, err := collision.NewBlockSized(kind, x, y, float64(l.TileSize), height)
				if err != nil {
					return fmt.Errorf("levels: %s at row %d col %d: %w", kind, row, col, err)
				}
				blocks = append(blocks, b)
			}
		}
		return nil
	}
	if err := add(l.Floor, collision.Solid, float64(l.TileSize)); err != nil {
		return nil, err
	}
	if err := add(l.Platforms, collision.Platform, l.PlatformHeight); err != nil {
		return nil, err
	}
	return blocks, nil
}

// BuildRegistry builds the immutable block registry for the level.
func (l *Level) BuildRegistry() (*collision.Registry, error) {
	blocks, err := l.Blocks()
	if err != nil {
		return nil, err
	}
	return collision.NewRegistry(blocks...)
}

// SpawnPosition returns the actor spawn point.
func (l *Level) SpawnPosition() common.Vec {
	if l == nil {
		return common.Vec{}
	}
	return common.Vec{X: l.Spawn.X, Y: l.Spawn.Y}
}
