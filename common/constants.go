package common

const (
	// TileSize is the default edge length of one level tile in world units.
	TileSize = 16

	// SolidSymbol marks a collidable cell in level collision streams.
	SolidSymbol = 202
)
