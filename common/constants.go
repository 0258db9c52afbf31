package common

const (
	// GridWidth and GridHeight are the canonical level dimensions. Every
	// level matrix is normalized to this size before spawning anything.
	GridWidth  = 20
	GridHeight = 20

	// TileSize is the world-space size of one grid cell in pixels.
	TileSize = 32

	BaseWidth  = GridWidth * TileSize
	BaseHeight = GridHeight * TileSize
)
