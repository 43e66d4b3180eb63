// Package terrain implements the landblock terrain model: chunk
// partitioning, procedural mesh generation and height/normal sampling
// for a fixed grid of landblocks.
package terrain

import "fmt"

// Grid constants. The map is a fixed square of MapSize landblocks per
// axis; each landblock covers 8x8 cells of 24 world units and stores a
// 9x9 grid of corner samples (cells share corners with neighbors).
const (
	MapSize                = 254
	LandblockEdgeCellCount = 8
	CellsPerLandblock      = LandblockEdgeCellCount * LandblockEdgeCellCount
	CellSize               = 24.0
	LandblockSize          = LandblockEdgeCellCount * CellSize

	// Corner samples per landblock edge and total entries per landblock.
	VertexDim           = LandblockEdgeCellCount + 1
	EntriesPerLandblock = VertexDim * VertexDim

	// Half-width of the band around a road edge, in world units.
	RoadWidth = 5.0

	// Quad geometry per cell.
	VerticesPerCell = 4
	IndicesPerCell  = 6
)

// LandblockID packs landblock coordinates as (x << 8) | y.
// The layout is part of the terrain document contract.
type LandblockID uint16

// NewLandblockID packs landblock grid coordinates into an ID.
func NewLandblockID(x, y int) LandblockID {
	return LandblockID(uint16(x)<<8 | uint16(y)&0xff)
}

// X returns the landblock X coordinate (high byte).
func (id LandblockID) X() int { return int(id >> 8) }

// Y returns the landblock Y coordinate (low byte).
func (id LandblockID) Y() int { return int(id & 0xff) }

func (id LandblockID) String() string {
	return fmt.Sprintf("%02X%02X", id.X(), id.Y())
}

// ChunkID packs chunk coordinates as (x << 32) | y.
type ChunkID uint64

// NewChunkID packs chunk grid coordinates into an ID.
func NewChunkID(x, y int) ChunkID {
	return ChunkID(uint64(x)<<32 | uint64(uint32(y)))
}

// X returns the chunk X coordinate.
func (id ChunkID) X() int { return int(id >> 32) }

// Y returns the chunk Y coordinate.
func (id ChunkID) Y() int { return int(uint32(id)) }

func (id ChunkID) String() string {
	return fmt.Sprintf("chunk(%d,%d)", id.X(), id.Y())
}

// TerrainEntry is one corner sample of a landblock. Entries are read
// from a terrain document and never mutated by this package. The zero
// value stands in for missing samples.
type TerrainEntry struct {
	Type    byte // terrain type code (0-31)
	Road    byte // road code, low 2 bits meaningful
	Scenery byte // scenery density code (0-31)
	Height  byte // index into the region land height table
}

// TerrainSource provides raw landblock terrain data. GetLandblock
// returns nil when the landblock has no data; otherwise the slice has
// exactly EntriesPerLandblock entries laid out at stride VertexDim
// (index = x*9 + y).
type TerrainSource interface {
	GetLandblock(id LandblockID) []TerrainEntry
}

// VertexLandscape is the terrain vertex layout. Position and normal
// are computed by the geometry generator; the remaining attributes are
// written by the surface manager.
type VertexLandscape struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
	TexIndex float32 // surface atlas layer
}
