package terrain

import "errors"

// ErrSurfaceNotFound is returned when the surface manager cannot
// resolve a selected surface index. It signals a mismatch between
// terrain data and region metadata, not a recoverable gap, so
// generation fails instead of leaving a silent hole.
var ErrSurfaceNotFound = errors.New("land surface not found")

// LandSurface describes a resolved cell surface: which atlas layer to
// sample and how the cell UVs are rotated.
type LandSurface struct {
	TexIndex int // texture atlas layer
	Rotation int // 0-3, quarter turns
}

// SurfaceManager resolves cell palette codes to surfaces and writes
// the surface-owned vertex attributes. Implemented by
// internal/surface; the geometry generator only depends on this
// contract.
type SurfaceManager interface {
	// SelectTerrain resolves a surface index and rotation for the cell
	// at global cell coordinates (gx, gy) with the given palette code.
	SelectTerrain(gx, gy int, palCode uint32) (surfaceIdx, rotation int)

	// GetLandSurface resolves a surface index from SelectTerrain.
	// Errors wrap ErrSurfaceNotFound.
	GetLandSurface(surfaceIdx int) (*LandSurface, error)

	// FillVertexData writes position, UV and atlas attributes of one
	// quad corner (0=BL, 1=BR, 2=TR, 3=TL). baseX/baseY is the
	// landblock world origin.
	FillVertexData(id LandblockID, cellX, cellY int, baseX, baseY float32,
		v *VertexLandscape, heightIdx byte, surf *LandSurface, corner int)
}

// Road code bit positions inside a palette code.
const (
	palSizeBit    = 1 << 28
	palRoadShift0 = 20
	palRoadShift1 = 22
	palRoadShift2 = 24
	palRoadShift3 = 26
	palTypeShift0 = 0
	palTypeShift1 = 5
	palTypeShift2 = 10
	palTypeShift3 = 15
)

// PalCode packs the four corner road codes and terrain types of a cell
// into the 28-bit palette code understood by the surface manager.
// Corner order is BL, BR, TR, TL.
func PalCode(r1, r2, r3, r4, t1, t2, t3, t4 byte) uint32 {
	roads := uint32(r1&3)<<palRoadShift0 |
		uint32(r2&3)<<palRoadShift1 |
		uint32(r3&3)<<palRoadShift2 |
		uint32(r4&3)<<palRoadShift3
	types := uint32(t1&0x1f)<<palTypeShift0 |
		uint32(t2&0x1f)<<palTypeShift1 |
		uint32(t3&0x1f)<<palTypeShift2 |
		uint32(t4&0x1f)<<palTypeShift3
	return palSizeBit | roads | types
}
