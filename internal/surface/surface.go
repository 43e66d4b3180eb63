// Package surface resolves cell palette codes to texture surfaces and
// fills the surface-owned vertex attributes of the terrain mesh.
package surface

import (
	"fmt"

	"github.com/nvollmar/landforge/internal/terrain"
)

// rotationsPerType is the number of pre-rotated surface variants kept
// per terrain type.
const rotationsPerType = 4

// Manager is the default surface resolver: a fixed table of one
// surface per (terrain type, rotation) pair, with the type chosen from
// the dominant corner of the palette code. Deterministic for a given
// region so generated meshes are reproducible.
type Manager struct {
	region   *terrain.Region
	surfaces []terrain.LandSurface
}

var _ terrain.SurfaceManager = (*Manager)(nil)

// NewManager builds the surface table for a region.
func NewManager(region *terrain.Region) *Manager {
	m := &Manager{region: region}
	m.surfaces = make([]terrain.LandSurface, region.TerrainTypes()*rotationsPerType)
	for i := range m.surfaces {
		m.surfaces[i] = terrain.LandSurface{
			TexIndex: i / rotationsPerType,
			Rotation: i % rotationsPerType,
		}
	}
	return m
}

// SelectTerrain picks a surface index and rotation for a cell. The
// dominant corner terrain type selects the texture; the first corner
// carrying that type selects the rotation.
func (m *Manager) SelectTerrain(gx, gy int, palCode uint32) (surfaceIdx, rotation int) {
	types := [4]int{
		int(palCode) & 0x1f,
		int(palCode>>5) & 0x1f,
		int(palCode>>10) & 0x1f,
		int(palCode>>15) & 0x1f,
	}

	dominant := types[0]
	best := 0
	for _, t := range types {
		n := 0
		for _, u := range types {
			if u == t {
				n++
			}
		}
		if n > best || (n == best && t < dominant) {
			best = n
			dominant = t
		}
	}
	for i, t := range types {
		if t == dominant {
			rotation = i
			break
		}
	}
	return dominant*rotationsPerType + rotation, rotation
}

// GetLandSurface resolves a surface index from SelectTerrain. An
// out-of-range index means the terrain data does not match the region
// metadata.
func (m *Manager) GetLandSurface(surfaceIdx int) (*terrain.LandSurface, error) {
	if surfaceIdx < 0 || surfaceIdx >= len(m.surfaces) {
		return nil, fmt.Errorf("surface %d: %w", surfaceIdx, terrain.ErrSurfaceNotFound)
	}
	return &m.surfaces[surfaceIdx], nil
}

// Quad corner offsets in cells, order BL, BR, TR, TL.
var cornerOffsets = [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

// Base UVs rotated by surf.Rotation quarter turns.
var cornerUVs = [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

// FillVertexData writes the position, UV and atlas layer of one quad
// corner. Heights are resolved through the region land height table.
func (m *Manager) FillVertexData(id terrain.LandblockID, cellX, cellY int, baseX, baseY float32,
	v *terrain.VertexLandscape, heightIdx byte, surf *terrain.LandSurface, corner int) {

	off := cornerOffsets[corner]
	v.Position[0] = baseX + (float32(cellX)+off[0])*terrain.CellSize
	v.Position[1] = baseY + (float32(cellY)+off[1])*terrain.CellSize
	v.Position[2] = m.region.LandHeight(heightIdx)

	uv := cornerUVs[(corner+surf.Rotation)&3]
	v.TexCoord[0] = uv[0]
	v.TexCoord[1] = uv[1]
	v.TexIndex = float32(surf.TexIndex)
}
