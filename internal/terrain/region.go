package terrain

// HeightTableSize is the number of entries in a region land height
// table; TerrainEntry.Height indexes into it.
const HeightTableSize = 256

// Region holds region-wide lookup tables consumed read-only by the
// terrain core. Terrain entries store table indices rather than raw
// heights, so every height sample goes through LandHeight.
type Region struct {
	heightTable  [HeightTableSize]float32
	terrainTypes int
}

// NewRegion builds a region from an explicit height table.
func NewRegion(heights [HeightTableSize]float32, terrainTypes int) *Region {
	return &Region{heightTable: heights, terrainTypes: terrainTypes}
}

// DefaultRegion returns a region with a linear height table (2 world
// units per step) and the standard 32 terrain types.
func DefaultRegion() *Region {
	r := &Region{terrainTypes: 32}
	for i := range r.heightTable {
		r.heightTable[i] = float32(i) * 2.0
	}
	return r
}

// LandHeight resolves a height table index to a world height.
func (r *Region) LandHeight(index byte) float32 {
	return r.heightTable[index]
}

// TerrainTypes returns the number of terrain type codes defined for
// this region.
func (r *Region) TerrainTypes() int { return r.terrainTypes }

// HeightRange returns the minimum and maximum height present in the
// table, used for conservative chunk bounds when data is missing.
func (r *Region) HeightRange() (min, max float32) {
	min, max = r.heightTable[0], r.heightTable[0]
	for _, h := range r.heightTable[1:] {
		if h < min {
			min = h
		}
		if h > max {
			max = h
		}
	}
	return min, max
}
