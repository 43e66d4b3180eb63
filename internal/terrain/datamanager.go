package terrain

import (
	"github.com/go-gl/mathgl/mgl32"
)

// DataManager is the spatial index over the landblock grid. It maps
// camera positions to required chunk IDs, lazily creates and caches
// chunk metadata, tracks dirty landblocks and answers height queries.
// All state is owned by the instance; construct one per open terrain
// document.
type DataManager struct {
	metrics    ChunkMetrics
	chunkRange int

	source TerrainSource
	region *Region

	chunks map[ChunkID]*Chunk
}

// NewDataManager creates a data manager over a terrain source. The
// chunk size is fixed for the manager's lifetime; changing it requires
// rebuilding all chunk state. chunkRange is the load radius in chunks
// around the camera (clamped to at least 1).
func NewDataManager(source TerrainSource, region *Region, chunkSize, chunkRange int) *DataManager {
	if chunkRange < 1 {
		chunkRange = 1
	}
	return &DataManager{
		metrics:    NewChunkMetrics(chunkSize),
		chunkRange: chunkRange,
		source:     source,
		region:     region,
		chunks:     make(map[ChunkID]*Chunk),
	}
}

// Metrics returns the derived chunk metrics.
func (dm *DataManager) Metrics() ChunkMetrics { return dm.metrics }

// Source returns the terrain data source.
func (dm *DataManager) Source() TerrainSource { return dm.source }

// Region returns the region metadata.
func (dm *DataManager) Region() *Region { return dm.region }

// GetRequiredChunks returns the IDs of every chunk within the load
// range of the camera position, row-major for deterministic order.
func (dm *DataManager) GetRequiredChunks(cameraPos mgl32.Vec3) []ChunkID {
	maxChunk := dm.metrics.ChunksPerAxis - 1
	ccx := clampi(int(cameraPos.X()/dm.metrics.WorldSize), 0, maxChunk)
	ccy := clampi(int(cameraPos.Y()/dm.metrics.WorldSize), 0, maxChunk)

	x0 := clampi(ccx-dm.chunkRange, 0, maxChunk)
	x1 := clampi(ccx+dm.chunkRange, 0, maxChunk)
	y0 := clampi(ccy-dm.chunkRange, 0, maxChunk)
	y1 := clampi(ccy+dm.chunkRange, 0, maxChunk)

	ids := make([]ChunkID, 0, (x1-x0+1)*(y1-y0+1))
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			ids = append(ids, NewChunkID(cx, cy))
		}
	}
	return ids
}

// GetOrCreateChunk returns the cached chunk at (chunkX, chunkY),
// creating its metadata on first use. Creation clamps the landblock
// extent at the map edge and scans covered terrain data for the height
// bounds.
func (dm *DataManager) GetOrCreateChunk(chunkX, chunkY int) *Chunk {
	id := NewChunkID(chunkX, chunkY)
	if c, ok := dm.chunks[id]; ok {
		return c
	}

	size := dm.metrics.ChunkSize
	startX := chunkX * size
	startY := chunkY * size
	countX := size
	if startX+countX > MapSize {
		countX = MapSize - startX
	}
	countY := size
	if startY+countY > MapSize {
		countY = MapSize - startY
	}
	if countX < 0 {
		countX = 0
	}
	if countY < 0 {
		countY = 0
	}

	c := &Chunk{
		ChunkX:                chunkX,
		ChunkY:                chunkY,
		LandblockStartX:       startX,
		LandblockStartY:       startY,
		ActualLandblockCountX: countX,
		ActualLandblockCountY: countY,
	}
	c.Bounds = dm.computeBounds(c)
	dm.chunks[id] = c
	return c
}

// GetChunk returns a cached chunk by coordinates without creating it.
func (dm *DataManager) GetChunk(chunkX, chunkY int) *Chunk {
	return dm.chunks[NewChunkID(chunkX, chunkY)]
}

// GetChunkForLandblock returns the chunk owning a landblock, or nil if
// that chunk was never created.
func (dm *DataManager) GetChunkForLandblock(lbX, lbY int) *Chunk {
	size := dm.metrics.ChunkSize
	return dm.chunks[NewChunkID(lbX/size, lbY/size)]
}

// MarkLandblocksDirty marks landblocks dirty on their owning chunks.
// Chunks that were never created are left alone: there is no geometry
// to regenerate for them yet.
func (dm *DataManager) MarkLandblocksDirty(ids []LandblockID) {
	for _, id := range ids {
		if c := dm.GetChunkForLandblock(id.X(), id.Y()); c != nil {
			c.MarkDirty(id)
		}
	}
}

// Chunks returns the cached chunk map. Callers must not mutate it.
func (dm *DataManager) Chunks() map[ChunkID]*Chunk { return dm.chunks }

// GetHeightAtPosition returns the bilinearly interpolated terrain
// height at a world position, or 0 when the position is off the map or
// its landblock has no data. It never fails.
func (dm *DataManager) GetHeightAtPosition(worldX, worldY float32) float32 {
	if worldX < 0 || worldY < 0 {
		return 0
	}
	lbX := int(worldX / LandblockSize)
	lbY := int(worldY / LandblockSize)
	if lbX >= MapSize || lbY >= MapSize {
		return 0
	}
	entries := dm.source.GetLandblock(NewLandblockID(lbX, lbY))
	if entries == nil {
		return 0
	}

	localX := worldX - float32(lbX)*LandblockSize
	localY := worldY - float32(lbY)*LandblockSize
	cellX, cellY, dx, dy := cellAt(localX, localY)
	h0, h1, h2, h3 := cornerHeights(dm.region, entries, cellX, cellY)

	fx := dx / CellSize
	fy := dy / CellSize
	bottom := h0*(1-fx) + h1*fx
	top := h3*(1-fx) + h2*fx
	return bottom*(1-fy) + top*fy
}

// computeBounds scans every covered landblock's terrain entries for
// the chunk's height range. Chunks with no data at all fall back to
// the region table's full range so culling stays conservative.
func (dm *DataManager) computeBounds(c *Chunk) Bounds {
	minH := float32(0)
	maxH := float32(0)
	seen := false

	for ly := 0; ly < c.ActualLandblockCountY; ly++ {
		for lx := 0; lx < c.ActualLandblockCountX; lx++ {
			entries := dm.source.GetLandblock(NewLandblockID(c.LandblockStartX+lx, c.LandblockStartY+ly))
			if entries == nil {
				continue
			}
			for i := range entries {
				h := dm.region.LandHeight(entries[i].Height)
				if !seen {
					minH, maxH = h, h
					seen = true
					continue
				}
				if h < minH {
					minH = h
				}
				if h > maxH {
					maxH = h
				}
			}
		}
	}
	if !seen {
		minH, maxH = dm.region.HeightRange()
	}

	minX := float32(c.LandblockStartX) * LandblockSize
	minY := float32(c.LandblockStartY) * LandblockSize
	return Bounds{
		Min: [3]float32{minX, minY, minH},
		Max: [3]float32{
			minX + float32(c.ActualLandblockCountX)*LandblockSize,
			minY + float32(c.ActualLandblockCountY)*LandblockSize,
			maxH,
		},
	}
}

func clampi(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
