package terrain

// ChunkMetrics holds values derived from the configured chunk size in
// landblocks. A ChunkMetrics is always built through NewChunkMetrics
// so the derived values cannot drift from the size they came from.
type ChunkMetrics struct {
	ChunkSize        int     // landblocks per chunk axis
	CellsPerChunk    int     // ChunkSize^2 * 64
	VerticesPerChunk int     // CellsPerChunk * 4
	IndicesPerChunk  int     // CellsPerChunk * 6
	WorldSize        float32 // chunk edge length in world units
	ChunksPerAxis    int     // chunk coordinates per map axis
}

// NewChunkMetrics derives chunk metrics from a chunk size in
// landblocks. Size must be at least 1.
func NewChunkMetrics(chunkSize int) ChunkMetrics {
	if chunkSize < 1 {
		chunkSize = 1
	}
	cells := chunkSize * chunkSize * CellsPerLandblock
	perAxis := MapSize / chunkSize
	if MapSize%chunkSize != 0 {
		perAxis++
	}
	return ChunkMetrics{
		ChunkSize:        chunkSize,
		CellsPerChunk:    cells,
		VerticesPerChunk: cells * VerticesPerCell,
		IndicesPerChunk:  cells * IndicesPerCell,
		WorldSize:        float32(chunkSize) * LandblockSize,
		ChunksPerAxis:    perAxis,
	}
}

// WorstCaseCounts returns the vertex and index counts for a chunk
// covering w x h landblocks with no missing data.
func (m ChunkMetrics) WorstCaseCounts(w, h int) (vertices, indices int) {
	cells := w * h * CellsPerLandblock
	return cells * VerticesPerCell, cells * IndicesPerCell
}
