package terrain

import "testing"

func TestNewChunkMetrics(t *testing.T) {
	m := NewChunkMetrics(16)

	if m.ChunkSize != 16 {
		t.Errorf("ChunkSize = %d, want 16", m.ChunkSize)
	}
	if m.CellsPerChunk != 16*16*64 {
		t.Errorf("CellsPerChunk = %d, want %d", m.CellsPerChunk, 16*16*64)
	}
	if m.VerticesPerChunk != m.CellsPerChunk*4 {
		t.Errorf("VerticesPerChunk = %d, want %d", m.VerticesPerChunk, m.CellsPerChunk*4)
	}
	if m.IndicesPerChunk != m.CellsPerChunk*6 {
		t.Errorf("IndicesPerChunk = %d, want %d", m.IndicesPerChunk, m.CellsPerChunk*6)
	}
	if m.WorldSize != 16*LandblockSize {
		t.Errorf("WorldSize = %f, want %f", m.WorldSize, float32(16*LandblockSize))
	}
	// 254 is not divisible by 16: the last chunk row/column is partial.
	if m.ChunksPerAxis != 16 {
		t.Errorf("ChunksPerAxis = %d, want 16", m.ChunksPerAxis)
	}
}

func TestNewChunkMetricsClampsSize(t *testing.T) {
	m := NewChunkMetrics(0)
	if m.ChunkSize != 1 {
		t.Errorf("ChunkSize = %d, want 1", m.ChunkSize)
	}
	if m.ChunksPerAxis != MapSize {
		t.Errorf("ChunksPerAxis = %d, want %d", m.ChunksPerAxis, MapSize)
	}
}

func TestWorstCaseCounts(t *testing.T) {
	m := NewChunkMetrics(16)

	v, i := m.WorstCaseCounts(16, 16)
	if v != 16*16*64*4 || i != 16*16*64*6 {
		t.Errorf("full chunk counts = (%d,%d), want (%d,%d)", v, i, 16*16*64*4, 16*16*64*6)
	}

	// Edge chunk covering a clamped 14x16 extent.
	v, i = m.WorstCaseCounts(14, 16)
	if v != 14*16*64*4 || i != 14*16*64*6 {
		t.Errorf("edge chunk counts = (%d,%d), want (%d,%d)", v, i, 14*16*64*4, 14*16*64*6)
	}
}
