package terrain

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestGetRequiredChunksInterior(t *testing.T) {
	dm := NewDataManager(newFakeSource(), DefaultRegion(), 16, 1)
	world := dm.Metrics().WorldSize

	// Camera in the middle of chunk (5,5).
	pos := mgl32.Vec3{5.5 * world, 5.5 * world, 300}
	ids := dm.GetRequiredChunks(pos)

	if len(ids) != 9 {
		t.Fatalf("required chunk count = %d, want 9", len(ids))
	}
	// Row-major from (4,4).
	want := 0
	for cy := 4; cy <= 6; cy++ {
		for cx := 4; cx <= 6; cx++ {
			if ids[want] != NewChunkID(cx, cy) {
				t.Errorf("ids[%d] = %v, want chunk(%d,%d)", want, ids[want], cx, cy)
			}
			want++
		}
	}
}

func TestGetRequiredChunksClampsAtMapEdge(t *testing.T) {
	dm := NewDataManager(newFakeSource(), DefaultRegion(), 16, 1)

	ids := dm.GetRequiredChunks(mgl32.Vec3{0, 0, 0})
	if len(ids) != 4 {
		t.Fatalf("origin required count = %d, want 4", len(ids))
	}
	if ids[0] != NewChunkID(0, 0) {
		t.Errorf("first id = %v, want chunk(0,0)", ids[0])
	}

	// Far beyond the map clamps to the last chunk.
	far := mgl32.Vec3{1e9, 1e9, 0}
	ids = dm.GetRequiredChunks(far)
	last := dm.Metrics().ChunksPerAxis - 1
	if len(ids) != 4 {
		t.Fatalf("far corner required count = %d, want 4", len(ids))
	}
	if ids[len(ids)-1] != NewChunkID(last, last) {
		t.Errorf("last id = %v, want chunk(%d,%d)", ids[len(ids)-1], last, last)
	}
}

func TestGetOrCreateChunkIdempotent(t *testing.T) {
	dm := NewDataManager(newFakeSource(), DefaultRegion(), 16, 1)

	c1 := dm.GetOrCreateChunk(3, 4)
	c2 := dm.GetOrCreateChunk(3, 4)
	if c1 != c2 {
		t.Error("GetOrCreateChunk returned a new instance for a cached chunk")
	}
	if got := dm.GetChunk(3, 4); got != c1 {
		t.Error("GetChunk does not return the cached chunk")
	}
	if dm.GetChunk(9, 9) != nil {
		t.Error("GetChunk created a chunk as a side effect")
	}
}

func TestGetOrCreateChunkEdgeClamp(t *testing.T) {
	dm := NewDataManager(newFakeSource(), DefaultRegion(), 16, 1)

	c := dm.GetOrCreateChunk(15, 15)
	if c.LandblockStartX != 240 || c.LandblockStartY != 240 {
		t.Errorf("start = (%d,%d), want (240,240)", c.LandblockStartX, c.LandblockStartY)
	}
	// 254 landblocks per axis: the last 16-wide chunk holds only 14.
	if c.ActualLandblockCountX != 14 || c.ActualLandblockCountY != 14 {
		t.Errorf("counts = (%d,%d), want (14,14)",
			c.ActualLandblockCountX, c.ActualLandblockCountY)
	}
}

func TestGetChunkForLandblock(t *testing.T) {
	dm := NewDataManager(newFakeSource(), DefaultRegion(), 16, 1)
	c := dm.GetOrCreateChunk(1, 0)

	if got := dm.GetChunkForLandblock(20, 3); got != c {
		t.Error("landblock (20,3) should map to chunk (1,0)")
	}
	if dm.GetChunkForLandblock(3, 3) != nil {
		t.Error("landblock in an uncreated chunk should map to nil")
	}
}

func TestMarkLandblocksDirty(t *testing.T) {
	dm := NewDataManager(newFakeSource(), DefaultRegion(), 16, 1)
	c := dm.GetOrCreateChunk(0, 0)

	dm.MarkLandblocksDirty([]LandblockID{
		NewLandblockID(2, 2),   // chunk (0,0), exists
		NewLandblockID(40, 40), // chunk (2,2), never created
	})

	if ids := c.DirtyLandblocks(); len(ids) != 1 || ids[0] != NewLandblockID(2, 2) {
		t.Errorf("chunk (0,0) dirty = %v", ids)
	}
	if dm.GetChunk(2, 2) != nil {
		t.Error("marking dirty must not create chunks")
	}
	if len(dm.Chunks()) != 1 {
		t.Errorf("chunk cache size = %d, want 1", len(dm.Chunks()))
	}
}

func TestGetHeightAtPosition(t *testing.T) {
	src := newFakeSource()
	src.landblocks[NewLandblockID(0, 0)] = flatEntries(10)
	dm := NewDataManager(src, DefaultRegion(), 16, 1)

	want := DefaultRegion().LandHeight(10)
	if got := dm.GetHeightAtPosition(50, 50); got != want {
		t.Errorf("height = %f, want %f", got, want)
	}

	// Missing landblock and off-map positions return 0.
	if got := dm.GetHeightAtPosition(1000, 1000); got != 0 {
		t.Errorf("missing landblock height = %f, want 0", got)
	}
	if got := dm.GetHeightAtPosition(-5, 20); got != 0 {
		t.Errorf("negative position height = %f, want 0", got)
	}
	if got := dm.GetHeightAtPosition(float32(MapSize)*LandblockSize+1, 0); got != 0 {
		t.Errorf("beyond-map height = %f, want 0", got)
	}
}

func TestGetHeightAtPositionBilinear(t *testing.T) {
	src := newFakeSource()
	entries := make([]TerrainEntry, EntriesPerLandblock)
	// One raised corner: vertex (1,1) of landblock (0,0).
	entries[1*VertexDim+1].Height = 12
	src.landblocks[NewLandblockID(0, 0)] = entries
	dm := NewDataManager(src, DefaultRegion(), 16, 1)

	raised := DefaultRegion().LandHeight(12)

	// At the raised vertex itself.
	if got := dm.GetHeightAtPosition(CellSize, CellSize); got != raised {
		t.Errorf("height at vertex = %f, want %f", got, raised)
	}
	// Center of cell (0,0): only the TR corner is raised, bilinear
	// weight 0.25.
	got := dm.GetHeightAtPosition(CellSize/2, CellSize/2)
	if want := raised * 0.25; got != want {
		t.Errorf("cell center height = %f, want %f", got, want)
	}
}

func TestComputeBoundsFromData(t *testing.T) {
	src := newFakeSource()
	src.landblocks[NewLandblockID(0, 0)] = rampEntries()
	dm := NewDataManager(src, DefaultRegion(), 2, 1)

	c := dm.GetOrCreateChunk(0, 0)
	if c.Bounds.Min != [3]float32{0, 0, 0} {
		t.Errorf("bounds min = %v", c.Bounds.Min)
	}
	// rampEntries heights peak at index 31 -> 62 world units; the
	// chunk covers 2x2 landblocks of 192 units.
	if c.Bounds.Max != [3]float32{2 * LandblockSize, 2 * LandblockSize, 62} {
		t.Errorf("bounds max = %v", c.Bounds.Max)
	}
}

func TestComputeBoundsFallback(t *testing.T) {
	dm := NewDataManager(newFakeSource(), DefaultRegion(), 2, 1)

	c := dm.GetOrCreateChunk(1, 1)
	minH, maxH := DefaultRegion().HeightRange()
	if c.Bounds.Min[2] != minH || c.Bounds.Max[2] != maxH {
		t.Errorf("empty chunk height bounds = [%f,%f], want [%f,%f]",
			c.Bounds.Min[2], c.Bounds.Max[2], minH, maxH)
	}
}
