package render

import (
	"fmt"

	"github.com/nvollmar/landforge/internal/terrain"
)

// ChunkRenderData bundles the GPU handles of one resident chunk plus
// the per-landblock offset table needed for in-place sub-range
// rewrites.
type ChunkRenderData struct {
	VertexBuffer VertexBuffer
	IndexBuffer  IndexBuffer
	VertexArray  VertexArray

	VertexCount int
	IndexCount  int

	Landblocks map[terrain.LandblockID]terrain.LandblockSpan
}

func (rd *ChunkRenderData) release() {
	if rd.VertexArray != nil {
		rd.VertexArray.Release()
	}
	if rd.VertexBuffer != nil {
		rd.VertexBuffer.Release()
	}
	if rd.IndexBuffer != nil {
		rd.IndexBuffer.Release()
	}
}

// ResourceManager owns the map from chunk ID to GPU buffer set and a
// pair of reusable scratch arrays for geometry generation. Scratch
// capacity only grows (doubling), so steady-state streaming allocates
// nothing per chunk. Single-threaded: must be driven from the thread
// owning the graphics context.
type ResourceManager struct {
	device Device

	scratchVerts   []terrain.VertexLandscape
	scratchIndices []uint32

	renderData map[terrain.ChunkID]*ChunkRenderData
}

// NewResourceManager creates a resource manager on a graphics device.
func NewResourceManager(device Device) *ResourceManager {
	return &ResourceManager{
		device:     device,
		renderData: make(map[terrain.ChunkID]*ChunkRenderData),
	}
}

// ensureScratch grows the scratch arrays to hold at least the given
// counts. Capacity doubles and never shrinks.
func (rm *ResourceManager) ensureScratch(vertexCount, indexCount int) {
	if cap(rm.scratchVerts) < vertexCount {
		n := 2 * cap(rm.scratchVerts)
		if n < vertexCount {
			n = vertexCount
		}
		rm.scratchVerts = make([]terrain.VertexLandscape, n)
	}
	rm.scratchVerts = rm.scratchVerts[:cap(rm.scratchVerts)]

	if cap(rm.scratchIndices) < indexCount {
		n := 2 * cap(rm.scratchIndices)
		if n < indexCount {
			n = indexCount
		}
		rm.scratchIndices = make([]uint32, n)
	}
	rm.scratchIndices = rm.scratchIndices[:cap(rm.scratchIndices)]
}

// CreateChunkResources generates the full geometry of a chunk and
// uploads it into fresh GPU buffers sized to the actual counts. Any
// existing buffer set for the chunk is released first, so regenerating
// a resident chunk is a normal operation. A chunk that produces no
// geometry at all ends up absent from the render data map. The chunk's
// dirty set is cleared on success.
func (rm *ResourceManager) CreateChunkResources(chunk *terrain.Chunk,
	dm *terrain.DataManager, sm terrain.SurfaceManager) error {

	id := chunk.ID()
	if old, ok := rm.renderData[id]; ok {
		old.release()
		delete(rm.renderData, id)
	}

	worstV, worstI := dm.Metrics().WorstCaseCounts(
		chunk.ActualLandblockCountX, chunk.ActualLandblockCountY)
	rm.ensureScratch(worstV, worstI)

	vCount, iCount, spans, err := terrain.GenerateChunkGeometry(chunk, dm, sm,
		rm.scratchVerts, rm.scratchIndices)
	if err != nil {
		return fmt.Errorf("generate %v: %w", id, err)
	}

	if vCount == 0 {
		chunk.ClearAllDirty()
		return nil
	}

	rd := &ChunkRenderData{
		VertexCount: vCount,
		IndexCount:  iCount,
		Landblocks:  make(map[terrain.LandblockID]terrain.LandblockSpan, len(spans)),
	}
	for _, s := range spans {
		rd.Landblocks[s.ID] = s
	}

	rd.VertexBuffer = rm.device.CreateVertexBuffer(vCount)
	rd.VertexBuffer.SetData(rm.scratchVerts[:vCount])
	rd.IndexBuffer = rm.device.CreateIndexBuffer(iCount)
	rd.IndexBuffer.SetData(rm.scratchIndices[:iCount])
	rd.VertexArray = rm.device.CreateVertexArray(rd.VertexBuffer, rd.IndexBuffer)

	rm.renderData[id] = rd
	chunk.ClearAllDirty()
	return nil
}

// UpdateLandblocks regenerates only the named landblocks of a resident
// chunk and rewrites their recorded buffer ranges in place; all other
// landblocks' data is untouched. If a landblock's regenerated counts
// no longer match its recorded span (data appeared or vanished), the
// offset table is stale and the whole chunk is rebuilt instead.
func (rm *ResourceManager) UpdateLandblocks(chunk *terrain.Chunk, ids []terrain.LandblockID,
	dm *terrain.DataManager, sm terrain.SurfaceManager) error {

	rd, ok := rm.renderData[chunk.ID()]
	if !ok {
		return rm.CreateChunkResources(chunk, dm, sm)
	}

	worstV, worstI := dm.Metrics().WorstCaseCounts(
		chunk.ActualLandblockCountX, chunk.ActualLandblockCountY)
	rm.ensureScratch(worstV, worstI)

	for _, id := range ids {
		span, known := rd.Landblocks[id]
		entries := dm.Source().GetLandblock(id)

		if !known || entries == nil {
			// Geometry appeared or disappeared: span table is stale.
			return rm.CreateChunkResources(chunk, dm, sm)
		}

		vc, ic, err := terrain.GenerateLandblockGeometry(id.X(), id.Y(), entries, sm,
			rm.scratchVerts, rm.scratchIndices, span.VertexOffset, span.IndexOffset)
		if err != nil {
			return fmt.Errorf("regenerate landblock %v: %w", id, err)
		}
		if vc != span.VertexCount || ic != span.IndexCount {
			return rm.CreateChunkResources(chunk, dm, sm)
		}

		rd.VertexBuffer.SetSubData(span.VertexOffset,
			rm.scratchVerts[span.VertexOffset:span.VertexOffset+vc])
		rd.IndexBuffer.SetSubData(span.IndexOffset,
			rm.scratchIndices[span.IndexOffset:span.IndexOffset+ic])
		chunk.ClearDirty(id)
	}
	return nil
}

// HasRenderData reports whether a chunk is resident on the GPU.
func (rm *ResourceManager) HasRenderData(id terrain.ChunkID) bool {
	_, ok := rm.renderData[id]
	return ok
}

// GetRenderData returns the buffer set of a resident chunk, or nil.
func (rm *ResourceManager) GetRenderData(id terrain.ChunkID) *ChunkRenderData {
	return rm.renderData[id]
}

// Close releases every resident chunk's GPU buffers and drops the
// scratch arrays.
func (rm *ResourceManager) Close() {
	for id, rd := range rm.renderData {
		rd.release()
		delete(rm.renderData, id)
	}
	rm.scratchVerts = nil
	rm.scratchIndices = nil
}
