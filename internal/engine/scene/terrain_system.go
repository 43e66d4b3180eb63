// Package scene orchestrates terrain streaming per frame.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/nvollmar/landforge/internal/engine/render"
	"github.com/nvollmar/landforge/internal/logger"
	"github.com/nvollmar/landforge/internal/terrain"
)

// TerrainSystem ties the data manager, surface manager and resource
// manager into a per-frame streaming loop. Render thread only.
type TerrainSystem struct {
	dm *terrain.DataManager
	sm terrain.SurfaceManager
	rm *render.ResourceManager
}

// NewTerrainSystem creates a terrain system over the given managers.
func NewTerrainSystem(dm *terrain.DataManager, sm terrain.SurfaceManager,
	rm *render.ResourceManager) *TerrainSystem {
	return &TerrainSystem{dm: dm, sm: sm, rm: rm}
}

// Update makes every chunk in range of the camera resident on the GPU
// and flushes dirty landblocks of already resident chunks. A chunk
// that fails to generate is logged and skipped; the next Update
// retries it.
func (ts *TerrainSystem) Update(cameraPos mgl32.Vec3) {
	for _, id := range ts.dm.GetRequiredChunks(cameraPos) {
		chunk := ts.dm.GetOrCreateChunk(id.X(), id.Y())

		if !ts.rm.HasRenderData(id) {
			if err := ts.rm.CreateChunkResources(chunk, ts.dm, ts.sm); err != nil {
				logger.Error("chunk generation failed",
					zap.Stringer("chunk", id), zap.Error(err))
			}
			continue
		}

		if chunk.IsDirty() {
			if err := ts.rm.UpdateLandblocks(chunk, chunk.DirtyLandblocks(), ts.dm, ts.sm); err != nil {
				logger.Error("chunk update failed",
					zap.Stringer("chunk", id), zap.Error(err))
			}
		}
	}
}

// VisibleChunk pairs a resident chunk with its GPU buffers for the
// draw pass.
type VisibleChunk struct {
	Chunk *terrain.Chunk
	Data  *render.ChunkRenderData
}

// VisibleChunks returns the resident chunks whose bounds intersect the
// view frustum of the given view-projection matrix.
func (ts *TerrainSystem) VisibleChunks(viewProj mgl32.Mat4) []VisibleChunk {
	frustum := render.NewFrustum(viewProj)

	var visible []VisibleChunk
	for id, chunk := range ts.dm.Chunks() {
		rd := ts.rm.GetRenderData(id)
		if rd == nil {
			continue
		}
		if !frustum.IntersectsBoundingBox(chunk.Bounds) {
			continue
		}
		visible = append(visible, VisibleChunk{Chunk: chunk, Data: rd})
	}
	return visible
}
