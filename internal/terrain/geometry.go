package terrain

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// LandblockSpan records where one landblock's geometry lives inside a
// chunk's shared buffers. Spans never overlap; the resource manager
// uses them to rewrite a single landblock in place.
type LandblockSpan struct {
	ID           LandblockID
	VertexOffset int
	VertexCount  int
	IndexOffset  int
	IndexCount   int
}

// GenerateChunkGeometry builds the triangle mesh for every landblock
// covered by the chunk into the caller-supplied buffers, which must be
// pre-sized to the chunk's worst case. Landblocks beyond the map edge
// or without terrain data are skipped, so the returned actual counts
// can be smaller than the buffer capacity. The returned spans record
// the buffer range of each generated landblock, row-major.
func GenerateChunkGeometry(chunk *Chunk, dm *DataManager, sm SurfaceManager,
	verts []VertexLandscape, indices []uint32) (vertexCount, indexCount int, spans []LandblockSpan, err error) {

	for ly := 0; ly < chunk.ActualLandblockCountY; ly++ {
		for lx := 0; lx < chunk.ActualLandblockCountX; lx++ {
			lbX := chunk.LandblockStartX + lx
			lbY := chunk.LandblockStartY + ly
			if lbX >= MapSize || lbY >= MapSize {
				continue
			}
			id := NewLandblockID(lbX, lbY)
			entries := dm.Source().GetLandblock(id)
			if entries == nil {
				continue
			}
			vc, ic, genErr := GenerateLandblockGeometry(lbX, lbY, entries, sm,
				verts, indices, vertexCount, indexCount)
			if genErr != nil {
				return vertexCount, indexCount, spans, genErr
			}
			spans = append(spans, LandblockSpan{
				ID:           id,
				VertexOffset: vertexCount,
				VertexCount:  vc,
				IndexOffset:  indexCount,
				IndexCount:   ic,
			})
			vertexCount += vc
			indexCount += ic
		}
	}
	return vertexCount, indexCount, spans, nil
}

// GenerateLandblockGeometry emits one quad (4 vertices, 6 indices) per
// cell of the landblock at (lbX, lbY), writing into verts and indices
// starting at vertexBase/indexBase. Emitted index values are relative
// to the buffer start (offset by vertexBase), so a landblock can be
// regenerated in place as long as its base offsets are unchanged.
func GenerateLandblockGeometry(lbX, lbY int, entries []TerrainEntry, sm SurfaceManager,
	verts []VertexLandscape, indices []uint32, vertexBase, indexBase int) (vertexCount, indexCount int, err error) {

	if len(entries) != EntriesPerLandblock {
		return 0, 0, fmt.Errorf("landblock %s: %d terrain entries, want %d",
			NewLandblockID(lbX, lbY), len(entries), EntriesPerLandblock)
	}

	id := NewLandblockID(lbX, lbY)
	baseX := float32(lbX) * LandblockSize
	baseY := float32(lbY) * LandblockSize

	for cellY := 0; cellY < LandblockEdgeCellCount; cellY++ {
		for cellX := 0; cellX < LandblockEdgeCellCount; cellX++ {
			// Corner samples at stride 9: BL, BR, TR, TL.
			bl := entries[cellX*VertexDim+cellY]
			br := entries[(cellX+1)*VertexDim+cellY]
			tr := entries[(cellX+1)*VertexDim+cellY+1]
			tl := entries[cellX*VertexDim+cellY+1]

			palCode := PalCode(bl.Road, br.Road, tr.Road, tl.Road,
				bl.Type, br.Type, tr.Type, tl.Type)
			gx := lbX*LandblockEdgeCellCount + cellX
			gy := lbY*LandblockEdgeCellCount + cellY
			surfaceIdx, _ := sm.SelectTerrain(gx, gy, palCode)
			surf, surfErr := sm.GetLandSurface(surfaceIdx)
			if surfErr != nil {
				return vertexCount, indexCount, fmt.Errorf("landblock %s cell (%d,%d): %w",
					id, cellX, cellY, surfErr)
			}

			vb := vertexBase + vertexCount
			quad := verts[vb : vb+VerticesPerCell]
			heights := [4]byte{bl.Height, br.Height, tr.Height, tl.Height}
			for corner := 0; corner < VerticesPerCell; corner++ {
				sm.FillVertexData(id, cellX, cellY, baseX, baseY,
					&quad[corner], heights[corner], surf, corner)
			}

			split := CalculateSplitDirection(lbX, cellX, lbY, cellY)
			fillCellNormals(quad, split)

			ib := indexBase + indexCount
			base := uint32(vb)
			switch split {
			case SWtoNE:
				indices[ib+0] = base + 0
				indices[ib+1] = base + 3
				indices[ib+2] = base + 1
				indices[ib+3] = base + 1
				indices[ib+4] = base + 3
				indices[ib+5] = base + 2
			case SEtoNW:
				indices[ib+0] = base + 0
				indices[ib+1] = base + 2
				indices[ib+2] = base + 1
				indices[ib+3] = base + 0
				indices[ib+4] = base + 3
				indices[ib+5] = base + 2
			}

			vertexCount += VerticesPerCell
			indexCount += IndicesPerCell
		}
	}
	return vertexCount, indexCount, nil
}

// fillCellNormals writes per-vertex normals for one quad from the face
// normals of its two split triangles. Vertices on the shared diagonal
// get the normalized sum of both face normals.
func fillCellNormals(quad []VertexLandscape, split SplitDirection) {
	p0 := mgl32.Vec3{quad[0].Position[0], quad[0].Position[1], quad[0].Position[2]}
	p1 := mgl32.Vec3{quad[1].Position[0], quad[1].Position[1], quad[1].Position[2]}
	p2 := mgl32.Vec3{quad[2].Position[0], quad[2].Position[1], quad[2].Position[2]}
	p3 := mgl32.Vec3{quad[3].Position[0], quad[3].Position[1], quad[3].Position[2]}

	var n1, n2 mgl32.Vec3
	if split == SWtoNE {
		// Triangles (0,3,1) and (1,3,2); diagonal 1-3.
		n1 = p1.Sub(p0).Cross(p3.Sub(p0)).Normalize()
		n2 = p2.Sub(p1).Cross(p3.Sub(p1)).Normalize()
		shared := n1.Add(n2).Normalize()
		setNormal(&quad[0], n1)
		setNormal(&quad[1], shared)
		setNormal(&quad[2], n2)
		setNormal(&quad[3], shared)
	} else {
		// Triangles (0,2,1) and (0,3,2); diagonal 0-2.
		n1 = p1.Sub(p0).Cross(p2.Sub(p0)).Normalize()
		n2 = p2.Sub(p0).Cross(p3.Sub(p0)).Normalize()
		shared := n1.Add(n2).Normalize()
		setNormal(&quad[0], shared)
		setNormal(&quad[1], n1)
		setNormal(&quad[2], shared)
		setNormal(&quad[3], n2)
	}
}

func setNormal(v *VertexLandscape, n mgl32.Vec3) {
	v.Normal[0] = n.X()
	v.Normal[1] = n.Y()
	v.Normal[2] = n.Z()
}
