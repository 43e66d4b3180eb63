package terrain

import "github.com/go-gl/mathgl/mgl32"

// cellAt clamps a landblock-local position to a cell and returns the
// cell coordinate plus the position inside the cell.
func cellAt(localX, localY float32) (cellX, cellY int, dx, dy float32) {
	cellX = int(localX / CellSize)
	cellY = int(localY / CellSize)
	if cellX < 0 {
		cellX = 0
	} else if cellX >= LandblockEdgeCellCount {
		cellX = LandblockEdgeCellCount - 1
	}
	if cellY < 0 {
		cellY = 0
	} else if cellY >= LandblockEdgeCellCount {
		cellY = LandblockEdgeCellCount - 1
	}
	dx = localX - float32(cellX)*CellSize
	dy = localY - float32(cellY)*CellSize
	return
}

// cornerHeights returns the four corner heights (BL, BR, TR, TL) of a
// cell resolved through the region height table.
func cornerHeights(region *Region, entries []TerrainEntry, cellX, cellY int) (h0, h1, h2, h3 float32) {
	h0 = region.LandHeight(entries[cellX*VertexDim+cellY].Height)
	h1 = region.LandHeight(entries[(cellX+1)*VertexDim+cellY].Height)
	h2 = region.LandHeight(entries[(cellX+1)*VertexDim+cellY+1].Height)
	h3 = region.LandHeight(entries[cellX*VertexDim+cellY+1].Height)
	return
}

// GetHeight samples the generated terrain surface at a landblock-local
// position. It recomputes the same split direction as mesh generation
// and interpolates on the plane of the containing triangle, so objects
// placed at the returned height sit exactly on the rendered mesh.
func GetHeight(region *Region, entries []TerrainEntry, lbX, lbY int, localX, localY float32) float32 {
	cellX, cellY, dx, dy := cellAt(localX, localY)
	h0, h1, h2, h3 := cornerHeights(region, entries, cellX, cellY)

	fx := dx / CellSize
	fy := dy / CellSize

	if CalculateSplitDirection(lbX, cellX, lbY, cellY) == SWtoNE {
		// Diagonal BR-TL: lower-left triangle holds fx+fy <= 1.
		if fx+fy <= 1 {
			return h0 + (h1-h0)*fx + (h3-h0)*fy
		}
		return h2 + (h3-h2)*(1-fx) + (h1-h2)*(1-fy)
	}
	// Diagonal BL-TR: lower-right triangle holds fy <= fx.
	if fy <= fx {
		return h0 + (h1-h0)*fx + (h2-h1)*fy
	}
	return h0 + (h2-h3)*fx + (h3-h0)*fy
}

// GetNormal samples the face normal of the generated mesh triangle
// containing a landblock-local position. The triangle definitions
// mirror the geometry generator exactly.
func GetNormal(region *Region, entries []TerrainEntry, lbX, lbY int, localX, localY float32) [3]float32 {
	cellX, cellY, dx, dy := cellAt(localX, localY)
	h0, h1, h2, h3 := cornerHeights(region, entries, cellX, cellY)

	x0 := float32(cellX) * CellSize
	y0 := float32(cellY) * CellSize
	p0 := mgl32.Vec3{x0, y0, h0}
	p1 := mgl32.Vec3{x0 + CellSize, y0, h1}
	p2 := mgl32.Vec3{x0 + CellSize, y0 + CellSize, h2}
	p3 := mgl32.Vec3{x0, y0 + CellSize, h3}

	var n mgl32.Vec3
	if CalculateSplitDirection(lbX, cellX, lbY, cellY) == SWtoNE {
		if dx+dy <= CellSize {
			n = p1.Sub(p0).Cross(p3.Sub(p0)).Normalize()
		} else {
			n = p2.Sub(p1).Cross(p3.Sub(p1)).Normalize()
		}
	} else {
		if dy <= dx {
			n = p1.Sub(p0).Cross(p2.Sub(p0)).Normalize()
		} else {
			n = p2.Sub(p0).Cross(p3.Sub(p0)).Normalize()
		}
	}
	return [3]float32{n.X(), n.Y(), n.Z()}
}
