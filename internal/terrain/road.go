package terrain

// OnRoad reports whether a landblock-local position lies within
// RoadWidth of a road edge or corner. Roads are encoded as per-corner
// flags; the classifier enumerates the 16 corner-flag combinations of
// the containing cell. Adjacent flagged corners form an edge road,
// opposite flagged corners a diagonal road, single corners a road end.
func OnRoad(entries []TerrainEntry, localX, localY float32) bool {
	cellX, cellY, dx, dy := cellAt(localX, localY)

	bl := entries[cellX*VertexDim+cellY].Road & 3
	br := entries[(cellX+1)*VertexDim+cellY].Road & 3
	tr := entries[(cellX+1)*VertexDim+cellY+1].Road & 3
	tl := entries[cellX*VertexDim+cellY+1].Road & 3

	var code int
	if bl > 0 {
		code |= 1
	}
	if br > 0 {
		code |= 2
	}
	if tr > 0 {
		code |= 4
	}
	if tl > 0 {
		code |= 8
	}

	const rMin = float32(RoadWidth)
	const rMax = float32(CellSize - RoadWidth)

	switch code {
	case 0:
		return false
	case 1: // BL corner
		return dx < rMin && dy < rMin
	case 2: // BR corner
		return dx > rMax && dy < rMin
	case 4: // TR corner
		return dx > rMax && dy > rMax
	case 8: // TL corner
		return dx < rMin && dy > rMax
	case 3: // bottom edge
		return dy < rMin
	case 6: // right edge
		return dx > rMax
	case 12: // top edge
		return dy > rMax
	case 9: // left edge
		return dx < rMin
	case 5: // BL-TR diagonal
		return absf(dx-dy) < rMin
	case 10: // BR-TL diagonal
		return absf(dx+dy-CellSize) < rMin
	case 7: // bottom + right
		return dy < rMin || dx > rMax
	case 11: // bottom + left
		return dy < rMin || dx < rMin
	case 13: // left + top
		return dx < rMin || dy > rMax
	case 14: // right + top
		return dx > rMax || dy > rMax
	default: // 15, all corners
		return true
	}
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
