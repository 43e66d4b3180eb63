// Package document provides terrain data sources: an editable
// in-memory document and a persistent sqlite-backed store.
package document

import (
	"github.com/nvollmar/landforge/internal/terrain"
)

// MemoryDocument is an editable in-memory terrain source. Landblocks
// store their own 9x9 corner grids, so edge samples are duplicated
// across neighbors; edits go through SetHeight/SetEntry, which keep
// the duplicates consistent and report every touched landblock so the
// caller can mark them dirty.
type MemoryDocument struct {
	landblocks map[terrain.LandblockID][]terrain.TerrainEntry
}

var _ terrain.TerrainSource = (*MemoryDocument)(nil)

// NewMemoryDocument creates an empty document.
func NewMemoryDocument() *MemoryDocument {
	return &MemoryDocument{
		landblocks: make(map[terrain.LandblockID][]terrain.TerrainEntry),
	}
}

// GetLandblock returns the terrain entries of a landblock, or nil.
func (d *MemoryDocument) GetLandblock(id terrain.LandblockID) []terrain.TerrainEntry {
	return d.landblocks[id]
}

// SetLandblock installs a full landblock. Entries must have
// terrain.EntriesPerLandblock elements; nil removes the landblock.
func (d *MemoryDocument) SetLandblock(id terrain.LandblockID, entries []terrain.TerrainEntry) {
	if entries == nil {
		delete(d.landblocks, id)
		return
	}
	d.landblocks[id] = entries
}

// Landblocks returns the number of landblocks present.
func (d *MemoryDocument) Landblocks() int { return len(d.landblocks) }

// SetHeight writes the height index of the corner sample at global
// vertex coordinates (vx, vy). Samples on landblock edges are shared,
// so up to four landblocks hold a copy; every existing copy is updated
// and the touched landblock IDs are returned for dirty marking.
func (d *MemoryDocument) SetHeight(vx, vy int, height byte) []terrain.LandblockID {
	return d.updateCorner(vx, vy, func(e *terrain.TerrainEntry) {
		e.Height = height
	})
}

// SetEntry overwrites the whole corner sample at global vertex
// coordinates, updating every landblock that duplicates it.
func (d *MemoryDocument) SetEntry(vx, vy int, entry terrain.TerrainEntry) []terrain.LandblockID {
	return d.updateCorner(vx, vy, func(e *terrain.TerrainEntry) {
		*e = entry
	})
}

func (d *MemoryDocument) updateCorner(vx, vy int, apply func(*terrain.TerrainEntry)) []terrain.LandblockID {
	if vx < 0 || vy < 0 || vx > terrain.MapSize*terrain.LandblockEdgeCellCount ||
		vy > terrain.MapSize*terrain.LandblockEdgeCellCount {
		return nil
	}

	var touched []terrain.LandblockID

	// A global vertex at a landblock border belongs to the block on
	// either side of it; interior vertices to exactly one.
	for _, lbX := range owningAxes(vx) {
		for _, lbY := range owningAxes(vy) {
			if lbX < 0 || lbY < 0 || lbX >= terrain.MapSize || lbY >= terrain.MapSize {
				continue
			}
			id := terrain.NewLandblockID(lbX, lbY)
			entries := d.landblocks[id]
			if entries == nil {
				continue
			}
			localX := vx - lbX*terrain.LandblockEdgeCellCount
			localY := vy - lbY*terrain.LandblockEdgeCellCount
			apply(&entries[localX*terrain.VertexDim+localY])
			touched = append(touched, id)
		}
	}
	return touched
}

// owningAxes returns the landblock coordinates along one axis whose
// 9-sample grid contains global vertex coordinate v.
func owningAxes(v int) []int {
	lb := v / terrain.LandblockEdgeCellCount
	if v%terrain.LandblockEdgeCellCount == 0 && lb > 0 {
		// Border vertex: also the last sample of the previous block.
		return []int{lb - 1, lb}
	}
	return []int{lb}
}
