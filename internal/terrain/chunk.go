package terrain

import "sort"

// Bounds is an axis-aligned bounding box in world space (Z up).
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// Chunk is the metadata for one rectangular group of landblocks: its
// identity, edge-clamped extent, world bounds, and the set of
// landblocks whose terrain data changed since the chunk geometry was
// last generated. Chunks are created lazily by the data manager and
// live for the session; eviction is not part of this core.
type Chunk struct {
	ChunkX int
	ChunkY int

	LandblockStartX       int
	LandblockStartY       int
	ActualLandblockCountX int
	ActualLandblockCountY int

	Bounds Bounds

	dirty map[LandblockID]struct{}
}

// ID returns the packed chunk identity.
func (c *Chunk) ID() ChunkID { return NewChunkID(c.ChunkX, c.ChunkY) }

// MarkDirty records a landblock as needing regeneration.
func (c *Chunk) MarkDirty(id LandblockID) {
	if c.dirty == nil {
		c.dirty = make(map[LandblockID]struct{})
	}
	c.dirty[id] = struct{}{}
}

// ClearDirty removes a single landblock from the dirty set.
func (c *Chunk) ClearDirty(id LandblockID) {
	delete(c.dirty, id)
}

// ClearAllDirty empties the dirty set.
func (c *Chunk) ClearAllDirty() {
	for id := range c.dirty {
		delete(c.dirty, id)
	}
}

// IsDirty reports whether any covered landblock is marked dirty.
func (c *Chunk) IsDirty() bool { return len(c.dirty) > 0 }

// DirtyLandblocks returns the dirty landblock IDs in ascending order.
func (c *Chunk) DirtyLandblocks() []LandblockID {
	if len(c.dirty) == 0 {
		return nil
	}
	ids := make([]LandblockID, 0, len(c.dirty))
	for id := range c.dirty {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Contains reports whether the landblock coordinate falls inside this
// chunk's covered extent.
func (c *Chunk) Contains(lbX, lbY int) bool {
	return lbX >= c.LandblockStartX && lbX < c.LandblockStartX+c.ActualLandblockCountX &&
		lbY >= c.LandblockStartY && lbY < c.LandblockStartY+c.ActualLandblockCountY
}
