package terrain

// SplitDirection selects which diagonal divides a cell quad into two
// triangles.
type SplitDirection int

const (
	// SWtoNE splits along the BR-TL diagonal: triangles (BL,TL,BR)
	// and (BR,TL,TR).
	SWtoNE SplitDirection = iota
	// SEtoNW splits along the BL-TR diagonal: triangles (BL,TR,BR)
	// and (BL,TL,TR).
	SEtoNW
)

func (d SplitDirection) String() string {
	if d == SEtoNW {
		return "SEtoNW"
	}
	return "SWtoNE"
}

// Magic constants of the cell split hash. The arithmetic must stay
// bit-exact 32-bit wraparound: the same diagonal is recomputed
// independently by mesh generation, height sampling and scenery
// placement, and they all have to agree.
const (
	splitMulX  = 214614067
	splitMulY  = 1109124029
	splitAddX  = 1813693831
	splitSub   = 1369149221
	splitScale = 2.3283064e-10 // ~ 1/2^32
)

// CalculateSplitDirection returns the deterministic diagonal for the
// cell at (cellX, cellY) inside landblock (lbX, lbY), hashed on the
// global cell coordinates.
func CalculateSplitDirection(lbX, cellX, lbY, cellY int) SplitDirection {
	gx := uint32(lbX*LandblockEdgeCellCount + cellX)
	gy := uint32(lbY*LandblockEdgeCellCount + cellY)

	seedA := gx*splitMulX + splitAddX
	seedB := gy * splitMulY

	v := float64(seedA-seedB-splitSub) * splitScale
	if v >= 0.5 {
		return SEtoNW
	}
	return SWtoNE
}
