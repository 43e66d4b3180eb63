package terrain

import "testing"

func TestCalculateSplitDirectionKnownValues(t *testing.T) {
	// Expected values computed from the 32-bit hash by hand; they pin
	// the arithmetic so a refactor cannot silently change diagonals of
	// already placed scenery.
	tests := []struct {
		lbX, cellX, lbY, cellY int
		want                   SplitDirection
	}{
		{0, 0, 0, 0, SWtoNE},
		{0, 1, 0, 0, SWtoNE},
		{0, 2, 0, 0, SWtoNE},
		{0, 4, 0, 0, SWtoNE},
		{0, 0, 0, 1, SEtoNW},
		{0, 0, 0, 2, SEtoNW},
		{0, 1, 0, 1, SEtoNW},
		{0, 3, 0, 1, SEtoNW},
		{0, 5, 0, 3, SEtoNW},
	}

	for _, tt := range tests {
		got := CalculateSplitDirection(tt.lbX, tt.cellX, tt.lbY, tt.cellY)
		if got != tt.want {
			t.Errorf("CalculateSplitDirection(%d,%d,%d,%d) = %v, want %v",
				tt.lbX, tt.cellX, tt.lbY, tt.cellY, got, tt.want)
		}
	}
}

func TestCalculateSplitDirectionGlobalCoordinates(t *testing.T) {
	// The hash runs on global cell coordinates, so a cell reached
	// through different landblock/cell decompositions gets the same
	// diagonal.
	got1 := CalculateSplitDirection(1, 0, 1, 0)
	got2 := CalculateSplitDirection(0, 8, 0, 8)
	if got1 != got2 {
		t.Errorf("same global cell disagrees: %v vs %v", got1, got2)
	}
}

func TestCalculateSplitDirectionDeterministic(t *testing.T) {
	for lbY := 0; lbY < 4; lbY++ {
		for lbX := 0; lbX < 4; lbX++ {
			for cy := 0; cy < LandblockEdgeCellCount; cy++ {
				for cx := 0; cx < LandblockEdgeCellCount; cx++ {
					a := CalculateSplitDirection(lbX, cx, lbY, cy)
					b := CalculateSplitDirection(lbX, cx, lbY, cy)
					if a != b {
						t.Fatalf("unstable split at lb(%d,%d) cell(%d,%d)", lbX, lbY, cx, cy)
					}
				}
			}
		}
	}
}

func TestCalculateSplitDirectionBothOccur(t *testing.T) {
	var sw, se int
	for gy := 0; gy < 64; gy++ {
		for gx := 0; gx < 64; gx++ {
			if CalculateSplitDirection(gx/8, gx%8, gy/8, gy%8) == SWtoNE {
				sw++
			} else {
				se++
			}
		}
	}
	if sw == 0 || se == 0 {
		t.Errorf("degenerate split distribution: SWtoNE=%d SEtoNW=%d", sw, se)
	}
}
