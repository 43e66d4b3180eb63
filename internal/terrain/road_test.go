package terrain

import "testing"

// roadEntries flags the given corners of cell (0,0). Corner keys are
// "bl", "br", "tr", "tl".
func roadEntries(corners ...string) []TerrainEntry {
	entries := make([]TerrainEntry, EntriesPerLandblock)
	for _, c := range corners {
		switch c {
		case "bl":
			entries[0*VertexDim+0].Road = 1
		case "br":
			entries[1*VertexDim+0].Road = 1
		case "tr":
			entries[1*VertexDim+1].Road = 1
		case "tl":
			entries[0*VertexDim+1].Road = 1
		}
	}
	return entries
}

func TestOnRoadAllCorners(t *testing.T) {
	entries := roadEntries("bl", "br", "tr", "tl")
	positions := [][2]float32{{0, 0}, {12, 12}, {23, 1}, {6, 18}}
	for _, p := range positions {
		if !OnRoad(entries, p[0], p[1]) {
			t.Errorf("OnRoad(%f,%f) = false with all corners flagged", p[0], p[1])
		}
	}
}

func TestOnRoadNoCorners(t *testing.T) {
	entries := roadEntries()
	positions := [][2]float32{{0, 0}, {12, 12}, {23, 23}}
	for _, p := range positions {
		if OnRoad(entries, p[0], p[1]) {
			t.Errorf("OnRoad(%f,%f) = true with no corners flagged", p[0], p[1])
		}
	}
}

func TestOnRoadEdges(t *testing.T) {
	tests := []struct {
		name    string
		corners []string
		in      [2]float32
		out     [2]float32
	}{
		{"bottom", []string{"bl", "br"}, [2]float32{12, 2}, [2]float32{12, 10}},
		{"right", []string{"br", "tr"}, [2]float32{22, 12}, [2]float32{14, 12}},
		{"top", []string{"tl", "tr"}, [2]float32{12, 22}, [2]float32{12, 14}},
		{"left", []string{"bl", "tl"}, [2]float32{2, 12}, [2]float32{10, 12}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := roadEntries(tt.corners...)
			if !OnRoad(entries, tt.in[0], tt.in[1]) {
				t.Errorf("position %v should be on the %s edge road", tt.in, tt.name)
			}
			if OnRoad(entries, tt.out[0], tt.out[1]) {
				t.Errorf("position %v should be off the %s edge road", tt.out, tt.name)
			}
		})
	}
}

func TestOnRoadSingleCorner(t *testing.T) {
	tests := []struct {
		name   string
		corner string
		in     [2]float32
		out    [2]float32
	}{
		{"bl", "bl", [2]float32{2, 2}, [2]float32{10, 2}},
		{"br", "br", [2]float32{22, 2}, [2]float32{22, 10}},
		{"tr", "tr", [2]float32{22, 22}, [2]float32{12, 22}},
		{"tl", "tl", [2]float32{2, 22}, [2]float32{2, 12}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := roadEntries(tt.corner)
			if !OnRoad(entries, tt.in[0], tt.in[1]) {
				t.Errorf("position %v should be on the %s corner road", tt.in, tt.name)
			}
			if OnRoad(entries, tt.out[0], tt.out[1]) {
				t.Errorf("position %v should be off the %s corner road", tt.out, tt.name)
			}
		})
	}
}

func TestOnRoadDiagonals(t *testing.T) {
	// BL-TR diagonal: band around dx == dy.
	entries := roadEntries("bl", "tr")
	if !OnRoad(entries, 12, 12) {
		t.Error("center should be on the BL-TR diagonal road")
	}
	if !OnRoad(entries, 8, 6) {
		t.Error("(8,6) should be inside the diagonal band")
	}
	if OnRoad(entries, 20, 4) {
		t.Error("(20,4) should be outside the diagonal band")
	}

	// BR-TL diagonal: band around dx + dy == CellSize.
	entries = roadEntries("br", "tl")
	if !OnRoad(entries, 12, 12) {
		t.Error("center should be on the BR-TL diagonal road")
	}
	if !OnRoad(entries, 20, 6) {
		t.Error("(20,6) should be inside the diagonal band")
	}
	if OnRoad(entries, 4, 4) {
		t.Error("(4,4) should be outside the diagonal band")
	}
}

func TestOnRoadThreeCorners(t *testing.T) {
	// bl+br+tr: bottom and right edges.
	entries := roadEntries("bl", "br", "tr")
	if !OnRoad(entries, 12, 2) {
		t.Error("bottom band should be road")
	}
	if !OnRoad(entries, 22, 12) {
		t.Error("right band should be road")
	}
	if OnRoad(entries, 10, 12) {
		t.Error("interior away from both edges should not be road")
	}
}
