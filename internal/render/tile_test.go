package render

import "testing"

func TestBuildTilesLinearCoversFrameExactlyOnce(t *testing.T) {
	tiles := BuildTilesLinear(37, 21, 8)
	assertFullCoverageNoOverlap(t, tiles, 37, 21)
}

func TestBuildTilesLinearClipsEdgeTiles(t *testing.T) {
	tiles := BuildTilesLinear(10, 10, 8)
	for _, tile := range tiles {
		if tile.X+tile.W > 10 || tile.Y+tile.H > 10 {
			t.Fatalf("tile %+v exceeds frame bounds", tile)
		}
	}
}

func TestBuildTilesSpiralCoversFrameExactlyOnce(t *testing.T) {
	tiles := BuildTilesSpiral(37, 21, 8)
	assertFullCoverageNoOverlap(t, tiles, 37, 21)
}

func TestBuildTilesSpiralStartsNearCenter(t *testing.T) {
	tiles := BuildTilesSpiral(80, 80, 16)
	first := tiles[0]
	centerX, centerY := 40, 40
	if first.X+first.W < centerX-16 || first.X > centerX+16 {
		t.Fatalf("first spiral tile %+v is not near the center", first)
	}
	_ = centerY
}

func TestBuildTilesPanicsOnNonPositiveTileSize(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for non-positive tile size")
		}
	}()
	BuildTilesLinear(10, 10, 0)
}

// assertFullCoverageNoOverlap rasterizes every tile onto a coverage grid and
// checks each frame pixel is covered by exactly one tile.
func assertFullCoverageNoOverlap(t *testing.T, tiles []Tile, w, h int) {
	t.Helper()
	covered := make([]int, w*h)
	for _, tile := range tiles {
		for y := tile.Y; y < tile.Y+tile.H; y++ {
			for x := tile.X; x < tile.X+tile.W; x++ {
				covered[y*w+x]++
			}
		}
	}
	for i, c := range covered {
		if c != 1 {
			t.Fatalf("pixel %d covered %d times, want 1", i, c)
		}
	}
}
