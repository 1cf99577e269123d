// tile.go - tiles and the two queue-construction orders the renderer
// supports: a center-out spiral (so an interactive preview fills the middle
// of the frame first) and a plain row-major scan.
package render

// Tile is a rectangular region of the Film, plus the mutable pass counter
// every worker increments after finishing one render_tile call.
type Tile struct {
	X, Y, W, H int
	n          int32 // pass counter; guarded by Renderer.tilesMu
}

// N returns the tile's current pass count.
func (t *Tile) N() int32 { return t.n }

// BuildTilesLinear partitions a filmW x filmH frame into row-major tiles of
// size at most tileSize x tileSize, clipping edge tiles to the frame.
func BuildTilesLinear(filmW, filmH, tileSize int) []Tile {
	if tileSize <= 0 {
		panic("render: tile size must be positive")
	}
	var tiles []Tile
	for y := 0; y < filmH; y += tileSize {
		for x := 0; x < filmW; x += tileSize {
			tiles = append(tiles, Tile{X: x, Y: y, W: clipDim(x, tileSize, filmW), H: clipDim(y, tileSize, filmH)})
		}
	}
	return tiles
}

// BuildTilesSpiral partitions the frame the same way as BuildTilesLinear,
// then orders the tiles by a center-outward spiral walk over the tile grid,
// using the classic (x,y,dx,dy) spiral recurrence: walk in the current
// direction for the current run length, turn, and lengthen the run every
// two turns. Tiles whose grid cell falls outside the grid are skipped; the
// grid itself is generated densely so every tile in the frame is visited
// exactly once.
func BuildTilesSpiral(filmW, filmH, tileSize int) []Tile {
	if tileSize <= 0 {
		panic("render: tile size must be positive")
	}
	cols := ceilDiv(filmW, tileSize)
	rows := ceilDiv(filmH, tileSize)
	if cols == 0 || rows == 0 {
		return nil
	}

	grid := make([]Tile, cols*rows)
	for gy := 0; gy < rows; gy++ {
		for gx := 0; gx < cols; gx++ {
			x, y := gx*tileSize, gy*tileSize
			grid[gy*cols+gx] = Tile{X: x, Y: y, W: clipDim(x, tileSize, filmW), H: clipDim(y, tileSize, filmH)}
		}
	}

	cx, cy := cols/2, rows/2
	visited := make([]bool, cols*rows)
	tiles := make([]Tile, 0, cols*rows)

	x, y := cx, cy
	dx, dy := 1, 0
	runLength := 1
	turnsAtThisLength := 0

	for len(tiles) < cols*rows {
		if x >= 0 && x < cols && y >= 0 && y < rows {
			idx := y*cols + x
			if !visited[idx] {
				visited[idx] = true
				tiles = append(tiles, grid[idx])
			}
		}
		for step := 0; step < runLength; step++ {
			x += dx
			y += dy
			if x >= 0 && x < cols && y >= 0 && y < rows {
				idx := y*cols + x
				if !visited[idx] {
					visited[idx] = true
					tiles = append(tiles, grid[idx])
				}
			}
			if len(tiles) >= cols*rows {
				break
			}
		}
		dx, dy = -dy, dx // rotate 90 degrees
		turnsAtThisLength++
		if turnsAtThisLength == 2 {
			turnsAtThisLength = 0
			runLength++
		}
	}

	return tiles
}

func clipDim(start, size, limit int) int {
	if start+size > limit {
		return limit - start
	}
	return size
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
