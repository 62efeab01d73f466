package gridlib

// FloodFill repaints the contiguous region of cells sharing the seed's
// terrain, reachable 4-directionally from (row, col), with the target kind.
// Start and End cells are never repainted and cut the region where they sit,
// even when their terrain matches. Each repaint goes through SetTerrain and
// inherits its search-state reset. Returns whether any cell changed.
//
// The whole call is a silent no-op when the seed holds a role, already has
// the target terrain, or is an Obstacle being filled with anything other
// than Obstacle. Filling toward Obstacle is allowed.
func (g *Grid) FloodFill(row, col int, target TerrainKind) (bool, error) {
	seed := g.At(row, col)
	if seed == nil {
		return false, ErrOutOfBounds
	}
	seedIdx := g.Index(row, col)
	match := seed.Terrain
	if seedIdx == g.start || seedIdx == g.end {
		return false, nil
	}
	if match == target {
		return false, nil
	}
	if match == TerrainObstacle && target != TerrainObstacle {
		return false, nil
	}

	dirs := [4][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
	visited := make([]bool, len(g.Cells))
	queue := []int{seedIdx}
	visited[seedIdx] = true
	changed := false

	for len(queue) > 0 {
		idx := queue[0]
		queue = queue[1:]
		cell := &g.Cells[idx]
		if cell.Terrain != match {
			continue
		}
		if idx == g.start || idx == g.end {
			continue
		}
		g.SetTerrain(cell.Row, cell.Col, target)
		changed = true

		for _, d := range dirs {
			nr, nc := cell.Row+d[0], cell.Col+d[1]
			if !g.InBounds(nr, nc) {
				continue
			}
			n := g.Index(nr, nc)
			if visited[n] {
				continue
			}
			next := &g.Cells[n]
			// Re-validate the seed checks before enqueueing
			if next.Terrain != match {
				continue
			}
			if n == g.start || n == g.end {
				continue
			}
			if next.Terrain == TerrainObstacle && target != TerrainObstacle {
				continue
			}
			visited[n] = true
			queue = append(queue, n)
		}
	}
	return changed, nil
}
