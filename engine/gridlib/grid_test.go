package gridlib

import (
	"math"
	"testing"
)

func TestNewGridDefaults(t *testing.T) {
	g := NewGrid(5)
	if g.StartIndex() != -1 || g.EndIndex() != -1 {
		t.Errorf("fresh grid has roles assigned: start=%d end=%d", g.StartIndex(), g.EndIndex())
	}
	for i := range g.Cells {
		c := &g.Cells[i]
		if c.Terrain != TerrainGrass {
			t.Fatalf("cell (%d,%d) terrain = %v, want Grass", c.Row, c.Col, c.Terrain)
		}
		if !math.IsInf(c.G, 1) || !math.IsInf(c.H, 1) || !math.IsInf(c.F, 1) {
			t.Fatalf("cell (%d,%d) costs not infinite", c.Row, c.Col)
		}
		if c.Parent != -1 {
			t.Fatalf("cell (%d,%d) parent = %d, want -1", c.Row, c.Col, c.Parent)
		}
	}
}

func TestSetTerrainIdempotent(t *testing.T) {
	g := NewGrid(5)
	if err := g.SetTerrain(2, 2, TerrainWater); err != nil {
		t.Fatal(err)
	}
	once := *g.At(2, 2)
	if err := g.SetTerrain(2, 2, TerrainWater); err != nil {
		t.Fatal(err)
	}
	if twice := *g.At(2, 2); twice != once {
		t.Errorf("applying the same terrain twice changed state: %+v vs %+v", twice, once)
	}
}

func TestSetTerrainResetsSearchState(t *testing.T) {
	g := NewGrid(5)
	c := g.At(1, 1)
	c.G, c.H, c.F = 3, 4, 7
	c.Parent = g.Index(1, 0)
	c.InOpen = true

	g.SetTerrain(1, 1, TerrainDirt)

	if !math.IsInf(c.G, 1) || !math.IsInf(c.H, 1) || !math.IsInf(c.F, 1) {
		t.Error("costs not reset to infinity after repaint")
	}
	if c.Parent != -1 {
		t.Errorf("parent = %d after repaint, want -1", c.Parent)
	}
	if c.InOpen || c.InClosed || c.OnPath {
		t.Error("search flags survived repaint")
	}
}

func TestSetTerrainClearsRole(t *testing.T) {
	g := NewGrid(5)
	if err := g.SetStart(1, 1); err != nil {
		t.Fatal(err)
	}
	g.SetTerrain(1, 1, TerrainObstacle)
	if g.StartIndex() != -1 {
		t.Errorf("start index = %d after painting Obstacle over it, want -1", g.StartIndex())
	}
	if g.RoleAt(1, 1) != RoleNone {
		t.Errorf("RoleAt = %v, want RoleNone", g.RoleAt(1, 1))
	}
}

func TestRoleMoves(t *testing.T) {
	g := NewGrid(5)
	g.SetStart(0, 0)
	g.SetStart(3, 3)
	if g.StartIndex() != g.Index(3, 3) {
		t.Errorf("start index = %d, want %d", g.StartIndex(), g.Index(3, 3))
	}
	if g.RoleAt(0, 0) != RoleNone {
		t.Error("old start cell still reports RoleStart")
	}

	// Placing End on the Start cell displaces Start
	g.SetEnd(3, 3)
	if g.EndIndex() != g.Index(3, 3) {
		t.Errorf("end index = %d, want %d", g.EndIndex(), g.Index(3, 3))
	}
	if g.StartIndex() != -1 {
		t.Error("start and end claim the same cell")
	}
}

func TestClearRoles(t *testing.T) {
	g := NewGrid(5)
	g.SetStart(1, 1)
	g.SetEnd(2, 2)
	g.ClearStart()
	g.ClearEnd()
	if g.StartIndex() != -1 || g.EndIndex() != -1 {
		t.Errorf("roles not cleared: start=%d end=%d", g.StartIndex(), g.EndIndex())
	}
	if g.At(1, 1).Terrain != TerrainGrass || g.At(2, 2).Terrain != TerrainGrass {
		t.Error("clearing a role changed terrain")
	}
	// Clearing an unset role is harmless
	g.ClearStart()
}

func TestRoleRefusedOnObstacle(t *testing.T) {
	g := NewGrid(5)
	g.SetTerrain(2, 2, TerrainObstacle)
	if err := g.SetStart(2, 2); err != ErrImpassableRole {
		t.Errorf("SetStart on Obstacle: err = %v, want ErrImpassableRole", err)
	}
	if err := g.SetEnd(2, 2); err != ErrImpassableRole {
		t.Errorf("SetEnd on Obstacle: err = %v, want ErrImpassableRole", err)
	}
}

func TestStartHasZeroG(t *testing.T) {
	g := NewGrid(5)
	g.SetStart(2, 2)
	if got := g.StartCell().G; got != 0 {
		t.Errorf("start g = %v, want 0", got)
	}
}

func TestNeighborsExcludeObstaclesAndBounds(t *testing.T) {
	g := NewGrid(3)
	g.SetTerrain(0, 1, TerrainObstacle)
	g.RebuildNeighbors()

	// Corner (0,0): right neighbor is an obstacle, so only (1,0) remains
	adj := g.Neighbors(g.Index(0, 0))
	if len(adj) != 1 || adj[0] != g.Index(1, 0) {
		t.Errorf("neighbors of (0,0) = %v, want [%d]", adj, g.Index(1, 0))
	}

	// Center keeps the three passable sides
	adj = g.Neighbors(g.Index(1, 1))
	if len(adj) != 3 {
		t.Errorf("neighbors of (1,1) = %v, want 3 entries", adj)
	}
	for _, n := range adj {
		if !g.Cells[n].Terrain.Passable() {
			t.Errorf("neighbor %d is impassable", n)
		}
	}
}

func TestNeighborsAreSnapshot(t *testing.T) {
	g := NewGrid(3)
	g.RebuildNeighbors()
	before := len(g.Neighbors(g.Index(1, 1)))

	g.SetTerrain(0, 1, TerrainObstacle)
	if got := len(g.Neighbors(g.Index(1, 1))); got != before {
		t.Errorf("adjacency changed without a rebuild: %d -> %d", before, got)
	}
	g.RebuildNeighbors()
	if got := len(g.Neighbors(g.Index(1, 1))); got != before-1 {
		t.Errorf("adjacency after rebuild = %d, want %d", got, before-1)
	}
}

func TestOutOfBounds(t *testing.T) {
	g := NewGrid(3)
	if g.At(-1, 0) != nil || g.At(0, 3) != nil {
		t.Error("At returned a cell for out-of-bounds coordinates")
	}
	if err := g.SetTerrain(3, 0, TerrainRoad); err != ErrOutOfBounds {
		t.Errorf("SetTerrain OOB err = %v, want ErrOutOfBounds", err)
	}
	if err := g.SetStart(0, -1); err != ErrOutOfBounds {
		t.Errorf("SetStart OOB err = %v, want ErrOutOfBounds", err)
	}
	if _, err := g.FloodFill(5, 5, TerrainRoad); err != ErrOutOfBounds {
		t.Errorf("FloodFill OOB err = %v, want ErrOutOfBounds", err)
	}
}

func TestDisplayPrecedence(t *testing.T) {
	g := NewGrid(3)
	g.SetStart(0, 0)

	// Role wins over every flag
	c := g.At(0, 0)
	c.InOpen = true
	c.InClosed = true
	if got := g.DisplayColor(0, 0); got != ColorStart {
		t.Errorf("start cell color = %v, want ColorStart", got)
	}

	c = g.At(1, 1)
	c.OnPath = true
	if got := g.DisplayColor(1, 1); got != ColorPath {
		t.Errorf("path cell color = %v, want ColorPath", got)
	}
	c.OnPath = false
	c.InOpen = true
	if got := g.DisplayColor(1, 1); got != ColorOpen {
		t.Errorf("open cell color = %v, want ColorOpen", got)
	}
	c.InOpen = false
	c.InClosed = true
	if got := g.DisplayColor(1, 1); got != ColorClosed {
		t.Errorf("closed cell color = %v, want ColorClosed", got)
	}
	c.InClosed = false
	if got := g.DisplayColor(1, 1); got != TerrainGrass.Color() {
		t.Errorf("idle cell color = %v, want terrain color", got)
	}
}

func TestResetSearchStateKeepsRolesAndTerrain(t *testing.T) {
	g := NewGrid(4)
	g.SetTerrain(2, 2, TerrainWater)
	g.SetStart(0, 0)
	g.SetEnd(3, 3)
	g.At(1, 1).InClosed = true
	g.At(1, 2).G = 5

	g.ResetSearchState()

	if g.At(1, 1).InClosed {
		t.Error("closed flag survived reset")
	}
	if !math.IsInf(g.At(1, 2).G, 1) {
		t.Error("g cost survived reset")
	}
	if g.At(2, 2).Terrain != TerrainWater {
		t.Error("terrain changed by reset")
	}
	if g.StartIndex() != g.Index(0, 0) || g.EndIndex() != g.Index(3, 3) {
		t.Error("roles changed by reset")
	}
	if g.StartCell().G != 0 {
		t.Error("start g not re-zeroed by reset")
	}
}
