package gridlib

import "testing"

func TestFloodFillRepaintsRegion(t *testing.T) {
	g := NewGrid(5)
	// Wall of water splits the grid into left and right grass regions
	for r := 0; r < 5; r++ {
		g.SetTerrain(r, 2, TerrainWater)
	}

	changed, err := g.FloodFill(0, 0, TerrainDirt)
	if err != nil {
		t.Fatal(err)
	}
	if !changed {
		t.Fatal("fill reported no change")
	}
	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			want := TerrainDirt
			if c == 2 {
				want = TerrainWater
			} else if c > 2 {
				want = TerrainGrass // the far side is not 4-connected to the seed
			}
			if got := g.At(r, c).Terrain; got != want {
				t.Errorf("cell (%d,%d) terrain = %v, want %v", r, c, got, want)
			}
		}
	}
}

func TestFloodFillSameTerrainNoop(t *testing.T) {
	g := NewGrid(4)
	changed, err := g.FloodFill(1, 1, TerrainGrass)
	if err != nil {
		t.Fatal(err)
	}
	if changed {
		t.Error("fill with target equal to seed terrain reported a change")
	}
}

func TestFloodFillObstacleSeedBlocked(t *testing.T) {
	g := NewGrid(4)
	g.SetTerrain(1, 1, TerrainObstacle)
	g.SetTerrain(1, 2, TerrainObstacle)

	changed, err := g.FloodFill(1, 1, TerrainRoad)
	if err != nil {
		t.Fatal(err)
	}
	if changed {
		t.Error("obstacle region converted to a passable terrain")
	}
	if g.At(1, 1).Terrain != TerrainObstacle || g.At(1, 2).Terrain != TerrainObstacle {
		t.Error("obstacle cells were repainted")
	}
}

func TestFloodFillTowardObstacleAllowed(t *testing.T) {
	g := NewGrid(3)
	changed, err := g.FloodFill(0, 0, TerrainObstacle)
	if err != nil {
		t.Fatal(err)
	}
	if !changed {
		t.Fatal("fill toward Obstacle made no changes")
	}
	for i := range g.Cells {
		if g.Cells[i].Terrain != TerrainObstacle {
			c := &g.Cells[i]
			t.Errorf("cell (%d,%d) not filled", c.Row, c.Col)
		}
	}
}

func TestFloodFillSeedOnRoleNoop(t *testing.T) {
	g := NewGrid(4)
	g.SetStart(1, 1)
	changed, err := g.FloodFill(1, 1, TerrainRoad)
	if err != nil {
		t.Fatal(err)
	}
	if changed {
		t.Error("fill seeded on the Start cell reported a change")
	}
	if g.At(1, 1).Terrain != TerrainGrass {
		t.Error("start cell terrain changed")
	}
}

func TestFloodFillSkipsStartAndEnd(t *testing.T) {
	g := NewGrid(5)
	g.SetStart(0, 0)
	g.SetEnd(4, 4)

	// Seed adjacent to Start; the whole grass region matches, but the role
	// holders must come through untouched
	changed, err := g.FloodFill(0, 1, TerrainRoad)
	if err != nil {
		t.Fatal(err)
	}
	if !changed {
		t.Fatal("fill reported no change")
	}
	if g.At(0, 0).Terrain != TerrainGrass {
		t.Error("start terrain repainted by flood fill")
	}
	if g.RoleAt(0, 0) != RoleStart {
		t.Error("start role lost during flood fill")
	}
	if g.At(4, 4).Terrain != TerrainGrass {
		t.Error("end terrain repainted by flood fill")
	}
	if g.RoleAt(4, 4) != RoleEnd {
		t.Error("end role lost during flood fill")
	}
	if g.At(0, 1).Terrain != TerrainRoad || g.At(4, 3).Terrain != TerrainRoad {
		t.Error("region around the roles not repainted")
	}
}

func TestFloodFillResetsSearchState(t *testing.T) {
	g := NewGrid(3)
	g.At(1, 1).G = 2.5
	g.At(1, 1).InClosed = true

	if changed, _ := g.FloodFill(0, 0, TerrainDirt); !changed {
		t.Fatal("fill reported no change")
	}
	c := g.At(1, 1)
	if c.InClosed {
		t.Error("closed flag survived the repaint")
	}
	if c.Parent != -1 {
		t.Error("parent survived the repaint")
	}
}
