package gridlib

import "math"

// Cell is one grid position. Row and Col are fixed at construction; terrain
// and search state are mutated in place by Grid operations. Cells carry no
// Start/End marker of their own: role identity lives on the Grid.
type Cell struct {
	Row, Col int
	Terrain  TerrainKind

	// Search state. G, H and F default to +Inf until a search touches the
	// cell; Parent is the flat index of the cell it was reached from, -1
	// when unset. The three flags are mutually exclusive.
	G, H, F  float64
	Parent   int
	InOpen   bool
	InClosed bool
	OnPath   bool
}

// MovementCost returns the cost of stepping into this cell
func (c *Cell) MovementCost() float64 { return c.Terrain.Cost() }

func (c *Cell) resetSearch() {
	inf := math.Inf(1)
	c.G, c.H, c.F = inf, inf, inf
	c.Parent = -1
	c.InOpen = false
	c.InClosed = false
	c.OnPath = false
}
