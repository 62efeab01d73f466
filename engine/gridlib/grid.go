package gridlib

import (
	"errors"
	"image/color"
)

// Role marks a cell as the search origin or destination
type Role uint8

const (
	RoleNone Role = iota
	RoleStart
	RoleEnd
)

var (
	// ErrOutOfBounds is returned by mutating operations for coordinates
	// outside the grid. Queries return nil/zero values instead.
	ErrOutOfBounds = errors.New("gridlib: coordinates out of bounds")

	// ErrImpassableRole is returned when a role would land on an Obstacle
	ErrImpassableRole = errors.New("gridlib: cannot place a role on an impassable cell")
)

// State overlay colors, in display precedence order after the roles
var (
	ColorStart  = color.RGBA{255, 165, 0, 255}
	ColorEnd    = color.RGBA{64, 224, 208, 255}
	ColorPath   = color.RGBA{128, 0, 128, 255}
	ColorOpen   = color.RGBA{150, 255, 150, 255}
	ColorClosed = color.RGBA{255, 150, 150, 255}
)

// Grid owns every cell of an edit session as a flat row-major array.
// Start and End identity is stored here as cell indices rather than on the
// cells themselves, so a role can never have two holders and Start can
// never equal End.
type Grid struct {
	Rows  int
	Cells []Cell

	start int // flat index, -1 when unset
	end   int

	neighbors [][]int // 4-neighbor cache, valid after RebuildNeighbors
}

// NewGrid builds a rows×rows grid with every cell at the default terrain
// and no roles assigned
func NewGrid(rows int) *Grid {
	g := &Grid{
		Rows:      rows,
		Cells:     make([]Cell, rows*rows),
		start:     -1,
		end:       -1,
		neighbors: make([][]int, rows*rows),
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < rows; c++ {
			cell := &g.Cells[r*rows+c]
			cell.Row, cell.Col = r, c
			cell.Terrain = DefaultTerrain
			cell.resetSearch()
		}
	}
	return g
}

// Index returns the flat index for (row, col)
func (g *Grid) Index(row, col int) int { return row*g.Rows + col }

// InBounds reports whether (row, col) lies on the grid
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && col >= 0 && row < g.Rows && col < g.Rows
}

// At returns the cell at (row, col), or nil when out of bounds
func (g *Grid) At(row, col int) *Cell {
	if !g.InBounds(row, col) {
		return nil
	}
	return &g.Cells[g.Index(row, col)]
}

// SetTerrain repaints one cell. Its search state is wiped and any role it
// held is cleared; callers tracking roles must notice the displacement.
// Applying the same kind twice leaves the same state as applying it once.
func (g *Grid) SetTerrain(row, col int, kind TerrainKind) error {
	cell := g.At(row, col)
	if cell == nil {
		return ErrOutOfBounds
	}
	idx := g.Index(row, col)
	if g.start == idx {
		g.start = -1
	}
	if g.end == idx {
		g.end = -1
	}
	cell.Terrain = kind
	cell.resetSearch()
	return nil
}

// SetStart moves the Start role to (row, col). The cell keeps its terrain.
// Its g cost is zeroed so a run can begin there; h and f are filled in when
// the search starts. If the cell currently holds End, End is displaced.
func (g *Grid) SetStart(row, col int) error {
	cell := g.At(row, col)
	if cell == nil {
		return ErrOutOfBounds
	}
	if !cell.Terrain.Passable() {
		return ErrImpassableRole
	}
	idx := g.Index(row, col)
	if g.end == idx {
		g.end = -1
	}
	g.start = idx
	cell.resetSearch()
	cell.G = 0
	return nil
}

// SetEnd moves the End role to (row, col). The cell keeps its terrain and
// its search state is reset. If the cell currently holds Start, Start is
// displaced.
func (g *Grid) SetEnd(row, col int) error {
	cell := g.At(row, col)
	if cell == nil {
		return ErrOutOfBounds
	}
	if !cell.Terrain.Passable() {
		return ErrImpassableRole
	}
	idx := g.Index(row, col)
	if g.start == idx {
		g.start = -1
	}
	g.end = idx
	cell.resetSearch()
	return nil
}

// ClearStart removes the Start role, if set
func (g *Grid) ClearStart() {
	if g.start >= 0 {
		g.Cells[g.start].resetSearch()
		g.start = -1
	}
}

// ClearEnd removes the End role, if set
func (g *Grid) ClearEnd() {
	if g.end >= 0 {
		g.Cells[g.end].resetSearch()
		g.end = -1
	}
}

// StartIndex returns the flat index of the Start cell, -1 when unset
func (g *Grid) StartIndex() int { return g.start }

// EndIndex returns the flat index of the End cell, -1 when unset
func (g *Grid) EndIndex() int { return g.end }

// StartCell returns the Start cell, or nil when unset
func (g *Grid) StartCell() *Cell {
	if g.start < 0 {
		return nil
	}
	return &g.Cells[g.start]
}

// EndCell returns the End cell, or nil when unset
func (g *Grid) EndCell() *Cell {
	if g.end < 0 {
		return nil
	}
	return &g.Cells[g.end]
}

// RoleAt reports which role, if any, the cell at (row, col) holds
func (g *Grid) RoleAt(row, col int) Role {
	if !g.InBounds(row, col) {
		return RoleNone
	}
	switch g.Index(row, col) {
	case g.start:
		return RoleStart
	case g.end:
		return RoleEnd
	}
	return RoleNone
}

// RebuildNeighbors recomputes the 4-directional adjacency cache from the
// current terrain. Impassable cells never appear as neighbors. The cache is
// a snapshot: it must be rebuilt after any terrain change and before a run.
func (g *Grid) RebuildNeighbors() {
	dirs := [4][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
	for i := range g.Cells {
		cell := &g.Cells[i]
		adj := g.neighbors[i][:0]
		for _, d := range dirs {
			nr, nc := cell.Row+d[0], cell.Col+d[1]
			if !g.InBounds(nr, nc) {
				continue
			}
			n := g.Index(nr, nc)
			if g.Cells[n].Terrain.Passable() {
				adj = append(adj, n)
			}
		}
		g.neighbors[i] = adj
	}
}

// Neighbors returns the cached adjacency for the cell at flat index idx
func (g *Grid) Neighbors(idx int) []int { return g.neighbors[idx] }

// ResetSearchState wipes g/h/f, parents and flags on every cell, leaving
// terrain and roles in place. Called before a fresh run.
func (g *Grid) ResetSearchState() {
	for i := range g.Cells {
		g.Cells[i].resetSearch()
	}
	if g.start >= 0 {
		g.Cells[g.start].G = 0
	}
}

// DisplayColor resolves the fill color for one cell.
// Precedence: role, then path, then open, then closed, then base terrain.
func (g *Grid) DisplayColor(row, col int) color.RGBA {
	cell := g.At(row, col)
	if cell == nil {
		return color.RGBA{}
	}
	switch g.Index(row, col) {
	case g.start:
		return ColorStart
	case g.end:
		return ColorEnd
	}
	switch {
	case cell.OnPath:
		return ColorPath
	case cell.InOpen:
		return ColorOpen
	case cell.InClosed:
		return ColorClosed
	}
	return cell.Terrain.Color()
}

// StateName describes one cell's current standing for info readouts,
// following the same precedence as DisplayColor
func (g *Grid) StateName(row, col int) string {
	cell := g.At(row, col)
	if cell == nil {
		return "Out of Bounds"
	}
	switch g.RoleAt(row, col) {
	case RoleStart:
		return "Start Node"
	case RoleEnd:
		return "End Node"
	}
	switch {
	case cell.OnPath:
		return "On Path"
	case cell.InOpen:
		return "In Open Set"
	case cell.InClosed:
		return "In Closed Set"
	case cell.Terrain == TerrainObstacle:
		return "Obstacle"
	}
	return "Idle"
}
