package painter

import (
	"fmt"

	"github.com/thecherry94/pathlab/engine/gridlib"
	"github.com/thecherry94/pathlab/engine/pathfind"
)

// Brush selects what a click paints: one of the two roles or a terrain kind
type Brush uint8

const (
	BrushStart Brush = iota
	BrushEnd
	BrushGrass
	BrushRoad
	BrushDirt
	BrushWater
	BrushObstacle
)

// Brushes lists every brush in display order
func Brushes() []Brush {
	return []Brush{
		BrushStart, BrushEnd,
		BrushGrass, BrushRoad, BrushDirt, BrushWater, BrushObstacle,
	}
}

// Terrain maps a terrain brush to its kind; ok is false for the role brushes
func (b Brush) Terrain() (gridlib.TerrainKind, bool) {
	switch b {
	case BrushGrass:
		return gridlib.TerrainGrass, true
	case BrushRoad:
		return gridlib.TerrainRoad, true
	case BrushDirt:
		return gridlib.TerrainDirt, true
	case BrushWater:
		return gridlib.TerrainWater, true
	case BrushObstacle:
		return gridlib.TerrainObstacle, true
	}
	return 0, false
}

// Name returns the display label for b
func (b Brush) Name() string {
	switch b {
	case BrushStart:
		return "Start Node"
	case BrushEnd:
		return "End Node"
	}
	kind, _ := b.Terrain()
	return kind.Name()
}

// PaintMode selects between single-cell and flood-fill painting
type PaintMode uint8

const (
	PaintSingle PaintMode = iota
	PaintFlood
)

// Name returns the display label for m
func (m PaintMode) Name() string {
	if m == PaintFlood {
		return "Flood Fill"
	}
	return "Single Tile"
}

// Painter holds one edit session: the grid plus the active tool state.
// Front ends translate clicks and key presses into its operations; nothing
// here knows how rendering happens.
type Painter struct {
	Grid   *gridlib.Grid
	Brush  Brush
	Mode   PaintMode
	Status string

	rows int
}

// NewPainter starts a session on a fresh rows×rows grid
func NewPainter(rows int) *Painter {
	return &Painter{
		Grid:   gridlib.NewGrid(rows),
		Brush:  BrushStart,
		Mode:   PaintSingle,
		Status: "Select Brush & Paint Mode",
		rows:   rows,
	}
}

// SelectBrush switches the active brush
func (p *Painter) SelectBrush(b Brush) {
	p.Brush = b
	p.Status = fmt.Sprintf("Brush: %s, %s", b.Name(), p.Mode.Name())
}

// SelectMode switches the active paint mode
func (p *Painter) SelectMode(m PaintMode) {
	p.Mode = m
	p.Status = fmt.Sprintf("Mode: %s, %s", p.Brush.Name(), m.Name())
}

// Apply handles a primary click at (row, col) with the active brush and
// mode. Role brushes displace the previous holder, which reverts to the
// default terrain. Clicks outside the grid do nothing.
func (p *Painter) Apply(row, col int) {
	if !p.Grid.InBounds(row, col) {
		return
	}
	switch p.Brush {
	case BrushStart:
		p.placeRole(row, col, gridlib.RoleStart)
	case BrushEnd:
		p.placeRole(row, col, gridlib.RoleEnd)
	default:
		kind, _ := p.Brush.Terrain()
		if p.Mode == PaintFlood {
			p.Grid.FloodFill(row, col, kind)
		} else {
			p.Grid.SetTerrain(row, col, kind)
		}
	}
}

// Drag paints while the pointer moves with the button held. Only single-tile
// terrain painting drags; role placement and flood fill act on the initial
// click alone, and cells holding a role are skipped.
func (p *Painter) Drag(row, col int) {
	kind, ok := p.Brush.Terrain()
	if !ok || p.Mode == PaintFlood {
		return
	}
	if !p.Grid.InBounds(row, col) {
		return
	}
	if p.Grid.RoleAt(row, col) != gridlib.RoleNone {
		return
	}
	p.Grid.SetTerrain(row, col, kind)
}

// Erase reverts (row, col) to the default terrain, clearing any role there
func (p *Painter) Erase(row, col int) {
	if !p.Grid.InBounds(row, col) {
		return
	}
	p.Grid.SetTerrain(row, col, gridlib.DefaultTerrain)
}

// Clear discards the session grid, roles and search history atomically and
// starts over
func (p *Painter) Clear() {
	p.Grid = gridlib.NewGrid(p.rows)
	p.Status = "Grid Cleared! Select Brush & Paint Mode."
}

// CanRun reports whether both roles are assigned
func (p *Painter) CanRun() bool {
	return p.Grid.StartIndex() >= 0 && p.Grid.EndIndex() >= 0
}

// NewSearch wipes stale search state, rebuilds adjacency from the current
// terrain and prepares a run between Start and End
func (p *Painter) NewSearch() (*pathfind.Search, error) {
	if !p.CanRun() {
		return nil, pathfind.ErrMissingRole
	}
	p.Grid.ResetSearchState()
	p.Grid.RebuildNeighbors()
	return pathfind.NewSearch(p.Grid)
}

func (p *Painter) placeRole(row, col int, role gridlib.Role) {
	cell := p.Grid.At(row, col)
	if !cell.Terrain.Passable() {
		p.Status = "Can't place that on an Obstacle."
		return
	}
	var prev *gridlib.Cell
	if role == gridlib.RoleStart {
		prev = p.Grid.StartCell()
	} else {
		prev = p.Grid.EndCell()
	}
	// The displaced holder reverts to the default terrain
	if prev != nil && (prev.Row != row || prev.Col != col) {
		p.Grid.SetTerrain(prev.Row, prev.Col, gridlib.DefaultTerrain)
	}
	if role == gridlib.RoleStart {
		p.Grid.SetStart(row, col)
	} else {
		p.Grid.SetEnd(row, col)
	}
}
