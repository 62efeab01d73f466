package main

import (
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/thecherry94/pathlab/engine/gridlib"
	"github.com/thecherry94/pathlab/engine/input"
	"github.com/thecherry94/pathlab/engine/pathfind"
	"github.com/thecherry94/pathlab/engine/ui"
	"github.com/thecherry94/pathlab/painter"
)

const (
	GridPixels   = 750
	PanelWidth   = 350
	ScreenWidth  = GridPixels + PanelWidth
	ScreenHeight = 750
	Rows         = 30
	CellSize     = GridPixels / Rows

	searchFrameDelay = 1 // frames to wait between expansions
	traceFrameDelay  = 2 // frames to wait between path marks
)

type phase uint8

const (
	phaseEdit phase = iota
	phaseSearch
	phaseTrace
)

// App drives the interactive pathfinder: paint terrain and roles in edit
// phase, then watch the search expand one cell per tick and the path get
// traced back. All grid mutation happens here on the frame loop, never
// while a search is in flight.
type App struct {
	painter *painter.Painter
	panel   *ui.Panel
	input   *input.State

	search *pathfind.Search
	phase  phase
	wait   int
}

func (a *App) Update() error {
	a.input.Update()

	switch a.phase {
	case phaseSearch:
		a.updateSearch()
	case phaseTrace:
		a.updateTrace()
	default:
		a.updateEdit()
	}

	if a.input.IsKeyJustPressed(ebiten.KeyI) {
		a.panel.ShowInstructions = !a.panel.ShowInstructions
	}
	return nil
}

func (a *App) updateSearch() {
	if a.input.IsKeyJustPressed(ebiten.KeyEscape) {
		a.search.Cancel()
		a.painter.Status = "Run Cancelled."
		a.phase = phaseEdit
		return
	}
	if a.wait > 0 {
		a.wait--
		return
	}
	a.wait = searchFrameDelay

	if !a.search.Step() {
		return
	}
	switch a.search.State() {
	case pathfind.Succeeded:
		a.painter.Status = fmt.Sprintf("Path Found! Cost: %.1f", a.search.Cost())
		a.phase = phaseTrace
		a.wait = 0
	case pathfind.Failed:
		a.painter.Status = "Path Not Found."
		a.phase = phaseEdit
	default:
		a.phase = phaseEdit
	}
}

func (a *App) updateTrace() {
	if a.wait > 0 {
		a.wait--
		return
	}
	a.wait = traceFrameDelay
	if a.search.TraceStep() {
		a.phase = phaseEdit
	}
}

func (a *App) updateEdit() {
	mx, my := a.input.MouseX, a.input.MouseY

	if a.input.LeftJustPressed {
		if !a.panel.Click(a.painter, mx, my) {
			if row, col, ok := a.cellAt(mx, my); ok {
				a.painter.Apply(row, col)
				a.input.Painting = true
			}
		}
	} else if a.input.LeftPressed && a.input.Painting {
		if row, col, ok := a.cellAt(mx, my); ok {
			a.painter.Drag(row, col)
		}
	}

	if a.input.RightJustPressed {
		if row, col, ok := a.cellAt(mx, my); ok {
			a.painter.Erase(row, col)
			a.input.Erasing = true
		}
	} else if a.input.RightPressed && a.input.Erasing {
		if row, col, ok := a.cellAt(mx, my); ok {
			a.painter.Erase(row, col)
		}
	}

	if a.input.IsKeyJustPressed(ebiten.KeySpace) && a.painter.CanRun() {
		search, err := a.painter.NewSearch()
		if err != nil {
			log.Printf("search setup: %v", err)
			return
		}
		a.search = search
		a.painter.Status = "Algorithm Running..."
		a.phase = phaseSearch
		a.wait = 0
	}

	if a.input.IsKeyJustPressed(ebiten.KeyC) {
		a.painter.Clear()
		a.search = nil
	}
}

// cellAt maps screen coordinates to a grid cell
func (a *App) cellAt(mx, my int) (row, col int, ok bool) {
	if mx < 0 || mx >= GridPixels || my < 0 || my >= GridPixels {
		return 0, 0, false
	}
	return my / CellSize, mx / CellSize, true
}

func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{255, 255, 255, 255})

	g := a.painter.Grid
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Rows; c++ {
			vector.DrawFilledRect(screen, float32(c*CellSize), float32(r*CellSize), CellSize, CellSize, g.DisplayColor(r, c), false)
		}
	}

	lineClr := color.RGBA{200, 200, 200, 255}
	for i := 0; i <= Rows; i++ {
		pos := float32(i * CellSize)
		vector.StrokeLine(screen, 0, pos, GridPixels, pos, 1, lineClr, false)
		vector.StrokeLine(screen, pos, 0, pos, ScreenHeight, 1, lineClr, false)
	}

	// f-cost labels on open cells
	for i := range g.Cells {
		cell := &g.Cells[i]
		if !cell.InOpen || math.IsInf(cell.F, 1) {
			continue
		}
		if g.RoleAt(cell.Row, cell.Col) != gridlib.RoleNone {
			continue
		}
		label := fmt.Sprintf("%.1f", cell.F)
		text.Draw(screen, label, basicfont.Face7x13,
			cell.Col*CellSize+2, cell.Row*CellSize+CellSize/2+4,
			color.RGBA{40, 40, 40, 255})
	}

	hoverRow, hoverCol := -1, -1
	if row, col, ok := a.cellAt(a.input.MouseX, a.input.MouseY); ok {
		hoverRow, hoverCol = row, col
		vector.StrokeRect(screen, float32(col*CellSize), float32(row*CellSize), CellSize, CellSize, 2, color.RGBA{0, 100, 255, 255}, false)
	}

	a.panel.Draw(screen, a.painter, a.input.MouseX, a.input.MouseY, hoverRow, hoverCol)
}

func (a *App) Layout(_, _ int) (int, int) {
	return ScreenWidth, ScreenHeight
}

func main() {
	ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	ebiten.SetWindowTitle("A* Pathfinding with Terrain & Flood Fill")

	app := &App{
		painter: painter.NewPainter(Rows),
		panel:   ui.NewPanel(GridPixels, 0, PanelWidth, ScreenHeight),
		input:   input.NewState(),
	}
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
