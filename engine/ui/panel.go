package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/thecherry94/pathlab/engine/gridlib"
	"github.com/thecherry94/pathlab/painter"
)

var (
	panelBG     = color.RGBA{230, 230, 230, 255}
	textColor   = color.RGBA{10, 10, 10, 255}
	dimColor    = color.RGBA{120, 120, 120, 255}
	borderColor = color.RGBA{100, 100, 100, 255}
	hoverBG     = color.RGBA{200, 200, 255, 255}
	selectedBG  = color.RGBA{200, 200, 250, 255}
)

const (
	buttonHeight = 28
	buttonPad    = 5
)

// Panel is the info sidebar: status line, hovered-cell readout, paint-mode
// and brush buttons, and a toggleable key reference
type Panel struct {
	X, Y          int
	Width, Height int

	ShowInstructions bool

	face         font.Face
	modeButtons  []modeButton
	brushButtons []brushButton
}

type modeButton struct {
	rect image.Rectangle
	mode painter.PaintMode
}

type brushButton struct {
	rect  image.Rectangle
	brush painter.Brush
}

// NewPanel lays out a panel with its top-left corner at (x, y)
func NewPanel(x, y, w, h int) *Panel {
	pl := &Panel{
		X: x, Y: y, Width: w, Height: h,
		ShowInstructions: true,
		face:             basicfont.Face7x13,
	}

	// Mode buttons, two side by side
	bw := (w - 60) / 2
	my := y + 210
	for i, m := range []painter.PaintMode{painter.PaintSingle, painter.PaintFlood} {
		bx := x + 20 + i*(bw+10)
		pl.modeButtons = append(pl.modeButtons, modeButton{
			rect: image.Rect(bx, my, bx+bw, my+buttonHeight),
			mode: m,
		})
	}

	// Brush buttons, stacked
	by := y + 266
	for _, b := range painter.Brushes() {
		pl.brushButtons = append(pl.brushButtons, brushButton{
			rect:  image.Rect(x+20, by, x+w-20, by+buttonHeight),
			brush: b,
		})
		by += buttonHeight + buttonPad
	}
	return pl
}

// Click routes a press at (mx, my) to a mode or brush button and reports
// whether the panel consumed it. Anything inside the panel area counts as
// consumed so grid painting never happens under the panel.
func (pl *Panel) Click(p *painter.Painter, mx, my int) bool {
	if mx < pl.X || mx >= pl.X+pl.Width || my < pl.Y || my >= pl.Y+pl.Height {
		return false
	}
	pt := image.Pt(mx, my)
	for _, b := range pl.modeButtons {
		if pt.In(b.rect) {
			p.SelectMode(b.mode)
			return true
		}
	}
	for _, b := range pl.brushButtons {
		if pt.In(b.rect) {
			p.SelectBrush(b.brush)
			return true
		}
	}
	return true
}

// Draw renders the panel. (hoverRow, hoverCol) is the grid cell under the
// mouse; pass out-of-bounds coordinates when the mouse is off the grid.
func (pl *Panel) Draw(screen *ebiten.Image, p *painter.Painter, mx, my, hoverRow, hoverCol int) {
	x, y := pl.X, pl.Y
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(pl.Width), float32(pl.Height), panelBG, false)
	vector.StrokeLine(screen, float32(x), float32(y), float32(x), float32(y+pl.Height), 2, color.RGBA{180, 180, 180, 255}, false)

	pl.drawCentered(screen, p.Status, y+24)
	pl.drawHoverInfo(screen, p.Grid, y+52, hoverRow, hoverCol)

	pl.drawText(screen, "Paint Mode", x+20, y+202, textColor)
	for _, b := range pl.modeButtons {
		pl.drawButton(screen, b.rect, b.mode.Name(), b.mode == p.Mode, mx, my)
	}

	pl.drawText(screen, "Paint Brush", x+20, y+258, textColor)
	for _, b := range pl.brushButtons {
		pl.drawButton(screen, b.rect, brushLabel(b.brush), b.brush == p.Brush, mx, my)
		pl.drawSwatch(screen, b.rect, b.brush)
	}

	pl.drawInstructions(screen)
}

func brushLabel(b painter.Brush) string {
	kind, ok := b.Terrain()
	if !ok || kind == gridlib.TerrainObstacle {
		return b.Name()
	}
	return fmt.Sprintf("%s (Cost: %.1f)", b.Name(), kind.Cost())
}

func brushColor(b painter.Brush) color.RGBA {
	switch b {
	case painter.BrushStart:
		return gridlib.ColorStart
	case painter.BrushEnd:
		return gridlib.ColorEnd
	}
	kind, _ := b.Terrain()
	return kind.Color()
}

func (pl *Panel) drawHoverInfo(screen *ebiten.Image, g *gridlib.Grid, y, row, col int) {
	x := pl.X + 20
	pl.drawText(screen, "Hovered Node", x, y, textColor)
	y += 18

	cell := g.At(row, col)
	if cell == nil {
		pl.drawText(screen, "Mouse over grid...", x+10, y, dimColor)
		return
	}

	costStr := "Inf"
	if cell.Terrain.Passable() {
		costStr = fmt.Sprintf("%.1f", cell.MovementCost())
	}
	lines := []string{
		fmt.Sprintf("Pos: (%d, %d)", cell.Row, cell.Col),
		"Status: " + g.StateName(row, col),
		"Terrain: " + cell.Terrain.Name(),
		"Move Cost: " + costStr,
		"--- A* Costs ---",
		"G: " + costOrDash(cell.G),
		"H: " + costOrDash(cell.H),
		"F: " + costOrDash(cell.F),
	}
	for _, line := range lines {
		clr := textColor
		if line == "--- A* Costs ---" {
			clr = dimColor
		}
		pl.drawText(screen, line, x+10, y, clr)
		y += 16
	}
}

func costOrDash(v float64) string {
	if math.IsInf(v, 1) {
		return "-"
	}
	return fmt.Sprintf("%.1f", v)
}

func (pl *Panel) drawInstructions(screen *ebiten.Image) {
	x := pl.X + 20
	y := pl.Y + 530
	toggle := "Show"
	if pl.ShowInstructions {
		toggle = "Hide"
	}
	pl.drawText(screen, fmt.Sprintf("Instructions ('I' to %s):", toggle), x, y, textColor)
	if !pl.ShowInstructions {
		return
	}
	y += 18
	lines := []string{
		"1. Select Paint Mode & Brush.",
		"2. L-Click/Drag (Single) or L-Click (Flood).",
		"3. R-Click on grid to Erase to Grass.",
		"4. SPACE: Start A* Algorithm.",
		"5. ESC: Cancel a running search.",
		"6. 'C' Key: Clear grid & reset.",
	}
	for _, line := range lines {
		pl.drawText(screen, line, x+10, y, textColor)
		y += 15
	}
}

func (pl *Panel) drawButton(screen *ebiten.Image, r image.Rectangle, label string, selected bool, mx, my int) {
	bg := panelBG
	stroke := float32(1)
	if selected {
		bg = selectedBG
		stroke = 2
	} else if image.Pt(mx, my).In(r) {
		bg = hoverBG
	}
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), bg, false)
	vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), stroke, borderColor, false)
	pl.drawText(screen, label, r.Min.X+30, r.Min.Y+(r.Dy()-13)/2+2, textColor)
}

func (pl *Panel) drawSwatch(screen *ebiten.Image, r image.Rectangle, b painter.Brush) {
	vector.DrawFilledRect(screen, float32(r.Min.X+5), float32(r.Min.Y+4), 20, float32(r.Dy()-8), brushColor(b), false)
	vector.StrokeRect(screen, float32(r.Min.X+5), float32(r.Min.Y+4), 20, float32(r.Dy()-8), 1, color.RGBA{50, 50, 50, 255}, false)
}

func (pl *Panel) drawCentered(screen *ebiten.Image, s string, y int) {
	w := font.MeasureString(pl.face, s).Ceil()
	pl.drawText(screen, s, pl.X+(pl.Width-w)/2, y, textColor)
}

// drawText takes the top-left corner of the string; the face's ascent turns
// it into the baseline text.Draw expects
func (pl *Panel) drawText(screen *ebiten.Image, s string, x, y int, clr color.RGBA) {
	text.Draw(screen, s, pl.face, x, y+pl.face.Metrics().Ascent.Ceil(), clr)
}
