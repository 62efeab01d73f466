package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/thecherry94/pathlab/engine/audio"
	"github.com/thecherry94/pathlab/engine/pathfind"
	"github.com/thecherry94/pathlab/painter"
)

const rows = 20

// App is the terminal front end: a cursor-driven painter over the same core
// the desktop app uses. The search runs cooperatively inside the event
// loop, redrawing once per expanded cell.
type App struct {
	screen  tcell.Screen
	painter *painter.Painter
	cues    *audio.Player

	curRow, curCol int
}

func NewApp() (*App, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return &App{
		screen:  screen,
		painter: painter.NewPainter(rows),
		cues:    audio.NewPlayer(),
		curRow:  rows / 2,
		curCol:  rows / 2,
	}, nil
}

func (a *App) Run() {
	for {
		a.draw()
		a.screen.Show()
		switch ev := a.screen.PollEvent().(type) {
		case *tcell.EventResize:
			a.screen.Sync()
		case *tcell.EventKey:
			if !a.handleKey(ev) {
				return
			}
		}
	}
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		a.moveCursor(-1, 0)
	case tcell.KeyDown:
		a.moveCursor(1, 0)
	case tcell.KeyLeft:
		a.moveCursor(0, -1)
	case tcell.KeyRight:
		a.moveCursor(0, 1)
	case tcell.KeyTab:
		a.nextBrush()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case 'h':
			a.moveCursor(0, -1)
		case 'j':
			a.moveCursor(1, 0)
		case 'k':
			a.moveCursor(-1, 0)
		case 'l':
			a.moveCursor(0, 1)
		case 'b':
			a.nextBrush()
		case 'f':
			if a.painter.Mode == painter.PaintFlood {
				a.painter.SelectMode(painter.PaintSingle)
			} else {
				a.painter.SelectMode(painter.PaintFlood)
			}
		case ' ':
			a.painter.Apply(a.curRow, a.curCol)
		case 'x':
			a.painter.Erase(a.curRow, a.curCol)
		case 'c':
			a.painter.Clear()
		case 'r':
			a.runSearch()
		}
	}
	return true
}

func (a *App) moveCursor(dr, dc int) {
	r, c := a.curRow+dr, a.curCol+dc
	if a.painter.Grid.InBounds(r, c) {
		a.curRow, a.curCol = r, c
	}
}

func (a *App) nextBrush() {
	brushes := painter.Brushes()
	for i, b := range brushes {
		if b == a.painter.Brush {
			a.painter.SelectBrush(brushes[(i+1)%len(brushes)])
			return
		}
	}
	a.painter.SelectBrush(brushes[0])
}

// runSearch drives the search to completion inside the event loop. The
// progress callback redraws and drains pending key events so Esc can flag
// cancellation, which the engine observes once per iteration.
func (a *App) runSearch() {
	if !a.painter.CanRun() {
		a.painter.Status = "Place Start and End first."
		return
	}
	search, err := a.painter.NewSearch()
	if err != nil {
		a.painter.Status = err.Error()
		return
	}

	cancelled := false
	progress := func() {
		a.draw()
		a.screen.Show()
		for a.screen.HasPendingEvent() {
			if ev, ok := a.screen.PollEvent().(*tcell.EventKey); ok {
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
					cancelled = true
				}
			}
		}
		time.Sleep(15 * time.Millisecond)
	}
	status := func(msg string) { a.painter.Status = msg }

	switch search.Run(progress, status, func() bool { return cancelled }) {
	case pathfind.Succeeded:
		a.cues.Play(audio.CueSuccess)
	case pathfind.Failed:
		a.cues.Play(audio.CueFailure)
	case pathfind.Cancelled:
		a.painter.Status = "Run Cancelled."
		a.cues.Play(audio.CueCancel)
	}
}

func (a *App) draw() {
	a.screen.Clear()
	g := a.painter.Grid

	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Rows; c++ {
			clr := g.DisplayColor(r, c)
			style := tcell.StyleDefault.
				Background(tcell.NewRGBColor(int32(clr.R), int32(clr.G), int32(clr.B)))
			a.screen.SetContent(c*2, r, ' ', nil, style)
			a.screen.SetContent(c*2+1, r, ' ', nil, style)
		}
	}

	// Cursor brackets over the cell's own color
	clr := g.DisplayColor(a.curRow, a.curCol)
	cursorStyle := tcell.StyleDefault.
		Background(tcell.NewRGBColor(int32(clr.R), int32(clr.G), int32(clr.B))).
		Foreground(tcell.ColorWhite).Bold(true)
	a.screen.SetContent(a.curCol*2, a.curRow, '[', nil, cursorStyle)
	a.screen.SetContent(a.curCol*2+1, a.curRow, ']', nil, cursorStyle)

	a.drawText(0, g.Rows, a.painter.Status)
	a.drawText(0, g.Rows+1, fmt.Sprintf("Brush: %s | Mode: %s | Cell: (%d,%d) %s",
		a.painter.Brush.Name(), a.painter.Mode.Name(),
		a.curRow, a.curCol, g.StateName(a.curRow, a.curCol)))
	a.drawText(0, g.Rows+2, "[arrows/hjkl]move [space]paint [x]erase [b/tab]brush [f]mode [r]run [c]clear [q]quit")
}

func (a *App) drawText(x, y int, s string) {
	for i, r := range s {
		a.screen.SetContent(x+i, y, r, nil, tcell.StyleDefault)
	}
}

func main() {
	app, err := NewApp()
	if err != nil {
		log.Fatal(err)
	}
	defer app.screen.Fini()
	app.Run()
}
