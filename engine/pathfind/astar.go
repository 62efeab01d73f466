package pathfind

import (
	"container/heap"
	"errors"
	"fmt"
	"math"

	"github.com/thecherry94/pathlab/engine/gridlib"
)

// State tracks a search through its lifecycle.
// Succeeded, Failed and Cancelled are terminal.
type State uint8

const (
	Unstarted State = iota
	Running
	Succeeded
	Failed
	Cancelled
)

func (s State) String() string {
	switch s {
	case Unstarted:
		return "unstarted"
	case Running:
		return "running"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	case Cancelled:
		return "cancelled"
	}
	return "unknown"
}

// ErrMissingRole is returned when a run is requested without both a Start
// and an End cell assigned on the grid
var ErrMissingRole = errors.New("pathfind: grid needs both a start and an end cell")

// Point is one path position
type Point struct {
	Row, Col int
}

// Manhattan returns |Δrow| + |Δcol| between two cells.
//
// With 4-directional movement this is admissible only while every movement
// cost is at least 1.0. Road costs 0.5, so the estimate can overshoot a
// cheap route and the search loses its strict optimality guarantee. That is
// an inherited property of the tool, kept on purpose.
func Manhattan(a, b *gridlib.Cell) float64 {
	return math.Abs(float64(a.Row-b.Row)) + math.Abs(float64(a.Col-b.Col))
}

// Search runs weighted A* over a grid between its Start and End cells.
// It expands one cell per Step so frame-driven hosts can interleave
// rendering; Run drives it to a terminal state with callbacks. Construct
// with NewSearch; the zero value is not usable.
type Search struct {
	grid  *gridlib.Grid
	open  openHeap
	seq   int
	state State
	start int
	goal  int
	cost  float64
	trace int // reconstruction cursor, -1 when not tracing
	path  []Point
}

// NewSearch prepares a run between the grid's current Start and End.
// The grid's adjacency cache must be fresh: callers rebuild it after any
// terrain change. The Start cell is seeded into the open set immediately.
func NewSearch(g *gridlib.Grid) (*Search, error) {
	start, goal := g.StartIndex(), g.EndIndex()
	if start < 0 || goal < 0 {
		return nil, ErrMissingRole
	}
	s := &Search{grid: g, start: start, goal: goal, trace: -1}
	sc := &g.Cells[start]
	sc.G = 0
	sc.H = Manhattan(sc, &g.Cells[goal])
	sc.F = sc.G + sc.H
	s.push(start, sc.F)
	sc.InOpen = true
	return s, nil
}

// State returns the current lifecycle state
func (s *Search) State() State { return s.state }

// Cost returns the total path cost; meaningful once the search Succeeded
func (s *Search) Cost() float64 { return s.cost }

// Cancel moves a non-terminal search to Cancelled. Open/closed marks on the
// grid are left exactly as they are; there is no rollback.
func (s *Search) Cancel() {
	if s.state == Unstarted || s.state == Running {
		s.state = Cancelled
	}
}

// Step expands at most one cell and reports whether the search reached a
// terminal state. The open set may hold duplicate entries for a cell that
// was relaxed again while open; a stale entry whose cell is already closed
// is discarded here, since closed cells are final under this policy.
func (s *Search) Step() bool {
	switch s.state {
	case Succeeded, Failed, Cancelled:
		return true
	case Unstarted:
		s.state = Running
	}

	for s.open.Len() > 0 {
		entry := heap.Pop(&s.open).(*openEntry)
		cur := &s.grid.Cells[entry.idx]
		if cur.InClosed {
			continue
		}
		cur.InOpen = false

		if entry.idx == s.goal {
			s.cost = cur.G
			s.state = Succeeded
			s.trace = s.goal
			return true
		}

		goal := &s.grid.Cells[s.goal]
		for _, n := range s.grid.Neighbors(entry.idx) {
			nc := &s.grid.Cells[n]
			if nc.InClosed {
				continue
			}
			tentative := cur.G + nc.MovementCost()
			if tentative < nc.G {
				nc.Parent = entry.idx
				nc.G = tentative
				nc.H = Manhattan(nc, goal)
				nc.F = nc.G + nc.H
				s.push(n, nc.F)
				nc.InOpen = true
			}
		}

		cur.InClosed = true
		return false
	}

	s.state = Failed
	return true
}

// Run drives the search, and on success the path reconstruction, to
// completion. progress fires after every expanded cell and every
// reconstruction step so the host can render; status receives the
// transition messages; cancelled is consulted once per iteration between
// steps. Any callback may be nil.
func (s *Search) Run(progress func(), status func(string), cancelled func() bool) State {
	notify := func(msg string) {
		if status != nil {
			status(msg)
		}
	}
	tick := func() {
		if progress != nil {
			progress()
		}
	}

	notify("Algorithm Running...")
	for {
		if cancelled != nil && cancelled() {
			s.Cancel()
			return s.state
		}
		done := s.Step()
		tick()
		if done {
			break
		}
	}

	switch s.state {
	case Succeeded:
		notify(fmt.Sprintf("Path Found! Cost: %.1f", s.cost))
		for !s.TraceStep() {
			tick()
		}
		tick()
	case Failed:
		notify("Path Not Found.")
	}
	return s.state
}

func (s *Search) push(idx int, f float64) {
	heap.Push(&s.open, &openEntry{idx: idx, f: f, seq: s.seq})
	s.seq++
}

// --- Priority queue ---

// Entries order by f cost; equal f breaks ties by insertion sequence, so
// the first-inserted cell wins and expansion order is reproducible.
type openEntry struct {
	idx int
	f   float64
	seq int
}

type openHeap []*openEntry

func (h openHeap) Len() int { return len(h) }
func (h openHeap) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}
	return h[i].seq < h[j].seq
}
func (h openHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *openHeap) Push(x interface{}) { *h = append(*h, x.(*openEntry)) }
func (h *openHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}
