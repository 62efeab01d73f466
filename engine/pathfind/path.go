package pathfind

// Path reconstruction walks parent links from End back to Start (Start has
// no parent). Intermediate cells are marked OnPath as the walk passes them;
// Start and End keep their role display. The walk itself runs End→Start,
// one link per TraceStep; the route handed to callers is reversed into
// Start→End order.

// TraceStep advances reconstruction by one parent link and reports whether
// the walk is finished. Only meaningful after the search Succeeded; before
// that, and after the walk completes, it reports true without touching
// anything.
func (s *Search) TraceStep() bool {
	if s.state != Succeeded || s.trace < 0 {
		return true
	}
	cell := &s.grid.Cells[s.trace]
	if s.trace != s.goal && s.trace != s.start {
		cell.InOpen = false
		cell.InClosed = false
		cell.OnPath = true
	}
	s.path = append(s.path, Point{cell.Row, cell.Col})
	if cell.Parent < 0 {
		for i, j := 0, len(s.path)-1; i < j; i, j = i+1, j-1 {
			s.path[i], s.path[j] = s.path[j], s.path[i]
		}
		s.trace = -1
		return true
	}
	s.trace = cell.Parent
	return false
}

// Path returns the reconstructed route from Start to End inclusive, or nil
// until the trace has finished. The total cost of the route is Cost(),
// which is End's g and independent of the heuristic.
func (s *Search) Path() []Point {
	if s.trace >= 0 {
		return nil
	}
	return s.path
}
