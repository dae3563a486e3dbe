package astar

import (
	"github.com/zyedidia/generic/mapset"
)

// StepSnapshot exposes the per-iteration state of the search
type StepSnapshot struct {
	Current   Cell
	Open      mapset.Set[Cell]
	Closed    mapset.Set[Cell]
	Parents   map[Cell]Cell
	Done      bool
	Found     bool
	Path      []Cell
	Cost      int
	StepIndex int
}

// Stepper drives a search one expansion at a time, for visualisers and debugging.
// It owns its own open and closed sets and is independent of the Engine that made it.
type Stepper struct {
	searchSession *session
	stepCount     int
}

// NewStepper validates the request like FindPath and returns a stepper
// positioned before the first expansion.
func (engine *Engine) NewStepper(start Cell, target Cell) (*Stepper, error) {
	grid := engine.grid.snapshot()
	if err := validate(grid, start, target); err != nil {
		return nil, err
	}
	searchSession := newSession(grid, engine.options)
	searchSession.reset(grid, start, target)
	return &Stepper{searchSession: searchSession}, nil
}

// Done reports whether the search has finished.
func (s *Stepper) Done() bool { return s.searchSession.done() }

// Step advances the search by one node expansion and returns a snapshot.
// After the search finishes every call returns the final state.
func (s *Stepper) Step() StepSnapshot {
	if s.searchSession.done() {
		return s.snapshot(Cell{}, false)
	}

	currentNode := s.searchSession.step()
	if currentNode == nil {
		return s.snapshot(Cell{}, false)
	}
	s.stepCount++
	return s.snapshot(currentNode.Pos, true)
}

// Result returns the search outcome once Done; before that it is empty.
func (s *Stepper) Result() (Result, error) {
	if !s.searchSession.done() {
		return Result{}, nil
	}
	path := s.searchSession.path()
	if len(path) == 0 {
		return Result{}, &SearchError{Reason: NoPathFound, Cell: s.searchSession.target}
	}
	return Result{
		Start:         s.searchSession.start,
		Target:        s.searchSession.target,
		Path:          path,
		Cost:          s.searchSession.cost(),
		ExpandedNodes: s.searchSession.expandedNodes,
		Found:         true,
	}, nil
}

func (s *Stepper) snapshot(current Cell, hasCurrent bool) StepSnapshot {
	searchSession := s.searchSession
	snapshot := StepSnapshot{
		Open:      mapset.New[Cell](),
		Closed:    mapset.New[Cell](),
		Parents:   make(map[Cell]Cell, len(searchSession.openSetMap)+len(searchSession.closedSet)),
		Done:      searchSession.done(),
		Found:     searchSession.status == statusFound,
		StepIndex: s.stepCount,
	}
	if hasCurrent {
		snapshot.Current = current
	}
	for position, node := range searchSession.openSetMap {
		snapshot.Open.Put(position)
		snapshot.Parents[position] = node.Parent
	}
	for position, node := range searchSession.closedSet {
		snapshot.Closed.Put(position)
		snapshot.Parents[position] = node.Parent
	}
	if snapshot.Found {
		snapshot.Current = searchSession.target
		snapshot.Path = searchSession.path()
		snapshot.Cost = searchSession.cost()
	}
	return snapshot
}
