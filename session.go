package astar

import (
	"container/heap"

	"github.com/pdrpinto/gridastar/internal"
)

type searchStatus int

const (
	statusRunning searchStatus = iota
	statusFound
	statusExhausted
)

// session is the open/closed state of one search. It is owned by a single
// goroutine for the duration of the search.
type session struct {
	grid     *gridData
	start    Cell
	target   Cell
	stepCost Heuristic
	estimate Heuristic

	openSet      PriorityQueue
	openSetMap   map[Cell]*Node
	closedSet    map[Cell]*Node
	nextSequence uint64

	expandedNodes int
	status        searchStatus
}

func newSession(grid *gridData, options Options) *session {
	return &session{
		grid:       grid,
		stepCost:   options.StepCost.Func(),
		estimate:   options.Estimate.Func(),
		openSet:    make(PriorityQueue, 0),
		openSetMap: make(map[Cell]*Node),
		closedSet:  make(map[Cell]*Node),
	}
}

// reset empties the sets and seeds the open set with start.
func (s *session) reset(grid *gridData, start Cell, target Cell) {
	s.grid = grid
	s.start, s.target = start, target
	s.openSet = s.openSet[:0]
	clear(s.openSetMap)
	clear(s.closedSet)
	s.nextSequence = 0
	s.expandedNodes = 0
	s.status = statusRunning

	heap.Init(&s.openSet)
	s.insertOpen(start, start, 0)
}

// release drops references to nodes so a reused engine does not pin the last search.
func (s *session) release() {
	for i := range s.openSet {
		s.openSet[i] = nil
	}
	s.openSet = s.openSet[:0]
	clear(s.openSetMap)
	clear(s.closedSet)
	s.grid = nil
}

func (s *session) insertOpen(position Cell, parent Cell, g int) {
	node := &Node{
		Pos:      position,
		Parent:   parent,
		G:        g,
		H:        s.estimate(position, s.target),
		sequence: s.nextSequence,
	}
	s.nextSequence++
	heap.Push(&s.openSet, node)
	s.openSetMap[position] = node
}

// step closes the best open node and expands it. It returns the closed node,
// or nil when the search had already finished or the open set was empty.
func (s *session) step() *Node {
	if s.status != statusRunning {
		return nil
	}
	if s.openSet.Len() == 0 {
		s.status = statusExhausted
		return nil
	}

	currentNode := heap.Pop(&s.openSet).(*Node)
	delete(s.openSetMap, currentNode.Pos)
	s.closedSet[currentNode.Pos] = currentNode
	s.expandedNodes++

	if currentNode.Pos == s.target {
		s.status = statusFound
		return currentNode
	}

	for _, offset := range neighborOffsets {
		neighbor := Cell{Row: currentNode.Pos.Row + offset.Row, Col: currentNode.Pos.Col + offset.Col}
		if !s.grid.isPassable(neighbor) {
			continue
		}
		if _, closed := s.closedSet[neighbor]; closed {
			continue
		}

		tentativeG := currentNode.G + s.stepCost(currentNode.Pos, neighbor)
		existing, inOpen := s.openSetMap[neighbor]
		if !inOpen {
			s.insertOpen(neighbor, currentNode.Pos, tentativeG)
		} else if tentativeG < existing.G {
			// h stays: the target is fixed for the session.
			existing.Parent = currentNode.Pos
			existing.G = tentativeG
			heap.Fix(&s.openSet, existing.IndexInQueue)
		}
	}
	return currentNode
}

func (s *session) done() bool { return s.status != statusRunning }

// path returns the target-to-start chain, start excluded, or nil when the
// target was never closed.
func (s *session) path() []Cell {
	if s.status != statusFound {
		return nil
	}
	path, ok := internal.ReconstructPath(func(position Cell) (Cell, bool) {
		node, closed := s.closedSet[position]
		if !closed {
			return Cell{}, false
		}
		return node.Parent, true
	}, s.target, s.start)
	if !ok {
		return nil
	}
	return path
}

func (s *session) cost() int {
	if node, closed := s.closedSet[s.target]; closed && s.status == statusFound {
		return node.G
	}
	return 0
}

// validate applies the early-exit checks in their fixed order.
func validate(grid *gridData, start Cell, target Cell) error {
	if grid.rowCount() == 0 {
		return &SearchError{Reason: EmptyMap}
	}
	endpoints := []struct {
		name Endpoint
		cell Cell
	}{{StartEndpoint, start}, {TargetEndpoint, target}}

	for _, endpoint := range endpoints {
		if !grid.inBounds(endpoint.cell) {
			return &SearchError{
				Reason:   OutOfBounds,
				Endpoint: endpoint.name,
				Cell:     endpoint.cell,
				Rows:     grid.rowCount(),
				Cols:     grid.cols,
			}
		}
	}
	if start == target {
		return &SearchError{Reason: DegenerateRequest, Cell: start}
	}
	for _, endpoint := range endpoints {
		if !grid.isPassable(endpoint.cell) {
			return &SearchError{
				Reason:   BlockedEndpoint,
				Endpoint: endpoint.name,
				Cell:     endpoint.cell,
				Rows:     grid.rowCount(),
				Cols:     grid.cols,
			}
		}
	}
	return nil
}
