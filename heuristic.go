package astar

import (
	"fmt"
	"math"
	"strings"
)

// CostScale keeps costs integral while still telling diagonal (14) from orthogonal (10) moves.
const CostScale = 10

// Heuristic returns the scaled distance from one cell to another.
type Heuristic func(from Cell, to Cell) int

// HeuristicKind selects one of the built-in distance functions.
type HeuristicKind int

const (
	EuclideanKind HeuristicKind = iota
	ManhattanKind
)

// Euclidean is round(10 * sqrt(dx² + dy²)).
func Euclidean(from Cell, to Cell) int {
	rowDelta := float64(to.Row - from.Row)
	colDelta := float64(to.Col - from.Col)
	return int(math.Round(CostScale * math.Sqrt(rowDelta*rowDelta+colDelta*colDelta)))
}

// Manhattan is 10 * (|dx| + |dy|).
func Manhattan(from Cell, to Cell) int {
	return CostScale * (absInt(to.Row-from.Row) + absInt(to.Col-from.Col))
}

// Func returns the distance function for the kind.
func (kind HeuristicKind) Func() Heuristic {
	if kind == ManhattanKind {
		return Manhattan
	}
	return Euclidean
}

// Distance evaluates the kind's distance function.
func (kind HeuristicKind) Distance(from Cell, to Cell) int {
	return kind.Func()(from, to)
}

func (kind HeuristicKind) String() string {
	switch kind {
	case EuclideanKind:
		return "euclidean"
	case ManhattanKind:
		return "manhattan"
	default:
		return fmt.Sprintf("heuristic(%d)", int(kind))
	}
}

// ParseHeuristic accepts "euclidean" or "manhattan", case-insensitively.
func ParseHeuristic(name string) (HeuristicKind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "euclidean", "euclid":
		return EuclideanKind, nil
	case "manhattan":
		return ManhattanKind, nil
	default:
		return 0, fmt.Errorf("unknown heuristic %q", name)
	}
}

// MarshalText lets the kind appear by name in YAML and JSON.
func (kind HeuristicKind) MarshalText() ([]byte, error) {
	return []byte(kind.String()), nil
}

func (kind *HeuristicKind) UnmarshalText(text []byte) error {
	parsed, err := ParseHeuristic(string(text))
	if err != nil {
		return err
	}
	*kind = parsed
	return nil
}
