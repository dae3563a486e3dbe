package astar

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEuclidean(t *testing.T) {
	cases := []struct {
		from, to Cell
		want     int
	}{
		{Cell{0, 0}, Cell{0, 0}, 0},
		{Cell{0, 0}, Cell{1, 0}, 10},
		{Cell{0, 0}, Cell{0, -1}, 10},
		{Cell{0, 0}, Cell{1, 1}, 14},
		{Cell{2, 2}, Cell{1, 1}, 14},
		{Cell{0, 0}, Cell{1, 2}, 22},
		{Cell{0, 0}, Cell{2, 3}, 36},
		{Cell{0, 0}, Cell{3, 4}, 50},
	}
	for _, tc := range cases {
		if got := Euclidean(tc.from, tc.to); got != tc.want {
			t.Errorf("Euclidean(%v, %v) = %d, want %d", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestManhattan(t *testing.T) {
	cases := []struct {
		from, to Cell
		want     int
	}{
		{Cell{0, 0}, Cell{0, 0}, 0},
		{Cell{0, 0}, Cell{1, 1}, 20},
		{Cell{0, 0}, Cell{3, 4}, 70},
		{Cell{3, 4}, Cell{0, 0}, 70},
		{Cell{-2, 5}, Cell{1, 1}, 70},
	}
	for _, tc := range cases {
		if got := Manhattan(tc.from, tc.to); got != tc.want {
			t.Errorf("Manhattan(%v, %v) = %d, want %d", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestHeuristicKind_ParseAndString(t *testing.T) {
	for _, kind := range []HeuristicKind{EuclideanKind, ManhattanKind} {
		parsed, err := ParseHeuristic(kind.String())
		if err != nil {
			t.Fatalf("ParseHeuristic(%q): %v", kind.String(), err)
		}
		if parsed != kind {
			t.Errorf("ParseHeuristic(%q) = %v, want %v", kind.String(), parsed, kind)
		}
	}
	if kind, err := ParseHeuristic("  Manhattan "); err != nil || kind != ManhattanKind {
		t.Errorf("ParseHeuristic with padding = %v, %v", kind, err)
	}
	if _, err := ParseHeuristic("chebyshev"); err == nil {
		t.Error("expected error for unknown heuristic")
	}
}

func TestHeuristicKind_TextRoundTrip(t *testing.T) {
	var kind HeuristicKind
	if err := kind.UnmarshalText([]byte("manhattan")); err != nil {
		t.Fatal(err)
	}
	text, err := kind.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	if string(text) != "manhattan" {
		t.Errorf("MarshalText = %q, want manhattan", text)
	}
}

func TestHeuristicKind_Distance(t *testing.T) {
	from, to := Cell{0, 0}, Cell{2, 2}
	if got := EuclideanKind.Distance(from, to); got != 28 {
		t.Errorf("euclidean distance = %d, want 28", got)
	}
	if got := ManhattanKind.Distance(from, to); got != 40 {
		t.Errorf("manhattan distance = %d, want 40", got)
	}
}

func TestNeighborOffsets_Order(t *testing.T) {
	want := []Cell{
		{1, 1}, {1, 0}, {1, -1},
		{0, 1}, {0, -1},
		{-1, 1}, {-1, 0}, {-1, -1},
	}
	if diff := cmp.Diff(want, neighborOffsets); diff != "" {
		t.Errorf("neighbour order mismatch (-want +got):\n%s", diff)
	}
}

func TestAdjacent(t *testing.T) {
	center := Cell{3, 3}
	for _, offset := range neighborOffsets {
		neighbor := Cell{center.Row + offset.Row, center.Col + offset.Col}
		if !Adjacent(center, neighbor) {
			t.Errorf("Adjacent(%v, %v) = false", center, neighbor)
		}
	}
	for _, other := range []Cell{{3, 3}, {5, 3}, {1, 1}, {3, 5}} {
		if Adjacent(center, other) {
			t.Errorf("Adjacent(%v, %v) = true", center, other)
		}
	}
}
