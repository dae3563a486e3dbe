package astar

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStepper_ReachesSameResultAsFindPath(t *testing.T) {
	grid := MustGridMap(twoRooms)
	engine := NewEngine(grid)
	want, err := engine.FindPath(context.Background(), Cell{0, 0}, Cell{7, 0})
	if err != nil {
		t.Fatal(err)
	}

	stepper, err := engine.NewStepper(Cell{0, 0}, Cell{7, 0})
	if err != nil {
		t.Fatal(err)
	}
	var last StepSnapshot
	steps := 0
	for !stepper.Done() {
		last = stepper.Step()
		steps++
		if last.Open.Has(last.Current) {
			t.Fatalf("step %d: current cell %v still open", last.StepIndex, last.Current)
		}
		if !last.Closed.Has(last.Current) {
			t.Fatalf("step %d: current cell %v not closed", last.StepIndex, last.Current)
		}
	}

	if !last.Done || !last.Found {
		t.Fatalf("final snapshot done=%v found=%v", last.Done, last.Found)
	}
	if steps != want.ExpandedNodes || last.StepIndex != want.ExpandedNodes {
		t.Errorf("steps = %d (index %d), want %d", steps, last.StepIndex, want.ExpandedNodes)
	}
	if diff := cmp.Diff(want.Path, last.Path); diff != "" {
		t.Errorf("stepper path differs (-find +step):\n%s", diff)
	}
	if last.Cost != want.Cost {
		t.Errorf("cost = %d, want %d", last.Cost, want.Cost)
	}

	result, err := stepper.Result()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, result); diff != "" {
		t.Errorf("stepper result differs (-find +step):\n%s", diff)
	}

	again := stepper.Step()
	if !again.Done || again.StepIndex != last.StepIndex {
		t.Errorf("stepping a finished search changed state: %+v", again)
	}
}

func TestStepper_SetsAreDisjoint(t *testing.T) {
	engine := NewEngine(openGrid(6, 6))
	stepper, err := engine.NewStepper(Cell{5, 0}, Cell{0, 5})
	if err != nil {
		t.Fatal(err)
	}
	for !stepper.Done() {
		snapshot := stepper.Step()
		snapshot.Open.Each(func(cell Cell) {
			if snapshot.Closed.Has(cell) {
				t.Errorf("step %d: %v is both open and closed", snapshot.StepIndex, cell)
			}
		})
		if _, ok := snapshot.Parents[snapshot.Current]; !ok {
			t.Errorf("step %d: no parent recorded for %v", snapshot.StepIndex, snapshot.Current)
		}
	}
}

func TestStepper_Exhausted(t *testing.T) {
	engine := NewEngine(MustGridMap(twoRooms))
	stepper, err := engine.NewStepper(Cell{0, 0}, Cell{0, 9})
	if err != nil {
		t.Fatal(err)
	}
	var last StepSnapshot
	for !stepper.Done() {
		last = stepper.Step()
	}
	if last.Found || last.Path != nil {
		t.Errorf("exhausted search reported found=%v path=%v", last.Found, last.Path)
	}
	if last.Open.Size() != 0 {
		t.Errorf("open set has %d cells after exhaustion", last.Open.Size())
	}
	if _, err := stepper.Result(); !errors.Is(err, ErrNoPath) {
		t.Errorf("Result err = %v, want ErrNoPath", err)
	}
}

func TestNewStepper_Validates(t *testing.T) {
	engine := NewEngine(openGrid(2, 2))
	if _, err := engine.NewStepper(Cell{0, 0}, Cell{0, 0}); !errors.Is(err, ErrDegenerateRequest) {
		t.Errorf("err = %v, want ErrDegenerateRequest", err)
	}
	if _, err := engine.NewStepper(Cell{0, 0}, Cell{2, 0}); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("err = %v, want ErrOutOfBounds", err)
	}
}
