package astar

import (
	"context"
	"io"
	"runtime"

	"github.com/sirupsen/logrus"

	"github.com/pdrpinto/gridastar/internal"
)

// Result contains the outcome of a search.
//
// Path runs from the target back towards the start and does not include the
// start cell. Use Route for the start-to-target sequence.
type Result struct {
	Start         Cell
	Target        Cell
	Path          []Cell
	Cost          int
	ExpandedNodes int
	Found         bool
}

// Route returns the cells from start to target, both included, or nil when
// no path was found.
func (result Result) Route() []Cell {
	if !result.Found {
		return nil
	}
	return append([]Cell{result.Start}, internal.Reversed(result.Path)...)
}

// Options defines parameters for the search.
type Options struct {
	StepCost        HeuristicKind
	Estimate        HeuristicKind
	NumberOfWorkers int
	Logger          *logrus.Entry
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithStepCost selects the distance used for the cost of a move between adjacent cells.
func WithStepCost(kind HeuristicKind) Option {
	return func(options *Options) { options.StepCost = kind }
}

// WithHeuristic selects the goal-distance estimate h.
func WithHeuristic(kind HeuristicKind) Option {
	return func(options *Options) { options.Estimate = kind }
}

// WithWorkers specifies how many searches FindPaths runs at once.
func WithWorkers(numberOfWorkers int) Option {
	return func(options *Options) { options.NumberOfWorkers = numberOfWorkers }
}

// WithLogger sets the logger for debug output. Searches never log above debug level.
func WithLogger(logger *logrus.Entry) Option {
	return func(options *Options) { options.Logger = logger }
}

func buildOptions(options []Option) Options {
	searchOptions := Options{
		StepCost:        EuclideanKind,
		Estimate:        ManhattanKind,
		NumberOfWorkers: runtime.NumCPU(),
	}
	for _, option := range options {
		option(&searchOptions)
	}
	if searchOptions.NumberOfWorkers < 1 {
		searchOptions.NumberOfWorkers = 1
	}
	if searchOptions.Logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		searchOptions.Logger = logrus.NewEntry(discard)
	}
	return searchOptions
}

// Engine runs A* searches over a GridMap.
//
// An Engine reuses its open and closed sets between calls, so it must not be
// used by more than one goroutine at a time. The grid may be shared between
// engines.
type Engine struct {
	grid    *GridMap
	options Options
	session *session
}

// NewEngine creates an engine for grid.
func NewEngine(grid *GridMap, options ...Option) *Engine {
	searchOptions := buildOptions(options)
	return &Engine{
		grid:    grid,
		options: searchOptions,
		session: newSession(nil, searchOptions),
	}
}

// Grid returns the grid the engine searches.
func (engine *Engine) Grid() *GridMap { return engine.grid }

// Options returns the resolved options.
func (engine *Engine) Options() Options { return engine.options }

// FindPath searches from start to target.
//
// On failure the Result is empty and the error is a *SearchError naming the
// Reason, or the context error when contextObject is cancelled. The context is
// checked once per expanded node.
func (engine *Engine) FindPath(contextObject context.Context, start Cell, target Cell) (Result, error) {
	logger := engine.options.Logger.WithFields(logrus.Fields{
		"start":  start.String(),
		"target": target.String(),
	})

	grid := engine.grid.snapshot()
	if err := validate(grid, start, target); err != nil {
		logger.WithError(err).Debug("search rejected")
		return Result{}, err
	}

	searchSession := engine.session
	searchSession.reset(grid, start, target)
	defer searchSession.release()

	for !searchSession.done() {
		if err := contextObject.Err(); err != nil {
			logger.WithError(err).Debug("search cancelled")
			return Result{}, err
		}
		searchSession.step()
	}

	path := searchSession.path()
	if len(path) == 0 {
		err := &SearchError{Reason: NoPathFound, Cell: target}
		logger.WithField("expanded", searchSession.expandedNodes).Debug("open set exhausted")
		return Result{}, err
	}

	result := Result{
		Start:         start,
		Target:        target,
		Path:          path,
		Cost:          searchSession.cost(),
		ExpandedNodes: searchSession.expandedNodes,
		Found:         true,
	}
	logger.WithFields(logrus.Fields{
		"cost":     result.Cost,
		"steps":    len(result.Path),
		"expanded": result.ExpandedNodes,
	}).Debug("path found")
	return result, nil
}

// FindPath is a one-shot search with a fresh engine.
func FindPath(contextObject context.Context, grid *GridMap, start Cell, target Cell, options ...Option) (Result, error) {
	return NewEngine(grid, options...).FindPath(contextObject, start, target)
}
