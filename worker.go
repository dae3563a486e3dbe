package astar

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Query is one start/target request in a batch.
type Query struct {
	Start  Cell `json:"start" yaml:"start"`
	Target Cell `json:"target" yaml:"target"`
}

// Outcome pairs a query with its result. Err is the *SearchError for a
// failed search.
type Outcome struct {
	Query  Query
	Result Result
	Err    error
}

// FindPaths runs every query against grid using a pool of workers, one Engine
// per worker. Outcomes are returned in query order. A search failure is
// recorded in its Outcome; only cancellation of contextObject stops the batch,
// in which case the context error is returned with the outcomes gathered so far.
func FindPaths(contextObject context.Context, grid *GridMap, queries []Query, options ...Option) ([]Outcome, error) {
	searchOptions := buildOptions(options)
	numberOfWorkers := min(searchOptions.NumberOfWorkers, len(queries))

	outcomes := make([]Outcome, len(queries))
	group, groupContext := errgroup.WithContext(contextObject)
	queryIndexChannel := make(chan int)

	// --- Start worker pool ---
	for i := 0; i < numberOfWorkers; i++ {
		engine := NewEngine(grid, options...)
		group.Go(func() error {
			for queryIndex := range queryIndexChannel {
				query := queries[queryIndex]
				result, err := engine.FindPath(groupContext, query.Start, query.Target)
				if err != nil && ReasonOf(err) == 0 {
					return err
				}
				outcomes[queryIndex] = Outcome{Query: query, Result: result, Err: err}
			}
			return nil
		})
	}

	// --- Feed queries ---
feed:
	for queryIndex := range queries {
		select {
		case queryIndexChannel <- queryIndex:
		case <-groupContext.Done():
			break feed
		}
	}
	close(queryIndexChannel)

	if err := group.Wait(); err != nil {
		return outcomes, err
	}
	return outcomes, contextObject.Err()
}
