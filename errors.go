package astar

import (
	"errors"
	"fmt"
)

// Reason classifies why a search returned no path.
type Reason int

const (
	EmptyMap Reason = iota + 1
	OutOfBounds
	DegenerateRequest
	BlockedEndpoint
	NoPathFound
)

var (
	ErrEmptyMap          = errors.New("map is empty")
	ErrOutOfBounds       = errors.New("cell out of bounds")
	ErrDegenerateRequest = errors.New("start equals target")
	ErrBlockedEndpoint   = errors.New("endpoint is a wall")
	ErrNoPath            = errors.New("no path found")

	ErrRaggedMap = errors.New("map rows have different lengths")
)

func (reason Reason) String() string {
	switch reason {
	case EmptyMap:
		return "EmptyMap"
	case OutOfBounds:
		return "OutOfBounds"
	case DegenerateRequest:
		return "DegenerateRequest"
	case BlockedEndpoint:
		return "BlockedEndpoint"
	case NoPathFound:
		return "NoPathFound"
	default:
		return fmt.Sprintf("Reason(%d)", int(reason))
	}
}

func (reason Reason) sentinel() error {
	switch reason {
	case EmptyMap:
		return ErrEmptyMap
	case OutOfBounds:
		return ErrOutOfBounds
	case DegenerateRequest:
		return ErrDegenerateRequest
	case BlockedEndpoint:
		return ErrBlockedEndpoint
	case NoPathFound:
		return ErrNoPath
	default:
		return nil
	}
}

// Endpoint names which end of the request an error refers to.
type Endpoint string

const (
	StartEndpoint  Endpoint = "start"
	TargetEndpoint Endpoint = "target"
)

// SearchError is the recoverable failure returned alongside an empty Result.
type SearchError struct {
	Reason   Reason
	Endpoint Endpoint // set for OutOfBounds and BlockedEndpoint
	Cell     Cell
	Rows     int
	Cols     int
}

func (searchError *SearchError) Error() string {
	switch searchError.Reason {
	case OutOfBounds:
		return fmt.Sprintf("%s %s not in map [H: %d, W: %d]",
			searchError.Endpoint, searchError.Cell, searchError.Rows, searchError.Cols)
	case BlockedEndpoint:
		return fmt.Sprintf("%s %s is a wall", searchError.Endpoint, searchError.Cell)
	case DegenerateRequest:
		return fmt.Sprintf("start equals target %s", searchError.Cell)
	case NoPathFound:
		return fmt.Sprintf("no path to target %s", searchError.Cell)
	default:
		return searchError.Reason.sentinel().Error()
	}
}

// Is matches the sentinel error for the reason.
func (searchError *SearchError) Is(target error) bool {
	return target == searchError.Reason.sentinel()
}

// ReasonOf extracts the failure reason from err, or 0 when err is not a SearchError.
func ReasonOf(err error) Reason {
	var searchError *SearchError
	if errors.As(err, &searchError) {
		return searchError.Reason
	}
	return 0
}
