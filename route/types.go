package route

import (
	"errors"

	"github.com/google/uuid"

	"github.com/katalvlaran/cartroute/distmat"
)

// Request validation errors.
var (
	ErrNoStops       = errors.New("route: no stops")
	ErrTooManyStops  = errors.New("route: more stops than locations")
	ErrStopRange     = errors.New("route: stop index out of range")
	ErrDuplicateStop = errors.New("route: duplicate stop")
	ErrSourceNotStop = errors.New("route: source is not one of the stops")
	ErrBadBudget     = errors.New("route: negative iteration budget")
	ErrNilMatrix     = errors.New("route: nil matrix")
)

// Request describes one trip.
type Request struct {
	// Stops are matrix indices to visit, each at most once.
	Stops []uint8

	// Source is where the tour starts and ends. Nil means Stops[0].
	Source *uint8

	// MaxIters caps 2-opt passes. Zero uses the planner default.
	MaxIters int

	// Priorities override the matrix diagonal per stop index.
	Priorities map[uint8]uint8
}

// Stop is a visited location with its effective priority.
type Stop struct {
	Node     distmat.Node
	Priority distmat.Cost
}

// Leg is one consumed edge of the tour.
type Leg struct {
	From, To  distmat.Node
	Cost      distmat.Cost
	Direction distmat.Direction

	// Closing marks the leg back to the source.
	Closing bool
}

// Route is the result of a plan.
type Route struct {
	ID uuid.UUID

	// Tour lists the stops in visiting order, source first.
	Tour  []distmat.Node
	Stops []Stop
	Legs  []Leg

	// Seed is the cyclic cost of the seed order, Total of the improved tour.
	Seed  distmat.Cost
	Total distmat.Cost

	// Traveled sums the emitted legs; it equals Total when the closing leg
	// is included.
	Traveled distmat.Cost

	Passes    int
	Swaps     int
	Converged bool

	// Dist holds the seeder's shortest distance from the source, by slot.
	Dist []distmat.Cost
}
