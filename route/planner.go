package route

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/cartroute/bstree"
	"github.com/katalvlaran/cartroute/dijkstra"
	"github.com/katalvlaran/cartroute/distmat"
	"github.com/katalvlaran/cartroute/metrics"
	"github.com/katalvlaran/cartroute/tsp"
)

// DefaultMaxIters is the 2-opt pass budget when neither the planner nor the
// request sets one.
const DefaultMaxIters = 8

// Planner plans routes over one matrix.
type Planner struct {
	m         *distmat.Matrix
	log       *slog.Logger
	metrics   *metrics.Collectors
	maxIters  int
	returnLeg bool
}

// Option configures a Planner.
type Option func(*Planner)

// WithLogger sets the logger. Nil keeps the discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(p *Planner) {
		if l != nil {
			p.log = l
		}
	}
}

// WithMetrics records plans on c.
func WithMetrics(c *metrics.Collectors) Option {
	return func(p *Planner) {
		p.metrics = c
	}
}

// WithMaxIters sets the default 2-opt pass budget. Panics if n is negative.
func WithMaxIters(n int) Option {
	if n < 0 {
		panic(fmt.Errorf("route.WithMaxIters(%d): %w", n, ErrBadBudget))
	}

	return func(p *Planner) {
		p.maxIters = n
	}
}

// WithReturnLeg controls whether the closing leg back to the source is
// emitted. Default true.
func WithReturnLeg(on bool) Option {
	return func(p *Planner) {
		p.returnLeg = on
	}
}

// NewPlanner returns a planner over m.
func NewPlanner(m *distmat.Matrix, opts ...Option) (*Planner, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	p := &Planner{
		m:         m,
		log:       slog.New(slog.DiscardHandler),
		maxIters:  DefaultMaxIters,
		returnLeg: true,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.log = p.log.With("component", "planner")

	return p, nil
}

// Matrix returns the planner's matrix.
func (p *Planner) Matrix() *distmat.Matrix { return p.m }

// Plan computes a route for req.
func (p *Planner) Plan(ctx context.Context, req Request) (Route, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		p.metrics.Canceled()
		return Route{}, err
	}

	source, iters, err := p.validate(req)
	if err != nil {
		p.metrics.Rejected()
		p.log.Warn("plan rejected", slog.Any("stops", req.Stops), slog.Any("error", err))
		return Route{}, err
	}

	view := p.m.View(req.Stops...)
	res := dijkstra.Seed(view, dijkstra.Source(source))
	tour := append([]int(nil), res.Order...)
	seed := tsp.TourCost(view, tour)

	if err = ctx.Err(); err != nil {
		p.metrics.Canceled()
		return Route{}, err
	}

	st := tsp.TwoOpt(view, tour, iters)
	tour, err = tsp.RotateToStart(tour, source)
	if err != nil {
		return Route{}, fmt.Errorf("route: rotate: %w", err)
	}

	rt := Route{
		ID:        uuid.New(),
		Seed:      seed,
		Total:     st.Cost,
		Passes:    st.Passes,
		Swaps:     st.Swaps,
		Converged: st.Converged,
		Dist:      res.Dist,
	}
	p.emit(&rt, view, tour, req.Priorities)

	took := time.Since(start)
	p.metrics.Planned(len(tour), st.Passes, st.Swaps, uint16(seed), uint16(st.Cost), took)
	p.log.Info("route planned",
		slog.String("id", rt.ID.String()),
		slog.Int("stops", len(tour)),
		slog.Int("seed", int(seed)),
		slog.Int("total", int(st.Cost)),
		slog.Int("passes", st.Passes),
		slog.Int("swaps", st.Swaps),
		slog.Duration("took", took),
	)

	return rt, nil
}

// validate checks req against the matrix and returns the source slot and
// the effective pass budget.
func (p *Planner) validate(req Request) (int, int, error) {
	n := len(req.Stops)
	switch {
	case n == 0:
		return 0, 0, ErrNoStops
	case n > p.m.Size():
		return 0, 0, fmt.Errorf("%d stops, %d locations: %w", n, p.m.Size(), ErrTooManyStops)
	case req.MaxIters < 0:
		return 0, 0, fmt.Errorf("max iters %d: %w", req.MaxIters, ErrBadBudget)
	}

	var seen, dups bstree.Tree[uint8]
	for _, s := range req.Stops {
		if int(s) >= p.m.Size() {
			return 0, 0, fmt.Errorf("stop %d of %d locations: %w", s, p.m.Size(), ErrStopRange)
		}
		if !seen.Insert(s) {
			dups.Insert(s)
		}
	}
	if !dups.IsEmpty() {
		parts := make([]string, 0, dups.Len())
		for _, d := range dups.InOrder() {
			parts = append(parts, fmt.Sprint(d))
		}
		return 0, 0, fmt.Errorf("stops %s: %w", strings.Join(parts, ","), ErrDuplicateStop)
	}

	source := 0
	if req.Source != nil {
		if !seen.Has(*req.Source) {
			return 0, 0, fmt.Errorf("source %d: %w", *req.Source, ErrSourceNotStop)
		}
		for i, s := range req.Stops {
			if s == *req.Source {
				source = i
				break
			}
		}
	}

	iters := req.MaxIters
	if iters == 0 {
		iters = p.maxIters
	}

	return source, iters, nil
}

// emit fills the tour, stops and legs of rt from slot order tour.
func (p *Planner) emit(rt *Route, view *distmat.View, tour []int, prio map[uint8]uint8) {
	m := len(tour)
	rt.Tour = make([]distmat.Node, m)
	rt.Stops = make([]Stop, m)
	for k, s := range tour {
		node := view.Node(s)
		rt.Tour[k] = node
		pr := view.Priority(s)
		if v, ok := prio[node.Index]; ok {
			pr = distmat.Cost(v)
		}
		rt.Stops[k] = Stop{Node: node, Priority: pr}
	}

	legs := m - 1
	if p.returnLeg && m > 1 {
		legs = m
	}
	rt.Legs = make([]Leg, 0, legs)
	for k := 0; k < legs; k++ {
		a, b := tour[k], tour[(k+1)%m]
		leg := Leg{
			From:      view.Node(a),
			To:        view.Node(b),
			Cost:      view.Cost(a, b),
			Direction: view.Direction(a, b),
			Closing:   k == m-1,
		}
		rt.Legs = append(rt.Legs, leg)
		rt.Traveled = distmat.SatAdd(rt.Traveled, leg.Cost)
	}
}
