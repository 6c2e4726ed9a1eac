package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cartroute/config"
	"github.com/katalvlaran/cartroute/display"
	"github.com/katalvlaran/cartroute/metrics"
	"github.com/katalvlaran/cartroute/route"
)

type planFlags struct {
	stops      []string
	source     string
	iters      int
	noReturn   bool
	lcd        bool
	metricsOut string
}

func newPlanCmd(a *app) *cobra.Command {
	f := &planFlags{}
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Plan a tour over the given stops",
		Long: `Seeds a visiting order with Dijkstra from the source, improves it with
bounded 2-opt and prints each leg with its cost and direction.

Examples:
  cartroute plan --stops Dropoff,Atrium,C024,F012
  cartroute plan --stops G010,B888,Y249 --source B888 --iters 16
  cartroute plan --stops Dropoff,Veranda --lcd`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlan(cmd, a, f)
		},
	}
	cmd.Flags().StringSliceVarP(&f.stops, "stops", "s", nil, "location names to visit (default: all)")
	cmd.Flags().StringVar(&f.source, "source", "", "start location (default: optimizer.source or first stop)")
	cmd.Flags().IntVar(&f.iters, "iters", 0, "2-opt pass budget (default: optimizer.max_iters)")
	cmd.Flags().BoolVar(&f.noReturn, "no-return", false, "omit the leg back to the source")
	cmd.Flags().BoolVar(&f.lcd, "lcd", false, "print 16-column display frames")
	cmd.Flags().StringVar(&f.metricsOut, "metrics-out", "", "write Prometheus metrics to this textfile")

	return cmd
}

func runPlan(cmd *cobra.Command, a *app, f *planFlags) error {
	cfg, err := a.load()
	if err != nil {
		return err
	}
	m, err := cfg.Matrix()
	if err != nil {
		return err
	}

	names := f.stops
	if len(names) == 0 {
		names = cfg.Names()
	}
	stops, err := cfg.Indices(names...)
	if err != nil {
		return err
	}

	req := route.Request{Stops: stops, MaxIters: f.iters}
	src := f.source
	if src == "" && containsFold(names, cfg.Optimizer.Source) {
		src = cfg.Optimizer.Source
	}
	if src != "" {
		idx, err := cfg.IndexOf(src)
		if err != nil {
			return err
		}
		req.Source = &idx
	}

	planner, err := route.NewPlanner(m,
		route.WithLogger(a.logger),
		route.WithMetrics(metrics.Default()),
		route.WithMaxIters(cfg.Optimizer.MaxIters),
		route.WithReturnLeg(cfg.ReturnLeg() && !f.noReturn),
	)
	if err != nil {
		return err
	}
	rt, err := planner.Plan(cmd.Context(), req)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if f.lcd {
		for _, fr := range display.Frames(edges(cfg, rt)) {
			fmt.Fprintln(out, fr.String())
		}
	} else {
		fmt.Fprintln(out, renderRoute(cfg, rt))
	}

	if f.metricsOut != "" {
		if err = metrics.WriteTextfile(f.metricsOut); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	return nil
}

func containsFold(names []string, s string) bool {
	for _, n := range names {
		if s != "" && strings.EqualFold(n, s) {
			return true
		}
	}

	return false
}

func edges(cfg *config.Config, rt route.Route) []display.Edge {
	names := cfg.Names()
	out := make([]display.Edge, len(rt.Legs))
	for i, l := range rt.Legs {
		out[i] = display.Edge{
			From:      names[l.From.Index],
			To:        names[l.To.Index],
			Cost:      l.Cost,
			Direction: l.Direction,
		}
	}

	return out
}

func renderRoute(cfg *config.Config, rt route.Route) string {
	names := cfg.Names()
	var b strings.Builder

	order := make([]string, len(rt.Tour))
	for i, n := range rt.Tour {
		order[i] = names[n.Index]
	}
	fmt.Fprintln(&b, styles.Title.Render("Route "+rt.ID.String()[:8]))
	fmt.Fprintln(&b, strings.Join(order, " → "))
	fmt.Fprintln(&b)

	for _, l := range rt.Legs {
		line := fmt.Sprintf("%c %-8s → %-8s %5d", display.Rune(l.Direction), names[l.From.Index], names[l.To.Index], l.Cost)
		if l.Closing {
			line = styles.Muted.Render(line + "  (return)")
		}
		fmt.Fprintln(&b, line)
	}
	fmt.Fprintln(&b)

	summary := fmt.Sprintf("seed %d → total %d  ·  %d passes, %d swaps", rt.Seed, rt.Total, rt.Passes, rt.Swaps)
	if !rt.Converged {
		summary += "  " + styles.Warn.Render("(budget exhausted)")
	}
	b.WriteString(summary)

	return styles.Box.Render(b.String())
}
