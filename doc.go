// Package cartroute is the route-optimization engine of a delivery cart.
//
// The cart serves a small fixed set of locations (at most distmat.MaxNodes).
// For each trip it picks a short cyclic visiting order and reports, per leg,
// the travel cost and a relative-direction symbol for the cart's display.
//
// Packages, leaves first:
//
//	distmat/ : packed cost/direction/priority matrix and working-subset views
//	frontier/: fixed-capacity indexed priority queue (XOR-fold hash, open addressing)
//	dijkstra/: single-source shortest paths over the complete graph; seeds tours
//	tsp/     : cyclic tour cost and bounded 2-opt improvement
//	bstree/  : owned binary search tree with explicit disassemble/assemble
//	route/   : trip planner: validation, seeding, improvement, legs
//	config/  : YAML deployment files
//	entry/   : pending/outcome delivery records on a byte device
//	storage/ : BadgerDB-backed byte device
//	metrics/ : Prometheus collectors
//	display/ : 16x2 character display frames
//
// Quick example:
//
//	m, _ := distmat.FromTables(cost, dirs, prio)
//	p, _ := route.NewPlanner(m)
//	rt, _ := p.Plan(ctx, route.Request{Stops: []uint8{0, 3, 5}})
//	for _, leg := range rt.Legs {
//		fmt.Println(leg.From, leg.To, leg.Cost, leg.Direction)
//	}
//
// The engine packages never log and panic only on caller bugs (bad indices,
// malformed tours). Everything that reads outside input returns errors.
package cartroute
