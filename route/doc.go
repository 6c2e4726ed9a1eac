// Package route plans a cart trip over a subset of configured locations.
//
// A Planner owns an immutable distance matrix. Plan validates a Request,
// seeds a visiting order from the Dijkstra settle order, improves it with
// bounded 2-opt and returns the tour rotated to start at the source, with one
// Leg per consumed edge carrying its cost and relative direction.
//
// Request validation is complete: a Request that passes never reaches a
// panicking precondition in the engine packages. Plan is safe for concurrent
// use; each call owns its working state.
package route
