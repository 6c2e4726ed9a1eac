// Package distmat holds the static cost/direction/priority table of a cart
// deployment.
//
// A single n×n table of uint8 cells encodes three independent concerns:
//
//	[i][j], i<j : travel cost between i and j (symmetric)
//	[i][j], i>j : relative direction from j to i (anti-symmetric)
//	[i][i]      : raw priority of location i
//
// Callers never see triangle orientation. Cost always reads the upper triangle
// in canonical (smaller-index-first) orientation, Direction always reads the
// lower triangle and returns the directional inverse when asked in the
// opposite orientation:
//
//	Cost(u, v)      == Cost(v, u)
//	Direction(u, v) == Direction(v, u).Inverse()
//
// The table is configuration data: built once through NewPacked (existing
// packed tables) or FromTables (separate symmetric / anti-symmetric tables)
// and immutable afterwards. Lookups with out-of-range indices are programmer
// errors and panic; constructors return sentinel errors.
//
// View narrows a Matrix to the working subset of one route computation,
// assigning graph-slot indices 0..M-1 to chosen matrix indices.
package distmat
