// Package generate fills a [graph.Store] with a random simple graph.
//
// # Algorithm
//
// [Generate] draws cells uniformly from the v×v matrix and keeps drawing
// until exactly EdgeCount edges are accepted. A candidate (i, j) is
// rejected when:
//
//   - the cell is already set
//   - i == j (self-loops are never placed)
//   - NoContours is set and i > j
//
// An accepted candidate sets (i, j) and, for undirected graphs, (j, i). Either
// way it counts as one edge.
//
// # Feasibility
//
// Before sampling, the request is checked against [Capacity], the exact
// number of edges the configuration can hold:
//
//	oriented, contours allowed   v² − v
//	any other configuration      (v² − v) / 2
//
// Requests above it fail with an INFEASIBLE error and leave the Store
// untouched, so the sampling loop always terminates with probability 1.
//
// # Randomness
//
// The caller passes the generator explicitly. [NewRand] seeds a PCG
// generator, deriving the seed from the clock when none is given:
//
//	rng := generate.NewRand(0)            // time-seeded, differs per run
//	rng := generate.NewRand(42)           // reproducible
//
//	s := graph.Allocate(5, 4)
//	stats, err := generate.Generate(ctx, s, generate.Options{Oriented: true, NoContours: true}, rng)
//
// # Concurrency
//
// Generate is synchronous and must not run concurrently on the same Store
// or share a *rand.Rand with other goroutines.
package generate
