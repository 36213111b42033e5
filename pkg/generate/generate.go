package generate

import (
	"context"
	stderrors "errors"
	"math/rand/v2"
	"time"

	"github.com/matzehuels/graphgen/pkg/errors"
	"github.com/matzehuels/graphgen/pkg/graph"
	"github.com/matzehuels/graphgen/pkg/observability"
)

// ErrInfeasible is the cause of every INFEASIBLE error returned by Generate.
// Match it with errors.Is, or match the code with errors.Is from pkg/errors.
var ErrInfeasible = stderrors.New("infeasible request")

// cancelCheckInterval is how many sampling attempts pass between context polls.
const cancelCheckInterval = 1024

// Options selects the structure of the generated graph.
// The zero value is an undirected graph with contours allowed.
type Options struct {
	// Oriented places directed edges: only cell (i, j) is set per edge.
	// When false both (i, j) and (j, i) are set and count as one edge.
	Oriented bool

	// NoContours rejects every sampled pair with i > j, so edges only run
	// from a lower to a higher vertex index.
	NoContours bool
}

// Stats describes one generation pass.
type Stats struct {
	Placed    int // edges accepted
	Attempts  int // candidate cells drawn
	Duplicate int // rejected: cell already set
	Diagonal  int // rejected: i == j
	Contour   int // rejected: i > j under NoContours
}

// Rejected returns the total number of rejected candidates.
func (s Stats) Rejected() int {
	return s.Duplicate + s.Diagonal + s.Contour
}

// Generate fills s with exactly s.EdgeCount() random edges by rejection
// sampling: cells are drawn uniformly from the whole matrix and accepted
// unless already set, on the diagonal, or a contour under NoContours.
//
// Requests exceeding Capacity fail with an INFEASIBLE error wrapping
// ErrInfeasible before any cell is touched. A nil rng is replaced by a
// time-seeded generator. The context is polled periodically; cancellation
// returns a CANCELED error and leaves s partially filled.
//
// Generate must be called at most once per Store.
func Generate(ctx context.Context, s *graph.Store, opts Options, rng *rand.Rand) (Stats, error) {
	v, target := s.VertexCount(), s.EdgeCount()

	hooks := observability.Generator()
	hooks.OnGenerateStart(ctx, v, target)
	start := time.Now()

	stats, err := fill(ctx, s, opts, rng)

	hooks.OnGenerateComplete(ctx, stats.Placed, stats.Attempts, time.Since(start), err)
	return stats, err
}

func fill(ctx context.Context, s *graph.Store, opts Options, rng *rand.Rand) (Stats, error) {
	var stats Stats
	v, target := s.VertexCount(), s.EdgeCount()

	if limit := Capacity(v, opts); target > limit {
		return stats, errors.Wrap(errors.ErrCodeInfeasible, ErrInfeasible,
			"%d edges exceed capacity %d of a %d-vertex %s graph", target, limit, v, describe(opts))
	}
	if target == 0 {
		return stats, nil
	}
	if rng == nil {
		rng = NewRand(0)
	}

	size := v * v
	for stats.Placed < target {
		if stats.Attempts%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return stats, errors.Wrap(errors.ErrCodeCanceled, err, "generation stopped after %d of %d edges", stats.Placed, target)
			}
		}
		stats.Attempts++

		r := rng.IntN(size)
		i, j := r/v, r%v

		switch {
		case i == j:
			stats.Diagonal++
			continue
		case opts.NoContours && i > j:
			stats.Contour++
			continue
		case s.Get(i, j):
			stats.Duplicate++
			continue
		}

		s.Set(i, j, true)
		if !opts.Oriented {
			s.Set(j, i, true)
		}
		stats.Placed++
	}
	return stats, nil
}

func describe(opts Options) string {
	kind := "undirected"
	if opts.Oriented {
		kind = "oriented"
	}
	if opts.NoContours {
		kind += " contour-free"
	}
	return kind
}
