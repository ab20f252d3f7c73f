// Package search implements the unified, kind-agnostic BFS engine: it
// explores the configuration graph one Step call at a time, dedups by
// Configuration.Hash, stops at the first of two exhaustion bounds, and
// resolves the run's overall verdict from whatever terminal
// configurations it found, by priority: accepted > halted > rejected
// > diverged. There is no stuck outcome: dead branches are absorbed,
// and a search whose every branch dies without a verdict reports
// rejected.
package search

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pflow-xyz/go-compute/machine"
	"github.com/pflow-xyz/go-compute/model"
)

// Bounds caps the search so a non-terminating model can never run
// forever: MaxDepth caps how many Step calls deep any one
// branch may go, MaxVisited caps the total number of distinct
// configurations (post-dedup) the engine will examine.
type Bounds struct {
	MaxDepth   int
	MaxVisited int
}

// DefaultBounds caps a single run at 10000 steps deep and 100000
// distinct configurations, generous enough for the shipped scenarios
// without letting a genuinely divergent model run unbounded.
var DefaultBounds = Bounds{MaxDepth: 10000, MaxVisited: 100000}

// Outcome is the run-level result, a superset of model.VerdictKind
// that adds the two bound-triggered outcomes no single configuration
// can report on its own.
type Outcome int

const (
	// OutcomeAccepted, OutcomeRejected and OutcomeHalted mirror the
	// model.Verdict kinds of whichever terminal configuration won
	// priority.
	OutcomeAccepted Outcome = iota
	OutcomeRejected
	OutcomeHalted
	// OutcomeDiverged means the search exhausted a bound (MaxDepth or
	// MaxVisited) before finding any accept/reject/halt verdict.
	OutcomeDiverged
	// OutcomeCancelled means the caller's context was done before the
	// search reached a verdict or a bound.
	OutcomeCancelled
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAccepted:
		return "accepted"
	case OutcomeRejected:
		return "rejected"
	case OutcomeHalted:
		return "halted"
	case OutcomeDiverged:
		return "diverged"
	case OutcomeCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Result is everything one Run call produces.
type Result struct {
	RunID        string
	Outcome      Outcome
	Output       string // populated for OutcomeHalted/OutcomeAccepted when the winning configuration carries one
	Depth        int    // depth of the winning configuration, 0 if none
	VisitedCount int
	Trace        *Trace // nil unless recording was requested
}

// Options configures one Run call.
type Options struct {
	Bounds      Bounds
	RecordTrace bool
	Logger      *slog.Logger
}

// candidate is a terminal configuration paired with the verdict
// Classify assigned it, kept only long enough to resolve priority
// once the frontier runs dry or a bound is hit.
type candidate struct {
	verdict model.Verdict
	depth   int
}

// priority ranks verdict kinds for "first sufficiently good terminal
// wins" resolution: Accepted beats Halted beats
// Rejected; Stuck never wins (it is filtered out before comparison).
func priority(k model.VerdictKind) int {
	switch k {
	case model.Accepted:
		return 3
	case model.Halted:
		return 2
	case model.Rejected:
		return 1
	default:
		return 0
	}
}

// Run explores d's configuration graph breadth-first starting from
// start, honoring ctx cancellation and opts.Bounds, and returns the
// resolved Result.
func Run(ctx context.Context, d *model.Descriptor, start machine.Configuration, opts Options) Result {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	bounds := opts.Bounds
	if bounds.MaxDepth == 0 && bounds.MaxVisited == 0 {
		bounds = DefaultBounds
	}

	runID := uuid.NewString()
	logger = logger.With("run_id", runID, "kind", d.Kind.String())
	logger.Info("search started")

	var trace *Trace
	if opts.RecordTrace {
		trace = newTrace()
	}

	visited := map[string]struct{}{start.Hash(): {}}
	frontier := []machine.Configuration{start}
	var best *candidate

	consider := func(c machine.Configuration, v model.Verdict) {
		if priority(v.Kind) == 0 {
			return
		}
		if best == nil || priority(v.Kind) > priority(best.verdict.Kind) {
			best = &candidate{verdict: v, depth: c.Depth}
		}
	}

	// bestOutcome reports the outcome a bound trip should report: the
	// already-found verdict if one beats "stuck", since priority order
	// (accepted > halted > rejected) holds regardless of what else is
	// still unexplored, or diverged if nothing has finished yet.
	bestOutcome := func() Outcome {
		if best != nil && priority(best.verdict.Kind) > 0 {
			return outcomeFor(best.verdict.Kind)
		}
		return OutcomeDiverged
	}

	visitedCount := 1
	for len(frontier) > 0 {
		select {
		case <-ctx.Done():
			logger.Warn("search cancelled", "visited", visitedCount)
			return finish(runID, OutcomeCancelled, nil, visitedCount, trace)
		default:
		}

		current := frontier[0]
		frontier = frontier[1:]

		if current.Depth >= bounds.MaxDepth {
			outcome := bestOutcome()
			logger.Warn("max depth reached", "depth", current.Depth, "outcome", outcome)
			return finish(runID, outcome, best, visitedCount, trace)
		}

		children := machine.Step(d, current)
		if len(children) == 0 {
			consider(current, machine.Classify(d, current))
			if best != nil && best.verdict.Kind == model.Accepted {
				logger.Info("search resolved", "outcome", OutcomeAccepted, "visited", visitedCount)
				return finish(runID, OutcomeAccepted, best, visitedCount, trace)
			}
			continue
		}

		// FSA/PDA acceptance is a property of the configuration itself
		// (state plus exhausted input/stack), not of having no further
		// moves — an accepting configuration reached via a self-looping
		// epsilon transition would otherwise never get classified, since
		// its only successor dedups straight back to an already-visited
		// node. TM/RAM/Lambda keep the dead-end-only check above: their
		// Classify functions assume a configuration with remaining moves
		// isn't yet a verdict.
		if d.Kind == model.FSA || d.Kind == model.PDA {
			consider(current, machine.Classify(d, current))
			if best != nil && best.verdict.Kind == model.Accepted {
				logger.Info("search resolved", "outcome", OutcomeAccepted, "visited", visitedCount)
				return finish(runID, OutcomeAccepted, best, visitedCount, trace)
			}
		}

		for _, child := range children {
			h := child.Hash()
			if _, seen := visited[h]; seen {
				continue
			}
			visited[h] = struct{}{}
			visitedCount++
			if trace != nil {
				trace.record(current.Hash(), h, child.State, child.Depth)
			}
			if visitedCount > bounds.MaxVisited {
				outcome := bestOutcome()
				logger.Warn("max visited reached", "visited", visitedCount, "outcome", outcome)
				return finish(runID, outcome, best, visitedCount, trace)
			}
			frontier = append(frontier, child)
		}
	}

	if best == nil {
		logger.Info("search exhausted with no verdict")
		return finish(runID, OutcomeRejected, nil, visitedCount, trace)
	}
	logger.Info("search resolved", "outcome", outcomeFor(best.verdict.Kind), "visited", visitedCount)
	return finish(runID, outcomeFor(best.verdict.Kind), best, visitedCount, trace)
}

func outcomeFor(k model.VerdictKind) Outcome {
	switch k {
	case model.Accepted:
		return OutcomeAccepted
	case model.Halted:
		return OutcomeHalted
	default:
		return OutcomeRejected
	}
}

func finish(runID string, outcome Outcome, best *candidate, visited int, trace *Trace) Result {
	r := Result{RunID: runID, Outcome: outcome, VisitedCount: visited, Trace: trace}
	if best != nil {
		r.Output = best.verdict.Output
		r.Depth = best.depth
	}
	return r
}
