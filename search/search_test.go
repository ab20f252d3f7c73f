package search

import (
	"context"
	"testing"

	"github.com/pflow-xyz/go-compute/machine"
	"github.com/pflow-xyz/go-compute/model"
	"github.com/pflow-xyz/go-compute/symbol"
	"github.com/pflow-xyz/go-compute/tape"
)

func statesOf(names ...model.State) map[model.State]struct{} {
	out := map[model.State]struct{}{}
	for _, n := range names {
		out[n] = struct{}{}
	}
	return out
}

// sweepToAccept is a TM that moves right over its input one cell at a
// time and accepts the instant it reads a blank — deterministic, so
// its dedup set never holds more than one configuration per depth.
func sweepToAccept() *model.Descriptor {
	d := &model.Descriptor{
		Kind:          model.TM,
		Initial:       "scan",
		Accept:        "accept",
		Blank:         symbol.Blank,
		TapeCount:     1,
		InputAlphabet: symbol.NewAlphabet("a"),
		TapeAlphabet:  symbol.NewAlphabet("a"),
		States:        statesOf("scan", "accept"),
	}
	d.Transitions = model.NewTransitions()
	d.Transitions.Add(model.Rule{
		From: "scan", To: "scan",
		Reads: []symbol.Symbol{"a"}, Writes: []symbol.Symbol{"a"}, Dirs: []tape.Dir{tape.Right},
	})
	d.Transitions.Add(model.Rule{
		From: "scan", To: "accept",
		Reads: []symbol.Symbol{symbol.Blank}, Writes: []symbol.Symbol{symbol.Blank}, Dirs: []tape.Dir{tape.Stay},
	})
	return d
}

// branchingFSACycle is a non-deterministic FSA with a self-loop epsilon
// transition, used to confirm the dedup set keeps the BFS from looping
// forever over an epsilon cycle.
func branchingFSACycle() *model.Descriptor {
	d := &model.Descriptor{
		Kind:          model.FSA,
		Initial:       "q0",
		Accept:        "q0",
		Blank:         symbol.Blank,
		TapeCount:     1,
		InputAlphabet: symbol.NewAlphabet("a"),
		TapeAlphabet:  symbol.NewAlphabet("a"),
		States:        statesOf("q0"),
	}
	d.Transitions = model.NewTransitions()
	d.Transitions.Add(model.Rule{
		From: "q0", To: "q0", Reads: []symbol.Symbol{symbol.Epsilon},
	})
	return d
}

func TestRunAcceptsOnTerminalConfiguration(t *testing.T) {
	d := sweepToAccept()
	start := machine.NewInitial(d, "aaa")
	r := Run(context.Background(), d, start, Options{Bounds: DefaultBounds})
	if r.Outcome != OutcomeAccepted {
		t.Fatalf("got %v, want accepted", r.Outcome)
	}
	if r.RunID == "" {
		t.Fatal("expected a non-empty run id")
	}
}

func TestRunRejectsWhenNoAcceptingConfigurationExists(t *testing.T) {
	d := sweepToAccept()
	d.Accept = "no-such-state" // unreachable, so every branch dies unresolved
	start := machine.NewInitial(d, "aaa")
	r := Run(context.Background(), d, start, Options{Bounds: DefaultBounds})
	if r.Outcome != OutcomeRejected {
		t.Fatalf("got %v, want rejected", r.Outcome)
	}
}

func TestRunDivergesOnMaxDepth(t *testing.T) {
	d := sweepToAccept()
	start := machine.NewInitial(d, "aaaaaaaaaa")
	r := Run(context.Background(), d, start, Options{Bounds: Bounds{MaxDepth: 2, MaxVisited: 1000}})
	if r.Outcome != OutcomeDiverged {
		t.Fatalf("got %v, want diverged", r.Outcome)
	}
}

func TestRunDivergesOnMaxVisited(t *testing.T) {
	d := sweepToAccept()
	start := machine.NewInitial(d, "aaaaaaaaaa")
	r := Run(context.Background(), d, start, Options{Bounds: Bounds{MaxDepth: 1000, MaxVisited: 1}})
	if r.Outcome != OutcomeDiverged {
		t.Fatalf("got %v, want diverged", r.Outcome)
	}
}

func TestRunCancellation(t *testing.T) {
	d := sweepToAccept()
	start := machine.NewInitial(d, "aaaaaaaaaa")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := Run(ctx, d, start, Options{Bounds: DefaultBounds})
	if r.Outcome != OutcomeCancelled {
		t.Fatalf("got %v, want cancelled", r.Outcome)
	}
}

func TestRunDedupsEpsilonCycleInsteadOfLoopingForever(t *testing.T) {
	d := branchingFSACycle()
	start := machine.NewInitial(d, "")
	r := Run(context.Background(), d, start, Options{Bounds: Bounds{MaxDepth: 100, MaxVisited: 100}})
	if r.Outcome != OutcomeAccepted {
		t.Fatalf("got %v, want accepted", r.Outcome)
	}
	// The self-loop must have been deduped to a single configuration,
	// not explored up to the bound.
	if r.VisitedCount > 2 {
		t.Fatalf("expected the epsilon self-loop to dedup to ~1 configuration, visited %d", r.VisitedCount)
	}
}

func TestRunEmptyInputTerminatesImmediately(t *testing.T) {
	d := sweepToAccept()
	start := machine.NewInitial(d, "")
	r := Run(context.Background(), d, start, Options{Bounds: DefaultBounds})
	if r.Outcome != OutcomeAccepted {
		t.Fatalf("got %v, want accepted on empty input (vacuous blank read)", r.Outcome)
	}
}

func TestRunRecordsTraceWhenRequested(t *testing.T) {
	d := sweepToAccept()
	start := machine.NewInitial(d, "aa")
	r := Run(context.Background(), d, start, Options{Bounds: DefaultBounds, RecordTrace: true})
	if r.Trace == nil {
		t.Fatal("expected a trace when RecordTrace is set")
	}
	if len(r.Trace.Entries) == 0 {
		t.Fatal("expected at least one recorded trace entry")
	}
}

func TestRunOmitsTraceByDefault(t *testing.T) {
	d := sweepToAccept()
	start := machine.NewInitial(d, "aa")
	r := Run(context.Background(), d, start, Options{Bounds: DefaultBounds})
	if r.Trace != nil {
		t.Fatal("expected a nil trace when RecordTrace is unset")
	}
}
