package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/pflow-xyz/go-compute/machine"
	"github.com/pflow-xyz/go-compute/model"
	"github.com/pflow-xyz/go-compute/parse"
	"github.com/pflow-xyz/go-compute/search"
)

// jsonResult is the --json exit payload; a plain struct, not a
// framework-generated one, matching metamodel/config.go's "plain Go
// struct" configuration style carried over to output shapes too.
type jsonResult struct {
	RunID   string `json:"run_id"`
	Outcome string `json:"outcome"`
	Output  string `json:"output,omitempty"`
	Depth   int    `json:"depth"`
	Visited int    `json:"visited"`
}

func runCommand(args []string) int {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	maxDepth := fs.Int("max-depth", search.DefaultBounds.MaxDepth, "cap on search depth")
	maxVisited := fs.Int("max-visited", search.DefaultBounds.MaxVisited, "cap on distinct configurations explored")
	trace := fs.Bool("trace", false, "record and print the witness path")
	asJSON := fs.Bool("json", false, "print the result as JSON")
	if err := fs.Parse(args); err != nil {
		return 3
	}
	if fs.NArg() < 2 {
		fmt.Fprintln(os.Stderr, "mrun run: <model-file> and <input> are required")
		return 3
	}
	modelFile, input := fs.Arg(0), fs.Arg(1)

	f, err := os.Open(modelFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 3
	}
	defer f.Close()

	d, err := parse.File(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 3
	}

	if d.Kind == model.TM || d.Kind == model.FSA || d.Kind == model.PDA {
		if verr := model.ValidateWord(d, model.SplitWord(input)); verr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", verr)
			return 3
		}
	}

	start := machine.NewInitial(d, input)
	opts := search.Options{
		Bounds:      search.Bounds{MaxDepth: *maxDepth, MaxVisited: *maxVisited},
		RecordTrace: *trace,
		Logger:      slog.Default(),
	}
	result := search.Run(context.Background(), d, start, opts)

	if *asJSON {
		printJSON(result)
	} else {
		printPlain(result, *trace)
	}
	return exitCode(result.Outcome)
}

func printPlain(r search.Result, withTrace bool) {
	fmt.Printf("run %s: %s\n", r.RunID, r.Outcome)
	if r.Output != "" {
		fmt.Printf("output: %s\n", r.Output)
	}
	fmt.Printf("depth: %d, visited: %d\n", r.Depth, r.VisitedCount)
	if withTrace && r.Trace != nil {
		for _, e := range r.Trace.Entries {
			fmt.Printf("  %s -> %s (state=%s depth=%d)\n", e.ParentHash[:8], e.ChildHash[:8], e.ChildState, e.Depth)
		}
	}
}

func printJSON(r search.Result) {
	out := jsonResult{
		RunID:   r.RunID,
		Outcome: r.Outcome.String(),
		Output:  r.Output,
		Depth:   r.Depth,
		Visited: r.VisitedCount,
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(out)
}

func exitCode(o search.Outcome) int {
	switch o {
	case search.OutcomeAccepted, search.OutcomeHalted:
		return 0
	case search.OutcomeRejected:
		return 1
	case search.OutcomeDiverged, search.OutcomeCancelled:
		return 2
	default:
		return 3
	}
}
