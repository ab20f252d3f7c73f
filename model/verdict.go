package model

// VerdictKind is the terminal classification of one dead-end
// configuration (a configuration the step function could not expand
// further), in the priority order assigns across
// branches: Accepted > Halted > Rejected > Stuck. Diverged/Cancelled
// are run-level outcomes decided by the search engine from its
// bounds, not by any single configuration, and so are not
// VerdictKind values.
type VerdictKind int

const (
	// Stuck marks a dead branch with no verdict of its own — absorbed
	// by the search, never surfaced to the caller.
	Stuck VerdictKind = iota
	Accepted
	Rejected
	Halted
)

// Verdict is the classification of a single terminal configuration,
// produced by Classify for a configuration Step returned no children
// for.
type Verdict struct {
	Kind   VerdictKind
	Output string // populated for Halted: TM tape contents or RAM output stream
}
