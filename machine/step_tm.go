package machine

import (
	"github.com/pflow-xyz/go-compute/model"
	"github.com/pflow-xyz/go-compute/symbol"
)

// stepTM expands a multi-tape Turing-machine configuration: read the
// symbol under every head, find every rule whose read-tuple matches
// (exactly, via the transition table's fast literal index, or via a
// wildcard class), and for each match write, move, and retarget the
// control state on an independent clone. A configuration with no
// matching rule is stuck; Classify decides whether that's
// accept/reject/halt or a dead branch.
func stepTM(d *model.Descriptor, c Configuration) []Configuration {
	reads := make([]symbol.Symbol, len(c.Tapes))
	for i, t := range c.Tapes {
		reads[i] = t.Read()
	}

	var children []Configuration
	for _, r := range candidateRules(d, d.Transitions, c.State, reads) {
		ok, vars := matchReads(d, d.TapeAlphabet, r.Reads, reads)
		if !ok {
			continue
		}
		writes := make([]symbol.Symbol, len(r.Writes))
		unresolved := false
		for i := range r.Writes {
			w, ok := resolveWrite(d, r.Writes[i], vars)
			if !ok {
				unresolved = true
				break
			}
			writes[i] = w
		}
		if unresolved {
			continue
		}

		child := c.Clone()
		child.State = r.To
		child.Depth = c.Depth + 1
		for i := range child.Tapes {
			child.Tapes[i].Write(writes[i])
			child.Tapes[i].Move(r.Dirs[i])
		}
		children = append(children, child)
	}
	return children
}
