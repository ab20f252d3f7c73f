package machine

import (
	"github.com/pflow-xyz/go-compute/model"
	"github.com/pflow-xyz/go-compute/symbol"
	"github.com/pflow-xyz/go-compute/tape"
)

// stepFSA expands a finite-state-automaton configuration. Tapes[0] is
// the read-only input; an epsilon rule fires without consuming a
// symbol, a literal-or-class rule consumes and matches the symbol
// under the head. Reading past the end of the input
// always yields the blank symbol, so only epsilon rules remain
// available once the input is exhausted — acceptance itself is
// decided by Classify, not here.
func stepFSA(d *model.Descriptor, c Configuration) []Configuration {
	t := c.Tapes[0]
	cur := t.Read()

	var children []Configuration
	for _, r := range candidateRules(d, d.Transitions, c.State, []symbol.Symbol{cur}) {
		if len(r.Reads) == 0 {
			continue
		}
		tok := r.Reads[0]
		if tok == symbol.Epsilon {
			child := c.Clone()
			child.State = r.To
			child.Depth = c.Depth + 1
			children = append(children, child)
			continue
		}
		ok, _ := matchToken(d, d.InputAlphabet, tok, cur)
		if !ok {
			continue
		}
		child := c.Clone()
		child.State = r.To
		child.Depth = c.Depth + 1
		child.Tapes[0].Move(tape.Right)
		children = append(children, child)
	}
	return children
}
