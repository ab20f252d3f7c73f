package parse

import (
	"github.com/pflow-xyz/go-compute/model"
	"github.com/pflow-xyz/go-compute/symbol"
)

// parseFSA reads the finite-state-automaton header and transition
// lines. This format omits the blank-symbol and tape-alphabet lines
// (both genuinely unused by an FSA) but keeps the halt-state line —
// always blank for this kind — for header-shape uniformity with
// TM/RAM. Transition lines are `from sym to` (3 tokens) for a
// consuming move, or `from to` (2 tokens) for an epsilon move.
func parseFSA(lines []rawLine) (*model.Descriptor, error) {
	if len(lines) < 6 {
		return nil, &model.ParseError{Msg: "fsm header: expected 6 lines before transitions"}
	}
	d := &model.Descriptor{
		Kind:    model.FSA,
		Initial: model.State(lines[0].text),
		Accept:  model.State(lines[1].text),
		Reject:  model.State(lines[2].text),
		// lines[3] is the halt-state line, always blank for this kind.
		Blank: symbol.Blank,
	}
	d.States = statesOf(fields(lines[4]))
	d.InputAlphabet = alphabetOf(fields(lines[5]))
	d.TapeAlphabet = d.InputAlphabet
	d.TapeCount = 1
	d.Transitions = model.NewTransitions()

	for _, l := range lines[6:] {
		toks := fields(l)
		r := model.Rule{}
		switch len(toks) {
		case 2:
			r.From = model.State(toks[0])
			r.To = model.State(toks[1])
			r.Reads = []symbol.Symbol{symbol.Epsilon}
		case 3:
			r.From = model.State(toks[0])
			r.To = model.State(toks[2])
			r.Reads = []symbol.Symbol{symbol.Symbol(toks[1])}
		default:
			return nil, &model.ParseError{Line: l.no, Msg: "fsm transition must have 2 or 3 tokens"}
		}
		d.Transitions.Add(r)
	}
	return d, nil
}
