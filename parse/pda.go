package parse

import (
	"strconv"

	"github.com/pflow-xyz/go-compute/model"
	"github.com/pflow-xyz/go-compute/symbol"
)

// parsePDA reads the pushdown-automaton header and transition lines.
// Acceptance mode is not carried by a dedicated header line; it is
// read off the accept-state line itself (lines[1]): the literal
// sentinel "empty-stack" opts into empty-stack acceptance, anything
// else (including blank) is an ordinary accept-state label under
// final-state acceptance, the default. Transition lines are
// `from in-sym stack-top to stack-push...`, where in-sym and
// stack-top may each be the literal epsilon token "eps".
func parsePDA(lines []rawLine) (*model.Descriptor, error) {
	if len(lines) < 8 {
		return nil, &model.ParseError{Msg: "pda header: expected 8 lines before transitions"}
	}
	d := &model.Descriptor{
		Kind:    model.PDA,
		Initial: model.State(lines[0].text),
		Reject:  model.State(lines[2].text),
		Blank:   symbol.Symbol(lines[3].text),
	}
	if lines[1].text == "empty-stack" {
		d.AcceptMode = model.AcceptEmptyStack
		d.Accept = ""
	} else {
		d.AcceptMode = model.AcceptFinalState
		d.Accept = model.State(lines[1].text)
	}
	d.States = statesOf(fields(lines[4]))
	d.InputAlphabet = alphabetOf(fields(lines[5]))
	d.TapeAlphabet = alphabetOf(fields(lines[6]))

	count, err := strconv.Atoi(lines[7].text)
	if err != nil {
		return nil, &model.ParseError{Line: lines[7].no, Msg: "tape count is not an integer", Err: err}
	}
	d.TapeCount = count
	d.Transitions = model.NewTransitions()

	for _, l := range lines[8:] {
		toks := fields(l)
		if len(toks) < 4 {
			return nil, &model.ParseError{Line: l.no, Msg: "pda transition needs at least 4 tokens"}
		}
		r := model.Rule{
			From:  model.State(toks[0]),
			To:    model.State(toks[3]),
			IsPDA: true,
		}
		r.Reads = []symbol.Symbol{tokenOrEpsilon(toks[1]), tokenOrEpsilon(toks[2])}
		for _, p := range toks[4:] {
			r.Push = append(r.Push, symbol.Symbol(p))
		}
		d.Transitions.Add(r)
	}
	return d, nil
}

func tokenOrEpsilon(tok string) symbol.Symbol {
	if tok == epsilonToken {
		return symbol.Epsilon
	}
	return symbol.Symbol(tok)
}
