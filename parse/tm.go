package parse

import (
	"fmt"
	"strconv"

	"github.com/pflow-xyz/go-compute/model"
	"github.com/pflow-xyz/go-compute/symbol"
	"github.com/pflow-xyz/go-compute/tape"
)

// parseTM reads the multi-tape TM header and transition lines
//: initial, accept, reject, halt, blank, states, input
// alphabet, tape alphabet, tape count, then one transition per
// remaining line of the form `from to (read write dir){k}`.
func parseTM(lines []rawLine) (*model.Descriptor, error) {
	if len(lines) < 9 {
		return nil, &model.ParseError{Msg: "tm header: expected 9 lines before transitions"}
	}
	d := &model.Descriptor{
		Kind:    model.TM,
		Initial: model.State(lines[0].text),
		Accept:  model.State(lines[1].text),
		Reject:  model.State(lines[2].text),
		Halt:    model.State(lines[3].text),
		Blank:   symbol.Symbol(lines[4].text),
	}
	d.States = statesOf(fields(lines[5]))
	d.InputAlphabet = alphabetOf(fields(lines[6]))
	d.TapeAlphabet = alphabetOf(fields(lines[7]))

	count, err := strconv.Atoi(lines[8].text)
	if err != nil {
		return nil, &model.ParseError{Line: lines[8].no, Msg: "tape count is not an integer", Err: err}
	}
	d.TapeCount = count
	d.Transitions = model.NewTransitions()

	for _, l := range lines[9:] {
		toks := fields(l)
		if len(toks) != 2+3*count {
			return nil, &model.ParseError{Line: l.no, Msg: fmt.Sprintf("transition has %d tokens, want %d", len(toks), 2+3*count)}
		}
		r := model.Rule{From: model.State(toks[0]), To: model.State(toks[1])}
		for i := 0; i < count; i++ {
			r.Reads = append(r.Reads, symbol.Symbol(toks[2+i*3]))
			r.Writes = append(r.Writes, symbol.Symbol(toks[3+i*3]))
			r.Dirs = append(r.Dirs, tape.DirFromString(toks[4+i*3]))
		}
		d.Transitions.Add(r)
	}
	return d, nil
}
