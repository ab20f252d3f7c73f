package parse

import (
	"github.com/pflow-xyz/go-compute/model"
	"github.com/pflow-xyz/go-compute/symbol"
)

// parseLambda reads the lambda-kind header, shaped like the TM header
// for uniformity even though the native reducer (package lambda)
// never consults a transition table: only the initial/halt state
// labels and the tape's blank symbol are load-bearing.
func parseLambda(lines []rawLine) (*model.Descriptor, error) {
	if len(lines) < 9 {
		return nil, &model.ParseError{Msg: "lambda header: expected 9 lines"}
	}
	d := &model.Descriptor{
		Kind:    model.Lambda,
		Initial: model.State(lines[0].text),
		Accept:  model.State(lines[1].text),
		Reject:  model.State(lines[2].text),
		Halt:    model.State(lines[3].text),
		Blank:   symbol.Symbol(lines[4].text),
	}
	d.States = statesOf(fields(lines[5]))
	d.States[d.Initial] = struct{}{}
	d.States[d.Halt] = struct{}{}
	d.InputAlphabet = alphabetOf(fields(lines[6]))
	d.TapeAlphabet = alphabetOf(fields(lines[7]))
	d.TapeCount = 1
	d.Transitions = model.NewTransitions()
	return d, nil
}
