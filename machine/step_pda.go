package machine

import (
	"github.com/pflow-xyz/go-compute/model"
	"github.com/pflow-xyz/go-compute/symbol"
	"github.com/pflow-xyz/go-compute/tape"
)

// stepPDA expands a pushdown-automaton configuration. Reads[0] is the
// input token (a literal, class, or epsilon for "don't consume");
// Reads[1], if present, is the stack-top token to observe and pop (or
// epsilon to leave the stack alone). A match pops then pushes Push in
// order, so its last element ends up on top.
func stepPDA(d *model.Descriptor, c Configuration) []Configuration {
	in := c.Tapes[0]
	cur := in.Read()
	top := c.Stack.Top()

	// Rules here have a read-tuple width of 1 or 2 depending on whether
	// they test the stack top, so the table's fixed-width fast index
	// can't disambiguate them; scan every rule for the state directly.
	var children []Configuration
	for _, r := range d.Transitions.All(c.State) {
		if !r.IsPDA || len(r.Reads) == 0 {
			continue
		}
		inputTok := r.Reads[0]
		stackTok := symbol.Symbol(symbol.Epsilon)
		if len(r.Reads) > 1 {
			stackTok = r.Reads[1]
		}

		vars := bindings{}
		consumesInput := inputTok != symbol.Epsilon
		if consumesInput {
			ok, bind := matchToken(d, d.InputAlphabet, inputTok, cur)
			if !ok {
				continue
			}
			if bind {
				vars[string(inputTok)] = cur
			}
		}
		popsStack := stackTok != symbol.Epsilon
		if popsStack {
			ok, bind := matchToken(d, d.TapeAlphabet, stackTok, top)
			if !ok {
				continue
			}
			if bind {
				vars[string(stackTok)] = top
			}
		}

		pushed := make([]symbol.Symbol, len(r.Push))
		unresolved := false
		for i, p := range r.Push {
			w, ok := resolveWrite(d, p, vars)
			if !ok {
				unresolved = true
				break
			}
			pushed[i] = w
		}
		if unresolved {
			continue
		}

		child := c.Clone()
		child.State = r.To
		child.Depth = c.Depth + 1
		if consumesInput {
			child.Tapes[0].Move(tape.Right)
		}
		if popsStack {
			child.Stack.Pop()
		}
		if len(pushed) > 0 {
			child.Stack.Push(pushed...)
		}
		children = append(children, child)
	}
	return children
}
