package machine

import (
	"strings"

	"github.com/pflow-xyz/go-compute/model"
)

// Classify assigns a Verdict to a configuration Step returned no
// successors for. The rule differs by kind:
//   - TM: the verdict is read straight off the distinguished state the
//     configuration is stuck in; any other stuck state is a dead
//     branch with no verdict.
//   - FSA/PDA: every dead end is decisive — accept exactly when the
//     kind's acceptance condition holds, reject otherwise. There is no
//     "stuck" case for these two kinds.
//   - RAM: Step returns no successors only once HALT has executed, or
//     the program counter has run off the end of the program; both
//     are treated as a halt.
//   - Lambda: reaching the descriptor's halt state (normal form) is a
//     halt; any other dead end (an unparsable term) is a dead branch.
func Classify(d *model.Descriptor, c Configuration) model.Verdict {
	switch d.Kind {
	case model.TM:
		return classifyTM(d, c)
	case model.FSA:
		return classifyFSA(d, c)
	case model.PDA:
		return classifyPDA(d, c)
	case model.RAM:
		return classifyRAM(c)
	case model.Lambda:
		return classifyLambda(d, c)
	default:
		return model.Verdict{Kind: model.Stuck}
	}
}

func classifyTM(d *model.Descriptor, c Configuration) model.Verdict {
	switch {
	case d.IsAccept(c.State):
		return model.Verdict{Kind: model.Accepted}
	case d.IsReject(c.State):
		return model.Verdict{Kind: model.Rejected}
	case d.IsHalt(c.State):
		return model.Verdict{Kind: model.Halted, Output: tapeOutput(c)}
	default:
		return model.Verdict{Kind: model.Stuck}
	}
}

func classifyFSA(d *model.Descriptor, c Configuration) model.Verdict {
	exhausted := c.Tapes[0].Read() == c.Tapes[0].Blank()
	if d.IsAccept(c.State) && exhausted {
		return model.Verdict{Kind: model.Accepted}
	}
	return model.Verdict{Kind: model.Rejected}
}

func classifyPDA(d *model.Descriptor, c Configuration) model.Verdict {
	exhausted := c.Tapes[0].Read() == c.Tapes[0].Blank()
	if !exhausted {
		return model.Verdict{Kind: model.Rejected}
	}
	switch d.AcceptMode {
	case model.AcceptEmptyStack:
		if c.Stack.Empty() {
			return model.Verdict{Kind: model.Accepted}
		}
	default:
		if d.IsAccept(c.State) {
			return model.Verdict{Kind: model.Accepted}
		}
	}
	return model.Verdict{Kind: model.Rejected}
}

func classifyRAM(c Configuration) model.Verdict {
	if c.RAM == nil {
		return model.Verdict{Kind: model.Stuck}
	}
	words := make([]string, len(c.RAM.Output.Words))
	for i, w := range c.RAM.Output.Words {
		words[i] = w.Bits()
	}
	return model.Verdict{Kind: model.Halted, Output: strings.Join(words, ",")}
}

func classifyLambda(d *model.Descriptor, c Configuration) model.Verdict {
	if d.IsHalt(c.State) {
		return model.Verdict{Kind: model.Halted, Output: tapeOutput(c)}
	}
	return model.Verdict{Kind: model.Stuck}
}

func tapeOutput(c Configuration) string {
	if len(c.Tapes) == 0 {
		return ""
	}
	return c.Tapes[0].Content()
}
