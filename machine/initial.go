package machine

import (
	"strings"

	"github.com/pflow-xyz/go-compute/model"
	"github.com/pflow-xyz/go-compute/ram"
	"github.com/pflow-xyz/go-compute/stack"
	"github.com/pflow-xyz/go-compute/tape"
	"github.com/pflow-xyz/go-compute/word"
)

// NewInitial builds the starting Configuration for a run, dispatched
// on the descriptor's kind, from the raw input text the CLI passes
// alongside the model file. TM/FSA/PDA treat input as a word of one-symbol-
// per-rune (model.SplitWord); RAM treats it as `#`-separated binary
// words; Lambda treats it as the literal term text.
func NewInitial(d *model.Descriptor, input string) Configuration {
	switch d.Kind {
	case model.RAM:
		return newInitialRAM(d, input)
	case model.Lambda:
		return Configuration{
			State: d.Initial,
			Tapes: []*tape.Tape{tape.New(d.Blank, model.SplitWord(input), 0)},
		}
	case model.PDA:
		return Configuration{
			State: d.Initial,
			Tapes: []*tape.Tape{tape.New(d.Blank, model.SplitWord(input), 0)},
			Stack: stack.New(),
		}
	default: // TM, FSA
		n := d.TapeCount
		if n < 1 {
			n = 1
		}
		tapes := make([]*tape.Tape, n)
		tapes[0] = tape.New(d.Blank, model.SplitWord(input), 0)
		for i := 1; i < n; i++ {
			tapes[i] = tape.New(d.Blank, nil, 0)
		}
		return Configuration{State: d.Initial, Tapes: tapes}
	}
}

func newInitialRAM(d *model.Descriptor, input string) Configuration {
	var words []word.Word
	for _, tok := range strings.Split(input, "#") {
		if tok == "" {
			continue
		}
		words = append(words, word.FromBits(tok))
	}
	return Configuration{
		State: d.Initial,
		RAM: &RAMState{
			Memory:    ram.Memory{},
			Registers: ram.Registers{ACC: word.Zero(), PC: word.Zero(), IR: word.Zero(), AR: word.Zero()},
			Input:     ram.Queue{Words: words},
			Output:    ram.Queue{},
		},
	}
}
