package machine

import "github.com/pflow-xyz/go-compute/model"

// Step expands one Configuration into its successors, dispatched on
// the descriptor's Kind. An empty, non-nil-vs-nil
// return both mean "no successors" — callers use Classify to decide
// what a dead end means for this particular kind.
func Step(d *model.Descriptor, c Configuration) []Configuration {
	switch d.Kind {
	case model.TM:
		return stepTM(d, c)
	case model.FSA:
		return stepFSA(d, c)
	case model.PDA:
		return stepPDA(d, c)
	case model.RAM:
		return stepRAM(d, c)
	case model.Lambda:
		return stepLambda(d, c)
	default:
		return nil
	}
}
