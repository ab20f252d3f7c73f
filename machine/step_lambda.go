package machine

import (
	"github.com/pflow-xyz/go-compute/lambda"
	"github.com/pflow-xyz/go-compute/model"
)

// stepLambda performs one leftmost-outermost beta reduction of the
// term held on Tapes[0] and writes the reduced term back as the
// child's tape content. Reaching normal form moves
// control to the descriptor's halt state; a configuration already
// there, or holding an unparsable term, has no successors.
func stepLambda(d *model.Descriptor, c Configuration) []Configuration {
	if d.IsHalt(c.State) {
		return nil
	}
	t := c.Tapes[0]
	term, err := lambda.Parse(t.Content())
	if err != nil {
		return nil
	}
	reduced, changed := lambda.Step(term)

	child := c.Clone()
	child.Depth = c.Depth + 1
	if !changed {
		child.State = d.Halt
	}
	child.Tapes[0] = retape(t, lambda.Format(reduced))
	return []Configuration{child}
}
