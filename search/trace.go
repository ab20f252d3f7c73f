package search

import "github.com/pflow-xyz/go-compute/model"

// TraceEntry records one edge of the explored configuration graph: the
// parent configuration's hash, the child's hash, the state the child
// landed in, and its depth — enough to reconstruct a witness path from
// the winning configuration back to the start.
type TraceEntry struct {
	ParentHash string
	ChildHash  string
	ChildState model.State
	Depth      int
}

// Trace accumulates TraceEntry values in discovery order.
type Trace struct {
	Entries []TraceEntry
}

func newTrace() *Trace {
	return &Trace{}
}

func (t *Trace) record(parentHash, childHash string, state model.State, depth int) {
	t.Entries = append(t.Entries, TraceEntry{
		ParentHash: parentHash,
		ChildHash:  childHash,
		ChildState: state,
		Depth:      depth,
	})
}

// WitnessStates reconstructs the child-state path from the initial
// configuration to the configuration whose hash is target, by walking
// parent pointers backward through the recorded entries.
func (t *Trace) WitnessStates(target string) []model.State {
	byChild := make(map[string]TraceEntry, len(t.Entries))
	for _, e := range t.Entries {
		byChild[e.ChildHash] = e
	}
	var path []model.State
	cur := target
	for {
		e, ok := byChild[cur]
		if !ok {
			break
		}
		path = append([]model.State{e.ChildState}, path...)
		cur = e.ParentHash
	}
	return path
}
