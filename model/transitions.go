package model

import (
	"strings"

	"github.com/pflow-xyz/go-compute/symbol"
	"github.com/pflow-xyz/go-compute/tape"
)

// Rule is one transition: a TM/PDA/FSA rule over a tuple of reads and
// writes, generalized to the widest case (multi-tape TM) — FSA and
// PDA rules are Rules with TapeCount 1 and 2 respectively.
// Reads/Writes entries may be literal symbols or the name of a
// declared wildcard Class; Dirs has one entry per tape.
type Rule struct {
	From  State
	Reads []symbol.Symbol // tokens: literal symbols or class names
	To    State
	Writes []symbol.Symbol // tokens: literal symbols, class names (copy-through), or a literal write
	Dirs  []tape.Dir

	// Push is set for PDA rules only: the stack-replacement sequence,
	// pushed in order so the last element ends up on top.
	// Reads[1]/Writes[1] (if present) hold the popped/observed stack
	// top token instead of a tape symbol.
	Push []symbol.Symbol
	IsPDA bool
}

// key joins a read-tuple into the transition table's secondary lookup
// key. Epsilon is encoded with a marker byte so it can't collide with
// a legitimate single-character symbol.
func key(reads []symbol.Symbol) string {
	parts := make([]string, len(reads))
	for i, r := range reads {
		if r == symbol.Epsilon {
			parts[i] = "\x00eps\x00"
		} else {
			parts[i] = string(r)
		}
	}
	return strings.Join(parts, "\x01")
}

// Transitions indexes rules by (from_state, read-tuple) for O(1)
// successor lookup.
type Transitions struct {
	byState map[State][]Rule
	byKey   map[State]map[string][]Rule
}

// NewTransitions returns an empty transition table.
func NewTransitions() *Transitions {
	return &Transitions{
		byState: make(map[State][]Rule),
		byKey:   make(map[State]map[string][]Rule),
	}
}

// Add inserts a rule into both indices.
func (t *Transitions) Add(r Rule) {
	t.byState[r.From] = append(t.byState[r.From], r)
	m, ok := t.byKey[r.From]
	if !ok {
		m = make(map[string][]Rule)
		t.byKey[r.From] = m
	}
	k := key(r.Reads)
	m[k] = append(m[k], r)
}

// Concrete returns every rule exactly matching the given read-tuple
// (no wildcard resolution — callers needing wildcard matches scan
// All instead).
func (t *Transitions) Concrete(from State, reads []symbol.Symbol) []Rule {
	m, ok := t.byKey[from]
	if !ok {
		return nil
	}
	return m[key(reads)]
}

// All returns every rule from the given state, for wildcard/epsilon
// scanning by the step functions.
func (t *Transitions) All(from State) []Rule {
	return t.byState[from]
}
