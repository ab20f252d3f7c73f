// Package model defines the immutable Descriptor that bundles a
// computational model's kind, alphabets, states, distinguished
// labels, and transition table, plus the wildcard-class resolution
// used to interpret transition rules.
package model

import (
	"strings"

	"github.com/pflow-xyz/go-compute/ram"
	"github.com/pflow-xyz/go-compute/symbol"
)

// Kind identifies which of the five supported computational models a
// Descriptor describes.
type Kind int

const (
	TM Kind = iota
	FSA
	PDA
	RAM
	Lambda
)

// String renders the kind using the model-file keyword.
func (k Kind) String() string {
	switch k {
	case TM:
		return "tm"
	case FSA:
		return "fsm"
	case PDA:
		return "pda"
	case RAM:
		return "ram"
	case Lambda:
		return "lambda"
	default:
		return "unknown"
	}
}

// AcceptMode selects how a PDA decides acceptance: by final state (the default) or by empty stack.
type AcceptMode int

const (
	AcceptFinalState AcceptMode = iota
	AcceptEmptyStack
)

// State is an opaque control-location token.
type State string

// Descriptor is the immutable, parser-produced bundle describing one
// computational model. It is built once and shared
// read-only for the duration of a run.
type Descriptor struct {
	Kind Kind

	Initial State
	Accept  State // may be "" (blank)
	Reject  State // may be "" (blank)
	Halt    State // TM/RAM/Lambda only, may be ""

	Blank   symbol.Symbol
	States  map[State]struct{}

	InputAlphabet symbol.Alphabet
	TapeAlphabet  symbol.Alphabet

	TapeCount int // TM/PDA/RAM

	Classes symbol.ClassSet

	AcceptMode AcceptMode // PDA only

	Transitions *Transitions

	// Program is the decoded instruction sequence for RAM descriptors;
	// nil for every other kind. Labels maps symbolic jump targets to
	// their instruction index, resolved at parse time.
	Program []ram.Instruction
	Labels  map[string]int64
}

// HasState reports whether s was declared in the state set.
func (d *Descriptor) HasState(s State) bool {
	_, ok := d.States[s]
	return ok
}

// IsAccept, IsReject, IsHalt test a configuration's control state
// against the descriptor's distinguished labels.
func (d *Descriptor) IsAccept(s State) bool { return d.Accept != "" && s == d.Accept }
func (d *Descriptor) IsReject(s State) bool { return d.Reject != "" && s == d.Reject }
func (d *Descriptor) IsHalt(s State) bool   { return d.Halt != "" && s == d.Halt }

// IsDistinguished reports whether s is any of accept/reject/halt,
// i.e. whether a stuck TM configuration in state s carries a verdict
// or is simply a dead branch.
func (d *Descriptor) IsDistinguished(s State) bool {
	return d.IsAccept(s) || d.IsReject(s) || d.IsHalt(s)
}

// isClassToken reports whether a token from a transition line names a
// declared class — a wildcard resolved at match time by package
// machine — rather than a literal symbol; Descriptor only records which
// tokens are class names.
func (d *Descriptor) isClassToken(tok string) bool {
	return d.Classes.IsClassName(tok)
}

// SplitWord splits an input word into individual symbols. The model
// file format carries words as plain strings; every rune becomes one
// Symbol, matching the single-character alphabets used throughout the
// shipped examples.
func SplitWord(s string) []symbol.Symbol {
	if s == "" {
		return nil
	}
	out := make([]symbol.Symbol, 0, len(s))
	for _, r := range s {
		out = append(out, symbol.Symbol(string(r)))
	}
	return out
}

// JoinSymbols is the inverse of SplitWord.
func JoinSymbols(syms []symbol.Symbol) string {
	var sb strings.Builder
	for _, s := range syms {
		sb.WriteString(string(s))
	}
	return sb.String()
}
