package model

import (
	"errors"
	"fmt"

	"github.com/pflow-xyz/go-compute/symbol"
)

// Validator accumulates Descriptor inconsistencies using a
// category-plus-accumulator shape: undeclared state, symbol outside
// alphabet, tape-count mismatch in a rule.
type Validator struct {
	d      *Descriptor
	errors []error
}

// Validate runs every structural check on d and returns a single
// combined error if any failed, or nil if d is well-formed. The
// caller must not start a search on a Descriptor that fails
// validation.
func Validate(d *Descriptor) error {
	v := &Validator{d: d}
	v.checkInitialState()
	v.checkStates()
	v.checkAlphabets()
	v.checkTapeCounts()
	v.checkClasses()
	if len(v.errors) == 0 {
		return nil
	}
	return errors.Join(v.errors...)
}

func (v *Validator) add(detail string, err error) {
	v.errors = append(v.errors, &ValidationError{Detail: detail, Err: err})
}

func (v *Validator) checkInitialState() {
	if v.d.Initial == "" {
		v.add("descriptor", ErrNoInitialState)
		return
	}
	if !v.d.HasState(v.d.Initial) {
		v.add(fmt.Sprintf("initial state %q", v.d.Initial), ErrUndeclaredState)
	}
}

func (v *Validator) checkStates() {
	check := func(label string, s State) {
		if s != "" && !v.d.HasState(s) {
			v.add(fmt.Sprintf("%s state %q", label, s), ErrUndeclaredState)
		}
	}
	check("accept", v.d.Accept)
	check("reject", v.d.Reject)
	check("halt", v.d.Halt)

	if v.d.Transitions == nil {
		return
	}
	for from, rules := range v.d.Transitions.byState {
		if !v.d.HasState(from) {
			v.add(fmt.Sprintf("transition from undeclared state %q", from), ErrUndeclaredState)
		}
		for _, r := range rules {
			if !v.d.HasState(r.To) {
				v.add(fmt.Sprintf("transition %s -> %q targets undeclared state", from, r.To), ErrUndeclaredState)
			}
		}
	}
}

func (v *Validator) checkAlphabets() {
	if v.d.Transitions == nil {
		return
	}
	checkSymbol := func(context string, s symbol.Symbol) {
		if s == symbol.Epsilon {
			return
		}
		if v.d.isClassToken(string(s)) {
			return
		}
		alphabet := v.d.TapeAlphabet
		if len(alphabet) == 0 {
			alphabet = v.d.InputAlphabet
		}
		if s == v.d.Blank {
			return
		}
		if !alphabet.Contains(s) {
			v.add(fmt.Sprintf("%s symbol %q", context, s), ErrSymbolNotInAlphabet)
		}
	}
	for from, rules := range v.d.Transitions.byState {
		for _, r := range rules {
			for _, s := range r.Reads {
				checkSymbol(fmt.Sprintf("%s read", from), s)
			}
			for _, s := range r.Writes {
				checkSymbol(fmt.Sprintf("%s write", from), s)
			}
		}
	}
}

func (v *Validator) checkTapeCounts() {
	if v.d.Transitions == nil || v.d.Kind != TM {
		return
	}
	for from, rules := range v.d.Transitions.byState {
		for _, r := range rules {
			if len(r.Reads) != v.d.TapeCount || len(r.Writes) != v.d.TapeCount || len(r.Dirs) != v.d.TapeCount {
				v.add(fmt.Sprintf("transition from %q", from), ErrTapeCountMismatch)
			}
		}
	}
}

func (v *Validator) checkClasses() {
	if v.d.Transitions == nil {
		return
	}
	for from, rules := range v.d.Transitions.byState {
		for _, r := range rules {
			for _, s := range r.Writes {
				name := string(s)
				if name == "" {
					continue
				}
				if isLikelyClassToken(name) && !v.d.Classes.IsClassName(name) && !v.d.TapeAlphabet.Contains(s) {
					v.add(fmt.Sprintf("%s write %q", from, name), ErrUnknownClass)
				}
			}
		}
	}
}

// isLikelyClassToken reports whether a token has the shape of an
// upper-case wildcard class name (one or two characters starting with
// A–Z, such as A, B, D2, D3) — used only to flag an obviously-misspelled
// class reference. Lower-case class names such as x, x1, x2 are not
// flagged, and checkClasses leaves alone any such token that is a
// declared class or a tape-alphabet symbol; every other token is left
// for the step function to treat as a literal symbol.
func isLikelyClassToken(tok string) bool {
	if len(tok) == 0 || len(tok) > 2 {
		return false
	}
	c := tok[0]
	return c >= 'A' && c <= 'Z'
}

// ValidateWord checks that every symbol of an input word belongs to
// the descriptor's declared input alphabet, a fatal precondition
// checked once before the first step rather than per-symbol during a
// run.
func ValidateWord(d *Descriptor, word []symbol.Symbol) error {
	for _, s := range word {
		if !d.InputAlphabet.Contains(s) {
			return &ValidationError{Detail: fmt.Sprintf("input symbol %q", s), Err: ErrSymbolNotInAlphabet}
		}
	}
	return nil
}
