package machine

import (
	"github.com/pflow-xyz/go-compute/model"
	"github.com/pflow-xyz/go-compute/symbol"
	"github.com/pflow-xyz/go-compute/tape"
)

// retape replaces a tape's content wholesale, preserving its declared
// blank symbol, with the head reset to the left end — used by the
// lambda step, which rewrites its whole term each reduction instead of
// doing single-cell head-relative writes.
func retape(old *tape.Tape, content string) *tape.Tape {
	return tape.New(old.Blank(), model.SplitWord(content), 0)
}

// bindings records, for one candidate rule match, which concrete
// symbol a wildcard class token was bound to — so a write token naming
// the same class "copies through" the symbol its matching read
// consumed.
type bindings map[string]symbol.Symbol

// needsWildcardScan reports whether a rule's read-tuple can only be
// resolved by testing against the actual symbols read — a class token
// or epsilon — rather than by an exact literal lookup.
func needsWildcardScan(d *model.Descriptor, reads []symbol.Symbol) bool {
	for _, tok := range reads {
		if tok == symbol.Epsilon || d.Classes.IsClassName(string(tok)) {
			return true
		}
	}
	return false
}

// candidateRules returns every rule from state that could match the
// given read-tuple: exact literal hits from the transition table's
// (from_state, read-tuple) index, plus every rule that needs matching
// against the actual reads (wildcard classes, epsilon). Safe whenever
// every rule for the state shares the same read-tuple width, which
// holds for TM (fixed at TapeCount) and FSA (always one read) but not
// PDA, whose optional stack-top read gives rules a width of 1 or 2 —
// stepPDA keeps scanning All() directly instead.
func candidateRules(d *model.Descriptor, t *model.Transitions, from model.State, reads []symbol.Symbol) []model.Rule {
	rules := append([]model.Rule(nil), t.Concrete(from, reads)...)
	for _, r := range t.All(from) {
		if needsWildcardScan(d, r.Reads) {
			rules = append(rules, r)
		}
	}
	return rules
}

// matchToken reports whether the token (a literal symbol, a class
// name, or epsilon) matches the actual symbol read, against the given
// alphabet for class resolution. Epsilon always matches without
// binding or consuming.
func matchToken(d *model.Descriptor, alphabet symbol.Alphabet, tok, actual symbol.Symbol) (ok bool, bind bool) {
	if tok == symbol.Epsilon {
		return true, false
	}
	if class, isClass := d.Classes[string(tok)]; isClass {
		return class.Matches(alphabet, actual), true
	}
	return tok == actual, false
}

// matchReads matches an entire read-tuple against the actual symbols
// under the heads, accumulating class bindings as it goes.
func matchReads(d *model.Descriptor, alphabet symbol.Alphabet, reads, actual []symbol.Symbol) (bool, bindings) {
	vars := bindings{}
	for i, tok := range reads {
		ok, bind := matchToken(d, alphabet, tok, actual[i])
		if !ok {
			return false, nil
		}
		if bind {
			vars[string(tok)] = actual[i]
		}
	}
	return true, vars
}

// resolveWrite turns a write token into the concrete symbol to place
// on the tape: a literal symbol as-is, or — for a token naming a class
// that also appeared among this rule's reads — the symbol that class
// was bound to. A class write whose class never appeared on the left
// has nothing to copy through, so it is reported as unresolvable
// rather than written as a literal class-name symbol.
func resolveWrite(d *model.Descriptor, tok symbol.Symbol, vars bindings) (symbol.Symbol, bool) {
	if _, isClass := d.Classes[string(tok)]; isClass {
		v, ok := vars[string(tok)]
		return v, ok
	}
	return tok, true
}
