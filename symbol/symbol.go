// Package symbol implements the alphabet primitives shared by every
// model kind: opaque tape/input symbols, finite alphabets, and the
// named symbol classes used by wildcard transition rules.
package symbol

// Symbol is an opaque token identified by a short string. The zero
// value is not a valid symbol; use Blank or Epsilon for the
// distinguished roles.
type Symbol string

// Blank is the distinguished "never written" tape symbol. Individual
// descriptors may declare a different literal blank symbol, but the
// engine always treats that declared symbol the way it treats Blank.
const Blank Symbol = "_"

// Epsilon denotes "read nothing" in FSA/PDA transitions.
const Epsilon Symbol = ""

// Alphabet is a finite set of symbols.
type Alphabet map[Symbol]struct{}

// NewAlphabet builds an Alphabet from a list of symbols.
func NewAlphabet(symbols ...Symbol) Alphabet {
	a := make(Alphabet, len(symbols))
	for _, s := range symbols {
		a[s] = struct{}{}
	}
	return a
}

// Contains reports whether s is a member of the alphabet.
func (a Alphabet) Contains(s Symbol) bool {
	_, ok := a[s]
	return ok
}

// Add inserts s into the alphabet.
func (a Alphabet) Add(s Symbol) {
	a[s] = struct{}{}
}

// List returns the alphabet's members in no particular order.
func (a Alphabet) List() []Symbol {
	out := make([]Symbol, 0, len(a))
	for s := range a {
		out = append(out, s)
	}
	return out
}
