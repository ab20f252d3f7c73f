package symbol

import (
	"fmt"
	"strings"
)

// Class is a named, possibly negated, subset of a tape alphabet used
// by wildcard reads and writes in transition rules.
//
// A Class is resolved against a concrete Alphabet at match time, never
// expanded into individual rules at parse time — expanding a handful
// of classes against a large tape alphabet multiplies the rule count
// for no benefit, and the engine must behave identically either way.
type Class struct {
	Name     string
	Excluded Alphabet // members of the declared alphabet that are NOT in the class
}

// NewAllBut builds the Class described by an "All but X and Y" comment,
// the only form the engine is required to recognize.
func NewAllBut(name string, excluded ...Symbol) Class {
	return Class{Name: name, Excluded: NewAlphabet(excluded...)}
}

// Matches reports whether s belongs to the class with respect to the
// given tape alphabet.
func (c Class) Matches(alphabet Alphabet, s Symbol) bool {
	if !alphabet.Contains(s) {
		return false
	}
	return !c.Excluded.Contains(s)
}

// ParseAllBut parses the comment-block grammar required by:
//
//	// A: All but ( and _
//	// B: All but ) and .
//
// Returns the class name and its excluded-symbol list.
func ParseAllBut(comment string) (name string, excluded []Symbol, err error) {
	line := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(comment), "//"))
	parts := strings.SplitN(line, ":", 2)
	if len(parts) != 2 {
		return "", nil, fmt.Errorf("symbol: malformed class comment %q", comment)
	}
	name = strings.TrimSpace(parts[0])
	body := strings.TrimSpace(parts[1])
	const prefix = "All but "
	if !strings.HasPrefix(body, prefix) {
		return "", nil, fmt.Errorf("symbol: class %q: only \"All but X and Y\" is supported, got %q", name, body)
	}
	body = strings.TrimPrefix(body, prefix)
	for _, tok := range strings.Split(body, " and ") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		excluded = append(excluded, Symbol(tok))
	}
	return name, excluded, nil
}

// ClassSet is the resolved collection of symbol classes declared by a
// model file's trailing comment block, keyed by class name.
type ClassSet map[string]Class

// IsClassName reports whether name denotes a wildcard class rather
// than a literal symbol. The shipped lambda reducer's classes are the
// minimum the engine must recognize; any class declared
// in a model file's comment block is also honored.
func (cs ClassSet) IsClassName(name string) bool {
	_, ok := cs[name]
	return ok
}
