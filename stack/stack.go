// Package stack implements the LIFO symbol store used by pushdown
// automata.
package stack

import (
	"crypto/sha256"
	"fmt"

	"github.com/pflow-xyz/go-compute/symbol"
)

// Bottom is the distinguished marker read when the stack is empty,
// recognised by the transition language.
const Bottom symbol.Symbol = "$"

// Stack is an ordered sequence of symbols with the top at the end of
// the slice.
type Stack struct {
	cells []symbol.Symbol
}

// New returns an empty stack, optionally pre-loaded bottom-to-top.
func New(initial ...symbol.Symbol) *Stack {
	return &Stack{cells: append([]symbol.Symbol(nil), initial...)}
}

// Top returns the top symbol, or Bottom if the stack is empty.
func (s *Stack) Top() symbol.Symbol {
	if len(s.cells) == 0 {
		return Bottom
	}
	return s.cells[len(s.cells)-1]
}

// Pop removes and returns the top symbol. Popping an empty stack is a
// no-op and returns Bottom.
func (s *Stack) Pop() symbol.Symbol {
	if len(s.cells) == 0 {
		return Bottom
	}
	top := s.cells[len(s.cells)-1]
	s.cells = s.cells[:len(s.cells)-1]
	return top
}

// Push pushes symbols in order, so the last element of seq ends up on
// top of the stack.
func (s *Stack) Push(seq ...symbol.Symbol) {
	s.cells = append(s.cells, seq...)
}

// Empty reports whether the stack holds no symbols.
func (s *Stack) Empty() bool {
	return len(s.cells) == 0
}

// Clone returns an independent copy.
func (s *Stack) Clone() *Stack {
	return &Stack{cells: append([]symbol.Symbol(nil), s.cells...)}
}

// Equal reports value equality.
func (s *Stack) Equal(o *Stack) bool {
	if len(s.cells) != len(o.cells) {
		return false
	}
	for i, c := range s.cells {
		if c != o.cells[i] {
			return false
		}
	}
	return true
}

// Hash writes a canonical encoding of the stack contents into h.
func (s *Stack) Hash(h interface{ Write([]byte) (int, error) }) {
	for _, c := range s.cells {
		h.Write([]byte(c))
		h.Write([]byte{0})
	}
}

// Digest is a convenience used by tests.
func (s *Stack) Digest() string {
	h := sha256.New()
	s.Hash(h)
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Contents returns the stack bottom-to-top, for tracing.
func (s *Stack) Contents() []symbol.Symbol {
	return append([]symbol.Symbol(nil), s.cells...)
}
