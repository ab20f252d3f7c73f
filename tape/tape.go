// Package tape implements the doubly-infinite, symbolic tape store
// used by Turing-machine and RAM-on-TM configurations.
package tape

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"

	"github.com/pflow-xyz/go-compute/symbol"
)

// Dir is a head movement direction.
type Dir int

const (
	Left Dir = iota
	Right
	Stay
)

// DirFromString parses the single-letter direction tokens used by the
// model file format: "L", "R", anything else is Stay.
func DirFromString(s string) Dir {
	switch s {
	case "L":
		return Left
	case "R":
		return Right
	default:
		return Stay
	}
}

// Tape is a doubly-infinite sequence of symbols with a movable head.
// Cells beyond the written region read as blank. The representation
// is two growable slices sharing one blank default — one for
// non-negative offsets from the origin, one for negative offsets —
// so that head movement and read/write stay O(1) amortised instead of
// paying for a shifting-origin copy.
type Tape struct {
	blank    symbol.Symbol
	pos      []symbol.Symbol // index i holds cell i, i >= 0
	neg      []symbol.Symbol // index i holds cell -(i+1), i >= 0
	head     int
	maxExtent int // largest |cell index| ever written, reported by Extent
}

// New creates a tape initialized with the given cells starting at
// offset 0 and the head positioned at headIndex.
func New(blank symbol.Symbol, cells []symbol.Symbol, headIndex int) *Tape {
	t := &Tape{blank: blank, head: 0}
	for _, c := range cells {
		t.Write(c)
		t.move(Right)
	}
	t.head = headIndex
	return t
}

func (t *Tape) cellRef(index int) (*[]symbol.Symbol, int) {
	if index >= 0 {
		return &t.pos, index
	}
	return &t.neg, -index - 1
}

// Read returns the symbol under the head.
func (t *Tape) Read() symbol.Symbol {
	slice, i := t.cellRef(t.head)
	if i >= len(*slice) {
		return t.blank
	}
	return (*slice)[i]
}

// ReadAt returns the symbol at an absolute tape index without moving
// the head.
func (t *Tape) ReadAt(index int) symbol.Symbol {
	slice, i := t.cellRef(index)
	if i >= len(*slice) {
		return t.blank
	}
	return (*slice)[i]
}

// Write sets the symbol under the head, extending storage as needed.
func (t *Tape) Write(s symbol.Symbol) {
	slice, i := t.cellRef(t.head)
	for i >= len(*slice) {
		*slice = append(*slice, t.blank)
	}
	(*slice)[i] = s
	if abs := t.head; abs > t.maxExtent || -abs > t.maxExtent {
		if abs < 0 {
			abs = -abs
		}
		if abs > t.maxExtent {
			t.maxExtent = abs
		}
	}
}

func (t *Tape) move(d Dir) {
	switch d {
	case Left:
		t.head--
	case Right:
		t.head++
	case Stay:
	}
}

// Move moves the head one cell in direction d.
func (t *Tape) Move(d Dir) {
	t.move(d)
}

// Head returns the current head position.
func (t *Tape) Head() int {
	return t.head
}

// Blank returns the tape's declared blank symbol.
func (t *Tape) Blank() symbol.Symbol {
	return t.blank
}

// Extent returns the largest absolute cell index ever written. The
// search engine does not consult it: no tape-extent cap is enforced.
func (t *Tape) Extent() int {
	return t.maxExtent
}

// Clone returns an independent copy of the tape, used when the step
// function branches a configuration into several children.
func (t *Tape) Clone() *Tape {
	c := &Tape{blank: t.blank, head: t.head, maxExtent: t.maxExtent}
	c.pos = append([]symbol.Symbol(nil), t.pos...)
	c.neg = append([]symbol.Symbol(nil), t.neg...)
	return c
}

// trimmedBounds returns [lo, hi) of the written region with trailing
// blanks stripped from both ends, so that semantically equal tapes
// (same content, different incidental over-allocation) hash equal.
func (t *Tape) trimmedBounds() (lo, hi int) {
	lo, hi = 0, 0
	for i := len(t.neg) - 1; i >= 0; i-- {
		if t.neg[i] != t.blank {
			lo = -(i + 1)
			break
		}
	}
	for i := len(t.pos) - 1; i >= 0; i-- {
		if t.pos[i] != t.blank {
			hi = i + 1
			break
		}
	}
	return lo, hi
}

// Dump returns the symbols in [head-window, head+window] for tracing.
func (t *Tape) Dump(window int) []symbol.Symbol {
	out := make([]symbol.Symbol, 0, 2*window+1)
	for i := t.head - window; i <= t.head+window; i++ {
		out = append(out, t.ReadAt(i))
	}
	return out
}

// Content returns the trimmed tape contents as a string, used for
// halt-output and round-trip tests.
func (t *Tape) Content() string {
	lo, hi := t.trimmedBounds()
	var sb []byte
	for i := lo; i < hi; i++ {
		sb = append(sb, []byte(t.ReadAt(i))...)
	}
	return string(sb)
}

// Equal reports value equality: trimmed written region and head agree.
func (t *Tape) Equal(o *Tape) bool {
	if t.head != o.head {
		return false
	}
	lo1, hi1 := t.trimmedBounds()
	lo2, hi2 := o.trimmedBounds()
	if lo1 != lo2 || hi1 != hi2 {
		return false
	}
	for i := lo1; i < hi1; i++ {
		if t.ReadAt(i) != o.ReadAt(i) {
			return false
		}
	}
	return true
}

// Hash writes a canonical, deterministic encoding of the tape into h:
// trimmed written region, then the head position, mirroring the
// "trim trailing blanks on both ends before hashing" design note so
// transient writes that leave a cell at its original value don't
// change a configuration's dedup identity.
func (t *Tape) Hash(h interface{ Write([]byte) (int, error) }) {
	lo, hi := t.trimmedBounds()
	for i := lo; i < hi; i++ {
		h.Write([]byte(t.ReadAt(i)))
		h.Write([]byte{0})
	}
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(int64(t.head)))
	h.Write(buf[:])
}

// Digest is a convenience used by tests and by machine.Configuration.
func (t *Tape) Digest() string {
	h := sha256.New()
	t.Hash(h)
	return fmt.Sprintf("%x", h.Sum(nil))
}
