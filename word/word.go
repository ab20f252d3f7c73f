// Package word implements the variable-width, two's-complement binary
// words used by the RAM model's registers, memory cells, and I/O
// queues. Arithmetic is delegated to github.com/holiman/uint256, an
// arbitrary-precision integer type, so two ADD/SUB opcodes on wide
// words never silently overflow a machine int.
package word

import (
	"strings"

	"github.com/holiman/uint256"
)

// Word is a binary value with an explicit bit width: leading zeros are
// significant, so "0101" and "101" are distinct four- and three-bit
// words even though they carry the same numeric value.
type Word struct {
	bits  string // "0"/"1" characters, most-significant first
	value *uint256.Int
}

// Zero is the single-bit zero word, the default ACC/PC/AR reset value.
func Zero() Word {
	return FromInt(0, 1)
}

// FromBits parses a literal bit string such as "101".
func FromBits(bits string) Word {
	if bits == "" {
		bits = "0"
	}
	v := uint256.NewInt(0)
	for _, c := range bits {
		v.Lsh(v, 1)
		if c == '1' {
			v.AddUint64(v, 1)
		}
	}
	return Word{bits: bits, value: v}
}

// FromInt builds a Word holding n, zero-padded (or left as-is if n
// already needs more bits) to at least width bits.
func FromInt(n int64, width int) Word {
	v := new(uint256.Int)
	if n < 0 {
		// Two's complement over `width` bits.
		mod := new(uint256.Int).Lsh(uint256.NewInt(1), uint(width))
		v.SetUint64(uint64(-n))
		v.Mod(v, mod)
		v.Sub(mod, v)
		if v.Eq(mod) {
			v.Clear()
		}
	} else {
		v.SetUint64(uint64(n))
	}
	return Word{bits: toBits(v, width), value: v}
}

func toBits(v *uint256.Int, width int) string {
	if v.IsZero() {
		if width < 1 {
			width = 1
		}
		return strings.Repeat("0", width)
	}
	// Build the bit string directly from the integer, low bit first,
	// then reverse via prepend.
	n := v.Clone()
	var out []byte
	for !n.IsZero() {
		if n.IsUint64() && n.Uint64()&1 == 1 {
			out = append([]byte{'1'}, out...)
		} else {
			out = append([]byte{'0'}, out...)
		}
		n.Rsh(n, 1)
	}
	for len(out) < width {
		out = append([]byte{'0'}, out...)
	}
	return string(out)
}

// Bits returns the bit string, most-significant first.
func (w Word) Bits() string {
	if w.bits == "" {
		return "0"
	}
	return w.bits
}

// Width returns the number of bits in the word's literal
// representation, not the minimal representation: leading zeros are
// preserved, so a register loaded with a 4-bit zero stays 4 bits wide
// until explicitly widened.
func (w Word) Width() int {
	return len(w.Bits())
}

// Int64 returns the word's unsigned value as an int64.
func (w Word) Int64() int64 {
	if w.value == nil {
		return 0
	}
	return int64(w.value.Uint64())
}

// IsZero reports whether every bit is 0.
func (w Word) IsZero() bool {
	return w.value == nil || w.value.IsZero()
}

// Add computes w+o, zero-extending the shorter operand to the wider
// operand's width before adding.
func Add(w, o Word) Word {
	width := max(w.Width(), o.Width())
	sum := new(uint256.Int).Add(w.value, o.value)
	return Word{bits: toBits(sum, width), value: sum}
}

// Sub computes w-o with borrow propagation, treating the shorter
// operand as zero-extended and wrapping two's-complement style on
// underflow, matching the RAM's `S` opcode.
func Sub(w, o Word) Word {
	width := max(w.Width(), o.Width())
	if w.value.Cmp(o.value) >= 0 {
		diff := new(uint256.Int).Sub(w.value, o.value)
		return Word{bits: toBits(diff, width), value: diff}
	}
	mod := new(uint256.Int).Lsh(uint256.NewInt(1), uint(width))
	diff := new(uint256.Int).Sub(o.value, w.value)
	diff.Sub(mod, diff)
	return Word{bits: toBits(diff, width), value: diff}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
