// Package machine implements Configuration, the value-type snapshot of
// a single instant of any of the five model kinds, and Step, the
// kind-dispatched pure function that expands one Configuration into
// its successors.
package machine

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"

	"github.com/pflow-xyz/go-compute/model"
	"github.com/pflow-xyz/go-compute/ram"
	"github.com/pflow-xyz/go-compute/stack"
	"github.com/pflow-xyz/go-compute/tape"
)

// Configuration is an immutable-in-spirit snapshot of one machine
// instant: control state, per-model stores, and the step depth at
// which it was created. Depth is metadata excluded from Hash so dedup
// treats two configurations reached at different depths, but
// otherwise identical, as the same node.
type Configuration struct {
	State model.State
	Tapes []*tape.Tape // TM: descriptor.TapeCount tapes (at least one); FSA/PDA/Lambda: exactly one; RAM: none
	Stack *stack.Stack // PDA only, nil otherwise

	RAM *RAMState // RAM only, nil otherwise

	Depth int
}

// RAMState is the RAM-kind store: memory page, registers, and the
// input/output queues.
type RAMState struct {
	Memory    ram.Memory
	Registers ram.Registers
	Input     ram.Queue
	Output    ram.Queue
	Halted    bool
}

// Clone returns an independent deep copy of the configuration, used
// whenever the step function branches into multiple children so
// siblings never alias storage.
func (c Configuration) Clone() Configuration {
	out := Configuration{State: c.State, Depth: c.Depth}
	out.Tapes = make([]*tape.Tape, len(c.Tapes))
	for i, t := range c.Tapes {
		out.Tapes[i] = t.Clone()
	}
	if c.Stack != nil {
		out.Stack = c.Stack.Clone()
	}
	if c.RAM != nil {
		r := *c.RAM
		r.Memory = c.RAM.Memory.Clone()
		r.Input = c.RAM.Input.Clone()
		r.Output = c.RAM.Output.Clone()
		out.RAM = &r
	}
	return out
}

// Hash returns a deterministic digest of the configuration's value —
// control state plus every store, canonicalized, with Depth excluded
// — used as the dedup-set key: hash each sub-store into one running
// hasher, then hex-encode.
func (c Configuration) Hash() string {
	h := sha256.New()
	h.Write([]byte(c.State))
	h.Write([]byte{0xff})
	for _, t := range c.Tapes {
		t.Hash(h)
		h.Write([]byte{0xfe})
	}
	if c.Stack != nil {
		c.Stack.Hash(h)
	}
	h.Write([]byte{0xfd})
	if c.RAM != nil {
		hashRAM(h, c.RAM)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

func hashRAM(h interface{ Write([]byte) (int, error) }, r *RAMState) {
	writeWord := func(w [4]byte, bits string) {
		h.Write(w[:])
		h.Write([]byte(bits))
		h.Write([]byte{0})
	}
	writeWord([4]byte{'A', 'C', 'C', 0}, r.Registers.ACC.Bits())
	writeWord([4]byte{'P', 'C', 0, 0}, r.Registers.PC.Bits())
	writeWord([4]byte{'I', 'R', 0, 0}, r.Registers.IR.Bits())
	writeWord([4]byte{'A', 'R', 0, 0}, r.Registers.AR.Bits())
	for _, addr := range r.Memory.SortedAddrs() {
		var buf [8]byte
		binary.BigEndian.PutUint64(buf[:], uint64(addr))
		h.Write(buf[:])
		h.Write([]byte(r.Memory[addr].Bits()))
		h.Write([]byte{0})
	}
	for _, w := range r.Input.Words {
		h.Write([]byte(w.Bits()))
		h.Write([]byte{0})
	}
	var cur [8]byte
	binary.BigEndian.PutUint64(cur[:], uint64(r.Input.Cursor))
	h.Write(cur[:])
	for _, w := range r.Output.Words {
		h.Write([]byte(w.Bits()))
		h.Write([]byte{0})
	}
	if r.Halted {
		h.Write([]byte{1})
	}
}
