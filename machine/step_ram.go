package machine

import (
	"github.com/pflow-xyz/go-compute/model"
	"github.com/pflow-xyz/go-compute/ram"
	"github.com/pflow-xyz/go-compute/word"
)

// stepRAM executes one fetch-decode-execute cycle of the RAM model's
// instruction switch. The program counter is read before dispatch and
// advanced by one afterward unless the instruction itself retargets
// it (JUMP, CJUMP). A halted configuration, or one whose PC has run
// off the end of the program, has no successors.
func stepRAM(d *model.Descriptor, c Configuration) []Configuration {
	if c.RAM == nil || c.RAM.Halted {
		return nil
	}
	pc := c.RAM.Registers.PC.Int64()
	if pc < 0 || int(pc) >= len(d.Program) {
		return nil
	}
	instr := d.Program[pc]

	child := c.Clone()
	regs := &child.RAM.Registers
	mem := child.RAM.Memory

	switch instr.Opcode {
	case ram.OpRead:
		regs.ACC = readInputWord(&child.RAM.Input)
	case ram.OpMIR:
		child.RAM.Input.Cursor += int(instr.Operand.Int64())
	case ram.OpMIL:
		child.RAM.Input.Cursor -= int(instr.Operand.Int64())
	case ram.OpWrite:
		child.RAM.Output.Words = append(child.RAM.Output.Words, regs.ACC)
	case ram.OpLoad:
		regs.AR = instr.Operand
		regs.ACC = mem.Read(regs.AR.Int64())
	case ram.OpAdd:
		regs.AR = instr.Operand
		regs.ACC = word.Add(regs.ACC, mem.Read(regs.AR.Int64()))
	case ram.OpSub:
		regs.AR = instr.Operand
		regs.ACC = word.Sub(regs.ACC, mem.Read(regs.AR.Int64()))
	case ram.OpInit:
		regs.ACC = instr.Operand
	case ram.OpStore:
		regs.AR = instr.Operand
		mem.Write(regs.AR.Int64(), regs.ACC)
	case ram.OpJump:
		regs.AR = instr.Operand
		regs.PC = regs.AR
		return []Configuration{child}
	case ram.OpCJump:
		regs.AR = instr.Operand
		if regs.ACC.IsZero() {
			regs.PC = regs.AR
			return []Configuration{child}
		}
	case ram.OpHalt:
		child.RAM.Halted = true
		return []Configuration{child}
	}

	regs.PC = word.FromInt(pc+1, regs.PC.Width())
	return []Configuration{child}
}

// readInputWord consumes one word from the input queue at the current
// cursor, or the zero word once the cursor runs past the end.
func readInputWord(q *ram.Queue) word.Word {
	if q.Cursor < 0 || q.Cursor >= len(q.Words) {
		return word.Zero()
	}
	w := q.Words[q.Cursor]
	q.Cursor++
	return w
}
