package parse

import (
	"strconv"
	"strings"

	"github.com/pflow-xyz/go-compute/model"
	"github.com/pflow-xyz/go-compute/ram"
	"github.com/pflow-xyz/go-compute/symbol"
	"github.com/pflow-xyz/go-compute/word"
)

var ramMnemonics = map[string]ram.Opcode{
	"READ":  ram.OpRead,
	"MIR":   ram.OpMIR,
	"MIL":   ram.OpMIL,
	"WRITE": ram.OpWrite,
	"LOAD":  ram.OpLoad,
	"ADD":   ram.OpAdd,
	"SUB":   ram.OpSub,
	"INIT":  ram.OpInit,
	"STORE": ram.OpStore,
	"JUMP":  ram.OpJump,
	"CJUMP": ram.OpCJump,
	"HALT":  ram.OpHalt,
}

// parseRAM reads the RAM header (shaped like the TM header minus the
// tape-count line: eight lines, whose states/alphabets go unused by a
// native RAM program) followed by one instruction per remaining line:
// `[label:] MNEMONIC [operand]`, where operand is an integer literal
// or a previously-or-later-declared label, resolved to its
// instruction index in a second pass.
func parseRAM(lines []rawLine) (*model.Descriptor, error) {
	if len(lines) < 9 {
		return nil, &model.ParseError{Msg: "ram header: expected 8 header lines followed by the program"}
	}
	d := &model.Descriptor{
		Kind:    model.RAM,
		Initial: model.State(lines[0].text),
		Accept:  model.State(lines[1].text),
		Reject:  model.State(lines[2].text),
		Halt:    model.State(lines[3].text),
		Blank:   symbol.Symbol(lines[4].text),
	}
	d.States = statesOf(fields(lines[5]))
	d.States[d.Initial] = struct{}{}
	d.States[d.Halt] = struct{}{}
	d.InputAlphabet = alphabetOf(fields(lines[6]))
	d.TapeAlphabet = alphabetOf(fields(lines[7]))

	type rawInstr struct {
		mnemonic string
		operand  string
		hasOper  bool
	}
	labels := map[string]int64{}
	var raws []rawInstr

	for _, l := range lines[8:] {
		toks := fields(l)
		if len(toks) == 0 {
			continue
		}
		if strings.HasSuffix(toks[0], ":") {
			labels[strings.TrimSuffix(toks[0], ":")] = int64(len(raws))
			toks = toks[1:]
			if len(toks) == 0 {
				continue
			}
		}
		op, ok := ramMnemonics[toks[0]]
		if !ok {
			return nil, &model.ParseError{Line: l.no, Msg: "unknown RAM mnemonic " + toks[0]}
		}
		ri := rawInstr{mnemonic: string(op)}
		if len(toks) > 1 {
			ri.operand = toks[1]
			ri.hasOper = true
		}
		raws = append(raws, ri)
	}

	d.Labels = labels
	d.Program = make([]ram.Instruction, len(raws))
	for i, ri := range raws {
		instr := ram.Instruction{Opcode: ram.Opcode(ri.mnemonic)}
		if ri.hasOper {
			if n, err := strconv.ParseInt(ri.operand, 10, 64); err == nil {
				instr.Operand = word.FromInt(n, 1)
			} else if addr, ok := labels[ri.operand]; ok {
				instr.Operand = word.FromInt(addr, 1)
			} else {
				return nil, &model.ParseError{Msg: "ram operand " + ri.operand + " is neither an integer nor a declared label"}
			}
		}
		d.Program[i] = instr
	}
	return d, nil
}
