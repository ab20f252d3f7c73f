package machine

import (
	"testing"

	"github.com/pflow-xyz/go-compute/model"
	"github.com/pflow-xyz/go-compute/ram"
	"github.com/pflow-xyz/go-compute/symbol"
	"github.com/pflow-xyz/go-compute/tape"
)

func statesOf(names ...model.State) map[model.State]struct{} {
	out := map[model.State]struct{}{}
	for _, n := range names {
		out[n] = struct{}{}
	}
	return out
}

// buildSweepToAccept builds a minimal TM that sweeps right over its
// input, ignoring content, and accepts on the first blank cell —
// enough to exercise stepTM's write/move/wildcard-free path and
// classifyTM's Accepted branch without encoding a real decision
// procedure.
func buildSweepToAccept() *model.Descriptor {
	d := &model.Descriptor{
		Kind:          model.TM,
		Initial:       "scan",
		Accept:        "accept",
		Reject:        "reject",
		Halt:          "",
		Blank:         symbol.Blank,
		TapeCount:     1,
		InputAlphabet: symbol.NewAlphabet("a", "b"),
		TapeAlphabet:  symbol.NewAlphabet("a", "b"),
		States:        statesOf("scan", "accept", "reject"),
	}
	d.Transitions = model.NewTransitions()
	d.Transitions.Add(model.Rule{
		From: "scan", To: "scan",
		Reads: []symbol.Symbol{"a"}, Writes: []symbol.Symbol{"a"}, Dirs: []tape.Dir{tape.Right},
	})
	d.Transitions.Add(model.Rule{
		From: "scan", To: "scan",
		Reads: []symbol.Symbol{"b"}, Writes: []symbol.Symbol{"b"}, Dirs: []tape.Dir{tape.Right},
	})
	d.Transitions.Add(model.Rule{
		From: "scan", To: "accept",
		Reads: []symbol.Symbol{symbol.Blank}, Writes: []symbol.Symbol{symbol.Blank}, Dirs: []tape.Dir{tape.Stay},
	})
	return d
}

func TestStepTM_AcceptsOnBlank(t *testing.T) {
	d := buildSweepToAccept()
	c := NewInitial(d, "aabb")
	for i := 0; i < 10; i++ {
		children := Step(d, c)
		if len(children) == 0 {
			v := Classify(d, c)
			if v.Kind != model.Accepted {
				t.Fatalf("expected accepted, got %v at depth %d", v.Kind, c.Depth)
			}
			return
		}
		c = children[0]
	}
	t.Fatal("did not reach a terminal configuration within bound")
}

func TestStepTM_EmptyInputAcceptsVacuously(t *testing.T) {
	d := buildSweepToAccept()
	c := NewInitial(d, "")
	children := Step(d, c)
	if len(children) != 1 {
		t.Fatalf("expected one child on an immediate blank read, got %d", len(children))
	}
	v := Classify(d, children[0])
	if v.Kind != model.Accepted {
		t.Fatalf("expected vacuous accept on empty input, got %v", v.Kind)
	}
}

func TestConfigurationHashExcludesDepth(t *testing.T) {
	tp := tape.New(symbol.Blank, model.SplitWord("ab"), 0)
	c1 := Configuration{State: "s", Tapes: []*tape.Tape{tp}, Depth: 0}
	c2 := Configuration{State: "s", Tapes: []*tape.Tape{tp.Clone()}, Depth: 7}
	if c1.Hash() != c2.Hash() {
		t.Fatalf("hash must ignore Depth: %s != %s", c1.Hash(), c2.Hash())
	}
}

func TestConfigurationHashDiffersOnState(t *testing.T) {
	tp := tape.New(symbol.Blank, model.SplitWord("ab"), 0)
	c1 := Configuration{State: "s1", Tapes: []*tape.Tape{tp}}
	c2 := Configuration{State: "s2", Tapes: []*tape.Tape{tp.Clone()}}
	if c1.Hash() == c2.Hash() {
		t.Fatal("differing control state must hash differently")
	}
}

// buildBalancedParens is the balanced-parentheses PDA,
// accepting by empty stack (Open Question 2's opt-in mode).
func buildBalancedParens() *model.Descriptor {
	d := &model.Descriptor{
		Kind:          model.PDA,
		Initial:       "q",
		AcceptMode:    model.AcceptEmptyStack,
		Blank:         symbol.Blank,
		InputAlphabet: symbol.NewAlphabet("(", ")"),
		TapeAlphabet:  symbol.NewAlphabet("(", ")"),
		States:        statesOf("q"),
		TapeCount:     1,
	}
	d.Transitions = model.NewTransitions()
	d.Transitions.Add(model.Rule{
		From: "q", To: "q", IsPDA: true,
		Reads: []symbol.Symbol{"(", symbol.Epsilon},
		Push:  []symbol.Symbol{"("},
	})
	d.Transitions.Add(model.Rule{
		From: "q", To: "q", IsPDA: true,
		Reads: []symbol.Symbol{")", "("},
	})
	return d
}

func runToTermination(d *model.Descriptor, start Configuration, maxSteps int) model.Verdict {
	frontier := []Configuration{start}
	seen := map[string]bool{}
	for len(frontier) > 0 && len(frontier) < maxSteps {
		c := frontier[0]
		frontier = frontier[1:]
		children := Step(d, c)
		if len(children) == 0 {
			if v := Classify(d, c); v.Kind == model.Accepted || v.Kind == model.Halted {
				return v
			}
			continue
		}
		for _, child := range children {
			h := child.Hash()
			if seen[h] {
				continue
			}
			seen[h] = true
			frontier = append(frontier, child)
		}
	}
	return model.Verdict{Kind: model.Rejected}
}

func TestStepPDABalancedParens(t *testing.T) {
	d := buildBalancedParens()

	if v := runToTermination(d, NewInitial(d, "(())"), 10000); v.Kind != model.Accepted {
		t.Fatalf("expected (()) to be accepted by empty stack, got %v", v.Kind)
	}
	if v := runToTermination(d, NewInitial(d, "(()"), 10000); v.Kind == model.Accepted {
		t.Fatal("expected (() to be rejected")
	}
}

// buildEcho is the RAM scenario: read one input word,
// write it back out, then halt.
func buildEcho() *model.Descriptor {
	return &model.Descriptor{
		Kind:    model.RAM,
		Initial: "0",
		Halt:    "halt",
		Blank:   symbol.Blank,
		States:  statesOf("0", "halt"),
		Program: []ram.Instruction{
			{Opcode: ram.OpRead},
			{Opcode: ram.OpWrite},
			{Opcode: ram.OpHalt},
		},
	}
}

func TestStepRAMEcho(t *testing.T) {
	d := buildEcho()
	c := NewInitial(d, "101#")
	for i := 0; i < 10; i++ {
		children := Step(d, c)
		if len(children) == 0 {
			v := Classify(d, c)
			if v.Kind != model.Halted {
				t.Fatalf("expected halted, got %v", v.Kind)
			}
			if v.Output != "101" {
				t.Fatalf("expected output 101, got %q", v.Output)
			}
			return
		}
		c = children[0]
	}
	t.Fatal("RAM program did not halt within bound")
}

func TestStepLambdaNormalizesIdentityApplication(t *testing.T) {
	d := &model.Descriptor{
		Kind:    model.Lambda,
		Initial: "step",
		Halt:    "halt",
		Blank:   symbol.Blank,
		States:  statesOf("step", "halt"),
	}
	c := NewInitial(d, "((\\x.x x)(\\y.y))")
	for i := 0; i < 20; i++ {
		children := Step(d, c)
		if len(children) == 0 {
			t.Fatal("lambda step produced no successor before reaching halt")
		}
		c = children[0]
		if d.IsHalt(c.State) {
			v := Classify(d, c)
			if v.Kind != model.Halted {
				t.Fatalf("expected halted, got %v", v.Kind)
			}
			return
		}
	}
	t.Fatal("lambda reduction did not reach normal form within bound")
}
