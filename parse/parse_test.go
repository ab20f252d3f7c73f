package parse

import (
	"strings"
	"testing"

	"github.com/pflow-xyz/go-compute/model"
)

func TestFileParsesTM(t *testing.T) {
	src := `tm
scan
accept


_
scan accept
a
a
1
scan accept a a R
`
	d, err := File(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Kind != model.TM {
		t.Fatalf("got kind %v, want TM", d.Kind)
	}
	if d.Initial != "scan" || d.Accept != "accept" {
		t.Fatalf("got initial=%q accept=%q", d.Initial, d.Accept)
	}
	if len(d.Transitions.All("scan")) != 1 {
		t.Fatalf("expected one transition from scan")
	}
}

func TestFileParsesFSA(t *testing.T) {
	src := `fsm
q0
q1
qr

q0 q1 qr
a b
q0 a q1
q1 b q1
`
	d, err := File(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Kind != model.FSA {
		t.Fatalf("got kind %v, want FSA", d.Kind)
	}
	if d.TapeCount != 1 {
		t.Fatalf("got tape count %d, want 1", d.TapeCount)
	}
	rules := d.Transitions.All("q0")
	if len(rules) != 1 || rules[0].To != "q1" {
		t.Fatalf("got %v, want a single q0->q1 rule", rules)
	}
}

func TestFileParsesFSAEpsilonTransition(t *testing.T) {
	src := `fsm
q0
q1
qr

q0 q1 qr
a
q0 q1
`
	d, err := File(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rules := d.Transitions.All("q0")
	if len(rules) != 1 {
		t.Fatalf("got %d rules, want 1", len(rules))
	}
	if rules[0].Reads[0] != "" {
		t.Fatalf("expected an epsilon read, got %q", rules[0].Reads[0])
	}
}

func TestFileParsesPDAEmptyStackMode(t *testing.T) {
	src := `pda
q
empty-stack
qr
_
q qr
( )
( )
1
q ( eps q (
q ) ( q
`
	d, err := File(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.AcceptMode != model.AcceptEmptyStack {
		t.Fatal("expected empty-stack acceptance mode")
	}
	if d.Accept != "" {
		t.Fatalf("expected a blank accept state under empty-stack mode, got %q", d.Accept)
	}
}

func TestFileParsesPDAFinalStateMode(t *testing.T) {
	src := `pda
q
qa
qr
_
q qa qr
( )
( )
1
q ( eps qa (
`
	d, err := File(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.AcceptMode != model.AcceptFinalState {
		t.Fatal("expected final-state acceptance mode")
	}
	if d.Accept != "qa" {
		t.Fatalf("got accept state %q, want qa", d.Accept)
	}
}

func TestFileParsesRAMProgramWithLabelsAndHalt(t *testing.T) {
	src := `ram
0


halt
_
0 halt


loop: READ
WRITE
HALT
`
	d, err := File(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(d.Program) != 3 {
		t.Fatalf("got %d instructions, want 3", len(d.Program))
	}
	if d.Labels["loop"] != 0 {
		t.Fatalf("got label loop=%d, want 0", d.Labels["loop"])
	}
}

func TestFileParsesLambda(t *testing.T) {
	src := `lambda
step


halt
_
step halt


1
`
	d, err := File(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Kind != model.Lambda {
		t.Fatalf("got kind %v, want Lambda", d.Kind)
	}
	if !d.HasState(d.Initial) || !d.HasState(d.Halt) {
		t.Fatal("expected initial and halt states to be implicitly declared")
	}
}

func TestFileRejectsEncoderKindsAsNotImplemented(t *testing.T) {
	for _, kind := range []string{"tm_e", "ram_e"} {
		_, err := File(strings.NewReader(kind + "\n"))
		if err == nil {
			t.Fatalf("expected %q to be rejected as not implemented", kind)
		}
	}
}

func TestFileRejectsUnknownKind(t *testing.T) {
	if _, err := File(strings.NewReader("not-a-kind\n")); err == nil {
		t.Fatal("expected an error for an unrecognized model kind")
	}
}

func TestFileRejectsEmptyInput(t *testing.T) {
	if _, err := File(strings.NewReader("")); err == nil {
		t.Fatal("expected an error for an empty model file")
	}
}

func TestFileParsesSymbolClassComments(t *testing.T) {
	src := `// A: All but ( and _
tm
q0
q1


_
q0 q1
( )
( )
1
q0 q1 A _ R
`
	d, err := File(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !d.Classes.IsClassName("A") {
		t.Fatal("expected class A to be recognized from the comment block")
	}
}

func TestFileRejectsUndeclaredStateViaValidate(t *testing.T) {
	src := `tm
q0
qa


_
q0
a
a
1
q0 qa a a R
`
	if _, err := File(strings.NewReader(src)); err == nil {
		t.Fatal("expected validation to reject a transition targeting an undeclared accept state")
	}
}
