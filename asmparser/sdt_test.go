package asmparser

import (
	"testing"

	"github.com/a64kit/a64toolchain/isa"
	"github.com/a64kit/a64toolchain/symtab"
)

func TestParseSDTUnsignedOffset(t *testing.T) {
	in, err := parseSDT([]string{"ldr", "x0", "[x1", "#16]"}, "ldr", symtab.New(), 0)
	if err != nil {
		t.Fatalf("parseSDT: %v", err)
	}
	tr := in.SDT.Transfer
	if tr.Mode != isa.AddrUnsignedOffset || tr.Imm12 != 2 {
		t.Errorf("got %+v, want unsigned-offset imm12=2 (16 bytes / 8-byte scale)", tr)
	}
}

func TestParseSDTNoOffsetDefaultsToZero(t *testing.T) {
	in, err := parseSDT([]string{"str", "x0", "[x1]"}, "str", symtab.New(), 0)
	if err != nil {
		t.Fatalf("parseSDT: %v", err)
	}
	if in.SDT.Transfer.Mode != isa.AddrUnsignedOffset || in.SDT.Transfer.Imm12 != 0 {
		t.Errorf("got %+v, want unsigned-offset imm12=0", in.SDT.Transfer)
	}
	if in.SDT.Transfer.L != isa.SDTStore {
		t.Errorf("expected store, got %v", in.SDT.Transfer.L)
	}
}

func TestParseSDTPreIndex(t *testing.T) {
	in, err := parseSDT([]string{"str", "x0", "[x1", "#8]!"}, "str", symtab.New(), 0)
	if err != nil {
		t.Fatalf("parseSDT: %v", err)
	}
	tr := in.SDT.Transfer
	if tr.Mode != isa.AddrPreIndex || tr.Simm9 != 8 {
		t.Errorf("got %+v, want pre-index simm9=8", tr)
	}
}

func TestParseSDTPostIndexNegative(t *testing.T) {
	in, err := parseSDT([]string{"ldr", "x0", "[x1", "#-8"}, "ldr", symtab.New(), 0)
	if err != nil {
		t.Fatalf("parseSDT: %v", err)
	}
	tr := in.SDT.Transfer
	if tr.Mode != isa.AddrPostIndex || tr.Simm9 != -8 {
		t.Errorf("got %+v, want post-index simm9=-8", tr)
	}
}

func TestParseSDTRegisterOffset(t *testing.T) {
	in, err := parseSDT([]string{"ldr", "x0", "[x1", "x2]"}, "ldr", symtab.New(), 0)
	if err != nil {
		t.Fatalf("parseSDT: %v", err)
	}
	tr := in.SDT.Transfer
	if tr.Mode != isa.AddrRegisterOffset || tr.Xm != 2 {
		t.Errorf("got %+v, want register-offset xm=2", tr)
	}
}

func TestParseSDTLoadLiteralImmediate(t *testing.T) {
	in, err := parseSDT([]string{"ldr", "x0", "#0x10"}, "ldr", symtab.New(), 0)
	if err != nil {
		t.Fatalf("parseSDT: %v", err)
	}
	if !in.SDT.IsLiteral || in.SDT.Literal.Simm19 != 0x10 {
		t.Errorf("got %+v, want literal simm19=0x10", in.SDT)
	}
}

func TestParseSDTLoadLiteralLabel(t *testing.T) {
	labels := symtab.New()
	labels.Insert("data", 16)
	in, err := parseSDT([]string{"ldr", "x0", "data"}, "ldr", labels, 0)
	if err != nil {
		t.Fatalf("parseSDT: %v", err)
	}
	if !in.SDT.IsLiteral || in.SDT.Literal.Simm19 != 4 {
		t.Errorf("got %+v, want literal simm19=4 (16 bytes / 4 words ahead)", in.SDT)
	}
}

func TestParseSDTTooFewOperandsIsError(t *testing.T) {
	if _, err := parseSDT([]string{"ldr", "x0"}, "ldr", symtab.New(), 0); err == nil {
		t.Error("expected an error for a missing address operand")
	}
}
