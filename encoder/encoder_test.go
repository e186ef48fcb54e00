package encoder_test

import (
	"testing"

	"github.com/a64kit/a64toolchain/encoder"
	"github.com/a64kit/a64toolchain/instr"
	"github.com/a64kit/a64toolchain/isa"
	"github.com/a64kit/a64toolchain/vm"
)

// roundTrip encodes in, decodes the result, and checks the decoded record
// matches in exactly — this is the fidelity property spec §4.5 requires of
// every encode/decode pair.
func roundTrip(t *testing.T, in instr.Instruction) uint32 {
	t.Helper()
	word, err := encoder.Encode(in)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, err := vm.Decode(word)
	if err != nil {
		t.Fatalf("Decode(0x%08x): %v", word, err)
	}
	if decoded != in {
		t.Errorf("round trip mismatch:\n  word    = 0x%08x\n  encoded = %+v\n  decoded = %+v", word, in, decoded)
	}
	return word
}

func TestRoundTripAddImmediate(t *testing.T) {
	in := instr.Instruction{
		Class: isa.ClassDPImmediate,
		DPImmediate: instr.DataProcImmediate{
			Sf:  1,
			Opc: isa.OpcADD,
			Opi: isa.OpiArithmetic,
			Rd:  2,
			Arithmetic: instr.DPImmArithmetic{
				Sh:    0,
				Imm12: 42,
				Rn:    1,
			},
		},
	}
	roundTrip(t, in)
}

func TestRoundTripMovzWithShift(t *testing.T) {
	in := instr.Instruction{
		Class: isa.ClassDPImmediate,
		DPImmediate: instr.DataProcImmediate{
			Sf:  1,
			Opc: isa.OpcMOVZ,
			Opi: isa.OpiWideMove,
			Rd:  0,
			WideMove: instr.DPImmWideMove{
				Hw:    1,
				Imm16: 0xBEEF,
			},
		},
	}
	word := roundTrip(t, in)
	if (word>>isa.HwStart)&0b11 != 1 {
		t.Errorf("expected hw=1 in bits [22:21], got 0x%08x", word)
	}
}

func TestRoundTripSubsRegisterArithmetic(t *testing.T) {
	in := instr.Instruction{
		Class: isa.ClassDPRegister,
		DPRegister: instr.DataProcRegister{
			Sf:   1,
			Opc:  isa.OpcSUBS,
			Kind: isa.DPRegArithmetic,
			Rm:   3,
			Rn:   4,
			Rd:   5,
			Arithmetic: instr.DPRegArithmetic{
				ShiftType: isa.ShiftLSL,
				Operand:   0,
			},
		},
	}
	roundTrip(t, in)
}

func TestRoundTripLogicalWithNegate(t *testing.T) {
	opc, n := isa.LogicalOpcN(isa.LogicalBIC)
	in := instr.Instruction{
		Class: isa.ClassDPRegister,
		DPRegister: instr.DataProcRegister{
			Sf:   0,
			Opc:  opc,
			Kind: isa.DPRegLogical,
			Rm:   1,
			Rn:   2,
			Rd:   3,
			Logical: instr.DPRegLogical{
				ShiftType: isa.ShiftLSL,
				N:         n,
				Operand:   0,
			},
		},
	}
	if n != 1 {
		t.Fatalf("bic must pack N=1, got %d", n)
	}
	roundTrip(t, in)
}

func TestRoundTripMultiply(t *testing.T) {
	in := instr.Instruction{
		Class: isa.ClassDPRegister,
		DPRegister: instr.DataProcRegister{
			Sf:   1,
			M:    1,
			Kind: isa.DPRegMultiply,
			Rm:   1,
			Rn:   2,
			Rd:   3,
			Multiply: instr.DPRegMultiply{
				X:  isa.MulMSUB,
				Ra: 4,
			},
		},
	}
	roundTrip(t, in)
}

func TestRoundTripSDTUnsignedOffset(t *testing.T) {
	in := instr.Instruction{
		Class: isa.ClassSingleDataTransfer,
		SDT: instr.SingleDataTransfer{
			Sf: 1,
			Rt: 0,
			Transfer: instr.SDT{
				L:     isa.SDTLoad,
				Xn:    1,
				Mode:  isa.AddrUnsignedOffset,
				Imm12: 8,
			},
		},
	}
	roundTrip(t, in)
}

func TestRoundTripSDTPreIndexNegativeOffset(t *testing.T) {
	in := instr.Instruction{
		Class: isa.ClassSingleDataTransfer,
		SDT: instr.SingleDataTransfer{
			Sf: 1,
			Rt: 2,
			Transfer: instr.SDT{
				L:     isa.SDTStore,
				Xn:    3,
				Mode:  isa.AddrPreIndex,
				Simm9: -8,
			},
		},
	}
	roundTrip(t, in)
}

func TestRoundTripSDTRegisterOffset(t *testing.T) {
	in := instr.Instruction{
		Class: isa.ClassSingleDataTransfer,
		SDT: instr.SingleDataTransfer{
			Sf: 0,
			Rt: 5,
			Transfer: instr.SDT{
				L:    isa.SDTLoad,
				Xn:   6,
				Mode: isa.AddrRegisterOffset,
				Xm:   7,
			},
		},
	}
	roundTrip(t, in)
}

func TestRoundTripLoadLiteral(t *testing.T) {
	in := instr.Instruction{
		Class: isa.ClassSingleDataTransfer,
		SDT: instr.SingleDataTransfer{
			Sf:        1,
			Rt:        9,
			IsLiteral: true,
			Literal:   instr.LoadLiteral{Simm19: -4},
		},
	}
	roundTrip(t, in)
}

func TestRoundTripBranchUnconditional(t *testing.T) {
	in := instr.Instruction{
		Class:  isa.ClassBranch,
		Branch: instr.Branch{Kind: isa.BranchUnconditional, Unconditional: instr.BranchUnconditional{Simm26: -100}},
	}
	roundTrip(t, in)
}

func TestRoundTripBranchRegister(t *testing.T) {
	in := instr.Instruction{
		Class:  isa.ClassBranch,
		Branch: instr.Branch{Kind: isa.BranchRegister, Register: instr.BranchRegister{Xn: 30}},
	}
	roundTrip(t, in)
}

func TestRoundTripBranchConditional(t *testing.T) {
	in := instr.Instruction{
		Class: isa.ClassBranch,
		Branch: instr.Branch{
			Kind:        isa.BranchConditional,
			Conditional: instr.BranchConditional{Simm19: 10, Cond: isa.CondEQ},
		},
	}
	roundTrip(t, in)
}
