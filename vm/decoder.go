package vm

import (
	"fmt"

	"github.com/a64kit/a64toolchain/bitutil"
	"github.com/a64kit/a64toolchain/instr"
	"github.com/a64kit/a64toolchain/isa"
)

// Decode classifies and decodes a 32-bit word into an instruction record
// (spec §4.6). Unused high bits of each field are masked off by Extract.
func Decode(word uint32) (instr.Instruction, error) {
	w := uint64(word)
	op0 := uint32(bitutil.Extract(w, 25, 28))
	class := isa.ClassifyOp0(op0)

	switch class {
	case isa.ClassDPImmediate:
		return instr.Instruction{Class: class, DPImmediate: decodeDPImmediate(w)}, nil
	case isa.ClassDPRegister:
		return instr.Instruction{Class: class, DPRegister: decodeDPRegister(w)}, nil
	case isa.ClassSingleDataTransfer:
		return instr.Instruction{Class: class, SDT: decodeSDT(w)}, nil
	case isa.ClassBranch:
		branch, err := decodeBranch(w)
		if err != nil {
			return instr.Instruction{}, err
		}
		return instr.Instruction{Class: class, Branch: branch}, nil
	default:
		return instr.Instruction{}, fmt.Errorf("vm: word 0x%08x does not match any known instruction class (op0=%04b)", word, op0)
	}
}

func decodeDPImmediate(w uint64) instr.DataProcImmediate {
	f := instr.DataProcImmediate{
		Sf:  uint32(bitutil.Extract(w, isa.DPSfStart, isa.DPSfStart)),
		Opc: uint32(bitutil.Extract(w, isa.DPOpcStart, isa.DPOpcStart+1)),
		Opi: uint32(bitutil.Extract(w, isa.OpiStart, isa.OpiStart+2)),
		Rd:  uint32(bitutil.Extract(w, isa.DPRdStart, isa.DPRdStart+4)),
	}
	if f.Opi == isa.OpiWideMove {
		f.WideMove = instr.DPImmWideMove{
			Hw:    uint32(bitutil.Extract(w, isa.HwStart, isa.HwStart+1)),
			Imm16: uint32(bitutil.Extract(w, isa.Imm16Start, isa.Imm16Start+isa.Imm16Length-1)),
		}
	} else {
		f.Arithmetic = instr.DPImmArithmetic{
			Sh:    uint32(bitutil.Extract(w, isa.ShStart, isa.ShStart)),
			Imm12: uint32(bitutil.Extract(w, isa.Imm12Start, isa.Imm12Start+isa.Imm12Length-1)),
			Rn:    uint32(bitutil.Extract(w, isa.RnStart, isa.RnStart+4)),
		}
	}
	return f
}

func decodeDPRegister(w uint64) instr.DataProcRegister {
	f := instr.DataProcRegister{
		Sf: uint32(bitutil.Extract(w, isa.DPSfStart, isa.DPSfStart)),
		M:  uint32(bitutil.Extract(w, isa.MStart, isa.MStart)),
		Rm: uint32(bitutil.Extract(w, isa.RmStart, isa.RmStart+4)),
		Rn: uint32(bitutil.Extract(w, isa.RnStart, isa.RnStart+4)),
		Rd: uint32(bitutil.Extract(w, isa.DPRdStart, isa.DPRdStart+4)),
	}

	if f.M == 1 {
		f.Kind = isa.DPRegMultiply
		f.Multiply = instr.DPRegMultiply{
			X:  uint32(bitutil.Extract(w, isa.XStart, isa.XStart)),
			Ra: uint32(bitutil.Extract(w, isa.RaStart, isa.RaStart+4)),
		}
		return f
	}

	f.Opc = uint32(bitutil.Extract(w, isa.DPOpcStart, isa.DPOpcStart+1))
	operand := uint32(bitutil.Extract(w, isa.OperandStart, isa.OperandStart+5))
	shiftType := uint32(bitutil.Extract(w, isa.ShiftStart, isa.ShiftStart+1))
	arithmeticBit := bitutil.Extract(w, 24, 24)

	if arithmeticBit == 1 {
		f.Kind = isa.DPRegArithmetic
		f.Arithmetic = instr.DPRegArithmetic{ShiftType: shiftType, Operand: operand}
	} else {
		f.Kind = isa.DPRegLogical
		f.Logical = instr.DPRegLogical{
			ShiftType: shiftType,
			N:         uint32(bitutil.Extract(w, isa.NStart, isa.NStart)),
			Operand:   operand,
		}
	}
	return f
}

func decodeSDT(w uint64) instr.SingleDataTransfer {
	f := instr.SingleDataTransfer{
		Sf: uint32(bitutil.Extract(w, isa.SDTSfStart, isa.SDTSfStart)),
		Rt: uint32(bitutil.Extract(w, isa.SDTRtStart, isa.SDTRtStart+4)),
	}

	// bit 31 set distinguishes SDT from Load Literal: SDT always sets bit 31
	// via SDTTypeMask when encoded, Load Literal never does.
	if bitutil.Extract(w, 31, 31) == 0 {
		f.IsLiteral = true
		simm19 := uint32(bitutil.Extract(w, isa.Simm19Start, isa.Simm19Start+isa.Simm19Length-1))
		f.Literal = instr.LoadLiteral{Simm19: int32(bitutil.SignExtend(uint64(simm19), isa.Simm19Length))}
		return f
	}

	t := instr.SDT{
		L:  uint32(bitutil.Extract(w, isa.SDTLStart, isa.SDTLStart)),
		Xn: uint32(bitutil.Extract(w, isa.SDTXnStart, isa.SDTXnStart+4)),
	}

	switch {
	case bitutil.Extract(w, isa.SDTUStart, isa.SDTUStart) == 1:
		t.Mode = isa.AddrUnsignedOffset
		t.Imm12 = uint32(bitutil.Extract(w, isa.Imm12Start, isa.Imm12Start+isa.Imm12Length-1))
	case bitutil.Extract(w, 21, 21) == 1:
		t.Mode = isa.AddrRegisterOffset
		t.Xm = uint32(bitutil.Extract(w, isa.SDTXmStart, isa.SDTXmStart+4))
	default:
		simm9 := uint32(bitutil.Extract(w, isa.Simm9Start, isa.Simm9End))
		t.Simm9 = int32(bitutil.SignExtend(uint64(simm9), isa.Simm9End-isa.Simm9Start+1))
		if bitutil.Extract(w, isa.SDTIStart, isa.SDTIStart) == isa.PreIndexI {
			t.Mode = isa.AddrPreIndex
		} else {
			t.Mode = isa.AddrPostIndex
		}
	}
	f.Transfer = t
	return f
}

func decodeBranch(w uint64) (instr.Branch, error) {
	ident := uint32(bitutil.Extract(w, isa.BranchIdentStart, isa.BranchIdentStart+1))
	switch ident {
	case isa.UnconditionalIdentifier:
		simm26 := uint32(bitutil.Extract(w, isa.Simm26Start, isa.Simm26End))
		return instr.Branch{
			Kind:          isa.BranchUnconditional,
			Unconditional: instr.BranchUnconditional{Simm26: int32(bitutil.SignExtend(uint64(simm26), isa.Simm26Length))},
		}, nil
	case isa.RegisterIdentifier:
		return instr.Branch{
			Kind:     isa.BranchRegister,
			Register: instr.BranchRegister{Xn: uint32(bitutil.Extract(w, isa.BranchXnStart, isa.BranchXnStart+4))},
		}, nil
	case isa.ConditionalIdentifier:
		simm19 := uint32(bitutil.Extract(w, isa.Simm19Start, isa.Simm19End))
		cond := isa.Cond(bitutil.Extract(w, isa.CondStart, isa.CondStart+3))
		return instr.Branch{
			Kind: isa.BranchConditional,
			Conditional: instr.BranchConditional{
				Simm19: int32(bitutil.SignExtend(uint64(simm19), isa.Simm19Length)),
				Cond:   cond,
			},
		}, nil
	default:
		return instr.Branch{}, fmt.Errorf("vm: unknown branch identifier %02b", ident)
	}
}
