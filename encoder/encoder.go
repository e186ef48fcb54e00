// Package encoder converts parsed instruction records into the 32-bit
// little-endian machine words the emulator consumes. It mirrors the bit
// layout in the field-position tables of the isa package; every encode
// function here has a matching decode function in vm (spec §4.5).
package encoder

import (
	"fmt"

	"github.com/a64kit/a64toolchain/bitutil"
	"github.com/a64kit/a64toolchain/instr"
	"github.com/a64kit/a64toolchain/isa"
)

// Encode converts one instruction record into its 32-bit encoded word.
func Encode(in instr.Instruction) (uint32, error) {
	switch in.Class {
	case isa.ClassDPImmediate:
		return encodeDPImmediate(in.DPImmediate), nil
	case isa.ClassDPRegister:
		return encodeDPRegister(in.DPRegister), nil
	case isa.ClassSingleDataTransfer:
		return encodeSDT(in.SDT), nil
	case isa.ClassBranch:
		return encodeBranch(in.Branch)
	default:
		return 0, fmt.Errorf("encoder: unknown instruction class %v", in.Class)
	}
}

func encodeDPImmediate(f instr.DataProcImmediate) uint32 {
	encoded := isa.DPImmBase |
		f.Sf<<isa.DPSfStart |
		f.Opc<<isa.DPOpcStart |
		f.Opi<<isa.OpiStart |
		f.Rd<<isa.DPRdStart

	if f.IsWideMove() {
		encoded |= f.WideMove.Hw<<isa.HwStart | f.WideMove.Imm16<<isa.Imm16Start
	} else {
		encoded |= f.Arithmetic.Sh<<isa.ShStart |
			f.Arithmetic.Imm12<<isa.Imm12Start |
			f.Arithmetic.Rn<<isa.RnStart
	}
	return encoded
}

func encodeDPRegister(f instr.DataProcRegister) uint32 {
	encoded := isa.DPRegBase |
		f.Sf<<isa.DPSfStart |
		f.Rm<<isa.RmStart |
		f.Rn<<isa.RnStart |
		f.Rd<<isa.DPRdStart

	if f.Kind == isa.DPRegMultiply {
		return encoded | isa.MultiplyMask |
			f.Multiply.X<<isa.XStart |
			f.Multiply.Ra<<isa.RaStart
	}

	encoded |= f.Opc<<isa.DPOpcStart | f.M<<isa.MStart

	switch f.Kind {
	case isa.DPRegArithmetic:
		encoded |= isa.ArithmeticMask | f.Arithmetic.ShiftType<<isa.ShiftStart | f.Arithmetic.Operand<<isa.OperandStart
	case isa.DPRegLogical:
		encoded |= f.Logical.ShiftType<<isa.ShiftStart | f.Logical.N<<isa.NStart | f.Logical.Operand<<isa.OperandStart
	}
	return encoded
}

func encodeSDT(f instr.SingleDataTransfer) uint32 {
	encoded := isa.SDTBase | f.Sf<<isa.SDTSfStart | f.Rt<<isa.SDTRtStart

	if f.IsLiteral {
		simm19 := uint32(f.Literal.Simm19) << isa.Simm19Start
		encoded |= uint32(simm19) & uint32(bitutil.Mask(isa.Simm19Start, isa.Simm19End))
		return encoded
	}

	t := f.Transfer
	encoded |= isa.SDTTypeMask | t.L<<isa.SDTLStart | t.Xn<<isa.SDTXnStart

	switch t.Mode {
	case isa.AddrUnsignedOffset:
		encoded |= isa.UnsignedOffsetU<<isa.SDTUStart | t.Imm12<<isa.Imm12Start
	case isa.AddrRegisterOffset:
		encoded |= t.Xm<<isa.SDTXmStart | isa.RegisterOffsetMask
	case isa.AddrPreIndex, isa.AddrPostIndex:
		iBit := uint32(isa.PostIndexI)
		if t.Mode == isa.AddrPreIndex {
			iBit = isa.PreIndexI
		}
		shifted := uint32(t.Simm9) << isa.Simm9Start
		encoded |= iBit<<isa.SDTIStart | (shifted & uint32(bitutil.Mask(isa.Simm9Start, isa.Simm9End))) | isa.PrePostIndexMask
	}
	return encoded
}

func encodeBranch(f instr.Branch) (uint32, error) {
	encoded := isa.BranchBase

	switch f.Kind {
	case isa.BranchUnconditional:
		shifted := uint32(f.Unconditional.Simm26) << isa.Simm26Start
		encoded |= isa.UnconditionalIdentifier<<isa.BranchIdentStart |
			(shifted & uint32(bitutil.Mask(isa.Simm26Start, isa.Simm26End)))
	case isa.BranchRegister:
		encoded |= isa.RegisterIdentifier<<isa.BranchIdentStart | isa.BranchRegisterMask | f.Register.Xn<<isa.BranchXnStart
	case isa.BranchConditional:
		shifted := uint32(f.Conditional.Simm19) << isa.Simm19Start
		encoded |= isa.ConditionalIdentifier<<isa.BranchIdentStart |
			(shifted & uint32(bitutil.Mask(isa.Simm19Start, isa.Simm19End))) |
			uint32(f.Conditional.Cond)<<isa.CondStart
	default:
		return 0, fmt.Errorf("encoder: unknown branch kind %v", f.Kind)
	}
	return encoded, nil
}
