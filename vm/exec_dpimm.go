package vm

import (
	"fmt"

	"github.com/a64kit/a64toolchain/bitutil"
	"github.com/a64kit/a64toolchain/instr"
	"github.com/a64kit/a64toolchain/isa"
)

func execDPImmediate(cpu *CPU, f instr.DataProcImmediate) error {
	if f.IsWideMove() {
		return execWideMove(cpu, f)
	}
	return execDPImmArithmetic(cpu, f)
}

func execDPImmArithmetic(cpu *CPU, f instr.DataProcImmediate) error {
	sf := bitutil.WidthFromSF(f.Sf)
	op1 := cpu.ReadReg(sf, f.Arithmetic.Rn)
	op2 := uint64(f.Arithmetic.Imm12)
	if f.Arithmetic.Sh == 1 {
		op2 <<= 12
	}
	return execArithmetic(cpu, sf, f.Opc, f.Rd, op1, op2)
}

// execArithmetic implements add/adds/sub/subs on pre-computed operands,
// shared by DPImm-Arithmetic and DPReg-Arithmetic (spec §4.6).
func execArithmetic(cpu *CPU, sf bitutil.Width, opc, rd uint32, op1, op2 uint64) error {
	var result uint64
	isSub := opc == isa.OpcSUB || opc == isa.OpcSUBS
	if isSub {
		result = op1 - op2
	} else {
		result = op1 + op2
	}

	cpu.WriteReg(sf, rd, result)

	if opc == isa.OpcADDS || opc == isa.OpcSUBS {
		cpu.PSTATE = arithmeticFlags(sf, op1, op2, result, isSub)
	}
	return nil
}

func execWideMove(cpu *CPU, f instr.DataProcImmediate) error {
	sf := bitutil.WidthFromSF(f.Sf)
	shift := uint(f.WideMove.Hw) * 16
	op := uint64(f.WideMove.Imm16) << shift

	switch f.Opc {
	case isa.OpcMOVZ:
		cpu.WriteReg(sf, f.Rd, op)
	case isa.OpcMOVN:
		cpu.WriteReg(sf, f.Rd, ^op)
	case isa.OpcMOVK:
		current := cpu.ReadReg(sf, f.Rd)
		window := bitutil.Mask(shift, shift+15)
		cpu.WriteReg(sf, f.Rd, (current & ^window) | op)
	default:
		return fmt.Errorf("vm: unknown wide-move opc %d", f.Opc)
	}
	return nil
}
