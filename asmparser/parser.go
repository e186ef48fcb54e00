// Package asmparser turns a tokenised, alias-rewritten assembly line into
// an instruction record (spec §4.5). Parse does not encode to a 32-bit word;
// the Assemble driver hands each record to the encoder package for that.
package asmparser

import (
	"fmt"

	"github.com/a64kit/a64toolchain/instr"
	"github.com/a64kit/a64toolchain/isa"
	"github.com/a64kit/a64toolchain/symtab"
)

var arithmeticOpc = map[string]uint32{
	"add":  isa.OpcADD,
	"adds": isa.OpcADDS,
	"sub":  isa.OpcSUB,
	"subs": isa.OpcSUBS,
}

var wideMoveOpc = map[string]uint32{
	"movn": isa.OpcMOVN,
	"movz": isa.OpcMOVZ,
	"movk": isa.OpcMOVK,
}

var logicalOpcN = map[string]uint32{
	"and":  isa.LogicalAND,
	"bic":  isa.LogicalBIC,
	"orr":  isa.LogicalORR,
	"orn":  isa.LogicalORN,
	"eor":  isa.LogicalEOR,
	"eon":  isa.LogicalEON,
	"ands": isa.LogicalANDS,
	"bics": isa.LogicalBICS,
}

var shiftTypes = map[string]uint32{
	"lsl": isa.ShiftLSL,
	"lsr": isa.ShiftLSR,
	"asr": isa.ShiftASR,
	"ror": isa.ShiftROR,
}

// Parse dispatches already alias-rewritten tokens to the appropriate class
// parser and returns the resulting instruction record. labels and
// currentAddr are only consulted by branch and load-literal operands.
func Parse(tokens []string, labels *symtab.Table, currentAddr uint32) (instr.Instruction, error) {
	if len(tokens) == 0 {
		return instr.Instruction{}, fmt.Errorf("asmparser: empty instruction")
	}
	mnemonic := tokens[0]

	switch mnemonic {
	case "add", "adds", "sub", "subs":
		return parseArithmetic(tokens, mnemonic)
	case "movn", "movz", "movk":
		return parseWideMove(tokens, mnemonic)
	case "and", "ands", "bic", "bics", "eor", "orr", "eon", "orn":
		return parseLogical(tokens, mnemonic)
	case "madd", "msub":
		return parseMultiply(tokens, mnemonic)
	case "ldr", "str":
		return parseSDT(tokens, mnemonic, labels, currentAddr)
	case "b", "br":
		return parseBranch(tokens, labels, currentAddr)
	default:
		return instr.Instruction{}, fmt.Errorf("asmparser: unknown mnemonic %q", mnemonic)
	}
}

// parseOptionalShift reads an optional trailing "shift #amt" clause starting
// at tokens[fixedLen]; absent shift means lsl #0 (spec §4.5 "Operand forms").
func parseOptionalShift(tokens []string, fixedLen int) (shiftType, amt uint32, err error) {
	if len(tokens) == fixedLen {
		return isa.ShiftLSL, 0, nil
	}
	if len(tokens) < fixedLen+2 {
		return 0, 0, fmt.Errorf("incomplete shift clause")
	}
	st, ok := shiftTypes[tokens[fixedLen]]
	if !ok {
		return 0, 0, fmt.Errorf("unknown shift type %q", tokens[fixedLen])
	}
	imm, err := parseImmediate(tokens[fixedLen+1])
	if err != nil {
		return 0, 0, err
	}
	return st, imm, nil
}

func parseArithmetic(tokens []string, mnemonic string) (instr.Instruction, error) {
	if len(tokens) < 4 {
		return instr.Instruction{}, fmt.Errorf("asmparser: %q requires rd, rn, operand", mnemonic)
	}
	rd, err := parseRegister(tokens[1])
	if err != nil {
		return instr.Instruction{}, err
	}
	rn, err := parseRegister(tokens[2])
	if err != nil {
		return instr.Instruction{}, err
	}
	opc := arithmeticOpc[mnemonic]

	if isImmediate(tokens[3]) {
		imm, err := parseImmediate(tokens[3])
		if err != nil {
			return instr.Instruction{}, err
		}
		_, amt, err := parseOptionalShift(tokens, 4)
		if err != nil {
			return instr.Instruction{}, err
		}
		sh := amt / 12
		return instr.Instruction{
			Class: isa.ClassDPImmediate,
			DPImmediate: instr.DataProcImmediate{
				Sf:  rd.sf,
				Opc: opc,
				Opi: isa.OpiArithmetic,
				Rd:  rd.index,
				Arithmetic: instr.DPImmArithmetic{
					Sh:    sh,
					Imm12: imm,
					Rn:    rn.index,
				},
			},
		}, nil
	}

	rm, err := parseRegister(tokens[3])
	if err != nil {
		return instr.Instruction{}, err
	}
	shiftType, amt, err := parseOptionalShift(tokens, 4)
	if err != nil {
		return instr.Instruction{}, err
	}
	return instr.Instruction{
		Class: isa.ClassDPRegister,
		DPRegister: instr.DataProcRegister{
			Sf:   rd.sf,
			Opc:  opc,
			Kind: isa.DPRegArithmetic,
			Rm:   rm.index,
			Rn:   rn.index,
			Rd:   rd.index,
			Arithmetic: instr.DPRegArithmetic{
				ShiftType: shiftType,
				Operand:   amt,
			},
		},
	}, nil
}

func parseWideMove(tokens []string, mnemonic string) (instr.Instruction, error) {
	if len(tokens) < 3 {
		return instr.Instruction{}, fmt.Errorf("asmparser: %q requires rd, imm16", mnemonic)
	}
	rd, err := parseRegister(tokens[1])
	if err != nil {
		return instr.Instruction{}, err
	}
	imm16, err := parseImmediate(tokens[2])
	if err != nil {
		return instr.Instruction{}, err
	}
	_, amt, err := parseOptionalShift(tokens, 3)
	if err != nil {
		return instr.Instruction{}, err
	}
	return instr.Instruction{
		Class: isa.ClassDPImmediate,
		DPImmediate: instr.DataProcImmediate{
			Sf:  rd.sf,
			Opc: wideMoveOpc[mnemonic],
			Opi: isa.OpiWideMove,
			Rd:  rd.index,
			WideMove: instr.DPImmWideMove{
				Hw:    amt / 16,
				Imm16: imm16,
			},
		},
	}, nil
}

func parseLogical(tokens []string, mnemonic string) (instr.Instruction, error) {
	if len(tokens) < 4 {
		return instr.Instruction{}, fmt.Errorf("asmparser: %q requires rd, rn, rm", mnemonic)
	}
	rd, err := parseRegister(tokens[1])
	if err != nil {
		return instr.Instruction{}, err
	}
	rn, err := parseRegister(tokens[2])
	if err != nil {
		return instr.Instruction{}, err
	}
	rm, err := parseRegister(tokens[3])
	if err != nil {
		return instr.Instruction{}, err
	}
	shiftType, amt, err := parseOptionalShift(tokens, 4)
	if err != nil {
		return instr.Instruction{}, err
	}
	opc, n := isa.LogicalOpcN(logicalOpcN[mnemonic])

	return instr.Instruction{
		Class: isa.ClassDPRegister,
		DPRegister: instr.DataProcRegister{
			Sf:   rd.sf,
			Opc:  opc,
			Kind: isa.DPRegLogical,
			Rm:   rm.index,
			Rn:   rn.index,
			Rd:   rd.index,
			Logical: instr.DPRegLogical{
				ShiftType: shiftType,
				N:         n,
				Operand:   amt,
			},
		},
	}, nil
}

func parseMultiply(tokens []string, mnemonic string) (instr.Instruction, error) {
	if len(tokens) != 5 {
		return instr.Instruction{}, fmt.Errorf("asmparser: %q requires rd, rn, rm, ra", mnemonic)
	}
	rd, err := parseRegister(tokens[1])
	if err != nil {
		return instr.Instruction{}, err
	}
	rn, err := parseRegister(tokens[2])
	if err != nil {
		return instr.Instruction{}, err
	}
	rm, err := parseRegister(tokens[3])
	if err != nil {
		return instr.Instruction{}, err
	}
	ra, err := parseRegister(tokens[4])
	if err != nil {
		return instr.Instruction{}, err
	}

	x := uint32(isa.MulMADD)
	if mnemonic == "msub" {
		x = isa.MulMSUB
	}

	return instr.Instruction{
		Class: isa.ClassDPRegister,
		DPRegister: instr.DataProcRegister{
			Sf:   rd.sf,
			M:    1,
			Kind: isa.DPRegMultiply,
			Rm:   rm.index,
			Rn:   rn.index,
			Rd:   rd.index,
			Multiply: instr.DPRegMultiply{
				X:  x,
				Ra: ra.index,
			},
		},
	}, nil
}
