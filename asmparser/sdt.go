package asmparser

import (
	"fmt"
	"strings"

	"github.com/a64kit/a64toolchain/instr"
	"github.com/a64kit/a64toolchain/isa"
	"github.com/a64kit/a64toolchain/symtab"
)

// parseSDT implements the single-data-transfer operand syntaxes of spec
// §4.5: unsigned offset, register offset, pre/post-index, and load literal.
func parseSDT(tokens []string, mnemonic string, labels *symtab.Table, currentAddr uint32) (instr.Instruction, error) {
	if len(tokens) < 3 {
		return instr.Instruction{}, fmt.Errorf("asmparser: %q requires rt and an address operand", mnemonic)
	}
	rt, err := parseRegister(tokens[1])
	if err != nil {
		return instr.Instruction{}, err
	}

	base := instr.SingleDataTransfer{Sf: rt.sf, Rt: rt.index}

	if !strings.HasPrefix(tokens[2], "[") {
		simm19, err := loadLiteralOffset(tokens[2], labels, currentAddr)
		if err != nil {
			return instr.Instruction{}, err
		}
		base.IsLiteral = true
		base.Literal = instr.LoadLiteral{Simm19: simm19}
		return instr.Instruction{Class: isa.ClassSingleDataTransfer, SDT: base}, nil
	}

	xn, err := parseRegister(stripBrackets(tokens[2]))
	if err != nil {
		return instr.Instruction{}, err
	}
	t := instr.SDT{Xn: xn.index}
	if mnemonic == "ldr" {
		t.L = isa.SDTLoad
	} else {
		t.L = isa.SDTStore
	}

	if len(tokens) == 3 {
		t.Mode = isa.AddrUnsignedOffset
		t.Imm12 = 0
		base.Transfer = t
		return instr.Instruction{Class: isa.ClassSingleDataTransfer, SDT: base}, nil
	}

	operand := tokens[3]
	if isImmediate(operand) {
		body := strings.TrimRight(operand, "]!")
		negative := strings.HasPrefix(body, "#-")
		if negative {
			body = "#" + body[2:]
		}
		offset, err := parseImmediate(body)
		if err != nil {
			return instr.Instruction{}, err
		}
		simm9 := int32(offset)
		if negative {
			simm9 = -simm9
		}
		switch operand[len(operand)-1] {
		case ']':
			if negative {
				return instr.Instruction{}, fmt.Errorf("asmparser: unsigned offset %q cannot be negative", operand)
			}
			t.Mode = isa.AddrUnsignedOffset
			scale := uint32(4)
			if rt.sf == 1 {
				scale = 8
			}
			t.Imm12 = offset / scale
		case '!':
			t.Mode = isa.AddrPreIndex
			t.Simm9 = simm9
		default:
			t.Mode = isa.AddrPostIndex
			t.Simm9 = simm9
		}
	} else {
		t.Mode = isa.AddrRegisterOffset
		xm, err := parseRegister(stripBrackets(operand))
		if err != nil {
			return instr.Instruction{}, err
		}
		t.Xm = xm.index
	}

	base.Transfer = t
	return instr.Instruction{Class: isa.ClassSingleDataTransfer, SDT: base}, nil
}

func loadLiteralOffset(token string, labels *symtab.Table, currentAddr uint32) (int32, error) {
	if isImmediate(token) {
		v, err := parseImmediate(token)
		return int32(v), err
	}
	addr, err := labels.MustLookup(token)
	if err != nil {
		return 0, fmt.Errorf("asmparser: %w", err)
	}
	return (int32(addr) - int32(currentAddr)) / 4, nil
}
