package asmparser

import (
	"fmt"

	"github.com/a64kit/a64toolchain/instr"
	"github.com/a64kit/a64toolchain/isa"
	"github.com/a64kit/a64toolchain/symtab"
)

// parseBranch implements b/b.<cond>/br (spec §4.5 "Branch encoding"). Tokens
// have already passed through the tokeniser, so "b.eq label" arrives as
// ["b", "eq", "label"] (the period is a tokeniser delimiter).
func parseBranch(tokens []string, labels *symtab.Table, currentAddr uint32) (instr.Instruction, error) {
	mnemonic := tokens[0]

	if mnemonic == "br" {
		if len(tokens) != 2 {
			return instr.Instruction{}, fmt.Errorf("asmparser: br requires a single register operand")
		}
		xn, err := parseRegister(tokens[1])
		if err != nil {
			return instr.Instruction{}, err
		}
		return instr.Instruction{
			Class:  isa.ClassBranch,
			Branch: instr.Branch{Kind: isa.BranchRegister, Register: instr.BranchRegister{Xn: xn.index}},
		}, nil
	}

	switch len(tokens) {
	case 2:
		offset, err := branchOffset(tokens[1], labels, currentAddr)
		if err != nil {
			return instr.Instruction{}, err
		}
		return instr.Instruction{
			Class:  isa.ClassBranch,
			Branch: instr.Branch{Kind: isa.BranchUnconditional, Unconditional: instr.BranchUnconditional{Simm26: offset}},
		}, nil
	case 3:
		cond, ok := isa.CondFromName(tokens[1])
		if !ok {
			return instr.Instruction{}, fmt.Errorf("asmparser: unknown branch condition %q", tokens[1])
		}
		offset, err := branchOffset(tokens[2], labels, currentAddr)
		if err != nil {
			return instr.Instruction{}, err
		}
		return instr.Instruction{
			Class: isa.ClassBranch,
			Branch: instr.Branch{
				Kind:        isa.BranchConditional,
				Conditional: instr.BranchConditional{Simm19: offset, Cond: cond},
			},
		}, nil
	default:
		return instr.Instruction{}, fmt.Errorf("asmparser: malformed branch instruction")
	}
}

func branchOffset(label string, labels *symtab.Table, currentAddr uint32) (int32, error) {
	addr, err := labels.MustLookup(label)
	if err != nil {
		return 0, fmt.Errorf("asmparser: %w", err)
	}
	return (int32(addr) - int32(currentAddr)) / 4, nil
}
