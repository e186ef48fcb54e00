package vm

import (
	"fmt"

	"github.com/a64kit/a64toolchain/bitutil"
	"github.com/a64kit/a64toolchain/instr"
	"github.com/a64kit/a64toolchain/isa"
)

// execBranch executes a branch and returns true if it set PC itself (so the
// caller's unconditional PC+=4 should be skipped), per spec §4.6.
func execBranch(cpu *CPU, f instr.Branch) (pcSet bool, err error) {
	switch f.Kind {
	case isa.BranchUnconditional:
		cpu.PC = uint64(int64(cpu.PC) + int64(f.Unconditional.Simm26)*4)
		return true, nil
	case isa.BranchRegister:
		cpu.PC = cpu.ReadReg(bitutil.Width64, f.Register.Xn)
		return true, nil
	case isa.BranchConditional:
		if EvaluateCondition(f.Conditional.Cond, cpu.PSTATE) {
			cpu.PC = uint64(int64(cpu.PC) + int64(f.Conditional.Simm19)*4)
			return true, nil
		}
		return false, nil
	default:
		return false, fmt.Errorf("vm: unknown branch kind %v", f.Kind)
	}
}
