package vm

import "github.com/a64kit/a64toolchain/isa"

// EvaluateCondition reports whether p satisfies cond (spec §4.6).
func EvaluateCondition(cond isa.Cond, p PSTATE) bool {
	switch cond {
	case isa.CondEQ:
		return p.Z
	case isa.CondNE:
		return !p.Z
	case isa.CondGE:
		return p.N == p.V
	case isa.CondLT:
		return p.N != p.V
	case isa.CondGT:
		return !p.Z && p.N == p.V
	case isa.CondLE:
		return !(!p.Z && p.N == p.V)
	case isa.CondAL:
		return true
	default:
		return false
	}
}
