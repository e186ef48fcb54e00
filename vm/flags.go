package vm

import "github.com/a64kit/a64toolchain/bitutil"

// arithmeticFlags computes PSTATE for an adds/subs result, following the
// sign/carry/overflow rules of spec §4.9. isSub distinguishes subs (no
// borrow test) from adds (unsigned-wrap test). op1 and op2 must already be
// truncated to sf's width (as CPU.ReadReg does).
func arithmeticFlags(sf bitutil.Width, op1, op2, result uint64, isSub bool) PSTATE {
	w := uint(sf)
	result = maskWidth(result, w)
	signBit := uint64(1) << (w - 1)

	n := result&signBit != 0
	z := result == 0

	var c, v bool
	if isSub {
		c = op1 >= op2
		v = (op1&signBit != op2&signBit) && (op2&signBit == result&signBit)
	} else {
		c = result < op1 || result < op2
		v = (op1&signBit == op2&signBit) && (op2&signBit != result&signBit)
	}

	return PSTATE{N: n, Z: z, C: c, V: v}
}

// logicalFlags computes PSTATE for an ands/bics result (spec §4.9): C and V
// are always cleared.
func logicalFlags(sf bitutil.Width, result uint64) PSTATE {
	w := uint(sf)
	result = maskWidth(result, w)
	signBit := uint64(1) << (w - 1)
	return PSTATE{N: result&signBit != 0, Z: result == 0}
}

func maskWidth(v uint64, w uint) uint64 {
	if w >= 64 {
		return v
	}
	return v & ((uint64(1) << w) - 1)
}
