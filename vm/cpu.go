// Package vm implements the emulator half of the toolchain: CPU state,
// byte-addressable memory, instruction decoding, and execution (spec
// §4.6-§4.9). It decodes the same 32-bit words the encoder package produces.
package vm

import "github.com/a64kit/a64toolchain/bitutil"

// ZR is the zero-register index: reads as 0, ignores writes (spec §3).
const ZR = 31

// PSTATE holds the four condition flags N, Z, C, V (spec §3).
type PSTATE struct {
	N bool
	Z bool
	C bool
	V bool
}

// String renders PSTATE in the `N|-Z|-C|-V|-` form used by the emulator's
// state dump (spec §6).
func (p PSTATE) String() string {
	b := make([]byte, 0, 4)
	b = appendFlag(b, 'N', p.N)
	b = appendFlag(b, 'Z', p.Z)
	b = appendFlag(b, 'C', p.C)
	b = appendFlag(b, 'V', p.V)
	return string(b)
}

func appendFlag(b []byte, letter byte, set bool) []byte {
	if set {
		return append(b, letter)
	}
	return append(b, '-')
}

// CPU holds the 31 general-purpose registers, program counter and flags of
// a single emulated core (spec §3). The zero value is not ready to use;
// construct with NewCPU so PSTATE starts at its documented initial value.
type CPU struct {
	registers [31]uint64
	PC        uint64
	PSTATE    PSTATE
}

// NewCPU returns a CPU in its initial state: all registers and PC zero,
// PSTATE = (N=0, Z=1, C=0, V=0) (spec §3).
func NewCPU() *CPU {
	return &CPU{PSTATE: PSTATE{Z: true}}
}

// ReadReg returns register i truncated to sf bits; register 31 always
// reads as 0 (spec §4.7).
func (c *CPU) ReadReg(sf bitutil.Width, i uint32) uint64 {
	if i == ZR {
		return 0
	}
	if sf == bitutil.Width32 {
		return bitutil.Truncate32(c.registers[i])
	}
	return c.registers[i]
}

// WriteReg stores v into register i under sf semantics: writes to register
// 31 are no-ops, and 32-bit writes zero the upper 32 bits (spec §4.7).
func (c *CPU) WriteReg(sf bitutil.Width, i uint32, v uint64) {
	if i == ZR {
		return
	}
	if sf == bitutil.Width32 {
		v = bitutil.Truncate32(v)
	}
	c.registers[i] = v
}

// Registers returns the 31 general-purpose registers X0-X30, for use by
// diagnostics and state dumps. It does not include the zero register.
func (c *CPU) Registers() [31]uint64 {
	return c.registers
}
