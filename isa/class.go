// Package isa holds the shared instruction-class, opcode, condition-code,
// and sentinel definitions used by both the assembler and the emulator.
// Nothing in this package parses or executes an instruction; it only names
// the bit layouts both sides agree on.
package isa

// Class identifies which of the four supported A64 instruction classes an
// encoded word (or parsed instruction record) belongs to.
type Class int

const (
	ClassUnknown Class = iota
	ClassDPImmediate
	ClassDPRegister
	ClassSingleDataTransfer
	ClassBranch
)

func (c Class) String() string {
	switch c {
	case ClassDPImmediate:
		return "DataProcImmediate"
	case ClassDPRegister:
		return "DataProcRegister"
	case ClassSingleDataTransfer:
		return "SingleDataTransfer"
	case ClassBranch:
		return "Branch"
	default:
		return "Unknown"
	}
}

// op0 dispatch: bits [28:25] of a fetched word, tested mask/pattern style.
// DPImmediate and Branch share a mask but differ in pattern; DPRegister and
// SingleDataTransfer use narrower masks. See spec §4.6.
const (
	Op0MaskDPImmediate = 0b1110
	Op0PatDPImmediate  = 0b1000

	Op0MaskDPRegister = 0b0111
	Op0PatDPRegister  = 0b0101

	Op0MaskSingleDataTransfer = 0b0101
	Op0PatSingleDataTransfer  = 0b0100

	Op0MaskBranch = 0b1110
	Op0PatBranch  = 0b1010
)

// ClassifyOp0 returns the instruction class for the op0 field (bits [28:25]
// of a fetched word), or ClassUnknown if no mask/pattern matches.
func ClassifyOp0(op0 uint32) Class {
	op0 &= 0xF
	switch {
	case op0&Op0MaskDPImmediate == Op0PatDPImmediate:
		return ClassDPImmediate
	case op0&Op0MaskBranch == Op0PatBranch:
		return ClassBranch
	case op0&Op0MaskDPRegister == Op0PatDPRegister:
		return ClassDPRegister
	case op0&Op0MaskSingleDataTransfer == Op0PatSingleDataTransfer:
		return ClassSingleDataTransfer
	default:
		return ClassUnknown
	}
}
