// Package instr holds the instruction record types shared by the assembler's
// parser/encoder and the emulator's decoder/executor (spec §3). A record is
// a class tag plus a class-specific payload; parsing, encoding, decoding and
// execution all operate on the same in-memory shape.
package instr

import "github.com/a64kit/a64toolchain/isa"

// DPImmArithmetic is the Arithmetic variant of DataProcImmediate.
type DPImmArithmetic struct {
	Sh    uint32 // 1-bit left-shift-by-12 flag
	Imm12 uint32 // 12-bit unsigned immediate
	Rn    uint32 // first operand register
}

// DPImmWideMove is the WideMove variant of DataProcImmediate.
type DPImmWideMove struct {
	Hw    uint32 // 2-bit shift selector, shift amount = Hw*16
	Imm16 uint32 // 16-bit unsigned immediate
}

// DataProcImmediate is the DataProcImmediate instruction class (spec §3).
// Exactly one of Arithmetic or WideMove is populated, selected by Opi.
type DataProcImmediate struct {
	Sf  uint32 // 0 = 32-bit, 1 = 64-bit
	Opc uint32 // 2-bit opcode
	Opi uint32 // 3-bit variant selector: isa.OpiArithmetic or isa.OpiWideMove
	Rd  uint32

	Arithmetic DPImmArithmetic
	WideMove   DPImmWideMove
}

// IsWideMove reports whether this record is the WideMove variant.
func (d DataProcImmediate) IsWideMove() bool { return d.Opi == isa.OpiWideMove }

// DPRegArithmetic is the Arithmetic variant of DataProcRegister.
type DPRegArithmetic struct {
	ShiftType uint32 // lsl/lsr/asr, see isa.Shift*
	Operand   uint32 // 6-bit shift amount
}

// DPRegLogical is the Logical variant of DataProcRegister.
type DPRegLogical struct {
	ShiftType uint32 // lsl/lsr/asr/ror
	N         uint32 // 1-bit negate-op2 flag
	Operand   uint32 // 6-bit shift amount
}

// DPRegMultiply is the Multiply variant of DataProcRegister.
type DPRegMultiply struct {
	X  uint32 // 0 = madd, 1 = msub
	Ra uint32
}

// DataProcRegister is the DataProcRegister instruction class (spec §3).
// Exactly one of Arithmetic, Logical or Multiply is populated, selected by
// Kind; M is the encoded multiply-class bit, redundant with Kind but kept
// since it is part of the wire layout.
type DataProcRegister struct {
	Sf   uint32
	Opc  uint32
	M    uint32 // 1-bit multiply-class flag
	Kind isa.DPRegKind
	Rm   uint32
	Rn   uint32
	Rd   uint32

	Arithmetic DPRegArithmetic
	Logical    DPRegLogical
	Multiply   DPRegMultiply
}

// SDT is the SDT variant of SingleDataTransfer: a memory access relative to
// a base register, under one of four addressing modes.
type SDT struct {
	L    uint32 // 0 = store, 1 = load
	Xn   uint32
	Mode isa.AddressingMode

	Imm12  uint32 // UnsignedOffset
	Simm9  int32  // PreIndex / PostIndex
	Xm     uint32 // RegisterOffset
}

// LoadLiteral is the LoadLiteral variant of SingleDataTransfer.
type LoadLiteral struct {
	Simm19 int32
}

// SingleDataTransfer is the SingleDataTransfer instruction class (spec §3).
// Exactly one of Transfer or Literal is populated, selected by IsLiteral.
type SingleDataTransfer struct {
	Sf        uint32
	Rt        uint32
	IsLiteral bool

	Transfer SDT
	Literal  LoadLiteral
}

// BranchUnconditional is the Unconditional variant of Branch.
type BranchUnconditional struct {
	Simm26 int32
}

// BranchRegister is the Register variant of Branch.
type BranchRegister struct {
	Xn uint32
}

// BranchConditional is the Conditional variant of Branch.
type BranchConditional struct {
	Simm19 int32
	Cond   isa.Cond
}

// Branch is the Branch instruction class (spec §3). Exactly one of
// Unconditional, Register or Conditional is populated, selected by Kind.
type Branch struct {
	Kind isa.BranchKind

	Unconditional BranchUnconditional
	Register      BranchRegister
	Conditional   BranchConditional
}

// Instruction is the top-level tagged union: a class tag plus the
// class-specific payload: a type tag plus a format-specific union.
// Exactly one of the four payload fields is populated, selected by Class.
type Instruction struct {
	Class isa.Class

	DPImmediate DataProcImmediate
	DPRegister  DataProcRegister
	SDT         SingleDataTransfer
	Branch      Branch
}
