package isa

// Bit positions shared by both data-processing classes.
const (
	DPSfStart  = 31
	DPOpcStart = 29
	DPRdStart  = 0
)

// DataProcImmediate field positions.
const (
	OpiStart    = 23
	ShStart     = 22
	Imm12Start  = 10
	Imm12Length = 12
	RnStart     = 5
	HwStart     = 21
	Imm16Start  = 5
	Imm16Length = 16
)

// DataProcRegister field positions.
const (
	MStart       = 28
	RmStart      = 16
	OperandStart = 10
	ShiftStart   = 22
	NStart       = 21
	XStart       = 15
	RaStart      = 10
)

// Class base patterns, shifted into position (spec §4.5 "Encoder bit layout").
const (
	DPImmBase           = uint32(1) << 28
	DPRegBase           = uint32(5) << 25
	SDTBase             = uint32(3) << 27
	BranchBase          = uint32(5) << 26
	MultiplyMask        = uint32(0x11000000)
	ArithmeticMask      = uint32(0x01000000)
	SDTTypeMask         = uint32(0xA0000000)
	RegisterOffsetMask  = uint32(0x00206800)
	PrePostIndexMask    = uint32(0x00000400)
	BranchRegisterMask  = uint32(0x021F0000)
)

// SingleDataTransfer field positions.
const (
	SDTSfStart   = 30
	SDTRtStart   = 0
	SDTLStart    = 22
	SDTXnStart   = 5
	SDTXmStart   = 16
	SDTUStart    = 24
	SDTIStart    = 11
	Simm9Start   = 12
	Simm9End     = 20
	Simm19Start  = 5
	Simm19End    = 23
	Simm19Length = 19
)

const (
	UnsignedOffsetU = 1
	PreIndexI       = 1
	PostIndexI      = 0
)

// Branch field positions.
const (
	BranchIdentStart       = 30
	UnconditionalIdentifier = 0
	RegisterIdentifier      = 3
	ConditionalIdentifier   = 1
	Simm26Start             = 0
	Simm26End               = 25
	Simm26Length            = 26
	BranchXnStart           = 5
	CondStart               = 0
)
