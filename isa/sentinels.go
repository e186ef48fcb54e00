package isa

// HaltWord is the sentinel encoded word that terminates emulator execution
// (spec §4.6, §6). The fetch loop checks for it before decoding, so it never
// reaches the instruction decoder.
const HaltWord uint32 = 0x8A000000

// NopWord is the sentinel encoded word for the `nop` mnemonic. The emulator
// advances PC by 4 without otherwise touching CPU state when it fetches it.
const NopWord uint32 = 0xD503201F

// MemorySize is the fixed size, in bytes, of the emulator's byte-addressable
// memory region (spec §3: exactly 2 MiB).
const MemorySize = 2 * 1024 * 1024

// WordSize is the width in bytes of an instruction word and of a `.int`
// directive operand.
const WordSize = 4
