// Package bitutil holds the pure, stateless bit-manipulation primitives
// shared by the assembler's encoder and the emulator's decoder/executor
// (spec §4.1). Every function here is total over its documented domain —
// none of them can fail.
package bitutil

// Width is an operand bit width, always 32 or 64 for this ISA subset.
type Width uint

const (
	Width32 Width = 32
	Width64 Width = 64
)

// WidthFromSF maps the 1-bit `sf` field (0 = 32-bit, 1 = 64-bit) to a Width.
func WidthFromSF(sf uint32) Width {
	if sf != 0 {
		return Width64
	}
	return Width32
}

// Mask returns a 64-bit value with bits [start..end] (inclusive) set. A
// span covering all 64 bits (end-start+1 == 64) yields all-ones.
func Mask(start, end uint) uint64 {
	width := end - start + 1
	if width >= 64 {
		return ^uint64(0)
	}
	return ((uint64(1) << width) - 1) << start
}

// Extract returns bits [start..end] of value, shifted down to bit 0.
func Extract(value uint64, start, end uint) uint64 {
	return (value & Mask(start, end)) >> start
}

// Truncate32 zeroes the upper 32 bits of v.
func Truncate32(v uint64) uint64 {
	return v & 0xFFFFFFFF
}

// maskToWidth clears all bits above the given width.
func maskToWidth(v uint64, w Width) uint64 {
	if w >= 64 {
		return v
	}
	return v & ((uint64(1) << w) - 1)
}

// SignExtend treats the low `width` bits of value as a two's-complement
// integer and returns its 64-bit signed extension.
func SignExtend(value uint64, width uint) int64 {
	if width == 0 {
		return 0
	}
	if width >= 64 {
		return int64(value)
	}
	value &= (uint64(1) << width) - 1
	signBit := uint64(1) << (width - 1)
	if value&signBit != 0 {
		return int64(value) - int64(uint64(1)<<width)
	}
	return int64(value)
}

// Lsl performs a logical left shift of v by amt bits, modulo sf's bit width.
func Lsl(v uint64, amt uint, sf Width) uint64 {
	amt %= uint(sf)
	v = maskToWidth(v, sf)
	return maskToWidth(v<<amt, sf)
}

// Lsr performs a logical right shift of v by amt bits, modulo sf's bit width.
func Lsr(v uint64, amt uint, sf Width) uint64 {
	amt %= uint(sf)
	v = maskToWidth(v, sf)
	return v >> amt
}

// Asr performs an arithmetic right shift of v by amt bits, modulo sf's bit
// width, preserving the sign bit of the sf-bit operand.
func Asr(v uint64, amt uint, sf Width) uint64 {
	amt %= uint(sf)
	v = maskToWidth(v, sf)
	signed := SignExtend(v, uint(sf))
	return maskToWidth(uint64(signed>>amt), sf)
}

// Ror cyclically rotates v right by amt bits within sf's bit width.
func Ror(v uint64, amt uint, sf Width) uint64 {
	amt %= uint(sf)
	v = maskToWidth(v, sf)
	if amt == 0 {
		return v
	}
	return maskToWidth((v>>amt)|(v<<(uint(sf)-amt)), sf)
}

// PCAddOffset computes pc + sign_extend(offset*4, offsetBitWidth+2), the
// PC-relative addressing formula of branches and load-literal. The vm
// package computes those addresses inline and does not call it.
func PCAddOffset(pc uint64, offset uint64, offsetBitWidth uint) uint64 {
	scaled := offset * 4
	delta := SignExtend(scaled, offsetBitWidth+2)
	return uint64(int64(pc) + delta)
}
