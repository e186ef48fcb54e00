package vm

import "fmt"

// MemorySize is the fixed size of emulated memory: exactly 2 MiB (spec §3).
const MemorySize = 2 * 1024 * 1024

// Memory is a byte-addressable, little-endian region of fixed size,
// initialised to zero (spec §3, §4.8).
type Memory struct {
	bytes [MemorySize]byte
}

// NewMemory returns a zeroed 2 MiB memory region.
func NewMemory() *Memory {
	return &Memory{}
}

// Len returns the size of the memory region in bytes.
func (m *Memory) Len() int { return len(m.bytes) }

// ReadWord reads a little-endian 32-bit value at addr.
func (m *Memory) ReadWord(addr uint64) (uint32, error) {
	if err := m.checkBounds(addr, 4); err != nil {
		return 0, err
	}
	b := m.bytes[addr:]
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24, nil
}

// WriteWord writes a little-endian 32-bit value at addr.
func (m *Memory) WriteWord(addr uint64, v uint32) error {
	if err := m.checkBounds(addr, 4); err != nil {
		return err
	}
	b := m.bytes[addr:]
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
	return nil
}

// ReadDoubleWord reads a little-endian 64-bit value at addr.
func (m *Memory) ReadDoubleWord(addr uint64) (uint64, error) {
	if err := m.checkBounds(addr, 8); err != nil {
		return 0, err
	}
	b := m.bytes[addr:]
	var v uint64
	for i := 0; i < 8; i++ {
		v |= uint64(b[i]) << (8 * i)
	}
	return v, nil
}

// WriteDoubleWord writes a little-endian 64-bit value at addr.
func (m *Memory) WriteDoubleWord(addr uint64, v uint64) error {
	if err := m.checkBounds(addr, 8); err != nil {
		return err
	}
	b := m.bytes[addr:]
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> (8 * i))
	}
	return nil
}

// Read reads 4 or 8 bytes at addr depending on sf, zero-extended into a
// 64-bit value (spec §4.8).
func (m *Memory) Read(sf uint32, addr uint64) (uint64, error) {
	if sf == 0 {
		v, err := m.ReadWord(addr)
		return uint64(v), err
	}
	return m.ReadDoubleWord(addr)
}

// Write writes the low 4 or 8 bytes of v at addr depending on sf.
func (m *Memory) Write(sf uint32, addr uint64, v uint64) error {
	if sf == 0 {
		return m.WriteWord(addr, uint32(v))
	}
	return m.WriteDoubleWord(addr, v)
}

// LoadBytes copies data into memory starting at address 0, as performed by
// the emulator's binary loader (spec §4.8, §6).
func (m *Memory) LoadBytes(data []byte) error {
	if len(data) > len(m.bytes) {
		return fmt.Errorf("vm: binary of %d bytes exceeds memory size %d", len(data), len(m.bytes))
	}
	copy(m.bytes[:], data)
	return nil
}

// NonZeroWords returns, in ascending address order, the addresses and
// values of every non-zero 32-bit word at 4-byte stride (spec §6's
// "Non-Zero memory" dump).
func (m *Memory) NonZeroWords() []struct {
	Addr  uint32
	Value uint32
} {
	var out []struct {
		Addr  uint32
		Value uint32
	}
	for addr := 0; addr+4 <= len(m.bytes); addr += 4 {
		v, _ := m.ReadWord(uint64(addr))
		if v != 0 {
			out = append(out, struct {
				Addr  uint32
				Value uint32
			}{Addr: uint32(addr), Value: v})
		}
	}
	return out
}

func (m *Memory) checkBounds(addr uint64, width int) error {
	if addr+uint64(width) > uint64(len(m.bytes)) {
		return fmt.Errorf("vm: memory access at 0x%x width %d out of range [0, 0x%x)", addr, width, len(m.bytes))
	}
	return nil
}
