package vm

import (
	"github.com/a64kit/a64toolchain/bitutil"
	"github.com/a64kit/a64toolchain/instr"
	"github.com/a64kit/a64toolchain/isa"
)

func execSDT(cpu *CPU, mem *Memory, f instr.SingleDataTransfer) error {
	sf32 := f.Sf // 0 or 1, used as the Memory.Read/Write sf argument directly
	sf := bitutil.WidthFromSF(f.Sf)

	if f.IsLiteral {
		addr := uint64(int64(cpu.PC) + int64(f.Literal.Simm19)*4)
		v, err := mem.Read(sf32, addr)
		if err != nil {
			return err
		}
		cpu.WriteReg(sf, f.Rt, v)
		return nil
	}

	t := f.Transfer
	base := cpu.ReadReg(bitutil.Width64, t.Xn)
	scale := uint64(4)
	if f.Sf == 1 {
		scale = 8
	}

	var addr uint64
	switch t.Mode {
	case isa.AddrUnsignedOffset:
		addr = base + uint64(t.Imm12)*scale
	case isa.AddrPreIndex:
		addr = uint64(int64(base) + int64(t.Simm9))
		cpu.WriteReg(bitutil.Width64, t.Xn, addr)
	case isa.AddrPostIndex:
		addr = base
		cpu.WriteReg(bitutil.Width64, t.Xn, uint64(int64(base)+int64(t.Simm9)))
	case isa.AddrRegisterOffset:
		addr = base + cpu.ReadReg(sf, t.Xm)
	}

	if t.L == isa.SDTLoad {
		v, err := mem.Read(sf32, addr)
		if err != nil {
			return err
		}
		cpu.WriteReg(sf, f.Rt, v)
		return nil
	}
	return mem.Write(sf32, addr, cpu.ReadReg(sf, f.Rt))
}
