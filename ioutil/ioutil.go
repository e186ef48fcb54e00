// Package ioutil implements the toolchain's file-level I/O: assembling a
// source file to a binary, loading a binary into emulator memory, and
// writing the emulator's final-state dump (spec §6, §7).
package ioutil

import (
	"fmt"
	"io"
	"os"

	"github.com/a64kit/a64toolchain/asmparser"
	"github.com/a64kit/a64toolchain/vm"
)

// MaxInputSize bounds the size of an assembled binary or source file the
// toolchain will accept; larger files are an I/O error (spec §7).
const MaxInputSize = vm.MemorySize

// AssembleFile reads the assembly source at srcPath and writes the encoded
// binary to dstPath.
func AssembleFile(srcPath, dstPath string) error {
	info, err := os.Stat(srcPath)
	if err != nil {
		return fmt.Errorf("ioutil: %w", err)
	}
	if info.Size() > MaxInputSize {
		return fmt.Errorf("ioutil: source file %s of %d bytes exceeds limit of %d", srcPath, info.Size(), MaxInputSize)
	}

	in, err := os.Open(srcPath)
	if err != nil {
		return fmt.Errorf("ioutil: %w", err)
	}
	defer in.Close()

	out, err := os.Create(dstPath)
	if err != nil {
		return fmt.Errorf("ioutil: %w", err)
	}
	defer out.Close()

	if err := asmparser.Assemble(in, info.Size(), out); err != nil {
		return err
	}
	return out.Close()
}

// LoadBinary reads the binary at path and loads it into mem starting at
// address 0 (spec §4.8, §6).
func LoadBinary(path string, mem *vm.Memory) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("ioutil: %w", err)
	}
	if info.Size() > MaxInputSize {
		return fmt.Errorf("ioutil: binary %s of %d bytes exceeds memory size %d", path, info.Size(), MaxInputSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("ioutil: %w", err)
	}
	return mem.LoadBytes(data)
}

// RunFile loads the binary at binPath into a fresh VM, runs it to
// completion, and returns the VM for inspection.
func RunFile(binPath string) (*vm.VM, error) {
	machine := vm.New()
	if err := LoadBinary(binPath, machine.Memory); err != nil {
		return nil, err
	}
	if err := machine.Run(); err != nil {
		return machine, err
	}
	return machine, nil
}

// WriteStateDump writes the emulator's final-state dump to w in the plain
// text format of spec §6: all 31 general registers and PC in hex, PSTATE,
// and every non-zero 32-bit memory word in ascending address order.
func WriteStateDump(w io.Writer, machine *vm.VM) error {
	bw := newCountingWriter(w)

	fmt.Fprintln(bw, "Registers:")
	registers := machine.CPU.Registers()
	for i, v := range registers {
		fmt.Fprintf(bw, "X%02d = %016X\n", i, v)
	}
	fmt.Fprintf(bw, "PC  = %016X\n", machine.CPU.PC)
	fmt.Fprintf(bw, "PSTATE : %s\n", machine.CPU.PSTATE.String())

	fmt.Fprintln(bw, "Non-Zero memory:")
	for _, word := range machine.Memory.NonZeroWords() {
		fmt.Fprintf(bw, "0x%08X : %08X\n", word.Addr, word.Value)
	}

	return bw.err
}

// countingWriter wraps an io.Writer and records the first error from any
// write, so WriteStateDump can check a single error at the end instead of
// after every Fprintf call.
type countingWriter struct {
	w   io.Writer
	err error
}

func newCountingWriter(w io.Writer) *countingWriter {
	return &countingWriter{w: w}
}

func (c *countingWriter) Write(p []byte) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	n, err := c.w.Write(p)
	if err != nil {
		c.err = err
	}
	return n, err
}
