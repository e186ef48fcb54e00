package ioutil

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/a64kit/a64toolchain/vm"
)

func TestAssembleFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "prog.s")
	dst := filepath.Join(dir, "prog.bin")

	if err := os.WriteFile(src, []byte("nop\n.int 0x8A000000\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := AssembleFile(src, dst); err != nil {
		t.Fatalf("AssembleFile: %v", err)
	}

	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(data) != 8 {
		t.Fatalf("got %d bytes, want 8", len(data))
	}
}

func TestAssembleFileMissingSource(t *testing.T) {
	dir := t.TempDir()
	err := AssembleFile(filepath.Join(dir, "nope.s"), filepath.Join(dir, "out.bin"))
	if err == nil {
		t.Error("expected an error for a missing source file")
	}
}

func TestLoadBinaryRejectsOversize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "huge.bin")
	if err := os.WriteFile(path, make([]byte, MaxInputSize+1), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	mem := vm.NewMemory()
	if err := LoadBinary(path, mem); err == nil {
		t.Error("expected an error for a binary larger than memory")
	}
}

func TestRunFileExecutesToHalt(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "prog.s")
	bin := filepath.Join(dir, "prog.bin")
	if err := os.WriteFile(src, []byte("movz x0, #7\n.int 0x8A000000\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := AssembleFile(src, bin); err != nil {
		t.Fatalf("AssembleFile: %v", err)
	}

	machine, err := RunFile(bin)
	if err != nil {
		t.Fatalf("RunFile: %v", err)
	}
	if got := machine.CPU.Registers()[0]; got != 7 {
		t.Errorf("x0 = %d, want 7", got)
	}
}

func TestWriteStateDumpFormat(t *testing.T) {
	machine := vm.New()
	machine.CPU.PSTATE.Z = true

	var buf bytes.Buffer
	if err := WriteStateDump(&buf, machine); err != nil {
		t.Fatalf("WriteStateDump: %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "Registers:\n") {
		t.Error(`expected output to start with "Registers:"`)
	}
	if !strings.Contains(out, "X00 = 0000000000000000\n") {
		t.Error("expected X00 register line in 16-hex-digit form")
	}
	if !strings.Contains(out, "PC  = 0000000000000000\n") {
		t.Error("expected PC line")
	}
	if !strings.Contains(out, "PSTATE : -Z--\n") {
		t.Errorf("expected PSTATE line with only Z set, got:\n%s", out)
	}
	if !strings.Contains(out, "Non-Zero memory:\n") {
		t.Error(`expected "Non-Zero memory:" section header`)
	}
}

func TestWriteStateDumpListsNonZeroWords(t *testing.T) {
	machine := vm.New()
	machine.Memory.WriteWord(0x100, 0xDEADBEEF)

	var buf bytes.Buffer
	if err := WriteStateDump(&buf, machine); err != nil {
		t.Fatalf("WriteStateDump: %v", err)
	}
	if !strings.Contains(buf.String(), "0x00000100 : DEADBEEF\n") {
		t.Errorf("expected non-zero word line, got:\n%s", buf.String())
	}
}
