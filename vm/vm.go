package vm

import (
	"fmt"

	"github.com/a64kit/a64toolchain/instr"
	"github.com/a64kit/a64toolchain/internal/dbg"
	"github.com/a64kit/a64toolchain/isa"
)

// State is the current execution state of a VM run.
type State int

const (
	StateRunning State = iota
	StateHalted
	StateError
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateHalted:
		return "halted"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// VM is the complete emulated machine: a CPU and its memory, run through a
// fetch/decode/execute loop (spec §4.6).
type VM struct {
	CPU    *CPU
	Memory *Memory
	State  State

	LastError error
}

// New returns a VM with a fresh CPU and zeroed memory.
func New() *VM {
	return &VM{
		CPU:    NewCPU(),
		Memory: NewMemory(),
		State:  StateRunning,
	}
}

// Fetch reads the 32-bit word at the current PC.
func (v *VM) Fetch() (uint32, error) {
	return v.Memory.ReadWord(v.CPU.PC)
}

// Step executes a single fetch/decode/execute cycle (spec §4.6). It leaves
// v.State as StateHalted once the halt sentinel is fetched, and does not
// error in that case.
func (v *VM) Step() error {
	if v.State != StateRunning {
		return fmt.Errorf("vm: Step called while not running (state=%v)", v.State)
	}

	word, err := v.Fetch()
	if err != nil {
		v.State = StateError
		v.LastError = err
		return err
	}

	if word == isa.HaltWord {
		dbg.Printf("pc=0x%x halt", v.CPU.PC)
		v.State = StateHalted
		return nil
	}
	if word == isa.NopWord {
		dbg.Printf("pc=0x%x nop", v.CPU.PC)
		v.CPU.PC += isa.WordSize
		return nil
	}

	decoded, err := Decode(word)
	if err != nil {
		v.State = StateError
		v.LastError = fmt.Errorf("vm: decode failed at PC=0x%x: %w", v.CPU.PC, err)
		return v.LastError
	}
	dbg.Printf("pc=0x%x word=0x%08x class=%v", v.CPU.PC, word, decoded.Class)

	if err := v.execute(decoded); err != nil {
		v.State = StateError
		v.LastError = fmt.Errorf("vm: execute failed at PC=0x%x: %w", v.CPU.PC, err)
		return v.LastError
	}
	return nil
}

// execute dispatches a decoded instruction to its class executor and
// advances PC by 4 unless the executor already set it (branches).
func (v *VM) execute(in instr.Instruction) error {
	switch in.Class {
	case isa.ClassDPImmediate:
		if err := execDPImmediate(v.CPU, in.DPImmediate); err != nil {
			return err
		}
		v.CPU.PC += isa.WordSize
		return nil
	case isa.ClassDPRegister:
		if err := execDPRegister(v.CPU, in.DPRegister); err != nil {
			return err
		}
		v.CPU.PC += isa.WordSize
		return nil
	case isa.ClassSingleDataTransfer:
		if err := execSDT(v.CPU, v.Memory, in.SDT); err != nil {
			return err
		}
		v.CPU.PC += isa.WordSize
		return nil
	case isa.ClassBranch:
		pcSet, err := execBranch(v.CPU, in.Branch)
		if err != nil {
			return err
		}
		if !pcSet {
			v.CPU.PC += isa.WordSize
		}
		return nil
	default:
		return fmt.Errorf("vm: unknown instruction class %v", in.Class)
	}
}

// Run steps the VM until it halts or errors (spec §4.6: "no time limit, no
// interrupts").
func (v *VM) Run() error {
	for v.State == StateRunning {
		if err := v.Step(); err != nil {
			return err
		}
	}
	if v.State == StateError {
		return v.LastError
	}
	return nil
}
