// Package vm implements the SRM interpreter core: the unified memory
// model, the decode-dispatch-execute cycle over the five instruction
// formats, arithmetic/logical/memory/control/syscall semantics, and the
// tracing output discipline.
//
// The package mirrors bassosimone/risc32's pkg/vm: a VM struct owning
// its own memory and registers (so multiple VMs can coexist, which is
// useful for tests), a pure Decode/Execute split, and sentinel errors
// checked with errors.Is at the call site.
package vm

import (
	"fmt"
	"io"
	"os"

	"github.com/srmvm/srm/pkg/bof"
)

// The following errors may be returned by Step or Load. They are all
// fatal per spec §7: there is no recovery path, only a diagnostic and a
// non-zero exit status.
var (
	// ErrHalted indicates the exit syscall terminated the program. It is
	// not a failure; callers should treat it as a normal stop condition
	// the way bassosimone/risc32's ErrHalted is checked with errors.Is.
	ErrHalted = fmt.Errorf("srm: halted")

	// ErrInvalidOpcode indicates an unrecognized opcode/func combination
	// was reached during execution.
	ErrInvalidOpcode = fmt.Errorf("srm: invalid opcode")

	// ErrDivByZero indicates a DIV instruction with a zero divisor.
	ErrDivByZero = fmt.Errorf("srm: division by zero")
)

// VM is a single SRM machine instance: memory, registers, the touched-set
// driving the tracer's compact dump, and the loaded header. A VM is not
// goroutine safe; a single goroutine should drive it via Step/Run.
type VM struct {
	Mem     Memory
	Touched Touched
	Regs    Registers
	Header  bof.Header
	Tracing bool

	// Out and In are the syscall I/O streams. They default to os.Stdout
	// and os.Stdin in New, but can be swapped out the same way the
	// teacher's SerialTTY abstracts console I/O behind an interface,
	// which keeps Step testable without a real console.
	Out io.Writer
	In  io.Reader
}

// New returns a zeroed VM ready to be populated by Load.
func New() *VM {
	return &VM{
		Tracing: true,
		Out:     os.Stdout,
		In:      os.Stdin,
	}
}

// Load populates vm's memory and registers from r, per spec §4.1:
//
//  1. Read header.
//  2. PC ← text_start; GP ← data_start; SP,FP ← stack_bottom; other GPRs
//     and HI/LO ← 0.
//  3. Read text_length instruction words into memory[text_start:], marked
//     touched.
//  4. Read data_length data words into memory[data_start:], marked
//     touched.
//  5. Write a terminating 0 at memory[data_start+data_length] and at
//     memory[stack_bottom], marked touched.
func Load(vm *VM, r *bof.Reader) error {
	h, err := r.ReadHeader()
	if err != nil {
		return fmt.Errorf("srm: loading header: %w", err)
	}
	vm.Header = h

	vm.Regs = Registers{}
	vm.Regs.PC = h.TextStartAddress
	vm.Regs.GPR[0] = h.DataStartAddress
	vm.Regs.GPR[1] = h.StackBottomAddr
	vm.Regs.GPR[2] = h.StackBottomAddr

	textEnd := h.TextStartAddress + h.TextLength
	for i := h.TextStartAddress; i < textEnd; i++ {
		w, err := r.ReadInstruction()
		if err != nil {
			return fmt.Errorf("srm: loading text word %d: %w", i, err)
		}
		if err := vm.Mem.SetUnsigned(i, w); err != nil {
			return fmt.Errorf("srm: placing text word %d: %w", i, err)
		}
		vm.Touched.Touch(i)
	}

	dataEnd := h.DataStartAddress + h.DataLength
	for i := h.DataStartAddress; i < dataEnd; i++ {
		w, err := r.ReadWord()
		if err != nil {
			return fmt.Errorf("srm: loading data word %d: %w", i, err)
		}
		if err := vm.Mem.SetSigned(i, w); err != nil {
			return fmt.Errorf("srm: placing data word %d: %w", i, err)
		}
		vm.Touched.Touch(i)
	}

	if err := vm.Mem.SetSigned(dataEnd, 0); err != nil {
		return fmt.Errorf("srm: writing data terminator: %w", err)
	}
	vm.Touched.Touch(dataEnd)

	if err := vm.Mem.SetSigned(h.StackBottomAddr, 0); err != nil {
		return fmt.Errorf("srm: writing stack sentinel: %w", err)
	}
	vm.Touched.Touch(h.StackBottomAddr)

	return nil
}
