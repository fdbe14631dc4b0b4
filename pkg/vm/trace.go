package vm

import (
	"fmt"

	"github.com/srmvm/srm/pkg/disasm"
	"github.com/srmvm/srm/pkg/regs"
)

// PrintProgram implements listing mode (-p): the disassembled text
// section followed by a compact, five-per-line dump of the initial data
// words and a trailing ellipsis marking the unshown zeros beyond them.
// PrintProgram never mutates vm state.
func (vm *VM) PrintProgram() {
	fmt.Fprintln(vm.Out, "Address Instruction")
	textEnd := vm.Header.TextStartAddress + vm.Header.TextLength
	for addr := vm.Header.TextStartAddress; addr < textEnd; addr++ {
		w, _ := vm.Mem.Unsigned(addr)
		fmt.Fprintf(vm.Out, "%6d: %s\n", addr, disasm.AssemblyForm(addr, w))
	}

	dataEnd := vm.Header.DataStartAddress + vm.Header.DataLength
	count := 0
	for addr := vm.Header.DataStartAddress; addr <= dataEnd; addr++ {
		if count%5 == 0 && count != 0 {
			fmt.Fprintln(vm.Out)
		}
		v, _ := vm.Mem.Signed(addr)
		fmt.Fprintf(vm.Out, "%8d: %d\t", addr, v)
		count++
	}
	fmt.Fprintf(vm.Out, "\n%11s\n", "...")
}

// PrintRegisters prints PC then all regs.Count GPRs with mnemonic names,
// five per line.
func (vm *VM) PrintRegisters() {
	fmt.Fprintf(vm.Out, "%8s: %d", "PC", vm.Regs.PC)
	for i := 0; i < regs.Count; i++ {
		if i%5 == 0 {
			fmt.Fprintln(vm.Out)
		}
		label := fmt.Sprintf("GPR[%-3s]", regs.Name(i))
		fmt.Fprintf(vm.Out, "%8s: %d\t", label, vm.Regs.GPR[i])
	}
	fmt.Fprintln(vm.Out)
}

// PrintInstruction prints the single line "==> k: <disassembled form>".
func (vm *VM) PrintInstruction(k int32) {
	w, _ := vm.Mem.Unsigned(k)
	fmt.Fprintf(vm.Out, "==> %d: %s\n", k, disasm.AssemblyForm(k, w))
}

// PrintWords walks [program_size, stack_bottom] and prints only the
// addresses whose touched bit is set, five columns per line, ending in
// an ellipsis. PrintWords never mutates vm state; the touched-set is
// read-only here.
func (vm *VM) PrintWords() {
	start := vm.Header.TextStartAddress + vm.Header.TextLength
	end := vm.Header.StackBottomAddr
	count := 0
	for addr := start; addr <= end; addr++ {
		if !vm.Touched.IsTouched(addr) {
			continue
		}
		if count%5 == 0 && count != 0 {
			fmt.Fprintln(vm.Out)
		}
		v, _ := vm.Mem.Signed(addr)
		fmt.Fprintf(vm.Out, "%8d: %d\t", addr, v)
		count++
	}
	fmt.Fprintf(vm.Out, "\n%11s\n", "...")
}
