package vm

import "errors"

// Run pumps the executor per spec §4.5:
//
//	print_registers; print_words
//	repeat:
//	    if tracing: print_instruction(pc)
//	    step(pc)
//	    if tracing: print_registers; print_words
//	until exit syscall terminates the process
//
// The loop is not bounded by the text length: branches and calls may
// legitimately reach any text address. Termination occurs solely via
// the exit syscall (HaltError) or a fatal error.
func Run(vm *VM) (exitCode int, err error) {
	vm.PrintRegisters()
	vm.PrintWords()

	for {
		if vm.Tracing {
			vm.PrintInstruction(vm.Regs.PC)
		}
		stepErr := Step(vm)
		if vm.Tracing {
			vm.PrintRegisters()
			vm.PrintWords()
		}
		if stepErr != nil {
			var halt *HaltError
			if errors.As(stepErr, &halt) {
				return int(halt.Code), nil
			}
			return 1, stepErr
		}
	}
}
