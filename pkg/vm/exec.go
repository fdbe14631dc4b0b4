package vm

import (
	"fmt"

	"github.com/srmvm/srm/pkg/isa"
)

// Step executes the instruction at vm.Regs.PC and leaves vm advanced, per
// spec §4.3. PC convention (DESIGN NOTES §9): fetch memory[PC], increment
// PC, then execute — so "PC-1" in branch/jump arithmetic below always
// refers unambiguously to the address of the instruction being executed.
//
// Step returns ErrHalted when the exit syscall runs (not a failure: the
// only non-error termination path), or a wrapped ErrInvalidOpcode /
// ErrDivByZero / ErrOutOfRange naming the offending PC and instruction
// word on any other failure.
func Step(vm *VM) error {
	curPC := vm.Regs.PC
	word, err := vm.Mem.Unsigned(curPC)
	if err != nil {
		return vm.fail(curPC, 0, err)
	}
	vm.Regs.PC = curPC + 1

	d := isa.Decode(word)
	switch d.Kind {
	case isa.KindComputational:
		err = vm.execComputational(curPC, d)
	case isa.KindOtherComp:
		err = vm.execOtherComp(curPC, d)
	case isa.KindImmediate:
		err = vm.execImmediate(curPC, d)
	case isa.KindJump:
		err = vm.execJump(curPC, d)
	case isa.KindSyscall:
		err = vm.execSyscall(curPC, d)
	default:
		err = fmt.Errorf("%w: word 0x%08x", ErrInvalidOpcode, word)
	}
	if err != nil {
		return vm.fail(curPC, word, err)
	}
	return nil
}

// fail decorates any execution error with the offending PC and
// instruction word, per spec §7's diagnostic requirement. ErrHalted is
// passed through undecorated since it is a normal stop, not a fault.
func (vm *VM) fail(pc int32, word uint32, err error) error {
	if _, ok := err.(*HaltError); ok {
		return err
	}
	return fmt.Errorf("srm: pc=%d instr=0x%08x: %w", pc, word, err)
}

func tAddr(vm *VM, d isa.Decoded) int32 { return vm.Regs.GPR[d.RT] + isa.FormOffset(d.OT) }
func sAddr(vm *VM, d isa.Decoded) int32 { return vm.Regs.GPR[d.RS] + isa.FormOffset(d.OS) }
func rAddr(vm *VM, d isa.Decoded) int32 { return vm.Regs.GPR[d.Reg] + isa.FormOffset(d.Offset) }

func (vm *VM) execComputational(curPC int32, d isa.Decoded) error {
	switch d.Func {
	case isa.NOP:
		return nil
	case isa.ADD:
		t, s := tAddr(vm, d), sAddr(vm, d)
		sp, err := vm.Mem.Signed(vm.Regs.SP())
		if err != nil {
			return err
		}
		sv, err := vm.Mem.Signed(s)
		if err != nil {
			return err
		}
		return vm.storeWord(t, sp+sv)
	case isa.SUB:
		t, s := tAddr(vm, d), sAddr(vm, d)
		sp, err := vm.Mem.Signed(vm.Regs.SP())
		if err != nil {
			return err
		}
		sv, err := vm.Mem.Signed(s)
		if err != nil {
			return err
		}
		return vm.storeWord(t, sp-sv)
	case isa.CPW:
		t, s := tAddr(vm, d), sAddr(vm, d)
		sv, err := vm.Mem.Signed(s)
		if err != nil {
			return err
		}
		return vm.storeWord(t, sv)
	case isa.AND, isa.BOR, isa.NOR, isa.XOR:
		t, s := tAddr(vm, d), sAddr(vm, d)
		sp, err := vm.Mem.Unsigned(vm.Regs.SP())
		if err != nil {
			return err
		}
		sv, err := vm.Mem.Unsigned(s)
		if err != nil {
			return err
		}
		var res uint32
		switch d.Func {
		case isa.AND:
			res = sp & sv
		case isa.BOR:
			res = sp | sv
		case isa.NOR:
			res = ^(sp | sv)
		case isa.XOR:
			res = sp ^ sv
		}
		return vm.storeUWord(t, res)
	case isa.LWR:
		s := sAddr(vm, d)
		sv, err := vm.Mem.Signed(s)
		if err != nil {
			return err
		}
		vm.Regs.GPR[d.RT] = sv
		return nil
	case isa.SWR:
		t := tAddr(vm, d)
		return vm.storeWord(t, vm.Regs.GPR[d.RS])
	case isa.SCA:
		t := tAddr(vm, d)
		return vm.storeWord(t, vm.Regs.GPR[d.RS]+isa.FormOffset(d.OS))
	case isa.LWI:
		t, s := tAddr(vm, d), sAddr(vm, d)
		ptr, err := vm.Mem.Signed(s)
		if err != nil {
			return err
		}
		sv, err := vm.Mem.Signed(ptr)
		if err != nil {
			return err
		}
		return vm.storeWord(t, sv)
	case isa.NEG:
		t, s := tAddr(vm, d), sAddr(vm, d)
		sv, err := vm.Mem.Signed(s)
		if err != nil {
			return err
		}
		return vm.storeWord(t, -sv)
	default:
		return fmt.Errorf("%w: computational func %d", ErrInvalidOpcode, d.Func)
	}
}

func (vm *VM) execOtherComp(curPC int32, d isa.Decoded) error {
	switch d.Func {
	case isa.LIT:
		return vm.storeWord(rAddr(vm, d), isa.SgnExtArg(d.Arg))
	case isa.ARI:
		vm.Regs.GPR[d.Reg] += isa.SgnExtArg(d.Arg)
		return nil
	case isa.SRI:
		vm.Regs.GPR[d.Reg] -= isa.SgnExtArg(d.Arg)
		return nil
	case isa.MUL:
		r := rAddr(vm, d)
		sp, err := vm.Mem.Signed(vm.Regs.SP())
		if err != nil {
			return err
		}
		rv, err := vm.Mem.Signed(r)
		if err != nil {
			return err
		}
		return vm.storeWord(r, sp*rv)
	case isa.DIV:
		r := rAddr(vm, d)
		sp, err := vm.Mem.Signed(vm.Regs.SP())
		if err != nil {
			return err
		}
		rv, err := vm.Mem.Signed(r)
		if err != nil {
			return err
		}
		if rv == 0 {
			return ErrDivByZero
		}
		vm.Regs.HI = sp % rv
		vm.Regs.LO = sp / rv
		return nil
	case isa.CFHI:
		return vm.storeWord(rAddr(vm, d), vm.Regs.HI)
	case isa.CFLO:
		return vm.storeWord(rAddr(vm, d), vm.Regs.LO)
	case isa.SLL, isa.SRL:
		r := rAddr(vm, d)
		sp, err := vm.Mem.Unsigned(vm.Regs.SP())
		if err != nil {
			return err
		}
		shift := uint(d.Arg) & 0x1f
		var res uint32
		if d.Func == isa.SLL {
			res = sp << shift
		} else {
			res = sp >> shift
		}
		return vm.storeUWord(r, res)
	case isa.JMP:
		r := rAddr(vm, d)
		target, err := vm.Mem.Signed(r)
		if err != nil {
			return err
		}
		vm.Regs.PC = target
		return nil
	case isa.CSI:
		r := rAddr(vm, d)
		target, err := vm.Mem.Signed(r)
		if err != nil {
			return err
		}
		vm.Regs.GPR[7] = vm.Regs.PC
		vm.Regs.PC = target
		return nil
	case isa.JREL:
		vm.Regs.PC = curPC + isa.FormOffset(d.Offset)
		return nil
	default:
		return fmt.Errorf("%w: other-computational func %d", ErrInvalidOpcode, d.Func)
	}
}

func (vm *VM) execImmediate(curPC int32, d isa.Decoded) error {
	r := rAddr(vm, d)
	switch d.Op {
	case isa.ADDI:
		rv, err := vm.Mem.Signed(r)
		if err != nil {
			return err
		}
		return vm.storeWord(r, rv+isa.SgnExt(d.Immed))
	case isa.ANDI, isa.BORI, isa.NORI, isa.XORI:
		rv, err := vm.Mem.Unsigned(r)
		if err != nil {
			return err
		}
		imm := isa.ZeroExt(d.Immed)
		var res uint32
		switch d.Op {
		case isa.ANDI:
			res = rv & imm
		case isa.BORI:
			res = rv | imm
		case isa.NORI:
			res = ^(rv | imm)
		case isa.XORI:
			res = rv ^ imm
		}
		return vm.storeUWord(r, res)
	case isa.BEQ, isa.BNE:
		sp, err := vm.Mem.Signed(vm.Regs.SP())
		if err != nil {
			return err
		}
		rv, err := vm.Mem.Signed(r)
		if err != nil {
			return err
		}
		taken := sp == rv
		if d.Op == isa.BNE {
			taken = sp != rv
		}
		if taken {
			vm.Regs.PC = curPC + isa.FormOffset(d.Immed)
		}
		return nil
	case isa.BGEZ, isa.BGTZ, isa.BLEZ, isa.BLTZ:
		rv, err := vm.Mem.Signed(r)
		if err != nil {
			return err
		}
		var taken bool
		switch d.Op {
		case isa.BGEZ:
			taken = rv >= 0
		case isa.BGTZ:
			taken = rv > 0
		case isa.BLEZ:
			taken = rv <= 0
		case isa.BLTZ:
			taken = rv < 0
		}
		if taken {
			vm.Regs.PC = curPC + isa.FormOffset(d.Immed)
		}
		return nil
	default:
		return fmt.Errorf("%w: immediate op %d", ErrInvalidOpcode, d.Op)
	}
}

func (vm *VM) execJump(curPC int32, d isa.Decoded) error {
	switch d.Op {
	case isa.JMPA:
		vm.Regs.PC = isa.FormAddress(curPC, d.Addr)
		return nil
	case isa.CALL:
		vm.Regs.GPR[7] = vm.Regs.PC
		vm.Regs.PC = isa.FormAddress(curPC, d.Addr)
		return nil
	case isa.RTN:
		vm.Regs.PC = vm.Regs.GPR[7]
		return nil
	default:
		return fmt.Errorf("%w: jump op %d", ErrInvalidOpcode, d.Op)
	}
}

// storeWord writes a signed value to addr and marks it touched.
func (vm *VM) storeWord(addr int32, v int32) error {
	if err := vm.Mem.SetSigned(addr, v); err != nil {
		return err
	}
	vm.Touched.Touch(addr)
	return nil
}

// storeUWord writes an unsigned value to addr and marks it touched.
func (vm *VM) storeUWord(addr int32, v uint32) error {
	if err := vm.Mem.SetUnsigned(addr, v); err != nil {
		return err
	}
	vm.Touched.Touch(addr)
	return nil
}
