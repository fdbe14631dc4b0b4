package vm

import (
	"fmt"
	"io"

	"github.com/srmvm/srm/pkg/isa"
)

// HaltError is returned by Step when the exit syscall runs. It wraps
// ErrHalted so callers can still use errors.Is(err, vm.ErrHalted), while
// carrying the exit status supplied by the program.
type HaltError struct {
	Code int32
}

func (e *HaltError) Error() string { return fmt.Sprintf("srm: exit status %d", e.Code) }
func (e *HaltError) Unwrap() error { return ErrHalted }

func (vm *VM) execSyscall(curPC int32, d isa.Decoded) error {
	r := rAddr(vm, d)
	switch d.Code {
	case isa.SyscallExit:
		return &HaltError{Code: isa.SgnExt(d.Offset)}

	case isa.SyscallPrintStr:
		s, err := vm.readCString(r * 4)
		if err != nil {
			return err
		}
		if _, err := io.WriteString(vm.Out, s); err != nil {
			return fmt.Errorf("srm: print_str: %w", err)
		}
		return vm.storeWord(vm.Regs.SP(), int32(len(s)))

	case isa.SyscallPrintInt:
		v, err := vm.Mem.Signed(r)
		if err != nil {
			return err
		}
		n, err := fmt.Fprintf(vm.Out, "%d", v)
		if err != nil {
			return fmt.Errorf("srm: print_int: %w", err)
		}
		return vm.storeWord(vm.Regs.SP(), int32(n))

	case isa.SyscallPrintChar:
		v, err := vm.Mem.Signed(r)
		if err != nil {
			return err
		}
		b := byte(v & 0xff)
		if _, err := vm.Out.Write([]byte{b}); err != nil {
			return fmt.Errorf("srm: print_char: %w", err)
		}
		return vm.storeWord(vm.Regs.SP(), int32(b))

	case isa.SyscallReadChar:
		c, err := vm.readByte()
		if err != nil {
			c = -1
		}
		return vm.storeWord(r, c)

	case isa.SyscallStartTracing:
		vm.Tracing = true
		return nil

	case isa.SyscallStopTracing:
		vm.Tracing = false
		return nil

	default:
		return fmt.Errorf("%w: syscall code %d", ErrInvalidOpcode, d.Code)
	}
}

// readByte reads a single byte from vm.In.
func (vm *VM) readByte() (int32, error) {
	var buf [1]byte
	if _, err := io.ReadFull(vm.In, buf[:]); err != nil {
		return 0, err
	}
	return int32(buf[0]), nil
}

// readCString walks memory starting at byteAddr, reinterpreting each
// 32-bit word as four little-endian bytes, and returns the bytes up to
// (not including) the first NUL. Per Open Question (b), words pack
// bytes little-endian, four per cell, NUL-terminated.
func (vm *VM) readCString(byteAddr int32) (string, error) {
	var out []byte
	addr := byteAddr
	for {
		wordIdx := addr / 4
		byteOff := uint(addr % 4)
		w, err := vm.Mem.Unsigned(wordIdx)
		if err != nil {
			return "", fmt.Errorf("srm: print_str: %w", err)
		}
		b := byte(w >> (8 * byteOff))
		if b == 0 {
			break
		}
		out = append(out, b)
		addr++
	}
	return string(out), nil
}
