// Package disasm formats a single decoded SRM instruction into a
// human-readable assembly line, the way bassosimone/risc32's
// vm.Disassemble renders its own instruction set: decode once, then
// switch on the decoded kind/opcode and fmt.Sprintf a mnemonic line.
package disasm

import (
	"fmt"

	"github.com/srmvm/srm/pkg/isa"
	"github.com/srmvm/srm/pkg/regs"
)

// AssemblyForm renders the instruction word as a single line of assembly.
// addr is accepted for parity with the external disassembler contract
// named in spec §6 (assembly_form(address, instruction)); this rendering
// does not use it: branch offsets and jump address fields are printed as
// their raw field values, not resolved to target addresses.
func AssemblyForm(addr int32, word uint32) string {
	d := isa.Decode(word)
	switch d.Kind {
	case isa.KindComputational:
		return computational(d)
	case isa.KindOtherComp:
		return otherComp(d)
	case isa.KindImmediate:
		return immediate(d)
	case isa.KindJump:
		return jump(d)
	case isa.KindSyscall:
		return syscall(d)
	default:
		return fmt.Sprintf("<unknown instruction: 0x%08x>", word)
	}
}

func rname(i int) string { return regs.Name(i) }

func computational(d isa.Decoded) string {
	switch d.Func {
	case isa.NOP:
		return "NOP"
	case isa.ADD:
		return fmt.Sprintf("ADD %s(%d),%s(%d)", rname(d.RT), d.OT, rname(d.RS), d.OS)
	case isa.SUB:
		return fmt.Sprintf("SUB %s(%d),%s(%d)", rname(d.RT), d.OT, rname(d.RS), d.OS)
	case isa.CPW:
		return fmt.Sprintf("CPW %s(%d),%s(%d)", rname(d.RT), d.OT, rname(d.RS), d.OS)
	case isa.AND:
		return fmt.Sprintf("AND %s(%d),%s(%d)", rname(d.RT), d.OT, rname(d.RS), d.OS)
	case isa.BOR:
		return fmt.Sprintf("BOR %s(%d),%s(%d)", rname(d.RT), d.OT, rname(d.RS), d.OS)
	case isa.NOR:
		return fmt.Sprintf("NOR %s(%d),%s(%d)", rname(d.RT), d.OT, rname(d.RS), d.OS)
	case isa.XOR:
		return fmt.Sprintf("XOR %s(%d),%s(%d)", rname(d.RT), d.OT, rname(d.RS), d.OS)
	case isa.LWR:
		return fmt.Sprintf("LWR %s,%s(%d)", rname(d.RT), rname(d.RS), d.OS)
	case isa.SWR:
		return fmt.Sprintf("SWR %s(%d),%s", rname(d.RT), d.OT, rname(d.RS))
	case isa.SCA:
		return fmt.Sprintf("SCA %s(%d),%s(%d)", rname(d.RT), d.OT, rname(d.RS), d.OS)
	case isa.LWI:
		return fmt.Sprintf("LWI %s(%d),%s(%d)", rname(d.RT), d.OT, rname(d.RS), d.OS)
	case isa.NEG:
		return fmt.Sprintf("NEG %s(%d),%s(%d)", rname(d.RT), d.OT, rname(d.RS), d.OS)
	default:
		return fmt.Sprintf("<unknown comp func: %d>", d.Func)
	}
}

func otherComp(d isa.Decoded) string {
	switch d.Func {
	case isa.LIT:
		return fmt.Sprintf("LIT %s(%d),%d", rname(d.Reg), d.Offset, d.Arg)
	case isa.ARI:
		return fmt.Sprintf("ARI %s,%d", rname(d.Reg), d.Arg)
	case isa.SRI:
		return fmt.Sprintf("SRI %s,%d", rname(d.Reg), d.Arg)
	case isa.MUL:
		return fmt.Sprintf("MUL %s(%d)", rname(d.Reg), d.Offset)
	case isa.DIV:
		return fmt.Sprintf("DIV %s(%d)", rname(d.Reg), d.Offset)
	case isa.CFHI:
		return fmt.Sprintf("CFHI %s(%d)", rname(d.Reg), d.Offset)
	case isa.CFLO:
		return fmt.Sprintf("CFLO %s(%d)", rname(d.Reg), d.Offset)
	case isa.SLL:
		return fmt.Sprintf("SLL %s(%d),%d", rname(d.Reg), d.Offset, d.Arg)
	case isa.SRL:
		return fmt.Sprintf("SRL %s(%d),%d", rname(d.Reg), d.Offset, d.Arg)
	case isa.JMP:
		return fmt.Sprintf("JMP %s(%d)", rname(d.Reg), d.Offset)
	case isa.CSI:
		return fmt.Sprintf("CSI %s(%d)", rname(d.Reg), d.Offset)
	case isa.JREL:
		return fmt.Sprintf("JREL %d", d.Offset)
	default:
		return fmt.Sprintf("<unknown other-comp func: %d>", d.Func)
	}
}

func immediate(d isa.Decoded) string {
	switch d.Op {
	case isa.ADDI:
		return fmt.Sprintf("ADDI %s(%d),%d", rname(d.Reg), d.Offset, d.Immed)
	case isa.ANDI:
		return fmt.Sprintf("ANDI %s(%d),%d", rname(d.Reg), d.Offset, d.Immed)
	case isa.BORI:
		return fmt.Sprintf("BORI %s(%d),%d", rname(d.Reg), d.Offset, d.Immed)
	case isa.NORI:
		return fmt.Sprintf("NORI %s(%d),%d", rname(d.Reg), d.Offset, d.Immed)
	case isa.XORI:
		return fmt.Sprintf("XORI %s(%d),%d", rname(d.Reg), d.Offset, d.Immed)
	case isa.BEQ:
		return fmt.Sprintf("BEQ %s(%d),%d", rname(d.Reg), d.Offset, d.Immed)
	case isa.BNE:
		return fmt.Sprintf("BNE %s(%d),%d", rname(d.Reg), d.Offset, d.Immed)
	case isa.BGEZ:
		return fmt.Sprintf("BGEZ %s(%d),%d", rname(d.Reg), d.Offset, d.Immed)
	case isa.BGTZ:
		return fmt.Sprintf("BGTZ %s(%d),%d", rname(d.Reg), d.Offset, d.Immed)
	case isa.BLEZ:
		return fmt.Sprintf("BLEZ %s(%d),%d", rname(d.Reg), d.Offset, d.Immed)
	case isa.BLTZ:
		return fmt.Sprintf("BLTZ %s(%d),%d", rname(d.Reg), d.Offset, d.Immed)
	default:
		return fmt.Sprintf("<unknown immediate op: %d>", d.Op)
	}
}

func jump(d isa.Decoded) string {
	switch d.Op {
	case isa.JMPA:
		return fmt.Sprintf("JMPA %d", d.Addr)
	case isa.CALL:
		return fmt.Sprintf("CALL %d", d.Addr)
	case isa.RTN:
		return "RTN"
	default:
		return fmt.Sprintf("<unknown jump op: %d>", d.Op)
	}
}

func syscall(d isa.Decoded) string {
	switch d.Code {
	case isa.SyscallExit:
		return fmt.Sprintf("SYSCALL exit %s(%d)", rname(d.Reg), d.Offset)
	case isa.SyscallPrintStr:
		return fmt.Sprintf("SYSCALL print_str %s(%d)", rname(d.Reg), d.Offset)
	case isa.SyscallPrintInt:
		return fmt.Sprintf("SYSCALL print_int %s(%d)", rname(d.Reg), d.Offset)
	case isa.SyscallPrintChar:
		return fmt.Sprintf("SYSCALL print_char %s(%d)", rname(d.Reg), d.Offset)
	case isa.SyscallReadChar:
		return fmt.Sprintf("SYSCALL read_char %s(%d)", rname(d.Reg), d.Offset)
	case isa.SyscallStartTracing:
		return "SYSCALL start_tracing"
	case isa.SyscallStopTracing:
		return "SYSCALL stop_tracing"
	default:
		return fmt.Sprintf("SYSCALL <unknown code %d>", d.Code)
	}
}
