// Package regs maps SRM register indices to their mnemonic display names.
package regs

// Count is the number of general-purpose registers (NUM_REGISTERS).
const Count = 8

// Register index constants, per the GLOSSARY.
const (
	GP = 0 // base of the data (globals) region
	SP = 1 // top of stack
	FP = 2 // current stack frame base
	RA = 7 // return address
)

var names = [Count]string{"gp", "sp", "fp", "r3", "r4", "r5", "r6", "ra"}

// Name returns the mnemonic name of register i, or "?" if i is out of range.
func Name(i int) string {
	if i < 0 || i >= Count {
		return "?"
	}
	return names[i]
}
