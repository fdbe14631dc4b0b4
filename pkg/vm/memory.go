package vm

import "fmt"

// MemorySize is the number of 32-bit words addressable by the machine.
const MemorySize = 32768

// ErrOutOfRange indicates an address fell outside [0, MemorySize).
var ErrOutOfRange = fmt.Errorf("srm: address out of range")

// Memory is a single flat array of 32-bit words, reinterpretable as
// signed words, unsigned words, or decoded instructions at the same
// index. A single backing array with conversions at the point of use
// keeps the signed and unsigned views bit-identical, per the "unified
// memory view" design note: there is only one storage location per
// address, never two parallel arrays that could drift apart.
type Memory [MemorySize]int32

// Touched is a per-word bitmap set whenever the interpreter writes that
// word (including the initial data load). The tracer reads it but never
// clears it: once set, a bit stays set until the process exits.
type Touched [MemorySize]bool

// InRange reports whether addr is a valid word index.
func InRange(addr int32) bool {
	return addr >= 0 && addr < MemorySize
}

// checkAddr validates addr and wraps ErrOutOfRange with context when it
// is not a valid word index.
func checkAddr(addr int32) error {
	if !InRange(addr) {
		return fmt.Errorf("%w: %d", ErrOutOfRange, addr)
	}
	return nil
}

// Signed reads the word at addr as a two's-complement signed value.
func (m *Memory) Signed(addr int32) (int32, error) {
	if err := checkAddr(addr); err != nil {
		return 0, err
	}
	return m[addr], nil
}

// Unsigned reads the word at addr reinterpreted as unsigned.
func (m *Memory) Unsigned(addr int32) (uint32, error) {
	if err := checkAddr(addr); err != nil {
		return 0, err
	}
	return uint32(m[addr]), nil
}

// SetSigned writes a signed value at addr.
func (m *Memory) SetSigned(addr int32, v int32) error {
	if err := checkAddr(addr); err != nil {
		return err
	}
	m[addr] = v
	return nil
}

// SetUnsigned writes an unsigned value at addr, reinterpreted as signed
// storage (the two views share the same bits).
func (m *Memory) SetUnsigned(addr int32, v uint32) error {
	if err := checkAddr(addr); err != nil {
		return err
	}
	m[addr] = int32(v)
	return nil
}

// Touch marks addr as written. Addresses outside range are silently
// ignored: callers are expected to have already validated the address
// via a prior Memory access, so this never masks a real bounds error.
func (t *Touched) Touch(addr int32) {
	if InRange(addr) {
		t[addr] = true
	}
}

// IsTouched reports whether addr has ever been written.
func (t *Touched) IsTouched(addr int32) bool {
	if !InRange(addr) {
		return false
	}
	return t[addr]
}
