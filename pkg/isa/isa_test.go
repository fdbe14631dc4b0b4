package isa

import "testing"

func assert(t *testing.T, cond bool, format string, args ...any) {
	t.Helper()
	if !cond {
		t.Fatalf(format, args...)
	}
}

func TestFormOffsetSignExtends(t *testing.T) {
	assert(t, FormOffset(0) == 0, "zero offset should be zero, got %d", FormOffset(0))
	assert(t, FormOffset(1) == 1, "positive offset unaffected, got %d", FormOffset(1))
	// 9-bit field: 0x1ff is -1, 0x100 is -256
	assert(t, FormOffset(0x1ff) == -1, "expected -1, got %d", FormOffset(0x1ff))
	assert(t, FormOffset(0x100) == -256, "expected -256, got %d", FormOffset(0x100))
}

func TestSgnExtAndZeroExt(t *testing.T) {
	assert(t, SgnExt(0xffff) == -1, "expected -1, got %d", SgnExt(0xffff))
	assert(t, SgnExt(0x7fff) == 0x7fff, "expected 0x7fff, got %d", SgnExt(0x7fff))
	assert(t, ZeroExt(0xffff) == 0xffff, "expected 0xffff, got %d", ZeroExt(0xffff))
}

func TestFormAddress(t *testing.T) {
	pc := int32(0x0C000010)
	addr := uint32(0x3FFFFFF)
	got := FormAddress(pc, addr)
	want := int32(0x0C000000 | 0x3FFFFFF)
	assert(t, got == want, "expected %#x, got %#x", want, got)
}

func TestDecodeComputational(t *testing.T) {
	// op=0 func=ADD rs=2 os=5 rt=3 ot=7
	word := uint32(0)<<28 | uint32(ADD)<<24 | uint32(2)<<21 | uint32(5)<<12 | uint32(3)<<9 | uint32(7)
	d := Decode(word)
	assert(t, d.Kind == KindComputational, "expected computational, got %v", d.Kind)
	assert(t, d.Func == ADD, "expected ADD, got %d", d.Func)
	assert(t, d.RS == 2 && d.OS == 5 && d.RT == 3 && d.OT == 7, "bad fields: %+v", d)
}

func TestDecodeSyscallRemap(t *testing.T) {
	// op=1 func=15(syscall) reg=1 offset=0 code=SyscallExit
	word := uint32(OpOtherComp)<<28 | uint32(SyscallFunc)<<24 | uint32(1)<<21 | uint32(0)<<12 | uint32(SyscallExit)
	d := Decode(word)
	assert(t, d.Kind == KindSyscall, "expected syscall remap, got %v", d.Kind)
	assert(t, d.Code == SyscallExit, "expected exit code, got %d", d.Code)
}

func TestDecodeOtherCompNotSyscall(t *testing.T) {
	word := uint32(OpOtherComp)<<28 | uint32(JREL)<<24 | uint32(0)<<21 | uint32(10)<<12
	d := Decode(word)
	assert(t, d.Kind == KindOtherComp, "expected other-comp, got %v", d.Kind)
	assert(t, d.Func == JREL, "expected JREL, got %d", d.Func)
	assert(t, d.Offset == 10, "expected offset 10, got %d", d.Offset)
}

func TestDecodeImmediateAndJump(t *testing.T) {
	word := uint32(BEQ)<<28 | uint32(4)<<25 | uint32(0)<<16 | uint32(2)
	d := Decode(word)
	assert(t, d.Kind == KindImmediate, "expected immediate, got %v", d.Kind)
	assert(t, d.Op == BEQ, "expected BEQ, got %d", d.Op)
	assert(t, d.Immed == 2, "expected immed 2, got %d", d.Immed)

	word = uint32(CALL)<<28 | uint32(12345)
	d = Decode(word)
	assert(t, d.Kind == KindJump, "expected jump, got %v", d.Kind)
	assert(t, d.Op == CALL, "expected CALL, got %d", d.Op)
	assert(t, d.Addr == 12345, "expected addr 12345, got %d", d.Addr)
}

// TestDecodeOtherCompArgDoesNotOverlapOffset covers spec §8 scenario 2
// ("Arithmetic"): LIT with reg=GP, offset=1, arg=3 must decode Offset=1
// and Arg=3 independently — an odd offset must not leak into arg's
// bit-field.
func TestDecodeOtherCompArgDoesNotOverlapOffset(t *testing.T) {
	word := uint32(OpOtherComp)<<28 | uint32(LIT)<<24 | uint32(0)<<21 | uint32(1)<<12 | uint32(3)
	d := Decode(word)
	assert(t, d.Kind == KindOtherComp, "expected other-comp, got %v", d.Kind)
	assert(t, d.Offset == 1, "expected offset 1, got %d", d.Offset)
	assert(t, d.Arg == 3, "expected arg 3, got %d", d.Arg)
}

func TestDecodeNeverFails(t *testing.T) {
	// exhaustively walk all op values, never panics, invalid only above op 15.
	for op := 0; op <= 15; op++ {
		word := uint32(op) << 28
		d := Decode(word)
		assert(t, d.Kind != KindInvalid, "op %d should classify into a known format", op)
	}
}
