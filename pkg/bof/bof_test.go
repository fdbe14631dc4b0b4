package bof

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

func assert(t *testing.T, cond bool, format string, args ...any) {
	t.Helper()
	if !cond {
		t.Fatalf(format, args...)
	}
}

func writeBOF(t *testing.T, h Header, text []uint32, data []int32) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prog.bof")
	f, err := os.Create(path)
	assert(t, err == nil, "create temp bof: %v", err)
	defer f.Close()

	assert(t, binary.Write(f, binary.BigEndian, &h) == nil, "write header")
	for _, w := range text {
		assert(t, binary.Write(f, binary.BigEndian, w) == nil, "write text word")
	}
	for _, w := range data {
		assert(t, binary.Write(f, binary.BigEndian, w) == nil, "write data word")
	}
	return path
}

func TestReadHeaderAndWords(t *testing.T) {
	h := Header{
		TextStartAddress: 0,
		TextLength:       2,
		DataStartAddress: 100,
		DataLength:       3,
		StackBottomAddr:  1000,
	}
	path := writeBOF(t, h, []uint32{0xdeadbeef, 0x0000002a}, []int32{1, -2, 3})

	r, err := Open(path)
	assert(t, err == nil, "open: %v", err)
	defer r.Close()

	got, err := r.ReadHeader()
	assert(t, err == nil, "read header: %v", err)
	assert(t, got == h, "header mismatch: got %+v want %+v", got, h)

	w0, err := r.ReadInstruction()
	assert(t, err == nil && w0 == 0xdeadbeef, "instruction 0: got %#x err %v", w0, err)
	w1, err := r.ReadInstruction()
	assert(t, err == nil && w1 == 0x2a, "instruction 1: got %#x err %v", w1, err)

	d0, err := r.ReadWord()
	assert(t, err == nil && d0 == 1, "data 0: got %d err %v", d0, err)
	d1, err := r.ReadWord()
	assert(t, err == nil && d1 == -2, "data 1: got %d err %v", d1, err)
	d2, err := r.ReadWord()
	assert(t, err == nil && d2 == 3, "data 2: got %d err %v", d2, err)
}

func TestReadHeaderRejectsNegativeLength(t *testing.T) {
	h := Header{TextLength: -1}
	path := writeBOF(t, h, nil, nil)

	r, err := Open(path)
	assert(t, err == nil, "open: %v", err)
	defer r.Close()

	_, err = r.ReadHeader()
	assert(t, err != nil, "expected error for negative text length")
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "does-not-exist.bof"))
	assert(t, err != nil, "expected error opening missing file")
}
