// Package bof implements the Binary Object File reader: the byte-level
// decoder that produces a header and a stream of 32-bit instruction and
// data words consumed by the loader in pkg/vm.
//
// Wire format: a fixed Header (five big-endian int32 fields, in
// declaration order, no magic number, no padding) followed by
// header.TextLength big-endian instruction words and then
// header.DataLength big-endian data words.
package bof

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// Header describes the memory layout of a loaded program.
type Header struct {
	TextStartAddress int32
	TextLength       int32
	DataStartAddress int32
	DataLength       int32
	StackBottomAddr  int32
}

// Reader reads a BOF file: a header followed by instruction words and
// data words.
type Reader struct {
	f *os.File
}

// Open opens the BOF file at path for reading.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("bof: open %s: %w", path, err)
	}
	return &Reader{f: f}, nil
}

// Close closes the underlying file.
func (r *Reader) Close() error {
	return r.f.Close()
}

// ReadHeader reads the BOF header.
func (r *Reader) ReadHeader() (Header, error) {
	var h Header
	if err := binary.Read(r.f, binary.BigEndian, &h); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return Header{}, fmt.Errorf("bof: short read of header: %w", err)
		}
		return Header{}, fmt.Errorf("bof: reading header: %w", err)
	}
	if h.TextLength < 0 || h.DataLength < 0 {
		return Header{}, fmt.Errorf("bof: header inconsistent: negative length")
	}
	return h, nil
}

// ReadInstruction reads a single 32-bit instruction word.
func (r *Reader) ReadInstruction() (uint32, error) {
	var w uint32
	if err := binary.Read(r.f, binary.BigEndian, &w); err != nil {
		return 0, fmt.Errorf("bof: reading instruction word: %w", err)
	}
	return w, nil
}

// ReadWord reads a single 32-bit data word.
func (r *Reader) ReadWord() (int32, error) {
	var w int32
	if err := binary.Read(r.f, binary.BigEndian, &w); err != nil {
		return 0, fmt.Errorf("bof: reading data word: %w", err)
	}
	return w, nil
}
