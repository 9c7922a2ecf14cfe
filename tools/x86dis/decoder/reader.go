// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package decoder

import (
	"encoding/binary"

	"golang.org/x/crypto/cryptobyte"

	"firefly-os.dev/tools/x86dis/x86"
)

// reader is a cursor over the bytes of a
// single instruction.
//
// Reads beyond the end of the input, or
// beyond the maximum instruction length,
// return zero and latch the reader into
// an overflowed state. The cursor still
// advances, so the number of bytes the
// decoder asked for is preserved.
type reader struct {
	s        cryptobyte.String
	start    int // Offset of the instruction in the input.
	pos      int // Bytes requested so far.
	limit    int // Bytes available for this instruction.
	overflow bool
	tooLong  bool // Overflowed due to the maximum length.
}

// newReader returns a reader over the
// instruction starting at data[start:].
func newReader(data []byte, start int) reader {
	end := len(data)
	if start > end {
		start = end
	}

	limit := end - start
	tooLong := false
	if limit > x86.MaxInstructionLength {
		limit = x86.MaxInstructionLength
		tooLong = true
	}

	return reader{
		s:       cryptobyte.String(data[start : start+limit]),
		start:   start,
		limit:   limit,
		tooLong: tooLong,
	}
}

// fail latches the overflowed state after
// a short read of n bytes.
func (r *reader) fail(n int) {
	r.pos += n
	r.overflow = true
	r.s = nil
}

// canRead returns whether n more bytes
// can be read without overflowing.
func (r *reader) canRead(n int) bool {
	return !r.overflow && len(r.s) >= n
}

// remaining returns the number of bytes
// that can still be read.
func (r *reader) remaining() int {
	if r.overflow {
		return 0
	}

	return len(r.s)
}

// peek returns the next byte without
// consuming it.
func (r *reader) peek() (byte, bool) {
	if !r.canRead(1) {
		return 0, false
	}

	return r.s[0], true
}

func (r *reader) u8() byte {
	var v uint8
	if r.overflow || !r.s.ReadUint8(&v) {
		r.fail(1)
		return 0
	}

	r.pos++
	return v
}

func (r *reader) bytes(n int) []byte {
	var v []byte
	if r.overflow || !r.s.ReadBytes(&v, n) {
		r.fail(n)
		return nil
	}

	r.pos += n
	return v
}

func (r *reader) u16() uint16 {
	if b := r.bytes(2); b != nil {
		return binary.LittleEndian.Uint16(b)
	}

	return 0
}

func (r *reader) u32() uint32 {
	if b := r.bytes(4); b != nil {
		return binary.LittleEndian.Uint32(b)
	}

	return 0
}

func (r *reader) u64() uint64 {
	if b := r.bytes(8); b != nil {
		return binary.LittleEndian.Uint64(b)
	}

	return 0
}

// length returns the number of bytes of
// the instruction, which never exceeds the
// bytes available to it.
func (r *reader) length() int {
	if r.pos > r.limit {
		return r.limit
	}

	return r.pos
}

// truncated returns whether the reader
// overflowed because the input ended,
// rather than because the instruction was
// too long.
func (r *reader) truncated() bool {
	return r.overflow && !r.tooLong
}
