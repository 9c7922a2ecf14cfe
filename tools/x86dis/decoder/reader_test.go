// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package decoder

import (
	"bytes"
	"testing"
)

func TestReader(t *testing.T) {
	data := []byte{0xff, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}
	r := newReader(data, 1)
	if got := r.u16(); got != 0x0201 {
		t.Fatalf("u16(): got %#x, want 0x0201", got)
	}

	if got := r.u32(); got != 0x06050403 {
		t.Fatalf("u32(): got %#x, want 0x06050403", got)
	}

	if b, ok := r.peek(); !ok || b != 0x07 {
		t.Fatalf("peek(): got %#x, %v, want 0x07, true", b, ok)
	}

	if got := r.remaining(); got != 2 {
		t.Fatalf("remaining(): got %d, want 2", got)
	}

	// A short read latches the overflow,
	// and later reads return zero.
	if got := r.u32(); got != 0 {
		t.Fatalf("short u32(): got %#x, want 0", got)
	}

	if !r.overflow || !r.truncated() {
		t.Fatalf("short u32(): got overflow %v, truncated %v", r.overflow, r.truncated())
	}

	if got := r.u8(); got != 0 {
		t.Fatalf("u8() after overflow: got %#x, want 0", got)
	}

	if r.canRead(1) {
		t.Fatalf("canRead(1) after overflow: got true")
	}

	if got := r.length(); got != 8 {
		t.Fatalf("length(): got %d, want 8", got)
	}
}

func TestReaderMaxLength(t *testing.T) {
	data := bytes.Repeat([]byte{0x66}, 20)
	r := newReader(data, 2)
	got := r.bytes(15)
	if !bytes.Equal(got, data[2:17]) {
		t.Fatalf("bytes(15): got %x", got)
	}

	r.u8()
	if !r.overflow {
		t.Fatalf("u8() beyond 15 bytes: no overflow")
	}

	if r.truncated() {
		t.Fatalf("u8() beyond 15 bytes: reported as truncated")
	}

	if got := r.length(); got != 15 {
		t.Fatalf("length(): got %d, want 15", got)
	}
}

func TestReaderEnd(t *testing.T) {
	r := newReader([]byte{0x90}, 1)
	if _, ok := r.peek(); ok {
		t.Fatalf("peek() at the end: got a byte")
	}

	if got := r.u64(); got != 0 || !r.truncated() {
		t.Fatalf("u64() at the end: got %#x, truncated %v", got, r.truncated())
	}

	if got := r.length(); got != 0 {
		t.Fatalf("length(): got %d, want 0", got)
	}
}
