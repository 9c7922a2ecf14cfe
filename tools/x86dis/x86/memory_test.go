// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import (
	"fmt"
	"testing"
)

func TestMemoryOperandString(t *testing.T) {
	indexed := MemIndex(RAX, RCX, 4, 0x10)
	indexed.Segment = FS
	tests := []struct {
		Name     string
		Memory   MemoryOperand
		String   string
		GoString string
	}{
		{
			Name:     "negative displacement",
			Memory:   Mem(RBP, -8),
			String:   "[rbp-0x8]",
			GoString: "{Base: rbp, Displacement: -0x8, DisplSize: 1}",
		},
		{
			Name:     "segment and index",
			Memory:   indexed,
			String:   "fs:[rax+rcx*4+0x10]",
			GoString: "{Segment: fs, Base: rax, Index: rcx, Scale: 4, Displacement: 0x10, DisplSize: 1}",
		},
		{
			Name:     "absolute",
			Memory:   MemoryOperand{Displacement: 0x1000, DisplSize: 4},
			String:   "[0x1000]",
			GoString: "{Displacement: 0x1000, DisplSize: 4}",
		},
		{
			Name:     "empty",
			Memory:   MemoryOperand{},
			String:   "[0x0]",
			GoString: "{Displacement: 0x0}",
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			// Both methods work on values, so
			// fmt uses them directly.
			if got := fmt.Sprintf("%v", test.Memory); got != test.String {
				t.Errorf("%%v: got %q, want %q", got, test.String)
			}

			if got := fmt.Sprintf("%#v", test.Memory); got != test.GoString {
				t.Errorf("%%#v: got %q, want %q", got, test.GoString)
			}
		})
	}
}

func TestInstructionMemoryOperand(t *testing.T) {
	inst, err := With2(Mov_r64_rm64, RCX, Mem(RDX, 0x5aa55aa5))
	if err != nil {
		t.Fatalf("With2(): %v", err)
	}

	// The result is not addressable, so this
	// relies on the value receivers.
	if got, want := inst.MemoryOperand().GoString(), "{Base: rdx, Displacement: 0x5aa55aa5, DisplSize: 4}"; got != want {
		t.Fatalf("MemoryOperand().GoString(): got %q, want %q", got, want)
	}

	if got, want := inst.MemoryOperand().String(), "[rdx+0x5aa55aa5]"; got != want {
		t.Fatalf("MemoryOperand().String(): got %q, want %q", got, want)
	}
}
