// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import (
	"errors"
	"testing"
)

func TestInstructionLen(t *testing.T) {
	for n, want := range map[int]int{
		-1: 0,
		0:  0,
		7:  7,
		15: 15,
		20: 15,
	} {
		var inst Instruction
		inst.SetLen(n)
		if got := inst.Len(); got != want {
			t.Errorf("SetLen(%d): got length %d, want %d", n, got, want)
		}
	}
}

func TestInstructionIP(t *testing.T) {
	var inst Instruction
	inst.SetIP(0x1122_3344_5566_7788)
	inst.SetIP16(0xabcd)
	if got, want := inst.IP(), uint64(0x1122_3344_5566_abcd); got != want {
		t.Fatalf("SetIP16: got IP %#x, want %#x", got, want)
	}

	inst.SetIP32(0x0102_0304)
	if got, want := inst.IP(), uint64(0x1122_3344_0102_0304); got != want {
		t.Fatalf("SetIP32: got IP %#x, want %#x", got, want)
	}

	inst.SetNextIP(0xffff_ffff_ffff_ffff)
	inst.SetNextIP32(0)
	if got, want := inst.NextIP(), uint64(0xffff_ffff_0000_0000); got != want {
		t.Fatalf("SetNextIP32: got next IP %#x, want %#x", got, want)
	}

	if got := inst.NextIP16(); got != 0 {
		t.Fatalf("NextIP16: got %#x, want 0", got)
	}
}

func TestInstructionAccessorErrors(t *testing.T) {
	tests := []struct {
		Name     string
		Do       func(inst *Instruction) error
		Accessor string
		Index    int
	}{
		{
			Name:     "operand kind index",
			Do:       func(inst *Instruction) error { return inst.SetOpKind(5, OpKindRegister) },
			Accessor: "SetOpKind",
			Index:    5,
		},
		{
			Name:     "negative operand kind index",
			Do:       func(inst *Instruction) error { _, err := inst.TryOpKind(-1); return err },
			Accessor: "OpKind",
			Index:    -1,
		},
		{
			Name:     "fifth operand kind",
			Do:       func(inst *Instruction) error { return inst.SetOpKind(4, OpKindRegister) },
			Accessor: "SetOpKind",
			Index:    4,
		},
		{
			Name:     "invalid operand kind",
			Do:       func(inst *Instruction) error { return inst.SetOpKind(0, numOpKinds) },
			Accessor: "SetOpKind",
			Index:    0,
		},
		{
			Name:     "fifth operand register",
			Do:       func(inst *Instruction) error { return inst.SetOpRegister(4, RAX) },
			Accessor: "SetOpRegister",
			Index:    4,
		},
		{
			Name:     "operand register index",
			Do:       func(inst *Instruction) error { _, err := inst.TryOpRegister(6); return err },
			Accessor: "OpRegister",
			Index:    6,
		},
		{
			Name:     "immediate of a register",
			Do:       func(inst *Instruction) error { return inst.SetImmediate(0, 1) },
			Accessor: "SetImmediate",
			Index:    0,
		},
		{
			Name:     "read immediate of a register",
			Do:       func(inst *Instruction) error { _, err := inst.Immediate(1); return err },
			Accessor: "Immediate",
			Index:    1,
		},
		{
			Name:     "scale",
			Do:       func(inst *Instruction) error { return inst.SetMemoryIndexScale(3) },
			Accessor: "SetMemoryIndexScale",
			Index:    -1,
		},
		{
			Name:     "displacement size",
			Do:       func(inst *Instruction) error { return inst.SetMemoryDisplSize(3) },
			Accessor: "SetMemoryDisplSize",
			Index:    -1,
		},
		{
			Name:     "segment prefix",
			Do:       func(inst *Instruction) error { return inst.SetSegmentPrefix(RAX) },
			Accessor: "SetSegmentPrefix",
			Index:    -1,
		},
		{
			Name:     "op mask",
			Do:       func(inst *Instruction) error { return inst.SetOpMask(XMM1) },
			Accessor: "SetOpMask",
			Index:    -1,
		},
		{
			Name:     "data length of an instruction",
			Do:       func(inst *Instruction) error { return inst.SetDeclareDataLen(1) },
			Accessor: "SetDeclareDataLen",
			Index:    -1,
		},
		{
			Name:     "data element size",
			Do:       func(inst *Instruction) error { _, err := inst.DeclareWordValue(0); return err },
			Accessor: "DeclareWordValue",
			Index:    0,
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			var inst Instruction
			inst.SetCode(Mov_r64_rm64)
			inst.SetOpKind(0, OpKindRegister)
			inst.SetOpKind(1, OpKindRegister)
			err := test.Do(&inst)
			if err == nil {
				t.Fatalf("unexpected success")
			}

			var aerr *AccessorError
			if !errors.As(err, &aerr) {
				t.Fatalf("got error %v (%T), want *AccessorError", err, err)
			}

			if aerr.Accessor != test.Accessor || aerr.Index != test.Index {
				t.Fatalf("got error in %s(%d), want %s(%d): %v", aerr.Accessor, aerr.Index, test.Accessor, test.Index, err)
			}
		})
	}
}

func TestInstructionOperands(t *testing.T) {
	var inst Instruction
	inst.SetCode(Add_rm32_imm8)
	if err := inst.SetOpKind(0, OpKindMemory); err != nil {
		t.Fatalf("SetOpKind(0): %v", err)
	}

	if err := inst.SetOpKind(1, OpKindImmediate8to32); err != nil {
		t.Fatalf("SetOpKind(1): %v", err)
	}

	if err := inst.SetImmediate(1, 0x1ff); err != nil {
		t.Fatalf("SetImmediate(1): %v", err)
	}

	got, err := inst.Immediate(1)
	if err != nil {
		t.Fatalf("Immediate(1): %v", err)
	}

	if want := uint64(0xffff_ffff_ffff_ffff); got != want {
		t.Fatalf("Immediate(1): got %#x, want %#x", got, want)
	}

	if inst.Immediate8to32() != -1 || inst.Immediate8() != 0xff {
		t.Fatalf("sign extension: got %d and %#x", inst.Immediate8to32(), inst.Immediate8())
	}

	if !inst.HasOpKind(OpKindMemory) || inst.HasOpKind(OpKindRegister) {
		t.Fatalf("HasOpKind: unexpected operand kinds")
	}

	// The fifth operand is always an 8-bit
	// immediate.
	if k, err := inst.TryOpKind(4); err != nil || k != OpKindImmediate8 {
		t.Fatalf("TryOpKind(4): got %s, %v", k, err)
	}

	if err := inst.SetOpKind(4, OpKindImmediate8); err != nil {
		t.Fatalf("SetOpKind(4): %v", err)
	}

	if r, err := inst.TryOpRegister(4); err != nil || r != RegisterNone {
		t.Fatalf("TryOpRegister(4): got %s, %v", r, err)
	}

	defer func() {
		if recover() == nil {
			t.Fatalf("OpKind(7): no panic")
		}
	}()

	inst.OpKind(7)
}

func TestInstructionMemory(t *testing.T) {
	var inst Instruction
	inst.SetCode(Mov_r32_rm32)
	inst.SetOpKind(0, OpKindRegister)
	inst.SetOpRegister(0, EAX)
	inst.SetOpKind(1, OpKindMemory)
	inst.SetMemoryBase(RBP)
	inst.SetMemoryIndex(RSI)
	if err := inst.SetMemoryIndexScale(4); err != nil {
		t.Fatalf("SetMemoryIndexScale(4): %v", err)
	}

	if err := inst.SetMemoryDisplSize(1); err != nil {
		t.Fatalf("SetMemoryDisplSize(1): %v", err)
	}

	if got := inst.MemoryIndexScale(); got != 4 {
		t.Fatalf("MemoryIndexScale(): got %d, want 4", got)
	}

	if got := inst.MemorySegment(); got != SS {
		t.Fatalf("MemorySegment() with RBP: got %s, want SS", got)
	}

	if err := inst.SetSegmentPrefix(FS); err != nil {
		t.Fatalf("SetSegmentPrefix(FS): %v", err)
	}

	if got := inst.MemorySegment(); got != FS {
		t.Fatalf("MemorySegment() with FS: got %s, want FS", got)
	}

	inst.SetSegmentPrefix(RegisterNone)
	inst.SetMemoryBase(EIP)
	inst.SetMemoryIndex(RegisterNone)
	inst.SetMemoryDisplacement64(0x1_0000_1234)
	if !inst.IsIPRelativeMemoryOperand() {
		t.Fatalf("IsIPRelativeMemoryOperand(): got false")
	}

	if got := inst.IPRelativeMemoryAddress(); got != 0x1234 {
		t.Fatalf("IPRelativeMemoryAddress(): got %#x, want 0x1234", got)
	}

	if got := inst.MemorySegment(); got != DS {
		t.Fatalf("MemorySegment(): got %s, want DS", got)
	}
}

func TestInstructionPrefixes(t *testing.T) {
	var inst Instruction
	inst.SetCode(Add_rm32_r32)
	inst.SetLockPrefix(true)
	inst.SetXacquirePrefix(true)
	if !inst.HasXacquirePrefix() || inst.HasXreleasePrefix() {
		t.Fatalf("xacquire: got XACQUIRE %v, XRELEASE %v", inst.HasXacquirePrefix(), inst.HasXreleasePrefix())
	}

	inst.SetLockPrefix(false)
	if inst.HasXacquirePrefix() {
		t.Fatalf("xacquire without lock: got XACQUIRE")
	}

	inst.SetRepnePrefix(false)
	inst.SetCode(Mov_rm32_r32)
	inst.SetXreleasePrefix(true)
	if !inst.HasXreleasePrefix() || !inst.HasRepPrefix() {
		t.Fatalf("xrelease mov: got XRELEASE %v, REP %v", inst.HasXreleasePrefix(), inst.HasRepPrefix())
	}

	if err := inst.SetOpMask(K0); err != nil || inst.HasOpMask() {
		t.Fatalf("SetOpMask(K0): got mask %s, %v", inst.OpMask(), err)
	}

	if err := inst.SetOpMask(K3); err != nil || inst.OpMask() != K3 {
		t.Fatalf("SetOpMask(K3): got mask %s, %v", inst.OpMask(), err)
	}

	if !inst.MergingMasking() {
		t.Fatalf("MergingMasking(): got false")
	}
}

func TestInstructionDeclareData(t *testing.T) {
	var inst Instruction
	inst.SetCode(DeclareDword)
	if err := inst.SetDeclareDataLen(4); err != nil {
		t.Fatalf("SetDeclareDataLen(4): %v", err)
	}

	if err := inst.SetDeclareDataLen(5); err == nil {
		t.Fatalf("SetDeclareDataLen(5): unexpected success")
	}

	if err := inst.SetDeclareDwordValue(1, 0xdeadbeef); err != nil {
		t.Fatalf("SetDeclareDwordValue(1): %v", err)
	}

	got, err := inst.DeclareDwordValue(1)
	if err != nil || got != 0xdeadbeef {
		t.Fatalf("DeclareDwordValue(1): got %#x, %v", got, err)
	}

	if _, err := inst.DeclareDwordValue(4); err == nil {
		t.Fatalf("DeclareDwordValue(4): unexpected success")
	}

	// The bytes are little-endian.
	inst.SetCode(DeclareByte)
	for n, want := range []uint8{0, 0, 0, 0, 0xef, 0xbe, 0xad, 0xde} {
		if got, err := inst.DeclareByteValue(n); err != nil || got != want {
			t.Errorf("DeclareByteValue(%d): got %#x, %v, want %#x", n, got, err, want)
		}
	}
}
