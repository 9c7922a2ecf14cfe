// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import (
	"bytes"
	"errors"
	"testing"
)

func TestBuilders(t *testing.T) {
	tests := []struct {
		Name  string
		Build func() (Instruction, error)
		Want  string
	}{
		{
			Name:  "no operands",
			Build: func() (Instruction, error) { return With(Nopd) },
			Want:  "{Code: Nopd}",
		},
		{
			Name:  "register and memory",
			Build: func() (Instruction, error) { return With2(Mov_r64_rm64, RCX, Mem(RDX, 0x5aa55aa5)) },
			Want:  "{Code: Mov_r64_rm64, Op0: rcx, Op1: {Base: rdx, Displacement: 0x5aa55aa5, DisplSize: 4}}",
		},
		{
			Name:  "scaled index",
			Build: func() (Instruction, error) { return With2(Mov_r32_rm32, EAX, MemIndex(RBX, RSI, 8, -16)) },
			Want:  "{Code: Mov_r32_rm32, Op0: eax, Op1: {Base: rbx, Index: rsi, Scale: 8, Displacement: -0x10, DisplSize: 1}}",
		},
		{
			Name: "segment override",
			Build: func() (Instruction, error) {
				return With2(Mov_r32_rm32, EAX, MemoryOperand{Segment: FS, Base: RAX})
			},
			Want: "{Code: Mov_r32_rm32, Op0: eax, Op1: {Segment: fs, Base: rax}, Segment: fs}",
		},
		{
			Name:  "unsigned immediate",
			Build: func() (Instruction, error) { return With2(Add_rm8_imm8, AL, Imm(0xff)) },
			Want:  "{Code: Add_rm8_imm8, Op0: al, Op1: Immediate8 0xff}",
		},
		{
			Name:  "signed immediate",
			Build: func() (Instruction, error) { return With2(Add_rm8_imm8, AL, Imm(-1)) },
			Want:  "{Code: Add_rm8_imm8, Op0: al, Op1: Immediate8 0xff}",
		},
		{
			Name:  "sign-extended immediate",
			Build: func() (Instruction, error) { return With2(Sub_rm32_imm8, EAX, Imm(-1)) },
			Want:  "{Code: Sub_rm32_imm8, Op0: eax, Op1: Immediate8to32 0xffffffffffffffff}",
		},
		{
			Name:  "second immediate",
			Build: func() (Instruction, error) { return With2(Enterq_imm16_imm8, Imm(0x10), Imm(2)) },
			Want:  "{Code: Enterq_imm16_imm8, Op0: Immediate16 0x10, Op1: Immediate8_2nd 0x2}",
		},
		{
			Name:  "near branch",
			Build: func() (Instruction, error) { return With1(Call_rel32_64, Target(0x1234)) },
			Want:  "{Code: Call_rel32_64, Op0: NearBranch64 0x1234}",
		},
		{
			Name:  "far branch",
			Build: func() (Instruction, error) { return With1(Jmp_ptr1632, FarTarget{Selector: 0x8, Offset: 0x1000}) },
			Want:  "{Code: Jmp_ptr1632, Op0: FarBranch32 0x8:0x1000}",
		},
		{
			Name:  "memory offset",
			Build: func() (Instruction, error) { return With2(Mov_AL_moffs8, AL, MemoryOperand{Displacement: 0x1000, DisplSize: 8}) },
			Want:  "{Code: Mov_AL_moffs8, Op0: al, Op1: {Displacement: 0x1000, DisplSize: 8}}",
		},
		{
			Name: "decorators",
			Build: func() (Instruction, error) {
				dec := Decorators{OpMask: K1, Zeroing: true, Rounding: RoundUp}
				return WithDecorators(EVEX_Vaddps_zmm_k1z_zmm_zmmm512b32_er, dec, ZMM1, ZMM2, ZMM31)
			},
			Want: "{Code: EVEX_Vaddps_zmm_k1z_zmm_zmmm512b32_er, Op0: zmm1, Op1: zmm2, Op2: zmm31, OpMask: k1, Zeroing, Rounding: RoundUp}",
		},
		{
			Name: "broadcast",
			Build: func() (Instruction, error) {
				m := Mem(RAX, 4)
				m.Broadcast = true
				return With3(EVEX_Vcvtne2ps2bf16_zmm_k1z_zmm_zmmm512b32, ZMM2, ZMM6, m)
			},
			Want: "{Code: EVEX_Vcvtne2ps2bf16_zmm_k1z_zmm_zmmm512b32, Op0: zmm2, Op1: zmm6, Op2: {Base: rax, Displacement: 0x4, DisplSize: 1, Broadcast}, Broadcast}",
		},
		{
			Name: "VSIB",
			Build: func() (Instruction, error) {
				return WithDecorators(EVEX_Vgatherdps_xmm_k1_vm32x, Decorators{OpMask: K1}, XMM0, MemIndex(RAX, XMM1, 1, 0))
			},
			Want: "{Code: EVEX_Vgatherdps_xmm_k1_vm32x, Op0: xmm0, Op1: {Base: rax, Index: xmm1}, OpMask: k1}",
		},
		{
			Name:  "string instruction",
			Build: func() (Instruction, error) { return WithStosb(16, RepRepe) },
			Want:  "{Code: Stosb_m8_AL, Op0: MemoryESDI, Op1: al, Rep}",
		},
		{
			Name:  "string instruction with segment",
			Build: func() (Instruction, error) { return WithLodsb(64, GS, RepNone) },
			Want:  "{Code: Lodsb_AL_m8, Op0: al, Op1: MemorySegRSI, Segment: gs}",
		},
		{
			Name:  "xlat",
			Build: func() (Instruction, error) { return WithXlatb(32, RegisterNone) },
			Want:  "{Code: Xlat_m8, Op0: {Base: ebx, Index: al}}",
		},
		{
			Name:  "xbegin",
			Build: func() (Instruction, error) { return WithXbegin(64, 0x1000) },
			Want:  "{Code: Xbegin_rel32, Op0: NearBranch64 0x1000}",
		},
		{
			Name:  "declare bytes",
			Build: func() (Instruction, error) { return WithDeclareByte(0x90, 0xcc) },
			Want:  "{Code: DeclareByte, Data: 90 cc}",
		},
		{
			Name:  "declare words",
			Build: func() (Instruction, error) { return WithDeclareWord(0x1234) },
			Want:  "{Code: DeclareWord, Data: 34 12}",
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			inst, err := test.Build()
			if err != nil {
				t.Fatalf("failed to build: %v", err)
			}

			if got := inst.GoString(); got != test.Want {
				t.Fatalf("got:\n  %s\nwant:\n  %s", got, test.Want)
			}
		})
	}
}

func TestBuilderErrors(t *testing.T) {
	tests := []struct {
		Name    string
		Build   func() (Instruction, error)
		Reason  BuilderReason
		Operand int
	}{
		{
			Name:    "too many operands",
			Build:   func() (Instruction, error) { return With1(Nopd, RAX) },
			Reason:  ReasonWrongOperandCount,
			Operand: -1,
		},
		{
			Name:    "wrong register size",
			Build:   func() (Instruction, error) { return With2(Mov_r64_rm64, ECX, RDX) },
			Reason:  ReasonInvalidRegister,
			Operand: 0,
		},
		{
			Name:    "register for immediate",
			Build:   func() (Instruction, error) { return With2(Add_rm8_imm8, AL, BL) },
			Reason:  ReasonWrongOperandKind,
			Operand: 1,
		},
		{
			Name:    "immediate too large",
			Build:   func() (Instruction, error) { return With2(Add_rm8_imm8, AL, Imm(0x100)) },
			Reason:  ReasonImmediateOutOfRange,
			Operand: 1,
		},
		{
			Name:    "immediate changes when sign-extended",
			Build:   func() (Instruction, error) { return With2(Sub_rm32_imm8, EAX, Imm(0x80)) },
			Reason:  ReasonImmediateOutOfRange,
			Operand: 1,
		},
		{
			Name:    "bad scale",
			Build:   func() (Instruction, error) { return With2(Mov_r64_rm64, RAX, MemoryOperand{Base: RAX, Index: RCX, Scale: 3}) },
			Reason:  ReasonInvalidScale,
			Operand: 1,
		},
		{
			Name:    "bad displacement size",
			Build:   func() (Instruction, error) { return With2(Mov_r64_rm64, RAX, MemoryOperand{Base: RAX, DisplSize: 3}) },
			Reason:  ReasonInvalidDisplSize,
			Operand: 1,
		},
		{
			Name:    "immediate for branch",
			Build:   func() (Instruction, error) { return With1(Call_rel32_64, Imm(1)) },
			Reason:  ReasonWrongOperandKind,
			Operand: 0,
		},
		{
			Name:    "16-bit branch target",
			Build:   func() (Instruction, error) { return With1(Jmp_rel8_16, Target(0x10000)) },
			Reason:  ReasonImmediateOutOfRange,
			Operand: 0,
		},
		{
			Name:    "upper vector register in VEX",
			Build:   func() (Instruction, error) { return With3(VEX_Vaddps_xmm_xmm_xmmm128, XMM16, XMM1, XMM2) },
			Reason:  ReasonInvalidRegister,
			Operand: 0,
		},
		{
			Name:    "missing op mask",
			Build:   func() (Instruction, error) { return With2(EVEX_Vgatherdps_xmm_k1_vm32x, XMM0, MemIndex(RAX, XMM1, 1, 0)) },
			Reason:  ReasonInvalidDecorator,
			Operand: -1,
		},
		{
			Name:    "vector index without VSIB",
			Build:   func() (Instruction, error) { return With3(VEX_Vaddps_xmm_xmm_xmmm128, XMM0, XMM1, MemIndex(RAX, XMM1, 1, 0)) },
			Reason:  ReasonInvalidRegister,
			Operand: 2,
		},
		{
			Name: "zeroing without op mask",
			Build: func() (Instruction, error) {
				return WithDecorators(EVEX_Vaddps_zmm_k1z_zmm_zmmm512b32_er, Decorators{Zeroing: true}, ZMM1, ZMM2, ZMM3)
			},
			Reason:  ReasonInvalidDecorator,
			Operand: -1,
		},
		{
			Name: "rounding without support",
			Build: func() (Instruction, error) {
				return WithDecorators(EVEX_Vcvtne2ps2bf16_zmm_k1z_zmm_zmmm512b32, Decorators{Rounding: RoundDown}, ZMM1, ZMM2, ZMM3)
			},
			Reason:  ReasonInvalidDecorator,
			Operand: -1,
		},
		{
			Name: "broadcast without support",
			Build: func() (Instruction, error) {
				m := Mem(RAX, 0)
				m.Broadcast = true
				return With2(Mov_r64_rm64, RAX, m)
			},
			Reason:  ReasonInvalidDecorator,
			Operand: 1,
		},
		{
			Name:    "string address size",
			Build:   func() (Instruction, error) { return WithStosb(8, RepNone) },
			Reason:  ReasonBitnessRequired,
			Operand: -1,
		},
		{
			Name:    "string instruction without REPNE",
			Build:   func() (Instruction, error) { return WithStosb(64, RepRepne) },
			Reason:  ReasonInvalidDecorator,
			Operand: -1,
		},
		{
			Name:    "xbegin bitness",
			Build:   func() (Instruction, error) { return WithXbegin(8, 0) },
			Reason:  ReasonBitnessRequired,
			Operand: -1,
		},
		{
			Name:    "empty data",
			Build:   func() (Instruction, error) { return WithDeclareByte() },
			Reason:  ReasonWrongOperandCount,
			Operand: -1,
		},
		{
			Name:    "empty qwords",
			Build:   func() (Instruction, error) { return WithDeclareQword() },
			Reason:  ReasonWrongOperandCount,
			Operand: -1,
		},
		{
			Name:    "too many qwords",
			Build:   func() (Instruction, error) { return WithDeclareQword(1, 2, 3) },
			Reason:  ReasonDeclareDataTooLong,
			Operand: -1,
		},
		{
			Name:    "too much data",
			Build:   func() (Instruction, error) { return WithDeclareByte(bytes.Repeat([]byte{0}, 17)...) },
			Reason:  ReasonDeclareDataTooLong,
			Operand: -1,
		},
		{
			Name:    "data with the generic builder",
			Build:   func() (Instruction, error) { return With(DeclareByte) },
			Reason:  ReasonWrongOperandKind,
			Operand: -1,
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			inst, err := test.Build()
			if err == nil {
				t.Fatalf("unexpected success: %#v", &inst)
			}

			var berr *BuilderError
			if !errors.As(err, &berr) {
				t.Fatalf("got error %T (%v), want *BuilderError", err, err)
			}

			if berr.Reason != test.Reason || berr.Operand != test.Operand {
				t.Fatalf("got reason %q on operand %d (%v), want %q on operand %d", berr.Reason, berr.Operand, err, test.Reason, test.Operand)
			}

			if inst.Code() != Invalid {
				t.Fatalf("got instruction %#v with an error", &inst)
			}
		})
	}
}
