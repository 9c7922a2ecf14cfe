// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package decoder

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/arch/x86/x86asm"

	"firefly-os.dev/tools/x86dis/x86"
)

// summary holds the parts of a decoded
// instruction that the tests check.
type summary struct {
	Code     x86.Code
	Len      int
	Ops      []x86.OpKind
	Regs     []x86.Register
	Imms     []uint64
	Target   uint64
	Mem      *x86.MemoryOperand
	Segment  x86.Register
	OpMask   x86.Register
	Prefixes []string
	Rounding x86.RoundingControl
	Conv     x86.MvexRegMemConv
}

func summarise(inst *x86.Instruction) summary {
	s := summary{
		Code:     inst.Code(),
		Len:      inst.Len(),
		Target:   inst.NearBranchTarget(),
		Segment:  inst.SegmentPrefix(),
		OpMask:   inst.OpMask(),
		Rounding: inst.RoundingControl(),
		Conv:     inst.MvexRegMemConv(),
	}

	for n := 0; n < inst.OpCount(); n++ {
		kind := inst.OpKind(n)
		s.Ops = append(s.Ops, kind)
		reg := x86.RegisterNone
		if kind == x86.OpKindRegister {
			reg = inst.OpRegister(n)
		}

		s.Regs = append(s.Regs, reg)
		if kind.IsImmediate() {
			v, err := inst.Immediate(n)
			if err != nil {
				panic(err)
			}

			s.Imms = append(s.Imms, v)
		}

		if kind == x86.OpKindMemory && s.Mem == nil {
			mem := inst.MemoryOperand()
			mem.Segment = x86.RegisterNone
			s.Mem = &mem
		}
	}

	flags := []struct {
		name string
		on   bool
	}{
		{"lock", inst.HasLockPrefix()},
		{"rep", inst.HasRepePrefix()},
		{"repne", inst.HasRepnePrefix()},
		{"bnd", inst.HasBndPrefix()},
		{"notrack", inst.HasNotrackPrefix()},
		{"zeroing", inst.ZeroingMasking()},
		{"sae", inst.SuppressAllExceptions()},
		{"eh", inst.MvexEvictionHint()},
	}

	for _, flag := range flags {
		if flag.on {
			s.Prefixes = append(s.Prefixes, flag.name)
		}
	}

	return s
}

func decodeHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(strings.ReplaceAll(s, " ", ""))
	if err != nil {
		t.Fatalf("bad test hex %q: %v", s, err)
	}

	return b
}

func TestDecode(t *testing.T) {
	reg := x86.OpKindRegister
	mem := x86.OpKindMemory
	none := x86.RegisterNone
	tests := []struct {
		Name    string
		Bitness int
		Options Options
		Code    string
		Want    summary
		WantErr DecoderError
	}{
		{
			Name:    "EVEX broadcast with zeroing",
			Bitness: 64,
			Code:    "62 f2 4f dd 72 50 01",
			Want: summary{
				Code:     x86.EVEX_Vcvtne2ps2bf16_zmm_k1z_zmm_zmmm512b32,
				Len:      7,
				Ops:      []x86.OpKind{reg, reg, mem},
				Regs:     []x86.Register{x86.ZMM2, x86.ZMM6, none},
				Mem:      &x86.MemoryOperand{Base: x86.RAX, Scale: 1, Displacement: 4, DisplSize: 1, Broadcast: true},
				OpMask:   x86.K5,
				Prefixes: []string{"zeroing"},
			},
		},
		{
			Name:    "REX.W with displacement",
			Bitness: 64,
			Code:    "48 8b 8a a5 5a a5 5a",
			Want: summary{
				Code: x86.Mov_r64_rm64,
				Len:  7,
				Ops:  []x86.OpKind{reg, mem},
				Regs: []x86.Register{x86.RCX, none},
				Mem:  &x86.MemoryOperand{Base: x86.RDX, Scale: 1, Displacement: 0x5aa55aa5, DisplSize: 4},
			},
		},
		{
			Name:    "nop",
			Bitness: 32,
			Code:    "90",
			Want:    summary{Code: x86.Nopd, Len: 1},
		},
		{
			Name:    "relative call",
			Bitness: 64,
			Code:    "e8 00 00 00 00",
			Want: summary{
				Code:   x86.Call_rel32_64,
				Len:    5,
				Ops:    []x86.OpKind{x86.OpKindNearBranch64},
				Regs:   []x86.Register{none},
				Target: 5,
			},
		},
		{
			Name:    "rep stosb",
			Bitness: 16,
			Code:    "f3 aa",
			Want: summary{
				Code:     x86.Stosb_m8_AL,
				Len:      2,
				Ops:      []x86.OpKind{x86.OpKindMemoryESDI, reg},
				Regs:     []x86.Register{none, x86.AL},
				Prefixes: []string{"rep"},
			},
		},
		{
			Name:    "long nop",
			Bitness: 64,
			Code:    "0f 1f 84 00 00 00 00 00",
			Want: summary{
				Code: x86.Nop_rm32,
				Len:  8,
				Ops:  []x86.OpKind{mem},
				Regs: []x86.Register{none},
				Mem:  &x86.MemoryOperand{Base: x86.RAX, Index: x86.RAX, Scale: 1, DisplSize: 4},
			},
		},
		{
			Name:    "too many prefixes",
			Bitness: 64,
			Code:    strings.Repeat("66", 16),
			Want:    summary{Code: x86.Invalid, Len: 15},
			WantErr: ErrorInvalidInstruction,
		},
		{
			Name:    "truncated",
			Bitness: 64,
			Code:    "e8 00",
			Want:    summary{Code: x86.Invalid, Len: 2},
			WantErr: ErrorNoMoreBytes,
		},
		{
			Name:    "EVEX reserved bit",
			Bitness: 64,
			Code:    "62 fa 4f dd 72 50 01",
			Want:    summary{Code: x86.Invalid, Len: 5},
			WantErr: ErrorInvalidInstruction,
		},
		{
			Name:    "RIP-relative",
			Bitness: 64,
			Code:    "8b 05 10 00 00 00",
			Want: summary{
				Code: x86.Mov_r32_rm32,
				Len:  6,
				Ops:  []x86.OpKind{reg, mem},
				Regs: []x86.Register{x86.EAX, none},
				Mem:  &x86.MemoryOperand{Base: x86.RIP, Scale: 1, Displacement: 0x16, DisplSize: 4},
			},
		},
		{
			Name:    "EIP-relative",
			Bitness: 64,
			Code:    "67 8b 05 10 00 00 00",
			Want: summary{
				Code: x86.Mov_r32_rm32,
				Len:  7,
				Ops:  []x86.OpKind{reg, mem},
				Regs: []x86.Register{x86.EAX, none},
				Mem:  &x86.MemoryOperand{Base: x86.EIP, Scale: 1, Displacement: 0x17, DisplSize: 4},
			},
		},
		{
			Name:    "absolute address",
			Bitness: 32,
			Code:    "8b 05 10 00 00 00",
			Want: summary{
				Code: x86.Mov_r32_rm32,
				Len:  6,
				Ops:  []x86.OpKind{reg, mem},
				Regs: []x86.Register{x86.EAX, none},
				Mem:  &x86.MemoryOperand{Scale: 1, Displacement: 0x10, DisplSize: 4},
			},
		},
		{
			Name:    "byte register with REX",
			Bitness: 64,
			Code:    "40 8a c4",
			Want: summary{
				Code: x86.Mov_r8_rm8,
				Len:  3,
				Ops:  []x86.OpKind{reg, reg},
				Regs: []x86.Register{x86.AL, x86.SPL},
			},
		},
		{
			Name:    "byte register without REX",
			Bitness: 64,
			Code:    "8a c4",
			Want: summary{
				Code: x86.Mov_r8_rm8,
				Len:  2,
				Ops:  []x86.OpKind{reg, reg},
				Regs: []x86.Register{x86.AL, x86.AH},
			},
		},
		{
			Name:    "REX before a prefix is ignored",
			Bitness: 64,
			Code:    "48 66 8b c1",
			Want: summary{
				Code: x86.Mov_r16_rm16,
				Len:  4,
				Ops:  []x86.OpKind{reg, reg},
				Regs: []x86.Register{x86.AX, x86.CX},
			},
		},
		{
			Name:    "pause",
			Bitness: 64,
			Code:    "f3 90",
			Want:    summary{Code: x86.Pause, Len: 2},
		},
		{
			Name:    "pause as nop",
			Bitness: 64,
			Options: NoPause,
			Code:    "f3 90",
			Want:    summary{Code: x86.Nopd, Len: 2, Prefixes: []string{"rep"}},
		},
		{
			Name:    "lock on register",
			Bitness: 64,
			Code:    "f0 01 c0",
			Want:    summary{Code: x86.Invalid, Len: 3},
			WantErr: ErrorInvalidInstruction,
		},
		{
			Name:    "lock on register unchecked",
			Bitness: 64,
			Options: NoInvalidCheck,
			Code:    "f0 01 c0",
			Want: summary{
				Code:     x86.Add_rm32_r32,
				Len:      3,
				Ops:      []x86.OpKind{reg, reg},
				Regs:     []x86.Register{x86.EAX, x86.EAX},
				Prefixes: []string{"lock"},
			},
		},
		{
			Name:    "lock on memory",
			Bitness: 64,
			Code:    "f0 01 00",
			Want: summary{
				Code:     x86.Add_rm32_r32,
				Len:      3,
				Ops:      []x86.OpKind{mem, reg},
				Regs:     []x86.Register{none, x86.EAX},
				Mem:      &x86.MemoryOperand{Base: x86.RAX, Scale: 1},
				Prefixes: []string{"lock"},
			},
		},
		{
			Name:    "sign-extended immediate",
			Bitness: 64,
			Code:    "83 e8 ff",
			Want: summary{
				Code: x86.Sub_rm32_imm8,
				Len:  3,
				Ops:  []x86.OpKind{reg, x86.OpKindImmediate8to32},
				Regs: []x86.Register{x86.EAX, none},
				Imms: []uint64{0xffff_ffff_ffff_ffff},
			},
		},
		{
			Name:    "16-bit branch wraps",
			Bitness: 16,
			Code:    "eb fe",
			Want: summary{
				Code:   x86.Jmp_rel8_16,
				Len:    2,
				Ops:    []x86.OpKind{x86.OpKindNearBranch16},
				Regs:   []x86.Register{none},
				Target: 0,
			},
		},
		{
			Name:    "FS is kept in 64-bit mode",
			Bitness: 64,
			Code:    "64 26 8b 00",
			Want: summary{
				Code:    x86.Mov_r32_rm32,
				Len:     4,
				Ops:     []x86.OpKind{reg, mem},
				Regs:    []x86.Register{x86.EAX, none},
				Mem:     &x86.MemoryOperand{Base: x86.RAX, Scale: 1},
				Segment: x86.FS,
			},
		},
		{
			Name:    "last segment wins in 32-bit mode",
			Bitness: 32,
			Code:    "64 26 8b 00",
			Want: summary{
				Code:    x86.Mov_r32_rm32,
				Len:     4,
				Ops:     []x86.OpKind{reg, mem},
				Regs:    []x86.Register{x86.EAX, none},
				Mem:     &x86.MemoryOperand{Base: x86.EAX, Scale: 1},
				Segment: x86.ES,
			},
		},
		{
			Name:    "3DNow!",
			Bitness: 64,
			Code:    "0f 0f c1 b4",
			Want:    summary{Code: x86.Invalid, Len: 2},
			WantErr: ErrorInvalidInstruction,
		},
		{
			Name:    "MPX",
			Bitness: 64,
			Options: MPX,
			Code:    "f3 0f 1b 00",
			Want: summary{
				Code: x86.Bndmk_bnd_m64,
				Len:  4,
				Ops:  []x86.OpKind{reg, mem},
				Regs: []x86.Register{x86.BND0, none},
				Mem:  &x86.MemoryOperand{Base: x86.RAX, Scale: 1},
			},
		},
		{
			Name:    "prefetch",
			Bitness: 64,
			Code:    "0f 18 00",
			Want: summary{
				Code: x86.Prefetchnta_m8,
				Len:  3,
				Ops:  []x86.OpKind{mem},
				Regs: []x86.Register{none},
				Mem:  &x86.MemoryOperand{Base: x86.RAX, Scale: 1},
			},
		},
		{
			Name:    "reserved nop",
			Bitness: 64,
			Options: ForceReservedNop,
			Code:    "0f 18 00",
			Want: summary{
				Code: x86.Reservednop_rm32_r32_0F18,
				Len:  3,
				Ops:  []x86.OpKind{mem, reg},
				Regs: []x86.Register{none, x86.EAX},
				Mem:  &x86.MemoryOperand{Base: x86.RAX, Scale: 1},
			},
		},
		{
			Name:    "second immediate",
			Bitness: 64,
			Code:    "c8 10 00 02",
			Want: summary{
				Code: x86.Enterq_imm16_imm8,
				Len:  4,
				Ops:  []x86.OpKind{x86.OpKindImmediate16, x86.OpKindImmediate8_2nd},
				Regs: []x86.Register{none, none},
				Imms: []uint64{0x10, 2},
			},
		},
		{
			Name:    "16-bit addressing",
			Bitness: 16,
			Code:    "8b 42 fe",
			Want: summary{
				Code: x86.Mov_r16_rm16,
				Len:  3,
				Ops:  []x86.OpKind{reg, mem},
				Regs: []x86.Register{x86.AX, none},
				Mem:  &x86.MemoryOperand{Base: x86.BP, Index: x86.SI, Scale: 1, Displacement: 0xfffe, DisplSize: 1},
			},
		},
		{
			Name:    "x87 stack register",
			Bitness: 32,
			Code:    "d8 c3",
			Want: summary{
				Code: x86.Fadd_st0_sti,
				Len:  2,
				Ops:  []x86.OpKind{reg, reg},
				Regs: []x86.Register{x86.ST0, x86.ST3},
			},
		},
		{
			Name:    "VEX",
			Bitness: 64,
			Code:    "c5 f0 58 c2",
			Want: summary{
				Code: x86.VEX_Vaddps_xmm_xmm_xmmm128,
				Len:  4,
				Ops:  []x86.OpKind{reg, reg, reg},
				Regs: []x86.Register{x86.XMM0, x86.XMM1, x86.XMM2},
			},
		},
		{
			Name:    "VEX in 32-bit mode",
			Bitness: 32,
			Code:    "c5 f0 58 c2",
			Want: summary{
				Code: x86.VEX_Vaddps_xmm_xmm_xmmm128,
				Len:  4,
				Ops:  []x86.OpKind{reg, reg, reg},
				Regs: []x86.Register{x86.XMM0, x86.XMM1, x86.XMM2},
			},
		},
		{
			Name:    "VEX after 66",
			Bitness: 64,
			Code:    "66 c5 f0 58 c2",
			Want:    summary{Code: x86.Invalid, Len: 4},
			WantErr: ErrorInvalidInstruction,
		},
		{
			Name:    "VEX is4 register",
			Bitness: 64,
			Code:    "c4 e3 71 4a c2 30",
			Want: summary{
				Code: x86.VEX_Vblendvps_xmm_xmm_xmmm128_xmm,
				Len:  6,
				Ops:  []x86.OpKind{reg, reg, reg, reg},
				Regs: []x86.Register{x86.XMM0, x86.XMM1, x86.XMM2, x86.XMM3},
			},
		},
		{
			Name:    "XOP is4 register",
			Bitness: 64,
			Code:    "8f e8 70 a2 c2 30",
			Want: summary{
				Code: x86.XOP_Vpcmov_xmm_xmm_xmmm128_xmm,
				Len:  6,
				Ops:  []x86.OpKind{reg, reg, reg, reg},
				Regs: []x86.Register{x86.XMM0, x86.XMM1, x86.XMM2, x86.XMM3},
			},
		},
		{
			Name:    "XOP immediate",
			Bitness: 64,
			Code:    "8f e8 78 c0 c1 05",
			Want: summary{
				Code: x86.XOP_Vprotb_xmm_xmmm128_imm8,
				Len:  6,
				Ops:  []x86.OpKind{reg, reg, x86.OpKindImmediate8},
				Regs: []x86.Register{x86.XMM0, x86.XMM1, none},
				Imms: []uint64{5},
			},
		},
		{
			Name:    "XOP unused vvvv",
			Bitness: 64,
			Code:    "8f e8 70 c0 c1 05",
			Want:    summary{Code: x86.Invalid, Len: 6},
			WantErr: ErrorInvalidInstruction,
		},
		{
			Name:    "POP is not XOP",
			Bitness: 64,
			Code:    "8f 00",
			Want: summary{
				Code: x86.Pop_rm64,
				Len:  2,
				Ops:  []x86.OpKind{mem},
				Regs: []x86.Register{none},
				Mem:  &x86.MemoryOperand{Base: x86.RAX, Scale: 1},
			},
		},
		{
			Name:    "EVEX rounding",
			Bitness: 64,
			Code:    "62 f1 7c 18 58 c2",
			Want: summary{
				Code:     x86.EVEX_Vaddps_zmm_k1z_zmm_zmmm512b32_er,
				Len:      6,
				Ops:      []x86.OpKind{reg, reg, reg},
				Regs:     []x86.Register{x86.ZMM0, x86.ZMM0, x86.ZMM2},
				Rounding: x86.RoundToNearest,
			},
		},
		{
			Name:    "EVEX rounding toward zero",
			Bitness: 64,
			Code:    "62 f1 7c 78 58 c2",
			Want: summary{
				Code:     x86.EVEX_Vaddps_zmm_k1z_zmm_zmmm512b32_er,
				Len:      6,
				Ops:      []x86.OpKind{reg, reg, reg},
				Regs:     []x86.Register{x86.ZMM0, x86.ZMM0, x86.ZMM2},
				Rounding: x86.RoundTowardZero,
			},
		},
		{
			Name:    "EVEX vector length 3",
			Bitness: 64,
			Code:    "62 f1 7c 68 58 c2",
			Want:    summary{Code: x86.Invalid, Len: 6},
			WantErr: ErrorInvalidInstruction,
		},
		{
			Name:    "EVEX zeroing without opmask",
			Bitness: 64,
			Code:    "62 f1 7c 88 58 c2",
			Want:    summary{Code: x86.Invalid, Len: 6},
			WantErr: ErrorInvalidInstruction,
		},
		{
			Name:    "LDS in 16-bit mode",
			Bitness: 16,
			Code:    "c5 07",
			Want: summary{
				Code: x86.Lds_r16_m1616,
				Len:  2,
				Ops:  []x86.OpKind{reg, mem},
				Regs: []x86.Register{x86.AX, none},
				Mem:  &x86.MemoryOperand{Base: x86.BX, Scale: 1},
			},
		},
		{
			Name:    "LES in 16-bit mode",
			Bitness: 16,
			Code:    "c4 5e 02",
			Want: summary{
				Code: x86.Les_r16_m1616,
				Len:  3,
				Ops:  []x86.OpKind{reg, mem},
				Regs: []x86.Register{x86.BX, none},
				Mem:  &x86.MemoryOperand{Base: x86.BP, Scale: 1, Displacement: 2, DisplSize: 1},
			},
		},
		{
			Name:    "BOUND in 16-bit mode",
			Bitness: 16,
			Code:    "62 00",
			Want: summary{
				Code: x86.Bound_r16_m1616,
				Len:  2,
				Ops:  []x86.OpKind{reg, mem},
				Regs: []x86.Register{x86.AX, none},
				Mem:  &x86.MemoryOperand{Base: x86.BX, Index: x86.SI, Scale: 1},
			},
		},
		{
			Name:    "LDS in 32-bit mode",
			Bitness: 32,
			Code:    "c5 07",
			Want: summary{
				Code: x86.Lds_r32_m1632,
				Len:  2,
				Ops:  []x86.OpKind{reg, mem},
				Regs: []x86.Register{x86.EAX, none},
				Mem:  &x86.MemoryOperand{Base: x86.EDI, Scale: 1},
			},
		},
		{
			Name:    "66 near call ignored",
			Bitness: 64,
			Code:    "66 e8 00 00 00 00",
			Want: summary{
				Code:   x86.Call_rel32_64,
				Len:    6,
				Ops:    []x86.OpKind{x86.OpKindNearBranch64},
				Regs:   []x86.Register{none},
				Target: 6,
			},
		},
		{
			Name:    "66 near call on AMD",
			Bitness: 64,
			Options: AMD,
			Code:    "66 e8 00 00",
			Want: summary{
				Code:   x86.Call_rel16,
				Len:    4,
				Ops:    []x86.OpKind{x86.OpKindNearBranch16},
				Regs:   []x86.Register{none},
				Target: 4,
			},
		},
		{
			Name:    "EVEX zeroing without opmask unchecked",
			Bitness: 64,
			Options: NoInvalidCheck,
			Code:    "62 f1 7c c8 58 c2",
			Want: summary{
				Code:     x86.EVEX_Vaddps_zmm_k1z_zmm_zmmm512b32_er,
				Len:      6,
				Ops:      []x86.OpKind{reg, reg, reg},
				Regs:     []x86.Register{x86.ZMM0, x86.ZMM0, x86.ZMM2},
				Prefixes: []string{"zeroing"},
			},
		},
		{
			Name:    "CRC32 with F2",
			Bitness: 64,
			Code:    "f2 0f 38 f0 00",
			Want: summary{
				Code: x86.Crc32_r32_rm8,
				Len:  5,
				Ops:  []x86.OpKind{reg, mem},
				Regs: []x86.Register{x86.EAX, none},
				Mem:  &x86.MemoryOperand{Base: x86.RAX, Scale: 1},
			},
		},
		{
			Name:    "MOVBE without F2",
			Bitness: 64,
			Code:    "0f 38 f0 00",
			Want: summary{
				Code: x86.Movbe_r32_m32,
				Len:  4,
				Ops:  []x86.OpKind{reg, mem},
				Regs: []x86.Register{x86.EAX, none},
				Mem:  &x86.MemoryOperand{Base: x86.RAX, Scale: 1},
			},
		},
		{
			Name:    "RDPID with REX.W",
			Bitness: 64,
			Code:    "f3 48 0f c7 f8",
			Want: summary{
				Code: x86.Rdpid_r64,
				Len:  5,
				Ops:  []x86.OpKind{reg},
				Regs: []x86.Register{x86.RAX},
			},
		},
		{
			Name:    "UMOV replaces MOVLPS",
			Bitness: 32,
			Options: Umov,
			Code:    "0f 12 00",
			Want: summary{
				Code: x86.Umov_r8_rm8,
				Len:  3,
				Ops:  []x86.OpKind{reg, mem},
				Regs: []x86.Register{x86.AL, none},
				Mem:  &x86.MemoryOperand{Base: x86.EAX, Scale: 1},
			},
		},
		{
			Name:    "CMPXCHG486 replaces IBTS",
			Bitness: 32,
			Options: Xbts | Cmpxchg486A,
			Code:    "0f a7 00",
			Want: summary{
				Code: x86.Cmpxchg486_rm32_r32,
				Len:  3,
				Ops:  []x86.OpKind{mem, reg},
				Regs: []x86.Register{none, x86.EAX},
				Mem:  &x86.MemoryOperand{Base: x86.EAX, Scale: 1},
			},
		},
		{
			Name:    "prefetch with REX.W",
			Bitness: 64,
			Code:    "48 0f 18 00",
			Want: summary{
				Code: x86.Prefetchnta_m8,
				Len:  4,
				Ops:  []x86.OpKind{mem},
				Regs: []x86.Register{none},
				Mem:  &x86.MemoryOperand{Base: x86.RAX, Scale: 1},
			},
		},
		{
			Name:    "SSE4.1 immediate",
			Bitness: 64,
			Code:    "66 0f 3a 0e c1 05",
			Want: summary{
				Code: x86.Pblendw_xmm_xmmm128_imm8,
				Len:  6,
				Ops:  []x86.OpKind{reg, reg, x86.OpKindImmediate8},
				Regs: []x86.Register{x86.XMM0, x86.XMM1, none},
				Imms: []uint64{5},
			},
		},
		{
			Name:    "SSE4.1 sign extension",
			Bitness: 64,
			Code:    "66 0f 38 20 c1",
			Want: summary{
				Code: x86.Pmovsxbw_xmm_xmmm64,
				Len:  5,
				Ops:  []x86.OpKind{reg, reg},
				Regs: []x86.Register{x86.XMM0, x86.XMM1},
			},
		},
		{
			Name:    "SSE4.2 compare",
			Bitness: 32,
			Code:    "66 0f 38 37 c1",
			Want: summary{
				Code: x86.Pcmpgtq_xmm_xmmm128,
				Len:  5,
				Ops:  []x86.OpKind{reg, reg},
				Regs: []x86.Register{x86.XMM0, x86.XMM1},
			},
		},
		{
			Name:    "AES round",
			Bitness: 64,
			Code:    "66 0f 38 dc c1",
			Want: summary{
				Code: x86.Aesenc_xmm_xmmm128,
				Len:  5,
				Ops:  []x86.OpKind{reg, reg},
				Regs: []x86.Register{x86.XMM0, x86.XMM1},
			},
		},
		{
			Name:    "SSSE3 MMX form",
			Bitness: 64,
			Code:    "0f 38 0b c1",
			Want: summary{
				Code: x86.Pmulhrsw_mm_mmm64,
				Len:  4,
				Ops:  []x86.OpKind{reg, reg},
				Regs: []x86.Register{x86.MM0, x86.MM1},
			},
		},
		{
			Name:    "INVPCID",
			Bitness: 64,
			Code:    "66 0f 38 82 08",
			Want: summary{
				Code: x86.Invpcid_r64_m128,
				Len:  5,
				Ops:  []x86.OpKind{reg, mem},
				Regs: []x86.Register{x86.RCX, none},
				Mem:  &x86.MemoryOperand{Base: x86.RAX, Scale: 1},
			},
		},
		{
			Name:    "INVPCID register operand",
			Bitness: 64,
			Code:    "66 0f 38 82 c8",
			Want:    summary{Code: x86.Invalid, Len: 5},
			WantErr: ErrorInvalidInstruction,
		},
		{
			Name:    "VEX carry-less multiply",
			Bitness: 64,
			Code:    "c4 e3 71 44 c2 05",
			Want: summary{
				Code: x86.VEX_Vpclmulqdq_xmm_xmm_xmmm128_imm8,
				Len:  6,
				Ops:  []x86.OpKind{reg, reg, reg, x86.OpKindImmediate8},
				Regs: []x86.Register{x86.XMM0, x86.XMM1, x86.XMM2, none},
				Imms: []uint64{5},
			},
		},
		{
			Name:    "VEX zero extension",
			Bitness: 64,
			Code:    "c4 e2 7d 30 c1",
			Want: summary{
				Code: x86.VEX_Vpmovzxbw_ymm_xmmm128,
				Len:  5,
				Ops:  []x86.OpKind{reg, reg},
				Regs: []x86.Register{x86.YMM0, x86.XMM1},
			},
		},
		{
			Name:    "EVEX integer minimum",
			Bitness: 64,
			Code:    "62 f2 75 48 39 c2",
			Want: summary{
				Code: x86.EVEX_Vpminsd_zmm_k1z_zmm_zmmm512b32,
				Len:  6,
				Ops:  []x86.OpKind{reg, reg, reg},
				Regs: []x86.Register{x86.ZMM0, x86.ZMM1, x86.ZMM2},
			},
		},
		{
			Name:    "EVEX compare into mask",
			Bitness: 64,
			Code:    "62 f2 f5 49 29 c2",
			Want: summary{
				Code:   x86.EVEX_Vpcmpeqq_kr_k1_zmm_zmmm512b64,
				Len:    6,
				Ops:    []x86.OpKind{reg, reg, reg},
				Regs:   []x86.Register{x86.K0, x86.ZMM1, x86.ZMM2},
				OpMask: x86.K1,
			},
		},
		{
			Name:    "EVEX VSIB",
			Bitness: 64,
			Code:    "62 f2 7d 09 92 04 08",
			Want: summary{
				Code:   x86.EVEX_Vgatherdps_xmm_k1_vm32x,
				Len:    7,
				Ops:    []x86.OpKind{reg, mem},
				Regs:   []x86.Register{x86.XMM0, none},
				Mem:    &x86.MemoryOperand{Base: x86.RAX, Index: x86.XMM1, Scale: 1},
				OpMask: x86.K1,
			},
		},
		{
			Name:    "EVEX VSIB without opmask",
			Bitness: 64,
			Code:    "62 f2 7d 08 92 04 08",
			Want:    summary{Code: x86.Invalid, Len: 7},
			WantErr: ErrorInvalidInstruction,
		},
		{
			Name:    "MVEX",
			Bitness: 64,
			Options: KNC,
			Code:    "62 f1 70 08 58 c2",
			Want: summary{
				Code: x86.MVEX_Vaddps_zmm_k1_zmm_zmmmt,
				Len:  6,
				Ops:  []x86.OpKind{reg, reg, reg},
				Regs: []x86.Register{x86.ZMM0, x86.ZMM1, x86.ZMM2},
				Conv: x86.MvexRegSwizzleNone,
			},
		},
		{
			Name:    "MVEX without KNC",
			Bitness: 64,
			Code:    "62 f1 70 08 58 c2",
			Want:    summary{Code: x86.Invalid, Len: 5},
			WantErr: ErrorInvalidInstruction,
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			code := decodeHex(t, test.Code)
			d, err := New(test.Bitness, code, test.Options)
			if err != nil {
				t.Fatalf("New(): %v", err)
			}

			inst := d.Decode()
			got := summarise(&inst)
			if diff := cmp.Diff(test.Want, got); diff != "" {
				t.Fatalf("Decode(): (-want, +got)\n%s", diff)
			}

			if err := d.LastError(); err != test.WantErr {
				t.Fatalf("LastError(): got %v, want %v", err, test.WantErr)
			}

			if got := d.Position(); got != test.Want.Len {
				t.Fatalf("Position(): got %d, want %d", got, test.Want.Len)
			}

			if inst.NextIP() != uint64(test.Want.Len) {
				t.Fatalf("NextIP(): got %#x, want %#x", inst.NextIP(), test.Want.Len)
			}
		})
	}
}

func TestInstructions(t *testing.T) {
	// A mix of valid, invalid and
	// truncated instructions.
	code := []byte{
		0x90,
		0x48, 0x8b, 0x8a, 0xa5, 0x5a, 0xa5, 0x5a,
		0xf0, 0x01, 0xc0,
		0x62, 0xf2, 0x4f, 0xdd, 0x72, 0x50, 0x01,
		0x0f, 0x0f,
		0xc3,
		0xe8, 0x00,
	}

	const base = 0xffff_8000_0000_1000
	d, err := New(64, code, 0)
	if err != nil {
		t.Fatal(err)
	}

	d.SetIP(base)
	var got []x86.Code
	ip := uint64(base)
	total := 0
	for inst := range d.Instructions() {
		if inst.Len() < 1 || inst.Len() > x86.MaxInstructionLength {
			t.Fatalf("instruction at %#x has length %d", inst.IP(), inst.Len())
		}

		if inst.IP() != ip {
			t.Fatalf("instruction %d has IP %#x, want %#x", len(got), inst.IP(), ip)
		}

		if inst.NextIP() != inst.IP()+uint64(inst.Len()) {
			t.Fatalf("instruction at %#x has next IP %#x and length %d", inst.IP(), inst.NextIP(), inst.Len())
		}

		ip = inst.NextIP()
		total += inst.Len()
		got = append(got, inst.Code())
	}

	want := []x86.Code{
		x86.Nopd,
		x86.Mov_r64_rm64,
		x86.Invalid,
		x86.EVEX_Vcvtne2ps2bf16_zmm_k1z_zmm_zmmm512b32,
		x86.Invalid,
		x86.Retnq,
		x86.Invalid,
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Instructions(): (-want, +got)\n%s", diff)
	}

	if total != len(code) {
		t.Fatalf("decoded %d bytes, want %d", total, len(code))
	}

	if d.CanDecode() {
		t.Fatalf("CanDecode(): got true after the end of the input")
	}

	if err := d.LastError(); err != ErrorNoMoreBytes {
		t.Fatalf("LastError(): got %v, want %v", err, ErrorNoMoreBytes)
	}
}

func TestInstructionsStop(t *testing.T) {
	d, err := New(32, []byte{0x90, 0x90, 0x90}, 0)
	if err != nil {
		t.Fatal(err)
	}

	for range d.Instructions() {
		break
	}

	if got := d.Position(); got != 1 {
		t.Fatalf("Position(): got %d, want 1", got)
	}
}

func TestDecodeOut(t *testing.T) {
	d, err := New(64, decodeHex(t, "48 8b 8a a5 5a a5 5a 90"), 0)
	if err != nil {
		t.Fatal(err)
	}

	// Decoding into an instruction replaces
	// every field.
	var inst x86.Instruction
	d.DecodeOut(&inst)
	d.DecodeOut(&inst)
	want := summary{Code: x86.Nopd, Len: 1}
	if diff := cmp.Diff(want, summarise(&inst)); diff != "" {
		t.Fatalf("DecodeOut(): (-want, +got)\n%s", diff)
	}

	if inst.MemoryBase() != x86.RegisterNone || inst.MemoryDisplacement64() != 0 {
		t.Fatalf("DecodeOut(): left memory operand %s", inst.MemoryOperand().GoString())
	}

	if inst.IP() != 7 {
		t.Fatalf("IP(): got %#x, want 0x7", inst.IP())
	}
}

func TestNew(t *testing.T) {
	for _, bitness := range []int{0, 8, 63, 128} {
		_, err := New(bitness, nil, 0)
		if err == nil {
			t.Errorf("New(%d): unexpected success", bitness)
		}
	}

	d, err := New(16, []byte{0x90}, NoInvalidCheck|AMD)
	if err != nil {
		t.Fatal(err)
	}

	if d.Bitness() != 16 {
		t.Errorf("Bitness(): got %d, want 16", d.Bitness())
	}

	if d.Options() != NoInvalidCheck|AMD {
		t.Errorf("Options(): got %v, want %v", d.Options(), NoInvalidCheck|AMD)
	}
}

func TestSetPosition(t *testing.T) {
	code := decodeHex(t, "90 e8 00 00 00 00 c3")
	d, err := New(64, code, 0)
	if err != nil {
		t.Fatal(err)
	}

	if err := d.SetPosition(-1); err == nil {
		t.Fatalf("SetPosition(-1): unexpected success")
	}

	if err := d.SetPosition(len(code) + 1); err == nil {
		t.Fatalf("SetPosition(%d): unexpected success", len(code)+1)
	}

	if err := d.SetPosition(1); err != nil {
		t.Fatalf("SetPosition(1): %v", err)
	}

	d.SetIP(0x1000)
	inst := d.Decode()
	if inst.Code() != x86.Call_rel32_64 {
		t.Fatalf("Decode(): got %v, want %v", inst.Code(), x86.Call_rel32_64)
	}

	if got := inst.NearBranchTarget(); got != 0x1005 {
		t.Fatalf("NearBranchTarget(): got %#x, want 0x1005", got)
	}

	if err := d.SetPosition(len(code)); err != nil {
		t.Fatalf("SetPosition(%d): %v", len(code), err)
	}

	if d.CanDecode() {
		t.Fatalf("CanDecode(): got true at the end of the input")
	}
}

// TestLengths checks the lengths of common
// instructions against x86asm.
func TestLengths(t *testing.T) {
	tests := []struct {
		Name string
		Code string
	}{
		{Name: "mov", Code: "48 89 c8"},
		{Name: "ret", Code: "c3"},
		{Name: "lea", Code: "48 8d 05 00 00 00 00"},
		{Name: "movzx", Code: "0f b6 c0"},
		{Name: "push", Code: "50"},
		{Name: "pop", Code: "5d"},
		{Name: "jmp", Code: "e9 00 00 00 00"},
		{Name: "operand size", Code: "66 89 c8"},
		{Name: "xor", Code: "31 c0"},
		{Name: "test", Code: "85 c0"},
		{Name: "imul", Code: "48 0f af c1"},
		{Name: "mov immediate", Code: "c7 40 08 00 00 00 00"},
		{Name: "syscall", Code: "0f 05"},
		{Name: "cpuid", Code: "0f a2"},
		{Name: "je", Code: "0f 84 00 00 00 00"},
		{Name: "sib", Code: "8b 44 8d 10"},
		{Name: "movabs", Code: "48 b8 88 77 66 55 44 33 22 11"},
		{Name: "moffs", Code: "a0 00 00 00 00 00 00 00 00"},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			code := decodeHex(t, test.Code)
			want, err := x86asm.Decode(code, 64)
			if err != nil {
				t.Fatalf("x86asm.Decode(): %v", err)
			}

			d, err := New(64, code, 0)
			if err != nil {
				t.Fatal(err)
			}

			inst := d.Decode()
			if inst.IsInvalid() {
				t.Fatalf("Decode(): got invalid instruction (%v)", d.LastError())
			}

			if inst.Len() != want.Len {
				t.Fatalf("Decode(): got length %d, want %d (%v)", inst.Len(), want.Len, want)
			}
		})
	}
}
