// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import (
	"strconv"
	"testing"
)

func TestCodeTables(t *testing.T) {
	names := make(map[string]Code)
	for i := 0; i < NumCodes; i++ {
		code := Code(i)
		name := code.String()
		if other, ok := names[name]; ok {
			t.Errorf("codes %d and %d are both named %q", other, code, name)
		}

		names[name] = code
		if code.Mnemonic() == "" {
			t.Errorf("%s: no mnemonic", code)
		}

		if code.OpCount() > MaxOperands {
			t.Errorf("%s: %d operands", code, code.OpCount())
		}

		op := code.OpCode()
		if op == nil {
			t.Errorf("%s: no instruction form", code)
			continue
		}

		if code == Invalid || code.IsDeclareData() {
			continue
		}

		for n := 0; n < code.OpCount(); n++ {
			kind := code.OpCodeOperandKind(n)
			switch kind.Encoding() {
			case EncodingModRMreg, EncodingModRMrm:
				if !op.ModRM {
					t.Errorf("%s: operand %d (%s) needs a ModR/M byte, but %q has none", code, n, kind, op.Syntax)
				}
			case EncodingVEXvvvv:
				if op.Encoding == EncodingLegacy {
					t.Errorf("%s: operand %d (%s) needs VEX.vvvv, but %q has none", code, n, kind, op.Syntax)
				}
			case EncodingRegisterModifier:
				if !op.RegisterModifier {
					t.Errorf("%s: operand %d (%s) needs an opcode register, but %q has none", code, n, kind, op.Syntax)
				}
			case EncodingVEXis4:
				if !op.Is4 && kind != Op_imm4_m2z {
					t.Errorf("%s: operand %d (%s) needs /is4, but %q has none", code, n, kind, op.Syntax)
				}
			}

			if _, vsib := kind.IsVSIB(); vsib && !op.VSIB {
				t.Errorf("%s: operand %d (%s) needs /vsib, but %q has none", code, n, kind, op.Syntax)
			}
		}

		if code.CanBroadcast() && !code.BroadcastMemorySize().IsBroadcast() {
			t.Errorf("%s: broadcast memory size %s is not a broadcast", code, code.BroadcastMemorySize())
		}

		if code.CanZeroMask() && !code.CanOpMask() {
			t.Errorf("%s: zeroing masking without an op mask", code)
		}

		if code.RequiresOpMask() && !code.CanOpMask() {
			t.Errorf("%s: requires an op mask it cannot have", code)
		}
	}
}

func TestCodeInfo(t *testing.T) {
	tests := []struct {
		Name  string
		Check bool
	}{
		{Name: "add locks", Check: Add_rm32_r32.CanLock()},
		{Name: "mov does not lock", Check: !Mov_r32_rm32.CanLock()},
		{Name: "stosb is a string", Check: Stosb_m8_AL.IsString() && Stosb_m8_AL.CanRep()},
		{Name: "call", Check: Call_rel32_64.IsCall() && Call_rel32_64.IsBranch()},
		{Name: "far jump", Check: Jmp_ptr1632.IsJmp() && Jmp_ptr1632.IsFar()},
		{Name: "ret", Check: Retnq.IsRet()},
		{Name: "fadd", Check: Fadd_st0_sti.IsFpu()},
		{Name: "rounding", Check: EVEX_Vaddps_zmm_k1z_zmm_zmmm512b32_er.CanRound() && EVEX_Vaddps_zmm_k1z_zmm_zmmm512b32_er.CanSuppressAllExceptions()},
		{Name: "no rounding", Check: !EVEX_Vaddps_xmm_k1z_xmm_xmmm128b32.CanRound()},
		{Name: "gather needs a mask", Check: EVEX_Vgatherdps_xmm_k1_vm32x.RequiresOpMask()},
		{Name: "broadcast", Check: EVEX_Vcvtne2ps2bf16_zmm_k1z_zmm_zmmm512b32.CanBroadcast()},
		{Name: "tuple type", Check: EVEX_Vcvtne2ps2bf16_zmm_k1z_zmm_zmmm512b32.TupleType() == TupleFull},
		{Name: "data", Check: DeclareByte.IsDeclareData() && DeclareByte.OpCount() == 0},
		{Name: "mnemonic", Check: Mov_r64_rm64.Mnemonic() == "mov" && Retnq.Mnemonic() == "ret"},
		{Name: "encoding", Check: MVEX_Vaddps_zmm_k1_zmm_zmmmt.Encoding() == EncodingMVEX},
		{Name: "out of range", Check: Code(NumCodes).String() == "Code("+strconv.Itoa(NumCodes)+")"},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			if !test.Check {
				t.Fail()
			}
		})
	}
}
