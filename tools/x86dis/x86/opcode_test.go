// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseOpCode(t *testing.T) {
	tests := []struct {
		Name string
		Text string
		Want *OpCode
	}{
		{
			Name: "REX.W",
			Text: "REX.W 8B /r",
			Want: &OpCode{
				Opcode:   0x8b,
				W:        1,
				L:        -1,
				ModRM:    true,
				ModRMreg: -1,
				ModRMrm:  -1,
				Only64:   true,
			},
		},
		{
			Name: "forced 64-bit branch",
			Text: "o16 F64 EB cb",
			Want: &OpCode{
				Opcode:      0xeb,
				W:           -1,
				L:           -1,
				ModRMreg:    -1,
				ModRMrm:     -1,
				OperandSize: 16,
				Force64:     true,
			},
		},
		{
			Name: "features",
			Text: "F3 NOREXB -nopause 90",
			Want: &OpCode{
				Opcode:    0x90,
				Mandatory: MandatoryPrefixF3,
				W:         -1,
				L:         -1,
				ModRMreg:  -1,
				ModRMrm:   -1,
				NoREXB:    true,
				Excludes:  FeatureNoPause,
			},
		},
		{
			Name: "opcode extension",
			Text: "F3 +mpx only64 0F 1B /r",
			Want: &OpCode{
				Table:     Table0F,
				Opcode:    0x1b,
				Mandatory: MandatoryPrefixF3,
				W:         -1,
				L:         -1,
				ModRM:     true,
				ModRMreg:  -1,
				ModRMrm:   -1,
				Only64:    true,
				Requires:  FeatureMPX,
			},
		},
		{
			Name: "register modifier",
			Text: "o64 only64 D64 50+ro",
			Want: &OpCode{
				Opcode:           0x50,
				RegisterModifier: true,
				W:                -1,
				L:                -1,
				ModRMreg:         -1,
				ModRMrm:          -1,
				OperandSize:      64,
				Only64:           true,
				Default64:        true,
			},
		},
		{
			Name: "FPU stack index",
			Text: "D8 C0+i",
			Want: &OpCode{
				Opcode:   0xd8,
				W:        -1,
				L:        -1,
				ModRM:    true,
				ModRMmod: ModRegister,
				ModRMreg: 0,
				ModRMrm:  -1,
			},
		},
		{
			Name: "fixed ModR/M byte",
			Text: "0F 01 C3",
			Want: &OpCode{
				Table:    Table0F,
				Opcode:   0x01,
				W:        -1,
				L:        -1,
				ModRM:    true,
				ModRMmod: ModRegister,
				ModRMreg: 0,
				ModRMrm:  3,
			},
		},
		{
			Name: "fixed ModR/M fields",
			Text: "0F AE 11:101:bbb",
			Want: &OpCode{
				Table:    Table0F,
				Opcode:   0xae,
				W:        -1,
				L:        -1,
				ModRM:    true,
				ModRMmod: ModRegister,
				ModRMreg: 5,
				ModRMrm:  -1,
			},
		},
		{
			Name: "VEX",
			Text: "VEX.128.66.0F3A.W0 4A /r /is4",
			Want: &OpCode{
				Encoding:  EncodingVEX,
				Table:     Table0F3A,
				Opcode:    0x4a,
				Mandatory: MandatoryPrefix66,
				W:         0,
				L:         0,
				ModRM:     true,
				ModRMreg:  -1,
				ModRMrm:   -1,
				Is4:       true,
			},
		},
		{
			Name: "EVEX",
			Text: "EVEX.512.F2.0F38.W0 72 /r",
			Want: &OpCode{
				Encoding:  EncodingEVEX,
				Table:     Table0F38,
				Opcode:    0x72,
				Mandatory: MandatoryPrefixF2,
				W:         0,
				L:         2,
				ModRM:     true,
				ModRMreg:  -1,
				ModRMrm:   -1,
			},
		},
		{
			Name: "EVEX VSIB",
			Text: "EVEX.128.66.0F38.W0 92 /r /vsib",
			Want: &OpCode{
				Encoding:  EncodingEVEX,
				Table:     Table0F38,
				Opcode:    0x92,
				Mandatory: MandatoryPrefix66,
				W:         0,
				L:         0,
				ModRM:     true,
				ModRMreg:  -1,
				ModRMrm:   -1,
				VSIB:      true,
			},
		},
		{
			Name: "XOP",
			Text: "XOP.128.X8.W0 A2 /r /is4",
			Want: &OpCode{
				Encoding:  EncodingXOP,
				Table:     TableXOP8,
				Opcode:    0xa2,
				Mandatory: MandatoryPrefixNone,
				W:         0,
				L:         0,
				ModRM:     true,
				ModRMreg:  -1,
				ModRMrm:   -1,
				Is4:       true,
			},
		},
		{
			Name: "MVEX",
			Text: "MVEX.512.0F.W0 58 /r",
			Want: &OpCode{
				Encoding:  EncodingMVEX,
				Table:     Table0F,
				Opcode:    0x58,
				Mandatory: MandatoryPrefixNone,
				W:         0,
				L:         -1,
				ModRM:     true,
				ModRMreg:  -1,
				ModRMrm:   -1,
				Only64:    true,
				Requires:  FeatureKNC,
			},
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			got, err := ParseOpCode(test.Text)
			if err != nil {
				t.Fatalf("ParseOpCode(%q): %v", test.Text, err)
			}

			test.Want.Syntax = test.Text
			if diff := cmp.Diff(test.Want, got); diff != "" {
				t.Fatalf("ParseOpCode(%q): (-want, +got)\n%s", test.Text, diff)
			}
		})
	}
}

func TestParseOpCodeErrors(t *testing.T) {
	tests := []struct {
		Name string
		Text string
	}{
		{Name: "conflicting modes", Text: "!64 only64 90"},
		{Name: "no opcode", Text: "0F 38"},
		{Name: "too many opcode bytes", Text: "90 90 90"},
		{Name: "unknown feature", Text: "+bogus 90"},
		{Name: "register modifier low bits", Text: "91+rd"},
		{Name: "memory stack index", Text: "D8 00+i"},
		{Name: "bad clause", Text: "8B ZZ"},
		{Name: "bad vector clause", Text: "VEX.128.0F.W2 58 /r"},
		{Name: "missing map", Text: "VEX.128.W0 58 /r"},
		{Name: "XOP map in VEX", Text: "VEX.128.X8.W0 A2 /r"},
		{Name: "legacy map in XOP", Text: "XOP.128.0F.W0 A2 /r"},
		{Name: "fixed ModR/M with /r", Text: "0F 01 C3 /r"},
		{Name: "memory ModR/M byte", Text: "0F 01 03"},
		{Name: "bad ModR/M field", Text: "0F AE 11:1010:bbb"},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			got, err := ParseOpCode(test.Text)
			if err == nil {
				t.Fatalf("ParseOpCode(%q): unexpected success: %+v", test.Text, got)
			}
		})
	}
}

func TestVectorSize(t *testing.T) {
	for text, want := range map[string]int{
		"VEX.128.0F.WIG 58 /r":    128,
		"VEX.256.0F.WIG 58 /r":    256,
		"EVEX.512.0F.W0 58 /r":    512,
		"VEX.LIG.F3.0F.WIG 58 /r": 0,
		"o32 8B /r":               0,
	} {
		op, err := ParseOpCode(text)
		if err != nil {
			t.Errorf("ParseOpCode(%q): %v", text, err)
			continue
		}

		if got := op.VectorSize(); got != want {
			t.Errorf("%q.VectorSize(): got %d, want %d", text, got, want)
		}
	}
}
