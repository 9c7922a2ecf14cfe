// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package formatter

import (
	"testing"

	"firefly-os.dev/tools/x86dis/x86"
)

func TestStringMnemonics(t *testing.T) {
	for i := 0; i < x86.NumCodes; i++ {
		code := x86.Code(i)
		if !code.IsString() {
			continue
		}

		if _, ok := masmStringMnemonics[code]; !ok {
			t.Errorf("%s: no MASM mnemonic", code)
		}
	}

	tests := []struct {
		Code  x86.Code
		Intel string
		MASM  string
		Gas   string
	}{
		{x86.Movsb_m8_m8, "movsb", "movs", "movsb"},
		{x86.Movsd_m32_m32, "movsd", "movs", "movsl"},
		{x86.Insd_m32_DX, "insd", "ins", "insl"},
		{x86.Outsw_DX_m16, "outsw", "outs", "outsw"},
		{x86.Scasq_RAX_m64, "scasq", "scas", "scasq"},
		{x86.Lodsd_EAX_m32, "lodsd", "lods", "lodsl"},
		{x86.Xlat_m8, "xlatb", "xlat", "xlat"},
	}

	for _, test := range tests {
		t.Run(test.Code.String(), func(t *testing.T) {
			info := infoFor(test.Code)
			if !info.has(infoImplicitString) {
				t.Errorf("implicit string flag is not set")
			}

			if info.mnemonic != test.Intel {
				t.Errorf("Intel mnemonic: got %q, want %q", info.mnemonic, test.Intel)
			}

			if info.masm != test.MASM {
				t.Errorf("MASM mnemonic: got %q, want %q", info.masm, test.MASM)
			}

			if info.gas != test.Gas {
				t.Errorf("gas mnemonic: got %q, want %q", info.gas, test.Gas)
			}
		})
	}
}
