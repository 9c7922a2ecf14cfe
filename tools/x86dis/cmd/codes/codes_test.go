// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package codes

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"firefly-os.dev/tools/x86dis/x86"
)

func TestFilter(t *testing.T) {
	tests := []struct {
		Name   string
		Filter Filter
		Code   x86.Code
		Want   bool
	}{
		{Name: "empty", Filter: Filter{}, Code: x86.Mov_r64_rm64, Want: true},
		{Name: "mnemonic", Filter: Filter{Mnemonic: "MOV"}, Code: x86.Mov_r64_rm64, Want: true},
		{Name: "other mnemonic", Filter: Filter{Mnemonic: "nop"}, Code: x86.Mov_r64_rm64, Want: false},
		{Name: "encoding", Filter: Filter{Mnemonic: "nop", Encoding: "legacy"}, Code: x86.Nopd, Want: true},
		{Name: "other encoding", Filter: Filter{Encoding: "evex"}, Code: x86.Nopd, Want: false},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			if got := test.Filter.match(test.Code); got != test.Want {
				t.Fatalf("match(%s): got %v, want %v", test.Code, got, test.Want)
			}
		})
	}
}

func TestMainCodes(t *testing.T) {
	var buf bytes.Buffer
	if err := Main(context.Background(), &buf, Filter{Mnemonic: "mov"}); err != nil {
		t.Fatalf("Main(): %v", err)
	}

	got := buf.String()
	for _, want := range []string{"Mnemonic", "Mov_r64_rm64", "REX.W 8B /r", "r64, r/m64", "UInt64"} {
		if !strings.Contains(got, want) {
			t.Errorf("Main(): output is missing %q:\n%s", want, got)
		}
	}

	if strings.Contains(got, "Nopd") {
		t.Errorf("Main(): output includes a nop form:\n%s", got)
	}

	if err := Main(context.Background(), &buf, Filter{Mnemonic: "mov", Encoding: "xop"}); err == nil {
		t.Errorf("Main(mov, xop): got nil error")
	}
}
