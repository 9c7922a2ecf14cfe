// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package registers

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestMainRegisters(t *testing.T) {
	tests := []struct {
		Name    string
		Type    string
		Want    []string
		Exclude []string
	}{
		{
			Name: "all",
			Want: []string{"general purpose register", "rax", "zmm31", "es"},
		},
		{
			Name:    "segment",
			Type:    "Segment",
			Want:    []string{"segment register", "fs", "gs"},
			Exclude: []string{"rax", "xmm0"},
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Main(context.Background(), &buf, test.Type); err != nil {
				t.Fatalf("Main(%q): %v", test.Type, err)
			}

			got := buf.String()
			for _, want := range test.Want {
				if !strings.Contains(got, want) {
					t.Errorf("Main(%q): output is missing %q:\n%s", test.Type, want, got)
				}
			}

			for _, exclude := range test.Exclude {
				if strings.Contains(got, exclude) {
					t.Errorf("Main(%q): output includes %q:\n%s", test.Type, exclude, got)
				}
			}
		})
	}

	var buf bytes.Buffer
	if err := Main(context.Background(), &buf, "quantum"); err == nil {
		t.Errorf("Main(quantum): got nil error")
	}
}
