// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestRootCommand(t *testing.T) {
	tests := []struct {
		Name    string
		Args    []string
		Want    string
		WantErr bool
	}{
		{
			Name: "disasm",
			Args: []string{"--log-level=debug", "disasm", "--bitness=64", "--syntax=gas", "--text", "--hex=0F1F840000000000"},
			Want: "nopl (%rax,%rax)\n",
		},
		{
			Name:    "bad log level",
			Args:    []string{"--log-level=loud", "registers"},
			WantErr: true,
		},
		{
			Name:    "unknown command",
			Args:    []string{"assemble"},
			WantErr: true,
		},
	}

	defer logrus.SetLevel(logrus.GetLevel())
	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			root := rootCommand()
			var buf bytes.Buffer
			root.SetOut(&buf)
			root.SetErr(&buf)
			root.SetArgs(test.Args)
			err := root.ExecuteContext(context.Background())
			if test.WantErr {
				if err == nil {
					t.Fatalf("Execute(%q): got nil error", test.Args)
				}

				return
			}

			if err != nil {
				t.Fatalf("Execute(%q): %v", test.Args, err)
			}

			if got := buf.String(); got != test.Want {
				t.Fatalf("Execute(%q): got %q, want %q", test.Args, got, test.Want)
			}
		})
	}
}
