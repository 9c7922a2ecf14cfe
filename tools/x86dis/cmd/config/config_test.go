// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package config

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"firefly-os.dev/tools/x86dis/formatter"
)

func TestFormatFor(t *testing.T) {
	tests := []struct {
		Name    string
		Want    Format
		WantErr bool
	}{
		{"x86dis.toml", TOML, false},
		{"dir/x86dis.YAML", YAML, false},
		{"x86dis.yml", YAML, false},
		{"x86dis.json", "", true},
		{"x86dis", "", true},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			got, err := FormatFor(test.Name)
			if (err != nil) != test.WantErr {
				t.Fatalf("FormatFor(%q): got error %v, want error: %v", test.Name, err, test.WantErr)
			}

			if got != test.Want {
				t.Fatalf("FormatFor(%q): got %q, want %q", test.Name, got, test.Want)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		Name    string
		Format  Format
		Data    string
		Want    func(*formatter.Options)
		WantErr string
	}{
		{
			Name:   "toml",
			Format: TOML,
			Data: `
uppercase_mnemonics = true
hex_prefix = "0x"
hex_suffix = ""
first_operand_char_index = 8
memory_size_options = "minimal"
`,
			Want: func(o *formatter.Options) {
				o.UppercaseMnemonics = true
				o.HexPrefix = "0x"
				o.HexSuffix = ""
				o.FirstOperandCharIndex = 8
				o.MemorySizeOptions = formatter.MemorySizeMinimal
			},
		},
		{
			Name:   "toml unknown key",
			Format: TOML,
			Data:   "no_such_option = 1\nuse_pseudo_ops = false\n",
			Want:   func(o *formatter.Options) { o.UsePseudoOps = false },
		},
		{
			Name:   "yaml",
			Format: YAML,
			Data:   "number_base: bin\ncc_ne: nz\n",
			Want: func(o *formatter.Options) {
				o.NumberBase = formatter.Binary
				o.CCNE = "nz"
			},
		},
		{
			Name:   "empty yaml",
			Format: YAML,
			Data:   "",
			Want:   func(o *formatter.Options) {},
		},
		{
			Name:    "yaml unknown key",
			Format:  YAML,
			Data:    "no_such_option: 1\n",
			WantErr: "no_such_option",
		},
		{
			Name:    "invalid value",
			Format:  TOML,
			Data:    `cc_e = "q"`,
			WantErr: `invalid cc_e "q"`,
		},
		{
			Name:    "bad number base",
			Format:  YAML,
			Data:    "number_base: 12\n",
			WantErr: "invalid number base",
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			got := formatter.NewIntel().Options()
			err := Decode([]byte(test.Data), test.Format, got)
			if test.WantErr != "" {
				if err == nil || !strings.Contains(err.Error(), test.WantErr) {
					t.Fatalf("Decode(): got error %v, want %q", err, test.WantErr)
				}

				return
			}

			if err != nil {
				t.Fatalf("Decode(): %v", err)
			}

			want := formatter.NewIntel().Options()
			test.Want(want)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("Decode(): (-want, +got)\n%s", diff)
			}
		})
	}
}

func TestEncodeDecode(t *testing.T) {
	for _, format := range []Format{TOML, YAML} {
		t.Run(string(format), func(t *testing.T) {
			want := formatter.NewGas().Options()
			want.NumberBase = formatter.Octal
			want.CCB = "nae"

			var buf bytes.Buffer
			if err := Encode(&buf, format, want); err != nil {
				t.Fatalf("Encode(): %v", err)
			}

			got := formatter.NewIntel().Options()
			if err := Decode(buf.Bytes(), format, got); err != nil {
				t.Fatalf("Decode(): %v\n%s", err, buf.String())
			}

			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("options: (-want, +got)\n%s", diff)
			}
		})
	}
}

func TestMainCommand(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "gas.toml")
	if err := os.WriteFile(name, []byte("gas_naked_registers = true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := Main(context.Background(), &buf, "att", TOML, name); err != nil {
		t.Fatalf("Main(): %v", err)
	}

	got := buf.String()
	for _, want := range []string{`hex_prefix = "0x"`, "gas_naked_registers = true"} {
		if !strings.Contains(got, want) {
			t.Errorf("Main(): output is missing %q:\n%s", want, got)
		}
	}

	if err := Main(context.Background(), &buf, "arm", TOML, ""); err == nil {
		t.Errorf("Main(arm): got nil error")
	}
}
