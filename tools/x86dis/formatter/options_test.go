// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package formatter

import (
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"firefly-os.dev/tools/x86dis/x86"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		Name    string
		Options func(*Options)
		WantErr string
	}{
		{
			Name:    "defaults",
			Options: func(o *Options) {},
		},
		{
			Name:    "condition alternative",
			Options: func(o *Options) { o.CCB = "NAE" },
		},
		{
			Name:    "bad base",
			Options: func(o *Options) { o.NumberBase = 9 },
			WantErr: "invalid number_base 9",
		},
		{
			Name:    "bad memory size option",
			Options: func(o *Options) { o.MemorySizeOptions = 7 },
			WantErr: "invalid memory_size_options 7",
		},
		{
			Name:    "negative tab size",
			Options: func(o *Options) { o.TabSize = -1 },
			WantErr: "invalid tab_size -1: must not be negative",
		},
		{
			Name:    "bad condition name",
			Options: func(o *Options) { o.CCE = "nz" },
			WantErr: `invalid cc_e "nz": must be one of e, z`,
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			opts := intelOptions()
			test.Options(&opts)
			err := opts.Validate()
			switch {
			case err == nil && test.WantErr != "":
				t.Fatalf("Validate(): got nil error, want %q", test.WantErr)
			case err != nil && test.WantErr == "":
				t.Fatalf("Validate(): %v", err)
			case err != nil && !strings.Contains(err.Error(), test.WantErr):
				t.Fatalf("Validate(): got error %q, want %q", err, test.WantErr)
			}
		})
	}
}

func TestConditionName(t *testing.T) {
	opts := intelOptions()
	opts.CCB = "c"
	opts.CCNE = "NZ"
	tests := []struct {
		CC   x86.ConditionCode
		Want string
	}{
		{x86.ConditionB, "c"},
		{x86.ConditionNE, "nz"},
		{x86.ConditionE, "e"},
		{x86.ConditionO, "o"},
	}

	for _, test := range tests {
		if got := opts.conditionName(test.CC); got != test.Want {
			t.Errorf("conditionName(%v): got %q, want %q", test.CC, got, test.Want)
		}
	}
}

func TestUnmarshalText(t *testing.T) {
	tests := []struct {
		Text    string
		Base    NumberBase
		BaseErr bool
		Size    MemorySizeOptions
		SizeErr bool
	}{
		{Text: "hex", Base: Hexadecimal, SizeErr: true},
		{Text: "Decimal", Base: Decimal, SizeErr: true},
		{Text: "8", Base: Octal, SizeErr: true},
		{Text: "always", BaseErr: true, Size: MemorySizeAlways},
		{Text: "MINIMAL", BaseErr: true, Size: MemorySizeMinimal},
	}

	for _, test := range tests {
		t.Run(test.Text, func(t *testing.T) {
			var base NumberBase
			err := base.UnmarshalText([]byte(test.Text))
			if (err != nil) != test.BaseErr {
				t.Fatalf("NumberBase.UnmarshalText(%q): got error %v", test.Text, err)
			}

			if err == nil && base != test.Base {
				t.Fatalf("NumberBase.UnmarshalText(%q): got %v, want %v", test.Text, base, test.Base)
			}

			var size MemorySizeOptions
			err = size.UnmarshalText([]byte(test.Text))
			if (err != nil) != test.SizeErr {
				t.Fatalf("MemorySizeOptions.UnmarshalText(%q): got error %v", test.Text, err)
			}

			if err == nil && size != test.Size {
				t.Fatalf("MemorySizeOptions.UnmarshalText(%q): got %v, want %v", test.Text, size, test.Size)
			}
		})
	}
}

func TestDecodeOptions(t *testing.T) {
	want := intelOptions()
	want.NumberBase = Decimal
	want.MemorySizeOptions = MemorySizeAlways
	want.SpaceAfterOperandSeparator = true
	want.CCE = "z"

	tests := []struct {
		Name   string
		Decode func(*Options) error
	}{
		{
			Name: "toml",
			Decode: func(o *Options) error {
				_, err := toml.Decode(`
number_base = "dec"
memory_size_options = "always"
space_after_operand_separator = true
cc_e = "z"
`, o)
				return err
			},
		},
		{
			Name: "yaml",
			Decode: func(o *Options) error {
				return yaml.Unmarshal([]byte(`
number_base: decimal
memory_size_options: always
space_after_operand_separator: true
cc_e: z
`), o)
			},
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			got := intelOptions()
			if err := test.Decode(&got); err != nil {
				t.Fatal(err)
			}

			if err := got.Validate(); err != nil {
				t.Fatalf("Validate(): %v", err)
			}

			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("options: (-want, +got)\n%s", diff)
			}
		})
	}
}
