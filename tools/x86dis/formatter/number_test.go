// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package formatter

import (
	"testing"
)

func TestAppendNumber(t *testing.T) {
	hex := NumberOptions{Base: Hexadecimal, Suffix: "h", UppercaseHex: true, AddLeadingZeroToHexNumbers: true}
	tests := []struct {
		Name  string
		Opts  NumberOptions
		Value uint64
		Bits  int
		Want  string
	}{
		{
			Name:  "hex",
			Opts:  hex,
			Value: 0x1234,
			Bits:  16,
			Want:  "1234h",
		},
		{
			Name:  "hex leading zero",
			Opts:  hex,
			Value: 0xcc,
			Bits:  8,
			Want:  "0CCh",
		},
		{
			Name:  "hex prefix without leading zero",
			Opts:  NumberOptions{Base: Hexadecimal, Prefix: "0x", AddLeadingZeroToHexNumbers: true},
			Value: 0xcc,
			Bits:  8,
			Want:  "0xcc",
		},
		{
			Name:  "small hex in decimal",
			Opts:  NumberOptions{Base: Hexadecimal, Prefix: "0x", SmallHexNumbersInDecimal: true},
			Value: 9,
			Bits:  32,
			Want:  "9",
		},
		{
			Name:  "small hex limit",
			Opts:  NumberOptions{Base: Hexadecimal, Prefix: "0x", SmallHexNumbersInDecimal: true},
			Value: 10,
			Bits:  32,
			Want:  "0xa",
		},
		{
			Name:  "leading zeros",
			Opts:  NumberOptions{Base: Hexadecimal, Suffix: "h", LeadingZeros: true},
			Value: 5,
			Bits:  64,
			Want:  "0000000000000005h",
		},
		{
			Name:  "masked",
			Opts:  hex,
			Value: 0x12345,
			Bits:  16,
			Want:  "2345h",
		},
		{
			Name:  "digit groups",
			Opts:  NumberOptions{Base: Hexadecimal, Prefix: "0x", DigitGroupSize: 4, DigitSeparator: "_"},
			Value: 0x123456789,
			Bits:  64,
			Want:  "0x1_2345_6789",
		},
		{
			Name:  "decimal groups",
			Opts:  NumberOptions{Base: Decimal, DigitGroupSize: 3, DigitSeparator: ","},
			Value: 1234567,
			Bits:  32,
			Want:  "1,234,567",
		},
		{
			Name:  "decimal ignores leading zeros",
			Opts:  NumberOptions{Base: Decimal, LeadingZeros: true},
			Value: 42,
			Bits:  32,
			Want:  "42",
		},
		{
			Name:  "octal",
			Opts:  NumberOptions{Base: Octal, Suffix: "o", LeadingZeros: true},
			Value: 8,
			Bits:  8,
			Want:  "010o",
		},
		{
			Name:  "binary",
			Opts:  NumberOptions{Base: Binary, Prefix: "0b"},
			Value: 5,
			Bits:  8,
			Want:  "0b101",
		},
		{
			Name:  "zero",
			Opts:  hex,
			Value: 0,
			Bits:  32,
			Want:  "0h",
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			got := string(appendNumber(nil, &test.Opts, test.Value, test.Bits))
			if got != test.Want {
				t.Fatalf("appendNumber(%#x, %d): got %q, want %q", test.Value, test.Bits, got, test.Want)
			}
		})
	}
}

func TestFormatNumbers(t *testing.T) {
	signed := &NumberOptions{Base: Hexadecimal, Suffix: "h", UppercaseHex: true, AddLeadingZeroToHexNumbers: true, Signed: true}
	unsigned := &NumberOptions{Base: Hexadecimal, Suffix: "h", UppercaseHex: true, AddLeadingZeroToHexNumbers: true}
	tests := []struct {
		Name string
		Got  string
		Want string
	}{
		{"u8", FormatU8Options(0xff, unsigned), "0FFh"},
		{"u16", FormatU16Options(0x1000, unsigned), "1000h"},
		{"u32", FormatU32Options(0xdeadbeef, unsigned), "0DEADBEEFh"},
		{"u64", FormatU64Options(1<<63, unsigned), "8000000000000000h"},
		{"i8 negative", FormatI8Options(-1, signed), "-1h"},
		{"i8 unsigned", FormatI8Options(-1, unsigned), "0FFh"},
		{"i8 min", FormatI8Options(-128, signed), "-80h"},
		{"i16", FormatI16Options(-0x10, signed), "-10h"},
		{"i32", FormatI32Options(0x7fffffff, signed), "7FFFFFFFh"},
		{"i64", FormatI64Options(-2, signed), "-2h"},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			if test.Got != test.Want {
				t.Fatalf("got %q, want %q", test.Got, test.Want)
			}
		})
	}
}

func TestFormatterNumbers(t *testing.T) {
	tests := []struct {
		Name   string
		Syntax Syntax
		Got    func(f *Formatter) string
		Want   string
	}{
		{"intel u8", Intel, func(f *Formatter) string { return f.FormatU8(0xcc) }, "0CCh"},
		{"intel small", Intel, func(f *Formatter) string { return f.FormatU32(7) }, "7"},
		{"intel i16", Intel, func(f *Formatter) string { return f.FormatI16(-0x20) }, "-20h"},
		{"gas u64", Gas, func(f *Formatter) string { return f.FormatU64(0xffff) }, "0xFFFF"},
		{"gas i32", Gas, func(f *Formatter) string { return f.FormatI32(-0x20) }, "-0x20"},
		{"gas i64", Gas, func(f *Formatter) string { return f.FormatI64(3) }, "3"},
		{"masm u16", MASM, func(f *Formatter) string { return f.FormatU16(0xa000) }, "0A000h"},
		{"nasm i8", NASM, func(f *Formatter) string { return f.FormatI8(0x10) }, "10h"},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			got := test.Got(New(test.Syntax))
			if got != test.Want {
				t.Fatalf("got %q, want %q", got, test.Want)
			}
		})
	}
}

func TestSignExtend(t *testing.T) {
	tests := []struct {
		Value uint64
		Bits  int
		Want  int64
	}{
		{0xff, 8, -1},
		{0x7f, 8, 127},
		{0xfff8, 16, -8},
		{0xfffffff8, 32, -8},
		{0xfffffff8, 64, 0xfffffff8},
	}

	for _, test := range tests {
		if got := signExtend(test.Value, test.Bits); got != test.Want {
			t.Errorf("signExtend(%#x, %d): got %d, want %d", test.Value, test.Bits, got, test.Want)
		}
	}
}
