// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package formatter

import (
	"fmt"
	"strings"
)

// NumberBase is the base used to print
// numbers.
type NumberBase uint8

const (
	Hexadecimal NumberBase = iota
	Decimal
	Octal
	Binary
)

var numberBaseNames = [...]string{
	Hexadecimal: "hex",
	Decimal:     "dec",
	Octal:       "oct",
	Binary:      "bin",
}

func (b NumberBase) String() string {
	if int(b) < len(numberBaseNames) {
		return numberBaseNames[b]
	}

	return fmt.Sprintf("NumberBase(%d)", b)
}

// MarshalText returns the base's name.
func (b NumberBase) MarshalText() ([]byte, error) {
	if int(b) >= len(numberBaseNames) {
		return nil, fmt.Errorf("invalid number base %d", b)
	}

	return []byte(numberBaseNames[b]), nil
}

// UnmarshalText parses a base's name.
func (b *NumberBase) UnmarshalText(text []byte) error {
	name := strings.ToLower(string(text))
	for base, s := range numberBaseNames {
		if name == s {
			*b = NumberBase(base)
			return nil
		}
	}

	switch name {
	case "hexadecimal", "16":
		*b = Hexadecimal
	case "decimal", "10":
		*b = Decimal
	case "octal", "8":
		*b = Octal
	case "binary", "2":
		*b = Binary
	default:
		return fmt.Errorf("invalid number base %q", text)
	}

	return nil
}

// NumberOptions controls how one number
// is printed.
type NumberOptions struct {
	Base NumberBase

	// Prefix and Suffix are added to each
	// number, such as "0x" or "h".
	Prefix string
	Suffix string

	// DigitSeparator is inserted between
	// each group of DigitGroupSize digits,
	// counting from the right. No grouping
	// is done if either is unset.
	DigitGroupSize int
	DigitSeparator string

	UppercaseHex bool

	// LeadingZeros pads the number to the
	// width of its type. It does not apply
	// to decimal numbers.
	LeadingZeros bool

	// SmallHexNumbersInDecimal prints hex
	// values from 0 to 9 in decimal with
	// no prefix or suffix.
	SmallHexNumbersInDecimal bool

	// AddLeadingZeroToHexNumbers prefixes
	// a zero to hex numbers that would
	// otherwise start with A-F and have
	// no prefix, such as "0FFh".
	AddLeadingZeroToHexNumbers bool

	// Signed prints negative values with
	// a minus sign rather than as their
	// two's complement.
	Signed bool
}

const (
	lowerDigits = "0123456789abcdef"
	upperDigits = "0123456789ABCDEF"
)

// appendNumber appends the bits-wide
// unsigned value to buf.
func appendNumber(buf []byte, opts *NumberOptions, value uint64, bits int) []byte {
	if bits < 64 {
		value &= 1<<bits - 1
	}

	if opts.Base == Hexadecimal && opts.SmallHexNumbersInDecimal && !opts.LeadingZeros && value <= 9 {
		return append(buf, byte('0'+value))
	}

	var radix uint64
	var width int
	switch opts.Base {
	case Decimal:
		radix = 10
	case Octal:
		radix = 8
		width = (bits + 2) / 3
	case Binary:
		radix = 2
		width = bits
	default:
		radix = 16
		width = bits / 4
	}

	chars := lowerDigits
	if opts.UppercaseHex {
		chars = upperDigits
	}

	// Digits are collected least
	// significant first.
	var digits [64]byte
	n := 0
	for v := value; v != 0 || n == 0; v /= radix {
		digits[n] = chars[v%radix]
		n++
	}

	if opts.LeadingZeros {
		for n < width {
			digits[n] = '0'
			n++
		}
	}

	buf = append(buf, opts.Prefix...)
	if opts.Base == Hexadecimal && opts.AddLeadingZeroToHexNumbers && opts.Prefix == "" && digits[n-1] > '9' {
		buf = append(buf, '0')
	}

	group := opts.DigitGroupSize
	if opts.DigitSeparator == "" {
		group = 0
	}

	for i := n - 1; i >= 0; i-- {
		buf = append(buf, digits[i])
		if group > 0 && i > 0 && i%group == 0 {
			buf = append(buf, opts.DigitSeparator...)
		}
	}

	return append(buf, opts.Suffix...)
}

// appendSigned appends the bits-wide
// value to buf, with a minus sign if
// it is negative and opts.Signed is set.
func appendSigned(buf []byte, opts *NumberOptions, value int64, bits int) []byte {
	if opts.Signed && value < 0 {
		buf = append(buf, '-')
		return appendNumber(buf, opts, uint64(-value), bits)
	}

	return appendNumber(buf, opts, uint64(value), bits)
}

// signExtend interprets the low bits
// of value as a signed integer.
func signExtend(value uint64, bits int) int64 {
	if bits >= 64 {
		return int64(value)
	}

	shift := 64 - bits
	return int64(value<<shift) >> shift
}

// FormatU8Options formats an unsigned
// 8-bit number using opts.
func FormatU8Options(v uint8, opts *NumberOptions) string {
	return string(appendNumber(nil, opts, uint64(v), 8))
}

// FormatU16Options formats an unsigned
// 16-bit number using opts.
func FormatU16Options(v uint16, opts *NumberOptions) string {
	return string(appendNumber(nil, opts, uint64(v), 16))
}

// FormatU32Options formats an unsigned
// 32-bit number using opts.
func FormatU32Options(v uint32, opts *NumberOptions) string {
	return string(appendNumber(nil, opts, uint64(v), 32))
}

// FormatU64Options formats an unsigned
// 64-bit number using opts.
func FormatU64Options(v uint64, opts *NumberOptions) string {
	return string(appendNumber(nil, opts, v, 64))
}

// FormatI8Options formats a signed
// 8-bit number using opts.
func FormatI8Options(v int8, opts *NumberOptions) string {
	return string(appendSigned(nil, opts, int64(v), 8))
}

// FormatI16Options formats a signed
// 16-bit number using opts.
func FormatI16Options(v int16, opts *NumberOptions) string {
	return string(appendSigned(nil, opts, int64(v), 16))
}

// FormatI32Options formats a signed
// 32-bit number using opts.
func FormatI32Options(v int32, opts *NumberOptions) string {
	return string(appendSigned(nil, opts, int64(v), 32))
}

// FormatI64Options formats a signed
// 64-bit number using opts.
func FormatI64Options(v int64, opts *NumberOptions) string {
	return string(appendSigned(nil, opts, v, 64))
}
