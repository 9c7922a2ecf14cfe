// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

// Package x86 contains the structured model of
// decoded x86 instructions: registers, operand
// kinds, memory sizes, the code table and the
// Instruction value itself.
//
// It also provides the raw bit-field views of
// the legacy, REX, VEX, XOP, EVEX and MVEX
// prefixes and of the ModR/M and SIB bytes,
// which the decoder uses to pick apart machine
// code.
package x86

import (
	"fmt"
)

// b2i is a helper function to convert
// a boolean to an integer. The result
// is one if `b` is true and 0 otherwise.
func b2i(b bool) byte {
	if b {
		return 1
	}

	return 0
}

// Prefix represents a legacy x86 prefix.
type Prefix byte

const (
	PrefixLock        Prefix = 0xf0
	PrefixRepeatNot   Prefix = 0xf2
	PrefixRepeat      Prefix = 0xf3
	PrefixCS          Prefix = 0x2e
	PrefixSS          Prefix = 0x36
	PrefixDS          Prefix = 0x3e
	PrefixES          Prefix = 0x26
	PrefixFS          Prefix = 0x64
	PrefixGS          Prefix = 0x65
	PrefixUnlikely    Prefix = 0x2e
	PrefixLikely      Prefix = 0x3e
	PrefixOperandSize Prefix = 0x66
	PrefixAddressSize Prefix = 0x67
)

// IsLegacyPrefix returns whether b is one of
// the eleven legacy prefix bytes.
func IsLegacyPrefix(b byte) bool {
	switch Prefix(b) {
	case PrefixLock, PrefixRepeatNot, PrefixRepeat,
		PrefixCS, PrefixSS, PrefixDS, PrefixES, PrefixFS, PrefixGS,
		PrefixOperandSize, PrefixAddressSize:
		return true
	}

	return false
}

// Segment returns the segment register
// selected by a segment override prefix,
// or RegisterNone.
func (p Prefix) Segment() Register {
	switch p {
	case PrefixES:
		return ES
	case PrefixCS:
		return CS
	case PrefixSS:
		return SS
	case PrefixDS:
		return DS
	case PrefixFS:
		return FS
	case PrefixGS:
		return GS
	}

	return RegisterNone
}

func (p Prefix) String() string {
	switch p {
	case PrefixLock:
		return "lock"
	case PrefixRepeatNot:
		return "repnz/repne"
	case PrefixRepeat:
		return "rep/repe/repz"
	case PrefixCS:
		return "cs/unlikely"
	case PrefixSS:
		return "ss"
	case PrefixDS:
		return "ds/likely"
	case PrefixES:
		return "es"
	case PrefixFS:
		return "fs"
	case PrefixGS:
		return "gs"
	case PrefixOperandSize:
		return "data16/data32"
	case PrefixAddressSize:
		return "addr16/addr32"
	default:
		return fmt.Sprintf("Prefix(%#02x)", byte(p))
	}
}

// REX provides helper functionality
// for reading a REX prefix byte.
type REX byte

// Intel x86 manuals, Volume 2A,
// Section 2.2.1.2, Table 2-4.
//
// 	| 7  6  5  4   3  2  1  0 |
// 	+-------------------------|
// 	| 0  1  0  0   W  R  X  B |

// IsREX returns whether b is a REX
// prefix byte, which is only meaningful
// in 64-bit mode.
func IsREX(b byte) bool { return b&0xf0 == 0x40 }

func (r REX) W() bool { return ((r >> 3) & 1) == 1 }
func (r REX) R() bool { return ((r >> 2) & 1) == 1 }
func (r REX) X() bool { return ((r >> 1) & 1) == 1 }
func (r REX) B() bool { return ((r >> 0) & 1) == 1 }

func (r REX) String() string {
	out := make([]byte, 8)
	at := func(i int, zero, one byte) byte {
		if ((r >> (7 - i)) & 1) == 1 {
			return one
		}

		return zero
	}

	out[0] = at(0, '0', '1')
	out[1] = at(1, '0', '1')
	out[2] = at(2, '0', '1')
	out[3] = at(3, '0', '1')
	out[4] = at(4, '0', 'W')
	out[5] = at(5, '0', 'R')
	out[6] = at(6, '0', 'X')
	out[7] = at(7, '0', 'B')

	return string(out)
}

// VEX provides helper functionality
// for reading a VEX prefix.
//
// Both forms are normalised to the
// 3-byte layout. The R, X, B and vvvv
// fields are stored inverted, exactly
// as they appear in machine code.
type VEX [2]byte

// Intel x86 manuals, Volume 2A,
// Section 2.3.5, Table 2-9.
//
// 3-byte form:
//
// 	| 7  6  5  4   3  2  1  0 |
// 	+-------------------------|
// 	| 1  1  0  0   0  1  0  0 | // 0xc4 prefix.
// 	| R  X  B  m   m  m  m  m | // P0.
// 	| W  v  v  v   v  L  p  p | // P1.
//
// 2-byte form:
//
// 	| 7  6  5  4   3  2  1  0 |
// 	+-------------------------|
// 	| 1  1  0  0   0  1  0  1 | // 0xc5 prefix.
// 	| R  v  v  v   v  L  p  p | // P0.

// VEX2 expands the payload of a 2-byte
// VEX prefix into the 3-byte layout.
func VEX2(p0 byte) VEX {
	// X and B are implied set (inverted zero),
	// the map is 0F and W is zero.
	return VEX{(p0 & 0x80) | 0b0110_0001, p0 & 0x7f}
}

// VEX3 returns the 3-byte VEX prefix
// with the given payload.
func VEX3(p0, p1 byte) VEX { return VEX{p0, p1} }

// P0.
func (v VEX) R() bool      { return ((v[0] >> 7) & 1) == 1 }
func (v VEX) X() bool      { return ((v[0] >> 6) & 1) == 1 }
func (v VEX) B() bool      { return ((v[0] >> 5) & 1) == 1 }
func (v VEX) M_MMMM() byte { return v[0] & 0b1_1111 }

// P1.
func (v VEX) W() bool    { return ((v[1] >> 7) & 1) == 1 }
func (v VEX) VVVV() byte { return (v[1] >> 3) & 0b1111 }
func (v VEX) L() bool    { return ((v[1] >> 2) & 1) == 1 }
func (v VEX) PP() byte   { return v[1] & 0b11 }

func (v VEX) String() string {
	return fmt.Sprintf("{R: %b, X: %b, B: %b, m-mmmm: %05b, W: %v, vvvv: %04b, L: %b, pp: %02b}",
		b2i(v.R()), b2i(v.X()), b2i(v.B()), v.M_MMMM(),
		v.W(), v.VVVV(), b2i(v.L()), v.PP())
}

// XOP is the AMD XOP prefix, introduced
// by 0x8f. It shares the layout of the
// 3-byte VEX prefix, but its map select
// field is at least 8, which distinguishes
// it from POP r/m.
//
// 	| 7  6  5  4   3  2  1  0 |
// 	+-------------------------|
// 	| 1  0  0  0   1  1  1  1 | // 0x8f prefix.
// 	| R  X  B  m   m  m  m  m | // P0.
// 	| W  v  v  v   v  L  p  p | // P1.
type XOP VEX

// IsXOP returns whether the byte following
// 0x8f selects an XOP map rather than a
// ModR/M reg field of zero.
func IsXOP(p0 byte) bool { return p0&0b1_1111 >= 8 }

func (x XOP) R() bool         { return VEX(x).R() }
func (x XOP) X() bool         { return VEX(x).X() }
func (x XOP) B() bool         { return VEX(x).B() }
func (x XOP) MapSelect() byte { return VEX(x).M_MMMM() }
func (x XOP) W() bool         { return VEX(x).W() }
func (x XOP) VVVV() byte      { return VEX(x).VVVV() }
func (x XOP) L() bool         { return VEX(x).L() }
func (x XOP) PP() byte        { return VEX(x).PP() }

// EVEX provides helper functionality
// for reading an EVEX prefix.
type EVEX [3]byte

// Intel x86 manuals, Volume 2A,
// Section 2.6.1, Table 2-11.
//
// 	| 7  6  5  4   3  2  1  0 |
// 	+-------------------------|
// 	| 0  1  1  0   0  0  1  0 | // 0x62 prefix.
// 	| R  X  B  R'  0  m  m  m | // P0.
// 	| W  v  v  v   v  1  p  p | // P1.
// 	| z  L' L  b   V' a  a  a | // P2.

// P0.
func (p EVEX) R() bool   { return ((p[0] >> 7) & 1) == 1 }
func (p EVEX) X() bool   { return ((p[0] >> 6) & 1) == 1 }
func (p EVEX) B() bool   { return ((p[0] >> 5) & 1) == 1 }
func (p EVEX) Rp() bool  { return ((p[0] >> 4) & 1) == 1 }
func (p EVEX) MMM() byte { return p[0] & 0b111 }

// Reserved returns bit 3 of P0, which
// must be zero.
func (p EVEX) Reserved() bool { return ((p[0] >> 3) & 1) == 1 }

// P1.
func (p EVEX) W() bool    { return ((p[1] >> 7) & 1) == 1 }
func (p EVEX) VVVV() byte { return (p[1] >> 3) & 0b1111 }
func (p EVEX) PP() byte   { return p[1] & 0b11 }

// On returns whether bit 2 of P1 is set,
// which is always the case for EVEX. A
// clear bit denotes an MVEX prefix.
func (p EVEX) On() bool { return ((p[1] >> 2) & 1) == 1 }

// P2.
func (p EVEX) Z() bool   { return ((p[2] >> 7) & 1) == 1 }
func (p EVEX) Lp() bool  { return ((p[2] >> 6) & 1) == 1 }
func (p EVEX) L() bool   { return ((p[2] >> 5) & 1) == 1 }
func (p EVEX) LL() byte  { return (p[2] >> 5) & 0b11 }
func (p EVEX) Br() bool  { return ((p[2] >> 4) & 1) == 1 }
func (p EVEX) Vp() bool  { return ((p[2] >> 3) & 1) == 1 }
func (p EVEX) AAA() byte { return p[2] & 0b111 }

func (p EVEX) String() string {
	return fmt.Sprintf("{R: %b, X: %b, B: %b, R': %b, mm: %02b // W: %b, vvvv: %04b, pp: %02b // z: %b, L': %b, L: %b, b: %b, V': %b, aaa: %03b}",
		b2i(p.R()), b2i(p.X()), b2i(p.B()), b2i(p.Rp()), p.MMM(),
		b2i(p.W()), p.VVVV(), p.PP(),
		b2i(p.Z()), b2i(p.Lp()), b2i(p.L()), b2i(p.Br()), b2i(p.Vp()), p.AAA())
}

// MVEX is the Knights Corner vector
// prefix. It shares its first two payload
// bytes with EVEX, with bit 2 of P1 clear.
//
// 	| 7  6  5  4   3  2  1  0 |
// 	+-------------------------|
// 	| 0  1  1  0   0  0  1  0 | // 0x62 prefix.
// 	| R  X  B  R'  m  m  m  m | // P0.
// 	| W  v  v  v   v  0  p  p | // P1.
// 	| E  S  S  S   V' k  k  k | // P2.
type MVEX [3]byte

// P0.
func (p MVEX) R() bool    { return ((p[0] >> 7) & 1) == 1 }
func (p MVEX) X() bool    { return ((p[0] >> 6) & 1) == 1 }
func (p MVEX) B() bool    { return ((p[0] >> 5) & 1) == 1 }
func (p MVEX) Rp() bool   { return ((p[0] >> 4) & 1) == 1 }
func (p MVEX) MMMM() byte { return p[0] & 0b1111 }

// P1.
func (p MVEX) W() bool    { return ((p[1] >> 7) & 1) == 1 }
func (p MVEX) VVVV() byte { return (p[1] >> 3) & 0b1111 }
func (p MVEX) PP() byte   { return p[1] & 0b11 }

// P2.
func (p MVEX) EH() bool  { return ((p[2] >> 7) & 1) == 1 }
func (p MVEX) SSS() byte { return (p[2] >> 4) & 0b111 }
func (p MVEX) Vp() bool  { return ((p[2] >> 3) & 1) == 1 }
func (p MVEX) KKK() byte { return p[2] & 0b111 }

func (p MVEX) String() string {
	return fmt.Sprintf("{R: %b, X: %b, B: %b, R': %b, mmmm: %04b // W: %b, vvvv: %04b, pp: %02b // E: %b, SSS: %03b, V': %b, kkk: %03b}",
		b2i(p.R()), b2i(p.X()), b2i(p.B()), b2i(p.Rp()), p.MMMM(),
		b2i(p.W()), p.VVVV(), p.PP(),
		b2i(p.EH()), p.SSS(), b2i(p.Vp()), p.KKK())
}

// ModRM provides helper functionality
// for reading a ModR/M byte.
type ModRM byte

const (
	ModRMmod00 ModRM = 0b00_000_000
	ModRMmod01 ModRM = 0b01_000_000
	ModRMmod10 ModRM = 0b10_000_000
	ModRMmod11 ModRM = 0b11_000_000

	// Section 2.1.5, table 2.2, Mod column.
	ModRMmodDereferenceRegister    = ModRMmod00
	ModRMmodSmallDisplacedRegister = ModRMmod01
	ModRMmodLargeDisplacedRegister = ModRMmod10
	ModRMmodRegister               = ModRMmod11

	ModRMrm100 ModRM = 0b00_000_100
	ModRMrm101 ModRM = 0b00_000_101
	ModRMrm110 ModRM = 0b00_000_110

	// Section 2.1.5, table 2.2, Effective address column.
	ModRMrmSIB                = ModRMrm100
	ModRMrmDisplacementOnly32 = ModRMrm101
	ModRMrmDisplacementOnly16 = ModRMrm110
)

func (m ModRM) Mod() byte { return byte(m&0b11000000) >> 6 }
func (m ModRM) Reg() byte { return byte(m&0b00111000) >> 3 }
func (m ModRM) RM() byte  { return byte(m&0b00000111) >> 0 }

// IsRegister returns whether the ModR/M
// byte selects a register operand rather
// than memory.
func (m ModRM) IsRegister() bool { return m&ModRMmod11 == ModRMmodRegister }

func (m ModRM) String() string {
	return fmt.Sprintf("{Mod: %02b, Reg: %03b, R/M: %03b}", m.Mod(), m.Reg(), m.RM())
}

// SIB provides helper functionality
// for reading a SIB byte.
type SIB byte

const (
	// Section 2.1.5, table 2.3, Index column.
	SIBindexNone = 0b100

	// Section 2.1.5, table 2.3, Base row.
	SIBbaseStackPointer = 0b100
	SIBbaseNone         = 0b101
)

func (s SIB) Scale() byte { return byte(s&0b11000000) >> 6 }
func (s SIB) Index() byte { return byte(s&0b00111000) >> 3 }
func (s SIB) Base() byte  { return byte(s&0b00000111) >> 0 }

func (m SIB) String() string {
	return fmt.Sprintf("{Scale: %02b, Index: %03b, Base: %03b}", m.Scale(), m.Index(), m.Base())
}
