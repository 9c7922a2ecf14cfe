// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import (
	"fmt"
	"strings"
)

// Register identifies an x86 register.
//
// The zero value, RegisterNone, means
// that no register is present. Registers
// within a class are numbered contiguously,
// so RAX+n is the n'th 64-bit general
// purpose register.
type Register uint8

const (
	RegisterNone Register = iota

	// 8-bit general purpose registers.
	AL
	CL
	DL
	BL
	AH
	CH
	DH
	BH
	SPL
	BPL
	SIL
	DIL
	R8L
	R9L
	R10L
	R11L
	R12L
	R13L
	R14L
	R15L

	// 16-bit general purpose registers.
	AX
	CX
	DX
	BX
	SP
	BP
	SI
	DI
	R8W
	R9W
	R10W
	R11W
	R12W
	R13W
	R14W
	R15W

	// 32-bit general purpose registers.
	EAX
	ECX
	EDX
	EBX
	ESP
	EBP
	ESI
	EDI
	R8D
	R9D
	R10D
	R11D
	R12D
	R13D
	R14D
	R15D

	// 64-bit general purpose registers.
	RAX
	RCX
	RDX
	RBX
	RSP
	RBP
	RSI
	RDI
	R8
	R9
	R10
	R11
	R12
	R13
	R14
	R15

	// Instruction pointers.
	EIP
	RIP

	// Segment registers.
	ES
	CS
	SS
	DS
	FS
	GS

	// Vector registers.
	XMM0
	XMM1
	XMM2
	XMM3
	XMM4
	XMM5
	XMM6
	XMM7
	XMM8
	XMM9
	XMM10
	XMM11
	XMM12
	XMM13
	XMM14
	XMM15
	XMM16
	XMM17
	XMM18
	XMM19
	XMM20
	XMM21
	XMM22
	XMM23
	XMM24
	XMM25
	XMM26
	XMM27
	XMM28
	XMM29
	XMM30
	XMM31
	YMM0
	YMM1
	YMM2
	YMM3
	YMM4
	YMM5
	YMM6
	YMM7
	YMM8
	YMM9
	YMM10
	YMM11
	YMM12
	YMM13
	YMM14
	YMM15
	YMM16
	YMM17
	YMM18
	YMM19
	YMM20
	YMM21
	YMM22
	YMM23
	YMM24
	YMM25
	YMM26
	YMM27
	YMM28
	YMM29
	YMM30
	YMM31
	ZMM0
	ZMM1
	ZMM2
	ZMM3
	ZMM4
	ZMM5
	ZMM6
	ZMM7
	ZMM8
	ZMM9
	ZMM10
	ZMM11
	ZMM12
	ZMM13
	ZMM14
	ZMM15
	ZMM16
	ZMM17
	ZMM18
	ZMM19
	ZMM20
	ZMM21
	ZMM22
	ZMM23
	ZMM24
	ZMM25
	ZMM26
	ZMM27
	ZMM28
	ZMM29
	ZMM30
	ZMM31

	// Opmask registers.
	K0
	K1
	K2
	K3
	K4
	K5
	K6
	K7

	// MPX bounds registers.
	BND0
	BND1
	BND2
	BND3

	// Control registers.
	CR0
	CR1
	CR2
	CR3
	CR4
	CR5
	CR6
	CR7
	CR8
	CR9
	CR10
	CR11
	CR12
	CR13
	CR14
	CR15

	// Debug registers.
	DR0
	DR1
	DR2
	DR3
	DR4
	DR5
	DR6
	DR7
	DR8
	DR9
	DR10
	DR11
	DR12
	DR13
	DR14
	DR15

	// x87 stack registers.
	ST0
	ST1
	ST2
	ST3
	ST4
	ST5
	ST6
	ST7

	// MMX registers.
	MM0
	MM1
	MM2
	MM3
	MM4
	MM5
	MM6
	MM7

	// Test registers.
	TR0
	TR1
	TR2
	TR3
	TR4
	TR5
	TR6
	TR7

	// AMX tile registers.
	TMM0
	TMM1
	TMM2
	TMM3
	TMM4
	TMM5
	TMM6
	TMM7

	// NumRegisters is the number of
	// registers, including RegisterNone.
	NumRegisters int = iota
)

// RegisterType categorises an x86
// register.
type RegisterType uint8

const (
	TypeNone RegisterType = iota
	TypeGeneralPurpose
	TypeInstructionPointer
	TypeSegment
	TypeX87
	TypeControl
	TypeDebug
	TypeTest
	TypeOpmask
	TypeBounds
	TypeMMX
	TypeTMM
	TypeXMM
	TypeYMM
	TypeZMM
)

func (t RegisterType) String() string {
	switch t {
	case TypeNone:
		return "no register"
	case TypeGeneralPurpose:
		return "general purpose register"
	case TypeInstructionPointer:
		return "instruction pointer register"
	case TypeSegment:
		return "segment register"
	case TypeX87:
		return "x87 register"
	case TypeControl:
		return "control register"
	case TypeDebug:
		return "debug register"
	case TypeTest:
		return "test register"
	case TypeOpmask:
		return "opmask register"
	case TypeBounds:
		return "bounds register"
	case TypeMMX:
		return "MMX register"
	case TypeTMM:
		return "TMM register"
	case TypeXMM:
		return "XMM register"
	case TypeYMM:
		return "YMM register"
	case TypeZMM:
		return "ZMM register"
	default:
		return fmt.Sprintf("RegisterType(%d)", t)
	}
}

// registerInfo contains the static
// metadata for one register.
type registerInfo struct {
	name  string
	typ   RegisterType
	bytes uint8    // Size in bytes.
	num   uint8    // Index within the register's class.
	full  Register // The widest register containing this one.
}

// registerClass describes a contiguous
// run of registers.
type registerClass struct {
	first Register
	count int
	typ   RegisterType
	bytes uint8
	names func(i int) string
}

var registerClasses = []registerClass{
	{AL, 20, TypeGeneralPurpose, 1, func(i int) string {
		if i < 12 {
			return [...]string{"al", "cl", "dl", "bl", "ah", "ch", "dh", "bh", "spl", "bpl", "sil", "dil"}[i]
		}
		return fmt.Sprintf("r%dl", i-4)
	}},
	{AX, 16, TypeGeneralPurpose, 2, func(i int) string {
		if i < 8 {
			return [...]string{"ax", "cx", "dx", "bx", "sp", "bp", "si", "di"}[i]
		}
		return fmt.Sprintf("r%dw", i)
	}},
	{EAX, 16, TypeGeneralPurpose, 4, func(i int) string {
		if i < 8 {
			return [...]string{"eax", "ecx", "edx", "ebx", "esp", "ebp", "esi", "edi"}[i]
		}
		return fmt.Sprintf("r%dd", i)
	}},
	{RAX, 16, TypeGeneralPurpose, 8, func(i int) string {
		if i < 8 {
			return [...]string{"rax", "rcx", "rdx", "rbx", "rsp", "rbp", "rsi", "rdi"}[i]
		}
		return fmt.Sprintf("r%d", i)
	}},
	{EIP, 1, TypeInstructionPointer, 4, func(int) string { return "eip" }},
	{RIP, 1, TypeInstructionPointer, 8, func(int) string { return "rip" }},
	{ES, 6, TypeSegment, 2, func(i int) string { return [...]string{"es", "cs", "ss", "ds", "fs", "gs"}[i] }},
	{XMM0, 32, TypeXMM, 16, func(i int) string { return fmt.Sprintf("xmm%d", i) }},
	{YMM0, 32, TypeYMM, 32, func(i int) string { return fmt.Sprintf("ymm%d", i) }},
	{ZMM0, 32, TypeZMM, 64, func(i int) string { return fmt.Sprintf("zmm%d", i) }},
	{K0, 8, TypeOpmask, 8, func(i int) string { return fmt.Sprintf("k%d", i) }},
	{BND0, 4, TypeBounds, 16, func(i int) string { return fmt.Sprintf("bnd%d", i) }},
	{CR0, 16, TypeControl, 8, func(i int) string { return fmt.Sprintf("cr%d", i) }},
	{DR0, 16, TypeDebug, 8, func(i int) string { return fmt.Sprintf("dr%d", i) }},
	{ST0, 8, TypeX87, 10, func(i int) string { return fmt.Sprintf("st%d", i) }},
	{MM0, 8, TypeMMX, 8, func(i int) string { return fmt.Sprintf("mm%d", i) }},
	{TR0, 8, TypeTest, 4, func(i int) string { return fmt.Sprintf("tr%d", i) }},
	// Tile registers are 1 KiB, which doesn't
	// fit in the size field, so they report 0.
	{TMM0, 8, TypeTMM, 0, func(i int) string { return fmt.Sprintf("tmm%d", i) }},
}

var registerInfos [NumRegisters]registerInfo

// RegistersByName maps each register's
// lower-case name to its identifier.
var RegistersByName = make(map[string]Register)

func init() {
	registerInfos[RegisterNone] = registerInfo{name: "none"}
	for _, class := range registerClasses {
		for i := 0; i < class.count; i++ {
			reg := class.first + Register(i)
			info := registerInfo{
				name:  class.names(i),
				typ:   class.typ,
				bytes: class.bytes,
				num:   uint8(i),
				full:  reg,
			}

			if class.typ == TypeGeneralPurpose {
				n := i
				if class.first == AL && i >= 4 {
					// AH..BH live in RAX..RBX and
					// SPL..R15L are shifted by four.
					n = i - 4
				}

				info.full = RAX + Register(n)
			}

			if class.typ == TypeXMM || class.typ == TypeYMM {
				info.full = ZMM0 + Register(i)
			}

			registerInfos[reg] = info
			RegistersByName[info.name] = reg
		}
	}

}

// String returns the register's
// canonical lower-case name.
func (r Register) String() string {
	if int(r) >= NumRegisters {
		return fmt.Sprintf("Register(%d)", uint8(r))
	}

	return registerInfos[r].name
}

// UpperName returns the register's
// name in upper case.
func (r Register) UpperName() string { return strings.ToUpper(r.String()) }

// Type returns the register's class.
func (r Register) Type() RegisterType {
	if int(r) >= NumRegisters {
		return TypeNone
	}

	return registerInfos[r].typ
}

// Number returns the register's index
// within its class. For example,
// R9.Number() and XMM9.Number() are
// both 9.
func (r Register) Number() int {
	if int(r) >= NumRegisters {
		return 0
	}

	return int(registerInfos[r].num)
}

// Size returns the register's size in
// bytes. Tile registers report zero.
func (r Register) Size() int {
	if int(r) >= NumRegisters {
		return 0
	}

	return int(registerInfos[r].bytes)
}

// FullRegister returns the widest register
// that contains r. For example, the full
// register of AH is RAX and the full
// register of XMM3 is ZMM3.
func (r Register) FullRegister() Register {
	if int(r) >= NumRegisters {
		return RegisterNone
	}

	return registerInfos[r].full
}

func (r Register) IsGPR() bool     { return r >= AL && r <= R15 }
func (r Register) IsGPR8() bool    { return r >= AL && r <= R15L }
func (r Register) IsGPR16() bool   { return r >= AX && r <= R15W }
func (r Register) IsGPR32() bool   { return r >= EAX && r <= R15D }
func (r Register) IsGPR64() bool   { return r >= RAX && r <= R15 }
func (r Register) IsIP() bool      { return r == EIP || r == RIP }
func (r Register) IsSegment() bool { return r >= ES && r <= GS }
func (r Register) IsXMM() bool     { return r >= XMM0 && r <= XMM31 }
func (r Register) IsYMM() bool     { return r >= YMM0 && r <= YMM31 }
func (r Register) IsZMM() bool     { return r >= ZMM0 && r <= ZMM31 }
func (r Register) IsVector() bool  { return r >= XMM0 && r <= ZMM31 }
func (r Register) IsK() bool       { return r >= K0 && r <= K7 }
func (r Register) IsBND() bool     { return r >= BND0 && r <= BND3 }
func (r Register) IsCR() bool      { return r >= CR0 && r <= CR15 }
func (r Register) IsDR() bool      { return r >= DR0 && r <= DR15 }
func (r Register) IsTR() bool      { return r >= TR0 && r <= TR7 }
func (r Register) IsST() bool      { return r >= ST0 && r <= ST7 }
func (r Register) IsMM() bool      { return r >= MM0 && r <= MM7 }
func (r Register) IsTMM() bool     { return r >= TMM0 && r <= TMM7 }
