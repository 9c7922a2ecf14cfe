// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import (
	"fmt"
)

// OpKind describes how an instruction's
// operand is stored in the Instruction.
type OpKind uint8

const (
	OpKindRegister OpKind = iota
	OpKindNearBranch16
	OpKindNearBranch32
	OpKindNearBranch64
	OpKindFarBranch16
	OpKindFarBranch32
	OpKindImmediate8
	OpKindImmediate8_2nd
	OpKindImmediate16
	OpKindImmediate32
	OpKindImmediate64
	OpKindImmediate8to16
	OpKindImmediate8to32
	OpKindImmediate8to64
	OpKindImmediate32to64
	OpKindMemorySegSI
	OpKindMemorySegESI
	OpKindMemorySegRSI
	OpKindMemorySegDI
	OpKindMemorySegEDI
	OpKindMemorySegRDI
	OpKindMemoryESDI
	OpKindMemoryESEDI
	OpKindMemoryESRDI
	OpKindMemory

	numOpKinds
)

func (k OpKind) String() string {
	switch k {
	case OpKindRegister:
		return "Register"
	case OpKindNearBranch16:
		return "NearBranch16"
	case OpKindNearBranch32:
		return "NearBranch32"
	case OpKindNearBranch64:
		return "NearBranch64"
	case OpKindFarBranch16:
		return "FarBranch16"
	case OpKindFarBranch32:
		return "FarBranch32"
	case OpKindImmediate8:
		return "Immediate8"
	case OpKindImmediate8_2nd:
		return "Immediate8_2nd"
	case OpKindImmediate16:
		return "Immediate16"
	case OpKindImmediate32:
		return "Immediate32"
	case OpKindImmediate64:
		return "Immediate64"
	case OpKindImmediate8to16:
		return "Immediate8to16"
	case OpKindImmediate8to32:
		return "Immediate8to32"
	case OpKindImmediate8to64:
		return "Immediate8to64"
	case OpKindImmediate32to64:
		return "Immediate32to64"
	case OpKindMemorySegSI:
		return "MemorySegSI"
	case OpKindMemorySegESI:
		return "MemorySegESI"
	case OpKindMemorySegRSI:
		return "MemorySegRSI"
	case OpKindMemorySegDI:
		return "MemorySegDI"
	case OpKindMemorySegEDI:
		return "MemorySegEDI"
	case OpKindMemorySegRDI:
		return "MemorySegRDI"
	case OpKindMemoryESDI:
		return "MemoryESDI"
	case OpKindMemoryESEDI:
		return "MemoryESEDI"
	case OpKindMemoryESRDI:
		return "MemoryESRDI"
	case OpKindMemory:
		return "Memory"
	default:
		return fmt.Sprintf("OpKind(%d)", k)
	}
}

// IsImmediate returns whether the operand
// kind holds an immediate value.
func (k OpKind) IsImmediate() bool {
	return k >= OpKindImmediate8 && k <= OpKindImmediate32to64
}

// IsNearBranch returns whether the operand
// kind holds a near branch target.
func (k OpKind) IsNearBranch() bool {
	return k >= OpKindNearBranch16 && k <= OpKindNearBranch64
}

// IsFarBranch returns whether the operand
// kind holds a far branch selector and
// offset.
func (k OpKind) IsFarBranch() bool {
	return k == OpKindFarBranch16 || k == OpKindFarBranch32
}

// IsMemory returns whether the operand
// kind references memory, including the
// implicit string operands.
func (k OpKind) IsMemory() bool {
	return k >= OpKindMemorySegSI && k <= OpKindMemory
}

// IsStringMemory returns whether the
// operand kind is one of the implicit
// segment and index register pairs used
// by string instructions.
func (k OpKind) IsStringMemory() bool {
	return k >= OpKindMemorySegSI && k <= OpKindMemoryESRDI
}

// RoundingControl is the static rounding
// mode selected by an EVEX instruction.
type RoundingControl uint8

const (
	RoundingNone RoundingControl = iota
	RoundToNearest
	RoundDown
	RoundUp
	RoundTowardZero
)

func (rc RoundingControl) String() string {
	switch rc {
	case RoundingNone:
		return "None"
	case RoundToNearest:
		return "RoundToNearest"
	case RoundDown:
		return "RoundDown"
	case RoundUp:
		return "RoundUp"
	case RoundTowardZero:
		return "RoundTowardZero"
	default:
		return fmt.Sprintf("RoundingControl(%d)", rc)
	}
}

// CodeSize is the CPU mode in which an
// instruction was decoded.
type CodeSize uint8

const (
	CodeSizeUnknown CodeSize = iota
	CodeSize16
	CodeSize32
	CodeSize64
)

// CodeSizeForBitness returns the code
// size for a 16, 32 or 64-bit mode, or
// CodeSizeUnknown.
func CodeSizeForBitness(bitness int) CodeSize {
	switch bitness {
	case 16:
		return CodeSize16
	case 32:
		return CodeSize32
	case 64:
		return CodeSize64
	}

	return CodeSizeUnknown
}

// Bitness returns 16, 32 or 64, or 0 for
// an unknown code size.
func (s CodeSize) Bitness() int {
	switch s {
	case CodeSize16:
		return 16
	case CodeSize32:
		return 32
	case CodeSize64:
		return 64
	}

	return 0
}

func (s CodeSize) String() string {
	switch s {
	case CodeSizeUnknown:
		return "Unknown"
	case CodeSize16:
		return "Code16"
	case CodeSize32:
		return "Code32"
	case CodeSize64:
		return "Code64"
	default:
		return fmt.Sprintf("CodeSize(%d)", s)
	}
}

// EncodingKind identifies the prefix
// scheme used to encode an instruction.
type EncodingKind uint8

const (
	EncodingLegacy EncodingKind = iota
	EncodingVEX
	EncodingEVEX
	EncodingXOP
	Encoding3DNow
	EncodingMVEX
)

func (e EncodingKind) String() string {
	switch e {
	case EncodingLegacy:
		return "Legacy"
	case EncodingVEX:
		return "VEX"
	case EncodingEVEX:
		return "EVEX"
	case EncodingXOP:
		return "XOP"
	case Encoding3DNow:
		return "3DNow"
	case EncodingMVEX:
		return "MVEX"
	default:
		return fmt.Sprintf("EncodingKind(%d)", e)
	}
}

// MvexRegMemConv is the register swizzle
// or memory conversion selected by the
// MVEX.SSS field.
type MvexRegMemConv uint8

const (
	MvexRegMemConvNone MvexRegMemConv = iota
	MvexRegSwizzleNone
	MvexRegSwizzleCdab
	MvexRegSwizzleBadc
	MvexRegSwizzleDacb
	MvexRegSwizzleAaaa
	MvexRegSwizzleBbbb
	MvexRegSwizzleCccc
	MvexRegSwizzleDddd
	MvexMemConvNone
	MvexMemConvBroadcast1
	MvexMemConvBroadcast4
	MvexMemConvFloat16
	MvexMemConvUint8
	MvexMemConvSint8
	MvexMemConvUint16
	MvexMemConvSint16
)

func (c MvexRegMemConv) String() string {
	switch c {
	case MvexRegMemConvNone:
		return "None"
	case MvexRegSwizzleNone:
		return "RegSwizzleNone"
	case MvexRegSwizzleCdab:
		return "RegSwizzleCdab"
	case MvexRegSwizzleBadc:
		return "RegSwizzleBadc"
	case MvexRegSwizzleDacb:
		return "RegSwizzleDacb"
	case MvexRegSwizzleAaaa:
		return "RegSwizzleAaaa"
	case MvexRegSwizzleBbbb:
		return "RegSwizzleBbbb"
	case MvexRegSwizzleCccc:
		return "RegSwizzleCccc"
	case MvexRegSwizzleDddd:
		return "RegSwizzleDddd"
	case MvexMemConvNone:
		return "MemConvNone"
	case MvexMemConvBroadcast1:
		return "MemConvBroadcast1"
	case MvexMemConvBroadcast4:
		return "MemConvBroadcast4"
	case MvexMemConvFloat16:
		return "MemConvFloat16"
	case MvexMemConvUint8:
		return "MemConvUint8"
	case MvexMemConvSint8:
		return "MemConvSint8"
	case MvexMemConvUint16:
		return "MemConvUint16"
	case MvexMemConvSint16:
		return "MemConvSint16"
	default:
		return fmt.Sprintf("MvexRegMemConv(%d)", c)
	}
}

// OpAccess describes how an instruction
// accesses one of its operands.
type OpAccess uint8

const (
	AccessNone OpAccess = iota
	AccessRead
	AccessCondRead
	AccessWrite
	AccessCondWrite
	AccessReadWrite
	AccessReadCondWrite
	AccessNoMemAccess
)

func (a OpAccess) String() string {
	switch a {
	case AccessNone:
		return "None"
	case AccessRead:
		return "Read"
	case AccessCondRead:
		return "CondRead"
	case AccessWrite:
		return "Write"
	case AccessCondWrite:
		return "CondWrite"
	case AccessReadWrite:
		return "ReadWrite"
	case AccessReadCondWrite:
		return "ReadCondWrite"
	case AccessNoMemAccess:
		return "NoMemAccess"
	default:
		return fmt.Sprintf("OpAccess(%d)", a)
	}
}

// ConditionCode is the condition tested
// by Jcc, SETcc, CMOVcc and related
// instructions.
type ConditionCode uint8

const (
	ConditionNone ConditionCode = iota
	ConditionO
	ConditionNO
	ConditionB
	ConditionAE
	ConditionE
	ConditionNE
	ConditionBE
	ConditionA
	ConditionS
	ConditionNS
	ConditionP
	ConditionNP
	ConditionL
	ConditionGE
	ConditionLE
	ConditionG
)

// conditionForNibble maps the low four
// bits of a Jcc/SETcc/CMOVcc opcode to
// its condition.
var conditionForNibble = [16]ConditionCode{
	ConditionO, ConditionNO, ConditionB, ConditionAE,
	ConditionE, ConditionNE, ConditionBE, ConditionA,
	ConditionS, ConditionNS, ConditionP, ConditionNP,
	ConditionL, ConditionGE, ConditionLE, ConditionG,
}

// ConditionForNibble returns the condition
// encoded in the low four bits of a
// conditional opcode.
func ConditionForNibble(b byte) ConditionCode { return conditionForNibble[b&0xf] }

func (c ConditionCode) String() string {
	switch c {
	case ConditionNone:
		return "None"
	case ConditionO:
		return "o"
	case ConditionNO:
		return "no"
	case ConditionB:
		return "b"
	case ConditionAE:
		return "ae"
	case ConditionE:
		return "e"
	case ConditionNE:
		return "ne"
	case ConditionBE:
		return "be"
	case ConditionA:
		return "a"
	case ConditionS:
		return "s"
	case ConditionNS:
		return "ns"
	case ConditionP:
		return "p"
	case ConditionNP:
		return "np"
	case ConditionL:
		return "l"
	case ConditionGE:
		return "ge"
	case ConditionLE:
		return "le"
	case ConditionG:
		return "g"
	default:
		return fmt.Sprintf("ConditionCode(%d)", c)
	}
}

// RepPrefixKind selects the repeat prefix
// applied by the string instruction
// builders.
type RepPrefixKind uint8

const (
	RepNone RepPrefixKind = iota
	RepRepe
	RepRepne
)

// Rep is an alias of RepRepe, which shares
// its encoding (0xf3).
const Rep = RepRepe

func (r RepPrefixKind) String() string {
	switch r {
	case RepNone:
		return "None"
	case RepRepe:
		return "Repe"
	case RepRepne:
		return "Repne"
	default:
		return fmt.Sprintf("RepPrefixKind(%d)", r)
	}
}
