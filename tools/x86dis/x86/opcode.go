// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import (
	"fmt"
	"strconv"
	"strings"
)

// OpCodeTable identifies the opcode map
// containing an instruction's opcode byte.
type OpCodeTable uint8

const (
	TableLegacy OpCodeTable = iota // The one-byte opcode map.
	Table0F
	Table0F38
	Table0F3A
	TableMap5
	TableMap6
	TableXOP8
	TableXOP9
	TableXOPA

	NumOpCodeTables int = iota
)

func (t OpCodeTable) String() string {
	switch t {
	case TableLegacy:
		return "legacy"
	case Table0F:
		return "0F"
	case Table0F38:
		return "0F38"
	case Table0F3A:
		return "0F3A"
	case TableMap5:
		return "MAP5"
	case TableMap6:
		return "MAP6"
	case TableXOP8:
		return "X8"
	case TableXOP9:
		return "X9"
	case TableXOPA:
		return "XA"
	default:
		return fmt.Sprintf("OpCodeTable(%d)", t)
	}
}

// MandatoryPrefix is the prefix that selects
// between instruction forms sharing an
// opcode, either as a legacy prefix or as
// the pp field of a VEX, EVEX, XOP or MVEX
// prefix.
type MandatoryPrefix uint8

const (
	MandatoryPrefixAny  MandatoryPrefix = iota // 66, F2 and F3 have their ordinary meaning.
	MandatoryPrefixNone                        // No 66, F2 or F3 prefix (NP).
	MandatoryPrefix66
	MandatoryPrefixF3
	MandatoryPrefixF2
)

// MandatoryPrefixForPP returns the mandatory
// prefix encoded in a 2-bit pp field.
func MandatoryPrefixForPP(pp byte) MandatoryPrefix {
	return MandatoryPrefix(pp&0b11) + MandatoryPrefixNone
}

func (p MandatoryPrefix) String() string {
	switch p {
	case MandatoryPrefixAny:
		return ""
	case MandatoryPrefixNone:
		return "NP"
	case MandatoryPrefix66:
		return "66"
	case MandatoryPrefixF3:
		return "F3"
	case MandatoryPrefixF2:
		return "F2"
	default:
		return fmt.Sprintf("MandatoryPrefix(%d)", p)
	}
}

// ModRMmod restricts the ModR/M.mod field
// of an instruction form.
type ModRMmod uint8

const (
	ModAny      ModRMmod = iota
	ModMemory            // Any value except 0b11.
	ModRegister          // 0b11.
)

// Feature is a set of decoder features
// that enable or disable instruction forms
// which are not decoded by default, such
// as undocumented or obsolete instructions.
type Feature uint32

const (
	FeatureUmov Feature = 1 << iota
	FeatureXbts
	FeatureCmpxchg486A
	FeatureOldFpu
	FeaturePcommit
	FeatureLoadall286
	FeatureLoadall386
	FeatureCl1invmb
	FeatureMovTr
	FeatureJmpe
	FeatureMPX
	FeatureKNC
	FeatureNoPause
	FeatureNoWbnoinvd
)

var featureNames = map[string]Feature{
	"umov":        FeatureUmov,
	"xbts":        FeatureXbts,
	"cmpxchg486a": FeatureCmpxchg486A,
	"oldfpu":      FeatureOldFpu,
	"pcommit":     FeaturePcommit,
	"loadall286":  FeatureLoadall286,
	"loadall386":  FeatureLoadall386,
	"cl1invmb":    FeatureCl1invmb,
	"movtr":       FeatureMovTr,
	"jmpe":        FeatureJmpe,
	"mpx":         FeatureMPX,
	"knc":         FeatureKNC,
	"nopause":     FeatureNoPause,
	"nowbnoinvd":  FeatureNoWbnoinvd,
}

// OpCode includes the textual description
// of an instruction form's encoding, in the
// style of the Intel manuals, plus a
// structured representation of the same
// information.
type OpCode struct {
	// The textual representation.
	Syntax string

	Encoding  EncodingKind
	Table     OpCodeTable
	Opcode    byte
	Mandatory MandatoryPrefix

	// Register in the low 3 bits of the opcode.
	RegisterModifier bool

	// W and L are -1 when ignored. L is
	// 0, 1 or 2 for 128, 256 and 512-bit
	// vectors.
	W int8
	L int8

	// ModR/M byte.
	ModRM    bool     // Whether a ModR/M byte is always required.
	ModRMmod ModRMmod // Any restriction on the ModR/M byte's mod field.
	ModRMreg int8     // Any fixed value used as the ModR/M byte's reg field, or -1.
	ModRMrm  int8     // Any fixed value used as the ModR/M byte's r/m field, or -1.

	// Operand and address size restrictions,
	// in bits, or zero.
	OperandSize uint8
	AddressSize uint8

	// Mode restrictions.
	Not64  bool // Not valid in 64-bit mode.
	Only64 bool // Only valid in 64-bit mode.

	// The operand size defaults to 64 bits
	// in 64-bit mode (D64), or is forced to
	// 64 bits in 64-bit mode (F64).
	Default64 bool
	Force64   bool

	NoREXB bool // REX.B must be clear.
	WIG32  bool // W is ignored outside 64-bit mode.
	VSIB   bool // The memory operand uses a vector SIB.
	Is4    bool // A register is expected in the 4-bit immediate.

	// Decoder features required to decode
	// this form, or which prevent it being
	// decoded.
	Requires Feature
	Excludes Feature
}

func (o *OpCode) String() string {
	return o.Syntax
}

// VectorSize returns the instruction form's
// vector size, if any.
func (o *OpCode) VectorSize() int {
	switch o.L {
	case 0:
		return 128
	case 1:
		return 256
	case 2:
		return 512
	}

	return 0
}

// ParseOpCode processes the textual description
// of an instruction form's encoding, producing
// a structured representation of the same
// information.
//
// The syntax follows the Intel manuals (see
// Volume 2A, section 3.1.1.1), with a few
// additional clauses:
//
//   - o16, o32, o64: The effective operand size.
//   - a16, a32, a64: The effective address size.
//   - !64, only64: The form is not valid in, or
//     is only valid in, 64-bit mode.
//   - D64, F64: The operand size defaults to, or
//     is forced to, 64 bits in 64-bit mode.
//   - NOREXB: REX.B must be clear.
//   - WIG32: W is ignored outside 64-bit mode.
//   - +feature, -feature: A decoder feature is
//     required, or prevents the form matching.
//   - XOP.*, MVEX.*: As VEX.* and EVEX.*, with
//     the XOP map selectors X8, X9 and XA.
func ParseOpCode(s string) (*OpCode, error) {
	o := &OpCode{
		Syntax:   s,
		W:        -1,
		L:        -1,
		ModRMreg: -1,
		ModRMrm:  -1,
	}

	// Start with any prefixes.
	parts := strings.Fields(s)
prefixes:
	for i, clause := range parts {
		switch clause {
		case "NP":
			o.Mandatory = MandatoryPrefixNone
		case "NFx":
		case "REX.W":
			o.W = 1
			o.Only64 = true
		case "66":
			o.Mandatory = MandatoryPrefix66
		case "F3":
			o.Mandatory = MandatoryPrefixF3
		case "F2":
			o.Mandatory = MandatoryPrefixF2
		case "o16":
			o.OperandSize = 16
		case "o32":
			o.OperandSize = 32
		case "o64":
			o.OperandSize = 64
		case "a16":
			o.AddressSize = 16
		case "a32":
			o.AddressSize = 32
		case "a64":
			o.AddressSize = 64
		case "!64":
			o.Not64 = true
		case "only64":
			o.Only64 = true
		case "D64":
			o.Default64 = true
		case "F64":
			o.Force64 = true
		case "NOREXB":
			o.NoREXB = true
		case "WIG32":
			o.WIG32 = true
		default:
			if len(clause) > 1 && (clause[0] == '+' || clause[0] == '-') {
				feature, ok := featureNames[clause[1:]]
				if !ok {
					return nil, fmt.Errorf("bad opcode syntax %q: unknown feature %q", s, clause[1:])
				}

				if clause[0] == '+' {
					o.Requires |= feature
				} else {
					o.Excludes |= feature
				}

				continue
			}

			parts = parts[i:]
			break prefixes
		}
	}

	if o.Not64 && o.Only64 {
		return nil, fmt.Errorf("bad opcode syntax %q: form is both invalid in and limited to 64-bit mode", s)
	}

	// Opcode bytes, including any escape
	// bytes and any fixed ModR/M byte.
	var opcode []byte
	for _, clause := range parts {
		switch {
		case strings.HasSuffix(clause, "+rb"), strings.HasSuffix(clause, "+rw"), strings.HasSuffix(clause, "+rd"), strings.HasSuffix(clause, "+ro"):
			b, err := strconv.ParseUint(strings.TrimSuffix(clause[:len(clause)-3], "+"), 16, 8)
			if err != nil {
				return nil, fmt.Errorf("invalid opcode register modifier clause %q: %v", clause, err)
			}

			opcode = append(opcode, byte(b))
			o.RegisterModifier = true
			continue
		case strings.HasSuffix(clause, "+i"):
			// An FPU stack index in the
			// ModR/M byte, which must be
			// a register form.
			b, err := strconv.ParseUint(strings.TrimSuffix(clause, "+i"), 16, 8)
			if err != nil {
				return nil, fmt.Errorf("invalid FPU stack index clause %q: %v", clause, err)
			}

			modrm := ModRM(b)
			if !modrm.IsRegister() || modrm.RM() != 0 {
				return nil, fmt.Errorf("invalid FPU stack index clause %q: not a register form", clause)
			}

			o.ModRM = true
			o.ModRMmod = ModRegister
			o.ModRMreg = int8(modrm.Reg())
			continue
		}

		// Handle the rich prefix clauses.
		if kind, rest, ok := strings.Cut(clause, "."); ok && (kind == "VEX" || kind == "EVEX" || kind == "XOP" || kind == "MVEX") {
			if err := o.parseVectorClause(kind, rest); err != nil {
				return nil, fmt.Errorf("invalid encoding clause %s: %v", clause, err)
			}

			continue
		}

		// Handle fixed ModR/M clauses, as they're complex.
		if strings.Contains(clause, ":") {
			fields := strings.Split(clause, ":")
			if len(fields) != 3 {
				return nil, fmt.Errorf("invalid encoding clause %s: failed to parse ModR/M fields", clause)
			}

			switch fields[0] {
			case "11":
				o.ModRMmod = ModRegister
			case "!(11)":
				o.ModRMmod = ModMemory
			default:
				return nil, fmt.Errorf("invalid encoding clause %s: invalid ModR/M.mod field %q", clause, fields[0])
			}

			if fields[1] != "rrr" {
				n, err := strconv.ParseUint(fields[1], 2, 8)
				if err != nil || n > 0b111 {
					return nil, fmt.Errorf("invalid encoding clause %s: invalid ModR/M.reg field %q", clause, fields[1])
				}

				o.ModRMreg = int8(n)
			}

			if fields[2] != "bbb" {
				n, err := strconv.ParseUint(fields[2], 2, 8)
				if err != nil || n > 0b111 {
					return nil, fmt.Errorf("invalid encoding clause %s: invalid ModR/M.r/m field %q", clause, fields[2])
				}

				o.ModRMrm = int8(n)
			}

			o.ModRM = true
			continue
		}

		switch clause {
		// Unused syntax.
		case "+", "ib", "iw", "id", "io", "cb", "cw", "cd", "cp":
		// Opcode extensions.
		case "/0", "/1", "/2", "/3", "/4", "/5", "/6", "/7":
			o.ModRMreg = int8(clause[1] - '0')
			o.ModRM = true
		// R/M operand.
		case "/r":
			o.ModRM = true
		case "/is4":
			o.Is4 = true
		case "/vsib":
			o.VSIB = true
		default:
			b, err := strconv.ParseUint(clause, 16, 8)
			if err != nil {
				return nil, fmt.Errorf("bad opcode syntax %q: failed to handle encoding clause %q", s, clause)
			}

			opcode = append(opcode, byte(b))
		}
	}

	// Split the opcode bytes into the map
	// escape, opcode and fixed ModR/M byte.
	if o.Encoding == EncodingLegacy && len(opcode) > 1 && opcode[0] == 0x0f {
		switch opcode[1] {
		case 0x38:
			o.Table = Table0F38
			opcode = opcode[2:]
		case 0x3a:
			o.Table = Table0F3A
			opcode = opcode[2:]
		default:
			o.Table = Table0F
			opcode = opcode[1:]
		}
	}

	switch len(opcode) {
	case 1:
		o.Opcode = opcode[0]
	case 2:
		if o.ModRM || o.RegisterModifier {
			return nil, fmt.Errorf("bad opcode syntax %q: fixed ModR/M byte with another ModR/M clause", s)
		}

		modrm := ModRM(opcode[1])
		if !modrm.IsRegister() {
			return nil, fmt.Errorf("bad opcode syntax %q: fixed ModR/M byte %#02x is not a register form", s, opcode[1])
		}

		o.Opcode = opcode[0]
		o.ModRM = true
		o.ModRMmod = ModRegister
		o.ModRMreg = int8(modrm.Reg())
		o.ModRMrm = int8(modrm.RM())
	default:
		return nil, fmt.Errorf("bad opcode syntax %q: %d opcode bytes", s, len(opcode))
	}

	if o.RegisterModifier && o.Opcode&0b111 != 0 {
		return nil, fmt.Errorf("bad opcode syntax %q: register modifier opcode %#02x has low bits set", s, o.Opcode)
	}

	return o, nil
}

// parseVectorClause handles a VEX, EVEX,
// XOP or MVEX clause, such as
// "EVEX.512.F2.0F38.W0".
func (o *OpCode) parseVectorClause(kind, rest string) error {
	switch kind {
	case "VEX":
		o.Encoding = EncodingVEX
	case "EVEX":
		o.Encoding = EncodingEVEX
	case "XOP":
		o.Encoding = EncodingXOP
	case "MVEX":
		o.Encoding = EncodingMVEX
		o.Only64 = true
		o.Requires |= FeatureKNC
	}

	o.Mandatory = MandatoryPrefixNone
	o.L = 0
	o.W = -1
	mapped := false
	for _, part := range strings.Split(rest, ".") {
		switch part {
		case "NDS", "NDD", "DDS":
			// The NDS/NDD/DDS terms can be ignored,
			// as their information is also encoded
			// in the operand details.
		case "128", "L0", "LZ":
			o.L = 0
		case "256", "L1":
			o.L = 1
		case "512":
			o.L = 2
		case "LIG", "LLIG":
			o.L = -1
		case "NP":
			o.Mandatory = MandatoryPrefixNone
		case "66":
			o.Mandatory = MandatoryPrefix66
		case "F3":
			o.Mandatory = MandatoryPrefixF3
		case "F2":
			o.Mandatory = MandatoryPrefixF2
		case "0F":
			o.Table, mapped = Table0F, true
		case "0F38":
			o.Table, mapped = Table0F38, true
		case "0F3A":
			o.Table, mapped = Table0F3A, true
		case "MAP5":
			o.Table, mapped = TableMap5, true
		case "MAP6":
			o.Table, mapped = TableMap6, true
		case "X8":
			o.Table, mapped = TableXOP8, true
		case "X9":
			o.Table, mapped = TableXOP9, true
		case "XA":
			o.Table, mapped = TableXOPA, true
		case "WIG":
			o.W = -1
		case "W0":
			o.W = 0
		case "W1":
			o.W = 1
		default:
			return fmt.Errorf("bad %s clause %q", kind, part)
		}
	}

	if !mapped {
		return fmt.Errorf("missing %s map", kind)
	}

	if (o.Encoding == EncodingXOP) != (o.Table >= TableXOP8) {
		return fmt.Errorf("map %s is not valid in %s", o.Table, kind)
	}

	if o.Encoding == EncodingMVEX {
		o.L = -1
	}

	return nil
}
