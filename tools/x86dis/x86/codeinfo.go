// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import (
	"fmt"
)

// kinds lists the operands of an
// instruction form, in Intel order.
type kinds [5]OpCodeOperandKind

// codeFlags describes the prefixes and
// decorators an instruction form accepts,
// plus details used when formatting it.
type codeFlags uint32

const (
	flagLock           codeFlags = 1 << iota // Accepts LOCK with a memory destination.
	flagXacquire                             // Accepts XACQUIRE with LOCK.
	flagXrelease                             // Accepts XRELEASE with LOCK.
	flagXreleaseNoLock                       // Accepts XRELEASE without LOCK.
	flagRep                                  // Accepts REP.
	flagRepeRepne                            // Accepts REPE and REPNE.
	flagBnd                                  // Accepts BND.
	flagNotrack                              // Accepts NOTRACK.
	flagJccHint                              // Accepts the branch hint prefixes.
	flagJcc
	flagCC // The low nibble of the opcode is a condition.
	flagLoop
	flagCall
	flagJmp
	flagRet
	flagFar
	flagString
	flagBroadcast
	flagER  // Embedded rounding.
	flagSAE // Suppress all exceptions.
	flagOpMask
	flagZeroing
	flagRequireOpMask
	flagNoSizeKeyword
	flagDirective
	flagFpu
)

// form is one entry in the instruction
// form tables.
type form struct {
	code     Code
	mnemonic string
	opcode   string
	ops      kinds
	mem      MemorySize
	flags    codeFlags
}

// vectorForm is an EVEX instruction form,
// which adds the broadcast memory size
// and the tuple type used to scale 8-bit
// displacements.
type vectorForm struct {
	form
	bcst  MemorySize
	tuple TupleType
}

// codeInfo contains the static details
// of a Code, collected from the form
// tables.
type codeInfo struct {
	mnemonic string
	op       *OpCode
	ops      kinds
	opCount  uint8
	mem      MemorySize
	bcst     MemorySize
	tuple    TupleType
	flags    codeFlags
	cc       ConditionCode
	opSize   uint8 // Operand size in bits, or zero.
}

var codeInfos [NumCodes]codeInfo

func init() {
	for code, mnemonic := range [...]string{
		DeclareByte:  "db",
		DeclareWord:  "dw",
		DeclareDword: "dd",
		DeclareQword: "dq",
	} {
		if mnemonic == "" {
			continue
		}

		codeInfos[code] = codeInfo{
			mnemonic: mnemonic,
			op:       &OpCode{Syntax: "", W: -1, L: -1, ModRMreg: -1, ModRMrm: -1},
			flags:    flagDirective,
		}
	}

	codeInfos[Invalid] = codeInfo{
		mnemonic: "(bad)",
		op:       &OpCode{Syntax: "", W: -1, L: -1, ModRMreg: -1, ModRMrm: -1},
	}

	add := func(f *form, bcst MemorySize, tuple TupleType) {
		if f.code == Invalid || int(f.code) >= NumCodes {
			panic(fmt.Sprintf("form %q has bad code %d", f.mnemonic, f.code))
		}

		if codeInfos[f.code].op != nil {
			panic(fmt.Sprintf("code %s is defined twice", f.code))
		}

		op, err := ParseOpCode(f.opcode)
		if err != nil {
			panic(fmt.Sprintf("code %s: %v", f.code, err))
		}

		info := codeInfo{
			mnemonic: f.mnemonic,
			op:       op,
			ops:      f.ops,
			mem:      f.mem,
			bcst:     bcst,
			tuple:    tuple,
			flags:    f.flags,
			opSize:   op.OperandSize,
		}

		for _, kind := range f.ops {
			if kind == Op_none {
				break
			}

			info.opCount++
			if kind.UsesModRM() {
				op.ModRM = true
			}

			// Register-only and memory-only
			// operands in ModR/M.rm restrict
			// ModR/M.mod.
			if kind.Encoding() == EncodingModRMrm {
				switch {
				case kind.AcceptsMemory() && !kind.AcceptsRegister():
					op.ModRMmod = ModMemory
				case kind.AcceptsRegister() && !kind.AcceptsMemory():
					op.ModRMmod = ModRegister
				}
			}

			if _, ok := kind.IsVSIB(); ok {
				op.VSIB = true
			}

			switch kind {
			case Op_xmm_is4, Op_ymm_is4:
				op.Is4 = true
			case Op_r8_or_mem, Op_r8_reg, Op_r8_opcode:
				if info.opSize == 0 {
					info.opSize = 8
				}
			}
		}

		if f.flags&flagCC != 0 {
			info.cc = ConditionForNibble(op.Opcode)
		}

		if op.Encoding == EncodingLegacy && op.Table == TableLegacy && op.Opcode >= 0xd8 && op.Opcode <= 0xdf {
			info.flags |= flagFpu
		}

		codeInfos[f.code] = info
	}

	for i := range legacyForms {
		add(&legacyForms[i], MemorySizeUnknown, TupleNone)
	}
	for i := range twoByteForms {
		add(&twoByteForms[i], MemorySizeUnknown, TupleNone)
	}
	for i := range sseForms {
		add(&sseForms[i], MemorySizeUnknown, TupleNone)
	}
	for i := range x87Forms {
		add(&x87Forms[i], MemorySizeUnknown, TupleNone)
	}
	for i := range vexForms {
		add(&vexForms[i], MemorySizeUnknown, TupleNone)
	}
	for i := range evexForms {
		add(&evexForms[i].form, evexForms[i].bcst, evexForms[i].tuple)
	}
	for i := range xopForms {
		add(&xopForms[i], MemorySizeUnknown, TupleNone)
	}
	for i := range mvexForms {
		add(&mvexForms[i], MemorySizeUnknown, TupleNone)
	}

	for code := range codeInfos {
		if codeInfos[code].op == nil {
			panic(fmt.Sprintf("code %s has no instruction form", Code(code)))
		}
	}
}

func (c Code) String() string {
	if int(c) >= NumCodes {
		return fmt.Sprintf("Code(%d)", uint16(c))
	}

	return codeNames[codeNameIndex[c]:codeNameIndex[c+1]]
}

// info returns the static details for c,
// or those of Invalid if c is out of
// range.
func (c Code) info() *codeInfo {
	if int(c) >= NumCodes {
		return &codeInfos[Invalid]
	}

	return &codeInfos[c]
}

// Mnemonic returns the instruction's
// mnemonic in lower case, such as "add".
func (c Code) Mnemonic() string { return c.info().mnemonic }

// OpCount returns the number of operands
// the instruction form has.
func (c Code) OpCount() int { return int(c.info().opCount) }

// OpCodeOperandKind returns the kind of
// the i'th operand, or Op_none.
func (c Code) OpCodeOperandKind(i int) OpCodeOperandKind {
	if i < 0 || i >= len(kinds{}) {
		return Op_none
	}

	return c.info().ops[i]
}

// OpCode returns the structured encoding
// details of the instruction form. The
// result must not be modified.
func (c Code) OpCode() *OpCode { return c.info().op }

// Encoding returns the prefix scheme used
// to encode the instruction form.
func (c Code) Encoding() EncodingKind { return c.info().op.Encoding }

// TupleType returns the EVEX tuple type,
// or TupleNone.
func (c Code) TupleType() TupleType { return c.info().tuple }

// MemorySize returns the size of the
// instruction's memory operand, ignoring
// any broadcast.
func (c Code) MemorySize() MemorySize { return c.info().mem }

// BroadcastMemorySize returns the size of
// the memory operand when it is broadcast,
// or MemorySizeUnknown.
func (c Code) BroadcastMemorySize() MemorySize { return c.info().bcst }

// ConditionCode returns the condition
// tested by the instruction, or
// ConditionNone.
func (c Code) ConditionCode() ConditionCode { return c.info().cc }

// OperandSize returns the operand size
// in bits implied by the instruction form,
// or zero if there is none.
func (c Code) OperandSize() int { return int(c.info().opSize) }

func (c Code) has(f codeFlags) bool { return c.info().flags&f != 0 }

// Prefixes and decorators.

func (c Code) CanLock() bool                  { return c.has(flagLock) }
func (c Code) CanXacquire() bool              { return c.has(flagXacquire) }
func (c Code) CanXrelease() bool              { return c.has(flagXrelease | flagXreleaseNoLock) }
func (c Code) CanXreleaseWithoutLock() bool   { return c.has(flagXreleaseNoLock) }
func (c Code) CanRep() bool                   { return c.has(flagRep) }
func (c Code) CanRepeRepne() bool             { return c.has(flagRepeRepne) }
func (c Code) CanBnd() bool                   { return c.has(flagBnd) }
func (c Code) CanNotrack() bool               { return c.has(flagNotrack) }
func (c Code) CanBranchHint() bool            { return c.has(flagJccHint) }
func (c Code) CanBroadcast() bool             { return c.has(flagBroadcast) }
func (c Code) CanRound() bool                 { return c.has(flagER) }
func (c Code) CanSuppressAllExceptions() bool { return c.has(flagSAE | flagER) }
func (c Code) CanOpMask() bool                { return c.has(flagOpMask) }
func (c Code) CanZeroMask() bool              { return c.has(flagZeroing) }
func (c Code) RequiresOpMask() bool           { return c.has(flagRequireOpMask) }

// Control flow and categories.

func (c Code) IsJcc() bool                  { return c.has(flagJcc) }
func (c Code) IsLoop() bool                 { return c.has(flagLoop) }
func (c Code) IsCall() bool                 { return c.has(flagCall) }
func (c Code) IsJmp() bool                  { return c.has(flagJmp) }
func (c Code) IsRet() bool                  { return c.has(flagRet) }
func (c Code) IsFar() bool                  { return c.has(flagFar) }
func (c Code) IsString() bool               { return c.has(flagString) }
func (c Code) IsFpu() bool                  { return c.has(flagFpu) }
func (c Code) IsDeclareData() bool          { return c.has(flagDirective) }
func (c Code) HidesMemorySizeKeyword() bool { return c.has(flagNoSizeKeyword) }

// IsBranch returns whether the instruction
// transfers control, including returns.
func (c Code) IsBranch() bool {
	return c.has(flagJcc | flagLoop | flagCall | flagJmp | flagRet)
}
