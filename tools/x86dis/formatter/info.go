// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package formatter

import (
	"strings"

	"firefly-os.dev/tools/x86dis/x86"
)

// infoFlags describes how an instruction
// is formatted.
type infoFlags uint16

const (
	infoDirective      infoFlags = 1 << iota // The mnemonic is a data directive.
	infoCondition                            // The mnemonic contains a condition code.
	infoImplicitString                       // Implicit operands are hidden in Intel and NASM.
	infoFarBranch                            // A far call or jump.
	infoExtend                               // movzx or movsx, which gas names by operand size.
)

// formatInfo contains the mnemonics used
// for one Code.
type formatInfo struct {
	mnemonic string // Intel and NASM.
	masm     string
	gas      string

	// The text either side of the
	// condition code in the mnemonic.
	ccPrefix string
	ccSuffix string

	pseudo *pseudoOps
	flags  infoFlags
}

func (i *formatInfo) has(f infoFlags) bool { return i.flags&f != 0 }

var formatInfos [x86.NumCodes]formatInfo

// gasMnemonics are the gas names for
// instructions it names differently.
var gasMnemonics = map[x86.Code]string{
	x86.Cbw:             "cbtw",
	x86.Cwde:            "cwtl",
	x86.Cdqe:            "cltq",
	x86.Cwd:             "cwtd",
	x86.Cdq:             "cltd",
	x86.Cqo:             "cqto",
	x86.Call_ptr1616:    "lcall",
	x86.Call_ptr1632:    "lcall",
	x86.Call_m1616:      "lcall",
	x86.Call_m1632:      "lcall",
	x86.Call_m1664:      "lcall",
	x86.Jmp_ptr1616:     "ljmp",
	x86.Jmp_ptr1632:     "ljmp",
	x86.Jmp_m1616:       "ljmp",
	x86.Jmp_m1632:       "ljmp",
	x86.Jmp_m1664:       "ljmp",
	x86.Retfw:           "lretw",
	x86.Retfw_imm16:     "lretw",
	x86.Retfd:           "lret",
	x86.Retfd_imm16:     "lret",
	x86.Retfq:           "lretq",
	x86.Retfq_imm16:     "lretq",
	x86.Movsxd_r64_rm32: "movslq",
	x86.Xlat_m8:         "xlat",
	x86.Insd_m32_DX:     "insl",
	x86.Outsd_DX_m32:    "outsl",
	x86.Movsd_m32_m32:   "movsl",
	x86.Cmpsd_m32_m32:   "cmpsl",
	x86.Stosd_m32_EAX:   "stosl",
	x86.Lodsd_EAX_m32:   "lodsl",
	x86.Scasd_EAX_m32:   "scasl",
}

// masmStringMnemonics are the MASM names
// for the string instructions, which take
// their operand size from the operands.
var masmStringMnemonics = map[x86.Code]string{
	x86.Insb_m8_DX:    "ins",
	x86.Insw_m16_DX:   "ins",
	x86.Insd_m32_DX:   "ins",
	x86.Outsb_DX_m8:   "outs",
	x86.Outsw_DX_m16:  "outs",
	x86.Outsd_DX_m32:  "outs",
	x86.Movsb_m8_m8:   "movs",
	x86.Movsw_m16_m16: "movs",
	x86.Movsd_m32_m32: "movs",
	x86.Movsq_m64_m64: "movs",
	x86.Cmpsb_m8_m8:   "cmps",
	x86.Cmpsw_m16_m16: "cmps",
	x86.Cmpsd_m32_m32: "cmps",
	x86.Cmpsq_m64_m64: "cmps",
	x86.Stosb_m8_AL:   "stos",
	x86.Stosw_m16_AX:  "stos",
	x86.Stosd_m32_EAX: "stos",
	x86.Stosq_m64_RAX: "stos",
	x86.Lodsb_AL_m8:   "lods",
	x86.Lodsw_AX_m16:  "lods",
	x86.Lodsd_EAX_m32: "lods",
	x86.Lodsq_RAX_m64: "lods",
	x86.Scasb_AL_m8:   "scas",
	x86.Scasw_AX_m16:  "scas",
	x86.Scasd_EAX_m32: "scas",
	x86.Scasq_RAX_m64: "scas",
	x86.Xlat_m8:       "xlat",
}

// gasDirectives are the gas names for
// the data directives.
var gasDirectives = map[x86.Code]string{
	x86.DeclareByte:  ".byte",
	x86.DeclareWord:  ".word",
	x86.DeclareDword: ".int",
	x86.DeclareQword: ".quad",
}

func init() {
	for i := range formatInfos {
		code := x86.Code(i)
		mnemonic := code.Mnemonic()
		info := formatInfo{
			mnemonic: mnemonic,
			masm:     mnemonic,
			gas:      mnemonic,
		}

		if code.IsDeclareData() {
			info.flags |= infoDirective
			info.gas = gasDirectives[code]
		}

		if cc := code.ConditionCode(); cc != x86.ConditionNone {
			name := cc.String()
			if i := strings.LastIndex(mnemonic, name); i > 0 {
				info.flags |= infoCondition
				info.ccPrefix = mnemonic[:i]
				info.ccSuffix = mnemonic[i+len(name):]
			}
		}

		if code.IsString() || code == x86.Xlat_m8 {
			info.flags |= infoImplicitString
			if masm, ok := masmStringMnemonics[code]; ok {
				info.masm = masm
			}
		}

		if code.IsFar() && (code.IsCall() || code.IsJmp()) {
			info.flags |= infoFarBranch
		}

		if strings.HasPrefix(mnemonic, "movzx") || mnemonic == "movsx" {
			info.flags |= infoExtend
		}

		if gas, ok := gasMnemonics[code]; ok {
			info.gas = gas
		}

		if n := code.OpCount(); n > 0 && code.OpCodeOperandKind(n-1) == x86.Op_imm8 {
			info.pseudo = pseudoOpsFor(mnemonic)
		}

		formatInfos[i] = info
	}
}

// infoFor returns the format info for
// code.
func infoFor(code x86.Code) *formatInfo {
	if int(code) >= len(formatInfos) {
		return &formatInfos[x86.Invalid]
	}

	return &formatInfos[code]
}
