// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import (
	"fmt"
)

// OperandEncoding represents a way in
// which an x86 instruction's operand
// is encoded (or not) in the machine
// code.
type OperandEncoding uint8

const (
	EncodingNone             OperandEncoding = iota // The operand is absent.
	EncodingImplicit                                // The operand is implied by the opcode and is not encoded.
	EncodingVEXvvvv                                 // The operand is encoded in the VEX.vvvv field of the machine code.
	EncodingRegisterModifier                        // The operand is encoded in the opcode byte.
	EncodingStackIndex                              // The operand is an x87 stack index, encoded in the ModR/M.rm field.
	EncodingCodeOffset                              // The operand is encoded as a code offset after the opcode.
	EncodingModRMreg                                // The operand is encoded in the ModR/M.reg field of the machine code.
	EncodingModRMrm                                 // The operand is encoded in the ModR/M.rm field of the machine code.
	EncodingDisplacement                            // The operand is encoded in the displacement field of the machine code.
	EncodingImmediate                               // The operand is encoded in the immediate field of the machine code.
	EncodingVEXis4                                  // The operand is encoded in the VEX /is4 immediate byte.
)

func (e OperandEncoding) String() string {
	switch e {
	case EncodingNone:
		return "none"
	case EncodingImplicit:
		return "implicit"
	case EncodingVEXvvvv:
		return "VEX.vvvv"
	case EncodingRegisterModifier:
		return "register modifier"
	case EncodingStackIndex:
		return "stack index"
	case EncodingCodeOffset:
		return "code offset"
	case EncodingModRMreg:
		return "ModR/M reg"
	case EncodingModRMrm:
		return "ModR/M r/m"
	case EncodingDisplacement:
		return "displacement"
	case EncodingImmediate:
		return "immediate"
	case EncodingVEXis4:
		return "VEX /is4"
	default:
		return fmt.Sprintf("OperandEncoding(%d)", e)
	}
}

// OpCodeOperandKind describes one operand
// of an instruction form: where it is
// encoded and which registers or memory
// references it accepts.
//
// The kinds are named after the operand
// syntax in the Intel manuals, with the
// encoding as a suffix where the same
// syntax can be encoded in more than one
// way.
type OpCodeOperandKind uint8

const (
	Op_none OpCodeOperandKind = iota

	// Implicit registers and values.
	Op_al
	Op_cl
	Op_ax
	Op_dx
	Op_eax
	Op_rax
	Op_es
	Op_cs
	Op_ss
	Op_ds
	Op_fs
	Op_gs
	Op_st0
	Op_xmm0
	Op_imm8_const1

	// ModR/M.reg registers.
	Op_r8_reg
	Op_r16_reg
	Op_r32_reg
	Op_r64_reg
	Op_seg_reg
	Op_cr_reg
	Op_dr_reg
	Op_tr_reg
	Op_bnd_reg
	Op_k_reg
	Op_mm_reg
	Op_xmm_reg
	Op_ymm_reg
	Op_zmm_reg
	Op_tmm_reg

	// ModR/M.rm registers, with no memory form.
	Op_r16_rm
	Op_r32_rm
	Op_r64_rm
	Op_k_rm
	Op_mm_rm
	Op_xmm_rm
	Op_ymm_rm
	Op_zmm_rm
	Op_sti

	// ModR/M.rm registers or memory.
	Op_r8_or_mem
	Op_r16_or_mem
	Op_r32_or_mem
	Op_r64_or_mem
	Op_bnd_or_mem_mpx
	Op_k_or_mem
	Op_mm_or_mem
	Op_xmm_or_mem
	Op_ymm_or_mem
	Op_zmm_or_mem

	// ModR/M.rm memory only.
	Op_mem
	Op_mem_mpx
	Op_mem_vsib32x
	Op_mem_vsib64x
	Op_mem_vsib32y
	Op_mem_vsib64y
	Op_mem_vsib32z
	Op_mem_vsib64z

	// Registers in the low bits of the opcode.
	Op_r8_opcode
	Op_r16_opcode
	Op_r32_opcode
	Op_r64_opcode

	// VEX.vvvv registers.
	Op_r32_vvvv
	Op_r64_vvvv
	Op_k_vvvv
	Op_xmm_vvvv
	Op_ymm_vvvv
	Op_zmm_vvvv

	// Registers in the high bits of the
	// trailing immediate.
	Op_xmm_is4
	Op_ymm_is4

	// Immediates.
	Op_imm4_m2z
	Op_imm8
	Op_imm16
	Op_imm32
	Op_imm64
	Op_imm8sex16
	Op_imm8sex32
	Op_imm8sex64
	Op_imm32sex64

	// Branch targets. The suffix is the size
	// of the encoded displacement or offset.
	Op_br16_1
	Op_br32_1
	Op_br64_1
	Op_br16_2
	Op_br32_4
	Op_br64_4
	Op_xbegin_2
	Op_xbegin_4
	Op_farbr2_2
	Op_farbr4_2

	// Memory offsets and string operands.
	Op_mem_offs
	Op_seg_rSI
	Op_es_rDI
	Op_seg_rDI
	Op_seg_rBX_al

	NumOpCodeOperandKinds int = iota
)

// operandKindInfo contains the static
// details of an OpCodeOperandKind.
type operandKindInfo struct {
	name     string
	encoding OperandEncoding
	reg      Register // The implicit register, or the first register in the class.
	regs     bool     // Whether a register is accepted.
	mem      bool     // Whether a memory reference is accepted.
	size     uint8    // The size of an encoded immediate or offset in bytes.
	vsib     uint8    // The VSIB index element size in bits.
}

var operandKinds = [NumOpCodeOperandKinds]operandKindInfo{
	Op_none:        {name: "none", encoding: EncodingNone},
	Op_al:          {name: "al", encoding: EncodingImplicit, reg: AL, regs: true},
	Op_cl:          {name: "cl", encoding: EncodingImplicit, reg: CL, regs: true},
	Op_ax:          {name: "ax", encoding: EncodingImplicit, reg: AX, regs: true},
	Op_dx:          {name: "dx", encoding: EncodingImplicit, reg: DX, regs: true},
	Op_eax:         {name: "eax", encoding: EncodingImplicit, reg: EAX, regs: true},
	Op_rax:         {name: "rax", encoding: EncodingImplicit, reg: RAX, regs: true},
	Op_es:          {name: "es", encoding: EncodingImplicit, reg: ES, regs: true},
	Op_cs:          {name: "cs", encoding: EncodingImplicit, reg: CS, regs: true},
	Op_ss:          {name: "ss", encoding: EncodingImplicit, reg: SS, regs: true},
	Op_ds:          {name: "ds", encoding: EncodingImplicit, reg: DS, regs: true},
	Op_fs:          {name: "fs", encoding: EncodingImplicit, reg: FS, regs: true},
	Op_gs:          {name: "gs", encoding: EncodingImplicit, reg: GS, regs: true},
	Op_st0:         {name: "st(0)", encoding: EncodingImplicit, reg: ST0, regs: true},
	Op_xmm0:        {name: "<xmm0>", encoding: EncodingImplicit, reg: XMM0, regs: true},
	Op_imm8_const1: {name: "1", encoding: EncodingImplicit},

	Op_r8_reg:  {name: "r8", encoding: EncodingModRMreg, reg: AL, regs: true},
	Op_r16_reg: {name: "r16", encoding: EncodingModRMreg, reg: AX, regs: true},
	Op_r32_reg: {name: "r32", encoding: EncodingModRMreg, reg: EAX, regs: true},
	Op_r64_reg: {name: "r64", encoding: EncodingModRMreg, reg: RAX, regs: true},
	Op_seg_reg: {name: "Sreg", encoding: EncodingModRMreg, reg: ES, regs: true},
	Op_cr_reg:  {name: "cr", encoding: EncodingModRMreg, reg: CR0, regs: true},
	Op_dr_reg:  {name: "dr", encoding: EncodingModRMreg, reg: DR0, regs: true},
	Op_tr_reg:  {name: "tr", encoding: EncodingModRMreg, reg: TR0, regs: true},
	Op_bnd_reg: {name: "bnd", encoding: EncodingModRMreg, reg: BND0, regs: true},
	Op_k_reg:   {name: "k", encoding: EncodingModRMreg, reg: K0, regs: true},
	Op_mm_reg:  {name: "mm", encoding: EncodingModRMreg, reg: MM0, regs: true},
	Op_xmm_reg: {name: "xmm", encoding: EncodingModRMreg, reg: XMM0, regs: true},
	Op_ymm_reg: {name: "ymm", encoding: EncodingModRMreg, reg: YMM0, regs: true},
	Op_zmm_reg: {name: "zmm", encoding: EncodingModRMreg, reg: ZMM0, regs: true},
	Op_tmm_reg: {name: "tmm", encoding: EncodingModRMreg, reg: TMM0, regs: true},

	Op_r16_rm: {name: "r16", encoding: EncodingModRMrm, reg: AX, regs: true},
	Op_r32_rm: {name: "r32", encoding: EncodingModRMrm, reg: EAX, regs: true},
	Op_r64_rm: {name: "r64", encoding: EncodingModRMrm, reg: RAX, regs: true},
	Op_k_rm:   {name: "k", encoding: EncodingModRMrm, reg: K0, regs: true},
	Op_mm_rm:  {name: "mm", encoding: EncodingModRMrm, reg: MM0, regs: true},
	Op_xmm_rm: {name: "xmm", encoding: EncodingModRMrm, reg: XMM0, regs: true},
	Op_ymm_rm: {name: "ymm", encoding: EncodingModRMrm, reg: YMM0, regs: true},
	Op_zmm_rm: {name: "zmm", encoding: EncodingModRMrm, reg: ZMM0, regs: true},
	Op_sti:    {name: "st(i)", encoding: EncodingStackIndex, reg: ST0, regs: true},

	Op_r8_or_mem:      {name: "r/m8", encoding: EncodingModRMrm, reg: AL, regs: true, mem: true},
	Op_r16_or_mem:     {name: "r/m16", encoding: EncodingModRMrm, reg: AX, regs: true, mem: true},
	Op_r32_or_mem:     {name: "r/m32", encoding: EncodingModRMrm, reg: EAX, regs: true, mem: true},
	Op_r64_or_mem:     {name: "r/m64", encoding: EncodingModRMrm, reg: RAX, regs: true, mem: true},
	Op_bnd_or_mem_mpx: {name: "bnd/m", encoding: EncodingModRMrm, reg: BND0, regs: true, mem: true},
	Op_k_or_mem:       {name: "k/m", encoding: EncodingModRMrm, reg: K0, regs: true, mem: true},
	Op_mm_or_mem:      {name: "mm/m", encoding: EncodingModRMrm, reg: MM0, regs: true, mem: true},
	Op_xmm_or_mem:     {name: "xmm/m", encoding: EncodingModRMrm, reg: XMM0, regs: true, mem: true},
	Op_ymm_or_mem:     {name: "ymm/m", encoding: EncodingModRMrm, reg: YMM0, regs: true, mem: true},
	Op_zmm_or_mem:     {name: "zmm/m", encoding: EncodingModRMrm, reg: ZMM0, regs: true, mem: true},

	Op_mem:         {name: "m", encoding: EncodingModRMrm, mem: true},
	Op_mem_mpx:     {name: "mib", encoding: EncodingModRMrm, mem: true},
	Op_mem_vsib32x: {name: "vm32x", encoding: EncodingModRMrm, reg: XMM0, mem: true, vsib: 32},
	Op_mem_vsib64x: {name: "vm64x", encoding: EncodingModRMrm, reg: XMM0, mem: true, vsib: 64},
	Op_mem_vsib32y: {name: "vm32y", encoding: EncodingModRMrm, reg: YMM0, mem: true, vsib: 32},
	Op_mem_vsib64y: {name: "vm64y", encoding: EncodingModRMrm, reg: YMM0, mem: true, vsib: 64},
	Op_mem_vsib32z: {name: "vm32z", encoding: EncodingModRMrm, reg: ZMM0, mem: true, vsib: 32},
	Op_mem_vsib64z: {name: "vm64z", encoding: EncodingModRMrm, reg: ZMM0, mem: true, vsib: 64},

	Op_r8_opcode:  {name: "r8", encoding: EncodingRegisterModifier, reg: AL, regs: true},
	Op_r16_opcode: {name: "r16", encoding: EncodingRegisterModifier, reg: AX, regs: true},
	Op_r32_opcode: {name: "r32", encoding: EncodingRegisterModifier, reg: EAX, regs: true},
	Op_r64_opcode: {name: "r64", encoding: EncodingRegisterModifier, reg: RAX, regs: true},

	Op_r32_vvvv: {name: "r32", encoding: EncodingVEXvvvv, reg: EAX, regs: true},
	Op_r64_vvvv: {name: "r64", encoding: EncodingVEXvvvv, reg: RAX, regs: true},
	Op_k_vvvv:   {name: "k", encoding: EncodingVEXvvvv, reg: K0, regs: true},
	Op_xmm_vvvv: {name: "xmm", encoding: EncodingVEXvvvv, reg: XMM0, regs: true},
	Op_ymm_vvvv: {name: "ymm", encoding: EncodingVEXvvvv, reg: YMM0, regs: true},
	Op_zmm_vvvv: {name: "zmm", encoding: EncodingVEXvvvv, reg: ZMM0, regs: true},

	Op_xmm_is4: {name: "xmm", encoding: EncodingVEXis4, reg: XMM0, regs: true},
	Op_ymm_is4: {name: "ymm", encoding: EncodingVEXis4, reg: YMM0, regs: true},

	Op_imm4_m2z:   {name: "imm4", encoding: EncodingVEXis4},
	Op_imm8:       {name: "imm8", encoding: EncodingImmediate, size: 1},
	Op_imm16:      {name: "imm16", encoding: EncodingImmediate, size: 2},
	Op_imm32:      {name: "imm32", encoding: EncodingImmediate, size: 4},
	Op_imm64:      {name: "imm64", encoding: EncodingImmediate, size: 8},
	Op_imm8sex16:  {name: "imm8", encoding: EncodingImmediate, size: 1},
	Op_imm8sex32:  {name: "imm8", encoding: EncodingImmediate, size: 1},
	Op_imm8sex64:  {name: "imm8", encoding: EncodingImmediate, size: 1},
	Op_imm32sex64: {name: "imm32", encoding: EncodingImmediate, size: 4},

	Op_br16_1:    {name: "rel8", encoding: EncodingCodeOffset, size: 1},
	Op_br32_1:    {name: "rel8", encoding: EncodingCodeOffset, size: 1},
	Op_br64_1:    {name: "rel8", encoding: EncodingCodeOffset, size: 1},
	Op_br16_2:    {name: "rel16", encoding: EncodingCodeOffset, size: 2},
	Op_br32_4:    {name: "rel32", encoding: EncodingCodeOffset, size: 4},
	Op_br64_4:    {name: "rel32", encoding: EncodingCodeOffset, size: 4},
	Op_xbegin_2:  {name: "rel16", encoding: EncodingCodeOffset, size: 2},
	Op_xbegin_4:  {name: "rel32", encoding: EncodingCodeOffset, size: 4},
	Op_farbr2_2:  {name: "ptr16:16", encoding: EncodingCodeOffset, size: 2},
	Op_farbr4_2:  {name: "ptr16:32", encoding: EncodingCodeOffset, size: 4},

	Op_mem_offs:   {name: "moffs", encoding: EncodingDisplacement, mem: true},
	Op_seg_rSI:    {name: "m", encoding: EncodingImplicit, mem: true},
	Op_es_rDI:     {name: "m", encoding: EncodingImplicit, mem: true},
	Op_seg_rDI:    {name: "m", encoding: EncodingImplicit, mem: true},
	Op_seg_rBX_al: {name: "m8", encoding: EncodingImplicit, mem: true},
}

func (k OpCodeOperandKind) String() string {
	if int(k) < NumOpCodeOperandKinds {
		return operandKinds[k].name
	}

	return fmt.Sprintf("OpCodeOperandKind(%d)", k)
}

// Encoding returns the way the operand is
// encoded in machine code.
func (k OpCodeOperandKind) Encoding() OperandEncoding {
	if int(k) < NumOpCodeOperandKinds {
		return operandKinds[k].encoding
	}

	return EncodingNone
}

// Register returns the implicit register
// for an implicit register operand, or
// the first register in the operand's
// register class, or RegisterNone.
func (k OpCodeOperandKind) Register() Register {
	if int(k) < NumOpCodeOperandKinds {
		return operandKinds[k].reg
	}

	return RegisterNone
}

// AcceptsRegister returns whether the
// operand can be a register.
func (k OpCodeOperandKind) AcceptsRegister() bool {
	return int(k) < NumOpCodeOperandKinds && operandKinds[k].regs
}

// AcceptsMemory returns whether the
// operand can be a memory reference.
func (k OpCodeOperandKind) AcceptsMemory() bool {
	return int(k) < NumOpCodeOperandKinds && operandKinds[k].mem
}

// IsImmediate returns whether the operand
// is an immediate value, including the
// constant 1 used by the shift group.
func (k OpCodeOperandKind) IsImmediate() bool {
	return k == Op_imm8_const1 || (k >= Op_imm4_m2z && k <= Op_imm32sex64)
}

// IsBranch returns whether the operand is
// a near or far branch target.
func (k OpCodeOperandKind) IsBranch() bool {
	return k >= Op_br16_1 && k <= Op_farbr4_2
}

// IsFarBranch returns whether the operand
// is a far branch target.
func (k OpCodeOperandKind) IsFarBranch() bool {
	return k == Op_farbr2_2 || k == Op_farbr4_2
}

// IsVSIB returns whether the operand is a
// vector SIB memory reference, and if so,
// the index element size in bits.
func (k OpCodeOperandKind) IsVSIB() (elementBits int, ok bool) {
	if int(k) < NumOpCodeOperandKinds && operandKinds[k].vsib != 0 {
		return int(operandKinds[k].vsib), true
	}

	return 0, false
}

// ImmediateSize returns the number of bytes
// used to encode an immediate, branch
// offset or far pointer offset.
func (k OpCodeOperandKind) ImmediateSize() int {
	if int(k) < NumOpCodeOperandKinds {
		return int(operandKinds[k].size)
	}

	return 0
}

// UsesModRM returns whether the operand is
// encoded in the ModR/M byte.
func (k OpCodeOperandKind) UsesModRM() bool {
	switch k.Encoding() {
	case EncodingModRMreg, EncodingModRMrm, EncodingStackIndex:
		return true
	}

	return false
}
