// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package decoder

import (
	"firefly-os.dev/tools/x86dis/x86"
)

// operands reads the operands of the
// chosen instruction form.
func (s *state) operands(c *candidate) bool {
	code := c.code

	// Any SIB byte and displacement come
	// before the immediates, whatever the
	// operand order.
	if c.op.ModRM && !s.modrm.IsRegister() {
		kind := x86.Op_mem
		for n := 0; n < code.OpCount(); n++ {
			k := code.OpCodeOperandKind(n)
			if k.Encoding() == x86.EncodingModRMrm && k.AcceptsMemory() {
				kind = k
				break
			}
		}

		if !s.readMemory(c, kind) {
			return false
		}
	}

	for n := 0; n < code.OpCount(); n++ {
		if !s.operand(c, n, code.OpCodeOperandKind(n)) {
			return false
		}
	}

	return true
}

func (s *state) setRegister(n int, r x86.Register) {
	s.inst.SetOpKind(n, x86.OpKindRegister)
	s.inst.SetOpRegister(n, r)
}

func (s *state) check() bool {
	return s.d.options&NoInvalidCheck == 0
}

// operand reads the n'th operand.
func (s *state) operand(c *candidate, n int, kind x86.OpCodeOperandKind) bool {
	inst := s.inst
	r := &s.r
	switch kind.Encoding() {
	case x86.EncodingImplicit:
		return s.implicit(n, kind)
	case x86.EncodingModRMreg:
		num := int(s.modrm.Reg()) | b2i(s.extR)<<3 | b2i(s.extR2)<<4
		if kind == x86.Op_cr_reg && s.lock && num < 8 {
			// LOCK selects CR8 to CR15
			// outside 64-bit mode on AMD
			// CPUs.
			num += 8
			s.lock = false
		}

		reg, ok := s.register(kind, num)
		if !ok {
			return false
		}

		s.setRegister(n, reg)
	case x86.EncodingModRMrm:
		if !s.modrm.IsRegister() {
			inst.SetOpKind(n, x86.OpKindMemory)
			return true
		}

		num := int(s.modrm.RM()) | b2i(s.extB)<<3
		if s.enc == x86.EncodingEVEX || s.enc == x86.EncodingMVEX {
			num |= b2i(s.extX) << 4
		}

		reg, ok := s.register(kind, num)
		if !ok {
			return false
		}

		s.setRegister(n, reg)
	case x86.EncodingStackIndex:
		s.setRegister(n, x86.ST0+x86.Register(s.modrm.RM()))
	case x86.EncodingRegisterModifier:
		num := int(s.opcode&0b111) | b2i(s.extB)<<3
		reg, ok := s.register(kind, num)
		if !ok {
			return false
		}

		s.setRegister(n, reg)
	case x86.EncodingVEXvvvv:
		num := int(s.vvvv) | b2i(s.extV2)<<4
		reg, ok := s.register(kind, num)
		if !ok {
			return false
		}

		s.setRegister(n, reg)
	case x86.EncodingVEXis4:
		if !s.hasIs4 {
			s.is4 = r.u8()
			s.hasIs4 = true
		}

		if kind == x86.Op_imm4_m2z {
			inst.SetOpKind(n, x86.OpKindImmediate8)
			inst.SetImmediate8(s.is4 & 0b1111)
			s.imms++
			return true
		}

		num := int(s.is4 >> 4)
		if !s.mode64 {
			num &= 0b111
		}

		reg, ok := s.register(kind, num)
		if !ok {
			return false
		}

		s.setRegister(n, reg)
	case x86.EncodingImmediate:
		s.immediate(n, kind)
	case x86.EncodingCodeOffset:
		s.branchTarget(n, kind)
	case x86.EncodingDisplacement:
		// A memory offset, the size of
		// an address.
		inst.SetOpKind(n, x86.OpKindMemory)
		var v uint64
		switch s.addrSize {
		case 16:
			v = uint64(r.u16())
		case 32:
			v = uint64(r.u32())
		case 64:
			v = r.u64()
		}

		inst.SetMemoryDisplacement64(v)
		inst.SetMemoryDisplSize(int(s.addrSize / 8))
	default:
		return false
	}

	return true
}

// stringOpKinds lists the string operand
// kinds for 16, 32 and 64-bit addresses.
var stringOpKinds = map[x86.OpCodeOperandKind][3]x86.OpKind{
	x86.Op_seg_rSI: {x86.OpKindMemorySegSI, x86.OpKindMemorySegESI, x86.OpKindMemorySegRSI},
	x86.Op_seg_rDI: {x86.OpKindMemorySegDI, x86.OpKindMemorySegEDI, x86.OpKindMemorySegRDI},
	x86.Op_es_rDI:  {x86.OpKindMemoryESDI, x86.OpKindMemoryESEDI, x86.OpKindMemoryESRDI},
}

// addressIndex returns 0, 1 or 2 for 16,
// 32 and 64-bit addresses.
func (s *state) addressIndex() int {
	switch s.addrSize {
	case 16:
		return 0
	case 32:
		return 1
	}

	return 2
}

func (s *state) implicit(n int, kind x86.OpCodeOperandKind) bool {
	inst := s.inst
	switch kind {
	case x86.Op_imm8_const1:
		inst.SetOpKind(n, x86.OpKindImmediate8)
		inst.SetImmediate8(1)
		s.imms++
	case x86.Op_seg_rSI, x86.Op_seg_rDI, x86.Op_es_rDI:
		inst.SetOpKind(n, stringOpKinds[kind][s.addressIndex()])
	case x86.Op_seg_rBX_al:
		inst.SetOpKind(n, x86.OpKindMemory)
		inst.SetMemoryBase([...]x86.Register{x86.BX, x86.EBX, x86.RBX}[s.addressIndex()])
		inst.SetMemoryIndex(x86.AL)
	default:
		reg := kind.Register()
		if reg == x86.RegisterNone {
			return false
		}

		s.setRegister(n, reg)
	}

	return true
}

// register returns the register numbered
// num in the class of a register operand.
func (s *state) register(kind x86.OpCodeOperandKind, num int) (x86.Register, bool) {
	first := kind.Register()
	limit := 16
	switch first {
	case x86.AL:
		// With a REX prefix, 4 to 7 select
		// SPL, BPL, SIL and DIL, rather
		// than AH, CH, DH and BH.
		if s.hasREX && num >= 4 {
			num += 4
		}

		limit = 20
	case x86.AX, x86.EAX, x86.RAX:
	case x86.ES:
		num &= 0b111
		limit = 6
	case x86.CR0:
		switch num {
		case 0, 2, 3, 4, 8:
		default:
			return x86.RegisterNone, false
		}
	case x86.DR0, x86.TR0, x86.TMM0:
		limit = 8
	case x86.BND0:
		limit = 4
	case x86.K0:
		if num > 7 && s.check() {
			return x86.RegisterNone, false
		}

		num &= 0b111
		limit = 8
	case x86.MM0:
		num &= 0b111
		limit = 8
	case x86.XMM0, x86.YMM0, x86.ZMM0:
		limit = 32
	default:
		return x86.RegisterNone, false
	}

	if num < 0 || num >= limit {
		return x86.RegisterNone, false
	}

	return first + x86.Register(num), true
}

// immediate reads an immediate operand.
func (s *state) immediate(n int, kind x86.OpCodeOperandKind) {
	inst := s.inst
	r := &s.r
	switch kind {
	case x86.Op_imm8:
		v := r.u8()
		if s.imms > 0 {
			inst.SetOpKind(n, x86.OpKindImmediate8_2nd)
			inst.SetImmediate8_2nd(v)
		} else {
			inst.SetOpKind(n, x86.OpKindImmediate8)
			inst.SetImmediate8(v)
		}
	case x86.Op_imm16:
		inst.SetOpKind(n, x86.OpKindImmediate16)
		inst.SetImmediate16(r.u16())
	case x86.Op_imm32:
		inst.SetOpKind(n, x86.OpKindImmediate32)
		inst.SetImmediate32(r.u32())
	case x86.Op_imm64:
		inst.SetOpKind(n, x86.OpKindImmediate64)
		inst.SetImmediate64(r.u64())
	case x86.Op_imm8sex16:
		inst.SetOpKind(n, x86.OpKindImmediate8to16)
		inst.SetImmediate8to16(int16(int8(r.u8())))
	case x86.Op_imm8sex32:
		inst.SetOpKind(n, x86.OpKindImmediate8to32)
		inst.SetImmediate8to32(int32(int8(r.u8())))
	case x86.Op_imm8sex64:
		inst.SetOpKind(n, x86.OpKindImmediate8to64)
		inst.SetImmediate8to64(int64(int8(r.u8())))
	case x86.Op_imm32sex64:
		inst.SetOpKind(n, x86.OpKindImmediate32to64)
		inst.SetImmediate32to64(int64(int32(r.u32())))
	}

	s.imms++
}

// branchTarget reads a near branch offset
// or a far branch pointer. Near branch
// targets are completed by finish.
func (s *state) branchTarget(n int, kind x86.OpCodeOperandKind) {
	inst := s.inst
	r := &s.r
	switch kind {
	case x86.Op_farbr2_2:
		offset := r.u16()
		selector := r.u16()
		inst.SetOpKind(n, x86.OpKindFarBranch16)
		inst.SetFarBranch16(offset)
		inst.SetFarBranchSelector(selector)
		return
	case x86.Op_farbr4_2:
		offset := r.u32()
		selector := r.u16()
		inst.SetOpKind(n, x86.OpKindFarBranch32)
		inst.SetFarBranch32(offset)
		inst.SetFarBranchSelector(selector)
		return
	}

	switch kind.ImmediateSize() {
	case 1:
		s.branch = int64(int8(r.u8()))
	case 2:
		s.branch = int64(int16(r.u16()))
	case 4:
		s.branch = int64(int32(r.u32()))
	}

	switch kind {
	case x86.Op_br16_1, x86.Op_br16_2:
		s.branchKind = x86.OpKindNearBranch16
	case x86.Op_br32_1, x86.Op_br32_4:
		s.branchKind = x86.OpKindNearBranch32
	case x86.Op_br64_1, x86.Op_br64_4:
		s.branchKind = x86.OpKindNearBranch64
	case x86.Op_xbegin_2, x86.Op_xbegin_4:
		s.branchKind = x86.OpKindNearBranch32
		if s.mode64 {
			s.branchKind = x86.OpKindNearBranch64
		}
	}

	s.hasBranch = true
	inst.SetOpKind(n, s.branchKind)
}

// memory16 lists the base and index
// registers for 16-bit addressing, by
// ModR/M.rm.
var memory16 = [8][2]x86.Register{
	{x86.BX, x86.SI},
	{x86.BX, x86.DI},
	{x86.BP, x86.SI},
	{x86.BP, x86.DI},
	{x86.SI, x86.RegisterNone},
	{x86.DI, x86.RegisterNone},
	{x86.BP, x86.RegisterNone},
	{x86.BX, x86.RegisterNone},
}

// readMemory reads any SIB byte and
// displacement of a ModR/M memory operand.
func (s *state) readMemory(c *candidate, kind x86.OpCodeOperandKind) bool {
	inst := s.inst
	r := &s.r
	mod := s.modrm.Mod()
	rm := s.modrm.RM()
	if s.addrSize == 16 {
		if c.vsib {
			return false
		}

		base, index := memory16[rm][0], memory16[rm][1]
		var disp uint16
		size := 0
		switch {
		case mod == 0 && rm == 6:
			base = x86.RegisterNone
			disp = r.u16()
			size = 2
		case mod == 1:
			disp = uint16(int16(int8(r.u8())))
			size = 1
		case mod == 2:
			disp = r.u16()
			size = 2
		}

		inst.SetMemoryBase(base)
		inst.SetMemoryIndex(index)
		inst.SetMemoryDisplacement64(uint64(disp))
		inst.SetMemoryDisplSize(size)
		return true
	}

	gpr := x86.EAX
	if s.addrSize == 64 {
		gpr = x86.RAX
	}

	var base, index x86.Register
	scale := 1
	size := 0
	switch {
	case rm == 4:
		sib := x86.SIB(r.u8())
		scale = 1 << sib.Scale()
		num := int(sib.Index()) | b2i(s.extX)<<3
		switch {
		case c.vsib:
			num |= b2i(s.extV2) << 4
			index = kind.Register() + x86.Register(num)
		case num != 4:
			index = gpr + x86.Register(num)
		}

		if sib.Base() == 5 && mod == 0 {
			size = 4
		} else {
			base = gpr + x86.Register(int(sib.Base())|b2i(s.extB)<<3)
		}
	case rm == 5 && mod == 0:
		size = 4
		if s.mode64 {
			base = x86.RIP
			if s.addrSize == 32 {
				base = x86.EIP
			}

			s.ripRel = true
		}
	default:
		base = gpr + x86.Register(int(rm)|b2i(s.extB)<<3)
	}

	if c.vsib && rm != 4 {
		return false
	}

	switch mod {
	case 1:
		size = 1
	case 2:
		size = 4
	}

	var disp int64
	switch size {
	case 1:
		disp = int64(int8(r.u8())) * s.disp8N(c)
	case 4:
		disp = int64(int32(r.u32()))
	}

	s.disp = disp
	inst.SetMemoryBase(base)
	inst.SetMemoryIndex(index)
	inst.SetMemoryIndexScale(scale)
	inst.SetMemoryDisplSize(size)
	if s.addrSize == 32 {
		inst.SetMemoryDisplacement64(uint64(uint32(disp)))
	} else {
		inst.SetMemoryDisplacement64(uint64(disp))
	}

	return true
}

// disp8N returns the scale applied to an
// 8-bit displacement, which is compressed
// in EVEX and MVEX instructions.
func (s *state) disp8N(c *candidate) int64 {
	switch s.enc {
	case x86.EncodingEVEX:
		bits := 128 << s.l
		if s.l > 2 {
			bits = 512
		}

		mem := c.code.MemorySize()
		return int64(c.code.TupleType().DisplacementN(bits, s.w, s.bcst, mem.Size()))
	case x86.EncodingMVEX:
		elem := c.code.MemorySize().ElementSize()
		if elem == 0 {
			elem = 4
		}

		conv := x86.MvexMemConvNone + x86.MvexRegMemConv(s.sss)
		return int64(x86.MvexDisplacementN(conv, elem))
	}

	return 1
}

// validate checks the prefixes and the
// EVEX and MVEX fields against the chosen
// instruction form, and records them in
// the instruction.
func (s *state) validate(c *candidate) bool {
	inst := s.inst
	code := c.code
	check := s.check()

	if s.lock {
		memory := code.OpCount() > 0 && inst.OpKind(0) == x86.OpKindMemory
		if check && !(code.CanLock() && memory) {
			return false
		}

		inst.SetLockPrefix(true)
	}

	// F2 and F3 that were not used as a
	// mandatory prefix.
	if s.enc == x86.EncodingLegacy && s.rep != 0 {
		used := (c.op.Mandatory == x86.MandatoryPrefixF3 && s.rep == byte(x86.PrefixRepeat)) ||
			(c.op.Mandatory == x86.MandatoryPrefixF2 && s.rep == byte(x86.PrefixRepeatNot))
		switch {
		case used:
		case s.rep == byte(x86.PrefixRepeatNot) && code.CanBnd():
			inst.SetBndPrefix(true)
		case s.rep == byte(x86.PrefixRepeat):
			inst.SetRepePrefix(true)
		default:
			inst.SetRepnePrefix(true)
		}
	}

	segment := s.segment
	if s.lastSeg == byte(x86.PrefixDS) && code.CanNotrack() {
		inst.SetNotrackPrefix(true)
		segment = x86.RegisterNone
	}

	inst.SetSegmentPrefix(segment)

	if s.enc != x86.EncodingLegacy && !c.vvvv && check {
		if s.vvvv != 0 || (s.extV2 && !c.vsib) {
			return false
		}
	}

	switch s.enc {
	case x86.EncodingEVEX:
		return s.validateEVEX(c)
	case x86.EncodingMVEX:
		return s.validateMVEX(c)
	}

	return true
}

func (s *state) opMask(c *candidate) bool {
	code := c.code
	check := s.check()
	if s.aaa == 0 {
		return !(check && code.RequiresOpMask())
	}

	if check && !code.CanOpMask() {
		return false
	}

	s.inst.SetOpMask(x86.K0 + x86.Register(s.aaa))
	return true
}

func (s *state) validateEVEX(c *candidate) bool {
	inst := s.inst
	code := c.code
	check := s.check()
	if !s.opMask(c) {
		return false
	}

	if s.z {
		memory := code.OpCount() > 0 && inst.OpKind(0) == x86.OpKindMemory
		if check && (!code.CanZeroMask() || s.aaa == 0 || memory) {
			return false
		}

		inst.SetZeroingMasking(true)
	}

	register := s.modrm.IsRegister()
	if s.bcst {
		switch {
		case register && code.CanRound():
			inst.SetRoundingControl(x86.RoundToNearest + x86.RoundingControl(s.l))
		case register && code.CanSuppressAllExceptions():
			inst.SetSuppressAllExceptions(true)
		case !register && code.CanBroadcast():
			inst.SetBroadcast(true)
		case check:
			return false
		}
	}

	if s.l == 3 && check && !(s.bcst && register && code.CanSuppressAllExceptions()) {
		return false
	}

	return true
}

func (s *state) validateMVEX(c *candidate) bool {
	inst := s.inst
	if !s.opMask(c) {
		return false
	}

	switch {
	case s.modrm.IsRegister() && s.eh:
		// Static rounding, or just
		// suppressing exceptions.
		if s.sss < 4 {
			inst.SetRoundingControl(x86.RoundToNearest + x86.RoundingControl(s.sss))
		} else {
			inst.SetSuppressAllExceptions(true)
		}
	case s.modrm.IsRegister():
		inst.SetMvexRegMemConv(x86.MvexRegSwizzleNone + x86.MvexRegMemConv(s.sss))
	default:
		inst.SetMvexRegMemConv(x86.MvexMemConvNone + x86.MvexRegMemConv(s.sss))
		inst.SetMvexEvictionHint(s.eh)
	}

	return true
}
