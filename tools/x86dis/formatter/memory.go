// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package formatter

import (
	"strconv"

	"firefly-os.dev/tools/x86dis/x86"
)

// memory is a memory operand, ready to be
// printed.
type memory struct {
	base  x86.Register
	index x86.Register
	scale int

	// displ is the displacement, or the
	// absolute address if there are no
	// registers.
	displ     uint64
	displSize int

	// bits is the address size.
	bits int

	// segment is the segment register to
	// print, if any.
	segment x86.Register

	// absolute is set for IP-relative
	// operands printed as their target.
	absolute bool

	size x86.MemorySize
	str  bool
}

func (m *memory) hasRegisters() bool {
	return m.base != x86.RegisterNone || m.index != x86.RegisterNone
}

// registerBits returns the address size
// implied by a base or index register.
func registerBits(r x86.Register) int {
	switch {
	case r.IsGPR16():
		return 16
	case r.IsGPR32(), r == x86.EIP:
		return 32
	case r.IsGPR64(), r == x86.RIP:
		return 64
	}

	return 0
}

var stringBases = map[x86.OpKind]x86.Register{
	x86.OpKindMemorySegSI:  x86.SI,
	x86.OpKindMemorySegESI: x86.ESI,
	x86.OpKindMemorySegRSI: x86.RSI,
	x86.OpKindMemorySegDI:  x86.DI,
	x86.OpKindMemorySegEDI: x86.EDI,
	x86.OpKindMemorySegRDI: x86.RDI,
	x86.OpKindMemoryESDI:   x86.DI,
	x86.OpKindMemoryESEDI:  x86.EDI,
	x86.OpKindMemoryESRDI:  x86.RDI,
}

// memoryOperand returns the memory operand
// of the given kind.
func (f *Formatter) memoryOperand(inst *x86.Instruction, kind x86.OpKind, oo *OperandOptions) memory {
	m := memory{size: inst.MemorySize(), scale: 1}
	if base, ok := stringBases[kind]; ok {
		m.str = true
		m.base = base
		m.bits = registerBits(base)
		m.segment = f.stringSegment(inst, kind)
		return m
	}

	m.base = inst.MemoryBase()
	m.index = inst.MemoryIndex()
	m.scale = inst.MemoryIndexScale()
	m.displ = inst.MemoryDisplacement64()
	m.displSize = inst.MemoryDisplSize()

	// xlat's AL index is implied.
	if m.index == x86.AL {
		m.index = x86.RegisterNone
	}

	switch {
	case m.base != x86.RegisterNone:
		m.bits = registerBits(m.base)
	case m.index.IsGPR():
		m.bits = registerBits(m.index)
	case m.index != x86.RegisterNone:
		// VSIB without a base.
		m.bits = 32
		if inst.CodeSize() == x86.CodeSize64 {
			m.bits = 64
		}
	default:
		switch m.displSize {
		case 2:
			m.bits = 16
		case 8:
			m.bits = 64
		default:
			m.bits = 32
			if inst.CodeSize() == x86.CodeSize64 && m.displ>>32 != 0 {
				m.bits = 64
			}
		}
	}

	if m.base.IsIP() {
		target := inst.IPRelativeMemoryAddress()
		if oo.RipRelativeAddresses {
			m.displ = target - inst.NextIP()
		} else {
			m.base = x86.RegisterNone
			m.displ = target
			m.absolute = true
		}
	}

	m.segment = f.memorySegment(inst, &m)
	return m
}

// stringSegment returns the segment printed
// with a string operand.
func (f *Formatter) stringSegment(inst *x86.Instruction, kind x86.OpKind) x86.Register {
	if kind >= x86.OpKindMemoryESDI {
		if f.syntax == Gas || f.syntax == MASM || f.opts.AlwaysShowSegmentRegister {
			return x86.ES
		}

		return x86.RegisterNone
	}

	seg := inst.SegmentPrefix()
	if seg == x86.RegisterNone && (f.syntax == Gas || f.opts.AlwaysShowSegmentRegister) {
		seg = x86.DS
	}

	return seg
}

// memorySegment returns the segment printed
// with a memory operand, if any.
func (f *Formatter) memorySegment(inst *x86.Instruction, m *memory) x86.Register {
	if f.opts.AlwaysShowSegmentRegister {
		return inst.MemorySegment()
	}

	seg := inst.SegmentPrefix()
	switch {
	case seg == x86.RegisterNone:
		if f.syntax == MASM && f.opts.MasmAddDsPrefix32 && !m.hasRegisters() && m.bits < 64 {
			return x86.DS
		}

		return x86.RegisterNone
	case inst.Code().CanBranchHint():
		return x86.RegisterNone
	case inst.CodeSize() == x86.CodeSize64 && seg < x86.FS && !f.opts.ShowUselessPrefixes:
		// Ignored in 64-bit mode.
		return x86.RegisterNone
	}

	return seg
}

// showSizeKeyword returns whether a memory
// operand is printed with its size.
func (f *Formatter) showSizeKeyword(inst *x86.Instruction, m *memory, oo *OperandOptions) bool {
	if m.size.Size() == 0 && !isFarMemory(inst) {
		return false
	}

	switch oo.MemorySizeOptions {
	case MemorySizeAlways:
		return true
	case MemorySizeNever:
		return false
	}

	if inst.Code().HidesMemorySizeKeyword() {
		return false
	}

	if isFarMemory(inst) {
		return true
	}

	if inst.IsBroadcast() {
		return f.syntax == MASM
	}

	for i := 0; i < inst.OpCount(); i++ {
		if inst.OpKind(i) != x86.OpKindRegister {
			continue
		}

		if oo.MemorySizeOptions == MemorySizeMinimal {
			return false
		}

		return inst.OpRegister(i).Size() != m.size.Size()
	}

	return true
}

// isFarMemory returns whether the
// instruction is a far call or jump
// through memory.
func isFarMemory(inst *x86.Instruction) bool {
	return infoFor(inst.Code()).has(infoFarBranch) && inst.HasOpKind(x86.OpKindMemory)
}

// sizeKeyword returns the keyword for a
// memory operand of the given size in
// bytes, or the empty string.
func sizeKeyword(size int, nasm bool) string {
	switch size {
	case 1:
		return "byte"
	case 2:
		return "word"
	case 4:
		return "dword"
	case 6:
		if nasm {
			return ""
		}

		return "fword"
	case 8:
		return "qword"
	case 10:
		if nasm {
			return "tword"
		}

		return "tbyte"
	case 16:
		if nasm {
			return "oword"
		}

		return "xmmword"
	case 32:
		if nasm {
			return "yword"
		}

		return "ymmword"
	case 64:
		if nasm {
			return "zword"
		}

		return "zmmword"
	}

	return ""
}

// writeSizeKeyword writes the size keyword
// for a memory operand in the Intel-style
// syntaxes, followed by a space.
func (f *Formatter) writeSizeKeyword(w *writer, inst *x86.Instruction, m *memory) {
	if isFarMemory(inst) {
		switch f.syntax {
		case Intel:
			f.writeKeyword(w, "far ptr")
			w.write(" ", TextText)
			return
		case NASM:
			f.writeKeyword(w, "far")
			w.write(" ", TextText)
			return
		}
	}

	keyword := sizeKeyword(m.size.Size(), f.syntax == NASM)
	if keyword == "" {
		return
	}

	switch {
	case f.syntax == NASM:
	case f.syntax == MASM && inst.IsBroadcast():
		keyword += " bcst"
	default:
		keyword += " ptr"
	}

	f.writeKeyword(w, keyword)
	w.write(" ", TextText)
}

// writeSegment writes a segment override
// and its colon.
func (f *Formatter) writeSegment(w *writer, seg x86.Register, op, operand int) {
	f.writeRegister(w, seg, op, operand)
	w.write(":", TextPunctuation)
}

// hasDisplacement returns whether the
// displacement is printed after the
// registers.
func (f *Formatter) hasDisplacement(m *memory) bool {
	if !m.hasRegisters() {
		return true
	}

	if m.str {
		return false
	}

	return m.displ != 0 || (f.opts.ShowZeroDisplacements && m.displSize != 0)
}

// writeDisplacement writes the displacement
// of a memory operand. If operators is set,
// the displacement follows a register and
// is written with a + or - operator.
func (f *Formatter) writeDisplacement(w *writer, inst *x86.Instruction, m *memory, op, operand int, no *NumberOptions, operators bool) {
	value := m.displ
	if m.bits < 64 {
		value &= 1<<m.bits - 1
	}

	if !m.hasRegisters() {
		abs := *no
		abs.Signed = false
		if sym, ok := f.resolve(inst, op, operand, value, m.bits/8); ok {
			f.writeSymbol(w, inst, op, operand, value, m.bits, &sym, TextSymbolAddress, &abs)
			return
		}

		f.writeNumber(w, &abs, value, m.bits, TextNumber, op, operand)
		return
	}

	if m.displSize != 0 {
		if sym, ok := f.resolve(inst, op, operand, value, m.displSize); ok {
			if operators && sym.Flags&SymbolSigned == 0 {
				f.writeMemoryOperator(w, "+")
			}

			f.writeSymbol(w, inst, op, operand, value, m.bits, &sym, TextSymbolAddress, no)
			return
		}
	}

	negative := no.Signed && signExtend(value, m.bits) < 0
	if negative {
		value = uint64(-signExtend(value, m.bits))
		if m.bits < 64 {
			value &= 1<<m.bits - 1
		}
	}

	switch {
	case negative && operators:
		f.writeMemoryOperator(w, "-")
	case negative:
		w.write("-", TextOperator)
	case operators:
		f.writeMemoryOperator(w, "+")
	}

	f.writeNumber(w, no, value, m.bits, TextNumber, op, operand)
}

// writeScaledIndex writes the index register
// and its scale.
func (f *Formatter) writeScaledIndex(w *writer, m *memory, op, operand int) {
	showScale := m.scale != 1 || f.opts.AlwaysShowScale
	if !showScale {
		f.writeRegister(w, m.index, op, operand)
		return
	}

	mul := func() {
		if f.opts.SpaceBetweenMemoryMulOperators {
			w.write(" * ", TextOperator)
		} else {
			w.write("*", TextOperator)
		}
	}

	scale := func() {
		w.token(&Token{
			Text:             strconv.Itoa(m.scale),
			Kind:             TextNumber,
			Operand:          op,
			FormatterOperand: operand,
			Value:            uint64(m.scale),
		})
	}

	if f.opts.ScaleBeforeIndex {
		scale()
		mul()
		f.writeRegister(w, m.index, op, operand)
		return
	}

	f.writeRegister(w, m.index, op, operand)
	mul()
	scale()
}
