// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package formatter

import (
	"firefly-os.dev/tools/x86dis/x86"
)

// NewIntel returns a formatter for the
// Intel syntax used by the Intel manuals
// and XED.
func NewIntel() *Formatter { return New(Intel) }

// NewMasm returns a formatter for the
// Microsoft Macro Assembler syntax.
func NewMasm() *Formatter { return New(MASM) }

// NewNasm returns a formatter for the
// Netwide Assembler syntax.
func NewNasm() *Formatter { return New(NASM) }

func intelOptions() Options {
	opts := defaultOptions()
	opts.ShowBranchSize = false
	return opts
}

func masmOptions() Options {
	opts := defaultOptions()
	opts.ShowBranchSize = true
	return opts
}

func nasmOptions() Options {
	opts := defaultOptions()
	opts.ShowBranchSize = true
	return opts
}

// formatMemoryIntel writes a memory operand
// in the Intel, MASM or NASM syntax.
//
//	Intel: dword ptr fs:[rax+rcx*4+10h]
//	MASM:  dword ptr fs:[rax+rcx*4+10h]
//	NASM:  dword [fs:rax+rcx*4+10h]
func (f *Formatter) formatMemoryIntel(w *writer, inst *x86.Instruction, l *layout, op, operand int, kind x86.OpKind, oo *OperandOptions, no *NumberOptions) {
	m := f.memoryOperand(inst, kind, oo)
	if f.showSizeKeyword(inst, &m, oo) {
		f.writeSizeKeyword(w, inst, &m)
	}

	if m.segment != x86.RegisterNone && f.syntax != NASM {
		f.writeSegment(w, m.segment, op, operand)
	}

	displ := f.hasDisplacement(&m)

	// MASM can print the displacement
	// before the brackets.
	if f.syntax == MASM && displ && m.hasRegisters() && !f.masmDisplInBrackets(inst, &m, op, operand) {
		f.writeDisplacement(w, inst, &m, op, operand, no, false)
		displ = false
	}

	if f.syntax == MASM && !m.hasRegisters() && !f.opts.MasmDisplInBrackets && m.segment != x86.RegisterNone {
		f.writeDisplacement(w, inst, &m, op, operand, no, false)
		return
	}

	w.write("[", TextPunctuation)
	if f.opts.SpaceAfterMemoryBracket {
		w.write(" ", TextText)
	}

	if f.syntax == NASM {
		if m.segment != x86.RegisterNone {
			f.writeSegment(w, m.segment, op, operand)
		}

		if m.absolute {
			f.writeKeyword(w, "rel")
			w.write(" ", TextText)
		}
	}

	first := true
	if m.base != x86.RegisterNone {
		f.writeRegister(w, m.base, op, operand)
		first = false
	}

	if m.index != x86.RegisterNone {
		if !first {
			f.writeMemoryOperator(w, "+")
		}

		f.writeScaledIndex(w, &m, op, operand)
		first = false
	}

	if displ {
		f.writeDisplacement(w, inst, &m, op, operand, no, !first)
	}

	if f.opts.SpaceAfterMemoryBracket {
		w.write(" ", TextText)
	}

	w.write("]", TextPunctuation)
}

// masmDisplInBrackets returns whether MASM
// prints the displacement inside the
// brackets.
func (f *Formatter) masmDisplInBrackets(inst *x86.Instruction, m *memory, op, operand int) bool {
	if m.displSize != 0 && f.symbols != nil {
		value := m.displ
		if m.bits < 64 {
			value &= 1<<m.bits - 1
		}

		if _, ok := f.symbols.Resolve(inst, op, operand, value, m.displSize); ok {
			return f.opts.MasmSymbolDisplInBrackets
		}
	}

	return f.opts.MasmDisplInBrackets
}
