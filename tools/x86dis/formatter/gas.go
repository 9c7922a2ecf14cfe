// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package formatter

import (
	"strconv"

	"firefly-os.dev/tools/x86dis/x86"
)

// NewGas returns a formatter for the AT&T
// syntax used by the GNU assembler.
func NewGas() *Formatter { return New(Gas) }

func gasOptions() Options {
	return Options{
		HexPrefix:                 "0x",
		HexDigitGroupSize:         4,
		DecimalDigitGroupSize:     3,
		OctalPrefix:               "0",
		OctalDigitGroupSize:       4,
		BinaryPrefix:              "0b",
		BinaryDigitGroupSize:      4,
		UppercaseHex:              true,
		SmallHexNumbersInDecimal:  true,
		SignedMemoryDisplacements: true,
		UsePseudoOps:              true,
	}
}

// formatMemoryGas writes a memory operand
// in the AT&T syntax.
//
//	%fs:0x10(%rax,%rcx,4)
func (f *Formatter) formatMemoryGas(w *writer, inst *x86.Instruction, op, operand int, kind x86.OpKind, oo *OperandOptions, no *NumberOptions) {
	m := f.memoryOperand(inst, kind, oo)
	if m.segment != x86.RegisterNone {
		f.writeSegment(w, m.segment, op, operand)
	}

	if f.hasDisplacement(&m) {
		f.writeDisplacement(w, inst, &m, op, operand, no, false)
	}

	if m.absolute {
		// The target was printed, but the
		// assembler still needs to know the
		// operand is IP-relative.
		w.write("(", TextPunctuation)
		f.writeRegister(w, ipRegister(m.bits), op, operand)
		w.write(")", TextPunctuation)
		return
	}

	if !m.hasRegisters() {
		return
	}

	w.write("(", TextPunctuation)
	if m.base != x86.RegisterNone {
		f.writeRegister(w, m.base, op, operand)
	}

	if m.index != x86.RegisterNone {
		f.writeGasComma(w)
		f.writeRegister(w, m.index, op, operand)
		if m.scale != 1 || f.opts.AlwaysShowScale {
			f.writeGasComma(w)
			w.token(&Token{
				Text:             strconv.Itoa(m.scale),
				Kind:             TextNumber,
				Operand:          op,
				FormatterOperand: operand,
				Value:            uint64(m.scale),
			})
		}
	}

	w.write(")", TextPunctuation)
}

func (f *Formatter) writeGasComma(w *writer) {
	w.write(",", TextPunctuation)
	if f.opts.GasSpaceAfterMemoryOperandComma {
		w.write(" ", TextText)
	}
}

func ipRegister(bits int) x86.Register {
	if bits == 32 {
		return x86.EIP
	}

	return x86.RIP
}

