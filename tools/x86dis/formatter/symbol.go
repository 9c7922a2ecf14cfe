// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package formatter

import (
	"firefly-os.dev/tools/x86dis/x86"
)

// SymbolFlags describes how a symbol is
// printed.
type SymbolFlags uint8

const (
	// SymbolSigned prints a minus sign
	// before the symbol.
	SymbolSigned SymbolFlags = 1 << iota

	// SymbolRelative marks the symbol as
	// relative to another address, so
	// MASM omits its offset keyword.
	SymbolRelative
)

// Symbol is a name for an address.
type Symbol struct {
	// Address is the symbol's address. If
	// it differs from the address being
	// resolved, the difference is printed
	// as an offset after the symbol.
	Address uint64

	// Text is the symbol's name.
	Text string

	// Kind is used to write Text. If it
	// is TextText, the kind follows the
	// operand: TextFunctionAddress for
	// call targets, TextLabelAddress for
	// other branches and TextSymbolAddress
	// for data.
	Kind TextKind

	// Size is the size of the data at the
	// symbol, which may be used in place
	// of the memory size keyword.
	Size x86.MemorySize

	Flags SymbolFlags
}

// SymbolResolver names addresses.
//
// Resolve is called for each operand that
// may contain an address: branch targets,
// immediates, displacements and IP-relative
// memory operands. The operand is the
// instruction operand, formatterOperand
// is the formatter operand or -1, and
// addressSize is the operand's size in
// bytes.
type SymbolResolver interface {
	Resolve(inst *x86.Instruction, operand, formatterOperand int, address uint64, addressSize int) (Symbol, bool)
}

// SymbolResolverFunc is a function that
// implements SymbolResolver.
type SymbolResolverFunc func(inst *x86.Instruction, operand, formatterOperand int, address uint64, addressSize int) (Symbol, bool)

func (fn SymbolResolverFunc) Resolve(inst *x86.Instruction, operand, formatterOperand int, address uint64, addressSize int) (Symbol, bool) {
	return fn(inst, operand, formatterOperand, address, addressSize)
}

// SymbolMap is a SymbolResolver that
// resolves exact addresses.
type SymbolMap map[uint64]string

func (m SymbolMap) Resolve(inst *x86.Instruction, operand, formatterOperand int, address uint64, addressSize int) (Symbol, bool) {
	text, ok := m[address]
	if !ok {
		return Symbol{}, false
	}

	return Symbol{Address: address, Text: text}, true
}

// OperandOptions are the options that an
// OptionsProvider can change for each
// operand.
type OperandOptions struct {
	MemorySizeOptions    MemorySizeOptions
	RipRelativeAddresses bool
	ShowBranchSize       bool
}

// OptionsProvider can change how each
// operand is printed.
type OptionsProvider interface {
	OperandOptions(inst *x86.Instruction, operand, formatterOperand int, opts *OperandOptions, number *NumberOptions)
}

// OptionsProviderFunc is a function that
// implements OptionsProvider.
type OptionsProviderFunc func(inst *x86.Instruction, operand, formatterOperand int, opts *OperandOptions, number *NumberOptions)

func (fn OptionsProviderFunc) OperandOptions(inst *x86.Instruction, operand, formatterOperand int, opts *OperandOptions, number *NumberOptions) {
	fn(inst, operand, formatterOperand, opts, number)
}
