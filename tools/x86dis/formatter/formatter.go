// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

// Package formatter converts decoded x86 instructions to text in
// the Intel, MASM, NASM and GNU assembler (AT&T) syntaxes.
//
// A Formatter is not safe for concurrent use, but any number of
// formatters can be used concurrently.
package formatter

import (
	"fmt"
	"strings"

	"firefly-os.dev/tools/x86dis/x86"
)

// Syntax identifies an assembler syntax.
type Syntax uint8

const (
	Intel Syntax = iota
	MASM
	NASM
	Gas
)

var syntaxNames = [...]string{
	Intel: "intel",
	MASM:  "masm",
	NASM:  "nasm",
	Gas:   "gas",
}

func (s Syntax) String() string {
	if int(s) < len(syntaxNames) {
		return syntaxNames[s]
	}

	return fmt.Sprintf("Syntax(%d)", s)
}

// ParseSyntax returns the syntax with the
// given name. The AT&T syntax can be
// called "gas" or "att".
func ParseSyntax(name string) (Syntax, error) {
	name = strings.ToLower(name)
	for s, n := range syntaxNames {
		if n == name {
			return Syntax(s), nil
		}
	}

	switch name {
	case "att", "at&t", "go":
		return Gas, nil
	case "xed":
		return Intel, nil
	}

	return 0, fmt.Errorf("unknown syntax %q", name)
}

// Syntaxes returns the names of the
// supported syntaxes.
func Syntaxes() []string {
	return append([]string(nil), syntaxNames[:]...)
}

// MnemonicFlags controls the output of
// FormatMnemonic.
type MnemonicFlags uint8

const (
	// NoPrefixes omits the prefixes.
	NoPrefixes MnemonicFlags = 1 << iota

	// NoMnemonic omits the mnemonic.
	NoMnemonic
)

// Formatter formats instructions in one
// syntax.
type Formatter struct {
	syntax   Syntax
	opts     Options
	symbols  SymbolResolver
	provider OptionsProvider

	// Scratch space for numbers.
	buf []byte
}

// New returns a formatter for the given
// syntax, with that syntax's default
// options.
func New(syntax Syntax) *Formatter {
	f := &Formatter{syntax: syntax, buf: make([]byte, 0, 80)}
	switch syntax {
	case MASM:
		f.opts = masmOptions()
	case NASM:
		f.opts = nasmOptions()
	case Gas:
		f.opts = gasOptions()
	default:
		f.syntax = Intel
		f.opts = intelOptions()
	}

	return f
}

// Syntax returns the formatter's syntax.
func (f *Formatter) Syntax() Syntax { return f.syntax }

// Options returns the formatter's options,
// which can be modified.
func (f *Formatter) Options() *Options { return &f.opts }

// SetSymbolResolver sets the resolver used
// to name addresses. It may be nil.
func (f *Formatter) SetSymbolResolver(r SymbolResolver) { f.symbols = r }

// SetOptionsProvider sets the provider used
// to change the options for each operand.
// It may be nil.
func (f *Formatter) SetOptionsProvider(p OptionsProvider) { f.provider = p }

// layout describes how an instruction's
// operands are printed.
type layout struct {
	mnemonic string
	pseudo   bool

	// ops maps each formatter operand to
	// its instruction operand.
	ops [x86.MaxOperands]int
	n   int

	// decorated is the instruction operand
	// that carries the rounding, SAE and
	// register swizzle decorators, or -1.
	decorated int

	// data is set for data directives,
	// whose operands are the data elements.
	data bool
}

func (f *Formatter) layout(inst *x86.Instruction) layout {
	code := inst.Code()
	info := infoFor(code)
	l := layout{mnemonic: f.baseMnemonic(inst, info), decorated: -1}
	if info.has(infoDirective) {
		l.data = true
		l.n = inst.DeclareDataLen()
		return l
	}

	count := min(inst.OpCount(), x86.MaxOperands)
	if f.opts.UsePseudoOps && info.pseudo != nil && count > 0 && inst.OpKind(count-1) == x86.OpKindImmediate8 {
		if name, ok := info.pseudo.mnemonic(inst.Immediate8()); ok {
			l.mnemonic = name
			l.pseudo = true
			count--
		}
	}

	for i := 0; i < count; i++ {
		if f.hidden(inst, info, i) {
			continue
		}

		l.ops[l.n] = i
		l.n++
	}

	if inst.RoundingControl() != x86.RoundingNone || inst.SuppressAllExceptions() || isSwizzle(inst.MvexRegMemConv()) {
		for i := count - 1; i >= 0; i-- {
			if !inst.OpKind(i).IsImmediate() {
				l.decorated = i
				break
			}
		}
	}

	// The AT&T syntax reverses the operands,
	// except for enter's two immediates.
	if f.syntax == Gas && info.mnemonic != "enter" {
		for i, j := 0, l.n-1; i < j; i, j = i+1, j-1 {
			l.ops[i], l.ops[j] = l.ops[j], l.ops[i]
		}
	}

	return l
}

// baseMnemonic returns the mnemonic for the
// instruction, without any gas size suffix.
func (f *Formatter) baseMnemonic(inst *x86.Instruction, info *formatInfo) string {
	if info.has(infoCondition) {
		return info.ccPrefix + f.opts.conditionName(inst.ConditionCode()) + info.ccSuffix
	}

	switch f.syntax {
	case MASM:
		return info.masm
	case Gas:
		return info.gas
	}

	return info.mnemonic
}

// hidden returns whether an instruction
// operand is left implicit.
func (f *Formatter) hidden(inst *x86.Instruction, info *formatInfo, i int) bool {
	if f.syntax == MASM {
		return false
	}

	if info.has(infoImplicitString) {
		return f.syntax != Gas && inst.Code().OpCodeOperandKind(i).Encoding() == x86.EncodingImplicit
	}

	// The implicit destination of maskmovq
	// and similar instructions.
	return inst.OpKind(i).IsStringMemory()
}

// OperandCount returns the number of
// operands the formatter prints for the
// instruction.
func (f *Formatter) OperandCount(inst *x86.Instruction) int {
	l := f.layout(inst)
	return l.n
}

// InstructionOperand returns the instruction
// operand for a formatter operand. It
// returns false if the formatter operand
// does not exist or is not an instruction
// operand, such as a data element.
func (f *Formatter) InstructionOperand(inst *x86.Instruction, operand int) (int, bool) {
	l := f.layout(inst)
	if l.data || operand < 0 || operand >= l.n {
		return -1, false
	}

	return l.ops[operand], true
}

// FormatterOperand returns the formatter
// operand for an instruction operand. It
// returns false if the instruction operand
// is not printed.
func (f *Formatter) FormatterOperand(inst *x86.Instruction, operand int) (int, bool) {
	l := f.layout(inst)
	if l.data {
		return -1, false
	}

	for i := 0; i < l.n; i++ {
		if l.ops[i] == operand {
			return i, true
		}
	}

	return -1, false
}

// OpAccess returns how a formatter operand
// is accessed, if that is known.
func (f *Formatter) OpAccess(inst *x86.Instruction, operand int) (x86.OpAccess, bool) {
	op, ok := f.InstructionOperand(inst, operand)
	if !ok {
		return x86.AccessNone, false
	}

	kind := inst.OpKind(op)
	switch {
	case kind.IsImmediate(), kind.IsNearBranch(), kind.IsFarBranch():
		return x86.AccessRead, true
	case kind == x86.OpKindMemory && inst.MemorySize() == x86.MemorySizeUnknown:
		// lea, nop, prefetch and friends
		// compute an address without using
		// the memory.
		return x86.AccessNoMemAccess, true
	case kind.IsStringMemory() && inst.IsStringInstruction():
		if kind >= x86.OpKindMemoryESDI {
			if strings.HasPrefix(inst.Mnemonic(), "cmps") || strings.HasPrefix(inst.Mnemonic(), "scas") {
				return x86.AccessRead, true
			}

			return x86.AccessWrite, true
		}

		return x86.AccessRead, true
	}

	return x86.AccessNone, false
}

// FormatToString returns the instruction
// as text.
func (f *Formatter) FormatToString(inst *x86.Instruction) string {
	var out StringOutput
	f.Format(inst, &out)
	return out.String()
}

// Format writes the instruction to out.
func (f *Formatter) Format(inst *x86.Instruction, out Output) {
	w := newWriter(inst, out)
	l := f.layout(inst)
	f.formatMnemonic(w, inst, &l, 0)
	if l.n == 0 {
		return
	}

	f.writeOperandIndent(w)
	f.formatOperands(w, inst, &l)
}

// FormatMnemonic writes the instruction's
// prefixes and mnemonic to out.
func (f *Formatter) FormatMnemonic(inst *x86.Instruction, out Output, flags MnemonicFlags) {
	w := newWriter(inst, out)
	l := f.layout(inst)
	f.formatMnemonic(w, inst, &l, flags)
}

// FormatAllOperands writes the instruction's
// operands to out.
func (f *Formatter) FormatAllOperands(inst *x86.Instruction, out Output) {
	w := newWriter(inst, out)
	l := f.layout(inst)
	f.formatOperands(w, inst, &l)
}

// FormatOperand writes one formatter operand
// to out.
func (f *Formatter) FormatOperand(inst *x86.Instruction, out Output, operand int) error {
	l := f.layout(inst)
	if operand < 0 || operand >= l.n {
		return fmt.Errorf("formatter: operand %d out of range: %s has %d operands", operand, inst.Code(), l.n)
	}

	w := newWriter(inst, out)
	if l.data {
		f.formatData(w, inst, operand)
		return nil
	}

	f.formatOperand(w, inst, &l, operand)
	return nil
}

// FormatOperandSeparator writes the text
// between two operands to out.
func (f *Formatter) FormatOperandSeparator(inst *x86.Instruction, out Output) {
	w := newWriter(inst, out)
	f.writeSeparator(w)
}

// writer tracks the text written for one
// instruction.
type writer struct {
	out    Output
	tokens TokenOutput
	inst   *x86.Instruction
	column int
}

func newWriter(inst *x86.Instruction, out Output) *writer {
	w := &writer{out: out, inst: inst}
	w.tokens, _ = out.(TokenOutput)
	return w
}

func (w *writer) write(text string, kind TextKind) {
	w.out.Write(text, kind)
	w.column += len(text)
}

func (w *writer) token(tok *Token) {
	if w.tokens != nil {
		w.tokens.WriteToken(w.inst, tok)
	} else {
		w.out.Write(tok.Text, tok.Kind)
	}

	w.column += len(tok.Text)
}

// upper returns s in upper case if set
// or UppercaseAll is set.
func (f *Formatter) upper(s string, set bool) string {
	if set || f.opts.UppercaseAll {
		return strings.ToUpper(s)
	}

	return s
}

func (f *Formatter) writeKeyword(w *writer, keyword string) {
	w.write(f.upper(keyword, f.opts.UppercaseKeywords), TextKeyword)
}

func (f *Formatter) writeSeparator(w *writer) {
	w.write(",", TextPunctuation)
	if f.opts.SpaceAfterOperandSeparator {
		w.write(" ", TextText)
	}
}

// writeOperandIndent writes the space
// between the mnemonic and the operands.
func (f *Formatter) writeOperandIndent(w *writer) {
	target := f.opts.FirstOperandCharIndex
	if target <= w.column {
		w.write(" ", TextText)
		return
	}

	if tab := f.opts.TabSize; tab > 0 {
		for w.column < target {
			w.write("\t", TextText)
			w.column += tab - w.column%tab - 1
		}

		return
	}

	w.write(strings.Repeat(" ", target-w.column), TextText)
}

func (f *Formatter) formatMnemonic(w *writer, inst *x86.Instruction, l *layout, flags MnemonicFlags) {
	if flags&NoPrefixes == 0 {
		f.formatPrefixes(w, inst, l)
	}

	if flags&NoMnemonic != 0 {
		return
	}

	mnemonic := l.mnemonic
	kind := TextMnemonic
	if l.data {
		kind = TextDirective
	} else if f.syntax == Gas && !l.pseudo {
		mnemonic += f.gasSuffix(inst, l)
	}

	w.token(&Token{
		Text:             f.upper(mnemonic, f.opts.UppercaseMnemonics),
		Kind:             kind,
		Operand:          -1,
		FormatterOperand: -1,
	})

	if f.syntax == Gas && inst.Code().CanBranchHint() {
		switch inst.SegmentPrefix() {
		case x86.CS:
			f.writePrefixToken(w, ",pn", PrefixHintNotTaken)
		case x86.DS:
			f.writePrefixToken(w, ",pt", PrefixHintTaken)
		}
	}
}

func (f *Formatter) writePrefixToken(w *writer, text string, kind PrefixKind) {
	w.token(&Token{
		Text:             f.upper(text, f.opts.UppercasePrefixes),
		Kind:             TextPrefix,
		Operand:          -1,
		FormatterOperand: -1,
		Prefix:           kind,
	})
}

func (f *Formatter) writePrefix(w *writer, text string, kind PrefixKind) {
	f.writePrefixToken(w, text, kind)
	w.write(" ", TextText)
}

// showsSegment returns whether the segment
// prefix is printed with a memory operand.
func (f *Formatter) showsSegment(inst *x86.Instruction, l *layout) bool {
	for i := 0; i < l.n && !l.data; i++ {
		if inst.OpKind(l.ops[i]).IsMemory() {
			return true
		}
	}

	return false
}

func (f *Formatter) formatPrefixes(w *writer, inst *x86.Instruction, l *layout) {
	code := inst.Code()
	useless := f.opts.ShowUselessPrefixes
	if seg := inst.SegmentPrefix(); seg != x86.RegisterNone {
		switch {
		case code.CanBranchHint() && (seg == x86.CS || seg == x86.DS):
			if f.syntax != Gas {
				if seg == x86.CS {
					f.writePrefix(w, "hnt", PrefixHintNotTaken)
				} else {
					f.writePrefix(w, "ht", PrefixHintTaken)
				}
			}
		case f.showsSegment(inst, l):
		case inst.IsStringInstruction() || useless:
			f.writePrefix(w, seg.String(), segmentPrefixKind(seg))
		}
	}

	if inst.HasXacquirePrefix() {
		f.writePrefix(w, "xacquire", PrefixXacquire)
	}

	if inst.HasXreleasePrefix() {
		f.writePrefix(w, "xrelease", PrefixXrelease)
	}

	if inst.HasLockPrefix() {
		f.writePrefix(w, "lock", PrefixLock)
	}

	if inst.HasNotrackPrefix() {
		f.writePrefix(w, "notrack", PrefixNotrack)
	}

	if inst.HasBndPrefix() {
		f.writePrefix(w, "bnd", PrefixBnd)
	}

	rep := inst.HasRepePrefix() && !inst.HasXreleasePrefix()
	repne := inst.HasRepnePrefix() && !inst.HasXacquirePrefix() && !inst.HasBndPrefix()
	switch {
	case rep && code.CanRepeRepne():
		f.writePrefix(w, "repe", PrefixRepe)
	case rep && (code.CanRep() || useless):
		f.writePrefix(w, "rep", PrefixRep)
	}

	if repne && (code.CanRepeRepne() || useless) {
		f.writePrefix(w, "repne", PrefixRepne)
	}
}

// gasSuffix returns the operand size suffix
// added to gas mnemonics.
func (f *Formatter) gasSuffix(inst *x86.Instruction, l *layout) string {
	code := inst.Code()
	info := infoFor(code)
	if info.has(infoDirective|infoImplicitString) || code == x86.Invalid {
		return ""
	}

	if info.has(infoExtend) {
		return f.gasExtendSuffix(inst)
	}

	if code.IsCall() || code.IsRet() {
		if code.IsFar() {
			return ""
		}

		switch code.OperandSize() {
		case 64:
			return "q"
		case 16:
			if inst.CodeSize() != x86.CodeSize16 {
				return "w"
			}
		}

		return ""
	}

	if code.IsBranch() {
		return ""
	}

	var mem, imm, reg bool
	var memSize x86.MemorySize
	for i := 0; i < l.n; i++ {
		kind := inst.OpKind(l.ops[i])
		switch {
		case kind == x86.OpKindRegister:
			reg = true
		case kind == x86.OpKindMemory:
			mem = true
			memSize = inst.MemorySize()
		case kind.IsImmediate():
			imm = true
		}
	}

	if code.IsFpu() {
		if !mem {
			return ""
		}

		switch memSize {
		case x86.MemorySizeFloat32, x86.MemorySizeInt16:
			return "s"
		case x86.MemorySizeFloat64, x86.MemorySizeInt32:
			return "l"
		case x86.MemorySizeFloat80:
			return "t"
		case x86.MemorySizeInt64:
			return "ll"
		}

		return ""
	}

	if code.Encoding() != x86.EncodingLegacy {
		return ""
	}

	if !f.opts.GasShowMnemonicSizeSuffix && (reg || !(mem || imm)) {
		return ""
	}

	size := code.OperandSize() / 8
	if size == 0 && code.OpCode().W == 1 {
		size = 8
	}

	return sizeSuffix(size)
}

// gasExtendSuffix returns the suffix for
// movzx and movsx, which names both the
// source and destination sizes.
func (f *Formatter) gasExtendSuffix(inst *x86.Instruction) string {
	src := inst.MemorySize().Size()
	if inst.OpKind(1) == x86.OpKindRegister {
		src = inst.OpRegister(1).Size()
	}

	return sizeSuffix(src) + sizeSuffix(inst.OpRegister(0).Size())
}

func sizeSuffix(size int) string {
	switch size {
	case 1:
		return "b"
	case 2:
		return "w"
	case 4:
		return "l"
	case 8:
		return "q"
	}

	return ""
}

func (f *Formatter) formatOperands(w *writer, inst *x86.Instruction, l *layout) {
	for i := 0; i < l.n; i++ {
		if i > 0 {
			f.writeSeparator(w)
		}

		if l.data {
			f.formatData(w, inst, i)
		} else {
			f.formatOperand(w, inst, l, i)
		}
	}
}

// formatData writes one element of a data
// directive.
func (f *Formatter) formatData(w *writer, inst *x86.Instruction, n int) {
	var value uint64
	var bits int
	switch inst.Code() {
	case x86.DeclareByte:
		v, _ := inst.DeclareByteValue(n)
		value, bits = uint64(v), 8
	case x86.DeclareWord:
		v, _ := inst.DeclareWordValue(n)
		value, bits = uint64(v), 16
	case x86.DeclareDword:
		v, _ := inst.DeclareDwordValue(n)
		value, bits = uint64(v), 32
	default:
		v, _ := inst.DeclareQwordValue(n)
		value, bits = v, 64
	}

	opts := f.opts.numberOptions(numberImmediate)
	opts.Signed = false
	f.writeNumber(w, &opts, value, bits, TextNumber, -1, n)
}

// operandOptions returns the options for
// one operand, after consulting the
// options provider.
func (f *Formatter) operandOptions(inst *x86.Instruction, op, operand int, kind numberKind) (OperandOptions, NumberOptions) {
	oo := OperandOptions{
		MemorySizeOptions:    f.opts.MemorySizeOptions,
		RipRelativeAddresses: f.opts.RipRelativeAddresses,
		ShowBranchSize:       f.opts.ShowBranchSize,
	}

	no := f.opts.numberOptions(kind)
	if f.provider != nil {
		f.provider.OperandOptions(inst, op, operand, &oo, &no)
	}

	return oo, no
}

func (f *Formatter) formatOperand(w *writer, inst *x86.Instruction, l *layout, operand int) {
	op := l.ops[operand]
	kind := inst.OpKind(op)

	if op == l.decorated && f.syntax == Gas {
		if f.writeRounding(w, inst) {
			f.writeSeparator(w)
		}
	}

	switch {
	case kind == x86.OpKindRegister:
		if f.syntax == Gas && isIndirectBranch(inst.Code()) {
			w.write("*", TextOperator)
		}

		f.writeRegister(w, inst.OpRegister(op), op, operand)
	case kind.IsNearBranch():
		oo, no := f.operandOptions(inst, op, operand, numberBranch)
		f.formatNearBranch(w, inst, l, op, operand, kind, &oo, &no)
	case kind.IsFarBranch():
		_, no := f.operandOptions(inst, op, operand, numberBranch)
		f.formatFarBranch(w, inst, op, operand, kind, &no)
	case kind.IsImmediate():
		_, no := f.operandOptions(inst, op, operand, numberImmediate)
		f.formatImmediate(w, inst, op, operand, kind, &no)
	case kind.IsMemory():
		oo, no := f.operandOptions(inst, op, operand, numberDisplacement)
		if f.syntax == Gas {
			if isIndirectBranch(inst.Code()) {
				w.write("*", TextOperator)
			}

			f.formatMemoryGas(w, inst, op, operand, kind, &oo, &no)
		} else {
			f.formatMemoryIntel(w, inst, l, op, operand, kind, &oo, &no)
		}
	}

	f.writeDecorators(w, inst, l, op, operand)
}

// isIndirectBranch returns whether the
// code is a call or jump through a
// register or memory.
func isIndirectBranch(code x86.Code) bool {
	if !(code.IsCall() || code.IsJmp()) {
		return false
	}

	for i := 0; i < code.OpCount(); i++ {
		if code.OpCodeOperandKind(i).IsBranch() {
			return false
		}
	}

	return true
}

// registerName returns the name of reg
// in the formatter's syntax.
func (f *Formatter) registerName(reg x86.Register) string {
	name := reg.String()
	if reg.IsST() && f.syntax != NASM {
		if reg == x86.ST0 && !f.opts.PreferST0 {
			name = "st"
		} else {
			name = fmt.Sprintf("st(%d)", reg.Number())
		}
	}

	name = f.upper(name, f.opts.UppercaseRegisters)
	if f.syntax == Gas && !f.opts.GasNakedRegisters {
		name = "%" + name
	}

	return name
}

func (f *Formatter) writeRegister(w *writer, reg x86.Register, op, operand int) {
	w.token(&Token{
		Text:             f.registerName(reg),
		Kind:             TextRegister,
		Operand:          op,
		FormatterOperand: operand,
		Register:         reg,
	})
}

// number returns value as text.
func (f *Formatter) number(opts *NumberOptions, value uint64, bits int) string {
	f.buf = appendNumber(f.buf[:0], opts, value, bits)
	return string(f.buf)
}

func (f *Formatter) writeNumber(w *writer, opts *NumberOptions, value uint64, bits int, kind TextKind, op, operand int) {
	w.token(&Token{
		Text:             f.number(opts, value, bits),
		Kind:             kind,
		Operand:          op,
		FormatterOperand: operand,
		Value:            value,
	})
}

// writeSigned writes a signed value, with
// a minus sign if it is negative and opts
// allow it.
func (f *Formatter) writeSigned(w *writer, opts *NumberOptions, value uint64, bits int, op, operand int) {
	if v := signExtend(value, bits); opts.Signed && v < 0 {
		w.write("-", TextOperator)
		value = uint64(-v)
	}

	f.writeNumber(w, opts, value, bits, TextNumber, op, operand)
}

// resolve looks up a symbol for an address.
func (f *Formatter) resolve(inst *x86.Instruction, op, operand int, address uint64, size int) (Symbol, bool) {
	if f.symbols == nil {
		return Symbol{}, false
	}

	return f.symbols.Resolve(inst, op, operand, address, size)
}

// writeSymbol writes a symbol for the given
// address, followed by the offset from the
// symbol's address, if any.
func (f *Formatter) writeSymbol(w *writer, inst *x86.Instruction, op, operand int, address uint64, bits int, sym *Symbol, kind TextKind, opts *NumberOptions) {
	if sym.Flags&SymbolSigned != 0 {
		w.write("-", TextOperator)
	}

	if sym.Kind != TextText {
		kind = sym.Kind
	}

	w.token(&Token{
		Text:             sym.Text,
		Kind:             kind,
		Operand:          op,
		FormatterOperand: operand,
		Value:            address,
		Symbol:           sym,
	})

	if delta := int64(address - sym.Address); delta != 0 {
		no := f.opts.numberOptions(numberImmediate)
		if delta < 0 {
			f.writeMemoryOperator(w, "-")
			delta = -delta
		} else {
			f.writeMemoryOperator(w, "+")
		}

		f.writeNumber(w, &no, uint64(delta), 64, TextNumber, op, operand)
	}

	if f.opts.ShowSymbolAddress {
		w.write(" (", TextPunctuation)
		f.writeNumber(w, opts, address, bits, TextNumber, op, operand)
		w.write(")", TextPunctuation)
	}
}

// writeMemoryOperator writes a + or -,
// with spaces if configured.
func (f *Formatter) writeMemoryOperator(w *writer, operator string) {
	if f.opts.SpaceBetweenMemoryAddOperators {
		w.write(" ", TextText)
		w.write(operator, TextOperator)
		w.write(" ", TextText)
		return
	}

	w.write(operator, TextOperator)
}

// branchTarget returns the target of a
// near branch and its size in bits.
func branchTarget(inst *x86.Instruction, kind x86.OpKind) (uint64, int) {
	switch kind {
	case x86.OpKindNearBranch16:
		return uint64(inst.NearBranch16()), 16
	case x86.OpKindNearBranch32:
		return uint64(inst.NearBranch32()), 32
	}

	return inst.NearBranch64(), 64
}

func (f *Formatter) formatNearBranch(w *writer, inst *x86.Instruction, l *layout, op, operand int, kind x86.OpKind, oo *OperandOptions, no *NumberOptions) {
	code := inst.Code()
	target, bits := branchTarget(inst, kind)
	if oo.ShowBranchSize && f.syntax != Gas && code.OpCodeOperandKind(op).ImmediateSize() == 1 {
		f.writeKeyword(w, "short")
		w.write(" ", TextText)
	}

	textKind := TextLabelAddress
	if code.IsCall() {
		textKind = TextFunctionAddress
	}

	if sym, ok := f.resolve(inst, op, operand, target, bits/8); ok {
		f.writeSymbol(w, inst, op, operand, target, bits, &sym, textKind, no)
		return
	}

	f.writeNumber(w, no, target, bits, textKind, op, operand)
}

func (f *Formatter) formatFarBranch(w *writer, inst *x86.Instruction, op, operand int, kind x86.OpKind, no *NumberOptions) {
	offset, bits := uint64(inst.FarBranch32()), 32
	if kind == x86.OpKindFarBranch16 {
		offset, bits = uint64(inst.FarBranch16()), 16
	}

	selector := uint64(inst.FarBranchSelector())
	switch f.syntax {
	case Intel:
		f.writeKeyword(w, "far")
		w.write(" ", TextText)
	case MASM:
		f.writeKeyword(w, "far ptr")
		w.write(" ", TextText)
	case Gas:
		w.write("$", TextOperator)
		f.writeNumber(w, no, selector, 16, TextSelectorValue, op, operand)
		f.writeSeparator(w)
		w.write("$", TextOperator)
		f.writeFarOffset(w, inst, op, operand, offset, bits, no)
		return
	}

	f.writeNumber(w, no, selector, 16, TextSelectorValue, op, operand)
	w.write(":", TextPunctuation)
	f.writeFarOffset(w, inst, op, operand, offset, bits, no)
}

func (f *Formatter) writeFarOffset(w *writer, inst *x86.Instruction, op, operand int, offset uint64, bits int, no *NumberOptions) {
	textKind := TextLabelAddress
	if inst.Code().IsCall() {
		textKind = TextFunctionAddress
	}

	if sym, ok := f.resolve(inst, op, operand, offset, bits/8); ok {
		f.writeSymbol(w, inst, op, operand, offset, bits, &sym, textKind, no)
		return
	}

	f.writeNumber(w, no, offset, bits, textKind, op, operand)
}

// immediateValue returns an immediate, its
// size in bits, and the size in bits it
// was encoded with if it was sign-extended.
func immediateValue(inst *x86.Instruction, op int, kind x86.OpKind) (value uint64, bits, extended int) {
	value, _ = inst.Immediate(op)
	switch kind {
	case x86.OpKindImmediate8, x86.OpKindImmediate8_2nd:
		return value, 8, 0
	case x86.OpKindImmediate16:
		return value, 16, 0
	case x86.OpKindImmediate32:
		return value, 32, 0
	case x86.OpKindImmediate8to16:
		return value & 0xffff, 16, 8
	case x86.OpKindImmediate8to32:
		return value & 0xffff_ffff, 32, 8
	case x86.OpKindImmediate8to64:
		return value, 64, 8
	case x86.OpKindImmediate32to64:
		return value, 64, 32
	}

	return value, 64, 0
}

func (f *Formatter) formatImmediate(w *writer, inst *x86.Instruction, op, operand int, kind x86.OpKind, no *NumberOptions) {
	value, bits, extended := immediateValue(inst, op, kind)
	if f.syntax == Gas {
		w.write("$", TextOperator)
	}

	if f.syntax == NASM && f.opts.NasmShowSignExtendedImmediateSize && extended != 0 {
		f.writeKeyword(w, sizeKeyword(extended/8, true))
		w.write(" ", TextText)
	}

	if sym, ok := f.resolve(inst, op, operand, value, bits/8); ok {
		if f.syntax == MASM && sym.Flags&SymbolRelative == 0 {
			f.writeKeyword(w, "offset")
			w.write(" ", TextText)
		}

		f.writeSymbol(w, inst, op, operand, value, bits, &sym, TextSymbolAddress, no)
		return
	}

	f.writeSigned(w, no, value, bits, op, operand)
}

// isSwizzle returns whether c is a register
// swizzle that is printed.
func isSwizzle(c x86.MvexRegMemConv) bool {
	return c >= x86.MvexRegSwizzleCdab && c <= x86.MvexRegSwizzleDddd
}

var mvexDecorators = map[x86.MvexRegMemConv]string{
	x86.MvexRegSwizzleCdab: "cdab",
	x86.MvexRegSwizzleBadc: "badc",
	x86.MvexRegSwizzleDacb: "dacb",
	x86.MvexRegSwizzleAaaa: "aaaa",
	x86.MvexRegSwizzleBbbb: "bbbb",
	x86.MvexRegSwizzleCccc: "cccc",
	x86.MvexRegSwizzleDddd: "dddd",
	x86.MvexMemConvFloat16: "float16",
	x86.MvexMemConvUint8:   "uint8",
	x86.MvexMemConvSint8:   "sint8",
	x86.MvexMemConvUint16:  "uint16",
	x86.MvexMemConvSint16:  "sint16",
}

var roundingDecorators = [...]string{
	x86.RoundToNearest:  "rn-sae",
	x86.RoundDown:       "rd-sae",
	x86.RoundUp:         "ru-sae",
	x86.RoundTowardZero: "rz-sae",
}

func (f *Formatter) writeDecorator(w *writer, text string, kind DecoratorKind, op, operand int) {
	w.token(&Token{
		Text:             "{" + f.upper(text, f.opts.UppercaseDecorators) + "}",
		Kind:             TextDecorator,
		Operand:          op,
		FormatterOperand: operand,
		Decorator:        kind,
	})
}

// writeRounding writes the rounding or SAE
// decorator, if any.
func (f *Formatter) writeRounding(w *writer, inst *x86.Instruction) bool {
	if rc := inst.RoundingControl(); rc != x86.RoundingNone && int(rc) < len(roundingDecorators) {
		f.writeDecorator(w, roundingDecorators[rc], DecoratorRoundingControl, -1, -1)
		return true
	}

	if inst.SuppressAllExceptions() {
		f.writeDecorator(w, "sae", DecoratorSuppressAllExceptions, -1, -1)
		return true
	}

	return false
}

// writeDecorators writes the decorators
// that follow an operand.
func (f *Formatter) writeDecorators(w *writer, inst *x86.Instruction, l *layout, op, operand int) {
	if op == 0 && inst.HasOpMask() {
		f.writeDecorator(w, f.registerName(inst.OpMask()), DecoratorOpMask, op, operand)
		if inst.ZeroingMasking() {
			f.writeDecorator(w, "z", DecoratorZeroingMasking, op, operand)
		}
	}

	kind := inst.OpKind(op)
	if kind == x86.OpKindMemory {
		if inst.IsBroadcast() && f.syntax != MASM {
			n := inst.MemorySize().ElementCount()
			f.writeDecorator(w, fmt.Sprintf("1to%d", n), DecoratorBroadcast, op, operand)
		}

		if inst.Encoding() == x86.EncodingMVEX {
			conv := inst.MvexRegMemConv()
			elements := 64 / max(inst.Code().MemorySize().ElementSize(), 1)
			switch conv {
			case x86.MvexMemConvBroadcast1:
				f.writeDecorator(w, fmt.Sprintf("1to%d", elements), DecoratorSwizzleMemConv, op, operand)
			case x86.MvexMemConvBroadcast4:
				f.writeDecorator(w, fmt.Sprintf("4to%d", elements), DecoratorSwizzleMemConv, op, operand)
			default:
				if text, ok := mvexDecorators[conv]; ok {
					f.writeDecorator(w, text, DecoratorSwizzleMemConv, op, operand)
				}
			}

			if inst.MvexEvictionHint() {
				f.writeDecorator(w, "eh", DecoratorEvictionHint, op, operand)
			}
		}
	}

	if op != l.decorated {
		return
	}

	if conv := inst.MvexRegMemConv(); isSwizzle(conv) && kind == x86.OpKindRegister {
		f.writeDecorator(w, mvexDecorators[conv], DecoratorSwizzleMemConv, op, operand)
	}

	switch f.syntax {
	case Intel, MASM:
		f.writeRounding(w, inst)
	case NASM:
		if inst.RoundingControl() != x86.RoundingNone || inst.SuppressAllExceptions() {
			f.writeSeparator(w)
			f.writeRounding(w, inst)
		}
	}
}

// immediateOptions returns the options used
// to print immediates.
func (f *Formatter) immediateOptions(signed bool) *NumberOptions {
	opts := f.opts.numberOptions(numberImmediate)
	opts.Signed = signed
	return &opts
}

// FormatU8 formats v the way the formatter
// prints immediates.
func (f *Formatter) FormatU8(v uint8) string { return FormatU8Options(v, f.immediateOptions(false)) }

func (f *Formatter) FormatU16(v uint16) string { return FormatU16Options(v, f.immediateOptions(false)) }
func (f *Formatter) FormatU32(v uint32) string { return FormatU32Options(v, f.immediateOptions(false)) }
func (f *Formatter) FormatU64(v uint64) string { return FormatU64Options(v, f.immediateOptions(false)) }
func (f *Formatter) FormatI8(v int8) string    { return FormatI8Options(v, f.immediateOptions(true)) }
func (f *Formatter) FormatI16(v int16) string  { return FormatI16Options(v, f.immediateOptions(true)) }
func (f *Formatter) FormatI32(v int32) string  { return FormatI32Options(v, f.immediateOptions(true)) }
func (f *Formatter) FormatI64(v int64) string  { return FormatI64Options(v, f.immediateOptions(true)) }
