// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package formatter

import (
	"fmt"
	"strings"

	"firefly-os.dev/tools/x86dis/x86"
)

// TextKind labels each piece of text
// written to an Output, so that it can
// be highlighted.
type TextKind uint8

const (
	TextText TextKind = iota
	TextDirective
	TextPrefix
	TextMnemonic
	TextKeyword
	TextOperator
	TextPunctuation
	TextNumber
	TextRegister
	TextDecorator
	TextSelectorValue
	TextLabelAddress
	TextFunctionAddress
	TextSymbolAddress
)

var textKindNames = [...]string{
	TextText:            "Text",
	TextDirective:       "Directive",
	TextPrefix:          "Prefix",
	TextMnemonic:        "Mnemonic",
	TextKeyword:         "Keyword",
	TextOperator:        "Operator",
	TextPunctuation:     "Punctuation",
	TextNumber:          "Number",
	TextRegister:        "Register",
	TextDecorator:       "Decorator",
	TextSelectorValue:   "SelectorValue",
	TextLabelAddress:    "LabelAddress",
	TextFunctionAddress: "FunctionAddress",
	TextSymbolAddress:   "SymbolAddress",
}

func (k TextKind) String() string {
	if int(k) < len(textKindNames) {
		return textKindNames[k]
	}

	return fmt.Sprintf("TextKind(%d)", k)
}

// PrefixKind identifies an instruction
// prefix written to an Output.
type PrefixKind uint8

const (
	PrefixES PrefixKind = iota
	PrefixCS
	PrefixSS
	PrefixDS
	PrefixFS
	PrefixGS
	PrefixLock
	PrefixRep
	PrefixRepe
	PrefixRepne
	PrefixXacquire
	PrefixXrelease
	PrefixBnd
	PrefixNotrack
	PrefixHintTaken
	PrefixHintNotTaken
)

var prefixKindNames = [...]string{
	PrefixES:           "ES",
	PrefixCS:           "CS",
	PrefixSS:           "SS",
	PrefixDS:           "DS",
	PrefixFS:           "FS",
	PrefixGS:           "GS",
	PrefixLock:         "Lock",
	PrefixRep:          "Rep",
	PrefixRepe:         "Repe",
	PrefixRepne:        "Repne",
	PrefixXacquire:     "Xacquire",
	PrefixXrelease:     "Xrelease",
	PrefixBnd:          "Bnd",
	PrefixNotrack:      "Notrack",
	PrefixHintTaken:    "HintTaken",
	PrefixHintNotTaken: "HintNotTaken",
}

func (k PrefixKind) String() string {
	if int(k) < len(prefixKindNames) {
		return prefixKindNames[k]
	}

	return fmt.Sprintf("PrefixKind(%d)", k)
}

// segmentPrefixKind returns the prefix
// kind for a segment register.
func segmentPrefixKind(seg x86.Register) PrefixKind {
	return PrefixES + PrefixKind(seg-x86.ES)
}

// DecoratorKind identifies an operand
// decorator written to an Output.
type DecoratorKind uint8

const (
	DecoratorBroadcast DecoratorKind = iota
	DecoratorRoundingControl
	DecoratorSuppressAllExceptions
	DecoratorOpMask
	DecoratorZeroingMasking
	DecoratorSwizzleMemConv
	DecoratorEvictionHint
)

var decoratorKindNames = [...]string{
	DecoratorBroadcast:             "Broadcast",
	DecoratorRoundingControl:       "RoundingControl",
	DecoratorSuppressAllExceptions: "SuppressAllExceptions",
	DecoratorOpMask:                "OpMask",
	DecoratorZeroingMasking:        "ZeroingMasking",
	DecoratorSwizzleMemConv:        "SwizzleMemConv",
	DecoratorEvictionHint:          "EvictionHint",
}

func (k DecoratorKind) String() string {
	if int(k) < len(decoratorKindNames) {
		return decoratorKindNames[k]
	}

	return fmt.Sprintf("DecoratorKind(%d)", k)
}

// Output receives formatted text.
//
// Outputs that also implement TokenOutput
// receive the prefixes, mnemonics,
// registers, numbers and decorators
// through WriteToken instead, along with
// the details of what each token is.
type Output interface {
	Write(text string, kind TextKind)
}

// Token describes a piece of formatted
// text that has more meaning than its
// TextKind alone.
type Token struct {
	Text string
	Kind TextKind

	// Operand is the instruction operand
	// the token belongs to, or -1.
	Operand int

	// FormatterOperand is the formatter
	// operand the token belongs to, or -1.
	FormatterOperand int

	Prefix    PrefixKind    // Kind is TextPrefix.
	Decorator DecoratorKind // Kind is TextDecorator.
	Register  x86.Register  // Kind is TextRegister.
	Value     uint64        // Kind is TextNumber.
	Symbol    *Symbol       // The token is a resolved symbol.
}

// TokenOutput is an Output that receives
// labelled tokens.
type TokenOutput interface {
	Output
	WriteToken(inst *x86.Instruction, tok *Token)
}

// StringOutput is an Output that collects
// the text into a string.
type StringOutput struct {
	buf strings.Builder
}

var _ Output = (*StringOutput)(nil)

func (o *StringOutput) Write(text string, kind TextKind) {
	o.buf.WriteString(text)
}

// String returns the text written so far.
func (o *StringOutput) String() string { return o.buf.String() }

// Reset discards the text written so far.
func (o *StringOutput) Reset() { o.buf.Reset() }

// Len returns the number of bytes
// written so far.
func (o *StringOutput) Len() int { return o.buf.Len() }
