// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package decoder

import (
	"slices"
	"strings"

	"firefly-os.dev/tools/x86dis/x86"
)

// candidate is an instruction form that
// may match an opcode byte.
type candidate struct {
	code        x86.Code
	op          *x86.OpCode
	score       int  // Number of constraints; higher scores are tried first.
	reservedNop bool // One of the reserved NOP forms in 0F 0D and 0F 18-1F.
	vvvv        bool // Has an operand encoded in vvvv.
	vsib        bool
}

// slot holds the instruction forms for an
// opcode byte, split by the prefix that
// selects them. The forms in each list are
// sorted with the most constrained first.
type slot struct {
	used  bool
	modrm bool // Some form reads a ModR/M byte.
	forms [numPrefixes][]candidate
}

// numPrefixes is the number of mandatory
// prefixes that select a list of forms:
// none, 66, F3 and F2.
const numPrefixes = 4

// prefixIndex returns the list in a slot
// for a mandatory prefix.
func prefixIndex(p x86.MandatoryPrefix) int {
	return int(p - x86.MandatoryPrefixNone)
}

// handlers maps an opcode byte in an
// opcode map to the instruction forms
// that use it.
type handlers [256]slot

// tables holds the handlers for each
// encoding and opcode map. Unused maps
// are nil.
var tables [x86.EncodingMVEX + 1][x86.NumOpCodeTables]*handlers

func init() {
	for i := 0; i < x86.NumCodes; i++ {
		code := x86.Code(i)
		if code == x86.Invalid || code.IsDeclareData() {
			continue
		}

		op := code.OpCode()
		c := candidate{
			code:        code,
			op:          op,
			score:       specificity(op),
			reservedNop: strings.HasPrefix(code.String(), "Reservednop_"),
			vsib:        op.VSIB,
		}

		// The reserved NOPs only match
		// when nothing else does.
		if c.reservedNop {
			c.score = 0
		}

		for n := 0; n < code.OpCount(); n++ {
			if code.OpCodeOperandKind(n).Encoding() == x86.EncodingVEXvvvv {
				c.vvvv = true
			}
		}

		t := tables[op.Encoding][op.Table]
		if t == nil {
			t = new(handlers)
			tables[op.Encoding][op.Table] = t
		}

		last := op.Opcode
		if op.RegisterModifier {
			last += 7
		}

		prefixes := selectingPrefixes(op)
		for b := int(op.Opcode); b <= int(last); b++ {
			sl := &t[b]
			sl.used = true
			sl.modrm = sl.modrm || op.ModRM
			for _, p := range prefixes {
				sl.forms[prefixIndex(p)] = append(sl.forms[prefixIndex(p)], c)
			}
		}
	}

	// Try the most constrained forms first.
	for _, maps := range tables {
		for _, t := range maps {
			if t == nil {
				continue
			}

			for b := range t {
				for _, list := range t[b].forms {
					slices.SortStableFunc(list, func(a, b candidate) int {
						return b.score - a.score
					})
				}
			}
		}
	}
}

// selectingPrefixes returns the mandatory
// prefixes under which an instruction form
// can match.
func selectingPrefixes(op *x86.OpCode) []x86.MandatoryPrefix {
	switch {
	case op.Mandatory == x86.MandatoryPrefixAny:
		return []x86.MandatoryPrefix{x86.MandatoryPrefixNone, x86.MandatoryPrefix66, x86.MandatoryPrefixF3, x86.MandatoryPrefixF2}
	case op.Encoding == x86.EncodingLegacy && op.Mandatory == x86.MandatoryPrefixNone && op.OperandSize != 0:
		// 66 selects the operand size.
		return []x86.MandatoryPrefix{x86.MandatoryPrefixNone, x86.MandatoryPrefix66}
	}

	return []x86.MandatoryPrefix{op.Mandatory}
}

// specificity counts the constraints an
// instruction form places on the bytes
// around its opcode.
func specificity(op *x86.OpCode) int {
	n := 0
	count := func(ok bool) {
		if ok {
			n++
		}
	}

	count(op.Mandatory != x86.MandatoryPrefixAny)
	count(op.ModRMmod != x86.ModAny)
	count(op.ModRMreg >= 0)
	count(op.ModRMrm >= 0)
	count(op.W >= 0)
	count(op.L >= 0)
	count(op.OperandSize != 0)
	count(op.AddressSize != 0)
	count(op.Not64 || op.Only64)
	count(op.Requires|op.Excludes != 0)

	// Forms enabled by a decoder option
	// replace the default forms.
	count(op.Requires != 0)

	// NOREXB forms are the NOP aliases of
	// register forms, so they must beat
	// the REX.W register form.
	if op.NoREXB {
		n += 2
	}

	return n
}

// lookup returns the instruction forms
// for an opcode byte, or nil if there are
// none.
func lookup(enc x86.EncodingKind, table x86.OpCodeTable, opcode byte) *slot {
	if int(enc) >= len(tables) || int(table) >= x86.NumOpCodeTables {
		return nil
	}

	t := tables[enc][table]
	if t == nil || !t[opcode].used {
		return nil
	}

	return &t[opcode]
}

// isReservedNopSlot returns whether an
// opcode is one of the reserved NOPs in
// the two-byte map.
func isReservedNopSlot(table x86.OpCodeTable, opcode byte) bool {
	return table == x86.Table0F && (opcode == 0x0d || (opcode >= 0x18 && opcode <= 0x1f))
}
