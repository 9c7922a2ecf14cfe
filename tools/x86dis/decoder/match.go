// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package decoder

import (
	"firefly-os.dev/tools/x86dis/x86"
)

// match returns whether an instruction
// form agrees with the prefixes, opcode
// and ModR/M byte.
func (s *state) match(c *candidate) bool {
	op := c.op
	d := s.d
	if (op.Not64 && s.mode64) || (op.Only64 && !s.mode64) {
		return false
	}

	if op.Requires&^d.features != 0 || op.Excludes&d.features != 0 {
		return false
	}

	if d.options&ForceReservedNop != 0 && s.enc == x86.EncodingLegacy && isReservedNopSlot(s.table, s.opcode) && !c.reservedNop {
		return false
	}

	// Mandatory prefixes.
	if s.enc == x86.EncodingLegacy {
		switch op.Mandatory {
		case x86.MandatoryPrefixAny:
		case x86.MandatoryPrefixNone:
			// 66 is allowed where it
			// selects the operand size.
			if s.rep != 0 || (s.has66 && op.OperandSize == 0) {
				return false
			}
		case x86.MandatoryPrefix66:
			if s.rep != 0 || !s.has66 {
				return false
			}
		case x86.MandatoryPrefixF3:
			if s.rep != byte(x86.PrefixRepeat) {
				return false
			}
		case x86.MandatoryPrefixF2:
			if s.rep != byte(x86.PrefixRepeatNot) {
				return false
			}
		}
	} else if op.Mandatory != s.pp {
		return false
	}

	if op.W >= 0 {
		w := s.w
		if op.WIG32 && !s.mode64 {
			w = false
		}

		if w != (op.W == 1) {
			return false
		}
	}

	if op.L >= 0 && s.enc != x86.EncodingLegacy {
		l := s.l
		if s.enc == x86.EncodingEVEX && s.bcst && s.hasModRM && s.modrm.IsRegister() {
			// EVEX.L'L holds the rounding
			// mode, and the vector size is
			// 512 bits.
			switch {
			case c.code.CanSuppressAllExceptions():
				l = 2
			case s.check():
				return false
			}
		}

		if l != op.L {
			return false
		}
	}

	if op.OperandSize != 0 && s.operandSize(op) != op.OperandSize {
		return false
	}

	if op.AddressSize != 0 && s.addrSize != op.AddressSize {
		return false
	}

	if op.ModRM {
		if !s.hasModRM {
			return false
		}

		switch op.ModRMmod {
		case x86.ModMemory:
			if s.modrm.IsRegister() {
				return false
			}
		case x86.ModRegister:
			if !s.modrm.IsRegister() {
				return false
			}
		}

		if op.ModRMreg >= 0 && int8(s.modrm.Reg()) != op.ModRMreg {
			return false
		}

		if op.ModRMrm >= 0 && int8(s.modrm.RM()) != op.ModRMrm {
			return false
		}
	}

	if op.NoREXB && s.extB {
		return false
	}

	return true
}

// operandSize returns the effective
// operand size in bits for an instruction
// form. A 66 prefix used as a mandatory
// prefix does not change the operand size.
func (s *state) operandSize(op *x86.OpCode) uint8 {
	has66 := s.has66 && !(s.enc == x86.EncodingLegacy && op.Mandatory == x86.MandatoryPrefix66)
	switch s.d.bitness {
	case 16:
		if has66 {
			return 32
		}

		return 16
	case 32:
		if has66 {
			return 16
		}

		return 32
	}

	switch {
	case op.Force64:
		// AMD CPUs honour 66 on near
		// branches in 64-bit mode.
		if s.d.options&AMD != 0 && has66 && !s.w {
			return 16
		}

		return 64
	case s.w:
		return 64
	case op.Default64:
		if has66 {
			return 16
		}

		return 64
	case has66:
		return 16
	}

	return 32
}
