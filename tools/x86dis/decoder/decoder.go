// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

// Package decoder decodes x86 machine code in 16-bit,
// 32-bit and 64-bit mode, producing x86.Instruction
// values.
//
// Decoding never fails. Bytes that do not form a valid
// instruction produce an instruction with the Code
// x86.Invalid, whose length covers the bytes that were
// consumed, so the caller can skip over them.
package decoder

import (
	"fmt"
	"iter"

	"firefly-os.dev/tools/x86dis/x86"
)

// Decoder decodes a sequence of x86
// instructions from a byte slice.
//
// A Decoder is not safe for concurrent
// use. Separate Decoders can share the
// same input.
type Decoder struct {
	bitness  int
	data     []byte
	pos      int
	ip       uint64
	options  Options
	features x86.Feature
	lastErr  DecoderError
}

// New returns a decoder for the given
// CPU mode, which must be 16, 32 or 64.
func New(bitness int, data []byte, options Options) (*Decoder, error) {
	switch bitness {
	case 16, 32, 64:
	default:
		return nil, fmt.Errorf("decoder: unsupported bitness %d", bitness)
	}

	d := &Decoder{
		bitness:  bitness,
		data:     data,
		options:  options,
		features: options.features(),
	}

	return d, nil
}

// Bitness returns the CPU mode used
// for decoding.
func (d *Decoder) Bitness() int { return d.bitness }

// Options returns the decoder options.
func (d *Decoder) Options() Options { return d.options }

// IP returns the instruction pointer
// of the next instruction.
func (d *Decoder) IP() uint64 { return d.ip }

// SetIP sets the instruction pointer
// of the next instruction.
func (d *Decoder) SetIP(ip uint64) { d.ip = ip }

// Position returns the offset of the
// next instruction in the input.
func (d *Decoder) Position() int { return d.pos }

// SetPosition sets the offset of the
// next instruction in the input. The
// instruction pointer is unchanged.
func (d *Decoder) SetPosition(pos int) error {
	if pos < 0 || pos > len(d.data) {
		return fmt.Errorf("decoder: position %d is outside the input (%d bytes)", pos, len(d.data))
	}

	d.pos = pos
	return nil
}

// CanDecode returns whether any input
// remains to be decoded.
func (d *Decoder) CanDecode() bool { return d.pos < len(d.data) }

// LastError returns the outcome of the
// most recent decode.
func (d *Decoder) LastError() DecoderError { return d.lastErr }

// Decode decodes the next instruction.
func (d *Decoder) Decode() x86.Instruction {
	var inst x86.Instruction
	d.DecodeOut(&inst)
	return inst
}

// DecodeOut decodes the next instruction
// into inst, overwriting its contents.
func (d *Decoder) DecodeOut(inst *x86.Instruction) {
	*inst = x86.Instruction{}
	s := state{
		d:    d,
		r:    newReader(d.data, d.pos),
		inst: inst,
	}

	ok := s.decode()
	switch {
	case s.r.truncated():
		ok = false
		d.lastErr = ErrorNoMoreBytes
	case s.r.overflow || !ok:
		ok = false
		d.lastErr = ErrorInvalidInstruction
	default:
		d.lastErr = ErrorNone
	}

	if !ok {
		*inst = x86.Instruction{}
	}

	n := s.r.length()
	inst.SetCodeSize(x86.CodeSizeForBitness(d.bitness))
	inst.SetLen(n)
	inst.SetIP(d.ip)
	inst.SetNextIP(d.ip + uint64(n))
	if ok {
		s.finish()
	}

	d.pos += n
	d.ip += uint64(n)
}

// Instructions returns an iterator over
// the remaining instructions in the input.
func (d *Decoder) Instructions() iter.Seq[x86.Instruction] {
	return func(yield func(x86.Instruction) bool) {
		for d.CanDecode() {
			if !yield(d.Decode()) {
				return
			}
		}
	}
}

// state holds the details of a single
// instruction while it is decoded.
type state struct {
	d    *Decoder
	r    reader
	inst *x86.Instruction

	// Legacy prefixes.
	has66   bool
	has67   bool
	lock    bool
	rep     byte // The last F2 or F3 prefix, or zero.
	segment x86.Register
	lastSeg byte // The last segment prefix, or zero.
	rex     x86.REX
	hasREX  bool

	// The encoding and the fields of any
	// REX, VEX, EVEX, XOP or MVEX prefix.
	// Inverted fields are stored the right
	// way up.
	enc    x86.EncodingKind
	table  x86.OpCodeTable
	opcode byte
	pp     x86.MandatoryPrefix
	w      bool
	l      int8
	extR   bool
	extX   bool
	extB   bool
	extR2  bool // EVEX.R'
	extV2  bool // EVEX.V'
	vvvv   byte // The low four bits of vvvv.
	aaa    byte
	z      bool
	bcst   bool // EVEX.b
	eh     bool
	sss    byte
	mode64 bool

	modrm    x86.ModRM
	hasModRM bool // The ModR/M byte has been peeked.

	addrSize uint8

	// Values completed once the
	// instruction's length is known.
	ripRel     bool
	disp       int64
	hasBranch  bool
	branch     int64
	branchKind x86.OpKind

	is4    byte
	hasIs4 bool
	imms   int

	invalid bool
}

func b2i(b bool) int {
	if b {
		return 1
	}

	return 0
}

// decode reads the instruction's bytes
// and fills in the instruction. It returns
// false if the bytes are not a valid
// instruction.
func (s *state) decode() bool {
	d := s.d
	r := &s.r
	s.mode64 = d.bitness == 64

	// Start with the legacy prefixes. A REX
	// prefix only counts if it comes last.
	var b byte
prefixes:
	for {
		b = r.u8()
		if r.overflow {
			return false
		}

		switch x86.Prefix(b) {
		case x86.PrefixOperandSize:
			s.has66 = true
		case x86.PrefixAddressSize:
			s.has67 = true
		case x86.PrefixLock:
			s.lock = true
		case x86.PrefixRepeat, x86.PrefixRepeatNot:
			s.rep = b
		case x86.PrefixES, x86.PrefixCS, x86.PrefixSS, x86.PrefixDS, x86.PrefixFS, x86.PrefixGS:
			s.setSegment(b)
		default:
			if s.mode64 && x86.IsREX(b) {
				s.rex, s.hasREX = x86.REX(b), true
				continue
			}

			break prefixes
		}

		s.rex, s.hasREX = 0, false
	}

	s.enc = x86.EncodingLegacy
	s.table = x86.TableLegacy
	if s.hasREX {
		s.w = s.rex.W()
		s.extR = s.rex.R()
		s.extX = s.rex.X()
		s.extB = s.rex.B()
	}

	// Then the opcode map.
	switch b {
	case 0x0f:
		b = r.u8()
		switch b {
		case 0x38:
			s.table = x86.Table0F38
			b = r.u8()
		case 0x3a:
			s.table = x86.Table0F3A
			b = r.u8()
		case 0x0f:
			// 3DNow! is not supported.
			return false
		default:
			s.table = x86.Table0F
		}
	case 0xc4, 0xc5:
		if s.richPrefix(b) {
			s.readVEX(b)
			b = r.u8()
		}
	case 0x62:
		if s.richPrefix(b) {
			s.readEVEX()
			b = r.u8()
		}
	case 0x8f:
		if s.richPrefix(b) {
			s.readXOP()
			b = r.u8()
		}
	}

	s.opcode = b
	if s.invalid || r.overflow {
		return false
	}

	switch d.bitness {
	case 16:
		s.addrSize = 16
		if s.has67 {
			s.addrSize = 32
		}
	case 32:
		s.addrSize = 32
		if s.has67 {
			s.addrSize = 16
		}
	case 64:
		s.addrSize = 64
		if s.has67 {
			s.addrSize = 32
		}
	}

	// Find the instruction form.
	sl := lookup(s.enc, s.table, s.opcode)
	if sl == nil {
		return false
	}

	needModRM := sl.modrm
	candidates := sl.forms[prefixIndex(s.prefix())]
	if needModRM {
		if m, ok := r.peek(); ok {
			s.modrm, s.hasModRM = x86.ModRM(m), true
		}
	}

	var c *candidate
	for i := range candidates {
		if s.match(&candidates[i]) {
			c = &candidates[i]
			break
		}
	}

	if c == nil {
		if needModRM {
			// Consume the ModR/M byte, or
			// latch the truncation.
			r.u8()
		}

		return false
	}

	if c.op.ModRM {
		r.u8()
	}

	s.inst.SetCode(c.code)
	if !s.operands(c) || r.overflow {
		return false
	}

	return s.validate(c)
}

// prefix returns the mandatory prefix
// that selects the instruction forms. In
// legacy encodings, the last of F2 and F3
// beats 66.
func (s *state) prefix() x86.MandatoryPrefix {
	if s.enc != x86.EncodingLegacy {
		return s.pp
	}

	switch s.rep {
	case byte(x86.PrefixRepeat):
		return x86.MandatoryPrefixF3
	case byte(x86.PrefixRepeatNot):
		return x86.MandatoryPrefixF2
	}

	if s.has66 {
		return x86.MandatoryPrefix66
	}

	return x86.MandatoryPrefixNone
}

// setSegment records a segment override
// prefix. In 64-bit mode, ES, CS, SS and
// DS are ignored after FS or GS.
func (s *state) setSegment(b byte) {
	s.lastSeg = b
	seg := x86.Prefix(b).Segment()
	if s.mode64 && (s.segment == x86.FS || s.segment == x86.GS) && seg != x86.FS && seg != x86.GS {
		return
	}

	s.segment = seg
}

// richPrefix returns whether b starts a
// VEX, EVEX or XOP prefix, rather than
// being the legacy opcode it aliases.
func (s *state) richPrefix(b byte) bool {
	if s.d.bitness == 16 {
		return false
	}

	next, ok := s.r.peek()
	if !ok {
		return s.mode64
	}

	if b == 0x8f && next&0b1_1111 < 8 {
		// POP r/m.
		return false
	}

	// Outside 64-bit mode, LES, LDS, BOUND
	// and POP need a memory operand, so the
	// register form selects the prefix.
	return s.mode64 || x86.ModRM(next).IsRegister()
}

// checkRichPrefix marks the instruction as
// invalid if it has prefixes that cannot
// precede a VEX, EVEX, XOP or MVEX prefix.
func (s *state) checkRichPrefix() {
	if s.hasREX || s.has66 || s.rep != 0 || s.lock {
		s.invalid = true
	}
}

// setVectorFields stores the fields common
// to the VEX and XOP prefixes.
func (s *state) setVectorFields(r, x, b, w bool, vvvv byte, l bool, pp byte) {
	s.extR, s.extX, s.extB = r, x, b
	s.w = w
	s.vvvv = vvvv
	s.l = int8(b2i(l))
	s.pp = x86.MandatoryPrefixForPP(pp)
	if !s.mode64 {
		s.extR, s.extX, s.extB = false, false, false
		s.vvvv &= 0b111
	}
}

func (s *state) readVEX(b byte) {
	s.checkRichPrefix()
	var v x86.VEX
	if b == 0xc5 {
		v = x86.VEX2(s.r.u8())
	} else {
		p0 := s.r.u8()
		p1 := s.r.u8()
		v = x86.VEX3(p0, p1)
	}

	s.enc = x86.EncodingVEX
	switch v.M_MMMM() {
	case 1:
		s.table = x86.Table0F
	case 2:
		s.table = x86.Table0F38
	case 3:
		s.table = x86.Table0F3A
	default:
		s.invalid = true
	}

	s.setVectorFields(!v.R(), !v.X(), !v.B(), v.W(), v.VVVV()^0b1111, v.L(), v.PP())
}

func (s *state) readXOP() {
	s.checkRichPrefix()
	p0 := s.r.u8()
	p1 := s.r.u8()
	x := x86.XOP{p0, p1}

	s.enc = x86.EncodingXOP
	switch x.MapSelect() {
	case 8:
		s.table = x86.TableXOP8
	case 9:
		s.table = x86.TableXOP9
	case 10:
		s.table = x86.TableXOPA
	default:
		s.invalid = true
	}

	s.setVectorFields(!x.R(), !x.X(), !x.B(), x.W(), x.VVVV()^0b1111, x.L(), x.PP())
}

func (s *state) readEVEX() {
	s.checkRichPrefix()
	var p x86.EVEX
	p[0] = s.r.u8()
	p[1] = s.r.u8()
	p[2] = s.r.u8()

	// MVEX clears the bit that is always
	// set in EVEX.
	if !p.On() {
		s.readMVEX(x86.MVEX(p))
		return
	}

	s.enc = x86.EncodingEVEX
	switch p.MMM() {
	case 1:
		s.table = x86.Table0F
	case 2:
		s.table = x86.Table0F38
	case 3:
		s.table = x86.Table0F3A
	case 5:
		s.table = x86.TableMap5
	case 6:
		s.table = x86.TableMap6
	default:
		s.invalid = true
	}

	if p.Reserved() {
		s.invalid = true
	}

	s.extR, s.extX, s.extB, s.extR2 = !p.R(), !p.X(), !p.B(), !p.Rp()
	s.extV2 = !p.Vp()
	s.w = p.W()
	s.vvvv = p.VVVV() ^ 0b1111
	s.pp = x86.MandatoryPrefixForPP(p.PP())
	s.z = p.Z()
	s.l = int8(p.LL())
	s.bcst = p.Br()
	s.aaa = p.AAA()
	if !s.mode64 {
		if s.extV2 {
			s.invalid = true
		}

		s.extR, s.extX, s.extB, s.extR2 = false, false, false, false
		s.vvvv &= 0b111
	}
}

func (s *state) readMVEX(p x86.MVEX) {
	s.enc = x86.EncodingMVEX
	if !s.mode64 || s.d.features&x86.FeatureKNC == 0 {
		s.invalid = true
	}

	switch p.MMMM() {
	case 1:
		s.table = x86.Table0F
	case 2:
		s.table = x86.Table0F38
	case 3:
		s.table = x86.Table0F3A
	default:
		s.invalid = true
	}

	s.extR, s.extX, s.extB, s.extR2 = !p.R(), !p.X(), !p.B(), !p.Rp()
	s.extV2 = !p.Vp()
	s.w = p.W()
	s.vvvv = p.VVVV() ^ 0b1111
	s.pp = x86.MandatoryPrefixForPP(p.PP())
	s.eh = p.EH()
	s.sss = p.SSS()
	s.aaa = p.KKK()
}

// finish completes the values that depend
// on the address of the next instruction.
func (s *state) finish() {
	inst := s.inst
	next := inst.NextIP()
	if s.hasBranch {
		target := next + uint64(s.branch)
		switch s.branchKind {
		case x86.OpKindNearBranch16:
			inst.SetNearBranch16(uint16(target))
		case x86.OpKindNearBranch32:
			inst.SetNearBranch32(uint32(target))
		case x86.OpKindNearBranch64:
			inst.SetNearBranch64(target)
		}
	}

	if s.ripRel {
		target := next + uint64(s.disp)
		if inst.MemoryBase() == x86.EIP {
			target = uint64(uint32(target))
		}

		inst.SetMemoryDisplacement64(target)
	}
}
