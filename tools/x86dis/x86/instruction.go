// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import (
	"fmt"
	"strings"
)

// MaxInstructionLength is the maximum length
// of an x86 instruction in bytes.
const MaxInstructionLength = 15

// MaxOperands is the maximum number of
// operands in an instruction.
const MaxOperands = 5

// Instruction is a decoded or synthesised
// x86 instruction.
//
// Instruction is a plain value with no
// references to other memory, so it can be
// copied freely. The zero Instruction has
// the Code Invalid.
//
// The immediate storage is shared between
// operands. An instruction has at most two
// immediates, so the first immediate, any
// near branch target, and any far branch
// offset are stored in one field, while the
// second 8-bit immediate and any far branch
// selector share another.
type Instruction struct {
	ip      uint64
	nextIP  uint64
	displ   uint64 // Memory displacement.
	imm     uint64 // Immediate, near branch target, or far branch offset.
	sel     uint16 // Second 8-bit immediate, or far branch selector.
	code    Code
	flags   instructionFlags
	opKinds [MaxOperands - 1]OpKind
	regs    [MaxOperands - 1]Register

	base      Register
	index     Register
	segment   Register // Segment override prefix.
	opMask    Register
	scale     uint8
	displSize uint8
	length    uint8
	codeSize  CodeSize
	rounding  RoundingControl
	mvexConv  MvexRegMemConv

	dataLen uint8
	data    [16]byte // The payload of db, dw, dd and dq.
}

// instructionFlags records prefixes and
// decorators.
type instructionFlags uint16

const (
	iflagLock instructionFlags = 1 << iota
	iflagRepe
	iflagRepne
	iflagBnd
	iflagNotrack
	iflagZeroing
	iflagBroadcast
	iflagSAE
	iflagEvictionHint
)

// AccessorError is returned when an
// Instruction accessor is given an invalid
// operand index or value.
type AccessorError struct {
	Accessor string // The method, such as "SetOpKind".
	Index    int    // The operand or element index, or -1.
	Reason   string
}

func (e *AccessorError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("x86: %s: %s", e.Accessor, e.Reason)
	}

	return fmt.Sprintf("x86: %s(%d): %s", e.Accessor, e.Index, e.Reason)
}

func accessorError(accessor string, index int, format string, v ...any) error {
	return &AccessorError{Accessor: accessor, Index: index, Reason: fmt.Sprintf(format, v...)}
}

// Identity.

func (i *Instruction) Code() Code                   { return i.code }
func (i *Instruction) SetCode(c Code)               { i.code = c }
func (i *Instruction) CodeSize() CodeSize           { return i.codeSize }
func (i *Instruction) SetCodeSize(s CodeSize)       { i.codeSize = s }
func (i *Instruction) Mnemonic() string             { return i.code.Mnemonic() }
func (i *Instruction) IsInvalid() bool              { return i.code == Invalid }
func (i *Instruction) Encoding() EncodingKind       { return i.code.Encoding() }
func (i *Instruction) ConditionCode() ConditionCode { return i.code.ConditionCode() }

// Len returns the instruction's length
// in bytes, or zero if it was not decoded.
func (i *Instruction) Len() int { return int(i.length) }

// SetLen sets the instruction's length,
// clamped to the range 0 to 15.
func (i *Instruction) SetLen(n int) {
	switch {
	case n < 0:
		n = 0
	case n > MaxInstructionLength:
		n = MaxInstructionLength
	}

	i.length = uint8(n)
}

// Addresses.

func (i *Instruction) IP() uint64          { return i.ip }
func (i *Instruction) IP16() uint16        { return uint16(i.ip) }
func (i *Instruction) IP32() uint32        { return uint32(i.ip) }
func (i *Instruction) SetIP(ip uint64)     { i.ip = ip }
func (i *Instruction) NextIP() uint64      { return i.nextIP }
func (i *Instruction) NextIP16() uint16    { return uint16(i.nextIP) }
func (i *Instruction) NextIP32() uint32    { return uint32(i.nextIP) }
func (i *Instruction) SetNextIP(ip uint64) { i.nextIP = ip }

// SetIP16 replaces the low 16 bits of the
// instruction pointer, leaving the upper
// bits unchanged.
func (i *Instruction) SetIP16(ip uint16) { i.ip = i.ip&^0xffff | uint64(ip) }

// SetIP32 replaces the low 32 bits of the
// instruction pointer, leaving the upper
// bits unchanged.
func (i *Instruction) SetIP32(ip uint32) { i.ip = i.ip&^0xffff_ffff | uint64(ip) }

// SetNextIP16 replaces the low 16 bits of
// the next instruction pointer.
func (i *Instruction) SetNextIP16(ip uint16) { i.nextIP = i.nextIP&^0xffff | uint64(ip) }

// SetNextIP32 replaces the low 32 bits of
// the next instruction pointer.
func (i *Instruction) SetNextIP32(ip uint32) { i.nextIP = i.nextIP&^0xffff_ffff | uint64(ip) }

// Operands.

// OpCount returns the number of operands.
// Data directives have no operands.
func (i *Instruction) OpCount() int { return i.code.OpCount() }

// OpKind returns the kind of the n'th
// operand. The fifth operand is always an
// 8-bit immediate if present. OpKind
// panics if n is out of range.
func (i *Instruction) OpKind(n int) OpKind {
	k, err := i.TryOpKind(n)
	if err != nil {
		panic(err.Error())
	}

	return k
}

// TryOpKind returns the kind of the n'th
// operand, or an error if n is out of
// range.
func (i *Instruction) TryOpKind(n int) (OpKind, error) {
	switch {
	case n >= 0 && n < len(i.opKinds):
		return i.opKinds[n], nil
	case n == len(i.opKinds):
		return OpKindImmediate8, nil
	}

	return 0, accessorError("OpKind", n, "operand index out of range")
}

// SetOpKind sets the kind of the n'th
// operand. The fifth operand can only be
// an 8-bit immediate.
func (i *Instruction) SetOpKind(n int, k OpKind) error {
	switch {
	case n >= 0 && n < len(i.opKinds):
		if k >= numOpKinds {
			return accessorError("SetOpKind", n, "invalid operand kind %s", k)
		}

		i.opKinds[n] = k
		return nil
	case n == len(i.opKinds):
		if k != OpKindImmediate8 {
			return accessorError("SetOpKind", n, "operand kind %s is not Immediate8", k)
		}

		return nil
	}

	return accessorError("SetOpKind", n, "operand index out of range")
}

// HasOpKind returns whether any operand
// has the given kind.
func (i *Instruction) HasOpKind(k OpKind) bool {
	for n := 0; n < i.OpCount(); n++ {
		if i.OpKind(n) == k {
			return true
		}
	}

	return false
}

// OpRegister returns the register in the
// n'th operand, or RegisterNone. OpRegister
// panics if n is out of range.
func (i *Instruction) OpRegister(n int) Register {
	r, err := i.TryOpRegister(n)
	if err != nil {
		panic(err.Error())
	}

	return r
}

// TryOpRegister returns the register in
// the n'th operand, or an error if n is
// out of range.
func (i *Instruction) TryOpRegister(n int) (Register, error) {
	switch {
	case n >= 0 && n < len(i.regs):
		return i.regs[n], nil
	case n == len(i.regs):
		return RegisterNone, nil
	}

	return RegisterNone, accessorError("OpRegister", n, "operand index out of range")
}

// SetOpRegister sets the register in the
// n'th operand. The fifth operand cannot
// be a register.
func (i *Instruction) SetOpRegister(n int, r Register) error {
	switch {
	case n >= 0 && n < len(i.regs):
		if int(r) >= NumRegisters {
			return accessorError("SetOpRegister", n, "invalid register %s", r)
		}

		i.regs[n] = r
		return nil
	case n == len(i.regs):
		if r != RegisterNone {
			return accessorError("SetOpRegister", n, "register %s in operand that must be an immediate", r)
		}

		return nil
	}

	return accessorError("SetOpRegister", n, "operand index out of range")
}

// Immediates.

func (i *Instruction) Immediate8() uint8         { return uint8(i.imm) }
func (i *Instruction) Immediate8_2nd() uint8     { return uint8(i.sel) }
func (i *Instruction) Immediate16() uint16       { return uint16(i.imm) }
func (i *Instruction) Immediate32() uint32       { return uint32(i.imm) }
func (i *Instruction) Immediate64() uint64       { return i.imm }
func (i *Instruction) Immediate8to16() int16     { return int16(int8(i.imm)) }
func (i *Instruction) Immediate8to32() int32     { return int32(int8(i.imm)) }
func (i *Instruction) Immediate8to64() int64     { return int64(int8(i.imm)) }
func (i *Instruction) Immediate32to64() int64    { return int64(int32(i.imm)) }
func (i *Instruction) SetImmediate8(v uint8)     { i.imm = uint64(v) }
func (i *Instruction) SetImmediate8_2nd(v uint8) { i.sel = uint16(v) }
func (i *Instruction) SetImmediate16(v uint16)   { i.imm = uint64(v) }
func (i *Instruction) SetImmediate32(v uint32)   { i.imm = uint64(v) }
func (i *Instruction) SetImmediate64(v uint64)   { i.imm = v }

// SetImmediate8to16 stores an 8-bit value
// that is sign-extended when read.
func (i *Instruction) SetImmediate8to16(v int16)  { i.imm = uint64(uint8(v)) }
func (i *Instruction) SetImmediate8to32(v int32)  { i.imm = uint64(uint8(v)) }
func (i *Instruction) SetImmediate8to64(v int64)  { i.imm = uint64(uint8(v)) }
func (i *Instruction) SetImmediate32to64(v int64) { i.imm = uint64(uint32(v)) }

// Immediate returns the value of the n'th
// operand, which must be an immediate.
// Sign-extended immediates are returned
// sign-extended to 64 bits.
func (i *Instruction) Immediate(n int) (uint64, error) {
	k, err := i.TryOpKind(n)
	if err != nil {
		return 0, err
	}

	switch k {
	case OpKindImmediate8:
		return uint64(i.Immediate8()), nil
	case OpKindImmediate8_2nd:
		return uint64(i.Immediate8_2nd()), nil
	case OpKindImmediate16:
		return uint64(i.Immediate16()), nil
	case OpKindImmediate32:
		return uint64(i.Immediate32()), nil
	case OpKindImmediate64:
		return i.Immediate64(), nil
	case OpKindImmediate8to16:
		return uint64(i.Immediate8to16()), nil
	case OpKindImmediate8to32:
		return uint64(i.Immediate8to32()), nil
	case OpKindImmediate8to64:
		return uint64(i.Immediate8to64()), nil
	case OpKindImmediate32to64:
		return uint64(i.Immediate32to64()), nil
	}

	return 0, accessorError("Immediate", n, "operand kind %s is not an immediate", k)
}

// SetImmediate stores the value of the
// n'th operand, truncated to the size of
// the operand's kind, which must be an
// immediate.
func (i *Instruction) SetImmediate(n int, v uint64) error {
	k, err := i.TryOpKind(n)
	if err != nil {
		return err
	}

	switch k {
	case OpKindImmediate8, OpKindImmediate8to16, OpKindImmediate8to32, OpKindImmediate8to64:
		i.imm = uint64(uint8(v))
	case OpKindImmediate8_2nd:
		i.sel = uint16(uint8(v))
	case OpKindImmediate16:
		i.imm = uint64(uint16(v))
	case OpKindImmediate32, OpKindImmediate32to64:
		i.imm = uint64(uint32(v))
	case OpKindImmediate64:
		i.imm = v
	default:
		return accessorError("SetImmediate", n, "operand kind %s is not an immediate", k)
	}

	return nil
}

// Branches.

func (i *Instruction) NearBranch16() uint16      { return uint16(i.imm) }
func (i *Instruction) NearBranch32() uint32      { return uint32(i.imm) }
func (i *Instruction) NearBranch64() uint64      { return i.imm }
func (i *Instruction) SetNearBranch16(v uint16)  { i.imm = uint64(v) }
func (i *Instruction) SetNearBranch32(v uint32)  { i.imm = uint64(v) }
func (i *Instruction) SetNearBranch64(v uint64)  { i.imm = v }
func (i *Instruction) FarBranch16() uint16       { return uint16(i.imm) }
func (i *Instruction) FarBranch32() uint32       { return uint32(i.imm) }
func (i *Instruction) FarBranchSelector() uint16 { return i.sel }
func (i *Instruction) SetFarBranch16(v uint16)   { i.imm = uint64(v) }
func (i *Instruction) SetFarBranch32(v uint32)   { i.imm = uint64(v) }
func (i *Instruction) SetFarBranchSelector(v uint16) {
	i.sel = v
}

// NearBranchTarget returns the target of
// the first near branch operand, or zero.
func (i *Instruction) NearBranchTarget() uint64 {
	for n := 0; n < i.OpCount() && n < len(i.opKinds); n++ {
		switch i.opKinds[n] {
		case OpKindNearBranch16:
			return uint64(i.NearBranch16())
		case OpKindNearBranch32:
			return uint64(i.NearBranch32())
		case OpKindNearBranch64:
			return i.NearBranch64()
		}
	}

	return 0
}

// Memory operands.

func (i *Instruction) MemoryBase() Register             { return i.base }
func (i *Instruction) SetMemoryBase(r Register)         { i.base = r }
func (i *Instruction) MemoryIndex() Register            { return i.index }
func (i *Instruction) SetMemoryIndex(r Register)        { i.index = r }
func (i *Instruction) MemoryIndexScale() int            { return 1 << i.scale }
func (i *Instruction) MemoryDisplSize() int             { return int(i.displSize) }
func (i *Instruction) MemoryDisplacement32() uint32     { return uint32(i.displ) }
func (i *Instruction) MemoryDisplacement64() uint64     { return i.displ }
func (i *Instruction) SetMemoryDisplacement32(v uint32) { i.displ = uint64(v) }
func (i *Instruction) SetMemoryDisplacement64(v uint64) { i.displ = v }
func (i *Instruction) SegmentPrefix() Register          { return i.segment }
func (i *Instruction) HasSegmentPrefix() bool           { return i.segment != RegisterNone }

// SetSegmentPrefix sets the segment
// override prefix, or clears it if r is
// RegisterNone.
func (i *Instruction) SetSegmentPrefix(r Register) error {
	if r != RegisterNone && !r.IsSegment() {
		return accessorError("SetSegmentPrefix", -1, "%s is not a segment register", r)
	}

	i.segment = r
	return nil
}

// SetMemoryIndexScale sets the scale applied
// to the index register, which must be 1,
// 2, 4 or 8.
func (i *Instruction) SetMemoryIndexScale(scale int) error {
	switch scale {
	case 1:
		i.scale = 0
	case 2:
		i.scale = 1
	case 4:
		i.scale = 2
	case 8:
		i.scale = 3
	default:
		return accessorError("SetMemoryIndexScale", -1, "invalid scale %d", scale)
	}

	return nil
}

// SetMemoryDisplSize sets the size of the
// encoded displacement, which must be 0, 1,
// 2, 4 or 8 bytes.
func (i *Instruction) SetMemoryDisplSize(size int) error {
	switch size {
	case 0, 1, 2, 4, 8:
		i.displSize = uint8(size)
		return nil
	}

	return accessorError("SetMemoryDisplSize", -1, "invalid displacement size %d", size)
}

// IsIPRelativeMemoryOperand returns whether
// the memory operand is relative to the
// instruction pointer.
func (i *Instruction) IsIPRelativeMemoryOperand() bool {
	return i.base.IsIP()
}

// IPRelativeMemoryAddress returns the
// address referenced by an IP-relative
// memory operand. The decoder stores the
// absolute address in the displacement.
func (i *Instruction) IPRelativeMemoryAddress() uint64 {
	if i.base == EIP {
		return uint64(uint32(i.displ))
	}

	return i.displ
}

// MemorySegment returns the segment used by
// the memory operand: the segment override
// if any, otherwise the default segment for
// the operand.
func (i *Instruction) MemorySegment() Register {
	for n := 0; n < i.OpCount() && n < len(i.opKinds); n++ {
		switch i.opKinds[n] {
		case OpKindMemoryESDI, OpKindMemoryESEDI, OpKindMemoryESRDI:
			return ES
		}
	}

	if i.segment != RegisterNone {
		return i.segment
	}

	switch i.base {
	case BP, EBP, RBP, SP, ESP, RSP:
		return SS
	}

	return DS
}

// MemorySize returns the size of the memory
// operand, taking broadcasting into account.
func (i *Instruction) MemorySize() MemorySize {
	if i.IsBroadcast() {
		if m := i.code.BroadcastMemorySize(); m != MemorySizeUnknown {
			return m
		}
	}

	return i.code.MemorySize()
}

// IsStringInstruction returns whether the
// instruction is a string instruction,
// such as MOVSB.
func (i *Instruction) IsStringInstruction() bool { return i.code.IsString() }

// Prefixes.

func (i *Instruction) has(f instructionFlags) bool { return i.flags&f != 0 }

func (i *Instruction) set(f instructionFlags, on bool) {
	if on {
		i.flags |= f
	} else {
		i.flags &^= f
	}
}

func (i *Instruction) HasLockPrefix() bool      { return i.has(iflagLock) }
func (i *Instruction) SetLockPrefix(on bool)    { i.set(iflagLock, on) }
func (i *Instruction) HasRepPrefix() bool       { return i.has(iflagRepe) }
func (i *Instruction) SetRepPrefix(on bool)     { i.set(iflagRepe, on) }
func (i *Instruction) HasRepePrefix() bool      { return i.has(iflagRepe) }
func (i *Instruction) SetRepePrefix(on bool)    { i.set(iflagRepe, on) }
func (i *Instruction) HasRepnePrefix() bool     { return i.has(iflagRepne) }
func (i *Instruction) SetRepnePrefix(on bool)   { i.set(iflagRepne, on) }
func (i *Instruction) HasBndPrefix() bool       { return i.has(iflagBnd) }
func (i *Instruction) SetBndPrefix(on bool)     { i.set(iflagBnd, on) }
func (i *Instruction) HasNotrackPrefix() bool   { return i.has(iflagNotrack) }
func (i *Instruction) SetNotrackPrefix(on bool) { i.set(iflagNotrack, on) }

// HasXacquirePrefix returns whether a REPNE
// prefix acts as XACQUIRE.
func (i *Instruction) HasXacquirePrefix() bool {
	return i.has(iflagRepne) && i.has(iflagLock) && i.code.CanXacquire()
}

// SetXacquirePrefix sets the REPNE prefix
// used to encode XACQUIRE.
func (i *Instruction) SetXacquirePrefix(on bool) { i.set(iflagRepne, on) }

// HasXreleasePrefix returns whether a REP
// prefix acts as XRELEASE.
func (i *Instruction) HasXreleasePrefix() bool {
	if !i.has(iflagRepe) {
		return false
	}

	if i.has(iflagLock) {
		return i.code.CanXrelease()
	}

	return i.code.CanXreleaseWithoutLock()
}

// SetXreleasePrefix sets the REP prefix
// used to encode XRELEASE.
func (i *Instruction) SetXreleasePrefix(on bool) { i.set(iflagRepe, on) }

// Decorators.

func (i *Instruction) OpMask() Register                 { return i.opMask }
func (i *Instruction) HasOpMask() bool                  { return i.opMask != RegisterNone }
func (i *Instruction) ZeroingMasking() bool             { return i.has(iflagZeroing) }
func (i *Instruction) SetZeroingMasking(on bool)        { i.set(iflagZeroing, on) }
func (i *Instruction) MergingMasking() bool             { return !i.has(iflagZeroing) }
func (i *Instruction) IsBroadcast() bool                { return i.has(iflagBroadcast) }
func (i *Instruction) SetBroadcast(on bool)             { i.set(iflagBroadcast, on) }
func (i *Instruction) SuppressAllExceptions() bool      { return i.has(iflagSAE) }
func (i *Instruction) SetSuppressAllExceptions(on bool) { i.set(iflagSAE, on) }
func (i *Instruction) RoundingControl() RoundingControl { return i.rounding }
func (i *Instruction) SetRoundingControl(rc RoundingControl) {
	i.rounding = rc
}

// SetOpMask sets the op mask register. K0
// and RegisterNone both mean no op mask.
func (i *Instruction) SetOpMask(r Register) error {
	switch {
	case r == RegisterNone, r == K0:
		i.opMask = RegisterNone
	case r.IsK():
		i.opMask = r
	default:
		return accessorError("SetOpMask", -1, "%s is not an opmask register", r)
	}

	return nil
}

// MVEX details.

func (i *Instruction) MvexRegMemConv() MvexRegMemConv     { return i.mvexConv }
func (i *Instruction) SetMvexRegMemConv(c MvexRegMemConv) { i.mvexConv = c }
func (i *Instruction) MvexEvictionHint() bool             { return i.has(iflagEvictionHint) }
func (i *Instruction) SetMvexEvictionHint(on bool)        { i.set(iflagEvictionHint, on) }

// Declared data.

// DeclareDataLen returns the number of
// elements in a data directive.
func (i *Instruction) DeclareDataLen() int { return int(i.dataLen) }

// declareElementSize returns the element
// size in bytes for a data directive.
func (i *Instruction) declareElementSize() int {
	switch i.code {
	case DeclareByte:
		return 1
	case DeclareWord:
		return 2
	case DeclareDword:
		return 4
	case DeclareQword:
		return 8
	}

	return 0
}

// SetDeclareDataLen sets the number of
// elements in a data directive, which must
// fit in 16 bytes.
func (i *Instruction) SetDeclareDataLen(n int) error {
	size := i.declareElementSize()
	if size == 0 {
		return accessorError("SetDeclareDataLen", -1, "%s is not a data directive", i.code)
	}

	if n < 1 || n*size > len(i.data) {
		return accessorError("SetDeclareDataLen", -1, "invalid length %d for %s", n, i.code)
	}

	i.dataLen = uint8(n)
	return nil
}

// declareOffset checks the element index
// and size for a declared data accessor.
func (i *Instruction) declareOffset(accessor string, n, size int) (int, error) {
	if i.declareElementSize() != size {
		return 0, accessorError(accessor, n, "%s does not declare %d-byte values", i.code, size)
	}

	if n < 0 || n*size >= len(i.data) {
		return 0, accessorError(accessor, n, "element index out of range")
	}

	return n * size, nil
}

func (i *Instruction) DeclareByteValue(n int) (uint8, error) {
	off, err := i.declareOffset("DeclareByteValue", n, 1)
	if err != nil {
		return 0, err
	}

	return i.data[off], nil
}

func (i *Instruction) SetDeclareByteValue(n int, v uint8) error {
	off, err := i.declareOffset("SetDeclareByteValue", n, 1)
	if err != nil {
		return err
	}

	i.data[off] = v
	return nil
}

func (i *Instruction) DeclareWordValue(n int) (uint16, error) {
	off, err := i.declareOffset("DeclareWordValue", n, 2)
	if err != nil {
		return 0, err
	}

	return uint16(i.data[off]) | uint16(i.data[off+1])<<8, nil
}

func (i *Instruction) SetDeclareWordValue(n int, v uint16) error {
	off, err := i.declareOffset("SetDeclareWordValue", n, 2)
	if err != nil {
		return err
	}

	i.data[off] = byte(v)
	i.data[off+1] = byte(v >> 8)
	return nil
}

func (i *Instruction) DeclareDwordValue(n int) (uint32, error) {
	off, err := i.declareOffset("DeclareDwordValue", n, 4)
	if err != nil {
		return 0, err
	}

	var v uint32
	for b := 3; b >= 0; b-- {
		v = v<<8 | uint32(i.data[off+b])
	}

	return v, nil
}

func (i *Instruction) SetDeclareDwordValue(n int, v uint32) error {
	off, err := i.declareOffset("SetDeclareDwordValue", n, 4)
	if err != nil {
		return err
	}

	for b := 0; b < 4; b++ {
		i.data[off+b] = byte(v >> (8 * b))
	}

	return nil
}

func (i *Instruction) DeclareQwordValue(n int) (uint64, error) {
	off, err := i.declareOffset("DeclareQwordValue", n, 8)
	if err != nil {
		return 0, err
	}

	var v uint64
	for b := 7; b >= 0; b-- {
		v = v<<8 | uint64(i.data[off+b])
	}

	return v, nil
}

func (i *Instruction) SetDeclareQwordValue(n int, v uint64) error {
	off, err := i.declareOffset("SetDeclareQwordValue", n, 8)
	if err != nil {
		return err
	}

	for b := 0; b < 8; b++ {
		i.data[off+b] = byte(v >> (8 * b))
	}

	return nil
}

// GoString returns a debugging summary of
// the instruction's non-zero fields.
func (i *Instruction) GoString() string {
	var s strings.Builder
	fmt.Fprintf(&s, "{Code: %s", i.code)
	if i.codeSize != CodeSizeUnknown {
		fmt.Fprintf(&s, ", CodeSize: %s", i.codeSize)
	}
	if i.length != 0 {
		fmt.Fprintf(&s, ", Len: %d", i.length)
	}
	if i.ip != 0 {
		fmt.Fprintf(&s, ", IP: %#x", i.ip)
	}
	if i.nextIP != 0 {
		fmt.Fprintf(&s, ", NextIP: %#x", i.nextIP)
	}

	for n := 0; n < i.OpCount(); n++ {
		k := i.OpKind(n)
		switch {
		case k == OpKindRegister:
			fmt.Fprintf(&s, ", Op%d: %s", n, i.OpRegister(n))
		case k.IsImmediate():
			v, _ := i.Immediate(n)
			fmt.Fprintf(&s, ", Op%d: %s %#x", n, k, v)
		case k.IsNearBranch():
			fmt.Fprintf(&s, ", Op%d: %s %#x", n, k, i.NearBranch64())
		case k.IsFarBranch():
			fmt.Fprintf(&s, ", Op%d: %s %#x:%#x", n, k, i.FarBranchSelector(), i.FarBranch32())
		case k == OpKindMemory:
			m := i.MemoryOperand()
			fmt.Fprintf(&s, ", Op%d: %#v", n, &m)
		default:
			fmt.Fprintf(&s, ", Op%d: %s", n, k)
		}
	}

	if i.dataLen != 0 {
		fmt.Fprintf(&s, ", Data: % x", i.data[:int(i.dataLen)*i.declareElementSize()])
	}
	if i.segment != RegisterNone {
		fmt.Fprintf(&s, ", Segment: %s", i.segment)
	}
	if i.opMask != RegisterNone {
		fmt.Fprintf(&s, ", OpMask: %s", i.opMask)
	}
	for _, f := range [...]struct {
		flag instructionFlags
		name string
	}{
		{iflagLock, "Lock"},
		{iflagRepe, "Rep"},
		{iflagRepne, "Repne"},
		{iflagBnd, "Bnd"},
		{iflagNotrack, "Notrack"},
		{iflagZeroing, "Zeroing"},
		{iflagBroadcast, "Broadcast"},
		{iflagSAE, "SAE"},
		{iflagEvictionHint, "EvictionHint"},
	} {
		if i.has(f.flag) {
			fmt.Fprintf(&s, ", %s", f.name)
		}
	}
	if i.rounding != RoundingNone {
		fmt.Fprintf(&s, ", Rounding: %s", i.rounding)
	}
	if i.mvexConv != MvexRegMemConvNone {
		fmt.Fprintf(&s, ", Conv: %s", i.mvexConv)
	}
	s.WriteByte('}')

	return s.String()
}
