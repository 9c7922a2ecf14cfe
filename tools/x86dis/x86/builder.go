// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import (
	"fmt"
)

// Operand is an operand passed to one of the
// instruction builders. It is one of Register,
// MemoryOperand, Imm, Target or FarTarget.
type Operand interface {
	isOperand()
}

// Imm is an immediate operand. Values are
// given as signed integers, but unsigned
// values that fit in the operand's size are
// also accepted.
type Imm int64

// Target is the absolute target address of
// a near branch.
type Target uint64

// FarTarget is the target of a far branch.
type FarTarget struct {
	Selector uint16
	Offset   uint32
}

func (Register) isOperand()      {}
func (MemoryOperand) isOperand() {}
func (Imm) isOperand()           {}
func (Target) isOperand()        {}
func (FarTarget) isOperand()     {}

// BuilderReason describes why a builder
// rejected its arguments.
type BuilderReason uint8

const (
	ReasonWrongOperandCount BuilderReason = iota + 1
	ReasonWrongOperandKind
	ReasonInvalidRegister
	ReasonInvalidScale
	ReasonInvalidDisplSize
	ReasonImmediateOutOfRange
	ReasonInvalidOp4
	ReasonOp4MustBeImmediate8
	ReasonDeclareDataTooLong
	ReasonBitnessRequired
	ReasonInvalidDecorator
)

func (r BuilderReason) String() string {
	switch r {
	case ReasonWrongOperandCount:
		return "wrong operand count"
	case ReasonWrongOperandKind:
		return "wrong operand kind"
	case ReasonInvalidRegister:
		return "invalid register"
	case ReasonInvalidScale:
		return "invalid scale"
	case ReasonInvalidDisplSize:
		return "invalid displacement size"
	case ReasonImmediateOutOfRange:
		return "immediate out of range"
	case ReasonInvalidOp4:
		return "invalid fifth operand"
	case ReasonOp4MustBeImmediate8:
		return "fifth operand must be an 8-bit immediate"
	case ReasonDeclareDataTooLong:
		return "declared data too long"
	case ReasonBitnessRequired:
		return "instruction needs an address size or bitness"
	case ReasonInvalidDecorator:
		return "invalid decorator"
	default:
		return fmt.Sprintf("BuilderReason(%d)", r)
	}
}

// BuilderError is returned when an instruction
// cannot be built from the given operands.
type BuilderError struct {
	Code    Code
	Reason  BuilderReason
	Operand int // The rejected operand, or -1.
	Detail  string
}

func (e *BuilderError) Error() string {
	msg := e.Reason.String()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}

	if e.Operand < 0 {
		return fmt.Sprintf("x86: cannot build %s: %s", e.Code, msg)
	}

	return fmt.Sprintf("x86: cannot build %s: operand %d: %s", e.Code, e.Operand, msg)
}

func builderError(code Code, reason BuilderReason, operand int, format string, v ...any) error {
	return &BuilderError{Code: code, Reason: reason, Operand: operand, Detail: fmt.Sprintf(format, v...)}
}

// Decorators holds the EVEX and MVEX
// decorators applied by WithDecorators.
type Decorators struct {
	OpMask                Register // K1 to K7, or RegisterNone.
	Zeroing               bool
	Rounding              RoundingControl
	SuppressAllExceptions bool
}

// With returns an instruction with no
// operands.
func With(code Code) (Instruction, error) {
	return unmasked(build(code, nil))
}

// With1 returns an instruction with one
// operand.
func With1(code Code, op0 Operand) (Instruction, error) {
	return unmasked(build(code, []Operand{op0}))
}

// With2 returns an instruction with two
// operands.
func With2(code Code, op0, op1 Operand) (Instruction, error) {
	return unmasked(build(code, []Operand{op0, op1}))
}

// With3 returns an instruction with three
// operands.
func With3(code Code, op0, op1, op2 Operand) (Instruction, error) {
	return unmasked(build(code, []Operand{op0, op1, op2}))
}

// With4 returns an instruction with four
// operands.
func With4(code Code, op0, op1, op2, op3 Operand) (Instruction, error) {
	return unmasked(build(code, []Operand{op0, op1, op2, op3}))
}

// With5 returns an instruction with five
// operands. The fifth operand must be an
// immediate.
func With5(code Code, op0, op1, op2, op3, op4 Operand) (Instruction, error) {
	return unmasked(build(code, []Operand{op0, op1, op2, op3, op4}))
}

// WithDecorators returns an instruction with
// the given operands and EVEX decorators.
func WithDecorators(code Code, dec Decorators, ops ...Operand) (Instruction, error) {
	inst, err := build(code, ops)
	if err != nil {
		return Instruction{}, err
	}

	switch {
	case dec.OpMask != RegisterNone && dec.OpMask != K0 && !code.CanOpMask():
		return Instruction{}, builderError(code, ReasonInvalidDecorator, -1, "op mask is not supported")
	case dec.Zeroing && (!code.CanZeroMask() || dec.OpMask == RegisterNone || dec.OpMask == K0):
		return Instruction{}, builderError(code, ReasonInvalidDecorator, -1, "zeroing masking needs a supported op mask")
	case dec.Rounding != RoundingNone && !code.CanRound():
		return Instruction{}, builderError(code, ReasonInvalidDecorator, -1, "embedded rounding is not supported")
	case dec.SuppressAllExceptions && !code.CanSuppressAllExceptions():
		return Instruction{}, builderError(code, ReasonInvalidDecorator, -1, "suppress all exceptions is not supported")
	}

	if err := inst.SetOpMask(dec.OpMask); err != nil {
		return Instruction{}, builderError(code, ReasonInvalidDecorator, -1, "%v", err)
	}

	if code.RequiresOpMask() && !inst.HasOpMask() {
		return Instruction{}, builderError(code, ReasonInvalidDecorator, -1, "an op mask is required")
	}

	inst.SetZeroingMasking(dec.Zeroing)
	inst.SetRoundingControl(dec.Rounding)
	inst.SetSuppressAllExceptions(dec.SuppressAllExceptions)

	return inst, nil
}

// unmasked rejects instructions that
// cannot be used without an op mask.
func unmasked(inst Instruction, err error) (Instruction, error) {
	if err == nil && inst.code.RequiresOpMask() {
		return Instruction{}, builderError(inst.code, ReasonInvalidDecorator, -1, "an op mask is required")
	}

	return inst, err
}

// build validates the operands against the
// code's operand kinds and populates an
// Instruction.
func build(code Code, ops []Operand) (Instruction, error) {
	var inst Instruction
	inst.code = code
	if code.IsDeclareData() {
		return Instruction{}, builderError(code, ReasonWrongOperandKind, -1, "use the WithDeclare builders")
	}

	if len(ops) != code.OpCount() {
		return Instruction{}, builderError(code, ReasonWrongOperandCount, -1, "got %d operands, want %d", len(ops), code.OpCount())
	}

	immediates := 0
	for n, op := range ops {
		kind := code.OpCodeOperandKind(n)
		if n == MaxOperands-1 {
			imm, ok := op.(Imm)
			if !ok {
				return Instruction{}, builderError(code, ReasonOp4MustBeImmediate8, n, "got %T", op)
			}

			if kind == Op_imm4_m2z && (imm < 0 || imm > 3) {
				return Instruction{}, builderError(code, ReasonInvalidOp4, n, "value %d does not fit in 2 bits", imm)
			}

			if imm < -0x80 || imm > 0xff {
				return Instruction{}, builderError(code, ReasonInvalidOp4, n, "value %d does not fit in 8 bits", imm)
			}

			inst.imm = uint64(uint8(imm))
			continue
		}

		var err error
		switch op := op.(type) {
		case Register:
			err = inst.buildRegister(code, n, kind, op)
		case MemoryOperand:
			err = inst.buildMemory(code, n, kind, op)
		case Imm:
			err = inst.buildImmediate(code, n, kind, op, immediates)
			immediates++
		case Target:
			err = inst.buildTarget(code, n, kind, op)
		case FarTarget:
			err = inst.buildFarTarget(code, n, kind, op)
		default:
			err = builderError(code, ReasonWrongOperandKind, n, "unsupported operand type %T", op)
		}

		if err != nil {
			return Instruction{}, err
		}
	}

	return inst, nil
}

// registerMatches returns whether r can be
// used in an operand of the given kind.
func registerMatches(code Code, kind OpCodeOperandKind, r Register) bool {
	if !kind.AcceptsRegister() || r == RegisterNone {
		return false
	}

	want := kind.Register()
	if kind.Encoding() == EncodingImplicit {
		return r == want
	}

	if r.Type() != want.Type() || r.Size() != want.Size() {
		return false
	}

	switch kind {
	case Op_xmm_is4, Op_ymm_is4:
		return r.Number() < 16
	case Op_seg_reg:
		return r.IsSegment()
	}

	// Only EVEX and MVEX can encode the upper
	// 16 vector registers.
	if r.IsVector() && r.Number() >= 16 {
		enc := code.Encoding()
		return enc == EncodingEVEX || enc == EncodingMVEX
	}

	return true
}

func (i *Instruction) buildRegister(code Code, n int, kind OpCodeOperandKind, r Register) error {
	if !kind.AcceptsRegister() {
		return builderError(code, ReasonWrongOperandKind, n, "operand %s does not accept a register", kind)
	}

	if !registerMatches(code, kind, r) {
		return builderError(code, ReasonInvalidRegister, n, "register %s is not valid for operand %s", r, kind)
	}

	i.opKinds[n] = OpKindRegister
	i.regs[n] = r

	return nil
}

func (i *Instruction) buildMemory(code Code, n int, kind OpCodeOperandKind, m MemoryOperand) error {
	if !kind.AcceptsMemory() {
		return builderError(code, ReasonWrongOperandKind, n, "operand %s does not accept memory", kind)
	}

	switch kind {
	case Op_seg_rSI, Op_es_rDI, Op_seg_rDI, Op_seg_rBX_al:
		return builderError(code, ReasonBitnessRequired, n, "use a string instruction builder")
	}

	switch m.Scale {
	case 0, 1, 2, 4, 8:
	default:
		return builderError(code, ReasonInvalidScale, n, "scale %d", m.Scale)
	}

	switch m.DisplSize {
	case 0, 1, 2, 4, 8:
	default:
		return builderError(code, ReasonInvalidDisplSize, n, "displacement size %d", m.DisplSize)
	}

	if kind == Op_mem_offs {
		if m.Base != RegisterNone || m.Index != RegisterNone {
			return builderError(code, ReasonInvalidRegister, n, "memory offsets have no base or index register")
		}

		switch m.DisplSize {
		case 2, 4, 8:
		default:
			return builderError(code, ReasonInvalidDisplSize, n, "memory offsets need a 2, 4 or 8 byte displacement")
		}
	}

	if _, vsib := kind.IsVSIB(); vsib {
		if m.Index.Type() != kind.Register().Type() {
			return builderError(code, ReasonInvalidRegister, n, "index register %s is not valid for %s", m.Index, kind)
		}
	} else if m.Index.IsVector() {
		return builderError(code, ReasonInvalidRegister, n, "vector index register %s needs a VSIB operand", m.Index)
	}

	if m.Broadcast && !code.CanBroadcast() {
		return builderError(code, ReasonInvalidDecorator, n, "broadcast is not supported")
	}

	if err := i.setMemoryOperand(m); err != nil {
		return builderError(code, ReasonInvalidRegister, n, "%v", err)
	}

	i.opKinds[n] = OpKindMemory

	return nil
}

// fitsImmediate returns whether v can be
// stored in a bits-wide immediate, either
// as a signed or an unsigned value.
func fitsImmediate(v Imm, bits uint) bool {
	if bits >= 64 {
		return true
	}

	return int64(v) >= -(1<<(bits-1)) && int64(v) < 1<<bits
}

// fitsSignExtended returns whether v
// survives truncation to from bits then
// sign extension to to bits.
func fitsSignExtended(v Imm, from, to uint) bool {
	if !fitsImmediate(v, to) {
		return false
	}

	shift := 64 - to
	full := int64(uint64(v)<<shift) >> shift
	narrow := int64(uint64(v)<<(64-from)) >> (64 - from)

	return full == narrow
}

func (i *Instruction) buildImmediate(code Code, n int, kind OpCodeOperandKind, v Imm, earlier int) error {
	var opKind OpKind
	ok := true
	switch kind {
	case Op_imm8_const1:
		opKind, ok = OpKindImmediate8, v == 1
	case Op_imm4_m2z:
		opKind, ok = OpKindImmediate8, v >= 0 && v <= 3
	case Op_imm8:
		opKind, ok = OpKindImmediate8, fitsImmediate(v, 8)
		if earlier > 0 {
			opKind = OpKindImmediate8_2nd
		}
	case Op_imm16:
		opKind, ok = OpKindImmediate16, fitsImmediate(v, 16)
	case Op_imm32:
		opKind, ok = OpKindImmediate32, fitsImmediate(v, 32)
	case Op_imm64:
		opKind = OpKindImmediate64
	case Op_imm8sex16:
		opKind, ok = OpKindImmediate8to16, fitsSignExtended(v, 8, 16)
	case Op_imm8sex32:
		opKind, ok = OpKindImmediate8to32, fitsSignExtended(v, 8, 32)
	case Op_imm8sex64:
		opKind, ok = OpKindImmediate8to64, fitsSignExtended(v, 8, 64)
	case Op_imm32sex64:
		opKind, ok = OpKindImmediate32to64, fitsSignExtended(v, 32, 64)
	default:
		return builderError(code, ReasonWrongOperandKind, n, "operand %s does not accept an immediate", kind)
	}

	if !ok {
		return builderError(code, ReasonImmediateOutOfRange, n, "value %d does not fit operand %s", v, kind)
	}

	i.opKinds[n] = opKind

	return i.SetImmediate(n, uint64(v))
}

func (i *Instruction) buildTarget(code Code, n int, kind OpCodeOperandKind, target Target) error {
	var opKind OpKind
	switch kind {
	case Op_br16_1, Op_br16_2:
		opKind = OpKindNearBranch16
		if target > 0xffff {
			return builderError(code, ReasonImmediateOutOfRange, n, "target %#x does not fit in 16 bits", uint64(target))
		}
	case Op_br32_1, Op_br32_4:
		opKind = OpKindNearBranch32
		if target > 0xffff_ffff {
			return builderError(code, ReasonImmediateOutOfRange, n, "target %#x does not fit in 32 bits", uint64(target))
		}
	case Op_br64_1, Op_br64_4:
		opKind = OpKindNearBranch64
	case Op_xbegin_2, Op_xbegin_4:
		return builderError(code, ReasonBitnessRequired, n, "use WithXbegin")
	default:
		return builderError(code, ReasonWrongOperandKind, n, "operand %s does not accept a near branch target", kind)
	}

	i.opKinds[n] = opKind
	i.imm = uint64(target)

	return nil
}

func (i *Instruction) buildFarTarget(code Code, n int, kind OpCodeOperandKind, target FarTarget) error {
	switch kind {
	case Op_farbr2_2:
		if target.Offset > 0xffff {
			return builderError(code, ReasonImmediateOutOfRange, n, "offset %#x does not fit in 16 bits", target.Offset)
		}

		i.opKinds[n] = OpKindFarBranch16
	case Op_farbr4_2:
		i.opKinds[n] = OpKindFarBranch32
	default:
		return builderError(code, ReasonWrongOperandKind, n, "operand %s does not accept a far branch target", kind)
	}

	i.imm = uint64(target.Offset)
	i.sel = target.Selector

	return nil
}

// WithXbegin returns an XBEGIN instruction
// for the given bitness, with an absolute
// fallback address.
func WithXbegin(bitness int, target uint64) (Instruction, error) {
	var inst Instruction
	switch bitness {
	case 16:
		inst.code = Xbegin_rel16
		inst.opKinds[0] = OpKindNearBranch32
		inst.imm = uint64(uint32(target))
	case 32:
		inst.code = Xbegin_rel32
		inst.opKinds[0] = OpKindNearBranch32
		inst.imm = uint64(uint32(target))
	case 64:
		inst.code = Xbegin_rel32
		inst.opKinds[0] = OpKindNearBranch64
		inst.imm = target
	default:
		return Instruction{}, builderError(Xbegin_rel32, ReasonBitnessRequired, -1, "bitness %d", bitness)
	}

	return inst, nil
}

// stringOpKinds returns the operand kinds
// for the implicit string operands at the
// given address size.
func stringOpKinds(addressSize int) (esDI, segSI, segDI OpKind, bx Register, ok bool) {
	switch addressSize {
	case 16:
		return OpKindMemoryESDI, OpKindMemorySegSI, OpKindMemorySegDI, BX, true
	case 32:
		return OpKindMemoryESEDI, OpKindMemorySegESI, OpKindMemorySegEDI, EBX, true
	case 64:
		return OpKindMemoryESRDI, OpKindMemorySegRSI, OpKindMemorySegRDI, RBX, true
	}

	return 0, 0, 0, RegisterNone, false
}

// WithString returns a string instruction,
// such as MOVSB or MASKMOVQ, whose memory
// operands are implied by the address size.
// The segment overrides the default DS
// segment of any source operand.
func WithString(code Code, addressSize int, segment Register, rep RepPrefixKind, regs ...Register) (Instruction, error) {
	esDI, segSI, segDI, bx, ok := stringOpKinds(addressSize)
	if !ok {
		return Instruction{}, builderError(code, ReasonBitnessRequired, -1, "address size %d", addressSize)
	}

	var inst Instruction
	inst.code = code
	if err := inst.SetSegmentPrefix(segment); err != nil {
		return Instruction{}, builderError(code, ReasonInvalidRegister, -1, "%v", err)
	}

	switch rep {
	case RepNone:
	case RepRepe:
		if !code.CanRep() && !code.CanRepeRepne() {
			return Instruction{}, builderError(code, ReasonInvalidDecorator, -1, "REP is not supported")
		}

		inst.SetRepePrefix(true)
	case RepRepne:
		if !code.CanRepeRepne() {
			return Instruction{}, builderError(code, ReasonInvalidDecorator, -1, "REPNE is not supported")
		}

		inst.SetRepnePrefix(true)
	}

	next := 0
	for n := 0; n < code.OpCount(); n++ {
		kind := code.OpCodeOperandKind(n)
		switch kind {
		case Op_es_rDI:
			inst.opKinds[n] = esDI
		case Op_seg_rSI:
			inst.opKinds[n] = segSI
		case Op_seg_rDI:
			inst.opKinds[n] = segDI
		case Op_seg_rBX_al:
			inst.opKinds[n] = OpKindMemory
			inst.base = bx
			inst.index = AL
		default:
			if kind.Encoding() == EncodingImplicit {
				inst.opKinds[n] = OpKindRegister
				inst.regs[n] = kind.Register()
				continue
			}

			if next >= len(regs) {
				return Instruction{}, builderError(code, ReasonWrongOperandCount, n, "missing register operand")
			}

			if err := inst.buildRegister(code, n, kind, regs[next]); err != nil {
				return Instruction{}, err
			}

			next++
		}
	}

	if next != len(regs) {
		return Instruction{}, builderError(code, ReasonWrongOperandCount, -1, "got %d register operands, want %d", len(regs), next)
	}

	return inst, nil
}

// String instruction builders.

func WithInsb(addressSize int, rep RepPrefixKind) (Instruction, error) {
	return WithString(Insb_m8_DX, addressSize, RegisterNone, rep)
}

func WithInsw(addressSize int, rep RepPrefixKind) (Instruction, error) {
	return WithString(Insw_m16_DX, addressSize, RegisterNone, rep)
}

func WithInsd(addressSize int, rep RepPrefixKind) (Instruction, error) {
	return WithString(Insd_m32_DX, addressSize, RegisterNone, rep)
}

func WithOutsb(addressSize int, segment Register, rep RepPrefixKind) (Instruction, error) {
	return WithString(Outsb_DX_m8, addressSize, segment, rep)
}

func WithOutsw(addressSize int, segment Register, rep RepPrefixKind) (Instruction, error) {
	return WithString(Outsw_DX_m16, addressSize, segment, rep)
}

func WithOutsd(addressSize int, segment Register, rep RepPrefixKind) (Instruction, error) {
	return WithString(Outsd_DX_m32, addressSize, segment, rep)
}

func WithMovsb(addressSize int, segment Register, rep RepPrefixKind) (Instruction, error) {
	return WithString(Movsb_m8_m8, addressSize, segment, rep)
}

func WithMovsw(addressSize int, segment Register, rep RepPrefixKind) (Instruction, error) {
	return WithString(Movsw_m16_m16, addressSize, segment, rep)
}

func WithMovsd(addressSize int, segment Register, rep RepPrefixKind) (Instruction, error) {
	return WithString(Movsd_m32_m32, addressSize, segment, rep)
}

func WithMovsq(addressSize int, segment Register, rep RepPrefixKind) (Instruction, error) {
	return WithString(Movsq_m64_m64, addressSize, segment, rep)
}

func WithCmpsb(addressSize int, segment Register, rep RepPrefixKind) (Instruction, error) {
	return WithString(Cmpsb_m8_m8, addressSize, segment, rep)
}

func WithCmpsw(addressSize int, segment Register, rep RepPrefixKind) (Instruction, error) {
	return WithString(Cmpsw_m16_m16, addressSize, segment, rep)
}

func WithCmpsd(addressSize int, segment Register, rep RepPrefixKind) (Instruction, error) {
	return WithString(Cmpsd_m32_m32, addressSize, segment, rep)
}

func WithCmpsq(addressSize int, segment Register, rep RepPrefixKind) (Instruction, error) {
	return WithString(Cmpsq_m64_m64, addressSize, segment, rep)
}

func WithStosb(addressSize int, rep RepPrefixKind) (Instruction, error) {
	return WithString(Stosb_m8_AL, addressSize, RegisterNone, rep)
}

func WithStosw(addressSize int, rep RepPrefixKind) (Instruction, error) {
	return WithString(Stosw_m16_AX, addressSize, RegisterNone, rep)
}

func WithStosd(addressSize int, rep RepPrefixKind) (Instruction, error) {
	return WithString(Stosd_m32_EAX, addressSize, RegisterNone, rep)
}

func WithStosq(addressSize int, rep RepPrefixKind) (Instruction, error) {
	return WithString(Stosq_m64_RAX, addressSize, RegisterNone, rep)
}

func WithLodsb(addressSize int, segment Register, rep RepPrefixKind) (Instruction, error) {
	return WithString(Lodsb_AL_m8, addressSize, segment, rep)
}

func WithLodsw(addressSize int, segment Register, rep RepPrefixKind) (Instruction, error) {
	return WithString(Lodsw_AX_m16, addressSize, segment, rep)
}

func WithLodsd(addressSize int, segment Register, rep RepPrefixKind) (Instruction, error) {
	return WithString(Lodsd_EAX_m32, addressSize, segment, rep)
}

func WithLodsq(addressSize int, segment Register, rep RepPrefixKind) (Instruction, error) {
	return WithString(Lodsq_RAX_m64, addressSize, segment, rep)
}

func WithScasb(addressSize int, rep RepPrefixKind) (Instruction, error) {
	return WithString(Scasb_AL_m8, addressSize, RegisterNone, rep)
}

func WithScasw(addressSize int, rep RepPrefixKind) (Instruction, error) {
	return WithString(Scasw_AX_m16, addressSize, RegisterNone, rep)
}

func WithScasd(addressSize int, rep RepPrefixKind) (Instruction, error) {
	return WithString(Scasd_EAX_m32, addressSize, RegisterNone, rep)
}

func WithScasq(addressSize int, rep RepPrefixKind) (Instruction, error) {
	return WithString(Scasq_RAX_m64, addressSize, RegisterNone, rep)
}

func WithXlatb(addressSize int, segment Register) (Instruction, error) {
	return WithString(Xlat_m8, addressSize, segment, RepNone)
}

func WithMaskmovq(addressSize int, dst, mask Register, segment Register) (Instruction, error) {
	return WithString(Maskmovq_rDI_mm_mm, addressSize, segment, RepNone, dst, mask)
}

func WithMaskmovdqu(addressSize int, dst, mask Register, segment Register) (Instruction, error) {
	return WithString(Maskmovdqu_rDI_xmm_xmm, addressSize, segment, RepNone, dst, mask)
}

// withDeclare returns a data directive
// holding n elements of size bytes each,
// stored by put.
func withDeclare(code Code, n, size int, put func(inst *Instruction, i int) error) (Instruction, error) {
	var inst Instruction
	inst.code = code
	if n == 0 {
		return Instruction{}, builderError(code, ReasonWrongOperandCount, -1, "no elements")
	}

	if n*size > len(inst.data) {
		return Instruction{}, builderError(code, ReasonDeclareDataTooLong, -1, "%d elements of %d bytes", n, size)
	}

	inst.dataLen = uint8(n)
	for i := 0; i < n; i++ {
		if err := put(&inst, i); err != nil {
			return Instruction{}, err
		}
	}

	return inst, nil
}

// WithDeclareByte returns a db directive
// with 1 to 16 bytes.
func WithDeclareByte(data ...uint8) (Instruction, error) {
	return withDeclare(DeclareByte, len(data), 1, func(inst *Instruction, i int) error {
		return inst.SetDeclareByteValue(i, data[i])
	})
}

// WithDeclareWord returns a dw directive
// with 1 to 8 words.
func WithDeclareWord(data ...uint16) (Instruction, error) {
	return withDeclare(DeclareWord, len(data), 2, func(inst *Instruction, i int) error {
		return inst.SetDeclareWordValue(i, data[i])
	})
}

// WithDeclareDword returns a dd directive
// with 1 to 4 doublewords.
func WithDeclareDword(data ...uint32) (Instruction, error) {
	return withDeclare(DeclareDword, len(data), 4, func(inst *Instruction, i int) error {
		return inst.SetDeclareDwordValue(i, data[i])
	})
}

// WithDeclareQword returns a dq directive
// with 1 or 2 quadwords.
func WithDeclareQword(data ...uint64) (Instruction, error) {
	return withDeclare(DeclareQword, len(data), 8, func(inst *Instruction, i int) error {
		return inst.SetDeclareQwordValue(i, data[i])
	})
}
