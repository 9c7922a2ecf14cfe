// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import (
	"fmt"
	"strings"
)

// MemoryOperand represents an x86 memory
// reference, used when building an
// instruction.
//
// A zero register field is absent. A zero
// Scale is treated as 1.
type MemoryOperand struct {
	Segment      Register // Segment override prefix.
	Base         Register
	Index        Register
	Scale        int   // 1, 2, 4 or 8.
	Displacement int64 // Absolute address if Base is RIP or EIP.
	DisplSize    int   // 0, 1, 2, 4 or 8 bytes.
	Broadcast    bool  // EVEX embedded broadcast.
}

// Mem returns a memory operand with a base
// register and displacement.
func Mem(base Register, displacement int64) MemoryOperand {
	m := MemoryOperand{Base: base, Scale: 1, Displacement: displacement}
	if displacement != 0 {
		m.DisplSize = 1
		if displacement < -0x80 || displacement > 0x7f {
			m.DisplSize = 4
		}
	}

	return m
}

// MemIndex returns a memory operand with a
// base register, a scaled index register
// and a displacement.
func MemIndex(base, index Register, scale int, displacement int64) MemoryOperand {
	m := Mem(base, displacement)
	m.Index = index
	m.Scale = scale

	return m
}

func (m MemoryOperand) String() string {
	base := m.Base != RegisterNone
	index := m.Index != RegisterNone
	scale := m.Scale > 1
	displacement := m.Displacement != 0

	var s strings.Builder
	if m.Segment != RegisterNone {
		fmt.Fprintf(&s, "%s:", m.Segment)
	}

	s.WriteByte('[')
	plus := false
	if base {
		s.WriteString(m.Base.String())
		plus = true
	}
	if index {
		if plus {
			s.WriteByte('+')
		}
		s.WriteString(m.Index.String())
		if scale {
			fmt.Fprintf(&s, "*%d", m.Scale)
		}
		plus = true
	}
	switch {
	case displacement && plus && m.Displacement < 0:
		fmt.Fprintf(&s, "-%#x", -m.Displacement)
	case displacement && plus:
		fmt.Fprintf(&s, "+%#x", m.Displacement)
	case displacement || !plus:
		fmt.Fprintf(&s, "%#x", m.Displacement)
	}
	s.WriteByte(']')
	if m.Broadcast {
		s.WriteString("{bcst}")
	}

	return s.String()
}

func (m MemoryOperand) GoString() string {
	first := true
	var s strings.Builder
	join := func() {
		if !first {
			s.WriteString(", ")
		}

		first = false
	}

	s.WriteByte('{')
	if m.Segment != RegisterNone {
		first = false
		fmt.Fprintf(&s, "Segment: %s", m.Segment)
	}
	if m.Base != RegisterNone {
		join()
		fmt.Fprintf(&s, "Base: %s", m.Base)
	}
	if m.Index != RegisterNone {
		join()
		fmt.Fprintf(&s, "Index: %s", m.Index)
	}
	if m.Scale > 1 {
		join()
		fmt.Fprintf(&s, "Scale: %d", m.Scale)
	}
	if m.Displacement != 0 || first {
		join()
		fmt.Fprintf(&s, "Displacement: %#x", m.Displacement)
	}
	if m.DisplSize != 0 {
		join()
		fmt.Fprintf(&s, "DisplSize: %d", m.DisplSize)
	}
	if m.Broadcast {
		join()
		s.WriteString("Broadcast")
	}
	s.WriteByte('}')

	return s.String()
}

// MemoryOperand returns the instruction's
// memory reference.
func (i *Instruction) MemoryOperand() MemoryOperand {
	return MemoryOperand{
		Segment:      i.segment,
		Base:         i.base,
		Index:        i.index,
		Scale:        i.MemoryIndexScale(),
		Displacement: int64(i.displ),
		DisplSize:    int(i.displSize),
		Broadcast:    i.IsBroadcast(),
	}
}

// setMemoryOperand validates and stores a
// memory reference.
func (i *Instruction) setMemoryOperand(m MemoryOperand) error {
	if m.Base != RegisterNone && !m.Base.IsGPR16() && !m.Base.IsGPR32() && !m.Base.IsGPR64() && !m.Base.IsIP() {
		return fmt.Errorf("invalid base register %s", m.Base)
	}

	if m.Index != RegisterNone && !m.Index.IsGPR16() && !m.Index.IsGPR32() && !m.Index.IsGPR64() && !m.Index.IsVector() {
		return fmt.Errorf("invalid index register %s", m.Index)
	}

	if m.Base.IsIP() && m.Index != RegisterNone {
		return fmt.Errorf("IP-relative memory reference cannot have an index register")
	}

	if err := i.SetSegmentPrefix(m.Segment); err != nil {
		return err
	}

	scale := m.Scale
	if scale == 0 {
		scale = 1
	}

	if err := i.SetMemoryIndexScale(scale); err != nil {
		return err
	}

	if err := i.SetMemoryDisplSize(m.DisplSize); err != nil {
		return err
	}

	i.base = m.Base
	i.index = m.Index
	i.displ = uint64(m.Displacement)
	i.set(iflagBroadcast, m.Broadcast)

	return nil
}
