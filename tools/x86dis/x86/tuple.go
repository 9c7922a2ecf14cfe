// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import (
	"fmt"
)

// TupleType contains an EVEX instruction
// tuple kind, as defined in Intel x86,
// Volume 2A, Section 2.7.5.
//
// The tuple type determines the scale N
// applied to a compressed 8-bit
// displacement (disp8*N).
type TupleType uint8

const (
	TupleNone TupleType = iota
	TupleFull
	TupleHalf
	TupleFullMem
	Tuple1Scalar
	Tuple1Fixed
	Tuple2
	Tuple4
	Tuple8
	TupleHalfMem
	TupleQuarterMem
	TupleEighthMem
	TupleMem128
	TupleMOVDDUP
)

var TupleTypes = map[string]TupleType{
	"":              TupleNone,
	"None":          TupleNone,
	"Full":          TupleFull,
	"Half":          TupleHalf,
	"Full Mem":      TupleFullMem,
	"Tuple1 Scalar": Tuple1Scalar,
	"Tuple1 Fixed":  Tuple1Fixed,
	"Tuple2":        Tuple2,
	"Tuple4":        Tuple4,
	"Tuple8":        Tuple8,
	"Half Mem":      TupleHalfMem,
	"Quarter Mem":   TupleQuarterMem,
	"Eighth Mem":    TupleEighthMem,
	"Mem128":        TupleMem128,
	"MOVDDUP":       TupleMOVDDUP,
}

func (t TupleType) String() string {
	switch t {
	case TupleNone:
		return "None"
	case TupleFull:
		return "Full"
	case TupleHalf:
		return "Half"
	case TupleFullMem:
		return "Full Mem"
	case Tuple1Scalar:
		return "Tuple1 Scalar"
	case Tuple1Fixed:
		return "Tuple1 Fixed"
	case Tuple2:
		return "Tuple2"
	case Tuple4:
		return "Tuple4"
	case Tuple8:
		return "Tuple8"
	case TupleHalfMem:
		return "Half Mem"
	case TupleQuarterMem:
		return "Quarter Mem"
	case TupleEighthMem:
		return "Eighth Mem"
	case TupleMem128:
		return "Mem128"
	case TupleMOVDDUP:
		return "MOVDDUP"
	default:
		return fmt.Sprintf("TupleType(%d)", t)
	}
}

func (t TupleType) UID() string {
	switch t {
	case TupleNone:
		return "TupleNone"
	case TupleFull:
		return "TupleFull"
	case TupleHalf:
		return "TupleHalf"
	case TupleFullMem:
		return "TupleFullMem"
	case Tuple1Scalar:
		return "Tuple1Scalar"
	case Tuple1Fixed:
		return "Tuple1Fixed"
	case Tuple2:
		return "Tuple2"
	case Tuple4:
		return "Tuple4"
	case Tuple8:
		return "Tuple8"
	case TupleHalfMem:
		return "TupleHalfMem"
	case TupleQuarterMem:
		return "TupleQuarterMem"
	case TupleEighthMem:
		return "TupleEighthMem"
	case TupleMem128:
		return "TupleMem128"
	case TupleMOVDDUP:
		return "TupleMOVDDUP"
	default:
		return fmt.Sprintf("TupleType(%d)", t)
	}
}

// DisplacementN returns the scale N for
// a compressed 8-bit displacement, as
// described in Intel x86 manuals, Volume
// 2A, Section 2.7.5.
//
// vectorBits is the vector length (128,
// 256 or 512), w is EVEX.W, broadcast is
// EVEX.b on a memory operand, and
// scalarBytes is the size of the memory
// operand, used by Tuple1 Scalar.
func (t TupleType) DisplacementN(vectorBits int, w, broadcast bool, scalarBytes int) int {
	inputSize := 32
	if w {
		inputSize = 64
	}

	switch t {
	case TupleFull:
		if broadcast {
			return inputSize / 8
		}

		return vectorBits / 8
	case TupleHalf:
		if broadcast {
			return 4
		}

		return vectorBits / 16
	case TupleFullMem:
		return vectorBits / 8
	case Tuple1Scalar:
		if scalarBytes <= 0 {
			return 1
		}

		return scalarBytes
	case Tuple1Fixed:
		return inputSize / 8
	case Tuple2:
		return inputSize / 4
	case Tuple4:
		return inputSize / 2
	case Tuple8:
		return inputSize / 1
	case TupleHalfMem:
		return vectorBits / 16
	case TupleQuarterMem:
		return vectorBits / 32
	case TupleEighthMem:
		return vectorBits / 64
	case TupleMem128:
		return 16
	case TupleMOVDDUP:
		switch vectorBits {
		case 128:
			return 8
		case 256:
			return 32
		case 512:
			return 64
		}
	}

	return 1
}

// MvexDisplacementN returns the scale N
// for a compressed 8-bit displacement in
// an MVEX instruction, which depends on
// the memory up-conversion in use. The
// element size is the size in bytes of
// each element once converted.
func MvexDisplacementN(conv MvexRegMemConv, elementBytes int) int {
	elems := 64 / elementBytes
	switch conv {
	case MvexMemConvBroadcast1:
		return elementBytes
	case MvexMemConvBroadcast4:
		return 4 * elementBytes
	case MvexMemConvFloat16, MvexMemConvUint16, MvexMemConvSint16:
		return 2 * elems
	case MvexMemConvUint8, MvexMemConvSint8:
		return elems
	default:
		return 64
	}
}
