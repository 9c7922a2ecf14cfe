// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package decoder

import (
	"fmt"
	"strings"

	"firefly-os.dev/tools/x86dis/x86"
)

// Options is a set of decoder options.
type Options uint32

const (
	// Decode instructions that break an
	// encoding rule, such as LOCK on a
	// register operand, or a non-zero
	// EVEX.aaa on an instruction that
	// cannot use an opmask.
	NoInvalidCheck Options = 1 << iota

	// Decode branches the way AMD CPUs
	// do, where 66 selects a 16-bit near
	// branch in 64-bit mode.
	AMD

	// Decode 0F 0D and 0F 18-1F as the
	// reserved NOPs, even where a more
	// specific instruction is defined.
	ForceReservedNop

	Umov        // UMOV (0F 10-13).
	Xbts        // XBTS and IBTS (0F A6-A7).
	Cmpxchg486A // CMPXCHG as 0F A6-A7.
	OldFpu      // FSTENV-era x87 forms such as FSETPM.
	Pcommit     // PCOMMIT.
	Loadall286  // LOADALL (0F 05) and LOADALLD.
	Loadall386  // LOADALL (0F 07).
	Cl1invmb    // CL1INVMB (0F 0A).
	MovTr       // MOV to and from the test registers.
	Jmpe        // JMPE.
	NoPause     // Decode F3 90 as NOP.
	NoWbnoinvd  // Decode F3 0F 09 as WBINVD.
	MPX         // The MPX instructions.
	KNC         // The Knights Corner MVEX instructions.

	numOptions int = iota
)

var optionNames = [numOptions]string{
	"NoInvalidCheck",
	"AMD",
	"ForceReservedNop",
	"Umov",
	"Xbts",
	"Cmpxchg486A",
	"OldFpu",
	"Pcommit",
	"Loadall286",
	"Loadall386",
	"Cl1invmb",
	"MovTr",
	"Jmpe",
	"NoPause",
	"NoWbnoinvd",
	"MPX",
	"KNC",
}

// optionFeatures maps the options that
// enable or disable instruction forms to
// the matching decoder features.
var optionFeatures = map[Options]x86.Feature{
	Umov:        x86.FeatureUmov,
	Xbts:        x86.FeatureXbts,
	Cmpxchg486A: x86.FeatureCmpxchg486A,
	OldFpu:      x86.FeatureOldFpu,
	Pcommit:     x86.FeaturePcommit,
	Loadall286:  x86.FeatureLoadall286,
	Loadall386:  x86.FeatureLoadall386,
	Cl1invmb:    x86.FeatureCl1invmb,
	MovTr:       x86.FeatureMovTr,
	Jmpe:        x86.FeatureJmpe,
	NoPause:     x86.FeatureNoPause,
	NoWbnoinvd:  x86.FeatureNoWbnoinvd,
	MPX:         x86.FeatureMPX,
	KNC:         x86.FeatureKNC,
}

// features returns the decoder features
// enabled by the options.
func (o Options) features() x86.Feature {
	var f x86.Feature
	for opt, feature := range optionFeatures {
		if o&opt != 0 {
			f |= feature
		}
	}

	return f
}

func (o Options) String() string {
	if o == 0 {
		return "None"
	}

	var names []string
	for i, name := range optionNames {
		if o&(1<<i) != 0 {
			names = append(names, name)
			o &^= 1 << i
		}
	}

	if o != 0 {
		names = append(names, fmt.Sprintf("Options(%#x)", uint32(o)))
	}

	return strings.Join(names, "|")
}

// ParseOption returns the option with the
// given name, ignoring case.
func ParseOption(name string) (Options, error) {
	for i, n := range optionNames {
		if strings.EqualFold(n, name) {
			return 1 << i, nil
		}
	}

	return 0, fmt.Errorf("unknown decoder option %q", name)
}

// DecoderError describes the outcome of
// the last decode.
type DecoderError uint8

const (
	ErrorNone DecoderError = iota

	// The bytes do not form a valid
	// instruction.
	ErrorInvalidInstruction

	// The input ended before the end of
	// the instruction.
	ErrorNoMoreBytes
)

func (e DecoderError) String() string {
	switch e {
	case ErrorNone:
		return "None"
	case ErrorInvalidInstruction:
		return "InvalidInstruction"
	case ErrorNoMoreBytes:
		return "NoMoreBytes"
	default:
		return fmt.Sprintf("DecoderError(%d)", e)
	}
}
