// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package decoder

import (
	"fmt"
	"strings"
	"testing"

	"firefly-os.dev/tools/x86dis/x86"
)

// TestSlotsUnambiguous checks that whenever
// two instruction forms in the same slot
// match the same bytes, one is strictly
// more constrained than the other, so the
// order of the form tables never decides
// which form is decoded.
func TestSlotsUnambiguous(t *testing.T) {
	for enc, maps := range tables {
		for table, h := range maps {
			if h == nil {
				continue
			}

			name := fmt.Sprintf("%s/%s", x86.EncodingKind(enc), x86.OpCodeTable(table))
			t.Run(name, func(t *testing.T) {
				for op := range h {
					sl := &h[op]
					for p, list := range sl.forms {
						if len(list) < 2 {
							continue
						}

						prefix := x86.MandatoryPrefixNone + x86.MandatoryPrefix(p)
						if err := checkSlot(x86.EncodingKind(enc), x86.OpCodeTable(table), byte(op), prefix, sl.modrm, list); err != nil {
							t.Errorf("opcode %02x with prefix %s: %v", op, prefix, err)
						}
					}
				}
			})
		}
	}
}

// checkSlot tries every combination of
// mode, prefixes, vector fields, ModR/M
// byte and decoder features that could
// affect which form matches.
func checkSlot(enc x86.EncodingKind, table x86.OpCodeTable, opcode byte, prefix x86.MandatoryPrefix, modrm bool, list []candidate) error {
	var features x86.Feature
	var force64, addrSize, noREXB bool
	for _, c := range list {
		features |= c.op.Requires | c.op.Excludes
		force64 = force64 || c.op.Force64
		addrSize = addrSize || c.op.AddressSize != 0
		noREXB = noREXB || c.op.NoREXB
	}

	// Each subset of the features the
	// forms mention.
	var featureSets []x86.Feature
	for sub := features; ; sub = (sub - 1) & features {
		featureSets = append(featureSets, sub)
		if sub == 0 {
			break
		}
	}

	type legacyPrefixes struct {
		has66 bool
		rep   byte
	}

	var prefixes []legacyPrefixes
	switch prefix {
	case x86.MandatoryPrefixNone:
		prefixes = []legacyPrefixes{{}}
	case x86.MandatoryPrefix66:
		prefixes = []legacyPrefixes{{has66: true}}
	case x86.MandatoryPrefixF3:
		prefixes = []legacyPrefixes{{rep: byte(x86.PrefixRepeat)}, {has66: true, rep: byte(x86.PrefixRepeat)}}
	case x86.MandatoryPrefixF2:
		prefixes = []legacyPrefixes{{rep: byte(x86.PrefixRepeatNot)}, {has66: true, rep: byte(x86.PrefixRepeatNot)}}
	}

	if enc != x86.EncodingLegacy {
		prefixes = []legacyPrefixes{{}}
	}

	lengths := []int8{0}
	switch enc {
	case x86.EncodingVEX, x86.EncodingXOP:
		lengths = []int8{0, 1}
	case x86.EncodingEVEX, x86.EncodingMVEX:
		lengths = []int8{0, 1, 2, 3}
	}

	modrms := []int{-1}
	if modrm {
		modrms = modrms[:0]
		for m := 0; m < 256; m++ {
			modrms = append(modrms, m)
		}
	}

	bools := []bool{false, true}
	only := func(ok bool) []bool {
		if ok {
			return bools
		}

		return bools[:1]
	}

	for _, bitness := range []int{16, 32, 64} {
		mode64 := bitness == 64
		for _, opts := range []Options{0, AMD} {
			if opts == AMD && !force64 {
				continue
			}

			for _, feat := range featureSets {
				d := &Decoder{bitness: bitness, options: opts, features: feat}
				for _, lp := range prefixes {
					for _, w := range only(mode64 || enc != x86.EncodingLegacy) {
						for _, l := range lengths {
							for _, extB := range only(mode64 && noREXB) {
								for _, has67 := range only(addrSize) {
									for _, m := range modrms {
										s := state{
											d:        d,
											has66:    lp.has66,
											has67:    has67,
											rep:      lp.rep,
											enc:      enc,
											table:    table,
											opcode:   opcode,
											pp:       prefix,
											w:        w,
											l:        l,
											extB:     extB,
											mode64:   mode64,
											addrSize: addressSize(bitness, has67),
										}

										if m >= 0 {
											s.modrm, s.hasModRM = x86.ModRM(m), true
										}

										if err := s.ambiguous(list); err != nil {
											return fmt.Errorf("%v in %d-bit mode with features %#x", err, bitness, uint32(feat))
										}
									}
								}
							}
						}
					}
				}
			}
		}
	}

	return nil
}

// ambiguous returns an error if more than
// one of the most constrained matching
// forms match.
func (s *state) ambiguous(list []candidate) error {
	var top []string
	best := -1
	for i := range list {
		c := &list[i]
		if !s.match(c) {
			continue
		}

		switch {
		case c.score > best:
			best = c.score
			top = append(top[:0], c.code.String())
		case c.score == best:
			top = append(top, c.code.String())
		}
	}

	if len(top) > 1 {
		return fmt.Errorf("forms %s tie with ModR/M %02x, W=%v, L=%d", strings.Join(top, ", "), byte(s.modrm), s.w, s.l)
	}

	return nil
}

func addressSize(bitness int, has67 bool) uint8 {
	switch bitness {
	case 16:
		if has67 {
			return 32
		}

		return 16
	case 32:
		if has67 {
			return 16
		}

		return 32
	}

	if has67 {
		return 32
	}

	return 64
}

func TestPrefixIndex(t *testing.T) {
	tests := []struct {
		Name   string
		Prefix x86.MandatoryPrefix
		Want   int
	}{
		{Name: "none", Prefix: x86.MandatoryPrefixNone, Want: 0},
		{Name: "66", Prefix: x86.MandatoryPrefix66, Want: 1},
		{Name: "F3", Prefix: x86.MandatoryPrefixF3, Want: 2},
		{Name: "F2", Prefix: x86.MandatoryPrefixF2, Want: 3},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			if got := prefixIndex(test.Prefix); got != test.Want {
				t.Fatalf("prefixIndex(%s): got %d, want %d", test.Prefix, got, test.Want)
			}
		})
	}
}
