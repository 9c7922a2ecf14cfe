// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package decoder

import (
	"testing"

	"firefly-os.dev/tools/x86dis/x86"
)

func TestOptions(t *testing.T) {
	tests := []struct {
		Name     string
		Options  Options
		String   string
		Features x86.Feature
	}{
		{
			Name:    "none",
			Options: 0,
			String:  "None",
		},
		{
			Name:    "check only",
			Options: NoInvalidCheck,
			String:  "NoInvalidCheck",
		},
		{
			Name:     "features",
			Options:  AMD | MPX | KNC,
			String:   "AMD|MPX|KNC",
			Features: x86.FeatureMPX | x86.FeatureKNC,
		},
		{
			Name:     "unknown bits",
			Options:  NoPause | 1<<30,
			String:   "NoPause|Options(0x40000000)",
			Features: x86.FeatureNoPause,
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			if got := test.Options.String(); got != test.String {
				t.Errorf("String(): got %q, want %q", got, test.String)
			}

			if got := test.Options.features(); got != test.Features {
				t.Errorf("features(): got %#x, want %#x", got, test.Features)
			}
		})
	}
}

func TestParseOption(t *testing.T) {
	for i, name := range optionNames {
		got, err := ParseOption(name)
		if err != nil {
			t.Errorf("ParseOption(%q): %v", name, err)
			continue
		}

		if want := Options(1) << i; got != want {
			t.Errorf("ParseOption(%q): got %v, want %v", name, got, want)
		}
	}

	if got, err := ParseOption("nopause"); err != nil || got != NoPause {
		t.Errorf("ParseOption(%q): got %v, %v, want %v", "nopause", got, err, NoPause)
	}

	if _, err := ParseOption("bogus"); err == nil {
		t.Errorf("ParseOption(%q): unexpected success", "bogus")
	}
}

func TestDecoderError(t *testing.T) {
	for err, want := range map[DecoderError]string{
		ErrorNone:               "None",
		ErrorInvalidInstruction: "InvalidInstruction",
		ErrorNoMoreBytes:        "NoMoreBytes",
		DecoderError(9):         "DecoderError(9)",
	} {
		if got := err.String(); got != want {
			t.Errorf("%d.String(): got %q, want %q", err, got, want)
		}
	}
}
