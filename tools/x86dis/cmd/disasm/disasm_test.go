// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package disasm

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"rsc.io/diff"

	"firefly-os.dev/tools/x86dis/decoder"
	"firefly-os.dev/tools/x86dis/formatter"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		Name    string
		Text    string
		Want    []byte
		WantErr bool
	}{
		{
			Name: "packed",
			Text: "488B8AA55AA55A",
			Want: []byte{0x48, 0x8b, 0x8a, 0xa5, 0x5a, 0xa5, 0x5a},
		},
		{
			Name: "spaced",
			Text: "0f 1f 84\t00 00",
			Want: []byte{0x0f, 0x1f, 0x84, 0x00, 0x00},
		},
		{
			Name: "prefixed",
			Text: "0x90, 0xC3",
			Want: []byte{0x90, 0xc3},
		},
		{
			Name:    "odd",
			Text:    "909",
			WantErr: true,
		},
		{
			Name:    "not hex",
			Text:    "nop",
			WantErr: true,
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			got, err := ParseHex(test.Text)
			if test.WantErr {
				if err == nil {
					t.Fatalf("ParseHex(%q): got %x, want error", test.Text, got)
				}

				return
			}

			if err != nil {
				t.Fatalf("ParseHex(%q): %v", test.Text, err)
			}

			if diff := cmp.Diff(test.Want, got); diff != "" {
				t.Fatalf("ParseHex(%q): (-want, +got)\n%s", test.Text, diff)
			}
		})
	}
}

func TestParseSymbols(t *testing.T) {
	got, err := parseSymbols(map[string]string{"0x10": "start", "32": "loop"})
	if err != nil {
		t.Fatalf("parseSymbols(): %v", err)
	}

	want := formatter.SymbolMap{0x10: "start", 32: "loop"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("parseSymbols(): (-want, +got)\n%s", diff)
	}

	if _, err := parseSymbols(map[string]string{"start": "x"}); err == nil {
		t.Fatalf("parseSymbols(start): got nil error")
	}
}

func TestDisassemble(t *testing.T) {
	tests := []struct {
		Name   string
		Config Config
		Inputs []string
		Want   string
	}{
		{
			Name: "text intel",
			Config: Config{
				Bitness: 64,
				Syntax:  formatter.Intel,
				Mode:    ModeText,
			},
			Inputs: []string{"62F24FDD725001 488B8AA55AA55A 0F1F840000000000"},
			Want: "vcvtne2ps2bf16 zmm2{k5}{z},zmm6,[rax+4]{1to16}\n" +
				"mov rcx,[rdx+5AA55AA5h]\n" +
				"nop [rax+rax]\n",
		},
		{
			Name: "text gas",
			Config: Config{
				Bitness: 64,
				Syntax:  formatter.Gas,
				Mode:    ModeText,
			},
			Inputs: []string{"62F24FDD725001 488B8AA55AA55A E800000000"},
			Want: "vcvtne2ps2bf16 4(%rax){1to16},%zmm6,%zmm2{%k5}{z}\n" +
				"mov 0x5AA55AA5(%rdx),%rcx\n" +
				"callq 0x13\n",
		},
		{
			Name: "text 16-bit",
			Config: Config{
				Bitness: 16,
				Syntax:  formatter.Gas,
				Mode:    ModeText,
			},
			Inputs: []string{"F3AA"},
			Want:   "rep stosb %al,%es:(%di)\n",
		},
		{
			Name: "listing",
			Config: Config{
				Bitness:  32,
				IP:       0x1000,
				Syntax:   formatter.Intel,
				MaxBytes: 4,
			},
			Inputs: []string{"90 C3 C7C078563412"},
			Want: "00001000 90       nop\n" +
				"00001001 C3       ret\n" +
				"00001002 C7C07856 mov eax,12345678h\n" +
				"         3412\n",
		},
		{
			Name: "symbols",
			Config: Config{
				Bitness: 64,
				Syntax:  formatter.Intel,
				Mode:    ModeText,
				Symbols: formatter.SymbolMap{5: "target"},
			},
			Inputs: []string{"E800000000"},
			Want:   "call target\n",
		},
		{
			Name: "multiple inputs",
			Config: Config{
				Bitness: 32,
				Syntax:  formatter.NASM,
				Mode:    ModeText,
			},
			Inputs: []string{"90", "C3"},
			Want:   "hex1:\nnop\n\nhex2:\nret\n",
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			inputs := make([]Input, len(test.Inputs))
			for i, text := range test.Inputs {
				data, err := ParseHex(text)
				if err != nil {
					t.Fatalf("bad test hex %q: %v", text, err)
				}

				inputs[i] = Input{Name: "hex" + string(rune('1'+i)), Data: data}
			}

			var buf bytes.Buffer
			if err := Main(context.Background(), &buf, &test.Config, inputs); err != nil {
				t.Fatalf("Main(): %v", err)
			}

			got := buf.String()
			if got != test.Want {
				t.Fatalf("output mismatch:\n%s", diff.Format(got, test.Want))
			}
		})
	}
}

func TestDisassembleModes(t *testing.T) {
	inputs := []Input{{Name: "code", Data: []byte{0x48, 0x8b, 0x8a, 0xa5, 0x5a, 0xa5, 0x5a}}}
	tests := []struct {
		Name string
		Mode Mode
		Want []string
	}{
		{
			Name: "table",
			Mode: ModeTable,
			Want: []string{"Address", "Instruction", "488B8AA55AA55A", "mov rcx,[rdx+5AA55AA5h]"},
		},
		{
			Name: "dump",
			Mode: ModeDump,
			Want: []string{"0000000000000000 mov rcx,[rdx+5AA55AA5h]", "x86.Instruction"},
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			cfg := Config{Bitness: 64, Syntax: formatter.Intel, Mode: test.Mode}
			var buf bytes.Buffer
			if err := Main(context.Background(), &buf, &cfg, inputs); err != nil {
				t.Fatalf("Main(): %v", err)
			}

			got := buf.String()
			for _, want := range test.Want {
				if !strings.Contains(got, want) {
					t.Errorf("output is missing %q:\n%s", want, got)
				}
			}
		})
	}
}

func TestDisassembleConfig(t *testing.T) {
	name := filepath.Join(t.TempDir(), "x86dis.yaml")
	opts := "uppercase_mnemonics: true\nuppercase_registers: true\n"
	if err := os.WriteFile(name, []byte(opts), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := Config{Bitness: 32, Syntax: formatter.Intel, Mode: ModeText, Options: name}
	inputs := []Input{{Name: "code", Data: []byte{0x89, 0xd8}}}
	var buf bytes.Buffer
	if err := Main(context.Background(), &buf, &cfg, inputs); err != nil {
		t.Fatalf("Main(): %v", err)
	}

	if got, want := buf.String(), "MOV EAX,EBX\n"; got != want {
		t.Fatalf("Main(): got %q, want %q", got, want)
	}

	cfg.Options = filepath.Join(t.TempDir(), "missing.toml")
	if err := Main(context.Background(), &buf, &cfg, inputs); err == nil {
		t.Fatalf("Main(missing options): got nil error")
	}

	cfg.Options = ""
	cfg.Bitness = 8
	if err := Main(context.Background(), &buf, &cfg, inputs); err == nil {
		t.Fatalf("Main(8-bit): got nil error")
	}
}

func TestCommand(t *testing.T) {
	cmd := Command()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--bitness=32", "--syntax=masm", "--text", "--hex", "F3AA"})
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("Execute(): %v", err)
	}

	if got, want := buf.String(), "rep stos es:[edi],al\n"; got != want {
		t.Fatalf("Execute(): got %q, want %q", got, want)
	}
}

func TestOptionsFlag(t *testing.T) {
	var opts decoder.Options
	flag := optionsFlag{&opts}
	if err := flag.Set("AMD, MPX"); err != nil {
		t.Fatalf("Set(): %v", err)
	}

	if err := flag.Set("KNC"); err != nil {
		t.Fatalf("Set(): %v", err)
	}

	if want := decoder.AMD | decoder.MPX | decoder.KNC; opts != want {
		t.Fatalf("Set(): got %v, want %v", opts, want)
	}

	if err := flag.Set("Z80"); err == nil {
		t.Fatalf("Set(Z80): got nil error")
	}
}
