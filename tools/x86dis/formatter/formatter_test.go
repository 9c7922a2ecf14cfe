// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package formatter

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"rsc.io/diff"

	"firefly-os.dev/tools/x86dis/decoder"
	"firefly-os.dev/tools/x86dis/x86"
)

func decodeOne(t *testing.T, bitness int, code string) x86.Instruction {
	t.Helper()
	data, err := hex.DecodeString(strings.ReplaceAll(code, " ", ""))
	if err != nil {
		t.Fatalf("bad test hex %q: %v", code, err)
	}

	d, err := decoder.New(bitness, data, 0)
	if err != nil {
		t.Fatalf("decoder.New(%d): %v", bitness, err)
	}

	inst := d.Decode()
	if inst.IsInvalid() {
		t.Fatalf("failed to decode %s: %v", code, d.LastError())
	}

	return inst
}

func TestFormat(t *testing.T) {
	tests := []struct {
		Name    string
		Bitness int
		Code    string
		Intel   string
		MASM    string
		NASM    string
		Gas     string
	}{
		{
			Name:    "EVEX broadcast",
			Bitness: 64,
			Code:    "62 f2 4f dd 72 50 01",
			Intel:   "vcvtne2ps2bf16 zmm2{k5}{z},zmm6,[rax+4]{1to16}",
			MASM:    "vcvtne2ps2bf16 zmm2{k5}{z},zmm6,dword bcst [rax+4]",
			NASM:    "vcvtne2ps2bf16 zmm2{k5}{z},zmm6,[rax+4]{1to16}",
			Gas:     "vcvtne2ps2bf16 4(%rax){1to16},%zmm6,%zmm2{%k5}{z}",
		},
		{
			Name:    "displacement",
			Bitness: 64,
			Code:    "48 8b 8a a5 5a a5 5a",
			Intel:   "mov rcx,[rdx+5AA55AA5h]",
			MASM:    "mov rcx,[rdx+5AA55AA5h]",
			NASM:    "mov rcx,[rdx+5AA55AA5h]",
			Gas:     "mov 0x5AA55AA5(%rdx),%rcx",
		},
		{
			Name:    "nop",
			Bitness: 32,
			Code:    "90",
			Intel:   "nop",
			MASM:    "nop",
			NASM:    "nop",
			Gas:     "nop",
		},
		{
			Name:    "near call",
			Bitness: 64,
			Code:    "e8 00 00 00 00",
			Intel:   "call 0000000000000005h",
			MASM:    "call 0000000000000005h",
			NASM:    "call 0000000000000005h",
			Gas:     "callq 0x5",
		},
		{
			Name:    "rep stosb",
			Bitness: 16,
			Code:    "f3 aa",
			Intel:   "rep stosb",
			MASM:    "rep stos es:[di],al",
			NASM:    "rep stosb",
			Gas:     "rep stosb %al,%es:(%di)",
		},
		{
			Name:    "long nop",
			Bitness: 64,
			Code:    "0f 1f 84 00 00 00 00 00",
			Intel:   "nop [rax+rax]",
			MASM:    "nop [rax+rax]",
			NASM:    "nop [rax+rax]",
			Gas:     "nopl (%rax,%rax)",
		},
		{
			Name:    "negative displacement",
			Bitness: 32,
			Code:    "8b 45 f8",
			Intel:   "mov eax,[ebp-8]",
			MASM:    "mov eax,[ebp-8]",
			NASM:    "mov eax,[ebp-8]",
			Gas:     "mov -8(%ebp),%eax",
		},
		{
			Name:    "immediate",
			Bitness: 32,
			Code:    "b8 78 56 34 12",
			Intel:   "mov eax,12345678h",
			MASM:    "mov eax,12345678h",
			NASM:    "mov eax,12345678h",
			Gas:     "mov $0x12345678,%eax",
		},
		{
			Name:    "memory size keyword",
			Bitness: 32,
			Code:    "83 00 05",
			Intel:   "add dword ptr [eax],5",
			MASM:    "add dword ptr [eax],5",
			NASM:    "add dword [eax],5",
			Gas:     "addl $5,(%eax)",
		},
		{
			Name:    "segment override",
			Bitness: 32,
			Code:    "64 8b 00",
			Intel:   "mov eax,fs:[eax]",
			MASM:    "mov eax,fs:[eax]",
			NASM:    "mov eax,[fs:eax]",
			Gas:     "mov %fs:(%eax),%eax",
		},
		{
			Name:    "short branch",
			Bitness: 64,
			Code:    "eb 00",
			Intel:   "jmp 0000000000000002h",
			MASM:    "jmp short 0000000000000002h",
			NASM:    "jmp short 0000000000000002h",
			Gas:     "jmp 0x2",
		},
		{
			Name:    "pseudo-op",
			Bitness: 64,
			Code:    "0f c2 ca 00",
			Intel:   "cmpeqps xmm1,xmm2",
			MASM:    "cmpeqps xmm1,xmm2",
			NASM:    "cmpeqps xmm1,xmm2",
			Gas:     "cmpeqps %xmm2,%xmm1",
		},
		{
			Name:    "SSE4.1 immediate",
			Bitness: 64,
			Code:    "66 0f 3a 0e c1 05",
			Intel:   "pblendw xmm0,xmm1,5",
			MASM:    "pblendw xmm0,xmm1,5",
			NASM:    "pblendw xmm0,xmm1,5",
			Gas:     "pblendw $5,%xmm1,%xmm0",
		},
		{
			Name:    "SSE4.1 sign extension",
			Bitness: 64,
			Code:    "66 0f 38 20 c1",
			Intel:   "pmovsxbw xmm0,xmm1",
			MASM:    "pmovsxbw xmm0,xmm1",
			NASM:    "pmovsxbw xmm0,xmm1",
			Gas:     "pmovsxbw %xmm1,%xmm0",
		},
		{
			Name:    "SSE4.1 extract",
			Bitness: 32,
			Code:    "66 0f 3a 14 c8 03",
			Intel:   "pextrb eax,xmm1,3",
			MASM:    "pextrb eax,xmm1,3",
			NASM:    "pextrb eax,xmm1,3",
			Gas:     "pextrb $3,%xmm1,%eax",
		},
		{
			Name:    "SSE4.2 compare",
			Bitness: 64,
			Code:    "66 0f 38 37 c1",
			Intel:   "pcmpgtq xmm0,xmm1",
			MASM:    "pcmpgtq xmm0,xmm1",
			NASM:    "pcmpgtq xmm0,xmm1",
			Gas:     "pcmpgtq %xmm1,%xmm0",
		},
		{
			Name:    "AES round",
			Bitness: 64,
			Code:    "66 0f 38 dc c1",
			Intel:   "aesenc xmm0,xmm1",
			MASM:    "aesenc xmm0,xmm1",
			NASM:    "aesenc xmm0,xmm1",
			Gas:     "aesenc %xmm1,%xmm0",
		},
		{
			Name:    "SSSE3 MMX form",
			Bitness: 64,
			Code:    "0f 38 0b c1",
			Intel:   "pmulhrsw mm0,mm1",
			MASM:    "pmulhrsw mm0,mm1",
			NASM:    "pmulhrsw mm0,mm1",
			Gas:     "pmulhrsw %mm1,%mm0",
		},
		{
			Name:    "VEX carry-less multiply",
			Bitness: 64,
			Code:    "c4 e3 71 44 c2 05",
			Intel:   "vpclmulqdq xmm0,xmm1,xmm2,5",
			MASM:    "vpclmulqdq xmm0,xmm1,xmm2,5",
			NASM:    "vpclmulqdq xmm0,xmm1,xmm2,5",
			Gas:     "vpclmulqdq $5,%xmm2,%xmm1,%xmm0",
		},
		{
			Name:    "VEX zero extension",
			Bitness: 64,
			Code:    "c4 e2 7d 30 c1",
			Intel:   "vpmovzxbw ymm0,xmm1",
			MASM:    "vpmovzxbw ymm0,xmm1",
			NASM:    "vpmovzxbw ymm0,xmm1",
			Gas:     "vpmovzxbw %xmm1,%ymm0",
		},
		{
			Name:    "EVEX integer minimum",
			Bitness: 64,
			Code:    "62 f2 75 48 39 c2",
			Intel:   "vpminsd zmm0,zmm1,zmm2",
			MASM:    "vpminsd zmm0,zmm1,zmm2",
			NASM:    "vpminsd zmm0,zmm1,zmm2",
			Gas:     "vpminsd %zmm2,%zmm1,%zmm0",
		},
		{
			Name:    "EVEX compare into mask",
			Bitness: 64,
			Code:    "62 f2 f5 49 29 c2",
			Intel:   "vpcmpeqq k0{k1},zmm1,zmm2",
			MASM:    "vpcmpeqq k0{k1},zmm1,zmm2",
			NASM:    "vpcmpeqq k0{k1},zmm1,zmm2",
			Gas:     "vpcmpeqq %zmm2,%zmm1,%k0{%k1}",
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			inst := decodeOne(t, test.Bitness, test.Code)
			for _, want := range []struct {
				syntax Syntax
				text   string
			}{
				{Intel, test.Intel},
				{MASM, test.MASM},
				{NASM, test.NASM},
				{Gas, test.Gas},
			} {
				f := New(want.syntax)
				got := f.FormatToString(&inst)
				if got != want.text {
					t.Errorf("%s: got %q, want %q", want.syntax, got, want.text)
				}
			}
		})
	}
}

func TestFormatOptions(t *testing.T) {
	tests := []struct {
		Name    string
		Syntax  Syntax
		Bitness int
		Code    string
		Options func(*Options)
		Want    string
	}{
		{
			Name:    "no pseudo-ops",
			Syntax:  Intel,
			Bitness: 64,
			Code:    "0f c2 ca 00",
			Options: func(o *Options) { o.UsePseudoOps = false },
			Want:    "cmpps xmm1,xmm2,0",
		},
		{
			Name:    "gas no pseudo-ops",
			Syntax:  Gas,
			Bitness: 64,
			Code:    "0f c2 ca 00",
			Options: func(o *Options) { o.UsePseudoOps = false },
			Want:    "cmpps $0,%xmm2,%xmm1",
		},
		{
			Name:    "uppercase",
			Syntax:  Intel,
			Bitness: 64,
			Code:    "48 8b 8a a5 5a a5 5a",
			Options: func(o *Options) { o.UppercaseAll = true },
			Want:    "MOV RCX,[RDX+5AA55AA5h]",
		},
		{
			Name:    "operand separator space",
			Syntax:  Intel,
			Bitness: 64,
			Code:    "48 8b 8a a5 5a a5 5a",
			Options: func(o *Options) { o.SpaceAfterOperandSeparator = true },
			Want:    "mov rcx, [rdx+5AA55AA5h]",
		},
		{
			Name:    "memory operator spaces",
			Syntax:  Intel,
			Bitness: 64,
			Code:    "48 8b 8a a5 5a a5 5a",
			Options: func(o *Options) {
				o.SpaceBetweenMemoryAddOperators = true
				o.SpaceAfterMemoryBracket = true
			},
			Want: "mov rcx,[ rdx + 5AA55AA5h ]",
		},
		{
			Name:    "operand column",
			Syntax:  Intel,
			Bitness: 64,
			Code:    "48 8b 8a a5 5a a5 5a",
			Options: func(o *Options) { o.FirstOperandCharIndex = 8 },
			Want:    "mov     rcx,[rdx+5AA55AA5h]",
		},
		{
			Name:    "always show memory size",
			Syntax:  Intel,
			Bitness: 64,
			Code:    "48 8b 8a a5 5a a5 5a",
			Options: func(o *Options) { o.MemorySizeOptions = MemorySizeAlways },
			Want:    "mov rcx,qword ptr [rdx+5AA55AA5h]",
		},
		{
			Name:    "nasm always show memory size",
			Syntax:  NASM,
			Bitness: 64,
			Code:    "48 8b 8a a5 5a a5 5a",
			Options: func(o *Options) { o.MemorySizeOptions = MemorySizeAlways },
			Want:    "mov rcx,qword [rdx+5AA55AA5h]",
		},
		{
			Name:    "never show memory size",
			Syntax:  Intel,
			Bitness: 32,
			Code:    "83 00 05",
			Options: func(o *Options) { o.MemorySizeOptions = MemorySizeNever },
			Want:    "add [eax],5",
		},
		{
			Name:    "gas size suffix",
			Syntax:  Gas,
			Bitness: 64,
			Code:    "48 8b 8a a5 5a a5 5a",
			Options: func(o *Options) { o.GasShowMnemonicSizeSuffix = true },
			Want:    "movq 0x5AA55AA5(%rdx),%rcx",
		},
		{
			Name:    "gas naked registers",
			Syntax:  Gas,
			Bitness: 64,
			Code:    "48 8b 8a a5 5a a5 5a",
			Options: func(o *Options) { o.GasNakedRegisters = true },
			Want:    "mov 0x5AA55AA5(rdx),rcx",
		},
		{
			Name:    "gas memory comma space",
			Syntax:  Gas,
			Bitness: 64,
			Code:    "0f 1f 84 00 00 00 00 00",
			Options: func(o *Options) { o.GasSpaceAfterMemoryOperandComma = true },
			Want:    "nopl (%rax, %rax)",
		},
		{
			Name:    "always show scale",
			Syntax:  Intel,
			Bitness: 64,
			Code:    "0f 1f 84 00 00 00 00 00",
			Options: func(o *Options) { o.AlwaysShowScale = true },
			Want:    "nop [rax+rax*1]",
		},
		{
			Name:    "scale before index",
			Syntax:  Intel,
			Bitness: 64,
			Code:    "0f 1f 84 00 00 00 00 00",
			Options: func(o *Options) {
				o.AlwaysShowScale = true
				o.ScaleBeforeIndex = true
			},
			Want: "nop [rax+1*rax]",
		},
		{
			Name:    "zero displacement",
			Syntax:  Intel,
			Bitness: 64,
			Code:    "0f 1f 84 00 00 00 00 00",
			Options: func(o *Options) { o.ShowZeroDisplacements = true },
			Want:    "nop [rax+rax+0]",
		},
		{
			Name:    "unsigned displacement",
			Syntax:  Intel,
			Bitness: 32,
			Code:    "8b 45 f8",
			Options: func(o *Options) { o.SignedMemoryDisplacements = false },
			Want:    "mov eax,[ebp+0FFFFFFF8h]",
		},
		{
			Name:    "decimal numbers",
			Syntax:  Intel,
			Bitness: 32,
			Code:    "b8 78 56 34 12",
			Options: func(o *Options) { o.NumberBase = Decimal },
			Want:    "mov eax,305419896",
		},
		{
			Name:    "digit separators",
			Syntax:  Intel,
			Bitness: 32,
			Code:    "b8 78 56 34 12",
			Options: func(o *Options) { o.DigitSeparator = "_" },
			Want:    "mov eax,1234_5678h",
		},
		{
			Name:    "no branch leading zeros",
			Syntax:  Intel,
			Bitness: 64,
			Code:    "e8 00 00 00 00",
			Options: func(o *Options) { o.BranchLeadingZeros = false },
			Want:    "call 5h",
		},
		{
			Name:    "condition code name",
			Syntax:  Intel,
			Bitness: 64,
			Code:    "74 00",
			Options: func(o *Options) {
				o.CCE = "z"
				o.BranchLeadingZeros = false
			},
			Want: "jz 2h",
		},
		{
			Name:    "always show segment",
			Syntax:  Intel,
			Bitness: 32,
			Code:    "8b 45 f8",
			Options: func(o *Options) { o.AlwaysShowSegmentRegister = true },
			Want:    "mov eax,ss:[ebp-8]",
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			inst := decodeOne(t, test.Bitness, test.Code)
			f := New(test.Syntax)
			test.Options(f.Options())
			if err := f.Options().Validate(); err != nil {
				t.Fatalf("Validate(): %v", err)
			}

			got := f.FormatToString(&inst)
			if got != test.Want {
				t.Fatalf("got %q, want %q", got, test.Want)
			}
		})
	}
}

func TestFormatListing(t *testing.T) {
	code := "" +
		"55" + // push rbp
		"48 89 e5" + // mov rbp,rsp
		"48 83 ec 10" + // sub rsp,10h
		"c7 45 fc 2a 00 00 00" + // mov dword ptr [rbp-4],2Ah
		"8b 45 fc" + // mov eax,[rbp-4]
		"c9" + // leave
		"c3" // ret
	data, err := hex.DecodeString(strings.ReplaceAll(code, " ", ""))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		Name   string
		Syntax Syntax
		Want   string
	}{
		{
			Name:   "intel",
			Syntax: Intel,
			Want: `push rbp
mov rbp,rsp
sub rsp,10h
mov dword ptr [rbp-4],2Ah
mov eax,[rbp-4]
leave
ret
`,
		},
		{
			Name:   "gas",
			Syntax: Gas,
			Want: `push %rbp
mov %rsp,%rbp
sub $0x10,%rsp
movl $0x2A,-4(%rbp)
mov -4(%rbp),%eax
leave
retq
`,
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			d, err := decoder.New(64, data, 0)
			if err != nil {
				t.Fatal(err)
			}

			f := New(test.Syntax)
			var out StringOutput
			for d.CanDecode() {
				inst := d.Decode()
				f.Format(&inst, &out)
				out.Write("\n", TextText)
			}

			got := out.String()
			if got != test.Want {
				t.Fatalf("listing mismatch:\n%s", diff.Format(got, test.Want))
			}
		})
	}
}

func TestFormatData(t *testing.T) {
	inst, err := x86.WithDeclareByte(0x90, 0xcc, 0x05)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		Syntax Syntax
		Want   string
	}{
		{Intel, "db 90h,0CCh,5"},
		{NASM, "db 90h,0CCh,5"},
		{Gas, ".byte 0x90,0xCC,5"},
	}

	for _, test := range tests {
		t.Run(test.Syntax.String(), func(t *testing.T) {
			f := New(test.Syntax)
			got := f.FormatToString(&inst)
			if got != test.Want {
				t.Fatalf("got %q, want %q", got, test.Want)
			}

			if n := f.OperandCount(&inst); n != 3 {
				t.Fatalf("OperandCount(): got %d, want 3", n)
			}

			if _, ok := f.InstructionOperand(&inst, 0); ok {
				t.Fatalf("InstructionOperand(0): got ok for a data element")
			}
		})
	}
}

func TestSymbols(t *testing.T) {
	call := "e8 00 00 00 00"
	tests := []struct {
		Name     string
		Syntax   Syntax
		Resolver SymbolResolver
		Options  func(*Options)
		Want     string
	}{
		{
			Name:     "exact",
			Syntax:   Intel,
			Resolver: SymbolMap{5: "main"},
			Want:     "call main",
		},
		{
			Name:     "gas exact",
			Syntax:   Gas,
			Resolver: SymbolMap{5: "main"},
			Want:     "callq main",
		},
		{
			Name:   "offset",
			Syntax: Intel,
			Resolver: SymbolResolverFunc(func(inst *x86.Instruction, operand, formatterOperand int, address uint64, addressSize int) (Symbol, bool) {
				return Symbol{Address: address - 1, Text: "start"}, true
			}),
			Want: "call start+1",
		},
		{
			Name:     "address",
			Syntax:   Intel,
			Resolver: SymbolMap{5: "main"},
			Options:  func(o *Options) { o.ShowSymbolAddress = true },
			Want:     "call main (0000000000000005h)",
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			inst := decodeOne(t, 64, call)
			f := New(test.Syntax)
			f.SetSymbolResolver(test.Resolver)
			if test.Options != nil {
				test.Options(f.Options())
			}

			got := f.FormatToString(&inst)
			if got != test.Want {
				t.Fatalf("got %q, want %q", got, test.Want)
			}
		})
	}
}

func TestSymbolsNeutral(t *testing.T) {
	// A resolver that finds nothing must
	// not change the output.
	codes := []struct {
		Bitness int
		Code    string
	}{
		{64, "62 f2 4f dd 72 50 01"},
		{64, "48 8b 8a a5 5a a5 5a"},
		{64, "e8 00 00 00 00"},
		{32, "b8 78 56 34 12"},
		{32, "a1 78 56 34 12"},
		{64, "8b 05 10 00 00 00"},
	}

	var calls int
	none := SymbolResolverFunc(func(inst *x86.Instruction, operand, formatterOperand int, address uint64, addressSize int) (Symbol, bool) {
		calls++
		return Symbol{}, false
	})

	for _, syntax := range []Syntax{Intel, MASM, NASM, Gas} {
		for _, code := range codes {
			inst := decodeOne(t, code.Bitness, code.Code)
			plain := New(syntax).FormatToString(&inst)
			f := New(syntax)
			f.SetSymbolResolver(none)
			got := f.FormatToString(&inst)
			if got != plain {
				t.Errorf("%s %s: got %q with resolver, want %q", syntax, code.Code, got, plain)
			}
		}
	}

	if calls == 0 {
		t.Errorf("resolver was never called")
	}
}

func TestRipRelative(t *testing.T) {
	// mov eax,[rip+10h] at ip 0, so the
	// target is 16h.
	tests := []struct {
		Name        string
		Syntax      Syntax
		RipRelative bool
		Want        string
	}{
		{"intel absolute", Intel, false, "mov eax,[16h]"},
		{"intel relative", Intel, true, "mov eax,[rip+10h]"},
		{"nasm absolute", NASM, false, "mov eax,[rel 16h]"},
		{"gas absolute", Gas, false, "mov 0x16(%rip),%eax"},
		{"gas relative", Gas, true, "mov 0x10(%rip),%eax"},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			inst := decodeOne(t, 64, "8b 05 10 00 00 00")
			f := New(test.Syntax)
			f.Options().RipRelativeAddresses = test.RipRelative
			got := f.FormatToString(&inst)
			if got != test.Want {
				t.Fatalf("got %q, want %q", got, test.Want)
			}
		})
	}
}

// tokenRecorder is a TokenOutput that
// records the tokens written.
type tokenRecorder struct {
	tokens []Token
}

func (r *tokenRecorder) Write(text string, kind TextKind) {
	r.tokens = append(r.tokens, Token{Text: text, Kind: kind, Operand: -1, FormatterOperand: -1})
}

func (r *tokenRecorder) WriteToken(inst *x86.Instruction, tok *Token) {
	r.tokens = append(r.tokens, *tok)
}

func TestTokenOutput(t *testing.T) {
	inst := decodeOne(t, 64, "48 8b 8a a5 5a a5 5a")
	var got tokenRecorder
	New(Intel).Format(&inst, &got)
	want := []Token{
		{Text: "mov", Kind: TextMnemonic, Operand: -1, FormatterOperand: -1},
		{Text: " ", Kind: TextText, Operand: -1, FormatterOperand: -1},
		{Text: "rcx", Kind: TextRegister, Operand: 0, FormatterOperand: 0, Register: x86.RCX},
		{Text: ",", Kind: TextPunctuation, Operand: -1, FormatterOperand: -1},
		{Text: "[", Kind: TextPunctuation, Operand: -1, FormatterOperand: -1},
		{Text: "rdx", Kind: TextRegister, Operand: 1, FormatterOperand: 1, Register: x86.RDX},
		{Text: "+", Kind: TextOperator, Operand: -1, FormatterOperand: -1},
		{Text: "5AA55AA5h", Kind: TextNumber, Operand: 1, FormatterOperand: 1, Value: 0x5aa55aa5},
		{Text: "]", Kind: TextPunctuation, Operand: -1, FormatterOperand: -1},
	}

	if diff := cmp.Diff(want, got.tokens); diff != "" {
		t.Fatalf("Format(): (-want, +got)\n%s", diff)
	}
}

func TestOperandMapping(t *testing.T) {
	inst := decodeOne(t, 64, "48 8b 8a a5 5a a5 5a")
	tests := []struct {
		Name   string
		Syntax Syntax
		Want   []int // Instruction operand for each formatter operand.
	}{
		{"intel", Intel, []int{0, 1}},
		{"gas", Gas, []int{1, 0}},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			f := New(test.Syntax)
			var got []int
			for i := 0; i < f.OperandCount(&inst); i++ {
				op, ok := f.InstructionOperand(&inst, i)
				if !ok {
					t.Fatalf("InstructionOperand(%d): not found", i)
				}

				back, ok := f.FormatterOperand(&inst, op)
				if !ok || back != i {
					t.Fatalf("FormatterOperand(%d): got %d, %v, want %d", op, back, ok, i)
				}

				got = append(got, op)
			}

			if diff := cmp.Diff(test.Want, got); diff != "" {
				t.Fatalf("operands: (-want, +got)\n%s", diff)
			}

			if err := f.FormatOperand(&inst, &StringOutput{}, 2); err == nil {
				t.Fatalf("FormatOperand(2): got nil error")
			}
		})
	}
}

func TestFormatParts(t *testing.T) {
	inst := decodeOne(t, 16, "f3 aa")
	f := New(Gas)

	var mnemonic StringOutput
	f.FormatMnemonic(&inst, &mnemonic, 0)
	var bare StringOutput
	f.FormatMnemonic(&inst, &bare, NoPrefixes)
	var operands StringOutput
	f.FormatAllOperands(&inst, &operands)
	var first StringOutput
	if err := f.FormatOperand(&inst, &first, 1); err != nil {
		t.Fatal(err)
	}

	got := []string{mnemonic.String(), bare.String(), operands.String(), first.String()}
	want := []string{"rep stosb", "stosb", "%al,%es:(%di)", "%es:(%di)"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("parts: (-want, +got)\n%s", diff)
	}
}

func TestOpAccess(t *testing.T) {
	tests := []struct {
		Name    string
		Bitness int
		Code    string
		Operand int
		Want    x86.OpAccess
		WantOK  bool
	}{
		{"immediate", 32, "b8 78 56 34 12", 1, x86.AccessRead, true},
		{"branch", 64, "e8 00 00 00 00", 0, x86.AccessRead, true},
		{"address only", 64, "0f 1f 84 00 00 00 00 00", 0, x86.AccessNoMemAccess, true},
		{"register", 64, "48 8b 8a a5 5a a5 5a", 0, x86.AccessNone, false},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			inst := decodeOne(t, test.Bitness, test.Code)
			got, ok := New(Intel).OpAccess(&inst, test.Operand)
			if got != test.Want || ok != test.WantOK {
				t.Fatalf("OpAccess(%d): got %v, %v, want %v, %v", test.Operand, got, ok, test.Want, test.WantOK)
			}
		})
	}
}

func TestParseSyntax(t *testing.T) {
	tests := []struct {
		Name    string
		Want    Syntax
		WantErr bool
	}{
		{"intel", Intel, false},
		{"MASM", MASM, false},
		{"nasm", NASM, false},
		{"gas", Gas, false},
		{"att", Gas, false},
		{"arm", 0, true},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			got, err := ParseSyntax(test.Name)
			if (err != nil) != test.WantErr {
				t.Fatalf("ParseSyntax(%q): got error %v, want error: %v", test.Name, err, test.WantErr)
			}

			if got != test.Want {
				t.Fatalf("ParseSyntax(%q): got %v, want %v", test.Name, got, test.Want)
			}
		})
	}
}
