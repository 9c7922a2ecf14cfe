// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package formatter

import (
	"errors"
	"fmt"
	"strings"

	"firefly-os.dev/tools/x86dis/x86"
)

// MemorySizeOptions controls when memory
// operands are printed with a size
// keyword, such as "dword ptr".
type MemorySizeOptions uint8

const (
	// MemorySizeDefault shows the size if
	// it cannot be inferred from a register
	// operand of the same size.
	MemorySizeDefault MemorySizeOptions = iota

	// MemorySizeMinimal shows the size only
	// if there are no register operands.
	MemorySizeMinimal

	// MemorySizeAlways always shows the size.
	MemorySizeAlways

	// MemorySizeNever never shows the size.
	MemorySizeNever
)

var memorySizeOptionNames = [...]string{
	MemorySizeDefault: "default",
	MemorySizeMinimal: "minimal",
	MemorySizeAlways:  "always",
	MemorySizeNever:   "never",
}

func (o MemorySizeOptions) String() string {
	if int(o) < len(memorySizeOptionNames) {
		return memorySizeOptionNames[o]
	}

	return fmt.Sprintf("MemorySizeOptions(%d)", o)
}

// MarshalText returns the option's name.
func (o MemorySizeOptions) MarshalText() ([]byte, error) {
	if int(o) >= len(memorySizeOptionNames) {
		return nil, fmt.Errorf("invalid memory size option %d", o)
	}

	return []byte(memorySizeOptionNames[o]), nil
}

// UnmarshalText parses an option's name.
func (o *MemorySizeOptions) UnmarshalText(text []byte) error {
	name := strings.ToLower(string(text))
	for opt, s := range memorySizeOptionNames {
		if name == s {
			*o = MemorySizeOptions(opt)
			return nil
		}
	}

	return fmt.Errorf("invalid memory size option %q", text)
}

// Options controls the text produced by
// a Formatter. Each syntax starts with
// its own defaults, which can then be
// changed with Formatter.Options.
type Options struct {
	UppercasePrefixes   bool `toml:"uppercase_prefixes" yaml:"uppercase_prefixes"`
	UppercaseMnemonics  bool `toml:"uppercase_mnemonics" yaml:"uppercase_mnemonics"`
	UppercaseRegisters  bool `toml:"uppercase_registers" yaml:"uppercase_registers"`
	UppercaseKeywords   bool `toml:"uppercase_keywords" yaml:"uppercase_keywords"`
	UppercaseDecorators bool `toml:"uppercase_decorators" yaml:"uppercase_decorators"`
	UppercaseAll        bool `toml:"uppercase_all" yaml:"uppercase_all"`

	// FirstOperandCharIndex is the column
	// where the first operand starts. If
	// zero, a single space separates the
	// mnemonic from the operands. If
	// TabSize is non-zero, tabs are used
	// to reach the column.
	FirstOperandCharIndex int `toml:"first_operand_char_index" yaml:"first_operand_char_index"`
	TabSize               int `toml:"tab_size" yaml:"tab_size"`

	SpaceAfterOperandSeparator     bool `toml:"space_after_operand_separator" yaml:"space_after_operand_separator"`
	SpaceAfterMemoryBracket        bool `toml:"space_after_memory_bracket" yaml:"space_after_memory_bracket"`
	SpaceBetweenMemoryAddOperators bool `toml:"space_between_memory_add_operators" yaml:"space_between_memory_add_operators"`
	SpaceBetweenMemoryMulOperators bool `toml:"space_between_memory_mul_operators" yaml:"space_between_memory_mul_operators"`
	ScaleBeforeIndex               bool `toml:"scale_before_index" yaml:"scale_before_index"`
	AlwaysShowScale                bool `toml:"always_show_scale" yaml:"always_show_scale"`
	AlwaysShowSegmentRegister      bool `toml:"always_show_segment_register" yaml:"always_show_segment_register"`
	ShowZeroDisplacements          bool `toml:"show_zero_displacements" yaml:"show_zero_displacements"`

	HexPrefix             string `toml:"hex_prefix" yaml:"hex_prefix"`
	HexSuffix             string `toml:"hex_suffix" yaml:"hex_suffix"`
	HexDigitGroupSize     int    `toml:"hex_digit_group_size" yaml:"hex_digit_group_size"`
	DecimalPrefix         string `toml:"decimal_prefix" yaml:"decimal_prefix"`
	DecimalSuffix         string `toml:"decimal_suffix" yaml:"decimal_suffix"`
	DecimalDigitGroupSize int    `toml:"decimal_digit_group_size" yaml:"decimal_digit_group_size"`
	OctalPrefix           string `toml:"octal_prefix" yaml:"octal_prefix"`
	OctalSuffix           string `toml:"octal_suffix" yaml:"octal_suffix"`
	OctalDigitGroupSize   int    `toml:"octal_digit_group_size" yaml:"octal_digit_group_size"`
	BinaryPrefix          string `toml:"binary_prefix" yaml:"binary_prefix"`
	BinarySuffix          string `toml:"binary_suffix" yaml:"binary_suffix"`
	BinaryDigitGroupSize  int    `toml:"binary_digit_group_size" yaml:"binary_digit_group_size"`
	DigitSeparator        string `toml:"digit_separator" yaml:"digit_separator"`

	NumberBase                 NumberBase `toml:"number_base" yaml:"number_base"`
	LeadingZeros               bool       `toml:"leading_zeros" yaml:"leading_zeros"`
	UppercaseHex               bool       `toml:"uppercase_hex" yaml:"uppercase_hex"`
	SmallHexNumbersInDecimal   bool       `toml:"small_hex_numbers_in_decimal" yaml:"small_hex_numbers_in_decimal"`
	AddLeadingZeroToHexNumbers bool       `toml:"add_leading_zero_to_hex_numbers" yaml:"add_leading_zero_to_hex_numbers"`
	BranchLeadingZeros         bool       `toml:"branch_leading_zeros" yaml:"branch_leading_zeros"`
	SignedImmediateOperands    bool       `toml:"signed_immediate_operands" yaml:"signed_immediate_operands"`
	SignedMemoryDisplacements  bool       `toml:"signed_memory_displacements" yaml:"signed_memory_displacements"`
	DisplacementLeadingZeros   bool       `toml:"displacement_leading_zeros" yaml:"displacement_leading_zeros"`

	MemorySizeOptions    MemorySizeOptions `toml:"memory_size_options" yaml:"memory_size_options"`
	RipRelativeAddresses bool              `toml:"rip_relative_addresses" yaml:"rip_relative_addresses"`
	ShowBranchSize       bool              `toml:"show_branch_size" yaml:"show_branch_size"`
	UsePseudoOps         bool              `toml:"use_pseudo_ops" yaml:"use_pseudo_ops"`
	ShowSymbolAddress    bool              `toml:"show_symbol_address" yaml:"show_symbol_address"`
	PreferST0            bool              `toml:"prefer_st0" yaml:"prefer_st0"`
	ShowUselessPrefixes  bool              `toml:"show_useless_prefixes" yaml:"show_useless_prefixes"`

	GasNakedRegisters                 bool `toml:"gas_naked_registers" yaml:"gas_naked_registers"`
	GasShowMnemonicSizeSuffix         bool `toml:"gas_show_mnemonic_size_suffix" yaml:"gas_show_mnemonic_size_suffix"`
	GasSpaceAfterMemoryOperandComma   bool `toml:"gas_space_after_memory_operand_comma" yaml:"gas_space_after_memory_operand_comma"`
	MasmAddDsPrefix32                 bool `toml:"masm_add_ds_prefix32" yaml:"masm_add_ds_prefix32"`
	MasmSymbolDisplInBrackets         bool `toml:"masm_symbol_displ_in_brackets" yaml:"masm_symbol_displ_in_brackets"`
	MasmDisplInBrackets               bool `toml:"masm_displ_in_brackets" yaml:"masm_displ_in_brackets"`
	NasmShowSignExtendedImmediateSize bool `toml:"nasm_show_sign_extended_immediate_size" yaml:"nasm_show_sign_extended_immediate_size"`

	// The condition code names preferred
	// in mnemonics, such as "c" or "nae"
	// instead of "b" in "jb". Empty names
	// select the first alternative.
	CCB  string `toml:"cc_b" yaml:"cc_b"`
	CCAE string `toml:"cc_ae" yaml:"cc_ae"`
	CCE  string `toml:"cc_e" yaml:"cc_e"`
	CCNE string `toml:"cc_ne" yaml:"cc_ne"`
	CCBE string `toml:"cc_be" yaml:"cc_be"`
	CCA  string `toml:"cc_a" yaml:"cc_a"`
	CCP  string `toml:"cc_p" yaml:"cc_p"`
	CCNP string `toml:"cc_np" yaml:"cc_np"`
	CCL  string `toml:"cc_l" yaml:"cc_l"`
	CCGE string `toml:"cc_ge" yaml:"cc_ge"`
	CCLE string `toml:"cc_le" yaml:"cc_le"`
	CCG  string `toml:"cc_g" yaml:"cc_g"`
}

// defaultOptions returns the options
// shared by the Intel-style syntaxes.
func defaultOptions() Options {
	return Options{
		HexSuffix:                  "h",
		HexDigitGroupSize:          4,
		DecimalDigitGroupSize:      3,
		OctalSuffix:                "o",
		OctalDigitGroupSize:        4,
		BinarySuffix:               "b",
		BinaryDigitGroupSize:       4,
		UppercaseHex:               true,
		SmallHexNumbersInDecimal:   true,
		AddLeadingZeroToHexNumbers: true,
		BranchLeadingZeros:         true,
		SignedMemoryDisplacements:  true,
		UsePseudoOps:               true,
		MasmAddDsPrefix32:          true,
		MasmSymbolDisplInBrackets:  true,
		MasmDisplInBrackets:        true,
	}
}

// conditionNames lists the names for each
// condition code with alternatives. The
// first name is the default.
var conditionNames = map[x86.ConditionCode][]string{
	x86.ConditionB:  {"b", "c", "nae"},
	x86.ConditionAE: {"ae", "nb", "nc"},
	x86.ConditionE:  {"e", "z"},
	x86.ConditionNE: {"ne", "nz"},
	x86.ConditionBE: {"be", "na"},
	x86.ConditionA:  {"a", "nbe"},
	x86.ConditionP:  {"p", "pe"},
	x86.ConditionNP: {"np", "po"},
	x86.ConditionL:  {"l", "nge"},
	x86.ConditionGE: {"ge", "nl"},
	x86.ConditionLE: {"le", "ng"},
	x86.ConditionG:  {"g", "nle"},
}

// conditionPreference returns the option
// selecting the name for cc.
func (o *Options) conditionPreference(cc x86.ConditionCode) (field string, value string) {
	switch cc {
	case x86.ConditionB:
		return "cc_b", o.CCB
	case x86.ConditionAE:
		return "cc_ae", o.CCAE
	case x86.ConditionE:
		return "cc_e", o.CCE
	case x86.ConditionNE:
		return "cc_ne", o.CCNE
	case x86.ConditionBE:
		return "cc_be", o.CCBE
	case x86.ConditionA:
		return "cc_a", o.CCA
	case x86.ConditionP:
		return "cc_p", o.CCP
	case x86.ConditionNP:
		return "cc_np", o.CCNP
	case x86.ConditionL:
		return "cc_l", o.CCL
	case x86.ConditionGE:
		return "cc_ge", o.CCGE
	case x86.ConditionLE:
		return "cc_le", o.CCLE
	case x86.ConditionG:
		return "cc_g", o.CCG
	}

	return "", ""
}

// conditionName returns the preferred
// name for cc.
func (o *Options) conditionName(cc x86.ConditionCode) string {
	names, ok := conditionNames[cc]
	if !ok {
		return cc.String()
	}

	_, want := o.conditionPreference(cc)
	want = strings.ToLower(want)
	for _, name := range names {
		if name == want {
			return name
		}
	}

	return names[0]
}

// Validate checks that the options have
// valid values.
func (o *Options) Validate() error {
	var errs []error
	if int(o.NumberBase) >= len(numberBaseNames) {
		errs = append(errs, fmt.Errorf("invalid number_base %d", o.NumberBase))
	}

	if int(o.MemorySizeOptions) >= len(memorySizeOptionNames) {
		errs = append(errs, fmt.Errorf("invalid memory_size_options %d", o.MemorySizeOptions))
	}

	for name, n := range map[string]int{
		"first_operand_char_index": o.FirstOperandCharIndex,
		"tab_size":                 o.TabSize,
		"hex_digit_group_size":     o.HexDigitGroupSize,
		"decimal_digit_group_size": o.DecimalDigitGroupSize,
		"octal_digit_group_size":   o.OctalDigitGroupSize,
		"binary_digit_group_size":  o.BinaryDigitGroupSize,
	} {
		if n < 0 {
			errs = append(errs, fmt.Errorf("invalid %s %d: must not be negative", name, n))
		}
	}

	for cc := x86.ConditionO; cc <= x86.ConditionG; cc++ {
		field, want := o.conditionPreference(cc)
		if field == "" || want == "" {
			continue
		}

		ok := false
		for _, name := range conditionNames[cc] {
			if strings.ToLower(want) == name {
				ok = true
				break
			}
		}

		if !ok {
			errs = append(errs, fmt.Errorf("invalid %s %q: must be one of %s", field, want, strings.Join(conditionNames[cc], ", ")))
		}
	}

	return errors.Join(errs...)
}

// numberKind identifies the kind of
// value a number represents, which
// selects the options used to print it.
type numberKind uint8

const (
	numberImmediate numberKind = iota
	numberDisplacement
	numberBranch
)

// numberOptions returns the options for
// printing a number of the given kind.
func (o *Options) numberOptions(kind numberKind) NumberOptions {
	opts := NumberOptions{
		Base:                       o.NumberBase,
		DigitSeparator:             o.DigitSeparator,
		UppercaseHex:               o.UppercaseHex || o.UppercaseAll,
		SmallHexNumbersInDecimal:   o.SmallHexNumbersInDecimal,
		AddLeadingZeroToHexNumbers: o.AddLeadingZeroToHexNumbers,
	}

	switch o.NumberBase {
	case Decimal:
		opts.Prefix, opts.Suffix, opts.DigitGroupSize = o.DecimalPrefix, o.DecimalSuffix, o.DecimalDigitGroupSize
	case Octal:
		opts.Prefix, opts.Suffix, opts.DigitGroupSize = o.OctalPrefix, o.OctalSuffix, o.OctalDigitGroupSize
	case Binary:
		opts.Prefix, opts.Suffix, opts.DigitGroupSize = o.BinaryPrefix, o.BinarySuffix, o.BinaryDigitGroupSize
	default:
		opts.Prefix, opts.Suffix, opts.DigitGroupSize = o.HexPrefix, o.HexSuffix, o.HexDigitGroupSize
	}

	switch kind {
	case numberImmediate:
		opts.LeadingZeros = o.LeadingZeros
		opts.Signed = o.SignedImmediateOperands
	case numberDisplacement:
		opts.LeadingZeros = o.DisplacementLeadingZeros
		opts.Signed = o.SignedMemoryDisplacements
	case numberBranch:
		// Addresses are never printed as
		// small decimal numbers.
		opts.LeadingZeros = o.BranchLeadingZeros
		opts.SmallHexNumbersInDecimal = false
	}

	return opts
}
