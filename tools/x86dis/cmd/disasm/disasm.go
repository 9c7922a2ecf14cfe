// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

// Package disasm decodes x86 machine code and prints a listing.
package disasm

import (
	"bytes"
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"firefly-os.dev/tools/x86dis/cmd/config"
	"firefly-os.dev/tools/x86dis/decoder"
	"firefly-os.dev/tools/x86dis/formatter"
	"firefly-os.dev/tools/x86dis/x86"
)

// Mode selects how instructions are
// printed.
type Mode uint8

const (
	ModeListing Mode = iota // Address, bytes and text.
	ModeText                // Text only.
	ModeTable               // A table with a header.
	ModeDump                // The decoded values in full.
)

// Config describes a disassembly.
type Config struct {
	Bitness  int
	IP       uint64
	Syntax   formatter.Syntax
	Decoder  decoder.Options
	Mode     Mode
	Options  string // Path to a formatter options file.
	Symbols  formatter.SymbolMap
	MaxBytes int // Bytes shown per listing line.
}

// Input is a named piece of machine code.
type Input struct {
	Name string
	Data []byte
}

// ParseHex parses machine code written in
// hexadecimal, ignoring whitespace and an
// optional 0x prefix on each group.
func ParseHex(s string) ([]byte, error) {
	var b strings.Builder
	for _, field := range strings.Fields(strings.ReplaceAll(s, ",", " ")) {
		field = strings.TrimPrefix(strings.TrimPrefix(field, "0x"), "0X")
		b.WriteString(field)
	}

	data, err := hex.DecodeString(b.String())
	if err != nil {
		return nil, fmt.Errorf("invalid machine code %q: %w", s, err)
	}

	return data, nil
}

// parseSymbols parses symbols of the form
// ADDRESS=NAME.
func parseSymbols(symbols map[string]string) (formatter.SymbolMap, error) {
	if len(symbols) == 0 {
		return nil, nil
	}

	m := make(formatter.SymbolMap, len(symbols))
	for addr, name := range symbols {
		v, err := strconv.ParseUint(addr, 0, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid symbol address %q: %w", addr, err)
		}

		m[v] = name
	}

	return m, nil
}

// optionsFlag collects decoder options
// given by name.
type optionsFlag struct {
	opts *decoder.Options
}

var _ pflag.Value = optionsFlag{}

func (f optionsFlag) String() string {
	if f.opts == nil {
		return decoder.Options(0).String()
	}

	return f.opts.String()
}

func (f optionsFlag) Set(s string) error {
	for _, name := range strings.Split(s, ",") {
		opt, err := decoder.ParseOption(strings.TrimSpace(name))
		if err != nil {
			return err
		}

		*f.opts |= opt
	}

	return nil
}

func (f optionsFlag) Type() string { return "options" }

// Command returns the disasm command.
func Command() *cobra.Command {
	var (
		cfg       Config
		syntax    string
		hexInputs []string
		symbols   map[string]string
		text      bool
		table     bool
		dump      bool
	)

	cmd := &cobra.Command{
		Use:   "disasm [OPTIONS] [FILE...]",
		Short: "Decode machine code and print a listing",
		Long: `Decode machine code from files or hexadecimal strings and
print each instruction in the chosen assembly syntax.

Files are decoded concurrently and printed in the order given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg.Syntax, err = formatter.ParseSyntax(syntax)
			if err != nil {
				return err
			}

			cfg.Symbols, err = parseSymbols(symbols)
			if err != nil {
				return err
			}

			switch {
			case dump:
				cfg.Mode = ModeDump
			case table:
				cfg.Mode = ModeTable
			case text:
				cfg.Mode = ModeText
			}

			var inputs []Input
			for i, s := range hexInputs {
				data, err := ParseHex(s)
				if err != nil {
					return err
				}

				inputs = append(inputs, Input{Name: fmt.Sprintf("hex%d", i+1), Data: data})
			}

			for _, name := range args {
				data, err := os.ReadFile(name)
				if err != nil {
					return fmt.Errorf("failed to read machine code: %w", err)
				}

				inputs = append(inputs, Input{Name: name, Data: data})
			}

			if len(inputs) == 0 {
				return fmt.Errorf("no machine code: pass files or --hex")
			}

			return Main(cmd.Context(), cmd.OutOrStdout(), &cfg, inputs)
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&cfg.Bitness, "bitness", "b", 64, "The CPU mode: 16, 32 or 64.")
	flags.Uint64Var(&cfg.IP, "ip", 0, "The address of the first instruction.")
	flags.StringVarP(&syntax, "syntax", "s", "intel", "The assembly syntax (intel, masm, nasm or gas).")
	flags.Var(optionsFlag{&cfg.Decoder}, "decoder-option", "Decoder options to enable, such as AMD or MPX.")
	flags.StringArrayVarP(&hexInputs, "hex", "x", nil, "Machine code in hexadecimal, such as \"48 8b 8a a5 5a a5 5a\".")
	flags.StringVar(&cfg.Options, "config", "", "A TOML or YAML file of formatter options.")
	flags.StringToStringVar(&symbols, "symbol", nil, "A symbol for an address, as ADDRESS=NAME.")
	flags.IntVar(&cfg.MaxBytes, "max-bytes", 10, "The number of instruction bytes shown per line.")
	flags.BoolVar(&text, "text", false, "Print only the instruction text.")
	flags.BoolVar(&table, "table", false, "Print the listing as a table.")
	flags.BoolVar(&dump, "dump", false, "Print each decoded instruction in full.")
	cmd.MarkFlagsMutuallyExclusive("text", "table", "dump")

	return cmd
}

// Main disassembles each input, printing
// the results in order.
func Main(ctx context.Context, w io.Writer, cfg *Config, inputs []Input) error {
	// Check the configuration once, before
	// starting any work.
	if _, err := newFormatter(cfg); err != nil {
		return err
	}

	if _, err := decoder.New(cfg.Bitness, nil, cfg.Decoder); err != nil {
		return err
	}

	outputs := make([]bytes.Buffer, len(inputs))
	g, ctx := errgroup.WithContext(ctx)
	for i := range inputs {
		g.Go(func() error {
			return disassemble(ctx, &outputs[i], cfg, &inputs[i])
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	for i := range outputs {
		if len(inputs) > 1 {
			if i > 0 {
				fmt.Fprintln(w)
			}

			fmt.Fprintf(w, "%s:\n", inputs[i].Name)
		}

		if _, err := outputs[i].WriteTo(w); err != nil {
			return err
		}
	}

	return nil
}

// newFormatter returns a formatter for the
// configuration. Each goroutine has its own
// formatter.
func newFormatter(cfg *Config) (*formatter.Formatter, error) {
	f := formatter.New(cfg.Syntax)
	if cfg.Options != "" {
		if err := config.Load(cfg.Options, f.Options()); err != nil {
			return nil, err
		}
	}

	if cfg.Symbols != nil {
		f.SetSymbolResolver(cfg.Symbols)
	}

	return f, nil
}

// disassemble decodes one input.
func disassemble(ctx context.Context, w io.Writer, cfg *Config, input *Input) error {
	f, err := newFormatter(cfg)
	if err != nil {
		return err
	}

	d, err := decoder.New(cfg.Bitness, input.Data, cfg.Decoder)
	if err != nil {
		return err
	}

	d.SetIP(cfg.IP)
	log := logrus.WithField("input", input.Name)
	log.WithField("bytes", len(input.Data)).Debug("Disassembling")

	var table *tablewriter.Table
	if cfg.Mode == ModeTable {
		table = tablewriter.NewWriter(w)
		table.SetHeader([]string{"Address", "Bytes", "Instruction"})
		table.SetAutoWrapText(false)
		table.SetAutoFormatHeaders(false)
		table.SetAlignment(tablewriter.ALIGN_LEFT)
	}

	dumper := spew.ConfigState{Indent: "\t", DisablePointerAddresses: true, SortKeys: true}
	var out formatter.StringOutput
	var count, invalid int
	for d.CanDecode() {
		if err := ctx.Err(); err != nil {
			return err
		}

		offset := d.Position()
		inst := d.Decode()
		count++
		if inst.IsInvalid() {
			invalid++
			log.WithFields(logrus.Fields{
				"offset": offset,
				"error":  d.LastError(),
			}).Debug("Invalid instruction")
		}

		code := input.Data[offset : offset+inst.Len()]
		out.Reset()
		f.Format(&inst, &out)
		switch cfg.Mode {
		case ModeListing:
			writeListing(w, cfg, &inst, code, out.String())
		case ModeText:
			fmt.Fprintln(w, out.String())
		case ModeTable:
			table.Append([]string{address(cfg.Bitness, inst.IP()), hexBytes(code), out.String()})
		case ModeDump:
			fmt.Fprintf(w, "%s %s\n", address(cfg.Bitness, inst.IP()), out.String())
			dumper.Fdump(w, inst)
		}
	}

	if table != nil {
		table.Render()
	}

	log.WithFields(logrus.Fields{
		"instructions": count,
		"invalid":      invalid,
	}).Debug("Disassembled")

	return nil
}

// address formats an instruction address
// with one digit per nibble of the mode.
func address(bitness int, ip uint64) string {
	return fmt.Sprintf("%0*X", bitness/4, ip)
}

func hexBytes(code []byte) string {
	return strings.ToUpper(hex.EncodeToString(code))
}

// writeListing writes one listing line.
// Long instructions continue their bytes
// on the following lines.
func writeListing(w io.Writer, cfg *Config, inst *x86.Instruction, code []byte, text string) {
	per := cfg.MaxBytes
	if per <= 0 {
		per = len(code)
	}

	first := code[:min(per, len(code))]
	fmt.Fprintf(w, "%s %-*s %s\n", address(cfg.Bitness, inst.IP()), 2*per, hexBytes(first), text)
	for rest := code[len(first):]; len(rest) > 0; {
		n := min(per, len(rest))
		fmt.Fprintf(w, "%*s %s\n", cfg.Bitness/4, "", hexBytes(rest[:n]))
		rest = rest[n:]
	}
}
