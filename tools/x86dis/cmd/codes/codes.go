// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

// Package codes prints the instruction forms
// the decoder recognises.
package codes

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"firefly-os.dev/tools/x86dis/x86"
)

// Filter selects instruction forms. Empty
// fields match every form.
type Filter struct {
	Mnemonic string
	Encoding string
}

func (f *Filter) match(code x86.Code) bool {
	if f.Mnemonic != "" && !strings.EqualFold(f.Mnemonic, code.Mnemonic()) {
		return false
	}

	if f.Encoding != "" && !strings.EqualFold(f.Encoding, code.Encoding().String()) {
		return false
	}

	return true
}

// Command returns the codes command.
func Command() *cobra.Command {
	var filter Filter
	cmd := &cobra.Command{
		Use:   "codes [OPTIONS]",
		Short: "List the instruction forms",
		Long: `List each instruction form with its mnemonic, opcode,
encoding, operands and memory operand size.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Main(cmd.Context(), cmd.OutOrStdout(), filter)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&filter.Mnemonic, "mnemonic", "m", "", "Only list forms with this mnemonic.")
	flags.StringVarP(&filter.Encoding, "encoding", "e", "", "Only list forms with this encoding (legacy, vex, evex, xop, 3dnow or mvex).")

	return cmd
}

// Main prints the instruction forms that
// match the filter.
func Main(ctx context.Context, w io.Writer, filter Filter) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Code", "Mnemonic", "Opcode", "Encoding", "Operands", "Memory"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	var n int
	for i := 1; i < x86.NumCodes; i++ {
		code := x86.Code(i)
		if !filter.match(code) {
			continue
		}

		ops := make([]string, code.OpCount())
		for j := range ops {
			ops[j] = code.OpCodeOperandKind(j).String()
		}

		var mem string
		if size := code.MemorySize(); size != x86.MemorySizeUnknown {
			mem = size.String()
		}

		table.Append([]string{
			code.String(),
			code.Mnemonic(),
			code.OpCode().String(),
			code.Encoding().String(),
			strings.Join(ops, ", "),
			mem,
		})

		n++
	}

	if n == 0 {
		return fmt.Errorf("no instruction forms match mnemonic %q and encoding %q", filter.Mnemonic, filter.Encoding)
	}

	table.SetFooter([]string{"", "", "", "", "Forms", strconv.Itoa(n)})
	table.Render()
	logrus.WithField("forms", n).Debug("Listed instruction forms")

	return nil
}
