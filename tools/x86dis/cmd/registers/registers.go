// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

// Package registers prints the x86 registers.
package registers

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"firefly-os.dev/tools/x86dis/x86"
)

// Command returns the registers command.
func Command() *cobra.Command {
	var class string
	cmd := &cobra.Command{
		Use:   "registers [OPTIONS]",
		Short: "List the x86 registers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Main(cmd.Context(), cmd.OutOrStdout(), class)
		},
	}

	cmd.Flags().StringVarP(&class, "type", "t", "", "Only list registers whose type contains this text, such as \"segment\".")

	return cmd
}

// Main prints each register whose type
// contains class.
func Main(ctx context.Context, w io.Writer, class string) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Name", "Type", "Number", "Size", "Full"})
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	var n int
	for i := 1; i < x86.NumRegisters; i++ {
		reg := x86.Register(i)
		typ := reg.Type().String()
		if class != "" && !strings.Contains(strings.ToLower(typ), strings.ToLower(class)) {
			continue
		}

		table.Append([]string{
			reg.String(),
			typ,
			strconv.Itoa(reg.Number()),
			strconv.Itoa(reg.Size()),
			reg.FullRegister().String(),
		})

		n++
	}

	if n == 0 {
		return fmt.Errorf("no registers have type %q", class)
	}

	table.Render()

	return nil
}
