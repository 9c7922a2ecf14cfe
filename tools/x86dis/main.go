// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

// Command x86dis decodes x86 machine code and prints it
// in Intel, MASM, NASM or gas syntax.
package main

import (
	"context"
	"os"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"firefly-os.dev/tools/x86dis/cmd/codes"
	"firefly-os.dev/tools/x86dis/cmd/config"
	"firefly-os.dev/tools/x86dis/cmd/disasm"
	"firefly-os.dev/tools/x86dis/cmd/registers"
)

func init() {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
}

var (
	commandsNames = make([]string, 0, 4)
	commandsMap   = make(map[string]*cobra.Command)
)

func RegisterCommand(cmd *cobra.Command) {
	name := cmd.Name()
	if commandsMap[name] != nil {
		panic("command " + name + " already registered")
	}

	if cmd.RunE == nil {
		panic("command " + name + " registered with nil implementation")
	}

	commandsNames = append(commandsNames, name)
	commandsMap[name] = cmd
}

func init() {
	RegisterCommand(codes.Command())
	RegisterCommand(config.Command())
	RegisterCommand(disasm.Command())
	RegisterCommand(registers.Command())
}

// rootCommand returns the x86dis command,
// with each registered command beneath it.
func rootCommand() *cobra.Command {
	var level string
	root := &cobra.Command{
		Use:           "x86dis",
		Short:         "Disassemble x86 machine code",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := logrus.ParseLevel(level)
			if err != nil {
				return err
			}

			logrus.SetLevel(lvl)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&level, "log-level", logrus.InfoLevel.String(), "The minimum level of log messages to print.")

	sort.Strings(commandsNames)
	for _, name := range commandsNames {
		root.AddCommand(commandsMap[name])
	}

	return root
}

func main() {
	err := rootCommand().ExecuteContext(context.Background())
	if err != nil {
		logrus.Fatal(err)
	}
}
