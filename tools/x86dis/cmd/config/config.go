// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

// Package config loads formatter options from TOML or YAML files
// and prints the options in effect.
package config

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"firefly-os.dev/tools/x86dis/formatter"
)

// Format identifies an options file format.
type Format string

const (
	TOML Format = "toml"
	YAML Format = "yaml"
)

// FormatFor returns the file format implied
// by the file's extension.
func FormatFor(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}

	return "", fmt.Errorf("unknown options file type %q: want .toml, .yaml or .yml", filepath.Ext(name))
}

// Load reads formatter options from the named
// file over the existing values in opts, then
// checks the result.
func Load(name string, opts *formatter.Options) error {
	format, err := FormatFor(name)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(name)
	if err != nil {
		return fmt.Errorf("failed to read options: %w", err)
	}

	if err := Decode(data, format, opts); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}

	return nil
}

// Decode parses formatter options in the
// given format over the existing values in
// opts, then checks the result.
//
// Unknown TOML keys are logged and ignored.
// Unknown YAML keys are an error.
func Decode(data []byte, format Format, opts *formatter.Options) error {
	switch format {
	case TOML:
		md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(opts)
		if err != nil {
			return err
		}

		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, key := range undecoded {
				keys[i] = key.String()
			}

			sort.Strings(keys)
			logrus.WithField("keys", strings.Join(keys, ",")).Warn("Ignoring unknown formatter options")
		}
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(opts); err != nil && err != io.EOF {
			return err
		}
	default:
		return fmt.Errorf("unknown options format %q", format)
	}

	return opts.Validate()
}

// Encode writes the options in the given
// format.
func Encode(w io.Writer, format Format, opts *formatter.Options) error {
	switch format {
	case TOML:
		return toml.NewEncoder(w).Encode(opts)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(opts); err != nil {
			return err
		}

		return enc.Close()
	}

	return fmt.Errorf("unknown options format %q", format)
}

// Command returns the config command, which
// prints the options a syntax uses, after
// applying an optional options file.
func Command() *cobra.Command {
	var syntax, format string
	cmd := &cobra.Command{
		Use:   "config [OPTIONS] [FILE]",
		Short: "Print the formatter options in effect",
		Long: `Print the formatter options for a syntax, after applying any
options file given. The output can be edited and passed to
the disasm command with --config.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var file string
			if len(args) == 1 {
				file = args[0]
			}

			return Main(cmd.Context(), cmd.OutOrStdout(), syntax, Format(format), file)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&syntax, "syntax", "intel", "The assembly syntax (intel, masm, nasm or gas).")
	flags.StringVar(&format, "format", string(TOML), "The output format (toml or yaml).")

	return cmd
}

// Main prints the options for the named
// syntax, after applying the options file
// if one is given.
func Main(ctx context.Context, w io.Writer, syntax string, format Format, file string) error {
	s, err := formatter.ParseSyntax(syntax)
	if err != nil {
		return err
	}

	f := formatter.New(s)
	if file != "" {
		if err := Load(file, f.Options()); err != nil {
			return err
		}

		logrus.WithField("file", file).Debug("Loaded formatter options")
	}

	return Encode(w, format, f.Options())
}
