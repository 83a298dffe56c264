// Copyright (c) 2026 bdx Team
// bdx - number base converter
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/rasmusac/bdx/core/radix"
	"github.com/rasmusac/bdx/internal/i18n"
	"github.com/rasmusac/bdx/internal/logging"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// ErrInvalidInput is returned when at least one value could not be parsed.
var ErrInvalidInput = errors.New("invalid input")

const (
	outputText = "text"
	outputYAML = "yaml"
)

// Result is one converted value as printed by convert --output yaml.
type Result struct {
	Input       string `yaml:"input"`
	From        string `yaml:"from"`
	Decimal     string `yaml:"decimal"`
	Hexadecimal string `yaml:"hexadecimal"`
	Octal       string `yaml:"octal"`
	Binary      string `yaml:"binary"`
}

func newConvertCmd(a *app) *cobra.Command {
	var from, output string

	cmd := &cobra.Command{
		Use:   "convert [VALUE...]",
		Short: i18n.T("cli.convert.short"),
		Example: `  bdx convert 255
  bdx convert --from hex FF 7F
  seq 1 5 | bdx convert --output yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			base := from
			if base == "" {
				base = a.config.Base
			}
			r, err := radix.ParseRadix(base)
			if err != nil {
				return err
			}

			switch output {
			case outputText, outputYAML:
			default:
				return fmt.Errorf("unknown output format %q (want %s or %s)", output, outputText, outputYAML)
			}

			values := args
			if len(values) == 0 {
				values, err = readValues(cmd.InOrStdin())
				if err != nil {
					return err
				}
			}

			results, failed := convertAll(values, r, a.config.Prefixes, cmd.ErrOrStderr())
			if err := writeResults(cmd.OutOrStdout(), output, results); err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%w: %s", ErrInvalidInput, i18n.T("cli.convert.failed", failed, len(values)))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&from, "from", "f", "", "base of the input values (default: configured base)")
	cmd.Flags().StringVarP(&output, "output", "o", outputText, "output format (text, yaml)")
	return cmd
}

// readValues reads one value per line from in. An interactive terminal
// yields nothing, so a bare "bdx convert" does not block.
func readValues(in io.Reader) ([]string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return nil, nil
	}

	var values []string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			values = append(values, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return values, nil
}

// convertAll parses every value in base r. Values that do not parse are
// reported on errOut and counted, the rest is converted.
func convertAll(values []string, r radix.Radix, prefixes bool, errOut io.Writer) ([]Result, int) {
	results := make([]Result, 0, len(values))
	failed := 0
	for _, input := range values {
		v := radix.Parse(trimPrefix(input, r), r)
		if v.IsAbsent() {
			failed++
			logging.Debugf("convert: %q is not a %s value", input, r.Name())
			fmt.Fprintln(errOut, i18n.T("cli.convert.invalid", r.Short(), input))
			continue
		}
		c := radix.Convert(v)
		show := func(r radix.Radix) string {
			if prefixes {
				return radix.WithPrefix(c.In(r), r)
			}
			return c.In(r)
		}
		results = append(results, Result{
			Input:       input,
			From:        r.Short(),
			Decimal:     show(radix.Decimal),
			Hexadecimal: show(radix.Hexadecimal),
			Octal:       show(radix.Octal),
			Binary:      show(radix.Binary),
		})
	}
	return results, failed
}

// trimPrefix drops the base's own prefix ("0x" for hex) after an optional
// sign, so values copied from the TUI convert back.
func trimPrefix(input string, r radix.Radix) string {
	sign := ""
	if strings.HasPrefix(input, "-") || strings.HasPrefix(input, "+") {
		sign, input = input[:1], input[1:]
	}
	if len(input) > len(r.Prefix()) && strings.EqualFold(input[:len(r.Prefix())], r.Prefix()) {
		input = input[len(r.Prefix()):]
	}
	return sign + input
}

func writeResults(w io.Writer, output string, results []Result) error {
	if output == outputYAML {
		if len(results) == 0 {
			return nil
		}
		data, err := yaml.Marshal(results)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}

	for i, res := range results {
		if i > 0 {
			fmt.Fprintln(w)
		}
		for _, r := range radix.All() {
			fmt.Fprintf(w, "%-4s %s\n", r.Short(), res.in(r))
		}
	}
	return nil
}

func (res Result) in(r radix.Radix) string {
	switch r {
	case radix.Hexadecimal:
		return res.Hexadecimal
	case radix.Octal:
		return res.Octal
	case radix.Binary:
		return res.Binary
	}
	return res.Decimal
}
