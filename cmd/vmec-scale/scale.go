// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/vmec-scale/internal/rescale"
	"github.com/pdiddy/vmec-scale/internal/vmecfile"
	"github.com/pdiddy/vmec-scale/pkg/types"
)

const usageLine = "Usage: vmec-scale <input_file> <B_scale> <R_scale> [output_file]"

func runScale(cmd *cobra.Command, args []string) error {
	if len(args) < 3 {
		fmt.Fprintln(cmd.OutOrStdout(), usageLine)
		return nil
	}

	input := args[0]
	f, err := parseFactors(args[1], args[2])
	if err != nil {
		return err
	}
	var output string
	if len(args) == 4 {
		output = args[3]
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "B_scale =%s R_scale =%s\n", formatFactor(f.B), formatFactor(f.R))

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	scaler := vmecfile.NewScaler(cfg, logger)

	if toStdout, _ := cmd.Flags().GetBool("stdout"); toStdout {
		res, err := scaler.Transform(input, f)
		if err != nil {
			return err
		}
		_, err = io.WriteString(cmd.OutOrStdout(), res.Text())
		return err
	}

	out, res, err := scaler.ScaleFile(input, output, f)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "scaled: %s -> %s (%d lines, %d rescaled)\n",
		input, out, len(res.Lines), len(res.Changes))

	if list, _ := cmd.Flags().GetBool("changes"); list {
		printChanges(cmd.OutOrStdout(), res.Changes)
	}
	return nil
}

// parseFactors parses the B_scale and R_scale arguments.
func parseFactors(bArg, rArg string) (types.Factors, error) {
	b, err := strconv.ParseFloat(bArg, 64)
	if err != nil {
		return types.Factors{}, fmt.Errorf("invalid B_scale %q: %w", bArg, err)
	}
	r, err := strconv.ParseFloat(rArg, 64)
	if err != nil {
		return types.Factors{}, fmt.Errorf("invalid R_scale %q: %w", rArg, err)
	}
	f := types.Factors{R: r, B: b}
	return f, f.Validate()
}

// formatFactor renders a factor the way the banner has always shown it:
// shortest round-trip digits, ".0" on integral values, and exponent form
// below 1e-4 or from 1e16 up.
func formatFactor(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	if a := math.Abs(v); a != 0 && (a < 1e-4 || a >= 1e16) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func printChanges(w io.Writer, changes []rescale.Change) {
	fmt.Fprintf(w, "%-6s  %-12s  %-20s  %-16s  %-24s  %s\n",
		"Line", "Kind", "Field", "Rule", "Factor", "Values")
	for _, c := range changes {
		field := c.Field
		if len(field) > 20 {
			field = field[:17] + "..."
		}
		fmt.Fprintf(w, "%-6d  %-12s  %-20s  %-16s  %-24s  %d\n",
			c.Line, c.Kind, field, c.Rule, rescale.FormatValue(c.Factor), c.Values)
	}
}
