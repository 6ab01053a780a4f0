// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/vmec-scale/internal/rescale"
	"github.com/pdiddy/vmec-scale/pkg/types"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Print the field rule table and the factor each rule applies",
	Long: `Rules prints the ordered field-name rules used to pick a scale factor.
Prefixes are matched case-insensitively against the start of an assignment
line and the first matching rule wins. Fields that match no rule are left
unchanged.

With --b-scale and --r-scale the effective factor of each rule is shown.`,
	Args: cobra.NoArgs,
	RunE: runRules,
}

func init() {
	rulesCmd.Flags().Float64("b-scale", 1, "magnetic-field factor B_scale")
	rulesCmd.Flags().Float64("r-scale", 1, "length factor R_scale")
	rulesCmd.Flags().Bool("yaml", false, "output the table as YAML")

	rootCmd.AddCommand(rulesCmd)
}

// ruleRow is one printed rule.
type ruleRow struct {
	Prefixes []string `yaml:"prefixes"`
	Formula  string   `yaml:"formula"`
	Style    string   `yaml:"style"`
	Factor   float64  `yaml:"factor"`
}

func runRules(cmd *cobra.Command, args []string) error {
	b, _ := cmd.Flags().GetFloat64("b-scale")
	r, _ := cmd.Flags().GetFloat64("r-scale")
	f := types.Factors{R: r, B: b}
	if err := f.Validate(); err != nil {
		return err
	}

	rules := make([]rescale.Rule, 0, len(rescale.Rules)+1)
	rules = append(rules, rescale.Rules...)
	rules = append(rules, rescale.Identity)

	rows := make([]ruleRow, 0, len(rules))
	for _, rule := range rules {
		rows = append(rows, ruleRow{
			Prefixes: rule.Prefixes,
			Formula:  rule.Formula,
			Style:    rule.Style.String(),
			Factor:   rule.Factor(f),
		})
	}

	if asYAML, _ := cmd.Flags().GetBool("yaml"); asYAML {
		enc := yaml.NewEncoder(cmd.OutOrStdout())
		defer enc.Close()
		return enc.Encode(rows)
	}
	printRules(cmd.OutOrStdout(), rows)
	return nil
}

func printRules(w io.Writer, rows []ruleRow) {
	fmt.Fprintf(w, "%-4s  %-16s  %-8s  %-12s  %s\n", "#", "Prefix", "Formula", "Style", "Factor")
	fmt.Fprintln(w, strings.Repeat("-", 70))
	for i, row := range rows {
		prefix := strings.Join(row.Prefixes, "/")
		if prefix == "" {
			prefix = "(no match)"
		}
		fmt.Fprintf(w, "%-4d  %-16s  %-8s  %-12s  %s\n",
			i+1, prefix, row.Formula, row.Style, rescale.FormatValue(row.Factor))
	}
}
