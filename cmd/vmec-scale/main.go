// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the vmec-scale CLI.
//
// Usage: vmec-scale <input_file> <B_scale> <R_scale> [output_file]
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pdiddy/vmec-scale/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is built in PersistentPreRunE and synced in PersistentPostRun.
var logger = zap.NewNop()

// rootCmd rescales one VMEC input file.
var rootCmd = &cobra.Command{
	Use:   "vmec-scale <input_file> <B_scale> <R_scale> [output_file]",
	Short: "Rescale a VMEC input namelist in size and field strength",
	Long: `vmec-scale rewrites a VMEC input file so the equilibrium is scaled in
size by R_scale and in magnetic field strength by B_scale.

Boundary and axis coefficients (RBC, ZBS, RBS, ZBC, RAXIS, ZAXIS) scale with R,
PHIEDGE with B*R^2, CURTOR with B*R, AC with B/R, and PRES_SCALE and AM with
B^2. All other lines, comments, and formatting are left untouched.

The output defaults to the input path with "_scaled" appended. With fewer than
three arguments the usage is printed and nothing is done.

An input file named like a subcommand (rules, batch, version) must be given
with a path, e.g. ./rules.`,
	Args:              cobra.ArbitraryArgs,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogger,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: runScale,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./vmec-scale.yaml or ~/.config/vmec-scale/vmec-scale.yaml)")
	rootCmd.PersistentFlags().String("output-suffix", types.DefaultOutputSuffix, "suffix appended to the input path when no output file is given")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log every rescaled line")

	rootCmd.Flags().Bool("stdout", false, "print the scaled file to stdout instead of writing it")
	rootCmd.Flags().Bool("changes", false, "list every rescaled line after writing")
	// Factors may be negative ("-1" flips the field), so everything after
	// the input file is positional.
	rootCmd.Flags().SetInterspersed(false)

	_ = viper.BindPFlag("output_suffix", rootCmd.PersistentFlags().Lookup("output-suffix"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("vmec-scale")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "vmec-scale"))
		}
	}
	viper.SetDefault("output_suffix", types.DefaultOutputSuffix)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig decodes the merged flag, file, and default settings.
func loadConfig() (types.Config, error) {
	var cfg types.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}

func setupLogger(cmd *cobra.Command, args []string) error {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if viper.GetBool("verbose") {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	l, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger = l
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
