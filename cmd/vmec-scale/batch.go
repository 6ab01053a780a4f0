// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/vmec-scale/internal/vmecfile"
)

var batchCmd = &cobra.Command{
	Use:   "batch <jobs.yaml>",
	Short: "Rescale several VMEC input files listed in a YAML job file",
	Long: `Batch reads a YAML job file listing input files with their B_scale,
R_scale, and optional output path, and rescales each one. A defaults block
supplies factors a job leaves out. Relative paths are resolved against the
job file's directory.

A failed job is reported and skipped; the command fails if any job failed.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	jobs, err := vmecfile.ReadJobFile(args[0])
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	result := vmecfile.NewScaler(cfg, logger).ScaleBatch(jobs, cmd.OutOrStdout())
	if result.HasFailures() {
		return fmt.Errorf("%d job(s) failed", result.Failed)
	}
	return nil
}
