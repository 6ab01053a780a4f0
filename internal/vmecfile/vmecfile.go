// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package vmecfile reads a VMEC input file, rescales it, and writes the
// result. The output file is only written once the whole input has been
// transformed, so a failed run never leaves a half-written file behind.
package vmecfile

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/pdiddy/vmec-scale/internal/namelist"
	"github.com/pdiddy/vmec-scale/internal/rescale"
	"github.com/pdiddy/vmec-scale/pkg/types"
)

// OutputPath returns output if set, otherwise input with suffix appended.
func OutputPath(input, output, suffix string) string {
	if output != "" {
		return output
	}
	if suffix == "" {
		suffix = types.DefaultOutputSuffix
	}
	return input + suffix
}

// Scaler runs rescaling jobs against the filesystem.
type Scaler struct {
	suffix string
	logger *zap.Logger
}

// NewScaler returns a Scaler using cfg's output suffix. A nil logger
// disables logging.
func NewScaler(cfg types.Config, logger *zap.Logger) *Scaler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scaler{suffix: cfg.Suffix(), logger: logger}
}

// Transform reads input and returns the rescaled result without writing
// anything.
func (s *Scaler) Transform(input string, f types.Factors) (rescale.Result, error) {
	if err := f.Validate(); err != nil {
		return rescale.Result{}, err
	}
	data, err := os.ReadFile(input)
	if err != nil {
		return rescale.Result{}, fmt.Errorf("reading input: %w", err)
	}
	res, err := rescale.Transform(namelist.SplitLines(string(data)), f,
		rescale.WithLogger(s.logger.With(zap.String("input", input))))
	if err != nil {
		return rescale.Result{}, fmt.Errorf("rescaling %s: %w", input, err)
	}
	return res, nil
}

// ScaleFile rescales input and writes the result to output (or the default
// output path). It returns the path written and the transformation result.
func (s *Scaler) ScaleFile(input, output string, f types.Factors) (string, rescale.Result, error) {
	res, err := s.Transform(input, f)
	if err != nil {
		return "", rescale.Result{}, err
	}
	out := OutputPath(input, output, s.suffix)
	if err := os.WriteFile(out, []byte(res.Text()), 0o644); err != nil {
		return "", rescale.Result{}, fmt.Errorf("writing output: %w", err)
	}
	s.logger.Info("wrote scaled file",
		zap.String("input", input),
		zap.String("output", out),
		zap.Int("lines", len(res.Lines)),
		zap.Int("rescaled", len(res.Changes)))
	return out, res, nil
}

// BatchResult holds the outcome of a batch run.
type BatchResult struct {
	Scaled int
	Failed int
}

// Total returns the number of jobs processed.
func (r BatchResult) Total() int {
	return r.Scaled + r.Failed
}

// HasFailures reports whether any job failed.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// ScaleJob runs one job, printing its status to w.
func (s *Scaler) ScaleJob(job types.Job, w io.Writer) types.JobStatus {
	out, res, err := s.ScaleFile(job.Input, job.Output, job.Factors())
	if err != nil {
		fmt.Fprintf(w, "failed: %s (%v)\n", job.Input, err)
		return types.JobFailed
	}
	fmt.Fprintf(w, "scaled: %s -> %s (%d lines, %d rescaled)\n",
		job.Input, out, len(res.Lines), len(res.Changes))
	return types.JobScaled
}

// ScaleBatch runs every job in order. A failed job does not stop the
// remaining ones.
func (s *Scaler) ScaleBatch(jobs []types.Job, w io.Writer) BatchResult {
	var result BatchResult
	for _, j := range jobs {
		switch s.ScaleJob(j, w) {
		case types.JobScaled:
			result.Scaled++
		case types.JobFailed:
			result.Failed++
		}
	}
	fmt.Fprintf(w, "\nBatch summary: %d scaled, %d failed (total: %d)\n",
		result.Scaled, result.Failed, result.Total())
	return result
}
