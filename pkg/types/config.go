// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// DefaultOutputSuffix is appended to the input path when no output path is given.
const DefaultOutputSuffix = "_scaled"

// Config holds CLI settings loaded from vmec-scale.yaml and flags.
type Config struct {
	// OutputSuffix is appended to the input path to form the default output path.
	OutputSuffix string `json:"output_suffix" yaml:"output_suffix" mapstructure:"output_suffix"`

	// Verbose enables debug logging of every rescaled field.
	Verbose bool `json:"verbose" yaml:"verbose" mapstructure:"verbose"`
}

// Suffix returns OutputSuffix, falling back to DefaultOutputSuffix.
func (c Config) Suffix() string {
	if c.OutputSuffix == "" {
		return DefaultOutputSuffix
	}
	return c.OutputSuffix
}

// Job is one entry of a batch job file: an input namelist, its factors,
// and an optional output path.
type Job struct {
	Input  string  `json:"input" yaml:"input"`
	Output string  `json:"output,omitempty" yaml:"output,omitempty"`
	BScale float64 `json:"b_scale" yaml:"b_scale"`
	RScale float64 `json:"r_scale" yaml:"r_scale"`
}

// Factors returns the job's base factors.
func (j Job) Factors() Factors {
	return Factors{R: j.RScale, B: j.BScale}
}

// JobStatus indicates the outcome of one batch job.
type JobStatus string

const (
	JobScaled JobStatus = "scaled"
	JobFailed JobStatus = "failed"
)
