// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package vmecfile

import (
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/vmec-scale/pkg/types"
)

// JobFile is the on-disk list of batch jobs.
//
//	defaults:
//	  b_scale: 2.0
//	  r_scale: 0.5
//	jobs:
//	  - input: input.w7x
//	  - input: input.ncsx
//	    output: input.ncsx_big
//	    r_scale: 3.0
type JobFile struct {
	Defaults JobDefaults `yaml:"defaults,omitempty"`
	Jobs     []types.Job `yaml:"jobs"`
}

// JobDefaults fills in factors a job leaves at zero.
type JobDefaults struct {
	BScale float64 `yaml:"b_scale,omitempty"`
	RScale float64 `yaml:"r_scale,omitempty"`
}

// ReadJobFile loads a job file. Relative input and output paths are resolved
// against the job file's directory, and defaults are applied.
func ReadJobFile(path string) ([]types.Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading job file: %w", err)
	}
	var jf JobFile
	if err := yaml.Unmarshal(data, &jf); err != nil {
		return nil, fmt.Errorf("parsing job file: %w", err)
	}
	if len(jf.Jobs) == 0 {
		return nil, fmt.Errorf("job file %s lists no jobs", path)
	}

	base := filepath.Dir(path)
	jobs := make([]types.Job, len(jf.Jobs))
	for i, j := range jf.Jobs {
		if j.Input == "" {
			return nil, fmt.Errorf("job %d: input is required", i+1)
		}
		if j.BScale == 0 {
			j.BScale = jf.Defaults.BScale
		}
		if j.RScale == 0 {
			j.RScale = jf.Defaults.RScale
		}
		if err := j.Factors().Validate(); err != nil {
			return nil, fmt.Errorf("job %d (%s): %w", i+1, j.Input, err)
		}
		j.Input = resolve(base, j.Input)
		if j.Output != "" {
			j.Output = resolve(base, j.Output)
		}
		jobs[i] = j
	}
	return jobs, nil
}

func resolve(base, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}
