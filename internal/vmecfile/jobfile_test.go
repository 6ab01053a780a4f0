// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package vmecfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/vmec-scale/pkg/types"
)

func writeJobFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jobs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadJobFile(t *testing.T) {
	path := writeJobFile(t, `
defaults:
  b_scale: 2.0
  r_scale: 0.5
jobs:
  - input: input.w7x
  - input: /abs/input.ncsx
    output: out/input.ncsx_big
    r_scale: 3.0
`)
	dir := filepath.Dir(path)

	jobs, err := ReadJobFile(path)
	require.NoError(t, err)
	assert.Equal(t, []types.Job{
		{Input: filepath.Join(dir, "input.w7x"), BScale: 2, RScale: 0.5},
		{Input: "/abs/input.ncsx", Output: filepath.Join(dir, "out", "input.ncsx_big"), BScale: 2, RScale: 3},
	}, jobs)
}

func TestReadJobFile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{name: "no jobs", content: "jobs: []\n", errMsg: "lists no jobs"},
		{name: "missing input", content: "jobs:\n  - b_scale: 1\n    r_scale: 1\n", errMsg: "input is required"},
		{name: "missing factor", content: "jobs:\n  - input: a\n    b_scale: 1\n", errMsg: "R_scale must be non-zero"},
		{name: "bad yaml", content: "jobs: [\n", errMsg: "parsing job file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadJobFile(writeJobFile(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestReadJobFile_Missing(t *testing.T) {
	_, err := ReadJobFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading job file")
}
