// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFactorsValidate(t *testing.T) {
	assert.NoError(t, Factors{R: 2, B: -1}.Validate())
	assert.EqualError(t, Factors{R: 0, B: 1}.Validate(), "R_scale must be non-zero")
	assert.EqualError(t, Factors{R: 1, B: 0}.Validate(), "B_scale must be non-zero")
}

func TestFactorsInverse(t *testing.T) {
	assert.Equal(t, Factors{R: 0.5, B: 0.25}, Factors{R: 2, B: 4}.Inverse())
}

func TestConfigSuffix(t *testing.T) {
	assert.Equal(t, "_scaled", Config{}.Suffix())
	assert.Equal(t, ".big", Config{OutputSuffix: ".big"}.Suffix())
}

func TestJobFactors(t *testing.T) {
	assert.Equal(t, Factors{R: 3, B: 2}, Job{Input: "x", BScale: 2, RScale: 3}.Factors())
}
