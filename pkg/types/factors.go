// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// Factors holds the two physical base factors a rescaling run is driven by.
// Every per-field scale factor is a product or ratio of these two.
type Factors struct {
	// R is the length factor (R_scale).
	R float64 `json:"r_scale" yaml:"r_scale"`

	// B is the magnetic-field factor (B_scale).
	B float64 `json:"b_scale" yaml:"b_scale"`
}

// Validate reports an error if either factor is zero.
func (f Factors) Validate() error {
	if f.R == 0 {
		return fmt.Errorf("R_scale must be non-zero")
	}
	if f.B == 0 {
		return fmt.Errorf("B_scale must be non-zero")
	}
	return nil
}

// Inverse returns the factors that undo f.
func (f Factors) Inverse() Factors {
	return Factors{R: 1 / f.R, B: 1 / f.B}
}
