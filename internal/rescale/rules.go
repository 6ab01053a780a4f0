// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rescale

import (
	"strings"

	"github.com/pdiddy/vmec-scale/pkg/types"
)

// Style selects how an assignment line's values are re-rendered.
type Style int

const (
	// StylePassThrough leaves the line untouched.
	StylePassThrough Style = iota
	// StyleArray is "key = v1 v2 v3 ...".
	StyleArray
	// StyleMultiArray is "key1 = v1, key2 = v2, ...", as used for the
	// boundary Fourier coefficients RBC(n,m), ZBS(n,m), etc.
	StyleMultiArray
)

func (s Style) String() string {
	switch s {
	case StyleArray:
		return "array"
	case StyleMultiArray:
		return "multi-array"
	}
	return "pass-through"
}

// Rule maps field-name prefixes to a scale factor and a rendering style.
type Rule struct {
	// Prefixes are matched case-insensitively against the start of the
	// trimmed line.
	Prefixes []string

	// Formula is the factor in terms of R and B, for display.
	Formula string

	Style Style

	// Factor derives the per-field scale factor from the base factors.
	Factor func(types.Factors) float64
}

// Name returns the rule's prefixes joined with "/".
func (r Rule) Name() string {
	if len(r.Prefixes) == 0 {
		return "(none)"
	}
	return strings.Join(r.Prefixes, "/")
}

func length(f types.Factors) float64      { return f.R }
func flux(f types.Factors) float64        { return f.B * f.R * f.R }
func pressure(f types.Factors) float64    { return f.B * f.B }
func current(f types.Factors) float64     { return f.B * f.R }
func currentDens(f types.Factors) float64 { return f.B / f.R }
func unity(types.Factors) float64         { return 1 }

// Rules is the ordered rule table. The first rule with a matching prefix
// wins, so "acfoo" matches "ac" and "raxis_cs" matches "raxis".
var Rules = []Rule{
	{Prefixes: []string{"rbc", "zbs", "rbs", "zbc"}, Formula: "R", Style: StyleMultiArray, Factor: length},
	{Prefixes: []string{"raxis_cc"}, Formula: "R", Style: StyleArray, Factor: length},
	{Prefixes: []string{"raxis"}, Formula: "R", Style: StyleArray, Factor: length},
	{Prefixes: []string{"zaxis_cc"}, Formula: "R", Style: StyleArray, Factor: length},
	{Prefixes: []string{"zaxis"}, Formula: "R", Style: StyleArray, Factor: length},
	{Prefixes: []string{"phiedge"}, Formula: "B*R^2", Style: StyleArray, Factor: flux},
	{Prefixes: []string{"pres_scale"}, Formula: "B^2", Style: StyleArray, Factor: pressure},
	{Prefixes: []string{"curtor"}, Formula: "B*R", Style: StyleArray, Factor: current},
	{Prefixes: []string{"ac"}, Formula: "B/R", Style: StyleArray, Factor: currentDens},
	{Prefixes: []string{"am"}, Formula: "B^2", Style: StyleArray, Factor: pressure},
}

// Identity is the rule for assignments that match nothing in Rules.
var Identity = Rule{Formula: "1", Style: StylePassThrough, Factor: unity}

// Match returns the first rule whose prefix starts key, or Identity.
// key must already be trimmed and lower-cased.
func Match(key string) Rule {
	for _, r := range Rules {
		for _, p := range r.Prefixes {
			if strings.HasPrefix(key, p) {
				return r
			}
		}
	}
	return Identity
}
