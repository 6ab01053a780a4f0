// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rescale

import (
	"fmt"
	"strconv"
	"strings"
)

// valueFormat renders a value as sign-or-space, one mantissa digit, 15
// fractional digits and a two-digit-minimum exponent, e.g.
// " 2.000000000000000e+00".
const valueFormat = "% .15e"

// FormatValue renders v in the fixed scientific format used for every
// rewritten value.
func FormatValue(v float64) string {
	return fmt.Sprintf(valueFormat, v)
}

var fortranExponent = strings.NewReplacer("d", "e", "D", "E")

// ParseValue parses one value token. A single trailing comma is dropped and
// Fortran double-precision exponents ("1.5d-3") are accepted.
func ParseValue(tok string) (float64, error) {
	s := strings.TrimSuffix(strings.TrimSpace(tok), ",")
	v, err := strconv.ParseFloat(fortranExponent.Replace(s), 64)
	if err != nil {
		return 0, &LineError{Token: tok, Err: ErrMalformedNumericField}
	}
	return v, nil
}

// splitValues splits a value list on whitespace and commas.
func splitValues(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
}

// scaleValues parses, scales, and formats every token.
func scaleValues(tokens []string, factor float64) ([]string, error) {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		v, err := ParseValue(tok)
		if err != nil {
			return nil, err
		}
		out[i] = FormatValue(v * factor)
	}
	return out, nil
}
