// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rescale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{2, " 2.000000000000000e+00"},
		{-12.5, "-1.250000000000000e+01"},
		{0, " 0.000000000000000e+00"},
		{0.001, " 1.000000000000000e-03"},
		{1e-100, " 1.000000000000000e-100"},
		{123456.789, " 1.234567890000000e+05"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatValue(tt.in))
		})
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		tok  string
		want float64
	}{
		{"1.0", 1},
		{"1.0,", 1},
		{"-2.5E+01", -25},
		{"3", 3},
		{"1.5d-3", 0.0015},
		{"2.0D+02", 200},
		{".5", 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.tok, func(t *testing.T) {
			got, err := ParseValue(tt.tok)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-15)
		})
	}
}

func TestParseValue_Malformed(t *testing.T) {
	for _, tok := range []string{"abc", "1.0.0", "'text'", "T", ","} {
		t.Run(tok, func(t *testing.T) {
			_, err := ParseValue(tok)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedNumericField)

			var le *LineError
			require.ErrorAs(t, err, &le)
			assert.Equal(t, tok, le.Token)
		})
	}
}

func TestSplitValues(t *testing.T) {
	assert.Equal(t, []string{"1.0", "2.0", "3"}, splitValues(" 1.0, 2.0,\t3 "))
	assert.Empty(t, splitValues(" , "))
}
