// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package namelist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "empty", in: "", want: nil},
		{name: "trailing newline", in: "a\nb\n", want: []string{"a\n", "b\n"}},
		{name: "no trailing newline", in: "a\nb", want: []string{"a\n", "b"}},
		{name: "crlf", in: "a\r\nb\r\n", want: []string{"a\r\n", "b\r\n"}},
		{name: "blank lines", in: "\n\n", want: []string{"\n", "\n"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitLines(tt.in))
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Line
	}{
		{
			name: "assignment with comment",
			raw:  "RAXIS = 1.0 ! axis\n",
			want: Line{Raw: "RAXIS = 1.0 ! axis\n", Content: "RAXIS = 1.0 ", Comment: " axis", HasComment: true, EOL: "\n"},
		},
		{
			name: "no comment, no terminator",
			raw:  "  1.0 2.0",
			want: Line{Raw: "  1.0 2.0", Content: "  1.0 2.0"},
		},
		{
			name: "crlf terminator",
			raw:  "&INDATA\r\n",
			want: Line{Raw: "&INDATA\r\n", Content: "&INDATA", EOL: "\r\n"},
		},
		{
			name: "empty comment",
			raw:  "NFP = 5 !\n",
			want: Line{Raw: "NFP = 5 !\n", Content: "NFP = 5 ", HasComment: true, EOL: "\n"},
		},
		{
			name: "only the first marker splits",
			raw:  "AM = 1 ! a ! b\n",
			want: Line{Raw: "AM = 1 ! a ! b\n", Content: "AM = 1 ", Comment: " a ! b", HasComment: true, EOL: "\n"},
		},
		{
			name: "marker inside quotes is not a comment",
			raw:  "PMASS_TYPE = 'power!series' ! profile\n",
			want: Line{Raw: "PMASS_TYPE = 'power!series' ! profile\n", Content: "PMASS_TYPE = 'power!series' ", Comment: " profile", HasComment: true, EOL: "\n"},
		},
		{
			name: "marker inside double quotes",
			raw:  `MGRID_FILE = "a!b"`,
			want: Line{Raw: `MGRID_FILE = "a!b"`, Content: `MGRID_FILE = "a!b"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.raw))
		})
	}
}

func TestKind(t *testing.T) {
	tests := []struct {
		raw  string
		want Kind
	}{
		{"\n", KindBlank},
		{"   \t\n", KindBlank},
		{"! a comment only\n", KindBlank},
		{"&INDATA\n", KindGroupOpen},
		{"  &indata\n", KindGroupOpen},
		{"/\n", KindGroupClose},
		{"  / ! end\n", KindGroupClose},
		{"RAXIS = 1.0\n", KindAssignment},
		{"rbc(0,0) = 1.0, zbs(0,0) = 0.0\n", KindAssignment},
		{"  1.0 2.0 3.0\n", KindContinuation},
		{"  1.0, 2.0, ! x = 3\n", KindContinuation},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.raw).Kind())
		})
	}
}

func TestLineKey(t *testing.T) {
	assert.Equal(t, "raxis_cc = 1.0", Parse("  RAXIS_CC = 1.0  ! c\n").Key())
}

func TestLineRender(t *testing.T) {
	assert.Equal(t, "X = 2 ! note\n", Parse("x = 1 ! note\n").Render("X = 2"))
	assert.Equal(t, "X = 2\r\n", Parse("x = 1\r\n").Render("X = 2"))
	assert.Equal(t, "X = 2", Parse("x = 1").Render("X = 2"))
	assert.Equal(t, "X = 2 !\n", Parse("x = 1 !\n").Render("X = 2"))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "continuation", KindContinuation.String())
	assert.Equal(t, "unknown", Kind(42).String())
}
