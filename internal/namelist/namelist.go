// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package namelist splits VMEC input text into lines and classifies each
// line by its role in a Fortran namelist: blank, group open, group close,
// field assignment, or continuation of the previous assignment.
//
// Values are never interpreted here; see package rescale.
package namelist

import "strings"

const (
	// CommentMarker starts an inline comment outside quoted strings.
	CommentMarker = '!'
	// GroupOpen starts a namelist group (e.g. "&INDATA").
	GroupOpen = '&'
	// GroupClose ends a namelist group.
	GroupClose = '/'
)

// Kind is the role of a line within a namelist.
type Kind int

const (
	// KindBlank is an empty or comment-only line.
	KindBlank Kind = iota
	// KindGroupOpen starts with GroupOpen.
	KindGroupOpen
	// KindGroupClose starts with GroupClose.
	KindGroupClose
	// KindAssignment contains "=" and introduces a field.
	KindAssignment
	// KindContinuation holds more values for the previous assignment.
	KindContinuation
)

func (k Kind) String() string {
	switch k {
	case KindBlank:
		return "blank"
	case KindGroupOpen:
		return "group-open"
	case KindGroupClose:
		return "group-close"
	case KindAssignment:
		return "assignment"
	case KindContinuation:
		return "continuation"
	}
	return "unknown"
}

// Line is one line of namelist text split into its payload, inline comment,
// and line terminator.
type Line struct {
	// Raw is the original line including comment and terminator.
	Raw string

	// Content is the text before the comment marker, without terminator.
	Content string

	// Comment is the text after the comment marker, without terminator.
	Comment string

	// HasComment reports whether a comment marker was found, so that an
	// empty comment ("x = 1 !") is still reattached.
	HasComment bool

	// EOL is the line terminator: "\n", "\r\n", or "" for a final line
	// without one.
	EOL string
}

// SplitLines splits text into lines, keeping each line's terminator. A final
// line without a terminator is kept; empty text yields no lines.
func SplitLines(text string) []string {
	var lines []string
	for len(text) > 0 {
		i := strings.IndexByte(text, '\n')
		if i < 0 {
			lines = append(lines, text)
			break
		}
		lines = append(lines, text[:i+1])
		text = text[i+1:]
	}
	return lines
}

// Parse splits a raw line into content, comment, and terminator.
func Parse(raw string) Line {
	l := Line{Raw: raw}
	body := raw
	switch {
	case strings.HasSuffix(body, "\r\n"):
		l.EOL = "\r\n"
	case strings.HasSuffix(body, "\n"):
		l.EOL = "\n"
	}
	body = body[:len(body)-len(l.EOL)]

	if i := commentIndex(body); i >= 0 {
		l.Content = body[:i]
		l.Comment = body[i+1:]
		l.HasComment = true
	} else {
		l.Content = body
	}
	return l
}

// commentIndex returns the byte offset of the first comment marker that is
// not inside a quoted string, or -1.
func commentIndex(s string) int {
	var quote byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"':
			quote = c
		case c == CommentMarker:
			return i
		}
	}
	return -1
}

// Key returns the trimmed, lower-cased content used for classification and
// field-name matching.
func (l Line) Key() string {
	return strings.ToLower(strings.TrimSpace(l.Content))
}

// Kind classifies the line.
func (l Line) Kind() Kind {
	key := l.Key()
	switch {
	case key == "":
		return KindBlank
	case key[0] == GroupOpen:
		return KindGroupOpen
	case key[0] == GroupClose:
		return KindGroupClose
	case strings.Contains(key, "="):
		return KindAssignment
	}
	return KindContinuation
}

// Render returns body with the line's comment and terminator reattached.
// The comment follows a single space and the marker.
func (l Line) Render(body string) string {
	var b strings.Builder
	b.WriteString(body)
	if l.HasComment {
		b.WriteString(" ")
		b.WriteByte(CommentMarker)
		b.WriteString(l.Comment)
	}
	b.WriteString(l.EOL)
	return b.String()
}
