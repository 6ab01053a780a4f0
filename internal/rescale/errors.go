// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rescale

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is checks.
var (
	// ErrMalformedNumericField means a value token is not a real number.
	ErrMalformedNumericField = errors.New("malformed numeric field")

	// ErrOrphanContinuation means a continuation line appeared before any
	// field assignment.
	ErrOrphanContinuation = errors.New("orphan continuation line")
)

// LineError locates a rescaling failure. It unwraps to one of the sentinels.
type LineError struct {
	Line    int    // 1-based line number
	Token   string // offending value token, if any
	Content string // line content without comment or terminator
	Err     error
}

func (e *LineError) Error() string {
	if e == nil {
		return ""
	}
	if e.Token != "" {
		return fmt.Sprintf("line %d: %s: %q", e.Line, e.Err, e.Token)
	}
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Err, e.Content)
}

func (e *LineError) Unwrap() error { return e.Err }
