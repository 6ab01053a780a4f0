// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package rescale rewrites the numeric payload of VMEC namelist lines so
// that an equilibrium is scaled in size by R and in field strength by B.
//
// Each assignment line is matched against the ordered rule table; matched
// values are multiplied by the rule's factor and re-rendered in a fixed
// scientific format. Continuation lines reuse the factor of the nearest
// preceding assignment, which is 1 when that assignment matched no rule.
// Blank lines, group markers, and unmatched assignments are passed through
// byte for byte.
package rescale

import (
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/vmec-scale/internal/namelist"
	"github.com/pdiddy/vmec-scale/pkg/types"
)

const (
	assign        = "="
	keySep        = " = "
	multiArraySep = ",      "
	valueSep      = " "
)

// Change records one rewritten line.
type Change struct {
	Line   int
	Kind   namelist.Kind
	Field  string
	Rule   string
	Factor float64
	Values int
}

// Result is the output of a transformation: one output line per input
// line, plus a record of the lines that were rewritten.
type Result struct {
	Lines   []string
	Changes []Change
}

// Text joins the output lines.
func (r Result) Text() string {
	return strings.Join(r.Lines, "")
}

// Option configures Transform.
type Option func(*options)

type options struct {
	logger *zap.Logger
}

// WithLogger logs each rewritten line at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// carry is the context an assignment hands to the continuation lines after it.
type carry struct {
	set    bool
	field  string
	rule   Rule
	factor float64
}

// Transform rescales lines, each of which carries its own terminator as
// returned by namelist.SplitLines. It fails on the first malformed value or
// orphan continuation line; no partial result is returned.
func Transform(lines []string, f types.Factors, opts ...Option) (Result, error) {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	res := Result{Lines: make([]string, 0, len(lines))}
	var state carry
	for i, raw := range lines {
		out, next, change, err := transformLine(namelist.Parse(raw), f, state)
		if err != nil {
			var le *LineError
			if errors.As(err, &le) {
				le.Line = i + 1
			}
			return Result{}, err
		}
		state = next
		res.Lines = append(res.Lines, out)
		if change != nil {
			change.Line = i + 1
			o.logger.Debug("rescaled line",
				zap.Int("line", change.Line),
				zap.Stringer("kind", change.Kind),
				zap.String("field", change.Field),
				zap.String("rule", change.Rule),
				zap.Float64("factor", change.Factor),
				zap.Int("values", change.Values))
			res.Changes = append(res.Changes, *change)
		}
	}
	return res, nil
}

// transformLine handles a single line given the carried state and returns
// the output line, the state for the next line, and a change record when
// the line was rewritten.
func transformLine(l namelist.Line, f types.Factors, state carry) (string, carry, *Change, error) {
	switch l.Kind() {
	case namelist.KindBlank, namelist.KindGroupOpen, namelist.KindGroupClose:
		return l.Raw, state, nil, nil

	case namelist.KindAssignment:
		rule := Match(l.Key())
		field, _, _ := strings.Cut(l.Content, assign)
		next := carry{set: true, field: strings.TrimSpace(field), rule: rule, factor: rule.Factor(f)}

		var body string
		var n int
		var err error
		switch rule.Style {
		case StyleArray:
			body, n, err = rescaleArray(l.Content, next.factor)
		case StyleMultiArray:
			body, n, err = rescaleMultiArray(l.Content, next.factor)
		default:
			return l.Raw, next, nil, nil
		}
		if err != nil {
			return "", state, nil, withContent(err, l.Content)
		}
		return l.Render(body), next, &Change{
			Kind:   namelist.KindAssignment,
			Field:  next.field,
			Rule:   rule.Name(),
			Factor: next.factor,
			Values: n,
		}, nil
	}

	if !state.set {
		return "", state, nil, &LineError{Content: l.Content, Err: ErrOrphanContinuation}
	}
	tokens := splitValues(l.Content)
	if len(tokens) == 0 {
		return l.Raw, state, nil, nil
	}
	vals, err := scaleValues(tokens, state.factor)
	if err != nil {
		return "", state, nil, withContent(err, l.Content)
	}
	return l.Render(strings.Join(vals, valueSep)), state, &Change{
		Kind:   namelist.KindContinuation,
		Field:  state.field,
		Rule:   state.rule.Name(),
		Factor: state.factor,
		Values: len(vals),
	}, nil
}

// rescaleArray rewrites "key = v1 v2 ..." as "key = " followed by the scaled
// values. Leading indentation of the key is kept.
func rescaleArray(content string, factor float64) (string, int, error) {
	key, values, _ := strings.Cut(content, assign)
	vals, err := scaleValues(splitValues(values), factor)
	if err != nil {
		return "", 0, err
	}
	return strings.TrimRight(key, " \t") + keySep + strings.Join(vals, valueSep), len(vals), nil
}

// rescaleMultiArray rewrites "k1 = v1, k2 = v2, ..." pair by pair. Every
// segment between two "=" holds the previous key's value followed by the
// next key.
func rescaleMultiArray(content string, factor float64) (string, int, error) {
	segs := strings.Split(content, assign)
	keys := []string{strings.TrimRight(segs[0], " \t")}
	var tokens []string
	for _, seg := range segs[1 : len(segs)-1] {
		seg = strings.TrimLeft(seg, " \t")
		i := strings.IndexAny(seg, ", \t")
		if i < 0 {
			return "", 0, &LineError{Token: seg, Err: ErrMalformedNumericField}
		}
		key := strings.TrimSpace(strings.TrimLeft(seg[i:], ", \t"))
		if key == "" {
			return "", 0, &LineError{Token: seg, Err: ErrMalformedNumericField}
		}
		tokens = append(tokens, seg[:i])
		keys = append(keys, key)
	}
	tokens = append(tokens, strings.TrimSpace(segs[len(segs)-1]))

	vals, err := scaleValues(tokens, factor)
	if err != nil {
		return "", 0, err
	}
	pairs := make([]string, len(keys))
	for i, k := range keys {
		pairs[i] = k + keySep + vals[i]
	}
	return strings.Join(pairs, multiArraySep), len(vals), nil
}

func withContent(err error, content string) error {
	var le *LineError
	if errors.As(err, &le) {
		le.Content = content
	}
	return err
}
