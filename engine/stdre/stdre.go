// Package stdre adapts the standard library regexp package to the
// rematch engine boundary. It is the engine used by rematch.Compile.
//
// regexp guarantees linear-time matching, so the adapter never produces
// an ExecError: every search either matches or cleanly reports no match.
package stdre

import (
	"errors"
	"regexp"
	"regexp/syntax"
	"strings"

	"github.com/coregx/rematch/engine"
)

// New returns the stdlib-backed engine.
func New() engine.Engine {
	return stdEngine{}
}

type stdEngine struct{}

func (stdEngine) Compile(pattern string) (engine.Compiled, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, compileError(pattern, err)
	}
	return &compiled{re: re, pattern: pattern}, nil
}

// compileError converts a regexp compile failure into the boundary's
// *engine.CompileError, recovering the offending offset from the
// syntax.Error expression when possible.
func compileError(pattern string, err error) *engine.CompileError {
	ce := &engine.CompileError{Pattern: pattern, Offset: -1}
	var serr *syntax.Error
	if errors.As(err, &serr) {
		ce.Message = string(serr.Code)
		if serr.Expr != "" {
			if i := strings.Index(pattern, serr.Expr); i >= 0 {
				ce.Offset = i
			}
		}
		return ce
	}
	msg := strings.TrimPrefix(err.Error(), "error parsing regexp: ")
	if i := strings.LastIndex(msg, ": `"); i >= 0 {
		msg = msg[:i]
	}
	ce.Message = msg
	return ce
}

type compiled struct {
	re      *regexp.Regexp
	pattern string
}

// MatchAt searches the at: suffix of haystack and shifts the resulting
// offsets back to absolute positions. Anchors and word boundaries are
// evaluated relative to the suffix, matching the behavior of repeated
// stdlib searches over sliced input.
func (c *compiled) MatchAt(haystack []byte, at int) ([]int, error) {
	loc := c.re.FindSubmatchIndex(haystack[at:])
	if loc == nil {
		return nil, nil
	}
	caps := make([]int, len(loc))
	for i, v := range loc {
		if v < 0 {
			caps[i] = -1
		} else {
			caps[i] = v + at
		}
	}
	return caps, nil
}

func (c *compiled) NumSubexp() int {
	return c.re.NumSubexp()
}

func (c *compiled) SubexpNames() []string {
	return c.re.SubexpNames()
}

func (c *compiled) Pattern() string {
	return c.pattern
}

func (c *compiled) Close() error {
	return nil
}

// Substitute implements engine.Substituter with regexp's own Expand
// template grammar, which also resolves $name and ${name} references.
func (c *compiled) Substitute(haystack []byte, at int, template []byte, global bool) ([]byte, error) {
	out := append([]byte(nil), haystack[:at]...)
	last := at
	pos := at
	for pos <= len(haystack) {
		caps, err := c.MatchAt(haystack, pos)
		if err != nil {
			return nil, err
		}
		if caps == nil {
			break
		}
		out = append(out, haystack[last:caps[0]]...)
		out = c.re.Expand(out, template, haystack, caps)
		last = caps[1]
		if caps[1] == caps[0] {
			pos = caps[1] + 1
		} else {
			pos = caps[1]
		}
		if !global {
			break
		}
	}
	out = append(out, haystack[last:]...)
	return out, nil
}
