// Package re2 adapts github.com/wasilibs/go-re2 to the rematch engine
// boundary.
//
// go-re2 exposes the stdlib regexp API over Google's RE2 compiled to
// WebAssembly, so matching is linear-time in the haystack even for
// patterns that backtracking engines handle pathologically. The supported
// syntax is RE2's; patterns relying on backreferences or lookaround will
// fail to compile.
package re2

import (
	"strings"

	re2 "github.com/wasilibs/go-re2"

	"github.com/coregx/rematch/engine"
)

// New returns the go-re2-backed engine.
func New() engine.Engine {
	return re2Engine{}
}

type re2Engine struct{}

func (re2Engine) Compile(pattern string) (engine.Compiled, error) {
	re, err := re2.Compile(pattern)
	if err != nil {
		return nil, compileError(pattern, err)
	}
	return &compiled{re: re, pattern: pattern}, nil
}

// compileError trims go-re2's stdlib-shaped diagnostic down to the bare
// message. RE2 does not report an error offset.
func compileError(pattern string, err error) *engine.CompileError {
	msg := strings.TrimPrefix(err.Error(), "error parsing regexp: ")
	if i := strings.LastIndex(msg, ": `"); i >= 0 {
		msg = msg[:i]
	}
	return &engine.CompileError{Pattern: pattern, Offset: -1, Message: msg}
}

type compiled struct {
	re      *re2.Regexp
	pattern string
}

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

// Substitute implements engine.Substituter with go-re2's Expand template
// grammar ($name and ${name} references included).
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
