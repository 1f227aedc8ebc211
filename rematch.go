// Package rematch provides match iteration, capture extraction and
// replacement templating over pluggable regular expression engines.
//
// rematch is the layer above a regex engine, not the engine itself:
// pattern compilation and the match primitive are delegated through the
// interfaces in the engine subpackage. On top of that primitive it builds
// the operations applications actually call:
//
//   - capture access per match (indexed, bulk, named)
//   - find-one / find-all (text, index pairs, capture arrays)
//   - split
//   - replace with $N templates, callbacks, or the engine's own
//     substitution grammar
//
// Basic usage:
//
//	p, err := rematch.Compile(`(\w+)@(\w+)\.(\w+)`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	out, err := p.ReplaceAllString("user@example.com", "$1 at $2 dot $3")
//	// out = "user at example dot com"
//
// Compile uses the standard library engine (engine/stdre). Other engines
// plug in through CompileWith:
//
//	p, err := rematch.CompileWith(`\d+`, re2.New())
//
// Every operation that drives the engine returns an error alongside its
// result. Absence of a match is never an error: single-match operations
// return a nil or empty result, bulk operations simply stop. Errors
// report abnormal conditions only (engine failures, invalid positions).
package rematch

import (
	"sync/atomic"

	"github.com/coregx/rematch/engine"
	"github.com/coregx/rematch/engine/stdre"
)

// Pattern is a compiled pattern bound to the engine that compiled it.
//
// A Pattern is safe for concurrent use, except for ResetStats. Each
// search operation owns its own cursor; no state is shared between
// concurrent searches on the same Pattern.
type Pattern struct {
	// stats MUST be the first field for proper 8-byte alignment of its
	// atomic uint64 counters on 32-bit platforms.
	stats Stats

	cp      engine.Compiled
	source  string
	names   []string
	ngroups int // capture slots including the whole match
}

// Compile compiles a pattern with the standard library engine.
//
// Syntax is whatever the engine accepts; for the default engine that is
// RE2 syntax as implemented by Go's regexp. An invalid pattern yields an
// *engine.CompileError.
//
// Example:
//
//	p, err := rematch.Compile(`\d{3}-\d{4}`)
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(pattern string) (*Pattern, error) {
	return CompileWith(pattern, stdre.New())
}

// CompileWith compiles a pattern with the given engine.
//
// Example:
//
//	p, err := rematch.CompileWith(`\d+`, re2.New())
func CompileWith(pattern string, eng engine.Engine) (*Pattern, error) {
	cp, err := eng.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return NewPattern(cp), nil
}

// MustCompile is Compile but panics on error. Useful for patterns known
// valid at program start.
//
// Example:
//
//	var emailPattern = rematch.MustCompile(`[a-z]+@[a-z]+\.[a-z]+`)
func MustCompile(pattern string) *Pattern {
	p, err := Compile(pattern)
	if err != nil {
		panic("rematch: Compile(`" + pattern + "`): " + err.Error())
	}
	return p
}

// NewPattern wraps an already compiled engine handle. This is how
// handles built outside the Engine.Compile path join the API, for
// example literal-set handles:
//
//	cp, err := literalset.Compile("foo", "bar", "baz")
//	p := rematch.NewPattern(cp)
func NewPattern(cp engine.Compiled) *Pattern {
	return &Pattern{
		cp:      cp,
		source:  cp.Pattern(),
		names:   cp.SubexpNames(),
		ngroups: cp.NumSubexp() + 1,
	}
}

// String returns the source text the pattern was compiled from.
func (p *Pattern) String() string {
	return p.source
}

// NumSubexp returns the number of parenthesized subexpressions.
func (p *Pattern) NumSubexp() int {
	return p.ngroups - 1
}

// SubexpNames returns the subexpression names, indexed by group number.
// Entry 0 is always the empty string. The returned slice is shared and
// must not be modified.
func (p *Pattern) SubexpNames() []string {
	return p.names
}

// SubexpIndex returns the group number of the first subexpression with
// the given name, or -1 if there is none.
func (p *Pattern) SubexpIndex(name string) int {
	if name == "" {
		return -1
	}
	for i, n := range p.names {
		if n == name {
			return i
		}
	}
	return -1
}

// Close releases engine-side resources held by the compiled pattern. The
// pattern must not be used afterwards. For pure-Go engines this is a
// no-op.
func (p *Pattern) Close() error {
	return p.cp.Close()
}

// Match reports whether b contains any match of the pattern.
//
// Example:
//
//	p := rematch.MustCompile(`\d+`)
//	ok, err := p.Match([]byte("hello 123"))
func (p *Pattern) Match(b []byte) (bool, error) {
	m, err := p.matchAt(b, 0)
	if err != nil {
		return false, err
	}
	return m != nil, nil
}

// MatchString reports whether s contains any match of the pattern.
func (p *Pattern) MatchString(s string) (bool, error) {
	return p.Match([]byte(s))
}

// FindMatch returns the leftmost match in b as a Match record, or nil if
// there is none.
func (p *Pattern) FindMatch(b []byte) (*Match, error) {
	return p.matchAt(b, 0)
}

// FindMatchString returns the leftmost match in s as a Match record, or
// nil if there is none.
func (p *Pattern) FindMatchString(s string) (*Match, error) {
	return p.matchAt([]byte(s), 0)
}

// FindMatchAt returns the leftmost match in b starting at or after byte
// offset pos, or nil if there is none.
//
// pos == len(b) is legal and searches the empty suffix; zero-width
// patterns match there. Positions outside [0, len(b)] yield a
// *PositionError.
func (p *Pattern) FindMatchAt(b []byte, pos int) (*Match, error) {
	if pos < 0 || pos > len(b) {
		return nil, &PositionError{Pos: pos, Len: len(b)}
	}
	return p.matchAt(b, pos)
}

// matchAt invokes the engine primitive and wraps a successful capture
// vector into a Match. Callers must have validated at.
func (p *Pattern) matchAt(src []byte, at int) (*Match, error) {
	atomic.AddUint64(&p.stats.MatchCalls, 1)
	caps, err := p.cp.MatchAt(src, at)
	if err != nil {
		atomic.AddUint64(&p.stats.EngineErrors, 1)
		return nil, err
	}
	if caps == nil {
		return nil, nil
	}
	atomic.AddUint64(&p.stats.Matches, 1)
	return &Match{subject: src, caps: caps, names: p.names}, nil
}

// QuoteMeta returns a string that escapes all regular expression
// metacharacters inside the argument text; the returned string is a
// pattern matching the literal text.
//
// Example:
//
//	escaped := rematch.QuoteMeta("hello.world")
//	// escaped = "hello\\.world"
func QuoteMeta(s string) string {
	const special = `\.+*?()|[]{}^$`

	n := 0
	for i := 0; i < len(s); i++ {
		if isSpecial(s[i], special) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	buf := make([]byte, len(s)+n)
	j := 0
	for i := 0; i < len(s); i++ {
		if isSpecial(s[i], special) {
			buf[j] = '\\'
			j++
		}
		buf[j] = s[i]
		j++
	}
	return string(buf)
}

func isSpecial(c byte, special string) bool {
	for i := 0; i < len(special); i++ {
		if c == special[i] {
			return true
		}
	}
	return false
}
