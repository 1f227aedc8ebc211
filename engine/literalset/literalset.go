// Package literalset implements the rematch engine boundary over
// Aho-Corasick automata for sets of plain literal strings.
//
// For workloads that only ever match fixed strings, an automaton over the
// literal set beats compiling an alternation into a general engine: one
// O(n) pass finds the leftmost occurrence of any literal. Handles report
// a single capture group (the whole match) and no native substitution.
package literalset

import (
	"strings"

	"github.com/coregx/ahocorasick"

	"github.com/coregx/rematch/engine"
)

// New returns an engine whose Compile treats the entire pattern text as
// one literal string, matched verbatim.
func New() engine.Engine {
	return literalEngine{}
}

type literalEngine struct{}

func (literalEngine) Compile(pattern string) (engine.Compiled, error) {
	return Compile(pattern)
}

// Compile builds a handle matching any of the given literals, verbatim.
// The handle's source form is the literals joined with "|"; the literals
// themselves are not interpreted as regular expression syntax.
func Compile(literals ...string) (engine.Compiled, error) {
	pattern := strings.Join(literals, "|")
	builder := ahocorasick.NewBuilder()
	for _, lit := range literals {
		builder.AddPattern([]byte(lit))
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, &engine.CompileError{Pattern: pattern, Offset: -1, Message: err.Error()}
	}
	return &compiled{auto: auto, pattern: pattern}, nil
}

type compiled struct {
	auto    *ahocorasick.Automaton
	pattern string
}

func (c *compiled) MatchAt(haystack []byte, at int) ([]int, error) {
	if at >= len(haystack) {
		// Literals are non-empty; the empty suffix cannot match.
		return nil, nil
	}
	m := c.auto.Find(haystack, at)
	if m == nil {
		return nil, nil
	}
	return []int{m.Start, m.End}, nil
}

func (c *compiled) NumSubexp() int {
	return 0
}

func (c *compiled) SubexpNames() []string {
	return []string{""}
}

func (c *compiled) Pattern() string {
	return c.pattern
}

func (c *compiled) Close() error {
	return nil
}
