// Package engine defines the boundary between rematch and the regular
// expression engines that execute its patterns.
//
// rematch never matches text itself. It drives a Compiled handle produced
// by an Engine, and any engine that can report leftmost matches with
// capture offsets from a given start position can sit behind this
// boundary. The module ships three adapters:
//
//   - engine/stdre: the standard library regexp package (the default)
//   - engine/re2: wasilibs/go-re2 (RE2 semantics, linear-time matching)
//   - engine/literalset: Aho-Corasick automata over plain literal sets
//
// Example of swapping engines:
//
//	p, err := rematch.CompileWith(`\d+`, re2.New())
package engine

// Engine compiles pattern text into Compiled handles.
type Engine interface {
	// Compile compiles pattern. On invalid syntax it returns a
	// *CompileError.
	Compile(pattern string) (Compiled, error)
}

// Compiled is an immutable compiled-pattern handle.
//
// A Compiled must be safe for concurrent use: rematch shares one handle
// across every search session derived from the same pattern. Adapters for
// engines whose match primitive is not reentrant must serialize or clone
// internally.
type Compiled interface {
	// MatchAt runs the match primitive against haystack, looking for the
	// leftmost match starting at or after byte offset at.
	//
	// Callers guarantee 0 <= at <= len(haystack); at == len(haystack)
	// searches the empty suffix and must still be attempted (zero-width
	// patterns match there).
	//
	// On a match the returned capture vector holds 2*(1+NumSubexp())
	// byte offsets into haystack: pair k is the half-open span of group
	// k, with pair 0 the whole match. Groups that did not participate
	// hold -1 in both slots. The vector is freshly allocated on every
	// call; rematch takes ownership.
	//
	// A (nil, nil) return means no match, which is not an error. A
	// non-nil error (typically *ExecError) reports an abnormal engine
	// condition such as an internal match limit and must never be used
	// to signal ordinary no-match.
	MatchAt(haystack []byte, at int) ([]int, error)

	// NumSubexp returns the number of parenthesized subexpressions.
	NumSubexp() int

	// SubexpNames returns the subexpression names, indexed by group
	// number. Entry 0 is always "". Unnamed groups have "" entries; named
	// groups occupy their positional slot.
	SubexpNames() []string

	// Pattern returns the source text the handle was compiled from.
	// Handles compiled from equal source text by the same engine are
	// interchangeable.
	Pattern() string

	// Close releases engine-side resources held by the handle. The
	// handle must not be used afterwards. Pure-Go adapters may make this
	// a no-op.
	Close() error
}

// Substituter is implemented by Compiled handles whose engine provides a
// native substitution primitive with its own replacement-template grammar.
//
// The grammar is engine-defined and generally richer than the rematch
// template language (the stdre and re2 adapters support ${name} and $name
// references). Engines without a native primitive simply do not implement
// this interface; rematch surfaces that as ErrNoSubstitute.
type Substituter interface {
	// Substitute replaces matches of the pattern in haystack, starting
	// the search at byte offset at, expanding template for each match.
	// When global is false only the first match is replaced. Text outside
	// replaced spans is copied through unchanged. A template the engine's
	// grammar rejects yields a *SubstituteError.
	Substitute(haystack []byte, at int, template []byte, global bool) ([]byte, error)
}
