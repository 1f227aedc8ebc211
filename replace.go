package rematch

import "github.com/coregx/rematch/engine"

// appendReplace is the shared replace loop: for each of up to n matches
// it copies the gap since the previous match and lets expand append the
// replacement, then copies the trailing slice. Zero matches reproduce
// src unchanged (as a fresh buffer).
func (p *Pattern) appendReplace(src []byte, n int, expand func(dst []byte, m *Match) []byte) ([]byte, error) {
	var out []byte
	last := 0
	err := p.scan(src, n, func(m *Match) {
		out = append(out, src[last:m.Start()]...)
		out = expand(out, m)
		last = m.End()
	})
	if err != nil {
		return nil, err
	}
	return append(out, src[last:]...), nil
}

// ReplaceN returns a copy of src with up to n matches of the pattern
// replaced by the expansion of template against each match's captures
// (see Expand for the grammar). n < 0 replaces every match; n == 0
// returns src unchanged; n beyond the number of matches behaves like
// unbounded.
func (p *Pattern) ReplaceN(src, template []byte, n int) ([]byte, error) {
	return p.appendReplace(src, n, func(dst []byte, m *Match) []byte {
		return m.Expand(dst, template)
	})
}

// ReplaceAll returns a copy of src with every match of the pattern
// replaced by the expansion of template. Inside template, $0 is the
// whole match, $1 the first capture group, and so on; $$ is a literal $.
//
// Example:
//
//	p := rematch.MustCompile(`(\w+)@(\w+)\.(\w+)`)
//	out, err := p.ReplaceAll([]byte("user@example.com"), []byte("$1 at $2 dot $3"))
//	// out = []byte("user at example dot com")
func (p *Pattern) ReplaceAll(src, template []byte) ([]byte, error) {
	return p.ReplaceN(src, template, -1)
}

// ReplaceAllString is ReplaceAll over string subject and template.
func (p *Pattern) ReplaceAllString(src, template string) (string, error) {
	out, err := p.ReplaceN([]byte(src), []byte(template), -1)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// ReplaceFirst returns a copy of src with the leftmost match replaced by
// the expansion of template. With no match, src is returned unchanged.
func (p *Pattern) ReplaceFirst(src, template []byte) ([]byte, error) {
	return p.ReplaceN(src, template, 1)
}

// ReplaceFirstString is ReplaceFirst over string subject and template.
func (p *Pattern) ReplaceFirstString(src, template string) (string, error) {
	out, err := p.ReplaceN([]byte(src), []byte(template), 1)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// ReplaceAllLiteral returns a copy of src with every match replaced by
// repl verbatim, with no template scanning.
//
// Example:
//
//	p := rematch.MustCompile(`\d+`)
//	out, err := p.ReplaceAllLiteral([]byte("age: 42"), []byte("$0"))
//	// out = []byte("age: $0")
func (p *Pattern) ReplaceAllLiteral(src, repl []byte) ([]byte, error) {
	return p.appendReplace(src, -1, func(dst []byte, _ *Match) []byte {
		return append(dst, repl...)
	})
}

// ReplaceAllLiteralString is ReplaceAllLiteral over string arguments.
func (p *Pattern) ReplaceAllLiteralString(src, repl string) (string, error) {
	out, err := p.ReplaceAllLiteral([]byte(src), []byte(repl))
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// ReplaceAllFunc returns a copy of src with every match replaced by the
// return value of repl applied to the matched text. The replacement is
// substituted verbatim.
//
// Example:
//
//	p := rematch.MustCompile(`\d+`)
//	out, err := p.ReplaceAllFunc([]byte("1 2 3"), func(s []byte) []byte {
//	    n, _ := strconv.Atoi(string(s))
//	    return []byte(strconv.Itoa(n * 2))
//	})
//	// out = []byte("2 4 6")
func (p *Pattern) ReplaceAllFunc(src []byte, repl func([]byte) []byte) ([]byte, error) {
	return p.appendReplace(src, -1, func(dst []byte, m *Match) []byte {
		return append(dst, repl(m.Bytes())...)
	})
}

// ReplaceAllStringFunc is ReplaceAllFunc over string subject and
// replacement.
func (p *Pattern) ReplaceAllStringFunc(src string, repl func(string) string) (string, error) {
	out, err := p.appendReplace([]byte(src), -1, func(dst []byte, m *Match) []byte {
		return append(dst, repl(m.String())...)
	})
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// ReplaceFirstFunc returns a copy of src with the leftmost match
// replaced by the return value of repl applied to the matched text.
func (p *Pattern) ReplaceFirstFunc(src []byte, repl func([]byte) []byte) ([]byte, error) {
	return p.appendReplace(src, 1, func(dst []byte, m *Match) []byte {
		return append(dst, repl(m.Bytes())...)
	})
}

// ReplaceNFunc returns a copy of src with up to n matches replaced by
// the return value of repl applied to each full Match record, giving the
// callback capture and span access. The bound follows ReplaceN.
func (p *Pattern) ReplaceNFunc(src []byte, n int, repl func(*Match) []byte) ([]byte, error) {
	return p.appendReplace(src, n, func(dst []byte, m *Match) []byte {
		return append(dst, repl(m)...)
	})
}

// ReplaceAllMatchFunc is ReplaceNFunc over every match.
func (p *Pattern) ReplaceAllMatchFunc(src []byte, repl func(*Match) []byte) ([]byte, error) {
	return p.ReplaceNFunc(src, -1, repl)
}

// ReplaceAllSubmatchFunc returns a copy of src with every match replaced
// by the return value of repl applied to the match's capture array
// (group 0 first, nil elements for non-participating groups).
func (p *Pattern) ReplaceAllSubmatchFunc(src []byte, repl func([][]byte) []byte) ([]byte, error) {
	return p.appendReplace(src, -1, func(dst []byte, m *Match) []byte {
		return append(dst, repl(m.Groups())...)
	})
}

// ReplaceAllNative replaces every match using the engine's own
// substitution primitive and template grammar, when it has one. The
// grammar is engine-defined: the stdre and re2 engines also resolve
// $name and ${name} references. Engines without a native primitive
// return engine.ErrNoSubstitute.
func (p *Pattern) ReplaceAllNative(src, template []byte) ([]byte, error) {
	sub, ok := p.cp.(engine.Substituter)
	if !ok {
		return nil, engine.ErrNoSubstitute
	}
	return sub.Substitute(src, 0, template, true)
}

// ReplaceFirstNative is ReplaceAllNative bounded to the leftmost match.
func (p *Pattern) ReplaceFirstNative(src, template []byte) ([]byte, error) {
	sub, ok := p.cp.(engine.Substituter)
	if !ok {
		return nil, engine.ErrNoSubstitute
	}
	return sub.Substitute(src, 0, template, false)
}
