package rematch

// Split slices b into the pieces strictly between successive matches of
// the pattern, plus the leading and trailing remainders. Pieces are
// views into b.
//
// n bounds the number of separator matches consumed: n < 0 splits on
// every match, n >= 0 on at most n, so the result has at most n+1
// pieces with the unsplit remainder last. n == 0 returns the whole
// subject as a single piece without invoking the engine, as does a
// subject with no matches.
//
// The pieces interleaved with the matched separators always reconstruct
// b exactly.
//
// Example:
//
//	p := rematch.MustCompile(`,`)
//	parts, err := p.SplitString("a,b,c", -1) // ["a", "b", "c"]
//	parts, err = p.SplitString("a,b,c", 1)   // ["a", "b,c"]
func (p *Pattern) Split(b []byte, n int) ([][]byte, error) {
	var parts [][]byte
	last := 0
	err := p.scan(b, n, func(m *Match) {
		parts = append(parts, b[last:m.Start()])
		last = m.End()
	})
	if err != nil {
		return nil, err
	}
	return append(parts, b[last:]), nil
}

// SplitString is Split over a string subject.
func (p *Pattern) SplitString(s string, n int) ([]string, error) {
	var parts []string
	last := 0
	err := p.scan([]byte(s), n, func(m *Match) {
		parts = append(parts, s[last:m.Start()])
		last = m.End()
	})
	if err != nil {
		return nil, err
	}
	return append(parts, s[last:]), nil
}
