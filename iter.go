package rematch

// iterator drives repeated engine calls across one subject. It is the
// state machine under every multi-match operation: searching from a
// position, yielding a match, advancing past it, until the engine
// reports no further match.
type iterator struct {
	p    *Pattern
	src  []byte
	pos  int
	done bool
}

func (p *Pattern) iter(src []byte) iterator {
	return iterator{p: p, src: src}
}

// next returns the next match, or nil when the subject is exhausted.
// Engine failures end the iteration and propagate.
func (it *iterator) next() (*Match, error) {
	if it.done || it.pos > len(it.src) {
		it.done = true
		return nil, nil
	}
	m, err := it.p.matchAt(it.src, it.pos)
	if err != nil {
		it.done = true
		return nil, err
	}
	if m == nil {
		it.done = true
		return nil, nil
	}
	if m.IsEmpty() {
		// A zero-width match is recorded where it was found, but the
		// next search must start one byte later or `x*` against non-x
		// text would match the same position forever.
		it.pos = m.End() + 1
	} else {
		it.pos = m.End()
	}
	return m, nil
}

// scan runs fn over successive matches in src, at most n matches when
// n >= 0. n == 0 returns without touching the engine; n < 0 runs to
// exhaustion.
func (p *Pattern) scan(src []byte, n int, fn func(*Match)) error {
	if n == 0 {
		return nil
	}
	it := p.iter(src)
	count := 0
	for {
		m, err := it.next()
		if err != nil {
			return err
		}
		if m == nil {
			return nil
		}
		fn(m)
		count++
		if n > 0 && count >= n {
			return nil
		}
	}
}
