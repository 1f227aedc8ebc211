package rematch

// Find returns the text of the leftmost match in b, or nil if there is
// no match. The result is a view into b.
//
// Example:
//
//	p := rematch.MustCompile(`\d+`)
//	m, err := p.Find([]byte("age: 42")) // []byte("42")
func (p *Pattern) Find(b []byte) ([]byte, error) {
	m, err := p.matchAt(b, 0)
	if err != nil || m == nil {
		return nil, err
	}
	return m.Bytes(), nil
}

// FindString returns the text of the leftmost match in s, or "" if there
// is no match. To distinguish a zero-width match from no match, use
// FindMatchString or FindStringIndex.
func (p *Pattern) FindString(s string) (string, error) {
	m, err := p.matchAt([]byte(s), 0)
	if err != nil || m == nil {
		return "", err
	}
	return m.String(), nil
}

// FindIndex returns the span of the leftmost match in b as a two-element
// slice, or nil if there is no match.
func (p *Pattern) FindIndex(b []byte) ([]int, error) {
	m, err := p.matchAt(b, 0)
	if err != nil || m == nil {
		return nil, err
	}
	return []int{m.Start(), m.End()}, nil
}

// FindStringIndex is FindIndex over a string subject.
func (p *Pattern) FindStringIndex(s string) ([]int, error) {
	return p.FindIndex([]byte(s))
}

// FindSubmatch returns the text of the leftmost match and of every
// capture group, or nil if there is no match. Non-participating groups
// are nil elements.
//
// Example:
//
//	p := rematch.MustCompile(`(\w+)@(\w+)`)
//	groups, err := p.FindSubmatch([]byte("user@example"))
//	// groups = ["user@example", "user", "example"]
func (p *Pattern) FindSubmatch(b []byte) ([][]byte, error) {
	m, err := p.matchAt(b, 0)
	if err != nil || m == nil {
		return nil, err
	}
	return m.Groups(), nil
}

// FindStringSubmatch is FindSubmatch over a string subject, with string
// group values. Non-participating groups are empty strings.
func (p *Pattern) FindStringSubmatch(s string) ([]string, error) {
	m, err := p.matchAt([]byte(s), 0)
	if err != nil || m == nil {
		return nil, err
	}
	return m.GroupStrings(), nil
}

// FindSubmatchIndex returns the capture vector of the leftmost match in
// the flat [start0, end0, start1, end1, ...] layout, or nil if there is
// no match. Non-participating groups hold -1 pairs.
func (p *Pattern) FindSubmatchIndex(b []byte) ([]int, error) {
	m, err := p.matchAt(b, 0)
	if err != nil || m == nil {
		return nil, err
	}
	return m.Index(), nil
}

// FindStringSubmatchIndex is FindSubmatchIndex over a string subject.
func (p *Pattern) FindStringSubmatchIndex(s string) ([]int, error) {
	return p.FindSubmatchIndex([]byte(s))
}

// FindAllMatch returns successive matches in b as Match records.
//
// All FindAll variants share the bound semantics: n < 0 returns every
// match, n >= 0 at most n, and n == 0 returns nil without invoking the
// engine. A subject with no matches yields nil.
func (p *Pattern) FindAllMatch(b []byte, n int) ([]*Match, error) {
	var out []*Match
	err := p.scan(b, n, func(m *Match) {
		out = append(out, m)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// FindAll returns the text of successive matches in b. Results are views
// into b.
//
// Example:
//
//	p := rematch.MustCompile(`\d+`)
//	all, err := p.FindAll([]byte("1 2 3"), -1) // ["1", "2", "3"]
func (p *Pattern) FindAll(b []byte, n int) ([][]byte, error) {
	var out [][]byte
	err := p.scan(b, n, func(m *Match) {
		out = append(out, m.Bytes())
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// FindAllString returns the text of successive matches in s.
func (p *Pattern) FindAllString(s string, n int) ([]string, error) {
	var out []string
	err := p.scan([]byte(s), n, func(m *Match) {
		out = append(out, m.String())
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// FindAllIndex returns the spans of successive matches in b as
// two-element [start, end] slices.
func (p *Pattern) FindAllIndex(b []byte, n int) ([][]int, error) {
	var out [][]int
	err := p.scan(b, n, func(m *Match) {
		out = append(out, []int{m.Start(), m.End()})
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// FindAllStringIndex is FindAllIndex over a string subject.
func (p *Pattern) FindAllStringIndex(s string, n int) ([][]int, error) {
	return p.FindAllIndex([]byte(s), n)
}

// FindAllSubmatch returns the capture arrays of successive matches in b.
func (p *Pattern) FindAllSubmatch(b []byte, n int) ([][][]byte, error) {
	var out [][][]byte
	err := p.scan(b, n, func(m *Match) {
		out = append(out, m.Groups())
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// FindAllStringSubmatch returns the capture arrays of successive matches
// in s as strings.
func (p *Pattern) FindAllStringSubmatch(s string, n int) ([][]string, error) {
	var out [][]string
	err := p.scan([]byte(s), n, func(m *Match) {
		out = append(out, m.GroupStrings())
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// FindAllSubmatchIndex returns the capture vectors of successive matches
// in b, each in the flat [start0, end0, start1, end1, ...] layout.
func (p *Pattern) FindAllSubmatchIndex(b []byte, n int) ([][]int, error) {
	var out [][]int
	err := p.scan(b, n, func(m *Match) {
		out = append(out, m.Index())
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// FindAllStringSubmatchIndex is FindAllSubmatchIndex over a string
// subject.
func (p *Pattern) FindAllStringSubmatchIndex(s string, n int) ([][]int, error) {
	return p.FindAllSubmatchIndex([]byte(s), n)
}

// Count returns the number of successive matches in b, at most n when
// n >= 0. Counting drives the same iteration as FindAll without building
// result slices.
func (p *Pattern) Count(b []byte, n int) (int, error) {
	count := 0
	err := p.scan(b, n, func(*Match) {
		count++
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// CountString is Count over a string subject.
func (p *Pattern) CountString(s string, n int) (int, error) {
	return p.Count([]byte(s), n)
}
