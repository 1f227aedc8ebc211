package rematch

// Match records one successful match: the subject that was searched and
// the capture vector the engine produced for it.
//
// The subject is stored by reference and shared across all matches from
// one search; the capture vector is owned by the Match and never mutated.
// Group 0 is the whole match; group k is the k-th parenthesized
// subexpression in order of opening parenthesis. A group that did not
// participate in the match has the sentinel span (-1, -1) in the vector
// and reads as empty text through the accessors.
//
// Example:
//
//	p := rematch.MustCompile(`(\w+)@(\w+)`)
//	m, _ := p.FindMatchString("user@example")
//	m.String()          // "user@example"
//	m.GroupString(1)    // "user", nil
//	m.GroupStrings()    // ["user@example", "user", "example"]
type Match struct {
	subject []byte
	caps    []int
	names   []string
}

// Start returns the inclusive start position of the whole match.
func (m *Match) Start() int {
	return m.caps[0]
}

// End returns the exclusive end position of the whole match.
func (m *Match) End() int {
	return m.caps[1]
}

// Len returns the length of the whole match in bytes.
func (m *Match) Len() int {
	return m.caps[1] - m.caps[0]
}

// IsEmpty reports whether the match has zero width. Patterns like `a*`
// produce zero-width matches at positions where they match nothing.
func (m *Match) IsEmpty() bool {
	return m.caps[0] == m.caps[1]
}

// Bytes returns the whole matched text as a view into the subject.
func (m *Match) Bytes() []byte {
	return m.subject[m.caps[0]:m.caps[1]]
}

// String returns the whole matched text as a newly allocated string.
func (m *Match) String() string {
	return string(m.Bytes())
}

// NumGroups returns the number of capture slots, including group 0.
// It is always the pattern's NumSubexp plus one.
func (m *Match) NumGroups() int {
	return len(m.caps) / 2
}

// Group returns the text of capture group i as a view into the subject.
//
// A group that exists but did not participate in the match returns empty
// text with a nil error; only an index outside [0, NumGroups) is an
// error (*GroupError).
func (m *Match) Group(i int) ([]byte, error) {
	if i < 0 || 2*i+1 >= len(m.caps) {
		return nil, &GroupError{Index: i, NumGroups: m.NumGroups()}
	}
	if m.caps[2*i] < 0 {
		return nil, nil
	}
	return m.subject[m.caps[2*i]:m.caps[2*i+1]], nil
}

// GroupString returns the text of capture group i as a string.
func (m *Match) GroupString(i int) (string, error) {
	b, err := m.Group(i)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Span returns the half-open byte span of capture group i. A group that
// did not participate reports (-1, -1).
func (m *Match) Span(i int) (start, end int, err error) {
	if i < 0 || 2*i+1 >= len(m.caps) {
		return 0, 0, &GroupError{Index: i, NumGroups: m.NumGroups()}
	}
	return m.caps[2*i], m.caps[2*i+1], nil
}

// Groups returns the text of every capture slot, group 0 first. The
// result always has NumGroups elements; non-participating groups are nil
// (empty text). Elements are views into the subject.
func (m *Match) Groups() [][]byte {
	out := make([][]byte, m.NumGroups())
	for i := range out {
		out[i], _ = m.Group(i)
	}
	return out
}

// GroupStrings returns the text of every capture slot as strings, group
// 0 first. Non-participating groups are empty strings.
func (m *Match) GroupStrings() []string {
	out := make([]string, m.NumGroups())
	for i := range out {
		out[i], _ = m.GroupString(i)
	}
	return out
}

// NamedGroup returns the text of the capture group with the given name.
// Returns a *GroupError if the pattern has no such name.
func (m *Match) NamedGroup(name string) ([]byte, error) {
	if name != "" {
		for i, n := range m.names {
			if n == name {
				return m.Group(i)
			}
		}
	}
	return nil, &GroupError{Index: -1, Name: name, NumGroups: m.NumGroups()}
}

// Index returns a copy of the raw capture vector in the flat
// [start0, end0, start1, end1, ...] layout, with -1 pairs for groups
// that did not participate.
func (m *Match) Index() []int {
	out := make([]int, len(m.caps))
	copy(out, m.caps)
	return out
}

// Resolve is the capture-backed template Resolver: indexes inside
// [0, NumGroups) resolve to the group's text (empty for groups that did
// not participate), anything else is unresolved.
func (m *Match) Resolve(i int) ([]byte, bool) {
	if i < 0 || 2*i+1 >= len(m.caps) {
		return nil, false
	}
	if m.caps[2*i] < 0 {
		return nil, true
	}
	return m.subject[m.caps[2*i]:m.caps[2*i+1]], true
}

// Expand appends the expansion of template against this match's captures
// to dst and returns the result. See Expand for the template grammar.
func (m *Match) Expand(dst, template []byte) []byte {
	return AppendExpand(dst, template, m.Resolve)
}
