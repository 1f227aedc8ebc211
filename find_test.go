package rematch

import (
	"errors"
	"reflect"
	"testing"
)

func TestFindAllIndex(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
		n       int
		want    [][]int
	}{
		{`\d+`, "1 2 3", -1, [][]int{{0, 1}, {2, 3}, {4, 5}}},
		{`\d+`, "1 2 3", 2, [][]int{{0, 1}, {2, 3}}},
		{`\d+`, "1 2 3", 0, nil},
		{`\d+`, "1 2 3", 99, [][]int{{0, 1}, {2, 3}, {4, 5}}}, // n past the last match behaves like -1
		{`\d+`, "abc", -1, nil},
		{`a`, "aaa", -1, [][]int{{0, 1}, {1, 2}, {2, 3}}},
		// Zero-width matches are recorded and the scan advances one byte,
		// including the trailing empty match after a non-empty one.
		{`a*`, "aaa", -1, [][]int{{0, 3}, {3, 3}}},
		{`a*`, "bbb", -1, [][]int{{0, 0}, {1, 1}, {2, 2}, {3, 3}}},
		{`a*`, "bab", -1, [][]int{{0, 0}, {1, 2}, {2, 2}, {3, 3}}},
		{`x*`, "", -1, [][]int{{0, 0}}},
	}

	for _, tt := range tests {
		p := MustCompile(tt.pattern)
		got, err := p.FindAllIndex([]byte(tt.input), tt.n)
		if err != nil {
			t.Errorf("FindAllIndex(%q, %q, %d): %v", tt.pattern, tt.input, tt.n, err)
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("FindAllIndex(%q, %q, %d) = %v, want %v",
				tt.pattern, tt.input, tt.n, got, tt.want)
		}
	}
}

func TestFindAllString(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
		n       int
		want    []string
	}{
		{`\d+`, "1 22 333", -1, []string{"1", "22", "333"}},
		{`\d+`, "1 22 333", 1, []string{"1"}},
		{`\d+`, "no digits", -1, nil},
		{`a*`, "aaa", -1, []string{"aaa", ""}},
	}

	for _, tt := range tests {
		p := MustCompile(tt.pattern)
		got, err := p.FindAllString(tt.input, tt.n)
		if err != nil {
			t.Errorf("FindAllString(%q, %q, %d): %v", tt.pattern, tt.input, tt.n, err)
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("FindAllString(%q, %q, %d) = %v, want %v",
				tt.pattern, tt.input, tt.n, got, tt.want)
		}
	}
}

func TestFindAllSubmatchIndex(t *testing.T) {
	p := MustCompile(`x([yz])`)
	got, err := p.FindAllSubmatchIndex([]byte("an xy and xz"), -1)
	if err != nil {
		t.Fatalf("FindAllSubmatchIndex: %v", err)
	}
	want := [][]int{{3, 5, 4, 5}, {10, 12, 11, 12}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FindAllSubmatchIndex = %v, want %v", got, want)
	}
}

func TestFindAllStringSubmatch(t *testing.T) {
	p := MustCompile(`(\w+)@(\w+)\.(\w+)`)
	got, err := p.FindAllStringSubmatch("a@b.c x@y.z", -1)
	if err != nil {
		t.Fatalf("FindAllStringSubmatch: %v", err)
	}
	want := [][]string{
		{"a@b.c", "a", "b", "c"},
		{"x@y.z", "x", "y", "z"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FindAllStringSubmatch = %v, want %v", got, want)
	}
}

func TestFindString(t *testing.T) {
	p := MustCompile(`\d+`)

	got, err := p.FindString("age: 42")
	if err != nil {
		t.Fatalf("FindString: %v", err)
	}
	if got != "42" {
		t.Errorf("FindString = %q, want %q", got, "42")
	}

	got, err = p.FindString("no digits")
	if err != nil {
		t.Fatalf("FindString: %v", err)
	}
	if got != "" {
		t.Errorf("FindString on non-matching input = %q, want %q", got, "")
	}
}

func TestFindIndex(t *testing.T) {
	p := MustCompile(`\d+`)
	loc, err := p.FindIndex([]byte("age: 42"))
	if err != nil {
		t.Fatalf("FindIndex: %v", err)
	}
	if !reflect.DeepEqual(loc, []int{5, 7}) {
		t.Errorf("FindIndex = %v, want [5 7]", loc)
	}
}

func TestFindSubmatchNonParticipating(t *testing.T) {
	p := MustCompile(`(a)|(b)`)
	groups, err := p.FindSubmatch([]byte("b"))
	if err != nil {
		t.Fatalf("FindSubmatch: %v", err)
	}
	if len(groups) != 3 {
		t.Fatalf("len(FindSubmatch) = %d, want 3", len(groups))
	}
	if groups[1] != nil {
		t.Errorf("groups[1] = %q, want nil", groups[1])
	}
	if string(groups[2]) != "b" {
		t.Errorf("groups[2] = %q, want %q", groups[2], "b")
	}
}

func TestFindMatchAt(t *testing.T) {
	p := MustCompile(`x([yz])`)
	subject := []byte("an xy and xz")

	m, err := p.FindMatchAt(subject, 5)
	if err != nil {
		t.Fatalf("FindMatchAt: %v", err)
	}
	if m == nil || m.Start() != 10 || m.End() != 12 {
		t.Errorf("FindMatchAt(5) = %v, want span [10,12]", m)
	}

	// Position len(subject) searches the empty suffix: legal, no match
	// for this pattern.
	m, err = p.FindMatchAt(subject, len(subject))
	if err != nil {
		t.Fatalf("FindMatchAt(len): %v", err)
	}
	if m != nil {
		t.Errorf("FindMatchAt(len) = span [%d,%d], want no match", m.Start(), m.End())
	}
}

// The empty subject is searchable at position 0; anything past the end
// is a position error, even on an empty subject.
func TestFindMatchAtBoundary(t *testing.T) {
	p := MustCompile(`x*`)

	m, err := p.FindMatchAt(nil, 0)
	if err != nil {
		t.Fatalf("FindMatchAt(nil, 0): %v", err)
	}
	if m == nil || m.Start() != 0 || m.End() != 0 {
		t.Errorf("FindMatchAt(nil, 0) = %v, want zero-width match at 0", m)
	}

	for _, pos := range []int{-1, 1, 50} {
		_, err := p.FindMatchAt(nil, pos)
		var perr *PositionError
		if !errors.As(err, &perr) {
			t.Errorf("FindMatchAt(nil, %d) error = %v, want *PositionError", pos, err)
			continue
		}
		if perr.Pos != pos || perr.Len != 0 {
			t.Errorf("FindMatchAt(nil, %d) error = %+v, want Pos=%d Len=0", pos, perr, pos)
		}
	}
}

func TestFindAllMatch(t *testing.T) {
	p := MustCompile(`\d+`)
	matches, err := p.FindAllMatch([]byte("1 22 333"), -1)
	if err != nil {
		t.Fatalf("FindAllMatch: %v", err)
	}
	if len(matches) != 3 {
		t.Fatalf("len(FindAllMatch) = %d, want 3", len(matches))
	}
	if matches[1].String() != "22" || matches[1].Start() != 2 {
		t.Errorf("matches[1] = %q at %d, want %q at 2", matches[1].String(), matches[1].Start(), "22")
	}
}

func TestCount(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
		n       int
		want    int
	}{
		{`\d+`, "1 2 3 4 5", -1, 5},
		{`\d+`, "1 2 3 4 5", 2, 2},
		{`\d+`, "1 2 3 4 5", 0, 0},
		{`\d+`, "none", -1, 0},
		{`a*`, "bbb", -1, 4},
	}
	for _, tt := range tests {
		p := MustCompile(tt.pattern)
		got, err := p.CountString(tt.input, tt.n)
		if err != nil {
			t.Errorf("CountString(%q, %q, %d): %v", tt.pattern, tt.input, tt.n, err)
			continue
		}
		if got != tt.want {
			t.Errorf("CountString(%q, %q, %d) = %d, want %d",
				tt.pattern, tt.input, tt.n, got, tt.want)
		}
	}
}
