package rematch

import "testing"

func TestExpand(t *testing.T) {
	values := []string{"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine", "ten", "eleven"}

	tests := []struct {
		template string
		want     string
	}{
		// Plain text passes through.
		{"", ""},
		{"no references", "no references"},
		// $$ is a literal dollar.
		{"$$", "$"},
		{"a$$b", "a$b"},
		{"$$$$", "$$"},
		// Simple references.
		{"$0", "zero"},
		{"$1", "one"},
		{"[$0]", "[zero]"},
		{"$0$1", "zeroone"},
		// The digit run is maximal: $11 is reference 11, not $1 then "1".
		{"$11", "eleven"},
		{"$10x", "tenx"},
		// Leading zeros parse as the same index.
		{"$01", "one"},
		// Unresolved references pass through literally.
		{"$99", "$99"},
		{"a$99b", "a$99b"},
		// A $ not followed by $ or a digit is literal.
		{"$", "$"},
		{"$x", "$x"},
		{"a$ b", "a$ b"},
		// Trailing $ is literal.
		{"abc$", "abc$"},
		// $$ then digits: the digits are plain text.
		{"$$1", "$1"},
	}

	resolve := ListResolver(values)
	for _, tt := range tests {
		if got := Expand(tt.template, resolve); got != tt.want {
			t.Errorf("Expand(%q) = %q, want %q", tt.template, got, tt.want)
		}
	}
}

func TestExpandEmptyResolver(t *testing.T) {
	resolve := ListResolver(nil)

	tests := []struct {
		template string
		want     string
	}{
		{"$0", "$0"},
		{"$5", "$5"},
		{"$$", "$"},
		{"plain", "plain"},
		{"$05", "$05"}, // unresolved leading-zero form keeps its spelling
	}
	for _, tt := range tests {
		if got := Expand(tt.template, resolve); got != tt.want {
			t.Errorf("Expand(%q) = %q, want %q", tt.template, got, tt.want)
		}
	}
}

// A digit run too large for int is an unresolved reference, not a panic.
func TestExpandHugeReference(t *testing.T) {
	const template = "$99999999999999999999"
	if got := Expand(template, ListResolver([]string{"x"})); got != template {
		t.Errorf("Expand(%q) = %q, want it unchanged", template, got)
	}
}

func TestMatchExpand(t *testing.T) {
	p := MustCompile(`x|(y)|(z)`)

	m, err := p.FindMatchString("az")
	if err != nil {
		t.Fatalf("FindMatchString: %v", err)
	}
	if m == nil {
		t.Fatal("FindMatchString returned no match")
	}

	tests := []struct {
		template string
		want     string
	}{
		{"$0", "z"},
		{"$1", ""},   // group exists but did not participate: empty
		{"$2", "z"},  // participating group
		{"$3", "$3"}, // out of declared range: unresolved
		{"$$", "$"},
	}
	for _, tt := range tests {
		got := string(m.Expand(nil, []byte(tt.template)))
		if got != tt.want {
			t.Errorf("Expand(%q) = %q, want %q", tt.template, got, tt.want)
		}
	}
}

func TestAppendExpandReusesBuffer(t *testing.T) {
	resolve := ListResolver([]string{"x"})
	dst := []byte("prefix:")
	dst = AppendExpand(dst, []byte("$0"), resolve)
	if string(dst) != "prefix:x" {
		t.Errorf("AppendExpand = %q, want %q", dst, "prefix:x")
	}
}
