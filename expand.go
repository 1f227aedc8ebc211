package rematch

import "strconv"

// Resolver supplies replacement text for numeric template references.
// Returning ok == false marks the reference unresolved, in which case the
// template token passes through to the output unchanged.
type Resolver func(i int) (text []byte, ok bool)

// ListResolver returns a Resolver over an ordered list of values: $0 is
// values[0], $1 is values[1], and so on. Indexes outside the list are
// unresolved.
func ListResolver(values []string) Resolver {
	return func(i int) ([]byte, bool) {
		if i < 0 || i >= len(values) {
			return nil, false
		}
		return []byte(values[i]), true
	}
}

// Expand expands template against resolve and returns the result.
//
// The template grammar, scanned left to right one token at a time:
//
//   - "$$" emits a literal "$".
//   - "$" followed by decimal digits takes the maximal digit run as a
//     reference index; if resolve has a value for it the value is
//     emitted, otherwise the "$" and the digit text pass through
//     unchanged (so "$5" against an empty resolver stays "$5", as does a
//     leading-zero form the resolver rejects).
//   - Any other "$" is a literal "$".
//   - Everything else is copied through.
//
// Expansion is total: it always produces output and never fails.
//
// Example:
//
//	rematch.Expand("$0-$0", rematch.ListResolver([]string{"x"})) // "x-x"
//	rematch.Expand("$$", rematch.ListResolver(nil))              // "$"
func Expand(template string, resolve Resolver) string {
	return string(AppendExpand(nil, []byte(template), resolve))
}

// AppendExpand appends the expansion of template against resolve to dst
// and returns the extended buffer.
func AppendExpand(dst, template []byte, resolve Resolver) []byte {
	i := 0
	for i < len(template) {
		if template[i] != '$' || i+1 >= len(template) {
			dst = append(dst, template[i])
			i++
			continue
		}
		next := template[i+1]
		if next == '$' {
			dst = append(dst, '$')
			i += 2
			continue
		}
		if next < '0' || next > '9' {
			dst = append(dst, '$')
			i++
			continue
		}

		// Maximal digit run after the '$'.
		j := i + 1
		for j < len(template) && template[j] >= '0' && template[j] <= '9' {
			j++
		}
		if n, err := strconv.Atoi(string(template[i+1 : j])); err == nil {
			if v, ok := resolve(n); ok {
				dst = append(dst, v...)
				i = j
				continue
			}
		}
		// Unresolved reference (or a run too long for an int): the token
		// passes through literally.
		dst = append(dst, template[i:j]...)
		i = j
	}
	return dst
}
