// Package bracket reports whether a string of (), {} and [] brackets is
// balanced: every closer matches the most recent unmatched opener of the
// same type, and no opener is left unmatched.
//
// Characters outside the six-symbol alphabet are ignored.
package bracket

// openerFor maps each closing bracket to the opener it closes.
var openerFor = map[rune]rune{
	')': '(',
	'}': '{',
	']': '[',
}

// closerFor is the inverse of openerFor.
var closerFor = map[rune]rune{
	'(': ')',
	'{': '}',
	'[': ']',
}

// Valid reports whether s is balanced.  The empty string is balanced.
//
// Valid never fails: malformed input simply yields false.  Each call owns
// its stack, so Valid is safe for concurrent use.
func Valid(s string) bool {
	var stack []rune

	for _, r := range s {
		if IsOpener(r) {
			stack = append(stack, r)
			continue
		}
		want, ok := openerFor[r]
		if !ok {
			continue // not a bracket
		}
		n := len(stack)
		if n == 0 || stack[n-1] != want {
			return false
		}
		stack = stack[:n-1]
	}
	return len(stack) == 0
}

// IsOpener reports whether r is one of ( { [.
func IsOpener(r rune) bool {
	_, ok := closerFor[r]
	return ok
}

// IsCloser reports whether r is one of ) } ].
func IsCloser(r rune) bool {
	_, ok := openerFor[r]
	return ok
}

// Opener returns the opening bracket matched by closer.
func Opener(closer rune) (rune, bool) {
	r, ok := openerFor[closer]
	return r, ok
}

// Closer returns the closing bracket that matches opener.
func Closer(opener rune) (rune, bool) {
	r, ok := closerFor[opener]
	return r, ok
}
