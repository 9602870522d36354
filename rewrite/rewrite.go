package rewrite

import (
	"fmt"
	"strings"
)

// Rewrite translates source-dialect pattern text into target-dialect text
// under the given base scope and returns the result together with any
// diagnostics collected along the way.
//
// The base scope is derived from the pattern's global flags: a pattern
// carrying the source "m" flag starts with LineAnchors set, and so on.
// Inline modifier groups adjust the scope for their extent only.
//
// Rewrite does not validate the pattern. Input that is structurally
// scannable but malformed (an extra ")", a missing "]") is still rewritten
// and the problem reported as a diagnostic, mirroring the best-effort
// contract of the conversion pipeline.
//
// Example:
//
//	out, diags := rewrite.Rewrite("^foo$", rewrite.Scope{})
//	// out == `\Afoo\z`, diags == nil
func Rewrite(pattern string, base Scope) (string, []string) {
	r := rewriter{input: pattern, scopes: []Scope{base}}
	r.out.Grow(len(pattern) + 8)
	r.run()
	return r.out.String(), r.diags
}

type rewriter struct {
	input   string
	pos     int
	out     strings.Builder
	scopes  []Scope
	inClass bool
	diags   []string
}

func (r *rewriter) top() Scope {
	return r.scopes[len(r.scopes)-1]
}

func (r *rewriter) diagf(format string, args ...any) {
	r.diags = append(r.diags, fmt.Sprintf(format, args...))
}

func (r *rewriter) run() {
	for r.pos < len(r.input) {
		c := r.input[r.pos]
		switch {
		case c == '\\':
			r.escape()
		case r.inClass:
			if c == ']' {
				r.inClass = false
			}
			r.out.WriteByte(c)
			r.pos++
		case c == '[':
			r.classOpen()
		case c == '(':
			r.groupOpen()
		case c == ')':
			r.groupClose()
		case c == '^' || c == '$':
			r.anchor(c)
		default:
			r.out.WriteByte(c)
			r.pos++
		}
	}

	if n := len(r.scopes) - 1; n > 0 {
		r.diagf("%d unclosed group(s) at end of pattern", n)
	}
	if r.inClass {
		r.diags = append(r.diags, "unterminated character class")
	}
}

// escape handles a backslash sequence, inside or outside a class.
//
// Control escapes \cX (X a letter) become the literal control character
// X & 0x1F in both positions. Outside a class, an identity escape whose
// letter collides with a target-dialect special sequence loses its
// backslash: the source defines \A, \Q etc. as matching the bare letter,
// while the target would read them as string-start, quote-start and so on.
// Everything else is copied verbatim.
func (r *rewriter) escape() {
	if r.pos+1 >= len(r.input) {
		r.diags = append(r.diags, `dangling '\' at end of pattern`)
		r.out.WriteByte('\\')
		r.pos++
		return
	}

	next := r.input[r.pos+1]
	if next == 'c' && r.pos+2 < len(r.input) && isASCIILetter(r.input[r.pos+2]) {
		r.out.WriteByte(r.input[r.pos+2] & 0x1f)
		r.pos += 3
		return
	}

	if !r.inClass && collidesWithTarget(next) {
		r.out.WriteByte(next)
		r.pos += 2
		return
	}

	r.out.WriteByte('\\')
	r.out.WriteByte(next)
	r.pos += 2
}

// collidesWithTarget reports whether \c is an identity escape in the source
// dialect that the target dialect would interpret specially: \A (string
// start), \Z and \z (string end), \G (continue from last match), \Q and \E
// (literal-text delimiters).
func collidesWithTarget(c byte) bool {
	switch c {
	case 'A', 'Z', 'z', 'G', 'Q', 'E':
		return true
	}
	return false
}

// classOpen handles "[". The exact sequence "[^]" is a valid always-true
// class in the source dialect ("any character, including line terminators")
// but illegal target syntax, so it becomes the equivalent [\s\S]. A negated
// class with content is left alone and enters normal class scanning.
func (r *rewriter) classOpen() {
	if strings.HasPrefix(r.input[r.pos:], "[^]") {
		r.out.WriteString(`[\s\S]`)
		r.pos += 3
		return
	}
	r.inClass = true
	r.out.WriteByte('[')
	r.pos++
}

// groupOpen handles "(". If an inline modifier header parses, the group
// gets a derived scope and a header expressing only the net change in the
// two flags the target can spell (i, and m for dot-all; the source's
// anchor flag is scope-only and never emitted). Any other "(", including
// lookarounds and named groups, is an ordinary group start that inherits
// the current scope.
func (r *rewriter) groupOpen() {
	enable, disable, end, ok := parseHeader(r.input, r.pos)
	if !ok {
		r.scopes = append(r.scopes, r.top())
		r.out.WriteByte('(')
		r.pos++
		return
	}

	old := r.top()
	next := old.withModifiers(enable, disable)
	r.out.WriteString(netHeader(old, next))
	r.scopes = append(r.scopes, next)
	r.pos = end
}

func (r *rewriter) groupClose() {
	r.out.WriteByte(')')
	if len(r.scopes) > 1 {
		r.scopes = r.scopes[:len(r.scopes)-1]
	} else {
		r.diagf("unmatched ')' at position %d", r.pos)
	}
	r.pos++
}

func (r *rewriter) anchor(c byte) {
	switch {
	case r.top().LineAnchors:
		r.out.WriteByte(c)
	case c == '^':
		r.out.WriteString(`\A`)
	default:
		r.out.WriteString(`\z`)
	}
	r.pos++
}

// parseHeader matches an inline modifier header "(?on-off:" at position i,
// with letters drawn from {i, m, s} and at most one "-". It returns the
// enable and disable letter runs and the position just past the ":".
func parseHeader(s string, i int) (enable, disable string, end int, ok bool) {
	if i+1 >= len(s) || s[i+1] != '?' {
		return "", "", 0, false
	}
	j := i + 2
	mark := j
	for j < len(s) && isModifierLetter(s[j]) {
		j++
	}
	enable = s[mark:j]
	if j < len(s) && s[j] == '-' {
		j++
		mark = j
		for j < len(s) && isModifierLetter(s[j]) {
			j++
		}
		disable = s[mark:j]
	}
	if j >= len(s) || s[j] != ':' {
		return "", "", 0, false
	}
	return enable, disable, j + 1, true
}

// netHeader renders the target-dialect group header for the transition from
// scope old to scope next. Only flags that actually changed appear, so a
// redundant "(?i:" inside an already case-insensitive scope flattens to
// "(?:". The target letter for DotAll is "m".
func netHeader(old, next Scope) string {
	var on, off []byte
	if next.IgnoreCase != old.IgnoreCase {
		if next.IgnoreCase {
			on = append(on, 'i')
		} else {
			off = append(off, 'i')
		}
	}
	if next.DotAll != old.DotAll {
		if next.DotAll {
			on = append(on, 'm')
		} else {
			off = append(off, 'm')
		}
	}

	switch {
	case len(on) == 0 && len(off) == 0:
		return "(?:"
	case len(off) == 0:
		return "(?" + string(on) + ":"
	case len(on) == 0:
		return "(?-" + string(off) + ":"
	default:
		return "(?" + string(on) + "-" + string(off) + ":"
	}
}

func isModifierLetter(c byte) bool {
	return c == 'i' || c == 'm' || c == 's'
}

func isASCIILetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}
