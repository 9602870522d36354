package engine

import "strings"

// translateInline maps the target dialect's inline modifier spelling onto
// the spelling shared by all three backends.
//
// The conversion layer emits Oniguruma-style headers in which the letter
// "m" means dot-all. regexp2, Rust regex and RE2 all spell dot-all "s" and
// reserve "m" for line-anchor mode, so every "m" inside an inline modifier
// header becomes "s". Line-anchor mode itself needs no inline form: the
// backends enable it globally to reproduce the target's line-based `^`/`$`
// default.
//
// The scan is escape- and class-aware so that literal "(?m:" text inside a
// character class is left alone. Outside classes only rewriter-emitted
// headers (letters i and m) can occur, so the blanket letter swap is safe.
func translateInline(text string) string {
	i := strings.Index(text, "(?")
	if i < 0 {
		return text
	}

	var out strings.Builder
	out.Grow(len(text))
	inClass := false
	for i = 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c == '\\' && i+1 < len(text):
			out.WriteByte(c)
			out.WriteByte(text[i+1])
			i++
		case inClass:
			out.WriteByte(c)
			if c == ']' {
				inClass = false
			}
		case c == '[':
			out.WriteByte(c)
			inClass = true
		case c == '(' && i+1 < len(text) && text[i+1] == '?':
			j, header, ok := parseModifierHeader(text, i)
			if !ok {
				out.WriteByte(c)
				continue
			}
			out.WriteString(strings.Map(swapDotAll, header))
			i = j - 1
		default:
			out.WriteByte(c)
		}
	}
	return out.String()
}

// parseModifierHeader matches "(?letters:" or "(?letters-letters:" at i,
// where letters are drawn from the modifier alphabet. Returns the position
// just past the header and the header text.
func parseModifierHeader(text string, i int) (end int, header string, ok bool) {
	j := i + 2
	seenDash := false
	for ; j < len(text); j++ {
		switch c := text[j]; {
		case c == 'i' || c == 'm' || c == 's':
		case c == '-' && !seenDash:
			seenDash = true
		case c == ':':
			return j + 1, text[i : j+1], true
		default:
			return 0, "", false
		}
	}
	return 0, "", false
}

func swapDotAll(r rune) rune {
	if r == 'm' {
		return 's'
	}
	return r
}

// inlinePrefix renders option bits as a leading inline flag group for
// backends that have no out-of-band option parameter (rure, re2). The "m"
// here is the backend spelling of line-anchor mode, enabled unconditionally
// because the target dialect's `^`/`$` are line anchors by default.
func inlinePrefix(opts Options) string {
	letters := []byte{'m'}
	if opts&OptIgnoreCase != 0 {
		letters = append(letters, 'i')
	}
	if opts&OptMultiLine != 0 {
		letters = append(letters, 's')
	}
	return "(?" + string(letters) + ")"
}
