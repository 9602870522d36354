// Package rewrite transforms ECMAScript-dialect regex pattern text into the
// Oniguruma-style Target Dialect understood by the engine backends.
//
// The two dialects disagree on three structural points:
//
//   - `^`/`$` are string anchors in the source but line anchors in the
//     target; the target's string anchors are `\A`/`\z`.
//   - The target has no standalone dot-all flag; its `m` flag means
//     "dot matches newline", while the source's `m` (line anchors) is the
//     target's default behavior and has no flag at all.
//   - `[^]` is a valid "match anything" class in the source but a syntax
//     error in the target.
//
// Rewriting is a single left-to-right scan. It never fails: structurally
// broken input (unbalanced groups, an unterminated class) produces
// best-effort output plus diagnostics, and the caller decides whether that
// is fatal.
package rewrite

// Scope is a snapshot of the modifier flags in effect at a point in the
// pattern. Scopes are immutable values; nesting is modeled by a stack of
// them, so closing a group restores the enclosing state with a plain pop.
type Scope struct {
	// LineAnchors reports whether `^`/`$` should mean line boundaries
	// (source "m" flag). When false they are rewritten to the target's
	// string anchors.
	LineAnchors bool

	// IgnoreCase reports case-insensitive matching (source "i" flag).
	IgnoreCase bool

	// DotAll reports that "." matches line terminators (source "s"
	// flag, the target's "m" mode).
	DotAll bool
}

// withModifiers returns a copy of s with the given enable/disable letter
// deltas applied. Letters outside the modifier alphabet are ignored; the
// header parser only feeds it i, m and s.
func (s Scope) withModifiers(enable, disable string) Scope {
	for i := 0; i < len(enable); i++ {
		s = s.set(enable[i], true)
	}
	for i := 0; i < len(disable); i++ {
		s = s.set(disable[i], false)
	}
	return s
}

func (s Scope) set(letter byte, on bool) Scope {
	switch letter {
	case 'i':
		s.IgnoreCase = on
	case 'm':
		s.LineAnchors = on
	case 's':
		s.DotAll = on
	}
	return s
}
