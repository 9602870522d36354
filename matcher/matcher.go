// Package matcher reproduces the source dialect's global/sticky matching
// protocol on top of a stateless compiled target pattern.
//
// The source dialect gives every compiled regex a mutable search cursor
// ("lastIndex"): a global or sticky regex resumes each search where the
// previous match ended, advances the cursor on success and resets it to
// zero on failure. Target-dialect patterns carry no such state, so the
// cursor lives here, as one explicit field owned by one Matcher.
//
// A Matcher is not safe for concurrent use: exactly one logical caller may
// drive an instance at a time. The underlying engine.Pattern is stateless
// and may be shared freely across matchers.
package matcher

import (
	"iter"

	"github.com/coregx/jsregex/engine"
)

// Matcher wraps a compiled target pattern together with the source
// dialect's global/sticky semantics and the search cursor backing them.
type Matcher struct {
	pat       engine.Pattern
	global    bool
	sticky    bool
	lastIndex int
}

// New returns a Matcher over p. When both global and sticky are set,
// sticky's stricter "must match exactly at the cursor" rule takes
// precedence; global then only means the cursor persists between calls.
func New(p engine.Pattern, global, sticky bool) *Matcher {
	return &Matcher{pat: p, global: global, sticky: sticky}
}

// Global reports whether the matcher carries the source "g" flag.
func (m *Matcher) Global() bool { return m.global }

// Sticky reports whether the matcher carries the source "y" flag.
func (m *Matcher) Sticky() bool { return m.sticky }

// LastIndex returns the current cursor position.
func (m *Matcher) LastIndex() int { return m.lastIndex }

// SetLastIndex moves the cursor, mirroring assignment to the source
// dialect's lastIndex property. Out-of-range values are kept as-is; the
// next Exec call resets them, as the source dialect does.
func (m *Matcher) SetLastIndex(n int) { m.lastIndex = n }

// Reset sets the cursor back to zero.
func (m *Matcher) Reset() { m.lastIndex = 0 }

// attemptAt searches for a match beginning at or after pos. Under sticky
// semantics the match must begin exactly at pos; the check is a plain
// start-position comparison, so it needs no continue-anchor support from
// the engine.
func (m *Matcher) attemptAt(text string, pos int) *Match {
	pairs := m.pat.FindSubmatchIndexAt(text, pos)
	if pairs == nil {
		return nil
	}
	if m.sticky && pairs[0] != pos {
		return nil
	}
	return newMatch(text, pairs)
}

// Exec is the authoritative matching call; Test, MatchAll and every
// higher-level entry point are defined in terms of it so the cursor
// behaves identically no matter how a match was requested.
//
// Without global or sticky it is a stateless search from position zero and
// the cursor is untouched. With either flag: a cursor that is negative or
// beyond the text resets to zero with no match; otherwise the search runs
// at the cursor, which advances to the match end on success and resets to
// zero on failure.
func (m *Matcher) Exec(text string) *Match {
	if !m.global && !m.sticky {
		return m.attemptAt(text, 0)
	}

	if m.lastIndex < 0 || m.lastIndex > len(text) {
		m.lastIndex = 0
		return nil
	}

	mt := m.attemptAt(text, m.lastIndex)
	if mt == nil {
		m.lastIndex = 0
		return nil
	}
	m.lastIndex = mt.End()
	return mt
}

// Test reports whether Exec finds a match, with identical cursor effects.
func (m *Matcher) Test(text string) bool {
	return m.Exec(text) != nil
}

// MatchAt performs a one-shot search starting at pos. It never reads or
// writes the cursor, for call sites that need positional search without
// disturbing iteration state. Sticky matchers still require the match to
// begin exactly at pos.
func (m *Matcher) MatchAt(text string, pos int) *Match {
	if pos < 0 || pos > len(text) {
		return nil
	}
	return m.attemptAt(text, pos)
}

// MatchAll returns a lazy sequence of all matches in text, starting from
// position zero. The externally visible cursor is saved before iteration,
// forced to zero for its duration and restored afterwards no matter how
// iteration ends, so MatchAll never perturbs an ongoing Exec loop.
//
// Iteration always advances past each match regardless of the global flag.
// After a zero-width match the internal cursor moves one extra position so
// the sequence is finite: at most len(text)+1 matches are produced.
func (m *Matcher) MatchAll(text string) iter.Seq[*Match] {
	return func(yield func(*Match) bool) {
		saved := m.lastIndex
		defer func() { m.lastIndex = saved }()

		m.lastIndex = 0
		for m.lastIndex >= 0 && m.lastIndex <= len(text) {
			mt := m.attemptAt(text, m.lastIndex)
			if mt == nil {
				return
			}
			m.lastIndex = mt.End()
			if mt.Len() == 0 {
				m.lastIndex++
			}
			if !yield(mt) {
				return
			}
		}
	}
}
