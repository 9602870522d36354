// Package flags normalizes ECMAScript regex flag strings.
//
// The recognized alphabet is exactly the eight source-dialect letters:
//
//	d  hasIndices     g  global      i  ignoreCase   m  multiline
//	s  dotAll         u  unicode     v  unicodeSets  y  sticky
//
// Normalization reports unknown and duplicated letters without failing;
// the conversion pipeline records them as diagnostics and proceeds. Only
// i, m and s translate into target-dialect behavior (option bits or
// rewriting); g and y are realized by the stateful matcher; d, u and v
// have no target equivalent at all.
package flags

import (
	"strings"

	"github.com/coregx/jsregex/engine"
)

// Flag is a single source-dialect flag letter.
type Flag byte

// The source-dialect flag alphabet.
const (
	HasIndices  Flag = 'd'
	Global      Flag = 'g'
	IgnoreCase  Flag = 'i'
	MultiLine   Flag = 'm'
	DotAll      Flag = 's'
	Unicode     Flag = 'u'
	UnicodeSets Flag = 'v'
	Sticky      Flag = 'y'
)

const alphabet = "dgimsuvy"

// Set is a normalized, deduplicated flag set.
type Set struct {
	bits uint8
}

// Normalize parses a raw flag string. The returned Set contains the first
// occurrence of every recognized letter; repeated and unrecognized letters
// are reported in order of appearance and otherwise ignored.
//
// Example:
//
//	set, unknown, dup := flags.Normalize("gixg")
//	// set has g and i, unknown == ["x"], dup == ["g"]
func Normalize(raw string) (set Set, unknown, duplicate []string) {
	for i := 0; i < len(raw); i++ {
		f := Flag(raw[i])
		idx := strings.IndexByte(alphabet, byte(f))
		if idx < 0 {
			unknown = append(unknown, string(f))
			continue
		}
		if set.bits&(1<<idx) != 0 {
			duplicate = append(duplicate, string(f))
			continue
		}
		set.bits |= 1 << idx
	}
	return set, unknown, duplicate
}

// Has reports whether f is in the set.
func (s Set) Has(f Flag) bool {
	idx := strings.IndexByte(alphabet, byte(f))
	return idx >= 0 && s.bits&(1<<idx) != 0
}

// Options returns the target-dialect option bits for the set: i maps to
// case-insensitivity and s to the target's combined multiline-dot-all
// mode. The source m flag produces no bit; it is realized by the rewriter
// leaving `^`/`$` untouched.
func (s Set) Options() engine.Options {
	var o engine.Options
	if s.Has(IgnoreCase) {
		o |= engine.OptIgnoreCase
	}
	if s.Has(DotAll) {
		o |= engine.OptMultiLine
	}
	return o
}

// Unrepresentable returns, in alphabet order, the flags in the set that
// have no target-dialect equivalent of any kind: d, u and v. The matcher
// flags g and y are deliberately not listed; they are emulated rather than
// translated.
func (s Set) Unrepresentable() []string {
	var out []string
	for _, f := range []Flag{HasIndices, Unicode, UnicodeSets} {
		if s.Has(f) {
			out = append(out, string(f))
		}
	}
	return out
}

// String renders the set in alphabet order.
func (s Set) String() string {
	var b strings.Builder
	for i := 0; i < len(alphabet); i++ {
		if s.bits&(1<<i) != 0 {
			b.WriteByte(alphabet[i])
		}
	}
	return b.String()
}
