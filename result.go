package jsregex

import (
	"github.com/coregx/jsregex/engine"
	"github.com/coregx/jsregex/matcher"
)

// Result is the immutable outcome of one conversion. It is created once
// per Convert call and never mutated afterwards; all fields are safe to
// share except Matcher, which carries the one mutable cursor and belongs
// to a single caller.
type Result struct {
	// Output is the rewritten target-dialect pattern text.
	Output string

	// Options are the target-dialect option bits derived from the
	// source flags (case-insensitive, multiline-dot-all).
	Options engine.Options

	// Pattern is the compiled target pattern, or nil if compilation was
	// skipped (Config.Compile == false) or failed. A failure is
	// recorded in Diagnostics, never propagated.
	Pattern engine.Pattern

	// Matcher drives the source dialect's cursor protocol. It is
	// non-nil exactly when the flag set contains "g" or "y" and Pattern
	// was compiled.
	Matcher *matcher.Matcher

	// Diagnostics lists every recoverable condition encountered, in
	// order: unknown/duplicate flags, untranslatable flags, structural
	// pattern problems, compile failure. One entry per condition.
	Diagnostics []string

	// Unsupported lists the source flags that have no target-dialect
	// equivalent of any kind (d, u, v as present).
	Unsupported []string

	// Source and SourceFlags preserve the original pattern text and
	// raw flag string the conversion started from.
	Source      string
	SourceFlags string
}
