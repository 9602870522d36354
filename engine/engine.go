// Package engine declares the compile primitive the conversion pipeline
// hands its rewritten pattern text to, and selects a concrete regex backend
// to fulfil it.
//
// The conversion layer produces Oniguruma-dialect text: `^` and `$` are line
// anchors, `\A`/`\z` are the string anchors, and the letter `m` (both as an
// option bit and inside inline modifier groups) means "dot matches newline".
// A backend's job is to compile that text so those conventions hold, and to
// answer position-aware searches against it.
//
// Three backends are provided, one per build configuration:
//
//	(default)       github.com/dlclark/regexp2 — pure Go, exact offset search
//	jsregex_rure    github.com/BurntSushi/rure-go — Rust regex via cgo
//	jsregex_re2     github.com/wasilibs/go-re2 — RE2 via WebAssembly
//
// Exactly one backend is active at a time; all three export the same
// Compile function. Callers that need a different engine entirely can bypass
// the build-tag selection by providing their own CompileFunc to the
// conversion layer.
package engine

// Options is the set of Target-Dialect option bits a compiled pattern can
// carry. Only two source flags survive as option bits: case-insensitivity
// and the target's combined multiline-dot-all mode. The source multi-line
// anchor flag is realized purely through rewriting (line anchors are the
// target default), so it has no bit here.
type Options uint32

const (
	// OptIgnoreCase enables case-insensitive matching (source flag "i").
	OptIgnoreCase Options = 1 << iota

	// OptMultiLine enables the target's multi-line mode, in which "."
	// also matches line terminators (source flag "s").
	OptMultiLine
)

// Letters returns the target-dialect option letters for o, in a stable
// order. Used for diagnostics and CLI output.
func (o Options) Letters() string {
	var buf [2]byte
	n := 0
	if o&OptIgnoreCase != 0 {
		buf[n] = 'i'
		n++
	}
	if o&OptMultiLine != 0 {
		buf[n] = 'm'
		n++
	}
	return string(buf[:n])
}

// Pattern is a compiled, stateless Target-Dialect pattern.
//
// Implementations are immutable and safe for concurrent use; all mutable
// matching state (the global/sticky cursor) lives in the matcher package.
type Pattern interface {
	// FindSubmatchIndexAt returns the index pairs of the leftmost match
	// beginning at or after byte position pos, or nil if there is none.
	//
	// The result follows the stdlib regexp convention: pairs[0:2] is the
	// full match, pairs[2i:2i+2] the ith capture group, -1/-1 for groups
	// that did not participate. All offsets are byte offsets into text.
	//
	// Anchors refer to the full text: a string-start anchor must not
	// match at pos > 0. Backends that cannot search a region natively
	// approximate this by slicing and document the divergence.
	FindSubmatchIndexAt(text string, pos int) []int
}

// CompileFunc compiles Target-Dialect pattern text under the given option
// bits. It is the signature of this package's Compile and of any caller
// supplied replacement.
type CompileFunc func(text string, opts Options) (Pattern, error)
