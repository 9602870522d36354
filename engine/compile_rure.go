//go:build jsregex_rure

package engine

import (
	rure "github.com/BurntSushi/rure-go"
)

// Compile compiles Target-Dialect pattern text using the Rust regex engine
// via rure-go.
//
// Rust regex takes its modes from inline flags, so the option bits become a
// flag prefix: line-anchor mode always on, "i"/"s" as requested.
//
// Backend limitations, both documented on Pattern:
//   - no capture groups are reported, only the full match;
//   - searches at pos > 0 slice the haystack, so a `\A` in the pattern
//     matches at pos rather than only at the true string start.
func Compile(text string, opts Options) (Pattern, error) {
	re, err := rure.CompileOptions(inlinePrefix(opts)+translateInline(text), 0, rure.NewOptions())
	if err != nil {
		return nil, err
	}
	return &rurePattern{re: re}, nil
}

type rurePattern struct {
	re *rure.Regex
}

// FindSubmatchIndexAt implements Pattern.
func (p *rurePattern) FindSubmatchIndexAt(text string, pos int) []int {
	if pos < 0 || pos > len(text) {
		return nil
	}
	start, end, ok := p.re.FindBytes([]byte(text[pos:]))
	if !ok {
		return nil
	}
	return []int{pos + start, pos + end}
}
