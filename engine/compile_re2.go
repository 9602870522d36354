//go:build jsregex_re2 && !jsregex_rure

package engine

import (
	regexp "github.com/wasilibs/go-re2"
)

// Compile compiles Target-Dialect pattern text using RE2 through go-re2's
// stdlib-shaped API.
//
// RE2 takes its modes from inline flags, so the option bits become a flag
// prefix: line-anchor mode always on, "i"/"s" as requested.
//
// Backend limitation: searches at pos > 0 slice the haystack, so a `\A` in
// the pattern matches at pos rather than only at the true string start. The
// default backend searches exactly.
func Compile(text string, opts Options) (Pattern, error) {
	re, err := regexp.Compile(inlinePrefix(opts) + translateInline(text))
	if err != nil {
		return nil, err
	}
	return &re2Pattern{re: re}, nil
}

type re2Pattern struct {
	re *regexp.Regexp
}

// FindSubmatchIndexAt implements Pattern.
func (p *re2Pattern) FindSubmatchIndexAt(text string, pos int) []int {
	if pos < 0 || pos > len(text) {
		return nil
	}
	pairs := p.re.FindStringSubmatchIndex(text[pos:])
	if pairs == nil {
		return nil
	}
	out := make([]int, len(pairs))
	for i, v := range pairs {
		if v < 0 {
			out[i] = -1
		} else {
			out[i] = v + pos
		}
	}
	return out
}
