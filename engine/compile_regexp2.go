//go:build !jsregex_rure && !jsregex_re2

package engine

import (
	"github.com/dlclark/regexp2"

	"github.com/coregx/jsregex/internal/conv"
)

// Compile compiles Target-Dialect pattern text using the regexp2 backend.
//
// This is the default backend: pure Go, capture groups, and a real
// position-aware search (FindStringMatchStartingAt), so string anchors keep
// their meaning relative to the full input at any starting position.
//
// Option mapping: regexp2 spells line-anchor mode Multiline and dot-all
// Singleline. Line-anchor mode is always enabled to reproduce the target
// dialect's line-based `^`/`$` default; OptMultiLine maps to Singleline.
func Compile(text string, opts Options) (Pattern, error) {
	ropts := regexp2.None | regexp2.Multiline
	if opts&OptIgnoreCase != 0 {
		ropts |= regexp2.IgnoreCase
	}
	if opts&OptMultiLine != 0 {
		ropts |= regexp2.Singleline
	}
	re, err := regexp2.Compile(translateInline(text), ropts)
	if err != nil {
		return nil, err
	}
	return &regexp2Pattern{re: re}, nil
}

type regexp2Pattern struct {
	re *regexp2.Regexp
}

// FindSubmatchIndexAt implements Pattern. regexp2 takes a byte offset as
// its starting position but reports match and capture positions as rune
// offsets, so only the outputs go through internal/conv. A starting
// position inside a multibyte rune is rejected by regexp2 and yields no
// match.
func (p *regexp2Pattern) FindSubmatchIndexAt(text string, pos int) []int {
	if pos < 0 || pos > len(text) {
		return nil
	}
	m, err := p.re.FindStringMatchStartingAt(text, pos)
	if err != nil || m == nil {
		return nil
	}

	groups := m.Groups()
	pairs := make([]int, 0, 2*len(groups))
	for i := range groups {
		g := &groups[i]
		if len(g.Captures) == 0 {
			pairs = append(pairs, -1, -1)
			continue
		}
		// A quantified group keeps every iteration's capture; the last
		// one is what the source dialect reports.
		c := &g.Captures[len(g.Captures)-1]
		pairs = append(pairs,
			conv.ByteOffset(text, c.Index),
			conv.ByteOffset(text, c.Index+c.Length))
	}
	return pairs
}
