//go:build !jsregex_rure && !jsregex_re2

package engine

import "testing"

func mustCompile(t *testing.T, text string, opts Options) Pattern {
	t.Helper()
	p, err := Compile(text, opts)
	if err != nil {
		t.Fatalf("Compile(%q, %v): %v", text, opts, err)
	}
	return p
}

func TestCompileError(t *testing.T) {
	if _, err := Compile("(", 0); err == nil {
		t.Error("Compile(\"(\") succeeded, want error")
	}
}

func TestFindAt(t *testing.T) {
	p := mustCompile(t, "foo", 0)
	tests := []struct {
		text string
		pos  int
		want []int // nil for no match
	}{
		{"foo foo", 0, []int{0, 3}},
		{"foo foo", 1, []int{4, 7}},
		{"foo foo", 4, []int{4, 7}},
		{"foo foo", 5, nil},
		{"foo", -1, nil},
		{"foo", 4, nil},
	}

	for _, tt := range tests {
		got := p.FindSubmatchIndexAt(tt.text, tt.pos)
		if tt.want == nil {
			if got != nil {
				t.Errorf("FindSubmatchIndexAt(%q, %d) = %v, want nil", tt.text, tt.pos, got)
			}
			continue
		}
		if got == nil || got[0] != tt.want[0] || got[1] != tt.want[1] {
			t.Errorf("FindSubmatchIndexAt(%q, %d) = %v, want %v", tt.text, tt.pos, got, tt.want)
		}
	}
}

func TestStringAnchorsAreRegionExact(t *testing.T) {
	// \A refers to the true string start even when the search begins
	// further in; this backend searches the full input, it never slices.
	p := mustCompile(t, `\Afoo`, 0)
	if got := p.FindSubmatchIndexAt("foo foo", 0); got == nil || got[0] != 0 {
		t.Errorf("at 0: got %v, want match at 0", got)
	}
	if got := p.FindSubmatchIndexAt("foo foo", 4); got != nil {
		t.Errorf("at 4: got %v, want nil (\\A must not match mid-string)", got)
	}
}

func TestLineAnchorsByDefault(t *testing.T) {
	// The target dialect's ^/$ are line anchors with no option bit set.
	p := mustCompile(t, "^b", 0)
	if got := p.FindSubmatchIndexAt("a\nb", 0); got == nil || got[0] != 2 {
		t.Errorf("^b on second line: got %v, want match at 2", got)
	}
	p = mustCompile(t, "a$", 0)
	if got := p.FindSubmatchIndexAt("a\nb", 0); got == nil || got[0] != 0 {
		t.Errorf("a$ at first line end: got %v, want match at 0", got)
	}
}

func TestDotAllOption(t *testing.T) {
	if p := mustCompile(t, "a.c", 0); p.FindSubmatchIndexAt("a\nc", 0) != nil {
		t.Error("dot matched newline without OptMultiLine")
	}
	if p := mustCompile(t, "a.c", OptMultiLine); p.FindSubmatchIndexAt("a\nc", 0) == nil {
		t.Error("dot did not match newline with OptMultiLine")
	}
	// Inline form: target (?m:...) is dot-all for its extent.
	if p := mustCompile(t, "(?m:a.c)", 0); p.FindSubmatchIndexAt("a\nc", 0) == nil {
		t.Error("inline (?m:) did not enable dot-all")
	}
}

func TestIgnoreCaseOption(t *testing.T) {
	if p := mustCompile(t, "foo", OptIgnoreCase); p.FindSubmatchIndexAt("FOO", 0) == nil {
		t.Error("OptIgnoreCase had no effect")
	}
	if p := mustCompile(t, "foo", 0); p.FindSubmatchIndexAt("FOO", 0) != nil {
		t.Error("case-sensitive pattern matched different case")
	}
}

func TestCaptureGroups(t *testing.T) {
	p := mustCompile(t, "(a)(b)?", 0)

	got := p.FindSubmatchIndexAt("xab", 0)
	want := []int{1, 3, 1, 2, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("pairs = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("pairs = %v, want %v", got, want)
		}
	}

	got = p.FindSubmatchIndexAt("xa", 0)
	if got == nil || got[0] != 1 || got[1] != 2 {
		t.Fatalf("pairs = %v, want full match at 1..2", got)
	}
	if got[4] != -1 || got[5] != -1 {
		t.Errorf("unset group = (%d, %d), want (-1, -1)", got[4], got[5])
	}
}

func TestByteOffsetsWithMultibyteText(t *testing.T) {
	// regexp2 reports rune positions; the adapter must return byte
	// offsets. "wörld": w=0, ö=1..2, r=3, l=4, d=5.
	p := mustCompile(t, "d", 0)
	if got := p.FindSubmatchIndexAt("wörld", 0); got == nil || got[0] != 5 || got[1] != 6 {
		t.Errorf("got %v, want [5 6]", got)
	}
	p = mustCompile(t, "r", 0)
	if got := p.FindSubmatchIndexAt("wörld", 3); got == nil || got[0] != 3 {
		t.Errorf("search from byte 3: got %v, want match at 3", got)
	}
}

func TestStartPositionIsByteOffset(t *testing.T) {
	// The starting position goes to regexp2 as a byte offset, untranslated.
	// "öa": ö=0..1, a=2. A search from byte 2 must not slide back before
	// the multibyte rune and re-find earlier text.
	p := mustCompile(t, "a", 0)
	if got := p.FindSubmatchIndexAt("öa", 2); got == nil || got[0] != 2 || got[1] != 3 {
		t.Errorf("search from byte 2: got %v, want [2 3]", got)
	}
	if got := p.FindSubmatchIndexAt("öaöa", 3); got == nil || got[0] != 5 {
		t.Errorf("search from byte 3: got %v, want match at 5", got)
	}
	// Byte 1 is inside ö; regexp2 rejects a misaligned start.
	if got := p.FindSubmatchIndexAt("öa", 1); got != nil {
		t.Errorf("search from mid-rune byte: got %v, want nil", got)
	}
}
