package engine

import "testing"

func TestTranslateInline(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no groups", "abc", "abc"},
		{"dotall header", "(?m:a.c)", "(?s:a.c)"},
		{"case header untouched", "(?i:abc)", "(?i:abc)"},
		{"combined header", "(?im:a)", "(?is:a)"},
		{"disable side", "(?i-m:a)", "(?i-s:a)"},
		{"plain non-capturing", "(?:a)", "(?:a)"},
		{"lookahead untouched", "(?=a)(?m:b)", "(?=a)(?s:b)"},
		{"named group untouched", "(?<m>a)", "(?<m>a)"},
		{"nested headers", "(?m:a(?-m:b))", "(?s:a(?-s:b))"},
		// Literal header-shaped text inside a class stays put.
		{"class content untouched", "[(?m:]x", "[(?m:]x"},
		{"escaped paren", `\(?m:`, `\(?m:`},
		{"letters outside headers untouched", "mam(?m:m)", "mam(?s:m)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := translateInline(tt.in); got != tt.want {
				t.Errorf("translateInline(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestInlinePrefix(t *testing.T) {
	tests := []struct {
		opts Options
		want string
	}{
		{0, "(?m)"},
		{OptIgnoreCase, "(?mi)"},
		{OptMultiLine, "(?ms)"},
		{OptIgnoreCase | OptMultiLine, "(?mis)"},
	}

	for _, tt := range tests {
		if got := inlinePrefix(tt.opts); got != tt.want {
			t.Errorf("inlinePrefix(%v) = %q, want %q", tt.opts, got, tt.want)
		}
	}
}

func TestOptionsLetters(t *testing.T) {
	tests := []struct {
		opts Options
		want string
	}{
		{0, ""},
		{OptIgnoreCase, "i"},
		{OptMultiLine, "m"},
		{OptIgnoreCase | OptMultiLine, "im"},
	}

	for _, tt := range tests {
		if got := tt.opts.Letters(); got != tt.want {
			t.Errorf("Letters(%v) = %q, want %q", tt.opts, got, tt.want)
		}
	}
}
