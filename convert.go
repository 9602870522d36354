package jsregex

import (
	"fmt"
	"strings"

	"github.com/coregx/jsregex/engine"
	"github.com/coregx/jsregex/flags"
	"github.com/coregx/jsregex/literal"
	"github.com/coregx/jsregex/matcher"
	"github.com/coregx/jsregex/rewrite"
)

// Config controls a conversion.
//
// Example:
//
//	cfg := jsregex.DefaultConfig()
//	cfg.Flags = "gi"
//	cfg.Compile = false // rewrite only, skip the compile probe
//	res := jsregex.ConvertWithConfig(`^foo$`, cfg)
type Config struct {
	// Flags is the source-dialect flag string applied to the pattern.
	// Default: none.
	Flags string

	// Compile enables compiling the rewritten text with the engine
	// backend. When false, Result.Pattern and Result.Matcher stay nil.
	// Default: true.
	Compile bool

	// CompileFunc overrides the backend selected at build time. Nil
	// means engine.Compile.
	CompileFunc engine.CompileFunc
}

// DefaultConfig returns the configuration used by Convert and
// ConvertPattern: compile with the build-selected backend, no flags.
func DefaultConfig() Config {
	return Config{Compile: true}
}

// Convert converts a /pattern/flags literal. It fails only on a malformed
// literal (ErrMalformedLiteral); every other condition is recorded on the
// returned Result and conversion completes best-effort.
//
// Example:
//
//	res, err := jsregex.Convert(`/a[^]b/`)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Output) // `a[\s\S]b`
func Convert(lit string) (*Result, error) {
	pattern, flagStr, err := literal.Split(lit)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	cfg.Flags = flagStr
	return ConvertWithConfig(pattern, cfg), nil
}

// ConvertPattern converts bare pattern text under an explicit flag string,
// for callers that already hold the two halves of a literal. It cannot
// fail; problems surface as diagnostics.
func ConvertPattern(pattern, flagStr string) *Result {
	cfg := DefaultConfig()
	cfg.Flags = flagStr
	return ConvertWithConfig(pattern, cfg)
}

// ConvertWithConfig runs the full pipeline on bare pattern text: normalize
// flags, rewrite, optionally compile, and attach a stateful matcher when
// the flag set asks for global or sticky behavior.
func ConvertWithConfig(pattern string, cfg Config) *Result {
	compileFn := cfg.CompileFunc
	if compileFn == nil {
		compileFn = engine.Compile
	}

	res := &Result{Source: pattern, SourceFlags: cfg.Flags}

	set, unknown, duplicate := flags.Normalize(cfg.Flags)
	for _, f := range unknown {
		res.Diagnostics = append(res.Diagnostics, fmt.Sprintf("unknown flag %q", f))
	}
	for _, f := range duplicate {
		res.Diagnostics = append(res.Diagnostics, fmt.Sprintf("duplicate flag %q", f))
	}
	if unsupported := set.Unrepresentable(); len(unsupported) > 0 {
		res.Unsupported = unsupported
		res.Diagnostics = append(res.Diagnostics,
			fmt.Sprintf("flags without a target equivalent dropped: %s", strings.Join(unsupported, ", ")))
	}

	base := rewrite.Scope{
		LineAnchors: set.Has(flags.MultiLine),
		IgnoreCase:  set.Has(flags.IgnoreCase),
		DotAll:      set.Has(flags.DotAll),
	}
	out, diags := rewrite.Rewrite(pattern, base)
	res.Output = out
	res.Options = set.Options()
	res.Diagnostics = append(res.Diagnostics, diags...)

	if !cfg.Compile {
		return res
	}
	pat, err := compileFn(out, res.Options)
	if err != nil {
		res.Diagnostics = append(res.Diagnostics, fmt.Sprintf("target pattern failed to compile: %v", err))
		return res
	}
	res.Pattern = pat
	if set.Has(flags.Global) || set.Has(flags.Sticky) {
		res.Matcher = matcher.New(pat, set.Has(flags.Global), set.Has(flags.Sticky))
	}
	return res
}

// TryConvert is the best-effort entry point: it converts and compiles a
// /pattern/flags literal, collapsing every failure — malformed literal,
// unrewritable pattern, compile error — to nil.
func TryConvert(lit string) engine.Pattern {
	res, err := Convert(lit)
	if err != nil {
		return nil
	}
	return res.Pattern
}

// TryConvertPattern is TryConvert for callers holding bare pattern text and
// an explicit flag string: nil on any failure, the compiled pattern
// otherwise.
func TryConvertPattern(pattern, flagStr string) engine.Pattern {
	return ConvertPattern(pattern, flagStr).Pattern
}
