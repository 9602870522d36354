// Package jsregex converts ECMAScript regular expressions into the
// Oniguruma-style dialect used by the configured engine backend, and
// emulates the source dialect's global/sticky matching protocol on top of
// the resulting stateless pattern.
//
// The conversion pipeline is:
//
//	literal.Split -> flags.Normalize -> rewrite.Rewrite -> engine.Compile -> matcher.New
//
// The first two stages are the front door: they take apart a /pattern/flags
// literal and validate its flag string. The rewriter is the text-transform
// core; it adjusts anchors, inline modifier groups and escape sequences for
// the target dialect's different defaults. Compilation is delegated to a
// pluggable backend (regexp2 by default; see the engine package), and
// patterns carrying "g" or "y" additionally get a stateful matcher.
//
// Basic usage:
//
//	res, err := jsregex.Convert(`/^foo$/i`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Output) // `\Afoo\z`
//
//	// Cursor-based iteration for a global regex
//	res, _ = jsregex.Convert(`/o/g`)
//	for m := range res.Matcher.MatchAll("foo boo") {
//	    fmt.Println(m.Start())
//	}
//
// Conversion is best-effort by design: structural problems in the pattern
// (an extra ")", an unterminated class) and untranslatable flags are
// reported through Result.Diagnostics while conversion still completes.
// Only a malformed literal makes Convert fail; TryConvert swallows even
// that and degrades to nil.
package jsregex
