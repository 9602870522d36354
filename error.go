package jsregex

import (
	"github.com/coregx/jsregex/literal"
)

// ErrMalformedLiteral is reported by Convert and friends when the input is
// not a well-formed /pattern/flags literal. It is the only failure the
// strict entry points propagate; everything else surfaces as diagnostics on
// the Result. Test with errors.Is.
var ErrMalformedLiteral = literal.ErrMalformed
