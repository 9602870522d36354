// Package literal splits ECMAScript regex literals of the form /pattern/flags
// into their bare pattern text and flag string.
//
// Splitting follows the source grammar's closing rules: a "/" ends the
// pattern only when it is neither escaped nor inside a character class, so
// `/a\/b/g` and `/a[/]b/i` both split correctly. The pattern text itself is
// not validated here.
package literal

import (
	"errors"
	"fmt"
)

// ErrMalformed reports a string that is not a well-formed regex literal:
// it does not start with "/", or its closing "/" is never found outside a
// character class or escape.
var ErrMalformed = errors.New("malformed regexp literal")

// Split separates a /pattern/flags literal into pattern text and flag
// string. The flags are returned raw; see the flags package for
// normalization.
//
// Example:
//
//	pat, fl, err := literal.Split(`/foo\/bar/gi`)
//	// pat == `foo\/bar`, fl == "gi", err == nil
func Split(lit string) (pattern, flagStr string, err error) {
	if len(lit) == 0 || lit[0] != '/' {
		return "", "", fmt.Errorf("%w: %q does not start with '/'", ErrMalformed, lit)
	}

	inClass := false
	for i := 1; i < len(lit); i++ {
		switch lit[i] {
		case '\\':
			i++
		case '[':
			inClass = true
		case ']':
			inClass = false
		case '/':
			if !inClass {
				return lit[1:i], lit[i+1:], nil
			}
		}
	}
	return "", "", fmt.Errorf("%w: %q has no closing '/'", ErrMalformed, lit)
}
