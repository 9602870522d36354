// Package conv provides offset conversion helpers for backends whose match
// positions are not byte-based.
//
// The engine.Pattern contract is byte offsets into the searched string, but
// regexp2 reports match positions as rune offsets. ByteOffset maps them
// back. It panics on out-of-range offsets since that indicates a
// programming error (an offset that does not belong to the string it is
// applied to).
package conv

// ByteOffset converts rune offset r in s to the corresponding byte offset.
// Panics if r exceeds the rune length of s.
func ByteOffset(s string, r int) int {
	if r < 0 {
		panic("conv: rune offset out of range")
	}
	n := 0
	for i := range s {
		if n == r {
			return i
		}
		n++
	}
	if n == r {
		return len(s)
	}
	panic("conv: rune offset out of range")
}
