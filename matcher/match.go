package matcher

// Match represents one successful match, with the full-match span and every
// capture group's span as byte offsets into the searched text.
//
// A Match keeps a reference to the searched string; it does not copy.
type Match struct {
	input string
	pairs []int
}

func newMatch(input string, pairs []int) *Match {
	return &Match{input: input, pairs: pairs}
}

// Start returns the inclusive start position of the full match.
func (m *Match) Start() int {
	return m.pairs[0]
}

// End returns the exclusive end position of the full match.
func (m *Match) End() int {
	return m.pairs[1]
}

// Len returns the length of the full match in bytes.
func (m *Match) Len() int {
	return m.pairs[1] - m.pairs[0]
}

// Text returns the matched substring.
func (m *Match) Text() string {
	return m.input[m.pairs[0]:m.pairs[1]]
}

// NumGroups returns the number of capture groups reported by the engine,
// not counting the full match.
func (m *Match) NumGroups() int {
	return len(m.pairs)/2 - 1
}

// GroupIndex returns the span of group i (0 is the full match). Groups
// that did not participate in the match report -1, -1.
func (m *Match) GroupIndex(i int) (start, end int) {
	return m.pairs[2*i], m.pairs[2*i+1]
}

// Group returns the text of group i (0 is the full match), or the empty
// string if the group did not participate.
func (m *Match) Group(i int) string {
	start, end := m.GroupIndex(i)
	if start < 0 {
		return ""
	}
	return m.input[start:end]
}
