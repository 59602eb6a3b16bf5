package charset

// Sentinel runes understood by the matching engine. Both live in the
// Unicode non-character range, so they can never occur in real input text.
const (
	// EOI marks the end of the input. The input buffer reports it for
	// every index at or past the end of the text.
	EOI rune = '\uFFFF'

	// Empty marks "this rule may succeed without consuming input" in
	// starter and follower set computations. It never appears in the
	// input itself.
	Empty rune = '\uFFFE'
)
