package scanner

// Scan implements scan(cursor) -> Token: start at state 0, consume bytes
// of input one at a time as long as the current state has a transition
// covering the next byte, then invoke the action of whichever state the
// scan stopped in on the bytes consumed so far. It returns that token
// and the number of bytes consumed.
//
// This is unconditionally the longest match: the loop only stops when no
// further transition applies, so there is no backtracking and no notion
// of "almost matched". A scan that never leaves state 0 (including on an
// empty input) returns t.Actions[0] applied to an empty lexeme — the
// reject action, unless the catalogue itself accepts the empty string.
//
// Scan never reads past len(input) and gives no byte an end-of-input
// meaning; a catalogue that wants an explicit end-of-file token includes
// an ordinary rule for its terminator byte, such as pattern.Byte(0).
func (t *Tables) Scan(input []byte) (Token, int) {
	state := StateID(0)
	cursor := 0
	for cursor < len(input) {
		target, ok := t.Rows[state].step(input[cursor])
		if !ok {
			break
		}
		state = target
		cursor++
	}
	return t.Actions[state](input[:cursor]), cursor
}
