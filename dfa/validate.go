package dfa

// Validate reports whether b is well-formed in this variant. The empty
// buffer is well-formed. The whole buffer is always scanned; a trailing
// partial sequence makes the result false.
func (t *Tables) Validate(b []byte) bool {
	state := Accept
	for i := 0; i < len(b); i++ {
		c := b[i]
		// ASCII at a sequence boundary is an identity transition; skip
		// the table walk. The class check (rather than c < 0x80) keeps
		// the Text variant's forbidden control bytes out of the fast
		// path.
		if state == Accept && t.classes[c] == clsASCII {
			continue
		}
		state = t.nextState(state, c)
		if state == Reject {
			return false
		}
	}
	return state == Accept
}

// ValidateCursor validates b starting at *cursor. On success it returns
// true with the cursor at len(b). On failure it returns false with the
// cursor at the first rejecting byte, or, for a truncated trailing
// sequence, just past the last complete codepoint.
func (t *Tables) ValidateCursor(b []byte, cursor *int) bool {
	state := Accept
	lastGood := *cursor
	for i := *cursor; i < len(b); i++ {
		c := b[i]
		if state == Accept && t.classes[c] == clsASCII {
			lastGood = i + 1
			continue
		}
		state = t.nextState(state, c)
		switch state {
		case Reject:
			*cursor = i
			return false
		case Accept:
			lastGood = i + 1
		}
	}
	*cursor = lastGood
	return state == Accept
}
