package dfa

import (
	"github.com/wippyai/runedfa/errors"
)

// Count returns the number of codepoints in b. It fails with a
// malformed-encoding error on the first bad byte, including a truncated
// sequence at the end of the buffer. Count(b) succeeds exactly when
// Validate(b) is true.
func (t *Tables) Count(b []byte) (int, error) {
	n := 0
	for cursor := 0; cursor < len(b); {
		if _, err := t.decodeRune(errors.PhaseCount, b, &cursor); err != nil {
			debugf("count failed after %d codepoints: %v", n, err)
			return 0, err
		}
		n++
	}
	return n, nil
}
