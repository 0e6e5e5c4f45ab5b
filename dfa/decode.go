package dfa

import (
	"github.com/wippyai/runedfa/errors"
)

// DecodeRune decodes exactly one codepoint starting at *cursor, which must
// be less than len(b). On success the cursor advances one past the last
// consumed byte. On failure the cursor is left at the byte that produced the
// reject transition (for a truncated trailing sequence, at the lead byte),
// and the returned error carries the same offset.
func (t *Tables) DecodeRune(b []byte, cursor *int) (rune, error) {
	return t.decodeRune(errors.PhaseDecode, b, cursor)
}

func (t *Tables) decodeRune(phase errors.Phase, b []byte, cursor *int) (rune, error) {
	i := *cursor
	lead := b[i]
	class := t.classes[lead]
	n := int(t.lengths[class])

	if n == 0 {
		// Not a legal sequence start: continuation byte, 0xC0/0xC1,
		// 0xF5-0xFF, or a forbidden control byte in the Text variant.
		return 0, t.malformed(phase, i, lead)
	}
	if rem := len(b) - i; n > rem {
		// Check before touching continuation bytes.
		return 0, t.truncated(phase, i, lead, n, rem)
	}
	if n == 1 {
		*cursor = i + 1
		return rune(lead), nil
	}

	state := uint32(t.transitions[class])
	acc := uint32(lead) & uint32(t.masks[class])
	for j := i + 1; j < i+n; j++ {
		state, acc = t.Step(state, acc, b[j])
		if state == Reject {
			*cursor = j
			return 0, t.malformed(phase, j, b[j])
		}
	}
	*cursor = i + n
	return rune(acc), nil
}

// DecodeRuneAssumeValid decodes one codepoint at *cursor without any
// validity or bounds checking beyond the lead byte's implied length. The
// buffer from *cursor on must begin with a well-formed sequence in this
// variant; the caller asserts that, typically via prior validation. Feeding
// malformed input yields an unspecified rune or an out-of-range panic.
func (t *Tables) DecodeRuneAssumeValid(b []byte, cursor *int) rune {
	i := *cursor
	lead := b[i]
	if lead < 0x80 {
		*cursor = i + 1
		return rune(lead)
	}
	class := t.classes[lead]
	n := int(t.lengths[class])
	acc := uint32(lead) & uint32(t.masks[class])
	for j := 1; j < n; j++ {
		acc = acc<<6 | uint32(b[i+j])&0x3F
	}
	*cursor = i + n
	return rune(acc)
}

func (t *Tables) malformed(phase errors.Phase, offset int, b byte) *errors.Error {
	return errors.New(phase, errors.KindMalformed).
		Variant(t.name).
		Offset(offset).
		Byte(b).
		Build()
}

func (t *Tables) truncated(phase errors.Phase, offset int, lead byte, need, have int) *errors.Error {
	err := errors.Truncated(phase, offset, lead, need, have)
	err.Variant = t.name
	return err
}
