package view

import (
	"github.com/wippyai/runedfa/dfa"
	"github.com/wippyai/runedfa/errors"
)

// View is an immutable borrow of a byte buffer known to be well-formed in
// one encoding variant. The zero View is an empty, valid view of strict
// UTF-8.
type View struct {
	data   []byte
	tables *dfa.Tables
}

// FromValidated validates b in the given variant and returns a View over
// it. The whole buffer is scanned; on rejection the error carries the
// offset of the first bad byte.
func FromValidated(b []byte, t *dfa.Tables) (*View, error) {
	cursor := 0
	if !t.ValidateCursor(b, &cursor) {
		return nil, errors.New(errors.PhaseView, errors.KindMalformed).
			Variant(t.Name()).
			Offset(cursor).
			Byte(b[cursor]).
			Build()
	}
	return &View{data: b, tables: t}, nil
}

// FromTrusted returns a View without validating b. The caller asserts that
// b is well-formed in the given variant; iterating a View over malformed
// bytes yields unspecified runes or panics.
func FromTrusted(b []byte, t *dfa.Tables) *View {
	return &View{data: b, tables: t}
}

// Bytes returns the underlying buffer. It is the same backing array the
// View borrows, not a copy; callers must not mutate it.
func (v *View) Bytes() []byte { return v.data }

// Len returns the buffer length in bytes.
func (v *View) Len() int { return len(v.data) }

// Tables returns the variant this View was validated against.
func (v *View) Tables() *dfa.Tables {
	if v.tables == nil {
		return dfa.UTF8
	}
	return v.tables
}

// Runes materializes all codepoints. For large buffers prefer Iter.
func (v *View) Runes() []rune {
	out := make([]rune, 0, len(v.data))
	it := v.Iter()
	for r, ok := it.Next(); ok; r, ok = it.Next() {
		out = append(out, r)
	}
	return out
}

// Iter returns a new iterator positioned at the start of the View.
func (v *View) Iter() *Iterator {
	return &Iterator{view: v}
}

// Iterator is a cursor over a View's codepoints. It must not outlive its
// View. A fresh Iterator from the same View restarts the walk; the View
// itself is never modified.
type Iterator struct {
	view   *View
	cursor int
}

// Next returns the next codepoint, or false when the View is exhausted.
func (it *Iterator) Next() (rune, bool) {
	v := it.view
	if it.cursor >= len(v.data) {
		return 0, false
	}
	return v.Tables().DecodeRuneAssumeValid(v.data, &it.cursor), true
}

// NextBytes returns the raw bytes of the next codepoint, or false when the
// View is exhausted. The slice aliases the View's buffer.
func (it *Iterator) NextBytes() ([]byte, bool) {
	v := it.view
	start := it.cursor
	if start >= len(v.data) {
		return nil, false
	}
	v.Tables().DecodeRuneAssumeValid(v.data, &it.cursor)
	return v.data[start:it.cursor], true
}

// Peek returns the bytes spanning the next n codepoints without advancing
// the iterator, fewer if the View is exhausted first. The slice aliases the
// View's buffer.
func (it *Iterator) Peek(n int) []byte {
	v := it.view
	ahead := it.cursor
	for i := 0; i < n && ahead < len(v.data); i++ {
		v.Tables().DecodeRuneAssumeValid(v.data, &ahead)
	}
	return v.data[it.cursor:ahead]
}

// Offset returns the iterator's byte position within the View.
func (it *Iterator) Offset() int { return it.cursor }
