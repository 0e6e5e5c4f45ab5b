package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/runedfa/dfa"
	"github.com/wippyai/runedfa/errors"
)

func TestFromValidated(t *testing.T) {
	v, err := FromValidated([]byte("aé€🤓"), dfa.UTF8)
	require.NoError(t, err)
	assert.Equal(t, 10, v.Len())
	assert.Equal(t, "utf8", v.Tables().Name())
}

func TestFromValidatedRejects(t *testing.T) {
	tests := []struct {
		name       string
		input      []byte
		wantOffset int
	}{
		{"bad byte", []byte("ab\xFFcd"), 2},
		{"surrogate", []byte("x\xED\xA0\x80"), 2},
		{"truncated tail", []byte("ok\xE0"), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := FromValidated(tt.input, dfa.UTF8)
			require.Error(t, err)
			assert.Nil(t, v)
			assert.True(t, errors.IsMalformed(err))
			assert.Equal(t, tt.wantOffset, errors.OffsetOf(err))
		})
	}
}

func TestFromTrustedSkipsValidation(t *testing.T) {
	// Well-formed input through the trusted path behaves identically.
	v := FromTrusted([]byte("αβγ"), dfa.UTF8)
	assert.Equal(t, []rune("αβγ"), v.Runes())
}

func TestIteratorNext(t *testing.T) {
	input := "a∅🤓é"
	v, err := FromValidated([]byte(input), dfa.UTF8)
	require.NoError(t, err)

	it := v.Iter()
	var got []rune
	for r, ok := it.Next(); ok; r, ok = it.Next() {
		got = append(got, r)
	}
	assert.Equal(t, []rune(input), got)

	// Exhausted iterator stays exhausted.
	_, ok := it.Next()
	assert.False(t, ok)
}

func TestIteratorNextBytes(t *testing.T) {
	v, err := FromValidated([]byte("a€🤓"), dfa.UTF8)
	require.NoError(t, err)

	it := v.Iter()
	var slices [][]byte
	for b, ok := it.NextBytes(); ok; b, ok = it.NextBytes() {
		slices = append(slices, b)
	}

	require.Len(t, slices, 3)
	assert.Equal(t, []byte("a"), slices[0])
	assert.Equal(t, []byte("€"), slices[1])
	assert.Equal(t, []byte("🤓"), slices[2])
}

func TestIteratorPeek(t *testing.T) {
	v, err := FromValidated([]byte("aé€🤓"), dfa.UTF8)
	require.NoError(t, err)

	it := v.Iter()
	assert.Equal(t, []byte("a"), it.Peek(1))
	assert.Equal(t, []byte("aé"), it.Peek(2))
	assert.Equal(t, []byte("aé€"), it.Peek(3))
	// Peek past the end stops early.
	assert.Equal(t, []byte("aé€🤓"), it.Peek(10))
	// Peek never advances.
	assert.Equal(t, 0, it.Offset())

	it.Next()
	it.Next()
	assert.Equal(t, []byte("€🤓"), it.Peek(5))
}

func TestIteratorRestart(t *testing.T) {
	v, err := FromValidated([]byte("αβγ"), dfa.UTF8)
	require.NoError(t, err)

	first := v.Iter()
	for _, ok := first.Next(); ok; _, ok = first.Next() {
	}

	// A fresh iterator from the same View sees everything again.
	second := v.Iter()
	assert.Equal(t, []rune("αβγ"), drain(second))
}

func TestIteratorMatchesCursorDecode(t *testing.T) {
	// Repeated DecodeRune and iterator Next must visit the same
	// codepoints at the same byte offsets.
	inputs := []string{
		"",
		"abcde",
		"αβγδε",
		"∅⊄⊅⊆⊇",
		"🤓😎🥸🤩🤯",
		"mixed aé€🤓 text",
	}

	for _, input := range inputs {
		b := []byte(input)
		v, err := FromValidated(b, dfa.UTF8)
		require.NoError(t, err)

		it := v.Iter()
		cursor := 0
		for cursor < len(b) {
			wantOffset := cursor
			want, err := dfa.UTF8.DecodeRune(b, &cursor)
			require.NoError(t, err)

			assert.Equal(t, wantOffset, it.Offset(), "input %q", input)
			got, ok := it.Next()
			require.True(t, ok, "input %q", input)
			assert.Equal(t, want, got, "input %q offset %d", input, wantOffset)
		}
		_, ok := it.Next()
		assert.False(t, ok)
	}
}

func TestCountMatchesIteratorLength(t *testing.T) {
	inputs := []string{"", "abcde", "αβγδε", "∅⊄⊅⊆⊇", "🤓😎🥸🤩🤯"}

	for _, input := range inputs {
		b := []byte(input)
		count, err := dfa.UTF8.Count(b)
		require.NoError(t, err)

		v, err := FromValidated(b, dfa.UTF8)
		require.NoError(t, err)
		assert.Equal(t, count, len(drain(v.Iter())), "input %q", input)
	}
}

func TestViewWTF8(t *testing.T) {
	raw := []byte{0xED, 0xA0, 0xBD} // lone high surrogate U+D83D

	_, err := FromValidated(raw, dfa.UTF8)
	require.Error(t, err)

	v, err := FromValidated(raw, dfa.WTF8)
	require.NoError(t, err)
	assert.Equal(t, []rune{0xD83D}, v.Runes())
}

func drain(it *Iterator) []rune {
	var out []rune
	for r, ok := it.Next(); ok; r, ok = it.Next() {
		out = append(out, r)
	}
	return out
}
