package dfa

import (
	"strings"
	"testing"

	"github.com/wippyai/runedfa/errors"
)

func TestCount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"empty", "", 0},
		{"ascii", "abcde", 5},
		{"greek two byte", "αβγδε", 5},
		{"math three byte", "∅⊄⊅⊆⊇", 5},
		{"emoji four byte", "🤓😎🥸🤩🤯", 5},
		{"mixed widths", "aα∅🤓", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := UTF8.Count([]byte(tt.input))
			if err != nil {
				t.Fatalf("Count: %v", err)
			}
			if got != tt.want {
				t.Errorf("Count(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestCountASCIIIdentity(t *testing.T) {
	input := []byte("abcde")
	cursor := 0
	for i, want := range input {
		r, err := UTF8.DecodeRune(input, &cursor)
		if err != nil {
			t.Fatal(err)
		}
		if r != rune(want) {
			t.Errorf("codepoint %d = %#x, want byte value %#x", i, r, want)
		}
	}
}

func TestCountMalformed(t *testing.T) {
	tests := []struct {
		name       string
		input      []byte
		wantOffset int
	}{
		{"bad byte", []byte("abc\xFFdef"), 3},
		{"truncated tail", []byte("abcé\xE0"), 5},
		{"surrogate", []byte("xy\xED\xA0\x80"), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UTF8.Count(tt.input)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.IsMalformed(err) {
				t.Fatalf("error kind: %v", err)
			}
			if got := errors.OffsetOf(err); got != tt.wantOffset {
				t.Errorf("offset = %d, want %d", got, tt.wantOffset)
			}
		})
	}
}

func TestCountLongInput(t *testing.T) {
	input := strings.Repeat("ascii and ünïcödé and 🤓 ", 1000)
	want := len([]rune(input))
	got, err := UTF8.Count([]byte(input))
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("Count = %d, want %d", got, want)
	}
}
