package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorString(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "malformed with byte",
			err:  Malformed(PhaseValidate, 3, 0xC0),
			want: "[validate] malformed_encoding at offset 3: byte 0xC0",
		},
		{
			name: "with variant",
			err: New(PhaseDecode, KindMalformed).
				Variant("utf8").
				Offset(7).
				Byte(0xED).
				Build(),
			want: "[decode] malformed_encoding (utf8) at offset 7: byte 0xED",
		},
		{
			name: "with detail",
			err:  Truncated(PhaseCount, 5, 0xE0, 3, 1),
			want: "[count] malformed_encoding at offset 5: byte 0xE0 - sequence needs 3 bytes, 1 remain",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorIs(t *testing.T) {
	err := Malformed(PhaseTranscode, 12, 0xF5)

	if !stderrors.Is(err, &Error{Kind: KindMalformed}) {
		t.Error("expected match on kind alone")
	}
	if !stderrors.Is(err, &Error{Kind: KindMalformed, Phase: PhaseTranscode}) {
		t.Error("expected match on kind+phase")
	}
	if stderrors.Is(err, &Error{Kind: KindMalformed, Phase: PhaseDecode}) {
		t.Error("unexpected match on wrong phase")
	}
}

func TestErrorAs(t *testing.T) {
	var target *Error
	err := fmt.Errorf("reading input: %w", Malformed(PhaseValidate, 9, 0x80))

	if !stderrors.As(err, &target) {
		t.Fatal("errors.As failed")
	}
	if target.Offset != 9 {
		t.Errorf("offset = %d, want 9", target.Offset)
	}
	if !target.HasByte || target.Byte != 0x80 {
		t.Errorf("byte = %v 0x%02X, want 0x80", target.HasByte, target.Byte)
	}
}

func TestWrapAndUnwrap(t *testing.T) {
	cause := stderrors.New("disk exploded")
	err := Wrap(PhaseView, KindMalformed, cause, "buffer rejected")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped cause not found by errors.Is")
	}
	if !strings.Contains(err.Error(), "caused by: disk exploded") {
		t.Errorf("cause missing from message: %q", err.Error())
	}
}

func TestIsMalformed(t *testing.T) {
	if !IsMalformed(Malformed(PhaseDecode, 0, 0xFF)) {
		t.Error("direct error not recognized")
	}
	if !IsMalformed(fmt.Errorf("outer: %w", Malformed(PhaseDecode, 0, 0xFF))) {
		t.Error("wrapped error not recognized")
	}
	if IsMalformed(stderrors.New("unrelated")) {
		t.Error("unrelated error recognized")
	}
	if IsMalformed(nil) {
		t.Error("nil recognized")
	}
}

func TestOffsetOf(t *testing.T) {
	err := fmt.Errorf("ctx: %w", Malformed(PhaseCount, 42, 0xBF))
	if got := OffsetOf(err); got != 42 {
		t.Errorf("OffsetOf = %d, want 42", got)
	}
	if got := OffsetOf(stderrors.New("plain")); got != -1 {
		t.Errorf("OffsetOf(plain) = %d, want -1", got)
	}
}
