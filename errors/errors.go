package errors

import (
	"fmt"
	"strings"
)

// Phase indicates which engine operation produced the error
type Phase string

const (
	PhaseDecode    Phase = "decode"    // single-rune cursor decode
	PhaseValidate  Phase = "validate"  // bulk validation
	PhaseCount     Phase = "count"     // codepoint counting
	PhaseTranscode Phase = "transcode" // UTF-16 transcoding
	PhaseView      Phase = "view"      // validated view construction
)

// Kind categorizes the error
type Kind string

const (
	// KindMalformed is the engine's single domain error: the input is not
	// well-formed in the selected encoding variant. Truncated trailing
	// sequences are reported under this kind as well.
	KindMalformed Kind = "malformed_encoding"
)

// Error is the structured error type used throughout the library
type Error struct {
	Cause   error
	Phase   Phase
	Kind    Kind
	Variant string
	Detail  string
	Offset  int
	Byte    byte
	HasByte bool
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Variant != "" {
		b.WriteString(" (")
		b.WriteString(e.Variant)
		b.WriteByte(')')
	}

	fmt.Fprintf(&b, " at offset %d", e.Offset)

	if e.HasByte {
		fmt.Fprintf(&b, ": byte 0x%02X", e.Byte)
	}

	if e.Detail != "" {
		b.WriteString(" - ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying cause for errors.Is/As chains
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches errors by Kind, so callers can do
// errors.Is(err, &errors.Error{Kind: errors.KindMalformed})
// without caring about phase or offset.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != "" && t.Kind != e.Kind {
		return false
	}
	if t.Phase != "" && t.Phase != e.Phase {
		return false
	}
	return true
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Offset sets the byte offset of the rejecting input byte
func (b *Builder) Offset(off int) *Builder {
	b.err.Offset = off
	return b
}

// Byte sets the input byte that produced the reject transition
func (b *Builder) Byte(c byte) *Builder {
	b.err.Byte = c
	b.err.HasByte = true
	return b
}

// Variant sets the encoding variant name (utf8, wtf8, text)
func (b *Builder) Variant(name string) *Builder {
	b.err.Variant = name
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// Malformed creates a malformed-encoding error for the byte at offset
func Malformed(phase Phase, offset int, c byte) *Error {
	return &Error{
		Phase:   phase,
		Kind:    KindMalformed,
		Offset:  offset,
		Byte:    c,
		HasByte: true,
	}
}

// Truncated creates a malformed-encoding error for a multi-byte sequence
// cut off by the end of the buffer. The offset is the lead byte's offset.
func Truncated(phase Phase, offset int, lead byte, need, have int) *Error {
	return &Error{
		Phase:   phase,
		Kind:    KindMalformed,
		Offset:  offset,
		Byte:    lead,
		HasByte: true,
		Detail:  fmt.Sprintf("sequence needs %d bytes, %d remain", need, have),
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

// IsMalformed reports whether err (or anything it wraps) is a
// malformed-encoding error from this library.
func IsMalformed(err error) bool {
	for err != nil {
		if e, ok := err.(*Error); ok && e.Kind == KindMalformed {
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}

// OffsetOf returns the rejecting byte offset carried by err, or -1 if err
// is not a structured error from this library.
func OffsetOf(err error) int {
	for err != nil {
		if e, ok := err.(*Error); ok {
			return e.Offset
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return -1
		}
		err = u.Unwrap()
	}
	return -1
}
