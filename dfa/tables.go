package dfa

// DFA states. States are multiples of 12; every other multiple of 12 in a
// table is a "waiting for continuation bytes" state.
const (
	// Accept is the initial state and the success terminal.
	Accept uint32 = 0
	// Reject is the permanent error sink.
	Reject uint32 = 12
)

// Byte classes. Each input byte maps to exactly one class; the class both
// selects the transition and the lead-byte value mask.
const (
	clsASCII = 0  // 0x00-0x7F
	clsCB80  = 1  // continuation 0x80-0x8F
	clsL2    = 2  // 2-byte lead 0xC2-0xDF
	clsL3    = 3  // 3-byte lead 0xE1-0xEC, 0xEE-0xEF
	clsL3ED  = 4  // 0xED: next byte limited to 0x80-0x9F (no surrogates)
	clsL4F4  = 5  // 0xF4: next byte limited to 0x80-0x8F (max U+10FFFF)
	clsL4    = 6  // 4-byte lead 0xF1-0xF3
	clsCBA0  = 7  // continuation 0xA0-0xBF
	clsBad   = 8  // never valid: 0xC0, 0xC1, 0xF5-0xFF
	clsCB90  = 9  // continuation 0x90-0x9F
	clsL3E0  = 10 // 0xE0: next byte limited to 0xA0-0xBF (no overlongs)
	clsL4F0  = 11 // 0xF0: next byte limited to 0x90-0xBF (no overlongs)
	clsCtl   = 12 // Text variant only: control byte forbidden in source text
)

// Tables is one immutable encoding variant: byte classes, lead-byte value
// masks, sequence lengths implied by a lead class, and the state transition
// table indexed as transitions[state+class].
type Tables struct {
	name        string
	transitions []uint8
	classes     [256]uint8
	masks       [13]uint8
	lengths     [13]uint8
}

// Name returns the variant name: "utf8", "wtf8" or "text".
func (t *Tables) Name() string { return t.name }

// IsASCII reports whether b is a complete single-byte codepoint in this
// variant. In the Text variant forbidden control bytes are not ASCII even
// though they are below 0x80.
func (t *Tables) IsASCII(b byte) bool { return t.classes[b] == clsASCII }

// leadMasks[c] extracts the significant value bits of a lead byte of class
// c. Continuation and always-invalid classes never contribute lead bits.
var leadMasks = [13]uint8{
	0xFF, 0x7F, 0x3F, 0x1F, 0x0F, 0x07, 0x03, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00,
}

// seqLengths[c] is the total sequence length implied by a lead byte of
// class c, or 0 when the class is not a legal sequence start.
var seqLengths = [13]uint8{1, 0, 2, 3, 3, 4, 4, 0, 0, 0, 3, 4, 0}

// utf8Classes maps bytes to classes for strict UTF-8.
var utf8Classes = [256]uint8{
	//  0  1  2  3  4  5  6  7  8  9  A  B  C  D  E  F
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 0x00-0x0F
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 0x10-0x1F
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 0x20-0x2F
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 0x30-0x3F
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 0x40-0x4F
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 0x50-0x5F
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 0x60-0x6F
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 0x70-0x7F
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, // 0x80-0x8F
	9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, // 0x90-0x9F
	7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, // 0xA0-0xAF
	7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, // 0xB0-0xBF
	8, 8, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, // 0xC0-0xCF
	2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, // 0xD0-0xDF
	10, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 4, 3, 3, // 0xE0-0xEF
	11, 6, 6, 6, 5, 8, 8, 8, 8, 8, 8, 8, 8, 8, 8, 8, // 0xF0-0xFF
}

// wtf8Classes is utf8Classes with 0xED reclassified as an ordinary 3-byte
// lead, admitting encoded surrogate halves.
var wtf8Classes = [256]uint8{
	//  0  1  2  3  4  5  6  7  8  9  A  B  C  D  E  F
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 0x00-0x0F
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 0x10-0x1F
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 0x20-0x2F
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 0x30-0x3F
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 0x40-0x4F
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 0x50-0x5F
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 0x60-0x6F
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 0x70-0x7F
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, // 0x80-0x8F
	9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, // 0x90-0x9F
	7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, // 0xA0-0xAF
	7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, // 0xB0-0xBF
	8, 8, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, // 0xC0-0xCF
	2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, // 0xD0-0xDF
	10, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, // 0xE0-0xEF
	11, 6, 6, 6, 5, 8, 8, 8, 8, 8, 8, 8, 8, 8, 8, 8, // 0xF0-0xFF
}

// textClasses is utf8Classes with control bytes that never occur in source
// text mapped to clsCtl. TAB (0x09), LF (0x0A) and CR (0x0D) stay ASCII.
var textClasses = [256]uint8{
	//  0   1   2   3   4   5   6   7   8  9  A   B   C  D   E   F
	12, 12, 12, 12, 12, 12, 12, 12, 12, 0, 0, 12, 12, 0, 12, 12, // 0x00-0x0F
	12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, // 0x10-0x1F
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 0x20-0x2F
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 0x30-0x3F
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 0x40-0x4F
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 0x50-0x5F
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 0x60-0x6F
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 12, // 0x70-0x7F
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, // 0x80-0x8F
	9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, // 0x90-0x9F
	7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, // 0xA0-0xAF
	7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, // 0xB0-0xBF
	8, 8, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, // 0xC0-0xCF
	2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, // 0xD0-0xDF
	10, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 4, 3, 3, // 0xE0-0xEF
	11, 6, 6, 6, 5, 8, 8, 8, 8, 8, 8, 8, 8, 8, 8, 8, // 0xF0-0xFF
}

// utf8Transitions maps transitions[state+class] to the next state. Rows are
// states (multiples of 12), columns are byte classes. Shared by the UTF8 and
// WTF8 variants; the variants differ only in byte classification.
var utf8Transitions = []uint8{
	// cls:  0   1   2   3   4   5   6   7   8   9  10  11
	0, 12, 24, 36, 60, 96, 84, 12, 12, 12, 48, 72, // state   0: accept
	12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, // state  12: reject
	12, 0, 12, 12, 12, 12, 12, 0, 12, 0, 12, 12, // state  24: one continuation left
	12, 24, 12, 12, 12, 12, 12, 24, 12, 24, 12, 12, // state  36: two continuations left
	12, 12, 12, 12, 12, 12, 12, 24, 12, 12, 12, 12, // state  48: after 0xE0, need 0xA0-0xBF
	12, 24, 12, 12, 12, 12, 12, 12, 12, 24, 12, 12, // state  60: after 0xED, need 0x80-0x9F
	12, 12, 12, 12, 12, 12, 12, 36, 12, 36, 12, 12, // state  72: after 0xF0, need 0x90-0xBF
	12, 36, 12, 12, 12, 12, 12, 36, 12, 36, 12, 12, // state  84: three continuations left
	12, 36, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, // state  96: after 0xF4, need 0x80-0x8F
}

// textTransitions is utf8Transitions with one extra all-reject row. The Text
// variant has a thirteenth byte class, so state+class indexing can reach one
// row past the strict table; the terminal row keeps every such lookup inside
// the table and in the reject sink.
var textTransitions = []uint8{
	// cls:  0   1   2   3   4   5   6   7   8   9  10  11
	0, 12, 24, 36, 60, 96, 84, 12, 12, 12, 48, 72, // state   0: accept
	12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, // state  12: reject
	12, 0, 12, 12, 12, 12, 12, 0, 12, 0, 12, 12, // state  24: one continuation left
	12, 24, 12, 12, 12, 12, 12, 24, 12, 24, 12, 12, // state  36: two continuations left
	12, 12, 12, 12, 12, 12, 12, 24, 12, 12, 12, 12, // state  48: after 0xE0, need 0xA0-0xBF
	12, 24, 12, 12, 12, 12, 12, 12, 12, 24, 12, 12, // state  60: after 0xED, need 0x80-0x9F
	12, 12, 12, 12, 12, 12, 12, 36, 12, 36, 12, 12, // state  72: after 0xF0, need 0x90-0xBF
	12, 36, 12, 12, 12, 12, 12, 36, 12, 36, 12, 12, // state  84: three continuations left
	12, 36, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, // state  96: after 0xF4, need 0x80-0x8F
	12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, // state 108: terminal guard row
}

// UTF8 is the strict UTF-8 variant.
var UTF8 = &Tables{
	name:        "utf8",
	classes:     utf8Classes,
	masks:       leadMasks,
	lengths:     seqLengths,
	transitions: utf8Transitions,
}

// WTF8 accepts everything UTF8 does plus encoded surrogate halves.
var WTF8 = &Tables{
	name:        "wtf8",
	classes:     wtf8Classes,
	masks:       leadMasks,
	lengths:     seqLengths,
	transitions: utf8Transitions,
}

// Text is the source-text variant: strict UTF-8 minus control bytes that
// never occur in source code.
var Text = &Tables{
	name:        "text",
	classes:     textClasses,
	masks:       leadMasks,
	lengths:     seqLengths,
	transitions: textTransitions,
}

// Variant returns the table set with the given name.
func Variant(name string) (*Tables, bool) {
	switch name {
	case "utf8":
		return UTF8, true
	case "wtf8":
		return WTF8, true
	case "text":
		return Text, true
	}
	return nil, false
}
