// Package dfa implements a table-driven finite automaton for decoding and
// validating variable-length Unicode text encodings.
//
// The automaton follows the classic one-lookup-per-byte design: a 256-entry
// class table maps each input byte to a small class describing its role in a
// sequence, and a transition table maps (state, class) pairs to the next
// state. There are no per-byte branches beyond the table lookups.
//
// # Encoding Variants
//
// Three fixed table sets are provided, all sharing one engine:
//
//	UTF8   Strict UTF-8. Overlong encodings, encoded surrogate halves,
//	       and codepoints above U+10FFFF are rejected.
//	WTF8   Like UTF8 but encoded surrogate halves (U+D800-U+DFFF) are
//	       accepted, allowing lossless round-tripping of ill-formed
//	       UTF-16 data.
//	Text   Like UTF8 but further rejects control bytes that never occur
//	       in source text (0x00-0x08, 0x0B, 0x0C, 0x0E-0x1F, 0x7F).
//	       TAB, LF and CR remain valid.
//
// # States
//
// States are multiples of 12. 0 (Accept) is both the initial state and the
// success terminal; 12 (Reject) is a permanent error sink; everything else
// means "expecting more continuation bytes". The Text table carries one
// extra all-reject row so that its thirteenth byte class stays inside the
// table under state+class indexing.
//
// # Key Operations
//
//	Step           - the single-step primitive everything else loops over
//	Decoder        - resumable byte-at-a-time decoder for streaming input
//	DecodeRune     - decode one codepoint at a cursor
//	Validate       - whole-buffer well-formedness check
//	ValidateCursor - validation with first-bad-byte reporting
//	Count          - count codepoints in a buffer
//
// # Error Reporting
//
// On rejection the reported offset is the byte that produced the reject
// transition. Per the Unicode maximal-subpart convention this can be later
// than the first byte of the malformed sequence: in "\xE0\xA0\x41" the
// rejecting byte is 0x41 at offset 2, even though the sequence started going
// wrong at offset 0. Callers that substitute replacement characters get
// maximal-subpart behavior for free.
//
// # Concurrency
//
// The table sets are immutable and safe to share without synchronization.
// All mutable state (Decoder, cursors) is caller-owned; no operation blocks
// or performs I/O.
package dfa
