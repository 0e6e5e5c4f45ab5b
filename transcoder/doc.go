// Package transcoder converts UTF-8 and WTF-8 byte buffers into UTF-16
// code units.
//
// The transcoder walks the same table-driven automaton as the dfa package,
// emitting one 16-bit unit per codepoint at or below U+FFFF and a surrogate
// pair for supplementary-plane codepoints. ASCII bytes bypass the state
// machine and emit their unit directly.
//
// # Sizing
//
// The caller provides the destination. A source byte never produces more
// than one 16-bit unit (multi-byte sequences produce fewer), so
//
//	dst := make([]uint16, transcoder.RequiredUnits(len(src)))
//
// is always sufficient. Transcode panics if the destination is too short
// for the units it needs to write; it never allocates.
//
// # Variants
//
// A Transcoder is bound to one dfa table set. Under dfa.WTF8, encoded lone
// surrogate halves pass through as single unpaired units, reproducing the
// original ill-formed UTF-16. Under dfa.UTF8 they are rejected as
// malformed input.
//
// # Output Byte Order
//
// Units are returned in native form; AppendBytesLE serializes them
// little-endian for wire or file output.
package transcoder
