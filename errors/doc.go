// Package errors provides structured error types for the runedfa library.
//
// The engine has a single failure mode: the DFA reached its reject state,
// meaning the input is not well-formed in the selected encoding variant.
// Errors carry the Phase (which operation was running) and the byte offset
// of the input byte that drove the automaton into reject.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindMalformed).
//		Offset(17).
//		Byte(0xE0).
//		Detail("truncated 3-byte sequence").
//		Build()
//
// Or the convenience constructor for the common case:
//
//	err := errors.Malformed(errors.PhaseValidate, offset, b)
//
// The reported offset follows the Unicode maximal-subpart convention: it is
// the offset of the byte that produced the reject transition, which may sit
// one or more bytes past the start of the malformed sequence.
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
