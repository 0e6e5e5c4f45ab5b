// Package view provides a validated, immutable window over an encoded byte
// buffer and lazy iteration of its codepoints.
//
// A View is constructed either by validating the buffer (FromValidated) or
// by caller assertion (FromTrusted). Once constructed, every byte range the
// View spans is known well-formed, so its iterators decode with the
// unchecked fast path and can never fail.
//
// A View borrows the buffer; it copies nothing and must not outlive it.
// Mutating the underlying bytes after construction violates the View's
// invariant and makes iterator behavior undefined.
//
// Iterators are cheap cursors: derive as many as needed from one View,
// restart by deriving a fresh one. Peek returns the raw bytes of the next n
// codepoints without advancing.
package view
