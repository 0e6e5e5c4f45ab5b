package transcoder

import (
	"github.com/wippyai/runedfa/dfa"
	"github.com/wippyai/runedfa/errors"
)

// UTF-16 surrogate encoding constants.
const (
	surrHigh = 0xD800
	surrLow  = 0xDC00
	surrSelf = 0x10000
)

// Transcoder converts byte buffers in one encoding variant to UTF-16 code
// units. It holds no mutable state and is safe for concurrent use.
type Transcoder struct {
	tables *dfa.Tables
}

// New returns a Transcoder bound to the given table set.
func New(t *dfa.Tables) *Transcoder {
	return &Transcoder{tables: t}
}

// RequiredUnits returns a destination size in 16-bit units that is
// sufficient for any source buffer of srcLen bytes.
func RequiredUnits(srcLen int) int {
	return srcLen
}

// Transcode converts src into UTF-16 code units, returning the number of
// units written to dst. dst must be sized per RequiredUnits; Transcode
// panics rather than write out of bounds.
//
// On malformed input it returns the units written before the bad sequence
// and an error whose offset is the source byte that drove the automaton
// into reject. A trailing truncated sequence reports the offset of its
// lead byte.
func (tc *Transcoder) Transcode(dst []uint16, src []byte) (int, error) {
	written := 0
	state, acc := dfa.Accept, uint32(0)
	start := 0 // source offset of the sequence being assembled

	for i := 0; i < len(src); i++ {
		b := src[i]
		if state == dfa.Accept {
			start = i
			if tc.tables.IsASCII(b) {
				dst[written] = uint16(b)
				written++
				continue
			}
		}
		state, acc = tc.tables.Step(state, acc, b)
		switch state {
		case dfa.Accept:
			written += putUnits(dst[written:], acc)
		case dfa.Reject:
			debugf("transcode rejected at source offset %d after %d units", i, written)
			err := errors.Malformed(errors.PhaseTranscode, i, b)
			err.Variant = tc.tables.Name()
			return written, err
		}
	}

	if state != dfa.Accept {
		err := errors.New(errors.PhaseTranscode, errors.KindMalformed).
			Variant(tc.tables.Name()).
			Offset(start).
			Byte(src[start]).
			Detail("truncated sequence at end of input").
			Build()
		return written, err
	}
	return written, nil
}

// putUnits writes the UTF-16 encoding of cp into dst and returns the unit
// count: one unit through U+FFFF (including unpaired surrogate halves under
// WTF-8), a surrogate pair above.
func putUnits(dst []uint16, cp uint32) int {
	if cp < surrSelf {
		dst[0] = uint16(cp)
		return 1
	}
	cp -= surrSelf
	dst[0] = uint16(cp>>10) + surrHigh
	dst[1] = uint16(cp&0x3FF) + surrLow
	return 2
}

// AppendBytesLE appends the little-endian serialization of units to dst
// and returns the extended slice.
func AppendBytesLE(dst []byte, units []uint16) []byte {
	for _, u := range units {
		dst = append(dst, byte(u), byte(u>>8))
	}
	return dst
}
