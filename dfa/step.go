package dfa

// Step is the single-step decode primitive. Given the current state and
// accumulated codepoint value, it consumes one byte and returns the next
// state and updated value. A sequence starts when state is Accept: the lead
// byte contributes its masked value bits; every continuation byte then
// shifts six more bits in. The returned value is meaningful only once the
// state comes back to Accept.
//
// Step is a pure function of its inputs and the constant tables; every other
// operation in this package is a driving loop around it.
func (t *Tables) Step(state, acc uint32, b byte) (uint32, uint32) {
	class := uint32(t.classes[b])
	if state == Accept {
		acc = uint32(b) & uint32(t.masks[class])
	} else {
		acc = acc<<6 | uint32(b)&0x3F
	}
	return uint32(t.transitions[state+class]), acc
}

// nextState advances the automaton without maintaining the accumulated
// value. Used by the validators, which only care about well-formedness.
func (t *Tables) nextState(state uint32, b byte) uint32 {
	return uint32(t.transitions[state+uint32(t.classes[b])])
}

// Status is the outcome of feeding one byte to a Decoder.
type Status uint8

const (
	// Pending means the byte was consumed mid-sequence; feed more bytes.
	Pending Status = iota
	// Accepted means the byte completed a codepoint.
	Accepted
	// Rejected means the byte is not valid here. The Decoder stays in the
	// reject sink until Reset.
	Rejected
)

func (s Status) String() string {
	switch s {
	case Pending:
		return "pending"
	case Accepted:
		return "accepted"
	case Rejected:
		return "rejected"
	}
	return "unknown"
}

// Decoder is a resumable byte-at-a-time decoder. It carries the DFA state
// and partial codepoint across calls, so input may arrive in arbitrary
// chunks: feed each byte with Step, collect a rune on Accepted, and call
// Pending at end of input to detect a truncated trailing sequence.
//
// The zero Decoder is not usable; obtain one with NewDecoder. A Decoder is
// not safe for concurrent use.
type Decoder struct {
	tables *Tables
	state  uint32
	acc    uint32
}

// NewDecoder returns a Decoder for the given table set, ready at a sequence
// boundary.
func NewDecoder(t *Tables) *Decoder {
	return &Decoder{tables: t}
}

// Step feeds one byte. The returned rune is valid only when the status is
// Accepted.
func (d *Decoder) Step(b byte) (rune, Status) {
	d.state, d.acc = d.tables.Step(d.state, d.acc, b)
	switch d.state {
	case Accept:
		return rune(d.acc), Accepted
	case Reject:
		return 0, Rejected
	}
	return 0, Pending
}

// Pending reports whether the decoder is mid-sequence: bytes have been
// consumed that do not yet form a complete codepoint. True at end of input
// means the input was truncated.
func (d *Decoder) Pending() bool {
	return d.state != Accept && d.state != Reject
}

// Rejected reports whether the decoder has entered the reject sink.
func (d *Decoder) Rejected() bool {
	return d.state == Reject
}

// Reset returns the decoder to the initial state, discarding any partial
// sequence.
func (d *Decoder) Reset() {
	d.state = Accept
	d.acc = 0
}
