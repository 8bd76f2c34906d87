package utf

import "fmt"

// UTF32 is the UTF-32 codec. Code units are 32-bit and carry the scalar
// value directly; every sequence is exactly one unit.
type UTF32 struct{}

// ReadLength always returns 1.
func (UTF32) ReadLength(lead uint32) int {
	return 1
}

// WriteLength returns 1 for any legal scalar value, 0 otherwise.
func (UTF32) WriteLength(c Codepoint) int {
	if ValidCodepoint(c) {
		return 1
	}
	return 0
}

// ValidateSequence only checks that the candidate is exactly one unit
// long. Scalar-range legality is ValidCodepoint's job, not duplicated
// here.
func (UTF32) ValidateSequence(units []uint32) bool {
	return len(units) == 1
}

// Encode writes c to dst as a single unit. Panics if c is not a legal
// scalar value; validate before encoding.
func (e UTF32) Encode(c Codepoint, dst Sink[uint32]) int {
	if e.WriteLength(c) == 0 {
		panic(fmt.Sprintf("utf: U+%04X is not encodable in UTF-32", uint32(c)))
	}
	dst.Put(uint32(c))
	return 1
}

// Decode returns the single unit as a scalar.
func (UTF32) Decode(units []uint32) Codepoint {
	return Codepoint(units[0])
}
