package utf

import "fmt"

// UTF16 is the UTF-16 codec. Code units are 16-bit; a scalar occupies
// one unit, or two (a surrogate pair) for values at or above 0x10000.
// Units are host values, not serialized bytes: byte order is outside
// this package's scope.
type UTF16 struct{}

// ReadLength returns 2 when the lead unit is a high surrogate, else 1.
func (UTF16) ReadLength(lead uint16) int {
	if lead >= HighSurrogateMin && lead <= HighSurrogateMax {
		return 2
	}
	return 1
}

// WriteLength returns 1 for values below 0x10000 outside the surrogate
// range, 2 for values up to MaxCodepoint, and 0 otherwise.
func (UTF16) WriteLength(c Codepoint) int {
	switch {
	case c < SurrogateMin:
		return 1
	case c <= SurrogateMax:
		return 0
	case c < 0x10000:
		return 1
	case c <= MaxCodepoint:
		return 2
	}
	return 0
}

// ValidateSequence reports whether units holds exactly one well-formed
// UTF-16 sequence: a single non-surrogate unit, or a high surrogate
// followed by a low surrogate.
func (UTF16) ValidateSequence(units []uint16) bool {
	switch len(units) {
	case 1:
		u := units[0]
		return u < SurrogateMin || u > SurrogateMax
	case 2:
		lead, trail := units[0], units[1]
		return lead >= HighSurrogateMin && lead <= HighSurrogateMax &&
			trail >= LowSurrogateMin && trail <= LowSurrogateMax
	}
	return false
}

// Encode writes the UTF-16 encoding of c to dst and returns the number
// of units written. Panics if c is not encodable (surrogate or out of
// range); validate before encoding.
func (e UTF16) Encode(c Codepoint, dst Sink[uint16]) int {
	switch e.WriteLength(c) {
	case 1:
		dst.Put(uint16(c))
		return 1
	case 2:
		// 20-bit offset split across the pair.
		v := uint32(c) - SurrogateOffset
		dst.Put(uint16(HighSurrogateMin + v>>10))
		dst.Put(uint16(LowSurrogateMin + v&0x3FF))
		return 2
	}
	panic(fmt.Sprintf("utf: U+%04X is not encodable in UTF-16", uint32(c)))
}

// Decode returns the scalar encoded at the start of units. The sequence
// must already have passed ValidateSequence; the result on malformed
// input is unspecified.
func (e UTF16) Decode(units []uint16) Codepoint {
	lead := units[0]
	if e.ReadLength(lead) == 1 {
		return Codepoint(lead)
	}
	hi := uint32(lead-HighSurrogateMin) << 10
	lo := uint32(units[1] - LowSurrogateMin)
	return Codepoint(hi + lo + SurrogateOffset)
}
